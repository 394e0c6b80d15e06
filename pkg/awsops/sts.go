// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package awsops

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/platform-engineering-labs/cfn-boto-hook/pkg/registry"
)

// GetCallerIdentity gives templates a cheap way to reference the executing
// account without a pseudo-parameter plumbed through nested stacks.
func registerSTS(r *registry.Registry, c *sts.Client) {
	r.Register("sts", "GetCallerIdentity", operation(
		func(ctx context.Context, in *sts.GetCallerIdentityInput) (*sts.GetCallerIdentityOutput, error) {
			return c.GetCallerIdentity(ctx, in)
		}))
}
