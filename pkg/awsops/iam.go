// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package awsops

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/iam"

	"github.com/platform-engineering-labs/cfn-boto-hook/pkg/registry"
)

func registerIAM(r *registry.Registry, c *iam.Client) {
	r.Register("iam", "CreateRole", operation(
		func(ctx context.Context, in *iam.CreateRoleInput) (*iam.CreateRoleOutput, error) {
			return c.CreateRole(ctx, in)
		}))
	r.Register("iam", "DeleteRole", operation(
		func(ctx context.Context, in *iam.DeleteRoleInput) (*iam.DeleteRoleOutput, error) {
			return c.DeleteRole(ctx, in)
		}))
	r.Register("iam", "GetRole", operation(
		func(ctx context.Context, in *iam.GetRoleInput) (*iam.GetRoleOutput, error) {
			return c.GetRole(ctx, in)
		}))
	r.Register("iam", "PutRolePolicy", operation(
		func(ctx context.Context, in *iam.PutRolePolicyInput) (*iam.PutRolePolicyOutput, error) {
			return c.PutRolePolicy(ctx, in)
		}))
	r.Register("iam", "DeleteRolePolicy", operation(
		func(ctx context.Context, in *iam.DeleteRolePolicyInput) (*iam.DeleteRolePolicyOutput, error) {
			return c.DeleteRolePolicy(ctx, in)
		}))
}
