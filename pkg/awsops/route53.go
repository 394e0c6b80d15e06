// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package awsops

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/route53"

	"github.com/platform-engineering-labs/cfn-boto-hook/pkg/registry"
)

// Route 53 is the flagship use case for the hook: hosted zone and record set
// management predates first-class CloudFormation coverage in several setups,
// and ChangeInfo.Id is the canonical identity expression.
func registerRoute53(r *registry.Registry, c *route53.Client) {
	r.Register("route53", "CreateHostedZone", operation(
		func(ctx context.Context, in *route53.CreateHostedZoneInput) (*route53.CreateHostedZoneOutput, error) {
			return c.CreateHostedZone(ctx, in)
		}))
	r.Register("route53", "DeleteHostedZone", operation(
		func(ctx context.Context, in *route53.DeleteHostedZoneInput) (*route53.DeleteHostedZoneOutput, error) {
			return c.DeleteHostedZone(ctx, in)
		}))
	r.Register("route53", "GetHostedZone", operation(
		func(ctx context.Context, in *route53.GetHostedZoneInput) (*route53.GetHostedZoneOutput, error) {
			return c.GetHostedZone(ctx, in)
		}))
	r.Register("route53", "ChangeResourceRecordSets", operation(
		func(ctx context.Context, in *route53.ChangeResourceRecordSetsInput) (*route53.ChangeResourceRecordSetsOutput, error) {
			return c.ChangeResourceRecordSets(ctx, in)
		}))
	r.Register("route53", "ListHostedZonesByName", operation(
		func(ctx context.Context, in *route53.ListHostedZonesByNameInput) (*route53.ListHostedZonesByNameOutput, error) {
			return c.ListHostedZonesByName(ctx, in)
		}))
}
