// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package awsops

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/platform-engineering-labs/cfn-boto-hook/pkg/registry"
)

func registerS3(r *registry.Registry, c *s3.Client) {
	r.Register("s3", "CreateBucket", operation(
		func(ctx context.Context, in *s3.CreateBucketInput) (*s3.CreateBucketOutput, error) {
			return c.CreateBucket(ctx, in)
		}))
	r.Register("s3", "DeleteBucket", operation(
		func(ctx context.Context, in *s3.DeleteBucketInput) (*s3.DeleteBucketOutput, error) {
			return c.DeleteBucket(ctx, in)
		}))
	r.Register("s3", "PutBucketTagging", operation(
		func(ctx context.Context, in *s3.PutBucketTaggingInput) (*s3.PutBucketTaggingOutput, error) {
			return c.PutBucketTagging(ctx, in)
		}))
	r.Register("s3", "GetBucketLocation", operation(
		func(ctx context.Context, in *s3.GetBucketLocationInput) (*s3.GetBucketLocationOutput, error) {
			return c.GetBucketLocation(ctx, in)
		}))
}
