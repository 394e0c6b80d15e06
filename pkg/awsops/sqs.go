// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package awsops

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/platform-engineering-labs/cfn-boto-hook/pkg/registry"
)

func registerSQS(r *registry.Registry, c *sqs.Client) {
	r.Register("sqs", "CreateQueue", operation(
		func(ctx context.Context, in *sqs.CreateQueueInput) (*sqs.CreateQueueOutput, error) {
			return c.CreateQueue(ctx, in)
		}))
	r.Register("sqs", "DeleteQueue", operation(
		func(ctx context.Context, in *sqs.DeleteQueueInput) (*sqs.DeleteQueueOutput, error) {
			return c.DeleteQueue(ctx, in)
		}))
	r.Register("sqs", "GetQueueUrl", operation(
		func(ctx context.Context, in *sqs.GetQueueUrlInput) (*sqs.GetQueueUrlOutput, error) {
			return c.GetQueueUrl(ctx, in)
		}))
	r.Register("sqs", "SetQueueAttributes", operation(
		func(ctx context.Context, in *sqs.SetQueueAttributesInput) (*sqs.SetQueueAttributesOutput, error) {
			return c.SetQueueAttributes(ctx, in)
		}))
	r.Register("sqs", "TagQueue", operation(
		func(ctx context.Context, in *sqs.TagQueueInput) (*sqs.TagQueueOutput, error) {
			return c.TagQueue(ctx, in)
		}))
}
