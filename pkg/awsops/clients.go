// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

// Package awsops provides the concrete operation sets the hook exposes: typed
// AWS service clients bundled behind the operation registry, with a JSON codec
// bridging the loosely-typed parameter trees of custom resource properties and
// the SDK's typed inputs.
package awsops

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/platform-engineering-labs/cfn-boto-hook/pkg/registry"
)

// Clients bundles the AWS service clients the registry exposes operations
// for. Add a typed client field here when wiring a new service, following the
// one-file-per-service registration layout.
type Clients struct {
	Route53 *route53.Client
	S3      *s3.Client
	SQS     *sqs.Client
	IAM     *iam.Client
	STS     *sts.Client
}

// NewClients builds the client bundle from the default credential chain
// (execution role in Lambda, env/profile locally).
func NewClients(ctx context.Context) (*Clients, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return &Clients{
		Route53: route53.NewFromConfig(cfg),
		S3:      s3.NewFromConfig(cfg),
		SQS:     sqs.NewFromConfig(cfg),
		IAM:     iam.NewFromConfig(cfg),
		STS:     sts.NewFromConfig(cfg),
	}, nil
}

// NewRegistry returns an operation registry populated with every supported
// (client, method) pair. The client names mirror the lowercase service names
// template authors know from the original boto-style configuration.
func NewRegistry(c *Clients) *registry.Registry {
	r := registry.New()
	registerRoute53(r, c.Route53)
	registerS3(r, c.S3)
	registerSQS(r, c.SQS)
	registerIAM(r, c.IAM)
	registerSTS(r, c.STS)
	return r
}
