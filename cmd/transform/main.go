// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

// The transform Lambda backs the CloudFormation macro: it rewrites friendly
// custom resource types into generic custom resources bound to the hook.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/platform-engineering-labs/cfn-boto-hook/pkg/config"
	"github.com/platform-engineering-labs/cfn-boto-hook/pkg/transform"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg, err := config.FromEnv()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	rewriter := transform.NewRewriter(cfg, log)
	lambda.Start(func(ctx context.Context, req transform.Request) (transform.Response, error) {
		return rewriter.Transform(req), nil
	})
}
