// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

// The hook Lambda backs generic custom resources: per lifecycle event it
// invokes the configured AWS operation and signals the outcome back to
// CloudFormation.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/google/uuid"

	"github.com/platform-engineering-labs/cfn-boto-hook/pkg/awsops"
	"github.com/platform-engineering-labs/cfn-boto-hook/pkg/config"
	"github.com/platform-engineering-labs/cfn-boto-hook/pkg/hook"
	"github.com/platform-engineering-labs/cfn-boto-hook/pkg/signal"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).
		With("instance", uuid.NewString())
	slog.SetDefault(log)

	cfg, err := config.FromEnv()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	clients, err := awsops.NewClients(context.Background())
	if err != nil {
		log.Error("AWS client bootstrap failed", "error", err)
		os.Exit(1)
	}

	dispatcher := hook.NewDispatcher(awsops.NewRegistry(clients), cfg.SignalHeadroom, log)
	handler := hook.NewHandler(dispatcher, signal.New(nil, log), log)

	lambda.Start(handler.Handle)
}
