// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

const (
	// EnvResourceTypePrefix names the env var holding the resource type prefix
	// the macro transform intercepts, e.g. "CustomResources::".
	EnvResourceTypePrefix = "RESOURCE_TYPE_PREFIX"

	// EnvServiceTokens names the env var holding a JSON object mapping a type
	// suffix (the part after the prefix) to the Lambda function ARN backing
	// it, e.g. {"Boto::Hook": "arn:aws:lambda:...:function:botohook"}.
	EnvServiceTokens = "RESOURCE_TYPE_SERVICE_TOKENS"

	// EnvSignalHeadroom names the env var holding the wall-clock headroom the
	// hook reserves for delivering its CloudFormation signal.
	EnvSignalHeadroom = "SIGNAL_HEADROOM"
)

// DefaultSignalHeadroom is reserved out of the Lambda time budget so a
// near-expired invocation still delivers a FAILED signal instead of none.
const DefaultSignalHeadroom = 3 * time.Second

// Config holds process-wide configuration read once at startup.
// Read-only after construction; shared by reference.
type Config struct {
	ResourceTypePrefix string
	ServiceTokens      map[string]string
	SignalHeadroom     time.Duration
}

// FromEnv builds a Config from the process environment.
//
// The prefix and service token map may be absent (the hook Lambda does not
// need them); the transform Lambda surfaces missing entries as transform
// failures instead.
func FromEnv() (*Config, error) {
	cfg := &Config{
		ResourceTypePrefix: os.Getenv(EnvResourceTypePrefix),
		ServiceTokens:      map[string]string{},
		SignalHeadroom:     DefaultSignalHeadroom,
	}

	if raw := os.Getenv(EnvServiceTokens); raw != "" {
		if err := json.Unmarshal([]byte(raw), &cfg.ServiceTokens); err != nil {
			return nil, fmt.Errorf("parse %s: %w", EnvServiceTokens, err)
		}
	}

	if raw := os.Getenv(EnvSignalHeadroom); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", EnvSignalHeadroom, err)
		}
		cfg.SignalHeadroom = d
	}

	return cfg, nil
}
