// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package awsops

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/platform-engineering-labs/cfn-boto-hook/pkg/registry"
)

// operation adapts a typed SDK call to the registry's loosely-typed contract.
// Parameters are decoded into the input struct through JSON (field names match
// case-insensitively, so template keys like "Name" or "CallerReference" land
// on the SDK fields directly); the output struct is re-encoded the same way.
// SDK failures are prefixed with their error category so the eventual FAILED
// reason tells the operator what class of fault occurred.
func operation[I, O any](call func(context.Context, *I) (*O, error)) registry.Operation {
	return func(ctx context.Context, params map[string]any) (map[string]any, error) {
		in := new(I)
		if params != nil {
			if err := roundTrip(params, in); err != nil {
				return nil, fmt.Errorf("decode parameters: %w", err)
			}
		}
		out, err := call(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ClassifyError(err), err)
		}
		res := map[string]any{}
		if err := roundTrip(out, &res); err != nil {
			return nil, fmt.Errorf("encode response: %w", err)
		}
		// Middleware metadata carries no template-visible attributes.
		delete(res, "ResultMetadata")
		return res, nil
	}
}

func roundTrip(from, to any) error {
	b, err := json.Marshal(from)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, to)
}
