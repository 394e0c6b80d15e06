// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

// Package registry maps symbolic (client, method) pairs to invocable
// operations. It is the capability surface the lifecycle dispatcher calls
// through: a plain lookup populated at startup, read-only afterwards, with no
// marshaling, retries, or caching of its own.
package registry

import (
	"context"
	"fmt"
)

// Operation is a single invocable external API call. Parameters arrive as an
// already-coerced JSON-shaped tree; the response is returned as the same kind
// of tree. Failures propagate untouched.
type Operation func(ctx context.Context, params map[string]any) (map[string]any, error)

// NotFoundError reports an unknown (client, method) pair.
type NotFoundError struct {
	Client string
	Method string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("registry: operation %s.%s does not exist", e.Client, e.Method)
}

// InvocationError wraps a failure raised by the external operation itself:
// authentication, throttling, validation, or a service-side fault.
type InvocationError struct {
	Client string
	Method string
	Err    error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("registry: %s.%s failed: %v", e.Client, e.Method, e.Err)
}

func (e *InvocationError) Unwrap() error { return e.Err }

// Registry stores operations keyed by client and method name.
type Registry struct {
	ops map[string]Operation
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{ops: make(map[string]Operation)}
}

// Register binds an operation to a (client, method) pair. The last
// registration for a pair wins; registration happens only during startup.
func (r *Registry) Register(client, method string, op Operation) {
	r.ops[key(client, method)] = op
}

// Resolve returns the operation bound to the pair, or a NotFoundError.
func (r *Registry) Resolve(client, method string) (Operation, error) {
	op, ok := r.ops[key(client, method)]
	if !ok {
		return nil, &NotFoundError{Client: client, Method: method}
	}
	return op, nil
}

// Invoke resolves and calls the operation, wrapping any operation failure in
// an InvocationError so callers can distinguish lookup faults from external
// API faults.
func (r *Registry) Invoke(ctx context.Context, client, method string, params map[string]any) (map[string]any, error) {
	op, err := r.Resolve(client, method)
	if err != nil {
		return nil, err
	}
	res, err := op(ctx, params)
	if err != nil {
		return nil, &InvocationError{Client: client, Method: method, Err: err}
	}
	return res, nil
}

func key(client, method string) string {
	return client + "." + method
}
