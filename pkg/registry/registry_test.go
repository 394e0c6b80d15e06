// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ResolveRegisteredOperation(t *testing.T) {
	r := New()
	r.Register("route53", "CreateHostedZone", func(ctx context.Context, params map[string]any) (map[string]any, error) {
		return map[string]any{"ChangeInfo": map[string]any{"Id": "C123"}}, nil
	})

	op, err := r.Resolve("route53", "CreateHostedZone")

	require.NoError(t, err)
	res, err := op(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "C123", res["ChangeInfo"].(map[string]any)["Id"])
}

func TestRegistry_ResolveUnknownPair(t *testing.T) {
	r := New()
	r.Register("route53", "CreateHostedZone", func(ctx context.Context, params map[string]any) (map[string]any, error) {
		return nil, nil
	})

	_, err := r.Resolve("route53", "DeleteHostedZone")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "route53", nf.Client)
	assert.Equal(t, "DeleteHostedZone", nf.Method)

	_, err = r.Resolve("organizations", "CreateAccount")
	require.ErrorAs(t, err, &nf)
}

func TestRegistry_InvokeWrapsOperationFailure(t *testing.T) {
	boom := errors.New("Throttling: rate exceeded")
	r := New()
	r.Register("s3", "CreateBucket", func(ctx context.Context, params map[string]any) (map[string]any, error) {
		return nil, boom
	})

	_, err := r.Invoke(context.Background(), "s3", "CreateBucket", map[string]any{"Bucket": "b"})

	var inv *InvocationError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, "s3", inv.Client)
	assert.Equal(t, "CreateBucket", inv.Method)
	assert.ErrorIs(t, err, boom)
}

func TestRegistry_InvokePassesParamsThrough(t *testing.T) {
	var got map[string]any
	r := New()
	r.Register("sqs", "CreateQueue", func(ctx context.Context, params map[string]any) (map[string]any, error) {
		got = params
		return map[string]any{"QueueUrl": "https://sqs/q"}, nil
	})

	res, err := r.Invoke(context.Background(), "sqs", "CreateQueue", map[string]any{
		"QueueName": "q",
		"Attributes": map[string]any{
			"DelaySeconds": int64(30),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "https://sqs/q", res["QueueUrl"])
	assert.Equal(t, int64(30), got["Attributes"].(map[string]any)["DelaySeconds"])
}
