// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package hook

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platform-engineering-labs/cfn-boto-hook/pkg/registry"
	"github.com/platform-engineering-labs/cfn-boto-hook/pkg/signal"
)

// recordingSignaler counts deliveries and captures the last response.
type recordingSignaler struct {
	deliveries []signal.Response
	urls       []string
	err        error
}

func (s *recordingSignaler) Deliver(ctx context.Context, url string, resp signal.Response) error {
	s.deliveries = append(s.deliveries, resp)
	s.urls = append(s.urls, url)
	return s.err
}

func newHandler(reg *registry.Registry, sig Signaler) *Handler {
	return NewHandler(NewDispatcher(reg, time.Second, nil), sig, nil)
}

func TestHandle_SuccessSignalsExactlyOnce(t *testing.T) {
	op := &recordingOp{response: map[string]any{"QueueUrl": "https://sqs/q"}}
	reg := registry.New()
	reg.Register("sqs", "CreateQueue", op.op)
	sig := &recordingSignaler{}

	ev := newEvent(StageCreate)
	ev.ResourceProperties.Create = &HandlerConfig{
		Client:             "sqs",
		Method:             "CreateQueue",
		PhysicalResourceID: "QueueUrl",
	}

	err := newHandler(reg, sig).Handle(context.Background(), ev)

	require.NoError(t, err)
	require.Len(t, sig.deliveries, 1)
	assert.Equal(t, ev.ResponseURL, sig.urls[0])
	resp := sig.deliveries[0]
	assert.Equal(t, signal.StatusSuccess, resp.Status)
	assert.Equal(t, "https://sqs/q", resp.PhysicalResourceID)
	assert.Equal(t, ev.StackID, resp.StackID)
	assert.Equal(t, ev.RequestID, resp.RequestID)
	assert.Equal(t, ev.LogicalResourceID, resp.LogicalResourceID)
}

func TestHandle_FailureStillSignalsExactlyOnce(t *testing.T) {
	sig := &recordingSignaler{}

	ev := newEvent(StageCreate)
	ev.ResourceProperties.Create = &HandlerConfig{Client: "nosuch", Method: "Call"}

	err := newHandler(registry.New(), sig).Handle(context.Background(), ev)

	require.NoError(t, err)
	require.Len(t, sig.deliveries, 1)
	assert.Equal(t, signal.StatusFailed, sig.deliveries[0].Status)
	assert.NotEmpty(t, sig.deliveries[0].Reason)
}

func TestHandle_PanicBecomesFailedSignal(t *testing.T) {
	reg := registry.New()
	reg.Register("route53", "CreateHostedZone", func(ctx context.Context, params map[string]any) (map[string]any, error) {
		panic("boom")
	})
	sig := &recordingSignaler{}

	ev := newEvent(StageCreate)
	ev.ResourceProperties.Create = &HandlerConfig{Client: "route53", Method: "CreateHostedZone"}

	err := newHandler(reg, sig).Handle(context.Background(), ev)

	require.NoError(t, err)
	require.Len(t, sig.deliveries, 1)
	assert.Equal(t, signal.StatusFailed, sig.deliveries[0].Status)
	assert.Contains(t, sig.deliveries[0].Reason, "internal fault")
}

func TestHandle_DeliveryFailureIsReturnedWithoutSecondAttempt(t *testing.T) {
	sig := &recordingSignaler{err: &signal.SignalDeliveryError{URL: "https://callback.example"}}

	ev := newEvent(StageDelete)

	err := newHandler(registry.New(), sig).Handle(context.Background(), ev)

	require.Error(t, err)
	assert.Len(t, sig.deliveries, 1)
}
