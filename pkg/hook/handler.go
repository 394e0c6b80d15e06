// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package hook

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/platform-engineering-labs/cfn-boto-hook/pkg/signal"
)

// Signaler delivers one outcome document to the callback URL.
type Signaler interface {
	Deliver(ctx context.Context, url string, resp signal.Response) error
}

// Handler is the Lambda-facing entrypoint: dispatch, then signal, exactly
// once per event. A panic anywhere inside the dispatch becomes a FAILED
// outcome, so the orchestrator is never left waiting out its full timeout
// when we can still reach the callback.
type Handler struct {
	dispatcher *Dispatcher
	signaler   Signaler
	log        *slog.Logger
}

// NewHandler wires the handler.
func NewHandler(dispatcher *Dispatcher, signaler Signaler, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{dispatcher: dispatcher, signaler: signaler, log: log}
}

// Handle processes one lifecycle event. The returned error reports signal
// delivery failure only; it is surfaced to the runtime's error channel and
// never produces a second outcome.
func (h *Handler) Handle(ctx context.Context, ev LifecycleEvent) error {
	outcome := h.safeDispatch(ctx, &ev)

	if err := h.signaler.Deliver(ctx, ev.ResponseURL, outcome.Response(&ev)); err != nil {
		h.log.Error("outcome could not be signaled, orchestrator will time out",
			"requestId", ev.RequestID,
			"logicalResourceId", ev.LogicalResourceID,
			"error", err,
		)
		return err
	}
	return nil
}

func (h *Handler) safeDispatch(ctx context.Context, ev *LifecycleEvent) (out *Outcome) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Error("dispatch panicked", "panic", r)
			physicalID := ev.PhysicalResourceID
			if physicalID == "" {
				physicalID = ev.RequestID
			}
			out = &Outcome{
				Status:             signal.StatusFailed,
				PhysicalResourceID: physicalID,
				Reason:             fmt.Sprintf("internal fault while handling %s: %v", ev.RequestType, r),
				Data:               map[string]any{},
			}
		}
	}()
	return h.dispatcher.Dispatch(ctx, ev)
}
