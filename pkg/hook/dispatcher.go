// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package hook

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/platform-engineering-labs/cfn-boto-hook/pkg/coerce"
	"github.com/platform-engineering-labs/cfn-boto-hook/pkg/identity"
	"github.com/platform-engineering-labs/cfn-boto-hook/pkg/registry"
	"github.com/platform-engineering-labs/cfn-boto-hook/pkg/signal"
)

// Dispatcher runs the lifecycle state machine for one event at a time. It
// shares no mutable state across invocations; the registry is read-only.
type Dispatcher struct {
	reg      *registry.Registry
	headroom time.Duration
	log      *slog.Logger
}

// NewDispatcher wires the dispatcher to its operation registry. headroom is
// the wall-clock budget reserved for signal delivery; when less than that
// remains after the external call, the stage is failed so a signal still
// goes out before the runtime kills the invocation.
func NewDispatcher(reg *registry.Registry, headroom time.Duration, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{reg: reg, headroom: headroom, log: log}
}

// Dispatch executes the stage carried on the event and always produces an
// outcome; every error kind is converted into a FAILED outcome with a
// human-readable reason. Nothing is retried here.
func (d *Dispatcher) Dispatch(ctx context.Context, ev *LifecycleEvent) *Outcome {
	log := d.log.With(
		"invocation", ksuid.New().String(),
		"stage", string(ev.RequestType),
		"logicalResourceId", ev.LogicalResourceID,
		"requestId", ev.RequestID,
	)

	cfg, fellBack := d.selectConfig(ev)
	if cfg == nil {
		log.Info("no handler configured for stage, reporting no-op success")
		return &Outcome{
			Status:             signal.StatusSuccess,
			PhysicalResourceID: d.noopIdentity(ev),
			Data:               map[string]any{},
		}
	}
	if fellBack {
		log.Info("update handler absent, re-invoking create handler", "client", cfg.Client, "method", cfg.Method)
	}

	params, err := resolveParameters(cfg)
	if err != nil {
		log.Error("parameter coercion failed", "error", err)
		return d.failure(ev, err)
	}

	response, err := d.reg.Invoke(ctx, cfg.Client, cfg.Method, params)
	if err != nil {
		log.Error("operation failed", "client", cfg.Client, "method", cfg.Method, "error", err)
		return d.failure(ev, err)
	}
	log.Info("operation succeeded", "client", cfg.Client, "method", cfg.Method)

	// Prefer delivering a FAILED signal over delivering none: if the budget
	// is nearly gone, skip identity work and report while we still can.
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < d.headroom {
		log.Error("time budget exhausted before identity extraction")
		return d.failure(ev, fmt.Errorf("time budget exhausted after %s.%s; signaling early", cfg.Client, cfg.Method))
	}

	physicalID, err := d.deriveIdentity(ev, cfg, response)
	if err != nil {
		log.Error("identity extraction failed", "expression", cfg.PhysicalResourceID, "error", err)
		return d.failure(ev, err)
	}

	data := Flatten(response)
	if ev.RequestType != StageDelete && cfg.PhysicalResourceID != "" {
		data["Ref"] = physicalID
	}

	if ev.RequestType == StageUpdate && ev.PhysicalResourceID != "" && physicalID != ev.PhysicalResourceID {
		// The orchestrator sees the identity change and schedules a Delete of
		// the old object with the old parameters; we only report truthfully.
		log.Info("update produced a new identity, replacement will follow",
			"previous", ev.PhysicalResourceID, "current", physicalID)
	}

	return &Outcome{
		Status:             signal.StatusSuccess,
		PhysicalResourceID: physicalID,
		Data:               data,
	}
}

// selectConfig applies the stage fallback rules: Update without an Update
// handler re-invokes the Create handler with the new parameters, so a single
// put-style configuration serves both provisioning and convergence.
func (d *Dispatcher) selectConfig(ev *LifecycleEvent) (cfg *HandlerConfig, fellBack bool) {
	props := ev.ResourceProperties
	switch ev.RequestType {
	case StageCreate:
		return props.Create, false
	case StageUpdate:
		if props.Update != nil {
			return props.Update, false
		}
		return props.Create, props.Create != nil
	case StageDelete:
		return props.Delete, false
	default:
		return nil, false
	}
}

// noopIdentity picks the identity for an absent-config stage. Delete echoes
// the prior identity so the orchestrator recognizes the object it asked
// about; otherwise the request id serves. On an Update with neither handler
// the request id necessarily differs from the prior identity, which forces
// the replacement Delete the orchestrator contract expects.
func (d *Dispatcher) noopIdentity(ev *LifecycleEvent) string {
	if ev.RequestType == StageDelete && ev.PhysicalResourceID != "" {
		return ev.PhysicalResourceID
	}
	return ev.RequestID
}

// deriveIdentity computes the outcome identity. Delete never evaluates the
// expression: the object is gone and its identity must be echoed unchanged.
// For Create/Update the extraction default is the prior identity when one
// exists (an expressionless update must not manufacture a replacement), else
// the request id.
func (d *Dispatcher) deriveIdentity(ev *LifecycleEvent, cfg *HandlerConfig, response map[string]any) (string, error) {
	if ev.RequestType == StageDelete {
		return d.noopIdentity(ev), nil
	}
	fallback := ev.RequestID
	if ev.PhysicalResourceID != "" {
		fallback = ev.PhysicalResourceID
	}
	return identity.Extract(cfg.PhysicalResourceID, response, fallback)
}

func (d *Dispatcher) failure(ev *LifecycleEvent, err error) *Outcome {
	physicalID := ev.PhysicalResourceID
	if physicalID == "" {
		physicalID = ev.RequestID
	}
	return &Outcome{
		Status:             signal.StatusFailed,
		PhysicalResourceID: physicalID,
		Reason:             err.Error(),
		Data:               map[string]any{},
	}
}

func resolveParameters(cfg *HandlerConfig) (map[string]any, error) {
	if cfg.Parameters == nil {
		return map[string]any{}, nil
	}
	resolved, err := coerce.Resolve(cfg.Parameters)
	if err != nil {
		return nil, err
	}
	params, ok := resolved.(map[string]any)
	if !ok {
		// Resolve preserves structure; a map in always yields a map out.
		return nil, fmt.Errorf("resolved parameters are not a mapping")
	}
	return params, nil
}
