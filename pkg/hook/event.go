// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

// Package hook implements the lifecycle side of the custom resource handler:
// it receives a CloudFormation custom resource event, selects the handler
// configuration for the stage, resolves coercion markers, invokes the
// configured operation through the registry, derives the physical resource
// id, and reports the outcome through the signaler — exactly once, even when
// something inside the invocation faults.
package hook

import (
	"github.com/platform-engineering-labs/cfn-boto-hook/pkg/signal"
)

// Lifecycle stages, as CloudFormation spells them in RequestType.
type Stage string

const (
	StageCreate Stage = "Create"
	StageUpdate Stage = "Update"
	StageDelete Stage = "Delete"
)

// HandlerConfig describes one stage's operation: which client/method to
// invoke, its parameter tree (possibly containing coercion markers), and the
// optional JMESPath expression deriving the physical resource id from the
// response.
type HandlerConfig struct {
	Client             string         `json:"Client"`
	Method             string         `json:"Method"`
	PhysicalResourceID string         `json:"PhysicalResourceId,omitempty"`
	Parameters         map[string]any `json:"Parameters,omitempty"`
}

// ResourceProperties carries the per-stage handler configurations authored in
// the template. Any stage may be absent.
type ResourceProperties struct {
	ServiceToken string         `json:"ServiceToken,omitempty"`
	Create       *HandlerConfig `json:"Create,omitempty"`
	Update       *HandlerConfig `json:"Update,omitempty"`
	Delete       *HandlerConfig `json:"Delete,omitempty"`
}

// LifecycleEvent is the inbound CloudFormation custom resource request.
// It is immutable for the duration of one invocation and never persisted.
type LifecycleEvent struct {
	RequestType           Stage              `json:"RequestType"`
	ServiceToken          string             `json:"ServiceToken,omitempty"`
	ResponseURL           string             `json:"ResponseURL"`
	StackID               string             `json:"StackId"`
	RequestID             string             `json:"RequestId"`
	LogicalResourceID     string             `json:"LogicalResourceId"`
	ResourceType          string             `json:"ResourceType"`
	PhysicalResourceID    string             `json:"PhysicalResourceId,omitempty"`
	ResourceProperties    ResourceProperties `json:"ResourceProperties"`
	OldResourceProperties map[string]any     `json:"OldResourceProperties,omitempty"`
}

// Outcome is the result of dispatching one lifecycle event. Exactly one
// Outcome exists per event and exactly one delivery attempt is made for it.
type Outcome struct {
	Status             string
	PhysicalResourceID string
	Reason             string
	Data               map[string]any
}

// Response renders the outcome as the outbound signal document.
func (o *Outcome) Response(ev *LifecycleEvent) signal.Response {
	return signal.Response{
		Status:             o.Status,
		Reason:             o.Reason,
		PhysicalResourceID: o.PhysicalResourceID,
		StackID:            ev.StackID,
		RequestID:          ev.RequestID,
		LogicalResourceID:  ev.LogicalResourceID,
		Data:               o.Data,
	}
}
