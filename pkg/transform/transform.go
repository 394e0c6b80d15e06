// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

// Package transform implements the CloudFormation macro that rewrites
// friendly custom resource types into generic custom resources bound to the
// hook Lambda. A declared type like
//
//	CustomResources::Boto::Hook
//
// becomes AWS::CloudFormation::CustomResource with Properties.ServiceToken
// set to the endpoint registered for the "Boto::Hook" suffix.
package transform

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/platform-engineering-labs/cfn-boto-hook/pkg/config"
)

// CustomResourceType is the generic type every intercepted resource becomes.
const CustomResourceType = "AWS::CloudFormation::CustomResource"

// Transform statuses understood by CloudFormation macros.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Request is the inbound macro invocation.
type Request struct {
	AccountID               string         `json:"accountId"`
	Fragment                map[string]any `json:"fragment"`
	TransformID             string         `json:"transformId"`
	RequestID               string         `json:"requestId"`
	Region                  string         `json:"region"`
	Params                  map[string]any `json:"params,omitempty"`
	TemplateParameterValues map[string]any `json:"templateParameterValues,omitempty"`
}

// Response is the outbound macro result. On failure the fragment is returned
// untouched so CloudFormation reports a precise validation error instead of
// applying a partial rewrite.
type Response struct {
	RequestID    string         `json:"requestId"`
	Status       string         `json:"status"`
	Fragment     map[string]any `json:"fragment"`
	ErrorMessage string         `json:"errorMessage,omitempty"`
}

// UnknownResourceTypeError reports a prefixed type with no service token
// entry. It aborts the whole transform.
type UnknownResourceTypeError struct {
	LogicalID string
	Type      string
}

func (e *UnknownResourceTypeError) Error() string {
	return fmt.Sprintf("transform: resource %q declares type %q but no service token is registered for it", e.LogicalID, e.Type)
}

// Rewriter rewrites template fragments according to the process-wide prefix
// and service token map. Read-only after construction.
type Rewriter struct {
	prefix string
	tokens map[string]string
	log    *slog.Logger
}

// NewRewriter builds a Rewriter from the process configuration.
func NewRewriter(cfg *config.Config, log *slog.Logger) *Rewriter {
	if log == nil {
		log = slog.Default()
	}
	return &Rewriter{prefix: cfg.ResourceTypePrefix, tokens: cfg.ServiceTokens, log: log}
}

// Transform handles one macro invocation, converting any rewrite error into
// a failure response carrying the original fragment.
func (rw *Rewriter) Transform(req Request) Response {
	if err := rw.RewriteFragment(req.Fragment); err != nil {
		rw.log.Error("transform failed", "requestId", req.RequestID, "error", err)
		return Response{
			RequestID:    req.RequestID,
			Status:       StatusFailure,
			Fragment:     req.Fragment,
			ErrorMessage: err.Error(),
		}
	}
	return Response{
		RequestID: req.RequestID,
		Status:    StatusSuccess,
		Fragment:  req.Fragment,
	}
}

// RewriteFragment rewrites the fragment's Resources section in place. Every
// matching resource is validated before any is mutated, so a failed transform
// never leaves a partial rewrite behind. Non-matching resources are left
// untouched, by reference.
func (rw *Rewriter) RewriteFragment(fragment map[string]any) error {
	if rw.prefix == "" {
		return fmt.Errorf("transform: no resource type prefix configured (%s)", config.EnvResourceTypePrefix)
	}
	resources, ok := fragment["Resources"].(map[string]any)
	if !ok {
		return fmt.Errorf("transform: fragment has no Resources section")
	}

	type rewrite struct {
		def   map[string]any
		token string
	}
	pending := make(map[string]rewrite)

	for logicalID, raw := range resources {
		def, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		declared, ok := def["Type"].(string)
		if !ok || !strings.HasPrefix(declared, rw.prefix) {
			continue
		}
		suffix := strings.TrimPrefix(declared, rw.prefix)
		token, ok := rw.tokens[suffix]
		if !ok {
			return &UnknownResourceTypeError{LogicalID: logicalID, Type: declared}
		}
		pending[logicalID] = rewrite{def: def, token: token}
	}

	for logicalID, r := range pending {
		r.def["Type"] = CustomResourceType
		props, _ := r.def["Properties"].(map[string]any)
		if props == nil {
			props = map[string]any{}
			r.def["Properties"] = props
		}
		props["ServiceToken"] = r.token
		rw.log.Debug("rewrote resource", "logicalResourceId", logicalID, "serviceToken", r.token)
	}
	return nil
}
