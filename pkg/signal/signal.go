// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

// Package signal delivers the invocation outcome to the CloudFormation
// callback URL. Delivery is attempted exactly once: the callback is a
// presigned S3 PUT addressed uniquely per invocation, and a dropped signal is
// the accepted degraded outcome — the orchestrator's own timeout recovers it,
// whereas a synthesized or duplicated signal could not be recovered at all.
package signal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// Outcome statuses understood by CloudFormation.
const (
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

// Response is the outcome document PUT to the callback URL.
type Response struct {
	Status             string         `json:"Status"`
	Reason             string         `json:"Reason,omitempty"`
	PhysicalResourceID string         `json:"PhysicalResourceId"`
	StackID            string         `json:"StackId"`
	RequestID          string         `json:"RequestId"`
	LogicalResourceID  string         `json:"LogicalResourceId"`
	Data               map[string]any `json:"Data,omitempty"`
}

// SignalDeliveryError reports a failed delivery attempt. It is never
// converted into a second outcome; the surrounding runtime surfaces it.
type SignalDeliveryError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *SignalDeliveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("signal: delivery to %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("signal: delivery to %s failed with status %d", e.URL, e.StatusCode)
}

func (e *SignalDeliveryError) Unwrap() error { return e.Err }

// Signaler performs single-attempt outcome deliveries.
type Signaler struct {
	client *http.Client
	log    *slog.Logger
}

// New returns a Signaler using the given HTTP client, or http.DefaultClient
// when nil. The invocation context bounds each delivery.
func New(client *http.Client, log *slog.Logger) *Signaler {
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		log = slog.Default()
	}
	return &Signaler{client: client, log: log}
}

// Deliver PUTs the response document to url. The Content-Type header must be
// explicitly empty: the presigned URL was signed without one, and S3 rejects
// the upload otherwise.
func (s *Signaler) Deliver(ctx context.Context, url string, resp Response) error {
	body, err := json.Marshal(resp)
	if err != nil {
		return &SignalDeliveryError{URL: url, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return &SignalDeliveryError{URL: url, Err: err}
	}
	req.Header.Set("Content-Type", "")
	req.ContentLength = int64(len(body))

	res, err := s.client.Do(req)
	if err != nil {
		s.log.Error("signal delivery failed", "url", url, "error", err)
		return &SignalDeliveryError{URL: url, Err: err}
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		s.log.Error("signal rejected", "url", url, "status", res.StatusCode)
		return &SignalDeliveryError{URL: url, StatusCode: res.StatusCode}
	}

	s.log.Info("signal delivered", "status", resp.Status, "physicalResourceId", resp.PhysicalResourceID)
	return nil
}
