// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package awsops

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

// fakeAPIError implements smithy.APIError for classification tests.
type fakeAPIError struct {
	code    string
	message string
}

func (e *fakeAPIError) Error() string {
	return fmt.Sprintf("api error %s: %s", e.code, e.message)
}

func (e *fakeAPIError) ErrorCode() string             { return e.code }
func (e *fakeAPIError) ErrorMessage() string          { return e.message }
func (e *fakeAPIError) ErrorFault() smithy.ErrorFault { return smithy.FaultUnknown }

func TestClassifyError_APIErrorCodes(t *testing.T) {
	cases := map[string]struct {
		code string
		want string
	}{
		"not found":    {"NoSuchHostedZone", "not found"},
		"denied":       {"AccessDenied", "access denied"},
		"credentials":  {"UnrecognizedClientException", "invalid credentials"},
		"throttle":     {"Throttling", "throttling"},
		"conflict":     {"EntityAlreadyExists", "conflict"},
		"limit":        {"TooManyHostedZones", "limit exceeded"},
		"validation":   {"InvalidChangeBatch", "invalid request"},
		"server fault": {"ServiceUnavailable", "service internal error"},
		"unknown":      {"SomethingNovel", "service error"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := &fakeAPIError{code: tc.code, message: "detail"}
			assert.Equal(t, tc.want, ClassifyError(err))
		})
	}
}

func TestClassifyError_TransportErrors(t *testing.T) {
	assert.Equal(t, "network failure", ClassifyError(errors.New("dial tcp 10.0.0.1:443: connection refused")))
	assert.Equal(t, "timeout", ClassifyError(errors.New("context deadline exceeded")))
	assert.Equal(t, "", ClassifyError(nil))
}

func TestClassifyError_WrappedAPIError(t *testing.T) {
	err := fmt.Errorf("invoke: %w", &fakeAPIError{code: "NoSuchBucket", message: "gone"})
	assert.Equal(t, "not found", ClassifyError(err))
}
