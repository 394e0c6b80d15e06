// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package awsops

import (
	"errors"
	"strings"

	"github.com/aws/smithy-go"
)

// ClassifyError maps an AWS SDK failure to a human-readable fault category
// used in FAILED signal reasons. Smithy API error codes are consulted first;
// the substring fallback covers transport faults and services that wrap their
// codes in free-form messages.
func ClassifyError(err error) string {
	if err == nil {
		return ""
	}

	var apiErr smithy.APIError
	code := ""
	if errors.As(err, &apiErr) {
		code = apiErr.ErrorCode()
	}
	probe := code + " " + err.Error()

	switch {
	case containsAny(probe, "NoSuchEntity", "NoSuchBucket", "NoSuchHostedZone", "NotFound", "404"):
		return "not found"

	case containsAny(probe, "AccessDenied", "AuthorizationFailed", "Forbidden", "403"):
		return "access denied"

	case containsAny(probe, "UnrecognizedClientException", "InvalidClientTokenId", "ExpiredToken", "AuthFailure", "401"):
		return "invalid credentials"

	case containsAny(probe, "Throttling", "TooManyRequests", "SlowDown", "RequestLimitExceeded", "429"):
		return "throttling"

	case containsAny(probe, "EntityAlreadyExists", "BucketAlreadyExists", "BucketAlreadyOwnedByYou", "ConflictingDomainExists", "Conflict", "409"):
		return "conflict"

	case containsAny(probe, "LimitExceeded", "QuotaExceeded", "TooManyHostedZones"):
		return "limit exceeded"

	case containsAny(probe, "ValidationError", "ValidationException", "InvalidInput", "InvalidParameter", "MalformedPolicyDocument", "InvalidChangeBatch", "400"):
		return "invalid request"

	case containsAny(probe, "RequestTimeout", "GatewayTimeout", "deadline exceeded", "Timeout"):
		return "timeout"

	case containsAny(probe, "InternalServiceError", "InternalFailure", "ServiceUnavailable", "InternalError", "500", "503"):
		return "service internal error"

	case containsAny(probe, "connection refused", "no such host", "dial tcp", "network"):
		return "network failure"

	default:
		return "service error"
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
