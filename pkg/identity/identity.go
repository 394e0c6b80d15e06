// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

// Package identity derives the durable PhysicalResourceId from an operation
// response by evaluating a JMESPath expression against it.
package identity

import (
	"fmt"
	"strconv"

	"github.com/jmespath/go-jmespath"
)

// ExtractionError reports an identity expression that did not resolve to a
// usable scalar. Once an expression has been supplied there is no fallback:
// a silently defaulted identity would mask shape drift in the API response
// and misreference the resource forever after.
type ExtractionError struct {
	Expression string
	Reason     string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("identity: expression %q: %s", e.Expression, e.Reason)
}

// Extract evaluates expr against the response tree and returns the identity
// string. An empty expression returns fallback verbatim, regardless of the
// response content. Numbers and booleans are formatted; empty strings,
// missing paths, and non-scalar results fail with ExtractionError.
func Extract(expr string, response map[string]any, fallback string) (string, error) {
	if expr == "" {
		return fallback, nil
	}

	result, err := jmespath.Search(expr, map[string]any(response))
	if err != nil {
		return "", &ExtractionError{Expression: expr, Reason: err.Error()}
	}

	switch v := result.(type) {
	case string:
		if v == "" {
			return "", &ExtractionError{Expression: expr, Reason: "resolved to an empty string"}
		}
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", &ExtractionError{Expression: expr, Reason: "did not resolve to any value"}
	default:
		return "", &ExtractionError{Expression: expr, Reason: fmt.Sprintf("resolved to non-scalar %T", result)}
	}
}
