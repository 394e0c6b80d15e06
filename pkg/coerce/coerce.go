// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

// Package coerce resolves type-tagged markers inside loosely-typed parameter
// trees. CloudFormation maps every custom resource property to a string, so
// template authors tag values that must reach the AWS API as real scalars:
//
//	{"MaxResults": {"Type::Int": "300"}}
//
// Resolve rewrites each marker into the parsed scalar and leaves every other
// part of the tree untouched.
package coerce

import (
	"fmt"
	"strconv"
	"strings"
)

// Marker keys recognized inside single-key mappings.
const (
	MarkerInt   = "Type::Int"
	MarkerFloat = "Type::Float"
	MarkerBool  = "Type::Bool"
)

// CoercionError reports a marker whose string literal could not be parsed as
// the declared type.
type CoercionError struct {
	Marker string
	Value  any
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("coerce: cannot parse %v as %s", e.Value, e.Marker)
}

// Resolve returns an equivalent tree where every coercion marker has been
// replaced by its parsed scalar. A mapping counts as a marker only when it has
// exactly one key and that key is one of the recognized marker names; anything
// else (extra keys, unrecognized single keys such as API-native "Type::*"
// fields) passes through as ordinary data. The input is never mutated.
func Resolve(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		if marker, raw, ok := markerOf(t); ok {
			return parseMarker(marker, raw)
		}
		out := make(map[string]any, len(t))
		for k, child := range t {
			resolved, err := Resolve(child)
			if err != nil {
				return nil, err
			}
			out[k] = resolved
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, child := range t {
			resolved, err := Resolve(child)
			if err != nil {
				return nil, err
			}
			out[i] = resolved
		}
		return out, nil
	default:
		return v, nil
	}
}

func markerOf(m map[string]any) (marker string, raw any, ok bool) {
	if len(m) != 1 {
		return "", nil, false
	}
	for k, v := range m {
		switch k {
		case MarkerInt, MarkerFloat, MarkerBool:
			return k, v, true
		}
	}
	return "", nil, false
}

func parseMarker(marker string, raw any) (any, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, &CoercionError{Marker: marker, Value: raw}
	}

	switch marker {
	case MarkerInt:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, &CoercionError{Marker: marker, Value: s}
		}
		return n, nil
	case MarkerFloat:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, &CoercionError{Marker: marker, Value: s}
		}
		return f, nil
	case MarkerBool:
		switch strings.ToLower(s) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, &CoercionError{Marker: marker, Value: s}
	}
	// markerOf only yields recognized names.
	return nil, &CoercionError{Marker: marker, Value: raw}
}
