// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package hook

import "strconv"

// Flatten rewrites a response tree into a single-level map with dotted keys
// (list elements indexed numerically), the shape Fn::GetAtt needs to address
// individual attributes:
//
//	{"ChangeInfo": {"Id": "C1"}}  ->  {"ChangeInfo.Id": "C1"}
//	{"Zones": ["a", "b"]}         ->  {"Zones.0": "a", "Zones.1": "b"}
func Flatten(tree map[string]any) map[string]any {
	out := make(map[string]any, len(tree))
	for k, v := range tree {
		flattenInto(out, k, v)
	}
	return out
}

func flattenInto(out map[string]any, prefix string, v any) {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			flattenInto(out, prefix+"."+k, child)
		}
	case []any:
		for i, child := range t {
			flattenInto(out, prefix+"."+strconv.Itoa(i), child)
		}
	default:
		out[prefix] = v
	}
}
