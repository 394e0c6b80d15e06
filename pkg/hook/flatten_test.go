// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package hook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlatten_NestedMapsAndLists(t *testing.T) {
	in := map[string]any{
		"ChangeInfo": map[string]any{
			"Id":     "C1",
			"Status": "PENDING",
		},
		"DelegationSet": map[string]any{
			"NameServers": []any{"ns-1.example", "ns-2.example"},
		},
		"Location": "https://route53/hostedzone/Z1",
	}

	out := Flatten(in)

	assert.Equal(t, map[string]any{
		"ChangeInfo.Id":               "C1",
		"ChangeInfo.Status":           "PENDING",
		"DelegationSet.NameServers.0": "ns-1.example",
		"DelegationSet.NameServers.1": "ns-2.example",
		"Location":                    "https://route53/hostedzone/Z1",
	}, out)
}

func TestFlatten_EmptyTree(t *testing.T) {
	assert.Empty(t, Flatten(map[string]any{}))
}

func TestFlatten_ScalarsKeepTheirTypes(t *testing.T) {
	out := Flatten(map[string]any{
		"Enabled": true,
		"Count":   float64(3),
	})

	assert.Equal(t, true, out["Enabled"])
	assert.Equal(t, float64(3), out["Count"])
}
