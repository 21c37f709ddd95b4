package normalize_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smt-joen/plunet2peppol/internal/normalize"
)

func TestNormalize_BlankStringsBecomeAbsent(t *testing.T) {
	tree := map[string]any{
		"name":  "Byrå AB",
		"city":  "   ",
		"empty": "",
		"tabs":  "\t\n ",
		"seller": map[string]any{
			"contactName": " ",
			"country":     "Sweden",
		},
		"items": []any{
			map[string]any{"itemSubject": "  ", "itemDescription": "kept"},
			"   ",
		},
	}

	normalize.Normalize(tree)

	assert.Equal(t, "Byrå AB", tree["name"])
	assert.Nil(t, tree["city"])
	assert.Nil(t, tree["empty"])
	assert.Nil(t, tree["tabs"])

	seller := tree["seller"].(map[string]any)
	assert.Nil(t, seller["contactName"])
	assert.Equal(t, "Sweden", seller["country"])

	items := tree["items"].([]any)
	first := items[0].(map[string]any)
	assert.Nil(t, first["itemSubject"])
	assert.Equal(t, "kept", first["itemDescription"])
	assert.Nil(t, items[1])
}

func TestNormalize_MarkerFields(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected float64
	}{
		{"plain integer", "125", 125},
		{"decimal comma", "1,5", 1.5},
		{"thousands spaces and percent", "1 234,50 %", 1234.5},
		{"only a percent sign", "%", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := map[string]any{"grossTotal_": tt.value}
			normalize.Normalize(tree)
			assert.Equal(t, tt.expected, tree["grossTotal_"])
		})
	}
}

func TestNormalize_BlankMarkerFieldBecomesAbsent(t *testing.T) {
	tree := map[string]any{"grossTotal_": "  "}
	normalize.Normalize(tree)
	assert.Nil(t, tree["grossTotal_"], "blank wins over the marker rule")
}

func TestNormalize_MalformedMarkerFieldBecomesNaN(t *testing.T) {
	tree := map[string]any{"netTotal_": "one hundred"}
	normalize.Normalize(tree)

	v, ok := tree["netTotal_"].(float64)
	require.True(t, ok, "marker field should be numeric after normalization")
	assert.True(t, math.IsNaN(v), "unparseable text should normalize to NaN, not zero")
}

func TestNormalize_MarkerRecursionStopsAtNestedMappings(t *testing.T) {
	tree := map[string]any{
		// A marker-looking key inside a nested mapping stays textual:
		// only list elements are recursed for numeric conversion.
		"seller": map[string]any{"bankgiro_no": "5402-9681"},
		"VATTotals": []any{
			map[string]any{"VATBase_": "80", "VATRate_": "25"},
		},
		"items": []any{
			map[string]any{
				"itemTotal_": "50",
				"itemPriceLines": []any{
					map[string]any{"linePriceOnly_": "12,50"},
				},
			},
		},
	}

	normalize.Normalize(tree)

	seller := tree["seller"].(map[string]any)
	assert.Equal(t, "5402-9681", seller["bankgiro_no"])

	bracket := tree["VATTotals"].([]any)[0].(map[string]any)
	assert.Equal(t, float64(80), bracket["VATBase_"])
	assert.Equal(t, float64(25), bracket["VATRate_"])

	item := tree["items"].([]any)[0].(map[string]any)
	assert.Equal(t, float64(50), item["itemTotal_"])
	line := item["itemPriceLines"].([]any)[0].(map[string]any)
	assert.Equal(t, 12.5, line["linePriceOnly_"])
}

func TestNormalize_Idempotent(t *testing.T) {
	tree := map[string]any{
		"name":        "Byrå AB",
		"city":        "  ",
		"grossTotal_": "121,2",
		"items": []any{
			map[string]any{"itemTotal_": "80", "itemSubject": ""},
		},
	}

	normalize.Normalize(tree)
	want := map[string]any{
		"name":        "Byrå AB",
		"city":        nil,
		"grossTotal_": 121.2,
		"items": []any{
			map[string]any{"itemTotal_": float64(80), "itemSubject": nil},
		},
	}
	require.Equal(t, want, tree)

	normalize.Normalize(tree)
	assert.Equal(t, want, tree, "normalizing an already-normalized tree must be a no-op")
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"800", 800},
		{"1 500,75", 1500.75},
		{"25 %", 25},
		{"1 234,50 %", 1234.5},
		{"", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, normalize.ParseNumber(tt.input), "input %q", tt.input)
	}

	assert.True(t, math.IsNaN(normalize.ParseNumber("12.34.5")))
	assert.True(t, math.IsNaN(normalize.ParseNumber("abc")))
}
