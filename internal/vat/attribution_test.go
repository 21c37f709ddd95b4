package vat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smt-joen/plunet2peppol/internal/model"
	"github.com/smt-joen/plunet2peppol/internal/vat"
)

func itemsWithTotals(totals ...float64) []model.Item {
	items := make([]model.Item, len(totals))
	for i, total := range totals {
		items[i] = model.Item{Total: total}
	}
	return items
}

func TestAttribute_NoBrackets_SynthesizesExemption(t *testing.T) {
	items := itemsWithTotals(50, 75)

	res := vat.Attribute(items, nil, 125)

	assert.Equal(t, vat.CategoryExempt, res.Category)
	require.Len(t, res.Brackets, 1)
	assert.Equal(t, model.VATTotal{Base: 125, Rate: 0, Amount: 0}, res.Brackets[0])
	assert.Equal(t, []float64{0, 0}, res.Rates)
}

func TestAttribute_OneBracket_SharedRate(t *testing.T) {
	items := itemsWithTotals(50, 50)
	brackets := []model.VATTotal{{Base: 100, Rate: 25, Amount: 25}}

	res := vat.Attribute(items, brackets, 125)

	assert.Equal(t, vat.CategoryStandard, res.Category)
	assert.Equal(t, brackets, res.Brackets)
	assert.Equal(t, []float64{25, 25}, res.Rates)
}

func TestAttribute_TwoBrackets(t *testing.T) {
	brackets := func(base2 float64) []model.VATTotal {
		return []model.VATTotal{
			{Base: 100, Rate: 25, Amount: 25},
			{Base: base2, Rate: 6, Amount: base2 * 0.06},
		}
	}

	tests := []struct {
		name     string
		totals   []float64
		base2    float64
		expected []float64
	}{
		{
			name:     "single-element exact match",
			totals:   []float64{10, 20, 30},
			base2:    30,
			expected: []float64{25, 25, 6},
		},
		{
			name:     "two-element subset",
			totals:   []float64{10, 15, 30},
			base2:    25,
			expected: []float64{6, 6, 25},
		},
		{
			name:     "no exact subset defaults everything to rate one",
			totals:   []float64{10, 20, 30},
			base2:    25,
			expected: []float64{25, 25, 25},
		},
		{
			name:     "duplicate totals attributed once per occurrence",
			totals:   []float64{50, 50, 50},
			base2:    100,
			expected: []float64{6, 6, 25},
		},
		{
			name:     "zero totals never match",
			totals:   []float64{0, 30},
			base2:    30,
			expected: []float64{25, 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := vat.Attribute(itemsWithTotals(tt.totals...), brackets(tt.base2), 0)
			assert.Equal(t, tt.expected, res.Rates)
		})
	}
}

func TestAttribute_Deterministic(t *testing.T) {
	// The search accepts the first subset under a fixed exploration
	// order, so repeated runs over the same input must agree.
	brackets := []model.VATTotal{
		{Base: 80, Rate: 25, Amount: 20},
		{Base: 20, Rate: 6, Amount: 1.2},
	}

	first := vat.Attribute(itemsWithTotals(80, 20), brackets, 121.2)
	for i := 0; i < 5; i++ {
		again := vat.Attribute(itemsWithTotals(80, 20), brackets, 121.2)
		assert.Equal(t, first.Rates, again.Rates)
	}
	assert.Equal(t, []float64{25, 6}, first.Rates)
}

func TestCategorize(t *testing.T) {
	brackets, category := vat.Categorize(nil, 200)
	assert.Equal(t, vat.CategoryExempt, category)
	require.Len(t, brackets, 1)
	assert.Equal(t, model.VATTotal{Base: 200}, brackets[0])

	in := []model.VATTotal{{Base: 100, Rate: 25, Amount: 25}}
	brackets, category = vat.Categorize(in, 125)
	assert.Equal(t, vat.CategoryStandard, category)
	assert.Equal(t, in, brackets)
}
