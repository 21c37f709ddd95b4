// Package vat assigns a tax rate to every credit-note item and derives
// the document-level tax category.
//
// With zero brackets the document is exempt and a single synthetic
// bracket covers the gross total. With one bracket every item shares its
// rate. With two brackets the engine decides per item whether the item's
// total belongs to the second bracket's taxable base, by searching for a
// subset of item totals that sums exactly to that base.
package vat

import (
	"math"

	"github.com/smt-joen/plunet2peppol/internal/model"
)

// Tax category codes written on tax subtotals and line items.
const (
	CategoryStandard = "S"
	CategoryExempt   = "E"
)

// Result is the per-document outcome of attribution. It is a plain value,
// never shared between documents.
type Result struct {
	// Brackets is the bracket list to emit, including the synthetic
	// exemption bracket when the input had none.
	Brackets []model.VATTotal
	// Category is the tax category code used everywhere in the document.
	Category string
	// Rates holds one rate per input item, in input order.
	Rates []float64
}

// Categorize resolves the bracket list and tax category without rating
// items. Invoices only need this: their price lines arrive already rated.
func Categorize(brackets []model.VATTotal, grossTotal float64) ([]model.VATTotal, string) {
	if len(brackets) == 0 {
		return []model.VATTotal{{Base: grossTotal, Rate: 0, Amount: 0}}, CategoryExempt
	}
	return brackets, CategoryStandard
}

// Attribute assigns a tax rate to every item of a credit note.
func Attribute(items []model.Item, brackets []model.VATTotal, grossTotal float64) Result {
	resolved, category := Categorize(brackets, grossTotal)
	res := Result{
		Brackets: resolved,
		Category: category,
		Rates:    make([]float64, len(items)),
	}

	switch len(brackets) {
	case 0:
		// Exempt: synthetic bracket, rate zero everywhere.
	case 1:
		for i := range res.Rates {
			res.Rates[i] = brackets[0].Rate
		}
	default:
		res.attributeTwoRates(items, brackets)
	}
	return res
}

// attributeTwoRates matches a subset of item totals against the second
// bracket's taxable base. Matched items get the second rate, everything
// else the first. If no subset sums exactly to the base, every item
// silently defaults to the first rate.
func (r *Result) attributeTwoRates(items []model.Item, brackets []model.VATTotal) {
	totals := make([]float64, 0, len(items))
	for _, item := range items {
		if item.Total != 0 && !math.IsNaN(item.Total) {
			totals = append(totals, item.Total)
		}
	}

	// Duplicate totals are tracked by count so a value matched once is
	// only attributed once per occurrence in the subset.
	remaining := make(map[float64]int)
	for _, v := range findSubset(totals, brackets[1].Base) {
		remaining[v]++
	}

	for i, item := range items {
		r.Rates[i] = brackets[0].Rate
		if remaining[item.Total] > 0 {
			r.Rates[i] = brackets[1].Rate
			remaining[item.Total]--
		}
	}
}

// findSubset returns the first subset of totals summing exactly to target,
// found by a depth-first search that tries including each value before
// excluding it, in input order. Branches whose running sum would exceed
// the target are pruned; all totals are non-negative. Returns nil when no
// subset matches.
func findSubset(totals []float64, target float64) []float64 {
	var result []float64
	found := false

	var fork func(i int, sum float64, picked []float64)
	fork = func(i int, sum float64, picked []float64) {
		if found {
			return
		}
		if sum == target {
			result = append([]float64(nil), picked...)
			found = true
			return
		}
		if i == len(totals) {
			return
		}
		if sum+totals[i] <= target {
			fork(i+1, sum+totals[i], append(picked, totals[i]))
		}
		fork(i+1, sum, picked)
	}

	fork(0, 0, nil)
	return result
}
