// Package money wraps shopspring/decimal for the rounding and formatting
// the document builder needs. Amounts travel through the pipeline as
// float64 so that a failed numeric parse can propagate as NaN; decimal is
// used at the points where currency rounding matters.
package money

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Round2 rounds to the currency minor unit (2 places). NaN passes through.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Format renders an amount the way it appears in the output document:
// the shortest exact representation, no trailing zeros. NaN renders as
// "NaN" so that a propagated parse fault stays visible in the output.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatFixed2 renders an amount with exactly two decimal places.
func FormatFixed2(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Format(v)
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}
