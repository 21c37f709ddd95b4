// Package lineitem reconstructs structured price lines from the free-text
// subject lines of credit-note items.
//
// Two subject shapes are recognized. A subtotal line ("<n>.<TAB><text>")
// opens a new item: it becomes the current holder and, when the item
// carries a total, emits one price line for that full total. A fielded
// line ("<qty> <unit-word>... <amount>") belongs to the most recent
// holder: its parsed price line is appended to the holder and the item
// itself is flagged to be skipped, since its numbers are already folded
// into the holder's context. Items matching neither shape are aggregation
// markers and emit nothing.
package lineitem

import (
	"math"
	"regexp"
	"strconv"

	"github.com/smt-joen/plunet2peppol/internal/codes"
	"github.com/smt-joen/plunet2peppol/internal/model"
	"github.com/smt-joen/plunet2peppol/internal/money"
	"github.com/smt-joen/plunet2peppol/internal/normalize"
)

var (
	// "12.<TAB>Translation German-Swedish"
	subtotalPattern = regexp.MustCompile(`^(\d+\.)\t(.+)`)
	// "5 hours proofreading 1 200,50" — the trailing numeric group is the
	// unit price, the first word after the quantity is the unit.
	fieldedPattern = regexp.MustCompile(`^(\d+)(\s([a-z%]+).+?)([0-9\s,]+)$`)
)

// Reconstruct parses every item subject into price lines, in input order.
// rates holds the attributed VAT rate per item. Items are mutated in
// place: holders get Number, Description and PriceLines, fielded items
// get Skip.
//
// The running holder is carried explicitly through the fold so the
// attachment rule stays auditable: a fielded line always lands on the
// holder opened by the closest preceding subtotal line.
func Reconstruct(items []model.Item, rates []float64, currency string) {
	holder := -1
	for i := range items {
		item := &items[i]

		if m := subtotalPattern.FindStringSubmatch(item.Subject); m != nil {
			holder = i
			item.Number = m[1]
			item.Description = m[2]
			item.PriceLines = nil
			if item.Total != 0 && !math.IsNaN(item.Total) {
				item.PriceLines = append(item.PriceLines, model.PriceLine{
					Quantity:  1,
					Unit:      codes.UnitEach,
					Name:      m[2],
					Price:     money.Format(item.Total) + " " + currency,
					UnitPrice: item.Total,
					Total:     item.Total,
					VATRate:   rates[i],
				})
			}
			continue
		}

		if m := fieldedPattern.FindStringSubmatch(item.Subject); m != nil {
			item.Skip = true
			if holder < 0 {
				// A fielded line before any subtotal line has no item to
				// attach to; drop it.
				continue
			}
			qty, _ := strconv.ParseFloat(m[1], 64)
			items[holder].PriceLines = append(items[holder].PriceLines, model.PriceLine{
				Quantity:  qty,
				Unit:      m[3],
				Name:      m[2],
				Price:     m[4] + currency,
				UnitPrice: normalize.ParseNumber(m[4]),
				Total:     item.Total,
				VATRate:   rates[i],
			})
			continue
		}

		// Neither shape: a pure aggregation marker, excluded from
		// line emission.
		item.Skip = true
	}
}
