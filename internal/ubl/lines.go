package ubl

import (
	"fmt"
	"math"
	"strconv"

	"github.com/beevik/etree"

	"github.com/smt-joen/plunet2peppol/internal/codes"
	"github.com/smt-joen/plunet2peppol/internal/model"
	"github.com/smt-joen/plunet2peppol/internal/money"
)

// appendDocumentLines emits one line node per emitted price line.
// Items flagged skip contribute no line of their own (their price lines
// were folded into a holder during reconstruction). Price lines with
// quantity zero are informational subtotal rows and are dropped.
func appendDocumentLines(root *etree.Element, lineTag, quantityTag string, items []model.Item, currency, category string) {
	for _, item := range items {
		if item.Skip {
			continue
		}
		lineNumber := 1
		for _, pl := range item.PriceLines {
			if pl.Quantity == 0 {
				continue
			}

			// Line ids are the owning item's number concatenated with a
			// per-item index starting at 1.
			lineID := item.Number + strconv.Itoa(lineNumber)
			lineNumber++

			// Percentage surcharges and discounts arrive with a zero unit
			// price; recover it from the line total. Quantity is non-zero
			// here, but the total may be a propagated NaN, which is the
			// one place a fault is forced back to zero.
			if pl.UnitPrice == 0 {
				pl.UnitPrice = money.Round2(pl.Total / pl.Quantity)
				if math.IsNaN(pl.UnitPrice) {
					pl.UnitPrice = 0
				}
			}

			line := root.CreateElement(lineTag)
			text(line, "cbc:ID", lineID)

			quantity := line.CreateElement(quantityTag)
			quantity.CreateAttr("unitCode", codes.UnitCode(pl.Unit))
			quantity.SetText(money.Format(pl.Quantity))

			amount(line, "cbc:LineExtensionAmount", pl.Total, currency)
			text(line, "cbc:AccountingCost", item.CostCenter)
			if item.PO != "" {
				text(line.CreateElement("cac:OrderLineReference"), "cbc:LineID", item.PO)
			}

			itemEl := line.CreateElement("cac:Item")
			text(itemEl, "cbc:Description", item.Description)
			text(itemEl, "cbc:Name", fmt.Sprintf("%s %s %s ", money.Format(pl.Quantity), pl.Name, pl.Price))

			cat := itemEl.CreateElement("cac:ClassifiedTaxCategory")
			text(cat, "cbc:ID", category)
			if pl.HasVATRate() {
				text(cat, "cbc:Percent", money.Format(pl.VATRate))
			}
			text(cat.CreateElement("cac:TaxScheme"), "cbc:ID", "VAT")

			amount(line.CreateElement("cac:Price"), "cbc:PriceAmount", pl.UnitPrice, currency)
		}
	}
}
