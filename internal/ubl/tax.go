package ubl

import (
	"github.com/beevik/etree"

	"github.com/smt-joen/plunet2peppol/internal/model"
	"github.com/smt-joen/plunet2peppol/internal/money"
)

// Fixed reason written on exempt tax categories.
const exemptionReason = "Exempt"

// appendTaxTotal emits the tax total with one subtotal per bracket. The
// total tax amount is gross minus net at minor-unit precision; the
// invariant is that it equals the sum of the bracket amounts.
func appendTaxTotal(parent *etree.Element, brackets []model.VATTotal, category string, grossTotal, netTotal float64, currency string) {
	taxTotal := parent.CreateElement("cac:TaxTotal")

	taxAmount := taxTotal.CreateElement("cbc:TaxAmount")
	taxAmount.CreateAttr("currencyID", currency)
	taxAmount.SetText(money.FormatFixed2(grossTotal - netTotal))

	for _, b := range brackets {
		sub := taxTotal.CreateElement("cac:TaxSubtotal")
		amount(sub, "cbc:TaxableAmount", b.Base, currency)
		amount(sub, "cbc:TaxAmount", b.Amount, currency)

		cat := sub.CreateElement("cac:TaxCategory")
		text(cat, "cbc:ID", category)
		text(cat, "cbc:Percent", money.Format(b.Rate))
		if isExempt(category) {
			text(cat, "cbc:TaxExemptionReason", exemptionReason)
		}
		text(cat.CreateElement("cac:TaxScheme"), "cbc:ID", "VAT")
	}
}

// appendMonetaryTotal emits the four monetary nodes, all driven by the
// net and gross totals.
func appendMonetaryTotal(parent *etree.Element, netTotal, grossTotal float64, currency string) {
	totals := parent.CreateElement("cac:LegalMonetaryTotal")
	amount(totals, "cbc:LineExtensionAmount", netTotal, currency)
	amount(totals, "cbc:TaxExclusiveAmount", netTotal, currency)
	amount(totals, "cbc:TaxInclusiveAmount", grossTotal, currency)
	amount(totals, "cbc:PayableAmount", grossTotal, currency)
}
