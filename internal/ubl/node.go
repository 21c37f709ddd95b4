package ubl

import (
	"github.com/beevik/etree"

	"github.com/smt-joen/plunet2peppol/internal/money"
)

// text appends a child element with text content, or nothing at all when
// the value is absent. The schema forbids empty elements.
func text(parent *etree.Element, tag, value string) *etree.Element {
	if value == "" {
		return nil
	}
	el := parent.CreateElement(tag)
	el.SetText(value)
	return el
}

// amount appends a monetary child element carrying a currencyID attribute.
func amount(parent *etree.Element, tag string, v float64, currency string) *etree.Element {
	el := parent.CreateElement(tag)
	el.CreateAttr("currencyID", currency)
	el.SetText(money.Format(v))
	return el
}
