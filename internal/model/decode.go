package model

import (
	"math"
	"strconv"
)

// Decoding of normalized loose trees into the typed structs. Field names
// follow the hand-typed record format: numeric fields carry an underscore
// in their key and have already been converted to float64 by the
// normalizer, so the accessors below only bridge types, they never parse.

// InvoiceFromTree decodes a normalized invoice sub-record.
func InvoiceFromTree(m map[string]any) *Invoice {
	inv := &Invoice{
		Number:      str(m, "invoiceNumber"),
		IssueDate:   str(m, "invoiceDate"),
		DueDate:     str(m, "dueDate"),
		ProjectName: str(m, "invoiceProjectName"),
		Currency:    str(m, "currency"),
		PO:          str(m, "invoicePO"),
		CostCenter:  str(m, "invoiceCostCenter"),
		Buyer:       partyFromTree(m),
		NetTotal:    num(m, "netTotal_"),
		GrossTotal:  num(m, "grossTotal_"),
	}
	if seller, ok := m["seller"].(map[string]any); ok {
		inv.Seller = partyFromTree(seller)
	}
	inv.VATTotals = vatTotalsFromTree(m)
	inv.Items = itemsFromTree(m)
	return inv
}

// CreditNoteFromTree decodes a normalized credit-note sub-record.
func CreditNoteFromTree(m map[string]any) *CreditNote {
	cdn := &CreditNote{
		Number:        str(m, "creditNoteNumber"),
		IssueDate:     str(m, "creditDate"),
		ProjectName:   str(m, "creditProjectName"),
		Currency:      str(m, "currency"),
		PO:            str(m, "creditPO"),
		InvoiceNumber: str(m, "invoiceNo"),
		Buyer:         partyFromTree(m),
		NetTotal:      num(m, "netTotal_"),
		GrossTotal:    num(m, "grossTotal_"),
	}
	if seller, ok := m["seller"].(map[string]any); ok {
		cdn.Seller = partyFromTree(seller)
	}
	cdn.VATTotals = vatTotalsFromTree(m)
	cdn.Items = itemsFromTree(m)
	return cdn
}

func partyFromTree(m map[string]any) Party {
	return Party{
		Name:         str(m, "name"),
		AddressLine1: str(m, "addressLine1"),
		AddressLine2: str(m, "addressLine2"),
		City:         str(m, "city"),
		PostalCode:   str(m, "postalCode"),
		Country:      str(m, "country"),
		VATID:        str(m, "VATId"),
		GLN:          str(m, "GLN"),
		ContactName:  str(m, "contactName"),
		ContactPhone: str(m, "contactPhone"),
		ContactEmail: str(m, "contactEmail"),
		BankgiroNo:   str(m, "bankgiro_no"),
		IBAN:         str(m, "IBAN"),
		SwiftBIC:     str(m, "SWIFTBIC"),
	}
}

func vatTotalsFromTree(m map[string]any) []VATTotal {
	list, ok := m["VATTotals"].([]any)
	if !ok {
		return nil
	}
	totals := make([]VATTotal, 0, len(list))
	for _, elem := range list {
		vm, ok := elem.(map[string]any)
		if !ok {
			continue
		}
		totals = append(totals, VATTotal{
			Base:   num(vm, "VATBase_"),
			Rate:   num(vm, "VATRate_"),
			Amount: num(vm, "VATAmount_"),
		})
	}
	return totals
}

func itemsFromTree(m map[string]any) []Item {
	list, ok := m["items"].([]any)
	if !ok {
		return nil
	}
	items := make([]Item, 0, len(list))
	for _, elem := range list {
		im, ok := elem.(map[string]any)
		if !ok {
			continue
		}
		item := Item{
			Subject:     str(im, "itemSubject"),
			Number:      str(im, "itemNumber"),
			Description: str(im, "itemDescription"),
			CostCenter:  str(im, "itemCostCenter"),
			PO:          str(im, "itemPO"),
			Total:       num(im, "itemTotal_"),
		}
		if lines, ok := im["itemPriceLines"].([]any); ok {
			item.PriceLines = priceLinesFromTree(lines)
		}
		items = append(items, item)
	}
	return items
}

func priceLinesFromTree(list []any) []PriceLine {
	lines := make([]PriceLine, 0, len(list))
	for _, elem := range list {
		lm, ok := elem.(map[string]any)
		if !ok {
			continue
		}
		lines = append(lines, PriceLine{
			Quantity:  num(lm, "linePriceQuantity_"),
			Unit:      str(lm, "linePriceUnit"),
			Name:      str(lm, "linePriceName"),
			Price:     str(lm, "linePrice"),
			UnitPrice: num(lm, "linePriceOnly_"),
			Total:     num(lm, "linePriceTotal_"),
			VATRate:   numOr(lm, "linePriceVATRate_", math.NaN()),
		})
	}
	return lines
}

// str reads a scalar as text. Absent and null both decode to "".
func str(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// num reads a numeric field. Absent and null both decode to zero, which
// matches how the record format treats missing totals. A NaN produced by
// the normalizer passes through untouched.
func num(m map[string]any, key string) float64 {
	return numOr(m, key, 0)
}

func numOr(m map[string]any, key string, def float64) float64 {
	if v, ok := m[key].(float64); ok {
		return v
	}
	return def
}
