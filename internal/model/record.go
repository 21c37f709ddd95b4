package model

import "math"

// BillingRecord is one unvalidated input unit as produced by the loader:
// a file-level record carrying an invoice sub-record, a credit-note
// sub-record, or both keys with only one meaningfully populated.
//
// The sub-records are loose trees (maps, lists, scalars) exactly as they
// were unmarshalled. They are normalized in place before being decoded
// into the typed structs below.
type BillingRecord struct {
	Invoice    map[string]any
	CreditNote map[string]any
	Source     string
}

// Party is a seller or buyer. Buyer fields are inlined at the top level of
// the record; the seller lives under the "seller" key with the same shape
// plus payment account identifiers.
type Party struct {
	Name         string
	AddressLine1 string
	AddressLine2 string
	City         string
	PostalCode   string
	Country      string
	VATID        string
	GLN          string
	ContactName  string
	ContactPhone string
	ContactEmail string

	// Seller only
	BankgiroNo string
	IBAN       string
	SwiftBIC   string
}

// VATTotal is one tax bracket: taxable base, rate and tax amount.
type VATTotal struct {
	Base   float64
	Rate   float64
	Amount float64
}

// Item is one priced line of an invoice or credit note. Invoice items
// arrive with their price lines already populated; credit-note items carry
// a free-text Subject that the reconstructor turns into price lines,
// setting Number, Description and Skip along the way.
type Item struct {
	Subject     string
	Number      string
	Description string
	CostCenter  string
	PO          string
	Total       float64
	Skip        bool
	PriceLines  []PriceLine
}

// PriceLine is one billable unit of an item.
type PriceLine struct {
	Quantity  float64
	Unit      string
	Name      string
	Price     string // display text, amount with currency
	UnitPrice float64
	Total     float64
	VATRate   float64 // NaN when the input carries no rate
}

// HasVATRate reports whether the line carries a usable rate.
func (p PriceLine) HasVATRate() bool {
	return !math.IsNaN(p.VATRate)
}

// Invoice is the typed form of an invoice sub-record.
type Invoice struct {
	Number      string
	IssueDate   string
	DueDate     string
	ProjectName string
	Currency    string
	PO          string
	CostCenter  string
	Buyer       Party
	Seller      Party
	VATTotals   []VATTotal
	Items       []Item
	NetTotal    float64
	GrossTotal  float64
}

// CreditNote is the typed form of a credit-note sub-record.
// InvoiceNumber references the invoice being credited.
type CreditNote struct {
	Number        string
	IssueDate     string
	ProjectName   string
	Currency      string
	PO            string
	InvoiceNumber string
	Buyer         Party
	Seller        Party
	VATTotals     []VATTotal
	Items         []Item
	NetTotal      float64
	GrossTotal    float64
}
