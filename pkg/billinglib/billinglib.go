// Package billinglib provides the public API for converting billing
// records into PEPPOL BIS Billing 3.0 documents.
//
// Example usage:
//
//	rec, err := billinglib.Load("2301.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	results, err := billinglib.NewConverter().Convert(rec)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("2301.xml", results[0].XML, 0o644)
package billinglib

import (
	"github.com/smt-joen/plunet2peppol/internal/converter"
	"github.com/smt-joen/plunet2peppol/internal/loader"
	"github.com/smt-joen/plunet2peppol/internal/model"
)

// Re-export core types for public API
type (
	BillingRecord = model.BillingRecord
	Invoice       = model.Invoice
	CreditNote    = model.CreditNote
	Party         = model.Party
	VATTotal      = model.VATTotal
	Item          = model.Item
	PriceLine     = model.PriceLine
	DocumentKind  = model.DocumentKind

	Converter = converter.Converter
	Option    = converter.Option
	Result    = converter.Result
)

// Re-export document kinds
const (
	KindInvoice    = model.KindInvoice
	KindCreditNote = model.KindCreditNote
)

// Re-export error types
type (
	SkipError = model.SkipError
	LoadError = model.LoadError
)

// IsSkip reports whether err is a precondition fault.
var IsSkip = model.IsSkip

// NewConverter creates a Converter.
func NewConverter(opts ...Option) *Converter {
	return converter.New(opts...)
}

// WithDefaultCountry sets the country assumed for parties without one.
var WithDefaultCountry = converter.WithDefaultCountry

// WithLogger sets the diagnostics logger.
var WithLogger = converter.WithLogger

// Load reads one record file from disk.
var Load = loader.Load
