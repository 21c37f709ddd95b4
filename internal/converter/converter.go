// Package converter orchestrates the per-document pipeline: normalize,
// decode, attribute VAT, reconstruct line items, build the document tree
// and serialize it. Each document is processed independently; a skipped
// document never aborts the rest of a batch.
package converter

import (
	"github.com/rs/zerolog"

	"github.com/smt-joen/plunet2peppol/internal/codes"
	"github.com/smt-joen/plunet2peppol/internal/lineitem"
	"github.com/smt-joen/plunet2peppol/internal/model"
	"github.com/smt-joen/plunet2peppol/internal/normalize"
	"github.com/smt-joen/plunet2peppol/internal/ubl"
	"github.com/smt-joen/plunet2peppol/internal/vat"
)

// Result is one produced document.
type Result struct {
	Kind model.DocumentKind
	XML  []byte
}

// Converter turns billing records into PEPPOL BIS 3.0 documents. It holds
// no per-document state and is safe to reuse across a batch.
type Converter struct {
	defaultCountry string
	log            zerolog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithDefaultCountry sets the country assumed for parties without one.
func WithDefaultCountry(name string) Option {
	return func(c *Converter) {
		if name != "" {
			c.defaultCountry = name
		}
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Converter) { c.log = log }
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	c := &Converter{
		defaultCountry: codes.DefaultCountry,
		log:            zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert processes every sub-record of rec. Precondition faults are
// logged and skipped; the returned error reports only hard failures.
func (c *Converter) Convert(rec *model.BillingRecord) ([]Result, error) {
	var results []Result

	if rec.Invoice != nil {
		xml, err := c.ConvertInvoice(rec.Invoice)
		switch {
		case model.IsSkip(err):
			c.log.Warn().Str("source", rec.Source).Msg(err.Error())
		case err != nil:
			return results, err
		default:
			results = append(results, Result{Kind: model.KindInvoice, XML: xml})
		}
	}

	if rec.CreditNote != nil {
		xml, err := c.ConvertCreditNote(rec.CreditNote)
		switch {
		case model.IsSkip(err):
			c.log.Warn().Str("source", rec.Source).Msg(err.Error())
		case err != nil:
			return results, err
		default:
			results = append(results, Result{Kind: model.KindCreditNote, XML: xml})
		}
	}

	return results, nil
}

// ConvertInvoice runs the invoice path on a loose invoice sub-record.
func (c *Converter) ConvertInvoice(tree map[string]any) ([]byte, error) {
	normalize.Normalize(tree)
	inv := model.InvoiceFromTree(tree)

	if inv.PO == "" && inv.CostCenter == "" {
		return nil, model.NewSkipError(model.KindInvoice, "buyer reference/PO")
	}
	if inv.Buyer.VATID == "" && inv.Buyer.GLN == "" {
		return nil, model.NewSkipError(model.KindInvoice, "buyer id")
	}

	brackets, category := vat.Categorize(inv.VATTotals, inv.GrossTotal)
	inv.VATTotals = brackets
	stampInvoiceRates(inv, brackets)

	doc := ubl.BuildInvoice(inv, category, c.defaultCountry)
	return ubl.Serialize(doc)
}

// ConvertCreditNote runs the credit-note path on a loose sub-record.
func (c *Converter) ConvertCreditNote(tree map[string]any) ([]byte, error) {
	normalize.Normalize(tree)
	cdn := model.CreditNoteFromTree(tree)

	if cdn.PO == "" && cdn.InvoiceNumber == "" {
		return nil, model.NewSkipError(model.KindCreditNote, "invoice reference/PO")
	}
	if cdn.Buyer.VATID == "" && cdn.Buyer.GLN == "" {
		return nil, model.NewSkipError(model.KindCreditNote, "buyer id")
	}

	attribution := vat.Attribute(cdn.Items, cdn.VATTotals, cdn.GrossTotal)
	cdn.VATTotals = attribution.Brackets
	lineitem.Reconstruct(cdn.Items, attribution.Rates, cdn.Currency)

	doc := ubl.BuildCreditNote(cdn, attribution.Category, c.defaultCountry)
	return ubl.Serialize(doc)
}

// stampInvoiceRates writes the document rate onto every invoice price
// line when the bracket count makes it unambiguous: one bracket means
// every line shares its rate, and an exempt document carries the single
// synthetic zero bracket. With two brackets the input lines keep the
// rates they arrived with; invoices never need the attribution search.
func stampInvoiceRates(inv *model.Invoice, brackets []model.VATTotal) {
	if len(brackets) != 1 {
		return
	}
	rate := brackets[0].Rate
	for i := range inv.Items {
		for j := range inv.Items[i].PriceLines {
			inv.Items[i].PriceLines[j].VATRate = rate
		}
	}
}
