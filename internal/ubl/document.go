// Package ubl assembles normalized billing data into the PEPPOL BIS
// Billing 3.0 document tree and serializes it to XML.
//
// The tree is built as present-only nodes: a conditional block that does
// not apply is never constructed, so no null-pruning pass is needed and
// no empty element can leak into the output.
package ubl

import (
	"github.com/beevik/etree"

	"github.com/smt-joen/plunet2peppol/internal/model"
	"github.com/smt-joen/plunet2peppol/internal/vat"
)

const (
	nsCAC        = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	nsCBC        = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
	nsInvoice    = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	nsCreditNote = "urn:oasis:names:specification:ubl:schema:xsd:CreditNote-2"

	customizationID = "urn:cen.eu:en16931:2017#compliant#urn:fdc:peppol.eu:2017:poacc:billing:3.0"
	profileID       = "urn:fdc:peppol.eu:2017:poacc:billing:01:1.0"

	typeCodeInvoice    = "380"
	typeCodeCreditNote = "381"
)

// BuildInvoice assembles the full Invoice tree. inv must be normalized
// and carry its resolved bracket list; category is the document tax
// category from vat.Categorize.
func BuildInvoice(inv *model.Invoice, category, defaultCountry string) *etree.Document {
	doc, root := newDocument("Invoice", nsInvoice)

	text(root, "cbc:CustomizationID", customizationID)
	text(root, "cbc:ProfileID", profileID)
	text(root, "cbc:ID", inv.Number)
	text(root, "cbc:IssueDate", inv.IssueDate)
	text(root, "cbc:DueDate", inv.DueDate)
	text(root, "cbc:InvoiceTypeCode", typeCodeInvoice)
	text(root, "cbc:Note", inv.ProjectName)
	text(root, "cbc:DocumentCurrencyCode", inv.Currency)

	buyerRef := inv.PO
	if buyerRef == "" {
		buyerRef = inv.CostCenter
	}
	text(root, "cbc:BuyerReference", buyerRef)
	if inv.PO != "" {
		text(root.CreateElement("cac:OrderReference"), "cbc:ID", inv.PO)
	}

	appendParty(root, "cac:AccountingSupplierParty", inv.Seller, defaultCountry)
	appendParty(root, "cac:AccountingCustomerParty", inv.Buyer, defaultCountry)
	appendGiroPayment(root, inv.Number, inv.Seller)
	appendIBANPayment(root, inv.Number, inv.Seller)
	appendTaxTotal(root, inv.VATTotals, category, inv.GrossTotal, inv.NetTotal, inv.Currency)
	appendMonetaryTotal(root, inv.NetTotal, inv.GrossTotal, inv.Currency)
	appendDocumentLines(root, "cac:InvoiceLine", "cbc:InvoicedQuantity", inv.Items, inv.Currency, category)

	return doc
}

// BuildCreditNote assembles the full CreditNote tree. cdn must be
// normalized, attributed and reconstructed.
func BuildCreditNote(cdn *model.CreditNote, category, defaultCountry string) *etree.Document {
	doc, root := newDocument("CreditNote", nsCreditNote)

	text(root, "cbc:CustomizationID", customizationID)
	text(root, "cbc:ProfileID", profileID)
	text(root, "cbc:ID", cdn.Number)
	text(root, "cbc:IssueDate", cdn.IssueDate)
	text(root, "cbc:CreditNoteTypeCode", typeCodeCreditNote)
	text(root, "cbc:Note", cdn.ProjectName)
	text(root, "cbc:DocumentCurrencyCode", cdn.Currency)

	buyerRef := cdn.PO
	if buyerRef == "" {
		buyerRef = cdn.InvoiceNumber
	}
	if buyerRef == "" {
		buyerRef = "Ref"
	}
	text(root, "cbc:BuyerReference", buyerRef)
	if cdn.InvoiceNumber != "" {
		billingRef := root.CreateElement("cac:BillingReference")
		text(billingRef.CreateElement("cac:InvoiceDocumentReference"), "cbc:ID", cdn.InvoiceNumber)
	}

	appendParty(root, "cac:AccountingSupplierParty", cdn.Seller, defaultCountry)
	appendParty(root, "cac:AccountingCustomerParty", cdn.Buyer, defaultCountry)
	appendGiroPayment(root, cdn.Number, cdn.Seller)
	appendIBANPayment(root, cdn.Number, cdn.Seller)
	appendTaxTotal(root, cdn.VATTotals, category, cdn.GrossTotal, cdn.NetTotal, cdn.Currency)
	appendMonetaryTotal(root, cdn.NetTotal, cdn.GrossTotal, cdn.Currency)
	appendDocumentLines(root, "cac:CreditNoteLine", "cbc:CreditedQuantity", cdn.Items, cdn.Currency, category)

	return doc
}

func newDocument(rootTag, ns string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(rootTag)
	root.CreateAttr("xmlns:cac", nsCAC)
	root.CreateAttr("xmlns:cbc", nsCBC)
	root.CreateAttr("xmlns", ns)
	return doc, root
}

func isExempt(category string) bool {
	return category == vat.CategoryExempt
}
