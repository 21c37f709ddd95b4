package ubl

import (
	"github.com/beevik/etree"

	"github.com/smt-joen/plunet2peppol/internal/model"
)

// Credit transfer, per the UNCL4461 payment means code list.
const paymentMeansCredit = "30"

// appendGiroPayment emits a bank-giro payment means node when the seller
// has a bankgiro account. The document number doubles as the payment
// reference.
func appendGiroPayment(parent *etree.Element, docNumber string, seller model.Party) {
	if seller.BankgiroNo == "" {
		return
	}
	means := parent.CreateElement("cac:PaymentMeans")
	text(means, "cbc:PaymentMeansCode", paymentMeansCredit)
	text(means, "cbc:PaymentID", docNumber)
	account := means.CreateElement("cac:PayeeFinancialAccount")
	text(account, "cbc:ID", seller.BankgiroNo)
	text(account.CreateElement("cac:FinancialInstitutionBranch"), "cbc:ID", "SE:BANKGIRO")
}

// appendIBANPayment emits an IBAN/SWIFT payment means node when the
// seller has an IBAN. Both payment nodes may coexist on one document.
func appendIBANPayment(parent *etree.Element, docNumber string, seller model.Party) {
	if seller.IBAN == "" {
		return
	}
	means := parent.CreateElement("cac:PaymentMeans")
	text(means, "cbc:PaymentMeansCode", paymentMeansCredit)
	text(means, "cbc:PaymentID", docNumber)
	account := means.CreateElement("cac:PayeeFinancialAccount")
	text(account, "cbc:ID", seller.IBAN)
	text(account.CreateElement("cac:FinancialInstitutionBranch"), "cbc:ID", seller.SwiftBIC)
}
