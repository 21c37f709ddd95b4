package ubl

import (
	"github.com/beevik/etree"

	"github.com/smt-joen/plunet2peppol/internal/codes"
	"github.com/smt-joen/plunet2peppol/internal/model"
)

// appendParty emits a supplier or customer party block. The contact block
// is omitted entirely when the contact name is absent.
func appendParty(parent *etree.Element, wrapTag string, p model.Party, defaultCountry string) {
	countryCode := codes.CountryCode(p.Country, defaultCountry)
	scheme, id := endpointFor(countryCode, p)

	party := parent.CreateElement(wrapTag).CreateElement("cac:Party")

	if id != "" {
		endpoint := party.CreateElement("cbc:EndpointID")
		endpoint.CreateAttr("schemeID", scheme)
		endpoint.SetText(id)

		partyID := party.CreateElement("cac:PartyIdentification").CreateElement("cbc:ID")
		partyID.CreateAttr("schemeID", scheme)
		partyID.SetText(id)
	}

	text(party.CreateElement("cac:PartyName"), "cbc:Name", p.Name)

	address := party.CreateElement("cac:PostalAddress")
	text(address, "cbc:StreetName", p.AddressLine1)
	text(address, "cbc:AdditionalStreetName", p.AddressLine2)
	text(address, "cbc:CityName", p.City)
	text(address, "cbc:PostalZone", p.PostalCode)
	text(address.CreateElement("cac:Country"), "cbc:IdentificationCode", countryCode)

	taxScheme := party.CreateElement("cac:PartyTaxScheme")
	text(taxScheme, "cbc:CompanyID", p.VATID)
	text(taxScheme.CreateElement("cac:TaxScheme"), "cbc:ID", "VAT")

	legal := party.CreateElement("cac:PartyLegalEntity")
	text(legal, "cbc:RegistrationName", p.Name)
	if id != "" {
		companyID := legal.CreateElement("cbc:CompanyID")
		companyID.CreateAttr("schemeID", scheme)
		companyID.SetText(id)
	}

	if p.ContactName != "" {
		contact := party.CreateElement("cac:Contact")
		text(contact, "cbc:Name", p.ContactName)
		text(contact, "cbc:Telephone", p.ContactPhone)
		text(contact, "cbc:ElectronicMail", p.ContactEmail)
	}
}

// endpointFor picks the network registration regime for a party. Swedish
// parties register under scheme 0007 with the numeric payload of their
// VAT identifier, Finnish parties under 0213 with the VAT identifier
// verbatim, and everyone else under 0088 with their GLN.
func endpointFor(countryCode string, p model.Party) (scheme, id string) {
	switch countryCode {
	case "SE":
		return "0007", vatIDDigits(p.VATID)
	case "FI":
		return "0213", p.VATID
	default:
		return "0088", p.GLN
	}
}

// vatIDDigits strips the country prefix and check suffix from a Swedish
// VAT identifier, keeping the 10-digit organisation number:
// "SE556677889901" becomes "5566778899".
func vatIDDigits(vatID string) string {
	if len(vatID) <= 2 {
		return ""
	}
	if len(vatID) > 12 {
		return vatID[2:12]
	}
	return vatID[2:]
}
