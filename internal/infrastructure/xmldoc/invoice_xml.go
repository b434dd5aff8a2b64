// Package xmldoc exporta facturas a XML con la estructura básica de UBL 2.1
// (cbc/cac) para importarlas en sistemas contables.
package xmldoc

import (
	"bytes"
	"context"
	"crypto/sha512"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/ucarion/c14n"

	appbilling "github.com/jhoicas/supermack-billing/internal/application/billing"
	"github.com/jhoicas/supermack-billing/internal/domain/entity"
)

// Namespaces UBL 2.1.
const (
	NsInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NsCac     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NsCbc     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
)

var _ appbilling.InvoiceXMLExporter = (*Exporter)(nil)

// Exporter implementa billing.InvoiceXMLExporter con etree.
type Exporter struct{}

func NewExporter() *Exporter { return &Exporter{} }

// ExportInvoiceXML genera el documento <Invoice>. Las facturas manuales salen con una
// sola InvoiceLine por el total.
func (e *Exporter) ExportInvoiceXML(_ context.Context, d appbilling.InvoiceDocument) ([]byte, error) {
	if d.Invoice == nil {
		return nil, fmt.Errorf("xmldoc: factura nil")
	}
	inv := d.Invoice
	currency := strings.ToUpper(d.Currency)

	doc := etree.NewDocument()
	root := doc.CreateElement("Invoice")
	root.CreateAttr("xmlns", NsInvoice)
	root.CreateAttr("xmlns:cac", NsCac)
	root.CreateAttr("xmlns:cbc", NsCbc)

	cbc(root, "UBLVersionID", "2.1")
	cbc(root, "ID", inv.Number)
	cbc(root, "UUID", DocumentHash(inv)).CreateAttr("schemeName", "SHA-384")
	cbc(root, "IssueDate", inv.IssueDate.Format(entity.DateLayout))
	cbc(root, "DueDate", inv.DueDate.Format(entity.DateLayout))
	if inv.Reference != "" {
		cbc(root, "Note", inv.Reference)
	}
	cbc(root, "DocumentCurrencyCode", currency)

	supplier := root.CreateElement("cac:AccountingSupplierParty").CreateElement("cac:Party")
	partyName(supplier, d.Profile.CompanyName)
	if d.Profile.Address != "" {
		cbc(supplier.CreateElement("cac:PostalAddress"), "StreetName", d.Profile.Address)
	}
	if d.Profile.Email != "" || d.Profile.Phone != "" {
		contact := supplier.CreateElement("cac:Contact")
		if d.Profile.Phone != "" {
			cbc(contact, "Telephone", d.Profile.Phone)
		}
		if d.Profile.Email != "" {
			cbc(contact, "ElectronicMail", d.Profile.Email)
		}
	}

	customer := root.CreateElement("cac:AccountingCustomerParty").CreateElement("cac:Party")
	partyName(customer, inv.CustomerName)

	cbc(root.CreateElement("cac:PaymentMeans"), "PaymentMeansCode", inv.PaymentType)

	subtotal, tax := inv.Subtotal, inv.Tax
	if len(inv.Lines) == 0 {
		subtotal, tax = inv.Total, decimal.Zero
	}

	taxTotal := root.CreateElement("cac:TaxTotal")
	amount(taxTotal, "TaxAmount", tax, currency)
	scheme := taxTotal.CreateElement("cac:TaxSubtotal").CreateElement("cac:TaxCategory").CreateElement("cac:TaxScheme")
	cbc(scheme, "Name", taxTypeOrNone(d.TaxType))

	monetary := root.CreateElement("cac:LegalMonetaryTotal")
	amount(monetary, "LineExtensionAmount", subtotal, currency)
	amount(monetary, "TaxExclusiveAmount", subtotal, currency)
	amount(monetary, "TaxInclusiveAmount", inv.Total, currency)
	amount(monetary, "PayableAmount", inv.Total, currency)

	if len(inv.Lines) == 0 {
		invoiceLine(root, 1, 1, inv.Reference, inv.Total, inv.Total, currency)
	}
	for i, l := range inv.Lines {
		invoiceLine(root, i+1, l.Quantity, l.ProductName, l.UnitPrice, l.LineTotal, currency)
	}

	raw, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xmldoc: serializar: %w", err)
	}
	canonical, err := Canonicalize(raw)
	if err != nil {
		return nil, err
	}
	return append([]byte(xmlHeader), canonical...), nil
}

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// Canonicalize aplica C14N 1.0: orden de atributos y namespaces estable, misma
// factura produce los mismos bytes.
func Canonicalize(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	out, err := c14n.Canonicalize(dec)
	if err != nil {
		return nil, fmt.Errorf("xmldoc: c14n: %w", err)
	}
	return out, nil
}

func cbc(parent *etree.Element, tag, value string) *etree.Element {
	el := parent.CreateElement("cbc:" + tag)
	el.SetText(value)
	return el
}

func amount(parent *etree.Element, tag string, v decimal.Decimal, currency string) {
	el := cbc(parent, tag, v.StringFixed(2))
	if currency != "" {
		el.CreateAttr("currencyID", currency)
	}
}

func partyName(party *etree.Element, name string) {
	cbc(party.CreateElement("cac:PartyName"), "Name", name)
}

func invoiceLine(root *etree.Element, pos int, qty int64, name string, unit, total decimal.Decimal, currency string) {
	line := root.CreateElement("cac:InvoiceLine")
	cbc(line, "ID", strconv.Itoa(pos))
	cbc(line, "InvoicedQuantity", strconv.FormatInt(qty, 10)).CreateAttr("unitCode", "EA")
	amount(line, "LineExtensionAmount", total, currency)
	cbc(line.CreateElement("cac:Item"), "Description", name)
	amount(line.CreateElement("cac:Price"), "PriceAmount", unit, currency)
}

func taxTypeOrNone(t string) string {
	if t == "" {
		return entity.TaxTypeNone
	}
	return t
}

// DocumentHash SHA-384 (hex) de número, fecha, subtotal, impuesto y total.
// Permite al receptor detectar cambios en los importes.
func DocumentHash(inv *entity.Invoice) string {
	parts := []string{
		inv.Number,
		inv.IssueDate.Format(entity.DateLayout),
		inv.Subtotal.StringFixed(2),
		inv.Tax.StringFixed(2),
		inv.Total.StringFixed(2),
		inv.CustomerName,
	}
	sum := sha512.Sum384([]byte(strings.Join(parts, "")))
	return hex.EncodeToString(sum[:])
}
