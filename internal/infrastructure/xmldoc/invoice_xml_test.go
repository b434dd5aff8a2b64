package xmldoc

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/jhoicas/supermack-billing/internal/application/billing"
	"github.com/jhoicas/supermack-billing/internal/domain/entity"
)

func posInvoice() *entity.Invoice {
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	return &entity.Invoice{
		Number: "INV-1001", CustomerName: "Walk-in Customer",
		IssueDate: day, DueDate: day, PaymentType: entity.PaymentCash,
		Subtotal: decimal.RequireFromString("2.50"),
		Tax:      decimal.RequireFromString("0.25"),
		Total:    decimal.RequireFromString("2.75"),
		Lines: []entity.InvoiceLine{
			{ProductName: "Apple", Quantity: 2, UnitPrice: decimal.RequireFromString("1.00"), LineTotal: decimal.RequireFromString("2.00")},
			{ProductName: "Banana", Quantity: 1, UnitPrice: decimal.RequireFromString("0.50"), LineTotal: decimal.RequireFromString("0.50")},
		},
	}
}

func parse(t *testing.T, b []byte) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(b))
	require.NotNil(t, doc.Root())
	return doc.Root()
}

func TestExportInvoiceXML_Lineas(t *testing.T) {
	out, err := NewExporter().ExportInvoiceXML(context.Background(), appbilling.InvoiceDocument{
		Invoice:  posInvoice(),
		Profile:  entity.BusinessProfile{CompanyName: "Super Mack", Email: "info@supermack.lk"},
		TaxType:  entity.TaxTypeGST,
		Currency: "lkr",
	})
	require.NoError(t, err)

	root := parse(t, out)
	assert.Equal(t, "Invoice", root.Tag)
	assert.Equal(t, "INV-1001", root.FindElement("./cbc:ID").Text())
	assert.Equal(t, "LKR", root.FindElement("./cbc:DocumentCurrencyCode").Text())
	assert.Len(t, root.FindElements("./cac:InvoiceLine"), 2)

	payable := root.FindElement("./cac:LegalMonetaryTotal/cbc:PayableAmount")
	require.NotNil(t, payable)
	assert.Equal(t, "2.75", payable.Text())
	assert.Equal(t, "LKR", payable.SelectAttrValue("currencyID", ""))
	assert.Equal(t, "0.25", root.FindElement("./cac:TaxTotal/cbc:TaxAmount").Text())
	assert.Equal(t, "GST", root.FindElement(".//cac:TaxScheme/cbc:Name").Text())
	assert.Equal(t, "Apple", root.FindElement("./cac:InvoiceLine/cac:Item/cbc:Description").Text())
}

func TestExportInvoiceXML_Manual(t *testing.T) {
	inv := posInvoice()
	inv.Lines = nil
	inv.Subtotal, inv.Tax = decimal.Zero, decimal.Zero
	inv.Total = decimal.RequireFromString("100.00")
	inv.Reference = "Servicio"

	out, err := NewExporter().ExportInvoiceXML(context.Background(), appbilling.InvoiceDocument{Invoice: inv})
	require.NoError(t, err)
	root := parse(t, out)
	lines := root.FindElements("./cac:InvoiceLine")
	require.Len(t, lines, 1)
	assert.Equal(t, "100.00", root.FindElement("./cac:LegalMonetaryTotal/cbc:LineExtensionAmount").Text())
	assert.Equal(t, "None", root.FindElement(".//cac:TaxScheme/cbc:Name").Text())
}

func TestDocumentHash(t *testing.T) {
	a := posInvoice()
	h := DocumentHash(a)
	assert.Len(t, h, 96)
	assert.Equal(t, h, DocumentHash(posInvoice()))

	b := posInvoice()
	b.Total = decimal.RequireFromString("2.76")
	assert.NotEqual(t, h, DocumentHash(b))
}

func TestExportInvoiceXML_Canonico(t *testing.T) {
	d := appbilling.InvoiceDocument{Invoice: posInvoice(), Currency: "LKR", TaxType: "GST"}
	a, err := NewExporter().ExportInvoiceXML(context.Background(), d)
	require.NoError(t, err)
	b, err := NewExporter().ExportInvoiceXML(context.Background(), d)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(string(a), `<?xml version="1.0" encoding="UTF-8"?>`))
}

func TestCanonicalize_OrdenaAtributos(t *testing.T) {
	out, err := Canonicalize([]byte(`<a z="1" b="2"><c/></a>`))
	require.NoError(t, err)
	assert.Equal(t, `<a b="2" z="1"><c></c></a>`, string(out))
}
