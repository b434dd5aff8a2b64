package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supermack-billing/internal/application/analytics"
	appbilling "github.com/jhoicas/supermack-billing/internal/application/billing"
	"github.com/jhoicas/supermack-billing/internal/application/dto"
	"github.com/jhoicas/supermack-billing/internal/domain/entity"
)

func sampleInvoice() *entity.Invoice {
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	return &entity.Invoice{
		ID: "inv-1", Number: "INV-1001", CustomerName: "Walk-in Customer",
		IssueDate: day, DueDate: day,
		AmountType: entity.AmountTypeExclusive, PaymentType: entity.PaymentCash,
		Subtotal: decimal.RequireFromString("2.50"),
		Tax:      decimal.RequireFromString("0.25"),
		Total:    decimal.RequireFromString("2.75"),
		Source:   entity.InvoiceSourcePOS,
		Lines: []entity.InvoiceLine{
			{ProductName: "Apple", Quantity: 2, UnitPrice: decimal.RequireFromString("1.00"), LineTotal: decimal.RequireFromString("2.00")},
			{ProductName: "Banana", Quantity: 1, UnitPrice: decimal.RequireFromString("0.50"), LineTotal: decimal.RequireFromString("0.50")},
		},
	}
}

func TestGenerateInvoicePDF(t *testing.T) {
	g := NewMarotoPDFGenerator()
	out, err := g.GenerateInvoicePDF(context.Background(), appbilling.InvoiceDocument{
		Invoice:  sampleInvoice(),
		Profile:  entity.BusinessProfile{CompanyName: "Super Mack", Address: "Main St 1"},
		TaxType:  entity.TaxTypeGST,
		Currency: "LKR",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateInvoicePDF_FacturaManualSinLineas(t *testing.T) {
	inv := sampleInvoice()
	inv.Lines = nil
	inv.Source = entity.InvoiceSourceManual
	out, err := NewMarotoPDFGenerator().GenerateInvoicePDF(context.Background(), appbilling.InvoiceDocument{Invoice: inv, Currency: "???"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateInvoicePDF_Nil(t *testing.T) {
	_, err := NewMarotoPDFGenerator().GenerateInvoicePDF(context.Background(), appbilling.InvoiceDocument{})
	assert.Error(t, err)
}

func TestGenerateSalesReportPDF(t *testing.T) {
	report := analytics.SalesReport{
		Title:       analytics.SalesReportTitle,
		CompanyName: "Super Mack",
		Currency:    "LKR",
		GeneratedAt: time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC),
		Report: &dto.SalesReportDTO{
			Rows: []dto.SalesReportRowDTO{
				{Date: "2026-10-19", Customer: "Walk-in Customer", Product: "Apple", Total: decimal.RequireFromString("2.00")},
				{Date: "2026-10-18", Customer: "Jane Doe", Product: "-", Total: decimal.RequireFromString("100.00")},
			},
			GrandTotal: decimal.RequireFromString("102.00"),
		},
	}
	out, err := NewMarotoPDFGenerator().GenerateSalesReportPDF(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	assert.Equal(t, "Customer: All   |   Product: All", filterLabel(report))
}
