package billing

import (
	"context"

	"github.com/jhoicas/supermack-billing/internal/domain/entity"
	"github.com/jhoicas/supermack-billing/internal/domain/repository"
)

// BillingTxRunner ejecuta una función dentro de una transacción que reserva el
// consecutivo de factura y guarda la factura de forma atómica.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		settingsRepo repository.SettingsRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}

// InvoiceDocument datos necesarios para imprimir o exportar una factura.
type InvoiceDocument struct {
	Invoice  *entity.Invoice
	Profile  entity.BusinessProfile
	TaxType  string
	Currency string
}

// InvoicePDFGenerator genera la representación gráfica (PDF) de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, doc InvoiceDocument) ([]byte, error)
}

// InvoiceXMLExporter serializa una factura a XML para intercambio con contabilidad.
type InvoiceXMLExporter interface {
	ExportInvoiceXML(ctx context.Context, doc InvoiceDocument) ([]byte, error)
}
