package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/supermack-billing/internal/domain/repository"
)

// PDFUseCase genera la representación impresa (PDF) y la exportación XML de una factura.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	settingsRepo repository.SettingsRepository
	generator    InvoicePDFGenerator
	xmlExporter  InvoiceXMLExporter
	currency     string
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	settingsRepo repository.SettingsRepository,
	generator InvoicePDFGenerator,
	xmlExporter InvoiceXMLExporter,
	currency string,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo:  invoiceRepo,
		settingsRepo: settingsRepo,
		generator:    generator,
		xmlExporter:  xmlExporter,
		currency:     currency,
	}
}

func (uc *PDFUseCase) document(ctx context.Context, invoiceID string) (InvoiceDocument, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return InvoiceDocument{}, fmt.Errorf("obtener factura: %w", err)
	}
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return InvoiceDocument{}, fmt.Errorf("obtener configuración: %w", err)
	}
	return InvoiceDocument{
		Invoice:  inv,
		Profile:  settings.Profile,
		TaxType:  settings.Invoice.TaxType,
		Currency: uc.currency,
	}, nil
}

// DownloadInvoicePDF devuelve el PDF y el nombre de archivo sugerido.
//
// Retorna:
//   - domain.ErrNotFound si la factura no existe.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	doc, err := uc.document(ctx, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: %w", err)
	}
	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fileName(doc.Invoice.Number, "pdf"), nil
}

// DownloadInvoiceXML devuelve el XML de la factura y el nombre de archivo sugerido.
func (uc *PDFUseCase) DownloadInvoiceXML(ctx context.Context, invoiceID string) (xmlBytes []byte, filename string, err error) {
	doc, err := uc.document(ctx, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("xml: %w", err)
	}
	xmlBytes, err = uc.xmlExporter.ExportInvoiceXML(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("xml: exportación fallida: %w", err)
	}
	return xmlBytes, fileName(doc.Invoice.Number, "xml"), nil
}

func fileName(number, ext string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, number)
	return fmt.Sprintf("invoice_%s.%s", safe, ext)
}
