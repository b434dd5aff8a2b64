package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/supermack-billing/internal/application/dto"
)

// SalesReport reporte listo para exportar.
type SalesReport struct {
	Title       string
	Report      *dto.SalesReportDTO
	Currency    string
	CompanyName string
	GeneratedAt time.Time
}

// ReportPDFGenerator genera el PDF del reporte de ventas.
type ReportPDFGenerator interface {
	GenerateSalesReportPDF(ctx context.Context, report SalesReport) ([]byte, error)
}

// ReportWorkbookGenerator genera el libro Excel del reporte de ventas.
type ReportWorkbookGenerator interface {
	GenerateSalesReportXLSX(ctx context.Context, report SalesReport) ([]byte, error)
}
