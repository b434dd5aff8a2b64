package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermack-billing/internal/application/dto"
	"github.com/jhoicas/supermack-billing/internal/domain/entity"
	"github.com/jhoicas/supermack-billing/internal/domain/repository"
)

// SalesReportTitle título de los documentos exportados.
const SalesReportTitle = "Sales Report"

// ReportUseCase reporte de ventas filtrable por cliente y producto, con exportación a PDF y Excel.
type ReportUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	settingsRepo  repository.SettingsRepository
	pdf           ReportPDFGenerator
	workbook      ReportWorkbookGenerator
	currency      string
	now           func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	analyticsRepo repository.AnalyticsRepository,
	settingsRepo repository.SettingsRepository,
	pdf ReportPDFGenerator,
	workbook ReportWorkbookGenerator,
	currency string,
) *ReportUseCase {
	return &ReportUseCase{
		analyticsRepo: analyticsRepo,
		settingsRepo:  settingsRepo,
		pdf:           pdf,
		workbook:      workbook,
		currency:      currency,
		now:           time.Now,
	}
}

// Sales filas del reporte. customer y product filtran por coincidencia exacta; vacío = todos.
func (uc *ReportUseCase) Sales(ctx context.Context, customer, product string) (*dto.SalesReportDTO, error) {
	customer = strings.TrimSpace(customer)
	product = strings.TrimSpace(product)
	rows, err := uc.analyticsRepo.ListSalesRows(ctx, customer, product)
	if err != nil {
		return nil, fmt.Errorf("reporte de ventas: %w", err)
	}
	out := &dto.SalesReportDTO{
		Rows:       make([]dto.SalesReportRowDTO, 0, len(rows)),
		GrandTotal: decimal.Zero,
		Customer:   customer,
		Product:    product,
	}
	for _, r := range rows {
		out.Rows = append(out.Rows, dto.SalesReportRowDTO{
			Date:     r.Date.Format(entity.DateLayout),
			Customer: r.Customer,
			Product:  r.Product,
			Total:    r.Total.Round(2),
		})
		out.GrandTotal = out.GrandTotal.Add(r.Total)
	}
	out.GrandTotal = out.GrandTotal.Round(2)
	return out, nil
}

// Options clientes y productos distintos presentes en las ventas, ordenados.
func (uc *ReportUseCase) Options(ctx context.Context) (*dto.ReportOptionsDTO, error) {
	rows, err := uc.analyticsRepo.ListSalesRows(ctx, "", "")
	if err != nil {
		return nil, fmt.Errorf("opciones de reporte: %w", err)
	}
	customers := map[string]bool{}
	products := map[string]bool{}
	for _, r := range rows {
		customers[r.Customer] = true
		if r.Product != repository.NoProduct {
			products[r.Product] = true
		}
	}
	return &dto.ReportOptionsDTO{Customers: sortedKeys(customers), Products: sortedKeys(products)}, nil
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (uc *ReportUseCase) build(ctx context.Context, customer, product string) (SalesReport, error) {
	report, err := uc.Sales(ctx, customer, product)
	if err != nil {
		return SalesReport{}, err
	}
	company := ""
	if uc.settingsRepo != nil {
		if s, err := uc.settingsRepo.Get(ctx); err == nil {
			company = s.Profile.CompanyName
		}
	}
	return SalesReport{
		Title:       SalesReportTitle,
		Report:      report,
		Currency:    uc.currency,
		CompanyName: company,
		GeneratedAt: uc.now().UTC(),
	}, nil
}

// ExportPDF reporte filtrado en PDF.
func (uc *ReportUseCase) ExportPDF(ctx context.Context, customer, product string) ([]byte, string, error) {
	report, err := uc.build(ctx, customer, product)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.pdf.GenerateSalesReportPDF(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("reporte pdf: %w", err)
	}
	return b, "sales_report.pdf", nil
}

// ExportExcel reporte filtrado en Excel (.xlsx).
func (uc *ReportUseCase) ExportExcel(ctx context.Context, customer, product string) ([]byte, string, error) {
	report, err := uc.build(ctx, customer, product)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.workbook.GenerateSalesReportXLSX(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("reporte excel: %w", err)
	}
	return b, "sales_report.xlsx", nil
}
