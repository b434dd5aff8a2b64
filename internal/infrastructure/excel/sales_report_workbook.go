// Package excel genera el libro .xlsx del reporte de ventas con excelize.
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/supermack-billing/internal/application/analytics"
)

// SheetName hoja única del libro.
const SheetName = "Sales Report"

var _ analytics.ReportWorkbookGenerator = (*WorkbookGenerator)(nil)

// WorkbookGenerator implementa analytics.ReportWorkbookGenerator.
type WorkbookGenerator struct{}

func NewWorkbookGenerator() *WorkbookGenerator { return &WorkbookGenerator{} }

// GenerateSalesReportXLSX escribe cabecera Date | Customer | Product | Total,
// una fila por venta y el total general al final. Total se guarda como número.
func (g *WorkbookGenerator) GenerateSalesReportXLSX(_ context.Context, r analytics.SalesReport) ([]byte, error) {
	if r.Report == nil {
		return nil, fmt.Errorf("excel: reporte nil")
	}
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo cabecera: %w", err)
	}
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, fmt.Errorf("excel: estilo importe: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: 4})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo total: %w", err)
	}

	header := []any{"Date", "Customer", "Product", "Total"}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("excel: cabecera: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", "D1", headerStyle); err != nil {
		return nil, fmt.Errorf("excel: estilo cabecera: %w", err)
	}

	for i, row := range r.Report.Rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []any{row.Date, row.Customer, row.Product, row.Total.InexactFloat64()}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", i+2, err)
		}
	}
	last := len(r.Report.Rows) + 1
	if last > 1 {
		from, _ := excelize.CoordinatesToCellName(4, 2)
		to, _ := excelize.CoordinatesToCellName(4, last)
		if err := f.SetCellStyle(SheetName, from, to, amountStyle); err != nil {
			return nil, fmt.Errorf("excel: estilo importes: %w", err)
		}
	}

	totalRow := last + 1
	labelCell, _ := excelize.CoordinatesToCellName(3, totalRow)
	totalCell, _ := excelize.CoordinatesToCellName(4, totalRow)
	if err := f.SetCellValue(SheetName, labelCell, "TOTAL"); err != nil {
		return nil, fmt.Errorf("excel: total: %w", err)
	}
	if err := f.SetCellValue(SheetName, totalCell, r.Report.GrandTotal.InexactFloat64()); err != nil {
		return nil, fmt.Errorf("excel: total: %w", err)
	}
	if err := f.SetCellStyle(SheetName, labelCell, totalCell, totalStyle); err != nil {
		return nil, fmt.Errorf("excel: estilo total: %w", err)
	}

	_ = f.SetColWidth(SheetName, "A", "A", 12)
	_ = f.SetColWidth(SheetName, "B", "C", 28)
	_ = f.SetColWidth(SheetName, "D", "D", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
