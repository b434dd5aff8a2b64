package excel

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/supermack-billing/internal/application/analytics"
	"github.com/jhoicas/supermack-billing/internal/application/dto"
)

func TestGenerateSalesReportXLSX(t *testing.T) {
	report := analytics.SalesReport{
		Title: analytics.SalesReportTitle,
		Report: &dto.SalesReportDTO{
			Rows: []dto.SalesReportRowDTO{
				{Date: "2026-10-19", Customer: "Walk-in Customer", Product: "Apple", Total: decimal.RequireFromString("2.00")},
				{Date: "2026-10-18", Customer: "Jane Doe", Product: "-", Total: decimal.RequireFromString("100.50")},
			},
			GrandTotal: decimal.RequireFromString("102.50"),
		},
	}

	out, err := NewWorkbookGenerator().GenerateSalesReportXLSX(context.Background(), report)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Date", "Customer", "Product", "Total"}, rows[0])
	assert.Equal(t, "Apple", rows[1][2])
	assert.Equal(t, "-", rows[2][2])
	assert.Equal(t, "TOTAL", rows[3][2])

	raw, err := f.GetCellValue(SheetName, "D4", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "102.5", raw)
}

func TestGenerateSalesReportXLSX_Vacio(t *testing.T) {
	out, err := NewWorkbookGenerator().GenerateSalesReportXLSX(context.Background(), analytics.SalesReport{
		Report: &dto.SalesReportDTO{GrandTotal: decimal.Zero},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
