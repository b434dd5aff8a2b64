package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// NoProduct producto de las filas que vienen de facturas manuales.
const NoProduct = "-"

// DailySales total vendido en un día (fecha truncada a medianoche).
type DailySales struct {
	Day   time.Time
	Total decimal.Decimal
}

// SalesRow fila cruda del reporte de ventas: una por línea de factura del
// punto de venta y una por factura manual (Product = "-").
type SalesRow struct {
	Date     time.Time
	Customer string
	Product  string
	Total    decimal.Decimal
}

// AnalyticsRepository consultas de lectura para el dashboard y los reportes.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetSalesTotal suma los totales de facturas emitidas en [start, end).
	GetSalesTotal(ctx context.Context, start, end time.Time) (decimal.Decimal, error)

	// GetDailySales agrupa por día de emisión en [start, end). Los días sin ventas no aparecen.
	GetDailySales(ctx context.Context, start, end time.Time) ([]DailySales, error)

	// CountOutstanding cuenta facturas con vencimiento en from o después.
	CountOutstanding(ctx context.Context, from time.Time) (int64, error)

	CountCustomers(ctx context.Context) (int64, error)

	// SumStock suma las unidades en existencia de todo el catálogo.
	SumStock(ctx context.Context) (int64, error)

	// ListSalesRows filas ordenadas por fecha descendente. Los filtros son exactos; vacío = todos.
	ListSalesRows(ctx context.Context, customer, product string) ([]SalesRow, error)
}
