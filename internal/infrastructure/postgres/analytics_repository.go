package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermack-billing/internal/domain/entity"
	"github.com/jhoicas/supermack-billing/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard y el reporte de ventas.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetSalesTotal suma total de las facturas con issue_date en [start, end).
func (r *AnalyticsRepo) GetSalesTotal(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(total), 0)
		FROM invoices
		WHERE issue_date >= $1 AND issue_date < $2`, start, end).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sales total: %w", err)
	}
	return total, nil
}

func (r *AnalyticsRepo) GetDailySales(ctx context.Context, start, end time.Time) ([]repository.DailySales, error) {
	rows, err := r.q.Query(ctx, `
		SELECT issue_date, SUM(total)
		FROM invoices
		WHERE issue_date >= $1 AND issue_date < $2
		GROUP BY issue_date
		ORDER BY issue_date`, start, end)
	if err != nil {
		return nil, fmt.Errorf("daily sales: %w", err)
	}
	defer rows.Close()

	var out []repository.DailySales
	for rows.Next() {
		var d repository.DailySales
		if err := rows.Scan(&d.Day, &d.Total); err != nil {
			return nil, fmt.Errorf("scan daily sales: %w", err)
		}
		d.Day = entity.DateOnly(d.Day)
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *AnalyticsRepo) CountOutstanding(ctx context.Context, from time.Time) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM invoices WHERE due_date >= $1`, from).Scan(&n); err != nil {
		return 0, fmt.Errorf("count outstanding: %w", err)
	}
	return n, nil
}

func (r *AnalyticsRepo) CountCustomers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}

func (r *AnalyticsRepo) SumStock(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(stock), 0)::BIGINT FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("sum stock: %w", err)
	}
	return n, nil
}

// ListSalesRows une las líneas de facturas del punto de venta con las facturas
// manuales (una fila por factura, producto "-"). Filtros exactos; vacío = todos.
func (r *AnalyticsRepo) ListSalesRows(ctx context.Context, customer, product string) ([]repository.SalesRow, error) {
	const query = `
	SELECT issue_date, customer_name, product, total FROM (
	    SELECT i.issue_date, i.created_at, i.customer_name, l.product_name AS product, l.line_total AS total, l.position
	    FROM invoices i
	    JOIN invoice_lines l ON l.invoice_id = i.id
	    UNION ALL
	    SELECT i.issue_date, i.created_at, i.customer_name, $3::TEXT AS product, i.total, 0
	    FROM invoices i
	    WHERE NOT EXISTS (SELECT 1 FROM invoice_lines l WHERE l.invoice_id = i.id)
	) s
	WHERE ($1::TEXT = '' OR customer_name = $1)
	  AND ($2::TEXT = '' OR product = $2)
	ORDER BY issue_date DESC, created_at DESC, position`

	rows, err := r.q.Query(ctx, query, customer, product, repository.NoProduct)
	if err != nil {
		return nil, fmt.Errorf("sales rows: %w", err)
	}
	defer rows.Close()

	out := []repository.SalesRow{}
	for rows.Next() {
		var row repository.SalesRow
		if err := rows.Scan(&row.Date, &row.Customer, &row.Product, &row.Total); err != nil {
			return nil, fmt.Errorf("scan sales row: %w", err)
		}
		row.Date = entity.DateOnly(row.Date)
		out = append(out, row)
	}
	return out, rows.Err()
}
