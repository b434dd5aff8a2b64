package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermack-billing/internal/domain/entity"
	"github.com/jhoicas/supermack-billing/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepository)(nil)

// AnalyticsRepository agrega sobre los datos en memoria.
type AnalyticsRepository struct {
	s *Store
}

func NewAnalyticsRepository(s *Store) *AnalyticsRepository {
	return &AnalyticsRepository{s: s}
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

func (r *AnalyticsRepository) GetSalesTotal(_ context.Context, start, end time.Time) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	total := decimal.Zero
	for _, inv := range r.s.invoices {
		if inRange(inv.IssueDate, start, end) {
			total = total.Add(inv.Total)
		}
	}
	return total, nil
}

func (r *AnalyticsRepository) GetDailySales(_ context.Context, start, end time.Time) ([]repository.DailySales, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	byDay := map[time.Time]decimal.Decimal{}
	for _, inv := range r.s.invoices {
		if !inRange(inv.IssueDate, start, end) {
			continue
		}
		d := inv.IssueDate
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
		byDay[day] = byDay[day].Add(inv.Total)
	}
	out := make([]repository.DailySales, 0, len(byDay))
	for day, total := range byDay {
		out = append(out, repository.DailySales{Day: day, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out, nil
}

func (r *AnalyticsRepository) CountOutstanding(_ context.Context, from time.Time) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, inv := range r.s.invoices {
		if !inv.DueDate.Before(from) {
			n++
		}
	}
	return n, nil
}

func (r *AnalyticsRepository) CountCustomers(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.customers)), nil
}

func (r *AnalyticsRepository) SumStock(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, p := range r.s.products {
		n += p.Stock
	}
	return n, nil
}

func (r *AnalyticsRepository) ListSalesRows(_ context.Context, customer, product string) ([]repository.SalesRow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := []repository.SalesRow{}
	for _, inv := range sortedInvoices(r.s) {
		if customer != "" && inv.CustomerName != customer {
			continue
		}
		if inv.Source == entity.InvoiceSourcePOS && len(inv.Lines) > 0 {
			for _, l := range inv.Lines {
				if product != "" && l.ProductName != product {
					continue
				}
				rows = append(rows, repository.SalesRow{
					Date: inv.IssueDate, Customer: inv.CustomerName, Product: l.ProductName, Total: l.LineTotal,
				})
			}
			continue
		}
		if product != "" && product != repository.NoProduct {
			continue
		}
		rows = append(rows, repository.SalesRow{
			Date: inv.IssueDate, Customer: inv.CustomerName, Product: repository.NoProduct, Total: inv.Total,
		})
	}
	return rows, nil
}
