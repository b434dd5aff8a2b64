// Package analytics contiene los casos de uso del dashboard y del reporte de ventas.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermack-billing/internal/application/dto"
	"github.com/jhoicas/supermack-billing/internal/domain/access"
	"github.com/jhoicas/supermack-billing/internal/domain/entity"
	"github.com/jhoicas/supermack-billing/internal/domain/repository"
	"github.com/jhoicas/supermack-billing/pkg/money"
)

const weeklyDays = 7 // puntos del gráfico de ventas semanales

// quickActions accesos directos del dashboard; se muestran solo los que el rol puede abrir.
var quickActions = []access.View{
	access.ViewBillingMain,
	access.ViewInvoices,
	access.ViewCustomerForm,
	access.ViewProductForm,
	access.ViewReports,
}

// DashboardUseCase genera los widgets del dashboard.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	money         *money.Formatter
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, fmtr *money.Formatter) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, money: fmtr, now: time.Now}
}

// GetSummary construye el DashboardSummaryDTO para el rol de la sesión.
//
// Cinco consultas en paralelo: ventas de hoy, ventas por día de la semana,
// facturas pendientes, clientes y unidades en stock.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, role entity.Role) (*dto.DashboardSummaryDTO, error) {
	now := uc.now().UTC()

	// Hoy: [00:00, mañana 00:00)
	todayStart := entity.DateOnly(now)
	todayEnd := todayStart.AddDate(0, 0, 1)
	weekStart := todayStart.AddDate(0, 0, -(weeklyDays - 1))

	type amountResult struct {
		total decimal.Decimal
		err   error
	}
	type dailyResult struct {
		days []repository.DailySales
		err  error
	}
	type countResult struct {
		n   int64
		err error
	}

	todayCh := make(chan amountResult, 1)
	weekCh := make(chan dailyResult, 1)
	outstandingCh := make(chan countResult, 1)
	customersCh := make(chan countResult, 1)
	stockCh := make(chan countResult, 1)

	go func() {
		total, err := uc.analyticsRepo.GetSalesTotal(ctx, todayStart, todayEnd)
		todayCh <- amountResult{total, err}
	}()
	go func() {
		days, err := uc.analyticsRepo.GetDailySales(ctx, weekStart, todayEnd)
		weekCh <- dailyResult{days, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountOutstanding(ctx, todayStart)
		outstandingCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountCustomers(ctx)
		customersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.SumStock(ctx)
		stockCh <- countResult{n, err}
	}()

	today := <-todayCh
	week := <-weekCh
	outstanding := <-outstandingCh
	customers := <-customersCh
	stock := <-stockCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: ventas de hoy: %w", today.err)
	}
	if week.err != nil {
		return nil, fmt.Errorf("dashboard: ventas semanales: %w", week.err)
	}
	if outstanding.err != nil {
		return nil, fmt.Errorf("dashboard: facturas pendientes: %w", outstanding.err)
	}
	if customers.err != nil {
		return nil, fmt.Errorf("dashboard: clientes: %w", customers.err)
	}
	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: stock: %w", stock.err)
	}

	daily := today.total.Round(2)
	label := daily.StringFixed(2)
	if uc.money != nil {
		label = uc.money.Format(daily)
	}

	return &dto.DashboardSummaryDTO{
		DailySales:          daily,
		DailySalesLabel:     label,
		OutstandingInvoices: outstanding.n,
		Customers:           customers.n,
		ProductsInStock:     stock.n,
		WeeklySales:         weeklySeries(weekStart, week.days),
		QuickActions:        quickActionsFor(role),
		DateLabel:           dateLabel(now),
	}, nil
}

// weeklySeries completa con cero los días sin ventas.
func weeklySeries(start time.Time, days []repository.DailySales) []dto.WeeklySalesPointDTO {
	byDay := make(map[string]decimal.Decimal, len(days))
	for _, d := range days {
		byDay[d.Day.Format(entity.DateLayout)] = d.Total
	}
	out := make([]dto.WeeklySalesPointDTO, 0, weeklyDays)
	for i := 0; i < weeklyDays; i++ {
		day := start.AddDate(0, 0, i)
		key := day.Format(entity.DateLayout)
		total, ok := byDay[key]
		if !ok {
			total = decimal.Zero
		}
		out = append(out, dto.WeeklySalesPointDTO{
			Day:   day.Format("Mon"),
			Date:  key,
			Total: total.Round(2),
		})
	}
	return out
}

func quickActionsFor(role entity.Role) []dto.NavigationItem {
	items := []dto.NavigationItem{}
	for _, v := range quickActions {
		if access.CanView(role, v) {
			items = append(items, dto.NavigationItem{Path: string(v), Label: access.Label(v)})
		}
	}
	return items
}

// dateLabel devuelve una etiqueta legible del día, ej: "Monday, October 19, 2026".
func dateLabel(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}
