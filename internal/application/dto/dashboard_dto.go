package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	DailySales      decimal.Decimal `json:"daily_sales"`       // total facturado hoy
	DailySalesLabel string          `json:"daily_sales_label"` // ej: "LKR 1,250.00"

	OutstandingInvoices int64 `json:"outstanding_invoices"` // vencimiento hoy o después
	Customers           int64 `json:"customers"`
	ProductsInStock     int64 `json:"products_in_stock"` // suma de unidades

	// Últimos 7 días, del más antiguo a hoy.
	WeeklySales []WeeklySalesPointDTO `json:"weekly_sales"`

	QuickActions []NavigationItem `json:"quick_actions"`

	DateLabel string `json:"date_label"` // ej: "Monday, October 19, 2026"
}

// WeeklySalesPointDTO un punto del gráfico de ventas semanales.
type WeeklySalesPointDTO struct {
	Day   string          `json:"day"` // Mon..Sun
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// SalesReportRowDTO fila del reporte de ventas.
type SalesReportRowDTO struct {
	Date     string          `json:"date"`
	Customer string          `json:"customer"`
	Product  string          `json:"product"`
	Total    decimal.Decimal `json:"total"`
}

// SalesReportDTO respuesta de GET /api/reports/sales.
type SalesReportDTO struct {
	Rows       []SalesReportRowDTO `json:"rows"`
	GrandTotal decimal.Decimal     `json:"grand_total"`
	Customer   string              `json:"customer,omitempty"`
	Product    string              `json:"product,omitempty"`
}

// ReportOptionsDTO valores disponibles para los filtros del reporte.
type ReportOptionsDTO struct {
	Customers []string `json:"customers"`
	Products  []string `json:"products"`
}
