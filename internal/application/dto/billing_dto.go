package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerRequest body para POST/PUT /api/customers.
type CustomerRequest struct {
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address,omitempty"`
	CreditBalance decimal.Decimal `json:"credit_balance"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address,omitempty"`
	CreditBalance decimal.Decimal `json:"credit_balance"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// InvoiceRequest body para POST/PUT /api/invoices (pantalla de facturas).
// Fechas en formato 2006-01-02; vacías = hoy.
type InvoiceRequest struct {
	Number       string          `json:"number"`
	Reference    string          `json:"reference,omitempty"`
	CustomerName string          `json:"customer_name"`
	IssueDate    string          `json:"issue_date,omitempty"`
	DueDate      string          `json:"due_date,omitempty"`
	AmountType   string          `json:"amount_type,omitempty"`  // Exclusive | Inclusive | NoTax
	PaymentType  string          `json:"payment_type,omitempty"` // Cash | Card | BankTransfer | Credit
	Total        decimal.Decimal `json:"total"`
}

// InvoiceResponse factura con líneas para GET /api/invoices/:id (vista previa).
type InvoiceResponse struct {
	ID           string                `json:"id"`
	Number       string                `json:"number"`
	Reference    string                `json:"reference,omitempty"`
	CustomerName string                `json:"customer_name"`
	IssueDate    string                `json:"issue_date"`
	DueDate      string                `json:"due_date"`
	AmountType   string                `json:"amount_type"`
	PaymentType  string                `json:"payment_type"`
	Subtotal     decimal.Decimal       `json:"subtotal"`
	Tax          decimal.Decimal       `json:"tax"`
	Total        decimal.Decimal       `json:"total"`
	TotalLabel   string                `json:"total_label"` // total con moneda, ej: "LKR 1,250.00"
	Source       string                `json:"source"`
	Lines        []InvoiceLineResponse `json:"lines"`
}

// InvoiceLineResponse línea de una factura del punto de venta.
type InvoiceLineResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// CatalogItemResponse artículo del catálogo del punto de venta.
type CatalogItemResponse struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Barcode string          `json:"barcode"`
	Price   decimal.Decimal `json:"price"`
}

// AddItemRequest body para POST /api/billing/cart/items.
type AddItemRequest struct {
	ProductID string `json:"product_id"`
}

// ScanRequest body para POST /api/billing/cart/scan.
type ScanRequest struct {
	Barcode string `json:"barcode"`
}

// SearchItemRequest body para POST /api/billing/cart/search.
type SearchItemRequest struct {
	Query string `json:"query"`
}

// UpdateLineRequest body para PATCH /api/billing/cart/lines/:lineId.
type UpdateLineRequest struct {
	Field string          `json:"field"` // quantity | price
	Value decimal.Decimal `json:"value"`
}

// SaveCartRequest body opcional para POST /api/billing/cart/save.
type SaveCartRequest struct {
	CustomerName string `json:"customer_name,omitempty"` // vacío = "Walk-in Customer"
	Reference    string `json:"reference,omitempty"`
	PaymentType  string `json:"payment_type,omitempty"`
}

// CartLineResponse línea del carrito.
type CartLineResponse struct {
	LineID    string              `json:"line_id"`
	Item      CatalogItemResponse `json:"item"`
	Quantity  int64               `json:"quantity"`
	UnitPrice decimal.Decimal     `json:"unit_price"`
	LineTotal decimal.Decimal     `json:"line_total"`
}

// CartResponse carrito con totales recalculados.
type CartResponse struct {
	Lines    []CartLineResponse `json:"lines"`
	TaxRate  decimal.Decimal    `json:"tax_rate"`
	Subtotal decimal.Decimal    `json:"subtotal"`
	Tax      decimal.Decimal    `json:"tax"`
	Total    decimal.Decimal    `json:"total"`
}

// LastInvoiceResponse última venta guardada por la sesión.
type LastInvoiceResponse struct {
	InvoiceID string             `json:"invoice_id"`
	Number    string             `json:"number"`
	Date      time.Time          `json:"date"`
	Lines     []CartLineResponse `json:"lines"`
	Subtotal  decimal.Decimal    `json:"subtotal"`
	Tax       decimal.Decimal    `json:"tax"`
	Total     decimal.Decimal    `json:"total"`
}
