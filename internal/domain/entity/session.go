package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SessionUser copia del usuario autenticado guardada en la sesión (sin hash).
type SessionUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// SavedInvoiceLine línea de la última factura guardada desde el punto de venta.
type SavedInvoiceLine struct {
	LineID    string          `json:"line_id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// SavedInvoice instantánea de la última venta guardada por la sesión.
type SavedInvoice struct {
	InvoiceID string             `json:"invoice_id"`
	Number    string             `json:"number"`
	Date      time.Time          `json:"date"`
	Lines     []SavedInvoiceLine `json:"lines"`
	Subtotal  decimal.Decimal    `json:"subtotal"`
	Tax       decimal.Decimal    `json:"tax"`
	Total     decimal.Decimal    `json:"total"`
}

// Session contexto de sesión del servidor. Reemplaza las claves token, role,
// username, user y lastInvoice que el front guardaba en el navegador.
// No expira: vive hasta el logout.
type Session struct {
	ID          string
	Token       string
	UserID      string
	Username    string
	Role        Role
	User        SessionUser
	LastInvoice *SavedInvoice
	CreatedAt   time.Time
}
