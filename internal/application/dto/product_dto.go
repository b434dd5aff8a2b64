package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest body para POST/PUT /api/products. Price y Stock son punteros
// para distinguir "no enviado" de cero.
type ProductRequest struct {
	Name     string           `json:"name"`
	Category string           `json:"category"` // Electronics | Clothing | Grocery
	Price    *decimal.Decimal `json:"price"`
	Stock    *int64           `json:"stock"`
	Barcode  string           `json:"barcode,omitempty"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Stock     int64           `json:"stock"`
	Barcode   string          `json:"barcode,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
