package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de producto disponibles en el catálogo.
const (
	CategoryElectronics = "Electronics"
	CategoryClothing    = "Clothing"
	CategoryGrocery     = "Grocery"
)

// ValidCategory informa si c es una categoría conocida.
func ValidCategory(c string) bool {
	switch c {
	case CategoryElectronics, CategoryClothing, CategoryGrocery:
		return true
	}
	return false
}

// Product representa un artículo del catálogo; es lo que se escanea en el punto de venta.
type Product struct {
	ID        string
	Name      string
	Category  string
	Price     decimal.Decimal // precio de venta
	Stock     int64
	Barcode   string // único cuando no está vacío
	CreatedAt time.Time
	UpdatedAt time.Time
}
