// Package pos mantiene las líneas de una venta en curso y deriva sus totales.
package pos

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermack-billing/internal/domain"
	"github.com/jhoicas/supermack-billing/pkg/search"
)

// Campos editables de una línea.
const (
	FieldQuantity = "quantity"
	FieldPrice    = "price"
)

// DefaultTaxRate tasa de impuesto aplicada al subtotal.
var DefaultTaxRate = decimal.NewFromFloat(0.10)

var newLineID = uuid.NewString

// CatalogItem artículo vendible tal como lo ve el punto de venta.
type CatalogItem struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Barcode string          `json:"barcode"`
	Price   decimal.Decimal `json:"price"`
}

// Line una fila de la venta: un artículo, su cantidad y su precio unitario.
type Line struct {
	LineID    string          `json:"line_id"`
	Item      CatalogItem     `json:"item"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// LineTotal cantidad × precio.
func (l Line) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// Totals valores derivados de las líneas.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Cart venta en curso. Mantiene como máximo una línea por artículo.
type Cart struct {
	Lines   []Line          `json:"lines"`
	TaxRate decimal.Decimal `json:"tax_rate"`
}

// NewCart crea un carrito vacío con la tasa indicada.
func NewCart(taxRate decimal.Decimal) *Cart {
	return &Cart{Lines: []Line{}, TaxRate: taxRate}
}

// AddItem suma 1 a la línea del artículo si ya existe; si no, agrega una línea
// nueva con cantidad 1 al precio de catálogo. Devuelve la línea resultante.
func (c *Cart) AddItem(item CatalogItem) Line {
	for i := range c.Lines {
		if c.Lines[i].Item.ID == item.ID {
			c.Lines[i].Quantity++
			return c.Lines[i]
		}
	}
	l := Line{LineID: newLineID(), Item: item, Quantity: 1, UnitPrice: item.Price}
	c.Lines = append(c.Lines, l)
	return l
}

// UpdateLine sobrescribe la cantidad o el precio de una línea.
// La cantidad debe ser entera y ninguno de los dos puede ser negativo.
func (c *Cart) UpdateLine(lineID, field string, value decimal.Decimal) (Line, error) {
	i := c.indexOf(lineID)
	if i < 0 {
		return Line{}, fmt.Errorf("línea %s: %w", lineID, domain.ErrNotFound)
	}
	if value.IsNegative() {
		return Line{}, domain.Invalid(field, field+" no puede ser negativo")
	}
	switch field {
	case FieldQuantity:
		if !value.Equal(value.Truncate(0)) {
			return Line{}, domain.Invalid(field, "quantity debe ser un número entero")
		}
		c.Lines[i].Quantity = value.IntPart()
	case FieldPrice:
		c.Lines[i].UnitPrice = value
	default:
		return Line{}, domain.Invalid("field", "field debe ser quantity o price")
	}
	return c.Lines[i], nil
}

// RemoveLine elimina la línea.
func (c *Cart) RemoveLine(lineID string) error {
	i := c.indexOf(lineID)
	if i < 0 {
		return fmt.Errorf("línea %s: %w", lineID, domain.ErrNotFound)
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	return nil
}

// Clear vacía el carrito.
func (c *Cart) Clear() {
	c.Lines = []Line{}
}

// Empty informa si no hay líneas.
func (c *Cart) Empty() bool {
	return len(c.Lines) == 0
}

// Totals recalcula subtotal, impuesto y total. No modifica el carrito.
func (c *Cart) Totals() Totals {
	subtotal := decimal.Zero
	for _, l := range c.Lines {
		subtotal = subtotal.Add(l.LineTotal())
	}
	tax := subtotal.Mul(c.TaxRate)
	return Totals{Subtotal: subtotal, Tax: tax, Total: subtotal.Add(tax)}
}

func (c *Cart) indexOf(lineID string) int {
	for i := range c.Lines {
		if c.Lines[i].LineID == lineID {
			return i
		}
	}
	return -1
}

// FindByBarcode busca por código de barras exacto (sin espacios alrededor).
func FindByBarcode(catalog []CatalogItem, barcode string) (CatalogItem, bool) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return CatalogItem{}, false
	}
	for _, it := range catalog {
		if it.Barcode == barcode {
			return it, true
		}
	}
	return CatalogItem{}, false
}

// SearchByName primer artículo, en orden de catálogo, cuyo nombre contiene query
// sin distinguir mayúsculas. Una consulta vacía no coincide con nada.
func SearchByName(catalog []CatalogItem, query string) (CatalogItem, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return CatalogItem{}, false
	}
	for _, it := range catalog {
		if search.Contains(it.Name, query) {
			return it, true
		}
	}
	return CatalogItem{}, false
}
