package pos

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supermack-billing/internal/domain"
)

var (
	apple  = CatalogItem{ID: "1", Name: "Apple", Barcode: "111", Price: decimal.RequireFromString("1.00")}
	banana = CatalogItem{ID: "2", Name: "Banana", Barcode: "222", Price: decimal.RequireFromString("0.50")}
)

func sequentialIDs(t *testing.T) {
	t.Helper()
	n := 0
	prev := newLineID
	newLineID = func() string { n++; return fmt.Sprintf("line-%d", n) }
	t.Cleanup(func() { newLineID = prev })
}

func TestAddItem_MismoArticuloIncrementaCantidad(t *testing.T) {
	c := NewCart(DefaultTaxRate)
	c.AddItem(apple)
	l := c.AddItem(apple)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, int64(2), l.Quantity)
	assert.True(t, decimal.RequireFromString("2.00").Equal(c.Lines[0].LineTotal()))
}

func TestAddItem_ArticuloNuevoAgregaLinea(t *testing.T) {
	sequentialIDs(t)
	c := NewCart(DefaultTaxRate)
	c.AddItem(apple)
	l := c.AddItem(banana)

	require.Len(t, c.Lines, 2)
	assert.Equal(t, "line-2", l.LineID)
	assert.Equal(t, int64(1), l.Quantity)
	assert.True(t, banana.Price.Equal(l.UnitPrice))
}

func TestTotals_SubtotalImpuestoTotal(t *testing.T) {
	c := NewCart(DefaultTaxRate)
	c.AddItem(apple)
	c.AddItem(apple)
	c.AddItem(banana)

	tot := c.Totals()
	assert.Equal(t, "2.5", tot.Subtotal.String())
	assert.Equal(t, "0.25", tot.Tax.String())
	assert.Equal(t, "2.75", tot.Total.String())

	// recalcular no cambia nada
	again := c.Totals()
	assert.True(t, tot.Total.Equal(again.Total))
	assert.True(t, tot.Tax.Equal(again.Tax))
}

func TestTotals_CarritoVacio(t *testing.T) {
	tot := NewCart(DefaultTaxRate).Totals()
	assert.True(t, tot.Total.IsZero())
}

func TestUpdateLine_CantidadYPrecio(t *testing.T) {
	c := NewCart(DefaultTaxRate)
	l := c.AddItem(apple)

	_, err := c.UpdateLine(l.LineID, FieldQuantity, decimal.NewFromInt(5))
	require.NoError(t, err)
	upd, err := c.UpdateLine(l.LineID, FieldPrice, decimal.RequireFromString("2.20"))
	require.NoError(t, err)

	assert.Equal(t, int64(5), upd.Quantity)
	assert.Equal(t, "11", c.Totals().Subtotal.String())
	assert.Equal(t, "12.1", c.Totals().Total.String())
}

func TestUpdateLine_CantidadCeroSeConserva(t *testing.T) {
	c := NewCart(DefaultTaxRate)
	l := c.AddItem(apple)
	_, err := c.UpdateLine(l.LineID, FieldQuantity, decimal.Zero)
	require.NoError(t, err)
	assert.Len(t, c.Lines, 1)
	assert.True(t, c.Totals().Total.IsZero())
}

func TestUpdateLine_RechazaNegativosYFracciones(t *testing.T) {
	c := NewCart(DefaultTaxRate)
	l := c.AddItem(apple)

	_, err := c.UpdateLine(l.LineID, FieldQuantity, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = c.UpdateLine(l.LineID, FieldPrice, decimal.RequireFromString("-0.01"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = c.UpdateLine(l.LineID, FieldQuantity, decimal.RequireFromString("1.5"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = c.UpdateLine(l.LineID, "discount", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Equal(t, int64(1), c.Lines[0].Quantity)
	assert.True(t, apple.Price.Equal(c.Lines[0].UnitPrice))
}

func TestUpdateLine_LineaInexistente(t *testing.T) {
	_, err := NewCart(DefaultTaxRate).UpdateLine("x", FieldQuantity, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemoveLine(t *testing.T) {
	c := NewCart(DefaultTaxRate)
	a := c.AddItem(apple)
	c.AddItem(banana)

	require.NoError(t, c.RemoveLine(a.LineID))
	require.Len(t, c.Lines, 1)
	assert.Equal(t, "2", c.Lines[0].Item.ID)
	assert.ErrorIs(t, c.RemoveLine(a.LineID), domain.ErrNotFound)

	// volver a agregar el artículo eliminado crea una línea nueva
	c.AddItem(apple)
	assert.Len(t, c.Lines, 2)
}

func TestFindByBarcode(t *testing.T) {
	catalog := []CatalogItem{apple, banana}
	it, ok := FindByBarcode(catalog, " 222 ")
	assert.True(t, ok)
	assert.Equal(t, "Banana", it.Name)

	_, ok = FindByBarcode(catalog, "999")
	assert.False(t, ok)
	_, ok = FindByBarcode(catalog, "  ")
	assert.False(t, ok)
}

func TestSearchByName_PrimeraCoincidenciaSinMayusculas(t *testing.T) {
	catalog := []CatalogItem{apple, banana, {ID: "3", Name: "Pineapple"}}
	it, ok := SearchByName(catalog, "APPLE")
	assert.True(t, ok)
	assert.Equal(t, "1", it.ID)

	it, ok = SearchByName(catalog, "nan")
	assert.True(t, ok)
	assert.Equal(t, "2", it.ID)

	_, ok = SearchByName(catalog, "")
	assert.False(t, ok)
	_, ok = SearchByName(catalog, "kiwi")
	assert.False(t, ok)
}
