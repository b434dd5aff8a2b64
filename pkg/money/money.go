// Package money formatea importes para documentos impresos (PDF, reportes).
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formatea importes con el código de moneda y separadores de miles del idioma.
type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
}

// NewFormatter valida el código ISO 4217 (ej. "LKR", "USD") y construye el formateador.
func NewFormatter(code string, tag language.Tag) (*Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("money: moneda inválida %q: %w", code, err)
	}
	return &Formatter{unit: unit, printer: message.NewPrinter(tag)}, nil
}

// MustFormatter es NewFormatter que hace panic ante un código inválido.
func MustFormatter(code string) *Formatter {
	f, err := NewFormatter(code, language.English)
	if err != nil {
		panic(err)
	}
	return f
}

// Code devuelve el código ISO de la moneda.
func (f *Formatter) Code() string { return f.unit.String() }

// Format devuelve "LKR 1,250.75" (dos decimales, agrupación del idioma).
func (f *Formatter) Format(amount decimal.Decimal) string {
	v := amount.Round(2).InexactFloat64()
	return f.printer.Sprintf("%s %v", f.unit.String(), number.Decimal(v, number.Scale(2)))
}

// Plain devuelve el importe con dos decimales sin símbolo (tablas).
func (f *Formatter) Plain(amount decimal.Decimal) string {
	v := amount.Round(2).InexactFloat64()
	return f.printer.Sprint(number.Decimal(v, number.Scale(2)))
}
