package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de importe de la factura.
const (
	AmountTypeExclusive = "Exclusive" // impuestos sumados al total
	AmountTypeInclusive = "Inclusive" // impuestos incluidos en los precios
	AmountTypeNoTax     = "NoTax"
)

// Formas de pago.
const (
	PaymentCash         = "Cash"
	PaymentCard         = "Card"
	PaymentBankTransfer = "BankTransfer"
	PaymentCredit       = "Credit"
)

// Origen de la factura.
const (
	InvoiceSourceManual = "manual" // total digitado en la pantalla de facturas
	InvoiceSourcePOS    = "pos"    // total derivado de las líneas del punto de venta
)

// ValidAmountType informa si t es un tipo de importe conocido.
func ValidAmountType(t string) bool {
	switch t {
	case AmountTypeExclusive, AmountTypeInclusive, AmountTypeNoTax:
		return true
	}
	return false
}

// ValidPaymentType informa si t es una forma de pago conocida.
func ValidPaymentType(t string) bool {
	switch t {
	case PaymentCash, PaymentCard, PaymentBankTransfer, PaymentCredit:
		return true
	}
	return false
}

// Invoice representa la cabecera de una factura.
type Invoice struct {
	ID           string
	Number       string
	Reference    string
	CustomerName string
	IssueDate    time.Time
	DueDate      time.Time
	AmountType   string
	PaymentType  string
	Subtotal     decimal.Decimal // cero en facturas manuales
	Tax          decimal.Decimal // cero en facturas manuales
	Total        decimal.Decimal
	Source       string
	Lines        []InvoiceLine // solo facturas del punto de venta
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// InvoiceLine línea persistida de una factura del punto de venta.
type InvoiceLine struct {
	ID          string
	InvoiceID   string
	ProductID   string
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
	Position    int
}

// DateLayout formato de fecha de facturas en la API y los reportes.
const DateLayout = "2006-01-02"

// DateOnly trunca t a la medianoche UTC de su fecha calendario.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
