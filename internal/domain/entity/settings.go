package entity

import "time"

// Tipos de impuesto configurables.
const (
	TaxTypeGST  = "GST"
	TaxTypeVAT  = "VAT"
	TaxTypeNone = "None"
)

// ValidTaxType informa si t es un tipo de impuesto conocido.
func ValidTaxType(t string) bool {
	switch t {
	case TaxTypeGST, TaxTypeVAT, TaxTypeNone:
		return true
	}
	return false
}

// BusinessProfile datos del negocio impresos en facturas.
type BusinessProfile struct {
	CompanyName string
	Address     string
	Email       string
	Phone       string
}

// InvoiceSettings formato de numeración de facturas.
type InvoiceSettings struct {
	TaxType           string
	InvoicePrefix     string
	NextInvoiceNumber int64
}

// Settings configuración editable del negocio (una sola fila).
type Settings struct {
	Profile   BusinessProfile
	Invoice   InvoiceSettings
	UpdatedAt time.Time
}

// DefaultSettings valores iniciales: prefijo INV, consecutivo 1001, GST.
func DefaultSettings() Settings {
	return Settings{
		Profile: BusinessProfile{CompanyName: "Super Mack"},
		Invoice: InvoiceSettings{
			TaxType:           TaxTypeGST,
			InvoicePrefix:     "INV",
			NextInvoiceNumber: 1001,
		},
	}
}
