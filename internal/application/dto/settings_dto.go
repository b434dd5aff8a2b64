package dto

import "time"

// ProfileRequest body para PUT /api/settings/profile.
type ProfileRequest struct {
	CompanyName string `json:"company_name"`
	Address     string `json:"address"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

// InvoiceSettingsRequest body para PUT /api/settings/invoice.
type InvoiceSettingsRequest struct {
	TaxType           string `json:"tax_type"` // GST | VAT | None
	InvoicePrefix     string `json:"invoice_prefix"`
	NextInvoiceNumber int64  `json:"next_invoice_number"`
}

// SettingsResponse configuración completa.
type SettingsResponse struct {
	Profile   ProfileRequest         `json:"profile"`
	Invoice   InvoiceSettingsRequest `json:"invoice"`
	UpdatedAt time.Time              `json:"updated_at"`
}
