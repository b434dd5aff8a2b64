package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente (facturación y crédito).
type Customer struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	Address       string
	CreditBalance decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
