package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supermack-billing/internal/application/dto"
	"github.com/jhoicas/supermack-billing/internal/infrastructure/memory"
)

func TestFacturaManual_FechaPorDefectoEnUTC(t *testing.T) {
	// 23:30 en Bogotá ya es el día siguiente en UTC
	bogota := time.FixedZone("COT", -5*60*60)
	uc := NewInvoiceUseCase(memory.NewInvoiceRepository(memory.NewStore()), nil)
	uc.now = func() time.Time { return time.Date(2026, 3, 9, 23, 30, 0, 0, bogota) }

	in := &dto.InvoiceRequest{Number: "INV-9", CustomerName: "John Doe", Total: decimal.RequireFromString("5")}
	issue, due, err := uc.parseInvoiceRequest(in)
	require.NoError(t, err)
	want := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, issue)
	assert.Equal(t, want, due)
}
