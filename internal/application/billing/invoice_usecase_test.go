package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supermack-billing/internal/application/billing"
	"github.com/jhoicas/supermack-billing/internal/application/dto"
	"github.com/jhoicas/supermack-billing/internal/domain"
	"github.com/jhoicas/supermack-billing/internal/domain/entity"
	"github.com/jhoicas/supermack-billing/internal/infrastructure/memory"
	"github.com/jhoicas/supermack-billing/pkg/money"
)

func newInvoiceUC() *billing.InvoiceUseCase {
	return billing.NewInvoiceUseCase(memory.NewInvoiceRepository(memory.NewStore()), money.MustFormatter("LKR"))
}

func TestInvoice_CrearConValoresPorDefecto(t *testing.T) {
	uc := newInvoiceUC()
	inv, err := uc.Create(context.Background(), dto.InvoiceRequest{
		Number:       "INV-001",
		CustomerName: "John Doe",
		Total:        decimal.RequireFromString("1250.75"),
	})
	require.NoError(t, err)

	today := time.Now().UTC().Format(entity.DateLayout)
	assert.Equal(t, today, inv.IssueDate)
	assert.Equal(t, today, inv.DueDate)
	assert.Equal(t, entity.AmountTypeExclusive, inv.AmountType)
	assert.Equal(t, entity.PaymentCash, inv.PaymentType)
	assert.Equal(t, entity.InvoiceSourceManual, inv.Source)
	assert.Contains(t, inv.TotalLabel, "LKR")
	assert.Empty(t, inv.Lines)
}

func TestInvoice_Validaciones(t *testing.T) {
	uc := newInvoiceUC()
	ctx := context.Background()
	cases := map[string]dto.InvoiceRequest{
		"sin número":        {CustomerName: "A"},
		"sin cliente":       {Number: "1"},
		"total negativo":    {Number: "1", CustomerName: "A", Total: decimal.NewFromInt(-1)},
		"vence antes":       {Number: "1", CustomerName: "A", IssueDate: "2026-03-10", DueDate: "2026-03-01"},
		"fecha inválida":    {Number: "1", CustomerName: "A", IssueDate: "10/03/2026"},
		"forma de pago":     {Number: "1", CustomerName: "A", PaymentType: "Cheque"},
		"tipo de importe":   {Number: "1", CustomerName: "A", AmountType: "Gross"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Create(ctx, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestInvoice_NumeroDuplicado(t *testing.T) {
	uc := newInvoiceUC()
	ctx := context.Background()
	_, err := uc.Create(ctx, dto.InvoiceRequest{Number: "INV-1", CustomerName: "A"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.InvoiceRequest{Number: "INV-1", CustomerName: "B"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestInvoice_BusquedaGlobalYOrden(t *testing.T) {
	uc := newInvoiceUC()
	ctx := context.Background()
	_, err := uc.Create(ctx, dto.InvoiceRequest{Number: "INV-001", CustomerName: "John Doe", IssueDate: "2026-01-05", DueDate: "2026-02-05", Total: decimal.NewFromInt(100)})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.InvoiceRequest{Number: "INV-002", CustomerName: "Jane Roe", Reference: "PO-77", IssueDate: "2026-03-01", DueDate: "2026-03-01", PaymentType: entity.PaymentCard})
	require.NoError(t, err)

	all, err := uc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "INV-002", all[0].Number)

	for _, q := range []string{"john", "po-77", "2026-02-05", "card", "100.00"} {
		got, err := uc.List(ctx, q)
		require.NoError(t, err)
		assert.Len(t, got, 1, "búsqueda %q", q)
	}
}

func TestInvoice_ActualizarYEliminar(t *testing.T) {
	uc := newInvoiceUC()
	ctx := context.Background()
	inv, err := uc.Create(ctx, dto.InvoiceRequest{Number: "INV-9", CustomerName: "A"})
	require.NoError(t, err)

	upd, err := uc.Update(ctx, inv.ID, dto.InvoiceRequest{Number: "INV-9", CustomerName: "B", Total: decimal.NewFromInt(5)})
	require.NoError(t, err)
	assert.Equal(t, "B", upd.CustomerName)
	assert.Equal(t, "5.00", upd.Total.StringFixed(2))

	require.NoError(t, uc.Delete(ctx, inv.ID))
	_, err = uc.GetByID(ctx, inv.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, inv.ID), domain.ErrNotFound)
}
