package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/supermack-billing/internal/application/dto"
	"github.com/jhoicas/supermack-billing/internal/domain"
	"github.com/jhoicas/supermack-billing/internal/domain/entity"
	"github.com/jhoicas/supermack-billing/internal/domain/repository"
)

// Save convierte el carrito de la sesión en una factura. El número se toma de
// la configuración (prefijo-consecutivo) dentro de la misma transacción que
// inserta la factura. El carrito no se vacía: la caja decide cuándo limpiarlo.
func (uc *POSUseCase) Save(ctx context.Context, session *entity.Session, in dto.SaveCartRequest) (*dto.InvoiceResponse, error) {
	unlock := uc.lock(session.ID)
	defer unlock()
	if err := uc.requireSession(ctx, session.ID); err != nil {
		return nil, err
	}

	cart, err := uc.loadCart(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	if cart.Empty() {
		return nil, domain.WithMessage(domain.ErrEmptyCart, MsgEmptyCart)
	}
	paymentType := strings.TrimSpace(in.PaymentType)
	if paymentType == "" {
		paymentType = entity.PaymentCash
	}
	if !entity.ValidPaymentType(paymentType) {
		return nil, domain.Invalid("payment_type", "payment_type debe ser Cash, Card, BankTransfer o Credit")
	}
	customer := strings.TrimSpace(in.CustomerName)
	if customer == "" {
		customer = WalkInCustomer
	}

	now := uc.now().UTC()
	today := entity.DateOnly(now)
	totals := cart.Totals()
	inv := &entity.Invoice{
		ID:           uuid.New().String(),
		Reference:    strings.TrimSpace(in.Reference),
		CustomerName: customer,
		IssueDate:    today,
		DueDate:      today,
		AmountType:   entity.AmountTypeExclusive,
		PaymentType:  paymentType,
		Subtotal:     totals.Subtotal,
		Tax:          totals.Tax,
		Total:        totals.Total,
		Source:       entity.InvoiceSourcePOS,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for i, l := range cart.Lines {
		inv.Lines = append(inv.Lines, entity.InvoiceLine{
			ID:          uuid.New().String(),
			InvoiceID:   inv.ID,
			ProductID:   l.Item.ID,
			ProductName: l.Item.Name,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			LineTotal:   l.LineTotal(),
			Position:    i + 1,
		})
	}

	err = uc.txRunner.RunBilling(ctx, func(settingsRepo repository.SettingsRepository, invoiceRepo repository.InvoiceRepository) error {
		// una factura manual puede haber tomado el número: se salta al siguiente
		for attempt := 0; attempt < maxNumberAttempts; attempt++ {
			prefix, number, err := settingsRepo.ReserveInvoiceNumber(ctx)
			if err != nil {
				return fmt.Errorf("reservar consecutivo: %w", err)
			}
			inv.Number = formatInvoiceNumber(prefix, number)
			err = invoiceRepo.Create(ctx, inv)
			if !errors.Is(err, domain.ErrDuplicate) {
				return err
			}
			uc.log.Warn().Str("number", inv.Number).Msg("consecutivo ocupado, se reserva el siguiente")
		}
		return domain.WithMessage(domain.ErrDuplicate, MsgDuplicateNumber)
	})
	if err != nil {
		return nil, fmt.Errorf("guardar factura: %w", err)
	}

	saved := &entity.SavedInvoice{
		InvoiceID: inv.ID,
		Number:    inv.Number,
		Date:      now,
		Subtotal:  totals.Subtotal,
		Tax:       totals.Tax,
		Total:     totals.Total,
	}
	for _, l := range cart.Lines {
		saved.Lines = append(saved.Lines, entity.SavedInvoiceLine{
			LineID:    l.LineID,
			ProductID: l.Item.ID,
			Name:      l.Item.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			LineTotal: l.LineTotal(),
		})
	}
	// la factura ya está confirmada; la venta se responde aunque la sesión no se actualice
	if err := uc.sessions.SetLastInvoice(ctx, session.ID, saved); err != nil {
		uc.log.Warn().Err(err).
			Str("invoice_id", inv.ID).
			Str("session_id", session.ID).
			Msg("no se pudo guardar la última factura en la sesión")
	}

	uc.log.Info().
		Str("invoice_id", inv.ID).
		Str("number", inv.Number).
		Str("user_id", session.UserID).
		Str("total", inv.Total.StringFixed(2)).
		Int("lines", len(inv.Lines)).
		Msg("factura guardada desde el punto de venta")

	return toInvoiceResponse(inv, uc.money), nil
}

// maxNumberAttempts números ocupados que Save salta antes de rendirse.
const maxNumberAttempts = 50

func formatInvoiceNumber(prefix string, number int64) string {
	if prefix == "" {
		return fmt.Sprintf("%d", number)
	}
	return fmt.Sprintf("%s-%d", prefix, number)
}
