package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermack-billing/internal/application/dto"
	"github.com/jhoicas/supermack-billing/internal/domain"
	"github.com/jhoicas/supermack-billing/internal/domain/entity"
	"github.com/jhoicas/supermack-billing/internal/domain/repository"
	"github.com/jhoicas/supermack-billing/pkg/money"
	"github.com/jhoicas/supermack-billing/pkg/search"
)

// MsgDuplicateNumber número de factura repetido.
const MsgDuplicateNumber = "ya existe una factura con ese número"

// InvoiceUseCase facturas de la pantalla de facturas (alta manual, edición, búsqueda).
type InvoiceUseCase struct {
	repo  repository.InvoiceRepository
	money *money.Formatter
	now   func() time.Time
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository, fmtr *money.Formatter) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, money: fmtr, now: time.Now}
}

// parseInvoiceRequest valida la entrada y devuelve fechas, tipo de importe y forma de pago normalizados.
func (uc *InvoiceUseCase) parseInvoiceRequest(in *dto.InvoiceRequest) (issue, due time.Time, err error) {
	in.Number = strings.TrimSpace(in.Number)
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.Reference = strings.TrimSpace(in.Reference)
	if in.Number == "" {
		return issue, due, domain.Invalid("number", "number es requerido")
	}
	if in.CustomerName == "" {
		return issue, due, domain.Invalid("customer_name", "customer_name es requerido")
	}
	if in.Total.IsNegative() {
		return issue, due, domain.Invalid("total", "total no puede ser negativo")
	}
	if in.AmountType == "" {
		in.AmountType = entity.AmountTypeExclusive
	}
	if !entity.ValidAmountType(in.AmountType) {
		return issue, due, domain.Invalid("amount_type", "amount_type debe ser Exclusive, Inclusive o NoTax")
	}
	if in.PaymentType == "" {
		in.PaymentType = entity.PaymentCash
	}
	if !entity.ValidPaymentType(in.PaymentType) {
		return issue, due, domain.Invalid("payment_type", "payment_type debe ser Cash, Card, BankTransfer o Credit")
	}
	today := entity.DateOnly(uc.now().UTC())
	if issue, err = parseDate("issue_date", in.IssueDate, today); err != nil {
		return issue, due, err
	}
	if due, err = parseDate("due_date", in.DueDate, today); err != nil {
		return issue, due, err
	}
	if due.Before(issue) {
		return issue, due, domain.Invalid("due_date", "due_date no puede ser anterior a issue_date")
	}
	return issue, due, nil
}

func parseDate(field, s string, def time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		return time.Time{}, domain.Invalid(field, field+" debe tener formato AAAA-MM-DD")
	}
	return t, nil
}

// Create registra una factura manual con el total digitado.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.InvoiceRequest) (*dto.InvoiceResponse, error) {
	issue, due, err := uc.parseInvoiceRequest(&in)
	if err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	inv := &entity.Invoice{
		ID:           uuid.New().String(),
		Number:       in.Number,
		Reference:    in.Reference,
		CustomerName: in.CustomerName,
		IssueDate:    issue,
		DueDate:      due,
		AmountType:   in.AmountType,
		PaymentType:  in.PaymentType,
		Subtotal:     decimal.Zero,
		Tax:          decimal.Zero,
		Total:        in.Total,
		Source:       entity.InvoiceSourceManual,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, inv); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.WithMessage(domain.ErrDuplicate, MsgDuplicateNumber)
		}
		return nil, fmt.Errorf("crear factura: %w", err)
	}
	return uc.ToResponse(inv), nil
}

// Update edita la cabecera. En facturas del punto de venta el total sigue
// siendo el derivado de las líneas.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.InvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.Source == entity.InvoiceSourcePOS {
		in.Total = inv.Total
	}
	issue, due, err := uc.parseInvoiceRequest(&in)
	if err != nil {
		return nil, err
	}
	inv.Number = in.Number
	inv.Reference = in.Reference
	inv.CustomerName = in.CustomerName
	inv.IssueDate = issue
	inv.DueDate = due
	inv.AmountType = in.AmountType
	inv.PaymentType = in.PaymentType
	inv.Total = in.Total
	inv.UpdatedAt = uc.now().UTC()
	if err := uc.repo.Update(ctx, inv); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.WithMessage(domain.ErrDuplicate, MsgDuplicateNumber)
		}
		return nil, fmt.Errorf("actualizar factura: %w", err)
	}
	return uc.ToResponse(inv), nil
}

// GetByID factura con líneas (vista previa e impresión).
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.ToResponse(inv), nil
}

// List facturas por fecha de emisión descendente, filtradas por search en
// cualquier campo sin distinguir mayúsculas.
func (uc *InvoiceUseCase) List(ctx context.Context, q string) ([]dto.InvoiceResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	q = strings.TrimSpace(q)
	out := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		if !matchesInvoice(inv, q) {
			continue
		}
		out = append(out, *uc.ToResponse(inv))
	}
	return out, nil
}

func matchesInvoice(inv *entity.Invoice, q string) bool {
	return search.AnyContains(q,
		inv.Number,
		inv.Reference,
		inv.CustomerName,
		inv.IssueDate.Format(entity.DateLayout),
		inv.DueDate.Format(entity.DateLayout),
		inv.AmountType,
		inv.PaymentType,
		inv.Total.StringFixed(2),
	)
}

// Delete elimina la factura y sus líneas.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// ToResponse convierte la entidad al DTO de la API.
func (uc *InvoiceUseCase) ToResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return toInvoiceResponse(inv, uc.money)
}

func toInvoiceResponse(inv *entity.Invoice, m *money.Formatter) *dto.InvoiceResponse {
	lines := make([]dto.InvoiceLineResponse, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, dto.InvoiceLineResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			LineTotal:   l.LineTotal,
		})
	}
	label := inv.Total.StringFixed(2)
	if m != nil {
		label = m.Format(inv.Total)
	}
	return &dto.InvoiceResponse{
		ID:           inv.ID,
		Number:       inv.Number,
		Reference:    inv.Reference,
		CustomerName: inv.CustomerName,
		IssueDate:    inv.IssueDate.Format(entity.DateLayout),
		DueDate:      inv.DueDate.Format(entity.DateLayout),
		AmountType:   inv.AmountType,
		PaymentType:  inv.PaymentType,
		Subtotal:     inv.Subtotal,
		Tax:          inv.Tax,
		Total:        inv.Total,
		TotalLabel:   label,
		Source:       inv.Source,
		Lines:        lines,
	}
}
