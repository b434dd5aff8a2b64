package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/supermack-billing/internal/domain"
	"github.com/jhoicas/supermack-billing/internal/domain/entity"
	"github.com/jhoicas/supermack-billing/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, number, reference, customer_name, issue_date, due_date, amount_type, payment_type,
	subtotal, tax, total, source, created_at, updated_at`

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.Number, &inv.Reference, &inv.CustomerName, &inv.IssueDate, &inv.DueDate,
		&inv.AmountType, &inv.PaymentType, &inv.Subtotal, &inv.Tax, &inv.Total, &inv.Source,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	inv.IssueDate = entity.DateOnly(inv.IssueDate)
	inv.DueDate = entity.DateOnly(inv.DueDate)
	return &inv, nil
}

// Create persiste la cabecera y las líneas. Llamar dentro de RunBilling para que sea atómico.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoices (id, number, reference, customer_name, issue_date, due_date, amount_type, payment_type,
			subtotal, tax, total, source, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (number) DO NOTHING`
	// número repetido: 0 filas sin abortar la transacción, el llamador puede reintentar
	tag, err := r.q.Exec(ctx, query,
		inv.ID, inv.Number, inv.Reference, inv.CustomerName, inv.IssueDate, inv.DueDate,
		inv.AmountType, inv.PaymentType, inv.Subtotal, inv.Tax, inv.Total, inv.Source,
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDuplicate
	}

	for i := range inv.Lines {
		l := &inv.Lines[i]
		if l.ID == "" {
			l.ID = uuid.New().String()
		}
		l.InvoiceID = inv.ID
		_, err := r.q.Exec(ctx, `
			INSERT INTO invoice_lines (id, invoice_id, product_id, product_name, quantity, unit_price, line_total, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			l.ID, l.InvoiceID, l.ProductID, l.ProductName, l.Quantity, l.UnitPrice, l.LineTotal, l.Position,
		)
		if err != nil {
			return fmt.Errorf("insert invoice line: %w", err)
		}
	}
	return nil
}

// Update actualiza la cabecera; las líneas no se editan después de guardadas.
func (r *InvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET number        = $2,
		    reference     = $3,
		    customer_name = $4,
		    issue_date    = $5,
		    due_date      = $6,
		    amount_type   = $7,
		    payment_type  = $8,
		    total         = $9,
		    updated_at    = $10
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		inv.ID, inv.Number, inv.Reference, inv.CustomerName, inv.IssueDate, inv.DueDate,
		inv.AmountType, inv.PaymentType, inv.Total, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene la factura con sus líneas.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	inv, err := scanInvoice(r.q.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	lines, err := r.linesFor(ctx, []string{inv.ID})
	if err != nil {
		return nil, err
	}
	inv.Lines = lines[inv.ID]
	return inv, nil
}

// List devuelve todas las facturas (fecha de emisión descendente) con sus líneas.
func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY issue_date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	var list []*entity.Invoice
	ids := []string{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
		ids = append(ids, inv.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}

	lines, err := r.linesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, inv := range list {
		inv.Lines = lines[inv.ID]
	}
	return list, nil
}

func (r *InvoiceRepo) linesFor(ctx context.Context, ids []string) (map[string][]entity.InvoiceLine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, invoice_id, product_id, product_name, quantity, unit_price, line_total, position
		FROM invoice_lines WHERE invoice_id = ANY($1) ORDER BY invoice_id, position`, ids)
	if err != nil {
		return nil, fmt.Errorf("list invoice lines: %w", err)
	}
	defer rows.Close()
	out := map[string][]entity.InvoiceLine{}
	for rows.Next() {
		var l entity.InvoiceLine
		if err := rows.Scan(&l.ID, &l.InvoiceID, &l.ProductID, &l.ProductName, &l.Quantity, &l.UnitPrice, &l.LineTotal, &l.Position); err != nil {
			return nil, fmt.Errorf("scan invoice line: %w", err)
		}
		out[l.InvoiceID] = append(out[l.InvoiceID], l)
	}
	return out, rows.Err()
}

// Delete elimina la factura; las líneas caen por ON DELETE CASCADE.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
