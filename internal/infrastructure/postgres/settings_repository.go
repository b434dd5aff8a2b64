package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/supermack-billing/internal/domain/entity"
	"github.com/jhoicas/supermack-billing/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo guarda la configuración en la fila única id = 1 de settings.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador (pool o tx).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devuelve DefaultSettings si la fila aún no existe.
func (r *SettingsRepo) Get(ctx context.Context) (*entity.Settings, error) {
	var s entity.Settings
	err := r.q.QueryRow(ctx, `
		SELECT company_name, address, email, phone, tax_type, invoice_prefix, next_invoice_number, updated_at
		FROM settings WHERE id = 1`).Scan(
		&s.Profile.CompanyName, &s.Profile.Address, &s.Profile.Email, &s.Profile.Phone,
		&s.Invoice.TaxType, &s.Invoice.InvoicePrefix, &s.Invoice.NextInvoiceNumber, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			d := entity.DefaultSettings()
			return &d, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Save hace upsert de la fila única.
func (r *SettingsRepo) Save(ctx context.Context, s *entity.Settings) error {
	query := `
		INSERT INTO settings (id, company_name, address, email, phone, tax_type, invoice_prefix, next_invoice_number, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			address = EXCLUDED.address,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			tax_type = EXCLUDED.tax_type,
			invoice_prefix = EXCLUDED.invoice_prefix,
			next_invoice_number = EXCLUDED.next_invoice_number,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		s.Profile.CompanyName, s.Profile.Address, s.Profile.Email, s.Profile.Phone,
		s.Invoice.TaxType, s.Invoice.InvoicePrefix, s.Invoice.NextInvoiceNumber, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// ReserveInvoiceNumber incrementa el consecutivo y devuelve el valor anterior.
// El UPDATE toma el lock de la fila, así dos ventas concurrentes no comparten número.
func (r *SettingsRepo) ReserveInvoiceNumber(ctx context.Context) (string, int64, error) {
	d := entity.DefaultSettings()
	if _, err := r.q.Exec(ctx, `
		INSERT INTO settings (id, company_name, tax_type, invoice_prefix, next_invoice_number)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING`,
		d.Profile.CompanyName, d.Invoice.TaxType, d.Invoice.InvoicePrefix, d.Invoice.NextInvoiceNumber,
	); err != nil {
		return "", 0, fmt.Errorf("init settings: %w", err)
	}

	var prefix string
	var number int64
	err := r.q.QueryRow(ctx, `
		UPDATE settings SET next_invoice_number = next_invoice_number + 1
		WHERE id = 1
		RETURNING invoice_prefix, next_invoice_number - 1`).Scan(&prefix, &number)
	if err != nil {
		return "", 0, fmt.Errorf("reserve invoice number: %w", err)
	}
	return prefix, number, nil
}
