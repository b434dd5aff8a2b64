package repository

import (
	"context"

	"github.com/jhoicas/supermack-billing/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice y sus líneas.
type InvoiceRepository interface {
	// Create inserta la cabecera y, si las hay, las líneas.
	Create(ctx context.Context, invoice *entity.Invoice) error
	// Update actualiza solo la cabecera.
	Update(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// List devuelve cabeceras y líneas ordenadas por fecha de emisión descendente.
	List(ctx context.Context) ([]*entity.Invoice, error)
	Delete(ctx context.Context, id string) error
}
