package repository

import (
	"context"

	"github.com/jhoicas/supermack-billing/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los productos son el catálogo del punto de venta.
type ProductRepository interface {
	// Create devuelve ErrDuplicate si el código de barras ya existe.
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	// List en orden de catálogo (alta), filtrado por search en cualquier campo.
	List(ctx context.Context, search string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
