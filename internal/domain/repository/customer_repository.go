package repository

import (
	"context"

	"github.com/jhoicas/supermack-billing/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// List filtra por search en cualquier campo (vacío = todos), ordenado por nombre.
	List(ctx context.Context, search string) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id string) error
}
