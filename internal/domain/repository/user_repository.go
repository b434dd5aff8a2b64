package repository

import (
	"context"

	"github.com/jhoicas/supermack-billing/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByEmail busca sin distinguir mayúsculas; ErrUserNotFound si no existe.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// Update persiste nombre y rol (el email y el hash no cambian desde la vista de usuarios).
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context) ([]*entity.User, error)
	Delete(ctx context.Context, id string) error
}
