package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/supermack-billing/internal/application/dto"
	"github.com/jhoicas/supermack-billing/internal/domain"
	"github.com/jhoicas/supermack-billing/internal/domain/entity"
	"github.com/jhoicas/supermack-billing/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios (vista de administración).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func validateRole(role string) error {
	if role == "" {
		return domain.Invalid("role", "role es requerido")
	}
	if !entity.Role(role).Valid() {
		return domain.Invalid("role", "role debe ser Admin, Manager o Viewer")
	}
	return nil
}

// Create crea un usuario: hashea password con bcrypt y persiste.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	switch {
	case in.Name == "":
		return nil, domain.Invalid("name", "name es requerido")
	case in.Email == "":
		return nil, domain.Invalid("email", "email es requerido")
	case !strings.Contains(in.Email, "@"):
		return nil, domain.Invalid("email", "email no es válido")
	case in.Password == "":
		return nil, domain.Invalid("password", "password es requerido")
	}
	if err := validateRole(in.Role); err != nil {
		return nil, err
	}
	if _, err := uc.repo.GetByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.Role(in.Role),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := dto.UserFromEntity(user)
	return &resp, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.UserFromEntity(user)
	return &resp, nil
}

// List todos los usuarios.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.UserFromEntity(u))
	}
	return out, nil
}

// Update cambia nombre y rol. Las sesiones abiertas conservan el rol con el que
// iniciaron hasta el siguiente login.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, domain.Invalid("name", "name es requerido")
	}
	if err := validateRole(in.Role); err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Name = in.Name
	user.Role = entity.Role(in.Role)
	user.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := dto.UserFromEntity(user)
	return &resp, nil
}

// Delete elimina un usuario. Un usuario no puede eliminarse a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return domain.WithMessage(domain.ErrConflict, "no puede eliminar su propio usuario")
	}
	return uc.repo.Delete(ctx, id)
}
