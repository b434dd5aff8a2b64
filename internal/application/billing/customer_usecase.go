package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/supermack-billing/internal/application/dto"
	"github.com/jhoicas/supermack-billing/internal/domain"
	"github.com/jhoicas/supermack-billing/internal/domain/entity"
	"github.com/jhoicas/supermack-billing/internal/domain/repository"
)

// CustomerUseCase casos de uso para clientes (facturación).
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func validateCustomer(in *dto.CustomerRequest) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	switch {
	case in.Name == "":
		return domain.Invalid("name", "name es requerido")
	case in.Email == "":
		return domain.Invalid("email", "email es requerido")
	case !strings.Contains(in.Email, "@"):
		return domain.Invalid("email", "email no es válido")
	case in.Phone == "":
		return domain.Invalid("phone", "phone es requerido")
	}
	return nil
}

// Create crea un nuevo cliente.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if err := validateCustomer(&in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	customer := &entity.Customer{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		CreditBalance: in.CreditBalance,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("crear cliente: %w", err)
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// List lista clientes filtrando por search en cualquier campo.
func (uc *CustomerUseCase) List(ctx context.Context, search string) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

// Update reemplaza los datos del cliente.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if err := validateCustomer(&in); err != nil {
		return nil, err
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = in.Name
	c.Email = in.Email
	c.Phone = in.Phone
	c.Address = in.Address
	c.CreditBalance = in.CreditBalance
	c.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("actualizar cliente: %w", err)
	}
	return toCustomerResponse(c), nil
}

// Delete elimina el cliente.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:            c.ID,
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		CreditBalance: c.CreditBalance,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
