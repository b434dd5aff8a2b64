package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/supermack-billing/internal/application/dto"
	"github.com/jhoicas/supermack-billing/internal/domain"
	"github.com/jhoicas/supermack-billing/internal/domain/entity"
	"github.com/jhoicas/supermack-billing/internal/domain/repository"
)

// SettingsUseCase perfil del negocio y numeración de facturas.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get configuración actual.
func (uc *SettingsUseCase) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(s), nil
}

// UpdateProfile reemplaza los datos del negocio.
func (uc *SettingsUseCase) UpdateProfile(ctx context.Context, in dto.ProfileRequest) (*dto.SettingsResponse, error) {
	name := strings.TrimSpace(in.CompanyName)
	if name == "" {
		return nil, domain.Invalid("company_name", "company_name es requerido")
	}
	email := strings.TrimSpace(in.Email)
	if email != "" && !strings.Contains(email, "@") {
		return nil, domain.Invalid("email", "email no es válido")
	}
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	s.Profile = entity.BusinessProfile{
		CompanyName: name,
		Address:     strings.TrimSpace(in.Address),
		Email:       email,
		Phone:       strings.TrimSpace(in.Phone),
	}
	s.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return toSettingsResponse(s), nil
}

// UpdateInvoiceSettings cambia tipo de impuesto, prefijo y siguiente consecutivo.
func (uc *SettingsUseCase) UpdateInvoiceSettings(ctx context.Context, in dto.InvoiceSettingsRequest) (*dto.SettingsResponse, error) {
	if !entity.ValidTaxType(in.TaxType) {
		return nil, domain.Invalid("tax_type", "tax_type debe ser GST, VAT o None")
	}
	prefix := strings.TrimSpace(in.InvoicePrefix)
	if prefix == "" {
		prefix = entity.DefaultSettings().Invoice.InvoicePrefix
	}
	if in.NextInvoiceNumber < 1 {
		return nil, domain.Invalid("next_invoice_number", "next_invoice_number debe ser mayor o igual a 1")
	}
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	s.Invoice = entity.InvoiceSettings{
		TaxType:           in.TaxType,
		InvoicePrefix:     prefix,
		NextInvoiceNumber: in.NextInvoiceNumber,
	}
	s.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return toSettingsResponse(s), nil
}

func toSettingsResponse(s *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		Profile: dto.ProfileRequest{
			CompanyName: s.Profile.CompanyName,
			Address:     s.Profile.Address,
			Email:       s.Profile.Email,
			Phone:       s.Profile.Phone,
		},
		Invoice: dto.InvoiceSettingsRequest{
			TaxType:           s.Invoice.TaxType,
			InvoicePrefix:     s.Invoice.InvoicePrefix,
			NextInvoiceNumber: s.Invoice.NextInvoiceNumber,
		},
		UpdatedAt: s.UpdatedAt,
	}
}
