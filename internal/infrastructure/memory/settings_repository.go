package memory

import (
	"context"

	"github.com/jhoicas/supermack-billing/internal/domain/entity"
	"github.com/jhoicas/supermack-billing/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepository)(nil)

// SettingsRepository configuración del negocio en memoria.
type SettingsRepository struct {
	s *Store
}

func NewSettingsRepository(s *Store) *SettingsRepository {
	return &SettingsRepository{s: s}
}

func (r *SettingsRepository) Get(_ context.Context) (*entity.Settings, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	cp := *r.s.settings
	return &cp, nil
}

func (r *SettingsRepository) Save(_ context.Context, st *entity.Settings) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *st
	r.s.settings = &cp
	return nil
}

func (r *SettingsRepository) ReserveInvoiceNumber(_ context.Context) (string, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prefix := r.s.settings.Invoice.InvoicePrefix
	n := r.s.settings.Invoice.NextInvoiceNumber
	r.s.settings.Invoice.NextInvoiceNumber = n + 1
	return prefix, n, nil
}
