package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/supermack-billing/internal/domain"
	"github.com/jhoicas/supermack-billing/internal/domain/entity"
	"github.com/jhoicas/supermack-billing/internal/domain/repository"
	"github.com/jhoicas/supermack-billing/pkg/search"
)

var _ repository.CustomerRepository = (*CustomerRepository)(nil)

// CustomerRepository implementación en memoria del puerto de clientes.
type CustomerRepository struct {
	s *Store
}

func NewCustomerRepository(s *Store) *CustomerRepository {
	return &CustomerRepository{s: s}
}

func (r *CustomerRepository) Create(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[c.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *c
	r.s.customers[c.ID] = &cp
	return nil
}

func (r *CustomerRepository) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *CustomerRepository) List(_ context.Context, q string) ([]*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []*entity.Customer{}
	for _, c := range r.s.customers {
		if !search.AnyContains(q, c.Name, c.Email, c.Phone, c.Address, c.CreditBalance.StringFixed(2)) {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *CustomerRepository) Update(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.s.customers[c.ID] = &cp
	return nil
}

func (r *CustomerRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.customers, id)
	return nil
}
