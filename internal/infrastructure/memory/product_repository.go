package memory

import (
	"context"
	"strconv"

	"github.com/jhoicas/supermack-billing/internal/domain"
	"github.com/jhoicas/supermack-billing/internal/domain/entity"
	"github.com/jhoicas/supermack-billing/internal/domain/repository"
	"github.com/jhoicas/supermack-billing/pkg/search"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository implementación en memoria del catálogo.
type ProductRepository struct {
	s *Store
}

func NewProductRepository(s *Store) *ProductRepository {
	return &ProductRepository{s: s}
}

// barcodeTaken se llama con el lock tomado.
func (r *ProductRepository) barcodeTaken(barcode, exceptID string) bool {
	if barcode == "" {
		return false
	}
	for _, p := range r.s.products {
		if p.ID != exceptID && p.Barcode == barcode {
			return true
		}
	}
	return false
}

func (r *ProductRepository) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; ok {
		return domain.ErrDuplicate
	}
	if r.barcodeTaken(p.Barcode, "") {
		return domain.ErrDuplicate
	}
	cp := *p
	r.s.products[p.ID] = &cp
	r.s.productOrder = append(r.s.productOrder, p.ID)
	return nil
}

func (r *ProductRepository) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *ProductRepository) GetByBarcode(_ context.Context, barcode string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if barcode == "" {
		return nil, domain.ErrNotFound
	}
	for _, id := range r.s.productOrder {
		if p := r.s.products[id]; p.Barcode == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *ProductRepository) List(_ context.Context, q string) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []*entity.Product{}
	for _, id := range r.s.productOrder {
		p := r.s.products[id]
		if !search.AnyContains(q, p.Name, p.Category, p.Barcode, p.Price.StringFixed(2), strconv.FormatInt(p.Stock, 10)) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *ProductRepository) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.barcodeTaken(p.Barcode, p.ID) {
		return domain.ErrDuplicate
	}
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *ProductRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.products, id)
	for i, pid := range r.s.productOrder {
		if pid == id {
			r.s.productOrder = append(r.s.productOrder[:i], r.s.productOrder[i+1:]...)
			break
		}
	}
	return nil
}
