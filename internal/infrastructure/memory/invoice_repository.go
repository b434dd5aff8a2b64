package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/supermack-billing/internal/domain"
	"github.com/jhoicas/supermack-billing/internal/domain/entity"
	"github.com/jhoicas/supermack-billing/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepository)(nil)

// InvoiceRepository implementación en memoria de facturas.
type InvoiceRepository struct {
	s *Store
}

func NewInvoiceRepository(s *Store) *InvoiceRepository {
	return &InvoiceRepository{s: s}
}

// numberTaken se llama con el lock tomado.
func (r *InvoiceRepository) numberTaken(number, exceptID string) bool {
	for _, inv := range r.s.invoices {
		if inv.ID != exceptID && inv.Number == number {
			return true
		}
	}
	return false
}

func (r *InvoiceRepository) Create(_ context.Context, inv *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.invoices[inv.ID]; ok || r.numberTaken(inv.Number, "") {
		return domain.ErrDuplicate
	}
	r.s.invoices[inv.ID] = cloneInvoice(inv)
	return nil
}

// Update reemplaza la cabecera y conserva las líneas guardadas.
func (r *InvoiceRepository) Update(_ context.Context, inv *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.invoices[inv.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if r.numberTaken(inv.Number, inv.ID) {
		return domain.ErrDuplicate
	}
	next := cloneInvoice(inv)
	next.Lines = cur.Lines
	next.CreatedAt = cur.CreatedAt
	r.s.invoices[inv.ID] = next
	return nil
}

func (r *InvoiceRepository) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneInvoice(inv), nil
}

func (r *InvoiceRepository) List(_ context.Context) ([]*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return sortedInvoices(r.s), nil
}

func (r *InvoiceRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.invoices[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.invoices, id)
	return nil
}

// sortedInvoices copia de las facturas por fecha de emisión descendente. Requiere el lock.
func sortedInvoices(s *Store) []*entity.Invoice {
	out := make([]*entity.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		out = append(out, cloneInvoice(inv))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].IssueDate.Equal(out[j].IssueDate) {
			return out[i].IssueDate.After(out[j].IssueDate)
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Number > out[j].Number
	})
	return out
}
