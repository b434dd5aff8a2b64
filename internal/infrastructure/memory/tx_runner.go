package memory

import (
	"context"

	"github.com/jhoicas/supermack-billing/internal/domain/repository"
)

// TxRunner serializa las operaciones de facturación sobre el almacén. Si fn
// falla se restaura la configuración (el consecutivo reservado no se pierde)
// y se descartan las facturas creadas dentro de fn.
type TxRunner struct {
	s *Store
}

func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// RunBilling ejecuta fn con repos de configuración y facturas.
func (r *TxRunner) RunBilling(ctx context.Context, fn func(
	settingsRepo repository.SettingsRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	r.s.tx.Lock()
	defer r.s.tx.Unlock()

	r.s.mu.RLock()
	settings := *r.s.settings
	before := make(map[string]bool, len(r.s.invoices))
	for id := range r.s.invoices {
		before[id] = true
	}
	r.s.mu.RUnlock()

	if err := fn(NewSettingsRepository(r.s), NewInvoiceRepository(r.s)); err != nil {
		r.s.mu.Lock()
		r.s.settings = &settings
		for id := range r.s.invoices {
			if !before[id] {
				delete(r.s.invoices, id)
			}
		}
		r.s.mu.Unlock()
		return err
	}
	return nil
}
