// Package memory implementa los puertos de persistencia en memoria. Es el
// driver por defecto (STORAGE_DRIVER=memory) y el doble de pruebas de los use cases.
package memory

import (
	"sync"

	"github.com/jhoicas/supermack-billing/internal/domain/entity"
	"github.com/jhoicas/supermack-billing/internal/domain/pos"
)

// Store datos compartidos por todos los repositorios en memoria.
type Store struct {
	mu sync.RWMutex

	users     map[string]*entity.User
	customers map[string]*entity.Customer
	products  map[string]*entity.Product
	invoices  map[string]*entity.Invoice
	settings  *entity.Settings

	sessions map[string]*entity.Session
	carts    map[string]*pos.Cart

	// orden de alta, para listar en orden de catálogo
	productOrder []string

	// tx serializa RunBilling
	tx sync.Mutex
}

// NewStore crea un almacén vacío con la configuración por defecto.
func NewStore() *Store {
	def := entity.DefaultSettings()
	return &Store{
		users:     make(map[string]*entity.User),
		customers: make(map[string]*entity.Customer),
		products:  make(map[string]*entity.Product),
		invoices:  make(map[string]*entity.Invoice),
		settings:  &def,
		sessions:  make(map[string]*entity.Session),
		carts:     make(map[string]*pos.Cart),
	}
}

func cloneInvoice(in *entity.Invoice) *entity.Invoice {
	out := *in
	if in.Lines != nil {
		out.Lines = make([]entity.InvoiceLine, len(in.Lines))
		copy(out.Lines, in.Lines)
	}
	return &out
}

func cloneSession(in *entity.Session) *entity.Session {
	out := *in
	if in.LastInvoice != nil {
		li := *in.LastInvoice
		li.Lines = append([]entity.SavedInvoiceLine(nil), in.LastInvoice.Lines...)
		out.LastInvoice = &li
	}
	return &out
}

func cloneCart(in *pos.Cart) *pos.Cart {
	out := *in
	out.Lines = append([]pos.Line{}, in.Lines...)
	return &out
}
