package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermack-billing/internal/application/dto"
	"github.com/jhoicas/supermack-billing/internal/domain"
	"github.com/jhoicas/supermack-billing/internal/domain/entity"
	"github.com/jhoicas/supermack-billing/internal/domain/pos"
	"github.com/jhoicas/supermack-billing/internal/domain/repository"
	"github.com/jhoicas/supermack-billing/pkg/logger"
	"github.com/jhoicas/supermack-billing/pkg/money"
)

// Mensajes del punto de venta.
const (
	MsgBarcodeNotFound = "código de barras no encontrado"
	MsgItemNotFound    = "no hay artículos que coincidan con la búsqueda"
	MsgEmptyCart       = "la factura no tiene líneas"
	WalkInCustomer     = "Walk-in Customer"
)

// POSUseCase punto de venta: carrito borrador por sesión y guardado como factura.
type POSUseCase struct {
	productRepo repository.ProductRepository
	carts       repository.CartStore
	sessions    repository.SessionStore
	txRunner    BillingTxRunner
	money       *money.Formatter
	taxRate     decimal.Decimal
	log         *logger.Logger
	now         func() time.Time

	// un lock por sesión: las peticiones de una misma caja no se pisan el carrito
	locks *sessionLocks
}

// POSConfig parámetros de facturación.
type POSConfig struct {
	TaxRate decimal.Decimal // ej: 0.10
}

// NewPOSUseCase construye el caso de uso. log puede ser nil.
func NewPOSUseCase(
	productRepo repository.ProductRepository,
	carts repository.CartStore,
	sessions repository.SessionStore,
	txRunner BillingTxRunner,
	fmtr *money.Formatter,
	cfg POSConfig,
	log *logger.Logger,
) *POSUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &POSUseCase{
		productRepo: productRepo,
		carts:       carts,
		sessions:    sessions,
		txRunner:    txRunner,
		money:       fmtr,
		taxRate:     cfg.TaxRate,
		log:         log,
		now:         time.Now,
		locks:       newSessionLocks(),
	}
}

func (uc *POSUseCase) lock(sessionID string) func() {
	return uc.locks.lock(sessionID)
}

// requireSession se llama con el lock tomado: tras un logout el carrito no se recrea.
func (uc *POSUseCase) requireSession(ctx context.Context, sessionID string) error {
	_, err := uc.sessions.Get(ctx, sessionID)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("sesión %s cerrada: %w", sessionID, domain.ErrUnauthorized)
	}
	if err != nil {
		return fmt.Errorf("cargar sesión: %w", err)
	}
	return nil
}

// EndSession descarta el carrito de la sesión. Toma el lock de la sesión, así
// una operación en curso termina antes del borrado y las siguientes fallan.
// El logout borra la sesión antes de llamarlo.
func (uc *POSUseCase) EndSession(ctx context.Context, sessionID string) error {
	unlock := uc.lock(sessionID)
	defer unlock()
	if err := uc.carts.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("borrar carrito: %w", err)
	}
	return nil
}

func (uc *POSUseCase) loadCart(ctx context.Context, sessionID string) (*pos.Cart, error) {
	cart, err := uc.carts.Get(ctx, sessionID)
	if errors.Is(err, domain.ErrNotFound) {
		return pos.NewCart(uc.taxRate), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cargar carrito: %w", err)
	}
	cart.TaxRate = uc.taxRate
	return cart, nil
}

// mutate carga el carrito, aplica fn y lo guarda si fn no falla.
func (uc *POSUseCase) mutate(ctx context.Context, sessionID string, fn func(*pos.Cart) error) (*dto.CartResponse, error) {
	unlock := uc.lock(sessionID)
	defer unlock()
	if err := uc.requireSession(ctx, sessionID); err != nil {
		return nil, err
	}
	cart, err := uc.loadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(cart); err != nil {
		return nil, err
	}
	if err := uc.carts.Save(ctx, sessionID, cart); err != nil {
		return nil, fmt.Errorf("guardar carrito: %w", err)
	}
	return toCartResponse(cart), nil
}

// Catalog artículos vendibles en orden de catálogo.
func (uc *POSUseCase) Catalog(ctx context.Context) ([]dto.CatalogItemResponse, error) {
	items, err := uc.catalog(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CatalogItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toCatalogItemResponse(it))
	}
	return out, nil
}

func (uc *POSUseCase) catalog(ctx context.Context) ([]pos.CatalogItem, error) {
	products, err := uc.productRepo.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("listar catálogo: %w", err)
	}
	items := make([]pos.CatalogItem, 0, len(products))
	for _, p := range products {
		items = append(items, toCatalogItem(p))
	}
	return items, nil
}

// GetCart carrito actual de la sesión (vacío si no hay).
func (uc *POSUseCase) GetCart(ctx context.Context, sessionID string) (*dto.CartResponse, error) {
	cart, err := uc.loadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toCartResponse(cart), nil
}

// AddProduct agrega un producto del catálogo por ID.
func (uc *POSUseCase) AddProduct(ctx context.Context, sessionID, productID string) (*dto.CartResponse, error) {
	if productID == "" {
		return nil, domain.Invalid("product_id", "product_id es requerido")
	}
	p, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return uc.mutate(ctx, sessionID, func(c *pos.Cart) error {
		c.AddItem(toCatalogItem(p))
		return nil
	})
}

// Scan agrega el artículo cuyo código de barras coincide exactamente.
func (uc *POSUseCase) Scan(ctx context.Context, sessionID, barcode string) (*dto.CartResponse, error) {
	items, err := uc.catalog(ctx)
	if err != nil {
		return nil, err
	}
	item, ok := pos.FindByBarcode(items, barcode)
	if !ok {
		uc.log.Debug().Str("barcode", barcode).Msg("scan sin coincidencia")
		return nil, domain.WithMessage(domain.ErrNotFound, MsgBarcodeNotFound)
	}
	return uc.mutate(ctx, sessionID, func(c *pos.Cart) error {
		c.AddItem(item)
		return nil
	})
}

// Search agrega el primer artículo cuyo nombre contiene query.
func (uc *POSUseCase) Search(ctx context.Context, sessionID, query string) (*dto.CartResponse, error) {
	items, err := uc.catalog(ctx)
	if err != nil {
		return nil, err
	}
	item, ok := pos.SearchByName(items, query)
	if !ok {
		return nil, domain.WithMessage(domain.ErrNotFound, MsgItemNotFound)
	}
	return uc.mutate(ctx, sessionID, func(c *pos.Cart) error {
		c.AddItem(item)
		return nil
	})
}

// UpdateLine cambia cantidad o precio de una línea.
func (uc *POSUseCase) UpdateLine(ctx context.Context, sessionID, lineID string, in dto.UpdateLineRequest) (*dto.CartResponse, error) {
	return uc.mutate(ctx, sessionID, func(c *pos.Cart) error {
		_, err := c.UpdateLine(lineID, in.Field, in.Value)
		return err
	})
}

// RemoveLine quita una línea del carrito.
func (uc *POSUseCase) RemoveLine(ctx context.Context, sessionID, lineID string) (*dto.CartResponse, error) {
	return uc.mutate(ctx, sessionID, func(c *pos.Cart) error {
		return c.RemoveLine(lineID)
	})
}

// Clear vacía el carrito.
func (uc *POSUseCase) Clear(ctx context.Context, sessionID string) (*dto.CartResponse, error) {
	return uc.mutate(ctx, sessionID, func(c *pos.Cart) error {
		c.Clear()
		return nil
	})
}

// LastInvoice última venta guardada por la sesión.
func (uc *POSUseCase) LastInvoice(ctx context.Context, sessionID string) (*dto.LastInvoiceResponse, error) {
	s, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if s.LastInvoice == nil {
		return nil, domain.WithMessage(domain.ErrNotFound, "no hay facturas guardadas en esta sesión")
	}
	return dto.LastInvoiceFromEntity(s.LastInvoice), nil
}

func toCatalogItem(p *entity.Product) pos.CatalogItem {
	return pos.CatalogItem{ID: p.ID, Name: p.Name, Barcode: p.Barcode, Price: p.Price}
}

func toCatalogItemResponse(it pos.CatalogItem) dto.CatalogItemResponse {
	return dto.CatalogItemResponse{ID: it.ID, Name: it.Name, Barcode: it.Barcode, Price: it.Price}
}

func toCartResponse(c *pos.Cart) *dto.CartResponse {
	lines := make([]dto.CartLineResponse, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, dto.CartLineResponse{
			LineID:    l.LineID,
			Item:      toCatalogItemResponse(l.Item),
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			LineTotal: l.LineTotal(),
		})
	}
	t := c.Totals()
	return &dto.CartResponse{
		Lines:    lines,
		TaxRate:  c.TaxRate,
		Subtotal: t.Subtotal,
		Tax:      t.Tax,
		Total:    t.Total,
	}
}
