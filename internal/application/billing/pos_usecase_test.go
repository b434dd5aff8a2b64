package billing_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supermack-billing/internal/application/billing"
	"github.com/jhoicas/supermack-billing/internal/application/dto"
	"github.com/jhoicas/supermack-billing/internal/domain"
	"github.com/jhoicas/supermack-billing/internal/domain/entity"
	"github.com/jhoicas/supermack-billing/internal/domain/pos"
	"github.com/jhoicas/supermack-billing/internal/domain/repository"
	"github.com/jhoicas/supermack-billing/internal/infrastructure/memory"
	"github.com/jhoicas/supermack-billing/pkg/money"
)

type posFixture struct {
	uc      *billing.POSUseCase
	store   *memory.Store
	session *entity.Session
}

func newPOSFixture(t *testing.T) posFixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	require.NoError(t, products.Create(ctx, &entity.Product{
		ID: "1", Name: "Apple", Category: entity.CategoryGrocery, Barcode: "111",
		Price: decimal.RequireFromString("1.00"), Stock: 10,
	}))
	require.NoError(t, products.Create(ctx, &entity.Product{
		ID: "2", Name: "Banana", Category: entity.CategoryGrocery, Barcode: "222",
		Price: decimal.RequireFromString("0.50"), Stock: 20,
	}))

	sessions := memory.NewSessionStore(store)
	session := &entity.Session{ID: "sess-1", Token: "tok", UserID: "u1", Role: entity.RoleViewer}
	require.NoError(t, sessions.Save(ctx, session))

	uc := billing.NewPOSUseCase(
		products,
		memory.NewCartStore(store),
		sessions,
		memory.NewTxRunner(store),
		money.MustFormatter("LKR"),
		billing.POSConfig{TaxRate: pos.DefaultTaxRate},
		nil,
	)
	return posFixture{uc: uc, store: store, session: session}
}

func TestPOS_AgregarDosVecesElMismoProducto(t *testing.T) {
	f := newPOSFixture(t)
	ctx := context.Background()

	_, err := f.uc.AddProduct(ctx, f.session.ID, "1")
	require.NoError(t, err)
	cart, err := f.uc.AddProduct(ctx, f.session.ID, "1")
	require.NoError(t, err)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(2), cart.Lines[0].Quantity)
	assert.Equal(t, "2.00", cart.Lines[0].LineTotal.StringFixed(2))
	assert.Equal(t, "2.20", cart.Total.StringFixed(2))
}

func TestPOS_ScanCodigoInexistente(t *testing.T) {
	f := newPOSFixture(t)
	_, err := f.uc.Scan(context.Background(), f.session.ID, "999")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, billing.MsgBarcodeNotFound, err.Error())
}

func TestPOS_ScanYBusqueda(t *testing.T) {
	f := newPOSFixture(t)
	ctx := context.Background()

	_, err := f.uc.Scan(ctx, f.session.ID, "222")
	require.NoError(t, err)
	cart, err := f.uc.Search(ctx, f.session.ID, "APP")
	require.NoError(t, err)

	require.Len(t, cart.Lines, 2)
	assert.Equal(t, "Banana", cart.Lines[0].Item.Name)
	assert.Equal(t, "Apple", cart.Lines[1].Item.Name)
	assert.Equal(t, "1.50", cart.Subtotal.StringFixed(2))
	assert.Equal(t, "0.15", cart.Tax.StringFixed(2))

	_, err = f.uc.Search(ctx, f.session.ID, "kiwi")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPOS_UpdateLineNegativoNoModificaCarrito(t *testing.T) {
	f := newPOSFixture(t)
	ctx := context.Background()
	cart, err := f.uc.AddProduct(ctx, f.session.ID, "1")
	require.NoError(t, err)
	lineID := cart.Lines[0].LineID

	_, err = f.uc.UpdateLine(ctx, f.session.ID, lineID, dto.UpdateLineRequest{Field: "quantity", Value: decimal.NewFromInt(-3)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	cart, err = f.uc.UpdateLine(ctx, f.session.ID, lineID, dto.UpdateLineRequest{Field: "price", Value: decimal.RequireFromString("3.00")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), cart.Lines[0].Quantity)
	assert.Equal(t, "3.30", cart.Total.StringFixed(2))
}

func TestPOS_RemoveYClear(t *testing.T) {
	f := newPOSFixture(t)
	ctx := context.Background()
	_, _ = f.uc.AddProduct(ctx, f.session.ID, "1")
	cart, _ := f.uc.AddProduct(ctx, f.session.ID, "2")

	cart, err := f.uc.RemoveLine(ctx, f.session.ID, cart.Lines[0].LineID)
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 1)

	_, err = f.uc.RemoveLine(ctx, f.session.ID, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	cart, err = f.uc.Clear(ctx, f.session.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestPOS_CarritosIndependientesPorSesion(t *testing.T) {
	f := newPOSFixture(t)
	ctx := context.Background()
	_, _ = f.uc.AddProduct(ctx, f.session.ID, "1")

	other, err := f.uc.GetCart(ctx, "sess-2")
	require.NoError(t, err)
	assert.Empty(t, other.Lines)
}

func TestPOS_GuardarCarritoVacio(t *testing.T) {
	f := newPOSFixture(t)
	_, err := f.uc.Save(context.Background(), f.session, dto.SaveCartRequest{})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestPOS_GuardarCreaFacturaNumerada(t *testing.T) {
	f := newPOSFixture(t)
	ctx := context.Background()
	_, _ = f.uc.AddProduct(ctx, f.session.ID, "1")
	_, _ = f.uc.AddProduct(ctx, f.session.ID, "1")
	_, _ = f.uc.AddProduct(ctx, f.session.ID, "2")

	inv, err := f.uc.Save(ctx, f.session, dto.SaveCartRequest{})
	require.NoError(t, err)
	assert.Equal(t, "INV-1001", inv.Number)
	assert.Equal(t, billing.WalkInCustomer, inv.CustomerName)
	assert.Equal(t, entity.InvoiceSourcePOS, inv.Source)
	assert.Equal(t, "2.75", inv.Total.StringFixed(2))
	assert.Len(t, inv.Lines, 2)
	assert.Equal(t, time.Now().UTC().Format(entity.DateLayout), inv.IssueDate)

	last, err := f.uc.LastInvoice(ctx, f.session.ID)
	require.NoError(t, err)
	assert.Equal(t, inv.ID, last.InvoiceID)
	assert.Len(t, last.Lines, 2)

	// el carrito se conserva y el consecutivo avanza
	inv2, err := f.uc.Save(ctx, f.session, dto.SaveCartRequest{CustomerName: "Nimal", PaymentType: entity.PaymentCard})
	require.NoError(t, err)
	assert.Equal(t, "INV-1002", inv2.Number)
	assert.Equal(t, "Nimal", inv2.CustomerName)

	settings, err := memory.NewSettingsRepository(f.store).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1003), settings.Invoice.NextInvoiceNumber)
}

func TestPOS_GuardarFormaDePagoInvalida(t *testing.T) {
	f := newPOSFixture(t)
	ctx := context.Background()
	_, _ = f.uc.AddProduct(ctx, f.session.ID, "1")
	_, err := f.uc.Save(ctx, f.session, dto.SaveCartRequest{PaymentType: "Bitcoin"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPOS_LastInvoiceSinGuardar(t *testing.T) {
	f := newPOSFixture(t)
	_, err := f.uc.LastInvoice(context.Background(), f.session.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPOS_GuardadosConcurrentesNoRepitenNumero(t *testing.T) {
	f := newPOSFixture(t)
	ctx := context.Background()
	sessions := memory.NewSessionStore(f.store)

	var wg sync.WaitGroup
	numbers := make(chan string, 10)
	for i := 0; i < 10; i++ {
		s := &entity.Session{ID: "s" + string(rune('a'+i)), Token: "t", Role: entity.RoleViewer}
		require.NoError(t, sessions.Save(ctx, s))
		_, err := f.uc.AddProduct(ctx, s.ID, "2")
		require.NoError(t, err)
		wg.Add(1)
		go func(s *entity.Session) {
			defer wg.Done()
			inv, err := f.uc.Save(ctx, s, dto.SaveCartRequest{})
			if assert.NoError(t, err) {
				numbers <- inv.Number
			}
		}(s)
	}
	wg.Wait()
	close(numbers)

	seen := map[string]bool{}
	for n := range numbers {
		assert.False(t, seen[n], "número repetido %s", n)
		seen[n] = true
	}
	assert.Len(t, seen, 10)
}

func TestPOS_GuardarSaltaNumeroTomadoPorFacturaManual(t *testing.T) {
	f := newPOSFixture(t)
	ctx := context.Background()
	invoices := memory.NewInvoiceRepository(f.store)
	require.NoError(t, invoices.Create(ctx, &entity.Invoice{
		ID: "manual-1", Number: "INV-1001", CustomerName: "John Doe",
		Total: decimal.RequireFromString("10"), Source: entity.InvoiceSourceManual,
	}))
	_, _ = f.uc.AddProduct(ctx, f.session.ID, "1")

	inv, err := f.uc.Save(ctx, f.session, dto.SaveCartRequest{})
	require.NoError(t, err)
	assert.Equal(t, "INV-1002", inv.Number)

	inv, err = f.uc.Save(ctx, f.session, dto.SaveCartRequest{})
	require.NoError(t, err)
	assert.Equal(t, "INV-1003", inv.Number)
}

func TestPOS_GuardarSinNumerosLibres(t *testing.T) {
	f := newPOSFixture(t)
	ctx := context.Background()
	invoices := memory.NewInvoiceRepository(f.store)
	for n := 1001; n < 1101; n++ {
		require.NoError(t, invoices.Create(ctx, &entity.Invoice{
			ID: fmt.Sprintf("m-%d", n), Number: fmt.Sprintf("INV-%d", n), CustomerName: "John Doe",
			Total: decimal.Zero, Source: entity.InvoiceSourceManual,
		}))
	}
	_, _ = f.uc.AddProduct(ctx, f.session.ID, "1")

	_, err := f.uc.Save(ctx, f.session, dto.SaveCartRequest{})
	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Contains(t, err.Error(), billing.MsgDuplicateNumber)

	list, err := invoices.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 100)
}

// lastInvoiceFails sesión cuyo SetLastInvoice siempre falla.
type lastInvoiceFails struct {
	repository.SessionStore
}

func (lastInvoiceFails) SetLastInvoice(context.Context, string, *entity.SavedInvoice) error {
	return errors.New("redis: connection reset")
}

func TestPOS_GuardarResponde201AunqueFalleLastInvoice(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	require.NoError(t, products.Create(ctx, &entity.Product{
		ID: "1", Name: "Apple", Category: entity.CategoryGrocery, Price: decimal.RequireFromString("1.00"), Stock: 1,
	}))
	sessions := memory.NewSessionStore(store)
	session := &entity.Session{ID: "sess-1", Token: "tok", Role: entity.RoleViewer}
	require.NoError(t, sessions.Save(ctx, session))
	uc := billing.NewPOSUseCase(products, memory.NewCartStore(store), lastInvoiceFails{sessions},
		memory.NewTxRunner(store), money.MustFormatter("LKR"), billing.POSConfig{TaxRate: pos.DefaultTaxRate}, nil)

	_, err := uc.AddProduct(ctx, session.ID, "1")
	require.NoError(t, err)
	inv, err := uc.Save(ctx, session, dto.SaveCartRequest{})
	require.NoError(t, err)
	assert.Equal(t, "INV-1001", inv.Number)

	list, err := memory.NewInvoiceRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestPOS_GuardarConSesionCerradaNoPersiste(t *testing.T) {
	f := newPOSFixture(t)
	ctx := context.Background()
	_, _ = f.uc.AddProduct(ctx, f.session.ID, "1")
	require.NoError(t, memory.NewSessionStore(f.store).Delete(ctx, f.session.ID))

	_, err := f.uc.Save(ctx, f.session, dto.SaveCartRequest{})
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	list, err := memory.NewInvoiceRepository(f.store).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPOS_EndSessionBorraCarritoYNoSeRecrea(t *testing.T) {
	f := newPOSFixture(t)
	ctx := context.Background()
	carts := memory.NewCartStore(f.store)
	_, err := f.uc.AddProduct(ctx, f.session.ID, "1")
	require.NoError(t, err)

	require.NoError(t, memory.NewSessionStore(f.store).Delete(ctx, f.session.ID))
	require.NoError(t, f.uc.EndSession(ctx, f.session.ID))
	_, err = carts.Get(ctx, f.session.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	// una petición que llega tarde no deja un carrito huérfano
	_, err = f.uc.Scan(ctx, f.session.ID, "111")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = carts.Get(ctx, f.session.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
