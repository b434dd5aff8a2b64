package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/supermack-billing/internal/application/analytics"
	"github.com/jhoicas/supermack-billing/internal/application/auth"
	"github.com/jhoicas/supermack-billing/internal/application/billing"
	"github.com/jhoicas/supermack-billing/internal/application/dto"
	"github.com/jhoicas/supermack-billing/internal/application/usecase"
	"github.com/jhoicas/supermack-billing/internal/infrastructure/excel"
	"github.com/jhoicas/supermack-billing/internal/infrastructure/memory"
	"github.com/jhoicas/supermack-billing/internal/infrastructure/pdf"
	"github.com/jhoicas/supermack-billing/internal/infrastructure/xmldoc"
	apphttp "github.com/jhoicas/supermack-billing/internal/interfaces/http"
	"github.com/jhoicas/supermack-billing/internal/seed"
	"github.com/jhoicas/supermack-billing/pkg/money"
)

// newFullApp arma la API completa sobre el almacén en memoria con los datos de demostración.
func newFullApp(t *testing.T) *fiber.App {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()
	users := memory.NewUserRepository(s)
	customers := memory.NewCustomerRepository(s)
	products := memory.NewProductRepository(s)
	invoices := memory.NewInvoiceRepository(s)
	settings := memory.NewSettingsRepository(s)
	analytics := memory.NewAnalyticsRepository(s)
	sessions := memory.NewSessionStore(s)
	carts := memory.NewCartStore(s)
	require.NoError(t, seed.Demo(ctx, seed.Repos{Users: users, Customers: customers, Products: products}, nil))

	fmtr := money.MustFormatter("LKR")
	generator := pdf.NewMarotoPDFGenerator()
	posUC := billing.NewPOSUseCase(products, carts, sessions, memory.NewTxRunner(s), fmtr, billing.POSConfig{TaxRate: decimal.RequireFromString("0.10")}, nil)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      auth.NewAuthUseCase(users, sessions, posUC, auth.JWTConfig{Secret: "test-secret", Issuer: "test"}, nil),
		POSUC:       posUC,
		InvoiceUC:   billing.NewInvoiceUseCase(invoices, fmtr),
		InvoicePDF:  billing.NewPDFUseCase(invoices, settings, generator, xmldoc.NewExporter(), "LKR"),
		CustomerUC:  billing.NewCustomerUseCase(customers),
		ProductUC:   usecase.NewProductUseCase(products),
		UserUC:      usecase.NewUserUseCase(users),
		SettingsUC:  usecase.NewSettingsUseCase(settings),
		DashboardUC: appanalytics.NewDashboardUseCase(analytics, fmtr),
		ReportUC:    appanalytics.NewReportUseCase(analytics, settings, generator, excel.NewWorkbookGenerator(), "LKR"),
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	resp, body := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: email, Password: password})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	var out dto.LoginResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	app := newFullApp(t)

	resp, body := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "admin@company.com", Password: "mala"})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, auth.MsgInvalidCredentials, decodeError(t, body).Message)

	resp, body = call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "", Password: ""})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeError(t, body).Code)
}

func TestLogin_MeYLogout(t *testing.T) {
	app := newFullApp(t)
	token := login(t, app, "manager@company.com", "manager123")

	resp, body := call(t, app, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var me dto.SessionResponse
	require.NoError(t, json.Unmarshal(body, &me))
	assert.Equal(t, "Manager", me.Role)
	assert.Equal(t, "Mark Manager", me.Username)
	assert.NotContains(t, me.Views, "/users")

	resp, _ = call(t, app, http.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// el token ya no abre nada
	resp, body = call(t, app, http.MethodGet, "/api/dashboard/summary", token, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "/", decodeError(t, body).Redirect)
}

func TestNavigation_DecisionPorVista(t *testing.T) {
	app := newFullApp(t)
	token := login(t, app, "viewer@company.com", "viewer123")

	resp, body := call(t, app, http.MethodGet, "/api/navigation/users", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var d dto.NavigationDecision
	require.NoError(t, json.Unmarshal(body, &d))
	assert.False(t, d.Allowed)
	assert.Equal(t, "/unauthorized", d.Redirect)

	resp, body = call(t, app, http.MethodGet, "/api/navigation/dashboard", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	d = dto.NavigationDecision{}
	require.NoError(t, json.Unmarshal(body, &d))
	assert.False(t, d.Allowed)
	assert.Equal(t, "/", d.Redirect)
}

func TestPuntoDeVenta_FlujoCompleto(t *testing.T) {
	app := newFullApp(t)
	token := login(t, app, "viewer@company.com", "viewer123")

	// guardar sin líneas
	resp, body := call(t, app, http.MethodPost, "/api/billing/cart/save", token, nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "EMPTY_CART", decodeError(t, body).Code)

	resp, body = call(t, app, http.MethodGet, "/api/billing/catalog", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var catalog []dto.CatalogItemResponse
	require.NoError(t, json.Unmarshal(body, &catalog))
	require.Len(t, catalog, 2)

	// dos escaneos del mismo código se agregan en una línea
	call(t, app, http.MethodPost, "/api/billing/cart/scan", token, dto.ScanRequest{Barcode: "111"})
	call(t, app, http.MethodPost, "/api/billing/cart/scan", token, dto.ScanRequest{Barcode: "111"})
	resp, body = call(t, app, http.MethodPost, "/api/billing/cart/search", token, dto.SearchItemRequest{Query: "ban"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))

	var cart dto.CartResponse
	require.NoError(t, json.Unmarshal(body, &cart))
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, "Apple", cart.Lines[0].Item.Name)
	assert.Equal(t, int64(2), cart.Lines[0].Quantity)
	assert.True(t, decimal.RequireFromString("2.50").Equal(cart.Subtotal), cart.Subtotal.String())
	assert.True(t, decimal.RequireFromString("0.25").Equal(cart.Tax), cart.Tax.String())
	assert.True(t, decimal.RequireFromString("2.75").Equal(cart.Total), cart.Total.String())

	// código inexistente
	resp, _ = call(t, app, http.MethodPost, "/api/billing/cart/scan", token, dto.ScanRequest{Barcode: "999"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, body = call(t, app, http.MethodPost, "/api/billing/cart/save", token, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(body))
	var inv dto.InvoiceResponse
	require.NoError(t, json.Unmarshal(body, &inv))
	assert.Equal(t, "INV-1001", inv.Number)
	assert.Equal(t, billing.WalkInCustomer, inv.CustomerName)
	assert.Len(t, inv.Lines, 2)

	resp, body = call(t, app, http.MethodGet, "/api/billing/last-invoice", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var last dto.LastInvoiceResponse
	require.NoError(t, json.Unmarshal(body, &last))
	assert.Equal(t, "INV-1001", last.Number)

	// el reporte refleja las líneas guardadas
	resp, body = call(t, app, http.MethodGet, "/api/reports/sales?product=Apple", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var report dto.SalesReportDTO
	require.NoError(t, json.Unmarshal(body, &report))
	require.Len(t, report.Rows, 1)
	assert.True(t, decimal.RequireFromString("2").Equal(report.GrandTotal), report.GrandTotal.String())

	resp, body = call(t, app, http.MethodGet, "/api/invoices/"+inv.ID+"/pdf", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "INV-1001")
}

func TestPuntoDeVenta_SinSesion(t *testing.T) {
	app := newFullApp(t)
	resp, body := call(t, app, http.MethodGet, "/api/billing/cart", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "/", decodeError(t, body).Redirect)
}

func TestFacturas_NumeroDuplicado(t *testing.T) {
	app := newFullApp(t)
	token := login(t, app, "admin@company.com", "admin123")

	in := dto.InvoiceRequest{
		Number:       "INV-9001",
		CustomerName: "John Doe",
		IssueDate:    "2026-01-10",
		DueDate:      "2026-02-10",
		AmountType:   "Exclusive",
		PaymentType:  "Cash",
		Total:        decimal.RequireFromString("1250.75"),
	}
	resp, body := call(t, app, http.MethodPost, "/api/invoices", token, in)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(body))

	resp, body = call(t, app, http.MethodPost, "/api/invoices", token, in)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	e := decodeError(t, body)
	assert.Equal(t, "DUPLICATE", e.Code)
	assert.Equal(t, billing.MsgDuplicateNumber, e.Message)

	resp, body = call(t, app, http.MethodGet, "/api/invoices", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list dto.ListResponse[dto.InvoiceResponse]
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, 1, list.Total)

	in.DueDate = "2026-01-01"
	in.Number = "INV-9002"
	resp, body = call(t, app, http.MethodPost, "/api/invoices", token, in)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeError(t, body).Code)
}

func TestPuntoDeVenta_NumeroTomadoPorFacturaManual(t *testing.T) {
	app := newFullApp(t)
	token := login(t, app, "admin@company.com", "admin123")

	resp, body := call(t, app, http.MethodPost, "/api/invoices", token, dto.InvoiceRequest{
		Number:       "INV-1001",
		CustomerName: "John Doe",
		Total:        decimal.RequireFromString("10"),
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(body))

	resp, body = call(t, app, http.MethodPost, "/api/billing/cart/scan", token, dto.ScanRequest{Barcode: "111"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))

	resp, body = call(t, app, http.MethodPost, "/api/billing/cart/save", token, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(body))
	var inv dto.InvoiceResponse
	require.NoError(t, json.Unmarshal(body, &inv))
	assert.Equal(t, "INV-1002", inv.Number)

	resp, body = call(t, app, http.MethodPost, "/api/billing/cart/save", token, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(body))
	require.NoError(t, json.Unmarshal(body, &inv))
	assert.Equal(t, "INV-1003", inv.Number)
}

func TestUsuarios_SoloAdmin(t *testing.T) {
	app := newFullApp(t)
	manager := login(t, app, "manager@company.com", "manager123")
	admin := login(t, app, "admin@company.com", "admin123")

	resp, body := call(t, app, http.MethodGet, "/api/users", manager, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "/unauthorized", decodeError(t, body).Redirect)

	resp, body = call(t, app, http.MethodGet, "/api/users", admin, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list dto.ListResponse[dto.UserResponse]
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, 3, list.Total)

	resp, body = call(t, app, http.MethodPost, "/api/users", admin, dto.CreateUserRequest{
		Name: "Otro", Email: "ADMIN@company.com", Password: "x12345", Role: "Viewer",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "EMAIL_EXISTS", decodeError(t, body).Code)
}
