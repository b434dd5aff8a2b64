package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/supermack-billing/internal/application/analytics"
	"github.com/jhoicas/supermack-billing/internal/application/auth"
	"github.com/jhoicas/supermack-billing/internal/application/billing"
	"github.com/jhoicas/supermack-billing/internal/application/usecase"
	"github.com/jhoicas/supermack-billing/internal/domain/access"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	POSUC       *billing.POSUseCase
	InvoiceUC   *billing.InvoiceUseCase
	InvoicePDF  *billing.PDFUseCase
	CustomerUC  *billing.CustomerUseCase
	ProductUC   *usecase.ProductUseCase
	UserUC      *usecase.UserUseCase
	SettingsUC  *usecase.SettingsUseCase
	DashboardUC *appanalytics.DashboardUseCase
	ReportUC    *appanalytics.ReportUseCase
}

// Router registra las rutas de la API. Cada grupo protegido exige la vista
// del front a la que pertenece.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", SessionMiddleware(deps.AuthUC))

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", RequireSession(), authHandler.Me)

	// Navegación: el menú requiere sesión; la decisión por vista no (responde el redirect).
	api.Get("/navigation", RequireSession(), authHandler.Navigation)
	api.Get("/navigation/:view", authHandler.Decide)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", RequireView(access.ViewDashboard), dashboardHandler.GetSummary)

	// Punto de venta
	billingHandler := NewBillingHandler(deps.POSUC)
	pos := api.Group("/billing", RequireView(access.ViewBillingMain))
	pos.Get("/catalog", billingHandler.Catalog)
	pos.Get("/cart", billingHandler.GetCart)
	pos.Delete("/cart", billingHandler.Clear)
	pos.Post("/cart/items", billingHandler.AddItem)
	pos.Post("/cart/scan", billingHandler.Scan)
	pos.Post("/cart/search", billingHandler.Search)
	pos.Patch("/cart/lines/:lineID", billingHandler.UpdateLine)
	pos.Delete("/cart/lines/:lineID", billingHandler.RemoveLine)
	pos.Post("/cart/save", billingHandler.Save)
	pos.Get("/last-invoice", billingHandler.LastInvoice)

	// Facturas
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDF)
	invoices := api.Group("/invoices", RequireView(access.ViewInvoices))
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Get("/:id/xml", invoiceHandler.DownloadXML)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC)
	reports := api.Group("/reports", RequireView(access.ViewReports))
	reports.Get("/sales", reportHandler.Sales)
	reports.Get("/sales/options", reportHandler.Options)
	reports.Get("/sales/pdf", reportHandler.ExportPDF)
	reports.Get("/sales/xlsx", reportHandler.ExportExcel)

	// Clientes
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers := api.Group("/customers", RequireView(access.ViewCustomers))
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Productos
	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products", RequireView(access.ViewProducts))
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Usuarios (solo Admin)
	userHandler := NewUserHandler(deps.UserUC)
	users := api.Group("/users", RequireView(access.ViewUsers))
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Configuración (solo Admin)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings := api.Group("/settings", RequireView(access.ViewSettings))
	settings.Get("/", settingsHandler.Get)
	settings.Put("/profile", settingsHandler.UpdateProfile)
	settings.Put("/invoice", settingsHandler.UpdateInvoiceSettings)
}
