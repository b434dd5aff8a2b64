package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"golang.org/x/text/language"

	_ "github.com/jhoicas/supermack-billing/docs"
	appanalytics "github.com/jhoicas/supermack-billing/internal/application/analytics"
	"github.com/jhoicas/supermack-billing/internal/application/auth"
	"github.com/jhoicas/supermack-billing/internal/application/billing"
	"github.com/jhoicas/supermack-billing/internal/application/usecase"
	"github.com/jhoicas/supermack-billing/internal/domain/repository"
	infraexcel "github.com/jhoicas/supermack-billing/internal/infrastructure/excel"
	"github.com/jhoicas/supermack-billing/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/supermack-billing/internal/infrastructure/pdf"
	"github.com/jhoicas/supermack-billing/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/supermack-billing/internal/infrastructure/redis"
	"github.com/jhoicas/supermack-billing/internal/infrastructure/xmldoc"
	httpRouter "github.com/jhoicas/supermack-billing/internal/interfaces/http"
	"github.com/jhoicas/supermack-billing/internal/seed"
	"github.com/jhoicas/supermack-billing/pkg/config"
	"github.com/jhoicas/supermack-billing/pkg/logger"
	"github.com/jhoicas/supermack-billing/pkg/money"
)

// repos persistencia elegida por STORAGE_DRIVER.
type repos struct {
	users     repository.UserRepository
	customers repository.CustomerRepository
	products  repository.ProductRepository
	invoices  repository.InvoiceRepository
	settings  repository.SettingsRepository
	analytics repository.AnalyticsRepository
	tx        billing.BillingTxRunner
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Str("sessions", cfg.Session.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store := memory.NewStore()

	var r repos
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool, log.Named("migrate")); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		r = repos{
			users:     postgres.NewUserRepository(pool),
			customers: postgres.NewCustomerRepository(pool),
			products:  postgres.NewProductRepository(pool),
			invoices:  postgres.NewInvoiceRepository(pool),
			settings:  postgres.NewSettingsRepository(pool),
			analytics: postgres.NewAnalyticsRepository(pool),
			tx:        postgres.NewTxRunner(pool),
		}
	default:
		r = repos{
			users:     memory.NewUserRepository(store),
			customers: memory.NewCustomerRepository(store),
			products:  memory.NewProductRepository(store),
			invoices:  memory.NewInvoiceRepository(store),
			settings:  memory.NewSettingsRepository(store),
			analytics: memory.NewAnalyticsRepository(store),
			tx:        memory.NewTxRunner(store),
		}
	}

	var sessions repository.SessionStore
	var carts repository.CartStore
	switch cfg.Session.Driver {
	case config.DriverRedis:
		rdb, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		sessions = infraredis.NewSessionStore(rdb)
		carts = infraredis.NewCartStore(rdb)
	default:
		sessions = memory.NewSessionStore(store)
		carts = memory.NewCartStore(store)
	}

	if cfg.App.SeedDemo {
		if err := seed.Demo(ctx, seed.Repos{Users: r.users, Customers: r.customers, Products: r.products}, log.Named("seed")); err != nil {
			log.Fatal().Err(err).Msg("datos de demostración")
		}
	}

	jwtSecret := cfg.JWT.Secret
	if jwtSecret == "" {
		if cfg.App.Env == "production" {
			log.Fatal().Msg("JWT_SECRET es requerido en production")
		}
		// secreto efímero: los tokens dejan de valer al reiniciar
		jwtSecret = uuid.NewString()
		log.Warn().Msg("JWT_SECRET vacío, usando secreto aleatorio")
	}

	fmtr, err := money.NewFormatter(cfg.Billing.Currency, language.English)
	if err != nil {
		log.Fatal().Err(err).Msg("BILLING_CURRENCY")
	}

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	posUC := billing.NewPOSUseCase(r.products, carts, sessions, r.tx, fmtr,
		billing.POSConfig{TaxRate: cfg.Billing.TaxRate}, log.Named("pos"))
	authUC := auth.NewAuthUseCase(r.users, sessions, posUC, auth.JWTConfig{
		Secret: jwtSecret,
		Issuer: cfg.JWT.Issuer,
	}, log.Named("auth"))
	invoiceUC := billing.NewInvoiceUseCase(r.invoices, fmtr)
	invoicePDFUC := billing.NewPDFUseCase(r.invoices, r.settings, pdfGenerator, xmldoc.NewExporter(), fmtr.Code())
	customerUC := billing.NewCustomerUseCase(r.customers)
	productUC := usecase.NewProductUseCase(r.products)
	userUC := usecase.NewUserUseCase(r.users)
	settingsUC := usecase.NewSettingsUseCase(r.settings)
	dashboardUC := appanalytics.NewDashboardUseCase(r.analytics, fmtr)
	reportUC := appanalytics.NewReportUseCase(r.analytics, r.settings, pdfGenerator, infraexcel.NewWorkbookGenerator(), fmtr.Code())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Super Mack Billing API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		POSUC:       posUC,
		InvoiceUC:   invoiceUC,
		InvoicePDF:  invoicePDFUC,
		CustomerUC:  customerUC,
		ProductUC:   productUC,
		UserUC:      userUC,
		SettingsUC:  settingsUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
