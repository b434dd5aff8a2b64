// seed aplica las migraciones y carga los datos de demostración en PostgreSQL:
// un usuario por rol, el catálogo del punto de venta y dos clientes.
//
// Uso: go run ./cmd/seed
// Lee la conexión de DATABASE_URL o DB_HOST/DB_PORT/DB_USER/DB_PASSWORD/DB_NAME.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/supermack-billing/internal/infrastructure/postgres"
	"github.com/jhoicas/supermack-billing/internal/seed"
	"github.com/jhoicas/supermack-billing/pkg/config"
	"github.com/jhoicas/supermack-billing/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, log.Named("migrate")); err != nil {
		fmt.Fprintf(os.Stderr, "Migraciones: %v\n", err)
		os.Exit(1)
	}

	err = seed.Demo(ctx, seed.Repos{
		Users:     postgres.NewUserRepository(pool),
		Customers: postgres.NewCustomerRepository(pool),
		Products:  postgres.NewProductRepository(pool),
	}, log.Named("seed"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Seed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Datos de demostración cargados:")
	for _, u := range seed.DemoUsers {
		fmt.Printf("  %-8s %s / %s\n", u.Role, u.Email, u.Password)
	}
}
