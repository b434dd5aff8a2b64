// Package seed carga los datos de demostración: usuarios por rol, catálogo y clientes.
// Es idempotente: lo que ya existe (por email o código de barras) no se toca.
package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/supermack-billing/internal/domain"
	"github.com/jhoicas/supermack-billing/internal/domain/entity"
	"github.com/jhoicas/supermack-billing/internal/domain/repository"
	"github.com/jhoicas/supermack-billing/pkg/logger"
)

// Repos repositorios que el seed necesita.
type Repos struct {
	Users     repository.UserRepository
	Customers repository.CustomerRepository
	Products  repository.ProductRepository
}

// DemoUser usuario de demostración con su contraseña en claro (solo para el seed).
type DemoUser struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
}

// DemoUsers una cuenta por rol.
var DemoUsers = []DemoUser{
	{Name: "Alice Admin", Email: "admin@company.com", Password: "admin123", Role: entity.RoleAdmin},
	{Name: "Mark Manager", Email: "manager@company.com", Password: "manager123", Role: entity.RoleManager},
	{Name: "Vicky Viewer", Email: "viewer@company.com", Password: "viewer123", Role: entity.RoleViewer},
}

type demoProduct struct {
	name, category, barcode, price string
	stock                          int64
}

// catálogo del punto de venta, en este orden.
var demoProducts = []demoProduct{
	{name: "Apple", category: entity.CategoryGrocery, barcode: "111", price: "1.00", stock: 100},
	{name: "Banana", category: entity.CategoryGrocery, barcode: "222", price: "0.50", stock: 150},
}

var demoCustomers = []entity.Customer{
	{Name: "John Doe", Email: "john@example.com", Phone: "0712345678", Address: "Colombo, Sri Lanka", CreditBalance: decimal.RequireFromString("100.50")},
	{Name: "Jane Smith", Email: "jane@example.com", Phone: "0776543210", Address: "Kandy, Sri Lanka", CreditBalance: decimal.RequireFromString("230.00")},
}

// Demo inserta usuarios, productos y clientes que falten.
func Demo(ctx context.Context, r Repos, log *logger.Logger) error {
	if log == nil {
		log = logger.Nop()
	}
	now := time.Now().UTC()

	for _, du := range DemoUsers {
		_, err := r.Users.GetByEmail(ctx, du.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("seed: buscar usuario %s: %w", du.Email, err)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(du.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed: hash: %w", err)
		}
		u := &entity.User{
			ID:           uuid.New().String(),
			Name:         du.Name,
			Email:        strings.ToLower(du.Email),
			PasswordHash: string(hash),
			Role:         du.Role,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := r.Users.Create(ctx, u); err != nil {
			return fmt.Errorf("seed: crear usuario %s: %w", du.Email, err)
		}
		log.Info().Str("email", u.Email).Str("role", string(u.Role)).Msg("seed: usuario creado")
	}

	for i, dp := range demoProducts {
		_, err := r.Products.GetByBarcode(ctx, dp.barcode)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("seed: buscar producto %s: %w", dp.barcode, err)
		}
		p := &entity.Product{
			ID:        uuid.New().String(),
			Name:      dp.name,
			Category:  dp.category,
			Price:     decimal.RequireFromString(dp.price),
			Stock:     dp.stock,
			Barcode:   dp.barcode,
			CreatedAt: now.Add(time.Duration(i) * time.Millisecond),
			UpdatedAt: now,
		}
		if err := r.Products.Create(ctx, p); err != nil {
			return fmt.Errorf("seed: crear producto %s: %w", dp.name, err)
		}
	}

	existing, err := r.Customers.List(ctx, "")
	if err != nil {
		return fmt.Errorf("seed: listar clientes: %w", err)
	}
	known := map[string]bool{}
	for _, c := range existing {
		known[strings.ToLower(c.Email)] = true
	}
	for _, dc := range demoCustomers {
		if known[strings.ToLower(dc.Email)] {
			continue
		}
		c := dc
		c.ID = uuid.New().String()
		c.CreatedAt, c.UpdatedAt = now, now
		if err := r.Customers.Create(ctx, &c); err != nil {
			return fmt.Errorf("seed: crear cliente %s: %w", c.Name, err)
		}
	}

	log.Info().Int("users", len(DemoUsers)).Int("products", len(demoProducts)).Int("customers", len(demoCustomers)).Msg("seed: datos de demostración listos")
	return nil
}
