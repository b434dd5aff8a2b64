package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/supermack-billing/internal/domain/entity"
	"github.com/jhoicas/supermack-billing/internal/infrastructure/memory"
)

func repos(s *memory.Store) Repos {
	return Repos{
		Users:     memory.NewUserRepository(s),
		Customers: memory.NewCustomerRepository(s),
		Products:  memory.NewProductRepository(s),
	}
}

func TestDemo_CargaUsuariosCatalogoYClientes(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	r := repos(s)
	require.NoError(t, Demo(ctx, r, nil))

	admin, err := r.Users.GetByEmail(ctx, "admin@company.com")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.NotEqual(t, "admin123", admin.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))

	products, err := r.Products.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Apple", products[0].Name)
	assert.Equal(t, "111", products[0].Barcode)
	assert.Equal(t, "Banana", products[1].Name)

	customers, err := r.Customers.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, customers, 2)
}

func TestDemo_Idempotente(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	r := repos(s)
	require.NoError(t, Demo(ctx, r, nil))
	require.NoError(t, Demo(ctx, r, nil))

	users, err := r.Users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
	products, _ := r.Products.List(ctx, "")
	assert.Len(t, products, 2)
	customers, _ := r.Customers.List(ctx, "")
	assert.Len(t, customers, 2)
}
