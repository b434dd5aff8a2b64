package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/supermack-billing/internal/application/dto"
	"github.com/jhoicas/supermack-billing/internal/application/usecase"
	"github.com/jhoicas/supermack-billing/internal/domain"
	"github.com/jhoicas/supermack-billing/internal/infrastructure/memory"
)

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func stock(n int64) *int64 { return &n }

func TestProduct_Validaciones(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductRepository(memory.NewStore()))
	ctx := context.Background()
	cases := map[string]dto.ProductRequest{
		"sin nombre":      {Category: "Grocery", Price: price("1"), Stock: stock(1)},
		"sin categoría":   {Name: "A", Price: price("1"), Stock: stock(1)},
		"categoría":       {Name: "A", Category: "Toys", Price: price("1"), Stock: stock(1)},
		"sin precio":      {Name: "A", Category: "Grocery", Stock: stock(1)},
		"precio negativo": {Name: "A", Category: "Grocery", Price: price("-1"), Stock: stock(1)},
		"sin stock":       {Name: "A", Category: "Grocery", Price: price("1")},
		"stock negativo":  {Name: "A", Category: "Grocery", Price: price("1"), Stock: stock(-2)},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Create(ctx, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	// precio y stock cero son válidos
	_, err := uc.Create(ctx, dto.ProductRequest{Name: "Gift", Category: "Clothing", Price: price("0"), Stock: stock(0)})
	assert.NoError(t, err)
}

func TestProduct_CodigoDeBarrasUnico(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductRepository(memory.NewStore()))
	ctx := context.Background()
	a, err := uc.Create(ctx, dto.ProductRequest{Name: "Apple", Category: "Grocery", Price: price("1.00"), Stock: stock(5), Barcode: "111"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.ProductRequest{Name: "Pear", Category: "Grocery", Price: price("1.00"), Stock: stock(5), Barcode: "111"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// sin código de barras no hay conflicto
	_, err = uc.Create(ctx, dto.ProductRequest{Name: "Loose", Category: "Grocery", Price: price("1"), Stock: stock(1)})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.ProductRequest{Name: "Loose 2", Category: "Grocery", Price: price("1"), Stock: stock(1)})
	require.NoError(t, err)

	upd, err := uc.Update(ctx, a.ID, dto.ProductRequest{Name: "Green Apple", Category: "Grocery", Price: price("1.20"), Stock: stock(4), Barcode: "111"})
	require.NoError(t, err)
	assert.Equal(t, "Green Apple", upd.Name)

	list, err := uc.List(ctx, "green")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestUser_CrearHasheaYRechazaEmailRepetido(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewUserRepository(store)
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	u, err := uc.Create(ctx, dto.CreateUserRequest{Name: "Ann", Email: "Ann@Company.com", Password: "secret1", Role: "Manager"})
	require.NoError(t, err)
	assert.Equal(t, "ann@company.com", u.Email)

	stored, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))

	_, err = uc.Create(ctx, dto.CreateUserRequest{Name: "Ann 2", Email: "ann@company.com", Password: "x", Role: "Viewer"})
	assert.ErrorIs(t, err, domain.ErrEmailExists)

	_, err = uc.Create(ctx, dto.CreateUserRequest{Name: "Bob", Email: "bob@company.com", Password: "x", Role: "Root"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(ctx, dto.CreateUserRequest{Email: "c@company.com", Password: "x", Role: "Viewer"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUser_ActualizarSoloNombreYRol(t *testing.T) {
	repo := memory.NewUserRepository(memory.NewStore())
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()
	u, err := uc.Create(ctx, dto.CreateUserRequest{Name: "Ann", Email: "ann@company.com", Password: "pw", Role: "Viewer"})
	require.NoError(t, err)

	upd, err := uc.Update(ctx, u.ID, dto.UpdateUserRequest{Name: "Ann B", Role: "Admin"})
	require.NoError(t, err)
	assert.Equal(t, "Ann B", upd.Name)
	assert.Equal(t, "Admin", upd.Role)
	assert.Equal(t, "ann@company.com", upd.Email)

	_, err = uc.Update(ctx, u.ID, dto.UpdateUserRequest{Name: "", Role: "Admin"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Update(ctx, "nope", dto.UpdateUserRequest{Name: "X", Role: "Admin"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUser_NoPuedeEliminarseASiMismo(t *testing.T) {
	uc := usecase.NewUserUseCase(memory.NewUserRepository(memory.NewStore()))
	ctx := context.Background()
	u, err := uc.Create(ctx, dto.CreateUserRequest{Name: "Ann", Email: "ann@company.com", Password: "pw", Role: "Admin"})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Delete(ctx, u.ID, u.ID), domain.ErrConflict)
	assert.NoError(t, uc.Delete(ctx, "other-admin", u.ID))
	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSettings_ValoresPorDefectoYActualizacion(t *testing.T) {
	uc := usecase.NewSettingsUseCase(memory.NewSettingsRepository(memory.NewStore()))
	ctx := context.Background()

	s, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "INV", s.Invoice.InvoicePrefix)
	assert.Equal(t, int64(1001), s.Invoice.NextInvoiceNumber)

	s, err = uc.UpdateInvoiceSettings(ctx, dto.InvoiceSettingsRequest{TaxType: "VAT", InvoicePrefix: "SM", NextInvoiceNumber: 5000})
	require.NoError(t, err)
	assert.Equal(t, "VAT", s.Invoice.TaxType)
	assert.Equal(t, "SM", s.Invoice.InvoicePrefix)

	_, err = uc.UpdateInvoiceSettings(ctx, dto.InvoiceSettingsRequest{TaxType: "Sales", NextInvoiceNumber: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.UpdateInvoiceSettings(ctx, dto.InvoiceSettingsRequest{TaxType: "None", NextInvoiceNumber: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	s, err = uc.UpdateProfile(ctx, dto.ProfileRequest{CompanyName: "Super Mack", Address: "Galle Rd", Email: "info@supermack.lk", Phone: "011"})
	require.NoError(t, err)
	assert.Equal(t, "Galle Rd", s.Profile.Address)
	assert.Equal(t, "SM", s.Invoice.InvoicePrefix)

	_, err = uc.UpdateProfile(ctx, dto.ProfileRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
