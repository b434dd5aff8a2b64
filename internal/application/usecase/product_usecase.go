package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/supermack-billing/internal/application/dto"
	"github.com/jhoicas/supermack-billing/internal/domain"
	"github.com/jhoicas/supermack-billing/internal/domain/entity"
	"github.com/jhoicas/supermack-billing/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos (catálogo del punto de venta).
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func validateProduct(in *dto.ProductRequest) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Barcode = strings.TrimSpace(in.Barcode)
	switch {
	case in.Name == "":
		return domain.Invalid("name", "name es requerido")
	case in.Category == "":
		return domain.Invalid("category", "category es requerido")
	case !entity.ValidCategory(in.Category):
		return domain.Invalid("category", "category debe ser Electronics, Clothing o Grocery")
	case in.Price == nil:
		return domain.Invalid("price", "price es requerido")
	case in.Price.IsNegative():
		return domain.Invalid("price", "price no puede ser negativo")
	case in.Stock == nil:
		return domain.Invalid("stock", "stock es requerido")
	case *in.Stock < 0:
		return domain.Invalid("stock", "stock no puede ser negativo")
	}
	return nil
}

func duplicateBarcode(err error) error {
	if errors.Is(err, domain.ErrDuplicate) {
		return domain.WithMessage(domain.ErrDuplicate, "ya existe un producto con ese código de barras")
	}
	return err
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(&in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Category:  in.Category,
		Price:     *in.Price,
		Stock:     *in.Stock,
		Barcode:   in.Barcode,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, duplicateBarcode(err)
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List productos en orden de catálogo filtrados por search.
func (uc *ProductUseCase) List(ctx context.Context, search string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Update reemplaza los datos del producto.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(&in); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Name = in.Name
	product.Category = in.Category
	product.Price = *in.Price
	product.Stock = *in.Stock
	product.Barcode = in.Barcode
	product.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, duplicateBarcode(err)
	}
	return toProductResponse(product), nil
}

// Delete elimina el producto del catálogo. Las facturas guardadas conservan el nombre.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		Stock:     p.Stock,
		Barcode:   p.Barcode,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
