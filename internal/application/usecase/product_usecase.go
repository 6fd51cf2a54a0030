package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sioms-api/internal/domain"
	"github.com/jhoicas/sioms-api/internal/domain/entity"
	"github.com/jhoicas/sioms-api/internal/domain/repository"
)

// ProductUseCase CRUD del catálogo de productos. La edición administrativa
// puede fijar el stock directamente (valor base del invariante del libro);
// los demás cambios de cantidad pasan por el motor de reconciliación.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// ProductInput entrada para crear o editar un producto.
type ProductInput struct {
	Name              string
	Description       string
	SKU               string
	CategoryID        string
	SupplierID        string
	BuyingPrice       decimal.Decimal
	SellingPrice      decimal.Decimal
	StockQuantity     int
	MinimumStockLevel int
	IsActive          bool
}

func (in ProductInput) validate() error {
	if in.Name == "" || in.SKU == "" || in.CategoryID == "" {
		return domain.ErrInvalidInput
	}
	if in.BuyingPrice.IsNegative() || in.SellingPrice.IsNegative() {
		return domain.ErrInvalidInput
	}
	if in.StockQuantity < 0 || in.MinimumStockLevel < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create crea un producto. Retorna domain.ErrDuplicate si el SKU ya existe.
func (uc *ProductUseCase) Create(_ context.Context, in ProductInput) (*entity.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	product := &entity.Product{
		Name:              in.Name,
		Description:       in.Description,
		SKU:               in.SKU,
		CategoryID:        in.CategoryID,
		SupplierID:        in.SupplierID,
		BuyingPrice:       in.BuyingPrice,
		SellingPrice:      in.SellingPrice,
		StockQuantity:     in.StockQuantity,
		MinimumStockLevel: in.MinimumStockLevel,
		IsActive:          in.IsActive,
		CreatedAt:         time.Now(),
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID obtiene un producto.
func (uc *ProductUseCase) GetByID(_ context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	if limit <= 0 || limit > 200 {
		limit = 200
	}
	return uc.productRepo.List(limit, offset)
}

// Update edita un producto, incluida la edición administrativa directa del
// stock y del umbral mínimo.
func (uc *ProductUseCase) Update(_ context.Context, id string, in ProductInput) (*entity.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	product.Name = in.Name
	product.Description = in.Description
	product.SKU = in.SKU
	product.CategoryID = in.CategoryID
	product.SupplierID = in.SupplierID
	product.BuyingPrice = in.BuyingPrice
	product.SellingPrice = in.SellingPrice
	product.StockQuantity = in.StockQuantity
	product.MinimumStockLevel = in.MinimumStockLevel
	product.IsActive = in.IsActive
	product.UpdatedAt = &now
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete elimina un producto del catálogo.
func (uc *ProductUseCase) Delete(_ context.Context, id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(id)
}
