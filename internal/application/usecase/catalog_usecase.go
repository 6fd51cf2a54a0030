package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/sioms-api/internal/domain"
	"github.com/jhoicas/sioms-api/internal/domain/entity"
	"github.com/jhoicas/sioms-api/internal/domain/repository"
)

// CatalogUseCase catálogos auxiliares: categorías de producto y clientes
// registrados. Las órdenes de venta aceptan también cliente libre, por eso el
// cliente registrado es opcional en el resto del sistema.
type CatalogUseCase struct {
	categoryRepo repository.CategoryRepository
	customerRepo repository.CustomerRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(categoryRepo repository.CategoryRepository, customerRepo repository.CustomerRepository) *CatalogUseCase {
	return &CatalogUseCase{categoryRepo: categoryRepo, customerRepo: customerRepo}
}

// CreateCategory crea una categoría. Retorna domain.ErrDuplicate si el nombre ya existe.
func (uc *CatalogUseCase) CreateCategory(_ context.Context, name, description string) (*entity.Category, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	category := &entity.Category{
		Name:        name,
		Description: description,
		CreatedAt:   time.Now(),
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories lista todas las categorías por nombre.
func (uc *CatalogUseCase) ListCategories(_ context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.List()
}

// CustomerInput entrada para registrar un cliente.
type CustomerInput struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// CreateCustomer registra un cliente.
func (uc *CatalogUseCase) CreateCustomer(_ context.Context, in CustomerInput) (*entity.Customer, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	customer := &entity.Customer{
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		CreatedAt: time.Now(),
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer obtiene un cliente.
func (uc *CatalogUseCase) GetCustomer(_ context.Context, id string) (*entity.Customer, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return customer, nil
}

// ListCustomers lista clientes registrados.
func (uc *CatalogUseCase) ListCustomers(_ context.Context, limit, offset int) ([]*entity.Customer, error) {
	if limit <= 0 || limit > 200 {
		limit = 200
	}
	return uc.customerRepo.List(limit, offset)
}
