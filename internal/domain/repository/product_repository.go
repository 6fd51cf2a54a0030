package repository

import "github.com/jhoicas/sioms-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
// El stock solo se modifica vía UpdateStock, dentro de la transacción del motor
// de reconciliación (GetForUpdate bloquea la fila del producto).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Product, error)
	// UpdateStock escribe la nueva cantidad calculada por el motor.
	UpdateStock(id string, quantity int) error
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	// ListLowStock productos activos con stock <= mínimo y mínimo > 0.
	ListLowStock() ([]*entity.Product, error)
	CountActive() (int, error)
	Delete(id string) error
}
