package repository

import "github.com/jhoicas/sioms-api/internal/domain/entity"

// LowStockAlertRepository puerto de persistencia para alertas de stock bajo.
type LowStockAlertRepository interface {
	Create(alert *entity.LowStockAlert) error
	GetByID(id string) (*entity.LowStockAlert, error)
	// HasUnresolved indica si ya existe una alerta sin resolver para el producto.
	HasUnresolved(productID string) (bool, error)
	Update(alert *entity.LowStockAlert) error
	ListUnresolved() ([]*entity.LowStockAlert, error)
	List(limit, offset int) ([]*entity.LowStockAlert, error)
}
