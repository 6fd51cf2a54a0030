package repository

import "github.com/jhoicas/sioms-api/internal/domain/entity"

// PurchaseOrderRepository puerto de persistencia para órdenes de compra.
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	// GetForUpdate obtiene la orden bloqueando su fila (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.PurchaseOrder, error)
	Update(order *entity.PurchaseOrder) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.PurchaseOrder, error)
}

// SalesOrderRepository puerto de persistencia para órdenes de venta.
type SalesOrderRepository interface {
	Create(order *entity.SalesOrder) error
	GetByID(id string) (*entity.SalesOrder, error)
	GetForUpdate(id string) (*entity.SalesOrder, error)
	Update(order *entity.SalesOrder) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.SalesOrder, error)
}
