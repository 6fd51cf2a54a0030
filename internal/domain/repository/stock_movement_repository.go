package repository

import (
	"time"

	"github.com/jhoicas/sioms-api/internal/domain/entity"
)

// StockMovementRepository puerto de persistencia para el libro de movimientos.
// Los adaptadores no tocan el stock del producto: eso es responsabilidad
// exclusiva del motor de reconciliación.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	Update(movement *entity.StockMovement) error
	Delete(id string) error
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	ListByDateRange(from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	ListByType(movementType string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	// Search búsqueda libre sobre nombre/SKU del producto, referencia, notas y tipo.
	Search(term string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
}
