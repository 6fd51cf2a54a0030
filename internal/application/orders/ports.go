package orders

import (
	"context"

	"github.com/jhoicas/sioms-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de órdenes además de los del motor de inventario, para que la
// transición de estado de la orden y su movimiento implícito de stock sean
// atómicos (misma garantía de reintento ante conflicto que inventory.TxRunner).
type TxRunner interface {
	RunOrders(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		alertRepo repository.LowStockAlertRepository,
		poRepo repository.PurchaseOrderRepository,
		soRepo repository.SalesOrderRepository,
	) error) error
}
