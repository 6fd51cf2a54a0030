package inventory

import (
	"context"

	"github.com/jhoicas/sioms-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// reconciliación: producto, movimiento y alerta se escriben juntos o ninguno.
// La implementación reintenta una vez ante un fallo de serialización y
// retorna domain.ErrConflict si el conflicto se repite.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		alertRepo repository.LowStockAlertRepository,
	) error) error
}
