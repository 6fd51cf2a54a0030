package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/sioms-api/internal/application/inventory"
	"github.com/jhoicas/sioms-api/internal/application/orders"
	"github.com/jhoicas/sioms-api/internal/domain"
	"github.com/jhoicas/sioms-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and orders.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ orders.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Ante un fallo de serialización o deadlock reintenta la transacción una vez;
// si el reintento también falla devuelve domain.ErrConflict.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// runTx inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) runTx(ctx context.Context, fn func(tx Querier) error) error {
	attempt := func() error {
		tx, err := r.pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer func() { _ = tx.Rollback(ctx) }()

		if err := fn(tx); err != nil {
			return err
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit transaction: %w", err)
		}
		return nil
	}

	err := attempt()
	if err != nil && isSerializationFailure(err) {
		if err = attempt(); err != nil && isSerializationFailure(err) {
			return domain.ErrConflict
		}
	}
	return err
}

// Run inicia una transacción con los repos del motor de reconciliación.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	alertRepo repository.LowStockAlertRepository,
) error) error {
	return r.runTx(ctx, func(tx Querier) error {
		return fn(
			NewStockMovementRepository(tx),
			NewProductRepository(tx),
			NewLowStockAlertRepository(tx),
		)
	})
}

// RunOrders inicia una transacción con los repos del motor más los de órdenes
// (para recepción de compras y completado de ventas).
func (r *TxRunner) RunOrders(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	alertRepo repository.LowStockAlertRepository,
	poRepo repository.PurchaseOrderRepository,
	soRepo repository.SalesOrderRepository,
) error) error {
	return r.runTx(ctx, func(tx Querier) error {
		return fn(
			NewStockMovementRepository(tx),
			NewProductRepository(tx),
			NewLowStockAlertRepository(tx),
			NewPurchaseOrderRepository(tx),
			NewSalesOrderRepository(tx),
		)
	})
}
