package inventory

import (
	"context"

	"github.com/jhoicas/sioms-api/internal/domain/repository"
)

// ReconciliationReport resultado de la corrida diaria de reconciliación.
type ReconciliationReport struct {
	ProductsChecked      int `json:"products_checked"`
	LowStockProductCount int `json:"low_stock_product_count"`
}

// DailyReconciliationUseCase barrido diario de stock bajo. Solo LEE cantidades:
// su única escritura es (re)levantar alertas para productos bajo el mínimo que
// no tengan ya una alerta sin resolver. Es seguro cancelarlo o saltarlo.
type DailyReconciliationUseCase struct {
	txRunner TxRunner
}

// NewDailyReconciliationUseCase construye el caso de uso.
func NewDailyReconciliationUseCase(txRunner TxRunner) *DailyReconciliationUseCase {
	return &DailyReconciliationUseCase{txRunner: txRunner}
}

// Run revisa todos los productos activos y levanta alertas faltantes.
// El barrido completo corre en una sola transacción para que la verificación
// "existe alerta sin resolver" y la creación sean atómicas.
func (uc *DailyReconciliationUseCase) Run(ctx context.Context) (*ReconciliationReport, error) {
	var report ReconciliationReport
	err := uc.txRunner.Run(ctx, func(
		_ repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		alertRepo repository.LowStockAlertRepository,
	) error {
		checked, err := productRepo.CountActive()
		if err != nil {
			return err
		}
		lowStock, err := productRepo.ListLowStock()
		if err != nil {
			return err
		}
		report.ProductsChecked = checked
		report.LowStockProductCount = len(lowStock)

		for _, p := range lowStock {
			if err := evaluateLowStock(alertRepo, p, p.StockQuantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}
