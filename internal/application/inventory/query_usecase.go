package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sioms-api/internal/domain"
	"github.com/jhoicas/sioms-api/internal/domain/entity"
	"github.com/jhoicas/sioms-api/internal/domain/repository"
)

// maxQueryLimit tope de filas por página en consultas del libro.
const maxQueryLimit = 500

// QueryUseCase consultas de solo lectura sobre el libro de movimientos:
// listados por producto/fecha/tipo, búsqueda libre y resúmenes. No muta stock.
type QueryUseCase struct {
	movRepo     repository.StockMovementRepository
	productRepo repository.ProductRepository
}

// NewQueryUseCase construye el caso de uso de consultas.
func NewQueryUseCase(movRepo repository.StockMovementRepository, productRepo repository.ProductRepository) *QueryUseCase {
	return &QueryUseCase{movRepo: movRepo, productRepo: productRepo}
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > maxQueryLimit {
		return maxQueryLimit
	}
	return limit
}

// ListByProduct movimientos de un producto, más recientes primero.
func (uc *QueryUseCase) ListByProduct(_ context.Context, productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.movRepo.ListByProduct(productID, from, to, clampLimit(limit), offset)
}

// ListByDateRange movimientos en un rango de fechas, más recientes primero.
func (uc *QueryUseCase) ListByDateRange(_ context.Context, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return uc.movRepo.ListByDateRange(from, to, clampLimit(limit), offset)
}

// ListByType movimientos de un tipo canónico.
func (uc *QueryUseCase) ListByType(_ context.Context, movementType string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return uc.movRepo.ListByType(movementType, from, to, clampLimit(limit), offset)
}

// Search búsqueda libre sobre nombre/SKU del producto, referencia, notas y tipo.
func (uc *QueryUseCase) Search(_ context.Context, term string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return uc.movRepo.Search(term, from, to, clampLimit(limit), offset)
}

// Summary totales de entradas/salidas (cantidad y valor) y agrupación por tipo
// para un rango de fechas. El valor solo considera movimientos con precio.
func (uc *QueryUseCase) Summary(_ context.Context, from, to *time.Time) (*entity.MovementSummary, error) {
	movements, err := uc.movRepo.ListByDateRange(from, to, maxQueryLimit, 0)
	if err != nil {
		return nil, err
	}

	summary := &entity.MovementSummary{
		TotalInValue:    decimal.Zero,
		TotalOutValue:   decimal.Zero,
		MovementsByType: make(map[string]int),
	}
	for _, m := range movements {
		summary.TotalMovements++
		summary.MovementsByType[m.MovementType] += m.Quantity
		switch m.MovementType {
		case entity.MovementTypeIN:
			summary.TotalInQuantity += m.Quantity
			if m.UnitPrice != nil {
				summary.TotalInValue = summary.TotalInValue.Add(m.UnitPrice.Mul(decimal.NewFromInt(int64(m.Quantity))))
			}
		case entity.MovementTypeOUT:
			summary.TotalOutQuantity += m.Quantity
			if m.UnitPrice != nil {
				summary.TotalOutValue = summary.TotalOutValue.Add(m.UnitPrice.Mul(decimal.NewFromInt(int64(m.Quantity))))
			}
		}
	}
	return summary, nil
}

// ProductSummary resumen de movimientos de un producto.
type ProductSummary struct {
	ProductID   string
	ProductName string
	TotalIn     int
	TotalOut    int
	NetChange   int
	TotalValue  decimal.Decimal
}

// SummaryByProduct totales de entradas/salidas y valor movido de un producto.
func (uc *QueryUseCase) SummaryByProduct(_ context.Context, productID string) (*ProductSummary, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movRepo.ListByProduct(productID, nil, nil, maxQueryLimit, 0)
	if err != nil {
		return nil, err
	}

	ps := &ProductSummary{
		ProductID:   product.ID,
		ProductName: product.Name,
		TotalValue:  decimal.Zero,
	}
	for _, m := range movements {
		switch m.MovementType {
		case entity.MovementTypeIN:
			ps.TotalIn += m.Quantity
		case entity.MovementTypeOUT:
			ps.TotalOut += m.Quantity
		}
		if m.UnitPrice != nil {
			ps.TotalValue = ps.TotalValue.Add(m.UnitPrice.Mul(decimal.NewFromInt(int64(m.Quantity))))
		}
	}
	ps.NetChange = ps.TotalIn - ps.TotalOut
	return ps, nil
}
