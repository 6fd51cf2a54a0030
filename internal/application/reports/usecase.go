package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sioms-api/internal/domain"
	"github.com/jhoicas/sioms-api/internal/domain/entity"
	"github.com/jhoicas/sioms-api/internal/domain/repository"
)

// maxReportRows tope de filas de detalle incluidas en el PDF.
const maxReportRows = 2000

// ReportLine fila de detalle del reporte con datos del producto resueltos.
type ReportLine struct {
	MovementDate time.Time
	ProductName  string
	SKU          string
	Type         string
	Quantity     int
	UnitPrice    *decimal.Decimal
	Reference    string
}

// MovementPDFGenerator puerto de generación del PDF del reporte de movimientos.
type MovementPDFGenerator interface {
	GenerateMovementReport(ctx context.Context, from, to time.Time, summary *entity.MovementSummary, lines []ReportLine) ([]byte, error)
}

// MovementReportUseCase arma el reporte de movimientos de un rango de fechas:
// totales agregados más el detalle con nombre y SKU de cada producto.
type MovementReportUseCase struct {
	movRepo     repository.StockMovementRepository
	productRepo repository.ProductRepository
	generator   MovementPDFGenerator
}

// NewMovementReportUseCase construye el caso de uso.
func NewMovementReportUseCase(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	generator MovementPDFGenerator,
) *MovementReportUseCase {
	return &MovementReportUseCase{movRepo: movRepo, productRepo: productRepo, generator: generator}
}

// GeneratePDF genera el PDF del reporte para el rango [from, to].
func (uc *MovementReportUseCase) GeneratePDF(ctx context.Context, from, to time.Time) ([]byte, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: el rango de fechas es inválido", domain.ErrInvalidInput)
	}

	movements, err := uc.movRepo.ListByDateRange(&from, &to, maxReportRows, 0)
	if err != nil {
		return nil, err
	}

	summary := buildSummary(movements)

	// Resolver nombre y SKU una sola vez por producto
	products := make(map[string]*entity.Product)
	lines := make([]ReportLine, 0, len(movements))
	for _, m := range movements {
		p, ok := products[m.ProductID]
		if !ok {
			p, err = uc.productRepo.GetByID(m.ProductID)
			if err != nil {
				return nil, err
			}
			products[m.ProductID] = p
		}
		line := ReportLine{
			MovementDate: m.MovementDate,
			Type:         m.MovementType,
			Quantity:     m.Quantity,
			UnitPrice:    m.UnitPrice,
			Reference:    m.ReferenceNumber,
		}
		if p != nil {
			line.ProductName = p.Name
			line.SKU = p.SKU
		}
		lines = append(lines, line)
	}

	return uc.generator.GenerateMovementReport(ctx, from, to, summary, lines)
}

// buildSummary acumula los totales del rango sobre los movimientos ya cargados.
func buildSummary(movements []*entity.StockMovement) *entity.MovementSummary {
	s := &entity.MovementSummary{
		TotalInValue:    decimal.Zero,
		TotalOutValue:   decimal.Zero,
		MovementsByType: make(map[string]int),
	}
	for _, m := range movements {
		s.TotalMovements++
		s.MovementsByType[m.MovementType] += m.Quantity
		switch m.MovementType {
		case entity.MovementTypeIN, entity.MovementTypeADJUSTMENT:
			s.TotalInQuantity += m.Quantity
			if m.UnitPrice != nil {
				s.TotalInValue = s.TotalInValue.Add(m.UnitPrice.Mul(decimal.NewFromInt(int64(m.Quantity))))
			}
		case entity.MovementTypeOUT:
			s.TotalOutQuantity += m.Quantity
			if m.UnitPrice != nil {
				s.TotalOutValue = s.TotalOutValue.Add(m.UnitPrice.Mul(decimal.NewFromInt(int64(m.Quantity))))
			}
		}
	}
	return s
}
