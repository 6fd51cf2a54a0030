package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sioms-api/internal/application/reports"
	"github.com/jhoicas/sioms-api/internal/domain"
	"github.com/jhoicas/sioms-api/internal/domain/entity"
	"github.com/jhoicas/sioms-api/internal/testutil/memrepo"
)

// fakeGenerator captura lo que el caso de uso arma para el PDF.
type fakeGenerator struct {
	summary *entity.MovementSummary
	lines   []reports.ReportLine
}

func (g *fakeGenerator) GenerateMovementReport(_ context.Context, _, _ time.Time, summary *entity.MovementSummary, lines []reports.ReportLine) ([]byte, error) {
	g.summary = summary
	g.lines = lines
	return []byte("%PDF-fake"), nil
}

func seedMovement(t *testing.T, store *memrepo.Store, productID, movType string, qty int, price string, date time.Time) {
	t.Helper()
	m := &entity.StockMovement{
		ProductID:    productID,
		MovementType: movType,
		Quantity:     qty,
		MovementDate: date,
	}
	if price != "" {
		d := decimal.RequireFromString(price)
		m.UnitPrice = &d
	}
	require.NoError(t, store.Movements.Create(m))
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte de movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestGeneratePDF_ArmaResumenYDetalle(t *testing.T) {
	store := memrepo.NewStore()
	gen := &fakeGenerator{}
	uc := reports.NewMovementReportUseCase(store.Movements, store.Products, gen)

	product := &entity.Product{Name: "Cemento Gris", SKU: "CEM-001", IsActive: true}
	require.NoError(t, store.Products.Create(product))

	now := time.Now()
	seedMovement(t, store, product.ID, entity.MovementTypeIN, 10, "2.00", now.Add(-2*time.Hour))
	seedMovement(t, store, product.ID, entity.MovementTypeOUT, 4, "3.50", now.Add(-time.Hour))
	seedMovement(t, store, product.ID, entity.MovementTypeADJUSTMENT, 2, "", now)

	pdf, err := uc.GeneratePDF(context.Background(), now.AddDate(0, 0, -1), now)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)

	require.NotNil(t, gen.summary)
	assert.Equal(t, 3, gen.summary.TotalMovements)
	assert.Equal(t, 12, gen.summary.TotalInQuantity,
		"IN y ADJUSTMENT cuentan como entradas en el reporte")
	assert.Equal(t, 4, gen.summary.TotalOutQuantity)
	assert.True(t, gen.summary.TotalInValue.Equal(decimal.RequireFromString("20.00")))
	assert.True(t, gen.summary.TotalOutValue.Equal(decimal.RequireFromString("14.00")))

	require.Len(t, gen.lines, 3)
	for _, line := range gen.lines {
		assert.Equal(t, "Cemento Gris", line.ProductName,
			"cada fila de detalle lleva el nombre del producto resuelto")
		assert.Equal(t, "CEM-001", line.SKU)
	}
}

func TestGeneratePDF_ExcluyeMovimientosFueraDelRango(t *testing.T) {
	store := memrepo.NewStore()
	gen := &fakeGenerator{}
	uc := reports.NewMovementReportUseCase(store.Movements, store.Products, gen)

	product := &entity.Product{Name: "Arena", SKU: "ARE-001", IsActive: true}
	require.NoError(t, store.Products.Create(product))

	now := time.Now()
	seedMovement(t, store, product.ID, entity.MovementTypeIN, 10, "", now)
	seedMovement(t, store, product.ID, entity.MovementTypeIN, 99, "", now.AddDate(0, -3, 0))

	_, err := uc.GeneratePDF(context.Background(), now.AddDate(0, 0, -7), now)
	require.NoError(t, err)

	require.NotNil(t, gen.summary)
	assert.Equal(t, 1, gen.summary.TotalMovements)
	assert.Len(t, gen.lines, 1)
}

func TestGeneratePDF_RangoInvalido(t *testing.T) {
	store := memrepo.NewStore()
	uc := reports.NewMovementReportUseCase(store.Movements, store.Products, &fakeGenerator{})

	now := time.Now()
	_, err := uc.GeneratePDF(context.Background(), now, now.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "to anterior a from debe rechazarse")
}

func TestGeneratePDF_ProductoBorradoNoRompeElReporte(t *testing.T) {
	store := memrepo.NewStore()
	gen := &fakeGenerator{}
	uc := reports.NewMovementReportUseCase(store.Movements, store.Products, gen)

	now := time.Now()
	seedMovement(t, store, "producto-borrado", entity.MovementTypeIN, 5, "", now)

	_, err := uc.GeneratePDF(context.Background(), now.AddDate(0, 0, -1), now)
	require.NoError(t, err)

	require.Len(t, gen.lines, 1)
	assert.Empty(t, gen.lines[0].ProductName,
		"un movimiento huérfano sale sin nombre en lugar de tumbar el reporte")
}
