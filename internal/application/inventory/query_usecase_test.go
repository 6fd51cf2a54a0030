package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sioms-api/internal/application/inventory"
	"github.com/jhoicas/sioms-api/internal/domain"
	"github.com/jhoicas/sioms-api/internal/domain/entity"
	"github.com/jhoicas/sioms-api/internal/testutil/memrepo"
)

// seedMovement inserta una fila directa en el libro, sin pasar por el motor.
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
// Resúmenes
// ──────────────────────────────────────────────────────────────────────────────

func TestSummary_TotalesPorRango(t *testing.T) {
	store := memrepo.NewStore()
	uc := inventory.NewQueryUseCase(store.Movements, store.Products)
	product := seedProduct(t, store, "Cemento", 0, 0)
	now := time.Now()

	seedMovement(t, store, product.ID, entity.MovementTypeIN, 10, "2.50", now)
	seedMovement(t, store, product.ID, entity.MovementTypeOUT, 4, "3.00", now)
	seedMovement(t, store, product.ID, entity.MovementTypeADJUSTMENT, 5, "", now)

	summary, err := uc.Summary(context.Background(), nil, nil)
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, 3, summary.TotalMovements)
	assert.Equal(t, 10, summary.TotalInQuantity)
	assert.Equal(t, 4, summary.TotalOutQuantity)
	assert.True(t, summary.TotalInValue.Equal(decimal.RequireFromString("25.00")),
		"valor de entradas: 10 * 2.50")
	assert.True(t, summary.TotalOutValue.Equal(decimal.RequireFromString("12.00")),
		"valor de salidas: 4 * 3.00")
	assert.Equal(t, map[string]int{
		entity.MovementTypeIN:         10,
		entity.MovementTypeOUT:        4,
		entity.MovementTypeADJUSTMENT: 5,
	}, summary.MovementsByType)
}

func TestSummary_RespetaElRangoDeFechas(t *testing.T) {
	store := memrepo.NewStore()
	uc := inventory.NewQueryUseCase(store.Movements, store.Products)
	product := seedProduct(t, store, "Arena", 0, 0)
	now := time.Now()

	seedMovement(t, store, product.ID, entity.MovementTypeIN, 10, "", now)
	seedMovement(t, store, product.ID, entity.MovementTypeIN, 99, "", now.AddDate(0, -2, 0))

	from := now.AddDate(0, 0, -7)
	summary, err := uc.Summary(context.Background(), &from, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalMovements,
		"el movimiento de hace dos meses queda fuera del rango")
	assert.Equal(t, 10, summary.TotalInQuantity)
}

func TestSummaryByProduct(t *testing.T) {
	store := memrepo.NewStore()
	uc := inventory.NewQueryUseCase(store.Movements, store.Products)
	product := seedProduct(t, store, "Grava", 0, 0)
	otro := seedProduct(t, store, "Otro", 0, 0)
	now := time.Now()

	seedMovement(t, store, product.ID, entity.MovementTypeIN, 10, "1.00", now)
	seedMovement(t, store, product.ID, entity.MovementTypeOUT, 3, "2.00", now)
	seedMovement(t, store, otro.ID, entity.MovementTypeIN, 100, "", now)

	ps, err := uc.SummaryByProduct(context.Background(), product.ID)
	require.NoError(t, err)
	require.NotNil(t, ps)

	assert.Equal(t, product.ID, ps.ProductID)
	assert.Equal(t, "Grava", ps.ProductName)
	assert.Equal(t, 10, ps.TotalIn)
	assert.Equal(t, 3, ps.TotalOut)
	assert.Equal(t, 7, ps.NetChange)
	assert.True(t, ps.TotalValue.Equal(decimal.RequireFromString("16.00")),
		"valor movido: 10*1.00 + 3*2.00")
}

func TestSummaryByProduct_ProductoNoExiste(t *testing.T) {
	store := memrepo.NewStore()
	uc := inventory.NewQueryUseCase(store.Movements, store.Products)

	_, err := uc.SummaryByProduct(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

func TestListByProduct_RequiereProducto(t *testing.T) {
	store := memrepo.NewStore()
	uc := inventory.NewQueryUseCase(store.Movements, store.Products)

	_, err := uc.ListByProduct(context.Background(), "", nil, nil, 0, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListByType_FiltraPorTipoCanonico(t *testing.T) {
	store := memrepo.NewStore()
	uc := inventory.NewQueryUseCase(store.Movements, store.Products)
	product := seedProduct(t, store, "Varillas", 0, 0)
	now := time.Now()

	seedMovement(t, store, product.ID, entity.MovementTypeIN, 10, "", now)
	seedMovement(t, store, product.ID, entity.MovementTypeOUT, 3, "", now)
	seedMovement(t, store, product.ID, entity.MovementTypeOUT, 2, "", now)

	out, err := uc.ListByType(context.Background(), entity.MovementTypeOUT, nil, nil, 0, 0)
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, m := range out {
		assert.Equal(t, entity.MovementTypeOUT, m.MovementType)
	}
}
