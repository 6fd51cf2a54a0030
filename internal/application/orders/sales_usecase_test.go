package orders_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sioms-api/internal/application/inventory"
	"github.com/jhoicas/sioms-api/internal/application/orders"
	"github.com/jhoicas/sioms-api/internal/domain"
	"github.com/jhoicas/sioms-api/internal/domain/entity"
	"github.com/jhoicas/sioms-api/internal/testutil/memrepo"
)

func newSalesUC(t *testing.T) (*orders.SalesOrderUseCase, *memrepo.Store) {
	t.Helper()
	store := memrepo.NewStore()
	engine := inventory.NewReconcileUseCase(store)
	uc := orders.NewSalesOrderUseCase(store, engine, store.Sales, store.Products)
	return uc, store
}

func salesInput(productID string, qty int, price string) orders.SalesOrderInput {
	return orders.SalesOrderInput{
		ProductID:    productID,
		CustomerName: "Cliente de Prueba",
		Quantity:     qty,
		UnitPrice:    decimal.RequireFromString(price),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesCreate_QuedaPendienteSinTocarStock(t *testing.T) {
	uc, store := newSalesUC(t)
	product := seedProduct(t, store, "Pintura", 20, 0)

	order, err := uc.Create(context.Background(), salesInput(product.ID, 7, "15.00"))
	require.NoError(t, err)

	assert.Equal(t, entity.SalesOrderStatusPending, order.Status)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("105.00")))
	assert.Equal(t, 20, currentStock(t, store, product.ID),
		"crear la orden no reserva ni resta stock")
}

func TestSalesCreate_Validaciones(t *testing.T) {
	uc, store := newSalesUC(t)
	product := seedProduct(t, store, "Barniz", 20, 0)
	ctx := context.Background()

	in := salesInput(product.ID, 5, "10.00")
	in.CustomerName = ""
	_, err := uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el nombre del cliente es obligatorio")

	_, err = uc.Create(ctx, salesInput(product.ID, 0, "10.00"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, salesInput("no-existe", 5, "10.00"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Completación
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesComplete_RestaStockYRegistraMovimiento(t *testing.T) {
	uc, store := newSalesUC(t)
	product := seedProduct(t, store, "Thinner", 20, 0)
	ctx := context.Background()

	order, err := uc.Create(ctx, salesInput(product.ID, 7, "8.00"))
	require.NoError(t, err)

	completed, err := uc.Complete(ctx, order.ID, "user-2")
	require.NoError(t, err)
	require.NotNil(t, completed)

	assert.Equal(t, entity.SalesOrderStatusCompleted, completed.Status)
	require.NotNil(t, completed.DeliveryDate, "completar debe sellar la fecha de entrega")
	assert.Equal(t, 13, currentStock(t, store, product.ID),
		"completar una venta de 7 sobre stock 20 debe dejar 13")

	rows := store.Movements.All()
	require.Len(t, rows, 1, "la completación registra exactamente un movimiento")
	assert.Equal(t, entity.MovementTypeOUT, rows[0].MovementType)
	assert.Equal(t, 7, rows[0].Quantity)
	assert.Equal(t, "SO-"+order.ID, rows[0].ReferenceNumber)
	assert.Equal(t, "user-2", rows[0].CreatedBy)
}

func TestSalesComplete_StockInsuficiente(t *testing.T) {
	uc, store := newSalesUC(t)
	product := seedProduct(t, store, "Rodillos", 5, 0)
	ctx := context.Background()

	order, err := uc.Create(ctx, salesInput(product.ID, 10, "4.00"))
	require.NoError(t, err)

	_, err = uc.Complete(ctx, order.ID, "user-2")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock,
		"vender 10 con stock 5 debe fallar")

	assert.Equal(t, 5, currentStock(t, store, product.ID),
		"el fallo no debe aplicar ningún efecto parcial al stock")
	assert.Empty(t, store.Movements.All(), "el fallo no debe escribir en el libro")

	pending, err := uc.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SalesOrderStatusPending, pending.Status,
		"la orden debe seguir pendiente tras el fallo")
}

func TestSalesComplete_DisparaAlertaDeStockBajo(t *testing.T) {
	uc, store := newSalesUC(t)
	product := seedProduct(t, store, "Esmalte", 12, 10)
	ctx := context.Background()

	order, err := uc.Create(ctx, salesInput(product.ID, 5, "6.00"))
	require.NoError(t, err)
	_, err = uc.Complete(ctx, order.ID, "user-2")
	require.NoError(t, err)

	// 12 - 5 = 7 <= 10
	alerts, err := store.Alerts.ListUnresolved()
	require.NoError(t, err)
	require.Len(t, alerts, 1, "la venta que cruza el umbral debe crear la alerta")
	assert.Equal(t, product.ID, alerts[0].ProductID)
	assert.Equal(t, 7, alerts[0].CurrentStock)
}

func TestSalesComplete_OrdenYaCompletada(t *testing.T) {
	uc, store := newSalesUC(t)
	product := seedProduct(t, store, "Sellador", 20, 0)
	ctx := context.Background()

	order, err := uc.Create(ctx, salesInput(product.ID, 5, "3.00"))
	require.NoError(t, err)
	_, err = uc.Complete(ctx, order.ID, "user-2")
	require.NoError(t, err)

	_, err = uc.Complete(ctx, order.ID, "user-2")
	assert.ErrorIs(t, err, domain.ErrConflict, "completar dos veces debe fallar")
	assert.Equal(t, 15, currentStock(t, store, product.ID),
		"la segunda completación no debe duplicar la resta")
}

// ──────────────────────────────────────────────────────────────────────────────
// Cancelación y órdenes terminales
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesCancel_NoAfectaStock(t *testing.T) {
	uc, store := newSalesUC(t)
	product := seedProduct(t, store, "Masilla", 20, 0)
	ctx := context.Background()

	order, err := uc.Create(ctx, salesInput(product.ID, 5, "2.00"))
	require.NoError(t, err)

	cancelled, err := uc.Cancel(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SalesOrderStatusCancelled, cancelled.Status)
	assert.Equal(t, 20, currentStock(t, store, product.ID))
	assert.Empty(t, store.Movements.All())

	// Una orden cancelada ya no se puede completar
	_, err = uc.Complete(ctx, order.ID, "user-2")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSalesUpdate_OrdenCompletadaEsInmutable(t *testing.T) {
	uc, store := newSalesUC(t)
	product := seedProduct(t, store, "Yeso", 20, 0)
	ctx := context.Background()

	order, err := uc.Create(ctx, salesInput(product.ID, 5, "2.00"))
	require.NoError(t, err)
	_, err = uc.Complete(ctx, order.ID, "user-2")
	require.NoError(t, err)

	_, err = uc.Update(ctx, order.ID, salesInput(product.ID, 99, "2.00"))
	assert.ErrorIs(t, err, domain.ErrConflict)

	err = uc.Delete(ctx, order.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
