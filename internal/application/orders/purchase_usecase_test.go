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

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newPurchaseUC(t *testing.T) (*orders.PurchaseOrderUseCase, *memrepo.Store) {
	t.Helper()
	store := memrepo.NewStore()
	engine := inventory.NewReconcileUseCase(store)
	uc := orders.NewPurchaseOrderUseCase(store, engine, store.Purchases, store.Products, store.Suppliers)
	return uc, store
}

func seedProduct(t *testing.T, store *memrepo.Store, name string, stock, minimum int) *entity.Product {
	t.Helper()
	p := &entity.Product{
		Name:              name,
		SKU:               "SKU-" + name,
		StockQuantity:     stock,
		MinimumStockLevel: minimum,
		IsActive:          true,
	}
	require.NoError(t, store.Products.Create(p))
	return p
}

func seedSupplier(t *testing.T, store *memrepo.Store, name string) *entity.Supplier {
	t.Helper()
	s := &entity.Supplier{Name: name}
	require.NoError(t, store.Suppliers.Create(s))
	return s
}

func currentStock(t *testing.T, store *memrepo.Store, id string) int {
	t.Helper()
	p, err := store.Products.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.StockQuantity
}

func purchaseInput(productID, supplierID string, qty int, price string) orders.PurchaseOrderInput {
	return orders.PurchaseOrderInput{
		ProductID:  productID,
		SupplierID: supplierID,
		Quantity:   qty,
		UnitPrice:  decimal.RequireFromString(price),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación
// ──────────────────────────────────────────────────────────────────────────────

func TestPurchaseCreate_QuedaPendienteSinTocarStock(t *testing.T) {
	uc, store := newPurchaseUC(t)
	product := seedProduct(t, store, "Cemento", 10, 0)
	supplier := seedSupplier(t, store, "Distribuidora Norte")

	order, err := uc.Create(context.Background(), purchaseInput(product.ID, supplier.ID, 40, "12.50"))
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, entity.PurchaseOrderStatusPending, order.Status)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("500.00")),
		"el total debe ser cantidad por precio unitario")
	assert.Equal(t, 10, currentStock(t, store, product.ID),
		"crear la orden no debe tocar el stock")
	assert.Empty(t, store.Movements.All(), "crear la orden no debe escribir en el libro")
}

func TestPurchaseCreate_Validaciones(t *testing.T) {
	uc, store := newPurchaseUC(t)
	product := seedProduct(t, store, "Arena", 10, 0)
	supplier := seedSupplier(t, store, "Proveedor")
	ctx := context.Background()

	_, err := uc.Create(ctx, purchaseInput(product.ID, supplier.ID, 0, "5.00"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero debe rechazarse")

	_, err = uc.Create(ctx, purchaseInput(product.ID, supplier.ID, 5, "0"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio cero debe rechazarse")

	_, err = uc.Create(ctx, purchaseInput("no-existe", supplier.ID, 5, "5.00"))
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto inexistente")

	_, err = uc.Create(ctx, purchaseInput(product.ID, "no-existe", 5, "5.00"))
	assert.ErrorIs(t, err, domain.ErrNotFound, "proveedor inexistente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Recepción
// ──────────────────────────────────────────────────────────────────────────────

func TestPurchaseReceive_SumaStockYRegistraMovimiento(t *testing.T) {
	uc, store := newPurchaseUC(t)
	product := seedProduct(t, store, "Ladrillos", 10, 0)
	supplier := seedSupplier(t, store, "Ladrillera Sur")
	ctx := context.Background()

	order, err := uc.Create(ctx, purchaseInput(product.ID, supplier.ID, 40, "0.80"))
	require.NoError(t, err)

	received, err := uc.Receive(ctx, order.ID, "user-1")
	require.NoError(t, err)
	require.NotNil(t, received)

	assert.Equal(t, entity.PurchaseOrderStatusReceived, received.Status)
	require.NotNil(t, received.ActualDeliveryDate, "recibir debe sellar la fecha real de entrega")
	assert.Equal(t, 50, currentStock(t, store, product.ID),
		"recibir 40 sobre stock 10 debe dejar 50")

	rows := store.Movements.All()
	require.Len(t, rows, 1, "la recepción registra exactamente un movimiento")
	assert.Equal(t, entity.MovementTypeIN, rows[0].MovementType)
	assert.Equal(t, 40, rows[0].Quantity)
	assert.Equal(t, "PO-"+order.ID, rows[0].ReferenceNumber,
		"el movimiento debe referenciar la orden")
	require.NotNil(t, rows[0].UnitPrice)
	assert.True(t, rows[0].UnitPrice.Equal(decimal.RequireFromString("0.80")))
	assert.Equal(t, "user-1", rows[0].CreatedBy)
}

func TestPurchaseReceive_OrdenYaRecibida(t *testing.T) {
	uc, store := newPurchaseUC(t)
	product := seedProduct(t, store, "Bloques", 0, 0)
	supplier := seedSupplier(t, store, "Proveedor")
	ctx := context.Background()

	order, err := uc.Create(ctx, purchaseInput(product.ID, supplier.ID, 10, "1.00"))
	require.NoError(t, err)
	_, err = uc.Receive(ctx, order.ID, "user-1")
	require.NoError(t, err)

	_, err = uc.Receive(ctx, order.ID, "user-1")
	assert.ErrorIs(t, err, domain.ErrConflict, "recibir dos veces debe fallar")
	assert.Equal(t, 10, currentStock(t, store, product.ID),
		"la segunda recepción no debe duplicar el efecto")
	assert.Len(t, store.Movements.All(), 1)
}

func TestPurchaseReceive_OrdenNoExiste(t *testing.T) {
	uc, _ := newPurchaseUC(t)
	_, err := uc.Receive(context.Background(), "no-existe", "user-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Órdenes terminales
// ──────────────────────────────────────────────────────────────────────────────

func TestPurchaseUpdate_OrdenRecibidaEsInmutable(t *testing.T) {
	uc, store := newPurchaseUC(t)
	product := seedProduct(t, store, "Tejas", 0, 0)
	supplier := seedSupplier(t, store, "Proveedor")
	ctx := context.Background()

	order, err := uc.Create(ctx, purchaseInput(product.ID, supplier.ID, 10, "1.00"))
	require.NoError(t, err)
	_, err = uc.Receive(ctx, order.ID, "user-1")
	require.NoError(t, err)

	_, err = uc.Update(ctx, order.ID, purchaseInput(product.ID, supplier.ID, 99, "1.00"))
	assert.ErrorIs(t, err, domain.ErrConflict,
		"editar una orden recibida desincronizaría el stock ya aplicado")

	err = uc.Delete(ctx, order.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "una orden recibida tampoco se puede borrar")
}

func TestPurchaseUpdate_PendienteSePuedeEditar(t *testing.T) {
	uc, store := newPurchaseUC(t)
	product := seedProduct(t, store, "Vigas", 0, 0)
	supplier := seedSupplier(t, store, "Proveedor")
	ctx := context.Background()

	order, err := uc.Create(ctx, purchaseInput(product.ID, supplier.ID, 10, "1.00"))
	require.NoError(t, err)

	updated, err := uc.Update(ctx, order.ID, purchaseInput(product.ID, supplier.ID, 25, "2.00"))
	require.NoError(t, err)
	assert.Equal(t, 25, updated.Quantity)
	assert.True(t, updated.TotalAmount.Equal(decimal.RequireFromString("50.00")))
	require.NotNil(t, updated.UpdatedAt)
}
