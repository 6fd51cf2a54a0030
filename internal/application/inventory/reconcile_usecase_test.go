package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sioms-api/internal/application/inventory"
	"github.com/jhoicas/sioms-api/internal/domain"
	"github.com/jhoicas/sioms-api/internal/domain/entity"
	"github.com/jhoicas/sioms-api/internal/testutil/memrepo"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newEngine(t *testing.T) (*inventory.ReconcileUseCase, *memrepo.Store) {
	t.Helper()
	store := memrepo.NewStore()
	return inventory.NewReconcileUseCase(store), store
}

// seedProduct crea un producto activo con el stock y mínimo indicados.
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

func currentStock(t *testing.T, store *memrepo.Store, id string) int {
	t.Helper()
	p, err := store.Products.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.StockQuantity
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateMovement — aplicación del efecto
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateMovement_EntradaSumaStock(t *testing.T) {
	engine, store := newEngine(t)
	product := seedProduct(t, store, "Tornillos", 10, 0)

	mov, err := engine.CreateMovement(context.Background(), inventory.MovementInput{
		ProductID:       product.ID,
		MovementType:    entity.MovementTypeIN,
		Quantity:        50,
		ReferenceNumber: "REF-001",
	})
	require.NoError(t, err)
	require.NotNil(t, mov)

	assert.Equal(t, 60, currentStock(t, store, product.ID),
		"una entrada de 50 sobre stock 10 debe dejar 60")
	assert.Equal(t, entity.MovementTypeIN, mov.MovementType)
	assert.Equal(t, 50, mov.Quantity, "la cantidad del libro siempre es positiva")

	rows := store.Movements.All()
	require.Len(t, rows, 1, "debe quedar exactamente una fila en el libro")
	assert.Equal(t, product.ID, rows[0].ProductID)
	assert.Equal(t, "REF-001", rows[0].ReferenceNumber)
}

func TestCreateMovement_SecuenciaDeMovimientos(t *testing.T) {
	engine, store := newEngine(t)
	product := seedProduct(t, store, "Tuercas", 10, 0)
	ctx := context.Background()

	steps := []struct {
		movType string
		qty     int
	}{
		{entity.MovementTypeIN, 50},
		{entity.MovementTypeOUT, 20},
		{entity.MovementTypeADJUSTMENT, 5},
	}
	for _, s := range steps {
		_, err := engine.CreateMovement(ctx, inventory.MovementInput{
			ProductID:    product.ID,
			MovementType: s.movType,
			Quantity:     s.qty,
		})
		require.NoError(t, err)
	}

	// 10 + 50 - 20 + 5
	assert.Equal(t, 45, currentStock(t, store, product.ID),
		"el stock debe ser la suma de los efectos en orden")
	assert.Len(t, store.Movements.All(), 3)
}

func TestCreateMovement_AliasSeNormalizan(t *testing.T) {
	engine, store := newEngine(t)
	product := seedProduct(t, store, "Clavos", 10, 0)
	ctx := context.Background()

	mov, err := engine.CreateMovement(ctx, inventory.MovementInput{
		ProductID:    product.ID,
		MovementType: "Purchase",
		Quantity:     5,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeIN, mov.MovementType,
		"Purchase debe persistirse como IN")
	assert.Equal(t, 15, currentStock(t, store, product.ID))

	mov, err = engine.CreateMovement(ctx, inventory.MovementInput{
		ProductID:    product.ID,
		MovementType: "Sale",
		Quantity:     3,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeOUT, mov.MovementType,
		"Sale debe persistirse como OUT")
	assert.Equal(t, 12, currentStock(t, store, product.ID))

	mov, err = engine.CreateMovement(ctx, inventory.MovementInput{
		ProductID:    product.ID,
		MovementType: "adjustment-out",
		Quantity:     2,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeOUT, mov.MovementType,
		"Adjustment-Out resta, por eso normaliza a OUT y no a ADJUSTMENT")
	assert.Equal(t, 10, currentStock(t, store, product.ID))
}

func TestCreateMovement_TransferElDestinoGana(t *testing.T) {
	engine, store := newEngine(t)
	product := seedProduct(t, store, "Cables", 10, 0)
	ctx := context.Background()

	// Origen y destino definidos: el destino gana, el efecto es positivo
	_, err := engine.CreateMovement(ctx, inventory.MovementInput{
		ProductID:           product.ID,
		MovementType:        entity.MovementTypeTRANSFER,
		Quantity:            4,
		SourceLocation:      "Bodega A",
		DestinationLocation: "Bodega B",
	})
	require.NoError(t, err)
	assert.Equal(t, 14, currentStock(t, store, product.ID),
		"TRANSFER con ambas ubicaciones debe sumar (el destino gana)")

	// Solo origen: salida
	_, err = engine.CreateMovement(ctx, inventory.MovementInput{
		ProductID:      product.ID,
		MovementType:   entity.MovementTypeTRANSFER,
		Quantity:       6,
		SourceLocation: "Bodega A",
	})
	require.NoError(t, err)
	assert.Equal(t, 8, currentStock(t, store, product.ID),
		"TRANSFER solo con origen debe restar")

	// Sin ubicaciones: no hay efecto derivable
	_, err = engine.CreateMovement(ctx, inventory.MovementInput{
		ProductID:    product.ID,
		MovementType: entity.MovementTypeTRANSFER,
		Quantity:     1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"TRANSFER sin ubicaciones debe rechazarse")
}

func TestCreateMovement_EntradasInvalidas(t *testing.T) {
	engine, store := newEngine(t)
	product := seedProduct(t, store, "Lijas", 10, 0)
	ctx := context.Background()

	_, err := engine.CreateMovement(ctx, inventory.MovementInput{
		ProductID:    product.ID,
		MovementType: "Teleport",
		Quantity:     5,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"un tipo desconocido debe rechazarse, nunca ignorarse")

	_, err = engine.CreateMovement(ctx, inventory.MovementInput{
		ProductID:    product.ID,
		MovementType: entity.MovementTypeIN,
		Quantity:     0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero debe rechazarse")

	_, err = engine.CreateMovement(ctx, inventory.MovementInput{
		ProductID:    product.ID,
		MovementType: entity.MovementTypeIN,
		Quantity:     -3,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa debe rechazarse")

	negative := decimal.NewFromInt(-1)
	_, err = engine.CreateMovement(ctx, inventory.MovementInput{
		ProductID:    product.ID,
		MovementType: entity.MovementTypeIN,
		Quantity:     1,
		UnitPrice:    &negative,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo debe rechazarse")

	_, err = engine.CreateMovement(ctx, inventory.MovementInput{
		ProductID:    "no-existe",
		MovementType: entity.MovementTypeIN,
		Quantity:     5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto inexistente debe retornar not found")

	assert.Equal(t, 10, currentStock(t, store, product.ID),
		"ninguna entrada inválida debe tocar el stock")
	assert.Empty(t, store.Movements.All(), "ninguna entrada inválida debe escribir en el libro")
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateMovement / DeleteMovement — reversión del efecto
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateMovement_EquivaleABorrarYCrear(t *testing.T) {
	engine, store := newEngine(t)
	product := seedProduct(t, store, "Pinturas", 10, 0)
	ctx := context.Background()

	mov, err := engine.CreateMovement(ctx, inventory.MovementInput{
		ProductID:    product.ID,
		MovementType: entity.MovementTypeIN,
		Quantity:     50,
	})
	require.NoError(t, err)
	require.Equal(t, 60, currentStock(t, store, product.ID))

	// Editar la entrada de 50 a 30: el stock queda como si la original
	// nunca hubiera existido y se hubiera creado la de 30.
	updated, err := engine.UpdateMovement(ctx, mov.ID, inventory.MovementInput{
		ProductID:    product.ID,
		MovementType: entity.MovementTypeIN,
		Quantity:     30,
	})
	require.NoError(t, err)

	assert.Equal(t, 40, currentStock(t, store, product.ID),
		"editar IN 50 → IN 30 sobre stock base 10 debe dejar 40")
	assert.Equal(t, 30, updated.Quantity)

	rows := store.Movements.All()
	require.Len(t, rows, 1, "la edición no debe duplicar filas del libro")
	assert.Equal(t, mov.ID, rows[0].ID)
}

func TestUpdateMovement_CambioDeTipo(t *testing.T) {
	engine, store := newEngine(t)
	product := seedProduct(t, store, "Brochas", 50, 0)
	ctx := context.Background()

	mov, err := engine.CreateMovement(ctx, inventory.MovementInput{
		ProductID:    product.ID,
		MovementType: entity.MovementTypeIN,
		Quantity:     20,
	})
	require.NoError(t, err)
	require.Equal(t, 70, currentStock(t, store, product.ID))

	// IN 20 → OUT 20: revertir -20, aplicar -20
	_, err = engine.UpdateMovement(ctx, mov.ID, inventory.MovementInput{
		ProductID:    product.ID,
		MovementType: entity.MovementTypeOUT,
		Quantity:     20,
	})
	require.NoError(t, err)
	assert.Equal(t, 30, currentStock(t, store, product.ID),
		"cambiar el tipo debe revertir el efecto anterior y aplicar el nuevo")
}

func TestUpdateMovement_CambioDeProducto(t *testing.T) {
	engine, store := newEngine(t)
	productA := seedProduct(t, store, "Martillos", 10, 0)
	productB := seedProduct(t, store, "Serruchos", 5, 0)
	ctx := context.Background()

	mov, err := engine.CreateMovement(ctx, inventory.MovementInput{
		ProductID:    productA.ID,
		MovementType: entity.MovementTypeIN,
		Quantity:     20,
	})
	require.NoError(t, err)
	require.Equal(t, 30, currentStock(t, store, productA.ID))

	updated, err := engine.UpdateMovement(ctx, mov.ID, inventory.MovementInput{
		ProductID:    productB.ID,
		MovementType: entity.MovementTypeIN,
		Quantity:     20,
	})
	require.NoError(t, err)

	assert.Equal(t, 10, currentStock(t, store, productA.ID),
		"el producto anterior debe quedar como antes del movimiento")
	assert.Equal(t, 25, currentStock(t, store, productB.ID),
		"el producto nuevo debe recibir el efecto completo")
	assert.Equal(t, productB.ID, updated.ProductID)
}

func TestUpdateMovement_NoExiste(t *testing.T) {
	engine, _ := newEngine(t)
	_, err := engine.UpdateMovement(context.Background(), "no-existe", inventory.MovementInput{
		ProductID:    "p1",
		MovementType: entity.MovementTypeIN,
		Quantity:     1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteMovement_RevierteElEfecto(t *testing.T) {
	engine, store := newEngine(t)
	product := seedProduct(t, store, "Taladros", 10, 0)
	ctx := context.Background()

	mov, err := engine.CreateMovement(ctx, inventory.MovementInput{
		ProductID:    product.ID,
		MovementType: entity.MovementTypeIN,
		Quantity:     50,
	})
	require.NoError(t, err)
	require.Equal(t, 60, currentStock(t, store, product.ID))

	require.NoError(t, engine.DeleteMovement(ctx, mov.ID))

	assert.Equal(t, 10, currentStock(t, store, product.ID),
		"borrar el movimiento debe dejar el stock como antes de crearlo")
	assert.Empty(t, store.Movements.All(), "la fila del libro debe desaparecer")
}

func TestDeleteMovement_NoExiste(t *testing.T) {
	engine, _ := newEngine(t)
	err := engine.DeleteMovement(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alertas de stock bajo
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStock_CreaUnaSolaAlertaPorProducto(t *testing.T) {
	engine, store := newEngine(t)
	product := seedProduct(t, store, "Guantes", 20, 10)
	ctx := context.Background()

	// 20 - 12 = 8 <= 10: debe crear la alerta
	_, err := engine.CreateMovement(ctx, inventory.MovementInput{
		ProductID:    product.ID,
		MovementType: entity.MovementTypeOUT,
		Quantity:     12,
	})
	require.NoError(t, err)

	alerts, err := store.Alerts.ListUnresolved()
	require.NoError(t, err)
	require.Len(t, alerts, 1, "cruzar el umbral debe crear exactamente una alerta")
	assert.Equal(t, product.ID, alerts[0].ProductID)
	assert.Equal(t, "Guantes", alerts[0].ProductName, "la alerta guarda snapshot del nombre")
	assert.Equal(t, 8, alerts[0].CurrentStock, "la alerta guarda el stock observado")
	assert.Equal(t, 10, alerts[0].MinimumStockLevel, "la alerta guarda snapshot del umbral")
	assert.False(t, alerts[0].IsResolved)

	// Sigue bajando: no debe crear una segunda alerta
	_, err = engine.CreateMovement(ctx, inventory.MovementInput{
		ProductID:    product.ID,
		MovementType: entity.MovementTypeOUT,
		Quantity:     2,
	})
	require.NoError(t, err)

	alerts, err = store.Alerts.ListUnresolved()
	require.NoError(t, err)
	assert.Len(t, alerts, 1,
		"mientras exista una alerta sin resolver no debe crearse otra")
}

func TestLowStock_NoSeResuelveAutomaticamente(t *testing.T) {
	engine, store := newEngine(t)
	product := seedProduct(t, store, "Cascos", 20, 10)
	ctx := context.Background()

	_, err := engine.CreateMovement(ctx, inventory.MovementInput{
		ProductID:    product.ID,
		MovementType: entity.MovementTypeOUT,
		Quantity:     15,
	})
	require.NoError(t, err)

	// Reponer muy por encima del mínimo
	_, err = engine.CreateMovement(ctx, inventory.MovementInput{
		ProductID:    product.ID,
		MovementType: entity.MovementTypeIN,
		Quantity:     100,
	})
	require.NoError(t, err)

	alerts, err := store.Alerts.ListUnresolved()
	require.NoError(t, err)
	assert.Len(t, alerts, 1,
		"reponer stock no resuelve la alerta: la resolución es siempre explícita")
}

func TestLowStock_SinMinimoNoHayAlerta(t *testing.T) {
	engine, store := newEngine(t)
	product := seedProduct(t, store, "Cintas", 5, 0)

	_, err := engine.CreateMovement(context.Background(), inventory.MovementInput{
		ProductID:    product.ID,
		MovementType: entity.MovementTypeOUT,
		Quantity:     5,
	})
	require.NoError(t, err)

	alerts, err := store.Alerts.ListUnresolved()
	require.NoError(t, err)
	assert.Empty(t, alerts, "mínimo 0 significa sin monitoreo de stock bajo")
}

func TestLowStock_EnElUmbralExactoAlerta(t *testing.T) {
	engine, store := newEngine(t)
	product := seedProduct(t, store, "Lentes", 15, 10)

	// 15 - 5 = 10 == mínimo: el umbral es inclusivo
	_, err := engine.CreateMovement(context.Background(), inventory.MovementInput{
		ProductID:    product.ID,
		MovementType: entity.MovementTypeOUT,
		Quantity:     5,
	})
	require.NoError(t, err)

	alerts, err := store.Alerts.ListUnresolved()
	require.NoError(t, err)
	assert.Len(t, alerts, 1, "stock igual al mínimo debe disparar la alerta")
}
