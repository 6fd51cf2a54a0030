package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sioms-api/internal/domain"
	"github.com/jhoicas/sioms-api/internal/domain/entity"
	"github.com/jhoicas/sioms-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de signos: tipos canónicos y alias heredados
// ──────────────────────────────────────────────────────────────────────────────

func TestEffect_TablaDeSignos(t *testing.T) {
	cases := []struct {
		tipo   string
		efecto int
	}{
		{"IN", +10},
		{"ADJUSTMENT", +10},
		{"Purchase", +10},
		{"Adjustment-In", +10},
		{"Return", +10},
		{"OUT", -10},
		{"Sale", -10},
		{"Adjustment-Out", -10},
		{"Damaged", -10},
		{"Expired", -10},
	}
	for _, tc := range cases {
		t.Run(tc.tipo, func(t *testing.T) {
			got, err := inventory.Effect(tc.tipo, 10, "", "")
			require.NoError(t, err)
			assert.Equal(t, tc.efecto, got, "efecto de %q", tc.tipo)
		})
	}
}

func TestEffect_NoDistingueMayusculas(t *testing.T) {
	for _, tipo := range []string{"in", "In", "IN", "sale", "SALE", "adjustment-out"} {
		_, err := inventory.Effect(tipo, 5, "", "")
		assert.NoError(t, err, "el tipo %q debe reconocerse sin importar mayúsculas", tipo)
	}
}

func TestEffect_Transfer(t *testing.T) {
	// Destino definido → entrada
	got, err := inventory.Effect("TRANSFER", 7, "", "Bodega B")
	require.NoError(t, err)
	assert.Equal(t, +7, got)

	// Origen definido → salida
	got, err = inventory.Effect("TRANSFER", 7, "Bodega A", "")
	require.NoError(t, err)
	assert.Equal(t, -7, got)

	// Ambos definidos: el destino gana (comportamiento del sistema original)
	got, err = inventory.Effect("TRANSFER", 7, "Bodega A", "Bodega B")
	require.NoError(t, err)
	assert.Equal(t, +7, got)

	// Sin ubicaciones no hay efecto derivable
	_, err = inventory.Effect("TRANSFER", 7, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEffect_TipoDesconocidoRechazado(t *testing.T) {
	// Un tipo no reconocido debe fallar con validación, nunca quedar como no-op.
	for _, tipo := range []string{"", "FOO", "IN-OUT", "ENTRADA"} {
		_, err := inventory.Effect(tipo, 1, "", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo %q", tipo)
	}
}

func TestEffect_CantidadInvalida(t *testing.T) {
	for _, qty := range []int{0, -1, -100} {
		_, err := inventory.Effect("IN", qty, "", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d", qty)
	}
}

func TestNormalize_AliasAlCanonico(t *testing.T) {
	cases := map[string]string{
		"Purchase":       entity.MovementTypeIN,
		"Return":         entity.MovementTypeIN,
		"Adjustment-In":  entity.MovementTypeADJUSTMENT,
		"Sale":           entity.MovementTypeOUT,
		"Damaged":        entity.MovementTypeOUT,
		"Expired":        entity.MovementTypeOUT,
		"Adjustment-Out": entity.MovementTypeOUT,
		"transfer":       entity.MovementTypeTRANSFER,
	}
	for alias, want := range cases {
		got, err := inventory.Normalize(alias)
		require.NoError(t, err, "alias %q", alias)
		assert.Equal(t, want, got, "alias %q", alias)
	}
}

func TestEffectOf_RevierteLoQueAplica(t *testing.T) {
	m := &entity.StockMovement{
		MovementType:   entity.MovementTypeTRANSFER,
		Quantity:       4,
		SourceLocation: "Bodega A",
	}
	eff, err := inventory.EffectOf(m)
	require.NoError(t, err)
	assert.Equal(t, -4, eff)
}
