package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sioms-api/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

// ──────────────────────────────────────────────────────────────────────────────
// Cálculo de la próxima corrida
// ──────────────────────────────────────────────────────────────────────────────

func TestNextRunAfter_AntesDeLaHoraProgramada(t *testing.T) {
	s := New(nil, testLogger(), 2, "UTC")

	now := time.Date(2026, 8, 30, 1, 0, 0, 0, time.UTC)
	next := s.nextRunAfter(now)

	assert.Equal(t, time.Date(2026, 8, 30, 2, 0, 0, 0, time.UTC), next,
		"a la 01:00 la próxima corrida es hoy a las 02:00")
}

func TestNextRunAfter_DespuesDeLaHoraProgramada(t *testing.T) {
	s := New(nil, testLogger(), 2, "UTC")

	now := time.Date(2026, 8, 30, 3, 0, 0, 0, time.UTC)
	next := s.nextRunAfter(now)

	assert.Equal(t, time.Date(2026, 8, 31, 2, 0, 0, 0, time.UTC), next,
		"después de las 02:00 la próxima corrida es mañana")
}

func TestNextRunAfter_ExactamenteALaHora(t *testing.T) {
	s := New(nil, testLogger(), 2, "UTC")

	now := time.Date(2026, 8, 30, 2, 0, 0, 0, time.UTC)
	next := s.nextRunAfter(now)

	assert.Equal(t, time.Date(2026, 8, 31, 2, 0, 0, 0, time.UTC), next,
		"justo a las 02:00 la corrida ya se disparó: la próxima es mañana")
}

func TestNextRunAfter_ConvierteALaZonaConfigurada(t *testing.T) {
	s := New(nil, testLogger(), 2, "America/Bogota")

	bogota, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	// 06:59 UTC = 01:59 en Bogotá (UTC-5): la corrida de hoy aún no pasa
	now := time.Date(2026, 8, 30, 6, 59, 0, 0, time.UTC)
	next := s.nextRunAfter(now)

	assert.Equal(t, time.Date(2026, 8, 30, 2, 0, 0, 0, bogota), next)
}

// ──────────────────────────────────────────────────────────────────────────────
// Configuración defensiva
// ──────────────────────────────────────────────────────────────────────────────

func TestNew_HoraFueraDeRangoUsaDefault(t *testing.T) {
	s := New(nil, testLogger(), -1, "UTC")
	assert.Equal(t, 2, s.hour)

	s = New(nil, testLogger(), 24, "UTC")
	assert.Equal(t, 2, s.hour)
}

func TestNew_ZonaHorariaInvalidaUsaLocal(t *testing.T) {
	s := New(nil, testLogger(), 2, "Marte/Olympus")
	assert.Equal(t, time.Local, s.loc)
}
