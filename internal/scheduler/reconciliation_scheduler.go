// Package scheduler programa el barrido diario de reconciliación de stock.
package scheduler

import (
	"context"
	"time"

	"github.com/jhoicas/sioms-api/internal/application/inventory"
	"github.com/jhoicas/sioms-api/pkg/logger"
)

// ReconciliationScheduler corre la reconciliación diaria a una hora fija local
// (por defecto las 02:00) y luego cada 24 horas. Se detiene al cancelar el
// contexto.
type ReconciliationScheduler struct {
	uc   *inventory.DailyReconciliationUseCase
	log  *logger.Logger
	hour int
	loc  *time.Location
}

// New construye el scheduler. timezone vacío usa la zona local del proceso.
func New(uc *inventory.DailyReconciliationUseCase, log *logger.Logger, hour int, timezone string) *ReconciliationScheduler {
	loc := time.Local
	if timezone != "" {
		if l, err := time.LoadLocation(timezone); err == nil {
			loc = l
		} else {
			log.Warn().Str("timezone", timezone).Err(err).Msg("zona horaria inválida, usando local")
		}
	}
	if hour < 0 || hour > 23 {
		hour = 2
	}
	return &ReconciliationScheduler{uc: uc, log: log, hour: hour, loc: loc}
}

// nextRunAfter devuelve la próxima ocurrencia de la hora programada después de now.
func (s *ReconciliationScheduler) nextRunAfter(now time.Time) time.Time {
	local := now.In(s.loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), s.hour, 0, 0, 0, s.loc)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Start bloquea hasta que ctx se cancele; correrlo en una goroutine.
func (s *ReconciliationScheduler) Start(ctx context.Context) {
	for {
		next := s.nextRunAfter(time.Now())
		s.log.Info().Time("next_run", next).Msg("reconciliación diaria programada")

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			s.log.Info().Msg("scheduler de reconciliación detenido")
			return
		case <-timer.C:
		}

		report, err := s.uc.Run(ctx)
		if err != nil {
			s.log.Error().Err(err).Msg("reconciliación diaria fallida")
			continue
		}
		s.log.Info().
			Int("products_checked", report.ProductsChecked).
			Int("low_stock_products", report.LowStockProductCount).
			Msg("reconciliación diaria completada")
	}
}
