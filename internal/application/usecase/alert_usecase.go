package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/sioms-api/internal/domain"
	"github.com/jhoicas/sioms-api/internal/domain/entity"
	"github.com/jhoicas/sioms-api/internal/domain/repository"
)

// AlertUseCase gestión de alertas de stock bajo. Las alertas las crea el motor
// de reconciliación; aquí solo se listan y se resuelven explícitamente.
type AlertUseCase struct {
	alertRepo repository.LowStockAlertRepository
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(alertRepo repository.LowStockAlertRepository) *AlertUseCase {
	return &AlertUseCase{alertRepo: alertRepo}
}

// ListUnresolved alertas activas, más recientes primero.
func (uc *AlertUseCase) ListUnresolved(_ context.Context) ([]*entity.LowStockAlert, error) {
	return uc.alertRepo.ListUnresolved()
}

// List historial de alertas con paginación.
func (uc *AlertUseCase) List(_ context.Context, limit, offset int) ([]*entity.LowStockAlert, error) {
	if limit <= 0 || limit > 200 {
		limit = 200
	}
	return uc.alertRepo.List(limit, offset)
}

// Resolve marca la alerta como resuelta con fecha y notas opcionales.
// Resolver una alerta ya resuelta es un no-op idempotente.
func (uc *AlertUseCase) Resolve(_ context.Context, id string, notes string) error {
	alert, err := uc.alertRepo.GetByID(id)
	if err != nil {
		return err
	}
	if alert == nil {
		return domain.ErrNotFound
	}
	if alert.IsResolved {
		return nil
	}
	now := time.Now()
	alert.IsResolved = true
	alert.ResolvedDate = &now
	if notes != "" {
		alert.Notes = notes
	}
	return uc.alertRepo.Update(alert)
}
