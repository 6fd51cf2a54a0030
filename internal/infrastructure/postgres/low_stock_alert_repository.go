package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/sioms-api/internal/domain/entity"
	"github.com/jhoicas/sioms-api/internal/domain/repository"
)

var _ repository.LowStockAlertRepository = (*LowStockAlertRepo)(nil)

const alertColumns = `id, product_id, product_name, current_stock, minimum_stock_level, alert_date,
	is_resolved, resolved_date, notes`

// LowStockAlertRepo implementación del puerto LowStockAlertRepository sobre PostgreSQL (usable con pool o tx).
type LowStockAlertRepo struct {
	q Querier
}

// NewLowStockAlertRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLowStockAlertRepository(q Querier) *LowStockAlertRepo {
	return &LowStockAlertRepo{q: q}
}

func scanAlert(row pgx.Row) (*entity.LowStockAlert, error) {
	var a entity.LowStockAlert
	err := row.Scan(
		&a.ID, &a.ProductID, &a.ProductName, &a.CurrentStock, &a.MinimumStockLevel,
		&a.AlertDate, &a.IsResolved, &a.ResolvedDate, &a.Notes,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create persiste una nueva alerta.
func (r *LowStockAlertRepo) Create(alert *entity.LowStockAlert) error {
	if alert.ID == "" {
		alert.ID = uuid.New().String()
	}
	query := `
		INSERT INTO low_stock_alerts (id, product_id, product_name, current_stock, minimum_stock_level, alert_date, is_resolved, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.ProductID, alert.ProductName, alert.CurrentStock,
		alert.MinimumStockLevel, alert.AlertDate, alert.IsResolved, alert.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert low stock alert: %w", err)
	}
	return nil
}

// GetByID obtiene una alerta por ID.
func (r *LowStockAlertRepo) GetByID(id string) (*entity.LowStockAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM low_stock_alerts WHERE id = $1`
	a, err := scanAlert(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get low stock alert: %w", err)
	}
	return a, nil
}

// HasUnresolved indica si ya existe una alerta sin resolver para el producto.
func (r *LowStockAlertRepo) HasUnresolved(productID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM low_stock_alerts WHERE product_id = $1 AND NOT is_resolved)`,
		productID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check unresolved alert: %w", err)
	}
	return exists, nil
}

// Update actualiza una alerta existente (resolución, notas).
func (r *LowStockAlertRepo) Update(alert *entity.LowStockAlert) error {
	query := `
		UPDATE low_stock_alerts SET is_resolved = $2, resolved_date = $3, notes = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.IsResolved, alert.ResolvedDate, alert.Notes,
	)
	if err != nil {
		return fmt.Errorf("update low stock alert: %w", err)
	}
	return nil
}

// ListUnresolved alertas activas, más recientes primero.
func (r *LowStockAlertRepo) ListUnresolved() ([]*entity.LowStockAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM low_stock_alerts WHERE NOT is_resolved ORDER BY alert_date DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list unresolved alerts: %w", err)
	}
	defer rows.Close()
	var list []*entity.LowStockAlert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("scan low stock alert: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// List historial completo de alertas con paginación, más recientes primero.
func (r *LowStockAlertRepo) List(limit, offset int) ([]*entity.LowStockAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM low_stock_alerts ORDER BY alert_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()
	var list []*entity.LowStockAlert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("scan low stock alert: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
