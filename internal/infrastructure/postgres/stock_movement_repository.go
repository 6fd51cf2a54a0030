package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/sioms-api/internal/domain/entity"
	"github.com/jhoicas/sioms-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `id, product_id, movement_type, quantity, unit_price, reference_number, notes,
	movement_date, source_location, destination_location, created_by, created_at`

// StockMovementRepo implementación del puerto StockMovementRepository sobre PostgreSQL (usable con pool o tx).
// Solo escribe el libro de movimientos; el stock del producto lo actualiza el motor de reconciliación.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	err := row.Scan(
		&m.ID, &m.ProductID, &m.MovementType, &m.Quantity, &m.UnitPrice,
		&m.ReferenceNumber, &m.Notes, &m.MovementDate, &m.SourceLocation,
		&m.DestinationLocation, &m.CreatedBy, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create persiste un movimiento del libro.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, product_id, movement_type, quantity, unit_price, reference_number, notes, movement_date, source_location, destination_location, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.MovementType, movement.Quantity,
		movement.UnitPrice, movement.ReferenceNumber, movement.Notes, movement.MovementDate,
		movement.SourceLocation, movement.DestinationLocation, movement.CreatedBy, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	return m, nil
}

// Update actualiza un movimiento existente.
func (r *StockMovementRepo) Update(movement *entity.StockMovement) error {
	query := `
		UPDATE stock_movements SET product_id = $2, movement_type = $3, quantity = $4, unit_price = $5,
			reference_number = $6, notes = $7, movement_date = $8, source_location = $9, destination_location = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.MovementType, movement.Quantity,
		movement.UnitPrice, movement.ReferenceNumber, movement.Notes, movement.MovementDate,
		movement.SourceLocation, movement.DestinationLocation,
	)
	if err != nil {
		return fmt.Errorf("update stock movement: %w", err)
	}
	return nil
}

// Delete elimina un movimiento por ID.
func (r *StockMovementRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock movement: %w", err)
	}
	return nil
}

// appendDateRange agrega la cláusula de rango de fechas a partir de from/to.
// query debe traer ya un WHERE (o "WHERE true") y los args iniciales.
func appendDateRange(query string, args []any, from, to *time.Time) (string, []any) {
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND m.movement_date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND m.movement_date <= $%d", len(args))
	}
	return query, args
}

func (r *StockMovementRepo) queryMovements(query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ListByProduct movimientos de un producto, más recientes primero.
func (r *StockMovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements m WHERE m.product_id = $1`
	args := []any{productID}
	query, args = appendDateRange(query, args, from, to)
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY m.movement_date DESC, m.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	return r.queryMovements(query, args...)
}

// ListByDateRange movimientos en un rango de fechas, más recientes primero.
func (r *StockMovementRepo) ListByDateRange(from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements m WHERE true`
	var args []any
	query, args = appendDateRange(query, args, from, to)
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY m.movement_date DESC, m.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	return r.queryMovements(query, args...)
}

// ListByType movimientos de un tipo canónico, más recientes primero.
func (r *StockMovementRepo) ListByType(movementType string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements m WHERE m.movement_type = $1`
	args := []any{movementType}
	query, args = appendDateRange(query, args, from, to)
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY m.movement_date DESC, m.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	return r.queryMovements(query, args...)
}

// Search búsqueda libre sobre nombre/SKU del producto, referencia, notas y tipo (ILIKE).
func (r *StockMovementRepo) Search(term string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT m.id, m.product_id, m.movement_type, m.quantity, m.unit_price, m.reference_number, m.notes,
			m.movement_date, m.source_location, m.destination_location, m.created_by, m.created_at
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id
		WHERE (p.name ILIKE $1 OR p.sku ILIKE $1 OR m.reference_number ILIKE $1 OR m.notes ILIKE $1 OR m.movement_type ILIKE $1)`
	args := []any{"%" + term + "%"}
	query, args = appendDateRange(query, args, from, to)
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY m.movement_date DESC, m.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	return r.queryMovements(query, args...)
}
