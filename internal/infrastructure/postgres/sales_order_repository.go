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

var _ repository.SalesOrderRepository = (*SalesOrderRepo)(nil)

const salesOrderColumns = `id, product_id, customer_id, customer_name, customer_phone, customer_email,
	quantity, unit_price, total_amount, status, order_date, delivery_date, notes, created_by, created_at, updated_at`

// SalesOrderRepo implementación del puerto SalesOrderRepository sobre PostgreSQL (usable con pool o tx).
type SalesOrderRepo struct {
	q Querier
}

// NewSalesOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesOrderRepository(q Querier) *SalesOrderRepo {
	return &SalesOrderRepo{q: q}
}

func scanSalesOrder(row pgx.Row) (*entity.SalesOrder, error) {
	var so entity.SalesOrder
	err := row.Scan(
		&so.ID, &so.ProductID, &so.CustomerID, &so.CustomerName, &so.CustomerPhone, &so.CustomerEmail,
		&so.Quantity, &so.UnitPrice, &so.TotalAmount, &so.Status, &so.OrderDate, &so.DeliveryDate,
		&so.Notes, &so.CreatedBy, &so.CreatedAt, &so.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &so, nil
}

// Create persiste una nueva orden de venta.
func (r *SalesOrderRepo) Create(order *entity.SalesOrder) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	query := `
		INSERT INTO sales_orders (id, product_id, customer_id, customer_name, customer_phone, customer_email, quantity, unit_price, total_amount, status, order_date, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.ProductID, order.CustomerID, order.CustomerName, order.CustomerPhone,
		order.CustomerEmail, order.Quantity, order.UnitPrice, order.TotalAmount, order.Status,
		order.OrderDate, order.Notes, order.CreatedBy, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sales order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden de venta por ID.
func (r *SalesOrderRepo) GetByID(id string) (*entity.SalesOrder, error) {
	query := `SELECT ` + salesOrderColumns + ` FROM sales_orders WHERE id = $1`
	so, err := scanSalesOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales order: %w", err)
	}
	return so, nil
}

// GetForUpdate obtiene la orden y bloquea su fila (SELECT FOR UPDATE).
func (r *SalesOrderRepo) GetForUpdate(id string) (*entity.SalesOrder, error) {
	query := `SELECT ` + salesOrderColumns + ` FROM sales_orders WHERE id = $1 FOR UPDATE`
	so, err := scanSalesOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales order for update: %w", err)
	}
	return so, nil
}

// Update actualiza una orden de venta existente.
func (r *SalesOrderRepo) Update(order *entity.SalesOrder) error {
	query := `
		UPDATE sales_orders SET product_id = $2, customer_id = $3, customer_name = $4, customer_phone = $5,
			customer_email = $6, quantity = $7, unit_price = $8, total_amount = $9, status = $10,
			order_date = $11, delivery_date = $12, notes = $13, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.ProductID, order.CustomerID, order.CustomerName, order.CustomerPhone,
		order.CustomerEmail, order.Quantity, order.UnitPrice, order.TotalAmount, order.Status,
		order.OrderDate, order.DeliveryDate, order.Notes,
	)
	if err != nil {
		return fmt.Errorf("update sales order: %w", err)
	}
	return nil
}

// Delete elimina una orden de venta por ID.
func (r *SalesOrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sales_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sales order: %w", err)
	}
	return nil
}

// List lista órdenes de venta con paginación, más recientes primero.
func (r *SalesOrderRepo) List(limit, offset int) ([]*entity.SalesOrder, error) {
	query := `SELECT ` + salesOrderColumns + ` FROM sales_orders ORDER BY order_date DESC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesOrder
	for rows.Next() {
		so, err := scanSalesOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sales order: %w", err)
		}
		list = append(list, so)
	}
	return list, rows.Err()
}
