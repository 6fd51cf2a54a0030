package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sioms-api/internal/domain/entity"
	"github.com/jhoicas/sioms-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de agregación de solo lectura para el panel principal.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador del panel.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// Counts totales de productos activos, proveedores, clientes y alertas sin resolver.
func (r *DashboardRepo) Counts(ctx context.Context) (*repository.DashboardCounts, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM products WHERE is_active)                  AS total_products,
	    (SELECT COUNT(*) FROM suppliers WHERE is_active)                 AS total_suppliers,
	    (SELECT COUNT(*) FROM customers)                                 AS total_customers,
	    (SELECT COUNT(*) FROM low_stock_alerts WHERE NOT is_resolved)    AS unresolved_alerts`
	var c repository.DashboardCounts
	err := r.pool.QueryRow(ctx, query).Scan(
		&c.TotalProducts, &c.TotalSuppliers, &c.TotalCustomers, &c.UnresolvedAlerts,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}
	return &c, nil
}

// MonthlySales total vendido en órdenes Completed del mes indicado.
func (r *DashboardRepo) MonthlySales(ctx context.Context, year int, month time.Month) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(total_amount), 0)
	FROM sales_orders
	WHERE status = $1
	  AND EXTRACT(YEAR FROM order_date) = $2
	  AND EXTRACT(MONTH FROM order_date) = $3`
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, query, entity.SalesOrderStatusCompleted, year, int(month)).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("monthly sales: %w", err)
	}
	return total, nil
}

// TopSellingProducts productos con más unidades vendidas en órdenes Completed.
func (r *DashboardRepo) TopSellingProducts(ctx context.Context, limit int) ([]repository.TopProductResult, error) {
	const query = `
	SELECT p.id, p.name, p.sku, SUM(so.quantity)::INT AS units_sold
	FROM sales_orders so
	JOIN products p ON p.id = so.product_id
	WHERE so.status = $1
	GROUP BY p.id, p.name, p.sku
	ORDER BY units_sold DESC
	LIMIT $2`
	rows, err := r.pool.Query(ctx, query, entity.SalesOrderStatusCompleted, limit)
	if err != nil {
		return nil, fmt.Errorf("top selling products: %w", err)
	}
	defer rows.Close()
	var list []repository.TopProductResult
	for rows.Next() {
		var t repository.TopProductResult
		if err := rows.Scan(&t.ProductID, &t.ProductName, &t.SKU, &t.UnitsSold); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
