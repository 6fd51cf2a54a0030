package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardCounts totales para el panel principal.
type DashboardCounts struct {
	TotalProducts    int
	TotalSuppliers   int
	TotalCustomers   int
	UnresolvedAlerts int
}

// TopProductResult producto con su cantidad total vendida (órdenes completadas).
type TopProductResult struct {
	ProductID   string
	ProductName string
	SKU         string
	UnitsSold   int
}

// DashboardRepository consultas de agregación para el panel (solo lectura).
type DashboardRepository interface {
	Counts(ctx context.Context) (*DashboardCounts, error)
	// MonthlySales total vendido en órdenes Completed del mes indicado.
	MonthlySales(ctx context.Context, year int, month time.Month) (decimal.Decimal, error)
	TopSellingProducts(ctx context.Context, limit int) ([]TopProductResult, error)
}
