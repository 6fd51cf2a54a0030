package dto

import "github.com/shopspring/decimal"

// DashboardResponse datos agregados del panel principal.
type DashboardResponse struct {
	TotalProducts    int                  `json:"total_products"`
	TotalSuppliers   int                  `json:"total_suppliers"`
	TotalCustomers   int                  `json:"total_customers"`
	UnresolvedAlerts int                  `json:"unresolved_alerts"`
	MonthlySales     decimal.Decimal      `json:"monthly_sales"`
	SalesChart       []SalesChartPoint    `json:"sales_chart"`
	TopProducts      []TopProductResponse `json:"top_products"`
	ActiveAlerts     []AlertResponse      `json:"active_alerts"`
}

// SalesChartPoint punto del gráfico de ventas mensuales.
type SalesChartPoint struct {
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
}

// TopProductResponse producto con unidades vendidas.
type TopProductResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	SKU         string `json:"sku"`
	UnitsSold   int    `json:"units_sold"`
}
