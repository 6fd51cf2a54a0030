package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sioms-api/internal/domain/entity"
	"github.com/jhoicas/sioms-api/internal/domain/repository"
)

// DashboardData datos agregados para el panel principal.
type DashboardData struct {
	TotalProducts    int
	TotalSuppliers   int
	TotalCustomers   int
	UnresolvedAlerts int
	MonthlySales     decimal.Decimal
	SalesChart       []MonthlySalesPoint
	TopProducts      []repository.TopProductResult
	ActiveAlerts     []*entity.LowStockAlert
}

// MonthlySalesPoint punto del gráfico de ventas mensuales.
type MonthlySalesPoint struct {
	Label string // "Ene 2026"
	Total decimal.Decimal
}

// DashboardUseCase agrega totales, ventas del mes, gráfico de los últimos seis
// meses, top de productos vendidos y alertas activas. Solo lectura.
type DashboardUseCase struct {
	dashRepo  repository.DashboardRepository
	alertRepo repository.LowStockAlertRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashRepo repository.DashboardRepository, alertRepo repository.LowStockAlertRepository) *DashboardUseCase {
	return &DashboardUseCase{dashRepo: dashRepo, alertRepo: alertRepo}
}

var monthLabels = [...]string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}

// Get arma los datos del panel.
func (uc *DashboardUseCase) Get(ctx context.Context) (*DashboardData, error) {
	counts, err := uc.dashRepo.Counts(ctx)
	if err != nil {
		return nil, err
	}
	alerts, err := uc.alertRepo.ListUnresolved()
	if err != nil {
		return nil, err
	}
	top, err := uc.dashRepo.TopSellingProducts(ctx, 5)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	data := &DashboardData{
		TotalProducts:    counts.TotalProducts,
		TotalSuppliers:   counts.TotalSuppliers,
		TotalCustomers:   counts.TotalCustomers,
		UnresolvedAlerts: counts.UnresolvedAlerts,
		TopProducts:      top,
		ActiveAlerts:     alerts,
	}

	// Últimos seis meses, el actual al final
	for i := 5; i >= 0; i-- {
		month := now.AddDate(0, -i, 0)
		total, err := uc.dashRepo.MonthlySales(ctx, month.Year(), month.Month())
		if err != nil {
			return nil, err
		}
		data.SalesChart = append(data.SalesChart, MonthlySalesPoint{
			Label: monthLabels[month.Month()-1] + " " + month.Format("2006"),
			Total: total,
		})
	}
	data.MonthlySales = data.SalesChart[len(data.SalesChart)-1].Total
	return data, nil
}
