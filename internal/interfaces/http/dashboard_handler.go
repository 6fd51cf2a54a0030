package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sioms-api/internal/application/dto"
	"github.com/jhoicas/sioms-api/internal/application/usecase"
)

// DashboardHandler maneja el panel principal (protegido).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get godoc
// @Summary      Datos del panel principal
// @Description  Totales, ventas del mes, gráfico de los últimos seis meses,
//               top de productos vendidos y alertas activas.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	data, err := h.uc.Get(c.Context())
	if err != nil {
		return domainError(c, err)
	}

	resp := dto.DashboardResponse{
		TotalProducts:    data.TotalProducts,
		TotalSuppliers:   data.TotalSuppliers,
		TotalCustomers:   data.TotalCustomers,
		UnresolvedAlerts: data.UnresolvedAlerts,
		MonthlySales:     data.MonthlySales,
		ActiveAlerts:     dto.ToAlertResponses(data.ActiveAlerts),
	}
	for _, p := range data.SalesChart {
		resp.SalesChart = append(resp.SalesChart, dto.SalesChartPoint{Label: p.Label, Total: p.Total})
	}
	for _, t := range data.TopProducts {
		resp.TopProducts = append(resp.TopProducts, dto.TopProductResponse{
			ProductID:   t.ProductID,
			ProductName: t.ProductName,
			SKU:         t.SKU,
			UnitsSold:   t.UnitsSold,
		})
	}
	return c.JSON(resp)
}
