package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sioms-api/internal/application/dto"
	"github.com/jhoicas/sioms-api/internal/application/inventory"
	"github.com/jhoicas/sioms-api/internal/application/reports"
)

// ReportHandler genera reportes descargables y corre la reconciliación manual (protegido).
type ReportHandler struct {
	movementReport *reports.MovementReportUseCase
	reconciliation *inventory.DailyReconciliationUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(movementReport *reports.MovementReportUseCase, reconciliation *inventory.DailyReconciliationUseCase) *ReportHandler {
	return &ReportHandler{movementReport: movementReport, reconciliation: reconciliation}
}

// MovementsPDF godoc
// @Summary      Reporte PDF de movimientos
// @Description  Genera el PDF con el resumen y el detalle de movimientos del rango.
//               Sin parámetros, cubre los últimos 30 días.
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        from  query  string  false  "Fecha inicial (RFC3339 o YYYY-MM-DD)"
// @Param        to    query  string  false  "Fecha final (RFC3339 o YYYY-MM-DD)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/movements [get]
func (h *ReportHandler) MovementsPDF(c *fiber.Ctx) error {
	fromPtr, ok := parseTimeQuery(c.Query("from"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "from inválido"})
	}
	toPtr, ok := parseTimeQuery(c.Query("to"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "to inválido"})
	}

	to := time.Now()
	if toPtr != nil {
		to = *toPtr
	}
	from := to.AddDate(0, 0, -30)
	if fromPtr != nil {
		from = *fromPtr
	}

	pdfBytes, err := h.movementReport.GeneratePDF(c.Context(), from, to)
	if err != nil {
		return domainError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos_`+from.Format("20060102")+`_`+to.Format("20060102")+`.pdf"`)
	return c.Send(pdfBytes)
}

// RunReconciliation godoc
// @Summary      Ejecutar reconciliación diaria bajo demanda
// @Description  Corre el barrido de stock bajo sobre todos los productos activos
//               y devuelve el resumen. Es el mismo proceso que corre programado.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  inventory.ReconciliationReport
// @Router       /api/reconciliation/run [post]
func (h *ReportHandler) RunReconciliation(c *fiber.Ctx) error {
	report, err := h.reconciliation.Run(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(report)
}
