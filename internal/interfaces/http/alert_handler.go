package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sioms-api/internal/application/dto"
	"github.com/jhoicas/sioms-api/internal/application/usecase"
)

// AlertHandler maneja las peticiones HTTP de alertas de stock bajo (protegido).
type AlertHandler struct {
	uc *usecase.AlertUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *usecase.AlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// ListUnresolved godoc
// @Summary      Listar alertas activas
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AlertResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) ListUnresolved(c *fiber.Ctx) error {
	list, err := h.uc.ListUnresolved(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.ToAlertResponses(list))
}

// ListHistory godoc
// @Summary      Historial de alertas
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"
// @Param        offset  query  int  false  "Offset"
// @Success      200  {array}  dto.AlertResponse
// @Router       /api/alerts/history [get]
func (h *AlertHandler) ListHistory(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	list, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.ToAlertResponses(list))
}

// Resolve godoc
// @Summary      Resolver alerta
// @Description  Marca la alerta como resuelta. La resolución siempre es explícita;
//               la reposición de stock nunca resuelve alertas por sí sola.
// @Tags         alerts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true   "ID de la alerta"
// @Param        body  body  dto.ResolveAlertRequest  false  "notas de resolución"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/alerts/{id}/resolve [post]
func (h *AlertHandler) Resolve(c *fiber.Ctx) error {
	var in dto.ResolveAlertRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	if err := h.uc.Resolve(c.Context(), c.Params("id"), in.Notes); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "alerta resuelta"})
}
