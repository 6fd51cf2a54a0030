package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sioms-api/internal/application/dto"
	"github.com/jhoicas/sioms-api/internal/application/inventory"
	"github.com/jhoicas/sioms-api/internal/domain/entity"
)

// MovementHandler maneja las peticiones HTTP del libro de movimientos (protegido).
type MovementHandler struct {
	reconcile *inventory.ReconcileUseCase
	query     *inventory.QueryUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(reconcile *inventory.ReconcileUseCase, query *inventory.QueryUseCase) *MovementHandler {
	return &MovementHandler{reconcile: reconcile, query: query}
}

// parseTimeQuery interpreta un parámetro de fecha en RFC3339 o "2006-01-02".
// Vacío devuelve nil.
func parseTimeQuery(raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, true
	}
	return nil, false
}

func movementInputFromRequest(in dto.MovementRequest, userID string) inventory.MovementInput {
	return inventory.MovementInput{
		ProductID:           in.ProductID,
		MovementType:        in.Type,
		Quantity:            in.Quantity,
		UnitPrice:           in.UnitPrice,
		ReferenceNumber:     in.ReferenceNumber,
		Notes:               in.Notes,
		MovementDate:        in.MovementDate,
		SourceLocation:      in.SourceLocation,
		DestinationLocation: in.DestinationLocation,
		CreatedBy:           userID,
	}
}

// Create godoc
// @Summary      Registrar movimiento de stock
// @Description  Aplica el efecto del movimiento al stock del producto y registra
//               la entrada del libro en una sola transacción.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "product_id, type, quantity y campos opcionales"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	m, err := h.reconcile.CreateMovement(c.Context(), movementInputFromRequest(in, GetUserID(c)))
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMovementResponse(m))
}

// Update godoc
// @Summary      Editar movimiento de stock
// @Description  Revierte el efecto del movimiento original y aplica el nuevo,
//               ajustando el stock en una sola transacción.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del movimiento"
// @Param        body  body  dto.MovementRequest  true  "campos nuevos del movimiento"
// @Success      200   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/{id} [put]
func (h *MovementHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	m, err := h.reconcile.UpdateMovement(c.Context(), id, movementInputFromRequest(in, GetUserID(c)))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.ToMovementResponse(m))
}

// Delete godoc
// @Summary      Eliminar movimiento de stock
// @Description  Revierte el efecto del movimiento sobre el stock y borra la entrada del libro.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	if err := h.reconcile.DeleteMovement(c.Context(), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "movimiento eliminado"})
}

// List godoc
// @Summary      Listar movimientos
// @Description  Filtros combinables: product_id, type, q (búsqueda libre), from, to.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        type        query  string  false  "Filtrar por tipo canónico"
// @Param        q           query  string  false  "Búsqueda libre (producto, SKU, referencia, notas, tipo)"
// @Param        from        query  string  false  "Fecha inicial (RFC3339 o YYYY-MM-DD)"
// @Param        to          query  string  false  "Fecha final (RFC3339 o YYYY-MM-DD)"
// @Param        limit       query  int     false  "Límite (máx 500)"
// @Param        offset      query  int     false  "Offset"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()

	from, ok := parseTimeQuery(c.Query("from"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "from inválido"})
	}
	to, ok := parseTimeQuery(c.Query("to"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "to inválido"})
	}

	var movements []*entity.StockMovement
	var err error
	switch {
	case c.Query("q") != "":
		movements, err = h.query.Search(c.Context(), c.Query("q"), from, to, page.Limit, page.Offset)
	case c.Query("product_id") != "":
		movements, err = h.query.ListByProduct(c.Context(), c.Query("product_id"), from, to, page.Limit, page.Offset)
	case c.Query("type") != "":
		movements, err = h.query.ListByType(c.Context(), c.Query("type"), from, to, page.Limit, page.Offset)
	default:
		movements, err = h.query.ListByDateRange(c.Context(), from, to, page.Limit, page.Offset)
	}
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.ToMovementResponses(movements))
}

// Summary godoc
// @Summary      Resumen de movimientos por rango de fechas
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Fecha inicial (RFC3339 o YYYY-MM-DD)"
// @Param        to    query  string  false  "Fecha final (RFC3339 o YYYY-MM-DD)"
// @Success      200  {object}  dto.MovementSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/summary [get]
func (h *MovementHandler) Summary(c *fiber.Ctx) error {
	from, ok := parseTimeQuery(c.Query("from"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "from inválido"})
	}
	to, ok := parseTimeQuery(c.Query("to"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "to inválido"})
	}
	s, err := h.query.Summary(c.Context(), from, to)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.MovementSummaryResponse{
		TotalMovements:   s.TotalMovements,
		TotalInQuantity:  s.TotalInQuantity,
		TotalOutQuantity: s.TotalOutQuantity,
		TotalInValue:     s.TotalInValue,
		TotalOutValue:    s.TotalOutValue,
		MovementsByType:  s.MovementsByType,
	})
}
