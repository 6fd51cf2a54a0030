package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sioms-api/internal/application/dto"
	"github.com/jhoicas/sioms-api/internal/application/orders"
)

// SalesOrderHandler maneja las peticiones HTTP de órdenes de venta (protegido).
type SalesOrderHandler struct {
	uc *orders.SalesOrderUseCase
}

// NewSalesOrderHandler construye el handler.
func NewSalesOrderHandler(uc *orders.SalesOrderUseCase) *SalesOrderHandler {
	return &SalesOrderHandler{uc: uc}
}

func salesInputFromRequest(in dto.SalesOrderRequest, userID string) orders.SalesOrderInput {
	return orders.SalesOrderInput{
		ProductID:     in.ProductID,
		CustomerID:    in.CustomerID,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		CustomerEmail: in.CustomerEmail,
		Quantity:      in.Quantity,
		UnitPrice:     in.UnitPrice,
		OrderDate:     in.OrderDate,
		Notes:         in.Notes,
		CreatedBy:     userID,
	}
}

// Create godoc
// @Summary      Crear orden de venta
// @Tags         sales-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SalesOrderRequest  true  "product_id, customer_name, quantity, unit_price"
// @Success      201   {object}  dto.SalesOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales-orders [post]
func (h *SalesOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.SalesOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	so, err := h.uc.Create(c.Context(), salesInputFromRequest(in, GetUserID(c)))
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToSalesOrderResponse(so))
}

// GetByID godoc
// @Summary      Obtener orden de venta
// @Tags         sales-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.SalesOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales-orders/{id} [get]
func (h *SalesOrderHandler) GetByID(c *fiber.Ctx) error {
	so, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.ToSalesOrderResponse(so))
}

// List godoc
// @Summary      Listar órdenes de venta
// @Tags         sales-orders
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"
// @Param        offset  query  int  false  "Offset"
// @Success      200  {array}  dto.SalesOrderResponse
// @Router       /api/sales-orders [get]
func (h *SalesOrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	list, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	out := make([]dto.SalesOrderResponse, 0, len(list))
	for _, so := range list {
		out = append(out, dto.ToSalesOrderResponse(so))
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar orden de venta pendiente
// @Tags         sales-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la orden"
// @Param        body  body  dto.SalesOrderRequest  true  "campos nuevos"
// @Success      200   {object}  dto.SalesOrderResponse
// @Failure      409   {object}  dto.ErrorResponse  "la orden ya fue completada"
// @Router       /api/sales-orders/{id} [put]
func (h *SalesOrderHandler) Update(c *fiber.Ctx) error {
	var in dto.SalesOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	so, err := h.uc.Update(c.Context(), c.Params("id"), salesInputFromRequest(in, GetUserID(c)))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.ToSalesOrderResponse(so))
}

// Delete godoc
// @Summary      Eliminar orden de venta pendiente
// @Tags         sales-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  map[string]string
// @Failure      409  {object}  dto.ErrorResponse  "la orden ya fue completada"
// @Router       /api/sales-orders/{id} [delete]
func (h *SalesOrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "orden de venta eliminada"})
}

// Complete godoc
// @Summary      Completar orden de venta
// @Description  Verifica stock disponible, resta la cantidad del producto y
//               registra el movimiento OUT con referencia a la orden. Si no hay
//               stock suficiente la orden queda intacta.
// @Tags         sales-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.SalesOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "stock insuficiente o la orden no está pendiente"
// @Router       /api/sales-orders/{id}/complete [post]
func (h *SalesOrderHandler) Complete(c *fiber.Ctx) error {
	so, err := h.uc.Complete(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.ToSalesOrderResponse(so))
}

// Cancel godoc
// @Summary      Cancelar orden de venta pendiente
// @Description  Marca la orden como Cancelled. No afecta stock.
// @Tags         sales-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.SalesOrderResponse
// @Failure      409  {object}  dto.ErrorResponse  "la orden no está pendiente"
// @Router       /api/sales-orders/{id}/cancel [post]
func (h *SalesOrderHandler) Cancel(c *fiber.Ctx) error {
	so, err := h.uc.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.ToSalesOrderResponse(so))
}
