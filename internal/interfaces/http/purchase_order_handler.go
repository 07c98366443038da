package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/application/purchasing"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
)

// PurchaseOrderHandler maneja las órdenes de compra y su recepción.
type PurchaseOrderHandler struct {
	uc *purchasing.PurchaseOrderUseCase
}

// NewPurchaseOrderHandler construye el handler.
func NewPurchaseOrderHandler(uc *purchasing.PurchaseOrderUseCase) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden de compra en borrador
// @Tags         purchase-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseOrderRequest  true  "proveedor y líneas"
// @Success      201   {object}  dto.PurchaseOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders [post]
func (h *PurchaseOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseOrderRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	lines := make([]purchasing.OrderLineInput, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, purchasing.OrderLineInput{
			ProductID:       l.ProductID,
			OrderedQuantity: l.OrderedQuantity,
			UnitCost:        l.UnitCost,
		})
	}
	order, err := h.uc.Create(c.UserContext(), GetUserID(c), purchasing.CreateOrderInput{
		SupplierID: in.SupplierID,
		Notes:      in.Notes,
		Lines:      lines,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toPurchaseOrderResponse(order))
}

// Send godoc
// @Summary      Enviar la orden al proveedor (draft → sent)
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.PurchaseOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/send [post]
func (h *PurchaseOrderHandler) Send(c *fiber.Ctx) error {
	order, err := h.uc.Send(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toPurchaseOrderResponse(order))
}

// Confirm godoc
// @Summary      Confirmar la orden (sent → confirmed)
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.PurchaseOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/confirm [post]
func (h *PurchaseOrderHandler) Confirm(c *fiber.Ctx) error {
	order, err := h.uc.Confirm(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toPurchaseOrderResponse(order))
}

// Receive godoc
// @Summary      Registrar una recepción de mercadería
// @Description  Aplica deltas por línea; cada línea recibida genera un
// movimiento de entrada en el ledger. Una falla a mitad conserva las líneas ya
// aplicadas y deja la orden en partially_received.
// @Tags         purchase-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la orden"
// @Param        body  body  dto.ReceiveOrderRequest  true  "líneas recibidas"
// @Success      200   {object}  dto.PurchaseOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/receive [post]
func (h *PurchaseOrderHandler) Receive(c *fiber.Ctx) error {
	var in dto.ReceiveOrderRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	lines := make([]purchasing.ReceiveLineInput, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, purchasing.ReceiveLineInput{LineID: l.LineID, Quantity: l.Quantity})
	}
	order, err := h.uc.Receive(c.UserContext(), GetUserID(c), c.Params("id"), lines)
	if err != nil {
		// La orden puede traer líneas ya aplicadas aunque la llamada falle.
		if order != nil {
			status, body := errorStatus(err)
			return c.Status(status).JSON(fiber.Map{
				"error": body,
				"order": toPurchaseOrderResponse(order),
			})
		}
		return respondError(c, err)
	}
	return c.JSON(toPurchaseOrderResponse(order))
}

// Cancel godoc
// @Summary      Cancelar una orden no terminal
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.PurchaseOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/cancel [post]
func (h *PurchaseOrderHandler) Cancel(c *fiber.Ctx) error {
	order, err := h.uc.Cancel(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toPurchaseOrderResponse(order))
}

// Delete godoc
// @Summary      Eliminar una orden en borrador sin recepciones
// @Tags         purchase-orders
// @Security     Bearer
// @Param        id  path  string  true  "ID de la orden"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id} [delete]
func (h *PurchaseOrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Get godoc
// @Summary      Obtener una orden con sus líneas
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.PurchaseOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id} [get]
func (h *PurchaseOrderHandler) Get(c *fiber.Ctx) error {
	order, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toPurchaseOrderResponse(order))
}

// List godoc
// @Summary      Listar órdenes, opcionalmente filtradas por estado
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "draft|sent|confirmed|partially_received|received|cancelled"
// @Param        limit   query  int     false  "Tamaño de página"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.PurchaseOrderListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders [get]
func (h *PurchaseOrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, err)
	}
	page.DefaultPage()

	status := entity.OrderStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		return respondError(c, domain.ErrInvalidInput)
	}
	orders, err := h.uc.ListByStatus(c.UserContext(), status, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.PurchaseOrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, toPurchaseOrderResponse(o))
	}
	return c.JSON(dto.PurchaseOrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

func toPurchaseOrderResponse(o *entity.PurchaseOrder) dto.PurchaseOrderResponse {
	lines := make([]dto.OrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, dto.OrderLineResponse{
			ID:               l.ID,
			ProductID:        l.ProductID,
			OrderedQuantity:  l.OrderedQuantity,
			ReceivedQuantity: l.ReceivedQuantity,
			UnitCost:         l.UnitCost,
		})
	}
	return dto.PurchaseOrderResponse{
		ID:          o.ID,
		PONumber:    o.PONumber,
		SupplierID:  o.SupplierID,
		Status:      string(o.Status),
		TotalAmount: o.TotalAmount,
		Notes:       o.Notes,
		CreatedBy:   o.CreatedBy,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		Lines:       lines,
	}
}
