package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/application/ledger"
	"github.com/jhoicas/stocktrack-api/internal/application/usecase"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
)

// InventoryHandler maneja las peticiones HTTP del ledger de stock (protegido).
type InventoryHandler struct {
	uc *ledger.LedgerUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *ledger.LedgerUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RecordMovement godoc
// @Summary      Registrar movimiento de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "product_id, type, quantity (con signo), reason, notes"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RecordMovement(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecordMovementRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	mov, err := h.uc.RecordMovement(c.Context(), ledger.MovementInput{
		ProductID:      in.ProductID,
		UserID:         userID,
		Type:           in.Type,
		QuantityChange: in.Quantity,
		Reason:         in.Reason,
		Notes:          in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// History godoc
// @Summary      Historial de movimientos de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del producto"
// @Param        limit  query  int     false  "Máximo de movimientos (default 50)"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/{id} [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	movements, err := h.uc.History(c.Context(), c.Params("id"), limit)
	if err != nil {
		return respondError(c, err)
	}
	out := dto.MovementListResponse{Items: make([]dto.MovementResponse, 0, len(movements))}
	for _, m := range movements {
		out.Items = append(out.Items, *toMovementResponse(m))
	}
	return c.JSON(out)
}

// ListLowStock godoc
// @Summary      Productos en o por debajo del umbral de stock bajo
// @Description  Sin threshold manda el min_stock_level de cada producto;
//
//	con threshold se usa ese valor fijo (vistas antiguas usaban 5).
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        threshold  query  int  false  "Umbral fijo opcional"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) ListLowStock(c *fiber.Ctx) error {
	var threshold *int64
	if raw := c.Query("threshold"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "threshold inválido"})
		}
		threshold = &n
	}
	products, err := h.uc.ListLowStock(c.Context(), threshold)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *usecase.ToProductResponse(p))
	}
	return c.JSON(out)
}

// Reconcile godoc
// @Summary      Verificar invariante producto/ledger
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ReconcileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/reconcile/{id} [get]
func (h *InventoryHandler) Reconcile(c *fiber.Ctx) error {
	productID := c.Params("id")
	cached, sum, ok, err := h.uc.Reconcile(c.Context(), productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ReconcileResponse{
		ProductID:  productID,
		Cached:     cached,
		LedgerSum:  sum,
		Consistent: ok,
	})
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:               m.ID,
		ProductID:        m.ProductID,
		UserID:           m.UserID,
		Type:             m.Type,
		QuantityChange:   m.QuantityChange,
		PreviousQuantity: m.PreviousQuantity,
		NewQuantity:      m.NewQuantity,
		Reason:           m.Reason,
		Notes:            m.Notes,
		CreatedAt:        m.CreatedAt,
	}
}
