package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pos-api/internal/application/dto"
	"github.com/jhoicas/Pos-api/internal/application/purchasing"
)

// PurchasingHandler maneja órdenes de compra y su recepción.
type PurchasingHandler struct {
	receiveUC *purchasing.ReceiveUseCase
}

// NewPurchasingHandler crea el handler de compras.
func NewPurchasingHandler(receiveUC *purchasing.ReceiveUseCase) *PurchasingHandler {
	return &PurchasingHandler{receiveUC: receiveUC}
}

// Create crea una orden de compra en estado open.
// @Summary Crear orden de compra
// @Tags purchasing
// @Accept json
// @Produce json
// @Param body body dto.CreatePurchaseOrderRequest true "Orden"
// @Success 201 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/purchase-orders [post]
func (h *PurchasingHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePurchaseOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}
	order, err := h.receiveUC.CreateOrder(c.Context(), GetUserID(c), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// Receive recibe una orden: crea lotes y acredita el libro. Idempotente por
// estado; una orden ya recibida responde 409.
// @Summary Recibir orden de compra
// @Tags purchasing
// @Produce json
// @Param id path string true "ID de la orden"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/purchase-orders/{id}/receive [post]
func (h *PurchasingHandler) Receive(c *fiber.Ctx) error {
	if err := h.receiveUC.ReceiveOrder(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
