package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pos-api/internal/application/dto"
	"github.com/jhoicas/Pos-api/internal/application/sales"
)

// SalesHandler maneja el checkout del kiosco.
type SalesHandler struct {
	checkoutUC *sales.CheckoutUseCase
}

// NewSalesHandler crea el handler de ventas.
func NewSalesHandler(checkoutUC *sales.CheckoutUseCase) *SalesHandler {
	return &SalesHandler{checkoutUC: checkoutUC}
}

// Create procesa una venta: asignación FEFO + débitos del libro + venta, en
// una transacción. 409 con detalle si falta stock; 409 genérico si hubo
// discrepancia y conviene reintentar.
// @Summary Crear venta
// @Tags sales
// @Accept json
// @Produce json
// @Param body body dto.CreateSaleRequest true "Venta"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/sales [post]
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}
	sale, err := h.checkoutUC.CreateSale(c.Context(), GetUserID(c), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}
