package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pos-api/internal/application/dto"
	"github.com/jhoicas/Pos-api/internal/application/inventory"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
)

// InventoryHandler expone el motor de stock: total, saldos por lote FEFO,
// historial de movimientos y registro de ajustes/traslados.
type InventoryHandler struct {
	stockUC    *inventory.StockUseCase
	movementUC *inventory.RegisterMovementUseCase
}

// NewInventoryHandler crea el handler de inventario.
func NewInventoryHandler(stockUC *inventory.StockUseCase, movementUC *inventory.RegisterMovementUseCase) *InventoryHandler {
	return &InventoryHandler{stockUC: stockUC, movementUC: movementUC}
}

// GetStock devuelve el stock total del producto (suma del libro; 0 sin historial).
// @Summary Stock total de un producto
// @Tags inventory
// @Produce json
// @Param productID path string true "ID del producto"
// @Success 200 {object} dto.ProductStockResponse
// @Router /api/inventory/stock/{productID} [get]
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	productID := c.Params("productID")
	stock, err := h.stockUC.GetProductStock(c.Context(), productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ProductStockResponse{ProductID: productID, Stock: stock})
}

// GetLots devuelve los lotes con saldo positivo en orden FEFO.
// @Summary Lotes con saldo de un producto (orden FEFO)
// @Tags inventory
// @Produce json
// @Param productID path string true "ID del producto"
// @Success 200 {array} dto.LotBalanceDTO
// @Router /api/inventory/lots/{productID} [get]
func (h *InventoryHandler) GetLots(c *fiber.Ctx) error {
	productID := c.Params("productID")
	lots, err := h.stockUC.GetLotsWithBalance(c.Context(), productID)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.LotBalanceDTO, 0, len(lots))
	for _, lot := range lots {
		out = append(out, dto.LotBalanceDTO{
			LotID:     lot.LotID,
			LotCode:   lot.LotCode,
			ProductID: lot.ProductID,
			ExpiresOn: lot.ExpiresOn,
			Balance:   lot.Balance,
		})
	}
	return c.JSON(out)
}

// ListMovements lista el historial del producto, con filtros from/to (RFC3339)
// y paginación.
// @Summary Historial de movimientos de un producto
// @Tags inventory
// @Produce json
// @Param productID path string true "ID del producto"
// @Param from query string false "Desde (RFC3339)"
// @Param to query string false "Hasta (RFC3339)"
// @Param limit query int false "Límite"
// @Param offset query int false "Offset"
// @Success 200 {array} dto.MovementDTO
// @Router /api/inventory/movements/{productID} [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	productID := c.Params("productID")

	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos",
		})
	}
	page.DefaultPage()

	from, err := parseTimeQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_QUERY", Message: "fecha 'from' inválida (RFC3339)",
		})
	}
	to, err := parseTimeQuery(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_QUERY", Message: "fecha 'to' inválida (RFC3339)",
		})
	}

	movements, err := h.stockUC.ListMovements(c.Context(), productID, from, to, page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toMovementDTOs(movements))
}

// ListByReference lista los movimientos de una referencia (tx:, po:, adj:).
// @Summary Movimientos por referencia
// @Tags inventory
// @Produce json
// @Param reference query string true "Referencia"
// @Success 200 {array} dto.MovementDTO
// @Router /api/inventory/movements [get]
func (h *InventoryHandler) ListByReference(c *fiber.Ctx) error {
	reference := c.Query("reference")
	if reference == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_QUERY", Message: "el parámetro 'reference' es requerido",
		})
	}
	movements, err := h.stockUC.ListMovementsByReference(c.Context(), reference)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toMovementDTOs(movements))
}

// RegisterMovement registra un ajuste manual o traslado entre ubicaciones.
// @Summary Registrar ajuste o traslado
// @Tags inventory
// @Accept json
// @Produce json
// @Param body body dto.RegisterMovementRequest true "Movimiento"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var req dto.RegisterMovementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}
	input := inventory.MovementInput{
		UserID:         GetUserID(c),
		ProductID:      req.ProductID,
		LotID:          req.LotID,
		LocationID:     req.LocationID,
		FromLocationID: req.FromLocationID,
		ToLocationID:   req.ToLocationID,
		Type:           req.Type,
		Quantity:       req.Quantity,
		Note:           req.Note,
	}
	if err := h.movementUC.RegisterMovement(c.Context(), input); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseTimeQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func toMovementDTOs(movements []*entity.StockMovement) []dto.MovementDTO {
	out := make([]dto.MovementDTO, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.MovementDTO{
			ID:         m.ID,
			ProductID:  m.ProductID,
			LotID:      m.LotID,
			LocationID: m.LocationID,
			Type:       m.Type,
			Quantity:   m.Quantity,
			Reference:  m.Reference,
			CreatedAt:  m.CreatedAt,
		})
	}
	return out
}
