package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pos-api/internal/application/dto"
	"github.com/jhoicas/Pos-api/internal/application/usecase"
)

// ProductHandler maneja el CRUD de productos.
type ProductHandler struct {
	productUC *usecase.ProductUseCase
}

// NewProductHandler crea el handler de productos.
func NewProductHandler(productUC *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{productUC: productUC}
}

// Create crea un producto.
// @Summary Crear producto
// @Tags products
// @Accept json
// @Produce json
// @Param body body dto.CreateProductRequest true "Producto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}
	product, err := h.productUC.Create(req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// GetByID obtiene un producto por ID.
// @Summary Detalle de producto
// @Tags products
// @Produce json
// @Param id path string true "ID del producto"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.productUC.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(product)
}

// Update actualiza un producto.
// @Summary Actualizar producto
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "ID del producto"
// @Param body body dto.UpdateProductRequest true "Datos"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}
	product, err := h.productUC.Update(c.Params("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(product)
}

// List lista productos paginados.
// @Summary Listar productos
// @Tags products
// @Produce json
// @Param limit query int false "Límite"
// @Param offset query int false "Offset"
// @Success 200 {array} dto.ProductResponse
// @Router /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos",
		})
	}
	products, err := h.productUC.List(page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(products)
}

// Delete elimina un producto.
// @Summary Eliminar producto
// @Tags products
// @Param id path string true "ID del producto"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.productUC.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
