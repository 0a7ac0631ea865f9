package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pos-api/internal/application/dto"
	"github.com/jhoicas/Pos-api/internal/application/usecase"
)

// CustomerHandler maneja el CRUD de clientes.
type CustomerHandler struct {
	customerUC *usecase.CustomerUseCase
}

// NewCustomerHandler crea el handler de clientes.
func NewCustomerHandler(customerUC *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{customerUC: customerUC}
}

// Create crea un cliente.
// @Summary Crear cliente
// @Tags customers
// @Accept json
// @Produce json
// @Param body body dto.PartnerRequest true "Cliente"
// @Success 201 {object} dto.PartnerResponse
// @Router /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var req dto.PartnerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}
	customer, err := h.customerUC.Create(req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// Update actualiza un cliente.
// @Summary Actualizar cliente
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "ID del cliente"
// @Param body body dto.PartnerRequest true "Datos"
// @Success 200 {object} dto.PartnerResponse
// @Router /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var req dto.PartnerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}
	customer, err := h.customerUC.Update(c.Params("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(customer)
}

// List lista clientes paginados.
// @Summary Listar clientes
// @Tags customers
// @Produce json
// @Success 200 {array} dto.PartnerResponse
// @Router /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos",
		})
	}
	customers, err := h.customerUC.List(page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(customers)
}

// Delete elimina un cliente.
// @Summary Eliminar cliente
// @Tags customers
// @Param id path string true "ID del cliente"
// @Success 204
// @Router /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.customerUC.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SupplierHandler maneja el CRUD de proveedores.
type SupplierHandler struct {
	supplierUC *usecase.SupplierUseCase
}

// NewSupplierHandler crea el handler de proveedores.
func NewSupplierHandler(supplierUC *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{supplierUC: supplierUC}
}

// Create crea un proveedor.
// @Summary Crear proveedor
// @Tags suppliers
// @Accept json
// @Produce json
// @Param body body dto.PartnerRequest true "Proveedor"
// @Success 201 {object} dto.PartnerResponse
// @Router /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var req dto.PartnerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}
	supplier, err := h.supplierUC.Create(req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(supplier)
}

// Update actualiza un proveedor.
// @Summary Actualizar proveedor
// @Tags suppliers
// @Accept json
// @Produce json
// @Param id path string true "ID del proveedor"
// @Param body body dto.PartnerRequest true "Datos"
// @Success 200 {object} dto.PartnerResponse
// @Router /api/suppliers/{id} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var req dto.PartnerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}
	supplier, err := h.supplierUC.Update(c.Params("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(supplier)
}

// List lista proveedores paginados.
// @Summary Listar proveedores
// @Tags suppliers
// @Produce json
// @Success 200 {array} dto.PartnerResponse
// @Router /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos",
		})
	}
	suppliers, err := h.supplierUC.List(page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(suppliers)
}

// Delete elimina un proveedor.
// @Summary Eliminar proveedor
// @Tags suppliers
// @Param id path string true "ID del proveedor"
// @Success 204
// @Router /api/suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	if err := h.supplierUC.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LocationHandler maneja ubicaciones de stock.
type LocationHandler struct {
	locationUC *usecase.LocationUseCase
}

// NewLocationHandler crea el handler de ubicaciones.
func NewLocationHandler(locationUC *usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{locationUC: locationUC}
}

// Create crea una ubicación.
// @Summary Crear ubicación
// @Tags locations
// @Accept json
// @Produce json
// @Param body body dto.LocationRequest true "Ubicación"
// @Success 201 {object} dto.LocationResponse
// @Router /api/locations [post]
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var req dto.LocationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}
	location, err := h.locationUC.Create(req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(location)
}

// List lista todas las ubicaciones.
// @Summary Listar ubicaciones
// @Tags locations
// @Produce json
// @Success 200 {array} dto.LocationResponse
// @Router /api/locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	locations, err := h.locationUC.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(locations)
}
