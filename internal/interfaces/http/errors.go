package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Pos-api/internal/application/dto"
	"github.com/jhoicas/Pos-api/internal/domain"
	"github.com/jhoicas/Pos-api/internal/domain/inventory"
)

// writeError traduce errores de dominio a respuestas HTTP. Los mensajes de
// validación y de stock viajan tal cual al kiosco; los errores internos se
// loguean y devuelven un mensaje genérico.
func writeError(c *fiber.Ctx, err error) error {
	var insufficient *inventory.InsufficientStockError
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_QUANTITY", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_INPUT", Message: "entrada inválida",
		})
	case errors.As(err, &insufficient):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "INSUFFICIENT_STOCK", Message: insufficient.Error(),
		})
	case errors.Is(err, domain.ErrAllocationDiscrepancy):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "ALLOCATION_DISCREPANCY", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "recurso no encontrado",
		})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "CONFLICT", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "credenciales inválidas",
		})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code: "FORBIDDEN", Message: "acceso denegado",
		})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "error interno del servidor",
		})
	}
}
