package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pos-api/internal/application/dto"
	"github.com/jhoicas/Pos-api/pkg/jwt"
)

const (
	localUserID = "user_id"
	localRole   = "role"
)

// AuthMiddleware valida el token Bearer y deja user_id y role en Locals.
func AuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "UNAUTHORIZED", Message: "token requerido",
			})
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")
		userID, role, err := jwt.Parse(secret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "UNAUTHORIZED", Message: "token inválido o expirado",
			})
		}
		c.Locals(localUserID, userID)
		c.Locals(localRole, role)
		return c.Next()
	}
}

// RequireRole corta con 403 si el rol del token no está en la lista permitida.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code: "FORBIDDEN", Message: "rol sin permiso para esta operación",
		})
	}
}

// GetUserID devuelve el user_id dejado por AuthMiddleware.
func GetUserID(c *fiber.Ctx) string {
	if v, ok := c.Locals(localUserID).(string); ok {
		return v
	}
	return ""
}

// GetRole devuelve el role dejado por AuthMiddleware.
func GetRole(c *fiber.Ctx) string {
	if v, ok := c.Locals(localRole).(string); ok {
		return v
	}
	return ""
}
