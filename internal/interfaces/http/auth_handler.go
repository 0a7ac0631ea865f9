package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pos-api/internal/application/auth"
	"github.com/jhoicas/Pos-api/internal/application/dto"
)

// AuthHandler maneja registro y login.
type AuthHandler struct {
	authUC *auth.AuthUseCase
}

// NewAuthHandler crea el handler de auth.
func NewAuthHandler(authUC *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Register registra un usuario nuevo.
// @Summary Registrar usuario
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "Datos del usuario"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}
	user, err := h.authUC.RegisterUser(req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login autentica y devuelve un JWT.
// @Summary Iniciar sesión
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}
	resp, err := h.authUC.Login(req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}
