package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/fichaje-api/internal/application/auth"
	"github.com/jhoicas/fichaje-api/internal/application/dto"
	"github.com/jhoicas/fichaje-api/internal/domain"
)

// AuthHandler maneja login, primer acceso y logout.
type AuthHandler struct {
	uc             *auth.AuthUseCase
	passwordMinLen int
}

// NewAuthHandler construye el handler de auth. passwordMinLen viene de la
// configuración de política y se valida aquí, antes de tocar el use case.
func NewAuthHandler(uc *auth.AuthUseCase, passwordMinLen int) *AuthHandler {
	return &AuthHandler{uc: uc, passwordMinLen: passwordMinLen}
}

// Login godoc
// @Summary      Iniciar sesión (o detectar primer acceso)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "user_id, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_id es requerido"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// La UI limpia el campo de contraseña con este código
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "contraseña incorrecta"})
		}
		log.Error().Err(err).Str("user_id", in.UserID).Msg("login: fallo del store")
		return internalError(c)
	}
	return c.JSON(out)
}

// SetupPassword godoc
// @Summary      Primer acceso: crear contraseña
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetupPasswordRequest  true  "user_id, new_password, confirm_password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/setup-password [post]
func (h *AuthHandler) SetupPassword(c *fiber.Ctx) error {
	var in dto.SetupPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_id es requerido"})
	}
	// Validación local: nunca llega al store
	if len([]rune(in.NewPassword)) < h.passwordMinLen {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la contraseña es demasiado corta"})
	}
	if in.NewPassword != in.ConfirmPassword {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "las contraseñas no coinciden"})
	}
	out, err := h.uc.SetupPassword(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
		}
		if errors.Is(err, domain.ErrPasswordAlreadySet) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_SET", Message: "la contraseña ya fue configurada; inicie sesión"})
		}
		log.Error().Err(err).Str("user_id", in.UserID).Msg("setup-password: fallo del store")
		return internalError(c)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      204  "sin contenido"
// @Router       /api/auth/logout [post]
//
// Los tokens son stateless: el cliente descarta el suyo y la sesión muere al
// expirar. El endpoint es idempotente; sin sesión activa también responde 204.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// internalError responde el mensaje genérico: el detalle del store nunca
// viaja al cliente, solo al log.
func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno, intente de nuevo"})
}
