package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/fichaje-api/internal/application/clock"
	"github.com/jhoicas/fichaje-api/internal/application/dto"
	"github.com/jhoicas/fichaje-api/internal/domain"
)

// ClockHandler expone el feed del día y el registro de fichajes.
// Todas sus rutas van detrás del middleware JWT: el user_id sale del token,
// nunca del cuerpo de la petición.
type ClockHandler struct {
	uc *clock.ClockUseCase
}

func NewClockHandler(uc *clock.ClockUseCase) *ClockHandler {
	return &ClockHandler{uc: uc}
}

// Today godoc
// @Summary      Eventos del día del usuario autenticado
// @Tags         clock
// @Produce      json
// @Success      200  {object}  dto.TodayResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/clock/today [get]
func (h *ClockHandler) Today(c *fiber.Ctx) error {
	userID := GetUserID(c)
	out, err := h.uc.Today(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
		}
		log.Error().Err(err).Str("user_id", userID).Msg("clock/today: fallo del store")
		return internalError(c)
	}
	return c.JSON(out)
}

// RecordEvent godoc
// @Summary      Registrar un fichaje (ENTRADA o SAIDA)
// @Tags         clock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordEventRequest  true  "type, report"
// @Success      201   {object}  dto.ClockEventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/clock/events [post]
func (h *ClockHandler) RecordEvent(c *fiber.Ctx) error {
	var in dto.RecordEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	userID := GetUserID(c)
	out, err := h.uc.RecordEvent(c.Context(), userID, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOutOfSequence):
			// Otro cliente del mismo usuario ganó el turno; la UI recarga el día
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OUT_OF_SEQUENCE", Message: "el fichaje no alterna con el anterior; recargue el día"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
		}
		log.Error().Err(err).Str("user_id", userID).Str("type", in.Type).Msg("clock/events: fallo del store")
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DayReceipt godoc
// @Summary      Comprobante PDF de los fichajes del día
// @Tags         clock
// @Produce      application/pdf
// @Success      200  {file}  file
// @Failure      401  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/clock/today/receipt [get]
func (h *ClockHandler) DayReceipt(c *fiber.Ctx) error {
	userID := GetUserID(c)
	pdf, err := h.uc.DayReceipt(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
		}
		log.Error().Err(err).Str("user_id", userID).Msg("clock/receipt: fallo al generar PDF")
		return internalError(c)
	}
	filename := fmt.Sprintf("fichaje_%s_%s.pdf", userID, time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
