package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/fichaje-api/internal/application/directory"
)

// DirectoryHandler sirve los listados públicos que alimentan la pantalla de
// login: departamentos y usuarios por departamento.
type DirectoryHandler struct {
	uc *directory.DirectoryUseCase
}

func NewDirectoryHandler(uc *directory.DirectoryUseCase) *DirectoryHandler {
	return &DirectoryHandler{uc: uc}
}

// ListDepartments godoc
// @Summary      Listar departamentos
// @Tags         directory
// @Produce      json
// @Success      200  {array}  dto.DepartmentResponse
// @Router       /api/departments [get]
func (h *DirectoryHandler) ListDepartments(c *fiber.Ctx) error {
	out, err := h.uc.ListDepartments(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("directory/departments: fallo del store")
		return internalError(c)
	}
	return c.JSON(out)
}

// ListUsers godoc
// @Summary      Listar usuarios, opcionalmente por departamento
// @Tags         directory
// @Produce      json
// @Param        department_id  query  string  false  "filtrar por departamento"
// @Success      200  {array}  dto.UserResponse
// @Router       /api/users [get]
func (h *DirectoryHandler) ListUsers(c *fiber.Ctx) error {
	departmentID := c.Query("department_id")
	out, err := h.uc.ListUsers(c.Context(), departmentID)
	if err != nil {
		log.Error().Err(err).Str("department_id", departmentID).Msg("directory/users: fallo del store")
		return internalError(c)
	}
	return c.JSON(out)
}
