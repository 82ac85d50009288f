package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lbcompany/inventario-api/internal/application/audit"
	"github.com/lbcompany/inventario-api/internal/application/dto"
)

// LogsHandler expone la bitácora de actividad (protegido, solo lectura).
type LogsHandler struct {
	uc *audit.UseCase
}

// NewLogsHandler construye el handler.
func NewLogsHandler(uc *audit.UseCase) *LogsHandler {
	return &LogsHandler{uc: uc}
}

// List godoc
// @Summary      Bitácora de actividad (más reciente primero)
// @Tags         logs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LogEntryResponse
// @Router       /api/logs [get]
func (h *LogsHandler) List(c *fiber.Ctx) error {
	entries, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(entries)
}
