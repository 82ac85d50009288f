package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lbcompany/inventario-api/internal/application/dto"
	"github.com/lbcompany/inventario-api/internal/application/report"
	"github.com/lbcompany/inventario-api/internal/domain"
)

// ReportHandler dispara la generación del reporte de inventario (protegido).
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Generate godoc
// @Summary      Generar reporte de inventario (XLSX + PDF)
// @Tags         report
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.ReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/report [post]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	out, err := h.uc.Generate(c.Context(), GetUsername(c))
	if err != nil {
		if errors.Is(err, domain.ErrEmptyInventory) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_INVENTORY", Message: "no hay datos de inventario"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
