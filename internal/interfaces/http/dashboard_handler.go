package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion360-api/internal/application/analytics"
	"github.com/jhoicas/gestion360-api/internal/application/dto"
)

// DashboardHandler expone el resumen de inicio (protegido).
type DashboardHandler struct {
	uc *analytics.AnalyticsUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.AnalyticsUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get godoc
// @Summary      Resumen del mes: totales, últimos 7 días y top de conceptos
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
