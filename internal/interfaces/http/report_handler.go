package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion360-api/internal/application/analytics"
	"github.com/jhoicas/gestion360-api/internal/application/dto"
	"github.com/jhoicas/gestion360-api/internal/domain"
)

// ReportHandler expone los reportes por timeframe y su exportación (protegido).
type ReportHandler struct {
	uc *analytics.AnalyticsUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.AnalyticsUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Get godoc
// @Summary      Reporte del periodo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        timeframe  query  string  false  "dia | mes | anio"  default(mes)
// @Success      200  {object}  dto.ReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Report(GetUserID(c), c.Query("timeframe", "mes"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "timeframe debe ser dia, mes o anio"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar reporte del periodo como PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        timeframe  query  string  false  "dia | mes | anio"  default(mes)
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/export [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.ExportPDF(GetUserID(c), c.Query("timeframe", "mes"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "timeframe debe ser dia, mes o anio"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte.pdf"`)
	return c.Send(pdfBytes)
}
