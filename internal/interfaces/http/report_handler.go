package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/supermack-billing/internal/application/analytics"
)

// ReportHandler reporte de ventas y sus exportes.
type ReportHandler struct {
	uc *appanalytics.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *appanalytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Sales godoc
// @Summary      Reporte de ventas
// @Description  Una fila por línea de factura del punto de venta y una por factura manual (producto "-").
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        customer  query  string  false  "Cliente (coincidencia exacta)"
// @Param        product   query  string  false  "Producto (coincidencia exacta)"
// @Success      200       {object}  dto.SalesReportDTO
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	out, err := h.uc.Sales(c.UserContext(), c.Query("customer"), c.Query("product"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Options godoc
// @Summary      Valores de los filtros del reporte
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReportOptionsDTO
// @Router       /api/reports/sales/options [get]
func (h *ReportHandler) Options(c *fiber.Ctx) error {
	out, err := h.uc.Options(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportPDF GET /api/reports/sales/pdf
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	b, filename, err := h.uc.ExportPDF(c.UserContext(), c.Query("customer"), c.Query("product"))
	if err != nil {
		return respondError(c, err)
	}
	return sendAttachment(c, "application/pdf", filename, b)
}

// ExportExcel GET /api/reports/sales/xlsx
func (h *ReportHandler) ExportExcel(c *fiber.Ctx) error {
	b, filename, err := h.uc.ExportExcel(c.UserContext(), c.Query("customer"), c.Query("product"))
	if err != nil {
		return respondError(c, err)
	}
	return sendAttachment(c, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", filename, b)
}
