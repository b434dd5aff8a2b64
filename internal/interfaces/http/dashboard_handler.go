package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/supermack-billing/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los widgets del dashboard.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (daily_sales, outstanding_invoices, customers,
// products_in_stock, weekly_sales[7], quick_actions, date_label).
// Los accesos rápidos dependen del rol de la sesión.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext(), GetSession(c).Role)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
