package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/invoices-dashboard/internal/application/analytics"
)

// DashboardHandler maneja las tarjetas de resumen del dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve conteos y totales cobrados/pendientes.
// GET /dashboard
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(summary)
}
