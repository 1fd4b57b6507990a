package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sistemasvip/client-portal/internal/core/ports"
)

// DashboardHandler serves the landing page aggregate.
type DashboardHandler struct {
	dashboard ports.DashboardService
}

func NewDashboardHandler(dashboard ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Summary returns the fresh user record and newest orders in one response.
//
// @Summary      Dashboard summary
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  ports.DashboardSummary
// @Failure      401  {object}  map[string]string
// @Router       /dashboard/summary [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	summary, err := h.dashboard.Summary(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
