package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventra/event-console/internal/core/ports"
)

// DashboardHandler serves the role-scoped dashboard.
type DashboardHandler struct {
	dashboard ports.DashboardService
}

func NewDashboardHandler(dashboard ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Stats handles GET /v1/dashboard. The stat cards depend on the caller's
// role: platform-wide figures for super admins, city figures for city
// admins, personal placeholders for everyone else.
//
// @Summary      Dashboard stat cards
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Failure      401  {object}  map[string]string
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	stats, err := h.dashboard.Stats(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
