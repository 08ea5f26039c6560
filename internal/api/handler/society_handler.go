package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventra/event-console/internal/core/ports"
)

// SocietyHandler serves the society directory screen.
type SocietyHandler struct {
	catalog ports.CatalogService
}

func NewSocietyHandler(catalog ports.CatalogService) *SocietyHandler {
	return &SocietyHandler{catalog: catalog}
}

type societyListQuery struct {
	Status string `query:"status"`
	Search string `query:"search"`
	pageQuery
}

// List handles GET /v1/societies.
//
// @Summary      List societies
// @Tags         societies
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Exact status filter"
// @Param        search  query     string  false  "Substring match on name or location"
// @Param        page    query     int     false  "Page number (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Success      200     {object}  pageResponse[domain.Society]
// @Failure      401     {object}  map[string]string
// @Router       /v1/societies [get]
func (h *SocietyHandler) List(c echo.Context) error {
	var q societyListQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid query"})
	}

	page, err := h.catalog.ListSocieties(c.Request().Context(), ports.SocietyFilter{
		Status: q.Status,
		Search: q.Search,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newPageResponse(page))
}
