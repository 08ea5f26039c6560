package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

// VendorHandler serves the vendor directory screen.
type VendorHandler struct {
	catalog ports.CatalogService
}

func NewVendorHandler(catalog ports.CatalogService) *VendorHandler {
	return &VendorHandler{catalog: catalog}
}

type vendorListQuery struct {
	Category string `query:"category"`
	City     string `query:"city"`
	Search   string `query:"search"`
	pageQuery
}

// List handles GET /v1/vendors.
//
// @Summary      List vendors
// @Tags         vendors
// @Produce      json
// @Security     BearerAuth
// @Param        category  query     string  false  "Exact category filter"
// @Param        city      query     string  false  "Exact city filter"
// @Param        search    query     string  false  "Substring match on name or contact person"
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        limit     query     int     false  "Page size (max 100)"
// @Success      200       {object}  pageResponse[domain.Vendor]
// @Failure      401       {object}  map[string]string
// @Router       /v1/vendors [get]
func (h *VendorHandler) List(c echo.Context) error {
	var q vendorListQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid query"})
	}

	page, err := h.catalog.ListVendors(c.Request().Context(), ports.VendorFilter{
		Category: q.Category,
		City:     q.City,
		Search:   q.Search,
		Page:     q.Page,
		Limit:    q.Limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newPageResponse(page))
}

// CategoryCounts handles GET /v1/vendors/category-counts.
//
// @Summary      Vendor counts per category
// @Tags         vendors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int64
// @Router       /v1/vendors/category-counts [get]
func (h *VendorHandler) CategoryCounts(c echo.Context) error {
	counts, err := h.catalog.VendorCategoryCounts(c.Request().Context())
	if err != nil {
		return err
	}

	out := make(map[string]int64, len(domain.VendorCategories))
	for _, cat := range domain.VendorCategories {
		out[string(cat)] = counts[cat]
	}
	return c.JSON(http.StatusOK, out)
}
