package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

// UserHandler serves the operator directory screen.
type UserHandler struct {
	directory ports.DirectoryService
}

func NewUserHandler(directory ports.DirectoryService) *UserHandler {
	return &UserHandler{directory: directory}
}

type userListQuery struct {
	Role   string `query:"role"`
	Search string `query:"search"`
	pageQuery
}

// List handles GET /v1/users.
//
// @Summary      List operator accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        role    query     string  false  "Exact role filter"
// @Param        search  query     string  false  "Substring match on name or email"
// @Param        page    query     int     false  "Page number (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Success      200     {object}  pageResponse[domain.User]
// @Failure      403     {object}  map[string]string
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	var q userListQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid query"})
	}

	page, err := h.directory.ListUsers(c.Request().Context(), ports.UserFilter{
		Role:   q.Role,
		Search: q.Search,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newPageResponse(page))
}

// RoleCounts handles GET /v1/users/role-counts.
//
// @Summary      Operator counts per role
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int64
// @Router       /v1/users/role-counts [get]
func (h *UserHandler) RoleCounts(c echo.Context) error {
	counts, err := h.directory.RoleCounts(c.Request().Context())
	if err != nil {
		return err
	}

	out := make(map[string]int64, len(domain.AllRoles))
	for _, r := range domain.AllRoles {
		out[string(r)] = counts[r]
	}
	return c.JSON(http.StatusOK, out)
}
