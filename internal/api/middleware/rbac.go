package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventra/event-console/internal/api/metrics"
	"github.com/eventra/event-console/internal/core/domain"
)

// RBAC enforces role-based access control on the session injected by Auth.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, _ := c.Get("session").(*domain.Session)
			if !sess.HasRole(allowedRoles...) {
				role := ""
				if sess != nil {
					role = string(sess.Role)
				}
				metrics.AccessDeniedTotal.WithLabelValues(role).Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "access denied"})
			}
			return next(c)
		}
	}
}
