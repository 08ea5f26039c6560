package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventra/event-console/internal/core/domain"
)

// ctxSession extracts the session injected by the Auth middleware. Its
// presence proves the middleware ran; handlers behind Auth can rely on a
// non-nil result.
func ctxSession(c echo.Context) (*domain.Session, error) {
	sess, _ := c.Get("session").(*domain.Session)
	if sess == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return sess, nil
}
