package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/eventra/event-console/internal/api/metrics"
	"github.com/eventra/event-console/internal/core/domain"
)

// SessionRestorer loads a persisted session by ID. A (nil, nil) return means
// the session does not exist (or was discarded as unreadable).
type SessionRestorer interface {
	Restore(ctx context.Context, sessionID string) (*domain.Session, error)
}

// Auth validates the bearer token, restores the session it references, and
// injects the session into the request context.
func Auth(jwtSecret string, sessions SessionRestorer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sid, _ := claims["sid"].(string)
			if sid == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing session identity")
			}

			sess, err := sessions.Restore(c.Request().Context(), sid)
			if err != nil {
				metrics.SessionRestoresTotal.WithLabelValues("error").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "session unavailable")
			}
			if sess == nil {
				metrics.SessionRestoresTotal.WithLabelValues("miss").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
			}
			metrics.SessionRestoresTotal.WithLabelValues("hit").Inc()

			c.Set("session", sess)
			c.Set("sid", sid)

			return next(c)
		}
	}
}
