package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/eventra/event-console/internal/core/domain"
)

const testSecret = "test-secret"

type stubRestorer struct {
	restoreFn func(ctx context.Context, sessionID string) (*domain.Session, error)
}

func (s *stubRestorer) Restore(ctx context.Context, sessionID string) (*domain.Session, error) {
	return s.restoreFn(ctx, sessionID)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func invokeAuth(t *testing.T, restorer SessionRestorer, authHeader string) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/events", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := Auth(testSecret, restorer)(next)(c)
	return rec, c, err
}

func TestAuth_ValidToken(t *testing.T) {
	session := &domain.Session{ID: "1", Email: "admin@admin.com", Role: domain.RoleSuperAdmin}
	restorer := &stubRestorer{restoreFn: func(_ context.Context, sessionID string) (*domain.Session, error) {
		if sessionID != "sid-1" {
			t.Fatalf("unexpected session id: %q", sessionID)
		}
		return session, nil
	}}
	token := signToken(t, testSecret, jwt.MapClaims{"sid": "sid-1", "email": "admin@admin.com"})

	rec, c, err := invokeAuth(t, restorer, "Bearer "+token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if got, _ := c.Get("session").(*domain.Session); got != session {
		t.Fatal("session not injected into the request context")
	}
	if sid, _ := c.Get("sid").(string); sid != "sid-1" {
		t.Fatalf("unexpected sid: %q", sid)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	restorer := &stubRestorer{restoreFn: func(context.Context, string) (*domain.Session, error) {
		t.Fatal("restorer should not be called")
		return nil, nil
	}}

	_, _, err := invokeAuth(t, restorer, "")
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_MalformedHeader(t *testing.T) {
	restorer := &stubRestorer{restoreFn: func(context.Context, string) (*domain.Session, error) {
		return nil, nil
	}}

	_, _, err := invokeAuth(t, restorer, "Token abc")
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_InvalidToken(t *testing.T) {
	restorer := &stubRestorer{restoreFn: func(context.Context, string) (*domain.Session, error) {
		return nil, nil
	}}
	token := signToken(t, "wrong-secret", jwt.MapClaims{"sid": "sid-1"})

	_, _, err := invokeAuth(t, restorer, "Bearer "+token)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_TokenWithoutSessionID(t *testing.T) {
	restorer := &stubRestorer{restoreFn: func(context.Context, string) (*domain.Session, error) {
		t.Fatal("restorer should not be called")
		return nil, nil
	}}
	token := signToken(t, testSecret, jwt.MapClaims{"email": "admin@admin.com"})

	_, _, err := invokeAuth(t, restorer, "Bearer "+token)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_ExpiredSession(t *testing.T) {
	restorer := &stubRestorer{restoreFn: func(context.Context, string) (*domain.Session, error) {
		return nil, nil
	}}
	token := signToken(t, testSecret, jwt.MapClaims{"sid": "sid-1"})

	_, _, err := invokeAuth(t, restorer, "Bearer "+token)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_RestoreError(t *testing.T) {
	restorer := &stubRestorer{restoreFn: func(context.Context, string) (*domain.Session, error) {
		return nil, errors.New("store down")
	}}
	token := signToken(t, testSecret, jwt.MapClaims{"sid": "sid-1"})

	_, _, err := invokeAuth(t, restorer, "Bearer "+token)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func assertHTTPStatus(t *testing.T, err error, want int) {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != want {
		t.Fatalf("unexpected status: got %d, want %d", httpErr.Code, want)
	}
}
