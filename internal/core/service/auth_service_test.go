package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

func newTestAuthService(users *stubUserRepo) (*AuthService, *mapKV) {
	kv := newMapKV()
	sessions := NewSessionStore(kv, zerolog.Nop())
	verifier := SharedSecretVerifier{Secret: "admin123"}
	return NewAuthService(users, sessions, verifier, "test-secret", zerolog.Nop()), kv
}

func demoDirectory() *stubUserRepo {
	return &stubUserRepo{users: []*domain.User{
		{ID: "1", Email: "admin@admin.com", Name: "Super Admin", Role: domain.RoleSuperAdmin, Status: domain.AccountActive},
		{ID: "2", Email: "city.admin@admin.com", Name: "Mumbai Admin", Role: domain.RoleAdmin, City: "Mumbai", Status: domain.AccountActive},
	}}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _ := newTestAuthService(demoDirectory())

	token, sess, err := svc.Login(context.Background(), "admin@admin.com", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}
	if sess.Role != domain.RoleSuperAdmin {
		t.Fatalf("expected super_admin, got %s", sess.Role)
	}
	if sess.LastLogin.IsZero() {
		t.Fatalf("last login not stamped")
	}
}

func TestAuthService_Login_CaseInsensitiveEmail(t *testing.T) {
	svc, _ := newTestAuthService(demoDirectory())

	_, sess, err := svc.Login(context.Background(), "ADMIN@Admin.COM", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.Email != "admin@admin.com" {
		t.Fatalf("expected canonical email, got %s", sess.Email)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := newTestAuthService(demoDirectory())

	_, _, err := svc.Login(context.Background(), "admin@admin.com", "nope")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService(demoDirectory())

	_, _, err := svc.Login(context.Background(), "ghost@admin.com", "admin123")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc, _ := newTestAuthService(demoDirectory())

	if _, _, err := svc.Login(context.Background(), "", "admin123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "admin@admin.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_TokenRestoresSession(t *testing.T) {
	svc, _ := newTestAuthService(demoDirectory())
	ctx := context.Background()

	token, _, err := svc.Login(ctx, "city.admin@admin.com", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}); err != nil {
		t.Fatalf("parse token: %v", err)
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		t.Fatalf("token missing sid claim")
	}

	sess, err := svc.Restore(ctx, sid)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if sess == nil || sess.City != "Mumbai" {
		t.Fatalf("unexpected restored session: %+v", sess)
	}
}

func TestAuthService_LogoutEndsSession(t *testing.T) {
	svc, _ := newTestAuthService(demoDirectory())
	ctx := context.Background()

	token, _, err := svc.Login(ctx, "admin@admin.com", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}); err != nil {
		t.Fatalf("parse token: %v", err)
	}
	sid := claims["sid"].(string)

	if err := svc.Logout(ctx, sid); err != nil {
		t.Fatalf("logout: %v", err)
	}
	sess, err := svc.Restore(ctx, sid)
	if err != nil || sess != nil {
		t.Fatalf("expected no session after logout, got (%+v, %v)", sess, err)
	}
}

func TestAuthService_Register(t *testing.T) {
	repo := demoDirectory()
	svc, _ := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "Legal@Admin.com",
		Password: "s3cret",
		Name:     "Legal Ops",
		Role:     "legal",
		City:     "Delhi",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "legal@admin.com" {
		t.Fatalf("email not lowercased: %s", user.Email)
	}
	if user.Role != domain.RoleLegal {
		t.Fatalf("unexpected role: %s", user.Role)
	}
	if user.Status != domain.AccountActive {
		t.Fatalf("expected active account")
	}
	if user.PasswordHash == "" || user.PasswordHash == "s3cret" {
		t.Fatalf("password not hashed")
	}

	if (BcryptVerifier{}).Verify(user, "s3cret") != true {
		t.Fatalf("stored hash does not verify")
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	svc, _ := newTestAuthService(demoDirectory())

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "x@admin.com",
		Password: "pw",
		Name:     "X",
		Role:     "overlord",
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := demoDirectory()
	repo.createFn = func(context.Context, *domain.User) (*domain.User, error) {
		return nil, domain.ErrUserExists
	}
	svc, _ := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "admin@admin.com",
		Password: "pw",
		Name:     "Dup",
		Role:     "admin",
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestSession_HasRole(t *testing.T) {
	sess := &domain.Session{Role: domain.RoleSuperAdmin}

	if !sess.HasRole(domain.RoleSuperAdmin) {
		t.Fatalf("expected super_admin membership")
	}
	if sess.HasRole(domain.RoleAdmin) {
		t.Fatalf("super_admin is not admin")
	}
	if sess.HasRole() {
		t.Fatalf("empty role set matches nothing")
	}

	var nilSess *domain.Session
	if nilSess.HasRole(domain.RoleSuperAdmin) {
		t.Fatalf("nil session never has a role")
	}
}
