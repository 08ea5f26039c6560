package ports

import (
	"context"

	"github.com/eventra/event-console/internal/core/domain"
)

// RegisterInput carries the data needed to create an operator account.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
	City     string
	Phone    string
}

// AuthService handles credential checks and the session lifecycle.
type AuthService interface {
	// Login validates credentials (email match is case-insensitive) and, on
	// success, persists a session and returns a bearer token referencing it.
	Login(ctx context.Context, email, password string) (string, *domain.Session, error)
	// Logout removes the persisted session. Unknown session IDs are a no-op.
	Logout(ctx context.Context, sessionID string) error
	// Restore loads a previously saved session. Absent or malformed entries
	// yield (nil, nil); a malformed entry is discarded in the process.
	Restore(ctx context.Context, sessionID string) (*domain.Session, error)
	// Register creates a new operator account with a hashed password.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
}
