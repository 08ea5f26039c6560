package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

// AuthService implements login, logout, session restore, and registration.
type AuthService struct {
	users     ports.UserRepository
	sessions  *SessionStore
	verifier  CredentialVerifier
	jwtSecret string
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions *SessionStore, verifier CredentialVerifier, jwtSecret string, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:     users,
		sessions:  sessions,
		verifier:  verifier,
		jwtSecret: jwtSecret,
		log:       log,
	}
}

// Login checks the credentials against the directory. The email lookup is
// case-insensitive; the password check is delegated to the configured
// verifier. On success the session is stamped with the login time,
// persisted, and referenced by the returned bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Session, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if !s.verifier.Verify(user, password) {
		return "", nil, domain.ErrInvalidCredentials
	}

	sess := domain.NewSession(user, time.Now().UTC())
	sessionID := uuid.NewString()
	if err := s.sessions.Save(ctx, sessionID, sess); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(sessionID, sess)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("email", sess.Email).Str("role", string(sess.Role)).Msg("operator logged in")
	return token, sess, nil
}

// Logout clears the persisted session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Clear(ctx, sessionID)
}

// Restore loads the session referenced by sessionID, failing soft on
// absent or malformed entries.
func (s *AuthService) Restore(ctx context.Context, sessionID string) (*domain.Session, error) {
	return s.sessions.Restore(ctx, sessionID)
}

// Register creates a new operator account. The role must belong to the
// closed role set and the password is stored as a bcrypt hash.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" || input.Name == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        strings.ToLower(input.Email),
		Name:         input.Name,
		Role:         role,
		City:         input.City,
		Phone:        input.Phone,
		PasswordHash: string(hash),
		Status:       domain.AccountActive,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Str("role", string(created.Role)).Msg("operator registered")
	return created, nil
}

func (s *AuthService) generateToken(sessionID string, sess *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":   sessionID,
		"email": sess.Email,
		"role":  string(sess.Role),
		"iat":   time.Now().Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
