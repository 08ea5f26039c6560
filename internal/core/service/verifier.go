package service

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/eventra/event-console/internal/core/domain"
)

// CredentialVerifier abstracts the password check so the authentication
// mechanism can be swapped without touching login call sites.
type CredentialVerifier interface {
	Verify(user *domain.User, password string) bool
}

// SharedSecretVerifier accepts a single shared secret for every account.
// It backs the demo directory, where no per-user hashes exist.
type SharedSecretVerifier struct {
	Secret string
}

func (v SharedSecretVerifier) Verify(_ *domain.User, password string) bool {
	return subtle.ConstantTimeCompare([]byte(v.Secret), []byte(password)) == 1
}

// BcryptVerifier checks the supplied password against the account's stored
// bcrypt hash.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(user *domain.User, password string) bool {
	if user.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}
