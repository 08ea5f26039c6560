package domain

import "time"

// AccountStatus is the activation state of an operator account.
type AccountStatus string

const (
	AccountActive   AccountStatus = "active"
	AccountInactive AccountStatus = "inactive"
)

// User is an operator account in the directory.
type User struct {
	ID           string        `json:"id"`
	Email        string        `json:"email"`
	Name         string        `json:"name"`
	Role         Role          `json:"role"`
	City         string        `json:"city,omitempty"`
	Phone        string        `json:"phone,omitempty"`
	PasswordHash string        `json:"-"`
	Status       AccountStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	LastLogin    time.Time     `json:"last_login,omitempty"`
}

// Session identifies the currently authenticated operator. It is a snapshot
// of the user record at login time plus the login timestamp.
type Session struct {
	ID        string        `json:"id"`
	Email     string        `json:"email"`
	Name      string        `json:"name"`
	Role      Role          `json:"role"`
	City      string        `json:"city,omitempty"`
	Status    AccountStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	LastLogin time.Time     `json:"last_login"`
}

// HasRole reports whether the session's role is a member of the given set.
// A nil session never has any role.
func (s *Session) HasRole(roles ...Role) bool {
	if s == nil {
		return false
	}
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}

// NewSession builds a session snapshot for a user who just authenticated.
func NewSession(u *User, loginAt time.Time) *Session {
	return &Session{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		City:      u.City,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		LastLogin: loginAt,
	}
}
