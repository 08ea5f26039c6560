package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidRole        = errors.New("invalid role")
	ErrDraftNotFound      = errors.New("draft not found")
	ErrNotOnFinalStep     = errors.New("draft is not on the final step")
	ErrUnknownField       = errors.New("unknown field")
	ErrForbidden          = errors.New("access denied")
)
