package auth

import (
	"context"
	"errors"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("username and password are required")
	ErrInternal           = errors.New("internal error")
)

// UserRepository abstracts persistence concerns from the domain layer.
// Create must rely on a storage-level uniqueness constraint for the
// username: duplicate detection happens on insert, never as a separate
// lookup, so two concurrent registrations cannot both succeed.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByUsername(ctx context.Context, username string) (User, error)
}
