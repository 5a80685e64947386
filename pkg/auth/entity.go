package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing a registered account.
// PasswordHash is opaque and never leaves the auth/persistence layers.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
