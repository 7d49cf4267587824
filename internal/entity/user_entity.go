package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id uuid.UUID
	// Email is globally unique, enforced by the store.
	Email string
	// PasswordDigest is nil for accounts reserved for future identity
	// methods; such accounts cannot log in with a password.
	PasswordDigest *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
