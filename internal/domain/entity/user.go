package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered storefront customer. Accounts are created once
// at signup and never updated or deleted in this scope.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string // Unique login identifier.
	PasswordHash string // bcrypt hash; never the plaintext.
	CreatedAt    time.Time
}
