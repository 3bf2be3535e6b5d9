// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the authenticated principal. It is referenced by ID as the author of
// campgrounds and reviews and is never embedded into them.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // Unique contact email.
	Username     string    // Unique login name shown next to authored content.
	PasswordHash string    // Salted bcrypt hash. The plaintext password is never stored.
	CreatedAt    time.Time // Timestamp of when this account was registered.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
