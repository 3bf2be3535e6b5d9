package repository

import (
	"context"
	"errors"

	"kampina/internal/domain/entity"
)

// ErrSessionNotFound is returned when the session does not exist or has expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore is the server-side half of the cookie session.
// Implementations must treat expired sessions as missing.
type SessionStore interface {
	// Get loads a live session.
	Get(ctx context.Context, id string) (*entity.Session, error)

	// Save inserts or replaces the session until its ExpiresAt.
	Save(ctx context.Context, session *entity.Session) error

	// Delete removes the session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error
}
