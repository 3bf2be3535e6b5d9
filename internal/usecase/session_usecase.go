package usecase

import (
	"context"
	"time"

	"kampina/internal/domain/entity"
)

// SessionUsecase manages the server-side state behind the session cookie.
type SessionUsecase interface {
	// Load returns the live session for id, or a fresh unsaved one when id is
	// empty, unknown or expired. A loaded session slides its expiry window.
	Load(ctx context.Context, id string) (*entity.Session, error)

	// Save persists the session when it was modified.
	Save(ctx context.Context, session *entity.Session) error

	// Rotate moves the session state to a new identifier and drops the old one.
	Rotate(ctx context.Context, session *entity.Session) (*entity.Session, error)

	// MaxAge is the lifetime of the cookie and of the stored session.
	MaxAge() time.Duration
}
