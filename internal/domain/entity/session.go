package entity

import (
	"time"

	"github.com/google/uuid"
)

// Flash message kinds rendered by the page layout.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Session is the server-side state behind the session cookie.
// It carries the authenticated principal, transient flash queues and the path
// to resume after a login redirect.
type Session struct {
	ID        string              `json:"-"`
	UserID    *uuid.UUID          `json:"userId,omitempty"`
	Flashes   map[string][]string `json:"flashes,omitempty"`
	ReturnTo  string              `json:"returnTo,omitempty"`
	ExpiresAt time.Time           `json:"expiresAt"`
	TouchedAt time.Time           `json:"touchedAt"`

	isNew    bool
	modified bool
}

// NewSession creates an unsaved session that expires after ttl.
func NewSession(id string, now time.Time, ttl time.Duration) *Session {
	return &Session{
		ID:        id,
		Flashes:   map[string][]string{},
		ExpiresAt: now.Add(ttl),
		TouchedAt: now,
		isNew:     true,
	}
}

// IsNew reports whether the session has never been persisted.
func (s *Session) IsNew() bool { return s.isNew }

// Modified reports whether the session needs to be persisted.
func (s *Session) Modified() bool { return s.modified }

// MarkSaved clears the new and modified flags after a successful save.
func (s *Session) MarkSaved() {
	s.isNew = false
	s.modified = false
}

// IsAuthenticated reports whether a principal is attached.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.UserID != nil && *s.UserID != uuid.Nil
}

// Login attaches the principal.
func (s *Session) Login(userID uuid.UUID) {
	s.UserID = &userID
	s.modified = true
}

// Logout detaches the principal.
func (s *Session) Logout() {
	s.UserID = nil
	s.modified = true
}

// AddFlash enqueues a message of the given kind.
func (s *Session) AddFlash(kind, message string) {
	if s.Flashes == nil {
		s.Flashes = map[string][]string{}
	}
	s.Flashes[kind] = append(s.Flashes[kind], message)
	s.modified = true
}

// DrainFlashes returns all queued messages of the given kind and empties the queue.
func (s *Session) DrainFlashes(kind string) []string {
	msgs := s.Flashes[kind]
	if len(msgs) == 0 {
		return nil
	}
	delete(s.Flashes, kind)
	s.modified = true

	return msgs
}

// SetReturnTo remembers the path to resume after login.
func (s *Session) SetReturnTo(path string) {
	s.ReturnTo = path
	s.modified = true
}

// PopReturnTo returns the remembered path, or fallback when none is set, and clears it.
func (s *Session) PopReturnTo(fallback string) string {
	if s.ReturnTo == "" {
		return fallback
	}
	path := s.ReturnTo
	s.ReturnTo = ""
	s.modified = true

	return path
}

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// Touch slides the expiry window forward when the last touch is older than touchAfter.
// It reports whether the session was extended.
func (s *Session) Touch(now time.Time, ttl, touchAfter time.Duration) bool {
	if now.Sub(s.TouchedAt) < touchAfter {
		return false
	}
	s.TouchedAt = now
	s.ExpiresAt = now.Add(ttl)
	s.modified = true

	return true
}

// TTL returns the remaining lifetime of the session at now.
func (s *Session) TTL(now time.Time) time.Duration {
	return s.ExpiresAt.Sub(now)
}
