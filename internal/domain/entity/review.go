package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MinRating is the lowest rating a review may carry.
	MinRating = 1
	// MaxRating is the highest rating a review may carry.
	MaxRating = 5
)

// Review belongs to exactly one Campground and is authored by exactly one User.
// A campground's review collection is the set of reviews whose CampgroundID points at it,
// so deleting a review can never leave a dangling identifier behind.
type Review struct {
	ID           uuid.UUID
	CampgroundID uuid.UUID
	Body         string
	Rating       int
	AuthorID     uuid.UUID
	Author       *User // Populated on read paths only.
	CreatedAt    time.Time
}

// IsOwnedBy reports whether userID is the recorded author of the review.
func (r *Review) IsOwnedBy(userID uuid.UUID) bool {
	return r != nil && userID != uuid.Nil && r.AuthorID == userID
}
