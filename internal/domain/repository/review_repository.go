package repository

import (
	"context"
	"errors"

	"kampina/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when no review has the requested ID.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository persists reviews. A review belongs to the campground its
// CampgroundID points at.
type ReviewRepository interface {
	// FindByID returns a single review.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// Create persists a review.
	Create(ctx context.Context, review *entity.Review) error

	// Delete removes a review. Deleting a missing review returns ErrReviewNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
