package usecase

import (
	"context"

	"kampina/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput defines the data required to post a review.
type CreateReviewInput struct {
	CampgroundID uuid.UUID
	AuthorID     uuid.UUID
	Body         string
	Rating       int
}

// ReviewUsecase defines the review operations.
type ReviewUsecase interface {
	// Get returns a review. Missing yields ErrReviewNotFound.
	Get(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// Create posts a review on an existing campground.
	Create(ctx context.Context, input *CreateReviewInput) (*entity.Review, error)

	// Delete removes a review of the given campground.
	Delete(ctx context.Context, campgroundID, reviewID uuid.UUID) error
}
