package repository

import (
	"context"
	"errors"

	"kampina/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCampgroundNotFound is returned when no campground has the requested ID.
var ErrCampgroundNotFound = errors.New("campground not found")

// CampgroundRepository persists campgrounds together with their ordered images.
type CampgroundRepository interface {
	// List returns every campground with its images, newest first.
	List(ctx context.Context) ([]*entity.Campground, error)

	// FindByID returns the campground with its images only.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Campground, error)

	// FindDetailByID returns the campground with its images, its author and its
	// reviews, each review carrying its author.
	FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.Campground, error)

	// Create persists the campground and its images.
	Create(ctx context.Context, campground *entity.Campground) error

	// UpdateFields overwrites title, price, location and description.
	UpdateFields(ctx context.Context, campground *entity.Campground) error

	// AppendImages adds images after the existing ones.
	AppendImages(ctx context.Context, campgroundID uuid.UUID, images []entity.Image) error

	// RemoveImages drops the images with the given storage filenames and returns
	// the ones that were actually removed.
	RemoveImages(ctx context.Context, campgroundID uuid.UUID, filenames []string) ([]entity.Image, error)

	// Delete removes the campground, its images and all of its reviews.
	// It returns the removed images so the caller can release their files.
	Delete(ctx context.Context, id uuid.UUID) ([]entity.Image, error)

	// DeleteAll removes every campground along with images and reviews.
	DeleteAll(ctx context.Context) error
}
