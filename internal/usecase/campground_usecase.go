package usecase

import (
	"context"
	"io"

	"kampina/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// ImageUpload is a file received from a multipart form.
type ImageUpload struct {
	Filename    string
	ContentType string
	Open        func() (io.ReadCloser, error)
}

// CampgroundFields are the user-editable attributes of a campground.
type CampgroundFields struct {
	Title       string
	Price       float64
	Location    string
	Description string
}

// CreateCampgroundInput defines the data required to create a campground.
type CreateCampgroundInput struct {
	CampgroundFields
	AuthorID uuid.UUID
	Images   []ImageUpload
}

// UpdateCampgroundInput defines an edit of an existing campground.
type UpdateCampgroundInput struct {
	CampgroundFields
	ID           uuid.UUID
	Images       []ImageUpload
	DeleteImages []string // Storage filenames to remove.
}

// CampgroundUsecase defines the listing operations.
type CampgroundUsecase interface {
	List(ctx context.Context) ([]*entity.Campground, error)

	// ClusterMap returns every campground as a GeoJSON point feature.
	ClusterMap(ctx context.Context) (*geojson.FeatureCollection, error)

	// Get returns the populated detail view. Missing yields ErrCampgroundNotFound.
	Get(ctx context.Context, id uuid.UUID) (*entity.Campground, error)

	// Find returns the campground without reviews. Missing yields ErrCampgroundNotFound.
	Find(ctx context.Context, id uuid.UUID) (*entity.Campground, error)

	Create(ctx context.Context, input *CreateCampgroundInput) (*entity.Campground, error)
	Update(ctx context.Context, input *UpdateCampgroundInput) (*entity.Campground, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ShareQRCode renders a PNG QR code linking to the campground page.
	ShareQRCode(ctx context.Context, id uuid.UUID) ([]byte, error)
}
