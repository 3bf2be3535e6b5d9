package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Campground is a listing created and owned by a single User.
type Campground struct {
	ID          uuid.UUID
	Title       string
	Price       float64
	Description string
	Location    string    // Human-readable location, e.g. "Shiraz, Fars".
	Geometry    orb.Point // [longitude, latitude]; the origin when geocoding found nothing.
	Images      []Image   // Ordered as uploaded.
	AuthorID    uuid.UUID // Weak reference to the owning User.
	Author      *User     // Populated on read paths only.
	Reviews     []*Review // Populated on read paths only.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOwnedBy reports whether userID is the recorded author of the campground.
func (c *Campground) IsOwnedBy(userID uuid.UUID) bool {
	return c != nil && userID != uuid.Nil && c.AuthorID == userID
}

// ImageFilenames returns the storage identifiers of all images that have one.
func (c *Campground) ImageFilenames() []string {
	filenames := make([]string, 0, len(c.Images))
	for _, img := range c.Images {
		if img.Filename != "" {
			filenames = append(filenames, img.Filename)
		}
	}

	return filenames
}

// AverageRating returns the mean review rating, or 0 when there are no reviews.
func (c *Campground) AverageRating() float64 {
	if len(c.Reviews) == 0 {
		return 0
	}

	total := 0
	for _, r := range c.Reviews {
		total += r.Rating
	}

	return float64(total) / float64(len(c.Reviews))
}

// Image references a file held by the object storage provider.
type Image struct {
	URL      string // Public URL of the stored file.
	Filename string // Storage key; required to delete the file from the provider.
}

// Thumbnail returns a URL suitable for small previews.
// Providers that support on-the-fly transforms get a width hint appended.
func (i Image) Thumbnail() string {
	if strings.Contains(i.URL, "/upload/") {
		return strings.Replace(i.URL, "/upload/", "/upload/w_200/", 1)
	}

	return i.URL
}
