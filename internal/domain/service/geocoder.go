package service

import (
	"context"

	"github.com/paulmach/orb"
)

// GeocodeResult is a single candidate returned by a forward geocoding lookup.
type GeocodeResult struct {
	Point       orb.Point // [longitude, latitude]
	DisplayName string
}

// Geocoder resolves free-text locations into coordinates.
type Geocoder interface {
	// Geocode returns zero or more candidates, best match first.
	// Zero candidates is not an error.
	Geocode(ctx context.Context, query string) ([]GeocodeResult, error)
}
