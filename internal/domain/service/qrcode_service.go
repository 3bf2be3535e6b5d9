package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateCampgroundQR generates a PNG QR code pointing at the campground detail page
	GenerateCampgroundQR(campgroundID uuid.UUID) ([]byte, error)
}
