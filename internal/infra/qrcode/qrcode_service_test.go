package qrcode

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://kampina.example"

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, testBaseURL)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateCampgroundQR(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL)

	qrBytes, err := service.GenerateCampgroundQR(uuid.New())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateCampgroundQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", testBaseURL)

			qrBytes, err := service.GenerateCampgroundQR(uuid.New())
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_CampgroundURL_TrimsTrailingSlash(t *testing.T) {
	svc := NewQRCodeService(256, "M", testBaseURL+"/").(*qrcodeService)
	id := uuid.New()

	assert.Equal(t, testBaseURL+"/campgrounds/"+id.String(), svc.CampgroundURL(id))
}
