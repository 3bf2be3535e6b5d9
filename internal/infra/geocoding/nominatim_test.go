package geocoding

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kampina/config"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeocoder(t *testing.T, handler http.HandlerFunc) *nominatimGeocoder {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{Geocoding: &config.GeocodingConfig{
		Endpoint:  srv.URL + "/search",
		UserAgent: "kampina-test",
		Timeout:   time.Second,
	}}

	return NewNominatimGeocoder(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*nominatimGeocoder)
}

func TestGeocode_ReturnsFirstHitAsLonLat(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "Shiraz, Fars", r.URL.Query().Get("q"))
		assert.Equal(t, "kampina-test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"lat":"29.61","lon":"52.53","display_name":"Shiraz"}]`)
	})

	results, err := g.Geocode(context.Background(), "  Shiraz, Fars ")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, orb.Point{52.53, 29.61}, results[0].Point)
	assert.Equal(t, "Shiraz", results[0].DisplayName)
}

func TestGeocode_NoResults(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})

	results, err := g.Geocode(context.Background(), "Nowhere at all")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestGeocode_EmptyQuerySkipsRequest(t *testing.T) {
	called := false
	g := newTestGeocoder(t, func(http.ResponseWriter, *http.Request) { called = true })

	results, err := g.Geocode(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.False(t, called)
}

func TestGeocode_SkipsInvalidCoordinates(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[{"lat":"x","lon":"1"},{"lat":"1.5","lon":"2.5"}]`)
	})

	results, err := g.Geocode(context.Background(), "somewhere")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, orb.Point{2.5, 1.5}, results[0].Point)
}

func TestGeocode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr string
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = io.WriteString(w, "slow down")
			},
			wantErr: "status 429: slow down",
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, `{"not":"an array"}`)
			},
			wantErr: "failed to decode geocoding response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGeocoder(t, tt.handler)

			_, err := g.Geocode(context.Background(), "somewhere")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGeocode_ContextCancelled(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Geocode(ctx, "somewhere")
	assert.Error(t, err)
}
