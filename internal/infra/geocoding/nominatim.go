// Package geocoding resolves free-text locations through a Nominatim-compatible search API.
package geocoding

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"kampina/config"
	"kampina/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const maxErrorBodyBytes = 512

// nominatimGeocoder implements service.Geocoder against the Nominatim search endpoint.
type nominatimGeocoder struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// searchResult is the subset of a Nominatim search hit that is used.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NewNominatimGeocoder creates a geocoder from the geocoding config section
func NewNominatimGeocoder(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	return &nominatimGeocoder{
		endpoint:  cfg.Geocoding.Endpoint,
		userAgent: cfg.Geocoding.UserAgent,
		httpClient: &http.Client{
			Timeout: cfg.Geocoding.Timeout,
		},
		logger: logger,
	}
}

// Geocode returns the candidates for query, best match first.
func (g *nominatimGeocoder) Geocode(ctx context.Context, query string) ([]service.GeocodeResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	reqURL, err := g.searchURL(query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if g.userAgent != "" {
		// Nominatim's usage policy requires an identifying User-Agent.
		req.Header.Set("User-Agent", g.userAgent)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "geocoding request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return nil, errors.Errorf("geocoding returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var hits []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&hits); err != nil {
		return nil, errors.Wrap(err, "failed to decode geocoding response")
	}

	results := make([]service.GeocodeResult, 0, len(hits))
	for _, hit := range hits {
		lon, lonErr := strconv.ParseFloat(hit.Lon, 64)
		lat, latErr := strconv.ParseFloat(hit.Lat, 64)
		if lonErr != nil || latErr != nil {
			g.logger.WarnContext(ctx, "Skipping geocoding hit with invalid coordinates",
				slog.String("lat", hit.Lat),
				slog.String("lon", hit.Lon),
			)

			continue
		}
		results = append(results, service.GeocodeResult{
			Point:       orb.Point{lon, lat},
			DisplayName: hit.DisplayName,
		})
	}

	g.logger.DebugContext(ctx, "Geocoded location",
		slog.String("query", query),
		slog.Int("results", len(results)),
	)

	return results, nil
}

func (g *nominatimGeocoder) searchURL(query string) (string, error) {
	u, err := url.Parse(g.endpoint)
	if err != nil {
		return "", errors.Wrap(err, "invalid geocoding endpoint")
	}

	params := u.Query()
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", "1")
	u.RawQuery = params.Encode()

	return u.String(), nil
}
