package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "kampina/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_DomainCounters(t *testing.T) {
	m := New()

	m.CampgroundCreated()
	m.CampgroundCreated()
	m.ReviewCreated()
	m.GeocodeFallback()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.campgroundsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reviewsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.geocodeFallbacks))
}

func TestMetrics_Middleware(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/campgrounds/:id", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/boom", func(echo.Context) error {
		return domainerrors.ErrForbidden
	})

	for _, target := range []string{"/campgrounds/a", "/campgrounds/b", "/boom", "/nowhere"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/campgrounds/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/boom", "403")))
	assert.GreaterOrEqual(t, testutil.CollectAndCount(m.httpRequestDuration), 2)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ReviewCreated()

	e := echo.New()
	e.GET("/metrics", m.Handler())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "reviews_created_total 1"))
}
