// Package metrics exposes Prometheus collectors for HTTP traffic and domain events.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "kampina/internal/domain/errors"
	"kampina/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// Metrics owns a dedicated registry so tests and multiple instances never collide.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	campgroundsCreated prometheus.Counter
	reviewsCreated     prometheus.Counter
	geocodeFallbacks   prometheus.Counter
}

// New creates and registers all collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_server_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status_code"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_server_requests_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status_code"},
		),
		campgroundsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "campgrounds_created_total",
			Help: "Total number of campgrounds created",
		}),
		reviewsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reviews_created_total",
			Help: "Total number of reviews created",
		}),
		geocodeFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "geocode_fallback_total",
			Help: "Campgrounds saved at the origin because geocoding found nothing",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.campgroundsCreated,
		m.reviewsCreated,
		m.geocodeFallbacks,
	)

	return m
}

// DomainMetrics exposes the business counters to the usecase layer.
func DomainMetrics(m *Metrics) service.DomainMetrics {
	return m
}

// CampgroundCreated increments campgrounds_created_total.
func (m *Metrics) CampgroundCreated() { m.campgroundsCreated.Inc() }

// ReviewCreated increments reviews_created_total.
func (m *Metrics) ReviewCreated() { m.reviewsCreated.Inc() }

// GeocodeFallback increments geocode_fallback_total.
func (m *Metrics) GeocodeFallback() { m.geocodeFallbacks.Inc() }

// Middleware records count and latency per route template.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				// The error handler has not run yet; take the status it is going to write.
				status = statusOf(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			code := strconv.Itoa(status)
			method := c.Request().Method

			m.httpRequestsTotal.WithLabelValues(method, route, code).Inc()
			m.httpRequestDuration.WithLabelValues(method, route, code).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry}))
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func statusOf(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	return http.StatusInternalServerError
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New, DomainMetrics),
)
