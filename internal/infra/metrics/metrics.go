// Package metrics exposes the Prometheus collectors shared by the HTTP server,
// the public config cache and the activity worker.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "tuition"

// Cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Metrics owns a private registry so tests can build as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	cacheLookups   *prometheus.CounterVec
	eventsRecorded *prometheus.CounterVec
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by method and route",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "public_config_cache_lookups_total",
				Help:      "Public config cache lookups by result",
			},
			[]string{"result"},
		),
		eventsRecorded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "activity_events_total",
				Help:      "Profile events consumed by the activity worker by type and outcome",
			},
			[]string{"type", "outcome"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.cacheLookups,
		m.eventsRecorded,
	)

	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RegisterDB exports connection pool stats of db.
func (m *Metrics) RegisterDB(db *sql.DB) error {
	if m == nil {
		return nil
	}

	return m.registry.Register(collectors.NewDBStatsCollector(db, "postgres"))
}

// CacheLookup counts one public config cache lookup.
func (m *Metrics) CacheLookup(result string) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

// EventRecorded counts one consumed event.
func (m *Metrics) EventRecorded(eventType string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.eventsRecorded.WithLabelValues(eventType, outcome).Inc()
}

// Middleware records request counts and latency per matched route.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method
			m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			m.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// Module provides the shared Metrics instance.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
