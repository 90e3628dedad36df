package metrics

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	return rec.Body.String()
}

func TestMetrics_Middleware(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/v1/config/public", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for range 3 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/config/public", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	body := scrape(t, m)
	assert.Contains(t, body, `tuition_http_requests_total{method="GET",route="/api/v1/config/public",status="200"} 3`)
	assert.Contains(t, body, `tuition_http_request_duration_seconds_count{method="GET",route="/api/v1/config/public"} 3`)
}

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.CacheLookup(CacheHit)
	m.CacheLookup(CacheHit)
	m.CacheLookup(CacheMiss)
	m.EventRecorded("teacher.approved", nil)
	m.EventRecorded("teacher.approved", errors.New("db down"))

	body := scrape(t, m)
	assert.Contains(t, body, `tuition_public_config_cache_lookups_total{result="hit"} 2`)
	assert.Contains(t, body, `tuition_public_config_cache_lookups_total{result="miss"} 1`)
	assert.Contains(t, body, `tuition_activity_events_total{outcome="error",type="teacher.approved"} 1`)
}

func TestMetrics_RegisterDB(t *testing.T) {
	m := New()

	// Opening does not dial; the collector only reads pool stats.
	db, err := sql.Open("pgx", "postgres://tuition@127.0.0.1:1/tuition")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, m.RegisterDB(db))

	assert.Contains(t, scrape(t, m), `go_sql_max_open_connections{db_name="postgres"} 0`)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.CacheLookup(CacheMiss)
		m.EventRecorded("config.updated", nil)
	})
}
