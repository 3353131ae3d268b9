package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestOperation_Counts(t *testing.T) {
	t.Parallel()
	m := New()
	m.Operation("product", "create", "ok")
	m.Operation("product", "create", "ok")
	m.Operation("user", "get", "not_found")

	body := scrape(t, m)
	assert.Contains(t, body, `panel_service_operations_total{kind="product",op="create",outcome="ok"} 2`)
	assert.Contains(t, body, `panel_service_operations_total{kind="user",op="get",outcome="not_found"} 1`)
}

func TestMiddleware_RecordsRoute(t *testing.T) {
	t.Parallel()
	m := New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/v1/products/:id", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "Product not found.")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/p-9", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := scrape(t, m)
	assert.Contains(t, body, `panel_http_requests_total{method="GET",route="/api/v1/products/:id",status="404"} 1`)
}

func TestNilMetrics(t *testing.T) {
	t.Parallel()
	var m *Metrics
	assert.NotPanics(t, func() { m.Operation("product", "list", "ok") })
}
