package handler_test

import (
    "encoding/json"
    "errors"
    "net/http"
    "net/http/httptest"
    "runtime"
    "strings"
    "sync"
    "testing"
    "time"

    "github.com/labstack/echo/v4"
    echomw "github.com/labstack/echo/v4/middleware"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/status-probe/internal/config"
    "github.com/iliyamo/status-probe/internal/handler"
    "github.com/iliyamo/status-probe/internal/metrics"
    "github.com/iliyamo/status-probe/internal/middleware"
    "github.com/iliyamo/status-probe/internal/router"
    "github.com/iliyamo/status-probe/internal/stats"
)

// newTestServer wires the full request path the way cmd/server does: error
// handler, panic recovery, counting middleware and all routes.
func newTestServer(t *testing.T) (*echo.Echo, *stats.Stats) {
    t.Helper()

    cfg := config.Config{Env: "test", Port: "8000", Branch: "main"}
    st := stats.New()
    m := metrics.New()
    h := handler.New(cfg, st)

    e := echo.New()
    e.HideBanner = true
    e.HTTPErrorHandler = handler.JSONError
    e.Use(echomw.Recover())
    e.Use(middleware.RequestStats(st, m))
    router.RegisterRoutes(e, h, m)
    return e, st
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
    req := httptest.NewRequest(http.MethodGet, path, nil)
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)
    return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
    t.Helper()
    var body map[string]any
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
    return body
}

func TestStatusPage(t *testing.T) {
    e, _ := newTestServer(t)

    rec := get(e, "/")

    require.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
    assert.Contains(t, rec.Body.String(), "Application Status")
    assert.Contains(t, rec.Body.String(), "Total Requests")
    assert.Contains(t, rec.Body.String(), "Branch: main")
}

func TestHealth(t *testing.T) {
    e, _ := newTestServer(t)

    rec := get(e, "/health")

    require.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "application/json")

    body := decode(t, rec)
    assert.Equal(t, "healthy", body["status"])
    assert.Equal(t, "1.0.0", body["version"])
    assert.GreaterOrEqual(t, body["uptime"].(float64), 0.0)

    _, err := time.Parse(time.RFC3339, body["timestamp"].(string))
    assert.NoError(t, err)
}

func TestInfo(t *testing.T) {
    e, _ := newTestServer(t)

    rec := get(e, "/api/info")

    require.Equal(t, http.StatusOK, rec.Code)
    body := decode(t, rec)
    assert.Equal(t, handler.AppName, body["app_name"])
    assert.Equal(t, handler.Version, body["version"])
    assert.Equal(t, "main", body["branch"])
    assert.Equal(t, "test", body["environment"])
    assert.NotEmpty(t, body["container_id"])
    assert.Equal(t, runtime.Version(), body["go_version"])

    start := body["start_time"].(float64)
    now := body["current_time"].(float64)
    assert.LessOrEqual(t, start, now)
}

func TestAPITest(t *testing.T) {
    e, _ := newTestServer(t)

    began := time.Now()
    rec := get(e, "/api/test")
    elapsed := time.Since(began)

    require.Equal(t, http.StatusOK, rec.Code)
    assert.GreaterOrEqual(t, elapsed, 100*time.Millisecond, "the endpoint simulates work")

    body := decode(t, rec)
    assert.Equal(t, "success", body["test"])
    assert.Equal(t, "API is working correctly", body["message"])

    n := body["random_number"].(float64)
    assert.GreaterOrEqual(t, n, 0.0)
    assert.LessOrEqual(t, n, 999.0)
}

func TestNotFound(t *testing.T) {
    e, _ := newTestServer(t)

    rec := get(e, "/nonexistent")

    require.Equal(t, http.StatusNotFound, rec.Code)
    body := decode(t, rec)
    assert.Equal(t, "Not found", body["error"])
}

func TestInternalError(t *testing.T) {
    e, _ := newTestServer(t)
    e.GET("/boom", func(c echo.Context) error {
        return errors.New("boom")
    })
    e.GET("/panic", func(c echo.Context) error {
        panic("boom")
    })

    for _, path := range []string{"/boom", "/panic"} {
        rec := get(e, path)
        require.Equal(t, http.StatusInternalServerError, rec.Code, path)
        body := decode(t, rec)
        assert.Equal(t, "Internal server error", body["error"], path)
    }
}

func TestMetricsExposition(t *testing.T) {
    e, _ := newTestServer(t)

    get(e, "/health")
    get(e, "/health")

    rec := get(e, "/metrics")

    require.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/plain")

    out := rec.Body.String()
    assert.Contains(t, out, "app_requests_total")
    assert.Contains(t, out, `app_requests_total{endpoint="/health",method="GET"} 2`)
    assert.Contains(t, out, "app_request_duration_seconds")
}

func TestConcurrentTestRequests(t *testing.T) {
    e, st := newTestServer(t)

    const n = 20
    pre := st.Count()

    var wg sync.WaitGroup
    codes := make([]int, n)
    wg.Add(n)
    for i := 0; i < n; i++ {
        go func(i int) {
            defer wg.Done()
            codes[i] = get(e, "/api/test").Code
        }(i)
    }
    wg.Wait()

    for i, code := range codes {
        assert.Equal(t, http.StatusOK, code, "request %d", i)
    }
    // No lost or duplicated increments.
    assert.Equal(t, pre+n, st.Count())
}

func TestRepeatedCallsAreIdempotent(t *testing.T) {
    e, st := newTestServer(t)

    for i := 0; i < 5; i++ {
        require.Equal(t, http.StatusOK, get(e, "/").Code)
        require.Equal(t, http.StatusOK, get(e, "/health").Code)
    }

    // Only the counters move between calls.
    assert.Equal(t, int64(10), st.Count())

    rec := get(e, "/")
    assert.True(t, strings.Contains(rec.Body.String(), "Total Requests"))
}
