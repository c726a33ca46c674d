package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "time" // time measures per-request duration for the histogram

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/iliyamo/status-probe/internal/metrics" // Prometheus collectors
    "github.com/iliyamo/status-probe/internal/stats"   // process-wide request counter
)

// RequestStats returns an Echo middleware that records every inbound request
// before the handler runs: the global request counter is always incremented,
// and the labelled Prometheus counter is incremented for every route except
// the exposition endpoint itself, so scrapes do not inflate the per-endpoint
// series.  Request duration is observed after the handler returns.
func RequestStats(st *stats.Stats, m *metrics.Metrics) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            st.Inc()
            // c.Path() is the registered route pattern, which keeps the
            // label cardinality bounded even for unmatched paths.
            if p := c.Path(); p != "/metrics" {
                m.Requests.WithLabelValues(c.Request().Method, p).Inc()
            }

            start := time.Now()
            err := next(c)
            m.Duration.Observe(time.Since(start).Seconds())
            return err
        }
    }
}
