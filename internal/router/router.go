package router // package router defines how HTTP routes are registered for the service

import (
    "github.com/labstack/echo/v4" // import the Echo web framework to handle routing

    "github.com/iliyamo/status-probe/internal/handler" // import the handlers that implement the endpoints
    "github.com/iliyamo/status-probe/internal/metrics" // import the Prometheus exposition handler
)

// RegisterRoutes registers every route of the service on the provided Echo
// instance.  All endpoints are unauthenticated GETs; anything else falls
// through to the central error handler as a structured 404.
func RegisterRoutes(e *echo.Echo, h *handler.Handler, m *metrics.Metrics) {
    // HTML status page with process statistics and configuration labels.
    e.GET("/", h.Status)
    // Liveness check for load balancers and orchestrators.
    e.GET("/health", h.Health)
    // Prometheus text exposition of the accumulated counters and histogram.
    e.GET("/metrics", echo.WrapHandler(m.Handler()))
    // Static and derived service metadata.
    e.GET("/api/info", h.Info)
    // Synthetic endpoint that simulates work for integration testing.
    e.GET("/api/test", h.Test)
}
