// Package metrics defines the Prometheus collectors published on /metrics.
package metrics

import (
    "net/http" // http.Handler is the exposition surface handed to the router

    "github.com/prometheus/client_golang/prometheus"          // counter and histogram primitives
    "github.com/prometheus/client_golang/prometheus/promhttp" // text exposition handler
)

// Metrics owns a private registry and the collectors registered on it.  A
// private registry keeps the collectors out of the package-global default
// registry, so each instance (one per process, one per test) is isolated.
type Metrics struct {
    registry *prometheus.Registry

    // Requests counts handled requests labelled by HTTP method and the
    // registered route path.
    Requests *prometheus.CounterVec
    // Duration observes per-request wall time in seconds.
    Duration prometheus.Histogram
}

// New builds the collectors and registers them on a fresh registry.
func New() *Metrics {
    m := &Metrics{
        registry: prometheus.NewRegistry(),
        Requests: prometheus.NewCounterVec(
            prometheus.CounterOpts{
                Name: "app_requests_total",
                Help: "Total requests",
            },
            []string{"method", "endpoint"},
        ),
        Duration: prometheus.NewHistogram(
            prometheus.HistogramOpts{
                Name: "app_request_duration_seconds",
                Help: "Request duration",
            },
        ),
    }
    m.registry.MustRegister(m.Requests, m.Duration)
    return m
}

// Handler returns the exposition handler for this instance's registry.  The
// response carries the standard Prometheus text content type.
func (m *Metrics) Handler() http.Handler {
    return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
