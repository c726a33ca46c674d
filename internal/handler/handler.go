package handler // declare the package name; contains HTTP handlers

import (
    "github.com/iliyamo/status-probe/internal/config" // app configuration
    "github.com/iliyamo/status-probe/internal/stats"  // process-wide request statistics
)

// Static application identity reported by the status page, /health and /api/info.
const (
    AppName = "status-probe"
    Version = "1.0.0"
)

// Handler bundles the dependencies shared by all endpoints.  Configuration
// and statistics are injected at construction, keeping the handlers free of
// package-level state.
type Handler struct {
    Cfg   config.Config
    Stats *stats.Stats
}

func New(cfg config.Config, st *stats.Stats) *Handler {
    return &Handler{Cfg: cfg, Stats: st}
}
