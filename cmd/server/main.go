package main // Entry point package

import (
    "log" // Logging library

    "github.com/labstack/echo/v4"            // Echo web framework
    echomw "github.com/labstack/echo/v4/middleware" // Echo built-in middleware (panic recovery)

    "github.com/iliyamo/status-probe/internal/config"     // Internal config loader
    "github.com/iliyamo/status-probe/internal/handler"    // Endpoint handlers and error handler
    "github.com/iliyamo/status-probe/internal/metrics"    // Prometheus collectors
    "github.com/iliyamo/status-probe/internal/middleware" // Request counting middleware
    "github.com/iliyamo/status-probe/internal/router"     // Internal router setup
    "github.com/iliyamo/status-probe/internal/stats"      // Process-wide request statistics
)

func main() {
    cfg := config.Load() // Load environment config
    st := stats.New()    // Request counter + start timestamp
    m := metrics.New()   // Prometheus registry and collectors
    h := handler.New(cfg, st)

    e := echo.New() // Create Echo instance
    e.HideBanner = true
    e.Debug = cfg.Debug
    e.HTTPErrorHandler = handler.JSONError

    e.Use(echomw.Recover())                 // Convert handler panics into 500s
    e.Use(middleware.RequestStats(st, m))   // Count every request before handling
    router.RegisterRoutes(e, h, m)          // Register application routes

    addr := ":" + cfg.Port // Listens on all interfaces
    log.Printf("starting %s on %s (env=%s branch=%s)", handler.AppName, addr, cfg.Env, cfg.Branch)

    if err := e.Start(addr); err != nil { // Start HTTP server
        log.Fatal(err) // Log and exit if server fails
    }
}
