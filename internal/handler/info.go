package handler

import (
    "net/http" // HTTP status codes
    "os"       // os resolves the hostname used as the container id
    "runtime"  // runtime reports the Go toolchain version
    "time"     // unix timestamps for start/current time

    "github.com/labstack/echo/v4" // Echo framework for HTTP routing
)

type infoResp struct {
    AppName     string  `json:"app_name"`
    Version     string  `json:"version"`
    Branch      string  `json:"branch"`
    Environment string  `json:"environment"`
    ContainerID string  `json:"container_id"`
    GoVersion   string  `json:"go_version"`
    StartTime   float64 `json:"start_time"`
    CurrentTime float64 `json:"current_time"`
}

// Info reports static and derived service metadata.  The container id is the
// hostname, which inside a container is the container id; outside one it is
// simply the machine's hostname.
func (h *Handler) Info(c echo.Context) error {
    host, err := os.Hostname()
    if err != nil {
        host = "unknown"
    }
    return c.JSON(http.StatusOK, infoResp{
        AppName:     AppName,
        Version:     Version,
        Branch:      h.Cfg.Branch,
        Environment: h.Cfg.Env,
        ContainerID: host,
        GoVersion:   runtime.Version(),
        StartTime:   unixSeconds(h.Stats.StartTime()),
        CurrentTime: unixSeconds(time.Now()),
    })
}

// unixSeconds converts a time to fractional unix seconds.
func unixSeconds(t time.Time) float64 {
    return float64(t.UnixNano()) / float64(time.Second)
}
