package handler

import (
    "net/http" // net/http provides status codes and response helpers
    "time"     // time formats the liveness timestamp

    "github.com/labstack/echo/v4" // echo is the web framework used for this project
)

type healthResp struct {
    Status    string  `json:"status"`
    Timestamp string  `json:"timestamp"`
    Uptime    float64 `json:"uptime"`
    Version   string  `json:"version"`
}

// Health is the liveness endpoint used by load balancers, container
// orchestrators and monitoring systems to verify that the service is running.
// It always reports "healthy" while the process can respond at all; uptime is
// seconds since process start.
func (h *Handler) Health(c echo.Context) error {
    return c.JSON(http.StatusOK, healthResp{
        Status:    "healthy",
        Timestamp: time.Now().Format(time.RFC3339),
        Uptime:    h.Stats.Uptime(),
        Version:   Version,
    })
}
