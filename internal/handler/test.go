package handler

import (
    "net/http" // HTTP status codes
    "time"     // sleep and timestamp derivation

    "github.com/labstack/echo/v4" // Echo framework for HTTP routing
)

// testDelay is the artificial processing time of the synthetic endpoint.
const testDelay = 100 * time.Millisecond

type testResp struct {
    Test         string `json:"test"`
    Message      string `json:"message"`
    Timestamp    string `json:"timestamp"`
    RandomNumber int    `json:"random_number"`
}

// Test is a synthetic endpoint for integration testing.  It blocks for a
// fixed 100ms to simulate work, then returns a pseudo-random value derived
// from the current time in milliseconds modulo 1000.
func (h *Handler) Test(c echo.Context) error {
    time.Sleep(testDelay)

    now := time.Now()
    return c.JSON(http.StatusOK, testResp{
        Test:         "success",
        Message:      "API is working correctly",
        Timestamp:    now.Format(time.RFC3339),
        RandomNumber: int(now.UnixMilli() % 1000),
    })
}
