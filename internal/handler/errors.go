package handler

import (
    "errors"   // errors.As unwraps framework error values
    "net/http" // HTTP status codes

    "github.com/labstack/echo/v4" // Echo framework for HTTP routing
)

// JSONError is the central HTTP error handler.  Unmatched routes become a
// structured 404 and any other handler failure (including panics recovered
// by the Recover middleware) becomes a structured 500, with the underlying
// error logged server-side.  Error bodies always carry a single `error`
// field so callers can handle failures uniformly.
func JSONError(err error, c echo.Context) {
    if c.Response().Committed {
        return
    }

    code := http.StatusInternalServerError
    var he *echo.HTTPError
    if errors.As(err, &he) {
        code = he.Code
    }

    msg := "Internal server error"
    switch {
    case code == http.StatusNotFound:
        msg = "Not found"
    case code < http.StatusInternalServerError:
        // Client errors raised by the framework (405, 400, ...) keep their
        // own message when it is a plain string.
        if s, ok := he.Message.(string); ok {
            msg = s
        } else {
            msg = http.StatusText(code)
        }
    default:
        c.Logger().Errorf("internal error: %v", err)
    }

    if err := c.JSON(code, echo.Map{"error": msg}); err != nil {
        c.Logger().Error(err)
    }
}
