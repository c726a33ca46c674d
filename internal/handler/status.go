package handler

import (
    "bytes"         // buffer for template execution
    "html/template" // html/template renders the status page with escaping
    "net/http"      // HTTP status codes
    "time"          // current-time display

    "github.com/labstack/echo/v4" // Echo framework for HTTP routing
)

// statusPage is the typed view model for the home page.  Rendering goes
// through html/template rather than string concatenation so every value is
// escaped.
type statusPage struct {
    Title       string
    CurrentTime string
    Uptime      float64
    Requests    int64
    Branch      string
    Environment string
}

var statusTmpl = template.Must(template.New("status").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>{{.Title}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; }
        .container { max-width: 800px; margin: 0 auto; }
        .status { padding: 20px; background: #f0f8ff; border-radius: 5px; }
        .metric { margin: 10px 0; }
        .success { color: #28a745; }
        .info { color: #17a2b8; }
    </style>
</head>
<body>
    <div class="container">
        <h1>{{.Title}}</h1>
        <div class="status">
            <h2>Application Status</h2>
            <div class="metric success">Status: Running</div>
            <div class="metric info">Current Time: {{.CurrentTime}}</div>
            <div class="metric info">Uptime: {{printf "%.2f" .Uptime}} seconds</div>
            <div class="metric info">Total Requests: {{.Requests}}</div>
            <div class="metric info">Branch: {{.Branch}}</div>
            <div class="metric info">Environment: {{.Environment}}</div>
        </div>

        <h2>Available Endpoints</h2>
        <ul>
            <li><a href="/health">Health Check</a></li>
            <li><a href="/metrics">Prometheus Metrics</a></li>
            <li><a href="/api/info">API Info</a></li>
            <li><a href="/api/test">API Test</a></li>
        </ul>

        <h2>Integration Features</h2>
        <ul>
            <li>Container health checks</li>
            <li>Prometheus metrics collection</li>
            <li>Environment-based configuration</li>
            <li>Reverse proxy friendly</li>
        </ul>
    </div>
</body>
</html>
`))

// Status renders the HTML home page with the current process statistics and
// configuration labels.
func (h *Handler) Status(c echo.Context) error {
    page := statusPage{
        Title:       AppName,
        CurrentTime: time.Now().Format("2006-01-02 15:04:05"),
        Uptime:      h.Stats.Uptime(),
        Requests:    h.Stats.Count(),
        Branch:      h.Cfg.Branch,
        Environment: h.Cfg.Env,
    }

    var buf bytes.Buffer
    if err := statusTmpl.Execute(&buf, page); err != nil {
        return err
    }
    return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
