package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger is anything /health should probe: the SQL pool, redis.
type Pinger func(ctx context.Context) error

type HealthHandler struct {
	checks map[string]Pinger
}

func NewHealthHandler(checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{checks: checks}
}

func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	body := map[string]any{"status": "ok"}
	code := http.StatusOK
	failed := map[string]string{}
	for name, ping := range h.checks {
		if err := ping(ctx); err != nil {
			failed[name] = err.Error()
		}
	}
	if len(failed) > 0 {
		body["status"] = "degraded"
		body["checks"] = failed
		code = http.StatusServiceUnavailable
	}
	body["time"] = time.Now().UTC().Format(time.RFC3339Nano)
	return c.JSON(code, body)
}
