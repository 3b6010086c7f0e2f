package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// HealthHandler serves the liveness probe.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness reports that the process is alive.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// HealthDependenciesHandler serves the readiness probe: session storage and
// the remote API must both be reachable before traffic makes sense.
type HealthDependenciesHandler struct {
	rdb        *redis.Client // nil when the memory backend is in use
	apiBaseURL string
	http       *http.Client
}

func NewHealthDependenciesHandler(rdb *redis.Client, apiBaseURL string) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{
		rdb:        rdb,
		apiBaseURL: apiBaseURL,
		http:       &http.Client{Timeout: 3 * time.Second},
	}
}

// Readiness checks each dependency with a short timeout. Any HTTP response
// from the remote API counts as reachable; its own health is not ours to
// judge.
func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	checks := map[string]string{}
	healthy := true

	if h.rdb != nil {
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			checks["redis"] = "down"
			healthy = false
		} else {
			checks["redis"] = "ok"
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.apiBaseURL, nil)
	if err == nil {
		if resp, err := h.http.Do(req); err == nil {
			resp.Body.Close()
			checks["api"] = "ok"
		} else {
			checks["api"] = "down"
			healthy = false
		}
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, checks)
}
