package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports whether one dependency is reachable.
type HealthCheck func(ctx context.Context) error

// Gauge reads one numeric status value, such as a queue depth.
type Gauge func(ctx context.Context) (int64, error)

type HealthHandler struct {
	checks map[string]HealthCheck
	gauges map[string]Gauge
}

func NewHealthHandler(checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks, gauges: map[string]Gauge{}}
}

// WithGauge adds a value reported under name. A gauge that fails is left out.
func (h *HealthHandler) WithGauge(name string, gauge Gauge) *HealthHandler {
	h.gauges[name] = gauge
	return h
}

func (h *HealthHandler) GetHealth(c *gin.Context) {
	res := gin.H{"status": "healthy"}
	code := http.StatusOK

	for name, check := range h.checks {
		if err := check(c.Request.Context()); err != nil {
			slog.Warn("health check failed", "dependency", name, "error", err)
			res[name] = "disconnected"
			res["status"] = "unhealthy"
			code = http.StatusServiceUnavailable
			continue
		}
		res[name] = "connected"
	}

	for name, gauge := range h.gauges {
		value, err := gauge(c.Request.Context())
		if err != nil {
			slog.Warn("health gauge failed", "gauge", name, "error", err)
			continue
		}
		res[name] = value
	}

	c.JSON(code, res)
}
