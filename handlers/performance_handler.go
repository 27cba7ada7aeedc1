package handlers

import (
	"context"
	"time"

	"github.com/fenilmodi00/ipo-pulse/services"
	"github.com/gofiber/fiber/v2"
)

// HealthChecker is implemented by the persistent cache backends
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type PerformanceHandler struct {
	Feed      *services.IPOFeedService
	Dashboard *services.Dashboard
	Backend   HealthChecker
}

func NewPerformanceHandler(feed *services.IPOFeedService, dashboard *services.Dashboard, backend HealthChecker) *PerformanceHandler {
	return &PerformanceHandler{
		Feed:      feed,
		Dashboard: dashboard,
		Backend:   backend,
	}
}

// GetPerformanceMetrics returns fetch pipeline metrics and cache backend health
func (h *PerformanceHandler) GetPerformanceMetrics(c *fiber.Ctx) error {
	metrics := make(map[string]interface{})

	feedMetrics := h.Feed.GetServiceMetrics()
	metrics["feed"] = feedMetrics.GetSnapshot()
	metrics["feed_failure_rate"] = feedMetrics.GetFailureRate()
	metrics["dashboard"] = h.Dashboard.Status()
	metrics["cache_backend"] = h.backendHealth(c.UserContext())

	return c.JSON(fiber.Map{
		"success":   true,
		"data":      metrics,
		"timestamp": time.Now().Unix(),
	})
}

// HealthCheck reports liveness. The service stays healthy without a cache backend
// because the dashboard can always serve mock data.
func (h *PerformanceHandler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":        "ok",
		"timestamp":     time.Now().Unix(),
		"source":        h.Dashboard.Source(),
		"cache_backend": h.backendHealth(c.UserContext()),
	})
}

func (h *PerformanceHandler) backendHealth(ctx context.Context) map[string]interface{} {
	if h.Backend == nil {
		return map[string]interface{}{"healthy": true, "persistent": false}
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	start := time.Now()
	err := h.Backend.HealthCheck(ctx)
	health := map[string]interface{}{
		"healthy":     err == nil,
		"persistent":  true,
		"duration_ms": time.Since(start).Milliseconds(),
	}
	if err != nil {
		health["error"] = err.Error()
	}
	return health
}
