package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// NewApp builds the fiber application with middleware and all routes registered
func NewApp(ipoHandler *IPOHandler, toolsHandler *ToolsHandler, cacheHandler *CacheHandler, performanceHandler *PerformanceHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "ipo-pulse",
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", performanceHandler.HealthCheck)

	api := app.Group("/api/v1")

	// IPO Routes
	api.Get("/ipos", ipoHandler.GetIPOs)
	api.Get("/ipos/status", ipoHandler.GetStatus)
	api.Post("/ipos/refresh", ipoHandler.RefreshIPOs)
	api.Get("/ipos/:id", ipoHandler.GetIPOByID)

	// Calculator Routes
	tools := api.Group("/tools")
	tools.Get("/sip", toolsHandler.CalculateSIP)
	tools.Get("/lot-value", toolsHandler.LotValue)
	tools.Get("/allotment", toolsHandler.Allotment)

	// Cache Routes
	api.Get("/cache", cacheHandler.GetSnapshot)
	api.Put("/cache", cacheHandler.ImportSnapshot)

	// Performance Routes
	api.Get("/metrics", performanceHandler.GetPerformanceMetrics)

	return app
}
