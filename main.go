package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fenilmodi00/ipo-pulse/config"
	"github.com/fenilmodi00/ipo-pulse/database"
	"github.com/fenilmodi00/ipo-pulse/handlers"
	"github.com/fenilmodi00/ipo-pulse/jobs"
	"github.com/fenilmodi00/ipo-pulse/services"
	"github.com/fenilmodi00/ipo-pulse/shared"
	"github.com/sirupsen/logrus"
)

// cacheBackend is what main needs from a storage backend
type cacheBackend interface {
	services.KeyValueBackend
	HealthCheck(ctx context.Context) error
	Close() error
}

func main() {
	// Load config
	cfg := config.LoadConfig()
	config.SetupLogging(cfg.Settings.Logging)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, cfg)
	stop()

	if err != nil {
		logrus.WithError(err).Error("Server stopped with error")
		os.Exit(1)
	}
}

// run serves until ctx is cancelled or the listener fails. Backends and
// clients opened here are released before it returns.
func run(ctx context.Context, cfg *config.Config) error {
	settings := cfg.Settings
	logger := logrus.WithField("service", settings.Logging.ServiceName)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Cache backend
	var backend services.KeyValueBackend
	var healthChecker handlers.HealthChecker

	persistent, err := openCacheBackend(ctx, cfg)
	if err != nil {
		logger.WithError(err).Errorf("Failed to open %s cache backend, using in-memory cache", settings.Cache.Backend)
		backend = services.NewMemoryBackend()
	} else if persistent == nil {
		backend = services.NewMemoryBackend()
	} else {
		defer persistent.Close()
		backend = persistent
		healthChecker = persistent
	}
	cacheStore := services.NewCacheStore(backend)

	// Generative service
	httpClientFactory := shared.NewHTTPClientFactory(settings.Generator.FetchTimeout)
	defer httpClientFactory.CleanupAllClients()

	var generator services.TextGenerator
	gemini, err := services.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, settings.Generator,
		httpClientFactory.CreateOptimizedHTTPClient(settings.Generator.FetchTimeout),
		shared.NewRequestThrottle(settings.Generator.MinInterval))
	if err != nil {
		logger.WithError(err).Warn("Generative service unavailable, every fetch will serve mock data")
	} else {
		generator = gemini
	}

	feedService := services.NewIPOFeedService(generator, cacheStore, settings.Generator.FetchTimeout)
	defer feedService.GetServiceMetrics().LogSummary()
	dashboard := services.NewDashboard(feedService, cacheStore)

	logger.WithFields(logrus.Fields{
		"model":         settings.Generator.Model,
		"fetch_timeout": settings.Generator.FetchTimeout,
		"cache_backend": settings.Cache.Backend,
		"json_mode":     settings.Generator.JSONMode,
	}).Info("IPO dashboard services initialized")

	// Load the snapshot or fetch once, in the background so the server starts immediately
	startupJob := jobs.NewStartupSyncJob(dashboard, settings.Generator.FetchTimeout+10*time.Second)
	startupJob.Start(ctx)

	// Handlers
	ipoHandler := handlers.NewIPOHandler(dashboard)
	toolsHandler := handlers.NewToolsHandler()
	cacheHandler := handlers.NewCacheHandler(cacheStore, dashboard)
	performanceHandler := handlers.NewPerformanceHandler(feedService, dashboard, healthChecker)

	app := handlers.NewApp(ipoHandler, toolsHandler, cacheHandler, performanceHandler)

	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-ctx.Done():
		case <-stopped:
			return
		}
		logger.Info("Shutting down server")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.WithError(err).Error("Server shutdown failed")
		}
	}()

	// Start server
	logger.Infof("Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		return fmt.Errorf("server failed to start: %w", err)
	}
	return nil
}

// openCacheBackend returns nil without error for the in-memory backend
func openCacheBackend(ctx context.Context, cfg *config.Config) (cacheBackend, error) {
	settings := cfg.Settings

	switch settings.Cache.Backend {
	case shared.CacheBackendPostgres:
		backend, err := database.OpenPostgres(ctx, cfg.DatabaseURL, settings.Database)
		if err != nil {
			return nil, err
		}
		return backend, nil
	case shared.CacheBackendSQLite:
		backend, err := database.OpenSQLite(ctx, settings.Cache.Path, settings.Database)
		if err != nil {
			return nil, err
		}
		return backend, nil
	default:
		return nil, nil
	}
}
