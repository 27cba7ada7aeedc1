//go:build ignore

package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fenilmodi00/ipo-pulse/config"
	"github.com/fenilmodi00/ipo-pulse/database"
	"github.com/fenilmodi00/ipo-pulse/services"
	"github.com/fenilmodi00/ipo-pulse/shared"
)

func main() {
	fmt.Printf("🏥 IPO Dashboard Health Check - %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Println(strings.Repeat("=", 50))

	ctx := context.Background()
	cfg := config.LoadConfig()
	settings := cfg.Settings

	healthScore := 0
	totalTests := 4

	// Test 1: Cache backend
	fmt.Printf("🗄️  Cache backend (%s): ", settings.Cache.Backend)
	var backend services.KeyValueBackend
	switch settings.Cache.Backend {
	case shared.CacheBackendPostgres:
		pg, err := database.OpenPostgres(ctx, cfg.DatabaseURL, settings.Database)
		if err != nil {
			fmt.Printf("❌ FAILED (%v)\n", err)
		} else {
			defer pg.Close()
			backend = pg
		}
	case shared.CacheBackendSQLite:
		lite, err := database.OpenSQLite(ctx, settings.Cache.Path, settings.Database)
		if err != nil {
			fmt.Printf("❌ FAILED (%v)\n", err)
		} else {
			defer lite.Close()
			backend = lite
		}
	default:
		fmt.Print("(not persistent) ")
		backend = services.NewMemoryBackend()
	}
	if backend != nil {
		fmt.Println("✅ OK")
		healthScore++
	}

	// Test 2: Cached snapshot
	fmt.Print("📦 Cached snapshot: ")
	if backend == nil {
		fmt.Println("❌ SKIPPED (no backend)")
	} else if snapshot, ok := services.NewCacheStore(backend).Load(ctx); !ok {
		fmt.Println("⚠️  NONE (next start fetches live data)")
	} else {
		fmt.Printf("✅ OK (%d IPOs, fetched %s)\n", len(snapshot.Records), humanize.Time(snapshot.FetchedAt))
		healthScore++
	}

	// Test 3: Generative service
	fmt.Printf("🤖 Gemini (%s): ", settings.Generator.Model)
	generator, err := services.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, settings.Generator,
		shared.NewHTTPClientFactory(settings.Generator.FetchTimeout).CreateOptimizedHTTPClient(settings.Generator.FetchTimeout),
		shared.NewRequestThrottle(0))
	if err != nil {
		fmt.Printf("❌ FAILED (%v)\n", err)
	} else {
		fetchCtx, cancel := context.WithTimeout(ctx, settings.Generator.FetchTimeout)
		text, err := generator.Generate(fetchCtx, services.BuildIPOFeedPrompt(time.Now()))
		cancel()
		if err != nil {
			fmt.Printf("❌ FAILED (%v)\n", err)
		} else if records, dropped, problem := services.ParseGeneratedRecords(text); problem != nil {
			fmt.Printf("❌ FAILED (%s)\n", problem.Code)
		} else {
			fmt.Printf("✅ OK (%d IPOs, %d dropped)\n", len(records), dropped)
			healthScore++
		}
	}

	// Test 4: Fallback dataset
	fmt.Print("🧪 Fallback dataset: ")
	if cards := services.BuildIPOCards(services.MockDataset()); len(cards) == 0 {
		fmt.Println("❌ FAILED (empty)")
	} else {
		fmt.Printf("✅ OK (%d IPOs)\n", len(cards))
		healthScore++
	}

	// Overall health
	fmt.Println(strings.Repeat("-", 50))
	healthPercent := float64(healthScore) / float64(totalTests) * 100

	if healthScore == totalTests {
		fmt.Printf("🎉 SYSTEM HEALTHY: %d/%d tests passed (%.0f%%)\n", healthScore, totalTests, healthPercent)
	} else if healthScore >= totalTests/2 {
		fmt.Printf("⚠️  SYSTEM DEGRADED: %d/%d tests passed (%.0f%%)\n", healthScore, totalTests, healthPercent)
	} else {
		fmt.Printf("❌ SYSTEM UNHEALTHY: %d/%d tests passed (%.0f%%)\n", healthScore, totalTests, healthPercent)
	}

	fmt.Printf("⏰ Check completed at: %s\n", time.Now().Format("15:04:05"))
}
