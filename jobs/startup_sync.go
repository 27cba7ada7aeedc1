package jobs

import (
	"context"
	"time"

	"github.com/fenilmodi00/ipo-pulse/models"
	"github.com/fenilmodi00/ipo-pulse/services"
	"github.com/sirupsen/logrus"
)

// StartupSyncJob loads the cached snapshot or performs the first fetch when the
// service boots. It runs once; there is no periodic polling.
type StartupSyncJob struct {
	Dashboard *services.Dashboard
	Timeout   time.Duration
}

func NewStartupSyncJob(dashboard *services.Dashboard, timeout time.Duration) *StartupSyncJob {
	return &StartupSyncJob{
		Dashboard: dashboard,
		Timeout:   timeout,
	}
}

// Start runs the job in the background. The returned channel is closed when it finishes.
func (j *StartupSyncJob) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		j.Run(ctx)
	}()
	return done
}

// Run performs the startup sync and blocks until it completes
func (j *StartupSyncJob) Run(ctx context.Context) models.FeedSource {
	logrus.WithField("component", "StartupSyncJob").Info("Starting startup sync")
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(ctx, j.Timeout)
	defer cancel()

	source := j.Dashboard.Init(ctx)
	records := j.Dashboard.GetRecords()
	population := analyzeFieldPopulation(records)

	entry := logrus.WithFields(logrus.Fields{
		"component":         "StartupSyncJob",
		"source":            source,
		"record_count":      len(records),
		"duration":          time.Since(startTime),
		"with_price_band":   population.PriceBand,
		"with_lot_size":     population.LotSize,
		"with_subscription": population.Subscription,
		"closed_with_gain":  population.ListingGain,
	})

	if reason := j.Dashboard.LastFallbackReason(); reason != nil {
		entry.WithField("fallback_code", reason.Code).Warn("Startup sync finished on mock data")
		return source
	}

	entry.Info("Startup sync completed")
	return source
}

// fieldPopulation counts how many records carry the fields cards rely on
type fieldPopulation struct {
	PriceBand    int
	LotSize      int
	Subscription int
	ListingGain  int
}

func analyzeFieldPopulation(records []models.IPORecord) fieldPopulation {
	var population fieldPopulation
	for _, record := range records {
		if !record.PriceBand.IsNull() {
			population.PriceBand++
		}
		if !record.LotSize.IsNull() {
			population.LotSize++
		}
		if !record.Subscription.IsNull() {
			population.Subscription++
		}
		if record.IsClosed() && !record.ListingGain.IsNull() {
			population.ListingGain++
		}
	}
	return population
}
