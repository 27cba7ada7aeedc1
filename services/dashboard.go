package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fenilmodi00/ipo-pulse/models"
	"github.com/fenilmodi00/ipo-pulse/shared"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// RecordFetcher performs a fetch attempt
type RecordFetcher interface {
	FetchWithResult(ctx context.Context) FetchResult
}

// SnapshotLoader reads the persisted snapshot
type SnapshotLoader interface {
	Load(ctx context.Context) (*models.CachedSnapshot, bool)
}

// Dashboard is the read model served to renderers. It holds the current record
// list and the time it was obtained.
type Dashboard struct {
	feed  RecordFetcher
	cache SnapshotLoader
	group singleflight.Group
	now   func() time.Time

	mutex       sync.RWMutex
	records     []models.IPORecord
	lastUpdated time.Time
	source      models.FeedSource
	lastReason  *shared.ServiceError
	refreshes   int64
}

// DashboardStatus summarizes what the dashboard is currently serving
type DashboardStatus struct {
	RecordCount      int                      `json:"record_count"`
	CountsByStatus   map[models.IPOStatus]int `json:"counts_by_status"`
	Source           models.FeedSource        `json:"source"`
	LastUpdated      *time.Time               `json:"last_updated"`
	LastUpdatedLabel string                   `json:"last_updated_label"`
	Refreshes        int64                    `json:"refreshes"`
	FallbackReason   *shared.ServiceError     `json:"fallback_reason,omitempty"`
	RetryAdvised     bool                     `json:"retry_advised"`
}

// NewDashboard creates an empty dashboard. Call Init before serving.
func NewDashboard(feed RecordFetcher, cache SnapshotLoader) *Dashboard {
	return &Dashboard{
		feed:   feed,
		cache:  cache,
		now:    time.Now,
		source: models.FeedSourceNone,
	}
}

// Init serves the cached snapshot when one exists and fetches otherwise
func (d *Dashboard) Init(ctx context.Context) models.FeedSource {
	logger := logrus.WithFields(logrus.Fields{
		"component": "Dashboard",
		"operation": "Init",
	})

	if d.Reload(ctx) {
		return models.FeedSourceCache
	}

	logger.Info("No usable snapshot, fetching")
	return d.Refresh(ctx).Source
}

// Reload replaces the served records with the cached snapshot.
// It reports false and leaves the current records alone when no usable snapshot exists.
func (d *Dashboard) Reload(ctx context.Context) bool {
	if d.cache == nil {
		return false
	}
	snapshot, ok := d.cache.Load(ctx)
	if !ok {
		return false
	}

	d.mutex.Lock()
	d.records = models.CloneRecords(snapshot.Records)
	d.lastUpdated = snapshot.FetchedAt
	d.source = models.FeedSourceCache
	d.lastReason = nil
	d.mutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"component":    "Dashboard",
		"record_count": len(snapshot.Records),
		"fetched_at":   snapshot.FetchedAt,
	}).Info("Serving cached snapshot")
	return true
}

// Refresh fetches new records. Concurrent callers share a single in-flight fetch.
// The shared fetch keeps the starting caller's values but not its cancellation,
// so it is bounded by the feed timeout alone.
func (d *Dashboard) Refresh(ctx context.Context) FetchResult {
	fetchCtx := context.WithoutCancel(ctx)
	value, _, joined := d.group.Do("refresh", func() (interface{}, error) {
		result := d.feed.FetchWithResult(fetchCtx)
		d.apply(result)
		return result, nil
	})

	result := value.(FetchResult)
	result.Records = models.CloneRecords(result.Records)

	logrus.WithFields(logrus.Fields{
		"component":    "Dashboard",
		"operation":    "Refresh",
		"source":       result.Source,
		"record_count": len(result.Records),
		"shared":       joined,
	}).Debug("Refresh completed")

	return result
}

func (d *Dashboard) apply(result FetchResult) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.records = models.CloneRecords(result.Records)
	d.lastUpdated = result.FetchedAt
	d.source = result.Source
	d.lastReason = result.Reason
	d.refreshes++
}

// GetRecords returns a copy of the records currently served
func (d *Dashboard) GetRecords() []models.IPORecord {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return models.CloneRecords(d.records)
}

// GetRecord looks a record up by id
func (d *Dashboard) GetRecord(id string) (models.IPORecord, bool) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	for _, record := range d.records {
		if record.ID == id {
			return record, true
		}
	}
	return models.IPORecord{}, false
}

// GetLastUpdated returns when the served records were obtained
func (d *Dashboard) GetLastUpdated() (time.Time, bool) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.lastUpdated, !d.lastUpdated.IsZero()
}

// Source reports where the served records came from
func (d *Dashboard) Source() models.FeedSource {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.source
}

// LastFallbackReason is the error behind the current fallback, nil when serving real data
func (d *Dashboard) LastFallbackReason() *shared.ServiceError {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.lastReason
}

// Filter selects records by status tab and board type. Empty values and "all" match everything.
func (d *Dashboard) Filter(status, ipoType string) ([]models.IPORecord, error) {
	var wantStatus models.IPOStatus
	if !matchesAll(status) {
		parsed, ok := ParseIPOStatus(status)
		if !ok {
			return nil, fmt.Errorf("unknown status %q", status)
		}
		wantStatus = parsed
	}

	var wantType models.IPOType
	if !matchesAll(ipoType) {
		parsed, ok := ParseIPOType(ipoType)
		if !ok {
			return nil, fmt.Errorf("unknown type %q", ipoType)
		}
		wantType = parsed
	}

	d.mutex.RLock()
	defer d.mutex.RUnlock()

	filtered := make([]models.IPORecord, 0, len(d.records))
	for _, record := range d.records {
		if wantStatus != "" && record.Status != wantStatus {
			continue
		}
		if wantType != "" && record.Type != wantType {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered, nil
}

// retryAdvised reports whether a refresh could replace the fallback with live data
func retryAdvised(reason *shared.ServiceError) bool {
	if reason == nil {
		return false
	}
	return shared.IsRetryableError(reason)
}

func matchesAll(value string) bool {
	value = strings.TrimSpace(value)
	return value == "" || strings.EqualFold(value, "all")
}

// Status summarizes the served data
func (d *Dashboard) Status() DashboardStatus {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	status := DashboardStatus{
		RecordCount:      len(d.records),
		CountsByStatus:   make(map[models.IPOStatus]int, 3),
		Source:           d.source,
		LastUpdatedLabel: "never",
		Refreshes:        d.refreshes,
		FallbackReason:   d.lastReason,
		RetryAdvised:     retryAdvised(d.lastReason),
	}

	for _, record := range d.records {
		status.CountsByStatus[record.Status]++
	}

	if !d.lastUpdated.IsZero() {
		lastUpdated := d.lastUpdated
		status.LastUpdated = &lastUpdated
		status.LastUpdatedLabel = humanize.RelTime(lastUpdated, d.now(), "ago", "from now")
	}

	return status
}
