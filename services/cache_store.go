package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/fenilmodi00/ipo-pulse/models"
	"github.com/fenilmodi00/ipo-pulse/shared"
	"github.com/sirupsen/logrus"
)

// KeyValueBackend is the durable storage behind the snapshot cache
type KeyValueBackend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}

// CacheStore persists the last successful fetch under a single key.
// There is no expiry: a snapshot stays valid until the next successful fetch replaces it.
type CacheStore struct {
	backend KeyValueBackend
	now     func() time.Time
}

// NewCacheStore creates a cache store over the given backend
func NewCacheStore(backend KeyValueBackend) *CacheStore {
	return &CacheStore{
		backend: backend,
		now:     time.Now,
	}
}

// Load returns the persisted snapshot. Unreadable or malformed data is treated as a
// cold start: it is logged and reported as absent rather than returned as an error.
func (c *CacheStore) Load(ctx context.Context) (*models.CachedSnapshot, bool) {
	logger := logrus.WithFields(logrus.Fields{
		"component": "CacheStore",
		"operation": "Load",
		"key":       models.CacheKey,
	})

	payload, found, err := c.backend.Get(ctx, models.CacheKey)
	if err != nil {
		shared.WrapError(err, shared.ErrorCategoryDatabase, shared.CodeCacheReadFailed, "CacheStore", "Load", true).LogWarning()
		return nil, false
	}
	if !found {
		logger.Debug("No cached snapshot present")
		return nil, false
	}

	snapshot, err := c.decode(payload)
	if err != nil {
		shared.NewServiceError(shared.ErrorCategoryValidation, shared.CodeCacheReadFailed,
			"cached snapshot is unreadable", "CacheStore", "Load", false, err).LogWarning()
		return nil, false
	}

	logger.WithFields(logrus.Fields{
		"record_count": len(snapshot.Records),
		"fetched_at":   snapshot.FetchedAt,
	}).Info("Loaded cached snapshot")

	return snapshot, true
}

func (c *CacheStore) decode(payload []byte) (*models.CachedSnapshot, error) {
	var envelope struct {
		Data      json.RawMessage `json:"data"`
		Timestamp json.RawMessage `json:"timestamp"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	data := bytes.TrimSpace(envelope.Data)
	if len(data) == 0 || data[0] != '[' {
		return nil, fmt.Errorf("snapshot data is not an array")
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot data: %w", err)
	}

	records, problems := ValidateRecords(elements)
	if len(problems) > 0 {
		logrus.WithFields(logrus.Fields{
			"component":       "CacheStore",
			"dropped_records": len(problems),
			"first_problem":   problems[0].Error(),
		}).Warn("Dropped malformed records from cached snapshot")
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("snapshot holds no usable records")
	}

	return &models.CachedSnapshot{
		Records:   records,
		FetchedAt: c.decodeTimestamp(envelope.Timestamp),
	}, nil
}

// decodeTimestamp reads epoch milliseconds; a missing or unusable timestamp means "now"
func (c *CacheStore) decodeTimestamp(raw json.RawMessage) time.Time {
	var millis json.Number
	if err := json.Unmarshal(raw, &millis); err != nil {
		return c.now()
	}
	value, err := millis.Float64()
	if err != nil || value == 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return c.now()
	}
	return time.UnixMilli(int64(value))
}

// Import validates a snapshot in persisted form, such as one exported from the browser
// dashboard's local storage, and stores it in normalized form
func (c *CacheStore) Import(ctx context.Context, payload []byte) (*models.CachedSnapshot, error) {
	snapshot, err := c.decode(payload)
	if err != nil {
		return nil, shared.NewServiceError(shared.ErrorCategoryValidation, shared.CodeInvalidSnapshot,
			err.Error(), "CacheStore", "Import", false, err)
	}
	if err := c.Save(ctx, *snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Save overwrites the persisted snapshot
func (c *CacheStore) Save(ctx context.Context, snapshot models.CachedSnapshot) error {
	records := snapshot.Records
	if records == nil {
		records = []models.IPORecord{}
	}

	payload, err := json.Marshal(models.PersistedSnapshot{
		Data:      records,
		Timestamp: snapshot.FetchedAt.UnixMilli(),
	})
	if err != nil {
		return shared.NewServiceError(shared.ErrorCategoryProcessing, shared.CodeCacheWriteFailed,
			"failed to encode snapshot", "CacheStore", "Save", false, err)
	}

	if err := c.backend.Put(ctx, models.CacheKey, payload); err != nil {
		return shared.WrapError(err, shared.ErrorCategoryDatabase, shared.CodeCacheWriteFailed, "CacheStore", "Save", true)
	}

	logrus.WithFields(logrus.Fields{
		"component":    "CacheStore",
		"operation":    "Save",
		"record_count": len(records),
		"bytes":        len(payload),
	}).Debug("Saved snapshot")

	return nil
}

// MemoryBackend keeps values in process memory. Used for tests and CACHE_BACKEND=memory.
type MemoryBackend struct {
	mutex  sync.RWMutex
	values map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		values: make(map[string][]byte),
	}
}

// Get returns a copy of the stored value
func (m *MemoryBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	value, exists := m.values[key]
	if !exists {
		return nil, false, nil
	}
	return bytes.Clone(value), true, nil
}

// Put stores a copy of value under key
func (m *MemoryBackend) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.values[key] = bytes.Clone(value)
	return nil
}

// Size returns the number of stored keys
func (m *MemoryBackend) Size() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.values)
}
