package models

import "time"

// CacheKey is the single persisted key holding the last successful fetch
const CacheKey = "ipo_data_cache"

// CachedSnapshot is the last successfully fetched IPO list.
// It is replaced wholesale on every successful fetch and never expires.
type CachedSnapshot struct {
	Records   []IPORecord `json:"records"`
	FetchedAt time.Time   `json:"fetched_at"`
}

// PersistedSnapshot is the stored encoding of a CachedSnapshot.
// The "data"/"timestamp" names match snapshots written by the browser dashboard.
type PersistedSnapshot struct {
	Data      []IPORecord `json:"data"`
	Timestamp int64       `json:"timestamp"`
}

// FeedSource tells where the records currently served came from
type FeedSource string

const (
	FeedSourceNone     FeedSource = "none"
	FeedSourceLive     FeedSource = "live"
	FeedSourceCache    FeedSource = "cache"
	FeedSourceFallback FeedSource = "fallback"
)
