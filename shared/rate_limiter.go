package shared

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// RequestThrottle enforces a minimum delay between outbound requests.
// It keeps repeated manual refreshes from burning through the generative API quota.
type RequestThrottle struct {
	minimumDelay    time.Duration
	lastRequestTime time.Time
	mutex           sync.Mutex
	requestCount    int64
}

// NewRequestThrottle creates a throttle with the specified minimum delay. A zero delay disables it.
func NewRequestThrottle(minimumDelay time.Duration) *RequestThrottle {
	return &RequestThrottle{
		minimumDelay: minimumDelay,
	}
}

// Wait blocks until the minimum delay has elapsed since the previous request or ctx is done
func (t *RequestThrottle) Wait(ctx context.Context) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if !t.lastRequestTime.IsZero() {
		elapsed := time.Since(t.lastRequestTime)
		if elapsed < t.minimumDelay {
			remaining := t.minimumDelay - elapsed

			logrus.WithFields(logrus.Fields{
				"component":       "RequestThrottle",
				"elapsed_time":    elapsed,
				"minimum_delay":   t.minimumDelay,
				"remaining_delay": remaining,
				"request_count":   t.requestCount + 1,
			}).Debug("Enforcing request throttle delay")

			timer := time.NewTimer(remaining)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
	}

	t.lastRequestTime = time.Now()
	t.requestCount++
	return nil
}

// GetRequestCount returns the total number of requests let through
func (t *RequestThrottle) GetRequestCount() int64 {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.requestCount
}

// GetLastRequestTime returns the timestamp of the last request
func (t *RequestThrottle) GetLastRequestTime() time.Time {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.lastRequestTime
}
