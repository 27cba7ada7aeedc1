package shared

import (
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// ServiceMetrics tracks performance and success metrics for services
type ServiceMetrics struct {
	ServiceName           string                 `json:"service_name"`
	TotalRequests         int64                  `json:"total_requests"`
	SuccessfulRequests    int64                  `json:"successful_requests"`
	FailedRequests        int64                  `json:"failed_requests"`
	TotalProcessingTime   time.Duration          `json:"total_processing_time"`
	AverageProcessingTime time.Duration          `json:"average_processing_time"`
	LastUpdated           time.Time              `json:"last_updated"`
	CustomMetrics         map[string]interface{} `json:"custom_metrics"`
	performance           *PerformanceMetrics
	mutex                 sync.RWMutex
}

// NewServiceMetrics creates a new metrics tracker for a service
func NewServiceMetrics(serviceName string) *ServiceMetrics {
	return &ServiceMetrics{
		ServiceName:   serviceName,
		LastUpdated:   time.Now(),
		CustomMetrics: make(map[string]interface{}),
		performance:   NewPerformanceMetrics(),
	}
}

// RecordRequest records a request with its success status and processing time
func (m *ServiceMetrics) RecordRequest(success bool, processingTime time.Duration) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.TotalRequests++
	m.TotalProcessingTime += processingTime
	m.AverageProcessingTime = time.Duration(int64(m.TotalProcessingTime) / m.TotalRequests)

	if success {
		m.SuccessfulRequests++
	} else {
		m.FailedRequests++
	}

	m.LastUpdated = time.Now()
	m.performance.RecordProcessingTime(processingTime)
}

// GetSuccessRate returns the success rate as a percentage
func (m *ServiceMetrics) GetSuccessRate() float64 {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return rate(m.SuccessfulRequests, m.TotalRequests)
}

// GetFailureRate returns the failure rate as a percentage
func (m *ServiceMetrics) GetFailureRate() float64 {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return rate(m.FailedRequests, m.TotalRequests)
}

// SetCustomMetric sets a custom metric value
func (m *ServiceMetrics) SetCustomMetric(key string, value interface{}) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.CustomMetrics[key] = value
	m.LastUpdated = time.Now()
}

// IncrementCustomCounter increments a custom counter metric
func (m *ServiceMetrics) IncrementCustomCounter(key string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	counter, _ := m.CustomMetrics[key].(int64)
	m.CustomMetrics[key] = counter + 1
	m.LastUpdated = time.Now()
}

// Counter returns a custom counter, zero when it was never incremented
func (m *ServiceMetrics) Counter(key string) int64 {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	counter, _ := m.CustomMetrics[key].(int64)
	return counter
}

// MetricsSnapshot is a lock-free copy of ServiceMetrics suitable for JSON responses
type MetricsSnapshot struct {
	ServiceName           string                 `json:"service_name"`
	TotalRequests         int64                  `json:"total_requests"`
	SuccessfulRequests    int64                  `json:"successful_requests"`
	FailedRequests        int64                  `json:"failed_requests"`
	SuccessRate           float64                `json:"success_rate"`
	AverageProcessingTime string                 `json:"average_processing_time"`
	LastUpdated           time.Time              `json:"last_updated"`
	CustomMetrics         map[string]interface{} `json:"custom_metrics"`
	Performance           PerformanceSnapshot    `json:"performance"`
}

// GetSnapshot returns a thread-safe snapshot of current metrics
func (m *ServiceMetrics) GetSnapshot() MetricsSnapshot {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	customMetricsCopy := make(map[string]interface{}, len(m.CustomMetrics))
	for k, v := range m.CustomMetrics {
		customMetricsCopy[k] = v
	}

	return MetricsSnapshot{
		ServiceName:           m.ServiceName,
		TotalRequests:         m.TotalRequests,
		SuccessfulRequests:    m.SuccessfulRequests,
		FailedRequests:        m.FailedRequests,
		SuccessRate:           rate(m.SuccessfulRequests, m.TotalRequests),
		AverageProcessingTime: m.AverageProcessingTime.String(),
		LastUpdated:           m.LastUpdated,
		CustomMetrics:         customMetricsCopy,
		Performance:           m.performance.GetPerformanceSnapshot(),
	}
}

// LogSummary logs a comprehensive metrics summary
func (m *ServiceMetrics) LogSummary() {
	snapshot := m.GetSnapshot()

	logrus.WithFields(logrus.Fields{
		"service_name":            snapshot.ServiceName,
		"total_requests":          snapshot.TotalRequests,
		"successful_requests":     snapshot.SuccessfulRequests,
		"failed_requests":         snapshot.FailedRequests,
		"success_rate":            snapshot.SuccessRate,
		"average_processing_time": snapshot.AverageProcessingTime,
		"min_processing_time":     snapshot.Performance.MinProcessingTime,
		"max_processing_time":     snapshot.Performance.MaxProcessingTime,
		"p95_processing_time":     snapshot.Performance.P95ProcessingTime,
		"custom_metrics":          snapshot.CustomMetrics,
	}).Info("Service metrics summary")
}

func rate(part, total int64) float64 {
	if total == 0 {
		return 0.0
	}
	return float64(part) / float64(total) * 100.0
}

// maxPerformanceSamples bounds the window used for percentiles
const maxPerformanceSamples = 1000

// PerformanceMetrics tracks a sliding window of processing times
type PerformanceMetrics struct {
	mutex   sync.Mutex
	min     time.Duration
	max     time.Duration
	samples []time.Duration
}

// PerformanceSnapshot is the computed view of PerformanceMetrics
type PerformanceSnapshot struct {
	Samples           int           `json:"samples"`
	MinProcessingTime time.Duration `json:"min_processing_time"`
	MaxProcessingTime time.Duration `json:"max_processing_time"`
	P95ProcessingTime time.Duration `json:"p95_processing_time"`
	P99ProcessingTime time.Duration `json:"p99_processing_time"`
}

// NewPerformanceMetrics creates a new performance metrics tracker
func NewPerformanceMetrics() *PerformanceMetrics {
	return &PerformanceMetrics{
		samples: make([]time.Duration, 0, 64),
	}
}

// RecordProcessingTime adds a sample, evicting the oldest once the window is full
func (pm *PerformanceMetrics) RecordProcessingTime(duration time.Duration) {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()

	if len(pm.samples) == 0 || duration < pm.min {
		pm.min = duration
	}
	if duration > pm.max {
		pm.max = duration
	}

	if len(pm.samples) >= maxPerformanceSamples {
		pm.samples = pm.samples[1:]
	}
	pm.samples = append(pm.samples, duration)
}

// GetPerformanceSnapshot computes percentiles over the current window
func (pm *PerformanceMetrics) GetPerformanceSnapshot() PerformanceSnapshot {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()

	snapshot := PerformanceSnapshot{
		Samples:           len(pm.samples),
		MinProcessingTime: pm.min,
		MaxProcessingTime: pm.max,
	}
	if len(pm.samples) == 0 {
		return snapshot
	}

	sorted := make([]time.Duration, len(pm.samples))
	copy(sorted, pm.samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	snapshot.P95ProcessingTime = sorted[percentileIndex(len(sorted), 0.95)]
	snapshot.P99ProcessingTime = sorted[percentileIndex(len(sorted), 0.99)]
	return snapshot
}

func percentileIndex(n int, p float64) int {
	idx := int(float64(n) * p)
	if idx >= n {
		idx = n - 1
	}
	return idx
}
