package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/fenilmodi00/ipo-pulse/models"
	"github.com/fenilmodi00/ipo-pulse/shared"
	"github.com/sirupsen/logrus"
)

// FetchResult is the outcome of one fetch attempt
type FetchResult struct {
	Records   []models.IPORecord
	Source    models.FeedSource
	FetchedAt time.Time
	// Dropped counts generated elements rejected by validation
	Dropped int
	// Reason is set when Source is FeedSourceFallback
	Reason *shared.ServiceError
}

// IsFallback reports whether the mock dataset was substituted
func (r FetchResult) IsFallback() bool {
	return r.Source == models.FeedSourceFallback
}

// IPOFeedService fetches IPO records from the generative service.
// A fetch never fails: any problem substitutes the mock dataset and leaves the cache untouched.
type IPOFeedService struct {
	generator TextGenerator
	cache     *CacheStore
	timeout   time.Duration
	now       func() time.Time
	metrics   *shared.ServiceMetrics
	logger    *logrus.Entry
}

// NewIPOFeedService creates a feed service. A nil generator makes every fetch fall back.
func NewIPOFeedService(generator TextGenerator, cache *CacheStore, timeout time.Duration) *IPOFeedService {
	if timeout <= 0 {
		timeout = shared.NewDefaultUnifiedConfiguration().Generator.FetchTimeout
	}

	return &IPOFeedService{
		generator: generator,
		cache:     cache,
		timeout:   timeout,
		now:       time.Now,
		metrics:   shared.NewServiceMetrics("IPO_Feed_Service"),
		logger:    logrus.WithField("component", "IPOFeedService"),
	}
}

// Fetch returns a non-empty list of records, live when possible and mock otherwise
func (s *IPOFeedService) Fetch(ctx context.Context) []models.IPORecord {
	return s.FetchWithResult(ctx).Records
}

// FetchWithResult performs one generative request and reports where the records came from
func (s *IPOFeedService) FetchWithResult(ctx context.Context) FetchResult {
	startTime := s.now()
	logger := s.logger.WithField("operation", "FetchWithResult")

	records, dropped, reason := s.fetchLive(ctx)
	if reason != nil {
		reason.LogError()
		s.metrics.RecordRequest(false, time.Since(startTime))
		s.metrics.IncrementCustomCounter("fallback_" + strings.ToLower(reason.Code))
		s.metrics.SetCustomMetric("last_fallback_code", reason.Code)

		logger.WithFields(logrus.Fields{
			"error_code":   reason.Code,
			"record_count": len(mockDataset),
		}).Warn("Serving mock dataset")

		return FetchResult{
			Records:   MockDataset(),
			Source:    models.FeedSourceFallback,
			FetchedAt: s.now(),
			Dropped:   dropped,
			Reason:    reason,
		}
	}

	fetchedAt := s.now()
	if s.cache != nil {
		if err := s.cache.Save(ctx, models.CachedSnapshot{Records: records, FetchedAt: fetchedAt}); err != nil {
			shared.WrapError(err, shared.ErrorCategoryDatabase, shared.CodeCacheWriteFailed,
				"IPOFeedService", "FetchWithResult", true).LogWarning()
			s.metrics.IncrementCustomCounter("cache_write_failures")
		}
	}

	s.metrics.RecordRequest(true, time.Since(startTime))
	s.metrics.SetCustomMetric("last_record_count", len(records))
	if dropped > 0 {
		s.metrics.IncrementCustomCounter("partial_responses")
	}

	logger.WithFields(logrus.Fields{
		"record_count":    len(records),
		"dropped_records": dropped,
		"duration":        time.Since(startTime),
	}).Info("Fetched live IPO records")

	return FetchResult{
		Records:   records,
		Source:    models.FeedSourceLive,
		FetchedAt: fetchedAt,
		Dropped:   dropped,
	}
}

func (s *IPOFeedService) fetchLive(ctx context.Context) ([]models.IPORecord, int, *shared.ServiceError) {
	if s.generator == nil {
		return nil, 0, shared.NewServiceError(shared.ErrorCategoryConfiguration, shared.CodeGeneratorUnavailable,
			"generative service is not configured", "IPOFeedService", "fetchLive", false, nil)
	}

	attemptCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.generator.Generate(attemptCtx, BuildIPOFeedPrompt(s.now()))
	if err != nil {
		if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
			return nil, 0, shared.NewServiceError(shared.ErrorCategoryTimeout, shared.CodeGeneratorTimeout,
				"generative request timed out", "IPOFeedService", "fetchLive", true, err).
				WithDetails(map[string]interface{}{"timeout": s.timeout.String()})
		}
		return nil, 0, shared.WrapError(err, shared.CategorizeTransportError(err), shared.CodeGeneratorFailed,
			"IPOFeedService", "fetchLive", true)
	}

	return ParseGeneratedRecords(text)
}

// StripCodeFences removes markdown code fence markers that models wrap JSON in
func StripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// ParseGeneratedRecords turns generated text into validated records. The second
// return value counts rejected elements.
func ParseGeneratedRecords(text string) ([]models.IPORecord, int, *shared.ServiceError) {
	if text == "" {
		return nil, 0, shared.NewServiceError(shared.ErrorCategoryValidation, shared.CodeEmptyResponse,
			"generative service returned empty text", "IPOFeedService", "ParseGeneratedRecords", true, nil)
	}

	cleaned := StripCodeFences(text)

	var payload json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, 0, shared.NewServiceError(shared.ErrorCategoryValidation, shared.CodeInvalidJSON,
			"generated text is not valid JSON", "IPOFeedService", "ParseGeneratedRecords", true, err).
			WithDetails(map[string]interface{}{"preview": preview(cleaned, 120)})
	}

	if payload[0] != '[' {
		return nil, 0, shared.NewServiceError(shared.ErrorCategoryValidation, shared.CodeNotAnArray,
			"generated JSON is not an array", "IPOFeedService", "ParseGeneratedRecords", true, nil)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(payload, &elements); err != nil {
		return nil, 0, shared.NewServiceError(shared.ErrorCategoryValidation, shared.CodeInvalidJSON,
			"failed to split generated array", "IPOFeedService", "ParseGeneratedRecords", true, err)
	}
	if len(elements) == 0 {
		return nil, 0, shared.NewServiceError(shared.ErrorCategoryValidation, shared.CodeEmptyArray,
			"generated array is empty", "IPOFeedService", "ParseGeneratedRecords", true, nil)
	}

	records, problems := ValidateRecords(elements)
	if len(records) == 0 {
		return nil, len(problems), shared.NewServiceError(shared.ErrorCategoryValidation, shared.CodeNoValidRecords,
			"no generated element passed validation", "IPOFeedService", "ParseGeneratedRecords", true, nil).
			WithDetails(problemSummary(problems, 5))
	}

	if len(problems) > 0 {
		logrus.WithFields(logrus.Fields{
			"component":       "IPOFeedService",
			"dropped_records": len(problems),
			"problems":        problemSummary(problems, 5),
		}).Warn("Dropped malformed generated records")
	}

	return records, len(problems), nil
}

func problemSummary(problems []error, limit int) []string {
	if len(problems) < limit {
		limit = len(problems)
	}
	summary := make([]string, 0, limit)
	for _, problem := range problems[:limit] {
		summary = append(summary, problem.Error())
	}
	return summary
}

func preview(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + "..."
}

// GetServiceMetrics returns the fetch metrics
func (s *IPOFeedService) GetServiceMetrics() *shared.ServiceMetrics {
	return s.metrics
}
