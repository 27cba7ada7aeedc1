package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fenilmodi00/ipo-pulse/models"
	"github.com/fenilmodi00/ipo-pulse/shared"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sentinelSnapshot = `{"data":[{"id":"sentinel","companyName":"Sentinel Ltd","type":"SME","status":"Closed"}],"timestamp":1}`

func newSeededBackend(t *testing.T) *MemoryBackend {
	t.Helper()
	backend := NewMemoryBackend()
	require.NoError(t, backend.Put(context.Background(), models.CacheKey, []byte(sentinelSnapshot)))
	return backend
}

func TestFetchLiveRecordsAreCached(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	store := NewCacheStore(backend)
	generator := &stubGenerator{text: "```json\n" + twoRecordResponse + "\n```"}

	service := NewIPOFeedService(generator, store, time.Second)
	fetchedAt := time.Date(2026, time.January, 26, 8, 0, 0, 0, time.UTC)
	service.now = fixedClock(fetchedAt)

	result := service.FetchWithResult(ctx)

	assert.Equal(t, models.FeedSourceLive, result.Source)
	assert.Nil(t, result.Reason)
	assert.Equal(t, fetchedAt, result.FetchedAt)
	require.Len(t, result.Records, 2)
	assert.Equal(t, "Shree Cement Works", result.Records[0].CompanyName)
	assert.Equal(t, int32(1), generator.calls.Load())

	snapshot, ok := store.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, result.Records, snapshot.Records)
	assert.True(t, fetchedAt.Equal(snapshot.FetchedAt))

	assert.Equal(t, int64(1), service.GetServiceMetrics().GetSnapshot().SuccessfulRequests)
}

func TestFetchFallsBackWithoutTouchingCache(t *testing.T) {
	tests := []struct {
		name      string
		generator TextGenerator
		code      string
	}{
		{"empty text", &stubGenerator{text: ""}, shared.CodeEmptyResponse},
		{"whitespace only", &stubGenerator{text: "  \n"}, shared.CodeInvalidJSON},
		{"prose instead of json", &stubGenerator{text: "Here are the IPOs you asked for"}, shared.CodeInvalidJSON},
		{"json object", &stubGenerator{text: `{"ipos": []}`}, shared.CodeNotAnArray},
		{"json string", &stubGenerator{text: `"[]"`}, shared.CodeNotAnArray},
		{"empty array", &stubGenerator{text: "```json\n[]\n```"}, shared.CodeEmptyArray},
		{"no valid element", &stubGenerator{text: `[1, "two", {"companyName": ""}]`}, shared.CodeNoValidRecords},
		{"transport error", &stubGenerator{err: errors.New("connection refused")}, shared.CodeGeneratorFailed},
		{"quota error", &stubGenerator{err: shared.NewServiceError(shared.ErrorCategoryNetwork, shared.CodeGeneratorFailed, "resource exhausted", "GeminiGenerator", "Generate", true, nil)}, shared.CodeGeneratorFailed},
		{"no generator", nil, shared.CodeGeneratorUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			backend := newSeededBackend(t)
			service := NewIPOFeedService(tt.generator, NewCacheStore(backend), time.Second)

			result := service.FetchWithResult(ctx)

			assert.Equal(t, models.FeedSourceFallback, result.Source)
			assert.True(t, result.IsFallback())
			assert.Equal(t, MockDataset(), result.Records)
			require.NotNil(t, result.Reason)
			assert.Equal(t, tt.code, result.Reason.Code)

			payload, found, err := backend.Get(ctx, models.CacheKey)
			require.NoError(t, err)
			require.True(t, found)
			assert.Equal(t, sentinelSnapshot, string(payload))
		})
	}
}

func TestFetchTimesOut(t *testing.T) {
	service := NewIPOFeedService(blockingGenerator{}, NewCacheStore(NewMemoryBackend()), 20*time.Millisecond)

	result := service.FetchWithResult(context.Background())

	assert.Equal(t, models.FeedSourceFallback, result.Source)
	require.NotNil(t, result.Reason)
	assert.Equal(t, shared.CodeGeneratorTimeout, result.Reason.Code)
	assert.Equal(t, shared.ErrorCategoryTimeout, result.Reason.Category)
	assert.Equal(t, int64(1), service.GetServiceMetrics().Counter("fallback_generator_timeout"))
}

func TestFetchKeepsValidRecordsFromPartialResponse(t *testing.T) {
	text := `[
		{"companyName": "Valid Ltd", "type": "SME", "status": "Upcoming"},
		{"companyName": "Missing Status Ltd", "type": "SME"}
	]`
	service := NewIPOFeedService(&stubGenerator{text: text}, NewCacheStore(NewMemoryBackend()), time.Second)

	result := service.FetchWithResult(context.Background())

	assert.Equal(t, models.FeedSourceLive, result.Source)
	assert.Len(t, result.Records, 1)
	assert.Equal(t, 1, result.Dropped)
}

func TestFetchSurvivesCacheWriteFailure(t *testing.T) {
	service := NewIPOFeedService(&stubGenerator{text: twoRecordResponse}, NewCacheStore(failingBackend{}), time.Second)

	result := service.FetchWithResult(context.Background())

	assert.Equal(t, models.FeedSourceLive, result.Source)
	assert.Len(t, result.Records, 2)
	assert.Equal(t, int64(1), service.GetServiceMetrics().Counter("cache_write_failures"))
}

func TestFetchNeverReturnsEmptyProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("For any generated text, Fetch returns a non-empty record list", prop.ForAll(
		func(text string) bool {
			service := NewIPOFeedService(&stubGenerator{text: text}, NewCacheStore(NewMemoryBackend()), time.Second)
			return len(service.Fetch(context.Background())) > 0
		},
		gen.OneGenOf(
			gen.AnyString(),
			gen.OneConstOf("[]", "[{}]", "{}", "null", "```json```", twoRecordResponse),
		),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, "[1]", StripCodeFences("```json\n[1]\n```"))
	assert.Equal(t, "[1]", StripCodeFences("```[1]```"))
	assert.Equal(t, "[1]", StripCodeFences("  [1]  "))
}

func TestMockDatasetIsFreshCopy(t *testing.T) {
	first := MockDataset()
	require.Len(t, first, 22)

	first[0].CompanyName = "Mutated"
	assert.Equal(t, "Bharat Coking Coal Ltd", MockDataset()[0].CompanyName)

	closed := 0
	for _, record := range MockDataset() {
		if record.IsClosed() {
			closed++
		}
	}
	assert.Equal(t, 20, closed)
}

func TestBuildIPOFeedPromptCoversTwoMonths(t *testing.T) {
	prompt := BuildIPOFeedPrompt(time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC))

	assert.Contains(t, prompt, "December 2025 to January 2026")
	assert.Contains(t, prompt, "January 15, 2026")
}
