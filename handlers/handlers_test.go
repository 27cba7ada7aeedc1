package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fenilmodi00/ipo-pulse/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingGenerator struct{}

func (failingGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return "", errors.New("quota exceeded")
}

type stubHealthChecker struct {
	err error
}

func (s stubHealthChecker) HealthCheck(ctx context.Context) error {
	return s.err
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    json.RawMessage `json:"meta"`
	Error   string          `json:"error"`
}

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store := services.NewCacheStore(services.NewMemoryBackend())
	feed := services.NewIPOFeedService(failingGenerator{}, store, time.Second)
	dashboard := services.NewDashboard(feed, store)
	dashboard.Init(context.Background())

	return NewApp(
		NewIPOHandler(dashboard),
		NewToolsHandler(),
		NewCacheHandler(store, dashboard),
		NewPerformanceHandler(feed, dashboard, stubHealthChecker{}),
	)
}

func doRequest(t *testing.T, app *fiber.App, method, target string) (int, envelope) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(method, target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded envelope
	require.NoError(t, json.Unmarshal(body, &decoded), string(body))
	return resp.StatusCode, decoded
}

func TestGetIPOs(t *testing.T) {
	app := setupTestApp(t)

	status, body := doRequest(t, app, http.MethodGet, "/api/v1/ipos")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, body.Success)

	var cards []services.IPOCard
	require.NoError(t, json.Unmarshal(body.Data, &cards))
	assert.Len(t, cards, 22)

	var meta map[string]interface{}
	require.NoError(t, json.Unmarshal(body.Meta, &meta))
	assert.Equal(t, "fallback", meta["source"])
}

func TestGetIPOsFilters(t *testing.T) {
	app := setupTestApp(t)

	status, body := doRequest(t, app, http.MethodGet, "/api/v1/ipos?status=closed&type=sme")
	require.Equal(t, http.StatusOK, status)

	var cards []services.IPOCard
	require.NoError(t, json.Unmarshal(body.Data, &cards))
	assert.Len(t, cards, 6)
	for _, card := range cards {
		assert.NotNil(t, card.ListingGain)
		assert.Empty(t, card.ExpectedGain)
	}

	status, body = doRequest(t, app, http.MethodGet, "/api/v1/ipos?status=withdrawn")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, body.Success)
	assert.Contains(t, body.Error, "withdrawn")
}

func TestGetIPOByID(t *testing.T) {
	app := setupTestApp(t)

	status, body := doRequest(t, app, http.MethodGet, "/api/v1/ipos/mock-2")
	require.Equal(t, http.StatusOK, status)

	var card services.IPOCard
	require.NoError(t, json.Unmarshal(body.Data, &card))
	assert.Equal(t, "17.8x", card.TotalSubscription)
	assert.Equal(t, "80%", card.ExpectedGain)

	status, body = doRequest(t, app, http.MethodGet, "/api/v1/ipos/closed-12")
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body.Data, &card))
	require.NotNil(t, card.ListingGain)
	assert.False(t, card.ListingGain.IsProfit)

	status, body = doRequest(t, app, http.MethodGet, "/api/v1/ipos/unknown")
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, body.Success)
}

func TestStatusAndRefresh(t *testing.T) {
	app := setupTestApp(t)

	status, body := doRequest(t, app, http.MethodGet, "/api/v1/ipos/status")
	require.Equal(t, http.StatusOK, status)

	var dashboardStatus map[string]interface{}
	require.NoError(t, json.Unmarshal(body.Data, &dashboardStatus))
	assert.Equal(t, "fallback", dashboardStatus["source"])
	assert.EqualValues(t, 22, dashboardStatus["record_count"])
	assert.NotNil(t, dashboardStatus["fallback_reason"])
	assert.Equal(t, true, dashboardStatus["retry_advised"])

	status, body = doRequest(t, app, http.MethodPost, "/api/v1/ipos/refresh")
	require.Equal(t, http.StatusOK, status)

	var refresh map[string]interface{}
	require.NoError(t, json.Unmarshal(body.Data, &refresh))
	assert.Equal(t, "fallback", refresh["source"])
	assert.EqualValues(t, 22, refresh["record_count"])
}

func TestCalculateSIPEndpoint(t *testing.T) {
	app := setupTestApp(t)

	status, body := doRequest(t, app, http.MethodGet, "/api/v1/tools/sip?monthly=5000&rate=12&years=10")
	require.Equal(t, http.StatusOK, status)

	var data struct {
		Result    services.SIPResult `json:"result"`
		Formatted map[string]string  `json:"formatted"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.InDelta(t, 1161695.38, data.Result.FutureValue, 0.01)
	assert.Equal(t, 600000.0, data.Result.Invested)
	assert.NotEmpty(t, data.Formatted["future_value"])
}

func TestCalculatorEndpointsRejectInvalidInput(t *testing.T) {
	app := setupTestApp(t)

	targets := []string{
		"/api/v1/tools/sip?monthly=5000&rate=12",
		"/api/v1/tools/sip?monthly=-1&rate=12&years=10",
		"/api/v1/tools/sip?monthly=NaN&rate=12&years=10",
		"/api/v1/tools/sip?monthly=5000&rate=Inf&years=10",
		"/api/v1/tools/lot-value?price=abc&lot_size=10",
		"/api/v1/tools/allotment",
		"/api/v1/tools/allotment?subscription=-3",
	}

	for _, target := range targets {
		status, body := doRequest(t, app, http.MethodGet, target)
		assert.Equal(t, http.StatusBadRequest, status, target)
		assert.False(t, body.Success, target)
	}
}

func TestLotValueEndpoint(t *testing.T) {
	app := setupTestApp(t)

	status, body := doRequest(t, app, http.MethodGet, "/api/v1/tools/lot-value?price=150&lot_size=90")
	require.Equal(t, http.StatusOK, status)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, 13500.0, data["value"])
}

func TestAllotmentEndpoint(t *testing.T) {
	app := setupTestApp(t)

	status, body := doRequest(t, app, http.MethodGet, "/api/v1/tools/allotment?subscription=55")
	require.Equal(t, http.StatusOK, status)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, 1.82, data["probability"])
	assert.Equal(t, "1.82%", data["display"])
	assert.Equal(t, "1 in 55 applicants", data["odds"])
}

func TestHealthAndMetrics(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "ok", health["status"])
	assert.Equal(t, "fallback", health["source"])

	status, body := doRequest(t, app, http.MethodGet, "/api/v1/metrics")
	require.Equal(t, http.StatusOK, status)

	var metrics map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body.Data, &metrics))
	assert.Contains(t, metrics, "feed")
	assert.Contains(t, metrics, "dashboard")
	assert.Contains(t, metrics, "cache_backend")

	var failureRate float64
	require.NoError(t, json.Unmarshal(metrics["feed_failure_rate"], &failureRate))
	assert.Equal(t, 100.0, failureRate)
}

func TestMetricsReportsUnhealthyBackend(t *testing.T) {
	store := services.NewCacheStore(services.NewMemoryBackend())
	feed := services.NewIPOFeedService(nil, store, time.Second)
	dashboard := services.NewDashboard(feed, store)
	dashboard.Init(context.Background())

	app := NewApp(NewIPOHandler(dashboard), NewToolsHandler(), NewCacheHandler(store, dashboard),
		NewPerformanceHandler(feed, dashboard, stubHealthChecker{err: errors.New("database ping failed")}))

	status, body := doRequest(t, app, http.MethodGet, "/api/v1/metrics")
	require.Equal(t, http.StatusOK, status)

	var metrics struct {
		CacheBackend map[string]interface{} `json:"cache_backend"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &metrics))
	assert.Equal(t, false, metrics.CacheBackend["healthy"])
	assert.Equal(t, "database ping failed", metrics.CacheBackend["error"])
}

func TestCacheSnapshotImport(t *testing.T) {
	app := setupTestApp(t)

	status, body := doRequest(t, app, http.MethodGet, "/api/v1/cache")
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, body.Success)

	exported := `{"data":[{"id":7,"companyName":"Browser Saved Ltd","type":"SME","status":"Closed","listingGain":"15%"},{"companyName":""}],"timestamp":1769300000000}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/cache", strings.NewReader(exported))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	status, body = doRequest(t, app, http.MethodGet, "/api/v1/cache")
	require.Equal(t, http.StatusOK, status)
	var info map[string]interface{}
	require.NoError(t, json.Unmarshal(body.Data, &info))
	assert.EqualValues(t, 1, info["record_count"])

	status, body = doRequest(t, app, http.MethodGet, "/api/v1/ipos/7")
	require.Equal(t, http.StatusOK, status)
	var card services.IPOCard
	require.NoError(t, json.Unmarshal(body.Data, &card))
	assert.Equal(t, "Browser Saved Ltd", card.CompanyName)
	require.NotNil(t, card.ListingGain)
	assert.True(t, card.ListingGain.IsProfit)

	_, body = doRequest(t, app, http.MethodGet, "/api/v1/ipos/status")
	var dashboardStatus map[string]interface{}
	require.NoError(t, json.Unmarshal(body.Data, &dashboardStatus))
	assert.Equal(t, "cache", dashboardStatus["source"])
}

func TestCacheSnapshotImportRejectsBadPayload(t *testing.T) {
	app := setupTestApp(t)

	for _, payload := range []string{`not json`, `{"data":{}}`, `{"data":[]}`} {
		req := httptest.NewRequest(http.MethodPut, "/api/v1/cache", strings.NewReader(payload))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, payload)
	}

	_, body := doRequest(t, app, http.MethodGet, "/api/v1/ipos/status")
	var dashboardStatus map[string]interface{}
	require.NoError(t, json.Unmarshal(body.Data, &dashboardStatus))
	assert.Equal(t, "fallback", dashboardStatus["source"])
}
