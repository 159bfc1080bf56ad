package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-image-vault/internal/services"
)

func TestMetricsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	monitor := NewMockPerformanceReporter(ctrl)
	buckets := NewMockBucketCounter(ctrl)

	monitor.EXPECT().Snapshot().Return(services.PerformanceSnapshot{TotalRequests: 10, TotalErrors: 1, ErrorRate: 10, Summary: "stats"})
	buckets.EXPECT().Len().Return(3)

	rr := httptest.NewRecorder()
	NewMetricsHandler(monitor, buckets).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/performance/metrics", nil))

	var metrics PerformanceMetrics
	env := decodeEnvelope(t, rr, &metrics)
	assert.Equal(t, "Performance metrics retrieved successfully", env.Message)
	assert.Equal(t, int64(10), metrics.TotalRequests)
	assert.Equal(t, 3, metrics.RateLimitBuckets)
}

func TestResetMetricsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	monitor := NewMockPerformanceReporter(ctrl)
	gomock.InOrder(
		monitor.EXPECT().Stats().Return("stats"),
		monitor.EXPECT().Reset(),
	)

	rr := httptest.NewRecorder()
	NewResetMetricsHandler(monitor).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/performance/reset", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Performance counters reset successfully", decodeEnvelope(t, rr, nil).Message)
}

func TestHealthHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewHealthHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/performance/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var health HealthStatus
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&health))
	assert.Equal(t, "UP", health.Status)
	assert.NotEmpty(t, health.Timestamp)
}
