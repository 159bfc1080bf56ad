package handlers

//go:generate mockgen -source=performance.go -destination=performance_mock.go -package=handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sbilibin2017/gw-image-vault/internal/logger"
	"github.com/sbilibin2017/gw-image-vault/internal/response"
	"github.com/sbilibin2017/gw-image-vault/internal/services"
)

// PerformanceReporter exposes the request counters.
type PerformanceReporter interface {
	Snapshot() services.PerformanceSnapshot
	Stats() string
	Reset()
}

// BucketCounter reports how many rate-limit buckets are held.
type BucketCounter interface {
	Len() int
}

// PerformanceMetrics is the payload of /performance/metrics
// swagger:model PerformanceMetrics
type PerformanceMetrics struct {
	services.PerformanceSnapshot
	RateLimitBuckets int `json:"rateLimitBuckets"`
}

// HealthStatus is the payload of /performance/health
// swagger:model HealthStatus
type HealthStatus struct {
	// example: UP
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewMetricsHandler returns the request counters.
// @Summary Performance metrics
// @Tags performance
// @Produce json
// @Success 200 {object} response.Envelope{data=handlers.PerformanceMetrics}
// @Router /performance/metrics [get]
func NewMetricsHandler(monitor PerformanceReporter, buckets BucketCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics := PerformanceMetrics{
			PerformanceSnapshot: monitor.Snapshot(),
			RateLimitBuckets:    buckets.Len(),
		}
		logger.FromContext(r.Context()).Infow(metrics.Summary, "rate_limit_buckets", metrics.RateLimitBuckets)

		response.Success(w, r, http.StatusOK, "Performance metrics retrieved successfully", metrics)
	}
}

// NewResetMetricsHandler zeroes the request counters.
// @Summary Reset performance counters
// @Tags performance
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /performance/reset [post]
func NewResetMetricsHandler(monitor PerformanceReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Infow("resetting performance counters", "before", monitor.Stats())
		monitor.Reset()
		response.Success(w, r, http.StatusOK, "Performance counters reset successfully", nil)
	}
}

// NewHealthHandler answers load-balancer health checks without the envelope.
// @Summary Health check
// @Tags performance
// @Produce json
// @Success 200 {object} handlers.HealthStatus
// @Router /performance/health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, HealthStatus{
			Status:    "UP",
			Timestamp: strconv.FormatInt(time.Now().UnixMilli(), 10),
		})
	}
}
