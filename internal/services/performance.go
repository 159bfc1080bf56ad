package services

import (
	"fmt"
	"sync/atomic"
	"time"
)

// PerformanceSnapshot is the JSON form of the monitor's counters.
// swagger:model PerformanceSnapshot
type PerformanceSnapshot struct {
	TotalRequests     int64     `json:"totalRequests"`
	TotalErrors       int64     `json:"totalErrors"`
	RequestsPerMinute float64   `json:"requestsPerMinute"`
	ErrorRate         float64   `json:"errorRate"`
	Since             time.Time `json:"since"`
	Summary           string    `json:"summary"`
}

// PerformanceMonitor counts requests and errors since the last reset.
type PerformanceMonitor struct {
	requests atomic.Int64
	errors   atomic.Int64
	since    atomic.Int64
	now      func() time.Time
}

// PerformanceOption configures a PerformanceMonitor.
type PerformanceOption func(*PerformanceMonitor)

// WithPerformanceClock overrides the time source.
func WithPerformanceClock(now func() time.Time) PerformanceOption {
	return func(m *PerformanceMonitor) {
		m.now = now
	}
}

func NewPerformanceMonitor(opts ...PerformanceOption) *PerformanceMonitor {
	m := &PerformanceMonitor{now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	m.since.Store(m.now().UnixNano())
	return m
}

func (m *PerformanceMonitor) IncrementRequestCount() {
	m.requests.Add(1)
}

func (m *PerformanceMonitor) IncrementErrorCount() {
	m.errors.Add(1)
}

func (m *PerformanceMonitor) RequestCount() int64 {
	return m.requests.Load()
}

func (m *PerformanceMonitor) ErrorCount() int64 {
	return m.errors.Load()
}

// CurrentRPM divides requests by the whole minutes since the last reset.
// It is 0 until a full minute has passed.
func (m *PerformanceMonitor) CurrentRPM() float64 {
	minutes := m.now().Sub(time.Unix(0, m.since.Load())) / time.Minute
	if minutes <= 0 {
		return 0
	}
	return float64(m.requests.Load()) / float64(minutes)
}

// ErrorRate is the share of errors in percent.
func (m *PerformanceMonitor) ErrorRate() float64 {
	requests := m.requests.Load()
	if requests == 0 {
		return 0
	}
	return float64(m.errors.Load()) / float64(requests) * 100
}

func (m *PerformanceMonitor) Stats() string {
	return fmt.Sprintf("Performance Stats - RPM: %.2f, Total Requests: %d, Errors: %d, Error Rate: %.2f%%",
		m.CurrentRPM(), m.requests.Load(), m.errors.Load(), m.ErrorRate())
}

func (m *PerformanceMonitor) Snapshot() PerformanceSnapshot {
	return PerformanceSnapshot{
		TotalRequests:     m.requests.Load(),
		TotalErrors:       m.errors.Load(),
		RequestsPerMinute: m.CurrentRPM(),
		ErrorRate:         m.ErrorRate(),
		Since:             time.Unix(0, m.since.Load()).UTC(),
		Summary:           m.Stats(),
	}
}

// Reset zeroes the counters and restarts the RPM window.
func (m *PerformanceMonitor) Reset() {
	m.requests.Store(0)
	m.errors.Store(0)
	m.since.Store(m.now().UnixNano())
}
