package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(clock *fakeClock) *Limiter {
	return New(map[Class]Quota{
		ClassAPI:         {Capacity: 5, Period: time.Minute},
		ClassAuth:        {Capacity: 3, Period: time.Minute},
		ClassImageUpload: {Capacity: 2, Period: time.Minute},
	}, WithClock(clock.Now))
}

func TestLimiter_CapacityThenReject(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := newTestLimiter(clock)

	for i := 0; i < 3; i++ {
		allowed, remaining := l.Admit("10.0.0.1", ClassAuth)
		assert.True(t, allowed, "request %d should pass", i+1)
		assert.Equal(t, 3-i-1, remaining)
	}

	allowed, remaining := l.Admit("10.0.0.1", ClassAuth)
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)
}

func TestLimiter_ResumesAfterRefill(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := newTestLimiter(clock)

	for i := 0; i < 2; i++ {
		allowed, _ := l.Admit("10.0.0.1", ClassImageUpload)
		assert.True(t, allowed)
	}
	allowed, _ := l.Admit("10.0.0.1", ClassImageUpload)
	assert.False(t, allowed)

	clock.Advance(time.Minute + time.Second)

	for i := 0; i < 2; i++ {
		allowed, _ := l.Admit("10.0.0.1", ClassImageUpload)
		assert.True(t, allowed)
	}
}

func TestLimiter_IndependentKeysAndClasses(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := newTestLimiter(clock)

	for i := 0; i < 3; i++ {
		l.Admit("10.0.0.1", ClassAuth)
	}
	allowed, _ := l.Admit("10.0.0.1", ClassAuth)
	assert.False(t, allowed)

	allowed, _ = l.Admit("10.0.0.2", ClassAuth)
	assert.True(t, allowed, "other client keeps its own bucket")

	allowed, _ = l.Admit("10.0.0.1", ClassAPI)
	assert.True(t, allowed, "other class keeps its own bucket")

	assert.Equal(t, 3, l.Len())
}

func TestLimiter_Limit(t *testing.T) {
	l := New(DefaultQuotas())
	assert.Equal(t, 1000, l.Limit(ClassAPI))
	assert.Equal(t, 100, l.Limit(ClassAuth))
	assert.Equal(t, 200, l.Limit(ClassImageUpload))
	assert.Equal(t, 1000, l.Limit(Class("UNKNOWN")))
}

func TestLimiter_ConcurrentAdmit(t *testing.T) {
	l := New(map[Class]Quota{ClassAPI: {Capacity: 100, Period: time.Hour}})

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		admitted int
	)
	for i := 0; i < 150; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := l.Admit("10.0.0.9", ClassAPI); ok {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, admitted)
}

func TestClassForPath(t *testing.T) {
	tests := []struct {
		path string
		want Class
	}{
		{"/auth/login", ClassAuth},
		{"/auth/register", ClassAuth},
		{"/images/upload/5", ClassImageUpload},
		{"/dropbox/upload/5", ClassImageUpload},
		{"/images/user/5", ClassAPI},
		{"/users/1", ClassAPI},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassForPath(tt.path))
		})
	}
}

func TestClientKey(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded first entry", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "10.0.0.2:4000", "203.0.113.7"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.3"}, "10.0.0.2:4000", "198.51.100.3"},
		{"remote addr", nil, "192.0.2.10:5555", "192.0.2.10"},
		{"remote addr without port", nil, "192.0.2.11", "192.0.2.11"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ClientKey(req))
		})
	}
}
