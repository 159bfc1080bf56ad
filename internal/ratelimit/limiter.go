// Package ratelimit admits requests against per-client token buckets.
package ratelimit

import (
	"math"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Class names an independent quota.
type Class string

const (
	ClassAPI         Class = "API"
	ClassAuth        Class = "AUTH"
	ClassImageUpload Class = "IMAGE_UPLOAD"
)

// Quota is the bucket capacity refilled over Period.
type Quota struct {
	Capacity int
	Period   time.Duration
}

// DefaultQuotas returns the stock per-minute quotas.
func DefaultQuotas() map[Class]Quota {
	return map[Class]Quota{
		ClassAPI:         {Capacity: 1000, Period: time.Minute},
		ClassAuth:        {Capacity: 100, Period: time.Minute},
		ClassImageUpload: {Capacity: 200, Period: time.Minute},
	}
}

// Limiter keeps one token bucket per client key and class.
// Buckets are created on first use and never evicted.
type Limiter struct {
	quotas  map[Class]Quota
	buckets sync.Map // map[string]*rate.Limiter
	now     func() time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

// New builds a Limiter. Classes missing from quotas fall back to the API quota.
func New(quotas map[Class]Quota, opts ...Option) *Limiter {
	l := &Limiter{
		quotas: quotas,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Admit consumes one token from the bucket of clientKey and class.
// It returns whether the request is allowed and the whole tokens left.
func (l *Limiter) Admit(clientKey string, class Class) (bool, int) {
	bucket := l.bucket(clientKey+":"+string(class), class)
	now := l.now()
	allowed := bucket.AllowN(now, 1)
	remaining := int(math.Floor(bucket.TokensAt(now)))
	if remaining < 0 {
		remaining = 0
	}
	return allowed, remaining
}

// Limit returns the capacity of class.
func (l *Limiter) Limit(class Class) int {
	return l.quota(class).Capacity
}

// Len returns the number of live buckets.
func (l *Limiter) Len() int {
	n := 0
	l.buckets.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (l *Limiter) bucket(key string, class Class) *rate.Limiter {
	if b, ok := l.buckets.Load(key); ok {
		return b.(*rate.Limiter)
	}
	q := l.quota(class)
	fresh := rate.NewLimiter(rate.Limit(float64(q.Capacity)/q.Period.Seconds()), q.Capacity)
	b, _ := l.buckets.LoadOrStore(key, fresh)
	return b.(*rate.Limiter)
}

func (l *Limiter) quota(class Class) Quota {
	if q, ok := l.quotas[class]; ok {
		return q
	}
	return l.quotas[ClassAPI]
}

// ClassForPath picks the quota class of a request path.
func ClassForPath(path string) Class {
	switch {
	case strings.Contains(path, "/auth/"):
		return ClassAuth
	case strings.Contains(path, "/images/upload"), strings.Contains(path, "/dropbox/upload"):
		return ClassImageUpload
	default:
		return ClassAPI
	}
}

// ClientKey derives the client address: the first X-Forwarded-For entry,
// then X-Real-IP, then the socket peer.
func ClientKey(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
