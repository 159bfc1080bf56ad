package middlewares

//go:generate mockgen -source=ratelimit.go -destination=ratelimit_mock.go -package=middlewares

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-image-vault/internal/logger"
	"github.com/sbilibin2017/gw-image-vault/internal/ratelimit"
	"github.com/sbilibin2017/gw-image-vault/internal/response"
)

const healthPath = "/performance/health"

// Admitter decides whether a client may proceed.
type Admitter interface {
	Admit(clientKey string, class ratelimit.Class) (bool, int)
	Limit(class ratelimit.Class) int
}

// RequestCounter records traffic for the performance monitor.
type RequestCounter interface {
	IncrementRequestCount()
	IncrementErrorCount()
}

// RateLimitMiddleware counts every request and admits it against the limiter.
// The health endpoint is counted but never limited.
func RateLimitMiddleware(limiter Admitter, counter RequestCounter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			counter.IncrementRequestCount()

			if strings.HasSuffix(r.URL.Path, healthPath) {
				next.ServeHTTP(w, r)
				return
			}

			class := ratelimit.ClassForPath(r.URL.Path)
			clientKey := ratelimit.ClientKey(r)

			allowed, remaining := limiter.Admit(clientKey, class)
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limiter.Limit(class)))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if !allowed {
				counter.IncrementErrorCount()
				logger.FromContext(r.Context()).Warnw("rate limit exceeded",
					"client", clientKey,
					"class", class,
					"path", r.URL.Path,
				)
				response.Fail(w, r, http.StatusTooManyRequests, "Rate limit exceeded", "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
