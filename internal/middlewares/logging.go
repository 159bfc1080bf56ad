package middlewares

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-image-vault/internal/correlation"
	"github.com/sbilibin2017/gw-image-vault/internal/logger"
)

// LoggingMiddleware binds a correlation id to the request and logs the request and response.
// The id comes from the X-Correlation-ID header when present and is echoed back.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(correlation.Header))
		if id == "" {
			id = correlation.NewID()
		}

		start := time.Now()

		rw := newResponseWriter(w)
		r = r.WithContext(correlation.WithID(r.Context(), id))
		w.Header().Set(correlation.Header, id)

		log := logger.FromContext(r.Context())
		log.Infow("request",
			"method", r.Method,
			"uri", r.RequestURI,
			"remote_addr", r.RemoteAddr,
		)

		next.ServeHTTP(rw, r)

		log.Infow("response",
			"status", rw.statusCode,
			"response_size", strconv.Itoa(rw.size)+"B",
			"duration", time.Since(start),
		)
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	size        int
	wroteHeader bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	if rw, ok := w.(*responseWriter); ok {
		return rw
	}
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
