package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-image-vault/internal/correlation"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		incomingID     string
		handlerStatus  int
		handlerBody    string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "OK response",
			handlerStatus:  http.StatusOK,
			handlerBody:    "hello",
			expectedStatus: http.StatusOK,
			expectedBody:   "hello",
		},
		{
			name:           "Internal server error",
			handlerStatus:  http.StatusInternalServerError,
			handlerBody:    "error",
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "error",
		},
		{
			name:           "Caller supplied correlation id",
			incomingID:     "req-123",
			handlerStatus:  http.StatusCreated,
			handlerBody:    "created",
			expectedStatus: http.StatusCreated,
			expectedBody:   "created",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seenID string
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenID = correlation.FromContext(r.Context())
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte(tt.handlerBody))
			})

			handler := LoggingMiddleware(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incomingID != "" {
				req.Header.Set(correlation.Header, tt.incomingID)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			bodyBytes, _ := io.ReadAll(rr.Body)
			assert.Equal(t, tt.expectedBody, string(bodyBytes))

			echoed := rr.Header().Get(correlation.Header)
			assert.NotEmpty(t, echoed)
			assert.Equal(t, echoed, seenID)
			if tt.incomingID != "" {
				assert.Equal(t, tt.incomingID, echoed)
			}
		})
	}
}

func TestResponseWriter_RecordsFirstStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	rw := newResponseWriter(rr)

	assert.Same(t, rw, newResponseWriter(rw))

	_, _ = rw.Write([]byte("abc"))
	assert.Equal(t, http.StatusOK, rw.statusCode)
	assert.Equal(t, 3, rw.size)
	assert.True(t, rw.wroteHeader)
}
