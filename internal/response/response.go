// Package response writes the JSON envelopes every endpoint answers with.
package response

import (
	"encoding/json"
	"net/http"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/sbilibin2017/gw-image-vault/internal/apperrors"
	"github.com/sbilibin2017/gw-image-vault/internal/correlation"
	"github.com/sbilibin2017/gw-image-vault/internal/logger"
)

// Envelope wraps every successful payload.
// swagger:model Envelope
type Envelope struct {
	Success       bool      `json:"success"`
	Message       string    `json:"message,omitempty"`
	Data          any       `json:"data,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	CorrelationID string    `json:"correlationId,omitempty"`
}

// ErrorBody is the body of every error response.
// swagger:model ErrorBody
type ErrorBody struct {
	Timestamp        time.Time         `json:"timestamp"`
	Status           int               `json:"status"`
	Error            string            `json:"error"`
	Message          string            `json:"message"`
	Path             string            `json:"path"`
	Method           string            `json:"method"`
	CorrelationID    string            `json:"correlationId"`
	ValidationErrors map[string]string `json:"validationErrors,omitempty"`
	StackTrace       string            `json:"stackTrace,omitempty"`
}

var debugMode atomic.Bool

// SetDebug toggles stack traces in error bodies.
func SetDebug(on bool) {
	debugMode.Store(on)
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

// Success writes data in the success envelope.
func Success(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	JSON(w, status, Envelope{
		Success:       true,
		Message:       message,
		Data:          data,
		Timestamp:     time.Now().UTC(),
		CorrelationID: correlation.FromContext(r.Context()),
	})
}

// Fail writes an error body with an explicit status and code.
func Fail(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	JSON(w, status, newErrorBody(r, status, code, message))
}

// Error translates err into an error body. Unclassified errors are reduced
// to a generic internal error and logged.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperrors.As(err)
	if !ok || appErr.Kind == apperrors.KindInternal {
		logger.FromContext(r.Context()).Errorw("unhandled error",
			"path", r.URL.Path,
			"method", r.Method,
			"error", err,
		)
		body := newErrorBody(r, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "An unexpected error occurred")
		JSON(w, http.StatusInternalServerError, body)
		return
	}

	status := appErr.HTTPStatus()
	if status >= http.StatusInternalServerError {
		logger.FromContext(r.Context()).Errorw("request failed", "code", appErr.Code, "error", err)
	} else {
		logger.FromContext(r.Context()).Infow("request rejected", "code", appErr.Code, "message", appErr.Message)
	}

	body := newErrorBody(r, status, appErr.Code, appErr.Message)
	body.ValidationErrors = appErr.Fields
	JSON(w, status, body)
}

func newErrorBody(r *http.Request, status int, code, message string) ErrorBody {
	body := ErrorBody{
		Timestamp:     time.Now().UTC(),
		Status:        status,
		Error:         code,
		Message:       message,
		Path:          r.URL.Path,
		Method:        r.Method,
		CorrelationID: correlation.FromContext(r.Context()),
	}
	if debugMode.Load() {
		body.StackTrace = string(debug.Stack())
	}
	return body
}
