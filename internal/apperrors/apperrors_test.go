package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_HTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"validation", Validation("bad", nil), http.StatusBadRequest},
		{"not found", NotFound("User", 5), http.StatusNotFound},
		{"business", Business("USER_ALREADY_EXISTS", "taken"), http.StatusBadRequest},
		{"business override", Business("CONCURRENT_MODIFICATION", "stale").WithStatus(http.StatusConflict), http.StatusConflict},
		{"authentication", Authentication("no token"), http.StatusUnauthorized},
		{"access denied", AccessDenied("nope"), http.StatusForbidden},
		{"internal", &Error{Kind: KindInternal, Code: "X"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestNotFoundMessages(t *testing.T) {
	err := NotFound("User", 5)
	assert.Equal(t, "USER_NOT_FOUND", err.Code)
	assert.Equal(t, "User not found with ID: 5", err.Message)

	err = NotFoundBy("Image", "imgurId", "abc")
	assert.Equal(t, "IMAGE_NOT_FOUND", err.Code)
	assert.Equal(t, "Image not found with imgurId: abc", err.Message)
}

func TestValidationCode(t *testing.T) {
	assert.Equal(t, "VALIDATION_ERROR", Validation("bad", map[string]string{"a": "x"}).Code)
	assert.Equal(t, "VALIDATION_ERRORS", Validation("bad", map[string]string{"a": "x", "b": "y"}).Code)
}

func TestErrorsIsAndAs(t *testing.T) {
	sentinel := Business("UPLOAD_FAILED", "Failed")
	cause := errors.New("boom")
	wrapped := fmt.Errorf("handler: %w", sentinel.Wrap(cause))

	assert.ErrorIs(t, wrapped, sentinel)
	assert.ErrorIs(t, wrapped, cause)
	assert.True(t, IsKind(wrapped, KindBusiness))
	assert.False(t, IsKind(cause, KindBusiness))

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "UPLOAD_FAILED", appErr.Code)
	assert.Contains(t, appErr.Error(), "boom")
}
