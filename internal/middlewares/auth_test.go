package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-image-vault/internal/response"
)

func TestAuthenticationMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		mockSetup   func(e *MockTokenExtractor, s *MockSubjectResolver)
		wantSubject string
	}{
		{
			name: "NoToken",
			mockSetup: func(e *MockTokenExtractor, s *MockSubjectResolver) {
				e.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
		},
		{
			name: "InvalidToken",
			mockSetup: func(e *MockTokenExtractor, s *MockSubjectResolver) {
				e.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				s.EXPECT().SubjectOf(gomock.Any(), "sometoken").
					Return("", false)
			},
		},
		{
			name: "ValidToken",
			mockSetup: func(e *MockTokenExtractor, s *MockSubjectResolver) {
				e.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				s.EXPECT().SubjectOf(gomock.Any(), "validtoken").
					Return("alice", true)
			},
			wantSubject: "alice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			extractor := NewMockTokenExtractor(ctrl)
			resolver := NewMockSubjectResolver(ctrl)
			tt.mockSetup(extractor, resolver)

			nextCalled := false
			var gotSubject string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotSubject, _ = SubjectFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthenticationMiddleware(extractor, resolver)(next)

			req := httptest.NewRequest(http.MethodGet, "/users/1", nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.True(t, nextCalled)
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.wantSubject, gotSubject)
		})
	}
}

func TestRequireAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := RequireAuth(next)

	t.Run("anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/1", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		var body response.ErrorBody
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, "AUTHENTICATION_FAILED", body.Error)
		assert.Equal(t, "/users/1", body.Path)
	})

	t.Run("authenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/1", nil)
		req = req.WithContext(WithSubject(req.Context(), "alice"))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestSubjectFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := SubjectFromContext(req.Context())
	assert.False(t, ok)

	_, ok = SubjectFromContext(WithSubject(req.Context(), ""))
	assert.False(t, ok)
}
