package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-image-vault/internal/apperrors"
	"github.com/sbilibin2017/gw-image-vault/internal/models"
)

func TestRegisterHandler(t *testing.T) {
	valid := models.RegisterRequest{Username: "john", Password: "Password123!", Email: "john@example.com"}

	tests := []struct {
		name         string
		body         []byte
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), valid).
					Return(&models.UserResponse{ID: 1, Username: "john", IsActive: true}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "user already exists",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), valid).
					Return(nil, apperrors.Business("USER_ALREADY_EXISTS", "Username already exists: john"))
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "USER_ALREADY_EXISTS",
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), valid).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "INTERNAL_SERVER_ERROR",
		},
		{
			name:         "invalid json",
			body:         []byte("{invalid json"),
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockSvc := NewMockRegisterer(ctrl)
			tt.mockSetup(mockSvc)

			body := tt.body
			if body == nil {
				body, _ = json.Marshal(valid)
			}
			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
			rr := httptest.NewRecorder()

			NewRegisterHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedErr != "" {
				errBody := decodeError(t, rr)
				assert.Equal(t, tt.expectedErr, errBody.Error)
				assert.Equal(t, "/auth/register", errBody.Path)
				assert.Equal(t, http.MethodPost, errBody.Method)
				return
			}

			var user models.UserResponse
			env := decodeEnvelope(t, rr, &user)
			assert.True(t, env.Success)
			assert.Equal(t, "User registered successfully", env.Message)
			assert.Equal(t, "john", user.Username)
		})
	}
}

func TestRegisterHandler_ValidationFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockRegisterer(ctrl)
	mockSvc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, apperrors.Validation("Validation failed", map[string]string{
		"username": "must not be blank",
		"email":    "must be a valid email address",
	}))

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader([]byte(`{}`)))
	rr := httptest.NewRecorder()
	NewRegisterHandler(mockSvc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	body := decodeError(t, rr)
	assert.Equal(t, "VALIDATION_ERRORS", body.Error)
	assert.Len(t, body.ValidationErrors, 2)
}
