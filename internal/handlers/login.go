package handlers

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-image-vault/internal/models"
	"github.com/sbilibin2017/gw-image-vault/internal/response"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
}

// TokenValidator reports the subject of a valid token.
type TokenValidator interface {
	SubjectOf(ctx context.Context, token string) (string, bool)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return a JWT bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} response.Envelope{data=models.LoginResponse} "Login successful"
// @Failure 400 {object} response.ErrorBody "Invalid credentials / inactive account"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			response.Error(w, r, err)
			return
		}

		resp, err := svc.Login(r.Context(), req)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Success(w, r, http.StatusOK, "Login successful", resp)
	}
}

// NewValidateTokenHandler reports whether a token is valid.
// @Summary Validate token
// @Description Checks signature and expiry of the token passed as query or form value
// @Tags auth
// @Produce json
// @Param token query string true "JWT token"
// @Success 200 {object} response.Envelope{data=models.TokenValidationResponse}
// @Router /auth/validate [post]
func NewValidateTokenHandler(svc TokenValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := svc.SubjectOf(r.Context(), r.FormValue("token"))
		response.Success(w, r, http.StatusOK, "Token validation completed", models.TokenValidationResponse{
			Valid:    ok,
			Username: subject,
		})
	}
}
