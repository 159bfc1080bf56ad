package handlers

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-image-vault/internal/models"
	"github.com/sbilibin2017/gw-image-vault/internal/response"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.UserResponse, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates an active account. Username and email must be unique. The password is stored as a bcrypt hash.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 201 {object} response.Envelope{data=models.UserResponse} "User registered successfully"
// @Failure 400 {object} response.ErrorBody "Validation failed / username or email already exists"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if err := decodeJSON(r, &req); err != nil {
			response.Error(w, r, err)
			return
		}

		user, err := svc.Register(r.Context(), req)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Success(w, r, http.StatusCreated, "User registered successfully", user)
	}
}
