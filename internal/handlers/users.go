package handlers

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-image-vault/internal/models"
	"github.com/sbilibin2017/gw-image-vault/internal/response"
)

// UserGetter reads user profiles.
type UserGetter interface {
	GetUserByID(ctx context.Context, id int64) (*models.UserResponse, error)
	GetUserByUsername(ctx context.Context, username string) (*models.UserResponse, error)
}

// UserUpdater modifies user profiles.
type UserUpdater interface {
	UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (*models.UserResponse, error)
	DeactivateUser(ctx context.Context, id int64) error
}

// ExistenceChecker answers availability checks.
type ExistenceChecker interface {
	ExistsByUsername(ctx context.Context, username string) bool
	ExistsByEmail(ctx context.Context, email string) bool
}

// NewGetUserHandler returns a user by id.
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.Envelope{data=models.UserResponse}
// @Failure 404 {object} response.ErrorBody
// @Router /users/{id} [get]
// @Security Bearer
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			response.Error(w, r, err)
			return
		}

		user, err := svc.GetUserByID(r.Context(), id)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Success(w, r, http.StatusOK, "User retrieved successfully", user)
	}
}

// NewGetUserByUsernameHandler returns a user by username.
// @Summary Get user by username
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} response.Envelope{data=models.UserResponse}
// @Failure 404 {object} response.ErrorBody
// @Router /users/username/{username} [get]
// @Security Bearer
func NewGetUserByUsernameHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.GetUserByUsername(r.Context(), chi.URLParam(r, "username"))
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Success(w, r, http.StatusOK, "User retrieved successfully", user)
	}
}

// NewUpdateUserHandler updates profile fields.
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param updateRequest body models.UpdateUserRequest true "Fields to change"
// @Success 200 {object} response.Envelope{data=models.UserResponse}
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody "Concurrent modification"
// @Router /users/{id} [put]
// @Security Bearer
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			response.Error(w, r, err)
			return
		}

		var req models.UpdateUserRequest
		if err := decodeJSON(r, &req); err != nil {
			response.Error(w, r, err)
			return
		}

		user, err := svc.UpdateUser(r.Context(), id, req)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Success(w, r, http.StatusOK, "User updated successfully", user)
	}
}

// NewDeactivateUserHandler soft-deletes a user.
// @Summary Deactivate user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorBody
// @Router /users/{id} [delete]
// @Security Bearer
func NewDeactivateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			response.Error(w, r, err)
			return
		}

		if err := svc.DeactivateUser(r.Context(), id); err != nil {
			response.Error(w, r, err)
			return
		}

		response.Success(w, r, http.StatusOK, "User deactivated successfully", nil)
	}
}

// NewUsernameExistsHandler reports whether a username is taken.
// @Summary Check username availability
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} response.Envelope{data=models.ExistsResponse}
// @Router /users/exists/username/{username} [get]
func NewUsernameExistsHandler(svc ExistenceChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		exists := svc.ExistsByUsername(r.Context(), chi.URLParam(r, "username"))
		response.Success(w, r, http.StatusOK, "Username availability checked", models.ExistsResponse{Exists: exists})
	}
}

// NewEmailExistsHandler reports whether an email is taken.
// @Summary Check email availability
// @Tags users
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} response.Envelope{data=models.ExistsResponse}
// @Router /users/exists/email/{email} [get]
func NewEmailExistsHandler(svc ExistenceChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		exists := svc.ExistsByEmail(r.Context(), chi.URLParam(r, "email"))
		response.Success(w, r, http.StatusOK, "Email availability checked", models.ExistsResponse{Exists: exists})
	}
}
