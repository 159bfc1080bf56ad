package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-image-vault/internal/apperrors"
	"github.com/sbilibin2017/gw-image-vault/internal/middlewares"
)

func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.Validation("Invalid path parameter: "+name,
			map[string]string{name: "must be a positive integer"})
	}
	return id, nil
}

// ownerParam reads the username query parameter, falling back to the authenticated subject.
func ownerParam(r *http.Request) (string, error) {
	if username := strings.TrimSpace(r.URL.Query().Get("username")); username != "" {
		return username, nil
	}
	if subject, ok := middlewares.SubjectFromContext(r.Context()); ok {
		return subject, nil
	}
	return "", apperrors.Validation("Required parameter 'username' is not present",
		map[string]string{"username": "must not be blank"})
}

// callerParam returns the authenticated subject.
func callerParam(r *http.Request) (string, error) {
	if subject, ok := middlewares.SubjectFromContext(r.Context()); ok {
		return subject, nil
	}
	return "", apperrors.Authentication("Authentication required")
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.Validation("Malformed JSON request", map[string]string{"body": err.Error()})
	}
	return nil
}
