package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-image-vault/internal/apperrors"
	"github.com/sbilibin2017/gw-image-vault/internal/logger"
	"github.com/sbilibin2017/gw-image-vault/internal/response"
)

// TokenExtractor pulls the bearer token out of a request.
type TokenExtractor interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// SubjectResolver maps a token to its subject when the token is valid.
type SubjectResolver interface {
	SubjectOf(ctx context.Context, token string) (string, bool)
}

type subjectKey struct{}

// WithSubject binds an authenticated username to ctx.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey{}, subject)
}

// SubjectFromContext returns the authenticated username bound by AuthenticationMiddleware.
func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey{}).(string)
	return subject, ok && subject != ""
}

// AuthenticationMiddleware binds the token subject to the request when a valid
// bearer token is present. Requests without one pass through unauthenticated.
func AuthenticationMiddleware(tokens TokenExtractor, subjects SubjectResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, err := tokens.GetTokenFromRequest(ctx, r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			subject, ok := subjects.SubjectOf(ctx, token)
			if !ok {
				logger.FromContext(ctx).Debugw("bearer token rejected", "path", r.URL.Path)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSubject(ctx, subject)))
		})
	}
}

// RequireAuth rejects requests that carry no authenticated subject.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := SubjectFromContext(r.Context()); !ok {
			logger.FromContext(r.Context()).Warnw("authorization failed", "path", r.URL.Path)
			response.Error(w, r, apperrors.Authentication("Full authentication is required to access this resource"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
