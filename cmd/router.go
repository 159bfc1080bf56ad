package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-image-vault/internal/cache"
	"github.com/sbilibin2017/gw-image-vault/internal/handlers"
	"github.com/sbilibin2017/gw-image-vault/internal/jwt"
	"github.com/sbilibin2017/gw-image-vault/internal/middlewares"
	"github.com/sbilibin2017/gw-image-vault/internal/ratelimit"
	"github.com/sbilibin2017/gw-image-vault/internal/services"
)

// routes holds everything the router dispatches to.
type routes struct {
	tokens  *jwt.JWT
	auth    *services.AuthService
	users   *services.UserService
	images  *services.ImageService
	dropbox *services.DropboxService
	cache   *cache.Cache
	monitor *services.PerformanceMonitor
	limiter *ratelimit.Limiter

	// tx wraps handlers whose writes span several statements.
	tx          func(http.Handler) http.Handler
	corsOrigins []string
	opsPerMin   int
	swaggerURL  string
}

func newRouter(rt routes) http.Handler {
	tx := rt.tx
	if tx == nil {
		tx = func(next http.Handler) http.Handler { return next }
	}
	opsGuard := httprate.LimitByIP(rt.opsPerMin, time.Minute)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Correlation-ID"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Correlation-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.RateLimitMiddleware(rt.limiter, rt.monitor))
	r.Use(middlewares.AuthenticationMiddleware(rt.tokens, rt.auth))

	// Public routes
	r.Group(func(r chi.Router) {
		r.With(tx).Post("/auth/register", handlers.NewRegisterHandler(rt.users))
		r.Post("/auth/login", handlers.NewLoginHandler(rt.auth))
		r.Post("/auth/validate", handlers.NewValidateTokenHandler(rt.auth))

		r.Get("/users/exists/username/{username}", handlers.NewUsernameExistsHandler(rt.users))
		r.Get("/users/exists/email/{email}", handlers.NewEmailExistsHandler(rt.users))

		r.Get("/performance/metrics", handlers.NewMetricsHandler(rt.monitor, rt.limiter))
		r.Get("/performance/health", handlers.NewHealthHandler())
		r.With(opsGuard).Post("/performance/reset", handlers.NewResetMetricsHandler(rt.monitor))

		r.Get("/cache/stats", handlers.NewCacheStatsHandler(rt.cache))
		r.Get("/cache/stats/{name}", handlers.NewCacheStatsByNameHandler(rt.cache))
		r.Get("/cache/info", handlers.NewCacheInfoHandler(rt.cache))
		r.With(opsGuard).Post("/cache/clear", handlers.NewClearCachesHandler(rt.cache))
		r.With(opsGuard).Post("/cache/clear/{name}", handlers.NewClearCacheHandler(rt.cache))

		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(rt.swaggerURL)))
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireAuth)

		r.Get("/users/{id}", handlers.NewGetUserHandler(rt.users))
		r.Get("/users/username/{username}", handlers.NewGetUserByUsernameHandler(rt.users))
		r.With(tx).Put("/users/{id}", handlers.NewUpdateUserHandler(rt.users))
		r.With(tx).Delete("/users/{id}", handlers.NewDeactivateUserHandler(rt.users))

		r.Post("/images/upload/{userId}", handlers.NewUploadImageHandler(rt.images))
		r.Get("/images/user/{userId}", handlers.NewListUserImagesHandler(rt.images))
		r.Get("/images/search", handlers.NewSearchImagesHandler(rt.images))
		r.Get("/images/count", handlers.NewCountImagesHandler(rt.images))
		r.Get("/images/external/{imgurId}", handlers.NewGetImageByExternalIDHandler(rt.images))
		r.Delete("/images/external/{imgurId}", handlers.NewDeleteImageByExternalIDHandler(rt.images))
		r.Get("/images/{id}", handlers.NewGetImageHandler(rt.images))
		r.Put("/images/{id}", handlers.NewUpdateImageHandler(rt.images))
		r.Delete("/images/{id}", handlers.NewDeleteImageHandler(rt.images))
		r.Get("/images/{id}/download", handlers.NewDownloadImageHandler(rt.images))

		r.Post("/dropbox/upload/{userId}", handlers.NewDropboxUploadHandler(rt.dropbox))
		r.Get("/dropbox/images/{userId}", handlers.NewDropboxListHandler(rt.dropbox))
		r.Get("/dropbox/download", handlers.NewDropboxDownloadHandler(rt.dropbox))
		r.Get("/dropbox/download-zip/{userId}", handlers.NewDropboxZipHandler(rt.dropbox))
		r.Delete("/dropbox/delete", handlers.NewDropboxDeleteHandler(rt.dropbox))
	})

	return r
}
