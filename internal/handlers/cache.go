package handlers

//go:generate mockgen -source=cache.go -destination=cache_mock.go -package=handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-image-vault/internal/apperrors"
	"github.com/sbilibin2017/gw-image-vault/internal/cache"
	"github.com/sbilibin2017/gw-image-vault/internal/logger"
	"github.com/sbilibin2017/gw-image-vault/internal/response"
)

// CacheAdmin inspects and clears cache namespaces.
type CacheAdmin interface {
	Names() []string
	Stats() map[string]cache.Stats
	StatsFor(ns cache.Namespace) (cache.Stats, bool)
	Clear(ns cache.Namespace) bool
	ClearAll()
	Enabled() bool
}

// CacheInfo is the payload of /cache/info
// swagger:model CacheInfo
type CacheInfo struct {
	CacheNames []string `json:"cacheNames"`
	CacheCount int      `json:"cacheCount"`
	// example: ttlcache
	CacheType string `json:"cacheType"`
	Enabled   bool   `json:"enabled"`
}

func cacheNotFound(name string) error {
	return apperrors.NotFoundBy("Cache", "name", name)
}

// NewCacheStatsHandler returns the counters of every namespace.
// @Summary Get cache statistics
// @Tags cache
// @Produce json
// @Success 200 {object} response.Envelope{data=map[string]cache.Stats}
// @Router /cache/stats [get]
func NewCacheStatsHandler(c CacheAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, r, http.StatusOK, "Cache statistics retrieved successfully", c.Stats())
	}
}

// NewCacheStatsByNameHandler returns the counters of one namespace.
// @Summary Get specific cache statistics
// @Tags cache
// @Produce json
// @Param name path string true "Cache name"
// @Success 200 {object} response.Envelope{data=cache.Stats}
// @Failure 404 {object} response.ErrorBody
// @Router /cache/stats/{name} [get]
func NewCacheStatsByNameHandler(c CacheAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		stats, ok := c.StatsFor(cache.Namespace(name))
		if !ok {
			response.Error(w, r, cacheNotFound(name))
			return
		}
		response.Success(w, r, http.StatusOK, "Cache statistics retrieved successfully", stats)
	}
}

// NewClearCachesHandler clears every namespace.
// @Summary Clear all caches
// @Tags cache
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 429 {object} response.ErrorBody
// @Router /cache/clear [post]
func NewClearCachesHandler(c CacheAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Infow("clearing all caches")
		c.ClearAll()
		response.Success(w, r, http.StatusOK, "All caches cleared successfully", nil)
	}
}

// NewClearCacheHandler clears one namespace.
// @Summary Clear specific cache
// @Tags cache
// @Produce json
// @Param name path string true "Cache name"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorBody
// @Failure 429 {object} response.ErrorBody
// @Router /cache/clear/{name} [post]
func NewClearCacheHandler(c CacheAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if !c.Clear(cache.Namespace(name)) {
			response.Error(w, r, cacheNotFound(name))
			return
		}
		logger.FromContext(r.Context()).Infow("cache cleared", "cache", name)
		response.Success(w, r, http.StatusOK, "Cache cleared successfully: "+name, nil)
	}
}

// NewCacheInfoHandler lists the namespaces.
// @Summary Get cache information
// @Tags cache
// @Produce json
// @Success 200 {object} response.Envelope{data=handlers.CacheInfo}
// @Router /cache/info [get]
func NewCacheInfoHandler(c CacheAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names := c.Names()
		response.Success(w, r, http.StatusOK, "Cache information retrieved successfully", CacheInfo{
			CacheNames: names,
			CacheCount: len(names),
			CacheType:  "ttlcache",
			Enabled:    c.Enabled(),
		})
	}
}
