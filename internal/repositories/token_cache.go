package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-image-vault/internal/logger"
)

// ErrTokenNotCached is returned when no live token is stored under the name.
var ErrTokenNotCached = errors.New("token not found in cache")

type cachedToken struct {
	AccessToken string    `json:"access_token"`
	Expiry      time.Time `json:"expiry"`
}

// TokenCacheRepository shares access tokens between instances through Redis.
// Entries expire together with the token they hold.
type TokenCacheRepository struct {
	client *redis.Client
}

func NewTokenCacheRepository(client *redis.Client) *TokenCacheRepository {
	return &TokenCacheRepository{client: client}
}

func tokenKey(name string) string {
	return name + ":access_token"
}

// GetToken returns the stored token and its expiry.
func (r *TokenCacheRepository) GetToken(ctx context.Context, name string) (string, time.Time, error) {
	key := tokenKey(name)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow("token cache get", "key", key, "error", err)
		if errors.Is(err, redis.Nil) {
			return "", time.Time{}, ErrTokenNotCached
		}
		return "", time.Time{}, err
	}

	var tok cachedToken
	if err := json.Unmarshal(val, &tok); err != nil {
		logger.Log.Warnw("token cache entry is corrupt", "key", key, "error", err)
		return "", time.Time{}, ErrTokenNotCached
	}

	logger.Log.Infow("token cache get", "key", key, "expiry", tok.Expiry)
	return tok.AccessToken, tok.Expiry, nil
}

// SetToken stores the token until expiry. Already expired tokens are not stored.
func (r *TokenCacheRepository) SetToken(ctx context.Context, name, token string, expiry time.Time) error {
	key := tokenKey(name)
	ttl := time.Until(expiry)
	if ttl <= 0 {
		return nil
	}

	val, err := json.Marshal(cachedToken{AccessToken: token, Expiry: expiry})
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, val, ttl).Err()

	logger.Log.Infow("token cache set", "key", key, "ttl", ttl, "error", err)
	return err
}
