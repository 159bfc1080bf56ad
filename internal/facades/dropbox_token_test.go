package facades

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryTokenCache struct {
	token  string
	expiry time.Time
	sets   int
}

func (m *memoryTokenCache) GetToken(ctx context.Context, name string) (string, time.Time, error) {
	if m.token == "" {
		return "", time.Time{}, errors.New("miss")
	}
	return m.token, m.expiry, nil
}

func (m *memoryTokenCache) SetToken(ctx context.Context, name, token string, expiry time.Time) error {
	m.token, m.expiry = token, expiry
	m.sets++
	return nil
}

func newTokenServer(t *testing.T, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "rt", r.PostForm.Get("refresh_token"))
		assert.Equal(t, "id", r.PostForm.Get("client_id"))
		assert.Equal(t, "secret", r.PostForm.Get("client_secret"))
		n := calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if n > 10 {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Write([]byte(`{"access_token":"fresh","token_type":"bearer","expires_in":14400}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDropboxTokenProvider_RefreshesAndShares(t *testing.T) {
	var calls atomic.Int32
	srv := newTokenServer(t, &calls)
	cache := &memoryTokenCache{}

	p := NewDropboxTokenProvider(DropboxTokenConfig{
		ClientID: "id", ClientSecret: "secret", RefreshToken: "rt", TokenURL: srv.URL,
	}, WithTokenCache(cache), WithTokenHTTPClient(srv.Client()))

	tok, err := p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh", tok)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "fresh", cache.token)
	assert.Equal(t, 1, cache.sets)

	// held token is reused
	tok, err = p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh", tok)
	assert.Equal(t, int32(1), calls.Load())

	require.NoError(t, p.Refresh(context.Background()))
	assert.Equal(t, int32(2), calls.Load())
}

func TestDropboxTokenProvider_UsesSharedToken(t *testing.T) {
	var calls atomic.Int32
	srv := newTokenServer(t, &calls)
	cache := &memoryTokenCache{token: "shared", expiry: time.Now().Add(time.Hour)}

	p := NewDropboxTokenProvider(DropboxTokenConfig{
		ClientID: "id", ClientSecret: "secret", RefreshToken: "rt", TokenURL: srv.URL,
	}, WithTokenCache(cache), WithTokenHTTPClient(srv.Client()))

	tok, err := p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "shared", tok)
	assert.Zero(t, calls.Load())
}

func TestDropboxTokenProvider_RefreshesExpired(t *testing.T) {
	var calls atomic.Int32
	srv := newTokenServer(t, &calls)
	cache := &memoryTokenCache{token: "old", expiry: time.Now().Add(30 * time.Second)}

	p := NewDropboxTokenProvider(DropboxTokenConfig{
		ClientID: "id", ClientSecret: "secret", RefreshToken: "rt", TokenURL: srv.URL,
	}, WithTokenCache(cache), WithTokenHTTPClient(srv.Client()))

	tok, err := p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh", tok)
	assert.Equal(t, int32(1), calls.Load())

	later := time.Now().Add(5 * time.Hour)
	p.now = func() time.Time { return later }
	_, err = p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestDropboxTokenProvider_StaticAndMissing(t *testing.T) {
	p := NewDropboxTokenProvider(DropboxTokenConfig{AccessToken: "static"})
	tok, err := p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "static", tok)
	assert.ErrorIs(t, p.Refresh(context.Background()), ErrNoDropboxCredentials)

	_, err = NewDropboxTokenProvider(DropboxTokenConfig{}).Token(context.Background())
	assert.ErrorIs(t, err, ErrNoDropboxCredentials)
}

func TestDropboxTokenProvider_RunStopsOnCancel(t *testing.T) {
	var calls atomic.Int32
	srv := newTokenServer(t, &calls)
	p := NewDropboxTokenProvider(DropboxTokenConfig{
		ClientID: "id", ClientSecret: "secret", RefreshToken: "rt", TokenURL: srv.URL,
		RefreshInterval: 20 * time.Millisecond,
	}, WithTokenHTTPClient(srv.Client()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 10*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
