package facades

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/sbilibin2017/gw-image-vault/internal/logger"
)

// ErrNoDropboxCredentials is returned when neither a refresh token nor an access token is configured.
var ErrNoDropboxCredentials = errors.New("dropbox credentials are not configured")

const (
	dropboxTokenName = "dropbox"
	// tokens this close to expiry are treated as expired
	expiryMargin = time.Minute
)

// TokenCache shares tokens across instances.
type TokenCache interface {
	GetToken(ctx context.Context, name string) (string, time.Time, error)
	SetToken(ctx context.Context, name, token string, expiry time.Time) error
}

// DropboxTokenConfig holds the app credentials.
type DropboxTokenConfig struct {
	ClientID        string
	ClientSecret    string
	RefreshToken    string
	AccessToken     string
	TokenURL        string
	RefreshInterval time.Duration
}

// DropboxTokenProvider hands out Dropbox access tokens, refreshing them
// with the refresh-token grant when they expire.
type DropboxTokenProvider struct {
	cfg        DropboxTokenConfig
	oauth      *oauth2.Config
	cache      TokenCache
	httpClient *http.Client
	now        func() time.Time

	mu      sync.Mutex
	current *oauth2.Token
}

// DropboxTokenOption configures a DropboxTokenProvider.
type DropboxTokenOption func(*DropboxTokenProvider)

// WithTokenCache shares refreshed tokens through cache.
func WithTokenCache(cache TokenCache) DropboxTokenOption {
	return func(p *DropboxTokenProvider) {
		p.cache = cache
	}
}

// WithTokenHTTPClient sets the client used for the token endpoint.
func WithTokenHTTPClient(client *http.Client) DropboxTokenOption {
	return func(p *DropboxTokenProvider) {
		p.httpClient = client
	}
}

// WithTokenClock overrides the time source.
func WithTokenClock(now func() time.Time) DropboxTokenOption {
	return func(p *DropboxTokenProvider) {
		p.now = now
	}
}

func NewDropboxTokenProvider(cfg DropboxTokenConfig, opts ...DropboxTokenOption) *DropboxTokenProvider {
	if cfg.TokenURL == "" {
		cfg.TokenURL = "https://api.dropboxapi.com/oauth2/token"
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = 20 * time.Minute
	}
	p := &DropboxTokenProvider{
		cfg: cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Token returns a live access token, loading it from the shared cache or
// refreshing it when the held one is missing or expired.
func (p *DropboxTokenProvider) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.valid(p.current) {
		return p.current.AccessToken, nil
	}

	if p.cfg.RefreshToken == "" {
		if p.cfg.AccessToken == "" {
			return "", ErrNoDropboxCredentials
		}
		tok, _ := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: p.cfg.AccessToken}).Token()
		p.current = tok
		return tok.AccessToken, nil
	}

	if p.cache != nil {
		access, expiry, err := p.cache.GetToken(ctx, dropboxTokenName)
		if err == nil {
			tok := &oauth2.Token{AccessToken: access, Expiry: expiry}
			if p.valid(tok) {
				p.current = tok
				return access, nil
			}
		}
	}

	tok, err := p.refreshLocked(ctx)
	if err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}

// Refresh forces a refresh-token grant and stores the result.
func (p *DropboxTokenProvider) Refresh(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, err := p.refreshLocked(ctx)
	return err
}

// Run refreshes on every interval until ctx is cancelled.
func (p *DropboxTokenProvider) Run(ctx context.Context) {
	if p.cfg.RefreshToken == "" {
		return
	}
	ticker := time.NewTicker(p.cfg.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.Refresh(ctx); err != nil {
				logger.Log.Errorw("scheduled dropbox token refresh failed", "error", err)
			}
		}
	}
}

func (p *DropboxTokenProvider) refreshLocked(ctx context.Context) (*oauth2.Token, error) {
	if p.cfg.RefreshToken == "" {
		return nil, ErrNoDropboxCredentials
	}
	if p.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	}

	tok, err := p.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: p.cfg.RefreshToken}).Token()
	if err != nil {
		logger.Log.Errorw("dropbox token refresh failed", "error", err)
		return nil, err
	}
	p.current = tok

	if p.cache != nil {
		if err := p.cache.SetToken(ctx, dropboxTokenName, tok.AccessToken, tok.Expiry); err != nil {
			logger.Log.Warnw("failed to share dropbox token", "error", err)
		}
	}

	logger.Log.Infow("dropbox token refreshed", "expiry", tok.Expiry)
	return tok, nil
}

// valid reports whether tok can still be used. Tokens without expiry never expire.
func (p *DropboxTokenProvider) valid(tok *oauth2.Token) bool {
	if tok == nil || tok.AccessToken == "" {
		return false
	}
	if tok.Expiry.IsZero() {
		return true
	}
	return p.now().Add(expiryMargin).Before(tok.Expiry)
}
