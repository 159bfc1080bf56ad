package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-image-vault/internal/apperrors"
	"github.com/sbilibin2017/gw-image-vault/internal/cache"
	"github.com/sbilibin2017/gw-image-vault/internal/jwt"
	"github.com/sbilibin2017/gw-image-vault/internal/logger"
	"github.com/sbilibin2017/gw-image-vault/internal/models"
	"github.com/sbilibin2017/gw-image-vault/internal/validation"
)

// Error variables
var (
	ErrInvalidCredentials = apperrors.Business("INVALID_CREDENTIALS", "Invalid username or password")
	ErrUserNotActive      = apperrors.Business("USER_NOT_ACTIVE", "User account is not active")
)

// TokenManager issues and parses signed tokens.
type TokenManager interface {
	Generate(ctx context.Context, subject string) (string, error)
	GetClaims(ctx context.Context, token string) (*jwt.Claims, error)
	Expiration() time.Duration
}

// CredentialReader looks up users for login, bypassing any cache.
type CredentialReader interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService handles login and the token contract.
type AuthService struct {
	users     CredentialReader
	tokens    TokenManager
	cache     *cache.Cache
	validator *validation.Validator
	now       func() time.Time
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users CredentialReader, tokens TokenManager, c *cache.Cache, v *validation.Validator) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		cache:     c,
		validator: v,
		now:       time.Now,
	}
}

// Login checks the credentials and issues an access token.
func (svc *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	if err := svc.validator.Struct(req); err != nil {
		return nil, err
	}

	user, err := svc.users.GetByUsername(ctx, req.Username)
	if err != nil {
		log.Errorw("failed to get user", "username", req.Username, "err", err)
		return nil, err
	}
	if user == nil {
		log.Warnw("login for unknown user", "username", req.Username)
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		log.Warnw("login for inactive user", "username", req.Username)
		return nil, ErrUserNotActive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Warnw("invalid credentials", "username", req.Username)
		return nil, ErrInvalidCredentials
	}

	token, err := svc.Issue(ctx, user.Username)
	if err != nil {
		return nil, err
	}

	log.Infow("user authenticated", "username", user.Username)
	return &models.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(svc.tokens.Expiration() / time.Second),
		User:        user.ToResponse(),
	}, nil
}

// Issue signs a token for subject.
func (svc *AuthService) Issue(ctx context.Context, subject string) (string, error) {
	token, err := svc.tokens.Generate(ctx, subject)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to generate JWT", "err", err)
		return "", err
	}
	return token, nil
}

// ValidateToken reports whether token is well-formed, correctly signed and unexpired.
// The expiry is cached and checked against the clock on every call.
func (svc *AuthService) ValidateToken(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	expiry, err := cache.GetOrLoad(ctx, svc.cache, cache.TokenValidity, tokenKey(token), func(ctx context.Context) (time.Time, error) {
		claims, err := svc.tokens.GetClaims(ctx, token)
		if err != nil {
			return time.Time{}, err
		}
		return claims.ExpiresAt, nil
	})
	if err != nil {
		logger.FromContext(ctx).Debugw("token rejected", "err", err)
		return false
	}
	return svc.now().Before(expiry)
}

// SubjectOf returns the subject of a valid token.
func (svc *AuthService) SubjectOf(ctx context.Context, token string) (string, bool) {
	if !svc.ValidateToken(ctx, token) {
		return "", false
	}
	subject, err := cache.GetOrLoad(ctx, svc.cache, cache.TokenSubject, tokenKey(token), func(ctx context.Context) (string, error) {
		claims, err := svc.tokens.GetClaims(ctx, token)
		if err != nil {
			return "", err
		}
		return claims.Subject, nil
	})
	if err != nil || subject == "" {
		return "", false
	}
	return subject, true
}

func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
