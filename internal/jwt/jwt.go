package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingAuthorization = errors.New("authorization header missing")
	ErrInvalidAuthorization = errors.New("invalid authorization header format")
	ErrInvalidToken         = errors.New("invalid token")
	ErrEmptySubject         = errors.New("token subject is empty")
)

// Claims are the registered claims carried by every issued token.
// The subject is the username.
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// JWT issues and verifies HS256 tokens.
type JWT struct {
	secretKey []byte
	exp       time.Duration
	now       func() time.Time
}

// Option configures a JWT.
type Option func(*JWT)

// WithSecretKey sets the signing key.
func WithSecretKey(key string) Option {
	return func(j *JWT) {
		j.secretKey = []byte(key)
	}
}

// WithExpiration sets the token lifetime.
func WithExpiration(exp time.Duration) Option {
	return func(j *JWT) {
		j.exp = exp
	}
}

// WithClock overrides the time source used for iat/exp and verification.
func WithClock(now func() time.Time) Option {
	return func(j *JWT) {
		j.now = now
	}
}

// New creates a JWT with a 24h lifetime unless overridden.
func New(opts ...Option) *JWT {
	j := &JWT{
		exp: 24 * time.Hour,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Expiration returns the configured token lifetime.
func (j *JWT) Expiration() time.Duration {
	return j.exp
}

// Generate signs a token for subject.
func (j *JWT) Generate(ctx context.Context, subject string) (string, error) {
	if subject == "" {
		return "", ErrEmptySubject
	}
	now := j.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.exp)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// Validate checks signature and expiry.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.parse(tokenString)
	return err
}

// GetClaims verifies the token and returns its claims.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	rc, err := j.parse(tokenString)
	if err != nil {
		return nil, err
	}
	claims := &Claims{Subject: rc.Subject}
	if rc.IssuedAt != nil {
		claims.IssuedAt = rc.IssuedAt.Time
	}
	if rc.ExpiresAt != nil {
		claims.ExpiresAt = rc.ExpiresAt.Time
	}
	return claims, nil
}

func (j *JWT) parse(tokenString string) (*jwt.RegisteredClaims, error) {
	rc := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, rc,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return j.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if rc.Subject == "" {
		return nil, ErrEmptySubject
	}
	return rc, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingAuthorization
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrInvalidAuthorization
	}

	return parts[1], nil
}
