package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))
	ctx := context.Background()

	for _, subject := range []string{"alice", "bob_2", "x"} {
		t.Run(subject, func(t *testing.T) {
			token, err := j.Generate(ctx, subject)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			assert.NoError(t, j.Validate(ctx, token))

			claims, err := j.GetClaims(ctx, token)
			require.NoError(t, err)
			assert.Equal(t, subject, claims.Subject)
			assert.Equal(t, time.Minute, claims.ExpiresAt.Sub(claims.IssuedAt))
		})
	}
}

func TestJWT_DefaultExpiration(t *testing.T) {
	assert.Equal(t, 24*time.Hour, New().Expiration())
}

func TestJWT_EmptySubject(t *testing.T) {
	j := New(WithSecretKey("s"))
	_, err := j.Generate(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptySubject)
}

func TestJWT_ExpiredToken(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Hour), WithClock(clock))
	ctx := context.Background()

	token, err := j.Generate(ctx, "alice")
	require.NoError(t, err)
	assert.NoError(t, j.Validate(ctx, token))

	now = now.Add(time.Hour + time.Second)

	assert.Error(t, j.Validate(ctx, token))
	claims, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	err := j.Validate(ctx, "invalid.token.string")
	assert.Error(t, err)

	claims, err := j.GetClaims(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Nil(t, claims)

	assert.Error(t, j.Validate(ctx, ""))
}

func TestJWT_RejectsOtherAlgorithms(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	claims := jwt.RegisteredClaims{
		Subject:   "mallory",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	assert.Error(t, j.Validate(ctx, unsigned))

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	assert.Error(t, j.Validate(ctx, hs512))
}

func TestJWT_RequiresExpiry(t *testing.T) {
	j := New(WithSecretKey("secret"))
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "alice"}).
		SignedString([]byte("secret"))
	require.NoError(t, err)
	assert.Error(t, j.Validate(context.Background(), token))
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", false},
		{"NoHeader", "", "", true},
		{"InvalidFormat", "Token mytoken123", "", true},
		{"TooManyParts", "Bearer a b c", "", true},
		{"SchemeOnly", "Bearer", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

func TestJWT_Validate_WrongSecret(t *testing.T) {
	j1 := New(WithSecretKey("secret1"))
	j2 := New(WithSecretKey("secret2"))
	ctx := context.Background()

	token, err := j1.Generate(ctx, "alice")
	require.NoError(t, err)

	assert.Error(t, j2.Validate(ctx, token))
}
