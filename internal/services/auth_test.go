package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-image-vault/internal/apperrors"
	"github.com/sbilibin2017/gw-image-vault/internal/jwt"
	"github.com/sbilibin2017/gw-image-vault/internal/models"
	"github.com/sbilibin2017/gw-image-vault/internal/services"
	"github.com/sbilibin2017/gw-image-vault/internal/validation"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.MinCost)
	require.NoError(t, err)

	active := &models.User{ID: 1, Username: "alice", PasswordHash: string(hash), IsActive: true}
	inactive := &models.User{ID: 2, Username: "bob", PasswordHash: string(hash), IsActive: false}

	tests := []struct {
		name      string
		req       models.LoginRequest
		user      *models.User
		readerErr error
		skipRead  bool
		wantErr   error
		wantKind  apperrors.Kind
	}{
		{
			name: "success",
			req:  models.LoginRequest{Username: "alice", Password: "Password123!"},
			user: active,
		},
		{
			name:    "unknown user",
			req:     models.LoginRequest{Username: "ghost", Password: "Password123!"},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:    "inactive user",
			req:     models.LoginRequest{Username: "bob", Password: "Password123!"},
			user:    inactive,
			wantErr: services.ErrUserNotActive,
		},
		{
			name:    "wrong password",
			req:     models.LoginRequest{Username: "alice", Password: "nope"},
			user:    active,
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			req:       models.LoginRequest{Username: "alice", Password: "Password123!"},
			readerErr: errors.New("db error"),
			wantKind:  apperrors.KindInternal,
		},
		{
			name:     "missing fields",
			req:      models.LoginRequest{},
			skipRead: true,
			wantKind: apperrors.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := services.NewMockCredentialReader(ctrl)
			tokens := services.NewMockTokenManager(ctrl)
			svc := services.NewAuthService(reader, tokens, newTestCache(t), validation.New())

			if !tt.skipRead {
				reader.EXPECT().GetByUsername(gomock.Any(), tt.req.Username).Return(tt.user, tt.readerErr)
			}
			if tt.wantErr == nil && tt.wantKind == 0 && !tt.skipRead && tt.readerErr == nil {
				tokens.EXPECT().Generate(gomock.Any(), "alice").Return("signed", nil)
				tokens.EXPECT().Expiration().Return(24 * time.Hour)
			}

			resp, err := svc.Login(context.Background(), tt.req)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			case tt.readerErr != nil:
				assert.ErrorIs(t, err, tt.readerErr)
			case tt.skipRead:
				assert.True(t, apperrors.IsKind(err, tt.wantKind))
			default:
				require.NoError(t, err)
				assert.Equal(t, "signed", resp.AccessToken)
				assert.Equal(t, "Bearer", resp.TokenType)
				assert.Equal(t, int64(86400), resp.ExpiresIn)
				assert.Equal(t, "alice", resp.User.Username)
			}
		})
	}
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	j := jwt.New(jwt.WithSecretKey("secret"), jwt.WithExpiration(time.Hour))
	svc := services.NewAuthService(nil, j, newTestCache(t), validation.New())
	ctx := context.Background()

	token, err := svc.Issue(ctx, "alice")
	require.NoError(t, err)

	assert.True(t, svc.ValidateToken(ctx, token))
	subject, ok := svc.SubjectOf(ctx, token)
	assert.True(t, ok)
	assert.Equal(t, "alice", subject)

	assert.False(t, svc.ValidateToken(ctx, token+"x"))
	assert.False(t, svc.ValidateToken(ctx, ""))
	_, ok = svc.SubjectOf(ctx, "garbage")
	assert.False(t, ok)
}

func TestAuthService_ValidateTokenCachesClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := services.NewMockTokenManager(ctrl)
	svc := services.NewAuthService(nil, tokens, newTestCache(t), validation.New())
	ctx := context.Background()

	claims := &jwt.Claims{Subject: "alice", ExpiresAt: time.Now().Add(time.Hour)}
	// one parse for validity, one for the subject
	tokens.EXPECT().GetClaims(gomock.Any(), "tok").Return(claims, nil).Times(2)

	for i := 0; i < 3; i++ {
		assert.True(t, svc.ValidateToken(ctx, "tok"))
		subject, ok := svc.SubjectOf(ctx, "tok")
		assert.True(t, ok)
		assert.Equal(t, "alice", subject)
	}
}

func TestAuthService_CachedTokenExpires(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := services.NewMockTokenManager(ctrl)
	svc := services.NewAuthService(nil, tokens, newTestCache(t), validation.New())
	ctx := context.Background()

	claims := &jwt.Claims{Subject: "alice", ExpiresAt: time.Now().Add(50 * time.Millisecond)}
	tokens.EXPECT().GetClaims(gomock.Any(), "tok").Return(claims, nil).Times(1)

	assert.True(t, svc.ValidateToken(ctx, "tok"))
	time.Sleep(80 * time.Millisecond)
	assert.False(t, svc.ValidateToken(ctx, "tok"))
}

func TestAuthService_InvalidTokenIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := services.NewMockTokenManager(ctrl)
	svc := services.NewAuthService(nil, tokens, newTestCache(t), validation.New())

	tokens.EXPECT().GetClaims(gomock.Any(), "bad").Return(nil, jwt.ErrInvalidToken).Times(2)

	assert.False(t, svc.ValidateToken(context.Background(), "bad"))
	assert.False(t, svc.ValidateToken(context.Background(), "bad"))
}
