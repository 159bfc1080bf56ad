package services_test

import (
	"testing"

	"github.com/sbilibin2017/gw-image-vault/internal/apperrors"
	"github.com/sbilibin2017/gw-image-vault/internal/cache"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *cache.Cache {
	t.Helper()
	c := cache.New(cache.DefaultConfig(), cache.AllNamespaces)
	t.Cleanup(c.Close)
	return c
}

func requireAppError(t *testing.T, err error, kind apperrors.Kind, code string) *apperrors.Error {
	t.Helper()
	appErr, ok := apperrors.As(err)
	require.True(t, ok, "expected *apperrors.Error, got %v", err)
	require.Equal(t, kind, appErr.Kind)
	require.Equal(t, code, appErr.Code)
	return appErr
}
