package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	redisad "github.com/tienhung-ho/my-hotel-merger/internal/adapters/redis"
	"github.com/tienhung-ho/my-hotel-merger/internal/domain"
)

func newTestCache(t *testing.T) (*redisad.Cache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	return redisad.New(srv.Addr(), "", 0), srv
}

func TestCacheRoundtrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	payload := []byte(`[{"id":"iJhz"}]`)
	require.NoError(t, c.Set(ctx, "supplier:acme", payload, time.Hour))

	got, ok, err := c.Get(ctx, "supplier:acme")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, payload, got)
}

func TestCacheMiss(t *testing.T) {
	c, _ := newTestCache(t)

	got, ok, err := c.Get(context.Background(), "supplier:unknown")
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, got)
}

func TestCacheTTLExpiry(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "supplier:acme", []byte(`[]`), time.Second))
	srv.FastForward(2 * time.Second)

	_, ok, err := c.Get(ctx, "supplier:acme")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCacheDel(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "supplier:acme", []byte(`[]`), time.Hour))
	require.NoError(t, c.Del(ctx, "supplier:acme"))

	_, ok, err := c.Get(ctx, "supplier:acme")
	require.NoError(t, err)
	require.False(t, ok)
}

var _ domain.Cache = (*redisad.Cache)(nil)
