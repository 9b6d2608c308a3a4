package cache_test

import (
	"context"
	"testing"
	"time"

	"hotel/infras/otel/mocks"
	"hotel/shared/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel()), server
}

func TestNewRedisCache_NilClient(t *testing.T) {
	assert.Nil(t, cache.NewRedisCache(nil, mocks.NewOtel()))
}

func TestRedisCache_Increment(t *testing.T) {
	c, server := newCache(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := c.Increment(ctx, "limiter:127.0.0.1", 60)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	assert.Equal(t, 60*time.Second, server.TTL("limiter:127.0.0.1"))
}

func TestRedisCache_Increment_WindowExpires(t *testing.T) {
	c, server := newCache(t)
	ctx := context.Background()

	_, err := c.Increment(ctx, "limiter:client", 10)
	require.NoError(t, err)

	server.FastForward(11 * time.Second)

	got, err := c.Increment(ctx, "limiter:client", 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestRedisCache_Increment_ServerDown(t *testing.T) {
	c, server := newCache(t)
	server.Close()

	_, err := c.Increment(context.Background(), "limiter:client", 10)
	assert.Error(t, err)
}
