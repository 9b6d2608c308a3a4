package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
)

type RedisCache interface {
	Increment(ctx context.Context, key string, windowSeconds int) (count int64, err error)
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

// NewRedisCache returns nil when there is no Redis client to back it.
func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	if client == nil {
		return nil
	}

	return &redisCache{
		client: client,
		otel:   ot,
	}
}

// Increment bumps the counter stored at key and starts its expiry window on first use.
func (cache *redisCache) Increment(ctx context.Context, key string, windowSeconds int) (count int64, err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Increment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	count, err = cache.client.Incr(ctx, key).Result()
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisCache", "Increment").Msg("failed to increment cache")

		return 0, fmt.Errorf("failed to increment cache value: %w", err)
	}

	if count == 1 {
		if err = cache.client.Expire(ctx, key, time.Duration(windowSeconds)*time.Second).Err(); err != nil {
			log.Error().Err(err).Str("key", key).Str("RedisCache", "Increment").Msg("failed to set cache expiry")

			return count, fmt.Errorf("failed to set cache expiry: %w", err)
		}
	}

	return count, nil
}
