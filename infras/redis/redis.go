package redis

import (
	"context"
	"hotel/config"
	"net"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// New connects to the primary Redis instance. It returns nil when the rate
// limiter does not use Redis, so services run without one by default.
func New(cfg *config.Config) *goRedis.Client {
	limiter := cfg.App.RateLimiter
	if !limiter.Enable || limiter.Backend != config.RateLimiterBackendRedis {
		log.Debug().Msg("Redis not required by the rate limiter, skipping connection")

		return nil
	}

	primary := cfg.Cache.Redis.Primary

	ctx := context.Background()
	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	})

	_, err := client.Ping(ctx).Result()

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	log.Info().
		Int("db", primary.DB).
		Str("host", primary.Host).
		Str("port", primary.Port).
		Msg("Connected to Redis")

	return client
}
