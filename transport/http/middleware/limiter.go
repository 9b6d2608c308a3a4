package middleware

import (
	"hotel/config"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/transport/http/response"
	"net/http"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	cacheKeyRateLimit = "limiter"

	// memoryLimiterSweepSize is the number of tracked clients above which idle limiters are dropped.
	memoryLimiterSweepSize = 10000
)

func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	limiterConfig := a.config.App.RateLimiter

	return func(next http.Handler) http.Handler {
		if !limiterConfig.Enable {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			maxReqs := limiterConfig.MaxRequests
			windowSecs := limiterConfig.WindowSeconds
			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, shared.ClientIP(r), shared.UserAgent(r))

			var (
				allowed   bool
				remaining int
			)

			if limiterConfig.Backend == config.RateLimiterBackendRedis && a.cache != nil {
				count, err := a.cache.Increment(r.Context(), cacheKey, windowSecs)
				if err != nil {
					// If cache fails, allow the request to continue
					log.Warn().Err(err).Str("key", cacheKey).Msg("rate limiter cache unavailable")
					next.ServeHTTP(w, r)

					return
				}

				allowed = count <= int64(maxReqs)
				remaining = max(0, maxReqs-int(count))
			} else {
				allowed, remaining = a.memory.allow(cacheKey)
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(remaining))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			if !allowed {
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// memoryLimiter is a per-key token bucket used when no Redis backend is configured.
type memoryLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newMemoryLimiter(maxRequests, windowSeconds int) *memoryLimiter {
	limit := rate.Inf
	if windowSeconds > 0 {
		limit = rate.Limit(float64(maxRequests) / float64(windowSeconds))
	}

	return &memoryLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    max(0, maxRequests),
	}
}

func (m *memoryLimiter) allow(key string) (bool, int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	limiter, ok := m.limiters[key]
	if !ok {
		if len(m.limiters) >= memoryLimiterSweepSize {
			m.sweep()
		}

		limiter = rate.NewLimiter(m.limit, m.burst)
		m.limiters[key] = limiter
	}

	allowed := limiter.Allow()

	return allowed, max(0, int(limiter.Tokens()))
}

// sweep drops limiters whose bucket has refilled, the client has been idle for a full window.
func (m *memoryLimiter) sweep() {
	for key, limiter := range m.limiters {
		if limiter.Tokens() >= float64(m.burst) {
			delete(m.limiters, key)
		}
	}
}
