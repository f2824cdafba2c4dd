// Copyright (c) 2026 LearnHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/learnhub/internal/platform/constants"
	"github.com/taibuivan/learnhub/internal/platform/ctxutil"
)

// windowScript increments the window counter and arms its expiry on first hit.
var windowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RedisLimiter enforces a fixed-window budget shared across replicas.
type RedisLimiter struct {
	client   *redis.Client
	window   time.Duration
	limit    int64
	fallback Limiter
}

// NewRedis creates a RedisLimiter allowing limit requests per window.
// fallback answers while Redis is unavailable.
func NewRedis(client *redis.Client, window time.Duration, limit int, fallback Limiter) *RedisLimiter {
	if window <= 0 {
		window = constants.RateLimitWindow
	}
	if limit <= 0 {
		limit = 1
	}
	return &RedisLimiter{
		client:   client,
		window:   window,
		limit:    int64(limit),
		fallback: fallback,
	}
}

// Allow implements [Limiter].
func (limiter *RedisLimiter) Allow(ctx context.Context, key string) bool {
	callCtx, cancel := context.WithTimeout(ctx, constants.RateLimitRedisTimeout)
	defer cancel()

	count, err := windowScript.Run(callCtx, limiter.client,
		[]string{constants.RedisPrefixRateLimit + key},
		limiter.window.Milliseconds(),
	).Int64()
	if err != nil {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "rate_limit_redis_unavailable", slog.Any("error", err))
		if limiter.fallback == nil {
			return true
		}
		return limiter.fallback.Allow(ctx, key)
	}

	return count <= limiter.limit
}
