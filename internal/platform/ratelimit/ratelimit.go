// Copyright (c) 2026 LearnHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package ratelimit provides per-client request budgets for the HTTP layer.

Two implementations share the [Limiter] contract:

  - [MemoryLimiter]: token buckets per key, local to the process.
  - [RedisLimiter]: fixed windows shared by every replica through Redis,
    degrading to a [MemoryLimiter] when Redis is unreachable.
*/
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/taibuivan/learnhub/internal/platform/constants"
)

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

// # In-Memory Token Buckets

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter limits requests per key using the token bucket algorithm.
type MemoryLimiter struct {
	mu      sync.Mutex
	rps     rate.Limit
	burst   int
	clients map[string]*bucket
}

// NewMemory creates a MemoryLimiter and starts its cleanup loop, which stops
// when ctx is cancelled.
func NewMemory(ctx context.Context, rps float64, burst int) *MemoryLimiter {
	limiter := &MemoryLimiter{
		rps:     rate.Limit(rps),
		burst:   burst,
		clients: make(map[string]*bucket),
	}

	go func() {
		ticker := time.NewTicker(constants.RateLimitCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				limiter.evictIdle(time.Now())
			case <-ctx.Done():
				return
			}
		}
	}()

	return limiter
}

// Allow implements [Limiter].
func (limiter *MemoryLimiter) Allow(_ context.Context, key string) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	client, found := limiter.clients[key]
	if !found {
		client = &bucket{limiter: rate.NewLimiter(limiter.rps, limiter.burst)}
		limiter.clients[key] = client
	}
	client.lastSeen = time.Now()

	return client.limiter.Allow()
}

// evictIdle drops buckets that have not been touched for RateLimitClientTTL.
func (limiter *MemoryLimiter) evictIdle(now time.Time) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	for key, client := range limiter.clients {
		if now.Sub(client.lastSeen) > constants.RateLimitClientTTL {
			delete(limiter.clients, key)
		}
	}
}

// size reports the number of tracked keys.
func (limiter *MemoryLimiter) size() int {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	return len(limiter.clients)
}
