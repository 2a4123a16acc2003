package httpapi

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Limiter admits or rejects a request for a client identifier based on a
// sliding window of recent requests.
type Limiter interface {
	Allow(ctx context.Context, clientID string) (bool, error)
}

// MemoryLimiter keeps per-client request timestamps in memory, guarded by a
// mutex. The clock is injected so tests can control time.
type MemoryLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	limit    int
	window   time.Duration
	now      func() time.Time
}

// NewMemoryLimiter creates an in-memory limiter. A nil clock uses time.Now.
func NewMemoryLimiter(limit int, window time.Duration, clock func() time.Time) *MemoryLimiter {
	if clock == nil {
		clock = time.Now
	}
	return &MemoryLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		now:      clock,
	}
}

// Allow prunes entries older than the window, then admits the request if the
// client is under the limit.
func (l *MemoryLimiter) Allow(_ context.Context, clientID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	windowStart := now.Add(-l.window)

	recent := l.requests[clientID][:0]
	for _, t := range l.requests[clientID] {
		if t.After(windowStart) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= l.limit {
		l.requests[clientID] = recent
		return false, nil
	}

	l.requests[clientID] = append(recent, now)
	return true, nil
}

// RedisLimiter implements the same sliding window on a Redis sorted set, for
// deployments with more than one API instance.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	logger *zap.Logger
}

// NewRedisLimiter creates a Redis-backed limiter
func NewRedisLimiter(client *redis.Client, limit int, window time.Duration, logger *zap.Logger) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
		logger: logger,
	}
}

// Allow records the request in a per-client sorted set scored by timestamp,
// pruning entries older than the window before the admission check.
func (l *RedisLimiter) Allow(ctx context.Context, clientID string) (bool, error) {
	key := "ratelimit:" + clientID
	now := time.Now()
	windowStart := now.Add(-l.window)

	if err := l.client.ZRemRangeByScore(ctx, key, "0",
		fmt.Sprintf("%d", windowStart.UnixNano())).Err(); err != nil {
		return false, fmt.Errorf("failed to prune rate limit window: %w", err)
	}

	count, err := l.client.ZCard(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to count rate limit window: %w", err)
	}
	if count >= int64(l.limit) {
		return false, nil
	}

	member := fmt.Sprintf("%d", now.UnixNano())
	if err := l.client.ZAdd(ctx, key, &redis.Z{
		Score:  float64(now.UnixNano()),
		Member: member,
	}).Err(); err != nil {
		return false, fmt.Errorf("failed to record rate limit entry: %w", err)
	}
	if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
		l.logger.Warn("Failed to set rate limit key TTL",
			zap.String("key", key),
			zap.Error(err),
		)
	}

	return true, nil
}
