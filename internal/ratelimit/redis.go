package ratelimit

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is a fixed-window limiter over Redis, for deployments where
// several instances should share one view of a client's quota. Uses
// INCR + EXPIRE on a per-window key so stale keys expire on their own.
type RedisLimiter struct {
	rdb    *redis.Client
	max    int
	window time.Duration
	prefix string
	now    func() time.Time
}

func NewRedisLimiter(rdb *redis.Client, maxRequests int, win time.Duration) *RedisLimiter {
	if win <= 0 {
		win = time.Minute
	}
	return &RedisLimiter{
		rdb:    rdb,
		max:    maxRequests,
		window: win,
		prefix: "rl:emp:",
		now:    time.Now,
	}
}

var _ Limiter = (*RedisLimiter)(nil)

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := l.now().Unix() / int64(l.window/time.Second)
	k := l.prefix + key + ":" + strconv.FormatInt(bucket, 10)

	// INCR and set expiry 2*window (safety)
	pipe := l.rdb.Pipeline()
	cnt := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, l.window*2)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	return cnt.Val() <= int64(l.max), nil
}
