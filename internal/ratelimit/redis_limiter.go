package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/rueidis"
)

// RedisLimiter shares counters between instances. Each window gets its own
// key, which expires once the window is over.
type RedisLimiter struct {
	client rueidis.Client
	prefix string
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewRedisLimiter(client rueidis.Client, prefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// Allow increments the window counter and refreshes its expiry in one
// MULTI/EXEC round trip, so a counter never outlives its window.
func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	slot := r.now().UnixNano() / int64(r.window)
	redisKey := fmt.Sprintf("%s:%s:%d", r.prefix, key, slot)

	ttl := int64(r.window / time.Second)
	if ttl < 1 {
		ttl = 1
	}

	results := r.client.DoMulti(ctx,
		r.client.B().Multi().Build(),
		r.client.B().Incr().Key(redisKey).Build(),
		r.client.B().Expire().Key(redisKey).Seconds(ttl).Build(),
		r.client.B().Exec().Build(),
	)

	replies, err := results[len(results)-1].ToArray()
	if err != nil {
		return false, fmt.Errorf("increment rate limit counter: %w", err)
	}
	if len(replies) == 0 {
		return false, errors.New("increment rate limit counter: empty transaction reply")
	}
	count, err := replies[0].AsInt64()
	if err != nil {
		return false, fmt.Errorf("increment rate limit counter: %w", err)
	}

	return count <= int64(r.limit), nil
}
