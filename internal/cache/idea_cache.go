package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// DefaultTTL bounds staleness for entries whose invalidation is missed
// (e.g. a crash between the write and the Del).
const DefaultTTL = 5 * time.Minute

// IdeaCache is a read-through cache for idea detail responses. A nil
// *IdeaCache is valid and behaves as a permanent miss, so callers never
// branch on whether redis is configured.
type IdeaCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewIdeaCache(rdb *redis.Client, ttl time.Duration) *IdeaCache {
	return &IdeaCache{rdb: rdb, ttl: ttl}
}

func key(id uint) string {
	return fmt.Sprintf("idea:%d", id)
}

func (c *IdeaCache) Get(ctx context.Context, id uint) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, key(id)).Bytes()
	if err != nil {
		return nil, false
	}
	return raw, true
}

func (c *IdeaCache) Set(ctx context.Context, id uint, raw []byte) {
	if c == nil {
		return
	}
	c.rdb.Set(ctx, key(id), raw, c.ttl)
}

// Invalidate must run on every mutation so stale detail is never served.
func (c *IdeaCache) Invalidate(ctx context.Context, id uint) {
	if c == nil {
		return
	}
	c.rdb.Del(ctx, key(id))
}
