package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/cinefeed/pkg/logger"
)

// Redis is a look-aside JSON cache for ranking reads. Writers invalidate keys
// explicitly; the TTL is only a safety net against missed invalidations.
// Every error degrades to a cache miss, the DB stays the source of truth.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Redis{client: client, ttl: ttl}
}

func (c *Redis) Get(ctx context.Context, key string, dest interface{}) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logger.Warn("cache entry unreadable, dropping", zap.String("key", key), zap.Error(err))
		_ = c.client.Del(ctx, key).Err()
		return false
	}
	return true
}

func (c *Redis) Set(ctx context.Context, key string, val interface{}) {
	payload, err := json.Marshal(val)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, key, payload, c.ttl).Err()
}

func (c *Redis) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
