package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	KeyBookings = "bookings:all"
	KeyProducts = "products:all"
)

// Cache is an optional redis-backed store for the denormalized list read
// models. A Cache with a nil client (or a nil Cache) is a no-op, so callers
// never branch on whether caching is enabled.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewClient(addr, password string) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
}

func New(client *redis.Client, ttl time.Duration, log zerolog.Logger) *Cache {
	return &Cache{client: client, ttl: ttl, log: log}
}

func (c *Cache) enabled() bool {
	return c != nil && c.client != nil
}

// GetList unmarshals the cached value for key into dest. Returns false on
// miss or when the cache is disabled.
func (c *Cache) GetList(ctx context.Context, key string, dest any) bool {
	if !c.enabled() {
		return false
	}

	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		return false
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache payload unmarshal failed")
		return false
	}
	return true
}

func (c *Cache) SetList(ctx context.Context, key string, value any) {
	if !c.enabled() {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache payload marshal failed")
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// Invalidate drops the given keys after a write.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if !c.enabled() || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}

func Ping(ctx context.Context, client *redis.Client) error {
	if client == nil {
		return nil
	}
	return client.Ping(ctx).Err()
}
