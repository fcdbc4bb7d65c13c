package reportcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "hisba:report:"

// Store is the part of *redis.Client the cache needs.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisCache struct {
	store Store
	ttl   time.Duration
}

func NewRedis(store Store, ttl time.Duration) *redisCache {
	return &redisCache{
		store: store,
		ttl:   ttl,
	}
}

// Get decodes the cached value into dest. It reports false on a cache miss.
func (c *redisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.store.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to decode cached %s: %v", key, err)
	}

	return true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %v", key, err)
	}

	return c.store.Set(ctx, keyPrefix+key, data, c.ttl).Err()
}

// Noop never stores anything. It is used when redis is not configured.
type Noop struct{}

func (Noop) Get(context.Context, string, any) (bool, error) {
	return false, nil
}

func (Noop) Set(context.Context, string, any) error {
	return nil
}
