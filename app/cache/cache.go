package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	ProductListPattern = "products:*"
	ProductListTTL     = 5 * time.Minute
)

// Cache is a thin product read cache. A nil *Cache is a no-op, so callers
// never branch on whether Redis is configured.
type Cache struct {
	client *redis.Client
}

func New(addr, password string) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, err
	}
	return &Cache{client: client}, nil
}

func (c *Cache) Set(ctx context.Context, key string, data interface{}, expiration time.Duration) error {
	if c == nil {
		return nil
	}
	dataJSON, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, dataJSON, expiration).Err()
}

// Get reports whether the key was present.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if c == nil {
		return false, nil
	}
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(val), dest)
}

// DeleteByPattern drops every key matching the pattern. Used to invalidate
// product listings after a mutation.
func (c *Cache) DeleteByPattern(ctx context.Context, pattern string) error {
	if c == nil {
		return nil
	}
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
