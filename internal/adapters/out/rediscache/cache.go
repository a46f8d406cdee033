// Package rediscache keeps the order form options in Redis.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"orderdesk/internal/core/application/usecases/queries"

	"github.com/go-redis/redis/v8"
)

const orderFormOptionsKey = "orderdesk:order-form-options"

// Connect parses a redis:// URL and pings the server.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err = rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return rdb, nil
}

// OrderFormOptionsCache implements queries.OrderFormOptionsCache with a single
// JSON value that expires after ttl.
type OrderFormOptionsCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewOrderFormOptionsCache(rdb redis.Cmdable, ttl time.Duration) *OrderFormOptionsCache {
	return &OrderFormOptionsCache{rdb: rdb, ttl: ttl}
}

func (c *OrderFormOptionsCache) Get(ctx context.Context) (queries.OrderFormOptions, bool, error) {
	val, err := c.rdb.Get(ctx, orderFormOptionsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return queries.OrderFormOptions{}, false, nil
		}
		return queries.OrderFormOptions{}, false, fmt.Errorf("failed to get order form options: %w", err)
	}

	var options queries.OrderFormOptions
	if err = json.Unmarshal(val, &options); err != nil {
		return queries.OrderFormOptions{}, false, fmt.Errorf("failed to unmarshal order form options: %w", err)
	}

	return options, true, nil
}

func (c *OrderFormOptionsCache) Set(ctx context.Context, options queries.OrderFormOptions) error {
	val, err := json.Marshal(options)
	if err != nil {
		return fmt.Errorf("failed to marshal order form options: %w", err)
	}

	return c.rdb.Set(ctx, orderFormOptionsKey, val, c.ttl).Err()
}

func (c *OrderFormOptionsCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, orderFormOptionsKey).Err()
}
