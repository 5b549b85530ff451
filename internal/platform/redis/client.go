// Package redis implements the store interfaces on top of a Redis
// key-value store. Entities are stored as JSON values under typed keys;
// secondary lookups (username, per-user task listing) use plain index keys
// and sets. Only single-key atomic operations are assumed.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/taskboard/taskboard-api/internal/config"
)

// NewClient creates a Redis client from configuration and verifies
// connectivity with a ping before returning it.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}
