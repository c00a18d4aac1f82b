package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisDashboardCache stores serialized dashboard payloads in Redis. It is
// suitable for deployments where multiple instances should share cached
// reports.
type RedisDashboardCache struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisDashboardCache creates a cache backed by a new Redis client and
// verifies the connection
func NewRedisDashboardCache(cfg RedisConfig) (*RedisDashboardCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisDashboardCache{
		client:    client,
		keyPrefix: "report:",
	}, nil
}

// NewRedisDashboardCacheWithClient creates a cache around an existing client.
// This is useful for testing or when sharing a client across components.
func NewRedisDashboardCacheWithClient(client *redis.Client, keyPrefix string) *RedisDashboardCache {
	if keyPrefix == "" {
		keyPrefix = "report:"
	}
	return &RedisDashboardCache{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get loads a cached payload into out. A missing key returns ok=false with a
// nil error; a backend or decode failure returns ok=false with the error so
// callers can log it and recompute.
func (c *RedisDashboardCache) Get(ctx context.Context, key string, out any) (bool, error) {
	payload, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return false, fmt.Errorf("failed to decode cached payload for %s: %w", key, err)
	}
	return true, nil
}

// Set stores value under key for at most ttl
func (c *RedisDashboardCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode payload for %s: %w", key, err)
	}

	if err := c.client.Set(ctx, c.keyPrefix+key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisDashboardCache) Close() error {
	return c.client.Close()
}
