package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"sports-stats-service/internal/logging"
)

// Redis is a Cache backed by a shared Redis instance, for deployments where
// several replicas should share one quota-friendly cache. Failures degrade
// to misses; the cache never turns a lookup into a hard error.
type Redis struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedis connects to the given redis:// URL and verifies the connection.
func NewRedis(redisURL string, logger *slog.Logger) (*Redis, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Redis{client: client, logger: logger}, nil
}

// Get returns the cached value when present.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logging.Warn(r.logger, "redis get failed", "key", key, "error", err)
		}
		return nil, false
	}
	return data, true
}

// Set stores the value with the given TTL.
func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		logging.Warn(r.logger, "redis set failed", "key", key, "error", err)
	}
}

// Close releases the underlying connection.
func (r *Redis) Close() error {
	return r.client.Close()
}
