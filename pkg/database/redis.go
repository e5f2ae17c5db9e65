package database

import (
	"context"
	"time"

	"seat-reservation/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to Redis for the seat cache and the change-signal relay.
// Returns nil when no address is configured or the server is unreachable;
// callers degrade to cache misses and in-process change signals.
func InitRedis(config utils.RedisConfig) *redis.Client {
	if config.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}

	return client
}
