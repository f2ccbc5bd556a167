package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/clinicdesk/clinic-scheduler/internal/config"
)

// NewRedis connects to Redis for the holiday year-cache. The cache is
// an optimization only: when Redis is unreachable the caller gets nil
// and falls back to in-process caching.
func NewRedis(cfg *config.Config) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           0,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable, holiday cache is in-memory only: %v", err)
		_ = rdb.Close()
		return nil
	}

	return rdb
}
