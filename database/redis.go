package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cinehub/internal/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil, nil when no REDIS_URL is configured; callers treat a
// nil client as "cache disabled".
func ConnectRedis(ctx context.Context, cfg *config.Config, log *slog.Logger) (*redis.Client, error) {
	if !cfg.CacheEnabled() {
		log.Info("Redis not configured, recommendation cache disabled")
		return nil, nil
	}

	opts, err := redisOptions(cfg.RedisURL, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)

	// Verify connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info("Connected to Redis", slog.String("addr", opts.Addr))
	return rdb, nil
}

// redisOptions accepts either a redis:// URL or a bare host:port.
func redisOptions(rawURL, password string) (*redis.Options, error) {
	var opts *redis.Options
	if strings.HasPrefix(rawURL, "redis://") || strings.HasPrefix(rawURL, "rediss://") {
		parsed, err := redis.ParseURL(rawURL)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: rawURL}
	}

	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	return opts, nil
}
