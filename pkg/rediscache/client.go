// Package rediscache provides the optional Redis client used for read-time
// author lookups.
package rediscache

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ishahbak/feed-service/internal/config"
	"github.com/ishahbak/feed-service/pkg/logger"
)

// NewClient creates a Redis client from configuration. Returns nil when no
// Redis host is configured or the server is unreachable; callers treat a
// nil client as cache-disabled.
func NewClient(cfg *config.Config) *redis.Client {
	if cfg.RedisHost == "" {
		return nil
	}

	options := &redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       0,
	}

	// Enable TLS for production environments when password is set
	if cfg.RedisPassword != "" {
		options.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	client := redis.NewClient(options)

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warningf("redis unavailable, author cache disabled: %v", err)
		_ = client.Close()
		return nil
	}

	return client
}
