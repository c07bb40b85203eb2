// Package redis backs the session store. Connect is the only entry point
// that dials; everything else in the package works on the returned client.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Config carries the Redis settings from the service configuration.
type Config struct {
	Addr string
	DB   int
	// Timeout bounds both the dial and the startup ping. Zero means
	// defaultTimeout.
	Timeout time.Duration
}

// Connect dials Redis and verifies it with a ping so a bad address fails
// at startup rather than on the first login.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		DB:          cfg.DB,
		DialTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
