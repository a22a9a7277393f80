package redis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"localization-srv/config"
	"localization-srv/pkg/redis"
)

const (
	connectAttempts = 3
	retryBackoff    = time.Second
)

var (
	mu       sync.Mutex
	instance redis.IRedis
)

// Connect returns the shared Redis client, dialing it on first use.
// Dial failures are retried a few times before giving up.
func Connect(ctx context.Context, cfg config.RedisConfig) (redis.IRedis, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	clientCfg := redis.RedisConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	}

	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		client, err := redis.NewRedis(clientCfg)
		if err == nil {
			instance = client
			return instance, nil
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
	return nil, fmt.Errorf("redis: connect after %d attempts: %w", connectAttempts, lastErr)
}

// Disconnect closes the shared client so the next Connect dials again.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}
