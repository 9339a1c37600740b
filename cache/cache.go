// Package cache
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type Adapter string

const (
	RedisAdapter Adapter = "redis"
)

var ErrLockHeld = errors.New("lock is held by another process")

type Config struct {
	Adapter  Adapter
	URL      string
	DB       int
	Password string

	Logger *zap.Logger
}

// Locker serializes jobs that must not run twice at the same time across deployments.
type Locker interface {
	// Lock takes key for ttl and returns the token needed to release it.
	Lock(ctx context.Context, key string, ttl time.Duration) (string, error)
	Unlock(ctx context.Context, key, token string) error
	Close() error
}

func New(cfg Config) (Locker, error) {
	switch cfg.Adapter {
	case RedisAdapter:
		return newRedis(cfg)
	}
	return nil, errors.New("invalid cache config")
}

func newRedis(cfg Config) (Locker, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.URL,
		DB:       cfg.DB,
		Password: cfg.Password,
	})

	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		_ = redisClient.Close()
		return nil, err
	}

	logger := cfg.Logger.With(zap.String("cache", "redis"))
	client := &Redis{
		client: redisClient,
		logger: logger,
	}
	return client, nil
}
