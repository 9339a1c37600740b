// Package cache
package cache

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const lockKeyPrefix = "lock:"

// unlockScript deletes the key only while it still holds the caller's token.
var unlockScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

type Redis struct {
	client *redis.Client
	logger *zap.Logger
}

func (c *Redis) Lock(ctx context.Context, key string, ttl time.Duration) (string, error) {
	token := lockToken()
	ok, err := c.client.SetNX(ctx, lockKeyPrefix+key, token, ttl).Result()
	if err != nil {
		return "", err
	}
	if !ok {
		holder, _ := c.client.Get(ctx, lockKeyPrefix+key).Result()
		c.logger.Warn("lock is held", zap.String("key", key), zap.String("holder", holder))
		return "", ErrLockHeld
	}
	c.logger.Debug("lock acquired", zap.String("key", key), zap.Duration("ttl", ttl))
	return token, nil
}

func (c *Redis) Unlock(ctx context.Context, key, token string) error {
	deleted, err := unlockScript.Run(ctx, c.client, []string{lockKeyPrefix + key}, token).Int()
	if err != nil {
		return err
	}
	if deleted == 0 {
		c.logger.Warn("lock expired or taken over before unlock", zap.String("key", key))
	}
	return nil
}

func (c *Redis) Close() error {
	return c.client.Close()
}

func lockToken() string {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	return fmt.Sprintf("%s:%d:%d", host, os.Getpid(), time.Now().UnixNano())
}
