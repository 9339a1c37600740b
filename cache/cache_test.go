// Package cache
package cache

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testRedisURL string

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err == nil {
		err = pool.Client.Ping()
	}
	var res *dockertest.Resource
	if err == nil {
		res, err = pool.Run("redis", "7", nil)
	}
	if err == nil {
		_ = res.Expire(120)
		url := fmt.Sprintf("localhost:%s", res.GetPort("6379/tcp"))
		err = pool.Retry(func() error {
			c := redis.NewClient(&redis.Options{Addr: url})
			defer c.Close()
			return c.Ping(context.Background()).Err()
		})
		if err == nil {
			testRedisURL = url
		}
	}
	if err != nil {
		log.Printf("redis container unavailable, lock tests will be skipped: %v", err)
	}

	code := m.Run()
	if res != nil {
		_ = pool.Purge(res)
	}
	os.Exit(code)
}

func SetupTestCache(t *testing.T) Locker {
	t.Helper()
	if testRedisURL == "" {
		t.Skip("redis container is not running")
	}
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)
	locker, err := New(Config{Adapter: RedisAdapter, URL: testRedisURL, Logger: logger})
	require.NoError(t, err)
	t.Cleanup(func() { _ = locker.Close() })
	return locker
}

func TestRedis_Lock(t *testing.T) {
	ctx := context.Background()
	locker := SetupTestCache(t)
	key := fmt.Sprintf("dbinit:schema:%d", time.Now().UnixNano())

	token, err := locker.Lock(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = locker.Lock(ctx, key, time.Minute)
	assert.ErrorIs(t, err, ErrLockHeld)

	// a stale token must not release someone else's lock
	require.NoError(t, locker.Unlock(ctx, key, "stale"))
	_, err = locker.Lock(ctx, key, time.Minute)
	assert.ErrorIs(t, err, ErrLockHeld)

	require.NoError(t, locker.Unlock(ctx, key, token))
	token, err = locker.Lock(ctx, key, time.Minute)
	require.NoError(t, err)
	require.NoError(t, locker.Unlock(ctx, key, token))
}

func TestRedis_LockExpires(t *testing.T) {
	ctx := context.Background()
	locker := SetupTestCache(t)
	key := fmt.Sprintf("dbinit:schema:%d", time.Now().UnixNano())

	_, err := locker.Lock(ctx, key, time.Second)
	require.NoError(t, err)
	assert.Eventually(t, func() bool {
		token, err := locker.Lock(ctx, key, time.Minute)
		return err == nil && token != ""
	}, 5*time.Second, 200*time.Millisecond)
}

func TestNew_InvalidAdapter(t *testing.T) {
	_, err := New(Config{Adapter: "memcached", Logger: zap.NewNop()})
	assert.Error(t, err)
}
