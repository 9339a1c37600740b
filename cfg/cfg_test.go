// Package cfg
package cfg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	for _, key := range []string{
		"STORAGE_DRIVER", "STORAGE_URI", "STORAGE_DB", "STORAGE_MIN_CONN", "STORAGE_MAX_CONN",
		"SYNC_CHAIN_IDS", "SYNC_CHAINS_FROM_DB", "INDEX_CONCURRENCY", "INDEX_BUILD_TIMEOUT",
		"SCHEMA_TIMEOUT", "CACHE_ENGINE", "CACHE_URL", "CACHE_DB", "LOCK_TTL",
	} {
		t.Setenv(key, "")
	}

	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, "mgo", c.StorageDriver)
	assert.Equal(t, 1, c.StorageMinConn)
	assert.Equal(t, 8, c.StorageMaxConn)
	assert.Empty(t, c.SyncChainIDs)
	assert.True(t, c.SyncChainsFromDB)
	assert.Equal(t, 1, c.IndexConcurrency)
	assert.Equal(t, time.Duration(0), c.IndexBuildTimeout)
	assert.Equal(t, 10*time.Minute, c.SchemaTimeout)
	assert.Equal(t, "redis", c.CacheEngine)
	assert.Equal(t, 30*time.Minute, c.LockTTL)
	assert.Error(t, c.Validate())
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("STORAGE_URI", "mongodb://127.0.0.1:27017")
	t.Setenv("STORAGE_DB", "iobscan-ibc")
	t.Setenv("SYNC_CHAIN_IDS", "cosmoshub-4, irishub_1,,osmosis-1")
	t.Setenv("SYNC_CHAINS_FROM_DB", "false")
	t.Setenv("INDEX_CONCURRENCY", "4")
	t.Setenv("INDEX_BUILD_TIMEOUT", "2m")
	t.Setenv("SCHEMA_TIMEOUT", "1h")
	t.Setenv("LOCK_TTL", "5m")
	t.Setenv("CACHE_DB", "3")

	c, err := New()
	require.NoError(t, err)
	assert.NoError(t, c.Validate())
	assert.Equal(t, []string{"cosmoshub-4", "irishub_1", "osmosis-1"}, c.SyncChainIDs)
	assert.False(t, c.SyncChainsFromDB)
	assert.Equal(t, 4, c.IndexConcurrency)
	assert.Equal(t, 2*time.Minute, c.IndexBuildTimeout)
	assert.Equal(t, time.Hour, c.SchemaTimeout)
	assert.Equal(t, 5*time.Minute, c.LockTTL)
	assert.Equal(t, 3, c.CacheDB)
}

func TestNew_InvalidConcurrency(t *testing.T) {
	t.Setenv("INDEX_CONCURRENCY", "0")
	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, 1, c.IndexConcurrency)
}
