/*
 *  Copyright 2018 KardiaChain
 *  This file is part of the go-kardia library.
 *
 *  The go-kardia library is free software: you can redistribute it and/or modify
 *  it under the terms of the GNU Lesser General Public License as published by
 *  the Free Software Foundation, either version 3 of the License, or
 *  (at your option) any later version.
 *
 *  The go-kardia library is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
 *  GNU Lesser General Public License for more details.
 *
 *  You should have received a copy of the GNU Lesser General Public License
 *  along with the go-kardia library. If not, see <http://www.gnu.org/licenses/>.
 */

// Package cfg
package cfg

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ModeDev        = "dev"
	ModeProduction = "prod"
)

type SchemaConfig struct {
	ServerMode string
	LogLevel   string
	SentryDSN  string

	StorageDriver  string
	StorageURI     string
	StorageDB      string
	StorageMinConn int
	StorageMaxConn int

	SyncChainIDs     []string
	SyncChainsFromDB bool

	IndexConcurrency  int
	IndexBuildTimeout time.Duration
	SchemaTimeout     time.Duration

	CacheEngine   string
	CacheURL      string
	CacheDB       int
	CachePassword string
	LockTTL       time.Duration
}

func New() (SchemaConfig, error) {
	storageMinConnStr := os.Getenv("STORAGE_MIN_CONN")
	storageMinConn, err := strconv.Atoi(storageMinConnStr)
	if err != nil {
		storageMinConn = 1
	}

	storageMaxConnStr := os.Getenv("STORAGE_MAX_CONN")
	storageMaxConn, err := strconv.Atoi(storageMaxConnStr)
	if err != nil {
		storageMaxConn = 8
	}

	storageDriver := os.Getenv("STORAGE_DRIVER")
	if storageDriver == "" {
		storageDriver = "mgo"
	}

	var syncChainIDs []string
	syncChainIDsStr := os.Getenv("SYNC_CHAIN_IDS")
	if syncChainIDsStr != "" {
		for _, chainID := range strings.Split(syncChainIDsStr, ",") {
			if chainID = strings.TrimSpace(chainID); chainID != "" {
				syncChainIDs = append(syncChainIDs, chainID)
			}
		}
	}

	syncChainsFromDBStr := os.Getenv("SYNC_CHAINS_FROM_DB")
	syncChainsFromDB, err := strconv.ParseBool(syncChainsFromDBStr)
	if err != nil {
		syncChainsFromDB = true
	}

	indexConcurrencyStr := os.Getenv("INDEX_CONCURRENCY")
	indexConcurrency, err := strconv.Atoi(indexConcurrencyStr)
	if err != nil || indexConcurrency < 1 {
		indexConcurrency = 1
	}

	indexBuildTimeoutStr := os.Getenv("INDEX_BUILD_TIMEOUT")
	indexBuildTimeout, err := time.ParseDuration(indexBuildTimeoutStr)
	if err != nil {
		indexBuildTimeout = 0
	}

	schemaTimeoutStr := os.Getenv("SCHEMA_TIMEOUT")
	schemaTimeout, err := time.ParseDuration(schemaTimeoutStr)
	if err != nil {
		schemaTimeout = 10 * time.Minute
	}

	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		cacheDB = 0
	}

	lockTTLStr := os.Getenv("LOCK_TTL")
	lockTTL, err := time.ParseDuration(lockTTLStr)
	if err != nil {
		lockTTL = 30 * time.Minute
	}

	cacheEngine := os.Getenv("CACHE_ENGINE")
	if cacheEngine == "" {
		cacheEngine = "redis"
	}

	cfg := SchemaConfig{
		ServerMode: os.Getenv("SERVER_MODE"),
		LogLevel:   os.Getenv("LOG_LEVEL"),
		SentryDSN:  os.Getenv("SENTRY_DSN"),

		StorageDriver:  storageDriver,
		StorageURI:     os.Getenv("STORAGE_URI"),
		StorageDB:      os.Getenv("STORAGE_DB"),
		StorageMinConn: storageMinConn,
		StorageMaxConn: storageMaxConn,

		SyncChainIDs:     syncChainIDs,
		SyncChainsFromDB: syncChainsFromDB,

		IndexConcurrency:  indexConcurrency,
		IndexBuildTimeout: indexBuildTimeout,
		SchemaTimeout:     schemaTimeout,

		CacheEngine:   cacheEngine,
		CacheURL:      os.Getenv("CACHE_URL"),
		CacheDB:       cacheDB,
		CachePassword: os.Getenv("CACHE_PASSWORD"),
		LockTTL:       lockTTL,
	}

	return cfg, nil
}

// Validate checks the settings needed to reach the database.
func (c SchemaConfig) Validate() error {
	if c.StorageURI == "" {
		return errors.New("missing STORAGE_URI in config")
	}
	if c.StorageDB == "" {
		return errors.New("missing STORAGE_DB in config")
	}
	return nil
}
