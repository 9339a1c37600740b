// Package db
package db

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/kardiachain/ibc-explorer-backend/types"
)

type Adapter string

const (
	MGO Adapter = "mgo"
)

type Config struct {
	DbAdapter Adapter
	DbName    string
	URL       string
	MinConn   int
	MaxConn   int
	FlushDB   bool

	// IndexConcurrency is how many collections get their indexes built at once.
	IndexConcurrency int
	// IndexBuildTimeout bounds every createIndexes command on the server side, 0 means no bound.
	IndexBuildTimeout time.Duration

	Logger *zap.Logger
}

type ISchema interface {
	EnsureSchema(ctx context.Context, chainIDs []string) error
	VerifySchema(ctx context.Context, chainIDs []string) ([]types.IndexDiff, error)
	Indexes(ctx context.Context, collection string) ([]types.IndexInfo, error)
}

type IChain interface {
	SyncChainIDs(ctx context.Context) ([]string, error)
}

type Client interface {
	ping(ctx context.Context) error
	dropDatabase(ctx context.Context) error

	ISchema
	IChain

	Close(ctx context.Context) error
}

func NewClient(cfg Config) (Client, error) {
	switch cfg.DbAdapter {
	case MGO:
		return newMongoDB(cfg)
	default:
		return nil, errors.New("invalid db config")
	}
}
