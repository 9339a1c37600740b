// Package main
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/kardiachain/ibc-explorer-backend/cache"
	"github.com/kardiachain/ibc-explorer-backend/db"
	"github.com/kardiachain/ibc-explorer-backend/types"
)

const schemaLockKey = "dbinit:schema"

var errSchemaDrift = errors.New("schema differs from declaration")

func (a *app) connect(ctx context.Context) (db.Client, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}
	return db.NewClient(db.Config{
		DbAdapter:         db.Adapter(a.cfg.StorageDriver),
		DbName:            a.cfg.StorageDB,
		URL:               a.cfg.StorageURI,
		MinConn:           a.cfg.StorageMinConn,
		MaxConn:           a.cfg.StorageMaxConn,
		IndexConcurrency:  a.cfg.IndexConcurrency,
		IndexBuildTimeout: a.cfg.IndexBuildTimeout,
		Logger:            a.logger,
	})
}

// chainIDs merges configured chains with the ones already registered in ibc_chain.
func (a *app) chainIDs(ctx context.Context, dbClient db.Client) ([]string, error) {
	if !a.cfg.SyncChainsFromDB {
		return db.MergeChainIDs(a.cfg.SyncChainIDs), nil
	}
	registered, err := dbClient.SyncChainIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list registered chains: %w", err)
	}
	return db.MergeChainIDs(a.cfg.SyncChainIDs, registered), nil
}

func (a *app) apply(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.SchemaTimeout)
	defer cancel()

	dbClient, err := a.connect(ctx)
	if err != nil {
		return err
	}
	defer dbClient.Close(context.Background())

	if a.cfg.CacheURL != "" {
		locker, err := cache.New(cache.Config{
			Adapter:  cache.Adapter(a.cfg.CacheEngine),
			URL:      a.cfg.CacheURL,
			DB:       a.cfg.CacheDB,
			Password: a.cfg.CachePassword,
			Logger:   a.logger,
		})
		if err != nil {
			return fmt.Errorf("connect cache: %w", err)
		}
		defer locker.Close()

		token, err := locker.Lock(ctx, schemaLockKey, a.cfg.LockTTL)
		if err != nil {
			return err
		}
		defer func() {
			if err := locker.Unlock(context.Background(), schemaLockKey, token); err != nil {
				a.logger.Warn("cannot release schema lock", zap.Error(err))
			}
		}()
	}

	chainIDs, err := a.chainIDs(ctx, dbClient)
	if err != nil {
		return err
	}
	a.logger.Info("Start ensure schema", zap.String("db", a.cfg.StorageDB), zap.Strings("chains", chainIDs))
	return dbClient.EnsureSchema(ctx, chainIDs)
}

func (a *app) verify(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.SchemaTimeout)
	defer cancel()

	dbClient, err := a.connect(ctx)
	if err != nil {
		return err
	}
	defer dbClient.Close(context.Background())

	chainIDs, err := a.chainIDs(ctx, dbClient)
	if err != nil {
		return err
	}
	diffs, err := dbClient.VerifySchema(ctx, chainIDs)
	if err != nil {
		return err
	}
	for _, d := range diffs {
		a.logger.Warn("index differs", zap.String("collection", d.Collection), zap.String("keys", d.Keys),
			zap.String("kind", string(d.Kind)), zap.String("detail", d.Detail))
	}
	if len(diffs) > 0 {
		return fmt.Errorf("%w: %d indexes", errSchemaDrift, len(diffs))
	}
	a.logger.Info("Schema verified", zap.Strings("chains", chainIDs))
	return nil
}

func (a *app) plan(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COLLECTION\tINDEX\tKEYS\tOPTIONS")
	for _, cIdx := range db.Schema(db.MergeChainIDs(a.cfg.SyncChainIDs)) {
		for _, model := range cIdx.Models {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", cIdx.Collection, db.IndexName(model), keySpec(model), optionSpec(model))
		}
	}
	return w.Flush()
}

func keySpec(model mongo.IndexModel) string {
	keys, _ := model.Keys.(bson.D)
	return types.KeySpec(keys)
}

func optionSpec(model mongo.IndexModel) string {
	var opts []string
	if o := model.Options; o != nil {
		if o.Unique != nil && *o.Unique {
			opts = append(opts, "unique")
		}
		if o.Background != nil && *o.Background {
			opts = append(opts, "background")
		}
		if o.ExpireAfterSeconds != nil {
			opts = append(opts, fmt.Sprintf("expireAfterSeconds=%d", *o.ExpireAfterSeconds))
		}
	}
	if len(opts) == 0 {
		return "-"
	}
	return strings.Join(opts, ",")
}

func errorFields(err error) []zap.Field {
	fields := []zap.Field{zap.Error(err)}
	var idxErr *types.IndexError
	if errors.As(err, &idxErr) {
		fields = append(fields, zap.String("collection", idxErr.Collection), zap.String("index", idxErr.Index))
		if idxErr.Kind != nil {
			fields = append(fields, zap.String("kind", idxErr.Kind.Error()))
		}
	}
	return fields
}
