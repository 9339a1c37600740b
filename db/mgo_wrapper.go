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
// Package db
package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kardiachain/ibc-explorer-backend/types"
)

type KaiMgo struct {
	DB  *mongo.Database
	col *mongo.Collection
}

func (w *KaiMgo) Database(db *mongo.Database) {
	w.DB = db
}

// C returns a wrapper bound to the named collection. The receiver is left
// untouched so wrappers can be used from several goroutines.
func (w *KaiMgo) C(name string) *KaiMgo {
	return &KaiMgo{DB: w.DB, col: w.DB.Collection(name)}
}

func (w *KaiMgo) Ping(ctx context.Context) error {
	return w.DB.Client().Ping(ctx, nil)
}

// EnsureIndex creates the indexes one at a time, stopping at the first failure.
// An identical existing index is a no-op on the server.
func (w *KaiMgo) EnsureIndex(ctx context.Context, model []mongo.IndexModel, maxTime time.Duration) error {
	opts := options.CreateIndexes()
	if maxTime > 0 {
		opts.SetMaxTime(maxTime)
	}
	for _, m := range model {
		if _, err := w.col.Indexes().CreateOne(ctx, m, opts); err != nil {
			return &types.IndexError{
				Collection: w.col.Name(),
				Index:      IndexName(m),
				Kind:       classifyError(err),
				Err:        err,
			}
		}
	}
	return nil
}

func (w *KaiMgo) ListIndexes(ctx context.Context) ([]types.IndexInfo, error) {
	cursor, err := w.col.Indexes().List(ctx)
	if err != nil {
		return nil, err
	}
	var indexes []types.IndexInfo
	if err := cursor.All(ctx, &indexes); err != nil {
		return nil, err
	}
	return indexes, nil
}

func (w *KaiMgo) Distinct(ctx context.Context, field string, filter interface{}, opts ...*options.DistinctOptions) ([]interface{}, error) {
	return w.col.Distinct(ctx, field, filter, opts...)
}

func (w *KaiMgo) Count(ctx context.Context, filter interface{},
	opts ...*options.CountOptions) (int64, error) {
	return w.col.CountDocuments(ctx, filter, opts...)
}

func (w *KaiMgo) Insert(ctx context.Context, document interface{},
	opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	return w.col.InsertOne(ctx, document, opts...)
}

func (w *KaiMgo) DropDatabase(ctx context.Context) error {
	if err := w.DB.Drop(ctx); err != nil {
		return err
	}
	return nil
}
