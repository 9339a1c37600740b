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
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/kardiachain/ibc-explorer-backend/types"
)

type mongoDB struct {
	logger  *zap.Logger
	wrapper *KaiMgo
	client  *mongo.Client
	cfg     Config
}

func newMongoDB(cfg Config) (*mongoDB, error) {
	cfg.Logger.Debug("Create mgo with config", zap.String("db", cfg.DbName), zap.Int("minConn", cfg.MinConn), zap.Int("maxConn", cfg.MaxConn))

	ctx := context.Background()
	dbClient := &mongoDB{
		logger:  cfg.Logger.With(zap.String("storage", string(MGO))),
		wrapper: &KaiMgo{},
		cfg:     cfg,
	}
	if dbClient.cfg.IndexConcurrency < 1 {
		dbClient.cfg.IndexConcurrency = 1
	}
	mgoOptions := options.Client()
	mgoOptions.ApplyURI(cfg.URL)
	mgoOptions.SetMinPoolSize(uint64(cfg.MinConn))
	mgoOptions.SetMaxPoolSize(uint64(cfg.MaxConn))
	mgoClient, err := mongo.Connect(ctx, mgoOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrConnection, err)
	}
	dbClient.client = mgoClient
	dbClient.wrapper.Database(mgoClient.Database(cfg.DbName))

	if err := dbClient.ping(ctx); err != nil {
		_ = mgoClient.Disconnect(ctx)
		return nil, fmt.Errorf("%w: %v", types.ErrConnection, err)
	}

	if cfg.FlushDB {
		cfg.Logger.Info("Start flush database")
		if err := dbClient.dropDatabase(ctx); err != nil {
			return nil, err
		}
	}

	return dbClient, nil
}

//region General

func (m *mongoDB) ping(ctx context.Context) error {
	return m.wrapper.Ping(ctx)
}

func (m *mongoDB) dropDatabase(ctx context.Context) error {
	return m.wrapper.DropDatabase(ctx)
}

func (m *mongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

//endregion General
