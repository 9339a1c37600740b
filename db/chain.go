// Package db
package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/kardiachain/ibc-explorer-backend/types"
)

// SyncChainIDs lists the chains already registered in ibc_chain.
func (m *mongoDB) SyncChainIDs(ctx context.Context) ([]string, error) {
	values, err := m.wrapper.C(types.CChain).Distinct(ctx, "chain_id", bson.M{})
	if err != nil {
		return nil, err
	}
	chainIDs := make([]string, 0, len(values))
	for _, v := range values {
		chainID, ok := v.(string)
		if !ok || chainID == "" {
			m.logger.Warn("skip invalid chain id", zap.Any("chainId", v))
			continue
		}
		chainIDs = append(chainIDs, chainID)
	}
	return chainIDs, nil
}

// MergeChainIDs joins chain id lists keeping the first occurrence of every
// sync collection, so "cosmoshub-4" and "cosmoshub_4" count once.
func MergeChainIDs(lists ...[]string) []string {
	seen := make(map[string]struct{})
	var merged []string
	for _, list := range lists {
		for _, chainID := range list {
			if chainID == "" {
				continue
			}
			name := types.SyncTxCollectionName(chainID)
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			merged = append(merged, chainID)
		}
	}
	return merged
}
