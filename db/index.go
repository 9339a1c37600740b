// Package db
package db

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kardiachain/ibc-explorer-backend/types"
)

const (
	relayerStatisticsIndexName = "relayer_statistics_unique"
	channelStatisticsIndexName = "channel_statistics_unique"

	searchRecordExpireAfterSeconds int32 = 31536000
)

// CIndex is the set of indexes declared for one collection.
type CIndex struct {
	Collection string
	Models     []mongo.IndexModel
}

// Schema returns the full, ordered index declaration. chainIDs only decide which
// sync_<chain>_tx collections are part of it.
func Schema(chainIDs []string) []CIndex {
	indexes := []CIndex{
		{Collection: types.CChain, Models: createChainCollectionIndexes()},
		{Collection: types.CChainRegistry, Models: createChainRegistryCollectionIndexes()},
		{Collection: types.CRelayer, Models: createRelayerCollectionIndexes()},
		{Collection: types.CRelayerConfig, Models: createRelayerConfigCollectionIndexes()},
		{Collection: types.CRelayerStatistics, Models: createRelayerStatisticsCollectionIndexes()},
		{Collection: types.CChannel, Models: createChannelCollectionIndexes()},
		{Collection: types.CChannelStatistics, Models: createChannelStatisticsCollectionIndexes()},
		{Collection: types.CToken, Models: createTokenCollectionIndexes()},
		{Collection: types.CTokenStatistics, Models: createTokenStatisticsCollectionIndexes()},
		{Collection: types.CTokenTrace, Models: createTokenTraceCollectionIndexes()},
		{Collection: types.CTokenTraceStatistics, Models: createTokenTraceStatisticsCollectionIndexes()},
		{Collection: types.CIbcTx, Models: createIbcTxCollectionIndexes()},
		{Collection: types.CIbcTxLatest, Models: createIbcTxLatestCollectionIndexes()},
	}
	for _, chainID := range chainIDs {
		indexes = append(indexes, CIndex{Collection: types.SyncTxCollectionName(chainID), Models: createSyncTxCollectionIndexes()})
	}
	indexes = append(indexes, CIndex{Collection: types.CSearchRecord, Models: createSearchRecordCollectionIndexes()})
	return indexes
}

func uniqueIndex() *options.IndexOptions {
	return options.Index().SetBackground(true).SetUnique(true)
}

func lookupIndex() *options.IndexOptions {
	return options.Index().SetBackground(true)
}

func createChainCollectionIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "chain_id", Value: -1}}, Options: uniqueIndex()},
	}
}

func createChainRegistryCollectionIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "chain_id", Value: 1}}, Options: uniqueIndex()},
	}
}

// Each side of a relayer pair is unique on its own.
func createRelayerCollectionIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "chain_a", Value: -1}, {Key: "channel_a", Value: -1}, {Key: "chain_a_address", Value: -1}}, Options: uniqueIndex()},
		{Keys: bson.D{{Key: "chain_b", Value: -1}, {Key: "channel_b", Value: -1}, {Key: "chain_b_address", Value: -1}}, Options: uniqueIndex()},
	}
}

func createRelayerConfigCollectionIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "relayer_pair_id", Value: 1}}, Options: uniqueIndex()},
	}
}

func createRelayerStatisticsCollectionIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "transfer_base_denom", Value: 1},
				{Key: "address", Value: 1},
				{Key: "statistic_id", Value: 1},
				{Key: "segment_start_time", Value: -1},
				{Key: "segment_end_time", Value: -1},
			},
			Options: uniqueIndex().SetName(relayerStatisticsIndexName),
		},
	}
}

func createChannelCollectionIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "channel_id", Value: 1}}, Options: uniqueIndex()},
	}
}

func createChannelStatisticsCollectionIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "channel_id", Value: 1},
				{Key: "base_denom", Value: 1},
				{Key: "base_denom_chain_id", Value: 1},
				{Key: "segment_start_time", Value: -1},
				{Key: "segment_end_time", Value: -1},
			},
			Options: uniqueIndex().SetName(channelStatisticsIndexName),
		},
	}
}

func createTokenCollectionIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "base_denom", Value: 1}, {Key: "chain_id", Value: 1}}, Options: uniqueIndex()},
	}
}

func createTokenStatisticsCollectionIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "base_denom", Value: 1},
				{Key: "base_denom_chain_id", Value: 1},
				{Key: "segment_start_time", Value: -1},
				{Key: "segment_end_time", Value: -1},
			},
			Options: uniqueIndex(),
		},
	}
}

func createTokenTraceCollectionIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "denom", Value: 1}, {Key: "chain_id", Value: 1}}, Options: uniqueIndex()},
	}
}

func createTokenTraceStatisticsCollectionIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "denom", Value: 1},
				{Key: "chain_id", Value: 1},
				{Key: "segment_start_time", Value: -1},
				{Key: "segment_end_time", Value: -1},
			},
			Options: uniqueIndex(),
		},
	}
}

// Some of these share a status prefix. They back different list queries and are all kept.
func createIbcTxCollectionIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "sc_tx_info.hash", Value: -1}}, Options: lookupIndex()},
		{Keys: bson.D{{Key: "dc_tx_info.hash", Value: -1}}, Options: lookupIndex()},
		{Keys: bson.D{{Key: "refunded_tx_info.hash", Value: -1}}, Options: lookupIndex()},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "sc_tx_info.status", Value: 1}}, Options: lookupIndex()},
		{Keys: bson.D{{Key: "base_denom", Value: 1}, {Key: "status", Value: 1}}, Options: lookupIndex()},
		{Keys: bson.D{{Key: "dc_tx_info.status", Value: 1}}, Options: lookupIndex()},
		{Keys: bson.D{{Key: "status", Value: -1}, {Key: "tx_time", Value: -1}}, Options: lookupIndex()},
		{Keys: bson.D{{Key: "create_at", Value: 1}, {Key: "status", Value: 1}}, Options: lookupIndex()},
	}
}

func createIbcTxLatestCollectionIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "denoms.sc_denom", Value: -1}}, Options: lookupIndex()},
		{Keys: bson.D{{Key: "denoms.dc_denom", Value: -1}}, Options: lookupIndex()},
		{Keys: bson.D{{Key: "sc_tx_info.hash", Value: -1}}, Options: lookupIndex()},
		{Keys: bson.D{{Key: "dc_tx_info.hash", Value: -1}}, Options: lookupIndex()},
		{Keys: bson.D{{Key: "refunded_tx_info.hash", Value: -1}}, Options: lookupIndex()},
		{Keys: bson.D{{Key: "status", Value: -1}, {Key: "tx_time", Value: -1}}, Options: lookupIndex()},
		{Keys: bson.D{{Key: "base_denom", Value: 1}, {Key: "status", Value: 1}}, Options: lookupIndex()},
		{Keys: bson.D{{Key: "dc_tx_info.status", Value: 1}}, Options: lookupIndex()},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "sc_tx_info.status", Value: 1}}, Options: lookupIndex()},
		{Keys: bson.D{{Key: "sc_chain_id", Value: 1}, {Key: "status", Value: 1}}, Options: lookupIndex()},
		{Keys: bson.D{{Key: "dc_chain_id", Value: 1}, {Key: "status", Value: 1}}, Options: lookupIndex()},
		{Keys: bson.D{{Key: "sc_chain_id", Value: 1}, {Key: "dc_chain_id", Value: 1}, {Key: "status", Value: 1}}, Options: lookupIndex()},
		{Keys: bson.D{{Key: "create_at", Value: 1}, {Key: "status", Value: 1}}, Options: lookupIndex()},
	}
}

func createSyncTxCollectionIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "tx_hash", Value: -1}, {Key: "height", Value: -1}}, Options: uniqueIndex()},
		{Keys: bson.D{{Key: "height", Value: -1}}, Options: lookupIndex()},
		{Keys: bson.D{{Key: "types", Value: -1}, {Key: "height", Value: -1}}, Options: lookupIndex()},
		{Keys: bson.D{{Key: "msgs.msg.packet_id", Value: -1}}, Options: lookupIndex()},
		{Keys: bson.D{{Key: "msgs.msg.signer", Value: 1}, {Key: "msgs.type", Value: 1}, {Key: "time", Value: 1}}, Options: lookupIndex()},
	}
}

// create_at must hold a BSON date, the TTL monitor skips every other type.
func createSearchRecordCollectionIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "create_at", Value: 1}}, Options: options.Index().SetExpireAfterSeconds(searchRecordExpireAfterSeconds)},
	}
}

// IndexName is the name mongo gives an index: the explicit one if set, else
// the keys and directions joined by "_", e.g. chain_id_-1.
func IndexName(model mongo.IndexModel) string {
	if model.Options != nil && model.Options.Name != nil {
		return *model.Options.Name
	}
	keys, _ := model.Keys.(bson.D)
	name := ""
	for i, k := range keys {
		if i > 0 {
			name += "_"
		}
		name += fmt.Sprintf("%s_%v", k.Key, k.Value)
	}
	return name
}
