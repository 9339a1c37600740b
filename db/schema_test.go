// Package db
package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/kardiachain/ibc-explorer-backend/types"
)

func catalogOf(cIdx CIndex) []types.IndexInfo {
	var catalog []types.IndexInfo
	for _, model := range cIdx.Models {
		keys := model.Keys.(bson.D)
		stored := make(bson.D, 0, len(keys))
		for _, k := range keys {
			stored = append(stored, bson.E{Key: k.Key, Value: int32(k.Value.(int))})
		}
		info := types.IndexInfo{Name: IndexName(model), Key: stored}
		if model.Options.Unique != nil {
			info.Unique = *model.Options.Unique
		}
		info.ExpireAfterSeconds = model.Options.ExpireAfterSeconds
		catalog = append(catalog, info)
	}
	return catalog
}

func TestDiffIndexes_Match(t *testing.T) {
	for _, cIdx := range Schema([]string{"cosmoshub-4"}) {
		assert.Empty(t, diffIndexes(cIdx, catalogOf(cIdx)), cIdx.Collection)
	}
}

func TestDiffIndexes_Missing(t *testing.T) {
	cIdx := CIndex{Collection: types.CIbcTx, Models: createIbcTxCollectionIndexes()}
	catalog := catalogOf(cIdx)[1:]

	diffs := diffIndexes(cIdx, catalog)
	require.Len(t, diffs, 1)
	assert.Equal(t, types.IndexMissing, diffs[0].Kind)
	assert.Equal(t, "{sc_tx_info.hash: -1}", diffs[0].Keys)
}

func TestDiffIndexes_Mismatch(t *testing.T) {
	chain := CIndex{Collection: types.CChain, Models: createChainCollectionIndexes()}
	catalog := catalogOf(chain)
	catalog[0].Unique = false
	diffs := diffIndexes(chain, catalog)
	require.Len(t, diffs, 1)
	assert.Equal(t, types.IndexMismatch, diffs[0].Kind)
	assert.Equal(t, "unique=false, want true", diffs[0].Detail)

	search := CIndex{Collection: types.CSearchRecord, Models: createSearchRecordCollectionIndexes()}
	catalog = catalogOf(search)
	shorter := int32(3600)
	catalog[0].ExpireAfterSeconds = &shorter
	diffs = diffIndexes(search, catalog)
	require.Len(t, diffs, 1)
	assert.Equal(t, "expireAfterSeconds=3600, want 31536000", diffs[0].Detail)

	stats := CIndex{Collection: types.CRelayerStatistics, Models: createRelayerStatisticsCollectionIndexes()}
	catalog = catalogOf(stats)
	catalog[0].Name = "transfer_base_denom_1_address_1_statistic_id_1_segment_start_time_-1_segment_end_time_-1"
	diffs = diffIndexes(stats, catalog)
	require.Len(t, diffs, 1)
	assert.Contains(t, diffs[0].Detail, "want relayer_statistics_unique")
}

func TestSameKeys(t *testing.T) {
	declared := bson.D{{Key: "status", Value: -1}, {Key: "tx_time", Value: -1}}

	assert.True(t, sameKeys(bson.D{{Key: "status", Value: int32(-1)}, {Key: "tx_time", Value: float64(-1)}}, declared))
	assert.False(t, sameKeys(bson.D{{Key: "tx_time", Value: -1}, {Key: "status", Value: -1}}, declared))
	assert.False(t, sameKeys(bson.D{{Key: "status", Value: 1}, {Key: "tx_time", Value: -1}}, declared))
	assert.False(t, sameKeys(bson.D{{Key: "status", Value: -1}}, declared))
	assert.False(t, sameKeys(bson.D{{Key: "status", Value: "text"}, {Key: "tx_time", Value: -1}}, declared))
}
