package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncTxCollectionName(t *testing.T) {
	cases := map[string]string{
		"cosmoshub-4":  "sync_cosmoshub_4_tx",
		"irishub_1":    "sync_irishub_1_tx",
		"osmosis-1":    "sync_osmosis_1_tx",
		"bigbang-test": "sync_bigbang_test_tx",
	}
	for chainID, want := range cases {
		assert.Equal(t, want, SyncTxCollectionName(chainID), chainID)
		assert.Equal(t, want, SyncTx{}.CollectionName(chainID))
	}
}

func TestCollectionNames(t *testing.T) {
	assert.Equal(t, "ibc_chain", Chain{}.CollectionName())
	assert.Equal(t, "chain_registry", ChainRegistry{}.CollectionName())
	assert.Equal(t, "ibc_relayer", Relayer{}.CollectionName())
	assert.Equal(t, "ibc_relayer_config", RelayerConfig{}.CollectionName())
	assert.Equal(t, "ibc_relayer_statistics", RelayerStatistics{}.CollectionName())
	assert.Equal(t, "ibc_channel", Channel{}.CollectionName())
	assert.Equal(t, "ibc_channel_statistics", ChannelStatistics{}.CollectionName())
	assert.Equal(t, "ibc_token", Token{}.CollectionName())
	assert.Equal(t, "ibc_token_statistics", TokenStatistics{}.CollectionName())
	assert.Equal(t, "ibc_token_trace", TokenTrace{}.CollectionName())
	assert.Equal(t, "ibc_token_trace_statistics", TokenTraceStatistics{}.CollectionName())
	assert.Equal(t, "ex_ibc_tx", IbcTx{}.CollectionName(false))
	assert.Equal(t, "ex_ibc_tx_latest", IbcTx{}.CollectionName(true))
	assert.Equal(t, "ex_search_record", SearchRecord{}.CollectionName())
}

func TestRelayer_Valid(t *testing.T) {
	r := Relayer{ChainA: "cosmoshub_4", ChainB: "irishub_1", ChannelA: "channel-182", ChannelB: "channel-12"}
	assert.False(t, r.Valid())
	r.ChainBAddress = "iaa1xyz"
	assert.True(t, r.Valid())
	r.ChannelB = ""
	assert.False(t, r.Valid())
}
