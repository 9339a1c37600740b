// Package types
package types

import (
	"strings"
)

const (
	CChain         = "ibc_chain"
	CChainRegistry = "chain_registry"

	syncTxCollectionPrefix = "sync_"
	syncTxCollectionSuffix = "_tx"
)

type Chain struct {
	ChainId          string   `json:"chainId" bson:"chain_id"`
	ChainName        string   `json:"chainName" bson:"chain_name"`
	Icon             string   `json:"icon" bson:"icon"`
	Lcd              string   `json:"lcd" bson:"lcd"`
	Channels         int64    `json:"channels" bson:"channels"`
	ConnectedChains  int64    `json:"connectedChains" bson:"connected_chains"`
	Relayers         int64    `json:"relayers" bson:"relayers"`
	IbcTokens        int64    `json:"ibcTokens" bson:"ibc_tokens"`
	TransferTxs      int64    `json:"transferTxs" bson:"transfer_txs"`
	TransferTxsValue string   `json:"transferTxsValue" bson:"transfer_txs_value"`
	GrpcNodes        []string `json:"grpcNodes" bson:"grpc_nodes"`
	CreateAt         int64    `json:"createAt" bson:"create_at"`
	UpdateAt         int64    `json:"updateAt" bson:"update_at"`
}

func (c Chain) CollectionName() string {
	return CChain
}

type ChainRegistry struct {
	ChainId      string `json:"chainId" bson:"chain_id"`
	ChainJsonUrl string `json:"chainJsonUrl" bson:"chain_json_url"`
}

func (c ChainRegistry) CollectionName() string {
	return CChainRegistry
}

// FormatChainID turns a chain id into the form used inside collection names.
func FormatChainID(chainID string) string {
	return strings.ReplaceAll(chainID, "-", "_")
}

// SyncTxCollectionName returns the raw transaction collection of a chain, e.g.
// "cosmoshub-4" -> "sync_cosmoshub_4_tx".
func SyncTxCollectionName(chainID string) string {
	return syncTxCollectionPrefix + FormatChainID(chainID) + syncTxCollectionSuffix
}
