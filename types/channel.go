// Package types
package types

const (
	CChannel           = "ibc_channel"
	CChannelStatistics = "ibc_channel_statistics"
)

type ChannelStatus int

const (
	ChannelOpened ChannelStatus = 1
	ChannelClosed ChannelStatus = 2
)

type Channel struct {
	ChannelId        string        `json:"channelId" bson:"channel_id"`
	ChainA           string        `json:"chainA" bson:"chain_a"`
	ChainB           string        `json:"chainB" bson:"chain_b"`
	ChannelA         string        `json:"channelA" bson:"channel_a"`
	ChannelB         string        `json:"channelB" bson:"channel_b"`
	Status           ChannelStatus `json:"status" bson:"status"`
	OperatingPeriod  int64         `json:"operatingPeriod" bson:"operating_period"`
	Relayers         int64         `json:"relayers" bson:"relayers"`
	LatestSettlement int64         `json:"latestSettlement" bson:"latest_settlement"`
	TransferTxs      int64         `json:"transferTxs" bson:"transfer_txs"`
	TransferTxsValue string        `json:"transferTxsValue" bson:"transfer_txs_value"`
	CreateAt         int64         `json:"createAt" bson:"create_at"`
	UpdateAt         int64         `json:"updateAt" bson:"update_at"`
}

func (c Channel) CollectionName() string {
	return CChannel
}

type ChannelStatistics struct {
	ChannelId        string `json:"channelId" bson:"channel_id"`
	BaseDenom        string `json:"baseDenom" bson:"base_denom"`
	BaseDenomChainId string `json:"baseDenomChainId" bson:"base_denom_chain_id"`
	TransferTxs      int64  `json:"transferTxs" bson:"transfer_txs"`
	TransferAmount   string `json:"transferAmount" bson:"transfer_amount"`
	SegmentStartTime int64  `json:"segmentStartTime" bson:"segment_start_time"`
	SegmentEndTime   int64  `json:"segmentEndTime" bson:"segment_end_time"`
	CreateAt         int64  `json:"createAt" bson:"create_at"`
	UpdateAt         int64  `json:"updateAt" bson:"update_at"`
}

func (c ChannelStatistics) CollectionName() string {
	return CChannelStatistics
}
