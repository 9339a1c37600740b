// Package types
package types

const (
	CRelayer           = "ibc_relayer"
	CRelayerConfig     = "ibc_relayer_config"
	CRelayerStatistics = "ibc_relayer_statistics"
)

type RelayerStatus int

const (
	RelayerRunning RelayerStatus = 1
	RelayerStop    RelayerStatus = 2
)

type Relayer struct {
	RelayerId             string        `json:"relayerId" bson:"relayer_id"`
	ChainA                string        `json:"chainA" bson:"chain_a"`
	ChainB                string        `json:"chainB" bson:"chain_b"`
	ChannelA              string        `json:"channelA" bson:"channel_a"`
	ChannelB              string        `json:"channelB" bson:"channel_b"`
	ChainAAddress         string        `json:"chainAAddress" bson:"chain_a_address"`
	ChainAAllAddress      []string      `json:"chainAAllAddress" bson:"chain_a_all_address"`
	ChainBAddress         string        `json:"chainBAddress" bson:"chain_b_address"`
	TimePeriod            int64         `json:"timePeriod" bson:"time_period"`
	Status                RelayerStatus `json:"status" bson:"status"`
	UpdateTime            int64         `json:"updateTime" bson:"update_time"`
	TransferTotalTxs      int64         `json:"transferTotalTxs" bson:"transfer_total_txs"`
	TransferSuccessTxs    int64         `json:"transferSuccessTxs" bson:"transfer_success_txs"`
	TransferTotalTxsValue string        `json:"transferTotalTxsValue" bson:"transfer_total_txs_value"`
	CreateAt              int64         `json:"createAt" bson:"create_at"`
	UpdateAt              int64         `json:"updateAt" bson:"update_at"`
}

func (r Relayer) CollectionName() string {
	return CRelayer
}

// Valid reports whether both sides of the pair are identified well enough to be stored.
func (r Relayer) Valid() bool {
	return r.ChainA != "" && r.ChainB != "" && r.ChannelA != "" && r.ChannelB != "" &&
		(r.ChainAAddress != "" || r.ChainBAddress != "")
}

type RelayerConfig struct {
	RelayerPairId string `json:"relayerPairId" bson:"relayer_pair_id"`
	ChainA        string `json:"chainA" bson:"chain_a"`
	ChainB        string `json:"chainB" bson:"chain_b"`
	ChannelA      string `json:"channelA" bson:"channel_a"`
	ChannelB      string `json:"channelB" bson:"channel_b"`
	ChainAAddress string `json:"chainAAddress" bson:"chain_a_address"`
	ChainBAddress string `json:"chainBAddress" bson:"chain_b_address"`
	RelayerName   string `json:"relayerName" bson:"relayer_name"`
	Icon          string `json:"icon" bson:"icon"`
}

func (r RelayerConfig) CollectionName() string {
	return CRelayerConfig
}

type RelayerStatistics struct {
	StatisticId       string `json:"statisticId" bson:"statistic_id"`
	Address           string `json:"address" bson:"address"`
	TransferBaseDenom string `json:"transferBaseDenom" bson:"transfer_base_denom"`
	TransferAmount    string `json:"transferAmount" bson:"transfer_amount"`
	SuccessTotalTxs   int64  `json:"successTotalTxs" bson:"success_total_txs"`
	TotalTxs          int64  `json:"totalTxs" bson:"total_txs"`
	SegmentStartTime  int64  `json:"segmentStartTime" bson:"segment_start_time"`
	SegmentEndTime    int64  `json:"segmentEndTime" bson:"segment_end_time"`
	CreateAt          int64  `json:"createAt" bson:"create_at"`
	UpdateAt          int64  `json:"updateAt" bson:"update_at"`
}

func (r RelayerStatistics) CollectionName() string {
	return CRelayerStatistics
}
