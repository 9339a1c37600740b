// Package types
package types

const (
	CToken                = "ibc_token"
	CTokenStatistics      = "ibc_token_statistics"
	CTokenTrace           = "ibc_token_trace"
	CTokenTraceStatistics = "ibc_token_trace_statistics"
)

type TokenType string

const (
	TokenTypeAuthed TokenType = "Authed"
	TokenTypeOther  TokenType = "Other"
)

type TokenTraceType string

const (
	TokenTraceTypeGenesis TokenTraceType = "Genesis"
	TokenTraceTypeAuthed  TokenTraceType = "Authed"
	TokenTraceTypeOther   TokenTraceType = "Other"
)

type Token struct {
	BaseDenom         string    `json:"baseDenom" bson:"base_denom"`
	ChainId           string    `json:"chainId" bson:"chain_id"`
	Type              TokenType `json:"type" bson:"type"`
	Price             float64   `json:"price" bson:"price"`
	Currency          string    `json:"currency" bson:"currency"`
	Supply            string    `json:"supply" bson:"supply"`
	TransferAmount    string    `json:"transferAmount" bson:"transfer_amount"`
	TransferTxs       int64     `json:"transferTxs" bson:"transfer_txs"`
	ChainsInvolved    int64     `json:"chainsInvolved" bson:"chains_involved"`
	IbcTransferTxs    int64     `json:"ibcTransferTxs" bson:"ibc_transfer_txs"`
	IbcTransferAmount string    `json:"ibcTransferAmount" bson:"ibc_transfer_amount"`
	CreateAt          int64     `json:"createAt" bson:"create_at"`
	UpdateAt          int64     `json:"updateAt" bson:"update_at"`
}

func (t Token) CollectionName() string {
	return CToken
}

type TokenStatistics struct {
	BaseDenom        string `json:"baseDenom" bson:"base_denom"`
	BaseDenomChainId string `json:"baseDenomChainId" bson:"base_denom_chain_id"`
	TransferTxs      int64  `json:"transferTxs" bson:"transfer_txs"`
	SegmentStartTime int64  `json:"segmentStartTime" bson:"segment_start_time"`
	SegmentEndTime   int64  `json:"segmentEndTime" bson:"segment_end_time"`
	CreateAt         int64  `json:"createAt" bson:"create_at"`
	UpdateAt         int64  `json:"updateAt" bson:"update_at"`
}

func (t TokenStatistics) CollectionName() string {
	return CTokenStatistics
}

// TokenTrace records where a denom lives and how it got there.
type TokenTrace struct {
	Denom            string         `json:"denom" bson:"denom"`
	ChainId          string         `json:"chainId" bson:"chain_id"`
	DenomPath        string         `json:"denomPath" bson:"denom_path"`
	BaseDenom        string         `json:"baseDenom" bson:"base_denom"`
	BaseDenomChainId string         `json:"baseDenomChainId" bson:"base_denom_chain_id"`
	Type             TokenTraceType `json:"type" bson:"type"`
	IBCHops          int            `json:"ibcHops" bson:"ibc_hops"`
	DenomAmount      string         `json:"denomAmount" bson:"denom_amount"`
	DenomValue       string         `json:"denomValue" bson:"denom_value"`
	ReceiveTxs       int64          `json:"receiveTxs" bson:"receive_txs"`
	CreateAt         int64          `json:"createAt" bson:"create_at"`
	UpdateAt         int64          `json:"updateAt" bson:"update_at"`
}

func (t TokenTrace) CollectionName() string {
	return CTokenTrace
}

type TokenTraceStatistics struct {
	Denom            string `json:"denom" bson:"denom"`
	ChainId          string `json:"chainId" bson:"chain_id"`
	ReceiveTxs       int64  `json:"receiveTxs" bson:"receive_txs"`
	SegmentStartTime int64  `json:"segmentStartTime" bson:"segment_start_time"`
	SegmentEndTime   int64  `json:"segmentEndTime" bson:"segment_end_time"`
	CreateAt         int64  `json:"createAt" bson:"create_at"`
	UpdateAt         int64  `json:"updateAt" bson:"update_at"`
}

func (t TokenTraceStatistics) CollectionName() string {
	return CTokenTraceStatistics
}
