// Package types
package types

const (
	CIbcTx       = "ex_ibc_tx"
	CIbcTxLatest = "ex_ibc_tx_latest"
)

type IbcTxStatus int

const (
	IbcTxStatusSuccess    IbcTxStatus = 1
	IbcTxStatusFailed     IbcTxStatus = 2
	IbcTxStatusProcessing IbcTxStatus = 3
	IbcTxStatusRefunded   IbcTxStatus = 4
	IbcTxStatusSetting    IbcTxStatus = 5
)

type TxStatus int

const (
	TxStatusSuccess TxStatus = 1
	TxStatusFailed  TxStatus = 0
)

type Coin struct {
	Denom  string `json:"denom" bson:"denom"`
	Amount string `json:"amount" bson:"amount"`
}

// TxInfo is one leg of a cross chain transfer, as seen on a single chain.
type TxInfo struct {
	Hash      string   `json:"hash" bson:"hash"`
	Status    TxStatus `json:"status" bson:"status"`
	Time      int64    `json:"time" bson:"time"`
	Height    int64    `json:"height" bson:"height"`
	Fee       *Fee     `json:"fee,omitempty" bson:"fee,omitempty"`
	MsgAmount *Coin    `json:"msgAmount,omitempty" bson:"msg_amount,omitempty"`
	Msg       *TxMsg   `json:"msg,omitempty" bson:"msg,omitempty"`
}

type Fee struct {
	Amount []Coin `json:"amount" bson:"amount"`
	Gas    int64  `json:"gas" bson:"gas"`
}

// Denoms holds the flattened denoms of both ends of a transfer.
type Denoms struct {
	ScDenom string `json:"scDenom" bson:"sc_denom"`
	DcDenom string `json:"dcDenom" bson:"dc_denom"`
}

type IbcTx struct {
	RecordId         string      `json:"recordId" bson:"record_id"`
	ScAddr           string      `json:"scAddr" bson:"sc_addr"`
	DcAddr           string      `json:"dcAddr" bson:"dc_addr"`
	ScPort           string      `json:"scPort" bson:"sc_port"`
	ScChannel        string      `json:"scChannel" bson:"sc_channel"`
	ScChainId        string      `json:"scChainId" bson:"sc_chain_id"`
	DcPort           string      `json:"dcPort" bson:"dc_port"`
	DcChannel        string      `json:"dcChannel" bson:"dc_channel"`
	DcChainId        string      `json:"dcChainId" bson:"dc_chain_id"`
	Sequence         string      `json:"sequence" bson:"sequence"`
	Status           IbcTxStatus `json:"status" bson:"status"`
	ScTxInfo         *TxInfo     `json:"scTxInfo,omitempty" bson:"sc_tx_info,omitempty"`
	DcTxInfo         *TxInfo     `json:"dcTxInfo,omitempty" bson:"dc_tx_info,omitempty"`
	RefundedTxInfo   *TxInfo     `json:"refundedTxInfo,omitempty" bson:"refunded_tx_info,omitempty"`
	Log              *TxLog      `json:"log,omitempty" bson:"log,omitempty"`
	Denoms           *Denoms     `json:"denoms,omitempty" bson:"denoms,omitempty"`
	BaseDenom        string      `json:"baseDenom" bson:"base_denom"`
	BaseDenomChainId string      `json:"baseDenomChainId" bson:"base_denom_chain_id"`
	TxTime           int64       `json:"txTime" bson:"tx_time"`
	CreateAt         int64       `json:"createAt" bson:"create_at"`
	UpdateAt         int64       `json:"updateAt" bson:"update_at"`
}

type TxLog struct {
	ScLog string `json:"scLog" bson:"sc_log"`
	DcLog string `json:"dcLog" bson:"dc_log"`
}

// CollectionName picks between the full history and the denormalized latest view.
func (t IbcTx) CollectionName(latest bool) string {
	if latest {
		return CIbcTxLatest
	}
	return CIbcTx
}
