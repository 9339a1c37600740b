// Package types
package types

// SyncTx is a raw chain transaction stored in the per chain sync_<chain>_tx collection.
type SyncTx struct {
	Time      int64        `json:"time" bson:"time"`
	Height    int64        `json:"height" bson:"height"`
	TxHash    string       `json:"txHash" bson:"tx_hash"`
	Type      string       `json:"type" bson:"type"`
	Memo      string       `json:"memo" bson:"memo"`
	Status    TxStatus     `json:"status" bson:"status"`
	Log       string       `json:"log" bson:"log"`
	Fee       *Fee         `json:"fee,omitempty" bson:"fee,omitempty"`
	Types     []string     `json:"types" bson:"types"`
	Signers   []string     `json:"signers" bson:"signers"`
	Addrs     []string     `json:"addrs" bson:"addrs"`
	Msgs      []*SyncTxMsg `json:"msgs" bson:"msgs"`
	EventsNew []Event      `json:"eventsNew" bson:"events_new"`
}

// CollectionName resolves the collection of the chain the tx belongs to.
func (t SyncTx) CollectionName(chainID string) string {
	return SyncTxCollectionName(chainID)
}

type SyncTxMsg struct {
	Type string `json:"type" bson:"type"`
	Msg  *TxMsg `json:"msg" bson:"msg"`
}

type TxMsg struct {
	PacketId         string  `json:"packetId" bson:"packet_id"`
	Signer           string  `json:"signer" bson:"signer"`
	Sender           string  `json:"sender" bson:"sender"`
	Receiver         string  `json:"receiver" bson:"receiver"`
	SourcePort       string  `json:"sourcePort" bson:"source_port"`
	SourceChannel    string  `json:"sourceChannel" bson:"source_channel"`
	Token            *Coin   `json:"token,omitempty" bson:"token,omitempty"`
	TimeoutTimestamp int64   `json:"timeoutTimestamp" bson:"timeout_timestamp"`
	Packet           *Packet `json:"packet,omitempty" bson:"packet,omitempty"`
}

type Packet struct {
	Sequence           int64  `json:"sequence" bson:"sequence"`
	SourcePort         string `json:"sourcePort" bson:"source_port"`
	SourceChannel      string `json:"sourceChannel" bson:"source_channel"`
	DestinationPort    string `json:"destinationPort" bson:"destination_port"`
	DestinationChannel string `json:"destinationChannel" bson:"destination_channel"`
	Data               string `json:"data" bson:"data"`
	TimeoutTimestamp   int64  `json:"timeoutTimestamp" bson:"timeout_timestamp"`
}

type Event struct {
	MsgIndex   int            `json:"msgIndex" bson:"msg_index"`
	Type       string         `json:"type" bson:"type"`
	Attributes []KeyValuePair `json:"attributes" bson:"attributes"`
}

type KeyValuePair struct {
	Key   string `json:"key" bson:"key"`
	Value string `json:"value" bson:"value"`
}
