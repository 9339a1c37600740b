package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestKeySpec(t *testing.T) {
	keys := bson.D{{Key: "status", Value: -1}, {Key: "tx_time", Value: -1}}
	assert.Equal(t, "{status: -1, tx_time: -1}", KeySpec(keys))
	assert.Equal(t, "{}", KeySpec(nil))
}

func TestIndexDiff_String(t *testing.T) {
	d := IndexDiff{Collection: CChain, Keys: "{chain_id: -1}", Kind: IndexMissing}
	assert.Equal(t, "ibc_chain {chain_id: -1}: missing", d.String())
	d = IndexDiff{Collection: CChain, Keys: "{chain_id: -1}", Kind: IndexMismatch, Detail: "unique=false"}
	assert.Equal(t, "ibc_chain {chain_id: -1}: mismatch (unique=false)", d.String())
}
