// Package db
package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeChainIDs(t *testing.T) {
	merged := MergeChainIDs(
		[]string{"cosmoshub-4", "", "irishub_1"},
		[]string{"cosmoshub_4", "osmosis-1", "irishub_1"},
	)
	assert.Equal(t, []string{"cosmoshub-4", "irishub_1", "osmosis-1"}, merged)
	assert.Empty(t, MergeChainIDs(nil, []string{""}))
}
