// Package types
package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexError_Is(t *testing.T) {
	cause := errors.New("E11000 duplicate key error collection: explorer.ibc_token")
	err := fmt.Errorf("ensure schema: %w", &IndexError{
		Collection: CToken,
		Index:      "{base_denom: 1, chain_id: 1}",
		Kind:       ErrConstraintViolation,
		Err:        cause,
	})

	assert.True(t, errors.Is(err, ErrConstraintViolation))
	assert.False(t, errors.Is(err, ErrIndexConflict))
	assert.True(t, errors.Is(err, cause))

	var idxErr *IndexError
	if assert.True(t, errors.As(err, &idxErr)) {
		assert.Equal(t, CToken, idxErr.Collection)
	}
	assert.Contains(t, err.Error(), "ibc_token")
	assert.Contains(t, err.Error(), "constraint violation")
}

func TestIndexError_Unclassified(t *testing.T) {
	err := &IndexError{Collection: CChain, Index: "{chain_id: -1}", Err: errors.New("boom")}
	assert.False(t, errors.Is(err, ErrConnection))
	assert.Equal(t, "create index {chain_id: -1} on ibc_chain: boom", err.Error())
}
