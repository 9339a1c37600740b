// Package db
package db

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kardiachain/ibc-explorer-backend/types"
)

// Server error codes returned by createIndexes when a different index is already in place.
const (
	codeIndexAlreadyExists    = 68
	codeIndexOptionsConflict  = 85
	codeIndexKeySpecsConflict = 86
)

// classifyError maps a driver error onto the schema error taxonomy.
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return types.ErrConstraintViolation
	}
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		switch cmdErr.Code {
		case codeIndexAlreadyExists, codeIndexOptionsConflict, codeIndexKeySpecsConflict:
			return types.ErrIndexConflict
		}
	}
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) || errors.Is(err, mongo.ErrClientDisconnected) {
		return types.ErrConnection
	}
	return nil
}
