// Package db
package db

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kardiachain/ibc-explorer-backend/types"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "nil",
			err:  nil,
			want: nil,
		},
		{
			name: "options conflict",
			err:  mongo.CommandError{Code: 85, Name: "IndexOptionsConflict", Message: "Index with name: chain_id_-1 already exists with different options"},
			want: types.ErrIndexConflict,
		},
		{
			name: "key specs conflict",
			err:  mongo.CommandError{Code: 86, Name: "IndexKeySpecsConflict", Message: "An existing index has the same name as the requested index"},
			want: types.ErrIndexConflict,
		},
		{
			name: "already exists",
			err:  fmt.Errorf("wrapped: %w", mongo.CommandError{Code: 68, Name: "IndexAlreadyExists"}),
			want: types.ErrIndexConflict,
		},
		{
			name: "duplicate key while building unique index",
			err:  mongo.CommandError{Code: 11000, Name: "DuplicateKey", Message: "E11000 duplicate key error collection: explorer.ibc_token"},
			want: types.ErrConstraintViolation,
		},
		{
			name: "duplicate key on insert",
			err:  mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}}},
			want: types.ErrConstraintViolation,
		},
		{
			name: "network error",
			err:  mongo.CommandError{Code: 6, Name: "HostUnreachable", Labels: []string{"NetworkError"}},
			want: types.ErrConnection,
		},
		{
			name: "deadline",
			err:  fmt.Errorf("create index: %w", context.DeadlineExceeded),
			want: types.ErrConnection,
		},
		{
			name: "client disconnected",
			err:  mongo.ErrClientDisconnected,
			want: types.ErrConnection,
		},
		{
			name: "unknown command error",
			err:  mongo.CommandError{Code: 13, Name: "Unauthorized"},
			want: nil,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyError(tt.err))
		})
	}
}
