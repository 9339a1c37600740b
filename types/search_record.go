// Package types
package types

import (
	"time"
)

const (
	CSearchRecord = "ex_search_record"

	// SearchRecordTTL is how long a search record is kept after create_at.
	SearchRecordTTL = 365 * 24 * time.Hour
)

type SearchRecord struct {
	Ip       string    `json:"ip" bson:"ip"`
	Content  string    `json:"content" bson:"content"`
	CreateAt time.Time `json:"createAt" bson:"create_at"`
}

func (s SearchRecord) CollectionName() string {
	return CSearchRecord
}
