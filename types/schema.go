// Package types
package types

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// IndexInfo is one entry of a collection's index catalog.
type IndexInfo struct {
	Name               string `json:"name" bson:"name"`
	Key                bson.D `json:"key" bson:"key"`
	Unique             bool   `json:"unique,omitempty" bson:"unique,omitempty"`
	ExpireAfterSeconds *int32 `json:"expireAfterSeconds,omitempty" bson:"expireAfterSeconds,omitempty"`
}

type IndexDiffKind string

const (
	IndexMissing  IndexDiffKind = "missing"
	IndexMismatch IndexDiffKind = "mismatch"
)

// IndexDiff describes a declared index that the catalog does not satisfy.
type IndexDiff struct {
	Collection string
	Keys       string
	Kind       IndexDiffKind
	Detail     string
}

func (d IndexDiff) String() string {
	if d.Detail == "" {
		return fmt.Sprintf("%s %s: %s", d.Collection, d.Keys, d.Kind)
	}
	return fmt.Sprintf("%s %s: %s (%s)", d.Collection, d.Keys, d.Kind, d.Detail)
}

// KeySpec renders ordered index keys the way the shell prints them, e.g. {chain_id: -1}.
func KeySpec(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", k.Key, k.Value))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
