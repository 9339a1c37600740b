// Package db
package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kardiachain/ibc-explorer-backend/types"
)

const idIndexName = "_id_"

// EnsureSchema creates every declared index. It returns the first failure as a
// *types.IndexError and leaves already built indexes in place.
func (m *mongoDB) EnsureSchema(ctx context.Context, chainIDs []string) error {
	lgr := m.logger.With(zap.String("method", "EnsureSchema"))
	schema := Schema(chainIDs)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(m.cfg.IndexConcurrency)
	for _, cIdx := range schema {
		cIdx := cIdx
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			if err := m.wrapper.C(cIdx.Collection).EnsureIndex(gCtx, cIdx.Models, m.cfg.IndexBuildTimeout); err != nil {
				lgr.Warn("cannot ensure index", zap.String("collection", cIdx.Collection), zap.Error(err))
				return err
			}
			lgr.Debug("indexes ensured", zap.String("collection", cIdx.Collection), zap.Int("indexes", len(cIdx.Models)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	lgr.Info("Schema ensured", zap.Int("collections", len(schema)), zap.Int("indexes", countIndexes(schema)), zap.Strings("chains", chainIDs))
	return nil
}

func (m *mongoDB) Indexes(ctx context.Context, collection string) ([]types.IndexInfo, error) {
	all, err := m.wrapper.C(collection).ListIndexes(ctx)
	if err != nil {
		return nil, err
	}
	indexes := make([]types.IndexInfo, 0, len(all))
	for _, idx := range all {
		if idx.Name == idIndexName {
			continue
		}
		indexes = append(indexes, idx)
	}
	return indexes, nil
}

// VerifySchema compares the declaration with the catalog. No diff means the
// schema is fully in place.
func (m *mongoDB) VerifySchema(ctx context.Context, chainIDs []string) ([]types.IndexDiff, error) {
	var diffs []types.IndexDiff
	for _, cIdx := range Schema(chainIDs) {
		catalog, err := m.Indexes(ctx, cIdx.Collection)
		if err != nil {
			return nil, fmt.Errorf("list indexes of %s: %w", cIdx.Collection, err)
		}
		diffs = append(diffs, diffIndexes(cIdx, catalog)...)
	}
	return diffs, nil
}

func diffIndexes(cIdx CIndex, catalog []types.IndexInfo) []types.IndexDiff {
	var diffs []types.IndexDiff
	for _, model := range cIdx.Models {
		keys, _ := model.Keys.(bson.D)
		diff := types.IndexDiff{Collection: cIdx.Collection, Keys: types.KeySpec(keys)}

		existing := findIndex(catalog, keys)
		if existing == nil {
			diff.Kind = types.IndexMissing
			diffs = append(diffs, diff)
			continue
		}
		if detail := compareOptions(model, *existing); detail != "" {
			diff.Kind = types.IndexMismatch
			diff.Detail = detail
			diffs = append(diffs, diff)
		}
	}
	return diffs
}

func findIndex(catalog []types.IndexInfo, keys bson.D) *types.IndexInfo {
	for i := range catalog {
		if sameKeys(catalog[i].Key, keys) {
			return &catalog[i]
		}
	}
	return nil
}

// sameKeys compares ordered key specs. The catalog may hold directions as
// int32, int64 or double depending on who created the index.
func sameKeys(a, b bson.D) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Key != b[i].Key {
			return false
		}
		dirA, okA := direction(a[i].Value)
		dirB, okB := direction(b[i].Value)
		if !okA || !okB || dirA != dirB {
			return false
		}
	}
	return true
}

func direction(v interface{}) (float64, bool) {
	switch d := v.(type) {
	case int:
		return float64(d), true
	case int32:
		return float64(d), true
	case int64:
		return float64(d), true
	case float64:
		return d, true
	}
	return 0, false
}

func compareOptions(model mongo.IndexModel, existing types.IndexInfo) string {
	var wantUnique bool
	var wantTTL *int32
	var wantName string
	if opts := model.Options; opts != nil {
		if opts.Unique != nil {
			wantUnique = *opts.Unique
		}
		wantTTL = opts.ExpireAfterSeconds
		if opts.Name != nil {
			wantName = *opts.Name
		}
	}
	if existing.Unique != wantUnique {
		return fmt.Sprintf("unique=%t, want %t", existing.Unique, wantUnique)
	}
	switch {
	case wantTTL == nil && existing.ExpireAfterSeconds != nil:
		return fmt.Sprintf("expireAfterSeconds=%d, want none", *existing.ExpireAfterSeconds)
	case wantTTL != nil && existing.ExpireAfterSeconds == nil:
		return fmt.Sprintf("expireAfterSeconds missing, want %d", *wantTTL)
	case wantTTL != nil && *wantTTL != *existing.ExpireAfterSeconds:
		return fmt.Sprintf("expireAfterSeconds=%d, want %d", *existing.ExpireAfterSeconds, *wantTTL)
	}
	if wantName != "" && existing.Name != wantName {
		return fmt.Sprintf("name=%s, want %s", existing.Name, wantName)
	}
	return ""
}

func countIndexes(schema []CIndex) int {
	total := 0
	for _, cIdx := range schema {
		total += len(cIdx.Models)
	}
	return total
}
