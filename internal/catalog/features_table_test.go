// Unit tests for the features table accessor.
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/targetspec/pkg/types"
)

func TestFeaturesTable_SetAndGet(t *testing.T) {
	b := setupBackend(t)
	table, err := b.GetTable(types.FeaturesTable)
	require.NoError(t, err)

	id, err := table.Set("", &types.FeatureRecord{
		TripleStr: "x86_64-unknown-linux-gnu",
		Feature:   "sse2",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	entity, err := table.Get(id)
	require.NoError(t, err)
	got := entity.(*types.FeatureRecord)
	assert.Equal(t, "x86_64-unknown-linux-gnu", got.TripleStr)
	assert.Equal(t, "sse2", got.Feature)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestFeaturesTable_SetIdempotent(t *testing.T) {
	b := setupBackend(t)
	table, err := b.GetTable(types.FeaturesTable)
	require.NoError(t, err)

	first, err := table.Set("", &types.FeatureRecord{
		TripleStr: "x86_64-unknown-linux-gnu",
		Feature:   "avx2",
	})
	require.NoError(t, err)

	// Same (triple, feature) pair returns the existing record.
	second, err := table.Set("", &types.FeatureRecord{
		TripleStr: "x86_64-unknown-linux-gnu",
		Feature:   "avx2",
	})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	results, err := table.Fetch(map[string]any{"triple": "x86_64-unknown-linux-gnu"})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestFeaturesTable_Errors(t *testing.T) {
	b := setupBackend(t)
	table, err := b.GetTable(types.FeaturesTable)
	require.NoError(t, err)

	t.Run("wrong type", func(t *testing.T) {
		_, err := table.Set("", 42)
		assert.ErrorIs(t, err, types.ErrInvalidData)
	})

	t.Run("empty feature", func(t *testing.T) {
		_, err := table.Set("", &types.FeatureRecord{TripleStr: "x86_64-unknown-linux-gnu"})
		assert.ErrorIs(t, err, types.ErrInvalidData)
	})

	t.Run("unregistered triple", func(t *testing.T) {
		_, err := table.Set("", &types.FeatureRecord{
			TripleStr: "m68k-unknown-openbsd",
			Feature:   "fpu",
		})
		assert.ErrorIs(t, err, types.ErrInvalidData)
	})

	t.Run("delete missing", func(t *testing.T) {
		err := table.Delete("01890000-0000-7000-8000-000000000000")
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestFeaturesTable_Fetch(t *testing.T) {
	b := setupBackend(t)
	table, err := b.GetTable(types.FeaturesTable)
	require.NoError(t, err)

	for _, pair := range []struct{ triple, feature string }{
		{"x86_64-unknown-linux-gnu", "sse2"},
		{"x86_64-unknown-linux-gnu", "avx"},
		{"aarch64-unknown-linux-gnu", "neon"},
	} {
		_, err := table.Set("", &types.FeatureRecord{TripleStr: pair.triple, Feature: pair.feature})
		require.NoError(t, err)
	}

	t.Run("by triple", func(t *testing.T) {
		results, err := table.Fetch(map[string]any{"triple": "x86_64-unknown-linux-gnu"})
		require.NoError(t, err)
		require.Len(t, results, 2)
		// Ordered by feature within a triple.
		assert.Equal(t, "avx", results[0].(*types.FeatureRecord).Feature)
		assert.Equal(t, "sse2", results[1].(*types.FeatureRecord).Feature)
	})

	t.Run("by feature", func(t *testing.T) {
		results, err := table.Fetch(map[string]any{"feature": "neon"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "aarch64-unknown-linux-gnu", results[0].(*types.FeatureRecord).TripleStr)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := table.Fetch(map[string]any{"os": "linux"})
		assert.ErrorIs(t, err, types.ErrInvalidFilter)
	})
}
