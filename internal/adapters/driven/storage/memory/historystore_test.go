package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hdcat/internal/core/domain"
)

func entryAt(query string, minute int) domain.SearchHistoryEntry {
	return domain.SearchHistoryEntry{
		ID:         query,
		Query:      query,
		SearchedAt: time.Date(2024, 1, 1, 12, minute, 0, 0, time.UTC),
	}
}

func queries(entries []domain.SearchHistoryEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Query
	}
	return out
}

func TestHistoryStore_AddAndList(t *testing.T) {
	ctx := context.Background()
	store := NewHistoryStore()

	require.NoError(t, store.Add(ctx, entryAt("a", 1)))
	require.NoError(t, store.Add(ctx, entryAt("c", 3)))
	require.NoError(t, store.Add(ctx, entryAt("b", 2)))

	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, queries(all))

	limited, err := store.List(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, queries(limited))
}

func TestHistoryStore_DeleteQuery(t *testing.T) {
	ctx := context.Background()
	store := NewHistoryStore()
	require.NoError(t, store.Add(ctx, entryAt("a", 1)))
	require.NoError(t, store.Add(ctx, entryAt("b", 2)))
	require.NoError(t, store.Add(ctx, entryAt("a", 3)))

	require.NoError(t, store.DeleteQuery(ctx, "a"))

	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, queries(all))
}

func TestHistoryStore_TrimAndClear(t *testing.T) {
	ctx := context.Background()
	store := NewHistoryStore()
	for i, q := range []string{"a", "b", "c", "d"} {
		require.NoError(t, store.Add(ctx, entryAt(q, i)))
	}

	require.NoError(t, store.Trim(ctx, 2))
	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c"}, queries(all))

	require.NoError(t, store.Clear(ctx))
	all, err = store.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestHistoryStore_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewHistoryStore()
	require.NoError(t, store.Add(ctx, entryAt("a", 1)))

	all, _ := store.List(ctx, 0)
	all[0].Query = "changed"

	again, _ := store.List(ctx, 0)
	assert.Equal(t, "a", again[0].Query)
}
