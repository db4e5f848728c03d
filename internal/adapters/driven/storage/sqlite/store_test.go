package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hdcat/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "hdcat-test-*")
	require.NoError(t, err)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

func entry(id, query string, at time.Time) domain.SearchHistoryEntry {
	return domain.SearchHistoryEntry{ID: id, Query: query, SearchedAt: at}
}

func queries(entries []domain.SearchHistoryEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Query
	}
	return out
}

// ==================== Store Creation and Initialization Tests ====================

func TestNewStore_CreatesDatabase(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.Equal(t, "hdcat.db", filepath.Base(store.Path()))
	_, err := os.Stat(store.Path())
	assert.NoError(t, err)

	version, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestNewStore_ReopenKeepsData(t *testing.T) {
	tempDir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, store.HistoryStore().Add(ctx, entry("1", "housing", time.Now())))
	require.NoError(t, store.Close())

	reopened, err := NewStore(tempDir)
	require.NoError(t, err)
	defer reopened.Close()

	version, err := reopened.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, version, "migrations must not run twice")

	entries, err := reopened.HistoryStore().List(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"housing"}, queries(entries))
}

// ==================== History Store Tests ====================

func TestHistoryStore_AddAndList(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	history := store.HistoryStore()
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, history.Add(ctx, entry("1", "housing", base)))
	require.NoError(t, history.Add(ctx, entry("2", "poverty", base.Add(time.Minute))))
	require.NoError(t, history.Add(ctx, entry("3", "census", base.Add(2*time.Minute))))

	all, err := history.List(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"census", "poverty", "housing"}, queries(all))
	assert.True(t, all[0].SearchedAt.Equal(base.Add(2*time.Minute)))
	assert.Equal(t, "3", all[0].ID)

	limited, err := history.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"census"}, queries(limited))
}

func TestHistoryStore_ListEmpty(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	all, err := store.HistoryStore().List(context.Background(), 5)

	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestHistoryStore_DeleteQuery(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	history := store.HistoryStore()
	now := time.Now()

	require.NoError(t, history.Add(ctx, entry("1", "housing", now)))
	require.NoError(t, history.Add(ctx, entry("2", "poverty", now.Add(time.Second))))

	require.NoError(t, history.DeleteQuery(ctx, "housing"))

	all, err := history.List(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"poverty"}, queries(all))
}

func TestHistoryStore_Trim(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	history := store.HistoryStore()
	base := time.Now()

	for i, q := range []string{"a", "b", "c", "d", "e", "f"} {
		require.NoError(t, history.Add(ctx, entry(q, q, base.Add(time.Duration(i)*time.Second))))
	}

	require.NoError(t, history.Trim(ctx, 3))

	all, err := history.List(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"f", "e", "d"}, queries(all))
}

func TestHistoryStore_Clear(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	history := store.HistoryStore()

	require.NoError(t, history.Add(ctx, entry("1", "housing", time.Now())))
	require.NoError(t, history.Clear(ctx))

	all, err := history.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestHistoryStore_DuplicateIDFails(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	history := store.HistoryStore()

	require.NoError(t, history.Add(ctx, entry("1", "housing", time.Now())))
	assert.Error(t, history.Add(ctx, entry("1", "poverty", time.Now())))
}
