package services

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hdcat/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/hdcat/internal/core/domain"
	"github.com/custodia-labs/hdcat/internal/logger"
)

// failingHistoryStore implements driven.SearchHistoryStore with every call failing.
type failingHistoryStore struct {
	err error
}

func (f *failingHistoryStore) Add(_ context.Context, _ domain.SearchHistoryEntry) error {
	return f.err
}

func (f *failingHistoryStore) List(_ context.Context, _ int) ([]domain.SearchHistoryEntry, error) {
	return nil, f.err
}

func (f *failingHistoryStore) DeleteQuery(_ context.Context, _ string) error {
	return f.err
}

func (f *failingHistoryStore) Trim(_ context.Context, _ int) error {
	return f.err
}

func (f *failingHistoryStore) Clear(_ context.Context) error {
	return f.err
}

func newTestHistory(t *testing.T, size int) *SearchHistoryService {
	t.Helper()
	svc := NewSearchHistoryService(memory.NewHistoryStore(), domain.HistorySettings{Enabled: true, Size: size})
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	svc.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return svc
}

func recentQueries(t *testing.T, svc *SearchHistoryService) []string {
	t.Helper()
	entries, err := svc.Recent(context.Background())
	require.NoError(t, err)
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Query
	}
	return out
}

func TestSearchHistoryService_MostRecentFirst(t *testing.T) {
	ctx := context.Background()
	svc := newTestHistory(t, 5)

	svc.Record(ctx, "housing")
	svc.Record(ctx, "poverty")

	assert.Equal(t, []string{"poverty", "housing"}, recentQueries(t, svc))
}

func TestSearchHistoryService_Deduplicates(t *testing.T) {
	ctx := context.Background()
	svc := newTestHistory(t, 5)

	svc.Record(ctx, "housing")
	svc.Record(ctx, "poverty")
	svc.Record(ctx, "  housing ")

	assert.Equal(t, []string{"housing", "poverty"}, recentQueries(t, svc))
}

func TestSearchHistoryService_CapsSize(t *testing.T) {
	ctx := context.Background()
	svc := newTestHistory(t, 5)

	for _, q := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		svc.Record(ctx, q)
	}

	assert.Equal(t, []string{"g", "f", "e", "d", "c"}, recentQueries(t, svc))
}

func TestSearchHistoryService_IgnoresBlank(t *testing.T) {
	ctx := context.Background()
	svc := newTestHistory(t, 5)

	svc.Record(ctx, "")
	svc.Record(ctx, "   ")

	assert.Empty(t, recentQueries(t, svc))
}

func TestSearchHistoryService_Disabled(t *testing.T) {
	ctx := context.Background()
	store := memory.NewHistoryStore()
	svc := NewSearchHistoryService(store, domain.HistorySettings{Enabled: false, Size: 5})

	svc.Record(ctx, "housing")

	entries, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSearchHistoryService_DefaultSize(t *testing.T) {
	svc := NewSearchHistoryService(memory.NewHistoryStore(), domain.HistorySettings{Enabled: true})
	assert.Equal(t, domain.DefaultHistorySize, svc.size)
}

func TestSearchHistoryService_StoreFailureIsSwallowed(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)
	defer func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	}()

	storeErr := errors.New("disk unavailable")
	svc := NewSearchHistoryService(&failingHistoryStore{err: storeErr}, domain.HistorySettings{Enabled: true, Size: 5})

	assert.NotPanics(t, func() { svc.Record(context.Background(), "housing") })
	assert.Contains(t, buf.String(), "disk unavailable")

	_, err := svc.Recent(context.Background())
	assert.ErrorIs(t, err, storeErr)
	assert.ErrorIs(t, svc.Clear(context.Background()), storeErr)
}

func TestSearchHistoryService_Clear(t *testing.T) {
	ctx := context.Background()
	svc := newTestHistory(t, 5)
	svc.Record(ctx, "housing")

	require.NoError(t, svc.Clear(ctx))

	assert.Empty(t, recentQueries(t, svc))
}

func TestSearchHistoryService_NilStore(t *testing.T) {
	svc := NewSearchHistoryService(nil, domain.HistorySettings{Enabled: true, Size: 5})

	svc.Record(context.Background(), "housing")
	entries, err := svc.Recent(context.Background())

	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoError(t, svc.Clear(context.Background()))
}
