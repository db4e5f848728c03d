package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hdcat/internal/core/domain"
)

type recordingReloader struct {
	mu    sync.Mutex
	loads [][]domain.Dataset
	err   error
}

func (r *recordingReloader) Reload(datasets []domain.Dataset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.loads = append(r.loads, datasets)
	return nil
}

func (r *recordingReloader) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.loads)
}

func newTestWatcher(t *testing.T, path string, target Reloader) *Watcher {
	t.Helper()
	src, err := NewSource(path)
	require.NoError(t, err)
	w, err := NewWatcher(path, src, target, WithMinReloadInterval(10*time.Millisecond))
	require.NoError(t, err)
	return w
}

func TestNewWatcher_RejectsURL(t *testing.T) {
	_, err := NewWatcher("https://example.org/catalog.json", NewSample(), &recordingReloader{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWatcher_HandleFsEvent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	w := newTestWatcher(t, path, &recordingReloader{})

	tests := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{"write", fsnotify.Event{Name: path, Op: fsnotify.Write}, true},
		{"create", fsnotify.Event{Name: path, Op: fsnotify.Create}, true},
		{"rename", fsnotify.Event{Name: path, Op: fsnotify.Rename}, true},
		{"chmod", fsnotify.Event{Name: path, Op: fsnotify.Chmod}, false},
		{"remove", fsnotify.Event{Name: path, Op: fsnotify.Remove}, false},
		{"other file", fsnotify.Event{Name: filepath.Join(dir, "other.json"), Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.handleFsEvent(tt.ev))
		})
	}
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalog(t, dir, "catalog.json", `[{"id": "a"}]`)
	target := &recordingReloader{}
	w := newTestWatcher(t, path, target)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, err := w.Watch(ctx)
	require.NoError(t, err)

	writeCatalog(t, dir, "catalog.json", `[{"id": "a"}, {"id": "b"}]`)

	// A truncate can be observed before the write lands, so wait for the
	// reload that sees the full file.
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev.Err == nil && ev.Count == 2 {
				assert.GreaterOrEqual(t, target.count(), 1)
				return
			}
		case <-timeout:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestWatcher_BadFileKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalog(t, dir, "catalog.json", `[{"id": "a"}]`)
	target := &recordingReloader{}
	w := newTestWatcher(t, path, target)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, err := w.Watch(ctx)
	require.NoError(t, err)

	writeCatalog(t, dir, "catalog.json", `[{"id": `)

	select {
	case ev := <-events:
		assert.Error(t, ev.Err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
	assert.Equal(t, 0, target.count())
}

func TestWatcher_ReloaderErrorReported(t *testing.T) {
	w := &Watcher{source: NewSample(), target: &recordingReloader{err: errors.New("duplicate id")}}

	ev := w.reload(context.Background())
	assert.EqualError(t, ev.Err, "duplicate id")
	assert.Zero(t, ev.Count)
}

func TestWatcher_ChannelClosesOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalog(t, dir, "catalog.json", `[]`)
	w := newTestWatcher(t, path, &recordingReloader{})

	ctx, cancel := context.WithCancel(context.Background())
	events, err := w.Watch(ctx)
	require.NoError(t, err)
	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-events:
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
}
