package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/hdcat/internal/core/domain"
	"github.com/custodia-labs/hdcat/internal/core/ports/driven"
	"github.com/custodia-labs/hdcat/internal/logger"
)

// DefaultMinReloadInterval is the minimum spacing between two reloads.
const DefaultMinReloadInterval = 500 * time.Millisecond

// Reloader replaces the served collection.
type Reloader interface {
	Reload(datasets []domain.Dataset) error
}

// ReloadEvent reports the outcome of one reload.
type ReloadEvent struct {
	Count int
	Err   error
	At    time.Time
}

// Watcher reloads a catalog when its file changes.
type Watcher struct {
	path    string
	source  driven.CatalogSource
	target  Reloader
	limiter *rate.Limiter
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithMinReloadInterval sets the minimum spacing between reloads.
func WithMinReloadInterval(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// NewWatcher creates a watcher for the catalog file at path.
func NewWatcher(path string, source driven.CatalogSource, target Reloader, opts ...WatcherOption) (*Watcher, error) {
	if isURL(path) {
		return nil, fmt.Errorf("%w: cannot watch remote catalog %s", domain.ErrInvalidInput, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve catalog path: %w", err)
	}
	w := &Watcher{
		path:    filepath.Clean(abs),
		source:  source,
		target:  target,
		limiter: rate.NewLimiter(rate.Every(DefaultMinReloadInterval), 1),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Watch starts watching and returns a channel of reload outcomes. The
// channel closes when ctx is cancelled. Outcomes are dropped when the
// receiver falls behind.
func (w *Watcher) Watch(ctx context.Context) (<-chan ReloadEvent, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory so atomic saves (write temp, rename over) are seen.
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}
	logger.Debug("Watching catalog file %s", w.path)

	out := make(chan ReloadEvent, 1)
	go w.run(ctx, fw, out)
	return out, nil
}

func (w *Watcher) run(ctx context.Context, fw *fsnotify.Watcher, out chan<- ReloadEvent) {
	defer close(out)
	defer fw.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if !w.handleFsEvent(ev) {
				continue
			}
			if err := w.limiter.Wait(ctx); err != nil {
				return
			}
			drain(fw)

			result := w.reload(ctx)
			select {
			case out <- result:
			default:
				logger.Debug("Dropped reload event, receiver not ready")
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			logger.Warn("Catalog watcher error: %v", err)
		}
	}
}

// handleFsEvent reports whether ev should trigger a reload.
func (w *Watcher) handleFsEvent(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Rename)
}

// drain discards queued events so a burst of writes causes one reload.
func drain(fw *fsnotify.Watcher) {
	for {
		select {
		case _, ok := <-fw.Events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

func (w *Watcher) reload(ctx context.Context) ReloadEvent {
	result := ReloadEvent{At: time.Now()}
	datasets, err := w.source.Load(ctx)
	if err != nil {
		logger.Warn("Catalog reload failed, keeping previous catalog: %v", err)
		result.Err = err
		return result
	}
	if err := w.target.Reload(datasets); err != nil {
		logger.Warn("Catalog reload rejected, keeping previous catalog: %v", err)
		result.Err = err
		return result
	}
	result.Count = len(datasets)
	return result
}
