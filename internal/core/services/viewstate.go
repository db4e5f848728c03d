package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/custodia-labs/hdcat/internal/core/domain"
	"github.com/custodia-labs/hdcat/internal/core/ports/driving"
)

// Ensure ViewState implements the interface.
var _ driving.ViewState = (*ViewState)(nil)

// ViewStateOption configures a ViewState.
type ViewStateOption func(*ViewState)

// WithTransitionDelay sets how long a selection waits before committing.
// Zero or negative commits synchronously.
func WithTransitionDelay(d time.Duration) ViewStateOption {
	return func(s *ViewState) {
		s.delay = d
	}
}

// WithOnCommit registers a callback run after each committed selection.
// It is called without the state lock held, possibly from a timer goroutine.
func WithOnCommit(fn func(domain.ViewSnapshot)) ViewStateOption {
	return func(s *ViewState) {
		s.onCommit = fn
	}
}

// WithInitialMode sets the starting view mode. Invalid modes are ignored.
func WithInitialMode(m domain.ViewMode) ViewStateOption {
	return func(s *ViewState) {
		if m.IsValid() {
			s.mode = m
		}
	}
}

// WithInitialSort sets the starting sort order. Invalid orders are ignored.
func WithInitialSort(o domain.SortOrder) ViewStateOption {
	return func(s *ViewState) {
		if o.IsValid() {
			s.sort = o
		}
	}
}

// ViewState holds display mode, sort order and the drilled-into dataset.
// Selection changes go through a delayed transition; a newer selection
// cancels a pending one so only the last target is ever committed.
type ViewState struct {
	mu            sync.Mutex
	mode          domain.ViewMode
	sort          domain.SortOrder
	selected      *domain.Dataset
	transitioning bool

	delay      time.Duration
	onCommit   func(domain.ViewSnapshot)
	generation uint64
	timer      *time.Timer
}

// NewViewState creates a view state in grid mode sorted by relevance.
func NewViewState(opts ...ViewStateOption) *ViewState {
	s := &ViewState{
		mode:  domain.ViewModeGrid,
		sort:  domain.SortByRelevance,
		delay: domain.DefaultTransitionDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ViewMode returns the current display mode.
func (s *ViewState) ViewMode() domain.ViewMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SortBy returns the current sort order.
func (s *ViewState) SortBy() domain.SortOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sort
}

// SelectedDataset returns the committed selection.
func (s *ViewState) SelectedDataset() (domain.Dataset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return domain.Dataset{}, false
	}
	return *s.selected, true
}

// IsTransitioning reports whether a selection is waiting to commit.
func (s *ViewState) IsTransitioning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transitioning
}

// SetViewMode changes the display mode immediately.
func (s *ViewState) SetViewMode(mode domain.ViewMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidViewMode, mode)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
	return nil
}

// SetSortBy changes the sort order immediately.
func (s *ViewState) SetSortBy(order domain.SortOrder) error {
	if !order.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidSortOrder, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort = order
	return nil
}

// SelectDataset starts a transition to dataset.
func (s *ViewState) SelectDataset(dataset domain.Dataset) {
	s.transition(&dataset)
}

// ClearSelectedDataset starts a transition to no selection.
func (s *ViewState) ClearSelectedDataset() {
	s.transition(nil)
}

// Snapshot returns the current state read under one lock.
func (s *ViewState) Snapshot() domain.ViewSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Close cancels a pending commit. The transition flag is cleared and the
// previous selection stays in place.
func (s *ViewState) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
	s.transitioning = false
}

func (s *ViewState) transition(target *domain.Dataset) {
	s.mu.Lock()
	s.cancelLocked()
	gen := s.generation

	if s.delay <= 0 {
		s.commitLocked(target)
		snap, fn := s.snapshotLocked(), s.onCommit
		s.mu.Unlock()
		if fn != nil {
			fn(snap)
		}
		return
	}

	s.transitioning = true
	s.timer = time.AfterFunc(s.delay, func() {
		s.commit(gen, target)
	})
	s.mu.Unlock()
}

// commit applies target unless a newer transition or Close has superseded it.
// The generation check covers timers that fired before Stop could cancel them.
func (s *ViewState) commit(gen uint64, target *domain.Dataset) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return
	}
	s.commitLocked(target)
	s.timer = nil
	snap, fn := s.snapshotLocked(), s.onCommit
	s.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
}

func (s *ViewState) commitLocked(target *domain.Dataset) {
	s.selected = target
	s.transitioning = false
}

func (s *ViewState) cancelLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.generation++
}

func (s *ViewState) snapshotLocked() domain.ViewSnapshot {
	snap := domain.ViewSnapshot{
		Mode:            s.mode,
		Sort:            s.sort,
		IsTransitioning: s.transitioning,
	}
	if s.selected != nil {
		d := *s.selected
		snap.Selected = &d
	}
	return snap
}
