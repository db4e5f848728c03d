package services

import (
	"github.com/google/uuid"

	"github.com/custodia-labs/hdcat/internal/core/domain"
)

// Session pairs an independent filter state and view state. Each view or
// program run gets its own session; nothing is shared between sessions.
type Session struct {
	ID      string
	Filters *FilterState
	View    *ViewState
}

// NewSession creates a session seeded from the view settings. Extra options
// are applied after the settings, so they take precedence.
func NewSession(settings domain.AppSettings, opts ...ViewStateOption) *Session {
	viewOpts := []ViewStateOption{
		WithInitialMode(settings.View.Mode),
		WithInitialSort(settings.View.Sort),
		WithTransitionDelay(settings.View.TransitionDelay),
	}
	viewOpts = append(viewOpts, opts...)

	return &Session{
		ID:      uuid.New().String(),
		Filters: NewFilterState(),
		View:    NewViewState(viewOpts...),
	}
}

// Close releases the session's pending view transition.
func (s *Session) Close() {
	s.View.Close()
}
