package listing

import (
	"fmt"

	"bloodlink-web/internal/core/domain"
)

// Phase is the display state of a list view
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseLoading   Phase = "loading"
	PhaseEmpty     Phase = "empty"
	PhasePopulated Phase = "populated"
)

// View is the immutable snapshot handed to renderers
type View[T any] struct {
	Phase Phase `json:"state"`
	Items []T   `json:"items"`
	Count int   `json:"count"`
	Err   error `json:"-"`
}

// Failed reports whether the last fetch ended in a network failure
func (v View[T]) Failed() bool {
	return v.Err != nil
}

// State is the idle/loading/empty/populated machine for one page view
type State[T any] struct {
	phase Phase
	items []T
	err   error
}

// NewState returns a machine starting at loading for auto-fetch pages
// and at idle for pages that wait for a search
func NewState[T any](autoFetch bool) *State[T] {
	if autoFetch {
		return &State[T]{phase: PhaseLoading}
	}
	return &State[T]{phase: PhaseIdle}
}

// Phase returns the current phase
func (s *State[T]) Phase() Phase {
	return s.phase
}

// Begin moves to loading. Any phase may start a new load.
func (s *State[T]) Begin() {
	s.phase = PhaseLoading
	s.items = nil
	s.err = nil
}

// Resolve ends a load with the given (already filtered) items
func (s *State[T]) Resolve(items []T) error {
	if s.phase != PhaseLoading {
		return fmt.Errorf("resolve from %s: %w", s.phase, domain.ErrInvalidTransition)
	}
	if len(items) == 0 {
		s.phase = PhaseEmpty
		s.items = []T{}
		return nil
	}
	s.phase = PhasePopulated
	s.items = items
	return nil
}

// Fail ends a load with an error. The view falls back to empty.
func (s *State[T]) Fail(err error) error {
	if s.phase != PhaseLoading {
		return fmt.Errorf("fail from %s: %w", s.phase, domain.ErrInvalidTransition)
	}
	s.phase = PhaseEmpty
	s.items = []T{}
	s.err = err
	return nil
}

// View snapshots the machine
func (s *State[T]) View() View[T] {
	items := s.items
	if items == nil {
		items = []T{}
	}
	return View[T]{Phase: s.phase, Items: items, Count: len(items), Err: s.err}
}
