package listing

import (
	"context"
	"sync"
)

// Level is the severity of a toast
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
)

// Toast is a transient user-visible notification
type Toast struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Notifier receives toasts
type Notifier interface {
	Notify(Toast)
}

// Toasts collects the notifications raised while serving one page
type Toasts struct {
	mu   sync.Mutex
	list []Toast
}

// Notify implements Notifier
func (t *Toasts) Notify(toast Toast) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.list = append(t.list, toast)
}

// List returns a copy of the collected toasts
func (t *Toasts) List() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Toast, len(t.list))
	copy(out, t.list)
	return out
}

// FetchFunc performs one read against a collaborator
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Fetcher owns the fetch, filter and view state of one page view.
// The most recently issued Load wins; earlier responses are dropped.
type Fetcher[T any] struct {
	mu        sync.Mutex
	state     *State[T]
	seq       uint64
	source    []T
	preds     []Predicate[T]
	notifier  Notifier
	failedMsg string
}

// NewFetcher creates a fetcher. failedMsg is the toast text raised on a failed load.
func NewFetcher[T any](autoFetch bool, notifier Notifier, failedMsg string) *Fetcher[T] {
	return &Fetcher[T]{
		state:     NewState[T](autoFetch),
		notifier:  notifier,
		failedMsg: failedMsg,
	}
}

// Filter sets the active predicates. A resolved view is re-derived from the
// last fetched records without another call.
func (f *Fetcher[T]) Filter(preds ...Predicate[T]) View[T] {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.preds = preds
	switch f.state.Phase() {
	case PhaseEmpty, PhasePopulated:
		if f.state.View().Err != nil {
			break
		}
		f.state.Begin()
		_ = f.state.Resolve(Apply(f.source, f.preds...))
	}
	return f.state.View()
}

// Load issues one fetch and resolves the view to populated or empty.
// On failure exactly one toast is raised and the view shows no records.
// A load superseded by a newer one discards its result and returns the
// current view, which is still loading while the newer fetch is in flight.
func (f *Fetcher[T]) Load(ctx context.Context, fetch FetchFunc[T]) View[T] {
	f.mu.Lock()
	f.seq++
	seq := f.seq
	f.state.Begin()
	f.mu.Unlock()

	items, err := fetch(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	if seq != f.seq {
		// superseded, the newer load resolves the view
		return f.state.View()
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		_ = f.state.Fail(ctxErr)
		return f.state.View()
	}
	if err != nil {
		_ = f.state.Fail(err)
		if f.notifier != nil {
			f.notifier.Notify(Toast{Level: LevelError, Message: f.failedMsg})
		}
		return f.state.View()
	}

	f.source = items
	_ = f.state.Resolve(Apply(items, f.preds...))
	return f.state.View()
}

// View returns the current snapshot
func (f *Fetcher[T]) View() View[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.View()
}
