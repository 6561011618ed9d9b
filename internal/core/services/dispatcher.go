package services

import (
	"context"
	"sync"

	"bloodlink-web/internal/core/domain"

	"github.com/rs/zerolog"
)

// Dispatcher runs user actions (checkout, contact submission) once per
// submission fingerprint. A second submission with the same key while the
// first is still in flight is rejected.
type Dispatcher struct {
	mu       sync.Mutex
	inflight map[string]struct{}
	logger   zerolog.Logger
}

// NewDispatcher creates a new dispatcher
func NewDispatcher(logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		inflight: make(map[string]struct{}),
		logger:   logger.With().Str("component", "dispatcher").Logger(),
	}
}

// Do runs action unless key is already in flight. The action is never retried.
func (d *Dispatcher) Do(ctx context.Context, key string, action func(ctx context.Context) error) error {
	d.mu.Lock()
	if _, busy := d.inflight[key]; busy {
		d.mu.Unlock()
		d.logger.Warn().Str("key", key).Msg("duplicate submission rejected")
		return domain.ErrDuplicateSubmission
	}
	d.inflight[key] = struct{}{}
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		delete(d.inflight, key)
		d.mu.Unlock()
	}()

	return action(ctx)
}

// InFlight reports whether key is currently being dispatched
func (d *Dispatcher) InFlight(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.inflight[key]
	return ok
}
