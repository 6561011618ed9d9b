package services

import (
	"context"
	"errors"
	"testing"

	"bloodlink-web/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDispatcherRunsActionOnce(t *testing.T) {
	d := NewDispatcher(zerolog.Nop())
	calls := 0

	err := d.Do(context.Background(), "k", func(context.Context) error {
		calls++
		assert.True(t, d.InFlight("k"))
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.False(t, d.InFlight("k"))
}

func TestDispatcherDoesNotRetry(t *testing.T) {
	d := NewDispatcher(zerolog.Nop())
	calls := 0
	want := errors.New("boom")

	err := d.Do(context.Background(), "k", func(context.Context) error {
		calls++
		return want
	})

	assert.ErrorIs(t, err, want)
	assert.Equal(t, 1, calls)
	assert.False(t, d.InFlight("k"), "failed key is released")
}

func TestDispatcherRejectsNestedDuplicate(t *testing.T) {
	d := NewDispatcher(zerolog.Nop())

	var inner error
	_ = d.Do(context.Background(), "k", func(ctx context.Context) error {
		inner = d.Do(ctx, "k", func(context.Context) error { return nil })
		return nil
	})
	assert.ErrorIs(t, inner, domain.ErrDuplicateSubmission)

	other := d.Do(context.Background(), "other", func(context.Context) error { return nil })
	assert.NoError(t, other)
}
