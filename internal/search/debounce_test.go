package search

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_RunsAfterDelay(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)

	start := time.Now()
	var ran bool
	err := d.Do(context.Background(), "session-1", func(ctx context.Context) error {
		ran = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, ran)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestDebouncer_NewerCallSupersedesPending(t *testing.T) {
	d := NewDebouncer(200 * time.Millisecond)

	var calls atomic.Int32
	firstDone := make(chan error, 1)
	go func() {
		firstDone <- d.Do(context.Background(), "session-1", func(ctx context.Context) error {
			calls.Add(1)
			return nil
		})
	}()

	// Let the first call register before superseding it.
	time.Sleep(20 * time.Millisecond)
	err := d.Do(context.Background(), "session-1", func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})

	require.NoError(t, err)
	assert.ErrorIs(t, <-firstDone, ErrSuperseded)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDebouncer_SupersedesInFlightCall(t *testing.T) {
	d := NewDebouncer(time.Millisecond)

	started := make(chan struct{})
	firstDone := make(chan error, 1)
	go func() {
		firstDone <- d.Do(context.Background(), "s", func(ctx context.Context) error {
			close(started)
			<-ctx.Done()
			return ctx.Err()
		})
	}()

	<-started
	require.NoError(t, d.Do(context.Background(), "s", func(ctx context.Context) error { return nil }))
	assert.ErrorIs(t, <-firstDone, ErrSuperseded)
}

func TestDebouncer_KeysAreIndependent(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	errs := make(chan error, 2)
	for _, key := range []string{"a", "b"} {
		go func(key string) {
			errs <- d.Do(context.Background(), key, func(ctx context.Context) error { return nil })
		}(key)
	}

	assert.NoError(t, <-errs)
	assert.NoError(t, <-errs)
}

func TestDebouncer_CallerCancellation(t *testing.T) {
	d := NewDebouncer(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Do(ctx, "s", func(ctx context.Context) error {
		t.Fatal("fn must not run after cancellation")
		return nil
	})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestDebouncer_EmptyKeyRunsImmediately(t *testing.T) {
	d := NewDebouncer(time.Hour)

	err := d.Do(context.Background(), "", func(ctx context.Context) error { return assert.AnError })
	assert.ErrorIs(t, err, assert.AnError)
}
