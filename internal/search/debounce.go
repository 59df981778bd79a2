package search

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrSuperseded is the cancellation cause of a request replaced by a newer one for the same key.
var ErrSuperseded = errors.New("search: superseded by a newer request")

// Debouncer delays work per key and cancels the pending or in-flight call for a key
// as soon as a newer call for the same key arrives. Typical keys are client sessions
// typing into a search-as-you-type box.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	seq     uint64
	pending map[string]pendingCall
}

type pendingCall struct {
	id     uint64
	cancel context.CancelCauseFunc
}

// NewDebouncer creates a debouncer that waits delay before running each call.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{
		delay:   delay,
		pending: make(map[string]pendingCall),
	}
}

// Do waits for the debounce delay and then runs fn, unless a newer call with the same key
// arrives first, in which case Do returns ErrSuperseded. fn receives a context that is also
// cancelled when superseded. An empty key runs fn immediately.
func (d *Debouncer) Do(ctx context.Context, key string, fn func(context.Context) error) error {
	if key == "" {
		return fn(ctx)
	}

	ctx, cancel := context.WithCancelCause(ctx)
	id := d.register(key, cancel)
	defer d.release(key, id, cancel)

	timer := time.NewTimer(d.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return context.Cause(ctx)
	case <-timer.C:
	}

	err := fn(ctx)
	if err != nil && errors.Is(context.Cause(ctx), ErrSuperseded) {
		return ErrSuperseded
	}
	return err
}

func (d *Debouncer) register(key string, cancel context.CancelCauseFunc) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if prev, ok := d.pending[key]; ok {
		prev.cancel(ErrSuperseded)
	}
	d.seq++
	d.pending[key] = pendingCall{id: d.seq, cancel: cancel}
	return d.seq
}

func (d *Debouncer) release(key string, id uint64, cancel context.CancelCauseFunc) {
	d.mu.Lock()
	if cur, ok := d.pending[key]; ok && cur.id == id {
		delete(d.pending, key)
	}
	d.mu.Unlock()
	cancel(nil)
}
