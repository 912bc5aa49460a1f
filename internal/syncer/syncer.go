// Package syncer coalesces rapid progress updates into periodic writes.
// Bursts of updates during a quiz session collapse into a single write per
// debounce window; Flush forces the pending write on teardown.
package syncer

import (
	"context"
	"sync"
	"time"

	"github.com/abhisek/lingua/internal/store"
)

// DefaultDelay is the debounce window between a progress change and the
// write it triggers.
const DefaultDelay = 3 * time.Second

// WriteFunc performs the actual persistence of a state snapshot.
type WriteFunc func(ctx context.Context, data store.SnapshotData) error

// Timer schedules a single deferred callback. Scheduling while a callback
// is pending resets the deadline. The real implementation wraps
// time.AfterFunc; tests substitute a manual one.
type Timer interface {
	Schedule(d time.Duration, fn func())
	Stop()
}

// afterFuncTimer implements Timer on time.AfterFunc.
type afterFuncTimer struct {
	mu sync.Mutex
	t  *time.Timer
}

func (a *afterFuncTimer) Schedule(d time.Duration, fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.t != nil {
		a.t.Stop()
	}
	a.t = time.AfterFunc(d, fn)
}

func (a *afterFuncTimer) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.t != nil {
		a.t.Stop()
	}
}

// Syncer debounces snapshot writes. Mark replaces the pending state and
// arms the timer; only the newest state is ever written.
type Syncer struct {
	write WriteFunc
	delay time.Duration
	timer Timer

	mu      sync.Mutex
	pending *store.SnapshotData
	lastErr error
}

// Option configures a Syncer.
type Option func(*Syncer)

// WithDelay overrides the debounce window.
func WithDelay(d time.Duration) Option {
	return func(s *Syncer) { s.delay = d }
}

// WithTimer substitutes the scheduling mechanism, for tests.
func WithTimer(t Timer) Option {
	return func(s *Syncer) { s.timer = t }
}

// New creates a Syncer around the write function.
func New(write WriteFunc, opts ...Option) *Syncer {
	s := &Syncer{
		write: write,
		delay: DefaultDelay,
		timer: &afterFuncTimer{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Mark records data as the state to persist and arms the debounce timer.
// A Mark during the window replaces the pending state and pushes the
// deadline out.
func (s *Syncer) Mark(data store.SnapshotData) {
	s.mu.Lock()
	s.pending = &data
	s.mu.Unlock()
	s.timer.Schedule(s.delay, s.fire)
}

func (s *Syncer) fire() {
	s.mu.Lock()
	data := s.pending
	s.pending = nil
	s.mu.Unlock()
	if data == nil {
		return
	}
	if err := s.write(context.Background(), *data); err != nil {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
	}
}

// Flush writes any pending state immediately and stops the timer.
// Call on teardown so a session's final state is never lost to the window.
func (s *Syncer) Flush(ctx context.Context) error {
	s.timer.Stop()

	s.mu.Lock()
	data := s.pending
	s.pending = nil
	err := s.lastErr
	s.lastErr = nil
	s.mu.Unlock()

	if data == nil {
		return err
	}
	return s.write(ctx, *data)
}
