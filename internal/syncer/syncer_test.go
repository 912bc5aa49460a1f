package syncer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/lingua/internal/store"
)

// manualTimer fires only when the test says so.
type manualTimer struct {
	mu      sync.Mutex
	fn      func()
	pending bool
	resets  int
}

func (m *manualTimer) Schedule(d time.Duration, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fn = fn
	m.pending = true
	m.resets++
}

func (m *manualTimer) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = false
}

func (m *manualTimer) fire() {
	m.mu.Lock()
	fn, pending := m.fn, m.pending
	m.pending = false
	m.mu.Unlock()
	if pending && fn != nil {
		fn()
	}
}

type captureWriter struct {
	mu     sync.Mutex
	writes []store.SnapshotData
	err    error
}

func (w *captureWriter) write(_ context.Context, data store.SnapshotData) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.writes = append(w.writes, data)
	return nil
}

func (w *captureWriter) count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.writes)
}

func TestMarkCoalescesIntoOneWrite(t *testing.T) {
	tm := &manualTimer{}
	w := &captureWriter{}
	s := New(w.write, WithTimer(tm))

	for i := 0; i < 5; i++ {
		s.Mark(store.SnapshotData{Version: 1, XP: i * 10})
	}
	if w.count() != 0 {
		t.Fatalf("wrote before timer fired: %d writes", w.count())
	}

	tm.fire()
	if w.count() != 1 {
		t.Fatalf("writes = %d, want 1", w.count())
	}
	if got := w.writes[0].XP; got != 40 {
		t.Errorf("wrote XP %d, want newest value 40", got)
	}
	if tm.resets != 5 {
		t.Errorf("timer resets = %d, want 5", tm.resets)
	}
}

func TestFireWithoutPendingIsNoop(t *testing.T) {
	tm := &manualTimer{}
	w := &captureWriter{}
	s := New(w.write, WithTimer(tm))

	s.Mark(store.SnapshotData{Version: 1})
	tm.fire()
	tm.fire() // stale fire after the write drained pending
	if w.count() != 1 {
		t.Errorf("writes = %d, want 1", w.count())
	}
}

func TestFlushWritesPendingImmediately(t *testing.T) {
	tm := &manualTimer{}
	w := &captureWriter{}
	s := New(w.write, WithTimer(tm))

	s.Mark(store.SnapshotData{Version: 1, StreakDays: 7})
	if err := s.Flush(context.Background()); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if w.count() != 1 {
		t.Fatalf("writes = %d, want 1", w.count())
	}
	if w.writes[0].StreakDays != 7 {
		t.Errorf("wrote streak %d, want 7", w.writes[0].StreakDays)
	}
	if tm.pending {
		t.Error("timer still armed after flush")
	}

	// Nothing left to write.
	if err := s.Flush(context.Background()); err != nil {
		t.Fatalf("second flush: %v", err)
	}
	if w.count() != 1 {
		t.Errorf("writes = %d after empty flush, want 1", w.count())
	}
}

func TestFlushSurfacesEarlierWriteError(t *testing.T) {
	tm := &manualTimer{}
	w := &captureWriter{err: errors.New("disk full")}
	s := New(w.write, WithTimer(tm))

	s.Mark(store.SnapshotData{Version: 1})
	tm.fire() // background write fails silently

	err := s.Flush(context.Background())
	if err == nil {
		t.Fatal("flush should surface the earlier write error")
	}
}

func TestFlushReturnsWriteError(t *testing.T) {
	tm := &manualTimer{}
	w := &captureWriter{err: errors.New("disk full")}
	s := New(w.write, WithTimer(tm))

	s.Mark(store.SnapshotData{Version: 1})
	if err := s.Flush(context.Background()); err == nil {
		t.Fatal("flush should fail when the write fails")
	}
}
