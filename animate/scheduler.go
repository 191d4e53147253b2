package animate

import (
	"sort"
	"sync"
	"time"
)

// Timer is a pending callback.
type Timer interface {
	// Stop cancels the callback and reports whether it was still pending.
	Stop() bool
}

// Scheduler runs fn once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, fn func()) Timer { return time.AfterFunc(d, fn) }

// RealScheduler returns the wall-clock scheduler backed by time.AfterFunc.
// Callbacks run on their own goroutine.
func RealScheduler() Scheduler { return realScheduler{} }

// ManualScheduler is a virtual clock: callbacks run only when Advance or Fire
// is called, on the caller's goroutine.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	s   *ManualScheduler
	due time.Duration
	seq int
	fn  func()
}

// NewManualScheduler returns a ManualScheduler at virtual time zero.
func NewManualScheduler() *ManualScheduler { return &ManualScheduler{} }

// AfterFunc implements Scheduler.
func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &manualTimer{s: s, due: s.now + d, seq: s.seq, fn: fn}
	s.pending = append(s.pending, t)

	return t
}

// Stop implements Timer.
func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for i, p := range t.s.pending {
		if p == t {
			t.s.pending = append(t.s.pending[:i], t.s.pending[i+1:]...)
			return true
		}
	}

	return false
}

// pop removes the earliest timer due at or before limit.
func (s *ManualScheduler) pop(limit time.Duration, ignoreLimit bool) *manualTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) == 0 {
		return nil
	}
	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].due != s.pending[j].due {
			return s.pending[i].due < s.pending[j].due
		}
		return s.pending[i].seq < s.pending[j].seq
	})
	t := s.pending[0]
	if !ignoreLimit && t.due > limit {
		return nil
	}
	s.pending = s.pending[1:]
	if t.due > s.now {
		s.now = t.due
	}

	return t
}

// Advance moves the clock forward by d, running every callback that falls
// due, including ones scheduled by earlier callbacks. It returns how many ran.
func (s *ManualScheduler) Advance(d time.Duration) int {
	s.mu.Lock()
	limit := s.now + d
	s.mu.Unlock()

	n := 0
	for t := s.pop(limit, false); t != nil; t = s.pop(limit, false) {
		t.fn()
		n++
	}
	s.mu.Lock()
	s.now = limit
	s.mu.Unlock()

	return n
}

// Fire runs the earliest pending callback regardless of its due time and
// reports whether one ran.
func (s *ManualScheduler) Fire() bool {
	t := s.pop(0, true)
	if t == nil {
		return false
	}
	t.fn()

	return true
}

// Drain fires callbacks until none remain or limit is reached, returning how many ran.
func (s *ManualScheduler) Drain(limit int) int {
	n := 0
	for n < limit && s.Fire() {
		n++
	}

	return n
}

// Pending returns the number of scheduled callbacks.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.pending)
}

// NextDelay returns the delay of the earliest pending callback from now.
func (s *ManualScheduler) NextDelay() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) == 0 {
		return 0, false
	}
	due := s.pending[0].due
	for _, t := range s.pending[1:] {
		if t.due < due {
			due = t.due
		}
	}

	return due - s.now, true
}
