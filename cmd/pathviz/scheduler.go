package main

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jakhac/graph-algorithms/animate"
)

// callbackMsg carries a due playback turn into the update loop, so every
// renderer call happens on the bubbletea goroutine.
type callbackMsg struct{ fn func() }

// teaScheduler arms wall-clock timers whose callbacks are delivered as
// messages instead of running on the timer goroutine.
type teaScheduler struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

var _ animate.Scheduler = (*teaScheduler)(nil)

// bind sets the program that receives callbacks.
func (s *teaScheduler) bind(send func(tea.Msg)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.send = send
}

// AfterFunc implements animate.Scheduler.
func (s *teaScheduler) AfterFunc(d time.Duration, fn func()) animate.Timer {
	return time.AfterFunc(d, func() {
		s.mu.Lock()
		send := s.send
		s.mu.Unlock()
		if send != nil {
			send(callbackMsg{fn: fn})
		}
	})
}
