package frame

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is one frame at roughly 60Hz.
const DefaultInterval = 16 * time.Millisecond

// Msg is delivered through the bubbletea loop when a tick-scheduled frame fires.
type Msg struct {
	Handle Handle
	At     time.Time
}

// TickScheduler turns frame requests into tea.Tick commands. Requests made
// during Update are collected and returned by Cmd; the model routes the
// resulting Msg back to Dispatch.
type TickScheduler struct {
	mu        sync.Mutex
	interval  time.Duration
	next      Handle
	callbacks map[Handle]Callback
	queued    []tea.Cmd
}

var _ Scheduler = (*TickScheduler)(nil)

// NewTickScheduler creates a scheduler firing frames interval after each request.
func NewTickScheduler(interval time.Duration) *TickScheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &TickScheduler{
		interval:  interval,
		callbacks: make(map[Handle]Callback),
	}
}

// Interval returns the frame interval.
func (s *TickScheduler) Interval() time.Duration {
	return s.interval
}

// SetInterval changes the interval used by future requests.
func (s *TickScheduler) SetInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultInterval
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interval = d
}

// RequestFrame registers cb and queues the tick that will fire it.
func (s *TickScheduler) RequestFrame(cb Callback) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	h := s.next
	s.callbacks[h] = cb
	s.queued = append(s.queued, tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return Msg{Handle: h, At: t}
	}))
	return h
}

// CancelFrame drops the callback; its tick still arrives and is ignored.
func (s *TickScheduler) CancelFrame(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.callbacks, h)
}

// Cmd drains the ticks queued since the last call.
func (s *TickScheduler) Cmd() tea.Cmd {
	s.mu.Lock()
	queued := s.queued
	s.queued = nil
	s.mu.Unlock()

	switch len(queued) {
	case 0:
		return nil
	case 1:
		return queued[0]
	default:
		return tea.Batch(queued...)
	}
}

// Dispatch runs the callback for msg. It returns false for cancelled or
// already-fired handles.
func (s *TickScheduler) Dispatch(msg Msg) bool {
	s.mu.Lock()
	cb, ok := s.callbacks[msg.Handle]
	delete(s.callbacks, msg.Handle)
	s.mu.Unlock()

	if !ok {
		return false
	}
	cb(msg.At)
	return true
}

// Pending returns the number of frames requested but not yet fired.
func (s *TickScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.callbacks)
}
