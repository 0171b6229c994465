package frame

import (
	"sort"
	"sync"
	"time"
)

// ManualScheduler fires frames only when Flush is called. The simulator
// and tests use it to step frames deterministically.
type ManualScheduler struct {
	mu       sync.Mutex
	next     Handle
	pending  map[Handle]Callback
	requests int
	now      func() time.Time
}

var _ Scheduler = (*ManualScheduler)(nil)

// NewManualScheduler creates a scheduler with no pending frames.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{
		pending: make(map[Handle]Callback),
		now:     time.Now,
	}
}

// RequestFrame records cb until the next Flush.
func (s *ManualScheduler) RequestFrame(cb Callback) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.requests++
	s.pending[s.next] = cb
	return s.next
}

// CancelFrame forgets a pending callback.
func (s *ManualScheduler) CancelFrame(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, h)
}

// Flush fires every frame pending at the time of the call, in request order.
// Frames requested by those callbacks wait for the next Flush. It returns the
// number of callbacks run.
func (s *ManualScheduler) Flush() int {
	s.mu.Lock()
	handles := make([]Handle, 0, len(s.pending))
	for h := range s.pending {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	s.mu.Unlock()

	at := s.now()
	ran := 0
	for _, h := range handles {
		s.mu.Lock()
		cb, ok := s.pending[h]
		delete(s.pending, h)
		s.mu.Unlock()
		if !ok {
			// cancelled by an earlier callback in this flush
			continue
		}
		cb(at)
		ran++
	}
	return ran
}

// Pending returns the number of frames waiting for Flush.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Requests returns the total number of frames ever requested.
func (s *ManualScheduler) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}
