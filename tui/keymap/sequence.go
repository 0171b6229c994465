package keymap

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// SequenceState buffers keys for multi-key bindings like gg and ]].
// The buffer is dropped when the next key arrives after the timeout.
type SequenceState struct {
	buffer     string
	lastUpdate time.Time
	timeout    time.Duration
	now        func() time.Time
}

// NewSequenceState creates a handler with a 1 second timeout.
func NewSequenceState() *SequenceState {
	return NewSequenceStateWithTimeout(time.Second)
}

func NewSequenceStateWithTimeout(timeout time.Duration) *SequenceState {
	return &SequenceState{
		timeout: timeout,
		now:     time.Now,
	}
}

func (s *SequenceState) push(k string) string {
	now := s.now()
	if s.timeout > 0 && now.Sub(s.lastUpdate) > s.timeout {
		s.buffer = ""
	}
	s.lastUpdate = now
	s.buffer += k
	return s.buffer
}

// Clear resets the buffer. Call it after acting on a match.
func (s *SequenceState) Clear() {
	s.buffer = ""
}

func (s *SequenceState) Buffer() string {
	return s.buffer
}

// IsPending reports whether a partial sequence is buffered.
func (s *SequenceState) IsPending() bool {
	return s.buffer != ""
}

// SequenceResult is the outcome of feeding one key.
type SequenceResult int

const (
	// SequenceNone means the buffer cannot become any binding.
	SequenceNone SequenceResult = iota
	// SequencePending means more keys may complete a binding.
	SequencePending
	// SequenceMatch means the buffer equals one of a binding's keys.
	SequenceMatch
)

// Process appends msg to the buffer and reports whether it matches one of
// the bindings, along with that binding's index.
func (s *SequenceState) Process(msg tea.KeyMsg, bindings ...key.Binding) (SequenceResult, int) {
	buffer := s.push(msg.String())

	for i, b := range bindings {
		for _, k := range b.Keys() {
			if k == buffer {
				return SequenceMatch, i
			}
		}
	}
	for _, b := range bindings {
		for _, k := range b.Keys() {
			if len(buffer) < len(k) && strings.HasPrefix(k, buffer) {
				return SequencePending, -1
			}
		}
	}
	return SequenceNone, -1
}
