package logging

import (
	"io"
	"os"
	"sync"
)

// swapWriter forwards to a writer that can be replaced while loggers hold it.
type swapWriter struct {
	mu sync.RWMutex
	w  io.Writer
}

func (s *swapWriter) Write(p []byte) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.w.Write(p)
}

func (s *swapWriter) swap(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	s.mu.Lock()
	s.w = w
	s.mu.Unlock()
}

var stderrSink = &swapWriter{w: os.Stderr}

// SetGlobalOutput replaces the stderr sink of every logger, including ones
// already created. The viewer sets io.Discard while it owns the screen.
// A nil writer discards.
func SetGlobalOutput(w io.Writer) {
	stderrSink.swap(w)
}

// GetGlobalOutput returns the shared sink loggers write to instead of stderr.
func GetGlobalOutput() io.Writer {
	return stderrSink
}
