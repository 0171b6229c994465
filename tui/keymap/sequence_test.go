package keymap

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestSequenceProcess(t *testing.T) {
	km := DefaultVim()
	seq := NewSequenceState()

	result, _ := seq.Process(runeKey('g'), km.Sequences()...)
	if result != SequencePending {
		t.Fatalf("g: expected pending, got %v", result)
	}
	if !seq.IsPending() || seq.Buffer() != "g" {
		t.Errorf("buffer = %q", seq.Buffer())
	}

	result, idx := seq.Process(runeKey('g'), km.Sequences()...)
	if result != SequenceMatch || idx != 0 {
		t.Fatalf("gg: got result=%v idx=%d", result, idx)
	}
	seq.Clear()

	seq.Process(runeKey(']'), km.Sequences()...)
	result, idx = seq.Process(runeKey(']'), km.Sequences()...)
	if result != SequenceMatch || idx != 1 {
		t.Errorf("]]: got result=%v idx=%d", result, idx)
	}
	seq.Clear()

	result, _ = seq.Process(runeKey('x'), km.Sequences()...)
	if result != SequenceNone {
		t.Errorf("x: expected none, got %v", result)
	}
}

func TestSequenceSingleKeyAlternative(t *testing.T) {
	km := DefaultVim()
	seq := NewSequenceState()

	result, idx := seq.Process(runeKey('N'), km.Sequences()...)
	if result != SequenceMatch || idx != 2 {
		t.Errorf("N: got result=%v idx=%d", result, idx)
	}
}

func TestSequenceTimeout(t *testing.T) {
	km := DefaultVim()
	seq := NewSequenceStateWithTimeout(500 * time.Millisecond)

	now := time.Unix(1000, 0)
	seq.now = func() time.Time { return now }

	seq.Process(runeKey('g'), km.Sequences()...)
	now = now.Add(time.Second)

	result, _ := seq.Process(runeKey('g'), km.Sequences()...)
	if result != SequencePending {
		t.Errorf("stale prefix should be dropped, got %v", result)
	}
	if seq.Buffer() != "g" {
		t.Errorf("buffer = %q, want g", seq.Buffer())
	}
}
