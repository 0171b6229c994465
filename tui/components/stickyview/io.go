package stickyview

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/sticky/config"
)

// LineMsg carries one line written to the followed file.
type LineMsg struct {
	Line string
}

// followClosedMsg reports that the follower stopped.
type followClosedMsg struct{}

// ReloadMsg carries a reloaded configuration. Err is set when the file on
// disk no longer parses; the current configuration stays in effect.
type ReloadMsg struct {
	Config *config.Config
	Err    error
}

func (m *Model) waitForLine() tea.Cmd {
	if m.follower == nil {
		return nil
	}
	lines := m.follower.Lines()
	return func() tea.Msg {
		line, ok := <-lines
		if !ok {
			return followClosedMsg{}
		}
		return LineMsg{Line: line}
	}
}

func (m *Model) waitForReload() tea.Cmd {
	if m.reloads == nil {
		return nil
	}
	reloads := m.reloads
	return func() tea.Msg {
		return <-reloads
	}
}

// startWatcher runs the config watcher until the model is closed.
func (m *Model) startWatcher() tea.Cmd {
	if m.watcher == nil || m.cancel != nil {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	w := m.watcher
	go w.Start(ctx)
	return m.waitForReload()
}
