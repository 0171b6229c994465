package stickyview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/sticky/tui/frame"
	"github.com/grovetools/sticky/tui/keymap"
	"github.com/grovetools/sticky/tui/scene"
	"github.com/grovetools/sticky/tui/scroll"
	"github.com/sirupsen/logrus"
)

// Init reports the window as shown and starts the background sources.
func (m *Model) Init() tea.Cmd {
	m.scene.Show()
	return tea.Batch(
		m.waitForLine(),
		m.startWatcher(),
		m.sched.Cmd(),
	)
}

// Update handles messages. Every path ends by draining the frames the
// scene requested so they reach the program as ticks.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetSize(msg.Width, msg.Height)
		m.resize()
		m.ready = true

	case frame.Msg:
		m.sched.Dispatch(msg)

	case LineMsg:
		m.scene.AppendLines(msg.Line)
		if m.following {
			m.scene.ScrollTo(m.scene.MaxScroll())
		}
		cmds = append(cmds, m.waitForLine())

	case followClosedMsg:
		m.following = false
		m.status = "follow stopped"

	case ReloadMsg:
		m.reload(msg)
		cmds = append(cmds, m.waitForReload())

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.KeyMsg:
		m.status = ""
		if m.help.ShowAll {
			var cmd tea.Cmd
			m.help, cmd = m.help.Update(msg)
			cmds = append(cmds, cmd)
			break
		}
		if m.handleKey(msg) {
			m.Close()
			return m, tea.Quit
		}
	}

	m.sync()
	cmds = append(cmds, m.sched.Cmd())
	return m, tea.Batch(cmds...)
}

// handleKey runs the action bound to msg. Multi-key sequences are matched
// first; a partial sequence swallows the key. It reports whether to quit.
func (m *Model) handleKey(msg tea.KeyMsg) bool {
	result, idx := m.seq.Process(msg, m.keys.Sequences()...)
	switch result {
	case keymap.SequencePending:
		return false
	case keymap.SequenceMatch:
		m.seq.Clear()
		switch idx {
		case 0:
			m.scrollTo(0)
		case 1:
			m.scene.NextSection()
			m.following = false
		case 2:
			m.scene.PrevSection()
			m.following = false
		}
		return false
	}
	m.seq.Clear()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return true
	case key.Matches(msg, m.keys.Help):
		m.help.Toggle()
	case key.Matches(msg, m.keys.Up):
		m.scrollTo(m.scene.ScrollTop() - 1)
	case key.Matches(msg, m.keys.Down):
		m.scrollTo(m.scene.ScrollTop() + 1)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollTo(m.scene.ScrollTop() - max(1, m.vp.Height))
	case key.Matches(msg, m.keys.PageDown):
		m.scrollTo(m.scene.ScrollTop() + max(1, m.vp.Height))
	case key.Matches(msg, m.keys.Bottom):
		m.scrollTo(m.scene.MaxScroll())
	case key.Matches(msg, m.keys.Follow):
		if m.follower == nil {
			m.status = "nothing to follow"
			break
		}
		m.following = !m.following
		if m.following {
			m.scene.ScrollTo(m.scene.MaxScroll())
		}
	case key.Matches(msg, m.keys.ToggleCompensation):
		opts := m.scene.Options()
		opts.DisableCompensation = !opts.DisableCompensation
		m.scene.SetOptions(opts)
		m.status = fmt.Sprintf("compensation %s", onOff(!opts.DisableCompensation))
	case key.Matches(msg, m.keys.ToggleRelative):
		opts := m.scene.Options()
		opts.Relative = !opts.Relative
		m.scene.SetOptions(opts)
		m.status = fmt.Sprintf("%s mode", modeName(opts.Relative))
	case key.Matches(msg, m.keys.ToggleScrollbar):
		m.showScrollbar = !m.showScrollbar
		m.resize()
	}
	return false
}

// handleMouse scrolls on the wheel and turns left-button drags into touch
// events that also scroll the window.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		m.vp, _ = m.vp.Update(msg)
		m.scrollTo(m.vp.YOffset)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.dragging = true
		m.dragY = msg.Y
		m.scene.Touch(scroll.TouchStart)

	case msg.Action == tea.MouseActionMotion && m.dragging:
		m.scene.Touch(scroll.TouchMove)
		m.scrollTo(m.scene.ScrollTop() + m.dragY - msg.Y)
		m.dragY = msg.Y

	case msg.Action == tea.MouseActionRelease && m.dragging:
		m.dragging = false
		m.scene.Touch(scroll.TouchEnd)
	}
}

// scrollTo moves the window on behalf of the user. Leaving the bottom
// stops following.
func (m *Model) scrollTo(y int) {
	m.scene.ScrollTo(y)
	if m.following && m.scene.ScrollTop() < m.scene.MaxScroll() {
		m.following = false
	}
}

// resize gives the scene what the chrome leaves of the window.
func (m *Model) resize() {
	w, h := m.width, m.height
	if m.showScrollbar {
		w--
	}
	if m.showStatus {
		h--
	}
	w, h = max(0, w), max(0, h)

	m.vp.Width = w
	m.vp.Height = h
	m.scene.SetSize(w, h)
}

// sync mirrors the scene's flow and offset into the viewport.
func (m *Model) sync() {
	m.vp.SetContent(m.scene.Content())
	m.vp.SetYOffset(m.scene.ScrollTop())
}

// reload applies a configuration read back from disk.
func (m *Model) reload(msg ReloadMsg) {
	if msg.Err != nil {
		m.status = "config error, keeping previous"
		return
	}
	if msg.Config == nil {
		return
	}

	m.cfg = msg.Config
	m.theme = themeFor(m.cfg)
	m.sched.SetInterval(m.cfg.Frame.Duration())
	m.keys = keymap.Load(m.cfg)
	m.help.SetKeys(m.keys)
	m.help.Theme = m.theme
	m.applyViewConfig()

	m.scene.SetTheme(m.theme)
	m.scene.SetOptions(scene.OptionsFromConfig(m.stickyConfig()))
	m.resize()

	m.logger.WithFields(logrus.Fields{
		"relative": m.cfg.Sticky.Relative,
		"interval": m.sched.Interval(),
	}).Info("Configuration reloaded")
	m.status = "config reloaded"
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func modeName(relative bool) string {
	if relative {
		return "relative"
	}
	return "viewport"
}
