// Package help renders the viewer's keybinding hint line and its
// full-screen overlay.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/grovetools/sticky/tui/keymap"
	"github.com/grovetools/sticky/tui/theme"
)

// KeyMap is what the help view reads from a keymap.
type KeyMap interface {
	ShortHelp() []key.Binding
	Sections() []keymap.Section
}

// Model shows ShortHelp as one line, or every section in a scrollable box
// when ShowAll is set.
type Model struct {
	Keys    KeyMap
	ShowAll bool
	Width   int
	Height  int
	Theme   *theme.Theme
	Title   string

	body viewport.Model
}

func New(keys KeyMap) Model {
	body := viewport.New(0, 0)
	body.MouseWheelEnabled = false
	return Model{Keys: keys, Theme: theme.DefaultTheme, body: body}
}

// Update tracks the window size. While the overlay is open it consumes
// keys: the keymap's help and quit bindings or esc close it, anything else
// scrolls it.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if !m.ShowAll {
			return m, nil
		}
		if msg.Type == tea.KeyEsc || m.closes(msg) {
			m.Toggle()
			return m, nil
		}
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) closes(msg tea.KeyMsg) bool {
	if k, ok := m.Keys.(keymap.Base); ok {
		return key.Matches(msg, k.Help, k.Quit)
	}
	return msg.String() == "?" || msg.String() == "q"
}

func (m Model) View() string {
	t := m.theme()
	if !m.ShowAll {
		if m.Keys == nil {
			return ""
		}
		return m.hint(t)
	}

	box := m.body.View()
	if m.body.TotalLineCount() > m.body.Height {
		arrow := "↕"
		switch {
		case m.body.AtTop():
			arrow = "↓"
		case m.body.AtBottom():
			arrow = "↑"
		}
		box = lipgloss.JoinVertical(lipgloss.Right, box,
			t.Muted.Width(m.body.Width).Align(lipgloss.Right).Render(arrow+" more"))
	}
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) theme() *theme.Theme {
	if m.Theme == nil {
		return theme.DefaultTheme
	}
	return m.Theme
}

// hint renders "key desc • key desc" for the enabled short-help bindings.
func (m Model) hint(t *theme.Theme) string {
	var parts []string
	for _, b := range m.Keys.ShortHelp() {
		h := b.Help()
		if !b.Enabled() || h.Key == "" || h.Desc == "" {
			continue
		}
		parts = append(parts, t.Highlight.Render(h.Key)+" "+t.Muted.Render(h.Desc))
	}
	return strings.Join(parts, t.Muted.Render(" • "))
}

// overlay margins around the box, and the row kept for the more indicator
const (
	marginX = 4
	marginY = 4
)

// render lays out every section and sizes the scroll body to the window.
func (m *Model) render() {
	t := m.theme()
	var sections []keymap.Section
	if m.Keys != nil {
		sections = m.Keys.Sections()
	}

	title := m.Title
	if title == "" {
		title = "Help"
	}

	blocks := []string{t.Title.Render(title)}
	for _, s := range sections {
		if block := renderSection(t, s); block != "" {
			blocks = append(blocks, "", block)
		}
	}
	content := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Colors.Border).
		Padding(0, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))

	m.body.SetContent(content)
	m.body.Width = min(lipgloss.Width(content), max(1, m.Width-marginX))
	m.body.Height = max(1, m.Height-marginY-1)
}

// renderSection is the section heading followed by a two-column table of
// keys and descriptions, or "" when nothing in it is enabled.
func renderSection(t *theme.Theme, s keymap.Section) string {
	keyStyle := t.Highlight.Bold(true)
	descStyle := t.Muted.Italic(true)

	rows := ltable.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return lipgloss.NewStyle().PaddingRight(2)
			}
			return lipgloss.NewStyle()
		})
	n := 0
	for _, b := range s.FilterEnabled() {
		h := b.Help()
		if h.Key == "" || h.Desc == "" {
			continue
		}
		rows.Row(keyStyle.Render(h.Key), descStyle.Render(h.Desc))
		n++
	}
	if n == 0 {
		return ""
	}

	heading := t.SectionHeader.Render(sectionIcon(s.Name) + " " + s.Name)
	return lipgloss.JoinVertical(lipgloss.Left, heading, rows.String())
}

func sectionIcon(name string) string {
	switch name {
	case keymap.SectionNavigation:
		return theme.IconArrow
	case keymap.SectionActions:
		return theme.IconPin
	case keymap.SectionSystem:
		return theme.IconInfo
	}
	return theme.IconSection
}

// Toggle opens or closes the overlay. Opening re-renders it at the top.
func (m *Model) Toggle() {
	m.ShowAll = !m.ShowAll
	if m.ShowAll {
		m.render()
		m.body.GotoTop()
	}
}

func (m *Model) SetSize(width, height int) {
	m.Width, m.Height = width, height
	if m.ShowAll {
		m.render()
	}
}

func (m *Model) SetKeys(keys KeyMap) {
	m.Keys = keys
	if m.ShowAll {
		m.render()
	}
}
