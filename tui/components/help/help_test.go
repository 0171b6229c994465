package help

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/sticky/tui/keymap"
	"github.com/grovetools/sticky/tui/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHelp() Model {
	m := New(keymap.DefaultVim())
	m.Theme = theme.NewThemeWithName("terminal")
	m.Title = "Keybindings"
	m.SetSize(80, 40)
	return m
}

func TestHint(t *testing.T) {
	m := newHelp()
	view := m.View()
	assert.Contains(t, view, "quit")
	assert.Contains(t, view, "•")
}

func TestOverlay(t *testing.T) {
	m := newHelp()
	m.Toggle()
	require.True(t, m.ShowAll)

	view := m.View()
	assert.Contains(t, view, "Keybindings")
	for _, name := range []string{keymap.SectionNavigation, keymap.SectionActions, keymap.SectionSystem} {
		assert.Contains(t, view, name)
	}
	assert.Contains(t, view, "next section")
}

func TestOverlayCloses(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("?")},
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
	} {
		m := newHelp()
		m.Toggle()
		m, _ = m.Update(k)
		assert.False(t, m.ShowAll, k.String())
	}
}

func TestClosedIgnoresKeys(t *testing.T) {
	m := newHelp()
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.False(t, m.ShowAll)
	assert.Nil(t, cmd)
}

func TestSmallWindowShowsMore(t *testing.T) {
	m := newHelp()
	m.SetSize(80, 10)
	m.Toggle()
	assert.Contains(t, m.View(), "↓ more")
}
