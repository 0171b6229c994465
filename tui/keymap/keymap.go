package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/sticky/config"
)

// Base holds every binding the document viewer understands.
type Base struct {
	// Navigation
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Top         key.Binding // gg sequence
	Bottom      key.Binding
	NextSection key.Binding // ]] sequence
	PrevSection key.Binding // [[ sequence

	// Actions
	Follow             key.Binding
	ToggleCompensation key.Binding
	ToggleRelative     key.Binding
	ToggleScrollbar    key.Binding

	// System
	Help key.Binding
	Quit key.Binding
}

// NewBase returns the vim preset.
func NewBase() Base {
	return DefaultVim()
}

// DefaultVim returns the default vim-style keymap
func DefaultVim() Base {
	return Base{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("ctrl+u", "pgup"),
			key.WithHelp("C-u", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("ctrl+d", "pgdown", " "),
			key.WithHelp("C-d", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("gg", "home"),
			key.WithHelp("gg", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("]]", "n"),
			key.WithHelp("]]", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("[[", "N"),
			key.WithHelp("[[", "prev section"),
		),

		Follow: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "follow"),
		),
		ToggleCompensation: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "compensation"),
		),
		ToggleRelative: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "relative mode"),
		),
		ToggleScrollbar: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "scrollbar"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// DefaultEmacs returns an emacs-style keymap
func DefaultEmacs() Base {
	b := DefaultVim()
	b.Up = key.NewBinding(
		key.WithKeys("ctrl+p", "up"),
		key.WithHelp("C-p", "up"),
	)
	b.Down = key.NewBinding(
		key.WithKeys("ctrl+n", "down"),
		key.WithHelp("C-n", "down"),
	)
	b.PageUp = key.NewBinding(
		key.WithKeys("alt+v", "pgup"),
		key.WithHelp("M-v", "page up"),
	)
	b.PageDown = key.NewBinding(
		key.WithKeys("ctrl+v", "pgdown"),
		key.WithHelp("C-v", "page down"),
	)
	b.Top = key.NewBinding(
		key.WithKeys("alt+<", "home"),
		key.WithHelp("M-<", "top"),
	)
	b.Bottom = key.NewBinding(
		key.WithKeys("alt+>", "end"),
		key.WithHelp("M->", "bottom"),
	)
	b.NextSection = key.NewBinding(
		key.WithKeys("alt+}"),
		key.WithHelp("M-}", "next section"),
	)
	b.PrevSection = key.NewBinding(
		key.WithKeys("alt+{"),
		key.WithHelp("M-{", "prev section"),
	)
	b.Quit = key.NewBinding(
		key.WithKeys("ctrl+x", "ctrl+c"),
		key.WithHelp("C-x", "quit"),
	)
	return b
}

// DefaultArrows returns a keymap without letter navigation or sequences.
func DefaultArrows() Base {
	b := DefaultVim()
	b.Up = key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("up", "up"),
	)
	b.Down = key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("down", "down"),
	)
	b.PageUp = key.NewBinding(
		key.WithKeys("pgup", "shift+up"),
		key.WithHelp("PgUp", "page up"),
	)
	b.PageDown = key.NewBinding(
		key.WithKeys("pgdown", "shift+down"),
		key.WithHelp("PgDn", "page down"),
	)
	b.Top = key.NewBinding(
		key.WithKeys("home", "ctrl+home"),
		key.WithHelp("Home", "top"),
	)
	b.Bottom = key.NewBinding(
		key.WithKeys("end", "ctrl+end"),
		key.WithHelp("End", "bottom"),
	)
	b.NextSection = key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next section"),
	)
	b.PrevSection = key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-tab", "prev section"),
	)
	return b
}

// Load builds the keymap for cfg: the configured preset first, then the
// navigation, actions and system overrides in that order.
func Load(cfg *config.Config) Base {
	preset := "vim"
	if cfg != nil && cfg.TUI != nil && cfg.TUI.Preset != "" {
		preset = cfg.TUI.Preset
	}

	var base Base
	switch preset {
	case "emacs":
		base = DefaultEmacs()
	case "arrows":
		base = DefaultArrows()
	default:
		base = DefaultVim()
	}

	if cfg == nil || cfg.TUI == nil || cfg.TUI.Keybindings == nil {
		return base
	}

	kb := cfg.TUI.Keybindings
	ApplyOverrides(&base, kb.Navigation)
	ApplyOverrides(&base, kb.Actions)
	ApplyOverrides(&base, kb.System)
	return base
}

// ShortHelp returns the bindings shown in the status line.
func (k Base) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.Help, k.Quit}
}

// Sections groups the bindings for the full help view.
func (k Base) Sections() []Section {
	return []Section{
		NewSection(SectionNavigation, k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom, k.NextSection, k.PrevSection),
		NewSection(SectionActions, k.Follow, k.ToggleCompensation, k.ToggleRelative, k.ToggleScrollbar),
		NewSection(SectionSystem, k.Help, k.Quit),
	}
}

// FullHelp flattens Sections for help renderers that only know columns.
func (k Base) FullHelp() [][]key.Binding {
	sections := k.Sections()
	result := make([][]key.Binding, len(sections))
	for i, s := range sections {
		result[i] = s.Bindings
	}
	return result
}

// Sequences returns the bindings that contain multi-key sequences.
func (k Base) Sequences() []key.Binding {
	return []key.Binding{k.Top, k.NextSection, k.PrevSection}
}
