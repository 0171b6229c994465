package table

import (
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/grovetools/sticky/tui/theme"
)

// Options configures a styled table.
type Options struct {
	Theme         *theme.Theme
	Bordered      bool
	AlternateRows bool
	// Plain drops every colour, for output that is not a terminal.
	Plain bool
	// Highlight marks data rows to draw with the accent style.
	Highlight func(row int) bool
}

// DefaultOptions returns bordered, alternating rows in the default theme.
func DefaultOptions() Options {
	return Options{
		Theme:         theme.DefaultTheme,
		Bordered:      true,
		AlternateRows: true,
	}
}

// New creates a table with the given headers and the default options.
func New(headers ...string) *ltable.Table {
	return NewWithOptions(DefaultOptions(), headers...)
}

// NewWithOptions creates a table with the given headers.
func NewWithOptions(opts Options, headers ...string) *ltable.Table {
	if opts.Theme == nil {
		opts.Theme = theme.DefaultTheme
	}
	t := opts.Theme

	table := ltable.New().Headers(headers...)

	if !opts.Bordered {
		table = table.Border(lipgloss.HiddenBorder())
	} else if opts.Plain {
		table = table.Border(lipgloss.NormalBorder())
	} else {
		table = table.
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(t.Colors.Border))
	}

	return table.StyleFunc(func(row, col int) lipgloss.Style {
		base := lipgloss.NewStyle().Padding(0, 1)
		if opts.Plain {
			return base
		}
		switch {
		case row == ltable.HeaderRow:
			return t.TableHeader.Padding(0, 1)
		case opts.Highlight != nil && opts.Highlight(row):
			return t.Accent.Padding(0, 1)
		case opts.AlternateRows && row%2 == 1:
			return base.Background(t.Colors.SubtleBackground)
		default:
			return base
		}
	})
}
