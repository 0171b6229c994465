package stickyview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/sticky/tui/components"
	"github.com/grovetools/sticky/tui/theme"
	"github.com/grovetools/sticky/tui/utils/scrollbar"
)

// View renders the window: the composed scene, the scrollbar beside it
// and the status bar below.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.help.ShowAll {
		return m.help.View()
	}

	rows := m.scene.Compose(strings.Split(m.vp.View(), "\n"))
	if len(rows) > m.vp.Height {
		rows = rows[:m.vp.Height]
	}
	for i, row := range rows {
		rows[i] = fit(row, m.vp.Width)
	}

	var body string
	if m.showScrollbar {
		body = scrollbar.Append(rows, scrollbar.ForViewport(&m.vp))
	} else {
		body = strings.Join(rows, "\n")
	}

	if !m.showStatus {
		return body
	}
	return body + "\n" + m.statusBar()
}

func (m *Model) statusBar() string {
	left := ""
	if i := m.scene.Current(); i >= 0 {
		left = " " + m.scene.Sections()[i].Heading
	}

	var center string
	switch {
	case m.status != "":
		center = m.status
	case m.seq.IsPending():
		center = m.seq.Buffer()
	default:
		center = m.help.View()
	}

	opts := m.scene.Options()
	parts := []string{modeName(opts.Relative)}
	if m.following {
		parts = append(parts, theme.IconFollow)
	}
	if len(m.scene.Stuck()) > 0 {
		parts = append(parts, theme.IconPin)
	}
	parts = append(parts, fmt.Sprintf("%3d%% ", percent(m.scene.ScrollTop(), m.scene.MaxScroll())))
	right := strings.Join(parts, " ")

	return components.RenderStatusBar(m.theme, left, center, right, m.width)
}

// fit pads or truncates row to exactly width cells.
func fit(row string, width int) string {
	w := lipgloss.Width(row)
	switch {
	case w == width:
		return row
	case w < width:
		return row + strings.Repeat(" ", width-w)
	default:
		return lipgloss.NewStyle().MaxWidth(width).Render(row)
	}
}

func percent(top, maxScroll int) int {
	if maxScroll <= 0 {
		return 100
	}
	return top * 100 / maxScroll
}
