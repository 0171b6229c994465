package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/sticky/tui/theme"
)

// RenderHeader creates a consistent header for CLI and TUI output.
func RenderHeader(title string, subtitle ...string) string {
	t := theme.DefaultTheme

	header := t.Header.Render(fmt.Sprintf("%s %s", theme.IconPin, title))

	if len(subtitle) > 0 && subtitle[0] != "" {
		sub := t.Muted.Render(subtitle[0])
		return lipgloss.JoinVertical(lipgloss.Left, header, sub)
	}

	return header
}

// RenderStatusBar lays out left, center and right segments across width.
// When they do not fit the center is dropped first, then left is truncated.
func RenderStatusBar(t *theme.Theme, left, center, right string, width int) string {
	if t == nil {
		t = theme.DefaultTheme
	}
	style := t.StatusBar.Width(width).MaxWidth(width).MaxHeight(1)

	if lipgloss.Width(left)+lipgloss.Width(center)+lipgloss.Width(right) >= width {
		center = ""
	}
	if room := width - lipgloss.Width(right) - 1; lipgloss.Width(left) > room {
		left = lipgloss.NewStyle().MaxWidth(max(0, room)).Render(left)
	}

	remainingSpace := max(0, width-lipgloss.Width(left)-lipgloss.Width(center)-lipgloss.Width(right))
	var bar string
	if center == "" {
		bar = left + strings.Repeat(" ", remainingSpace) + right
	} else {
		leftPad := remainingSpace / 2
		bar = left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", remainingSpace-leftPad) + right
	}

	return style.Render(bar)
}

// RenderKeyValue creates a key-value display
func RenderKeyValue(key, value string) string {
	t := theme.DefaultTheme
	return fmt.Sprintf("%s %s", t.Muted.Render(key+":"), value)
}

// RenderSection creates a section with a title and indented content
func RenderSection(title, content string) string {
	t := theme.DefaultTheme
	titleLine := t.Header.Render(fmt.Sprintf("%s %s", theme.IconSection, title))
	contentLines := lipgloss.NewStyle().
		MarginLeft(2).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, titleLine, contentLines)
}
