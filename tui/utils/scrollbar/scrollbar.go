package scrollbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/grovetools/sticky/tui/theme"
)

const (
	thumbChar = "█"
	trackChar = "░"
)

// Generate returns one scrollbar cell per row for a window of height rows
// showing rows [offset, offset+height) of total rows.
func Generate(height, total, offset int) []string {
	if height <= 0 {
		return []string{}
	}
	th := theme.DefaultTheme
	bar := make([]string, height)

	if total == 0 {
		for i := range bar {
			bar[i] = " "
		}
		return bar
	}

	// Everything visible: all thumb
	if total <= height {
		for i := range bar {
			bar[i] = th.ScrollbarThumb.Render(thumbChar)
		}
		return bar
	}

	thumbSize := max(1, height*height/total)
	maxThumbStart := height - thumbSize
	maxOffset := total - height
	percent := min(1, max(0, float64(offset)/float64(maxOffset)))
	thumbStart := min(maxThumbStart, max(0, int(float64(maxThumbStart)*percent+0.5)))

	for i := range bar {
		if i >= thumbStart && i < thumbStart+thumbSize {
			bar[i] = th.ScrollbarThumb.Render(thumbChar)
		} else {
			bar[i] = th.ScrollbarTrack.Render(trackChar)
		}
	}
	return bar
}

// ForViewport generates a scrollbar matching a viewport's position.
func ForViewport(vp *viewport.Model) []string {
	return Generate(vp.Height, vp.TotalLineCount(), vp.YOffset)
}

// Append adds the scrollbar as a last column to rows.
func Append(rows []string, bar []string) string {
	out := make([]string, len(rows))
	for i, row := range rows {
		cell := " "
		if i < len(bar) {
			cell = bar[i]
		}
		out[i] = row + cell
	}
	return strings.Join(out, "\n")
}
