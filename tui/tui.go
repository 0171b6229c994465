package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// InitializeTUI prepares the terminal environment for the viewer. When
// CLICOLOR_FORCE or COLORTERM=truecolor is set it forces the truecolor
// profile so output piped into recordings or CI logs keeps its styling.
//
// Call it at the start of main, before any styles are rendered.
func InitializeTUI() {
	if os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor" {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}
