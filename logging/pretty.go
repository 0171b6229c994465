package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PrettyLogger writes short human-facing CLI notes next to command output.
type PrettyLogger struct {
	writer io.Writer
	styles PrettyStyles
}

// PrettyStyles holds the styles for each kind of note.
type PrettyStyles struct {
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Key     lipgloss.Style
	Value   lipgloss.Style
	Path    lipgloss.Style
}

// DefaultPrettyStyles uses ANSI colors so output follows the terminal palette.
func DefaultPrettyStyles() PrettyStyles {
	return PrettyStyles{
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Path:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Italic(true),
	}
}

// NewPrettyLogger writes to stderr.
func NewPrettyLogger() *PrettyLogger {
	return &PrettyLogger{
		writer: os.Stderr,
		styles: DefaultPrettyStyles(),
	}
}

// WithWriter redirects output, typically to a command's stderr.
func (p *PrettyLogger) WithWriter(w io.Writer) *PrettyLogger {
	p.writer = w
	return p
}

func (p *PrettyLogger) Success(message string) {
	fmt.Fprintf(p.writer, "%s %s\n", p.styles.Success.Render("✓"), p.styles.Success.Render(message))
}

func (p *PrettyLogger) Warn(message string) {
	fmt.Fprintf(p.writer, "%s %s\n", p.styles.Warning.Render("⚠"), p.styles.Warning.Render(message))
}

// Error prints message and, when set, err after a colon.
func (p *PrettyLogger) Error(message string, err error) {
	line := "✗ " + message
	if err != nil {
		line += ": " + err.Error()
	}
	fmt.Fprintln(p.writer, p.styles.Error.Render(line))
}

// Field prints an aligned key/value pair.
func (p *PrettyLogger) Field(key string, value interface{}) {
	fmt.Fprintf(p.writer, "  %s %s\n",
		p.styles.Key.Render(fmt.Sprintf("%-12s", key+":")),
		p.styles.Value.Render(fmt.Sprint(value)))
}

func (p *PrettyLogger) Path(label, path string) {
	fmt.Fprintf(p.writer, "  %s %s\n",
		p.styles.Key.Render(fmt.Sprintf("%-12s", label+":")),
		p.styles.Path.Render(path))
}

// Divider prints a rule width cells wide.
func (p *PrettyLogger) Divider(width int) {
	if width <= 0 {
		width = 40
	}
	fmt.Fprintln(p.writer, p.styles.Key.Render(strings.Repeat("─", width)))
}
