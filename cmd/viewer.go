package cmd

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/sticky/document"
	"github.com/grovetools/sticky/logging"
	"github.com/grovetools/sticky/tui/components/stickyview"
)

// runViewer runs the viewer full screen. Logs that would reach stderr are
// discarded while it draws.
func runViewer(doc *document.Document, opts ...stickyview.Option) error {
	logging.SetGlobalOutput(io.Discard)
	defer logging.SetGlobalOutput(os.Stderr)

	m, err := stickyview.New(doc, opts...)
	if err != nil {
		return err
	}
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
