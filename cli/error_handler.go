package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/sticky/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates an error handler writing to stderr
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints a message for err based on its code and returns err.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}
	se, _ := errors.As(err)

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(h.Out, "❌ Configuration not found. Create sticky.yml or pass --config.\n")

	case errors.ErrCodeConfigInvalid, errors.ErrCodeConfigValidation:
		fmt.Fprintf(h.Out, "❌ Invalid configuration: %v\n", err)
		if path, ok := se.Details["path"]; ok {
			fmt.Fprintf(h.Out, "Check %s, or run 'sticky config' to see the merged layers.\n", path)
		}

	case errors.ErrCodeDocumentNotFound:
		fmt.Fprintf(h.Out, "❌ Cannot open '%v'\n", se.Details["path"])

	case errors.ErrCodeScriptInvalid:
		fmt.Fprintf(h.Out, "❌ %s (%v)\n", se.Message, se.Details["path"])

	case errors.ErrCodeInvalidInput:
		fmt.Fprintf(h.Out, "❌ %s (got %v)\n", se.Message, se.Details["value"])

	default:
		fmt.Fprintf(h.Out, "❌ Error: %v\n", err)
	}

	if h.Verbose && se != nil {
		fmt.Fprintf(h.Out, "\nError details:\n%s\n", se.ToJSON())
	}
	return err
}
