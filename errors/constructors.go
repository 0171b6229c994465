package errors

import (
	"fmt"
)

// NoBroadcaster creates the composition error raised when a sticky element
// is constructed without a scroll broadcaster to subscribe to.
func NoBroadcaster(element string) *StickyError {
	return New(ErrCodeNoBroadcaster,
		"sticky element must be created inside a scroll container (no broadcaster provided)").
		WithDetail("element", element)
}

// ListenerNotComparable creates the composition error raised when a listener
// cannot be matched for later removal.
func ListenerNotComparable(typeName string) *StickyError {
	return New(ErrCodeListenerNotComparable,
		fmt.Sprintf("listener of type %s is not comparable; register a pointer", typeName)).
		WithDetail("type", typeName)
}

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *StickyError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *StickyError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// DocumentNotFound creates an error for a missing document source
func DocumentNotFound(path string, err error) *StickyError {
	return Wrap(err, ErrCodeDocumentNotFound, fmt.Sprintf("cannot open document: %s", path)).
		WithDetail("path", path)
}

// ScriptInvalid creates an error for a malformed simulation script
func ScriptInvalid(path string, reason string) *StickyError {
	return New(ErrCodeScriptInvalid, fmt.Sprintf("invalid simulation script: %s", reason)).
		WithDetail("path", path)
}

// InvalidInput creates a generic invalid input error for a named field
func InvalidInput(field string, value interface{}, reason string) *StickyError {
	return New(ErrCodeInvalidInput, fmt.Sprintf("invalid %s: %s", field, reason)).
		WithDetail("field", field).
		WithDetail("value", value)
}
