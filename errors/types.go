package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Composition errors
	ErrCodeNoBroadcaster         ErrorCode = "NO_BROADCASTER"
	ErrCodeListenerNotComparable ErrorCode = "LISTENER_NOT_COMPARABLE"

	// Configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// Input errors
	ErrCodeDocumentNotFound ErrorCode = "DOCUMENT_NOT_FOUND"
	ErrCodeScriptInvalid    ErrorCode = "SCRIPT_INVALID"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// StickyError represents a structured error with context
type StickyError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *StickyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *StickyError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *StickyError) WithDetail(key string, value interface{}) *StickyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *StickyError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new StickyError
func New(code ErrorCode, message string) *StickyError {
	return &StickyError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a StickyError
func Wrap(err error, code ErrorCode, message string) *StickyError {
	return &StickyError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific StickyError code
func Is(err error, code ErrorCode) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error, searching the wrap chain
// for the outermost StickyError.
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	stickyErr, ok := err.(*StickyError)
	if !ok {
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return stickyErr.Code
}

// As returns the outermost StickyError in the chain, if any.
func As(err error) (*StickyError, bool) {
	for err != nil {
		if stickyErr, ok := err.(*StickyError); ok {
			return stickyErr, true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = unwrapper.Unwrap()
	}
	return nil, false
}
