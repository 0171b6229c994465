package errors

import (
	"fmt"
	"testing"
)

func TestStickyError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeConfigInvalid, "bad config")
	if err.Code != ErrCodeConfigInvalid {
		t.Errorf("expected code %s, got %s", ErrCodeConfigInvalid, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeScriptInvalid, "script failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	if !Is(wrapped, ErrCodeScriptInvalid) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeConfigInvalid) {
		t.Error("Is should return false for non-matching code")
	}

	// Wrapped by fmt.Errorf
	outer := fmt.Errorf("loading: %w", wrapped)
	if GetCode(outer) != ErrCodeScriptInvalid {
		t.Errorf("GetCode should see through fmt wrapping, got %q", GetCode(outer))
	}
	if se, ok := As(outer); !ok || se != wrapped {
		t.Error("As should return the wrapped StickyError")
	}

	detailed := err.WithDetail("path", "sticky.yml").WithDetail("line", 3)
	if detailed.Details["path"] != "sticky.yml" {
		t.Error("WithDetail should add details")
	}
}

func TestIsNil(t *testing.T) {
	if Is(nil, ErrCodeInternal) {
		t.Error("Is(nil) should be false")
	}
	if Is(fmt.Errorf("plain"), "") {
		t.Error("Is should never match the empty code")
	}
}

func TestErrorConstructors(t *testing.T) {
	err := NoBroadcaster("header")
	if err.Code != ErrCodeNoBroadcaster {
		t.Errorf("expected code %s, got %s", ErrCodeNoBroadcaster, err.Code)
	}
	if err.Details["element"] != "header" {
		t.Error("NoBroadcaster should include element detail")
	}

	err = InvalidInput("top_offset", -1, "must be a number")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidInput, err.Code)
	}
	if err.Details["value"] != -1 {
		t.Error("InvalidInput should include value detail")
	}

	err = DocumentNotFound("README.md", fmt.Errorf("no such file"))
	if err.Cause == nil || err.Details["path"] != "README.md" {
		t.Error("DocumentNotFound should keep cause and path")
	}
}
