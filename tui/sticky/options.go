package sticky

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// Options configure a sticky element. The zero value is a viewport-mode
// element with no offsets, compensation on and the compositing hint on.
type Options struct {
	// Relative measures against the local scroll container instead of the viewport.
	Relative bool
	// TopOffset biases engagement: sticky once DistanceFromTop <= -TopOffset.
	TopOffset float64
	// BottomOffset biases release: not sticky once DistanceFromBottom <= -BottomOffset.
	BottomOffset float64
	// DisableCompensation keeps the placeholder padding at 0.
	DisableCompensation bool
	// DisableHardwareAcceleration omits the compositing hint.
	DisableHardwareAcceleration bool
	// ClassName selects a theme style for the wrapper.
	ClassName string
	// WrapperStyle is applied to the outer wrapper after ClassName.
	WrapperStyle *lipgloss.Style
}

// Option configures an Element.
type Option func(*Element)

// WithOptions replaces the whole option set.
func WithOptions(opts Options) Option {
	return func(e *Element) {
		e.opts = opts
	}
}

func WithRelative(relative bool) Option {
	return func(e *Element) {
		e.opts.Relative = relative
	}
}

func WithTopOffset(offset float64) Option {
	return func(e *Element) {
		e.opts.TopOffset = offset
	}
}

func WithBottomOffset(offset float64) Option {
	return func(e *Element) {
		e.opts.BottomOffset = offset
	}
}

func WithDisableCompensation(disable bool) Option {
	return func(e *Element) {
		e.opts.DisableCompensation = disable
	}
}

func WithDisableHardwareAcceleration(disable bool) Option {
	return func(e *Element) {
		e.opts.DisableHardwareAcceleration = disable
	}
}

// WithClassName sets the theme class applied to the wrapper.
func WithClassName(class string) Option {
	return func(e *Element) {
		e.opts.ClassName = class
	}
}

// WithWrapperStyle sets a style applied to the wrapper.
func WithWrapperStyle(style lipgloss.Style) Option {
	return func(e *Element) {
		e.opts.WrapperStyle = &style
	}
}

// WithOnChange registers a hook called after every published state.
func WithOnChange(fn func(State)) Option {
	return func(e *Element) {
		e.onChange = fn
	}
}

// WithName labels the element in logs and errors.
func WithName(name string) Option {
	return func(e *Element) {
		e.name = name
	}
}

// WithLogger sets the logger used for transition tracing.
func WithLogger(logger *logrus.Entry) Option {
	return func(e *Element) {
		e.logger = logger
	}
}
