// Package sticky implements elements that leave normal flow and pin to the
// top of their scroll container once scrolled past, and return when the
// container scrolls back or its end approaches.
package sticky

import (
	"reflect"

	"github.com/grovetools/sticky/errors"
	"github.com/grovetools/sticky/logging"
	"github.com/grovetools/sticky/tui/layout"
	"github.com/grovetools/sticky/tui/scroll"
	"github.com/grovetools/sticky/tui/theme"
	"github.com/sirupsen/logrus"
)

// Context is the broadcaster capability an element needs. *scroll.Broadcaster
// implements it.
type Context interface {
	Subscribe(scroll.Listener)
	Unsubscribe(scroll.Listener)
	Root() layout.Node
}

// State is what the render function sees.
type State struct {
	IsSticky  bool
	WasSticky bool
	// DistanceFromTop is the sample's top, corrected in relative mode.
	DistanceFromTop float64
	// DistanceFromBottom is the element's own bottom distance.
	DistanceFromBottom float64
	CalculatedHeight   float64
	Style              Style
}

// RenderFunc produces the element's content for a state. It must return a
// single block; the host measures it through the Content ref.
type RenderFunc func(State) string

// Element is one sticky element. Placeholder and Content are set by the
// rendering layer: Placeholder is the in-flow spacer, Content the rendered
// block.
type Element struct {
	Placeholder *layout.Ref
	Content     *layout.Ref

	ctx      Context
	render   RenderFunc
	opts     Options
	name     string
	onChange func(State)
	logger   *logrus.Entry

	state   State
	padding float64
	mounted bool
}

var _ scroll.Listener = (*Element)(nil)

// New creates an element bound to ctx. A missing context means the element
// was composed outside a scroll container, and New panics.
func New(ctx Context, render RenderFunc, opts ...Option) *Element {
	e := &Element{
		Placeholder: layout.NewRef(),
		Content:     layout.NewRef(),
		ctx:         ctx,
		render:      render,
	}
	for _, opt := range opts {
		opt(e)
	}
	if isNil(ctx) {
		panic(errors.NoBroadcaster(e.name))
	}
	if e.render == nil {
		e.render = func(State) string { return "" }
	}
	if e.logger == nil {
		e.logger = logging.NewLogger("sticky")
	}
	if e.name != "" {
		e.logger = e.logger.WithField("element", e.name)
	}
	return e
}

func isNil(ctx Context) bool {
	if ctx == nil {
		return true
	}
	v := reflect.ValueOf(ctx)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice:
		return v.IsNil()
	}
	return false
}

// Name returns the element's label.
func (e *Element) Name() string {
	return e.name
}

// Mount registers the element with its broadcaster and resets its state.
func (e *Element) Mount() {
	if e.mounted {
		return
	}
	e.state = State{}
	e.padding = 0
	e.ctx.Subscribe(e)
	e.mounted = true
}

// Unmount unregisters the element and discards its state.
func (e *Element) Unmount() {
	if !e.mounted {
		return
	}
	e.ctx.Unsubscribe(e)
	e.mounted = false
	e.state = State{}
	e.padding = 0
}

// Mounted reports whether the element is registered.
func (e *Element) Mounted() bool {
	return e.mounted
}

// Options returns the current options.
func (e *Element) Options() Options {
	return e.opts
}

// SetOptions swaps the options; they apply from the next sample.
func (e *Element) SetOptions(opts Options) {
	e.opts = opts
}

// State returns the last published state.
func (e *Element) State() State {
	return e.state
}

// PlaceholderPadding is the space the placeholder reserves below itself.
func (e *Element) PlaceholderPadding() float64 {
	return e.padding
}

// Engaged is the sticky condition. Entry at the top is inclusive; the
// bottom check is exclusive, so a bottom exactly at -bottomOffset has
// already released.
func Engaged(distanceFromTop, distanceFromBottom, topOffset, bottomOffset float64) bool {
	return distanceFromTop <= -topOffset && distanceFromBottom > -bottomOffset
}

// HandleSample recomputes the element's state from one geometry sample.
// Cycles where anything needed is not measurable are skipped entirely, so
// the previous state stays in place.
func (e *Element) HandleSample(s scroll.Sample) {
	if !s.Measured {
		return
	}
	placeholder := e.Placeholder.Node()
	content := e.Content.Node()
	if placeholder == nil || content == nil || !placeholder.Attached() || !content.Attached() {
		return
	}

	opts := e.opts
	top := s.DistanceFromTop
	bottom := s.DistanceFromBottom

	var root layout.Node
	preventChange := false
	if opts.Relative {
		root = e.ctx.Root()
		if root == nil || !root.Attached() {
			return
		}
		// Only scrolling of the container itself may change the state
		preventChange = s.Source != scroll.ScopeRoot
		top = -(root.ScrollTop() + root.OffsetTop()) + placeholder.OffsetTop()
	}

	placeholderRect := placeholder.Rect()
	height := content.Rect().Height
	bottomDifference := bottom - opts.BottomOffset - height

	wasSticky := e.state.IsSticky
	isSticky := wasSticky
	if !preventChange {
		isSticky = Engaged(top, bottom, opts.TopOffset, opts.BottomOffset)
	}

	var style Style
	if isSticky {
		if opts.Relative {
			style = relativeStyle(root, placeholderRect, height, bottomDifference)
		} else {
			style = Style{
				Position: PositionFixed,
				Left:     placeholderRect.X,
				Width:    placeholderRect.Width,
			}
			if bottomDifference <= 0 {
				style.Top = bottomDifference
			}
		}
		if !opts.DisableHardwareAcceleration {
			style.Transform = HardwareAccelerationHint
		}
	}

	if opts.Relative {
		bottom = root.ScrollHeight() - root.ScrollTop()
	}
	bottom -= height

	padding := 0.0
	if isSticky && !opts.DisableCompensation {
		padding = height
	}

	e.state = State{
		IsSticky:           isSticky,
		WasSticky:          wasSticky,
		DistanceFromTop:    top,
		DistanceFromBottom: bottom,
		CalculatedHeight:   height,
		Style:              style,
	}
	e.padding = padding

	if isSticky != wasSticky {
		e.logger.WithFields(logrus.Fields{
			"sticky": isSticky,
			"frame":  s.Frame,
			"top":    top,
		}).Debug("Sticky state changed")
	}

	if e.onChange != nil {
		e.onChange(e.state)
	}
}

// relativeStyle pins the element to the container's top edge. Near the end
// of the container it slides up by the overshoot and is clipped at the
// container's top so it never draws outside it.
func relativeStyle(root layout.Node, placeholder layout.Rect, height, bottomDifference float64) Style {
	containerTop := root.OffsetTop()
	if parent := root.OffsetParent(); parent != nil {
		containerTop -= parent.ScrollTop()
	}

	style := Style{
		Position: PositionAbsolute,
		Top:      containerTop,
		Width:    placeholder.Width,
	}
	if bottomDifference <= 0 {
		style.Top = containerTop + bottomDifference
		style.Clip = layout.Rect{
			Y:      -bottomDifference,
			Width:  placeholder.Width,
			Height: max(0, height+bottomDifference),
		}
	}
	return style
}

// Render calls the render function with the current state and applies the
// wrapper styling.
func (e *Element) Render() string {
	out := e.render(e.state)
	if e.opts.ClassName != "" {
		if style, ok := theme.DefaultTheme.ByName(e.opts.ClassName); ok {
			out = style.Render(out)
		}
	}
	if e.opts.WrapperStyle != nil {
		out = e.opts.WrapperStyle.Render(out)
	}
	return out
}
