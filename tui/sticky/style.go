package sticky

import (
	"fmt"
	"strconv"

	"github.com/grovetools/sticky/tui/layout"
)

// Position is the CSS-equivalent positioning scheme of a stuck element.
type Position string

const (
	// PositionStatic is natural flow.
	PositionStatic Position = ""
	// PositionFixed pins the element relative to the viewport.
	PositionFixed Position = "fixed"
	// PositionAbsolute pins the element relative to its scroll container.
	PositionAbsolute Position = "absolute"
)

// HardwareAccelerationHint is the compositing hint added to stuck styles.
const HardwareAccelerationHint = "translateZ(0)"

// Style is the positioning for one frame. The zero value means natural flow.
// Style is comparable, so identical geometry yields == styles.
type Style struct {
	Position Position
	Top      float64
	Left     float64
	Width    float64
	// Clip is the visible part of the element in its own coordinates; zero
	// means unclipped.
	Clip      layout.Rect
	Transform string
}

// IsZero reports whether s leaves the element in flow.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Properties renders the style as CSS property names and values. Natural
// flow produces an empty map.
func (s Style) Properties() map[string]string {
	props := make(map[string]string)
	if s.Position == PositionStatic {
		return props
	}

	props["position"] = string(s.Position)
	props["top"] = formatNumber(s.Top)
	if s.Position == PositionFixed {
		props["left"] = formatNumber(s.Left)
	}
	props["width"] = formatNumber(s.Width)
	if !s.Clip.IsZero() {
		c := s.Clip
		props["clip"] = fmt.Sprintf("rect(%s, %s, %s, %s)",
			formatNumber(c.Top()), formatNumber(c.Right()), formatNumber(c.Bottom()), formatNumber(c.Left()))
	}
	if s.Transform != "" {
		props["transform"] = s.Transform
	}
	return props
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
