// Package layout provides the geometry primitives sticky positioning is
// measured against: rectangles, retained layout boxes and measurement refs.
package layout

import "fmt"

// Rect is a rectangle in terminal cells, relative to the top-left corner of
// the viewport. Coordinates are floats so fractional offsets survive the
// threshold arithmetic unchanged.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewRect creates a Rect with the given dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Top returns the top edge (y for positive height, y + height for negative).
func (r Rect) Top() float64 {
	if r.Height < 0 {
		return r.Y + r.Height
	}
	return r.Y
}

// Bottom returns the bottom edge (y + height for positive height, y for negative).
func (r Rect) Bottom() float64 {
	if r.Height < 0 {
		return r.Y
	}
	return r.Y + r.Height
}

// Left returns the left edge (x for positive width, x + width for negative).
func (r Rect) Left() float64 {
	if r.Width < 0 {
		return r.X + r.Width
	}
	return r.X
}

// Right returns the right edge (x + width for positive width, x for negative).
func (r Rect) Right() float64 {
	if r.Width < 0 {
		return r.X
	}
	return r.X + r.Width
}

// IsZero reports whether r is the zero rectangle.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// Intersect returns the overlapping area of r and o, or the zero Rect when
// they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	left := max(r.Left(), o.Left())
	top := max(r.Top(), o.Top())
	right := min(r.Right(), o.Right())
	bottom := min(r.Bottom(), o.Bottom())
	if right <= left || bottom <= top {
		return Rect{}
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}
