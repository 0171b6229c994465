package layout

// Node is a mounted element as measurement sees it. Implementations must
// tolerate being queried before they are attached; callers check Attached
// before trusting any geometry.
type Node interface {
	// Rect is the bounding rectangle relative to the viewport.
	Rect() Rect
	// OffsetTop is the top edge relative to OffsetParent, ignoring scrolling.
	OffsetTop() float64
	// OffsetParent is the nearest positioned ancestor, or nil for the document.
	OffsetParent() Node
	// ScrollTop is how far the node's content is scrolled.
	ScrollTop() float64
	// ScrollHeight is the full height of the node's content.
	ScrollHeight() float64
	// Attached reports whether the node is part of a mounted tree.
	Attached() bool
}

// Box is a retained layout node. Position is relative to the parent's
// content origin, so a parent's scroll offset moves every descendant.
type Box struct {
	name       string
	parent     *Box
	top        float64
	left       float64
	width      float64
	height     float64
	scrollTop  float64
	content    float64
	positioned bool
	attached   bool
}

var _ Node = (*Box)(nil)

// NewBox creates a detached box.
func NewBox(name string) *Box {
	return &Box{name: name}
}

// Name returns the debug name given at construction.
func (b *Box) Name() string {
	return b.name
}

// Attach mounts the box under parent. A nil parent mounts it directly in
// the viewport.
func (b *Box) Attach(parent *Box) {
	b.parent = parent
	b.attached = true
}

// Detach unmounts the box; it keeps its geometry but stops being measurable.
func (b *Box) Detach() {
	b.attached = false
}

// Parent returns the box this one was attached under.
func (b *Box) Parent() *Box {
	return b.parent
}

// SetBounds positions the box inside its parent's content area.
func (b *Box) SetBounds(top, left, width, height float64) {
	b.top = top
	b.left = left
	b.width = width
	b.height = height
	b.clampScroll()
}

// SetTop moves the box vertically inside its parent.
func (b *Box) SetTop(top float64) {
	b.top = top
}

// SetHeight resizes the box vertically.
func (b *Box) SetHeight(height float64) {
	b.height = height
	b.clampScroll()
}

// SetPositioned marks the box as an offset parent for its descendants.
func (b *Box) SetPositioned(positioned bool) {
	b.positioned = positioned
}

// SetContentHeight sets the height of the scrollable content. A box with no
// explicit content height does not scroll.
func (b *Box) SetContentHeight(h float64) {
	b.content = h
	b.clampScroll()
}

// SetScrollTop scrolls the content, clamped to [0, ScrollHeight-height].
// It returns true if the offset changed.
func (b *Box) SetScrollTop(v float64) bool {
	prev := b.scrollTop
	b.scrollTop = v
	b.clampScroll()
	return b.scrollTop != prev
}

// ScrollBy scrolls the content by delta rows. It returns true if the offset changed.
func (b *Box) ScrollBy(delta float64) bool {
	return b.SetScrollTop(b.scrollTop + delta)
}

// MaxScroll returns the largest valid scroll offset.
func (b *Box) MaxScroll() float64 {
	return max(0, b.ScrollHeight()-b.height)
}

func (b *Box) clampScroll() {
	if b.scrollTop > b.MaxScroll() {
		b.scrollTop = b.MaxScroll()
	}
	if b.scrollTop < 0 {
		b.scrollTop = 0
	}
}

// Rect walks up the parents, applying each ancestor's scroll offset.
func (b *Box) Rect() Rect {
	x, y := b.left, b.top
	for p := b.parent; p != nil; p = p.parent {
		x += p.left
		y += p.top - p.scrollTop
	}
	return Rect{X: x, Y: y, Width: b.width, Height: b.height}
}

// OffsetTop sums tops up to the offset parent without applying scroll.
func (b *Box) OffsetTop() float64 {
	y := b.top
	for p := b.parent; p != nil && !p.positioned; p = p.parent {
		y += p.top
	}
	return y
}

// OffsetParent returns the nearest positioned ancestor.
func (b *Box) OffsetParent() Node {
	for p := b.parent; p != nil; p = p.parent {
		if p.positioned {
			return p
		}
	}
	return nil
}

func (b *Box) ScrollTop() float64 {
	return b.scrollTop
}

func (b *Box) ScrollHeight() float64 {
	if b.content > b.height {
		return b.content
	}
	return b.height
}

// Attached reports whether the box and every ancestor are attached.
func (b *Box) Attached() bool {
	for n := b; n != nil; n = n.parent {
		if !n.attached {
			return false
		}
	}
	return true
}
