package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectEdges(t *testing.T) {
	tests := []struct {
		name                     string
		rect                     Rect
		top, bottom, left, right float64
	}{
		{"positive", NewRect(2, 3, 10, 4), 3, 7, 2, 12},
		{"negative height", NewRect(0, 10, 5, -4), 6, 10, 0, 5},
		{"negative width", NewRect(10, 0, -5, 1), 0, 1, 5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.top, tt.rect.Top())
			assert.Equal(t, tt.bottom, tt.rect.Bottom())
			assert.Equal(t, tt.left, tt.rect.Left())
			assert.Equal(t, tt.right, tt.rect.Right())
		})
	}
}

func TestRectIntersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	assert.Equal(t, NewRect(5, 5, 5, 5), a.Intersect(NewRect(5, 5, 10, 10)))
	assert.True(t, a.Intersect(NewRect(20, 20, 1, 1)).IsZero())
}

func TestBoxRectAppliesScroll(t *testing.T) {
	window := NewBox("window")
	window.Attach(nil)
	window.SetBounds(1, 0, 80, 20)
	window.SetContentHeight(100)

	section := NewBox("section")
	section.Attach(window)
	section.SetBounds(30, 0, 80, 10)

	header := NewBox("header")
	header.Attach(section)
	header.SetBounds(0, 2, 76, 1)

	assert.Equal(t, NewRect(2, 31, 76, 1), header.Rect())

	assert.True(t, window.ScrollBy(25))
	assert.Equal(t, float64(6), header.Rect().Y)
	assert.Equal(t, float64(6), section.Rect().Top())
	assert.Equal(t, float64(16), section.Rect().Bottom())
}

func TestBoxScrollClamp(t *testing.T) {
	b := NewBox("b")
	b.SetBounds(0, 0, 10, 10)
	b.SetContentHeight(25)

	assert.True(t, b.SetScrollTop(100))
	assert.Equal(t, float64(15), b.ScrollTop())
	assert.False(t, b.ScrollBy(1))

	assert.True(t, b.SetScrollTop(-5))
	assert.Equal(t, float64(0), b.ScrollTop())

	// Shrinking the content pulls the offset back into range
	b.SetScrollTop(15)
	b.SetContentHeight(12)
	assert.Equal(t, float64(2), b.ScrollTop())
	assert.Equal(t, float64(12), b.ScrollHeight())

	// Content shorter than the box does not scroll
	b.SetContentHeight(3)
	assert.Equal(t, float64(10), b.ScrollHeight())
	assert.Equal(t, float64(0), b.MaxScroll())
}

func TestBoxOffsetParent(t *testing.T) {
	root := NewBox("root")
	root.Attach(nil)
	root.SetBounds(4, 0, 80, 20)
	root.SetContentHeight(60)

	section := NewBox("section")
	section.Attach(root)
	section.SetBounds(10, 0, 80, 5)

	ph := NewBox("placeholder")
	ph.Attach(section)
	ph.SetBounds(1, 0, 80, 1)

	// No positioned ancestor: offsets are document-relative and ignore scroll
	root.SetScrollTop(7)
	assert.Nil(t, ph.OffsetParent())
	assert.Equal(t, float64(15), ph.OffsetTop())
	assert.Equal(t, float64(4), root.OffsetTop())

	root.SetPositioned(true)
	assert.Equal(t, root, ph.OffsetParent())
	assert.Equal(t, float64(11), ph.OffsetTop())
}

func TestBoxAttached(t *testing.T) {
	parent := NewBox("parent")
	child := NewBox("child")
	assert.False(t, child.Attached())

	child.Attach(parent)
	assert.False(t, child.Attached(), "detached ancestor")

	parent.Attach(nil)
	assert.True(t, child.Attached())

	parent.Detach()
	assert.False(t, child.Attached())
}

func TestRef(t *testing.T) {
	var nilRef *Ref
	assert.Nil(t, nilRef.Node())

	r := NewRef()
	assert.False(t, r.IsSet())

	b := NewBox("b")
	r.Set(b)
	assert.True(t, r.IsSet())
	assert.Equal(t, Node(b), r.Node())

	r.Set(nil)
	assert.False(t, r.IsSet())
}
