package scene

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/sticky/config"
	"github.com/grovetools/sticky/document"
	"github.com/grovetools/sticky/tui/frame"
	"github.com/grovetools/sticky/tui/scroll"
	"github.com/grovetools/sticky/tui/sticky"
	"github.com/grovetools/sticky/tui/theme"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

// threeSections is a document of three sections with a one-row heading
// and ten body rows each, so sections start at rows 0, 11 and 22.
func threeSections() *document.Document {
	doc := &document.Document{Title: "test"}
	for i := 0; i < 3; i++ {
		sec := document.Section{Heading: fmt.Sprintf("Section %d", i), Level: 2, Anchor: fmt.Sprintf("section-%d", i)}
		for j := 0; j < 10; j++ {
			sec.Lines = append(sec.Lines, fmt.Sprintf("s%d line %d", i, j))
		}
		doc.Sections = append(doc.Sections, sec)
	}
	return doc
}

func newScene(t *testing.T, opts sticky.Options) (*Scene, *frame.ManualScheduler) {
	t.Helper()
	sched := frame.NewManualScheduler()
	s := New(sched,
		WithLogger(quietLogger()),
		WithTheme(theme.NewThemeWithName("terminal")),
		WithStickyOptions(opts),
	)
	s.SetSize(40, 5)
	s.SetDocument(threeSections())
	sched.Flush()
	t.Cleanup(s.Close)
	return s, sched
}

func TestLayout(t *testing.T) {
	s, _ := newScene(t, sticky.Options{})

	sections := s.Sections()
	require.Len(t, sections, 3)
	for i, sec := range sections {
		assert.Equal(t, i*11, sec.Top)
		assert.Equal(t, 11, sec.Height)
	}
	assert.Len(t, s.Lines(), 33)
	assert.Equal(t, 28, s.MaxScroll())
}

func TestViewportModeStickiness(t *testing.T) {
	s, sched := newScene(t, sticky.Options{})

	// A section exactly at the top is already engaged
	assert.Equal(t, []int{0}, s.Stuck())

	require.True(t, s.ScrollTo(12))
	sched.Flush()
	assert.Equal(t, []int{1}, s.Stuck())
	assert.Equal(t, 1, s.Current())

	view := strings.Split(s.View(), "\n")
	require.Len(t, view, 5)
	assert.Contains(t, view[0], theme.IconPin+" Section 1")
	assert.Contains(t, view[1], "s1 line 1")

	state := s.Sections()[1].State
	assert.Equal(t, sticky.PositionFixed, state.Style.Position)
	assert.Equal(t, float64(0), state.Style.Top)

	// Section 1 ends exactly at the top edge: released
	s.ScrollTo(22)
	sched.Flush()
	assert.Equal(t, []int{2}, s.Stuck())
}

func TestCompensationKeepsFlowStable(t *testing.T) {
	s, sched := newScene(t, sticky.Options{})
	s.ScrollTo(12)
	sched.Flush()

	lines := s.Lines()
	assert.Len(t, lines, 33, "placeholder padding replaces the header row")
	assert.Equal(t, "", lines[11])
	assert.Equal(t, "s1 line 0", lines[12])
}

func TestDisableCompensation(t *testing.T) {
	s, sched := newScene(t, sticky.Options{DisableCompensation: true})
	s.ScrollTo(12)
	sched.Flush()

	require.Equal(t, []int{1}, s.Stuck())
	lines := s.Lines()
	// Section 0 is no longer stuck; section 1's header left the flow
	assert.Len(t, lines, 32)
	assert.Equal(t, "s1 line 0", lines[11])
}

func TestHeaderSlidesOffAtSectionEnd(t *testing.T) {
	tall := lipgloss.NewStyle().PaddingBottom(1)
	s, sched := newScene(t, sticky.Options{WrapperStyle: &tall})

	// Sections are 12 rows now; section 1 spans rows 12..23
	require.Equal(t, 12, s.Sections()[1].Top)

	s.ScrollTo(23)
	sched.Flush()
	require.Equal(t, []int{1}, s.Stuck())

	state := s.Sections()[1].State
	assert.Equal(t, float64(-1), state.Style.Top)

	view := strings.Split(s.View(), "\n")
	assert.NotContains(t, view[0], "Section 1", "first header row is above the window")
}

func TestRelativeMode(t *testing.T) {
	s, sched := newScene(t, sticky.Options{Relative: true})

	// Only viewport events so far: nothing may engage
	assert.Empty(t, s.Stuck())

	s.ScrollTo(12)
	sched.Flush()
	assert.Equal(t, []int{0, 1}, s.Stuck())

	state := s.Sections()[1].State
	assert.Equal(t, sticky.PositionAbsolute, state.Style.Position)

	view := strings.Split(s.View(), "\n")
	assert.Contains(t, view[0], "Section 1", "later header is drawn over earlier ones")

	// Resize comes from the viewport and holds state
	s.SetSize(40, 6)
	sched.Flush()
	assert.Equal(t, []int{0, 1}, s.Stuck())

	s.ScrollTo(0)
	sched.Flush()
	assert.Equal(t, []int{0}, s.Stuck())
}

func TestNotifyRouting(t *testing.T) {
	s, sched := newScene(t, sticky.Options{Relative: true})

	s.Notify(scroll.Load)
	sched.Flush()
	assert.Empty(t, s.Stuck(), "viewport events hold state in relative mode")

	s.Notify(scroll.TouchMove)
	sched.Flush()
	assert.Equal(t, []int{0}, s.Stuck())
}

func TestSwitchModes(t *testing.T) {
	s, sched := newScene(t, sticky.Options{})
	s.ScrollTo(12)
	sched.Flush()

	s.SetOptions(sticky.Options{Relative: true})
	sched.Flush()
	assert.Equal(t, 12, s.ScrollTop(), "scroll position survives the rebuild")
	assert.Equal(t, []int{0, 1}, s.Stuck())

	s.SetOptions(sticky.Options{Relative: true, TopOffset: 2})
	sched.Flush()
	assert.Equal(t, []int{0}, s.Stuck())
	assert.Equal(t, float64(2), s.Options().TopOffset)

	s.SetOptions(sticky.Options{})
	sched.Flush()
	assert.Equal(t, []int{1}, s.Stuck())
}

func TestSectionNavigation(t *testing.T) {
	s, sched := newScene(t, sticky.Options{})

	assert.True(t, s.NextSection())
	assert.Equal(t, 11, s.ScrollTop())
	assert.True(t, s.NextSection())
	assert.Equal(t, 22, s.ScrollTop())
	assert.False(t, s.NextSection())

	s.ScrollBy(-3)
	assert.Equal(t, 19, s.ScrollTop())
	assert.True(t, s.PrevSection())
	assert.Equal(t, 11, s.ScrollTop())

	assert.False(t, s.JumpTo(7))
	sched.Flush()
	assert.Equal(t, 1, s.Current())
}

func TestAppendLines(t *testing.T) {
	s, sched := newScene(t, sticky.Options{})
	before := s.MaxScroll()

	s.AppendLines("tail 1", "tail 2")
	assert.Equal(t, before+2, s.MaxScroll())
	lines := s.Lines()
	assert.Equal(t, "tail 2", lines[len(lines)-1])
	assert.Positive(t, sched.Pending())
}

func TestFramesAndClose(t *testing.T) {
	s, sched := newScene(t, sticky.Options{})
	// One load frame per section broadcaster
	assert.Equal(t, uint64(3), s.Frames())

	// Many scrolls before a frame coalesce into one per broadcaster
	for i := 0; i < 10; i++ {
		s.ScrollBy(1)
	}
	assert.Equal(t, 3, sched.Pending())
	sched.Flush()
	assert.Equal(t, uint64(6), s.Frames())

	s.Close()
	s.ScrollBy(1)
	assert.Equal(t, 0, sched.Pending())
}

func TestOptionsFromConfig(t *testing.T) {
	opts := OptionsFromConfig(config.StickyConfig{
		Relative:                    true,
		TopOffset:                   1,
		BottomOffset:                2,
		DisableCompensation:         true,
		DisableHardwareAcceleration: true,
		ClassName:                   "muted",
	})
	assert.Equal(t, sticky.Options{
		Relative:                    true,
		TopOffset:                   1,
		BottomOffset:                2,
		DisableCompensation:         true,
		DisableHardwareAcceleration: true,
		ClassName:                   "muted",
	}, opts)
}
