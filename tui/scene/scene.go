// Package scene lays a document out as a scrollable window of sections,
// each with a sticky header, and composes the visible frame.
package scene

import (
	"math"
	"strings"

	"github.com/grovetools/sticky/config"
	"github.com/grovetools/sticky/document"
	"github.com/grovetools/sticky/logging"
	"github.com/grovetools/sticky/tui/frame"
	"github.com/grovetools/sticky/tui/layout"
	"github.com/grovetools/sticky/tui/scroll"
	"github.com/grovetools/sticky/tui/sticky"
	"github.com/grovetools/sticky/tui/theme"
	"github.com/sirupsen/logrus"
)

// Scene owns the layout tree for one document.
//
// In viewport mode every section is its own broadcaster root, so a header
// sticks while its section crosses the top of the window and slides off as
// the section ends. In relative mode a single broadcaster measures the
// window as a local scroll container and every header subscribes to it.
type Scene struct {
	sched  frame.Scheduler
	logger *logrus.Entry
	theme  *theme.Theme
	opts   sticky.Options

	window   *layout.Box
	viewport *scroll.Dispatcher
	local    *scroll.Dispatcher
	shared   *scroll.Broadcaster

	doc      *document.Document
	sections []*section

	width, height int
	lines         []string
	dirty         bool
}

type section struct {
	heading string
	level   int
	anchor  string
	body    []string

	box         *layout.Box
	placeholder *layout.Box
	content     *layout.Box

	b      *scroll.Broadcaster
	el     *sticky.Element
	header []string
}

// Option configures a Scene.
type Option func(*Scene)

func WithLogger(logger *logrus.Entry) Option {
	return func(s *Scene) {
		s.logger = logger
	}
}

func WithTheme(t *theme.Theme) Option {
	return func(s *Scene) {
		s.theme = t
	}
}

// WithStickyOptions sets the options every header is created with.
func WithStickyOptions(opts sticky.Options) Option {
	return func(s *Scene) {
		s.opts = opts
	}
}

// New creates an empty scene whose broadcasters schedule on sched.
func New(sched frame.Scheduler, opts ...Option) *Scene {
	s := &Scene{
		sched:    sched,
		window:   layout.NewBox("window"),
		viewport: scroll.NewDispatcher(scroll.ScopeViewport),
		local:    scroll.NewDispatcher(scroll.ScopeRoot),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewLogger("scene")
	}
	if s.theme == nil {
		s.theme = theme.DefaultTheme
	}
	s.window.Attach(nil)
	return s
}

// OptionsFromConfig converts configured sticky defaults to element options.
func OptionsFromConfig(c config.StickyConfig) sticky.Options {
	return sticky.Options{
		Relative:                    c.Relative,
		TopOffset:                   c.TopOffset,
		BottomOffset:                c.BottomOffset,
		DisableCompensation:         c.DisableCompensation,
		DisableHardwareAcceleration: c.DisableHardwareAcceleration,
		ClassName:                   c.ClassName,
	}
}

// SetDocument replaces the scene's content. The scroll position is kept
// where the new content allows it.
func (s *Scene) SetDocument(doc *document.Document) {
	top := s.window.ScrollTop()
	s.teardown()
	s.doc = doc
	s.build()
	s.layout()

	if top > 0 {
		s.window.SetScrollTop(top)
		s.scrollTarget().Dispatch(scroll.Scroll)
	}
	s.viewport.Dispatch(scroll.Load)
}

// Document returns the current document.
func (s *Scene) Document() *document.Document {
	return s.doc
}

func (s *Scene) build() {
	if s.doc == nil {
		return
	}

	if s.opts.Relative {
		s.shared = scroll.New(s.sched, scroll.WithLogger(s.logger), scroll.WithName("window"))
		s.shared.Mount(s.window, s.viewport, s.local)
	}

	for _, ds := range s.doc.Sections {
		sec := &section{
			heading:     ds.Heading,
			level:       ds.Level,
			anchor:      ds.Anchor,
			body:        ds.Lines,
			box:         layout.NewBox("section"),
			placeholder: layout.NewBox("placeholder"),
			content:     layout.NewBox("header"),
		}
		sec.box.Attach(s.window)
		sec.placeholder.Attach(sec.box)
		sec.content.Attach(sec.box)

		var ctx sticky.Context = s.shared
		if !s.opts.Relative {
			sec.b = scroll.New(s.sched, scroll.WithLogger(s.logger), scroll.WithName(ds.Heading))
			sec.b.Mount(sec.box, s.viewport, nil)
			ctx = sec.b
		}

		sec.el = sticky.New(ctx, s.renderHeader(sec),
			sticky.WithOptions(s.opts),
			sticky.WithName(ds.Heading),
			sticky.WithLogger(s.logger),
			sticky.WithOnChange(func(sticky.State) { s.dirty = true }),
		)
		sec.el.Placeholder.Set(sec.placeholder)
		sec.el.Content.Set(sec.content)
		sec.el.Mount()

		s.sections = append(s.sections, sec)
	}
	s.logger.WithFields(logrus.Fields{
		"sections": len(s.sections),
		"relative": s.opts.Relative,
	}).Debug("Scene built")
}

func (s *Scene) teardown() {
	for _, sec := range s.sections {
		sec.el.Unmount()
		if sec.b != nil {
			sec.b.Unmount()
		}
		sec.box.Detach()
	}
	s.sections = nil
	if s.shared != nil {
		s.shared.Unmount()
		s.shared = nil
	}
}

// Close unmounts every element and broadcaster.
func (s *Scene) Close() {
	s.teardown()
}

func (s *Scene) renderHeader(sec *section) sticky.RenderFunc {
	return func(st sticky.State) string {
		icon, style := theme.IconSection, s.theme.SectionHeader
		if st.IsSticky {
			icon, style = theme.IconPin, s.theme.StuckHeader
		}
		if s.width > 0 {
			style = style.Width(s.width)
		}
		return style.Render(icon + " " + sec.heading)
	}
}

// layout places every section in flow. A stuck header leaves the flow and
// its placeholder reserves the padding the element asks for.
func (s *Scene) layout() {
	w := float64(s.width)
	y := 0.0
	lines := make([]string, 0, len(s.lines))

	for _, sec := range s.sections {
		sec.header = strings.Split(sec.el.Render(), "\n")
		h := float64(len(sec.header))
		pad := sec.el.PlaceholderPadding()

		sec.placeholder.SetBounds(0, 0, w, pad)
		sec.content.SetBounds(pad, 0, w, h)

		inner := pad
		for i := 0; i < int(pad); i++ {
			lines = append(lines, "")
		}
		if !sec.el.State().IsSticky {
			lines = append(lines, sec.header...)
			inner += h
		}
		lines = append(lines, sec.body...)
		inner += float64(len(sec.body))

		sec.box.SetBounds(y, 0, w, inner)
		y += inner
	}

	s.lines = lines
	s.window.SetContentHeight(y)
	s.dirty = false
}

func (s *Scene) ensureLayout() {
	if s.dirty {
		s.layout()
	}
}

// scrollTarget is where scrolling of the window is reported: the viewport
// in viewport mode, the window's own source in relative mode.
func (s *Scene) scrollTarget() *scroll.Dispatcher {
	if s.opts.Relative {
		return s.local
	}
	return s.viewport
}

// Options returns the options headers are created with.
func (s *Scene) Options() sticky.Options {
	return s.opts
}

// SetOptions applies opts to every header. Switching between viewport and
// relative mode rebuilds the broadcasters.
func (s *Scene) SetOptions(opts sticky.Options) {
	rebuild := opts.Relative != s.opts.Relative
	s.opts = opts
	if rebuild {
		s.SetDocument(s.doc)
		s.scrollTarget().Dispatch(scroll.Scroll)
		return
	}
	for _, sec := range s.sections {
		sec.el.SetOptions(opts)
	}
	s.dirty = true
	s.viewport.Dispatch(scroll.Load)
	if opts.Relative {
		s.local.Dispatch(scroll.Scroll)
	}
}

// SetTheme swaps the theme used for headers.
func (s *Scene) SetTheme(t *theme.Theme) {
	s.theme = t
	s.dirty = true
}

// SetSize resizes the window and reports a viewport resize.
func (s *Scene) SetSize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.window.SetBounds(0, 0, float64(width), float64(height))
	s.layout()
	s.viewport.Dispatch(scroll.Resize)
}

// Size returns the window size.
func (s *Scene) Size() (int, int) {
	return s.width, s.height
}

// Show reports that the window became visible.
func (s *Scene) Show() {
	s.viewport.Dispatch(scroll.PageShow)
}

// Touch reports a pointer event on the window.
func (s *Scene) Touch(kind scroll.EventKind) {
	switch kind {
	case scroll.TouchStart, scroll.TouchMove, scroll.TouchEnd:
		s.Notify(kind)
	}
}

// Notify reports an event the way a host delivers it: scroll and touch to
// the scroll container, everything else to the viewport.
func (s *Scene) Notify(kind scroll.EventKind) {
	switch kind {
	case scroll.Scroll, scroll.TouchStart, scroll.TouchMove, scroll.TouchEnd:
		s.scrollTarget().Dispatch(kind)
	default:
		s.viewport.Dispatch(kind)
	}
}

// AppendLines adds lines to the last section, as when following a file.
func (s *Scene) AppendLines(lines ...string) {
	if s.doc == nil || len(lines) == 0 {
		return
	}
	hadSections := len(s.doc.Sections) > 0
	s.doc.Append(lines...)
	if !hadSections {
		s.SetDocument(s.doc)
		return
	}
	last := s.sections[len(s.sections)-1]
	last.body = s.doc.Sections[len(s.doc.Sections)-1].Lines
	s.layout()
	s.viewport.Dispatch(scroll.Load)
}

// ScrollTop returns the window's scroll offset in rows.
func (s *Scene) ScrollTop() int {
	return int(s.window.ScrollTop())
}

// MaxScroll returns the largest valid scroll offset.
func (s *Scene) MaxScroll() int {
	s.ensureLayout()
	return int(s.window.MaxScroll())
}

// ScrollTo moves the window to row y, clamped. A scroll event is reported
// only when the offset changed.
func (s *Scene) ScrollTo(y int) bool {
	s.ensureLayout()
	if !s.window.SetScrollTop(float64(y)) {
		return false
	}
	s.scrollTarget().Dispatch(scroll.Scroll)
	return true
}

// ScrollBy moves the window by delta rows.
func (s *Scene) ScrollBy(delta int) bool {
	return s.ScrollTo(s.ScrollTop() + delta)
}

// Lines returns the document flow, one entry per row.
func (s *Scene) Lines() []string {
	s.ensureLayout()
	return s.lines
}

// Content is Lines joined for a viewport.
func (s *Scene) Content() string {
	return strings.Join(s.Lines(), "\n")
}

// Compose overlays stuck headers on the visible rows. Headers are drawn in
// document order, so a later header covers an earlier one.
func (s *Scene) Compose(visible []string) []string {
	s.ensureLayout()

	out := make([]string, max(len(visible), s.height))
	copy(out, visible)

	for _, sec := range s.sections {
		st := sec.el.State()
		if !st.IsSticky {
			continue
		}
		style := st.Style
		top := int(math.Round(style.Top))
		indent := strings.Repeat(" ", max(0, int(style.Left)))
		for i, line := range sec.header {
			if !style.Clip.IsZero() {
				if fi := float64(i); fi < style.Clip.Top() || fi >= style.Clip.Bottom() {
					continue
				}
			}
			row := top + i
			if row < 0 || row >= len(out) {
				continue
			}
			out[row] = indent + line
		}
	}
	return out
}

// View renders the visible frame.
func (s *Scene) View() string {
	lines := s.Lines()
	top := min(s.ScrollTop(), len(lines))
	end := min(top+s.height, len(lines))
	return strings.Join(s.Compose(lines[top:end]), "\n")
}

// SectionInfo describes one section's placement and sticky state.
type SectionInfo struct {
	Heading string
	Level   int
	Anchor  string
	Top     int
	Height  int
	State   sticky.State
}

// Sections returns every section in document order.
func (s *Scene) Sections() []SectionInfo {
	s.ensureLayout()
	out := make([]SectionInfo, len(s.sections))
	for i, sec := range s.sections {
		out[i] = SectionInfo{
			Heading: sec.heading,
			Level:   sec.level,
			Anchor:  sec.anchor,
			Top:     int(sec.box.OffsetTop()),
			Height:  int(sec.box.Rect().Height),
			State:   sec.el.State(),
		}
	}
	return out
}

// Current returns the index of the section at the top of the window, or -1
// for an empty scene.
func (s *Scene) Current() int {
	s.ensureLayout()
	top := s.window.ScrollTop()
	current := -1
	for i, sec := range s.sections {
		if sec.box.OffsetTop() > top {
			break
		}
		current = i
	}
	if current < 0 && len(s.sections) > 0 {
		current = 0
	}
	return current
}

// Stuck returns the indexes of sections whose header is currently pinned.
func (s *Scene) Stuck() []int {
	var out []int
	for i, sec := range s.sections {
		if sec.el.State().IsSticky {
			out = append(out, i)
		}
	}
	return out
}

// JumpTo scrolls section i to the top of the window.
func (s *Scene) JumpTo(i int) bool {
	if i < 0 || i >= len(s.sections) {
		return false
	}
	s.ensureLayout()
	return s.ScrollTo(int(s.sections[i].box.OffsetTop()))
}

// NextSection scrolls to the first section starting below the top of the window.
func (s *Scene) NextSection() bool {
	s.ensureLayout()
	top := s.window.ScrollTop()
	for i, sec := range s.sections {
		if sec.box.OffsetTop() > top {
			return s.JumpTo(i)
		}
	}
	return false
}

// PrevSection scrolls to the last section starting above the top of the window.
func (s *Scene) PrevSection() bool {
	s.ensureLayout()
	top := s.window.ScrollTop()
	for i := len(s.sections) - 1; i >= 0; i-- {
		if s.sections[i].box.OffsetTop() < top {
			return s.JumpTo(i)
		}
	}
	return false
}

// Frames sums the broadcasts made by the scene's broadcasters.
func (s *Scene) Frames() uint64 {
	if s.shared != nil {
		return s.shared.Frames()
	}
	var n uint64
	for _, sec := range s.sections {
		n += sec.b.Frames()
	}
	return n
}
