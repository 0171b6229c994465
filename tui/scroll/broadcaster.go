// Package scroll turns high-frequency scroll, resize and touch events into
// one geometry sample per frame, broadcast to every registered listener.
package scroll

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/grovetools/sticky/errors"
	"github.com/grovetools/sticky/logging"
	"github.com/grovetools/sticky/tui/frame"
	"github.com/grovetools/sticky/tui/layout"
	"github.com/sirupsen/logrus"
)

// Sample is the root's position relative to the viewport top, measured once
// per frame. Measured is false when the root was not attached; the distances
// are then meaningless and listeners should keep their previous state.
type Sample struct {
	DistanceFromTop    float64
	DistanceFromBottom float64
	Measured           bool
	// Source is ScopeRoot when any event in the frame came from the root.
	Source Scope
	// Frame is the broadcaster's sequence number for this sample.
	Frame uint64
}

// Listener receives samples. Listeners are matched by ==, so they must be
// comparable; pointer receivers are the norm.
type Listener interface {
	HandleSample(Sample)
}

// Broadcaster owns one scroll root. At most one frame is pending at a time,
// however many events arrive before it fires.
type Broadcaster struct {
	mu        sync.Mutex
	id        string
	name      string
	sched     frame.Scheduler
	logger    *logrus.Entry
	root      layout.Node
	listeners []Listener
	unbind    []func()
	pending   bool
	handle    frame.Handle
	source    Scope
	mounted   bool
	frames    uint64
}

// Option configures a Broadcaster.
type Option func(*Broadcaster)

// WithLogger sets the logger used for frame tracing.
func WithLogger(logger *logrus.Entry) Option {
	return func(b *Broadcaster) {
		b.logger = logger
	}
}

// WithName labels the broadcaster in logs.
func WithName(name string) Option {
	return func(b *Broadcaster) {
		b.name = name
	}
}

// New creates an unmounted broadcaster that requests frames from sched.
func New(sched frame.Scheduler, opts ...Option) *Broadcaster {
	b := &Broadcaster{
		id:    uuid.NewString(),
		sched: sched,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = logging.NewLogger("scroll")
	}
	b.logger = b.logger.WithFields(logrus.Fields{
		"broadcaster": b.id[:8],
		"name":        b.name,
	})
	return b
}

// ID returns the broadcaster's unique id.
func (b *Broadcaster) ID() string {
	return b.id
}

// Mount measures root from now on and binds the viewport events on viewport
// and the local scroll and touch events on local. Either source may be nil.
// Mounting again replaces the previous bindings.
func (b *Broadcaster) Mount(root layout.Node, viewport, local EventSource) {
	b.Unmount()

	var unbind []func()
	if viewport != nil {
		for _, kind := range ViewportEvents {
			unbind = append(unbind, viewport.Bind(kind, b.Notify))
		}
	}
	if local != nil {
		for _, kind := range LocalEvents {
			unbind = append(unbind, local.Bind(kind, b.Notify))
		}
	}

	b.mu.Lock()
	b.root = root
	b.unbind = unbind
	b.mounted = true
	b.mu.Unlock()

	b.logger.WithField("bindings", len(unbind)).Debug("Mounted")
}

// Unmount cancels any pending frame and unbinds every event handler. Nothing
// is broadcast afterwards until the next Mount.
func (b *Broadcaster) Unmount() {
	b.mu.Lock()
	if !b.mounted {
		b.mu.Unlock()
		return
	}
	if b.pending {
		b.sched.CancelFrame(b.handle)
		b.pending = false
	}
	b.source = ScopeViewport
	unbind := b.unbind
	b.unbind = nil
	b.root = nil
	b.mounted = false
	b.mu.Unlock()

	for _, fn := range unbind {
		fn()
	}
	b.logger.Debug("Unmounted")
}

// Notify is the handler bound to every event source. It schedules a frame
// unless one is already pending.
func (b *Broadcaster) Notify(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.mounted {
		return
	}
	if ev.Scope == ScopeRoot {
		b.source = ScopeRoot
	}
	if b.pending {
		return
	}
	b.pending = true
	b.handle = b.sched.RequestFrame(b.onFrame)
	b.logger.WithField("event", ev.Kind.String()).Trace("Frame requested")
}

func (b *Broadcaster) onFrame(time.Time) {
	b.mu.Lock()
	if !b.mounted {
		b.mu.Unlock()
		return
	}
	b.pending = false
	b.frames++
	source := b.source
	b.source = ScopeViewport
	root := b.root
	snapshot := make([]Listener, len(b.listeners))
	copy(snapshot, b.listeners)
	seq := b.frames
	b.mu.Unlock()

	sample := Measure(root)
	sample.Source = source
	sample.Frame = seq

	b.logger.WithFields(logrus.Fields{
		"frame":     seq,
		"top":       sample.DistanceFromTop,
		"bottom":    sample.DistanceFromBottom,
		"measured":  sample.Measured,
		"listeners": len(snapshot),
	}).Trace("Broadcasting sample")

	for _, l := range snapshot {
		l.HandleSample(sample)
	}
}

// Measure samples root's top and bottom distance from the viewport top.
func Measure(root layout.Node) Sample {
	if root == nil || !root.Attached() {
		return Sample{}
	}
	r := root.Rect()
	return Sample{
		DistanceFromTop:    r.Top(),
		DistanceFromBottom: r.Bottom(),
		Measured:           true,
	}
}

// Subscribe appends l to the registry. Registering the same listener twice
// makes it fire twice per broadcast.
func (b *Broadcaster) Subscribe(l Listener) {
	if l == nil {
		panic(errors.InvalidInput("listener", nil, "cannot be nil"))
	}
	if t := reflect.TypeOf(l); !t.Comparable() {
		panic(errors.ListenerNotComparable(fmt.Sprint(t)))
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, l)
}

// Unsubscribe removes every registration of l. Unknown listeners are ignored.
// A broadcast already in progress still delivers to l.
func (b *Broadcaster) Unsubscribe(l Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	kept := b.listeners[:0:0]
	for _, existing := range b.listeners {
		if existing != l {
			kept = append(kept, existing)
		}
	}
	b.listeners = kept
}

// Root returns the measured root, or nil before Mount.
func (b *Broadcaster) Root() layout.Node {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.root
}

// Listeners returns the number of registrations.
func (b *Broadcaster) Listeners() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}

// Pending reports whether a frame has been requested and not yet fired.
func (b *Broadcaster) Pending() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pending
}

// Frames returns the number of samples broadcast so far.
func (b *Broadcaster) Frames() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frames
}

// Mounted reports whether the broadcaster is bound to its event sources.
func (b *Broadcaster) Mounted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mounted
}
