package scroll

import (
	"fmt"
	"sync"
	"time"
)

// EventKind is a geometry-affecting event.
type EventKind int

const (
	Resize EventKind = iota
	Scroll
	TouchStart
	TouchMove
	TouchEnd
	PageShow
	Load
)

// ViewportEvents are bound on the global viewport.
var ViewportEvents = []EventKind{Resize, Scroll, TouchStart, TouchMove, TouchEnd, PageShow, Load}

// LocalEvents are bound on the scroll root itself, so scrolling inside a
// container that does not propagate to the viewport still triggers a frame.
var LocalEvents = []EventKind{Scroll, TouchStart, TouchMove, TouchEnd}

func (k EventKind) String() string {
	switch k {
	case Resize:
		return "resize"
	case Scroll:
		return "scroll"
	case TouchStart:
		return "touchstart"
	case TouchMove:
		return "touchmove"
	case TouchEnd:
		return "touchend"
	case PageShow:
		return "pageshow"
	case Load:
		return "load"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// ParseEventKind is the inverse of EventKind.String.
func ParseEventKind(s string) (EventKind, bool) {
	for _, k := range ViewportEvents {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Scope says where an event was captured.
type Scope int

const (
	// ScopeViewport is the global viewport.
	ScopeViewport Scope = iota
	// ScopeRoot is the broadcaster's own scroll root.
	ScopeRoot
)

func (s Scope) String() string {
	if s == ScopeRoot {
		return "root"
	}
	return "viewport"
}

// Event is one occurrence of a geometry-affecting event.
type Event struct {
	Kind  EventKind
	Scope Scope
	At    time.Time
}

// Handler receives events from an EventSource.
type Handler func(Event)

// EventSource is anything handlers can be bound to: the viewport, or a
// scroll container.
type EventSource interface {
	// Bind registers h for kind and returns a function that removes it.
	Bind(kind EventKind, h Handler) (unbind func())
}

// Dispatcher is an EventSource the host feeds with Dispatch. Every event it
// delivers is stamped with its scope.
type Dispatcher struct {
	mu       sync.Mutex
	scope    Scope
	nextID   int
	handlers map[EventKind][]binding
}

type binding struct {
	id int
	h  Handler
}

var _ EventSource = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher for events captured at scope.
func NewDispatcher(scope Scope) *Dispatcher {
	return &Dispatcher{
		scope:    scope,
		handlers: make(map[EventKind][]binding),
	}
}

// Bind registers h for kind.
func (d *Dispatcher) Bind(kind EventKind, h Handler) func() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextID++
	id := d.nextID
	d.handlers[kind] = append(d.handlers[kind], binding{id: id, h: h})

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		list := d.handlers[kind]
		for i, b := range list {
			if b.id == id {
				d.handlers[kind] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

// Dispatch delivers an event of kind to every handler bound at call time.
func (d *Dispatcher) Dispatch(kind EventKind) {
	d.mu.Lock()
	list := make([]binding, len(d.handlers[kind]))
	copy(list, d.handlers[kind])
	d.mu.Unlock()

	ev := Event{Kind: kind, Scope: d.scope, At: time.Now()}
	for _, b := range list {
		b.h(ev)
	}
}

// Bound returns the number of handlers bound for kind.
func (d *Dispatcher) Bound(kind EventKind) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.handlers[kind])
}
