package layout

import "sync"

// Ref is a reference to a Node, set by the rendering layer when the node is
// laid out and read later by measurement code. Thread-safe.
type Ref struct {
	mu    sync.RWMutex
	value Node
}

// NewRef creates a new empty Ref.
func NewRef() *Ref {
	return &Ref{}
}

// Set stores the node in this ref. Setting nil clears it.
func (r *Ref) Set(n Node) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = n
}

// Node returns the referenced node, or nil if not yet set.
func (r *Ref) Node() Node {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value
}

// IsSet returns true if the ref holds a node.
func (r *Ref) IsSet() bool {
	return r.Node() != nil
}
