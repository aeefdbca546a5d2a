package dnd

import "log/slog"

// Kind is the participant role of a registration.
type Kind uint8

const (
	KindSource  Kind = iota // a draggable node
	KindTarget              // a drop target node
	KindMonitor             // an observer with no node
)

func (k Kind) String() string {
	switch k {
	case KindSource:
		return "source"
	case KindTarget:
		return "target"
	case KindMonitor:
		return "monitor"
	default:
		return "unknown"
	}
}

// Handle identifies a registration. Handles are never reused within a
// Registry, so a stale handle can not address a newer registration.
type Handle uint32

// Registration is one entry of a Registry.
type Registration[T any] struct {
	Handle  Handle
	Kind    Kind
	Node    *Node // nil for monitors
	Options T
	seq     uint64
}

// Registry is an arena of registrations of a single kind. Sources and drop
// targets are keyed by node (at most one per node); monitors have no node and
// are kept in insertion order.
//
// Callers iterate copies (Snapshot, AncestorsOf), so registering or
// unregistering from inside a callback never disturbs an iteration in
// progress.
type Registry[T any] struct {
	kind    Kind
	logger  *slog.Logger
	entries map[Handle]*Registration[T]
	byNode  map[*Node]Handle
	order   []Handle
	nextID  Handle
	nextSeq uint64
}

// NewRegistry creates an empty registry for the given kind. Rejected
// registrations are reported on logger.
func NewRegistry[T any](kind Kind, logger *slog.Logger) *Registry[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry[T]{
		kind:    kind,
		logger:  logger,
		entries: make(map[Handle]*Registration[T]),
		byNode:  make(map[*Node]Handle),
	}
}

// Register adds a registration and returns its cleanup. A second registration
// of the same kind on one node, a missing node for a source or target, or a
// disposed node is rejected with a warning; the returned cleanup is then a
// no-op.
func (r *Registry[T]) Register(node *Node, opts T) CleanupFunc {
	reg, ok := r.add(node, opts)
	if !ok {
		return func() {}
	}
	h := reg.Handle
	return func() { r.remove(h) }
}

func (r *Registry[T]) add(node *Node, opts T) (*Registration[T], bool) {
	if r.kind != KindMonitor {
		if node == nil {
			r.logger.Warn("dnd: registration requires a node", "kind", r.kind)
			return nil, false
		}
		if node.IsDisposed() {
			r.logger.Warn("dnd: cannot register a disposed node", "kind", r.kind, nodeAttr(node))
			return nil, false
		}
		if _, dup := r.byNode[node]; dup {
			r.logger.Warn("dnd: node is already registered; ignoring the second registration",
				"kind", r.kind, nodeAttr(node))
			return nil, false
		}
	}
	r.nextID++
	r.nextSeq++
	reg := &Registration[T]{Handle: r.nextID, Kind: r.kind, Node: node, Options: opts, seq: r.nextSeq}
	r.entries[reg.Handle] = reg
	if node != nil && r.kind != KindMonitor {
		r.byNode[node] = reg.Handle
	}
	r.order = append(r.order, reg.Handle)
	return reg, true
}

// remove deletes the registration for h. Unknown handles are ignored.
func (r *Registry[T]) remove(h Handle) {
	reg, ok := r.entries[h]
	if !ok {
		return
	}
	delete(r.entries, h)
	if reg.Node != nil && r.byNode[reg.Node] == h {
		delete(r.byNode, reg.Node)
	}
	for i, oh := range r.order {
		if oh == h {
			copy(r.order[i:], r.order[i+1:])
			r.order = r.order[:len(r.order)-1]
			break
		}
	}
}

// Lookup returns the registration attached to node. Disposed nodes never
// resolve.
func (r *Registry[T]) Lookup(node *Node) (*Registration[T], bool) {
	if node == nil || node.IsDisposed() {
		return nil, false
	}
	h, ok := r.byNode[node]
	if !ok {
		return nil, false
	}
	return r.entries[h], true
}

// Get returns the registration for h if it is still registered.
func (r *Registry[T]) Get(h Handle) (*Registration[T], bool) {
	reg, ok := r.entries[h]
	return reg, ok
}

// Alive reports whether h is still registered.
func (r *Registry[T]) Alive(h Handle) bool {
	_, ok := r.entries[h]
	return ok
}

// AncestorsOf returns the registrations on node and its ancestors in bubble
// order (node first, root last).
func (r *Registry[T]) AncestorsOf(node *Node) []*Registration[T] {
	var out []*Registration[T]
	for n := node; n != nil; n = n.Parent {
		if reg, ok := r.Lookup(n); ok {
			out = append(out, reg)
		}
	}
	return out
}

// Closest returns the registration nearest to node, walking up from node.
func (r *Registry[T]) Closest(node *Node) (*Registration[T], bool) {
	for n := node; n != nil; n = n.Parent {
		if reg, ok := r.Lookup(n); ok {
			return reg, true
		}
	}
	return nil, false
}

// Snapshot returns the current registrations in insertion order.
func (r *Registry[T]) Snapshot() []*Registration[T] {
	out := make([]*Registration[T], 0, len(r.order))
	for _, h := range r.order {
		out = append(out, r.entries[h])
	}
	return out
}

// Len returns the number of live registrations.
func (r *Registry[T]) Len() int {
	return len(r.entries)
}
