package dnd

// ElementSource is the source of an element drag.
type ElementSource struct {
	Node       *Node
	DragHandle *Node
	// Data is collected once from GetInitialData when the drag lifts.
	Data Data
}

// DraggableFeedback is passed to CanDrag and GetInitialData.
type DraggableFeedback struct {
	Input      Input
	Node       *Node
	DragHandle *Node
}

// DraggableOptions registers Node as a drag source.
type DraggableOptions struct {
	Node *Node
	// DragHandle, when set, must contain the node the pointer pressed on.
	DragHandle *Node

	CanDrag        func(DraggableFeedback) bool
	GetInitialData func(DraggableFeedback) Data

	OnGenerateDragPreview func(Event[ElementSource])
	OnDragStart           func(Event[ElementSource])
	OnDrag                func(Event[ElementSource])
	OnDropTargetChange    func(Event[ElementSource])
	OnDrop                func(Event[ElementSource])
}

func (o *DraggableOptions) handler(t EventType) func(Event[ElementSource]) {
	switch t {
	case EventGenerateDragPreview:
		return o.OnGenerateDragPreview
	case EventDragStart:
		return o.OnDragStart
	case EventDrag:
		return o.OnDrag
	case EventDropTargetChange:
		return o.OnDropTargetChange
	case EventDrop:
		return o.OnDrop
	}
	return nil
}

// ElementAdapter handles drags of registered draggable nodes.
type ElementAdapter struct {
	*Adapter[ElementSource]
	sources *Registry[DraggableOptions]
}

// NewElementAdapter creates the element drag engine on m.
func NewElementAdapter(m *Manager) *ElementAdapter {
	e := &ElementAdapter{
		Adapter: newAdapter[ElementSource](m, DragTypeElement),
		sources: NewRegistry[DraggableOptions](KindSource, m.logger),
	}
	e.sourceHook = e.dispatchSource
	return e
}

// Draggable registers opts.Node as a drag source. Unregistering the source of
// an active drag does not end the drag; it only stops the source's own
// callbacks.
func (e *ElementAdapter) Draggable(opts DraggableOptions) CleanupFunc {
	return e.sources.Register(opts.Node, opts)
}

// CanStart reports whether a lift at origin would start a drag.
func (e *ElementAdapter) CanStart(origin *Node, input Input) bool {
	if !e.mgr.CanStart() {
		return false
	}
	_, ok := e.draggableAt(origin, input)
	return ok
}

// Lift starts a drag of the nearest draggable containing origin. It returns
// false, leaving the manager idle, when there is no such draggable, the drag
// handle does not contain origin, CanDrag refuses, or a drag is already active.
func (e *ElementAdapter) Lift(origin *Node, input Input) bool {
	reg, ok := e.draggableAt(origin, input)
	if !ok || e.busy(origin) {
		return false
	}
	opts := &reg.Options
	var data Data
	if opts.GetInitialData != nil {
		data = opts.GetInitialData(DraggableFeedback{Input: input, Node: reg.Node, DragHandle: opts.DragHandle})
	}
	if data == nil {
		data = Data{}
	}
	source := ElementSource{Node: reg.Node, DragHandle: opts.DragHandle, Data: data}
	return e.start(source, origin, input)
}

func (e *ElementAdapter) draggableAt(origin *Node, input Input) (*Registration[DraggableOptions], bool) {
	reg, ok := e.sources.Closest(origin)
	if !ok {
		return nil, false
	}
	opts := &reg.Options
	if opts.DragHandle != nil && !opts.DragHandle.Contains(origin) {
		return nil, false
	}
	if opts.CanDrag != nil && !opts.CanDrag(DraggableFeedback{Input: input, Node: reg.Node, DragHandle: opts.DragHandle}) {
		return nil, false
	}
	return reg, true
}

// dispatchSource delivers an event to the draggable being dragged, if it is
// still registered.
func (e *ElementAdapter) dispatchSource(ev Event[ElementSource]) {
	reg, ok := e.sources.Lookup(ev.Source.Node)
	if !ok {
		return
	}
	if fn := reg.Options.handler(ev.Type); fn != nil {
		fn(ev)
	}
}
