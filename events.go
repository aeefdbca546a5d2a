package dnd

import "github.com/google/uuid"

// Event is the payload every drag callback receives.
type Event[S any] struct {
	Type     EventType
	DragID   uuid.UUID
	DragType DragType
	Source   S
	Location LocationHistory
}

// DropTargetEvent is an Event delivered to a drop target. Self is the
// target's own record in the chain the event is about.
type DropTargetEvent[S any] struct {
	Event[S]
	Self *DropTargetRecord
}

// DropTargetFeedback is passed to a drop target's eligibility and data functions.
type DropTargetFeedback[S any] struct {
	Input  Input
	Source S
	Node   *Node
}

// DropTargetOptions registers Node as a drop target. Every field except Node
// is optional.
type DropTargetOptions[S any] struct {
	Node *Node

	// CanDrop excludes the target (but not its ancestors) when it returns false.
	CanDrop func(DropTargetFeedback[S]) bool
	// GetData is called on every resolution; keep it cheap. Successive
	// results are compared with reflect.DeepEqual unless the same map is
	// returned. Func values and NaN never compare equal, so a fresh map
	// holding them turns every sample into a drop target change.
	GetData func(DropTargetFeedback[S]) Data
	// GetDropEffect defaults to DropEffectMove.
	GetDropEffect func(DropTargetFeedback[S]) DropEffect
	// GetIsSticky is consulted only when the target is about to leave the chain.
	GetIsSticky func(DropTargetFeedback[S]) bool

	OnGenerateDragPreview func(DropTargetEvent[S])
	OnDragStart           func(DropTargetEvent[S])
	OnDrag                func(DropTargetEvent[S])
	OnDropTargetChange    func(DropTargetEvent[S])
	OnDragEnter           func(DropTargetEvent[S])
	OnDragLeave           func(DropTargetEvent[S])
	OnDrop                func(DropTargetEvent[S])
}

func (o *DropTargetOptions[S]) handler(t EventType) func(DropTargetEvent[S]) {
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

// MonitorFeedback is passed to CanMonitor when a drag starts, or when the
// monitor is registered during a drag.
type MonitorFeedback[S any] struct {
	Initial Location
	Source  S
}

// MonitorOptions registers an observer of every drag of one drag type.
type MonitorOptions[S any] struct {
	// CanMonitor is evaluated once per drag. Returning false excludes the
	// monitor until the drag ends.
	CanMonitor func(MonitorFeedback[S]) bool

	OnGenerateDragPreview func(Event[S])
	OnDragStart           func(Event[S])
	OnDrag                func(Event[S])
	OnDropTargetChange    func(Event[S])
	OnDrop                func(Event[S])
}

func (o *MonitorOptions[S]) handler(t EventType) func(Event[S]) {
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
