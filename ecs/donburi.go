package ecs

import (
	"github.com/google/uuid"
	"github.com/phanxgames/dnd"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DragEvent is a drag lifecycle event flattened for ECS systems.
type DragEvent struct {
	Type     dnd.EventType
	DragID   uuid.UUID
	DragType dnd.DragType

	// SourceEntityID is the entity of the dragged node, or of the node a text
	// selection started in. Zero for external drags.
	SourceEntityID uint32
	// TargetEntityID is the entity of the innermost drop target, or zero.
	TargetEntityID uint32
	// TargetEntityIDs lists every drop target's entity, innermost first.
	// Targets without an entity are omitted.
	TargetEntityIDs []uint32
	DropEffect      dnd.DropEffect
	Sticky          bool

	X, Y float64
}

// DragEventType is the Donburi event type drag events are published on.
var DragEventType = events.NewEventType[DragEvent]()

// Bridge publishes every drag of adapter's type into world. entity maps a
// source to its entity id; nil publishes zero.
func Bridge[S any](world donburi.World, adapter *dnd.Adapter[S], entity func(S) uint32) dnd.CleanupFunc {
	publish := func(ev dnd.Event[S]) {
		DragEventType.Publish(world, newDragEvent(ev, entity))
	}
	return adapter.Monitor(dnd.MonitorOptions[S]{
		OnGenerateDragPreview: publish,
		OnDragStart:           publish,
		OnDrag:                publish,
		OnDropTargetChange:    publish,
		OnDrop:                publish,
	})
}

// BridgeScene bridges all three drag types of scene into world.
func BridgeScene(world donburi.World, scene *dnd.Scene) dnd.CleanupFunc {
	return dnd.Combine(
		Bridge(world, scene.Elements().Adapter, func(s dnd.ElementSource) uint32 {
			return nodeEntity(s.Node)
		}),
		Bridge(world, scene.External().Adapter, nil),
		Bridge(world, scene.TextSelection().Adapter, func(s dnd.TextSelectionSource) uint32 {
			return nodeEntity(s.Node)
		}),
	)
}

func newDragEvent[S any](ev dnd.Event[S], entity func(S) uint32) DragEvent {
	cur := ev.Location.Current
	out := DragEvent{
		Type:     ev.Type,
		DragID:   ev.DragID,
		DragType: ev.DragType,
		X:        cur.Input.X,
		Y:        cur.Input.Y,
	}
	if entity != nil {
		out.SourceEntityID = entity(ev.Source)
	}
	if rec := cur.Innermost(); rec != nil {
		out.TargetEntityID = nodeEntity(rec.Node)
		out.DropEffect = rec.DropEffect
		out.Sticky = rec.IsActiveDueToStickiness
	}
	for _, rec := range cur.DropTargets {
		if id := nodeEntity(rec.Node); id != 0 {
			out.TargetEntityIDs = append(out.TargetEntityIDs, id)
		}
	}
	return out
}

func nodeEntity(n *dnd.Node) uint32 {
	if n == nil {
		return 0
	}
	return n.EntityID
}
