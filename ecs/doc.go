// Package ecs bridges dnd drag events into a [Donburi] world.
//
// [Bridge] registers a monitor on one drag adapter and publishes every event
// it sees as a [DragEvent] on [DragEventType]. Subscribe to it from your ECS
// systems and process events once per frame:
//
//	cleanup := ecs.BridgeScene(world, scene)
//	defer cleanup()
//
//	ecs.DragEventType.Subscribe(world, func(w donburi.World, e ecs.DragEvent) {
//		if e.Type == dnd.EventDrop && e.TargetEntityID != 0 {
//			// move e.SourceEntityID onto e.TargetEntityID
//		}
//	})
//	// each frame:
//	ecs.DragEventType.ProcessEvents(world)
//
// Node.EntityID links nodes to entities; zero means the node has none.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
