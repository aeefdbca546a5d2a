// Package dnd is a drag and drop engine for retained-mode 2D scenes, built to
// run inside an [Ebitengine] game loop.
//
// A drag has one source, a chain of drop targets under the pointer (innermost
// first) and any number of monitors watching it. Every drag goes through the
// same lifecycle:
//
//	generate-drag-preview  synchronous, on lift
//	drag-start             one frame later
//	drag                   throttled to one per frame
//	drop-target-change     immediately when the chain changes
//	drop                   terminal, on drop and on cancel
//
// # Quick start
//
// The simplest host is [Scene], which hit-tests a [Node] tree, applies a drag
// dead zone and ticks the frame queue once per [Scene.Update]. The
// ebitenhost package runs a Scene in a window:
//
//	scene := dnd.NewScene()
//	card := dnd.NewBox("card", 20, 20, 120, 60)
//	column := dnd.NewBox("column", 200, 0, 160, 400)
//	scene.Root().AddChild(column)
//	scene.Root().AddChild(card)
//
//	scene.Elements().Draggable(dnd.DraggableOptions{Node: card})
//	scene.Elements().DropTarget(dnd.DropTargetOptions[dnd.ElementSource]{
//		Node: column,
//		OnDrop: func(ev dnd.DropTargetEvent[dnd.ElementSource]) {
//			// move ev.Source.Node into column
//		},
//	})
//
//	ebitenhost.Run(scene, ebitenhost.RunConfig{Title: "Board", Width: 640, Height: 480})
//
// # Drag types
//
// Three adapters share one [Manager], so only one drag of any type is active
// at a time:
//
//   - [ElementAdapter]: nodes registered with Draggable, lifted by the Scene
//   - [ExternalAdapter]: payloads entering from outside the scene
//   - [TextSelectionAdapter]: selected text dragged out of a node
//
// Each adapter has its own drop targets and monitors, typed by its source.
//
// # Drop targets
//
// A drop target is a registered [Node]. When the pointer is over a node, every
// registered ancestor that accepts the drag (CanDrop) joins the chain with its
// data and drop effect. Targets that report GetIsSticky stay in the chain
// after the pointer leaves them, until a different target is found.
//
// # Frames
//
// The engine never sleeps or spawns goroutines. Deferred work goes through a
// [FrameSource]; Scene owns a [FrameQueue] and ticks it at the top of Update.
// Hosts that drive a [Manager] directly tick their own queue.
//
// # Diagnostics
//
// Misuse (registering a node twice, lifting during a drag) is reported with
// log/slog and ignored. Pass a logger in [Config] or [SceneConfig].
//
// [Ebitengine]: https://ebitengine.org
package dnd
