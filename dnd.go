package dnd

import "fmt"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Hosts use it to draw nodes; the engine never reads it.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default node tint.
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// DropEffect is the operation a drop target advertises for the current drag.
type DropEffect uint8

const (
	DropEffectNone DropEffect = iota // dropping is not allowed
	DropEffectCopy                   // the source is copied into the target
	DropEffectLink                   // the target links to the source
	DropEffectMove                   // the source moves into the target (default)
)

func (e DropEffect) String() string {
	switch e {
	case DropEffectNone:
		return "none"
	case DropEffectCopy:
		return "copy"
	case DropEffectLink:
		return "link"
	case DropEffectMove:
		return "move"
	default:
		return fmt.Sprintf("DropEffect(%d)", uint8(e))
	}
}

// DragType identifies which drag domain owns a session. Domains are mutually
// exclusive: only one session of any type exists at a time.
type DragType uint8

const (
	DragTypeElement       DragType = iota // a registered draggable node inside the scene
	DragTypeExternal                      // a native payload entering from outside the scene
	DragTypeTextSelection                 // selected text dragged out of a text node
)

func (t DragType) String() string {
	switch t {
	case DragTypeElement:
		return "element"
	case DragTypeExternal:
		return "external"
	case DragTypeTextSelection:
		return "text-selection"
	default:
		return fmt.Sprintf("DragType(%d)", uint8(t))
	}
}

// EventType identifies a published drag event.
type EventType uint8

const (
	EventGenerateDragPreview EventType = iota // fires synchronously on lift
	EventDragStart                            // fires one frame after the preview
	EventDrag                                 // throttled, at most once per frame
	EventDropTargetChange                     // fires immediately when the chain changes
	EventDrop                                 // terminal; fires on drop and on cancel
)

func (t EventType) String() string {
	switch t {
	case EventGenerateDragPreview:
		return "generate-drag-preview"
	case EventDragStart:
		return "drag-start"
	case EventDrag:
		return "drag"
	case EventDropTargetChange:
		return "drop-target-change"
	case EventDrop:
		return "drop"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(t))
	}
}

// CleanupFunc undoes a registration. Calling it more than once is a no-op.
type CleanupFunc func()

// Combine returns a CleanupFunc that runs every fn in order.
func Combine(fns ...CleanupFunc) CleanupFunc {
	return func() {
		for _, fn := range fns {
			if fn != nil {
				fn()
			}
		}
	}
}

// Data is the opaque payload attached to sources and drop target records.
type Data map[string]any
