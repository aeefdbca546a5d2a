package dnd

import "log/slog"

const (
	defaultDragDeadZone = 4.0 // pixels
	defaultTPS          = 60
)

// SceneConfig configures a Scene. The zero value is usable.
type SceneConfig struct {
	// DragDeadZone is the pointer travel, in world units, before a press
	// becomes a lift. Defaults to 4.
	DragDeadZone float64
	// TPS is the number of Update calls per second, used to advance tweens.
	// Defaults to 60.
	TPS int
	// Logger receives diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
	// Debug enables tree checks (disposed-node use panics, depth and child
	// count warnings).
	Debug bool
}

// Scene hosts a node tree and drives the drag engine from pointer samples:
// it hit-tests, applies the drag dead zone, and ticks the frame queue once per
// Update.
type Scene struct {
	root     *Node
	frames   *FrameQueue
	manager  *Manager
	elements *ElementAdapter
	external *ExternalAdapter
	text     *TextSelectionAdapter
	logger   *slog.Logger
	debug    bool
	tps      int

	// ScreenToWorld maps host screen coordinates to world coordinates. It
	// takes precedence over the camera. Nil with no camera means identity.
	ScreenToWorld func(sx, sy float64) (float64, float64)
	camera        *Camera

	// Input state
	hits         hitTester
	pointer      pointerState
	dragDeadZone float64
	sample       PointerSample
	hasSample    bool
	injectQueue  []syntheticPointerEvent
	testRunner   *TestRunner
	screenshots  []string

	tweens []*TweenGroup
}

// NewScene creates a scene with default configuration.
func NewScene() *Scene {
	return NewSceneWithConfig(SceneConfig{})
}

// NewSceneWithConfig creates a scene with a pre-created root and one adapter
// per drag type sharing a single Manager.
func NewSceneWithConfig(cfg SceneConfig) *Scene {
	if cfg.DragDeadZone <= 0 {
		cfg.DragDeadZone = defaultDragDeadZone
	}
	if cfg.TPS <= 0 {
		cfg.TPS = defaultTPS
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	root := NewNode("root")
	root.Interactable = true
	frames := NewFrameQueue()
	m := NewManager(Config{Frames: frames, Logger: cfg.Logger})
	s := &Scene{
		root:         root,
		frames:       frames,
		manager:      m,
		elements:     NewElementAdapter(m),
		external:     NewExternalAdapter(m),
		text:         NewTextSelectionAdapter(m),
		logger:       cfg.Logger,
		tps:          cfg.TPS,
		dragDeadZone: cfg.DragDeadZone,
	}
	s.SetDebugMode(cfg.Debug)
	return s
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// Manager returns the drag coordinator.
func (s *Scene) Manager() *Manager {
	return s.manager
}

// Elements returns the element drag adapter (draggables, drop targets, monitors).
func (s *Scene) Elements() *ElementAdapter {
	return s.elements
}

// External returns the adapter for native drags entering the scene.
func (s *Scene) External() *ExternalAdapter {
	return s.external
}

// TextSelection returns the adapter for text selection drags.
func (s *Scene) TextSelection() *TextSelectionAdapter {
	return s.text
}

// Frames returns the frame queue ticked by Update.
func (s *Scene) Frames() *FrameQueue {
	return s.frames
}

// SetDragDeadZone sets the minimum movement before a press becomes a lift.
func (s *Scene) SetDragDeadZone(d float64) {
	s.dragDeadZone = d
}

// SetDebugMode enables or disables debug mode.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	if enabled {
		debugLogger = s.logger
	}
}

// Update runs one frame: deferred drag work from the previous frame first,
// then transforms, scripted steps, pointer input and tweens.
func (s *Scene) Update() {
	s.frames.Tick()
	updateWorldTransform(s.root, identityTransform, false)
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	dt := float32(1.0 / float64(s.tps))
	s.updateCamera(dt)
	s.updateTweens(dt)
}

// Screenshot queues a labeled capture of the next rendered frame. Hosts that
// render take the queue with TakeScreenshots; without one the labels are
// simply dropped at the next TakeScreenshots call.
func (s *Scene) Screenshot(label string) {
	s.screenshots = append(s.screenshots, label)
}

// TakeScreenshots returns and clears the queued screenshot labels.
func (s *Scene) TakeScreenshots() []string {
	if len(s.screenshots) == 0 {
		return nil
	}
	labels := s.screenshots
	s.screenshots = nil
	return labels
}

// SetCamera attaches a camera used to map pointer samples to world space.
// Nil detaches it.
func (s *Scene) SetCamera(c *Camera) {
	s.camera = c
}

// Camera returns the attached camera, or nil.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// updateCamera advances the camera and scrolls it while an element drag
// holds the pointer near a viewport edge.
func (s *Scene) updateCamera(dt float32) {
	c := s.camera
	if c == nil {
		return
	}
	c.update(dt)
	if s.pointer.dragging && s.manager.IsDragging() {
		c.edgeScroll(s.pointer.screenX, s.pointer.screenY, dt)
	}
}

// FeedPointer sets the host's pointer sample for the next Update. Injected
// events take precedence while any are queued.
func (s *Scene) FeedPointer(p PointerSample) {
	s.sample = p
	s.hasSample = true
}

// HitTest returns the topmost interactable node at a world point. While an
// element drag is active the dragged node's subtree is ignored.
func (s *Scene) HitTest(wx, wy float64) *Node {
	return s.hits.hitTest(s.root, wx, wy, s.draggedNode())
}

// CancelDrag aborts the active drag, if any.
func (s *Scene) CancelDrag() {
	s.manager.Cancel()
}

// Animate runs g from Update until it is done.
func (s *Scene) Animate(g *TweenGroup) {
	if g != nil {
		s.tweens = append(s.tweens, g)
	}
}

func (s *Scene) updateTweens(dt float32) {
	if len(s.tweens) == 0 {
		return
	}
	live := s.tweens[:0]
	for _, g := range s.tweens {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = live
}

func (s *Scene) draggedNode() *Node {
	if src, ok := s.elements.Dragging(); ok {
		return src.Node
	}
	return nil
}

func (s *Scene) screenToWorld(sx, sy float64) (float64, float64) {
	if s.ScreenToWorld != nil {
		return s.ScreenToWorld(sx, sy)
	}
	if s.camera != nil {
		return s.camera.ScreenToWorld(sx, sy)
	}
	return sx, sy
}
