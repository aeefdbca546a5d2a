// Package ebitenhost runs a dnd.Scene inside an Ebitengine window. It samples
// mouse, touch and modifier keys into Scene.FeedPointer, cancels the drag on
// Escape or focus loss, and draws the node tree as flat rectangles.
package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/dnd"
)

// RunConfig configures Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowStatus prints the drag state, FPS and the innermost drop target in
	// the top-left corner.
	ShowStatus bool
	// Background is the clear color. The zero value clears to black.
	Background dnd.Color
	// OnUpdate, if set, runs after Scene.Update each tick.
	OnUpdate func() error
	// ScreenshotDir receives PNGs queued with Scene.Screenshot. Defaults to
	// "screenshots".
	ScreenshotDir string
}

// Run opens a window and drives scene until the window is closed or OnUpdate
// returns an error.
func Run(scene *dnd.Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(NewGame(scene, cfg))
}

// Game implements ebiten.Game for a Scene. Use it directly to embed a scene
// in a larger ebiten program.
type Game struct {
	scene   *dnd.Scene
	cfg     RunConfig
	focused bool
	touches []ebiten.TouchID
	touch   ebiten.TouchID // touch driving the pointer, when touchOn
	touchOn bool
	lastX   int
	lastY   int
}

// NewGame wraps scene.
func NewGame(scene *dnd.Scene, cfg RunConfig) *Game {
	return &Game{scene: scene, cfg: cfg, focused: true}
}

// Update samples input and runs one scene frame.
func (g *Game) Update() error {
	focused := ebiten.IsFocused()
	lostFocus := g.focused && !focused
	g.focused = focused
	if lostFocus || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.scene.CancelDrag()
	}

	g.scene.FeedPointer(g.sample(focused))
	g.scene.Update()

	if g.cfg.OnUpdate != nil {
		return g.cfg.OnUpdate()
	}
	return nil
}

// sample reads the pointer: the left/right/middle mouse button, or the first
// touch while no button is held.
func (g *Game) sample(focused bool) dnd.PointerSample {
	p := dnd.PointerSample{Modifiers: ReadModifiers()}

	g.touches = ebiten.AppendTouchIDs(g.touches[:0])
	if g.touchOn && !hasTouch(g.touches, g.touch) {
		// Released: report the last known position.
		g.touchOn = false
		p.ScreenX, p.ScreenY = float64(g.lastX), float64(g.lastY)
		p.PointerID = int(g.touch)
		return p
	}
	if !g.touchOn && len(g.touches) > 0 && !anyMouseButton() {
		g.touch = g.touches[0]
		g.touchOn = true
	}
	if g.touchOn {
		g.lastX, g.lastY = ebiten.TouchPosition(g.touch)
		p.ScreenX, p.ScreenY = float64(g.lastX), float64(g.lastY)
		p.Pressed = focused
		p.Button = dnd.MouseButtonLeft
		p.PointerID = int(g.touch)
		return p
	}

	mx, my := ebiten.CursorPosition()
	p.ScreenX, p.ScreenY = float64(mx), float64(my)
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		p.Pressed, p.Button = true, dnd.MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		p.Pressed, p.Button = true, dnd.MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		p.Pressed, p.Button = true, dnd.MouseButtonMiddle
	}
	p.Pressed = p.Pressed && focused
	return p
}

func anyMouseButton() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
}

func hasTouch(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, t := range ids {
		if t == id {
			return true
		}
	}
	return false
}

// Draw renders every visible node with a size as a filled rectangle, the
// dragged node last.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(toRGBA(g.cfg.Background))

	var dragged *dnd.Node
	if src, ok := g.scene.Elements().Dragging(); ok {
		dragged = src.Node
	}
	cam := g.scene.Camera()
	g.scene.Root().Walk(func(n *dnd.Node) bool {
		if n == dragged {
			return false
		}
		drawNode(screen, cam, n)
		return true
	})
	if dragged != nil {
		dragged.Walk(func(n *dnd.Node) bool {
			drawNode(screen, cam, n)
			return true
		})
	}

	if g.cfg.ShowStatus {
		ebitenutil.DebugPrint(screen, g.status())
	}
	g.flushScreenshots(screen)
}

func drawNode(dst *ebiten.Image, cam *dnd.Camera, n *dnd.Node) {
	if n.Width == 0 && n.Height == 0 {
		return
	}
	b := n.WorldBounds()
	if cam != nil {
		b = cam.WorldRectToScreen(b)
	}
	c := toRGBA(n.Color)
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), c, false)
	vector.StrokeRect(dst, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), 1, color.RGBA{0, 0, 0, 96}, false)
	if n.Name != "" {
		ebitenutil.DebugPrintAt(dst, n.Name, int(b.X)+4, int(b.Y)+2)
	}
}

func (g *Game) status() string {
	s := fmt.Sprintf("FPS: %.1f  TPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	info, ok := g.scene.Manager().Active()
	if !ok {
		return s + "idle"
	}
	s += fmt.Sprintf("%s %s", info.Type, info.State)
	if rec := info.Location.Current.Innermost(); rec != nil {
		s += fmt.Sprintf("  over %s (%s)", rec.Node.Name, rec.DropEffect)
		if rec.IsActiveDueToStickiness {
			s += " sticky"
		}
	}
	return s
}

// Layout reports the configured size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.cfg.Width > 0 && g.cfg.Height > 0 {
		return g.cfg.Width, g.cfg.Height
	}
	return outsideWidth, outsideHeight
}

// ReadModifiers reads the current keyboard modifier state.
func ReadModifiers() dnd.KeyModifiers {
	var mods dnd.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= dnd.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= dnd.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= dnd.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= dnd.ModMeta
	}
	return mods
}

func toRGBA(c dnd.Color) color.RGBA {
	clamp := func(v float64) uint8 {
		switch {
		case v <= 0:
			return 0
		case v >= 1:
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	a := clamp(c.A)
	// color.RGBA is premultiplied.
	return color.RGBA{
		R: clamp(c.R * c.A),
		G: clamp(c.G * c.A),
		B: clamp(c.B * c.A),
		A: a,
	}
}
