package dnd

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is a pan and zoom view into the scene. Attached to a Scene it maps
// pointer samples from screen to world space, and it can scroll the view
// while a drag holds the pointer near a viewport edge.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Viewport is the screen-space rectangle the camera renders into.
	Viewport Rect

	// EdgeSize is the width, in screen pixels, of the band along each
	// viewport edge that scrolls the camera during a drag. Zero disables
	// edge scrolling.
	EdgeSize float64
	// EdgeSpeed is the scroll speed at the very edge, in world units per
	// second. Speed ramps up linearly across the band.
	EdgeSpeed float64

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	Bounds        Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	scrollTween *scrollAnim
}

// NewCamera creates a camera centered on the viewport, so world and screen
// coordinates coincide until it moves.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		X:         viewport.X + viewport.Width/2,
		Y:         viewport.Y + viewport.Height/2,
		Zoom:      1.0,
		Viewport:  viewport,
		EdgeSpeed: 600,
		dirty:     true,
	}
}

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
	c.dirty = true
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// update advances scroll tweens and bounds clamping.
func (c *Camera) update(dt float32) {
	prevX, prevY, prevZoom := c.X, c.Y, c.Zoom

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}

	if c.X != prevX || c.Y != prevY || c.Zoom != prevZoom {
		c.dirty = true
	}
}

// edgeScroll pans the camera toward the viewport edge the screen point
// (sx, sy) is close to. It reports whether the camera moved.
func (c *Camera) edgeScroll(sx, sy float64, dt float32) bool {
	if c.EdgeSize <= 0 || c.EdgeSpeed <= 0 {
		return false
	}
	vx := edgeVelocity(sx-c.Viewport.X, c.Viewport.X+c.Viewport.Width-sx, c.EdgeSize)
	vy := edgeVelocity(sy-c.Viewport.Y, c.Viewport.Y+c.Viewport.Height-sy, c.EdgeSize)
	if vx == 0 && vy == 0 {
		return false
	}
	prevX, prevY := c.X, c.Y
	step := c.EdgeSpeed * float64(dt) / c.Zoom
	c.X += vx * step
	c.Y += vy * step
	if c.BoundsEnabled {
		c.clampToBounds()
	}
	if c.X == prevX && c.Y == prevY {
		return false
	}
	c.scrollTween = nil
	c.dirty = true
	return true
}

// edgeVelocity returns a factor in [-1, 1] for a point lo units from the
// near edge and hi units from the far edge. Points outside the viewport do
// not scroll.
func edgeVelocity(lo, hi, band float64) float64 {
	switch {
	case lo < 0 || hi < 0:
		return 0
	case lo < band:
		return -(band - lo) / band
	case hi < band:
		return (band - hi) / band
	}
	return 0
}

// clampToBounds restricts camera position so the visible area stays within Bounds.
func (c *Camera) clampToBounds() {
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	// If bounds are smaller than visible area, center the camera.
	if minX > maxX {
		c.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	z := c.Zoom

	c.viewMatrix = [6]float64{z, 0, 0, z, cx - z*c.X, cy - z*c.Y}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	return transformPoint(c.viewMatrix, wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	return transformPoint(c.invViewMatrix, sx, sy)
}

// WorldRectToScreen maps a world-space rectangle to screen space.
func (c *Camera) WorldRectToScreen(r Rect) Rect {
	x, y := c.WorldToScreen(r.X, r.Y)
	return Rect{X: x, Y: y, Width: r.Width * c.Zoom, Height: r.Height * c.Zoom}
}

// VisibleBounds returns the camera's visible area in world space.
func (c *Camera) VisibleBounds() Rect {
	x0, y0 := c.ScreenToWorld(c.Viewport.X, c.Viewport.Y)
	return Rect{X: x0, Y: y0, Width: c.Viewport.Width / c.Zoom, Height: c.Viewport.Height / c.Zoom}
}

// MarkDirty forces a recomputation of the view matrix. Call it after setting
// X, Y or Zoom directly.
func (c *Camera) MarkDirty() {
	c.dirty = true
}
