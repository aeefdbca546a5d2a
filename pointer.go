package dnd

import "math"

// PointerSample is one raw pointer reading from the host, in screen coordinates.
type PointerSample struct {
	ScreenX, ScreenY float64
	Pressed          bool
	Button           MouseButton
	Modifiers        KeyModifiers
	PointerID        int
}

// pointerState tracks one press from down to up.
type pointerState struct {
	down       bool
	startX     float64
	startY     float64
	lastX      float64
	lastY      float64
	screenX    float64 // last sample, for edge scrolling
	screenY    float64
	pressNode  *Node
	startInput Input
	dragging   bool        // this press lifted a drag
	refused    bool        // the lift was refused; wait for release
	button     MouseButton // button captured at press time
}

// processInput consumes one injected event if any are queued, otherwise the
// host's latest sample.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if s.hasSample {
		s.processPointer(s.sample)
	}
}

// processPointer runs the press / dead zone / lift / update / drop state
// machine for a single pointer.
func (s *Scene) processPointer(p PointerSample) {
	ps := &s.pointer
	wx, wy := s.screenToWorld(p.ScreenX, p.ScreenY)
	button := p.Button
	if ps.down {
		button = ps.button
	}
	input := Input{
		X: wx, Y: wy,
		ScreenX: p.ScreenX, ScreenY: p.ScreenY,
		Button:    button,
		Pressed:   p.Pressed,
		PointerID: p.PointerID,
		Modifiers: p.Modifiers,
	}

	ps.screenX, ps.screenY = p.ScreenX, p.ScreenY

	switch {
	case p.Pressed && !ps.down:
		// Capture the node and button for this press.
		*ps = pointerState{
			down:       true,
			screenX:    p.ScreenX,
			screenY:    p.ScreenY,
			button:     p.Button,
			startX:     wx,
			startY:     wy,
			lastX:      wx,
			lastY:      wy,
			pressNode:  s.HitTest(wx, wy),
			startInput: input,
		}

	case p.Pressed && ps.down:
		if !ps.dragging && !ps.refused {
			dx := wx - ps.startX
			dy := wy - ps.startY
			if math.Sqrt(dx*dx+dy*dy) > s.dragDeadZone {
				if ps.pressNode != nil && s.elements.Lift(ps.pressNode, ps.startInput) {
					ps.dragging = true
				} else {
					ps.refused = true
				}
			}
		}
		if ps.dragging && s.manager.IsDragging() {
			s.manager.Update(s.HitTest(wx, wy), input)
		}
		ps.lastX = wx
		ps.lastY = wy

	case !p.Pressed && ps.down:
		if ps.dragging && s.manager.IsDragging() {
			// The release position gets a final resolution before the drop.
			s.manager.Update(s.HitTest(wx, wy), input)
			s.manager.Drop(input)
		}
		*ps = pointerState{lastX: wx, lastY: wy, screenX: p.ScreenX, screenY: p.ScreenY}
	}
}
