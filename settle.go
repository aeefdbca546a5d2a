package dnd

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Node together. Run one with
// Scene.Animate, or call Update(dt) yourself. If the node is disposed the
// group stops without writing.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds, writes the values and marks the
// node dirty.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// TweenPosition animates node.X and node.Y to (toX, toY).
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(node.Y), float32(toY), duration, fn)
	g.fields[0] = &node.X
	g.fields[1] = &node.Y
	return g
}

// TweenScale animates node.ScaleX and node.ScaleY.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.ScaleX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(node.ScaleY), float32(toSY), duration, fn)
	g.fields[0] = &node.ScaleX
	g.fields[1] = &node.ScaleY
	return g
}

// TweenColor animates node.Color, used to fade drop target highlights.
func TweenColor(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4, target: node}
	g.tweens[0] = gween.New(float32(node.Color.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(node.Color.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(node.Color.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(node.Color.A), float32(to.A), duration, fn)
	g.fields[0] = &node.Color.R
	g.fields[1] = &node.Color.G
	g.fields[2] = &node.Color.B
	g.fields[3] = &node.Color.A
	return g
}

// SettleOptions configures Settle.
type SettleOptions struct {
	// Duration in seconds. Defaults to 0.2.
	Duration float32
	// Ease defaults to ease.OutCubic.
	Ease ease.TweenFunc
}

// Settle returns dragged nodes to where they were lifted. It registers an
// element monitor: a drop that lands on no drop target tweens the source node
// back to its position at drag start. Nodes a drop target accepted are left
// alone; the target decides where they go.
func (s *Scene) Settle(opts SettleOptions) CleanupFunc {
	if opts.Duration <= 0 {
		opts.Duration = 0.2
	}
	if opts.Ease == nil {
		opts.Ease = ease.OutCubic
	}
	type origin struct {
		node *Node
		x, y float64
	}
	var lifted origin
	return s.elements.Monitor(MonitorOptions[ElementSource]{
		OnGenerateDragPreview: func(ev Event[ElementSource]) {
			n := ev.Source.Node
			lifted = origin{node: n, x: n.X, y: n.Y}
		},
		OnDrop: func(ev Event[ElementSource]) {
			o := lifted
			lifted = origin{}
			if o.node == nil || o.node != ev.Source.Node {
				return
			}
			if len(ev.Location.Current.DropTargets) > 0 {
				return
			}
			if o.node.X == o.x && o.node.Y == o.y {
				return
			}
			s.Animate(TweenPosition(o.node, o.x, o.y, opts.Duration, opts.Ease))
		},
	})
}
