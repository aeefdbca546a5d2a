package dnd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- HitShape tests ---

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.x, tt.y))
		})
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 50, CenterY: 50, Radius: 25}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 50, true},
		{"on circumference", 75, 50, true},
		{"outside", 80, 50, false},
		{"outside diagonal", 70, 70, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Contains(tt.x, tt.y))
		})
	}
}

func TestHitPolygonContains(t *testing.T) {
	square := HitPolygon{Points: []Vec2{{0, 0}, {100, 0}, {100, 100}, {0, 100}}}
	assert.True(t, square.Contains(50, 50))
	assert.True(t, square.Contains(0, 50), "edge")
	assert.False(t, square.Contains(-1, 50))

	clockwise := HitPolygon{Points: []Vec2{{0, 100}, {100, 100}, {100, 0}, {0, 0}}}
	assert.True(t, clockwise.Contains(50, 50), "either winding")

	degenerate := HitPolygon{Points: []Vec2{{0, 0}, {1, 1}}}
	assert.False(t, degenerate.Contains(0, 0))
}

func TestNodeContainsLocal(t *testing.T) {
	box := NewBox("box", 0, 0, 100, 50)
	assert.True(t, nodeContainsLocal(box, 50, 25))
	assert.True(t, nodeContainsLocal(box, 0, 0))
	assert.False(t, nodeContainsLocal(box, 101, 25))

	shaped := NewBox("shaped", 0, 0, 64, 64)
	shaped.HitShape = HitCircle{CenterX: 32, CenterY: 32, Radius: 16}
	assert.True(t, nodeContainsLocal(shaped, 32, 32))
	assert.False(t, nodeContainsLocal(shaped, 0, 0), "HitShape replaces the box")

	empty := NewNode("group")
	assert.False(t, nodeContainsLocal(empty, 0, 0))
}

// --- Hit test traversal ---

func hitScene(nodes ...*Node) *Scene {
	s := NewScene()
	for _, n := range nodes {
		s.Root().AddChild(n)
	}
	updateWorldTransform(s.root, identityTransform, false)
	return s
}

func TestHitTest_Topmost(t *testing.T) {
	a := NewBox("a", 0, 0, 100, 100)
	b := NewBox("b", 0, 0, 100, 100)
	s := hitScene(a, b)
	assert.Same(t, b, s.HitTest(50, 50))
}

func TestHitTest_Skips(t *testing.T) {
	a := NewBox("a", 0, 0, 100, 100)
	hidden := NewBox("hidden", 0, 0, 100, 100)
	hidden.Visible = false
	inert := NewBox("inert", 0, 0, 100, 100)
	inert.Interactable = false
	s := hitScene(a, hidden, inert)
	assert.Same(t, a, s.HitTest(50, 50))
}

func TestHitTest_NonInteractableSubtree(t *testing.T) {
	group := NewNode("group") // not interactable: children are skipped too
	child := NewBox("child", 0, 0, 100, 100)
	group.AddChild(child)
	s := hitScene(group)
	assert.Nil(t, s.HitTest(50, 50))

	group.Interactable = true
	assert.Same(t, child, s.HitTest(50, 50))
}

func TestHitTest_RespectsZIndex(t *testing.T) {
	a := NewBox("a", 0, 0, 100, 100)
	b := NewBox("b", 0, 0, 100, 100)
	a.SetZIndex(10)
	s := hitScene(a, b)
	assert.Same(t, a, s.HitTest(50, 50))
}

func TestHitTest_Transformed(t *testing.T) {
	a := NewBox("a", 200, 200, 100, 100)
	s := hitScene(a)
	assert.Nil(t, s.HitTest(50, 50))
	assert.Same(t, a, s.HitTest(250, 250))

	r := NewBox("r", 50, 50, 100, 100)
	r.PivotX, r.PivotY = 50, 50
	r.Rotation = math.Pi / 4
	s = hitScene(r)
	assert.Same(t, r, s.HitTest(50, 50), "center of a rotated node")
}

func TestHitTest_ChildOverParent(t *testing.T) {
	col := NewBox("col", 0, 0, 200, 400)
	card := NewBox("card", 10, 10, 180, 40)
	col.AddChild(card)
	s := hitScene(col)

	assert.Same(t, card, s.HitTest(20, 20))
	assert.Same(t, col, s.HitTest(20, 200))
}

func TestHitTest_ExcludesDraggedSubtree(t *testing.T) {
	col := NewBox("col", 0, 0, 200, 400)
	card := NewBox("card", 0, 0, 100, 100)
	s := hitScene(col, card)
	s.Elements().Draggable(DraggableOptions{Node: card})

	assert.Same(t, card, s.HitTest(50, 50))
	assert.True(t, s.Elements().Lift(card, Input{X: 50, Y: 50}))
	assert.Same(t, col, s.HitTest(50, 50), "the dragged node never hides what is under it")
	s.CancelDrag()
	assert.Same(t, card, s.HitTest(50, 50))
}

func BenchmarkHitTest_1000Nodes(b *testing.B) {
	s := NewScene()
	for i := 0; i < 1000; i++ {
		s.Root().AddChild(NewBox("", float64(i%100)*10, float64(i/100)*10, 10, 10))
	}
	updateWorldTransform(s.root, identityTransform, false)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		s.HitTest(500, 50)
	}
}
