package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Constructor defaults ---

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode("test")
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	assert.Equal(t, "test", n.Name)
	assert.Equal(t, 1.0, n.ScaleX)
	assert.Equal(t, 1.0, n.ScaleY)
	assert.Equal(t, ColorWhite, n.Color)
	assert.True(t, n.Visible)
	assert.False(t, n.Interactable, "plain nodes are not hit-testable")
	assert.True(t, n.transformDirty)
}

func TestNewBox(t *testing.T) {
	n := NewBox("card", 10, 20, 100, 40)
	assert.True(t, n.Interactable)
	assert.Equal(t, Vec2{10, 20}, Vec2{n.X, n.Y})
	assert.Equal(t, 100.0, n.Width)
	assert.Equal(t, 40.0, n.Height)
}

func TestUniqueIDs(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	c := NewBox("c", 0, 0, 1, 1)
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

// --- AddChild ---

func TestAddChildBasic(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)

	assert.Same(t, parent, child.Parent)
	assert.Equal(t, 1, parent.NumChildren())
	assert.Equal(t, 0, parent.IndexOf(child))
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewNode("p1")
	p2 := NewNode("p2")
	child := NewNode("child")

	p1.AddChild(child)
	p2.AddChild(child)

	assert.Equal(t, 0, p1.NumChildren(), "p1 keeps no child after reparent")
	assert.Equal(t, 1, p2.NumChildren())
	assert.Same(t, p2, child.Parent)
}

func TestAddChildPanics(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	grandchild := NewNode("grandchild")
	parent.AddChild(child)
	child.AddChild(grandchild)

	assert.Panics(t, func() { grandchild.AddChild(parent) }, "cycle")
	assert.Panics(t, func() { child.AddChild(child) }, "self")
	assert.Panics(t, func() { child.AddChild(nil) }, "nil")
}

// --- AddChildAt ---

func TestAddChildAt(t *testing.T) {
	parent := NewNode("parent")
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")
	parent.AddChild(a)
	parent.AddChild(c)

	parent.AddChildAt(b, 1)
	assert.Equal(t, []*Node{a, b, c}, parent.Children())

	d := NewNode("d")
	parent.AddChildAt(d, 0)
	assert.Equal(t, []*Node{d, a, b, c}, parent.Children())

	assert.Panics(t, func() { parent.AddChildAt(NewNode("e"), 9) })
}

func TestAddChildAtWithinSameParent(t *testing.T) {
	parent := NewNode("parent")
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)

	// Moving a to the end of its own parent.
	parent.AddChildAt(a, 2)
	assert.Equal(t, []*Node{b, c, a}, parent.Children())
}

// --- RemoveChild / RemoveFromParent ---

func TestRemoveChild(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)
	parent.RemoveChild(child)

	assert.Equal(t, 0, parent.NumChildren())
	assert.Nil(t, child.Parent)
	assert.Equal(t, -1, parent.IndexOf(child))
}

func TestRemoveChildWrongParentPanic(t *testing.T) {
	p1 := NewNode("p1")
	p2 := NewNode("p2")
	child := NewNode("child")
	p1.AddChild(child)

	assert.Panics(t, func() { p2.RemoveChild(child) })
}

func TestRemoveFromParentNoOp(t *testing.T) {
	n := NewNode("orphan")
	n.RemoveFromParent()
	assert.Nil(t, n.Parent)
}

// --- Contains ---

func TestContains(t *testing.T) {
	root := NewNode("root")
	col := NewNode("col")
	card := NewNode("card")
	other := NewNode("other")
	root.AddChild(col)
	col.AddChild(card)
	root.AddChild(other)

	assert.True(t, col.Contains(col))
	assert.True(t, col.Contains(card))
	assert.True(t, root.Contains(card))
	assert.False(t, card.Contains(col))
	assert.False(t, col.Contains(other))
	assert.False(t, col.Contains(nil))
}

// --- ZIndex ---

func TestSetZIndexMarksParentUnsorted(t *testing.T) {
	parent := NewNode("parent")
	a := NewNode("a")
	b := NewNode("b")
	parent.AddChild(a)
	parent.AddChild(b)
	rebuildSortedChildren(parent)
	require.True(t, parent.childrenSorted)

	a.SetZIndex(5)
	assert.False(t, parent.childrenSorted)

	rebuildSortedChildren(parent)
	assert.Equal(t, []*Node{b, a}, parent.sortedChildren)
	assert.Equal(t, []*Node{a, b}, parent.Children(), "child order is unchanged")
}

func TestWalkPainterOrder(t *testing.T) {
	root := NewNode("root")
	a := NewNode("a")
	b := NewNode("b")
	a1 := NewNode("a1")
	hidden := NewNode("hidden")
	hidden.Visible = false
	root.AddChild(a)
	root.AddChild(b)
	root.AddChild(hidden)
	a.AddChild(a1)
	a.SetZIndex(1)

	var names []string
	root.Walk(func(n *Node) bool {
		names = append(names, n.Name)
		return true
	})
	assert.Equal(t, []string{"root", "b", "a", "a1"}, names)

	names = names[:0]
	root.Walk(func(n *Node) bool {
		names = append(names, n.Name)
		return n != a
	})
	assert.Equal(t, []string{"root", "b", "a"}, names, "returning false skips children")
}

// --- Dispose ---

func TestDispose(t *testing.T) {
	root := NewNode("root")
	parent := NewNode("parent")
	child := NewNode("child")
	grandchild := NewNode("grandchild")
	root.AddChild(parent)
	parent.AddChild(child)
	child.AddChild(grandchild)

	parent.Dispose()

	for _, n := range []*Node{parent, child, grandchild} {
		assert.True(t, n.IsDisposed(), n.Name)
		assert.Zero(t, n.ID, n.Name)
	}
	assert.Equal(t, 0, root.NumChildren())
}

func TestDisposeIdempotent(t *testing.T) {
	n := NewNode("n")
	n.Dispose()
	n.Dispose()
	assert.True(t, n.IsDisposed())
}

// --- Dirty propagation ---

func TestDirtyPropagationOnAddChild(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	grandchild := NewNode("grandchild")
	child.AddChild(grandchild)

	child.transformDirty = false
	grandchild.transformDirty = false

	parent.AddChild(child)

	assert.True(t, child.transformDirty)
	assert.True(t, grandchild.transformDirty)
}

func TestDirtyPropagationOnRemoveChild(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)

	child.transformDirty = false
	parent.RemoveChild(child)

	assert.True(t, child.transformDirty)
}

func TestNodeString(t *testing.T) {
	var n *Node
	assert.Equal(t, "<nil>", n.String())
	assert.Equal(t, "card", NewNode("card").String())
}
