package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterAndLookup(t *testing.T) {
	logger, _ := newTestLogger()
	r := NewRegistry[string](KindTarget, logger)
	n := NewNode("n")

	cleanup := r.Register(n, "opts")
	reg, ok := r.Lookup(n)
	require.True(t, ok)
	assert.Equal(t, "opts", reg.Options)
	assert.Equal(t, KindTarget, reg.Kind)
	assert.Same(t, n, reg.Node)
	assert.True(t, r.Alive(reg.Handle))
	assert.Equal(t, 1, r.Len())

	cleanup()
	cleanup()
	_, ok = r.Lookup(n)
	assert.False(t, ok)
	assert.False(t, r.Alive(reg.Handle))
	assert.Zero(t, r.Len())
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	logger, logs := newTestLogger()
	r := NewRegistry[string](KindSource, logger)
	n := NewNode("card")

	first := r.Register(n, "first")
	second := r.Register(n, "second")
	assert.Contains(t, logs.String(), "already registered")

	second()
	reg, ok := r.Lookup(n)
	require.True(t, ok, "cleanup of a rejected registration must not remove the first")
	assert.Equal(t, "first", reg.Options)

	first()
	r.Register(n, "again")
	reg, ok = r.Lookup(n)
	require.True(t, ok)
	assert.Equal(t, "again", reg.Options)
}

func TestRegistryRejectsMissingAndDisposedNodes(t *testing.T) {
	logger, logs := newTestLogger()
	r := NewRegistry[string](KindTarget, logger)

	r.Register(nil, "nil")
	assert.Contains(t, logs.String(), "requires a node")

	n := NewNode("gone")
	n.Dispose()
	r.Register(n, "disposed")
	assert.Contains(t, logs.String(), "disposed node")
	assert.Zero(t, r.Len())
}

func TestRegistryDisposedNodeStopsResolving(t *testing.T) {
	r := NewRegistry[string](KindTarget, nil)
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)
	r.Register(child, "child")

	parent.Dispose()
	_, ok := r.Lookup(child)
	assert.False(t, ok)
	assert.Equal(t, 1, r.Len())
}

func TestRegistryHandlesAreNotReused(t *testing.T) {
	r := NewRegistry[string](KindTarget, nil)
	n := NewNode("n")
	r.Register(n, "a")()
	stale, _ := r.Get(1)
	assert.Nil(t, stale)

	r.Register(n, "b")
	reg, ok := r.Lookup(n)
	require.True(t, ok)
	assert.Equal(t, Handle(2), reg.Handle)
	assert.False(t, r.Alive(1))
}

func TestRegistryAncestorsOfBubbleOrder(t *testing.T) {
	r := NewRegistry[string](KindTarget, nil)
	root := NewNode("root")
	a := NewNode("a")
	gap := NewNode("gap")
	b := NewNode("b")
	root.AddChild(a)
	a.AddChild(gap)
	gap.AddChild(b)
	r.Register(root, "root")
	r.Register(a, "a")
	r.Register(b, "b")

	var got []string
	for _, reg := range r.AncestorsOf(b) {
		got = append(got, reg.Options)
	}
	assert.Equal(t, []string{"b", "a", "root"}, got)

	reg, ok := r.Closest(gap)
	require.True(t, ok)
	assert.Equal(t, "a", reg.Options)

	_, ok = r.Closest(NewNode("detached"))
	assert.False(t, ok)
}

func TestRegistryMonitorsKeepInsertionOrder(t *testing.T) {
	r := NewRegistry[string](KindMonitor, nil)
	r.Register(nil, "first")
	removeSecond := r.Register(nil, "second")
	r.Register(nil, "third")

	snap := r.Snapshot()
	removeSecond()
	r.Register(nil, "fourth")

	// The earlier snapshot is unaffected by later changes.
	require.Len(t, snap, 3)
	assert.Equal(t, "second", snap[1].Options)

	var got []string
	for _, reg := range r.Snapshot() {
		got = append(got, reg.Options)
	}
	assert.Equal(t, []string{"first", "third", "fourth"}, got)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "source", KindSource.String())
	assert.Equal(t, "target", KindTarget.String())
	assert.Equal(t, "monitor", KindMonitor.String())
	assert.Equal(t, "unknown", Kind(9).String())
}

func TestCombine(t *testing.T) {
	var order []int
	cleanup := Combine(
		func() { order = append(order, 1) },
		nil,
		func() { order = append(order, 2) },
	)
	cleanup()
	assert.Equal(t, []int{1, 2}, order)
}
