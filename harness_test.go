package dnd

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// recorder collects one line per callback invocation.
type recorder struct {
	lines []string
}

func (r *recorder) add(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func (r *recorder) reset() {
	r.lines = nil
}

func (r *recorder) String() string {
	return strings.Join(r.lines, "\n") + "\n"
}

// chainString renders a chain as "[B A]"; sticky records get a "*".
func chainString(chain []*DropTargetRecord) string {
	names := make([]string, len(chain))
	for i, rec := range chain {
		names[i] = rec.Node.Name
		if rec.IsActiveDueToStickiness {
			names[i] += "*"
		}
	}
	return "[" + strings.Join(names, " ") + "]"
}

// harness drives an ElementAdapter directly: the test supplies hit nodes and
// ticks frames by hand.
type harness struct {
	t      *testing.T
	frames *FrameQueue
	mgr    *Manager
	el     *ElementAdapter
	root   *Node
	rec    *recorder
	logs   *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	logger, logs := newTestLogger()
	frames := NewFrameQueue()
	mgr := NewManager(Config{Frames: frames, Logger: logger})
	return &harness{
		t:      t,
		frames: frames,
		mgr:    mgr,
		el:     NewElementAdapter(mgr),
		root:   NewNode("root"),
		rec:    &recorder{},
		logs:   logs,
	}
}

// node adds a node named name under parent (the root when nil).
func (h *harness) node(name string, parent *Node) *Node {
	if parent == nil {
		parent = h.root
	}
	n := NewNode(name)
	parent.AddChild(n)
	return n
}

func (h *harness) sourceOpts(n *Node) DraggableOptions {
	rec := func(ev Event[ElementSource]) {
		h.rec.add("source %s %s", ev.Type, chainString(ev.Location.Current.DropTargets))
	}
	return DraggableOptions{
		Node:                  n,
		OnGenerateDragPreview: rec,
		OnDragStart:           rec,
		OnDrag:                rec,
		OnDropTargetChange:    rec,
		OnDrop:                rec,
	}
}

func (h *harness) draggable(n *Node) CleanupFunc {
	return h.el.Draggable(h.sourceOpts(n))
}

func (h *harness) targetOpts(n *Node) DropTargetOptions[ElementSource] {
	rec := func(name string) func(DropTargetEvent[ElementSource]) {
		return func(ev DropTargetEvent[ElementSource]) {
			h.rec.add("target %s %s %s", n.Name, name, chainString(ev.Location.Current.DropTargets))
		}
	}
	return DropTargetOptions[ElementSource]{
		Node:                  n,
		OnGenerateDragPreview: rec("generate-drag-preview"),
		OnDragStart:           rec("drag-start"),
		OnDrag:                rec("drag"),
		OnDropTargetChange:    rec("drop-target-change"),
		OnDragEnter:           rec("drag-enter"),
		OnDragLeave:           rec("drag-leave"),
		OnDrop:                rec("drop"),
	}
}

func (h *harness) target(n *Node) CleanupFunc {
	return h.el.DropTarget(h.targetOpts(n))
}

func (h *harness) monitorOpts(name string) MonitorOptions[ElementSource] {
	rec := func(ev Event[ElementSource]) {
		h.rec.add("monitor %s %s %s", name, ev.Type, chainString(ev.Location.Current.DropTargets))
	}
	return MonitorOptions[ElementSource]{
		OnGenerateDragPreview: rec,
		OnDragStart:           rec,
		OnDrag:                rec,
		OnDropTargetChange:    rec,
		OnDrop:                rec,
	}
}

func (h *harness) monitor(name string) CleanupFunc {
	return h.el.Monitor(h.monitorOpts(name))
}

// events registers a silent monitor that keeps every event it sees.
func (h *harness) events() *[]Event[ElementSource] {
	var out []Event[ElementSource]
	keep := func(ev Event[ElementSource]) { out = append(out, ev) }
	h.el.Monitor(MonitorOptions[ElementSource]{
		OnGenerateDragPreview: keep,
		OnDragStart:           keep,
		OnDrag:                keep,
		OnDropTargetChange:    keep,
		OnDrop:                keep,
	})
	return &out
}

func (h *harness) lift(origin *Node, x, y float64) {
	h.t.Helper()
	if !h.el.Lift(origin, at(x, y)) {
		h.t.Fatalf("lift at %s refused", origin.Name)
	}
}

func at(x, y float64) Input {
	return Input{X: x, Y: y, ScreenX: x, ScreenY: y, Pressed: true}
}

func assertGolden(t *testing.T, name string, rec *recorder) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(rec.String()))
}
