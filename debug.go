package dnd

import (
	"fmt"
	"log/slog"
)

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene.
var globalDebug bool

// debugLogger receives tree warnings raised while globalDebug is set.
var debugLogger = slog.Default()

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("dnd debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold. Deep trees
// make every chain resolution walk further.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugLogger.Warn("dnd: tree depth exceeds threshold",
			"depth", depth, "threshold", debugMaxTreeDepth, "node", n.Name)
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		debugLogger.Warn("dnd: child count exceeds threshold",
			"count", len(n.children), "threshold", debugMaxChildCount, "node", n.Name)
	}
}

// nodeAttr renders a node for log attributes.
func nodeAttr(n *Node) slog.Attr {
	if n == nil {
		return slog.String("node", "<nil>")
	}
	return slog.Group("node", slog.String("name", n.Name), slog.Uint64("id", uint64(n.ID)))
}
