package willowui

import (
	"fmt"
	"log/slog"
	"time"
)

// debugStats holds per-frame timing. Only populated when Scene.debug is true.
type debugStats struct {
	traverseTime time.Duration
	submitTime   time.Duration
	commandCount int
}

// debugLogger receives tree warnings from node operations, which have no
// Scene pointer. Set by SetDebugMode.
var debugLogger = slog.Default()

// debugLog logs timing and command stats.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	s.logger.Debug("frame",
		"traverse", stats.traverseTime,
		"submit", stats.submitTime,
		"total", stats.traverseTime+stats.submitTime,
		"commands", stats.commandCount,
	)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("willowui debug: %s on disposed node %q", op, n.Name))
	}
}

const debugMaxTreeDepth = 32

// debugCheckTreeDepth warns if tree depth exceeds debugMaxTreeDepth.
func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugLogger.Warn("tree depth exceeds threshold",
			"depth", depth, "threshold", debugMaxTreeDepth, "node", n.Name)
	}
}
