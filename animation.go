package willowui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields at once. Build one with
// TweenPosition, TweenAlpha, TweenColor or TweenValue and call Update(dt)
// each frame; values are written back as the tweens advance. A group bound
// to a node stops as soon as that node is disposed.
//
// There is no global animation manager; widgets drive their own groups from
// OnUpdate.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	Done   bool
}

func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
}

// Update advances the group by dt seconds.
func (g *TweenGroup) Update(dt float64) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(float32(dt))
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

// Finish jumps every field to its end value.
func (g *TweenGroup) Finish() {
	if g.Done {
		return
	}
	for i := 0; i < g.count; i++ {
		// A step far past the duration clamps to the end value.
		val, _ := g.tweens[i].Update(1 << 20)
		*g.fields[i] = float64(val)
	}
	g.Done = true
	if g.target != nil && !g.target.IsDisposed() {
		g.target.MarkDirty()
	}
}

// TweenPosition animates node.X and node.Y to (toX, toY).
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.X, toX, duration, fn)
	g.add(&node.Y, toY, duration, fn)
	return g
}

// TweenColor animates all four components of node.Color to the target color.
func TweenColor(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.Color.R, to.R, duration, fn)
	g.add(&node.Color.G, to.G, duration, fn)
	g.add(&node.Color.B, to.B, duration, fn)
	g.add(&node.Color.A, to.A, duration, fn)
	return g
}

// TweenAlpha animates node.Alpha to the target value.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.Alpha, to, duration, fn)
	return g
}

// TweenValue animates an arbitrary field, such as a widget's animated height.
// The group is not bound to a node, so callers re-layout after Update.
func TweenValue(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(field, to, duration, fn)
	return g
}
