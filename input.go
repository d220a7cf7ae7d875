package willowui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultDragDeadZone = 4.0 // pixels

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

type pointerState struct {
	down      bool
	startX    float64
	startY    float64
	lastX     float64
	lastY     float64
	hitNode   *Node
	hoverNode *Node
	dragging  bool
	button    MouseButton
}

// Focusable is a widget that takes keyboard input while focused.
type Focusable interface {
	// owns reports whether n belongs to the widget, so clicks on it keep focus.
	owns(n *Node) bool
	handleKeys()
	setFocused(bool)
}

// handler is one registered scene-level callback.
type handler[T any] struct {
	id uint32
	fn func(T)
}

func removeHandler[T any](s []handler[T], id uint32) []handler[T] {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = handler[T]{}
			return s[:len(s)-1]
		}
	}
	return s
}

type handlerRegistry struct {
	pointerDown []handler[PointerContext]
	click       []handler[ClickContext]
	nextID      uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerDown:
		h.reg.pointerDown = removeHandler(h.reg.pointerDown, h.id)
	case EventClick:
		h.reg.click = removeHandler(h.reg.click, h.id)
	}
}

// OnPointerDown registers a scene-level callback for pointer down events.
// It fires before the per-node callback, even when nothing was hit.
func (s *Scene) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.pointerDown = append(s.handlers.pointerDown, handler[PointerContext]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPointerDown}
}

// OnClick registers a scene-level callback for click events.
func (s *Scene) OnClick(fn func(ClickContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.click = append(s.handlers.click, handler[ClickContext]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventClick}
}

// CapturePointer routes all pointer events to node until release.
func (s *Scene) CapturePointer(node *Node) {
	s.captured = node
}

// ReleasePointer stops routing pointer events to a captured node.
func (s *Scene) ReleasePointer() {
	s.captured = nil
}

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (s *Scene) SetDragDeadZone(pixels float64) {
	s.dragDeadZone = pixels
}

// SetFocus gives keyboard focus to f (nil clears it).
func (s *Scene) SetFocus(f Focusable) {
	if s.focus == f {
		return
	}
	if s.focus != nil {
		s.focus.setFocused(false)
	}
	s.focus = f
	if f != nil {
		f.setFocused(true)
	}
}

// Focus returns the focused widget, or nil.
func (s *Scene) Focus() Focusable {
	return s.focus
}

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Uses HitShape if set; otherwise the node's own box. Containers without a
// HitShape are not hit-testable.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	w, h := nodeDimensions(n)
	if w == 0 && h == 0 {
		return false
	}
	return lx >= 0 && lx <= w && ly >= 0 && ly <= h
}

// collectInteractable walks the tree in painter order, appending interactable
// nodes to buf. Invisible subtrees are skipped; non-interactable nodes are
// skipped but their children are still visited.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible {
		return buf
	}
	if n.Interactable && (n.HitShape != nil || n.Type != NodeTypeContainer) {
		buf = append(buf, n)
	}
	for _, child := range n.orderedChildren() {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (x, y), or nil.
// Render layers are honored: a node on a higher layer wins.
func (s *Scene) hitTest(x, y float64) *Node {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])

	var best *Node
	for _, n := range s.hitBuf {
		lx, ly := n.WorldToLocal(x, y)
		if !nodeContainsLocal(n, lx, ly) {
			continue
		}
		if best == nil || n.RenderLayer >= best.RenderLayer {
			best = n
		}
	}
	return best
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// processInput handles one frame of pointer input. Injected events take
// precedence over the real mouse.
func (s *Scene) processInput() {
	mods := readModifiers()
	if s.processInjectedInput(mods) {
		return
	}

	mx, my := ebiten.CursorPosition()
	var pressed bool
	var button MouseButton
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		pressed, button = true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		pressed, button = true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		pressed, button = true, MouseButtonMiddle
	}
	s.processPointer(float64(mx), float64(my), pressed, button, mods)
}

// processPointer runs the pointer state machine.
func (s *Scene) processPointer(x, y float64, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := &s.pointer

	target := s.captured
	if target == nil {
		target = s.hitTest(x, y)
	}

	if target != ps.hoverNode {
		if ps.hoverNode != nil && !ps.hoverNode.disposed {
			s.firePointer(EventPointerLeave, ps.hoverNode, x, y, button, mods)
		}
		if target != nil {
			s.firePointer(EventPointerEnter, target, x, y, button, mods)
		}
		ps.hoverNode = target
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.hitNode = target
		ps.dragging = false

		if s.focus != nil && (target == nil || !s.focus.owns(target)) {
			s.SetFocus(nil)
		}
		s.firePointer(EventPointerDown, target, x, y, ps.button, mods)

	case !pressed && ps.down:
		if ps.dragging {
			s.fireDrag(EventDragEnd, ps.hitNode, x, y, x-ps.lastX, y-ps.lastY, mods)
		} else if ps.hitNode != nil && ps.hitNode == target {
			s.fireClick(target, x, y, ps.button, mods)
		}
		s.firePointer(EventPointerUp, target, x, y, ps.button, mods)

		s.captured = nil
		ps.down = false
		ps.hitNode = nil
		ps.dragging = false
		ps.lastX, ps.lastY = x, y

	case pressed && ps.down:
		if x != ps.lastX || y != ps.lastY {
			if !ps.dragging && math.Hypot(x-ps.startX, y-ps.startY) > s.dragDeadZone {
				ps.dragging = true
				s.fireDrag(EventDragStart, ps.hitNode, x, y, x-ps.startX, y-ps.startY, mods)
			}
			if ps.dragging {
				s.fireDrag(EventDrag, ps.hitNode, x, y, x-ps.lastX, y-ps.lastY, mods)
			}
		}
		ps.lastX, ps.lastY = x, y

	default:
		if x != ps.lastX || y != ps.lastY {
			s.firePointer(EventPointerMove, target, x, y, button, mods)
			ps.lastX, ps.lastY = x, y
		}
	}
}

func pointerContext(node *Node, x, y float64, button MouseButton, mods KeyModifiers) PointerContext {
	ctx := PointerContext{GlobalX: x, GlobalY: y, Button: button, Modifiers: mods, Node: node}
	if node != nil {
		ctx.LocalX, ctx.LocalY = node.WorldToLocal(x, y)
		ctx.UserData = node.UserData
	}
	return ctx
}

func (s *Scene) firePointer(ev EventType, node *Node, x, y float64, button MouseButton, mods KeyModifiers) {
	ctx := pointerContext(node, x, y, button, mods)
	if ev == EventPointerDown {
		for _, h := range s.handlers.pointerDown {
			h.fn(ctx)
		}
	}
	if node == nil {
		return
	}
	var fn func(PointerContext)
	switch ev {
	case EventPointerDown:
		fn = node.OnPointerDown
	case EventPointerUp:
		fn = node.OnPointerUp
	case EventPointerMove:
		fn = node.OnPointerMove
	case EventPointerEnter:
		fn = node.OnPointerEnter
	case EventPointerLeave:
		fn = node.OnPointerLeave
	}
	if fn != nil {
		fn(ctx)
	}
}

func (s *Scene) fireClick(node *Node, x, y float64, button MouseButton, mods KeyModifiers) {
	p := pointerContext(node, x, y, button, mods)
	ctx := ClickContext(p)
	for _, h := range s.handlers.click {
		h.fn(ctx)
	}
	if node != nil && node.OnClick != nil {
		node.OnClick(ctx)
	}
}

func (s *Scene) fireDrag(ev EventType, node *Node, x, y, dx, dy float64, mods KeyModifiers) {
	if node == nil {
		return
	}
	ps := &s.pointer
	p := pointerContext(node, x, y, ps.button, mods)
	ctx := DragContext{
		Node: node, UserData: p.UserData,
		GlobalX: x, GlobalY: y, LocalX: p.LocalX, LocalY: p.LocalY,
		StartX: ps.startX, StartY: ps.startY, DeltaX: dx, DeltaY: dy,
		Button: ps.button, Modifiers: mods,
	}
	var fn func(DragContext)
	switch ev {
	case EventDragStart:
		fn = node.OnDragStart
	case EventDrag:
		fn = node.OnDrag
	case EventDragEnd:
		fn = node.OnDragEnd
	}
	if fn != nil {
		fn(ctx)
	}
}
