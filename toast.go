package willowui

const (
	toastPadding = 10.0
	toastLayer   = 200
	toastFadeOut = 0.25 // seconds
)

// Toast draws a NotificationCenter as a panel that slides in at the
// bottom-right corner of the viewport. It ticks the center once per frame
// from its own OnUpdate hook, so exactly one Toast must drive a center.
type Toast struct {
	// OnShow is called with each message as it starts displaying.
	OnShow func(message string)

	center *NotificationCenter
	scene  *Scene
	theme  *Theme

	node    *Node // always visible; carries the update hook
	box     *Node
	shadow  *Node
	bg      *Node
	icon    *Node
	message *Node

	state NotificationState
}

// NewToast creates a toast for center and adds it to the scene root.
func NewToast(scene *Scene, center *NotificationCenter, font Font, th *Theme) *Toast {
	t := &Toast{center: center, scene: scene, theme: th}

	t.node = NewContainer("toast")
	t.box = NewContainer("toast_box")
	t.box.Visible = false
	t.node.AddChild(t.box)

	t.shadow = NewRect("toast_shadow", NotificationWidth, NotificationHeight, th.Shadow)
	t.shadow.X, t.shadow.Y = panelShadowOffset, panelShadowOffset
	t.bg = NewRect("toast_bg", NotificationWidth, NotificationHeight, th.WindowFill)
	t.bg.BorderWidth = 1
	t.icon = NewText("toast_icon", "!", font)
	t.icon.X, t.icon.Y = toastPadding, toastPadding
	t.message = NewText("toast_message", "", font)

	t.box.AddChild(t.shadow)
	t.box.AddChild(t.bg)
	t.box.AddChild(t.icon)
	t.box.AddChild(t.message)
	setLayer(t.node, toastLayer)

	t.node.OnUpdate = t.update
	t.ApplyTheme(th)
	t.layout()
	scene.Root().AddChild(t.node)
	return t
}

// Node returns the toast's root node.
func (t *Toast) Node() *Node { return t.node }

// Center returns the notification center the toast drives.
func (t *Toast) Center() *NotificationCenter { return t.center }

// State returns the state from the most recent tick.
func (t *Toast) State() NotificationState { return t.state }

// SetIconFont draws the "!" marker in f instead of the message font.
func (t *Toast) SetIconFont(f Font) {
	t.icon.TextBlock.Font = f
	t.layout()
}

func (t *Toast) update(dt float64) {
	prev := t.state
	t.state = t.center.Tick(dt)
	st := t.state

	if !st.Showing {
		t.box.Visible = false
		return
	}
	// A pause always separates two messages, so a rising edge is a new one.
	if !prev.Showing {
		t.message.TextBlock.SetContent(st.Message)
		t.layout()
		t.scene.Logger().Debug("notification shown",
			"message", st.Message, "pending", t.center.Pending())
		if t.OnShow != nil {
			t.OnShow(st.Message)
		}
	}

	t.box.Visible = true
	viewW, viewH := t.scene.ViewportSize()
	moveTo(t.box,
		viewW-(NotificationWidth+NotificationMargin)+st.SlideOffset,
		viewH-(t.bg.Height+NotificationBottomMargin))

	if a := toastAlpha(st.RemainingFraction); t.box.Alpha != a {
		t.box.SetAlpha(a)
	}
}

// toastAlpha fades the toast out over the last toastFadeOut seconds.
func toastAlpha(remainingFraction float64) float64 {
	left := remainingFraction * NotificationDisplaySecs
	if left >= toastFadeOut {
		return 1
	}
	return max(left/toastFadeOut, 0)
}

func (t *Toast) layout() {
	iw, _ := t.icon.TextBlock.Size()
	mx := 2*toastPadding + iw
	t.message.X, t.message.Y = mx, toastPadding
	t.message.MarkDirty()
	t.message.TextBlock.WrapWidth = NotificationWidth - mx - toastPadding

	_, mh := t.message.TextBlock.Size()
	h := max(NotificationHeight, mh+2*toastPadding)
	t.bg.Height = h
	t.shadow.Height = h
}

func (t *Toast) ApplyTheme(th *Theme) {
	t.theme = th
	t.shadow.Color = th.Shadow
	t.bg.Color = th.WindowFill
	t.bg.BorderColor = th.Border
	t.icon.TextBlock.Color = th.Icon
	t.message.TextBlock.Color = th.Text
}
