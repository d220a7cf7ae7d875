package willowui

const (
	panelPadding      = 8.0
	panelSpacing      = 6.0
	panelTitleHeight  = 26.0
	panelShadowOffset = 4.0
)

// Panel is a floating window: a title bar, a fixed width and a body that
// stacks widgets vertically and grows to fit them. Dragging the title bar
// moves the panel when Movable is set.
type Panel struct {
	Movable bool
	Spacing float64

	node     *Node
	shadow   *Node
	frame    *Node
	titleBar *Node
	title    *Node
	content  *Node

	theme  *Theme
	width  float64
	height float64
	items  []Widget

	grabX, grabY float64
}

// NewPanel creates a panel with its top-left corner at (x, y).
func NewPanel(title string, x, y, width float64, font Font, th *Theme) *Panel {
	p := &Panel{Movable: true, Spacing: panelSpacing, theme: th, width: width}

	p.node = NewContainer("panel:" + title)
	p.node.X, p.node.Y = x, y

	p.shadow = NewRect("shadow", width, 0, th.Shadow)
	p.shadow.X, p.shadow.Y = panelShadowOffset, panelShadowOffset

	p.frame = NewRect("frame", width, 0, th.WindowFill)
	p.frame.BorderWidth = 1
	p.frame.Interactable = true

	p.titleBar = NewRect("title_bar", width, panelTitleHeight, th.TitleFill)
	p.titleBar.Interactable = true

	p.title = NewText("title", title, font)
	p.title.X = panelPadding
	if font != nil {
		p.title.Y = (panelTitleHeight - font.LineHeight()) / 2
	}

	p.content = NewContainer("content")
	p.content.X = panelPadding
	p.content.Y = panelTitleHeight + panelPadding

	p.node.AddChild(p.shadow)
	p.node.AddChild(p.frame)
	p.node.AddChild(p.titleBar)
	p.node.AddChild(p.title)
	p.node.AddChild(p.content)

	raise := func(PointerContext) { p.node.BringToFront() }
	p.frame.OnPointerDown = raise
	p.titleBar.OnPointerDown = raise

	p.titleBar.OnDragStart = func(ctx DragContext) {
		p.grabX = p.node.X - ctx.StartX
		p.grabY = p.node.Y - ctx.StartY
	}
	p.titleBar.OnDrag = func(ctx DragContext) {
		if !p.Movable {
			return
		}
		p.node.SetPosition(p.grabX+ctx.GlobalX, p.grabY+ctx.GlobalY)
	}

	// Children may change size from frame to frame (expand list animation,
	// typing), so the body is re-stacked on every update.
	p.node.OnUpdate = func(float64) { p.Layout() }

	p.ApplyTheme(th)
	p.Layout()
	return p
}

func (p *Panel) Node() *Node { return p.node }

func (p *Panel) Size() (w, h float64) { return p.width, p.height }

// ContentWidth is the width available to stacked widgets.
func (p *Panel) ContentWidth() float64 {
	return p.width - 2*panelPadding
}

// Title returns the panel's title.
func (p *Panel) Title() string {
	return p.title.TextBlock.Content
}

// Add appends widgets to the panel body.
func (p *Panel) Add(ws ...Widget) {
	for _, w := range ws {
		p.items = append(p.items, w)
		p.content.AddChild(w.Node())
	}
	p.Layout()
}

// Layout stacks the body widgets and resizes the frame to fit them.
func (p *Panel) Layout() {
	y := 0.0
	for i, w := range p.items {
		if i > 0 {
			y += p.Spacing
		}
		moveTo(w.Node(), 0, y)
		_, h := w.Size()
		y += h
	}
	p.height = panelTitleHeight + 2*panelPadding + y
	p.frame.Width, p.frame.Height = p.width, p.height
	p.shadow.Width, p.shadow.Height = p.width, p.height
	p.titleBar.Width = p.width
}

// ApplyTheme repaints the panel and every themed widget inside it.
func (p *Panel) ApplyTheme(th *Theme) {
	p.theme = th
	p.shadow.Color = th.Shadow
	p.frame.Color = th.WindowFill
	p.frame.BorderColor = th.Border
	p.titleBar.Color = th.TitleFill
	p.title.TextBlock.Color = th.Text
	for _, w := range p.items {
		if t, ok := w.(Themed); ok {
			t.ApplyTheme(th)
		}
	}
}
