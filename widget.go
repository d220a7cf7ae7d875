package willowui

// Widget is anything a Panel can stack: a root node plus its current size.
type Widget interface {
	Node() *Node
	Size() (w, h float64)
}

// setLayer assigns layer to n and its whole subtree. RenderLayer is not
// inherited, so overlays set it on every node they own.
func setLayer(n *Node, layer uint8) {
	n.RenderLayer = layer
	for _, c := range n.children {
		setLayer(c, layer)
	}
}

// moveTo sets a node's position only when it changed, so steady layouts
// don't dirty transforms every frame.
func moveTo(n *Node, x, y float64) {
	if n.X != x || n.Y != y {
		n.SetPosition(x, y)
	}
}

// Label is a block of wrapped, non-interactive text.
type Label struct {
	// Muted draws the label in the theme's secondary text color.
	Muted bool

	node  *Node
	theme *Theme
}

// NewLabel creates a label that wraps at width (0 disables wrapping).
func NewLabel(text string, width float64, font Font, th *Theme) *Label {
	l := &Label{theme: th}
	l.node = NewText("label", text, font)
	l.node.TextBlock.WrapWidth = width
	l.ApplyTheme(th)
	return l
}

func (l *Label) Node() *Node { return l.node }

func (l *Label) Size() (w, h float64) {
	return l.node.TextBlock.Size()
}

// Text returns the label's content.
func (l *Label) Text() string {
	return l.node.TextBlock.Content
}

// SetText replaces the label's content.
func (l *Label) SetText(s string) {
	l.node.TextBlock.SetContent(s)
}

// SetMuted switches between the primary and secondary text colors.
func (l *Label) SetMuted(muted bool) {
	l.Muted = muted
	l.ApplyTheme(l.theme)
}

func (l *Label) ApplyTheme(th *Theme) {
	l.theme = th
	if l.Muted {
		l.node.TextBlock.Color = th.MutedText
	} else {
		l.node.TextBlock.Color = th.Text
	}
}

// Spacer is empty vertical space.
type Spacer struct {
	node   *Node
	height float64
}

func NewSpacer(height float64) *Spacer {
	return &Spacer{node: NewContainer("spacer"), height: height}
}

func (s *Spacer) Node() *Node { return s.node }

func (s *Spacer) Size() (w, h float64) { return 0, s.height }
