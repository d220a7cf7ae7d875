package willowui

import "github.com/hajimehoshi/ebiten/v2"

const (
	buttonPadX    = 8.0
	buttonPadY    = 4.0
	buttonIconGap = 6.0

	// IconSize is the edge length icons are drawn at inside buttons.
	IconSize = 32.0
)

// Button is a clickable box with a text label and an optional icon on its
// left. It lights up while hovered.
type Button struct {
	OnClick func()

	node  *Node
	icon  *Node
	label *Node
	theme *Theme

	fill       *Color
	minW, minH float64
	hovered    bool
}

// NewButton creates a button sized to fit its label.
func NewButton(text string, font Font, th *Theme) *Button {
	b := &Button{theme: th}
	b.node = NewRect("button", 0, 0, th.Button)
	b.node.Interactable = true

	b.label = NewText("button_label", text, font)
	b.node.AddChild(b.label)

	b.node.OnPointerEnter = func(PointerContext) {
		b.hovered = true
		b.repaint()
	}
	b.node.OnPointerLeave = func(PointerContext) {
		b.hovered = false
		b.repaint()
	}
	b.node.OnClick = func(ClickContext) {
		if b.OnClick != nil {
			b.OnClick()
		}
	}

	b.layout()
	b.ApplyTheme(th)
	return b
}

func (b *Button) Node() *Node { return b.node }

func (b *Button) Size() (w, h float64) {
	b.layout()
	return b.node.Width, b.node.Height
}

// Text returns the button label.
func (b *Button) Text() string {
	return b.label.TextBlock.Content
}

// SetText replaces the button label.
func (b *Button) SetText(s string) {
	b.label.TextBlock.SetContent(s)
	b.layout()
}

// SetIcon shows img at IconSize left of the label. nil removes the icon.
func (b *Button) SetIcon(img *ebiten.Image) {
	switch {
	case img == nil && b.icon != nil:
		b.icon.Dispose()
		b.icon = nil
	case img != nil && b.icon == nil:
		b.icon = NewImage("button_icon", img, IconSize, IconSize)
		b.node.AddChildAt(b.icon, 0)
	case img != nil:
		b.icon.Image = img
	}
	b.layout()
}

// SetMinSize sets the smallest size the button shrinks to.
func (b *Button) SetMinSize(w, h float64) {
	b.minW, b.minH = w, h
	b.layout()
}

// SetFill overrides the theme's button color.
func (b *Button) SetFill(c Color) {
	b.fill = &c
	b.repaint()
}

// ClearFill restores the theme's button color.
func (b *Button) ClearFill() {
	b.fill = nil
	b.repaint()
}

// Hovered reports whether the pointer is over the button.
func (b *Button) Hovered() bool {
	return b.hovered
}

func (b *Button) layout() {
	tw, th := b.label.TextBlock.Size()
	iconW, contentH := 0.0, th
	if b.icon != nil {
		iconW = IconSize
		if tw > 0 {
			iconW += buttonIconGap
		}
		contentH = max(contentH, IconSize)
	}
	w := max(2*buttonPadX+iconW+tw, b.minW)
	h := max(2*buttonPadY+contentH, b.minH)

	if b.icon != nil {
		moveTo(b.icon, buttonPadX, (h-IconSize)/2)
	}
	moveTo(b.label, buttonPadX+iconW, (h-th)/2)
	b.node.Width, b.node.Height = w, h
}

func (b *Button) repaint() {
	th := b.theme
	switch {
	case b.fill != nil && b.hovered:
		b.node.Color = b.fill.Lerp(th.ButtonHover, 0.35)
	case b.fill != nil:
		b.node.Color = *b.fill
	case b.hovered:
		b.node.Color = th.ButtonHover
	default:
		b.node.Color = th.Button
	}
}

func (b *Button) ApplyTheme(th *Theme) {
	b.theme = th
	b.label.TextBlock.Color = th.Text
	b.repaint()
}
