package willowui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Label and Spacer ---

func TestLabel(t *testing.T) {
	th := DefaultTheme()
	l := NewLabel("hello world", 50, newFixedFont(), th)

	if l.Text() != "hello world" {
		t.Errorf("Text = %q", l.Text())
	}
	if w, h := l.Size(); w != 35 || h != 20 {
		t.Errorf("Size = (%v, %v), want (35, 20)", w, h)
	}
	if l.Node().TextBlock.Color != th.Text {
		t.Error("label should use the text color")
	}

	l.SetMuted(true)
	if l.Node().TextBlock.Color != th.MutedText {
		t.Error("muted label should use the muted color")
	}

	l.SetText("x")
	if _, h := l.Size(); h != 10 {
		t.Errorf("height after SetText = %v, want 10", h)
	}
}

func TestLabelApplyThemeKeepsMuted(t *testing.T) {
	l := NewLabel("x", 0, newFixedFont(), DefaultTheme())
	l.SetMuted(true)
	latte, _ := ThemeByName("latte")
	l.ApplyTheme(latte)
	if l.Node().TextBlock.Color != latte.MutedText {
		t.Error("ApplyTheme should keep the muted color")
	}
}

func TestSpacer(t *testing.T) {
	s := NewSpacer(12)
	if w, h := s.Size(); w != 0 || h != 12 {
		t.Errorf("Size = (%v, %v), want (0, 12)", w, h)
	}
	if s.Node().Type != NodeTypeContainer {
		t.Error("spacer should be a bare container")
	}
}

// --- Panel ---

func TestPanelEmptyLayout(t *testing.T) {
	p := NewPanel("Title", 10, 20, 200, newFixedFont(), DefaultTheme())

	if p.Title() != "Title" {
		t.Errorf("Title = %q", p.Title())
	}
	if p.ContentWidth() != 184 {
		t.Errorf("ContentWidth = %v, want 184", p.ContentWidth())
	}
	if w, h := p.Size(); w != 200 || h != panelTitleHeight+2*panelPadding {
		t.Errorf("Size = (%v, %v)", w, h)
	}
	if p.Node().X != 10 || p.Node().Y != 20 {
		t.Errorf("position = (%v, %v), want (10, 20)", p.Node().X, p.Node().Y)
	}
}

func TestPanelStacksWidgets(t *testing.T) {
	f := newFixedFont()
	p := NewPanel("P", 0, 0, 200, f, DefaultTheme())
	label := NewLabel("hello", p.ContentWidth(), f, DefaultTheme())
	spacer := NewSpacer(5)
	btn := NewButton("ok", f, DefaultTheme())
	p.Add(label, spacer, btn)

	if label.Node().Y != 0 {
		t.Errorf("label y = %v, want 0", label.Node().Y)
	}
	if spacer.Node().Y != 16 {
		t.Errorf("spacer y = %v, want 16", spacer.Node().Y)
	}
	if btn.Node().Y != 27 {
		t.Errorf("button y = %v, want 27", btn.Node().Y)
	}

	_, bh := btn.Size()
	want := panelTitleHeight + 2*panelPadding + 27 + bh
	if _, h := p.Size(); h != want {
		t.Errorf("height = %v, want %v", h, want)
	}
	if p.frame.Height != want || p.shadow.Height != want {
		t.Error("frame and shadow should match the panel height")
	}
}

func TestPanelRelayoutsOnUpdate(t *testing.T) {
	f := newFixedFont()
	s := NewScene()
	p := NewPanel("P", 0, 0, 200, f, DefaultTheme())
	label := NewLabel("one", p.ContentWidth(), f, DefaultTheme())
	p.Add(label)
	s.Root().AddChild(p.Node())

	_, before := p.Size()
	label.SetText("one\ntwo\nthree")
	step(s)

	if _, after := p.Size(); after != before+20 {
		t.Errorf("height = %v, want %v", after, before+20)
	}
}

func TestPanelDragTitleBar(t *testing.T) {
	s := NewScene()
	p := NewPanel("P", 100, 100, 200, newFixedFont(), DefaultTheme())
	s.Root().AddChild(p.Node())

	s.InjectPress(150, 110)
	s.InjectMove(250, 160)
	s.InjectRelease(250, 160)
	for s.PendingInjections() > 0 {
		step(s)
	}

	if p.Node().X != 200 || p.Node().Y != 150 {
		t.Errorf("position = (%v, %v), want (200, 150)", p.Node().X, p.Node().Y)
	}
}

func TestPanelNotMovable(t *testing.T) {
	s := NewScene()
	p := NewPanel("P", 100, 100, 200, newFixedFont(), DefaultTheme())
	p.Movable = false
	s.Root().AddChild(p.Node())

	s.InjectDrag(150, 110, 250, 160, 3)
	for s.PendingInjections() > 0 {
		step(s)
	}

	if p.Node().X != 100 || p.Node().Y != 100 {
		t.Errorf("position = (%v, %v), want (100, 100)", p.Node().X, p.Node().Y)
	}
}

func TestPanelDragBodyDoesNotMove(t *testing.T) {
	s := NewScene()
	p := NewPanel("P", 100, 100, 200, newFixedFont(), DefaultTheme())
	s.Root().AddChild(p.Node())

	// Below the title bar, on the frame.
	s.InjectDrag(150, 138, 250, 200, 3)
	for s.PendingInjections() > 0 {
		step(s)
	}

	if p.Node().X != 100 {
		t.Errorf("X = %v, dragging the body should not move the panel", p.Node().X)
	}
}

func TestPanelPressBringsToFront(t *testing.T) {
	s := NewScene()
	a := NewPanel("A", 100, 100, 200, newFixedFont(), DefaultTheme())
	b := NewPanel("B", 150, 100, 200, newFixedFont(), DefaultTheme())
	s.Root().AddChild(a.Node())
	s.Root().AddChild(b.Node())

	click(s, 110, 110)

	if a.Node().ZIndex <= b.Node().ZIndex {
		t.Errorf("A ZIndex = %d, B = %d; A should be in front", a.Node().ZIndex, b.Node().ZIndex)
	}
}

func TestPanelApplyThemeCascades(t *testing.T) {
	f := newFixedFont()
	p := NewPanel("P", 0, 0, 200, f, DefaultTheme())
	label := NewLabel("x", 0, f, DefaultTheme())
	p.Add(label)

	latte, _ := ThemeByName("latte")
	p.ApplyTheme(latte)

	if p.frame.Color != latte.WindowFill || p.titleBar.Color != latte.TitleFill {
		t.Error("panel colors not updated")
	}
	if label.Node().TextBlock.Color != latte.Text {
		t.Error("themed children should be repainted")
	}
}

// --- Button ---

func TestButtonSize(t *testing.T) {
	b := NewButton("abc", newFixedFont(), DefaultTheme())
	if w, h := b.Size(); w != 37 || h != 18 {
		t.Errorf("Size = (%v, %v), want (37, 18)", w, h)
	}
	if b.Text() != "abc" {
		t.Errorf("Text = %q", b.Text())
	}

	b.SetText("abcdef")
	if w, _ := b.Size(); w != 58 {
		t.Errorf("width after SetText = %v, want 58", w)
	}
}

func TestButtonMinSize(t *testing.T) {
	b := NewButton("abc", newFixedFont(), DefaultTheme())
	b.SetMinSize(100, 32)

	if w, h := b.Size(); w != 100 || h != 32 {
		t.Errorf("Size = (%v, %v), want (100, 32)", w, h)
	}
	if b.label.Y != 11 {
		t.Errorf("label y = %v, want 11 (centered)", b.label.Y)
	}
}

func TestButtonIcon(t *testing.T) {
	b := NewButton("abc", newFixedFont(), DefaultTheme())
	b.SetIcon(ebiten.NewImage(8, 8))

	if w, h := b.Size(); w != 75 || h != 40 {
		t.Errorf("Size with icon = (%v, %v), want (75, 40)", w, h)
	}
	if b.icon.X != buttonPadX || b.icon.Y != buttonPadY {
		t.Errorf("icon at (%v, %v)", b.icon.X, b.icon.Y)
	}
	if b.label.X != buttonPadX+IconSize+buttonIconGap {
		t.Errorf("label x = %v", b.label.X)
	}

	b.SetIcon(nil)
	if b.icon != nil || b.Node().NumChildren() != 1 {
		t.Error("SetIcon(nil) should remove the icon")
	}
	if w, _ := b.Size(); w != 37 {
		t.Errorf("width after removing icon = %v, want 37", w)
	}
}

func TestButtonClick(t *testing.T) {
	s := NewScene()
	b := NewButton("go", newFixedFont(), DefaultTheme())
	b.Node().SetPosition(100, 100)
	s.Root().AddChild(b.Node())

	clicks := 0
	b.OnClick = func() { clicks++ }
	click(s, 110, 105)

	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestButtonHover(t *testing.T) {
	th := DefaultTheme()
	s := NewScene()
	b := NewButton("go", newFixedFont(), th)
	b.Node().SetPosition(100, 100)
	s.Root().AddChild(b.Node())

	hover(s, 110, 105)
	if !b.Hovered() || b.Node().Color != th.ButtonHover {
		t.Error("hovered button should use the hover color")
	}

	hover(s, 500, 500)
	if b.Hovered() || b.Node().Color != th.Button {
		t.Error("button should return to its normal color")
	}
}

func TestButtonFill(t *testing.T) {
	th := DefaultTheme()
	b := NewButton("x", newFixedFont(), th)
	fill := RGB(10, 20, 30)

	b.SetFill(fill)
	if b.Node().Color != fill {
		t.Errorf("Color = %v, want fill", b.Node().Color)
	}

	b.hovered = true
	b.repaint()
	if want := fill.Lerp(th.ButtonHover, 0.35); b.Node().Color != want {
		t.Errorf("hovered fill = %v, want %v", b.Node().Color, want)
	}

	b.hovered = false
	b.ClearFill()
	if b.Node().Color != th.Button {
		t.Error("ClearFill should restore the theme color")
	}
}

func TestButtonApplyTheme(t *testing.T) {
	b := NewButton("x", newFixedFont(), DefaultTheme())
	latte, _ := ThemeByName("latte")
	b.ApplyTheme(latte)
	if b.Node().Color != latte.Button || b.label.TextBlock.Color != latte.Text {
		t.Error("ApplyTheme should repaint the button")
	}
}

func TestMoveToOnlyDirtiesOnChange(t *testing.T) {
	n := NewContainer("n")
	n.SetPosition(5, 5)
	n.transformDirty = false

	moveTo(n, 5, 5)
	if n.transformDirty {
		t.Error("same position should not dirty the node")
	}
	moveTo(n, 6, 5)
	if !n.transformDirty || n.X != 6 {
		t.Error("new position should be applied")
	}
}

func TestSetLayerRecursive(t *testing.T) {
	root := NewContainer("root")
	child := NewContainer("child")
	grand := NewRect("grand", 1, 1, ColorWhite)
	root.AddChild(child)
	child.AddChild(grand)

	setLayer(root, 7)

	for _, n := range []*Node{root, child, grand} {
		if n.RenderLayer != 7 {
			t.Errorf("%s RenderLayer = %d, want 7", n.Name, n.RenderLayer)
		}
	}
}
