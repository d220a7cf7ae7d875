package willowui

import (
	"testing"
)

func testItems() []ExpandItem {
	return []ExpandItem{{Name: "Bacon"}, {Name: "Bread"}, {Name: "Cheese"}}
}

func newTestList(items []ExpandItem) *ExpandList {
	f := newFixedFont()
	return NewExpandList(items, 200, f, f, DefaultTheme())
}

// runFor steps the scene until at least secs seconds have passed.
func runFor(s *Scene, secs float64) {
	for t := 0.0; t < secs; t += 1.0 / 60 {
		step(s)
	}
}

func TestExpandListDefaults(t *testing.T) {
	l := newTestList(testItems())

	if !l.Expanded() || l.Animating() {
		t.Error("list should start expanded and still")
	}
	if l.Selected() != 0 {
		t.Errorf("Selected = %d, want 0", l.Selected())
	}
	if it, ok := l.SelectedItem(); !ok || it.Name != "Bacon" {
		t.Errorf("SelectedItem = %v, %v", it, ok)
	}
	if l.prompt.Text() != "Select food:" {
		t.Errorf("prompt = %q", l.prompt.Text())
	}
	// prompt 10 + spacing 4 + 3 rows of 32 + 2 gaps of 4
	if w, h := l.Size(); w != 200 || h != 118 {
		t.Errorf("Size = (%v, %v), want (200, 118)", w, h)
	}
}

func TestExpandListRowsHighlightSelection(t *testing.T) {
	th := DefaultTheme()
	l := newTestList(testItems())

	if l.rows[0].Node().Color != th.ListHighlight {
		t.Error("selected row should be highlighted")
	}
	if l.rows[1].Node().Color != th.Button {
		t.Error("other rows should use the button color")
	}

	l.Select(2)
	if l.rows[0].Node().Color != th.Button || l.rows[2].Node().Color != th.ListHighlight {
		t.Error("highlight should follow the selection")
	}
}

func TestExpandListSelectOutOfRange(t *testing.T) {
	l := newTestList(testItems())
	l.Select(-1)
	l.Select(3)
	if l.Selected() != 0 {
		t.Errorf("Selected = %d, want 0", l.Selected())
	}
}

func TestExpandListEmpty(t *testing.T) {
	l := newTestList(nil)
	if l.Selected() != -1 {
		t.Errorf("Selected = %d, want -1", l.Selected())
	}
	if _, ok := l.SelectedItem(); ok {
		t.Error("SelectedItem should report false")
	}
	if _, h := l.Size(); h != 14 {
		t.Errorf("height = %v, want 14", h)
	}
	l.SetExpanded(false)
	l.update(1)
}

func TestExpandListCollapseAnimation(t *testing.T) {
	l := newTestList(testItems())
	l.Select(1)
	l.SetExpanded(false)

	if l.Expanded() || !l.Animating() {
		t.Fatal("list should be collapsing")
	}
	if l.prompt.Text() != "Click to change food:" {
		t.Errorf("prompt = %q", l.prompt.Text())
	}

	// OutQuad at half time covers 3/4 of the distance: 104 -> 50.
	l.update(0.125)
	if !approxEqual(l.height, 50, 1e-3) {
		t.Errorf("height = %v, want 50", l.height)
	}
	if !approxEqual(l.progress(), 0.25, 1e-3) {
		t.Errorf("progress = %v, want 0.25", l.progress())
	}
	if !approxEqual(l.rows[0].Node().Alpha, 0.25, 1e-3) {
		t.Errorf("fading row alpha = %v, want 0.25", l.rows[0].Node().Alpha)
	}
	if l.rows[1].Node().Alpha != 1 || l.rows[1].Node().ZIndex != 1 {
		t.Error("selected row should stay opaque and on top")
	}
	if !approxEqual(l.rows[2].Node().Y, 2*36*0.25, 1e-3) {
		t.Errorf("row 2 y = %v, want 18", l.rows[2].Node().Y)
	}

	l.update(0.125)
	if l.Animating() {
		t.Error("animation should be finished")
	}
	if _, h := l.Size(); h != 46 {
		t.Errorf("collapsed height = %v, want 46", h)
	}
	for i, b := range l.rows {
		n := b.Node()
		if i == 1 {
			if !n.Visible || n.Y != 0 {
				t.Errorf("selected row visible=%v y=%v, want true and 0", n.Visible, n.Y)
			}
			continue
		}
		if n.Visible {
			t.Errorf("row %d should be hidden when collapsed", i)
		}
	}
}

func TestExpandListSetExpandedNoop(t *testing.T) {
	l := newTestList(testItems())
	l.SetExpanded(true)
	if l.Animating() {
		t.Error("setting the current state should not animate")
	}
}

func TestExpandListClickFlow(t *testing.T) {
	s := NewScene()
	l := newTestList(testItems())
	l.Node().SetPosition(100, 100)
	s.Root().AddChild(l.Node())

	var picked []string
	l.OnSelect = func(i int, it ExpandItem) { picked = append(picked, it.Name) }

	// Row 1 sits at y = prompt 10 + spacing 4 + 36.
	click(s, 150, 160)

	if l.Selected() != 1 {
		t.Fatalf("Selected = %d, want 1", l.Selected())
	}
	if len(picked) != 1 || picked[0] != "Bread" {
		t.Errorf("OnSelect calls = %v, want [Bread]", picked)
	}
	if l.Expanded() {
		t.Error("selecting should collapse the list")
	}

	runFor(s, 0.4)
	if l.Animating() {
		t.Fatal("collapse should have finished")
	}

	// The collapsed list shows only the selection, at the top.
	click(s, 150, 120)
	if !l.Expanded() {
		t.Error("clicking the collapsed list should expand it")
	}
	if l.Selected() != 1 || len(picked) != 1 {
		t.Error("expanding should not change the selection")
	}
}

func TestExpandListApplyTheme(t *testing.T) {
	l := newTestList(testItems())
	latte, _ := ThemeByName("latte")
	l.ApplyTheme(latte)

	if l.rows[0].Node().Color != latte.ListHighlight {
		t.Error("highlight should survive a theme change")
	}
	if l.rows[1].Node().Color != latte.Button {
		t.Error("rows should use the new button color")
	}
	if l.prompt.Node().TextBlock.Color != latte.Text {
		t.Error("prompt should use the new text color")
	}
}
