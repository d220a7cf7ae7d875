package willowui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

const (
	expandListSpacing  = 4.0
	expandListDuration = 0.25 // seconds

	expandedPrompt  = "Select food:"
	collapsedPrompt = "Click to change food:"
)

// ExpandItem is one selectable entry of an ExpandList.
type ExpandItem struct {
	Name string
	Icon *ebiten.Image
}

// ExpandList is a single-choice list that folds down to its selection.
// Expanded it shows every item with the selection highlighted; collapsed it
// shows only the selection. Clicking the collapsed row expands the list and
// clicking any row while expanded selects it and collapses. The transition
// animates the list height, with non-selected rows sliding under the
// selection and fading out.
type ExpandList struct {
	OnSelect func(index int, item ExpandItem)

	node   *Node
	prompt *Label
	list   *Node
	rows   []*Button

	items    []ExpandItem
	selected int
	expanded bool
	width    float64
	theme    *Theme

	height float64 // animated list height
	tween  *TweenGroup
}

// NewExpandList creates an expanded list with the first item selected. The
// prompt is drawn in font and the rows in itemFont.
func NewExpandList(items []ExpandItem, width float64, font, itemFont Font, th *Theme) *ExpandList {
	l := &ExpandList{
		items:    items,
		expanded: true,
		width:    width,
		theme:    th,
	}
	l.node = NewContainer("expand_list")
	l.prompt = NewLabel(expandedPrompt, width, font, th)
	l.node.AddChild(l.prompt.Node())

	l.list = NewContainer("expand_list_rows")
	l.node.AddChild(l.list)

	for i, it := range items {
		b := NewButton(it.Name, itemFont, th)
		b.SetIcon(it.Icon)
		b.SetMinSize(width, IconSize)
		b.OnClick = func() { l.clicked(i) }
		l.rows = append(l.rows, b)
		l.list.AddChild(b.Node())
	}

	l.height = l.targetHeight()
	l.node.OnUpdate = l.update
	l.highlight()
	l.place()
	return l
}

func (l *ExpandList) Node() *Node { return l.node }

func (l *ExpandList) Size() (w, h float64) {
	_, ph := l.prompt.Size()
	return l.width, ph + expandListSpacing + l.height
}

// Selected returns the selected index, or -1 for an empty list.
func (l *ExpandList) Selected() int {
	if len(l.items) == 0 {
		return -1
	}
	return l.selected
}

// SelectedItem returns the selected item. ok is false for an empty list.
func (l *ExpandList) SelectedItem() (item ExpandItem, ok bool) {
	if len(l.items) == 0 {
		return ExpandItem{}, false
	}
	return l.items[l.selected], true
}

// Expanded reports the state the list is in or animating toward.
func (l *ExpandList) Expanded() bool {
	return l.expanded
}

// Animating reports whether a transition is in progress.
func (l *ExpandList) Animating() bool {
	return l.tween != nil && !l.tween.Done
}

// Select changes the selection without touching the expanded state.
// Out-of-range indexes are ignored. OnSelect is not called.
func (l *ExpandList) Select(index int) {
	if index < 0 || index >= len(l.items) {
		return
	}
	l.selected = index
	l.highlight()
	l.place()
}

// SetExpanded animates toward the expanded or collapsed state.
func (l *ExpandList) SetExpanded(expanded bool) {
	if l.expanded == expanded {
		return
	}
	l.expanded = expanded
	if expanded {
		l.prompt.SetText(expandedPrompt)
	} else {
		l.prompt.SetText(collapsedPrompt)
	}
	l.tween = TweenValue(&l.height, l.targetHeight(), expandListDuration, ease.OutQuad)
	l.place()
}

func (l *ExpandList) clicked(i int) {
	if !l.expanded {
		l.SetExpanded(true)
		return
	}
	l.Select(i)
	if l.OnSelect != nil {
		l.OnSelect(i, l.items[i])
	}
	l.SetExpanded(false)
}

func (l *ExpandList) update(dt float64) {
	if l.tween == nil {
		return
	}
	l.tween.Update(dt)
	if l.tween.Done {
		l.tween = nil
	}
	l.place()
}

func (l *ExpandList) rowHeight() float64 {
	if len(l.rows) == 0 {
		return 0
	}
	_, h := l.rows[0].Size()
	return h
}

func (l *ExpandList) expandedHeight() float64 {
	n := float64(len(l.rows))
	if n == 0 {
		return 0
	}
	return n*l.rowHeight() + (n-1)*expandListSpacing
}

func (l *ExpandList) targetHeight() float64 {
	if l.expanded {
		return l.expandedHeight()
	}
	return l.rowHeight()
}

// progress maps the animated height to 0 (collapsed) .. 1 (expanded).
func (l *ExpandList) progress() float64 {
	lo, hi := l.rowHeight(), l.expandedHeight()
	if hi <= lo {
		if l.expanded {
			return 1
		}
		return 0
	}
	return min(max((l.height-lo)/(hi-lo), 0), 1)
}

// place positions the prompt and rows for the current animation progress.
func (l *ExpandList) place() {
	_, ph := l.prompt.Size()
	moveTo(l.list, 0, ph+expandListSpacing)

	p := l.progress()
	step := l.rowHeight() + expandListSpacing
	for i, b := range l.rows {
		n := b.Node()
		if i == l.selected {
			// The selection rides on top so it covers rows sliding under it.
			moveTo(n, 0, float64(i)*step*p)
			n.SetZIndex(1)
			n.Visible = true
			if n.Alpha != 1 {
				n.SetAlpha(1)
			}
			continue
		}
		n.SetZIndex(0)
		moveTo(n, 0, float64(i)*step*p)
		n.Visible = p > 0
		if n.Alpha != p {
			n.SetAlpha(p)
		}
	}
}

func (l *ExpandList) highlight() {
	for i, b := range l.rows {
		if i == l.selected {
			b.SetFill(l.theme.ListHighlight)
		} else {
			b.ClearFill()
		}
	}
}

func (l *ExpandList) ApplyTheme(th *Theme) {
	l.theme = th
	l.prompt.ApplyTheme(th)
	for _, b := range l.rows {
		b.ApplyTheme(th)
	}
	l.highlight()
}
