package willowui

import "strings"

// Span is a piece of a RichText paragraph. Spans with OnClick set are links.
type Span struct {
	Text    string
	OnClick func()
}

// PlainSpan returns a non-interactive span.
func PlainSpan(s string) Span {
	return Span{Text: s}
}

// LinkSpan returns a link span that calls onClick when clicked.
func LinkSpan(s string, onClick func()) Span {
	if onClick == nil {
		onClick = func() {}
	}
	return Span{Text: s, OnClick: onClick}
}

// IsLink reports whether the span is clickable.
func (s Span) IsLink() bool {
	return s.OnClick != nil
}

// textRun is a stretch of words from one span laid out on one line.
type textRun struct {
	span int
	text string
	x, y float64
	w    float64
}

// flowSpans lays the words of spans out left to right, wrapping at width
// (0 = never wrap). Words from consecutive spans are separated by a single
// space. Consecutive words of the same span on one line share a run.
func flowSpans(f Font, spans []Span, width float64) (runs []textRun, w, h float64) {
	measure := func(s string) float64 {
		mw, _ := f.MeasureString(s)
		return mw
	}
	space := measure(" ")
	lh := f.LineHeight()

	x, y := 0.0, 0.0
	for si, sp := range spans {
		for _, word := range strings.Fields(sp.Text) {
			ww := measure(word)
			gap := 0.0
			if x > 0 {
				gap = space
			}
			if x > 0 && width > 0 && x+gap+ww > width {
				y += lh
				x, gap = 0, 0
			}
			if n := len(runs); n > 0 && x > 0 && runs[n-1].span == si && runs[n-1].y == y {
				r := &runs[n-1]
				r.text += " " + word
				r.w = measure(r.text)
				x = r.x + r.w
			} else {
				runs = append(runs, textRun{span: si, text: word, x: x + gap, y: y, w: ww})
				x += gap + ww
			}
			w = max(w, x)
		}
	}
	if len(runs) > 0 {
		h = y + lh
	}
	return runs, w, h
}

// RichText is a wrapped paragraph of plain and link spans. Links are
// underlined, switch to the hover color while the pointer is over any part
// of them, and run their OnClick when clicked.
type RichText struct {
	node    *Node
	spans   []Span
	runs    []*Node
	runSpan []int

	font    Font
	width   float64
	theme   *Theme
	hovered int
	w, h    float64
}

// NewRichText creates a paragraph that wraps at width.
func NewRichText(spans []Span, width float64, font Font, th *Theme) *RichText {
	rt := &RichText{
		node:    NewContainer("rich_text"),
		font:    font,
		width:   width,
		theme:   th,
		hovered: -1,
	}
	rt.SetSpans(spans)
	return rt
}

func (rt *RichText) Node() *Node { return rt.node }

func (rt *RichText) Size() (w, h float64) { return rt.w, rt.h }

// HoveredLink returns the index of the span under the pointer, or -1.
func (rt *RichText) HoveredLink() int {
	return rt.hovered
}

// Spans returns the paragraph's spans.
func (rt *RichText) Spans() []Span {
	return rt.spans
}

// SetSpans replaces the paragraph content.
func (rt *RichText) SetSpans(spans []Span) {
	for _, n := range rt.runs {
		n.Dispose()
	}
	rt.runs = rt.runs[:0]
	rt.runSpan = rt.runSpan[:0]
	rt.spans = spans
	rt.hovered = -1

	runs, w, h := flowSpans(rt.font, spans, rt.width)
	rt.w, rt.h = w, h
	for _, r := range runs {
		n := NewText("run", r.text, rt.font)
		n.X, n.Y = r.x, r.y
		sp := spans[r.span]
		if sp.IsLink() {
			idx := r.span
			n.TextBlock.Underline = true
			n.Interactable = true
			n.OnPointerEnter = func(PointerContext) { rt.setHover(idx) }
			n.OnPointerLeave = func(PointerContext) {
				if rt.hovered == idx {
					rt.setHover(-1)
				}
			}
			n.OnClick = func(ClickContext) { sp.OnClick() }
		}
		rt.node.AddChild(n)
		rt.runs = append(rt.runs, n)
		rt.runSpan = append(rt.runSpan, r.span)
	}
	rt.repaint()
}

func (rt *RichText) setHover(span int) {
	if rt.hovered == span {
		return
	}
	rt.hovered = span
	rt.repaint()
}

func (rt *RichText) repaint() {
	for i, n := range rt.runs {
		si := rt.runSpan[i]
		switch {
		case !rt.spans[si].IsLink():
			n.TextBlock.Color = rt.theme.Text
		case si == rt.hovered:
			n.TextBlock.Color = rt.theme.LinkHover
		default:
			n.TextBlock.Color = rt.theme.Link
		}
	}
}

func (rt *RichText) ApplyTheme(th *Theme) {
	rt.theme = th
	rt.repaint()
}
