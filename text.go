package willowui

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is the interface for text measurement and layout.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// TextBlock holds text content, formatting, and cached layout state.
// Layout is recomputed lazily whenever Content, Font, WrapWidth or
// LineHeight differ from the last layout.
type TextBlock struct {
	Content    string
	Font       Font
	Align      TextAlign
	WrapWidth  float64 // 0 = no wrapping
	Color      Color
	Underline  bool
	LineHeight float64 // override; 0 = use Font.LineHeight()

	layoutDirty bool
	key         layoutKey
	lines       []textLine
	measuredW   float64
	measuredH   float64
}

type layoutKey struct {
	content string
	font    Font
	wrap    float64
	lh      float64
}

// textLine stores one laid-out line.
type textLine struct {
	text  string
	width float64
}

// lineHeight returns the effective line height for this text block.
func (tb *TextBlock) lineHeight() float64 {
	if tb.LineHeight > 0 {
		return tb.LineHeight
	}
	if tb.Font != nil {
		return tb.Font.LineHeight()
	}
	return 0
}

// SetContent replaces the text.
func (tb *TextBlock) SetContent(s string) {
	if tb.Content == s {
		return
	}
	tb.Content = s
	tb.layoutDirty = true
}

// Size returns the laid-out width (widest line) and height.
func (tb *TextBlock) Size() (w, h float64) {
	tb.layout()
	return tb.measuredW, tb.measuredH
}

// Lines returns a copy of the wrapped lines.
func (tb *TextBlock) Lines() []string {
	lines := tb.layout()
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.text
	}
	return out
}

// layout recomputes line breaks if anything affecting them changed.
func (tb *TextBlock) layout() []textLine {
	key := layoutKey{content: tb.Content, font: tb.Font, wrap: tb.WrapWidth, lh: tb.LineHeight}
	if !tb.layoutDirty && key == tb.key {
		return tb.lines
	}
	tb.layoutDirty = false
	tb.key = key

	if tb.Font == nil {
		tb.lines = tb.lines[:0]
		tb.measuredW = 0
		tb.measuredH = 0
		return tb.lines
	}

	tb.lines = wrapLines(tb.Font, tb.Content, tb.WrapWidth, tb.lines[:0])
	var maxW float64
	for _, l := range tb.lines {
		maxW = max(maxW, l.width)
	}
	tb.measuredW = maxW
	tb.measuredH = float64(len(tb.lines)) * tb.lineHeight()
	return tb.lines
}

// alignOffset returns the x offset of a line of the given width.
func (tb *TextBlock) alignOffset(lineW float64) float64 {
	ref := tb.measuredW
	if tb.WrapWidth > 0 {
		ref = tb.WrapWidth
	}
	switch tb.Align {
	case TextAlignCenter:
		return (ref - lineW) / 2
	case TextAlignRight:
		return ref - lineW
	}
	return 0
}

// wrapLines breaks s into lines no wider than width (0 = unlimited). Hard
// newlines always break. Words are never split; a word wider than width
// gets a line of its own.
func wrapLines(f Font, s string, width float64, dst []textLine) []textLine {
	measure := func(t string) float64 {
		w, _ := f.MeasureString(t)
		return w
	}
	for _, para := range strings.Split(s, "\n") {
		if width <= 0 {
			dst = append(dst, textLine{text: para, width: measure(para)})
			continue
		}
		words := strings.Fields(para)
		if len(words) == 0 {
			dst = append(dst, textLine{})
			continue
		}
		cur := words[0]
		for _, w := range words[1:] {
			candidate := cur + " " + w
			if measure(candidate) > width {
				dst = append(dst, textLine{text: cur, width: measure(cur)})
				cur = w
				continue
			}
			cur = candidate
		}
		dst = append(dst, textLine{text: cur, width: measure(cur)})
	}
	return dst
}

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face *text.GoTextFace
	size float64
	lh   float64
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("willowui: failed to parse TTF data: %w", err)
	}
	return newTTFFont(source, size), nil
}

func newTTFFont(source *text.GoTextFaceSource, size float64) *TTFFont {
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &TTFFont{
		face: face,
		size: size,
		lh:   m.HAscent + m.HDescent + m.HLineGap,
	}
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Size returns the point size the font was loaded at.
func (f *TTFFont) Size() float64 {
	return f.size
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

var (
	regularSource = sync.OnceValues(func() (*text.GoTextFaceSource, error) {
		return text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	})
	boldSource = sync.OnceValues(func() (*text.GoTextFaceSource, error) {
		return text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	})
	monoSource = sync.OnceValues(func() (*text.GoTextFaceSource, error) {
		return text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	})
)

// DefaultFont returns Go Regular at the given size.
// Panics if the embedded font fails to parse.
func DefaultFont(size float64) *TTFFont {
	return mustFont(regularSource, size)
}

// BoldFont returns Go Bold at the given size.
func BoldFont(size float64) *TTFFont {
	return mustFont(boldSource, size)
}

// MonoFont returns Go Mono at the given size.
func MonoFont(size float64) *TTFFont {
	return mustFont(monoSource, size)
}

func mustFont(src func() (*text.GoTextFaceSource, error), size float64) *TTFFont {
	s, err := src()
	if err != nil {
		panic(fmt.Sprintf("willowui: embedded font: %v", err))
	}
	return newTTFFont(s, size)
}
