package willowui

import (
	"slices"
	"testing"
)

func lineTexts(lines []textLine) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.text
	}
	return out
}

// --- wrapLines ---

func TestWrapLines(t *testing.T) {
	f := newFixedFont() // 7px per rune

	tests := []struct {
		name  string
		text  string
		width float64
		want  []string
	}{
		{"no wrap", "hello world foo", 0, []string{"hello world foo"}},
		{"fits", "hello world", 77, []string{"hello world"}},
		{"breaks at word", "hello world foo", 80, []string{"hello world", "foo"}},
		{"one word per line", "aa bb cc", 14, []string{"aa", "bb", "cc"}},
		{"long word own line", "a verylongword b", 30, []string{"a", "verylongword", "b"}},
		{"hard newline", "one\ntwo", 0, []string{"one", "two"}},
		{"hard newline with wrap", "one two\nthree", 200, []string{"one two", "three"}},
		{"empty paragraph", "a\n\nb", 100, []string{"a", "", "b"}},
		{"collapses spaces", "a   b", 100, []string{"a b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lineTexts(wrapLines(f, tt.text, tt.width, nil))
			if !slices.Equal(got, tt.want) {
				t.Errorf("wrapLines = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapLinesWidths(t *testing.T) {
	lines := wrapLines(newFixedFont(), "ab cde", 30, nil)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].width != 14 || lines[1].width != 21 {
		t.Errorf("widths = %v, %v, want 14, 21", lines[0].width, lines[1].width)
	}
}

// --- TextBlock ---

func TestTextBlockSize(t *testing.T) {
	tb := &TextBlock{Content: "hello world foo", Font: newFixedFont(), WrapWidth: 80}
	w, h := tb.Size()
	if w != 77 || h != 20 {
		t.Errorf("Size = (%v, %v), want (77, 20)", w, h)
	}
}

func TestTextBlockLineHeightOverride(t *testing.T) {
	tb := &TextBlock{Content: "a\nb\nc", Font: newFixedFont(), LineHeight: 16}
	if _, h := tb.Size(); h != 48 {
		t.Errorf("height = %v, want 48", h)
	}
}

func TestTextBlockNilFont(t *testing.T) {
	tb := &TextBlock{Content: "hello"}
	w, h := tb.Size()
	if w != 0 || h != 0 {
		t.Errorf("Size = (%v, %v), want (0, 0)", w, h)
	}
	if len(tb.Lines()) != 0 {
		t.Error("no lines without a font")
	}
}

func TestTextBlockRelayoutOnChange(t *testing.T) {
	tb := &TextBlock{Content: "abc", Font: newFixedFont()}
	if w, _ := tb.Size(); w != 21 {
		t.Fatalf("width = %v, want 21", w)
	}

	tb.SetContent("abcdef")
	if w, _ := tb.Size(); w != 42 {
		t.Errorf("after SetContent width = %v, want 42", w)
	}

	// Direct field writes are picked up too.
	tb.Content = "a"
	if w, _ := tb.Size(); w != 7 {
		t.Errorf("after field write width = %v, want 7", w)
	}

	tb.WrapWidth = 1
	tb.Content = "a b"
	if got := tb.Lines(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Lines = %q, want [a b]", got)
	}
}

func TestTextBlockLinesIsCopy(t *testing.T) {
	tb := &TextBlock{Content: "x y", Font: newFixedFont(), WrapWidth: 7}
	lines := tb.Lines()
	lines[0] = "changed"
	if tb.Lines()[0] != "x" {
		t.Error("Lines should return a copy")
	}
}

func TestTextBlockAlignOffset(t *testing.T) {
	tests := []struct {
		name  string
		align TextAlign
		wrap  float64
		lineW float64
		want  float64
	}{
		{"left", TextAlignLeft, 100, 40, 0},
		{"center wrapped", TextAlignCenter, 100, 40, 30},
		{"right wrapped", TextAlignRight, 100, 40, 60},
		{"center unwrapped uses widest line", TextAlignCenter, 0, 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := &TextBlock{Content: "abc", Font: newFixedFont(), Align: tt.align, WrapWidth: tt.wrap}
			tb.Size()
			if got := tb.alignOffset(tt.lineW); got != tt.want {
				t.Errorf("alignOffset(%v) = %v, want %v", tt.lineW, got, tt.want)
			}
		})
	}
}

// --- TTF fonts ---

func TestDefaultFonts(t *testing.T) {
	for name, f := range map[string]*TTFFont{
		"regular": DefaultFont(14),
		"bold":    BoldFont(14),
		"mono":    MonoFont(16),
	} {
		if f.LineHeight() <= 0 {
			t.Errorf("%s: LineHeight = %v, want > 0", name, f.LineHeight())
		}
		if f.Face() == nil {
			t.Errorf("%s: nil face", name)
		}
		w, _ := f.MeasureString("hello")
		if w <= 0 {
			t.Errorf("%s: MeasureString width = %v, want > 0", name, w)
		}
	}
	if DefaultFont(20).Size() != 20 {
		t.Error("Size should report the requested size")
	}
}

func TestTTFFontWiderTextMeasuresWider(t *testing.T) {
	f := DefaultFont(14)
	short, _ := f.MeasureString("ab")
	long, _ := f.MeasureString("abcdef")
	if long <= short {
		t.Errorf("MeasureString(abcdef) = %v, want > %v", long, short)
	}
}

func TestLoadTTFFontInvalid(t *testing.T) {
	if _, err := LoadTTFFont([]byte("not a font"), 12); err == nil {
		t.Error("expected an error for invalid font data")
	}
}
