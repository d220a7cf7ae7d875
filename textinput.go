package willowui

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	inputPadding = 4.0
	caretWidth   = 1.5
	caretBlink   = 0.5 // seconds per phase

	// Backspace repeat, in ticks.
	keyRepeatDelay    = 30
	keyRepeatInterval = 3
)

// TextInput is a multiline text box. Clicking it takes keyboard focus;
// typing appends at the end, Enter inserts a newline, Backspace deletes
// (with key repeat) and Escape or a click elsewhere drops focus. The box
// grows to fit its content but never below the configured row count.
type TextInput struct {
	OnChange func(string)

	scene *Scene
	node  *Node
	text  *Node
	caret *Node
	theme *Theme
	font  Font

	width   float64
	rows    int
	focused bool
	blink   float64
	chars   []rune
}

// NewTextInput creates a text box rows lines tall, pre-filled with initial.
// The scene is needed to take focus.
func NewTextInput(scene *Scene, initial string, width float64, rows int, font Font, th *Theme) *TextInput {
	ti := &TextInput{
		scene: scene,
		theme: th,
		font:  font,
		width: width,
		rows:  max(rows, 1),
	}
	ti.node = NewRect("text_input", width, 0, th.InputFill)
	ti.node.BorderWidth = 1
	ti.node.Interactable = true

	ti.text = NewText("text_input_text", initial, font)
	ti.text.X, ti.text.Y = inputPadding, inputPadding
	ti.text.TextBlock.WrapWidth = width - 2*inputPadding
	ti.node.AddChild(ti.text)

	ti.caret = NewRect("caret", caretWidth, 0, th.Text)
	ti.caret.Visible = false
	ti.node.AddChild(ti.caret)

	ti.node.OnPointerDown = func(PointerContext) {
		if ti.scene != nil {
			ti.scene.SetFocus(ti)
		}
	}
	ti.node.OnUpdate = ti.update

	ti.ApplyTheme(th)
	ti.layout()
	return ti
}

func (ti *TextInput) Node() *Node { return ti.node }

func (ti *TextInput) Size() (w, h float64) {
	return ti.node.Width, ti.node.Height
}

// Text returns the current content.
func (ti *TextInput) Text() string {
	return ti.text.TextBlock.Content
}

// SetText replaces the content. OnChange is not called.
func (ti *TextInput) SetText(s string) {
	ti.text.TextBlock.SetContent(s)
	ti.layout()
}

// Focused reports whether the box has keyboard focus.
func (ti *TextInput) Focused() bool {
	return ti.focused
}

func (ti *TextInput) owns(n *Node) bool {
	return isAncestor(ti.node, n)
}

func (ti *TextInput) setFocused(focused bool) {
	ti.focused = focused
	ti.blink = 0
	ti.caret.Visible = focused
	ti.repaint()
}

// handleKeys applies this frame's keyboard input. Called by the scene while
// the box has focus.
func (ti *TextInput) handleKeys() {
	s := ti.Text()

	ti.chars = ebiten.AppendInputChars(ti.chars[:0])
	if len(ti.chars) > 0 {
		s = insertText(s, string(ti.chars))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		s = insertText(s, "\n")
	}
	if repeatTick(inpututil.KeyPressDuration(ebiten.KeyBackspace)) {
		s = deleteLastRune(s)
	}

	if s != ti.Text() {
		ti.edit(s)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && ti.scene != nil {
		ti.scene.SetFocus(nil)
	}
}

func (ti *TextInput) edit(s string) {
	ti.SetText(s)
	ti.blink = 0
	if ti.OnChange != nil {
		ti.OnChange(s)
	}
}

func (ti *TextInput) update(dt float64) {
	if !ti.focused {
		ti.caret.Visible = false
		return
	}
	ti.blink += dt
	ti.caret.Visible = int(ti.blink/caretBlink)%2 == 0
}

func (ti *TextInput) layout() {
	tb := ti.text.TextBlock
	lines := tb.layout()
	lh := tb.lineHeight()

	n := max(len(lines), ti.rows)
	ti.node.Height = float64(n)*lh + 2*inputPadding

	// Caret sits after the last character.
	cx, cy := 0.0, 0.0
	if len(lines) > 0 {
		last := lines[len(lines)-1]
		cx = last.width
		if last.text != "" && strings.HasSuffix(tb.Content, " ") && ti.font != nil {
			sw, _ := ti.font.MeasureString(" ")
			cx += sw
		}
		cy = float64(len(lines)-1) * lh
	}
	ti.caret.Height = lh
	moveTo(ti.caret, inputPadding+min(cx, tb.WrapWidth), inputPadding+cy)
}

func (ti *TextInput) repaint() {
	ti.node.Color = ti.theme.InputFill
	if ti.focused {
		ti.node.BorderColor = ti.theme.Focus
	} else {
		ti.node.BorderColor = ti.theme.Border
	}
	ti.text.TextBlock.Color = ti.theme.Text
	ti.caret.Color = ti.theme.Text
}

func (ti *TextInput) ApplyTheme(th *Theme) {
	ti.theme = th
	ti.repaint()
}

// insertText appends the printable part of add (plus newlines) to s.
func insertText(s, add string) string {
	var b strings.Builder
	b.Grow(len(s) + len(add))
	b.WriteString(s)
	for _, r := range add {
		if r == '\n' || unicode.IsPrint(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// deleteLastRune removes the final rune of s.
func deleteLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

// repeatTick reports whether a key held for d ticks fires this tick: on the
// first tick, then every keyRepeatInterval ticks after keyRepeatDelay.
func repeatTick(d int) bool {
	if d == 1 {
		return true
	}
	return d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}
