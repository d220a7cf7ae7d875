package willowui

import (
	"strings"
	"unicode/utf8"
)

// fixedFont measures every rune as the same advance. Pointer receiver so it
// is comparable inside TextBlock's layout key.
type fixedFont struct {
	advance float64
	lh      float64
}

func newFixedFont() *fixedFont {
	return &fixedFont{advance: 7, lh: 10}
}

func (f *fixedFont) MeasureString(s string) (width, height float64) {
	lines := strings.Split(s, "\n")
	longest := 0
	for _, l := range lines {
		longest = max(longest, utf8.RuneCountInString(l))
	}
	return float64(longest) * f.advance, float64(len(lines)) * f.lh
}

func (f *fixedFont) LineHeight() float64 {
	return f.lh
}

// step runs one scene frame with a fixed dt, as Run would at 60 TPS.
func step(s *Scene) {
	if err := s.Step(1.0 / 60); err != nil {
		panic(err)
	}
}

// click queues a click at (x, y) and runs the two frames it takes.
func click(s *Scene, x, y float64) {
	s.InjectClick(x, y)
	step(s)
	step(s)
}

// hover moves the pointer to (x, y) without a button and runs one frame.
func hover(s *Scene, x, y float64) {
	s.InjectHover(x, y)
	step(s)
}
