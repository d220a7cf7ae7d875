package willowui

import (
	"image/color"
	"testing"
)

func TestRGBAndHex(t *testing.T) {
	if got := RGB(255, 0, 0); got != (Color{1, 0, 0, 1}) {
		t.Errorf("RGB(255,0,0) = %v", got)
	}
	if got, want := Hex(0x00ff00), RGB(0, 255, 0); got != want {
		t.Errorf("Hex(0x00ff00) = %v, want %v", got, want)
	}
	if got := Hex(0x1e1e2e); got != RGB(0x1e, 0x1e, 0x2e) {
		t.Errorf("Hex(0x1e1e2e) = %v", got)
	}
}

func TestColorWithAlpha(t *testing.T) {
	c := Color{0.1, 0.2, 0.3, 1}.WithAlpha(0.5)
	if c != (Color{0.1, 0.2, 0.3, 0.5}) {
		t.Errorf("WithAlpha = %v", c)
	}
}

func TestColorMul(t *testing.T) {
	got := Color{1, 0.5, 0.5, 1}.Mul(Color{0.5, 0.5, 1, 0.5})
	want := Color{0.5, 0.25, 0.5, 0.5}
	if got != want {
		t.Errorf("Mul = %v, want %v", got, want)
	}
}

func TestColorLerp(t *testing.T) {
	a := Color{0, 0, 0, 1}
	b := Color{1, 0.5, 0, 0}
	tests := []struct {
		t    float64
		want Color
	}{
		{0, a},
		{1, b},
		{0.5, Color{0.5, 0.25, 0, 0.5}},
	}
	for _, tt := range tests {
		if got := a.Lerp(b, tt.t); got != tt.want {
			t.Errorf("Lerp(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestColorToNRGBAClamps(t *testing.T) {
	got := Color{2, -1, 0.5, 1}.toNRGBA()
	want := color.NRGBA{R: 255, G: 0, B: 128, A: 255}
	if got != want {
		t.Errorf("toNRGBA = %v, want %v", got, want)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 10}
	tests := []struct {
		x, y float64
		want bool
	}{
		{15, 15, true},
		{10, 10, true},
		{30, 20, true},
		{9, 15, false},
		{15, 21, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{5, 5, 10, 10}, true},
		{"shared edge", Rect{10, 0, 5, 5}, true},
		{"inside", Rect{2, 2, 2, 2}, true},
		{"apart", Rect{20, 20, 5, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}
