package willowui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// underlineGap is the distance between a text line's bottom and its underline.
const underlineGap = 2

// submitCommands draws the sorted command list to target.
func (s *Scene) submitCommands(target *ebiten.Image) {
	var op ebiten.DrawImageOptions
	for i := range s.commands {
		cmd := &s.commands[i]
		switch cmd.Type {
		case CommandRect:
			submitRect(target, cmd)
		case CommandImage:
			submitImage(target, cmd, &op)
		case CommandText:
			submitText(target, cmd)
		}
	}
}

// commandGeoM converts a command's affine transform to an ebiten.GeoM.
func commandGeoM(cmd *RenderCommand) ebiten.GeoM {
	var m ebiten.GeoM
	m.SetElement(0, 0, cmd.Transform[0])
	m.SetElement(1, 0, cmd.Transform[1])
	m.SetElement(0, 1, cmd.Transform[2])
	m.SetElement(1, 1, cmd.Transform[3])
	m.SetElement(0, 2, cmd.Transform[4])
	m.SetElement(1, 2, cmd.Transform[5])
	return m
}

// screenRect maps a local (0,0,w,h) box through the command transform.
// UI transforms are scale+translate only, so the result stays axis-aligned.
func screenRect(cmd *RenderCommand, w, h float64) (x, y, sw, sh float32) {
	m := cmd.Transform
	return float32(m[4]), float32(m[5]), float32(w * m[0]), float32(h * m[3])
}

func submitRect(target *ebiten.Image, cmd *RenderCommand) {
	n := cmd.node
	x, y, w, h := screenRect(cmd, n.Width, n.Height)
	if cmd.Color.A > 0 {
		vector.DrawFilledRect(target, x, y, w, h, cmd.Color.toNRGBA(), false)
	}
	if n.BorderWidth > 0 {
		bc := n.BorderColor
		bc.A *= n.worldAlpha
		vector.StrokeRect(target, x, y, w, h, float32(n.BorderWidth), bc.toNRGBA(), false)
	}
}

func submitImage(target *ebiten.Image, cmd *RenderCommand, op *ebiten.DrawImageOptions) {
	n := cmd.node
	b := n.Image.Bounds()
	op.GeoM.Reset()
	if n.Width > 0 && n.Height > 0 {
		op.GeoM.Scale(n.Width/float64(b.Dx()), n.Height/float64(b.Dy()))
	}
	op.GeoM.Concat(commandGeoM(cmd))

	// Premultiply at submission time.
	c := cmd.Color
	a := float32(c.A)
	op.ColorScale.Reset()
	op.ColorScale.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
	target.DrawImage(n.Image, op)
}

func submitText(target *ebiten.Image, cmd *RenderCommand) {
	tb := cmd.node.TextBlock
	f, ok := tb.Font.(*TTFFont)
	if !ok {
		return
	}
	lines := tb.layout()
	lh := tb.lineHeight()
	base := commandGeoM(cmd)
	clr := cmd.Color.toNRGBA()

	op := &text.DrawOptions{}
	for i, line := range lines {
		if line.text == "" {
			continue
		}
		lx := tb.alignOffset(line.width)
		ly := float64(i) * lh

		op.GeoM.Reset()
		op.GeoM.Translate(lx, ly)
		op.GeoM.Concat(base)
		op.ColorScale.Reset()
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(target, line.text, f.face, op)

		if tb.Underline {
			x0, y0 := transformPoint(cmd.Transform, lx, ly+lh-underlineGap)
			x1, _ := transformPoint(cmd.Transform, lx+line.width, ly+lh-underlineGap)
			vector.StrokeLine(target, float32(x0), float32(y0), float32(x1), float32(y0), 1, clr, false)
		}
	}
}
