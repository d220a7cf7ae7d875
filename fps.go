package willowui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const fpsRefreshSecs = 0.5

// NewFPSWidget creates a node that shows the current FPS and TPS, redrawn
// about twice a second with ebitenutil.DebugPrint.
func NewFPSWidget() *Node {
	// Room for "FPS: 60.0\nTPS: 60.0".
	img := ebiten.NewImage(100, 32)

	node := NewImage("fps_widget", img, 0, 0)
	node.RenderLayer = 255

	elapsed := fpsRefreshSecs
	node.OnUpdate = func(dt float64) {
		elapsed += dt
		if elapsed < fpsRefreshSecs {
			return
		}
		elapsed = 0

		img.Clear()
		img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	return node
}
