package willowui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	ShowFPS   bool
	Resizable bool
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	fixed bool
	w, h  int
}

func (g *game) Update() error {
	return g.scene.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window size when resizable; otherwise the logical
// screen stays at the configured size.
func (g *game) Layout(outsideW, outsideH int) (int, int) {
	w, h := outsideW, outsideH
	if g.fixed {
		w, h = g.w, g.h
	}
	g.scene.SetViewportSize(float64(w), float64(h))
	return w, h
}

// Run opens a window and drives scene until the window closes or the update
// func returns an error. Zero Width or Height default to 800x600.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	scene.SetViewportSize(float64(cfg.Width), float64(cfg.Height))

	if cfg.ShowFPS {
		fps := NewFPSWidget()
		fps.X, fps.Y = 4, 4
		scene.Root().AddChild(fps)
	}

	g := &game{scene: scene, fixed: !cfg.Resizable, w: cfg.Width, h: cfg.Height}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("willowui: run: %w", err)
	}
	return nil
}
