package willowui

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultCommandCap = 256

// Scene is the top-level object that owns the node tree, input state,
// and render buffers.
type Scene struct {
	root   *Node
	debug  bool
	logger *slog.Logger

	// ClearColor fills the screen before drawing. Zero alpha skips the fill.
	ClearColor Color

	// ScreenshotDir is where Screenshot writes PNGs.
	ScreenshotDir string

	updateFunc func() error

	viewW, viewH float64

	// Render state
	commands []RenderCommand
	sortBuf  []RenderCommand

	// Input state
	handlers     handlerRegistry
	captured     *Node
	pointer      pointerState
	hitBuf       []*Node
	dragDeadZone float64
	injectQueue  []syntheticPointerEvent
	focus        Focusable

	updateBuf []*Node

	script          *Script
	screenshotQueue []string
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	return &Scene{
		root:          root,
		logger:        slog.Default(),
		ScreenshotDir: defaultScreenshotDir,
		commands:      make([]RenderCommand, 0, defaultCommandCap),
		sortBuf:       make([]RenderCommand, 0, defaultCommandCap),
		dragDeadZone:  defaultDragDeadZone,
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// SetUpdateFunc registers fn to run at the end of every Update. A non-nil
// error stops the game loop started by Run.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetViewportSize records the logical screen size. Run keeps it in sync with
// the window; set it directly when driving the scene yourself.
func (s *Scene) SetViewportSize(w, h float64) {
	s.viewW, s.viewH = w, h
}

// ViewportSize returns the logical screen size.
func (s *Scene) ViewportSize() (w, h float64) {
	return s.viewW, s.viewH
}

// SetLogger replaces the scene's logger (slog.Default by default).
func (s *Scene) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	s.logger = l
}

// Logger returns the scene's logger.
func (s *Scene) Logger() *slog.Logger {
	return s.logger
}

// Update advances one frame with dt = 1/TPS.
func (s *Scene) Update() error {
	return s.Step(1.0 / float64(ebiten.TPS()))
}

// Step advances one frame of dt seconds: refreshes transforms, runs OnUpdate
// hooks, advances the script if any, processes input, then calls the update
// func.
func (s *Scene) Step(dt float64) error {
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.runUpdateHooks(dt)
	// Hooks may have moved or resized nodes; hit testing needs fresh transforms.
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	if s.script != nil {
		s.script.step(s)
	}
	s.processInput()
	if s.focus != nil {
		s.focus.handleKeys()
	}
	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// runUpdateHooks calls OnUpdate on every visible node in tree order. The
// list is snapshotted first so hooks may add or remove nodes.
func (s *Scene) runUpdateHooks(dt float64) {
	s.updateBuf = collectUpdatable(s.root, s.updateBuf[:0])
	for i, n := range s.updateBuf {
		if !n.disposed && n.OnUpdate != nil {
			n.OnUpdate(dt)
		}
		s.updateBuf[i] = nil
	}
}

func collectUpdatable(n *Node, buf []*Node) []*Node {
	if !n.Visible {
		return buf
	}
	if n.OnUpdate != nil {
		buf = append(buf, n)
	}
	for _, c := range n.children {
		buf = collectUpdatable(c, buf)
	}
	return buf
}

// Draw traverses the scene tree, emits render commands, sorts them, and
// submits them to screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toNRGBA())
	}

	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.buildCommands()

	if s.debug {
		stats.traverseTime = time.Since(t0)
		t0 = time.Now()
	}

	s.submitCommands(screen)

	if s.debug {
		stats.submitTime = time.Since(t0)
		stats.commandCount = len(s.commands)
		s.debugLog(stats)
	}

	s.flushScreenshots(screen)
}

// buildCommands fills s.commands in draw order.
func (s *Scene) buildCommands() {
	s.commands = s.commands[:0]
	treeOrder := 0
	s.traverse(s.root, identityTransform, 1.0, false, &treeOrder)
	s.mergeSort()
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, deep trees are reported, and per-frame timings are logged
// at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	debugLogger = s.logger
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
