package willowui

import (
	"errors"
	"log/slog"
	"testing"
)

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.root == nil {
		t.Fatal("root should not be nil")
	}
	if s.root.Name != "root" {
		t.Errorf("root.Name = %q, want %q", s.root.Name, "root")
	}
	if s.root.Type != NodeTypeContainer {
		t.Errorf("root.Type = %d, want NodeTypeContainer", s.root.Type)
	}
	if s.Root() != s.root {
		t.Error("Root() should return root")
	}
	if s.dragDeadZone != defaultDragDeadZone {
		t.Errorf("dragDeadZone = %v, want %v", s.dragDeadZone, defaultDragDeadZone)
	}
}

func TestSceneViewportSize(t *testing.T) {
	s := NewScene()
	s.SetViewportSize(1280, 720)
	w, h := s.ViewportSize()
	if w != 1280 || h != 720 {
		t.Errorf("ViewportSize = (%v, %v), want (1280, 720)", w, h)
	}
}

func TestSceneSetLoggerNil(t *testing.T) {
	s := NewScene()
	custom := slog.New(slog.DiscardHandler)
	s.SetLogger(custom)
	if s.Logger() != custom {
		t.Error("SetLogger should replace the logger")
	}
	s.SetLogger(nil)
	if s.Logger() != slog.Default() {
		t.Error("SetLogger(nil) should fall back to slog.Default")
	}
}

func TestStepRunsHooksThenUpdateFunc(t *testing.T) {
	s := NewScene()
	n := NewContainer("n")
	s.Root().AddChild(n)

	var order []string
	var gotDT float64
	n.OnUpdate = func(dt float64) {
		gotDT = dt
		order = append(order, "hook")
	}
	s.SetUpdateFunc(func() error {
		order = append(order, "func")
		return nil
	})

	if err := s.Step(0.25); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if len(order) != 2 || order[0] != "hook" || order[1] != "func" {
		t.Errorf("order = %v, want [hook func]", order)
	}
	if gotDT != 0.25 {
		t.Errorf("dt = %v, want 0.25", gotDT)
	}
}

func TestStepReturnsUpdateFuncError(t *testing.T) {
	s := NewScene()
	want := errors.New("stop")
	s.SetUpdateFunc(func() error { return want })

	if err := s.Step(0.1); !errors.Is(err, want) {
		t.Errorf("Step error = %v, want %v", err, want)
	}
}

func TestStepSkipsHiddenHooks(t *testing.T) {
	s := NewScene()
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)
	s.Root().AddChild(parent)

	ran := false
	child.OnUpdate = func(float64) { ran = true }
	parent.Visible = false

	step(s)

	if ran {
		t.Error("hooks under an invisible node should not run")
	}
}

func TestStepHookParentsBeforeChildren(t *testing.T) {
	s := NewScene()
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)
	s.Root().AddChild(parent)

	var order []string
	child.OnUpdate = func(float64) { order = append(order, "child") }
	parent.OnUpdate = func(float64) { order = append(order, "parent") }

	step(s)

	if len(order) != 2 || order[0] != "parent" {
		t.Errorf("order = %v, want [parent child]", order)
	}
}

func TestStepHookMayDisposeSibling(t *testing.T) {
	s := NewScene()
	a := NewContainer("a")
	b := NewContainer("b")
	s.Root().AddChild(a)
	s.Root().AddChild(b)

	bRan := false
	a.OnUpdate = func(float64) { b.Dispose() }
	b.OnUpdate = func(float64) { bRan = true }

	step(s)

	if bRan {
		t.Error("a node disposed earlier in the frame should not run its hook")
	}
	if s.Root().NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", s.Root().NumChildren())
	}
}

func TestStepHookMoveIsHitTestedSameFrame(t *testing.T) {
	s := NewScene()
	r := NewRect("r", 20, 20, ColorWhite)
	r.Interactable = true
	r.SetPosition(200, 200)
	s.Root().AddChild(r)

	r.OnUpdate = func(float64) { r.SetPosition(0, 0) }

	var downs int
	r.OnPointerDown = func(PointerContext) { downs++ }
	s.InjectPress(10, 10)
	step(s)

	if downs != 1 {
		t.Errorf("OnPointerDown fired %d times, want 1", downs)
	}
}

func TestStepCallsFocusedHandleKeys(t *testing.T) {
	s := NewScene()
	f := &fakeFocus{}
	s.SetFocus(f)

	step(s)
	step(s)

	if f.keys != 2 {
		t.Errorf("handleKeys called %d times, want 2", f.keys)
	}
}
