package willowui

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// ScriptAction names one step of a Script.
type ScriptAction string

const (
	ActionClick      ScriptAction = "click"
	ActionHover      ScriptAction = "hover"
	ActionDrag       ScriptAction = "drag"
	ActionWait       ScriptAction = "wait"
	ActionScreenshot ScriptAction = "screenshot"
)

// ScriptStep is one scripted action. Coordinates are screen pixels.
type ScriptStep struct {
	Action ScriptAction `toml:"action"`
	Label  string       `toml:"label,omitempty"`
	X      float64      `toml:"x,omitempty"`
	Y      float64      `toml:"y,omitempty"`
	ToX    float64      `toml:"to_x,omitempty"`
	ToY    float64      `toml:"to_y,omitempty"`
	Frames int          `toml:"frames,omitempty"`
}

type scriptFile struct {
	Steps []ScriptStep `toml:"steps"`
}

// Script plays a fixed sequence of pointer actions and screenshots, one step
// per frame, through the scene's injection queue. It is used for unattended
// demo runs:
//
//	[[steps]]
//	action = "click"
//	x = 120
//	y = 300
//
//	[[steps]]
//	action = "wait"
//	frames = 30
type Script struct {
	steps  []ScriptStep
	cursor int
	wait   int
	done   bool
}

// LoadScript parses a TOML script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("willowui: parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, errors.New("willowui: parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case ActionClick, ActionHover, ActionDrag, ActionWait, ActionScreenshot:
		default:
			return nil, fmt.Errorf("willowui: parse script: step %d: unknown action %q", i+1, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// SetScript attaches a script to the scene; nil detaches it. The script
// advances once per Step, before input is processed.
func (s *Scene) SetScript(sc *Script) {
	s.script = sc
}

// Done reports whether every step has run and its input has been consumed.
func (sc *Script) Done() bool {
	return sc.done
}

// Len returns the number of steps.
func (sc *Script) Len() int {
	return len(sc.steps)
}

func (sc *Script) step(s *Scene) {
	if sc.done || len(s.injectQueue) > 0 {
		return
	}
	if sc.wait > 0 {
		sc.wait--
		sc.finishIfLast(s)
		return
	}
	if sc.cursor >= len(sc.steps) {
		sc.done = true
		return
	}

	st := sc.steps[sc.cursor]
	sc.cursor++
	s.logger.Debug("script step", "n", sc.cursor, "action", st.Action, "label", st.Label)

	switch st.Action {
	case ActionClick:
		s.InjectClick(st.X, st.Y)
	case ActionHover:
		s.InjectHover(st.X, st.Y)
	case ActionDrag:
		s.InjectDrag(st.X, st.Y, st.ToX, st.ToY, max(st.Frames, 2))
	case ActionWait:
		// This frame counts as the first.
		sc.wait = max(st.Frames-1, 0)
	case ActionScreenshot:
		s.Screenshot(st.Label)
	}

	sc.finishIfLast(s)
}

func (sc *Script) finishIfLast(s *Scene) {
	if sc.cursor >= len(sc.steps) && sc.wait == 0 && len(s.injectQueue) == 0 {
		sc.done = true
	}
}
