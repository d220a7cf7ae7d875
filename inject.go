package willowui

// syntheticPointerEvent is one queued pointer event in screen coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	button  MouseButton
}

func (s *Scene) inject(x, y float64, pressed bool) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: pressed,
		button:  MouseButtonLeft,
	})
}

// InjectPress queues a left-button press at (x, y). Each queued event is
// consumed by one Step, in place of the real mouse.
func (s *Scene) InjectPress(x, y float64) {
	s.inject(x, y, true)
}

// InjectMove queues a pointer move at (x, y) with the button held down.
// Use it between InjectPress and InjectRelease to simulate a drag.
func (s *Scene) InjectMove(x, y float64) {
	s.inject(x, y, true)
}

// InjectHover queues a pointer move at (x, y) with no button held.
func (s *Scene) InjectHover(x, y float64) {
	s.inject(x, y, false)
}

// InjectRelease queues a pointer release at (x, y).
func (s *Scene) InjectRelease(x, y float64) {
	s.inject(x, y, false)
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 evenly spaced moves
// and a release at (toX, toY). frames is at least 2.
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// PendingInjections returns the number of queued synthetic events.
func (s *Scene) PendingInjections() int {
	return len(s.injectQueue)
}

// processInjectedInput feeds one queued event through processPointer.
// Returns false when the queue is empty.
func (s *Scene) processInjectedInput(mods KeyModifiers) bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.processPointer(evt.x, evt.y, evt.pressed, evt.button, mods)
	return true
}
