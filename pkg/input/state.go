package input

// State collects input reported by window callbacks between frames. The
// render loop drains it once per frame; callbacks and the loop run on the
// same thread, so no locking is needed.
type State struct {
	Mouse *MouseTracker

	captured bool
	mouseX   float32
	mouseY   float32
	scroll   float32
}

// NewState returns an empty input state.
func NewState(captured bool) *State {
	return &State{
		Mouse:    NewMouseTracker(),
		captured: captured,
	}
}

// CursorMoved accumulates the offset for a new cursor position. Movement is
// ignored while the cursor is released.
func (s *State) CursorMoved(x, y float64) {
	xOffset, yOffset := s.Mouse.Move(x, y)
	if !s.captured {
		return
	}
	s.mouseX += xOffset
	s.mouseY += yOffset
}

// Scrolled accumulates a vertical scroll delta.
func (s *State) Scrolled(delta float64) {
	s.scroll += float32(delta)
}

// TakeMouse returns and clears the mouse offset gathered since the last call.
func (s *State) TakeMouse() (xOffset, yOffset float32) {
	xOffset, yOffset = s.mouseX, s.mouseY
	s.mouseX, s.mouseY = 0, 0
	return xOffset, yOffset
}

// TakeScroll returns and clears the scroll gathered since the last call.
func (s *State) TakeScroll() float32 {
	scroll := s.scroll
	s.scroll = 0
	return scroll
}

// Captured reports whether mouse look is active.
func (s *State) Captured() bool {
	return s.captured
}

// SetCaptured switches mouse look on or off and drops pending movement.
func (s *State) SetCaptured(captured bool) {
	s.captured = captured
	s.mouseX, s.mouseY = 0, 0
	s.Mouse.Reset()
}
