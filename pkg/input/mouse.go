// Package input holds the per-frame input state the render loop feeds into
// the camera: cursor deltas, scroll and frame timing.
package input

// MouseTracker turns absolute cursor positions into frame-to-frame offsets.
type MouseTracker struct {
	lastX      float64
	lastY      float64
	firstMouse bool
}

// NewMouseTracker returns a tracker waiting for its first sample.
func NewMouseTracker() *MouseTracker {
	return &MouseTracker{firstMouse: true}
}

// Move records the cursor position and returns the offset from the previous
// one. The first sample after creation or Reset only records the position.
// The Y offset is reversed since screen coordinates grow downward.
func (m *MouseTracker) Move(x, y float64) (xOffset, yOffset float32) {
	if m.firstMouse {
		m.lastX = x
		m.lastY = y
		m.firstMouse = false
		return 0, 0
	}

	xOffset = float32(x - m.lastX)
	yOffset = float32(m.lastY - y)

	m.lastX = x
	m.lastY = y

	return xOffset, yOffset
}

// Reset makes the next sample a first sample, so a recaptured cursor does not
// produce a jump.
func (m *MouseTracker) Reset() {
	m.firstMouse = true
}
