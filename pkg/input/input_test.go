package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMouseTrackerFirstSample(t *testing.T) {
	m := NewMouseTracker()

	x, y := m.Move(400, 300)
	assert.Zero(t, x)
	assert.Zero(t, y)

	x, y = m.Move(410, 290)
	assert.Equal(t, float32(10), x)
	assert.Equal(t, float32(10), y, "moving up gives a positive offset")
}

func TestMouseTrackerReset(t *testing.T) {
	m := NewMouseTracker()
	m.Move(0, 0)
	m.Reset()

	x, y := m.Move(500, 500)
	assert.Zero(t, x)
	assert.Zero(t, y)

	x, y = m.Move(499, 502)
	assert.Equal(t, float32(-1), x)
	assert.Equal(t, float32(-2), y)
}

func TestClockTick(t *testing.T) {
	var c Clock

	assert.Zero(t, c.Tick(10))
	assert.InDelta(t, 0.5, c.Tick(10.5), 1e-6)
	assert.InDelta(t, 0.25, c.Tick(10.75), 1e-6)
	assert.InDelta(t, 0.75, c.Elapsed(), 1e-6)
}

func TestClockNeverNegative(t *testing.T) {
	var c Clock
	c.Tick(5)

	assert.Zero(t, c.Tick(4))
	assert.InDelta(t, 1, c.Tick(5), 1e-6)
	assert.InDelta(t, 1, c.Elapsed(), 1e-6)
}

func TestStateAccumulatesAndDrains(t *testing.T) {
	s := NewState(true)

	s.CursorMoved(100, 100)
	s.CursorMoved(103, 98)
	s.CursorMoved(105, 97)
	s.Scrolled(1)
	s.Scrolled(0.5)

	x, y := s.TakeMouse()
	assert.Equal(t, float32(5), x)
	assert.Equal(t, float32(3), y)
	assert.Equal(t, float32(1.5), s.TakeScroll())

	x, y = s.TakeMouse()
	assert.Zero(t, x)
	assert.Zero(t, y)
	assert.Zero(t, s.TakeScroll())
}

func TestStateIgnoresReleasedCursor(t *testing.T) {
	s := NewState(false)

	s.CursorMoved(0, 0)
	s.CursorMoved(50, 50)
	x, y := s.TakeMouse()
	assert.Zero(t, x)
	assert.Zero(t, y)

	s.SetCaptured(true)
	assert.True(t, s.Captured())
	s.CursorMoved(300, 300)
	s.CursorMoved(301, 300)
	x, _ = s.TakeMouse()
	assert.Equal(t, float32(1), x)
}
