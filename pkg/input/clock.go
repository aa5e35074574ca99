package input

// Clock measures the time between frames from an external time source in
// seconds, such as glfw.GetTime.
type Clock struct {
	last    float64
	elapsed float64
	started bool
}

// Tick records now and returns the seconds since the previous tick. The
// first tick and a time source that runs backwards both yield zero.
func (c *Clock) Tick(now float64) float32 {
	if !c.started {
		c.last = now
		c.started = true
		return 0
	}

	dt := now - c.last
	c.last = now
	if dt < 0 {
		return 0
	}

	c.elapsed += dt
	return float32(dt)
}

// Elapsed returns the total seconds accumulated by Tick.
func (c *Clock) Elapsed() float32 {
	return float32(c.elapsed)
}
