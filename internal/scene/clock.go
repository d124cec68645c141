package scene

// SimClock is a fixed-step simulation clock.
type SimClock struct {
	now  float64
	step float64
}

// NewSimClock creates a clock that advances by step seconds per Step.
func NewSimClock(step float64) *SimClock {
	return &SimClock{step: step}
}

// Now implements spawner.Clock.
func (c *SimClock) Now() float64 {
	return c.now
}

// Step advances the clock by one step and returns the step length.
func (c *SimClock) Step() float64 {
	c.now += c.step
	return c.step
}

// Reset rewinds the clock to zero.
func (c *SimClock) Reset() {
	c.now = 0
}
