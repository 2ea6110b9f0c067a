package clock

import "time"

// Clock provides wall-clock readings that can be mocked for testing.
// Move timing is measured as the delta between two Now calls.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed on c since start
func Since(c Clock, start time.Time) time.Duration {
	return c.Now().Sub(start)
}
