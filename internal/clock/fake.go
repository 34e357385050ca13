package clock

import "time"

// FakeClock reports a fixed instant that tests move by hand, keeping
// month bucketing and defaulted dates deterministic.
type FakeClock struct {
	now time.Time
}

func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start.UTC()}
}

func (c *FakeClock) Now() time.Time {
	return c.now
}

// Advance shifts the clock by d; a negative duration moves it back.
func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Set jumps the clock to an absolute instant.
func (c *FakeClock) Set(t time.Time) {
	c.now = t.UTC()
}
