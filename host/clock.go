package host

import "time"

// Clock measures time since the platform started. Tests use a virtual
// clock whose Sleep advances time instantly.
type Clock struct {
	start time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

// NewClock returns a wall clock starting now.
func NewClock() *Clock {
	return &Clock{start: time.Now(), now: time.Now, sleep: time.Sleep}
}

// NewVirtualClock returns a clock that starts at zero and only moves when
// Sleep is called. It is not safe for concurrent use.
func NewVirtualClock() *Clock {
	var t time.Time
	return &Clock{
		start: t,
		now:   func() time.Time { return t },
		sleep: func(d time.Duration) { t = t.Add(d) },
	}
}

// ElapsedMillis returns whole milliseconds since the clock started. The
// count wraps at 2^32, about 49.7 days.
func (c *Clock) ElapsedMillis() uint32 {
	return uint32(c.now().Sub(c.start).Milliseconds()) //nolint:gosec // engine ticks wrap at 2^32
}

// Sleep blocks for ms milliseconds.
func (c *Clock) Sleep(ms uint32) {
	c.sleep(time.Duration(ms) * time.Millisecond)
}
