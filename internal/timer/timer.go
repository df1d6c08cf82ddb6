// Package timer implements the session countdown. The remaining value is
// derived from an absolute target time on every tick rather than decremented,
// so a delayed or skipped tick (suspended terminal, backgrounded process) is
// corrected on the next tick instead of accumulating drift.
package timer

import "fmt"

// Countdown counts down from an initial number of seconds. The host owns the
// tick cadence and passes the tick's wall-clock time into Tick; the countdown
// itself never schedules anything.
type Countdown struct {
	initialSecs int
	targetUnix  int64 // ms since epoch; set by Start
	remaining   int
	started     bool
	expired     bool
	onExpire    func()
}

// New creates a Countdown for initialSecs seconds. onExpire may be nil; when
// set it is invoked exactly once, on the first tick that reaches zero.
func New(initialSecs int, onExpire func()) *Countdown {
	if initialSecs < 0 {
		initialSecs = 0
	}
	return &Countdown{
		initialSecs: initialSecs,
		remaining:   initialSecs,
		onExpire:    onExpire,
	}
}

// Start anchors the countdown to now + initial seconds. nowMs is wall-clock
// milliseconds since epoch.
func (c *Countdown) Start(nowMs int64) {
	c.targetUnix = nowMs + int64(c.initialSecs)*1000
	c.started = true
	if c.initialSecs == 0 {
		c.fire()
	}
}

// Tick recomputes the remaining seconds from the wall clock and returns it.
// The first tick that reaches zero latches the expired flag and fires the
// callback; later ticks are no-ops.
func (c *Countdown) Tick(nowMs int64) int {
	if !c.started || c.expired {
		return c.remaining
	}

	diff := c.targetUnix - nowMs
	rem := int((diff + 999) / 1000) // ceil of ms difference
	if rem < 0 {
		rem = 0
	}
	// Remaining time never increases, even if the clock steps backwards.
	if rem < c.remaining {
		c.remaining = rem
	}

	if c.remaining == 0 {
		c.fire()
	}
	return c.remaining
}

func (c *Countdown) fire() {
	if c.expired {
		return
	}
	c.expired = true
	c.remaining = 0
	if c.onExpire != nil {
		c.onExpire()
	}
}

// Remaining returns the last computed remaining seconds.
func (c *Countdown) Remaining() int {
	return c.remaining
}

// Expired reports whether the countdown has reached zero.
func (c *Countdown) Expired() bool {
	return c.expired
}

// Format renders the remaining time as MM:SS. Hours roll into the minutes
// field (61 minutes renders as 61:00).
func (c *Countdown) Format() string {
	return FormatSeconds(c.remaining)
}

// FormatSeconds renders a second count as MM:SS.
func FormatSeconds(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
