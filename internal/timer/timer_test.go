package timer

import "testing"

const baseMs = int64(1_700_000_000_000)

func TestCountdownBasicTicks(t *testing.T) {
	c := New(10, nil)
	c.Start(baseMs)

	if got := c.Remaining(); got != 10 {
		t.Fatalf("initial remaining = %d, want 10", got)
	}
	if got := c.Tick(baseMs + 1000); got != 9 {
		t.Errorf("after 1s remaining = %d, want 9", got)
	}
	if got := c.Tick(baseMs + 3000); got != 7 {
		t.Errorf("after 3s remaining = %d, want 7", got)
	}
	if c.Expired() {
		t.Error("expired before reaching zero")
	}
}

func TestCountdownDriftCorrection(t *testing.T) {
	// A stalled host delivers one late tick; the remaining value must jump
	// to the wall-clock truth instead of losing the missed ticks.
	c := New(60, nil)
	c.Start(baseMs)

	c.Tick(baseMs + 1000)
	if got := c.Tick(baseMs + 6000); got != 54 {
		t.Errorf("after 6s wall clock remaining = %d, want 54", got)
	}
}

func TestCountdownCeilPartialSecond(t *testing.T) {
	c := New(10, nil)
	c.Start(baseMs)

	// 500ms in: 9.5s left rounds up to 10.
	if got := c.Tick(baseMs + 500); got != 10 {
		t.Errorf("after 500ms remaining = %d, want 10", got)
	}
	if got := c.Tick(baseMs + 1001); got != 9 {
		t.Errorf("after 1001ms remaining = %d, want 9", got)
	}
}

func TestCountdownNeverIncreases(t *testing.T) {
	c := New(30, nil)
	c.Start(baseMs)

	if got := c.Tick(baseMs + 5000); got != 25 {
		t.Fatalf("remaining = %d, want 25", got)
	}
	// Clock steps backwards; remaining must hold.
	if got := c.Tick(baseMs + 2000); got != 25 {
		t.Errorf("after clock step back remaining = %d, want 25", got)
	}
}

func TestCountdownExpiresExactlyOnce(t *testing.T) {
	fired := 0
	c := New(1, func() { fired++ })
	c.Start(baseMs)

	for i := int64(1); i <= 5; i++ {
		c.Tick(baseMs + i*1000)
	}

	if fired != 1 {
		t.Errorf("onExpire fired %d times, want 1", fired)
	}
	if !c.Expired() {
		t.Error("Expired() = false after reaching zero")
	}
	if got := c.Remaining(); got != 0 {
		t.Errorf("remaining = %d, want 0", got)
	}
}

func TestCountdownZeroInitialFiresOnStart(t *testing.T) {
	fired := 0
	c := New(0, func() { fired++ })
	c.Start(baseMs)

	if fired != 1 {
		t.Errorf("onExpire fired %d times, want 1", fired)
	}
	if !c.Expired() {
		t.Error("Expired() = false for zero-second countdown")
	}
}

func TestCountdownTickBeforeStart(t *testing.T) {
	c := New(10, nil)
	if got := c.Tick(baseMs); got != 10 {
		t.Errorf("tick before start remaining = %d, want 10", got)
	}
	if c.Expired() {
		t.Error("expired before start")
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{65, "01:05"},
		{600, "10:00"},
		{3660, "61:00"},
		{-3, "00:00"},
	}
	for _, tt := range tests {
		if got := FormatSeconds(tt.secs); got != tt.want {
			t.Errorf("FormatSeconds(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}
