package examroom

import (
	"time"

	"github.com/abhisek/examdeck/internal/engine"
)

// engineReadyMsg is sent when the session engine finished loading.
type engineReadyMsg struct {
	Engine *engine.Engine
	Err    error
}

// timerTickMsg is sent every second to advance the countdown.
type timerTickMsg time.Time

// heartbeatTickMsg is sent on the heartbeat cadence.
type heartbeatTickMsg time.Time

// heartbeatDoneMsg reports the outcome of a background heartbeat.
type heartbeatDoneMsg struct {
	Err error
}

// submitDoneMsg reports the outcome of a background submission.
type submitDoneMsg struct {
	Result *engine.Result
	Err    error
}
