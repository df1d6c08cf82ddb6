package exam

import "time"

// SessionStatus enumerates test session states. Ready and Completed are the
// durable states; Submitting and Error exist only inside a running engine and
// are never written to a store.
type SessionStatus string

const (
	SessionReady      SessionStatus = "ready"
	SessionSubmitting SessionStatus = "submitting"
	SessionCompleted  SessionStatus = "completed"
	SessionError      SessionStatus = "error"
)

// TestSession is one timed attempt. The question list is fixed when the
// session is generated and never changes afterwards.
type TestSession struct {
	ID             string
	Title          string
	QuestionIDs    []string
	DurationSecs   int
	RemainingSecs  int
	Status         SessionStatus
	TotalScore     float64
	CorrectCount   int
	AttemptedCount int
	Accuracy       float64
	CompletedAt    *time.Time
	CreatedAt      time.Time
}

// Completed reports whether the session reached its terminal state.
func (s *TestSession) Completed() bool {
	return s.Status == SessionCompleted
}
