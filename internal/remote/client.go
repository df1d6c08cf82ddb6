// Package remote talks to the results service: the cross-device system of
// record for sessions and attempts. Both calls are idempotent upserts keyed
// by natural identity, so heartbeats, retries and late submissions can repeat
// payloads safely.
package remote

import (
	"context"
	"time"

	"github.com/abhisek/examdeck/internal/exam"
)

// SessionUpdate is the remote session record payload. The service applies
// it as a partial upsert: absent fields leave the stored record untouched.
// Heartbeats send only the identity and the countdown, so a beat delivered
// after the final submission cannot revert the completed record.
type SessionUpdate struct {
	SessionID     string         `json:"session_id"`
	RemainingSecs int            `json:"remaining_secs"`
	Status        string         `json:"status,omitempty"`
	CompletedAt   *time.Time     `json:"completed_at,omitempty"`
	Result        *SessionResult `json:"result,omitempty"`
}

// SessionResult holds the graded aggregates. Only the final submission
// sets it.
type SessionResult struct {
	TotalScore     float64 `json:"total_score"`
	Accuracy       float64 `json:"accuracy"`
	CorrectCount   int     `json:"correct_count"`
	AttemptedCount int     `json:"attempted_count"`
}

// AttemptUpsert is one attempt row payload, keyed remotely by
// (session id, question id).
type AttemptUpsert struct {
	QuestionID      string       `json:"question_id"`
	Order           int          `json:"attempt_order"`
	Answer          *exam.Answer `json:"answer,omitempty"`
	MarkedForReview bool         `json:"marked_for_review"`
	Status          string       `json:"status"`
	IsCorrect       *bool        `json:"is_correct,omitempty"`
	Score           float64      `json:"score"`
	TimeSpentSecs   int          `json:"time_spent_secs"`
}

// Client is the results-service interface consumed by the engine. Both
// methods must be safe to repeat with identical payloads.
type Client interface {
	// UpdateSession upserts the session record.
	UpdateSession(ctx context.Context, upd SessionUpdate) error

	// UpsertAttempts upserts attempt rows for one session.
	UpsertAttempts(ctx context.Context, sessionID string, attempts []AttemptUpsert) error
}

// AttemptPayload converts a local attempt to its remote representation.
func AttemptPayload(a *exam.Attempt) AttemptUpsert {
	return AttemptUpsert{
		QuestionID:      a.QuestionID,
		Order:           a.Order,
		Answer:          a.Answer.Clone(),
		MarkedForReview: a.MarkedForReview,
		Status:          string(a.Status),
		IsCorrect:       a.IsCorrect,
		Score:           a.Score,
		TimeSpentSecs:   a.TimeSpentSecs,
	}
}
