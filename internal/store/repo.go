package store

import (
	"context"
	"errors"

	"github.com/abhisek/examdeck/internal/exam"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// SessionBundle is everything needed to run or resume one session.
type SessionBundle struct {
	Session   *exam.TestSession
	Questions []exam.Question
	Attempts  []*exam.Attempt
}

// SessionTotals carries the aggregate fields written when a session is
// finalized.
type SessionTotals struct {
	TotalScore     float64
	CorrectCount   int
	AttemptedCount int
	Accuracy       float64
}

// SessionRepo manages test sessions and their attempts. All attempt writes
// are idempotent upserts keyed by (session id, question id), so out-of-order
// completion of overlapping async saves is harmless.
type SessionRepo interface {
	// CreateSession stores a freshly generated session.
	CreateSession(ctx context.Context, s *exam.TestSession) error

	// GetSession loads a session with its questions and attempts.
	// Returns ErrNotFound if the session does not exist.
	GetSession(ctx context.Context, sessionID string) (*SessionBundle, error)

	// ListSessions returns all sessions, newest first.
	ListSessions(ctx context.Context) ([]*exam.TestSession, error)

	// SaveAttempt upserts one attempt by (session id, question id).
	SaveAttempt(ctx context.Context, a *exam.Attempt) error

	// UpdateAttempts upserts the finalized attempts, writes the session
	// aggregates and marks the session completed. Runs in one transaction.
	UpdateAttempts(ctx context.Context, sessionID string, attempts []*exam.Attempt, totals SessionTotals) error

	// UpdateSessionTimeAndStatus checkpoints the countdown and status.
	UpdateSessionTimeAndStatus(ctx context.Context, sessionID string, remainingSecs int, status exam.SessionStatus) error

	// GetPendingAttempts returns all dirty attempts across all sessions.
	GetPendingAttempts(ctx context.Context) ([]*exam.Attempt, error)

	// MarkAttemptsSynced flips the synced flag for the given attempts.
	MarkAttemptsSynced(ctx context.Context, attempts []*exam.Attempt) error
}

// BankRepo manages the imported question bank.
type BankRepo interface {
	// SaveQuestions upserts questions by question id.
	SaveQuestions(ctx context.Context, qs []exam.Question) error

	// GetQuestions returns the questions for the given ids, in the order
	// requested. Missing ids are skipped.
	GetQuestions(ctx context.Context, ids []string) ([]exam.Question, error)

	// ListQuestions returns the whole bank.
	ListQuestions(ctx context.Context) ([]exam.Question, error)

	// CountQuestions returns the bank size.
	CountQuestions(ctx context.Context) (int, error)

	// Wipe deletes all questions, sessions and attempts.
	Wipe(ctx context.Context) error
}
