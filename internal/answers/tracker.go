// Package answers tracks per-question attempt state for a running session:
// the selected answer, the review flag and the accumulated time. Every
// mutation re-reads the latest in-memory state, marks the attempt dirty and
// writes it through to the local store in the background.
package answers

import (
	"context"
	"sort"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/abhisek/examdeck/internal/exam"
	"github.com/abhisek/examdeck/internal/store"
)

// Tracker owns Attempt.Answer, MarkedForReview, Status and TimeSpentSecs.
// It is driven from a single event loop; only the in-flight save counter is
// touched from background goroutines.
type Tracker struct {
	sessionID string
	repo      store.SessionRepo // nil disables persistence
	attempts  map[string]*exam.Attempt
	review    map[string]bool
	inFlight  atomic.Int32
}

// NewTracker hydrates a Tracker from previously persisted attempts.
func NewTracker(sessionID string, repo store.SessionRepo, existing []*exam.Attempt) *Tracker {
	t := &Tracker{
		sessionID: sessionID,
		repo:      repo,
		attempts:  make(map[string]*exam.Attempt),
		review:    make(map[string]bool),
	}
	for _, a := range existing {
		t.attempts[a.QuestionID] = a.Clone()
		if a.MarkedForReview {
			t.review[a.QuestionID] = true
		}
	}
	return t
}

// MarkVisited ensures an attempt row exists for the question, created blank
// with status visited. Answered questions are not downgraded.
func (t *Tracker) MarkVisited(questionID string, order int) {
	if _, ok := t.attempts[questionID]; ok {
		return
	}
	a := t.blankAttempt(questionID, order)
	t.attempts[questionID] = a
	t.persist(a)
}

// SelectOption records the learner's answer. A nil answer clears the
// selection and drops the status back to visited. The review flag and the
// accumulated time are preserved.
func (t *Tracker) SelectOption(questionID string, ans *exam.Answer, order int) {
	a, ok := t.attempts[questionID]
	if !ok {
		a = t.blankAttempt(questionID, order)
		t.attempts[questionID] = a
	}
	a.Answer = ans.Clone()
	if a.Answer != nil {
		a.Status = exam.StatusAnswered
	} else {
		a.Status = exam.StatusVisited
	}
	a.Synced = false
	t.persist(a)
}

// UpdateTimeSpent adds deltaSecs to the question's cumulative time. The
// delta is added, never assigned, so time accumulates across repeated
// visits. Non-positive deltas are ignored.
func (t *Tracker) UpdateTimeSpent(questionID string, deltaSecs int, order int) {
	if deltaSecs <= 0 {
		return
	}
	a, ok := t.attempts[questionID]
	if !ok {
		a = t.blankAttempt(questionID, order)
		t.attempts[questionID] = a
	}
	a.TimeSpentSecs += deltaSecs
	a.Synced = false
	t.persist(a)
}

// ToggleReview flips the question's review marking independent of its answer
// state, and returns the new state.
func (t *Tracker) ToggleReview(questionID string, order int) bool {
	a, ok := t.attempts[questionID]
	if !ok {
		a = t.blankAttempt(questionID, order)
		t.attempts[questionID] = a
	}
	marked := !t.review[questionID]
	if marked {
		t.review[questionID] = true
	} else {
		delete(t.review, questionID)
	}
	a.MarkedForReview = marked
	a.Synced = false
	t.persist(a)
	return marked
}

// IsAnswered reports whether a non-null answer is recorded for the question.
func (t *Tracker) IsAnswered(questionID string) bool {
	a, ok := t.attempts[questionID]
	return ok && a.Answered()
}

// IsMarkedForReview reports the review flag.
func (t *Tracker) IsMarkedForReview(questionID string) bool {
	return t.review[questionID]
}

// Get returns the attempt for the question, or nil if none exists yet.
func (t *Tracker) Get(questionID string) *exam.Attempt {
	return t.attempts[questionID]
}

// All returns every attempt ordered by attempt order.
func (t *Tracker) All() []*exam.Attempt {
	out := make([]*exam.Attempt, 0, len(t.attempts))
	for _, a := range t.attempts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// AnsweredCount returns the number of questions with a non-null answer.
func (t *Tracker) AnsweredCount() int {
	n := 0
	for _, a := range t.attempts {
		if a.Answered() {
			n++
		}
	}
	return n
}

// ReviewCount returns the number of questions marked for review.
func (t *Tracker) ReviewCount() int {
	return len(t.review)
}

// Saving reports whether any background saves are still in flight, for UI
// feedback. Overlapping saves are counted, not toggled.
func (t *Tracker) Saving() bool {
	return t.inFlight.Load() > 0
}

func (t *Tracker) blankAttempt(questionID string, order int) *exam.Attempt {
	return &exam.Attempt{
		SessionID:  t.sessionID,
		QuestionID: questionID,
		Order:      order,
		Status:     exam.StatusVisited,
	}
}

// persist writes the attempt through to the local store in the background.
// The attempt is snapshotted first so later mutations don't race the write;
// out-of-order completion is harmless because saves are idempotent upserts.
func (t *Tracker) persist(a *exam.Attempt) {
	if t.repo == nil {
		return
	}
	snapshot := a.Clone()
	t.inFlight.Add(1)
	go func() {
		defer t.inFlight.Add(-1)
		if err := t.repo.SaveAttempt(context.Background(), snapshot); err != nil {
			log.Warn().Err(err).
				Str("session", snapshot.SessionID).
				Str("question", snapshot.QuestionID).
				Msg("attempt autosave failed")
		}
	}()
}
