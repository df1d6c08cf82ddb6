package engine

import (
	"github.com/abhisek/examdeck/internal/exam"
)

// Status returns the current lifecycle status.
func (e *Engine) Status() exam.SessionStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// Err returns the error that moved the engine into the error status, if any.
func (e *Engine) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}

// Session returns the session snapshot.
func (e *Engine) Session() *exam.TestSession {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := *e.session
	return &s
}

// QuestionCount returns the number of questions in the session.
func (e *Engine) QuestionCount() int {
	return len(e.session.QuestionIDs)
}

// CurrentIndex returns the 0-based index of the open question.
func (e *Engine) CurrentIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.nav.Current()
}

// CurrentQuestion returns the open question, or nil if the session has no
// loadable question at the cursor (a missing definition).
func (e *Engine) CurrentQuestion() *exam.Question {
	e.mu.Lock()
	defer e.mu.Unlock()
	qid, ok := e.currentQuestionID()
	if !ok {
		return nil
	}
	return e.qByID[qid]
}

// QuestionAt returns the question at index i, or nil.
func (e *Engine) QuestionAt(i int) *exam.Question {
	if i < 0 || i >= len(e.session.QuestionIDs) {
		return nil
	}
	return e.qByID[e.session.QuestionIDs[i]]
}

// AttemptAt returns the attempt for the question at index i, or nil if none
// exists yet.
func (e *Engine) AttemptAt(i int) *exam.Attempt {
	e.mu.Lock()
	defer e.mu.Unlock()
	if i < 0 || i >= len(e.session.QuestionIDs) {
		return nil
	}
	return e.answers.Get(e.session.QuestionIDs[i])
}

// Visited reports whether the question at index i has been visited.
func (e *Engine) Visited(i int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.nav.Visited(i)
}

// MarkedForReview reports the review flag for the question at index i.
func (e *Engine) MarkedForReview(i int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if i < 0 || i >= len(e.session.QuestionIDs) {
		return false
	}
	return e.answers.IsMarkedForReview(e.session.QuestionIDs[i])
}

// Answered reports whether the question at index i has a recorded answer.
func (e *Engine) Answered(i int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if i < 0 || i >= len(e.session.QuestionIDs) {
		return false
	}
	return e.answers.IsAnswered(e.session.QuestionIDs[i])
}

// AnsweredCount returns how many questions have a recorded answer.
func (e *Engine) AnsweredCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.answers.AnsweredCount()
}

// ReviewCount returns how many questions are marked for review.
func (e *Engine) ReviewCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.answers.ReviewCount()
}

// Saving reports whether attempt autosaves are still in flight.
func (e *Engine) Saving() bool {
	return e.answers.Saving()
}

// RemainingDisplay returns the countdown formatted as MM:SS.
func (e *Engine) RemainingDisplay() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timer.Format()
}

// Expired reports whether the countdown reached zero.
func (e *Engine) Expired() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timer.Expired()
}
