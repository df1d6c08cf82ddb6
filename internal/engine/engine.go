// Package engine orchestrates one timed test attempt from load to grading:
// it composes the countdown, the navigation tracker and the answer tracker,
// owns the session lifecycle status, checkpoints progress locally and
// reconciles with the results service.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/abhisek/examdeck/internal/answers"
	"github.com/abhisek/examdeck/internal/exam"
	"github.com/abhisek/examdeck/internal/grading"
	"github.com/abhisek/examdeck/internal/nav"
	"github.com/abhisek/examdeck/internal/remote"
	"github.com/abhisek/examdeck/internal/store"
	"github.com/abhisek/examdeck/internal/timer"
)

// ErrSubmitInProgress is returned when Submit is called while a submission
// is already running.
var ErrSubmitInProgress = errors.New("submission already in progress")

// Trigger identifies what initiated a submission.
type Trigger string

const (
	TriggerUser    Trigger = "user"
	TriggerTimeout Trigger = "timeout"
)

// Options tunes engine behavior. The zero value plus DefaultOptions'
// defaults are what production uses.
type Options struct {
	Grading grading.Config

	// CheckpointEvery persists remaining time when it is a multiple of
	// this many seconds. Default 5.
	CheckpointEvery int

	// Clock supplies the current time; tests inject a fake.
	Clock func() time.Time
}

// DefaultOptions returns production defaults.
func DefaultOptions() Options {
	return Options{
		Grading:         grading.DefaultConfig(),
		CheckpointEvery: 5,
		Clock:           time.Now,
	}
}

// TickResult is what one countdown tick produced.
type TickResult struct {
	RemainingSecs int
	Display       string
	// Expired is true only on the tick that reached zero; the host should
	// call Submit with TriggerTimeout.
	Expired bool
}

// Result is the outcome of a completed submission.
type Result struct {
	grading.Result
	Session *exam.TestSession
}

// Engine runs one session. Public methods are safe for concurrent use; the
// TUI calls them from its event loop while heartbeats and submissions run in
// background commands.
type Engine struct {
	mu sync.Mutex

	repo   store.SessionRepo
	remote remote.Client // nil when no results service is configured
	opts   Options

	session   *exam.TestSession
	questions []exam.Question
	qByID     map[string]*exam.Question
	orderOf   map[string]int // question id -> 1-based order

	timer   *timer.Countdown
	nav     *nav.Tracker
	answers *answers.Tracker

	status  exam.SessionStatus
	lastErr error

	openedAt       time.Time // when the current question became current
	lastCheckpoint int       // last remaining value persisted by a tick
	expireHandled  bool
	submitting     bool

	// alive guards late async completions after Teardown: their results
	// are discarded rather than canceled, since all writes are idempotent.
	alive atomic.Bool
}

// Load hydrates an Engine from the local store. A missing session surfaces
// store.ErrNotFound. Loading an already-completed session succeeds with
// status completed; Submit on it is a no-op reconciliation.
func Load(ctx context.Context, repo store.SessionRepo, rc remote.Client, sessionID string, opts Options) (*Engine, error) {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.CheckpointEvery <= 0 {
		opts.CheckpointEvery = 5
	}
	if opts.Grading == (grading.Config{}) {
		opts.Grading = grading.DefaultConfig()
	}

	bundle, err := repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	e := &Engine{
		repo:           repo,
		remote:         rc,
		opts:           opts,
		session:        bundle.Session,
		questions:      bundle.Questions,
		qByID:          make(map[string]*exam.Question, len(bundle.Questions)),
		orderOf:        make(map[string]int, len(bundle.Session.QuestionIDs)),
		status:         bundle.Session.Status,
		lastCheckpoint: bundle.Session.RemainingSecs,
	}
	for i := range e.questions {
		e.qByID[e.questions[i].ID] = &e.questions[i]
	}
	for i, id := range bundle.Session.QuestionIDs {
		e.orderOf[id] = i + 1
	}

	e.nav = nav.NewTracker(len(bundle.Session.QuestionIDs))
	e.answers = answers.NewTracker(sessionID, repo, bundle.Attempts)
	for _, a := range bundle.Attempts {
		if a.Status != exam.StatusUnvisited {
			e.nav.MarkVisited(a.Order - 1)
		}
	}

	e.timer = timer.New(bundle.Session.RemainingSecs, nil)
	e.alive.Store(true)
	return e, nil
}

// Start anchors the countdown and opens the first question. Call once, when
// the session becomes visible.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.opts.Clock()
	e.timer.Start(now.UnixMilli())
	e.openedAt = now
	if e.status == exam.SessionReady {
		if qid, ok := e.currentQuestionID(); ok {
			e.answers.MarkVisited(qid, e.orderOf[qid])
		}
	}
}

// TimerTick advances the countdown by one host tick. The tick's wall-clock
// time comes from the host so a delayed tick self-corrects. Every time the
// remaining value crosses a checkpoint multiple the session row is
// checkpointed in the background.
func (e *Engine) TimerTick(now time.Time) TickResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	wasExpired := e.timer.Expired()
	rem := e.timer.Tick(now.UnixMilli())
	e.session.RemainingSecs = rem

	res := TickResult{
		RemainingSecs: rem,
		Display:       e.timer.Format(),
	}

	if e.timer.Expired() && !wasExpired && !e.expireHandled && e.status == exam.SessionReady {
		e.expireHandled = true
		res.Expired = true
	}

	if e.status == exam.SessionReady && rem%e.opts.CheckpointEvery == 0 && rem != e.lastCheckpoint {
		e.lastCheckpoint = rem
		e.checkpointAsync(rem, exam.SessionReady)
	}

	return res
}

// Next moves forward one question, committing elapsed time on the question
// being left first. Returns false at the last question.
func (e *Engine) Next() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.move(func() bool { return e.nav.Next() })
}

// Prev moves back one question. Returns false at the first question.
func (e *Engine) Prev() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.move(func() bool { return e.nav.Prev() })
}

// JumpTo moves directly to question index i. Returns false out of range.
func (e *Engine) JumpTo(i int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.move(func() bool { return e.nav.JumpTo(i) })
}

// move commits time on the question being left, then applies the cursor
// movement and opens the destination.
func (e *Engine) move(step func() bool) bool {
	e.commitElapsed()
	if !step() {
		return false
	}
	if qid, ok := e.currentQuestionID(); ok {
		e.answers.MarkVisited(qid, e.orderOf[qid])
	}
	return true
}

// SelectAnswer records an answer for the current question. nil clears it.
func (e *Engine) SelectAnswer(ans *exam.Answer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if qid, ok := e.currentQuestionID(); ok {
		e.answers.SelectOption(qid, ans, e.orderOf[qid])
	}
}

// ToggleReview flips the review marking on the current question and returns
// the new state.
func (e *Engine) ToggleReview() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	qid, ok := e.currentQuestionID()
	if !ok {
		return false
	}
	return e.answers.ToggleReview(qid, e.orderOf[qid])
}

// Heartbeat pushes the current remaining time and all dirty attempts to the
// results service, flipping their synced flags on acknowledgment. Failures
// are logged and reported but never change the session status; the next
// heartbeat simply retries. A no-op when no remote is configured or the
// session has left the active states.
func (e *Engine) Heartbeat(ctx context.Context) error {
	e.mu.Lock()
	if e.remote == nil || (e.status != exam.SessionReady && e.status != exam.SessionSubmitting) {
		e.mu.Unlock()
		return nil
	}
	// Identity and countdown only. Status and aggregates are reserved for
	// submission so a beat that lands after the final push leaves the
	// completed remote record intact.
	upd := remote.SessionUpdate{
		SessionID:     e.session.ID,
		RemainingSecs: e.session.RemainingSecs,
	}
	e.mu.Unlock()

	if err := e.remote.UpdateSession(ctx, upd); err != nil {
		log.Warn().Err(err).Str("session", upd.SessionID).Msg("heartbeat session push failed")
		return err
	}

	if err := e.pushPending(ctx); err != nil {
		log.Warn().Err(err).Str("session", upd.SessionID).Msg("heartbeat attempt push failed")
		return err
	}
	return nil
}

// pushPending uploads every dirty attempt (any session) and marks the
// acknowledged ones synced locally.
func (e *Engine) pushPending(ctx context.Context) error {
	pending, err := e.repo.GetPendingAttempts(ctx)
	if err != nil {
		return fmt.Errorf("read pending attempts: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	bySession := make(map[string][]*exam.Attempt)
	order := make([]string, 0)
	for _, a := range pending {
		if _, seen := bySession[a.SessionID]; !seen {
			order = append(order, a.SessionID)
		}
		bySession[a.SessionID] = append(bySession[a.SessionID], a)
	}

	for _, sid := range order {
		batch := bySession[sid]
		payload := make([]remote.AttemptUpsert, 0, len(batch))
		for _, a := range batch {
			payload = append(payload, remote.AttemptPayload(a))
		}
		if err := e.remote.UpsertAttempts(ctx, sid, payload); err != nil {
			return fmt.Errorf("push attempts for %s: %w", sid, err)
		}
		if err := e.repo.MarkAttemptsSynced(ctx, batch); err != nil {
			return fmt.Errorf("mark attempts synced: %w", err)
		}
	}
	return nil
}

// Submit grades the session and persists the outcome. Submission is
// idempotent: a session already completed in the local store is not
// re-graded, only reconciled with the remote. Any failure surfaces status
// error; a new Submit must be user-triggered.
func (e *Engine) Submit(ctx context.Context, trigger Trigger) (*Result, error) {
	e.mu.Lock()
	if e.submitting {
		e.mu.Unlock()
		return nil, ErrSubmitInProgress
	}
	if e.status != exam.SessionReady && e.status != exam.SessionError && e.status != exam.SessionCompleted {
		e.mu.Unlock()
		return nil, ErrSubmitInProgress
	}
	e.submitting = true
	e.status = exam.SessionSubmitting

	// Commit the elapsed time on the currently open question before
	// anything is graded.
	e.commitElapsed()

	sessionID := e.session.ID
	remaining := e.session.RemainingSecs
	attempts := cloneAll(e.answers.All())
	questions := e.questions
	cfg := e.opts.Grading
	e.mu.Unlock()

	log.Info().Str("session", sessionID).Str("trigger", string(trigger)).Msg("submitting session")

	res, err := e.submit(ctx, sessionID, remaining, attempts, questions, cfg)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.submitting = false
	if err != nil {
		e.status = exam.SessionError
		e.lastErr = err
		log.Error().Err(err).Str("session", sessionID).Msg("submission failed")
		return nil, err
	}
	e.status = exam.SessionCompleted
	e.lastErr = nil
	e.session = res.Session
	return res, nil
}

func (e *Engine) submit(ctx context.Context, sessionID string, remaining int, attempts []*exam.Attempt, questions []exam.Question, cfg grading.Config) (*Result, error) {
	// Idempotency check: if a previous submission already completed the
	// session locally, skip grading and only reconcile the remote.
	bundle, err := e.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("re-read session: %w", err)
	}

	var (
		finalSession *exam.TestSession
		finalized    []*exam.Attempt
		graded       grading.Result
	)

	if bundle.Session.Completed() {
		finalSession = bundle.Session
		finalized = bundle.Attempts
		graded = gradedFromSession(bundle)
	} else {
		graded = grading.Grade(attempts, questions, cfg)
		totals := store.SessionTotals{
			TotalScore:     graded.TotalScore,
			CorrectCount:   graded.CorrectCount,
			AttemptedCount: graded.AttemptedCount(),
			Accuracy:       graded.Accuracy,
		}
		if err := e.repo.UpdateAttempts(ctx, sessionID, graded.Attempts, totals); err != nil {
			return nil, fmt.Errorf("persist graded attempts: %w", err)
		}

		now := e.opts.Clock()
		finalSession = bundle.Session
		finalSession.Status = exam.SessionCompleted
		finalSession.RemainingSecs = remaining
		finalSession.TotalScore = totals.TotalScore
		finalSession.CorrectCount = totals.CorrectCount
		finalSession.AttemptedCount = totals.AttemptedCount
		finalSession.Accuracy = totals.Accuracy
		finalSession.CompletedAt = &now
		finalized = graded.Attempts
	}

	if e.remote != nil {
		upd := remote.SessionUpdate{
			SessionID:     sessionID,
			RemainingSecs: finalSession.RemainingSecs,
			Status:        string(exam.SessionCompleted),
			CompletedAt:   finalSession.CompletedAt,
			Result: &remote.SessionResult{
				TotalScore:     finalSession.TotalScore,
				Accuracy:       finalSession.Accuracy,
				CorrectCount:   finalSession.CorrectCount,
				AttemptedCount: finalSession.AttemptedCount,
			},
		}
		if err := e.remote.UpdateSession(ctx, upd); err != nil {
			return nil, fmt.Errorf("push final session: %w", err)
		}

		payload := make([]remote.AttemptUpsert, 0, len(finalized))
		for _, a := range finalized {
			payload = append(payload, remote.AttemptPayload(a))
		}
		if err := e.remote.UpsertAttempts(ctx, sessionID, payload); err != nil {
			return nil, fmt.Errorf("push final attempts: %w", err)
		}
		if err := e.repo.MarkAttemptsSynced(ctx, finalized); err != nil {
			return nil, fmt.Errorf("mark final attempts synced: %w", err)
		}
	}

	graded.Attempts = finalized
	return &Result{Result: graded, Session: finalSession}, nil
}

// Teardown must be called by the host before discarding the engine: it
// commits elapsed time, checkpoints the countdown unconditionally, and flips
// the liveness flag so late async completions are discarded.
func (e *Engine) Teardown(ctx context.Context) {
	e.mu.Lock()
	e.commitElapsed()
	e.alive.Store(false)
	sessionID := e.session.ID
	remaining := e.session.RemainingSecs
	// Only the durable statuses are ever checkpointed.
	status := exam.SessionReady
	if e.status == exam.SessionCompleted {
		status = exam.SessionCompleted
	}
	e.mu.Unlock()

	if err := e.repo.UpdateSessionTimeAndStatus(ctx, sessionID, remaining, status); err != nil {
		log.Warn().Err(err).Str("session", sessionID).Msg("teardown checkpoint failed")
	}
}

// commitElapsed adds the wall-clock time since the current question opened
// to its attempt, then resets the open timestamp. Callers hold e.mu.
func (e *Engine) commitElapsed() {
	now := e.opts.Clock()
	if e.openedAt.IsZero() {
		e.openedAt = now
		return
	}
	delta := int(now.Sub(e.openedAt).Seconds())
	e.openedAt = now
	if delta <= 0 {
		return
	}
	if qid, ok := e.currentQuestionID(); ok {
		e.answers.UpdateTimeSpent(qid, delta, e.orderOf[qid])
	}
}

// checkpointAsync persists remaining time in the background; failures only
// cost a few seconds of countdown fidelity on the next load.
func (e *Engine) checkpointAsync(remaining int, status exam.SessionStatus) {
	sessionID := e.session.ID
	go func() {
		if !e.alive.Load() {
			return
		}
		if err := e.repo.UpdateSessionTimeAndStatus(context.Background(), sessionID, remaining, status); err != nil {
			if e.alive.Load() {
				log.Warn().Err(err).Str("session", sessionID).Msg("countdown checkpoint failed")
			}
		}
	}()
}

func (e *Engine) currentQuestionID() (string, bool) {
	i := e.nav.Current()
	if i < 0 || i >= len(e.session.QuestionIDs) {
		return "", false
	}
	return e.session.QuestionIDs[i], true
}

func cloneAll(attempts []*exam.Attempt) []*exam.Attempt {
	out := make([]*exam.Attempt, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, a.Clone())
	}
	return out
}

// gradedFromSession rebuilds a grading result view from already-finalized
// store rows, for idempotent re-submits.
func gradedFromSession(bundle *store.SessionBundle) grading.Result {
	res := grading.Result{
		TotalScore: bundle.Session.TotalScore,
		Accuracy:   bundle.Session.Accuracy,
		Attempts:   bundle.Attempts,
	}
	for _, a := range bundle.Attempts {
		switch a.Status {
		case exam.StatusCorrect:
			res.CorrectCount++
		case exam.StatusIncorrect:
			res.IncorrectCount++
		case exam.StatusSkipped:
			res.UnattemptedCount++
		}
	}
	return res
}
