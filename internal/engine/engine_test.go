package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/examdeck/internal/exam"
	"github.com/abhisek/examdeck/internal/remote"
	"github.com/abhisek/examdeck/internal/store"
)

// fakeRepo is an in-memory store.SessionRepo. Attempt autosaves run on
// background goroutines, so every method locks.
type fakeRepo struct {
	mu sync.Mutex

	session   *exam.TestSession
	questions []exam.Question
	attempts  map[string]*exam.Attempt

	updateAttemptsCalls int
	checkpoints         []checkpoint
}

type checkpoint struct {
	remaining int
	status    exam.SessionStatus
}

func newFakeRepo(s exam.TestSession, qs []exam.Question) *fakeRepo {
	return &fakeRepo{
		session:   &s,
		questions: qs,
		attempts:  make(map[string]*exam.Attempt),
	}
}

func (r *fakeRepo) CreateSession(ctx context.Context, s *exam.TestSession) error {
	return errors.New("not used")
}

func (r *fakeRepo) GetSession(ctx context.Context, sessionID string) (*store.SessionBundle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session == nil || r.session.ID != sessionID {
		return nil, store.ErrNotFound
	}
	s := *r.session
	var attempts []*exam.Attempt
	for _, a := range r.attempts {
		attempts = append(attempts, a.Clone())
	}
	return &store.SessionBundle{
		Session:   &s,
		Questions: append([]exam.Question(nil), r.questions...),
		Attempts:  attempts,
	}, nil
}

func (r *fakeRepo) ListSessions(ctx context.Context) ([]*exam.TestSession, error) {
	return nil, nil
}

func (r *fakeRepo) SaveAttempt(ctx context.Context, a *exam.Attempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts[a.QuestionID] = a.Clone()
	return nil
}

func (r *fakeRepo) UpdateAttempts(ctx context.Context, sessionID string, attempts []*exam.Attempt, totals store.SessionTotals) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateAttemptsCalls++
	for _, a := range attempts {
		r.attempts[a.QuestionID] = a.Clone()
	}
	r.session.Status = exam.SessionCompleted
	r.session.TotalScore = totals.TotalScore
	r.session.CorrectCount = totals.CorrectCount
	r.session.AttemptedCount = totals.AttemptedCount
	r.session.Accuracy = totals.Accuracy
	now := time.Now()
	r.session.CompletedAt = &now
	return nil
}

func (r *fakeRepo) UpdateSessionTimeAndStatus(ctx context.Context, sessionID string, remainingSecs int, status exam.SessionStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session.RemainingSecs = remainingSecs
	r.checkpoints = append(r.checkpoints, checkpoint{remainingSecs, status})
	return nil
}

func (r *fakeRepo) GetPendingAttempts(ctx context.Context) ([]*exam.Attempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*exam.Attempt
	for _, a := range r.attempts {
		if !a.Synced {
			out = append(out, a.Clone())
		}
	}
	return out, nil
}

func (r *fakeRepo) MarkAttemptsSynced(ctx context.Context, attempts []*exam.Attempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range attempts {
		if stored, ok := r.attempts[a.QuestionID]; ok {
			stored.Synced = true
		}
	}
	return nil
}

var _ store.SessionRepo = (*fakeRepo)(nil)

// fakeClock advances only when told to.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
	return c.t
}

func testSession(remaining int) exam.TestSession {
	return exam.TestSession{
		ID:            "s1",
		Title:         "Mock Test",
		QuestionIDs:   []string{"q1", "q2", "q3"},
		DurationSecs:  600,
		RemainingSecs: remaining,
		Status:        exam.SessionReady,
	}
}

func testQuestions() []exam.Question {
	return []exam.Question{
		{ID: "q1", Type: exam.Numerical, CorrectValue: "42", Marks: 1},
		{ID: "q2", Type: exam.SingleChoice, Options: []string{"a", "b", "c", "d"}, CorrectOptions: []int{1}, Marks: 2},
		{ID: "q3", Type: exam.MultipleChoice, Options: []string{"a", "b", "c", "d"}, CorrectOptions: []int{0, 2}, Marks: 2},
	}
}

func loadEngine(t *testing.T, repo *fakeRepo, rc remote.Client, clk *fakeClock) *Engine {
	t.Helper()
	opts := DefaultOptions()
	opts.Clock = clk.Now
	eng, err := Load(context.Background(), repo, rc, "s1", opts)
	require.NoError(t, err)
	return eng
}

// waitIdle blocks until the tracker's background saves have landed.
func waitIdle(t *testing.T, eng *Engine) {
	t.Helper()
	require.Eventually(t, func() bool { return !eng.Saving() },
		time.Second, 2*time.Millisecond)
}

func TestLoadMissingSession(t *testing.T) {
	repo := newFakeRepo(testSession(600), testQuestions())
	opts := DefaultOptions()
	_, err := Load(context.Background(), repo, nil, "nope", opts)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestStartOpensFirstQuestion(t *testing.T) {
	repo := newFakeRepo(testSession(600), testQuestions())
	clk := newFakeClock()
	eng := loadEngine(t, repo, nil, clk)
	eng.Start()

	require.Equal(t, 0, eng.CurrentIndex())
	require.True(t, eng.Visited(0))
	att := eng.AttemptAt(0)
	require.NotNil(t, att)
	require.Equal(t, exam.StatusVisited, att.Status)
}

func TestTimerTickExpiresOnce(t *testing.T) {
	repo := newFakeRepo(testSession(2), testQuestions())
	clk := newFakeClock()
	eng := loadEngine(t, repo, nil, clk)
	eng.Start()

	res := eng.TimerTick(clk.Advance(time.Second))
	require.Equal(t, 1, res.RemainingSecs)
	require.False(t, res.Expired)

	res = eng.TimerTick(clk.Advance(time.Second))
	require.True(t, res.Expired)
	require.Equal(t, 0, res.RemainingSecs)
	require.Equal(t, "00:00", res.Display)

	// Later ticks never re-report expiry.
	for i := 0; i < 3; i++ {
		res = eng.TimerTick(clk.Advance(time.Second))
		require.False(t, res.Expired)
	}
}

func TestTimerTickDriftJump(t *testing.T) {
	repo := newFakeRepo(testSession(60), testQuestions())
	clk := newFakeClock()
	eng := loadEngine(t, repo, nil, clk)
	eng.Start()

	// One delayed tick lands 5s late.
	res := eng.TimerTick(clk.Advance(5 * time.Second))
	require.Equal(t, 55, res.RemainingSecs)
}

func TestNavigationCommitsElapsedTime(t *testing.T) {
	repo := newFakeRepo(testSession(600), testQuestions())
	clk := newFakeClock()
	eng := loadEngine(t, repo, nil, clk)
	eng.Start()

	clk.Advance(25 * time.Second)
	require.True(t, eng.Next())

	att := eng.AttemptAt(0)
	require.Equal(t, 25, att.TimeSpentSecs)

	// Return and spend more; time accumulates.
	clk.Advance(10 * time.Second)
	require.True(t, eng.Prev())
	clk.Advance(30 * time.Second)
	require.True(t, eng.Next())

	att = eng.AttemptAt(0)
	require.Equal(t, 55, att.TimeSpentSecs)
}

func TestAnswerAndReviewFlow(t *testing.T) {
	repo := newFakeRepo(testSession(600), testQuestions())
	clk := newFakeClock()
	eng := loadEngine(t, repo, nil, clk)
	eng.Start()

	eng.SelectAnswer(&exam.Answer{Value: "42"})
	require.True(t, eng.Answered(0))
	require.Equal(t, 1, eng.AnsweredCount())

	require.True(t, eng.ToggleReview())
	require.True(t, eng.MarkedForReview(0))

	eng.SelectAnswer(nil)
	require.False(t, eng.Answered(0))
	require.True(t, eng.MarkedForReview(0), "review flag must survive clearing")
}

func TestSubmitGradesAndCompletes(t *testing.T) {
	repo := newFakeRepo(testSession(600), testQuestions())
	clk := newFakeClock()
	eng := loadEngine(t, repo, nil, clk)
	eng.Start()

	eng.SelectAnswer(&exam.Answer{Value: "42"}) // correct, +1
	eng.Next()
	eng.SelectAnswer(&exam.Answer{Options: []int{0}}) // wrong, -2/3
	waitIdle(t, eng)

	res, err := eng.Submit(context.Background(), TriggerUser)
	require.NoError(t, err)

	require.Equal(t, exam.SessionCompleted, eng.Status())
	require.InDelta(t, 1.0-2.0/3.0, res.TotalScore, 1e-9)
	require.Equal(t, 1, res.CorrectCount)
	require.Equal(t, 1, res.IncorrectCount)
	require.Equal(t, 1, res.UnattemptedCount)
	require.NotNil(t, res.Session.CompletedAt)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	require.Equal(t, exam.SessionCompleted, repo.session.Status)
	require.Equal(t, 1, repo.updateAttemptsCalls)
}

func TestSubmitIsIdempotent(t *testing.T) {
	repo := newFakeRepo(testSession(600), testQuestions())
	clk := newFakeClock()
	eng := loadEngine(t, repo, nil, clk)
	eng.Start()

	eng.SelectAnswer(&exam.Answer{Value: "42"})
	waitIdle(t, eng)

	first, err := eng.Submit(context.Background(), TriggerUser)
	require.NoError(t, err)

	second, err := eng.Submit(context.Background(), TriggerUser)
	require.NoError(t, err)

	require.Equal(t, first.TotalScore, second.TotalScore)
	require.Equal(t, first.CorrectCount, second.CorrectCount)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	require.Equal(t, 1, repo.updateAttemptsCalls, "re-submit must not re-grade")
}

func TestSubmitRemoteFailureThenRetry(t *testing.T) {
	repo := newFakeRepo(testSession(600), testQuestions())
	clk := newFakeClock()
	mock := remote.NewMock()
	mock.QueueSessionErr(errors.New("service down"))
	eng := loadEngine(t, repo, mock, clk)
	eng.Start()

	eng.SelectAnswer(&exam.Answer{Value: "42"})
	waitIdle(t, eng)

	_, err := eng.Submit(context.Background(), TriggerTimeout)
	require.Error(t, err)
	require.Equal(t, exam.SessionError, eng.Status())
	require.Error(t, eng.Err())

	// Local grading already committed; the retry only reconciles.
	res, err := eng.Submit(context.Background(), TriggerUser)
	require.NoError(t, err)
	require.Equal(t, exam.SessionCompleted, eng.Status())
	require.InDelta(t, 1.0, res.TotalScore, 1e-9)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	require.Equal(t, 1, repo.updateAttemptsCalls)
}

func TestHeartbeatOfflineIsNoop(t *testing.T) {
	repo := newFakeRepo(testSession(600), testQuestions())
	clk := newFakeClock()
	eng := loadEngine(t, repo, nil, clk)
	eng.Start()

	require.NoError(t, eng.Heartbeat(context.Background()))
}

func TestHeartbeatPushesDirtyAttempts(t *testing.T) {
	repo := newFakeRepo(testSession(600), testQuestions())
	clk := newFakeClock()
	mock := remote.NewMock()
	eng := loadEngine(t, repo, mock, clk)
	eng.Start()

	eng.SelectAnswer(&exam.Answer{Value: "42"})
	waitIdle(t, eng)

	require.NoError(t, eng.Heartbeat(context.Background()))

	require.Len(t, mock.SessionCalls, 1)
	require.Equal(t, "s1", mock.SessionCalls[0].SessionID)
	require.Len(t, mock.AttemptCalls, 1)
	require.Equal(t, "s1", mock.AttemptCalls[0].SessionID)

	pending, err := repo.GetPendingAttempts(context.Background())
	require.NoError(t, err)
	require.Empty(t, pending, "acknowledged attempts must be marked synced")

	// A clean second heartbeat pushes the session but no attempts.
	require.NoError(t, eng.Heartbeat(context.Background()))
	require.Len(t, mock.AttemptCalls, 1)
}

func TestHeartbeatFailureKeepsAttemptsDirty(t *testing.T) {
	repo := newFakeRepo(testSession(600), testQuestions())
	clk := newFakeClock()
	mock := remote.NewMock()
	mock.QueueAttemptErr(errors.New("rate limited"))
	eng := loadEngine(t, repo, mock, clk)
	eng.Start()

	eng.SelectAnswer(&exam.Answer{Value: "42"})
	waitIdle(t, eng)

	require.Error(t, eng.Heartbeat(context.Background()))
	require.Equal(t, exam.SessionReady, eng.Status(), "heartbeat failures never change status")

	pending, err := repo.GetPendingAttempts(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)

	// The next heartbeat retries and succeeds.
	require.NoError(t, eng.Heartbeat(context.Background()))
	pending, err = repo.GetPendingAttempts(context.Background())
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestHeartbeatCannotRevertCompletedRemote(t *testing.T) {
	repo := newFakeRepo(testSession(600), testQuestions())
	clk := newFakeClock()
	mock := remote.NewMock()
	eng := loadEngine(t, repo, mock, clk)
	eng.Start()

	eng.SelectAnswer(&exam.Answer{Value: "42"})
	waitIdle(t, eng)
	require.NoError(t, eng.Heartbeat(context.Background()))

	res, err := eng.Submit(context.Background(), TriggerUser)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(mock.SessionCalls), 2)
	beat := mock.SessionCalls[0]
	final := mock.SessionCalls[len(mock.SessionCalls)-1]

	// Heartbeats carry identity and countdown only. Even one delivered
	// after the final push has no status or aggregates to write, so the
	// completed remote record survives it.
	require.Empty(t, beat.Status)
	require.Nil(t, beat.Result)
	require.Nil(t, beat.CompletedAt)
	require.NotZero(t, beat.RemainingSecs)

	require.Equal(t, string(exam.SessionCompleted), final.Status)
	require.NotNil(t, final.CompletedAt)
	require.NotNil(t, final.Result)
	require.InDelta(t, res.TotalScore, final.Result.TotalScore, 1e-9)
	require.Equal(t, res.CorrectCount, final.Result.CorrectCount)
}

func TestTeardownCheckpointsDurableStatus(t *testing.T) {
	repo := newFakeRepo(testSession(600), testQuestions())
	clk := newFakeClock()
	eng := loadEngine(t, repo, nil, clk)
	eng.Start()

	clk.Advance(40 * time.Second)
	eng.TimerTick(clk.Now())
	eng.Teardown(context.Background())

	repo.mu.Lock()
	defer repo.mu.Unlock()
	require.NotEmpty(t, repo.checkpoints)
	last := repo.checkpoints[len(repo.checkpoints)-1]
	require.Equal(t, exam.SessionReady, last.status)
	require.Equal(t, 560, last.remaining)
}

func TestResumeRestoresProgress(t *testing.T) {
	repo := newFakeRepo(testSession(600), testQuestions())
	clk := newFakeClock()
	eng := loadEngine(t, repo, nil, clk)
	eng.Start()

	eng.SelectAnswer(&exam.Answer{Value: "42"})
	eng.Next()
	eng.ToggleReview()
	waitIdle(t, eng)
	clk.Advance(100 * time.Second)
	eng.TimerTick(clk.Now())
	eng.Teardown(context.Background())

	// A fresh engine picks up where the old one stopped.
	resumed := loadEngine(t, repo, nil, clk)
	resumed.Start()

	require.Equal(t, 500, resumed.Session().RemainingSecs)
	require.True(t, resumed.Answered(0))
	require.True(t, resumed.MarkedForReview(1))
	require.True(t, resumed.Visited(0))
	require.True(t, resumed.Visited(1))
	require.False(t, resumed.Visited(2))
}
