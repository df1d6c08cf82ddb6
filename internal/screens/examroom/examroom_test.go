package examroom

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/examdeck/internal/engine"
	"github.com/abhisek/examdeck/internal/exam"
	"github.com/abhisek/examdeck/internal/router"
	"github.com/abhisek/examdeck/internal/store"
)

// mockRepo implements store.SessionRepo over in-memory maps. Attempt saves
// arrive from background goroutines, so everything is mutex guarded.
type mockRepo struct {
	mu       sync.Mutex
	session  *exam.TestSession
	qs       []exam.Question
	attempts map[string]*exam.Attempt
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		session: &exam.TestSession{
			ID:            "s1",
			Title:         "Mock drill",
			QuestionIDs:   []string{"q1", "q2", "q3"},
			DurationSecs:  300,
			RemainingSecs: 300,
			Status:        exam.SessionReady,
		},
		qs: []exam.Question{
			{ID: "q1", Type: exam.Numerical, Prompt: "2+2?", CorrectValue: "4"},
			{ID: "q2", Type: exam.SingleChoice, Prompt: "Pick", Options: []string{"a", "b"}, CorrectOptions: []int{1}},
			{ID: "q3", Type: exam.MultipleChoice, Prompt: "Pick many", Options: []string{"a", "b", "c"}, CorrectOptions: []int{0, 2}},
		},
		attempts: make(map[string]*exam.Attempt),
	}
}

func (m *mockRepo) CreateSession(_ context.Context, _ *exam.TestSession) error { return nil }

func (m *mockRepo) GetSession(_ context.Context, id string) (*store.SessionBundle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id != m.session.ID {
		return nil, store.ErrNotFound
	}
	s := *m.session
	attempts := make([]*exam.Attempt, 0, len(m.attempts))
	for _, a := range m.attempts {
		attempts = append(attempts, a.Clone())
	}
	return &store.SessionBundle{Session: &s, Questions: m.qs, Attempts: attempts}, nil
}

func (m *mockRepo) ListSessions(_ context.Context) ([]*exam.TestSession, error) {
	return []*exam.TestSession{m.session}, nil
}

func (m *mockRepo) SaveAttempt(_ context.Context, a *exam.Attempt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts[a.QuestionID] = a.Clone()
	return nil
}

func (m *mockRepo) UpdateAttempts(_ context.Context, sessionID string, attempts []*exam.Attempt, totals store.SessionTotals) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range attempts {
		m.attempts[a.QuestionID] = a.Clone()
	}
	m.session.Status = exam.SessionCompleted
	m.session.TotalScore = totals.TotalScore
	return nil
}

func (m *mockRepo) UpdateSessionTimeAndStatus(_ context.Context, _ string, remaining int, status exam.SessionStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session.RemainingSecs = remaining
	m.session.Status = status
	return nil
}

func (m *mockRepo) GetPendingAttempts(_ context.Context) ([]*exam.Attempt, error) {
	return nil, nil
}

func (m *mockRepo) MarkAttemptsSynced(_ context.Context, _ []*exam.Attempt) error {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// readyScreen builds an ExamScreen with a loaded engine, past the async
// load phase.
func readyScreen(t *testing.T) (*ExamScreen, *mockRepo) {
	t.Helper()
	repo := newMockRepo()
	s := New(repo, nil, "s1", engine.DefaultOptions(), time.Minute)

	eng, err := engine.Load(context.Background(), repo, nil, "s1", engine.DefaultOptions())
	if err != nil {
		t.Fatalf("load engine: %v", err)
	}
	next, cmd := s.Update(engineReadyMsg{Engine: eng})
	if cmd == nil {
		t.Fatal("expected tick and heartbeat commands after engine ready")
	}
	return next.(*ExamScreen), repo
}

func TestLoadFailureShowsError(t *testing.T) {
	repo := newMockRepo()
	s := New(repo, nil, "missing", engine.DefaultOptions(), time.Minute)

	next, _ := s.Update(engineReadyMsg{Err: store.ErrNotFound})
	s = next.(*ExamScreen)

	view := s.View(80, 24)
	if !strings.Contains(view, "Error") {
		t.Errorf("expected error view, got %q", view)
	}

	// Any key pops back.
	_, cmd := s.Update(keyPress('x'))
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestNavigationKeys(t *testing.T) {
	s, _ := readyScreen(t)

	if got := s.eng.CurrentIndex(); got != 0 {
		t.Fatalf("start index = %d, want 0", got)
	}

	s.Update(keyPress('l'))
	if got := s.eng.CurrentIndex(); got != 1 {
		t.Errorf("index after l = %d, want 1", got)
	}

	s.Update(keyPress('h'))
	if got := s.eng.CurrentIndex(); got != 0 {
		t.Errorf("index after h = %d, want 0", got)
	}
}

func TestReviewToggleKey(t *testing.T) {
	s, _ := readyScreen(t)

	s.Update(keyPress('m'))
	if !s.eng.MarkedForReview(0) {
		t.Error("expected question 0 marked for review")
	}
	s.Update(keyPress('m'))
	if s.eng.MarkedForReview(0) {
		t.Error("expected review mark cleared")
	}
}

func TestChoiceSelection(t *testing.T) {
	s, _ := readyScreen(t)
	s.Update(keyPress('l')) // q2, single choice

	s.Update(keyPress('2'))
	att := s.eng.AttemptAt(1)
	if att == nil || att.Answer == nil {
		t.Fatal("expected an answer on q2")
	}
	if len(att.Answer.Options) != 1 || att.Answer.Options[0] != 1 {
		t.Errorf("answer options = %v, want [1]", att.Answer.Options)
	}
}

func TestSubmitConfirmFlow(t *testing.T) {
	s, _ := readyScreen(t)

	s.Update(keyPress('s'))
	if !s.confirmSubmit {
		t.Fatal("expected submit confirmation")
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Submit the test?") {
		t.Errorf("expected confirm prompt, got %q", view)
	}

	// Declining goes back to the question.
	s.Update(keyPress('n'))
	if s.confirmSubmit {
		t.Error("expected confirmation dismissed")
	}

	// Accepting kicks off the submission command.
	s.Update(keyPress('s'))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected submit command")
	}
	if !s.submitting {
		t.Error("expected submitting state")
	}
}

func TestQuitConfirmFlow(t *testing.T) {
	s, _ := readyScreen(t)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if !s.confirmQuit {
		t.Fatal("expected quit confirmation")
	}

	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestPaletteJump(t *testing.T) {
	s, _ := readyScreen(t)

	s.Update(keyPress('p'))
	if !s.paletteMode {
		t.Fatal("expected palette mode")
	}

	s.Update(keyPress('l')) // cursor to question 2
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.paletteMode {
		t.Error("expected palette closed after jump")
	}
	if got := s.eng.CurrentIndex(); got != 1 {
		t.Errorf("index after palette jump = %d, want 1", got)
	}
}

func TestSubmitDoneReplacesWithSummary(t *testing.T) {
	s, _ := readyScreen(t)

	res, err := s.eng.Submit(context.Background(), engine.TriggerUser)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	_, cmd := s.Update(submitDoneMsg{Result: res})
	if cmd == nil {
		t.Fatal("expected replace command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg")
	}
}

func TestHeaderStatusShowsCountdown(t *testing.T) {
	s, _ := readyScreen(t)

	if got := s.HeaderStatus(); !strings.Contains(got, "05:00") {
		t.Errorf("header status = %q, want countdown 05:00", got)
	}

	s.syncFailed = true
	if got := s.HeaderStatus(); !strings.Contains(got, "sync pending") {
		t.Errorf("header status = %q, want sync pending marker", got)
	}
}
