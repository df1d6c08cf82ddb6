package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/examdeck/internal/exam"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedQuestions(t *testing.T, repo BankRepo) {
	t.Helper()
	err := repo.SaveQuestions(context.Background(), []exam.Question{
		{ID: "q1", Type: exam.Numerical, Prompt: "2+2?", CorrectValue: "4", Subject: "math"},
		{ID: "q2", Type: exam.SingleChoice, Prompt: "Pick one", Options: []string{"a", "b"}, CorrectOptions: []int{1}},
		{ID: "q3", Type: exam.MultipleChoice, Prompt: "Pick many", Options: []string{"a", "b", "c"}, CorrectOptions: []int{0, 2}},
	})
	if err != nil {
		t.Fatalf("seed questions: %v", err)
	}
}

func seedSession(t *testing.T, repo SessionRepo, id string, questionIDs []string) {
	t.Helper()
	err := repo.CreateSession(context.Background(), &exam.TestSession{
		ID:            id,
		Title:         "Test " + id,
		QuestionIDs:   questionIDs,
		DurationSecs:  600,
		RemainingSecs: 600,
		Status:        exam.SessionReady,
	})
	if err != nil {
		t.Fatalf("seed session %s: %v", id, err)
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestGetSessionPreservesQuestionOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedQuestions(t, s.BankRepo())

	// Session order differs from insertion order on purpose.
	seedSession(t, s.SessionRepo(), "s1", []string{"q3", "q1", "q2"})

	bundle, err := s.SessionRepo().GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if bundle.Session.Status != exam.SessionReady {
		t.Errorf("status = %q, want ready", bundle.Session.Status)
	}
	if len(bundle.Questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(bundle.Questions))
	}
	for i, want := range []string{"q3", "q1", "q2"} {
		if bundle.Questions[i].ID != want {
			t.Errorf("question[%d] = %q, want %q", i, bundle.Questions[i].ID, want)
		}
	}
	if len(bundle.Attempts) != 0 {
		t.Errorf("fresh session has %d attempts, want 0", len(bundle.Attempts))
	}
}

func TestGetSessionNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.SessionRepo().GetSession(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListSessions(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()

	seedSession(t, repo, "s1", []string{"q1"})
	time.Sleep(5 * time.Millisecond)
	seedSession(t, repo, "s2", []string{"q2"})

	sessions, err := repo.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}
	// Newest first.
	if sessions[0].ID != "s2" || sessions[1].ID != "s1" {
		t.Errorf("order = [%s, %s], want [s2, s1]", sessions[0].ID, sessions[1].ID)
	}
}

func TestSaveAttemptUpserts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.SessionRepo()
	seedQuestions(t, s.BankRepo())
	seedSession(t, repo, "s1", []string{"q1", "q2"})

	a := &exam.Attempt{
		SessionID:  "s1",
		QuestionID: "q1",
		Order:      1,
		Status:     exam.StatusVisited,
	}
	if err := repo.SaveAttempt(ctx, a); err != nil {
		t.Fatalf("save attempt: %v", err)
	}

	// Second save with an answer must update the same row.
	a.Answer = &exam.Answer{Value: "4"}
	a.Status = exam.StatusAnswered
	a.TimeSpentSecs = 30
	if err := repo.SaveAttempt(ctx, a); err != nil {
		t.Fatalf("update attempt: %v", err)
	}

	bundle, err := repo.GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if len(bundle.Attempts) != 1 {
		t.Fatalf("got %d attempts, want 1", len(bundle.Attempts))
	}
	got := bundle.Attempts[0]
	if got.Status != exam.StatusAnswered {
		t.Errorf("status = %q, want answered", got.Status)
	}
	if got.Answer == nil || got.Answer.Value != "4" {
		t.Errorf("answer = %+v, want value 4", got.Answer)
	}
	if got.TimeSpentSecs != 30 {
		t.Errorf("time spent = %d, want 30", got.TimeSpentSecs)
	}
}

func TestSaveAttemptClearsAnswer(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.SessionRepo()
	seedSession(t, repo, "s1", []string{"q2"})

	a := &exam.Attempt{
		SessionID:  "s1",
		QuestionID: "q2",
		Order:      1,
		Answer:     &exam.Answer{Options: []int{1}},
		Status:     exam.StatusAnswered,
	}
	if err := repo.SaveAttempt(ctx, a); err != nil {
		t.Fatalf("save attempt: %v", err)
	}

	a.Answer = nil
	a.Status = exam.StatusVisited
	if err := repo.SaveAttempt(ctx, a); err != nil {
		t.Fatalf("clear answer: %v", err)
	}

	bundle, err := repo.GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if bundle.Attempts[0].Answer != nil {
		t.Errorf("answer = %+v, want nil after clearing", bundle.Attempts[0].Answer)
	}
}

func TestUpdateAttemptsFinalizesSession(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.SessionRepo()
	seedQuestions(t, s.BankRepo())
	seedSession(t, repo, "s1", []string{"q1", "q2"})

	correct := true
	wrong := false
	attempts := []*exam.Attempt{
		{SessionID: "s1", QuestionID: "q1", Order: 1, Answer: &exam.Answer{Value: "4"},
			Status: exam.StatusCorrect, IsCorrect: &correct, Score: 1, TimeSpentSecs: 40},
		{SessionID: "s1", QuestionID: "q2", Order: 2, Answer: &exam.Answer{Options: []int{0}},
			Status: exam.StatusIncorrect, IsCorrect: &wrong, Score: -2.0 / 3, TimeSpentSecs: 25},
	}
	totals := SessionTotals{TotalScore: 1 - 2.0/3, CorrectCount: 1, AttemptedCount: 2, Accuracy: 0.5}

	if err := repo.UpdateAttempts(ctx, "s1", attempts, totals); err != nil {
		t.Fatalf("update attempts: %v", err)
	}

	bundle, err := repo.GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	sess := bundle.Session
	if sess.Status != exam.SessionCompleted {
		t.Errorf("status = %q, want completed", sess.Status)
	}
	if sess.CorrectCount != 1 || sess.AttemptedCount != 2 {
		t.Errorf("counts = %d/%d, want 1/2", sess.CorrectCount, sess.AttemptedCount)
	}
	if sess.Accuracy != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", sess.Accuracy)
	}
	if sess.CompletedAt == nil {
		t.Error("completed_at not set")
	}

	if len(bundle.Attempts) != 2 {
		t.Fatalf("got %d attempts, want 2", len(bundle.Attempts))
	}
	first := bundle.Attempts[0]
	if first.IsCorrect == nil || !*first.IsCorrect {
		t.Errorf("attempt q1 IsCorrect = %v, want true", first.IsCorrect)
	}
	if first.Score != 1 {
		t.Errorf("attempt q1 score = %v, want 1", first.Score)
	}
}

func TestUpdateSessionTimeAndStatus(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.SessionRepo()
	seedSession(t, repo, "s1", []string{"q1"})

	if err := repo.UpdateSessionTimeAndStatus(ctx, "s1", 312, exam.SessionReady); err != nil {
		t.Fatalf("checkpoint: %v", err)
	}
	bundle, err := repo.GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if bundle.Session.RemainingSecs != 312 {
		t.Errorf("remaining = %d, want 312", bundle.Session.RemainingSecs)
	}

	err = repo.UpdateSessionTimeAndStatus(ctx, "missing", 1, exam.SessionReady)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("checkpoint missing session: err = %v, want ErrNotFound", err)
	}
}

func TestPendingAttemptsLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.SessionRepo()
	seedSession(t, repo, "s1", []string{"q1", "q2"})

	a1 := &exam.Attempt{SessionID: "s1", QuestionID: "q1", Order: 1, Status: exam.StatusVisited}
	a2 := &exam.Attempt{SessionID: "s1", QuestionID: "q2", Order: 2, Status: exam.StatusAnswered,
		Answer: &exam.Answer{Options: []int{1}}, Synced: true}
	for _, a := range []*exam.Attempt{a1, a2} {
		if err := repo.SaveAttempt(ctx, a); err != nil {
			t.Fatalf("save attempt: %v", err)
		}
	}

	pending, err := repo.GetPendingAttempts(ctx)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 1 || pending[0].QuestionID != "q1" {
		t.Fatalf("pending = %+v, want only q1", pending)
	}

	if err := repo.MarkAttemptsSynced(ctx, pending); err != nil {
		t.Fatalf("mark synced: %v", err)
	}
	pending, err = repo.GetPendingAttempts(ctx)
	if err != nil {
		t.Fatalf("pending after sync: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("pending = %+v, want empty", pending)
	}

	// Re-saving an attempt as dirty makes it pending again.
	a1.Synced = false
	a1.Status = exam.StatusAnswered
	a1.Answer = &exam.Answer{Value: "4"}
	if err := repo.SaveAttempt(ctx, a1); err != nil {
		t.Fatalf("resave attempt: %v", err)
	}
	pending, _ = repo.GetPendingAttempts(ctx)
	if len(pending) != 1 {
		t.Errorf("pending after resave = %d, want 1", len(pending))
	}
}

func TestMarkAttemptsSyncedSkipsNewerVersions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.SessionRepo()
	seedSession(t, repo, "s1", []string{"q1"})

	a := &exam.Attempt{SessionID: "s1", QuestionID: "q1", Order: 1,
		Status: exam.StatusAnswered, Answer: &exam.Answer{Value: "4"}}
	if err := repo.SaveAttempt(ctx, a); err != nil {
		t.Fatalf("save attempt: %v", err)
	}
	pushed, err := repo.GetPendingAttempts(ctx)
	if err != nil || len(pushed) != 1 {
		t.Fatalf("pending = %v, %v, want 1 attempt", pushed, err)
	}

	// A newer save lands between the push and the acknowledgment.
	a.Answer = &exam.Answer{Value: "5"}
	if err := repo.SaveAttempt(ctx, a); err != nil {
		t.Fatalf("resave attempt: %v", err)
	}

	if err := repo.MarkAttemptsSynced(ctx, pushed); err != nil {
		t.Fatalf("mark synced: %v", err)
	}
	pending, err := repo.GetPendingAttempts(ctx)
	if err != nil {
		t.Fatalf("pending after stale mark: %v", err)
	}
	if len(pending) != 1 || pending[0].Answer.Value != "5" {
		t.Fatalf("pending = %+v, want the newer version still dirty", pending)
	}

	// Acknowledging the current version clears it.
	if err := repo.MarkAttemptsSynced(ctx, pending); err != nil {
		t.Fatalf("mark synced current: %v", err)
	}
	if pending, _ = repo.GetPendingAttempts(ctx); len(pending) != 0 {
		t.Errorf("pending = %+v, want empty", pending)
	}
}

func TestBankRepoRoundtrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.BankRepo()
	seedQuestions(t, repo)

	n, err := repo.CountQuestions(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}

	// GetQuestions returns the requested order and skips missing ids.
	qs, err := repo.GetQuestions(ctx, []string{"q3", "nope", "q1"})
	if err != nil {
		t.Fatalf("get questions: %v", err)
	}
	if len(qs) != 2 || qs[0].ID != "q3" || qs[1].ID != "q1" {
		t.Fatalf("got %+v, want [q3, q1]", qs)
	}
	if qs[0].Type != exam.MultipleChoice {
		t.Errorf("q3 type = %q, want multiple_choice", qs[0].Type)
	}
	if len(qs[0].CorrectOptions) != 2 {
		t.Errorf("q3 correct options = %v, want 2 entries", qs[0].CorrectOptions)
	}

	// Saving the same ids again updates, not duplicates.
	err = repo.SaveQuestions(ctx, []exam.Question{
		{ID: "q1", Type: exam.Numerical, Prompt: "3+3?", CorrectValue: "6"},
	})
	if err != nil {
		t.Fatalf("resave: %v", err)
	}
	n, _ = repo.CountQuestions(ctx)
	if n != 3 {
		t.Errorf("count after resave = %d, want 3", n)
	}
	qs, _ = repo.GetQuestions(ctx, []string{"q1"})
	if len(qs) != 1 || qs[0].Prompt != "3+3?" {
		t.Errorf("q1 after resave = %+v", qs)
	}
}

func TestWipe(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedQuestions(t, s.BankRepo())
	seedSession(t, s.SessionRepo(), "s1", []string{"q1"})

	if err := s.BankRepo().Wipe(ctx); err != nil {
		t.Fatalf("wipe: %v", err)
	}

	n, _ := s.BankRepo().CountQuestions(ctx)
	if n != 0 {
		t.Errorf("questions after wipe = %d, want 0", n)
	}
	sessions, _ := s.SessionRepo().ListSessions(ctx)
	if len(sessions) != 0 {
		t.Errorf("sessions after wipe = %d, want 0", len(sessions))
	}
}
