package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/examdeck/internal/engine"
	"github.com/abhisek/examdeck/internal/exam"
	"github.com/abhisek/examdeck/internal/grading"
)

func testResult() *engine.Result {
	right := true
	wrong := false
	return &engine.Result{
		Result: grading.Result{
			TotalScore:       1 - 2.0/3,
			CorrectCount:     1,
			IncorrectCount:   1,
			UnattemptedCount: 1,
			Accuracy:         0.5,
			Attempts: []*exam.Attempt{
				{QuestionID: "q1", Order: 1, Answer: &exam.Answer{Value: "42"},
					Status: exam.StatusCorrect, IsCorrect: &right, Score: 1},
				{QuestionID: "q2", Order: 2, Answer: &exam.Answer{Options: []int{0}},
					Status: exam.StatusIncorrect, IsCorrect: &wrong, Score: -2.0 / 3},
				{QuestionID: "q3", Order: 3, Status: exam.StatusSkipped},
			},
		},
		Session: &exam.TestSession{ID: "s1", Title: "Physics Mock 1"},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testResult())
	if s.Title() != "Result" {
		t.Errorf("Title = %q, want %q", s.Title(), "Result")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testResult())
	view := s.View(80, 24)

	for _, want := range []string{
		"Test submitted!",
		"Physics Mock 1",
		"Score: 0.33",
		"Correct: 1",
		"Skipped: 1",
		"Accuracy: 50%",
		"42", // numerical answer shown as typed
		"A",  // selected option letter
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_DismissKeys(t *testing.T) {
	for _, key := range []tea.KeyPressMsg{
		{Code: tea.KeyEnter},
		{Code: tea.KeyEscape},
		{Code: 'q', Text: "q"},
	} {
		s := New(testResult())
		_, cmd := s.Update(key)
		if cmd == nil {
			t.Errorf("expected a pop command on %v", key)
		}
	}
}
