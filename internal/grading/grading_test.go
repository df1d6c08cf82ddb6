package grading

import (
	"math"
	"testing"

	"github.com/abhisek/examdeck/internal/exam"
)

func numQ(id, correct string, marks float64) exam.Question {
	return exam.Question{ID: id, Type: exam.Numerical, CorrectValue: correct, Marks: marks}
}

func singleQ(id string, correct int, marks float64) exam.Question {
	return exam.Question{
		ID: id, Type: exam.SingleChoice,
		Options:        []string{"a", "b", "c", "d"},
		CorrectOptions: []int{correct},
		Marks:          marks,
	}
}

func multiQ(id string, correct []int, marks float64) exam.Question {
	return exam.Question{
		ID: id, Type: exam.MultipleChoice,
		Options:        []string{"a", "b", "c", "d"},
		CorrectOptions: correct,
		Marks:          marks,
	}
}

func attempt(qid string, ans *exam.Answer) *exam.Attempt {
	return &exam.Attempt{SessionID: "s1", QuestionID: qid, Answer: ans, Status: exam.StatusAnswered}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestGradeNumerical(t *testing.T) {
	tests := []struct {
		name    string
		correct string
		given   string
		marks   float64
		want    float64
		ok      bool
	}{
		{"exact match", "42", "42", 1, 1, true},
		{"whitespace trimmed", "42", " 42 ", 1, 1, true},
		{"wrong value no penalty", "42", "41", 1, 0, false},
		{"string compare not numeric", "42.0", "42", 1, 0, false},
		{"default marks", "7", "7", 0, 1, true},
		{"custom marks", "7", "7", 4, 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Grade(
				[]*exam.Attempt{attempt("q1", &exam.Answer{Value: tt.given})},
				[]exam.Question{numQ("q1", tt.correct, tt.marks)},
				DefaultConfig(),
			)
			if !approx(res.TotalScore, tt.want) {
				t.Errorf("TotalScore = %v, want %v", res.TotalScore, tt.want)
			}
			a := res.Attempts[0]
			if a.IsCorrect == nil || *a.IsCorrect != tt.ok {
				t.Errorf("IsCorrect = %v, want %v", a.IsCorrect, tt.ok)
			}
		})
	}
}

func TestGradeSingleChoicePenalty(t *testing.T) {
	questions := []exam.Question{singleQ("q1", 2, 0)}

	res := Grade([]*exam.Attempt{attempt("q1", &exam.Answer{Options: []int{2}})}, questions, DefaultConfig())
	if !approx(res.TotalScore, 2) {
		t.Errorf("correct single-choice score = %v, want 2", res.TotalScore)
	}

	res = Grade([]*exam.Attempt{attempt("q1", &exam.Answer{Options: []int{1}})}, questions, DefaultConfig())
	if !approx(res.TotalScore, -2.0/3.0) {
		t.Errorf("wrong single-choice score = %v, want %v", res.TotalScore, -2.0/3.0)
	}
	if res.Attempts[0].Status != exam.StatusIncorrect {
		t.Errorf("status = %v, want incorrect", res.Attempts[0].Status)
	}
}

func TestGradeMultipleChoice(t *testing.T) {
	questions := []exam.Question{multiQ("q1", []int{0, 2}, 0)}

	tests := []struct {
		name   string
		picked []int
		want   float64
		ok     bool
	}{
		{"exact set", []int{0, 2}, 2, true},
		{"order ignored", []int{2, 0}, 2, true},
		{"partial no penalty", []int{0}, 0, false},
		{"superset no penalty", []int{0, 1, 2}, 0, false},
		{"disjoint no penalty", []int{1, 3}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Grade(
				[]*exam.Attempt{attempt("q1", &exam.Answer{Options: tt.picked})},
				questions, DefaultConfig(),
			)
			if !approx(res.TotalScore, tt.want) {
				t.Errorf("TotalScore = %v, want %v", res.TotalScore, tt.want)
			}
			a := res.Attempts[0]
			if a.IsCorrect == nil || *a.IsCorrect != tt.ok {
				t.Errorf("IsCorrect = %v, want %v", a.IsCorrect, tt.ok)
			}
		})
	}
}

func TestGradeSkippedAndUnanswered(t *testing.T) {
	questions := []exam.Question{numQ("q1", "1", 1), singleQ("q2", 0, 0)}
	attempts := []*exam.Attempt{
		attempt("q1", nil),
		{SessionID: "s1", QuestionID: "q2", Status: exam.StatusVisited},
	}

	res := Grade(attempts, questions, DefaultConfig())
	if res.UnattemptedCount != 2 {
		t.Errorf("UnattemptedCount = %d, want 2", res.UnattemptedCount)
	}
	if !approx(res.TotalScore, 0) {
		t.Errorf("TotalScore = %v, want 0", res.TotalScore)
	}
	for _, a := range res.Attempts {
		if a.Status != exam.StatusSkipped {
			t.Errorf("status = %v, want skipped", a.Status)
		}
		if a.IsCorrect != nil {
			t.Errorf("IsCorrect = %v, want nil", a.IsCorrect)
		}
	}
}

func TestGradeMissingQuestionPassesThrough(t *testing.T) {
	res := Grade(
		[]*exam.Attempt{attempt("ghost", &exam.Answer{Value: "1"})},
		nil, DefaultConfig(),
	)
	if len(res.Attempts) != 1 {
		t.Fatalf("attempts = %d, want 1", len(res.Attempts))
	}
	if got := res.AttemptedCount() + res.UnattemptedCount; got != 0 {
		t.Errorf("counted %d attempts for unknown question, want 0", got)
	}
}

func TestGradeMixedSession(t *testing.T) {
	questions := []exam.Question{
		numQ("q1", "42", 0),
		singleQ("q2", 1, 0),
		multiQ("q3", []int{0, 1}, 0),
	}
	attempts := []*exam.Attempt{
		attempt("q1", &exam.Answer{Value: "42"}),       // +1
		attempt("q2", &exam.Answer{Options: []int{3}}), // -2/3
		attempt("q3", &exam.Answer{Options: []int{1, 0}}), // +2
	}

	res := Grade(attempts, questions, DefaultConfig())

	want := 1.0 - 2.0/3.0 + 2.0
	if !approx(res.TotalScore, want) {
		t.Errorf("TotalScore = %v, want %v", res.TotalScore, want)
	}
	if res.CorrectCount != 2 || res.IncorrectCount != 1 || res.UnattemptedCount != 0 {
		t.Errorf("counts = %d/%d/%d, want 2/1/0",
			res.CorrectCount, res.IncorrectCount, res.UnattemptedCount)
	}
	if !approx(res.Accuracy, 2.0/3.0) {
		t.Errorf("Accuracy = %v, want %v", res.Accuracy, 2.0/3.0)
	}
	if res.AttemptedCount() != 3 {
		t.Errorf("AttemptedCount = %d, want 3", res.AttemptedCount())
	}
}

func TestGradeDoesNotMutateInputs(t *testing.T) {
	src := attempt("q1", &exam.Answer{Value: "42"})
	src.Synced = true
	Grade([]*exam.Attempt{src}, []exam.Question{numQ("q1", "42", 1)}, DefaultConfig())

	if src.Score != 0 || src.IsCorrect != nil || src.Status != exam.StatusAnswered {
		t.Error("Grade mutated its input attempt")
	}
	if !src.Synced {
		t.Error("Grade flipped the input's synced flag")
	}
}

func TestGradeEmptySelectionNeverMatches(t *testing.T) {
	// A question with no recorded correct options must not grade an empty
	// answer as correct.
	q := exam.Question{ID: "q1", Type: exam.MultipleChoice, Options: []string{"a", "b"}}
	res := Grade(
		[]*exam.Attempt{attempt("q1", &exam.Answer{Options: []int{}})},
		[]exam.Question{q}, DefaultConfig(),
	)
	a := res.Attempts[0]
	if a.IsCorrect == nil || *a.IsCorrect {
		t.Errorf("empty selection graded correct")
	}
}
