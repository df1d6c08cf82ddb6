// Package grading scores a session's attempts against its question
// definitions. Grading is a pure computation: the same inputs produce the
// same result whether the session was submitted by the learner or by the
// countdown expiring.
package grading

import (
	"strings"

	"github.com/abhisek/examdeck/internal/exam"
)

// Config holds the scoring policy. The penalty fraction and the default
// marks are policy inputs, not universal exam rules, so callers pass them in
// rather than relying on package constants.
type Config struct {
	// SingleChoicePenaltyDivisor controls negative marking: a wrong
	// single-choice answer scores -marks/divisor. Only single-choice
	// answers are penalized.
	SingleChoicePenaltyDivisor float64

	// DefaultNumericalMarks applies when a numerical question has no marks.
	DefaultNumericalMarks float64

	// DefaultChoiceMarks applies when a choice question has no marks.
	DefaultChoiceMarks float64
}

// DefaultConfig returns the standard scoring policy.
func DefaultConfig() Config {
	return Config{
		SingleChoicePenaltyDivisor: 3,
		DefaultNumericalMarks:      1,
		DefaultChoiceMarks:         2,
	}
}

// Result is the outcome of grading one session.
type Result struct {
	TotalScore       float64
	CorrectCount     int
	IncorrectCount   int
	UnattemptedCount int
	Accuracy         float64 // correct / attempted, 0 when nothing attempted

	// Attempts are finalized copies: score and correctness populated,
	// synced reset so the new versions are pushed on the next sync.
	Attempts []*exam.Attempt
}

// AttemptedCount returns the number of graded (non-skipped) attempts.
func (r *Result) AttemptedCount() int {
	return r.CorrectCount + r.IncorrectCount
}

// Grade scores every attempt. Inputs are not mutated. An attempt whose
// question is missing from the definitions passes through unscored and is
// excluded from all counts.
func Grade(attempts []*exam.Attempt, questions []exam.Question, cfg Config) Result {
	byID := make(map[string]*exam.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	res := Result{Attempts: make([]*exam.Attempt, 0, len(attempts))}

	for _, src := range attempts {
		a := src.Clone()
		a.Synced = false
		res.Attempts = append(res.Attempts, a)

		q, ok := byID[a.QuestionID]
		if !ok {
			// Question definition missing: pass through unscored rather
			// than failing the whole grading pass.
			continue
		}

		if a.Answer == nil {
			a.Status = exam.StatusSkipped
			a.Score = 0
			a.IsCorrect = nil
			res.UnattemptedCount++
			continue
		}

		correct, score := scoreOne(q, a.Answer, cfg)
		a.Score = score
		a.IsCorrect = &correct
		if correct {
			a.Status = exam.StatusCorrect
			res.CorrectCount++
		} else {
			a.Status = exam.StatusIncorrect
			res.IncorrectCount++
		}
		res.TotalScore += score
	}

	if attempted := res.AttemptedCount(); attempted > 0 {
		res.Accuracy = float64(res.CorrectCount) / float64(attempted)
	}
	return res
}

// scoreOne applies the three-way type branch. Single-choice and
// multiple-choice share the comparison but not the penalty policy, so the
// branches stay separate.
func scoreOne(q *exam.Question, ans *exam.Answer, cfg Config) (bool, float64) {
	switch q.Type {
	case exam.Numerical:
		marks := q.Marks
		if marks == 0 {
			marks = cfg.DefaultNumericalMarks
		}
		if strings.TrimSpace(ans.Value) == strings.TrimSpace(q.CorrectValue) {
			return true, marks
		}
		return false, 0

	case exam.SingleChoice:
		marks := q.Marks
		if marks == 0 {
			marks = cfg.DefaultChoiceMarks
		}
		if optionsEqual(ans.SortedOptions(), sortedCopy(q.CorrectOptions)) {
			return true, marks
		}
		return false, -marks / cfg.SingleChoicePenaltyDivisor

	case exam.MultipleChoice:
		marks := q.Marks
		if marks == 0 {
			marks = cfg.DefaultChoiceMarks
		}
		if optionsEqual(ans.SortedOptions(), sortedCopy(q.CorrectOptions)) {
			return true, marks
		}
		// No negative marking for multi-select.
		return false, 0

	default:
		return false, 0
	}
}

func sortedCopy(opts []int) []int {
	a := &exam.Answer{Options: opts}
	return a.SortedOptions()
}

func optionsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return false // an empty selection never matches
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
