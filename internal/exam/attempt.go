package exam

import (
	"sort"
	"strings"
)

// AttemptStatus tags the lifecycle of one attempt row.
type AttemptStatus string

const (
	StatusUnvisited AttemptStatus = "unvisited"
	StatusVisited   AttemptStatus = "visited"
	StatusAnswered  AttemptStatus = "answered"

	// Post-grading statuses.
	StatusCorrect   AttemptStatus = "correct"
	StatusIncorrect AttemptStatus = "incorrect"
	StatusSkipped   AttemptStatus = "skipped"
)

// Answer is a learner's response to one question. A nil *Answer means the
// question was not answered. For numerical questions Value holds the typed
// response; for choice questions Options holds the selected indices.
type Answer struct {
	Value   string `json:"value,omitempty"`
	Options []int  `json:"options,omitempty"`
}

// Clone returns a deep copy.
func (a *Answer) Clone() *Answer {
	if a == nil {
		return nil
	}
	cp := &Answer{Value: a.Value}
	if a.Options != nil {
		cp.Options = append([]int(nil), a.Options...)
	}
	return cp
}

// Equal reports whether two answers carry the same response. Option order
// is not significant.
func (a *Answer) Equal(b *Answer) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Value != b.Value {
		return false
	}
	as, bs := a.SortedOptions(), b.SortedOptions()
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// SortedOptions returns the selected indices in ascending order without
// mutating the receiver.
func (a *Answer) SortedOptions() []int {
	if a == nil || len(a.Options) == 0 {
		return nil
	}
	out := append([]int(nil), a.Options...)
	sort.Ints(out)
	return out
}

// Label renders the answer for display: the numeric value as typed, or the
// selected option letters ("A, C").
func (a *Answer) Label() string {
	if a == nil {
		return "—"
	}
	if a.Value != "" {
		return a.Value
	}
	if len(a.Options) == 0 {
		return "—"
	}
	letters := make([]string, 0, len(a.Options))
	for _, i := range a.SortedOptions() {
		letters = append(letters, string(rune('A'+i)))
	}
	return strings.Join(letters, ", ")
}

// Attempt is the persisted record of a learner's interaction with one
// question within one session. It is uniquely identified by
// (SessionID, QuestionID); Order is the stable 1-based position used as the
// externally visible attempt order.
type Attempt struct {
	SessionID       string
	QuestionID      string
	Order           int
	Answer          *Answer
	MarkedForReview bool
	Status          AttemptStatus
	IsCorrect       *bool // nil until graded
	Score           float64
	TimeSpentSecs   int
	Synced          bool // true once the remote store acknowledged this version
}

// Answered reports whether a non-null answer is recorded.
func (a *Attempt) Answered() bool {
	return a.Answer != nil
}

// Clone returns a deep copy, used to snapshot an attempt before handing it
// to an async persistence call.
func (a *Attempt) Clone() *Attempt {
	cp := *a
	cp.Answer = a.Answer.Clone()
	if a.IsCorrect != nil {
		v := *a.IsCorrect
		cp.IsCorrect = &v
	}
	return &cp
}
