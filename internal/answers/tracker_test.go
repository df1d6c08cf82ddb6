package answers

import (
	"testing"

	"github.com/abhisek/examdeck/internal/exam"
)

func newTestTracker(existing ...*exam.Attempt) *Tracker {
	// nil repo keeps persistence off; tests cover in-memory semantics.
	return NewTracker("s1", nil, existing)
}

func TestMarkVisitedCreatesBlankAttemptOnce(t *testing.T) {
	tr := newTestTracker()

	tr.MarkVisited("q1", 1)
	a := tr.Get("q1")
	if a == nil {
		t.Fatal("no attempt created")
	}
	if a.Status != exam.StatusVisited || a.Answer != nil {
		t.Errorf("attempt = %+v, want blank visited", a)
	}

	// A second visit must not reset anything.
	tr.SelectOption("q1", &exam.Answer{Value: "5"}, 1)
	tr.MarkVisited("q1", 1)
	if got := tr.Get("q1"); got.Status != exam.StatusAnswered {
		t.Errorf("status after revisit = %v, want answered", got.Status)
	}
}

func TestSelectOptionSetsAndClears(t *testing.T) {
	tr := newTestTracker()

	tr.SelectOption("q1", &exam.Answer{Options: []int{2}}, 1)
	a := tr.Get("q1")
	if a.Status != exam.StatusAnswered || !a.Answered() {
		t.Errorf("attempt = %+v, want answered", a)
	}
	if a.Synced {
		t.Error("new answer not marked dirty")
	}

	tr.SelectOption("q1", nil, 1)
	a = tr.Get("q1")
	if a.Status != exam.StatusVisited || a.Answered() {
		t.Errorf("attempt = %+v, want visited after clear", a)
	}
}

func TestSelectOptionClonesAnswer(t *testing.T) {
	tr := newTestTracker()
	ans := &exam.Answer{Options: []int{0, 1}}
	tr.SelectOption("q1", ans, 1)

	ans.Options[0] = 9
	if got := tr.Get("q1").Answer.Options[0]; got != 0 {
		t.Errorf("tracker shares caller's option slice: got %d", got)
	}
}

func TestUpdateTimeSpentAccumulates(t *testing.T) {
	tr := newTestTracker()

	tr.UpdateTimeSpent("q1", 25, 1)
	tr.UpdateTimeSpent("q1", 30, 1)
	if got := tr.Get("q1").TimeSpentSecs; got != 55 {
		t.Errorf("TimeSpentSecs = %d, want 55", got)
	}

	tr.UpdateTimeSpent("q1", 0, 1)
	tr.UpdateTimeSpent("q1", -5, 1)
	if got := tr.Get("q1").TimeSpentSecs; got != 55 {
		t.Errorf("TimeSpentSecs after no-op deltas = %d, want 55", got)
	}
}

func TestReviewFlagSurvivesAnswerChanges(t *testing.T) {
	tr := newTestTracker()

	if !tr.ToggleReview("q1", 1) {
		t.Fatal("first toggle = false, want true")
	}
	tr.SelectOption("q1", &exam.Answer{Value: "3"}, 1)
	if !tr.IsMarkedForReview("q1") {
		t.Error("review flag lost after answering")
	}
	tr.SelectOption("q1", nil, 1)
	if !tr.IsMarkedForReview("q1") {
		t.Error("review flag lost after clearing answer")
	}

	if tr.ToggleReview("q1", 1) {
		t.Error("second toggle = true, want false")
	}
	if tr.ReviewCount() != 0 {
		t.Errorf("ReviewCount = %d, want 0", tr.ReviewCount())
	}
}

func TestHydrationFromExistingAttempts(t *testing.T) {
	existing := []*exam.Attempt{
		{SessionID: "s1", QuestionID: "q2", Order: 2, Status: exam.StatusAnswered,
			Answer: &exam.Answer{Value: "7"}, MarkedForReview: true, TimeSpentSecs: 40},
		{SessionID: "s1", QuestionID: "q1", Order: 1, Status: exam.StatusVisited},
	}
	tr := newTestTracker(existing...)

	if !tr.IsAnswered("q2") || tr.IsAnswered("q1") {
		t.Error("answered state not hydrated")
	}
	if !tr.IsMarkedForReview("q2") {
		t.Error("review flag not hydrated")
	}
	if got := tr.AnsweredCount(); got != 1 {
		t.Errorf("AnsweredCount = %d, want 1", got)
	}

	all := tr.All()
	if len(all) != 2 || all[0].QuestionID != "q1" || all[1].QuestionID != "q2" {
		t.Errorf("All() not ordered by attempt order: %v, %v", all[0].QuestionID, all[1].QuestionID)
	}

	// Hydration must clone; mutating the source may not leak in.
	existing[0].TimeSpentSecs = 999
	if got := tr.Get("q2").TimeSpentSecs; got != 40 {
		t.Errorf("TimeSpentSecs = %d, tracker shares hydration input", got)
	}
}
