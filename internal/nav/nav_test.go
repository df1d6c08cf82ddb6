package nav

import "testing"

func TestNewTrackerStartsAtFirstQuestion(t *testing.T) {
	tr := NewTracker(5)

	if got := tr.Current(); got != 0 {
		t.Errorf("Current() = %d, want 0", got)
	}
	if !tr.Visited(0) {
		t.Error("first question not marked visited")
	}
	if got := tr.VisitedCount(); got != 1 {
		t.Errorf("VisitedCount() = %d, want 1", got)
	}
}

func TestNextStopsAtLastQuestion(t *testing.T) {
	tr := NewTracker(3)

	if !tr.Next() {
		t.Fatal("Next() = false at question 0")
	}
	if !tr.Next() {
		t.Fatal("Next() = false at question 1")
	}
	if tr.Next() {
		t.Error("Next() = true at last question")
	}
	if got := tr.Current(); got != 2 {
		t.Errorf("Current() = %d, want 2", got)
	}
}

func TestPrevStopsAtFirstQuestion(t *testing.T) {
	tr := NewTracker(3)

	if tr.Prev() {
		t.Error("Prev() = true at first question")
	}
	tr.Next()
	if !tr.Prev() {
		t.Error("Prev() = false at question 1")
	}
	if got := tr.Current(); got != 0 {
		t.Errorf("Current() = %d, want 0", got)
	}
}

func TestJumpTo(t *testing.T) {
	tests := []struct {
		name    string
		target  int
		ok      bool
		current int
	}{
		{"valid forward", 4, true, 4},
		{"first", 0, true, 0},
		{"negative", -1, false, 0},
		{"past end", 5, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(5)
			if got := tr.JumpTo(tt.target); got != tt.ok {
				t.Errorf("JumpTo(%d) = %v, want %v", tt.target, got, tt.ok)
			}
			if got := tr.Current(); got != tt.current {
				t.Errorf("Current() = %d, want %d", got, tt.current)
			}
		})
	}
}

func TestVisitedAccumulates(t *testing.T) {
	tr := NewTracker(4)
	tr.Next()
	tr.JumpTo(3)
	tr.Prev()

	for i, want := range []bool{true, true, true, true} {
		if got := tr.Visited(i); got != want {
			t.Errorf("Visited(%d) = %v, want %v", i, got, want)
		}
	}
	if got := tr.VisitedCount(); got != 4 {
		t.Errorf("VisitedCount() = %d, want 4", got)
	}
}

func TestMarkVisitedOutOfRangeIgnored(t *testing.T) {
	tr := NewTracker(3)
	tr.MarkVisited(-1)
	tr.MarkVisited(3)

	if got := tr.VisitedCount(); got != 1 {
		t.Errorf("VisitedCount() = %d, want 1", got)
	}
}
