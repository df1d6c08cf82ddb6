package router_test

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/examdeck/internal/engine"
	"github.com/abhisek/examdeck/internal/grading"
	"github.com/abhisek/examdeck/internal/router"
	"github.com/abhisek/examdeck/internal/screen"
	"github.com/abhisek/examdeck/internal/screens/summary"
)

// fakeScreen records lifecycle calls so tests can assert routing behavior.
type fakeScreen struct {
	title   string
	inits   int
	lastMsg tea.Msg
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inits++
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f.lastMsg = msg
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return f.title }
func (f *fakeScreen) Title() string        { return f.title }

func TestPushInitsAndActivates(t *testing.T) {
	home := &fakeScreen{title: "home"}
	r := router.New(home)

	exam := &fakeScreen{title: "exam"}
	r.Push(exam)

	if r.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", r.Depth())
	}
	if got := r.Active().Title(); got != "exam" {
		t.Errorf("active = %q, want exam", got)
	}
	if exam.inits != 1 {
		t.Errorf("pushed screen inits = %d, want 1", exam.inits)
	}
}

func TestPopStopsAtRoot(t *testing.T) {
	home := &fakeScreen{title: "home"}
	r := router.New(home)
	r.Push(&fakeScreen{title: "exam"})

	r.Pop()
	if got := r.Active().Title(); got != "home" {
		t.Errorf("active after pop = %q, want home", got)
	}

	// The root screen never pops off.
	r.Pop()
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("depth after popping at root = %d, want 1", r.Depth())
	}
}

func TestUpdateForwardsToActiveScreen(t *testing.T) {
	home := &fakeScreen{title: "home"}
	top := &fakeScreen{title: "top"}
	r := router.New(home)
	r.Push(top)

	type pingMsg struct{}
	r.Update(pingMsg{})

	if _, ok := top.lastMsg.(pingMsg); !ok {
		t.Errorf("top screen got %T, want pingMsg", top.lastMsg)
	}
	if home.lastMsg != nil {
		t.Errorf("covered screen got %T, want no message", home.lastMsg)
	}
}

func TestNavigationMsgs(t *testing.T) {
	home := &fakeScreen{title: "home"}
	r := router.New(home)

	exam := &fakeScreen{title: "exam"}
	r.Update(router.PushScreenMsg{Screen: exam})
	if r.Depth() != 2 || exam.inits != 1 {
		t.Fatalf("after push msg: depth = %d, inits = %d", r.Depth(), exam.inits)
	}

	r.Update(router.PopScreenMsg{})
	if got := r.Active().Title(); got != "home" {
		t.Errorf("after pop msg: active = %q, want home", got)
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	home := &fakeScreen{title: "home"}
	r := router.New(home)
	r.Push(&fakeScreen{title: "exam"})

	next := &fakeScreen{title: "next"}
	r.Update(router.ReplaceScreenMsg{Screen: next})

	if r.Depth() != 2 {
		t.Errorf("depth after replace = %d, want 2", r.Depth())
	}
	if got := r.Active().Title(); got != "next" {
		t.Errorf("active = %q, want next", got)
	}
	if next.inits != 1 {
		t.Errorf("replacement inits = %d, want 1", next.inits)
	}
}

// A submitted exam screen replaces itself with the summary, so that
// dismissing the summary lands back on the screen below the exam, never
// in a finished exam.
func TestExamHandoffToSummary(t *testing.T) {
	home := &fakeScreen{title: "home"}
	r := router.New(home)
	r.Push(&fakeScreen{title: "exam"})

	res := &engine.Result{Result: grading.Result{TotalScore: 3, CorrectCount: 2, Accuracy: 1}}
	r.Update(router.ReplaceScreenMsg{Screen: summary.New(res)})

	if got := r.Active().Title(); got != "Result" {
		t.Fatalf("active after handoff = %q, want Result", got)
	}
	if r.Depth() != 2 {
		t.Fatalf("depth after handoff = %d, want 2", r.Depth())
	}

	cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a dismiss command from the summary")
	}
	r.Update(cmd())

	if got := r.Active().Title(); got != "home" {
		t.Errorf("active after dismiss = %q, want home", got)
	}
	if r.Depth() != 1 {
		t.Errorf("depth after dismiss = %d, want 1", r.Depth())
	}
}
