package examroom

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/examdeck/internal/engine"
	"github.com/abhisek/examdeck/internal/exam"
	"github.com/abhisek/examdeck/internal/remote"
	"github.com/abhisek/examdeck/internal/router"
	"github.com/abhisek/examdeck/internal/screen"
	"github.com/abhisek/examdeck/internal/screens/summary"
	"github.com/abhisek/examdeck/internal/store"
	"github.com/abhisek/examdeck/internal/ui/components"
	"github.com/abhisek/examdeck/internal/ui/layout"
)

// ExamScreen runs one test session: countdown, navigation, answering,
// review marks, periodic sync and final submission.
type ExamScreen struct {
	repo       store.SessionRepo
	remote     remote.Client
	sessionID  string
	engOpts    engine.Options
	hbInterval time.Duration

	eng *engine.Engine

	input   components.NumericInput
	options components.OptionList
	palette components.Palette

	display       string
	paletteMode   bool
	confirmSubmit bool
	confirmQuit   bool
	submitting    bool
	timedOut      bool
	syncFailed    bool
	errMsg        string
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)
var _ screen.StatusProvider = (*ExamScreen)(nil)

// New creates an ExamScreen for the given session.
func New(repo store.SessionRepo, rc remote.Client, sessionID string, engOpts engine.Options, hbInterval time.Duration) *ExamScreen {
	if hbInterval <= 0 {
		hbInterval = time.Minute
	}
	return &ExamScreen{
		repo:       repo,
		remote:     rc,
		sessionID:  sessionID,
		engOpts:    engOpts,
		hbInterval: hbInterval,
	}
}

func (s *ExamScreen) Init() tea.Cmd {
	return s.loadEngine()
}

func (s *ExamScreen) Title() string {
	if s.eng != nil {
		return s.eng.Session().Title
	}
	return "Exam"
}

func (s *ExamScreen) HeaderStatus() string {
	if s.display == "" {
		return ""
	}
	status := "T " + s.display
	if s.syncFailed {
		status += "  [sync pending]"
	}
	return status
}

func (s *ExamScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.eng != nil && s.eng.Status() == exam.SessionError:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry submit"},
			{Key: "Esc", Description: "Leave (progress saved)"},
		}
	case s.confirmSubmit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit"},
			{Key: "N", Description: "Keep going"},
		}
	case s.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave (progress saved)"},
			{Key: "N", Description: "Stay"},
		}
	case s.paletteMode:
		return []layout.KeyHint{
			{Key: "Arrows", Description: "Pick"},
			{Key: "Enter", Description: "Jump"},
			{Key: "Esc", Description: "Close"},
		}
	default:
		return []layout.KeyHint{
			{Key: "←→", Description: "Navigate"},
			{Key: "P", Description: "Palette"},
			{Key: "M", Description: "Mark review"},
			{Key: "Ctrl+D", Description: "Clear"},
			{Key: "S", Description: "Submit"},
			{Key: "Esc", Description: "Leave"},
		}
	}
}

func (s *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case engineReadyMsg:
		return s.handleReady(msg)

	case timerTickMsg:
		return s.handleTimerTick(msg)

	case heartbeatTickMsg:
		return s.handleHeartbeatTick()

	case heartbeatDoneMsg:
		s.syncFailed = msg.Err != nil
		return s, s.scheduleHeartbeat()

	case submitDoneMsg:
		return s.handleSubmitDone(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// loadEngine hydrates the engine from the local store in the background.
func (s *ExamScreen) loadEngine() tea.Cmd {
	return func() tea.Msg {
		eng, err := engine.Load(context.Background(), s.repo, s.remote, s.sessionID, s.engOpts)
		return engineReadyMsg{Engine: eng, Err: err}
	}
}

func (s *ExamScreen) handleReady(msg engineReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.eng = msg.Engine
	s.eng.Start()
	s.display = s.eng.RemainingDisplay()
	s.palette = components.NewPalette(s.eng.QuestionCount())
	s.syncInputs()

	// First heartbeat goes out immediately so the results service sees the
	// session as live before the first interval elapses.
	return s, tea.Batch(
		tickCmd(),
		s.heartbeatCmd(),
	)
}

func (s *ExamScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if s.eng == nil {
		return s, nil
	}
	res := s.eng.TimerTick(time.Time(msg))
	s.display = res.Display

	if res.Expired {
		s.timedOut = true
		s.confirmSubmit = false
		s.confirmQuit = false
		s.paletteMode = false
		return s, tea.Batch(tickCmd(), s.submitCmd(engine.TriggerTimeout))
	}

	if s.eng.Status() == exam.SessionCompleted {
		return s, nil
	}
	return s, tickCmd()
}

func (s *ExamScreen) handleHeartbeatTick() (screen.Screen, tea.Cmd) {
	if s.eng == nil || s.eng.Status() == exam.SessionCompleted {
		return s, nil
	}
	if s.submitting {
		// Submission pushes its own final state; skip this beat.
		return s, s.scheduleHeartbeat()
	}
	return s, s.heartbeatCmd()
}

func (s *ExamScreen) heartbeatCmd() tea.Cmd {
	eng := s.eng
	return func() tea.Msg {
		return heartbeatDoneMsg{Err: eng.Heartbeat(context.Background())}
	}
}

func (s *ExamScreen) scheduleHeartbeat() tea.Cmd {
	return tea.Tick(s.hbInterval, func(t time.Time) tea.Msg {
		return heartbeatTickMsg(t)
	})
}

func (s *ExamScreen) submitCmd(trigger engine.Trigger) tea.Cmd {
	if s.submitting {
		return nil
	}
	s.submitting = true
	eng := s.eng
	return func() tea.Msg {
		res, err := eng.Submit(context.Background(), trigger)
		return submitDoneMsg{Result: res, Err: err}
	}
}

func (s *ExamScreen) handleSubmitDone(msg submitDoneMsg) (screen.Screen, tea.Cmd) {
	s.submitting = false
	if msg.Err != nil {
		if errors.Is(msg.Err, engine.ErrSubmitInProgress) {
			return s, nil
		}
		// Engine status is now error; the view shows the banner and the
		// R key retries.
		return s, nil
	}

	s.eng.Teardown(context.Background())
	result := msg.Result
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(result)}
	}
}

func (s *ExamScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.eng == nil {
		return s, nil
	}

	// Failed submission: retry or leave. Progress is safe either way.
	if s.eng.Status() == exam.SessionError {
		switch key {
		case "r", "R":
			return s, s.submitCmd(engine.TriggerUser)
		case "esc", "q":
			s.eng.Teardown(context.Background())
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if s.submitting || s.timedOut {
		return s, nil
	}

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.eng.Teardown(context.Background())
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if s.confirmSubmit {
		switch key {
		case "y", "Y", "enter":
			s.confirmSubmit = false
			return s, s.submitCmd(engine.TriggerUser)
		case "n", "N", "esc":
			s.confirmSubmit = false
		}
		return s, nil
	}

	if s.paletteMode {
		return s.handlePaletteKey(key)
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "s", "S":
		s.commitNumericValue()
		s.confirmSubmit = true
		return s, nil
	case "p", "P":
		s.commitNumericValue()
		s.paletteMode = true
		s.refreshPalette()
		s.palette.Cursor = s.eng.CurrentIndex()
		return s, nil
	case "m", "M":
		s.eng.ToggleReview()
		return s, nil
	case "right", "l", "tab":
		s.commitNumericValue()
		if s.eng.Next() {
			s.syncInputs()
		}
		return s, nil
	case "left", "h", "shift+tab":
		s.commitNumericValue()
		if s.eng.Prev() {
			s.syncInputs()
		}
		return s, nil
	case "ctrl+d":
		s.eng.SelectAnswer(nil)
		s.syncInputs()
		return s, nil
	}

	return s.handleAnswerKey(msg)
}

func (s *ExamScreen) handlePaletteKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "esc", "p", "P":
		s.paletteMode = false
	case "left", "h":
		s.palette = s.palette.MoveCursor(-1)
	case "right", "l":
		s.palette = s.palette.MoveCursor(1)
	case "up", "k":
		s.palette = s.palette.MoveCursor(-s.palette.Columns)
	case "down", "j":
		s.palette = s.palette.MoveCursor(s.palette.Columns)
	case "enter":
		s.paletteMode = false
		if s.eng.JumpTo(s.palette.Cursor) {
			s.syncInputs()
		}
	}
	return s, nil
}

// handleAnswerKey routes remaining keys to the active answer widget.
func (s *ExamScreen) handleAnswerKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	q := s.eng.CurrentQuestion()
	if q == nil {
		return s, nil
	}

	if q.Type == exam.Numerical {
		if msg.String() == "enter" {
			s.commitNumericValue()
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	var changed bool
	s.options, changed = s.options.Update(msg)
	if changed {
		checked := s.options.Checked()
		if checked == nil {
			s.eng.SelectAnswer(nil)
		} else {
			s.eng.SelectAnswer(&exam.Answer{Options: checked})
		}
	}
	return s, nil
}

// commitNumericValue records the numeric input as the current answer.
// Clearing the field clears the answer.
func (s *ExamScreen) commitNumericValue() {
	q := s.eng.CurrentQuestion()
	if q == nil || q.Type != exam.Numerical {
		return
	}
	val := s.input.Value()
	att := s.eng.AttemptAt(s.eng.CurrentIndex())
	prev := ""
	if att != nil && att.Answer != nil {
		prev = att.Answer.Value
	}
	if val == prev {
		return
	}
	if val == "" {
		s.eng.SelectAnswer(nil)
		return
	}
	s.eng.SelectAnswer(&exam.Answer{Value: val})
}

// syncInputs rebuilds the answer widgets from the current attempt after
// the cursor moved.
func (s *ExamScreen) syncInputs() {
	q := s.eng.CurrentQuestion()
	if q == nil {
		return
	}
	att := s.eng.AttemptAt(s.eng.CurrentIndex())

	if q.Type == exam.Numerical {
		initial := ""
		if att != nil && att.Answer != nil {
			initial = att.Answer.Value
		}
		s.input = components.NewNumericInput(initial)
	} else {
		var checked []int
		if att != nil && att.Answer != nil {
			checked = att.Answer.Options
		}
		s.options = components.NewOptionList(q.Options, q.Type == exam.MultipleChoice, checked)
	}
	s.refreshPalette()
}

// refreshPalette recomputes cell states from the engine.
func (s *ExamScreen) refreshPalette() {
	for i := range s.palette.States {
		switch {
		case s.eng.MarkedForReview(i):
			s.palette.States[i] = components.CellReview
		case s.eng.Answered(i):
			s.palette.States[i] = components.CellAnswered
		case s.eng.Visited(i):
			s.palette.States[i] = components.CellVisited
		default:
			s.palette.States[i] = components.CellUnvisited
		}
	}
	s.palette.Current = s.eng.CurrentIndex()
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
