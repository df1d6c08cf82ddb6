package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/examdeck/internal/bank"
	"github.com/abhisek/examdeck/internal/engine"
	"github.com/abhisek/examdeck/internal/exam"
	"github.com/abhisek/examdeck/internal/remote"
	"github.com/abhisek/examdeck/internal/router"
	"github.com/abhisek/examdeck/internal/screen"
	"github.com/abhisek/examdeck/internal/screens/examroom"
	"github.com/abhisek/examdeck/internal/screens/results"
	"github.com/abhisek/examdeck/internal/store"
	"github.com/abhisek/examdeck/internal/ui/components"
	"github.com/abhisek/examdeck/internal/ui/theme"
)

// TestDefaults configures what "start new test" generates.
type TestDefaults struct {
	QuestionCount int
	DurationSecs  int
	Shuffle       bool
}

// HomeScreen is the main menu.
type HomeScreen struct {
	repo       store.SessionRepo
	bankRepo   store.BankRepo
	remote     remote.Client
	generator  *bank.Generator
	defaults   TestDefaults
	hbInterval time.Duration

	menu      components.Menu
	bankSize  int
	openCount int
	doneCount int
	errMsg    string
}

var _ screen.Screen = (*HomeScreen)(nil)

// startFailedMsg reports a failed session generation.
type startFailedMsg struct {
	Err error
}

// New creates a new HomeScreen and loads its counters from the store.
func New(repo store.SessionRepo, bankRepo store.BankRepo, rc remote.Client, defaults TestDefaults, hbInterval time.Duration) *HomeScreen {
	h := &HomeScreen{
		repo:       repo,
		bankRepo:   bankRepo,
		remote:     rc,
		generator:  bank.NewGenerator(bankRepo, repo),
		defaults:   defaults,
		hbInterval: hbInterval,
	}
	h.refresh()
	return h
}

// refresh reloads the counters and rebuilds the menu around them.
func (h *HomeScreen) refresh() {
	ctx := context.Background()

	h.bankSize, _ = h.bankRepo.CountQuestions(ctx)

	var lastOpen *exam.TestSession
	h.openCount, h.doneCount = 0, 0
	if sessions, err := h.repo.ListSessions(ctx); err == nil {
		for _, s := range sessions {
			if s.Completed() {
				h.doneCount++
				continue
			}
			h.openCount++
			if lastOpen == nil {
				lastOpen = s
			}
		}
	}

	items := []components.MenuItem{
		{
			Label:    "START NEW TEST",
			Disabled: h.bankSize < h.defaults.QuestionCount,
			Action:   h.startNewTest,
		},
		{
			Label:    "RESUME LAST TEST",
			Disabled: lastOpen == nil,
			Action:   h.resume(lastOpen),
		},
		{
			Label: "SESSIONS & RESULTS",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: results.New(h.repo, h.remote, h.hbInterval),
					}
				}
			},
		},
		{
			Label: "QUIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}
	h.menu = components.NewMenu(items)
}

// startNewTest generates a fresh session and enters the exam room.
func (h *HomeScreen) startNewTest() tea.Cmd {
	return func() tea.Msg {
		session, err := h.generator.Generate(context.Background(), bank.GenerateInput{
			Count:        h.defaults.QuestionCount,
			DurationSecs: h.defaults.DurationSecs,
			Shuffle:      h.defaults.Shuffle,
		})
		if err != nil {
			return startFailedMsg{Err: err}
		}
		return router.PushScreenMsg{
			Screen: examroom.New(h.repo, h.remote, session.ID, engine.DefaultOptions(), h.hbInterval),
		}
	}
}

func (h *HomeScreen) resume(s *exam.TestSession) func() tea.Cmd {
	if s == nil {
		return nil
	}
	sessionID := s.ID
	return func() tea.Cmd {
		return func() tea.Msg {
			return router.PushScreenMsg{
				Screen: examroom.New(h.repo, h.remote, sessionID, engine.DefaultOptions(), h.hbInterval),
			}
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startFailedMsg:
		h.errMsg = msg.Err.Error()
		return h, nil
	case router.PushScreenMsg:
		// Coming back from a screen does not re-run Update, so counters
		// are refreshed on the way in instead.
		h.errMsg = ""
	}

	// Any interaction after a pop may have changed the store.
	if _, ok := msg.(tea.KeyMsg); ok {
		h.refreshOnReturn()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// refreshOnReturn keeps the counters honest after a test was taken.
func (h *HomeScreen) refreshOnReturn() {
	selected := h.menu.Selected
	h.refresh()
	if selected < len(h.menu.Items) {
		h.menu.Selected = selected
	}
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("EXAMDECK"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Timed mock tests in your terminal"))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Bank: %d questions    Open: %d    Completed: %d",
		h.bankSize, h.openCount, h.doneCount)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(stats))
	b.WriteString("\n\n")

	if h.bankSize < h.defaults.QuestionCount {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(fmt.Sprintf("Import a question bank first: examdeck import <file> (need %d questions)",
				h.defaults.QuestionCount)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	if h.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(h.errMsg))
	}

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
