package results

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/examdeck/internal/engine"
	"github.com/abhisek/examdeck/internal/exam"
	"github.com/abhisek/examdeck/internal/remote"
	"github.com/abhisek/examdeck/internal/router"
	"github.com/abhisek/examdeck/internal/screen"
	"github.com/abhisek/examdeck/internal/screens/examroom"
	"github.com/abhisek/examdeck/internal/store"
	"github.com/abhisek/examdeck/internal/ui/layout"
	"github.com/abhisek/examdeck/internal/ui/theme"
)

// ResultsScreen lists past and in-flight sessions. Ready sessions can be
// resumed from here.
type ResultsScreen struct {
	repo       store.SessionRepo
	remote     remote.Client
	hbInterval time.Duration

	sessions []*exam.TestSession
	cursor   int
	errMsg   string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// sessionsLoadedMsg delivers the session list.
type sessionsLoadedMsg struct {
	Sessions []*exam.TestSession
	Err      error
}

// New creates a ResultsScreen.
func New(repo store.SessionRepo, rc remote.Client, hbInterval time.Duration) *ResultsScreen {
	return &ResultsScreen{repo: repo, remote: rc, hbInterval: hbInterval}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		sessions, err := s.repo.ListSessions(context.Background())
		return sessionsLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (s *ResultsScreen) Title() string {
	return "Sessions"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
	}
	if sel := s.selected(); sel != nil && !sel.Completed() {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Resume"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *ResultsScreen) selected() *exam.TestSession {
	if s.cursor < 0 || s.cursor >= len(s.sessions) {
		return nil
	}
	return s.sessions[s.cursor]
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.sessions = msg.Sessions
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.sessions)-1 {
				s.cursor++
			}
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			sel := s.selected()
			if sel == nil || sel.Completed() {
				return s, nil
			}
			room := examroom.New(s.repo, s.remote, sel.ID, engine.DefaultOptions(), s.hbInterval)
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: room} }
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  Error: " + s.errMsg)
	}

	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  No sessions yet. Start a test from the home screen.")
	}

	var b strings.Builder
	b.WriteString("\n")

	header := fmt.Sprintf("  %-30s %-11s %8s %9s  %s",
		"Title", "Status", "Score", "Accuracy", "Date")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(header))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(
		"  " + strings.Repeat("─", max(width-8, 0))))
	b.WriteString("\n")

	for i, sess := range s.sessions {
		title := sess.Title
		if len(title) > 28 {
			title = title[:25] + "..."
		}

		score, accuracy, date := "-", "-", sess.CreatedAt.Format("Jan 2 15:04")
		if sess.Completed() {
			score = fmt.Sprintf("%.2f", sess.TotalScore)
			accuracy = fmt.Sprintf("%.0f%%", sess.Accuracy*100)
			if sess.CompletedAt != nil {
				date = sess.CompletedAt.Format("Jan 2 15:04")
			}
		}

		line := fmt.Sprintf("  %-30s %-11s %8s %9s  %s",
			title, sess.Status, score, accuracy, date)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if sess.Completed() {
			style = style.Foreground(theme.TextDim)
		}
		if i == s.cursor {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			line = ">" + line[1:]
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
