package examroom

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/examdeck/internal/exam"
	"github.com/abhisek/examdeck/internal/ui/theme"
)

func (s *ExamScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.eng == nil {
		return renderLoading(width)
	}
	if s.eng.Status() == exam.SessionError {
		return s.renderSubmitError(width)
	}
	if s.submitting || s.timedOut {
		return s.renderSubmitting(width)
	}
	if s.confirmQuit {
		return renderConfirm(width,
			"Leave the exam?",
			"The countdown pauses and your answers are saved.",
			"[Y] Yes, leave", "[N] No, stay")
	}
	if s.confirmSubmit {
		return renderConfirm(width,
			"Submit the test?",
			fmt.Sprintf("%d of %d answered. Unanswered questions score zero.",
				s.eng.AnsweredCount(), s.eng.QuestionCount()),
			"[Y] Yes, submit", "[N] Not yet")
	}
	if s.paletteMode {
		return s.renderPalette(width)
	}
	return s.renderQuestion(width)
}

func (s *ExamScreen) renderQuestion(width int) string {
	q := s.eng.CurrentQuestion()
	if q == nil {
		return renderLoading(width)
	}
	idx := s.eng.CurrentIndex()

	var b strings.Builder

	// Info line: position, subject, answered count, review marker.
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", idx+1, s.eng.QuestionCount()))
	if q.Subject != "" {
		left += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  " + q.Subject)
	}

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("answered %d  review %d", s.eng.AnsweredCount(), s.eng.ReviewCount()))

	infoLine := left
	rightPad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + right
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if s.eng.MarkedForReview(idx) {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Review).
			Render("* marked for review *"))
		b.WriteString("\n\n")
	}

	promptStyle := lipgloss.NewStyle().
		Width(min(width-8, 80)).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, promptStyle.Render(q.Prompt)))
	b.WriteString("\n\n")

	switch q.Type {
	case exam.Numerical:
		answerLine := "Answer: " + s.input.View()
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, answerLine))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Enter saves, Ctrl+D clears"))
	default:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View()))
		hint := "Arrows + Space to pick"
		if q.Type == exam.MultipleChoice {
			hint = "Arrows + Space to toggle (several may apply)"
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n" + hint))
	}

	return b.String()
}

func (s *ExamScreen) renderPalette(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Question palette"))
	b.WriteString("\n\n")
	b.WriteString(s.palette.View(width))
	return b.String()
}

func (s *ExamScreen) renderSubmitting(width int) string {
	label := "Submitting your answers..."
	if s.timedOut {
		label = "Time is up! Submitting your answers..."
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render("\n\n\n" + label)
}

func (s *ExamScreen) renderSubmitError(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render("Submission failed"))
	b.WriteString("\n\n")
	if err := s.eng.Err(); err != nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(err.Error()))
		b.WriteString("\n\n")
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("Your answers are saved locally. Press R to retry, Esc to leave."))
	return b.String()
}

func renderConfirm(width int, title, detail, yes, no string) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(detail))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render(yes))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render(no))
	return b.String()
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Preparing your exam...")
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
