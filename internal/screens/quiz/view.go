package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/coursely/internal/attempt"
	"github.com/abhisek/coursely/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	if q.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  %s\n\n  Press any key to go back.", q.errMsg))
	}
	if q.session == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Opening your attempt...")
	}
	if q.showingAbandonConfirm {
		return renderConfirm(width,
			"Abandon this attempt?",
			"It still counts toward your attempt limit.")
	}
	if q.showingSubmitConfirm {
		snap := q.session.Snapshot()
		detail := fmt.Sprintf("%d of %d questions answered.", snap.Answered, snap.TotalQuestions)
		return renderConfirm(width, "Submit your answers?", detail)
	}
	if q.submitting {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Submitting...")
	}
	if q.session.Status() == attempt.StatusTimedOut {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("\n\n\n  Time is up. Scoring your answers...")
	}

	return q.renderQuestionView(width)
}

func (q *QuizScreen) renderQuestionView(width int) string {
	snap := q.session.Snapshot()
	question := q.session.CurrentQuestion()

	var b strings.Builder

	// Status line: position, answered count and the countdown.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", snap.CurrentQuestionIndex+1, snap.TotalQuestions))

	right := fmt.Sprintf("answered %d/%d", snap.Answered, snap.TotalQuestions)
	if snap.RemainingSeconds >= 0 {
		timerStyle := lipgloss.NewStyle().Foreground(theme.Accent)
		if snap.RemainingSeconds <= 60 {
			timerStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		}
		right += "  " + timerStyle.Render(fmt.Sprintf("⏱ %d:%02d",
			snap.RemainingSeconds/60, snap.RemainingSeconds%60))
	}
	infoRight := lipgloss.NewStyle().Foreground(theme.TextDim).Render(right)

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Question text.
	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(question.Text))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, q.picker.View()))
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Pick (1-4) or arrows + Enter · S submits the attempt"))

	return b.String()
}

// renderConfirm renders a yes/no overlay.
func renderConfirm(width int, title, detail string) string {
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
		Render("[Y] Yes"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No"))

	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
