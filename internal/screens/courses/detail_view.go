package courses

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/coursely/internal/ui/components"
	"github.com/abhisek/coursely/internal/ui/theme"
)

func (d *DetailScreen) View(width, height int) string {
	if d.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  " + d.errMsg)
	}
	if !d.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Loading course...")
	}

	var b strings.Builder
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	b.WriteString("  " + dimStyle.Render(d.course.Description))
	b.WriteString("\n\n")
	b.WriteString("  " + d.renderStatusLine())
	b.WriteString("\n\n")

	if d.enrollment != nil {
		bar := components.NewProgressBar("Progress", d.snap.Percentage(), true, min(width-8, 48))
		b.WriteString("  " + bar.View())
		b.WriteString("\n\n")
	}

	for i := range d.course.Lessons {
		b.WriteString(d.renderLessonRow(i, i == d.selected))
		b.WriteString("\n")
	}

	if d.course.Quiz != nil {
		b.WriteString("\n")
		b.WriteString(d.renderQuizLine())
		b.WriteString("\n")
	}

	if d.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render("  " + d.notice))
		b.WriteString("\n")
	}

	return b.String()
}

// renderStatusLine summarizes enrollment and certificate state.
func (d *DetailScreen) renderStatusLine() string {
	if d.cert != nil {
		return theme.Passed.Render("❖ Certificate earned · " + d.cert.Number)
	}
	if d.enrollment == nil {
		if d.course.PriceCents > 0 {
			return lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("Not enrolled · $%d.%02d unlocks every lesson",
					d.course.PriceCents/100, d.course.PriceCents%100))
		}
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Not enrolled")
	}
	if d.enrollment.Paid {
		return lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render("▣ Enrolled · all lessons unlocked")
	}
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render("▣ Enrolled · free track")
}

func (d *DetailScreen) renderLessonRow(i int, selected bool) string {
	lesson := d.course.Lessons[i]

	prefix := "   "
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		prefix = " ▸ "
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	done, known := d.snap.LessonCompleted(lesson.ID)
	unlocked := i < len(d.accessible) && d.accessible[i]

	marker := "○"
	markerStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	switch {
	case known && done:
		marker = "●"
		markerStyle = lipgloss.NewStyle().Foreground(theme.Success)
	case !unlocked:
		marker = "⊘"
		markerStyle = theme.Locked
		style = lipgloss.NewStyle().Foreground(theme.TextDim)
	}

	title := lesson.Title
	if len(title) > 40 {
		title = title[:37] + "..."
	}

	meta := fmt.Sprintf("%d min", lesson.DurationMins)
	if lesson.Free {
		meta += " · free"
	}

	return prefix + markerStyle.Render(marker) + " " + style.Render(fmt.Sprintf("%-40s", title)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+meta)
}

// renderQuizLine shows quiz gate state and the best recorded result.
func (d *DetailScreen) renderQuizLine() string {
	q := d.course.Quiz
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	label := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render("  ◆ " + q.Title)

	var parts []string
	parts = append(parts, fmt.Sprintf("pass ≥ %d", q.PassingScore))
	if q.TimeLimitMinutes > 0 {
		parts = append(parts, fmt.Sprintf("%d min limit", q.TimeLimitMinutes))
	}
	if q.MaxAttempts > 0 {
		parts = append(parts, fmt.Sprintf("attempt %d of %d", min(d.attempts+1, q.MaxAttempts), q.MaxAttempts))
	}

	line := label + dim.Render("  "+strings.Join(parts, " · "))

	if d.best != nil {
		resStyle := theme.Failed
		verdict := "not passed"
		if d.best.Passed {
			resStyle = theme.Passed
			verdict = "passed"
		}
		line += "\n" + dim.Render("    best score ") +
			resStyle.Render(fmt.Sprintf("%d", d.best.Score)) +
			dim.Render(" · ") + resStyle.Render(verdict)
	}

	return line
}
