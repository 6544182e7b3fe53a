package results

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/coursely/internal/attempt"
	"github.com/abhisek/coursely/internal/catalog"
	"github.com/abhisek/coursely/internal/certificate"
	"github.com/abhisek/coursely/internal/progress"
	"github.com/abhisek/coursely/internal/router"
	"github.com/abhisek/coursely/internal/screen"
	"github.com/abhisek/coursely/internal/store"
	"github.com/abhisek/coursely/internal/ui/components"
	"github.com/abhisek/coursely/internal/ui/layout"
	"github.com/abhisek/coursely/internal/ui/theme"
)

// certOutcomeMsg delivers the post-attempt certificate decision.
type certOutcomeMsg struct {
	Decision certificate.Decision
	Cert     *certificate.Certificate
	Err      error
}

// ResultsScreen shows the outcome of a submitted quiz attempt.
type ResultsScreen struct {
	course    catalog.Course
	quiz      catalog.Quiz
	userID    string
	result    attempt.ScoreResult
	timedOut  bool
	st        *store.Store
	tracker   *progress.Tracker
	evaluator *certificate.Evaluator

	certChecked bool
	decision    certificate.Decision
	cert        *certificate.Certificate
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen for a scored attempt.
func New(course catalog.Course, q catalog.Quiz, userID string, result attempt.ScoreResult, timedOut bool, st *store.Store, tracker *progress.Tracker, evaluator *certificate.Evaluator) *ResultsScreen {
	return &ResultsScreen{
		course:    course,
		quiz:      q,
		userID:    userID,
		result:    result,
		timedOut:  timedOut,
		st:        st,
		tracker:   tracker,
		evaluator: evaluator,
	}
}

// Init kicks off the certificate check. A passing attempt on a fully
// watched course earns the certificate right here.
func (r *ResultsScreen) Init() tea.Cmd {
	course := r.course
	userID := r.userID
	st := r.st
	tracker := r.tracker
	evaluator := r.evaluator
	return func() tea.Msg {
		ctx := context.Background()

		enr, err := st.EnrollmentRepo().ForUserCourse(ctx, userID, course.ID)
		if err != nil || enr == nil {
			return certOutcomeMsg{Err: err}
		}

		lessonIDs := make([]string, len(course.Lessons))
		for i, l := range course.Lessons {
			lessonIDs[i] = l.ID
		}
		snap, err := tracker.Recompute(ctx, enr.EnrollmentID, lessonIDs)
		if err != nil {
			return certOutcomeMsg{Err: err}
		}

		best, err := st.AttemptRepo().BestAttempt(ctx, course.Quiz.ID, userID)
		if err != nil {
			return certOutcomeMsg{Err: err}
		}

		decision, cert, err := evaluator.Evaluate(ctx, userID, course.ID, certificate.CourseResult{
			Progress:    snap,
			HasQuiz:     true,
			BestAttempt: best,
		})
		return certOutcomeMsg{Decision: decision, Cert: cert, Err: err}
	}
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to course"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case certOutcomeMsg:
		if msg.Err == nil {
			r.certChecked = true
			r.decision = msg.Decision
			r.cert = msg.Cert
		}
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc", "q":
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	// Verdict.
	if r.result.Passed {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Quiz passed!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not passed"))
	}
	b.WriteString("\n")

	if r.timedOut {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("Time ran out; your recorded answers were scored."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Score against the bar.
	scoreLine := fmt.Sprintf("Score: %d        Passing score: %d", r.result.Score, r.quiz.PassingScore)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(scoreLine))
	b.WriteString("\n\n")

	// Certificate outcome.
	if r.certChecked {
		switch {
		case r.decision == certificate.Eligible && r.cert != nil:
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Accent).
				Bold(true).
				Render("❖ Certificate earned: " + r.cert.Number))
			b.WriteString("\n\n")
		case r.decision == certificate.NotEligible && r.result.Passed:
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render("Finish every lesson to earn the certificate."))
			b.WriteString("\n\n")
		}
	}

	if !r.result.Passed {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Review the lessons and try again from the course page."))
		b.WriteString("\n\n")
	}

	back := components.NewButton("Back to course", true, nil)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, back.View()))

	return b.String()
}
