package quiz

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/coursely/internal/attempt"
	"github.com/abhisek/coursely/internal/catalog"
	"github.com/abhisek/coursely/internal/certificate"
	"github.com/abhisek/coursely/internal/progress"
	"github.com/abhisek/coursely/internal/router"
	"github.com/abhisek/coursely/internal/screen"
	"github.com/abhisek/coursely/internal/screens/results"
	"github.com/abhisek/coursely/internal/store"
	"github.com/abhisek/coursely/internal/ui/components"
	"github.com/abhisek/coursely/internal/ui/layout"
)

// QuizScreen drives one attempt at a course's final quiz.
type QuizScreen struct {
	course    catalog.Course
	quiz      catalog.Quiz
	userID    string
	manager   *attempt.Manager
	st        *store.Store
	tracker   *progress.Tracker
	evaluator *certificate.Evaluator

	session *attempt.Session
	picker  components.OptionPicker

	showingSubmitConfirm  bool
	showingAbandonConfirm bool
	submitting            bool
	errMsg                string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.EscHandler = (*QuizScreen)(nil)

// New creates the quiz screen. The attempt itself starts in Init so the
// clock only runs once the screen is live.
func New(course catalog.Course, q catalog.Quiz, userID string, manager *attempt.Manager, st *store.Store, tracker *progress.Tracker, evaluator *certificate.Evaluator) *QuizScreen {
	return &QuizScreen{
		course:    course,
		quiz:      q,
		userID:    userID,
		manager:   manager,
		st:        st,
		tracker:   tracker,
		evaluator: evaluator,
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return q.startAttempt()
}

func (q *QuizScreen) Title() string {
	return q.quiz.Title
}

// HandlesEsc keeps Esc inside the screen while an attempt is live, so
// backing out always goes through the abandon confirmation.
func (q *QuizScreen) HandlesEsc() bool {
	return q.session != nil && q.session.Status() == attempt.StatusInProgress
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.showingSubmitConfirm || q.showingAbandonConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Confirm"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Option"},
		{Key: "Enter", Description: "Answer"},
		{Key: "←→", Description: "Question"},
		{Key: "S", Description: "Submit"},
		{Key: "Esc", Description: "Abandon"},
	}
}

// startAttempt resumes a live session when one exists, otherwise opens a
// fresh attempt.
func (q *QuizScreen) startAttempt() tea.Cmd {
	manager := q.manager
	quiz := q.quiz
	userID := q.userID
	return func() tea.Msg {
		if s, ok := manager.Active(quiz.ID, userID); ok {
			return attemptStartedMsg{Session: s, Resumed: true}
		}
		s, err := manager.Start(context.Background(), quiz, userID)
		return attemptStartedMsg{Session: s, Err: err}
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case attemptStartedMsg:
		return q.handleStarted(msg)

	case timerTickMsg:
		return q.handleTick()

	case completeDoneMsg:
		return q.handleCompleted(msg)

	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	return q, nil
}

func (q *QuizScreen) handleStarted(msg attemptStartedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		switch {
		case errors.Is(msg.Err, attempt.ErrAttemptsExhausted):
			q.errMsg = "You have used all attempts for this quiz."
		case errors.Is(msg.Err, attempt.ErrAttemptInProgress):
			q.errMsg = "Another attempt is already running."
		default:
			q.errMsg = msg.Err.Error()
		}
		return q, nil
	}

	q.session = msg.Session
	q.rebuildPicker()

	if q.quiz.TimeLimitMinutes > 0 {
		return q, tickCmd()
	}
	return q, nil
}

func (q *QuizScreen) handleTick() (screen.Screen, tea.Cmd) {
	if q.session == nil {
		return q, nil
	}

	status := q.session.Status()
	if status == attempt.StatusTimedOut {
		return q.showResults(true)
	}
	if status.Terminal() {
		return q, nil
	}

	return q, tickCmd()
}

func (q *QuizScreen) handleCompleted(msg completeDoneMsg) (screen.Screen, tea.Cmd) {
	q.submitting = false

	if msg.Err != nil {
		// A timeout can beat the submission; the recorded outcome wins.
		if errors.Is(msg.Err, attempt.ErrAlreadyFinalized) {
			return q.showResults(q.session.Status() == attempt.StatusTimedOut)
		}
		q.errMsg = "Submission failed: " + msg.Err.Error()
		return q, nil
	}

	return q.showResults(false)
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state, any key goes back.
	if q.errMsg != "" {
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if q.session == nil || q.submitting {
		return q, nil
	}

	if q.showingAbandonConfirm {
		switch key {
		case "y", "Y":
			q.showingAbandonConfirm = false
			_ = q.session.Abandon()
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			q.showingAbandonConfirm = false
		}
		return q, nil
	}

	if q.showingSubmitConfirm {
		switch key {
		case "y", "Y", "enter":
			q.showingSubmitConfirm = false
			return q.submit()
		case "n", "N", "esc":
			q.showingSubmitConfirm = false
		}
		return q, nil
	}

	switch key {
	case "esc":
		q.showingAbandonConfirm = true
		return q, nil
	case "s":
		q.showingSubmitConfirm = true
		return q, nil
	case "enter":
		return q.recordCurrent()
	case "left", "h", "p":
		return q.navigate(-1)
	case "right", "l", "n":
		return q.navigate(+1)
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		question := q.session.CurrentQuestion()
		if idx < len(question.Options) {
			q.picker.Selected = idx
			return q.recordCurrent()
		}
		return q, nil
	}

	var cmd tea.Cmd
	q.picker, cmd = q.picker.Update(msg)
	return q, cmd
}

// recordCurrent persists the option under the cursor for the current
// question.
func (q *QuizScreen) recordCurrent() (screen.Screen, tea.Cmd) {
	opt, ok := q.picker.Current()
	if !ok {
		return q, nil
	}

	question := q.session.CurrentQuestion()
	if err := q.session.RecordAnswer(question.ID, opt.ID); err != nil {
		var stateErr *attempt.StateError
		if errors.As(err, &stateErr) {
			return q.showResults(q.session.Status() == attempt.StatusTimedOut)
		}
		q.errMsg = err.Error()
		return q, nil
	}

	q.picker.ChosenID = opt.ID

	// Step to the next unanswered question, wrapping is not needed.
	snap := q.session.Snapshot()
	if snap.CurrentQuestionIndex < snap.TotalQuestions-1 {
		return q.navigate(+1)
	}
	return q, nil
}

func (q *QuizScreen) navigate(delta int) (screen.Screen, tea.Cmd) {
	snap := q.session.Snapshot()
	if err := q.session.Navigate(snap.CurrentQuestionIndex + delta); err != nil {
		return q, nil
	}
	q.rebuildPicker()
	return q, nil
}

// rebuildPicker resets the option picker to the current question.
func (q *QuizScreen) rebuildPicker() {
	question := q.session.CurrentQuestion()
	opts := make([]components.PickOption, len(question.Options))
	for i, o := range question.Options {
		opts[i] = components.PickOption{ID: o.ID, Text: o.Text}
	}
	chosen, _ := q.session.Answer(question.ID)
	q.picker = components.NewOptionPicker(opts, chosen)
}

// submit runs the completion round-trip off the UI loop.
func (q *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	q.submitting = true
	session := q.session
	return q, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		result, err := session.Complete(ctx)
		return completeDoneMsg{Result: result, Err: err}
	}
}

// showResults swaps this screen for the results view so Esc from there
// lands back on the course.
func (q *QuizScreen) showResults(timedOut bool) (screen.Screen, tea.Cmd) {
	result, ok := q.session.Result()
	if !ok {
		if q.session.Status() == attempt.StatusAbandoned {
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		}
		// A timed-out submission is scored in the background; keep
		// ticking until the score lands.
		return q, tickCmd()
	}

	rs := results.New(q.course, q.quiz, q.userID, result, timedOut, q.st, q.tracker, q.evaluator)
	return q, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: rs}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
