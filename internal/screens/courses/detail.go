package courses

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/coursely/internal/access"
	"github.com/abhisek/coursely/internal/attempt"
	"github.com/abhisek/coursely/internal/catalog"
	"github.com/abhisek/coursely/internal/certificate"
	"github.com/abhisek/coursely/internal/progress"
	"github.com/abhisek/coursely/internal/router"
	"github.com/abhisek/coursely/internal/screen"
	"github.com/abhisek/coursely/internal/screens/quiz"
	"github.com/abhisek/coursely/internal/store"
	"github.com/abhisek/coursely/internal/ui/layout"
)

// detailLoadedMsg delivers the learner's state for one course.
type detailLoadedMsg struct {
	Enrollment *store.EnrollmentRecord
	Snap       progress.Snapshot
	Best       *attempt.ScoreResult
	Cert       *certificate.Certificate
	Attempts   int
	Err        error
}

// enrolledMsg confirms an enrollment write.
type enrolledMsg struct {
	Record store.EnrollmentRecord
	Err    error
}

// lessonDoneMsg confirms a lesson completion write.
type lessonDoneMsg struct {
	Snap progress.Snapshot
	Err  error
}

// certEvalMsg delivers a certificate eligibility decision.
type certEvalMsg struct {
	Decision certificate.Decision
	Cert     *certificate.Certificate
	Err      error
}

// DetailScreen shows one course: its lessons with lock markers, the
// learner's progress, quiz access, and certificate state.
type DetailScreen struct {
	course    catalog.Course
	userID    string
	st        *store.Store
	tracker   *progress.Tracker
	evaluator *certificate.Evaluator
	manager   *attempt.Manager

	loaded     bool
	enrollment *store.EnrollmentRecord
	snap       progress.Snapshot
	accessible []bool
	best       *attempt.ScoreResult
	cert       *certificate.Certificate
	attempts   int

	selected int
	notice   string
	errMsg   string
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

func newDetail(course catalog.Course, userID string, st *store.Store, tracker *progress.Tracker, evaluator *certificate.Evaluator, manager *attempt.Manager) *DetailScreen {
	return &DetailScreen{
		course:    course,
		userID:    userID,
		st:        st,
		tracker:   tracker,
		evaluator: evaluator,
		manager:   manager,
	}
}

func (d *DetailScreen) Init() tea.Cmd {
	return d.load()
}

func (d *DetailScreen) Title() string {
	return d.course.Title
}

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Lessons"},
		{Key: "Enter", Description: "Complete lesson"},
	}
	if d.enrollment == nil {
		hints = append(hints, layout.KeyHint{Key: "E", Description: "Enroll"})
	} else if !d.enrollment.Paid {
		hints = append(hints, layout.KeyHint{Key: "P", Description: "Unlock all (pay)"})
	}
	if d.course.Quiz != nil {
		hints = append(hints, layout.KeyHint{Key: "Q", Description: "Take quiz"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

// lessonIDs returns the course's lesson IDs in order.
func (d *DetailScreen) lessonIDs() []string {
	ids := make([]string, len(d.course.Lessons))
	for i, l := range d.course.Lessons {
		ids[i] = l.ID
	}
	return ids
}

// load fetches enrollment, progress, best attempt and certificate.
func (d *DetailScreen) load() tea.Cmd {
	course := d.course
	userID := d.userID
	st := d.st
	tracker := d.tracker
	lessonIDs := d.lessonIDs()
	return func() tea.Msg {
		ctx := context.Background()

		enr, err := st.EnrollmentRepo().ForUserCourse(ctx, userID, course.ID)
		if err != nil {
			return detailLoadedMsg{Err: err}
		}

		var snap progress.Snapshot
		if enr != nil {
			snap, err = tracker.Recompute(ctx, enr.EnrollmentID, lessonIDs)
			if err != nil {
				return detailLoadedMsg{Err: err}
			}
		} else {
			snap = progress.Compute("", lessonIDs, nil)
		}

		var best *attempt.ScoreResult
		var attempts int
		if course.Quiz != nil {
			best, err = st.AttemptRepo().BestAttempt(ctx, course.Quiz.ID, userID)
			if err != nil {
				return detailLoadedMsg{Err: err}
			}
			attempts, err = st.AttemptRepo().PriorAttempts(ctx, course.Quiz.ID, userID)
			if err != nil {
				return detailLoadedMsg{Err: err}
			}
		}

		cert, err := st.CertificateRepo().ForUserCourse(ctx, userID, course.ID)
		if err != nil {
			return detailLoadedMsg{Err: err}
		}

		return detailLoadedMsg{
			Enrollment: enr,
			Snap:       snap,
			Best:       best,
			Cert:       cert,
			Attempts:   attempts,
		}
	}
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case detailLoadedMsg:
		if msg.Err != nil {
			d.errMsg = msg.Err.Error()
			return d, nil
		}
		d.loaded = true
		d.enrollment = msg.Enrollment
		d.snap = msg.Snap
		d.best = msg.Best
		d.cert = msg.Cert
		d.attempts = msg.Attempts
		d.refreshAccess()
		return d, nil

	case enrolledMsg:
		if msg.Err != nil {
			d.notice = "Enrollment failed: " + msg.Err.Error()
			return d, nil
		}
		rec := msg.Record
		d.enrollment = &rec
		if rec.Paid {
			d.notice = "All lessons unlocked."
		} else {
			d.notice = "Enrolled. Lessons unlock as you complete them."
		}
		d.refreshAccess()
		return d, nil

	case lessonDoneMsg:
		if msg.Err != nil {
			d.notice = "Could not save progress: " + msg.Err.Error()
			return d, nil
		}
		d.snap = msg.Snap
		d.notice = ""
		d.refreshAccess()
		// Course completion may have just made a certificate earnable.
		if d.snap.Complete() && d.cert == nil {
			return d, d.evaluateCertificate()
		}
		return d, nil

	case certEvalMsg:
		if msg.Err != nil {
			d.notice = "Certificate issuance failed; it will be retried."
			return d, nil
		}
		switch msg.Decision {
		case certificate.Eligible:
			d.cert = msg.Cert
			if msg.Cert != nil {
				d.notice = "Certificate earned: " + msg.Cert.Number
			}
		case certificate.AlreadyIssued:
			if msg.Cert != nil {
				d.cert = msg.Cert
			}
		case certificate.NotEligible:
			if d.course.Quiz != nil && (d.best == nil || !d.best.Passed) {
				d.notice = "All lessons done. Pass the final quiz to earn your certificate."
			}
		}
		return d, nil

	case tea.KeyMsg:
		return d.handleKey(msg)
	}

	return d, nil
}

func (d *DetailScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if !d.loaded {
		return d, nil
	}

	switch msg.String() {
	case "up", "k":
		if d.selected > 0 {
			d.selected--
		}
	case "down", "j":
		if d.selected < len(d.course.Lessons)-1 {
			d.selected++
		}
	case "e":
		if d.enrollment == nil {
			return d, d.enroll(false)
		}
	case "p":
		if d.enrollment == nil || !d.enrollment.Paid {
			return d, d.enroll(true)
		}
	case "r":
		return d, d.load()
	case "enter":
		return d, d.completeSelectedLesson()
	case "q":
		return d.startQuiz()
	}

	return d, nil
}

// refreshAccess re-evaluates the per-lesson gate.
func (d *DetailScreen) refreshAccess() {
	var enr access.Enrollment
	if d.enrollment != nil {
		enr = access.Enrollment{Paid: d.enrollment.Paid}
	}
	d.accessible = access.Accessibility(d.course.Lessons, enr, d.snap)
}

func (d *DetailScreen) enroll(paid bool) tea.Cmd {
	repo := d.st.EnrollmentRepo()
	userID := d.userID
	courseID := d.course.ID
	return func() tea.Msg {
		rec, err := repo.Enroll(context.Background(), userID, courseID, paid)
		return enrolledMsg{Record: rec, Err: err}
	}
}

// completeSelectedLesson marks the selected lesson watched, when the
// gate allows it.
func (d *DetailScreen) completeSelectedLesson() tea.Cmd {
	if d.selected < 0 || d.selected >= len(d.course.Lessons) {
		return nil
	}
	if d.enrollment == nil {
		d.notice = "Enroll first (press E)."
		return nil
	}
	if d.selected < len(d.accessible) && !d.accessible[d.selected] {
		d.notice = "That lesson is locked. Finish the previous one or unlock the course."
		return nil
	}

	lesson := d.course.Lessons[d.selected]
	if done, _ := d.snap.LessonCompleted(lesson.ID); done {
		return nil
	}

	tracker := d.tracker
	enrollmentID := d.enrollment.EnrollmentID
	lessonIDs := d.lessonIDs()
	return func() tea.Msg {
		snap, err := tracker.MarkLessonCompleted(context.Background(), enrollmentID, lesson.ID, lessonIDs)
		return lessonDoneMsg{Snap: snap, Err: err}
	}
}

// evaluateCertificate runs the eligibility check off the UI loop.
func (d *DetailScreen) evaluateCertificate() tea.Cmd {
	evaluator := d.evaluator
	userID := d.userID
	courseID := d.course.ID
	result := certificate.CourseResult{
		Progress:    d.snap,
		HasQuiz:     d.course.Quiz != nil,
		BestAttempt: d.best,
	}
	return func() tea.Msg {
		decision, cert, err := evaluator.Evaluate(context.Background(), userID, courseID, result)
		return certEvalMsg{Decision: decision, Cert: cert, Err: err}
	}
}

func (d *DetailScreen) startQuiz() (screen.Screen, tea.Cmd) {
	if d.course.Quiz == nil {
		return d, nil
	}
	if d.enrollment == nil {
		d.notice = "Enroll first (press E)."
		return d, nil
	}
	if d.manager == nil {
		return d, nil
	}

	if q := d.course.Quiz; q.MaxAttempts > 0 && d.attempts >= q.MaxAttempts {
		if _, active := d.manager.Active(q.ID, d.userID); !active {
			d.notice = "No quiz attempts left."
			return d, nil
		}
	}

	qs := quiz.New(d.course, *d.course.Quiz, d.userID, d.manager, d.st, d.tracker, d.evaluator)
	return d, func() tea.Msg {
		return router.PushScreenMsg{Screen: qs}
	}
}
