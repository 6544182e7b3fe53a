package courses

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/coursely/internal/attempt"
	"github.com/abhisek/coursely/internal/catalog"
	"github.com/abhisek/coursely/internal/certificate"
	"github.com/abhisek/coursely/internal/progress"
	"github.com/abhisek/coursely/internal/router"
	"github.com/abhisek/coursely/internal/screen"
	"github.com/abhisek/coursely/internal/store"
	"github.com/abhisek/coursely/internal/ui/components"
	"github.com/abhisek/coursely/internal/ui/layout"
)

// enrollmentsLoadedMsg delivers the user's enrollments for list markers.
type enrollmentsLoadedMsg struct {
	Enrollments map[string]store.EnrollmentRecord // courseID -> record
	Err         error
}

// CoursesScreen lists the course catalog with enrollment markers and an
// incremental title filter.
type CoursesScreen struct {
	userID    string
	st        *store.Store
	tracker   *progress.Tracker
	evaluator *certificate.Evaluator
	manager   *attempt.Manager

	all         []catalog.Course
	visible     []catalog.Course
	selected    int
	search      components.SearchInput
	enrollments map[string]store.EnrollmentRecord
	errMsg      string
}

var _ screen.Screen = (*CoursesScreen)(nil)
var _ screen.KeyHintProvider = (*CoursesScreen)(nil)
var _ screen.EscHandler = (*CoursesScreen)(nil)

// New creates the catalog browsing screen.
func New(userID string, st *store.Store, tracker *progress.Tracker, evaluator *certificate.Evaluator, manager *attempt.Manager) *CoursesScreen {
	all := catalog.Courses()
	return &CoursesScreen{
		userID:    userID,
		st:        st,
		tracker:   tracker,
		evaluator: evaluator,
		manager:   manager,
		all:       all,
		visible:   all,
		search:    components.NewSearchInput("type to filter...", 40),
	}
}

func (c *CoursesScreen) Init() tea.Cmd {
	return c.loadEnrollments()
}

func (c *CoursesScreen) Title() string {
	return "Courses"
}

func (c *CoursesScreen) HandlesEsc() bool {
	return c.search.Focused()
}

func (c *CoursesScreen) KeyHints() []layout.KeyHint {
	if c.search.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply filter"},
			{Key: "Esc", Description: "Clear filter"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open course"},
		{Key: "/", Description: "Filter"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *CoursesScreen) loadEnrollments() tea.Cmd {
	userID := c.userID
	repo := c.st.EnrollmentRepo()
	return func() tea.Msg {
		records, err := repo.ListForUser(context.Background(), userID)
		if err != nil {
			return enrollmentsLoadedMsg{Err: err}
		}
		byCourse := make(map[string]store.EnrollmentRecord, len(records))
		for _, rec := range records {
			byCourse[rec.CourseID] = rec
		}
		return enrollmentsLoadedMsg{Enrollments: byCourse}
	}
}

func (c *CoursesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case enrollmentsLoadedMsg:
		if msg.Err != nil {
			c.errMsg = msg.Err.Error()
			return c, nil
		}
		c.enrollments = msg.Enrollments
		return c, nil

	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	return c, nil
}

func (c *CoursesScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if c.search.Focused() {
		switch key {
		case "enter":
			c.search = c.search.Blur()
			return c, nil
		case "esc":
			c.search = c.search.Blur().Reset()
			c.applyFilter()
			return c, nil
		}
		var cmd tea.Cmd
		c.search, cmd = c.search.Update(msg)
		c.applyFilter()
		return c, cmd
	}

	switch key {
	case "up", "k":
		if c.selected > 0 {
			c.selected--
		}
	case "down", "j":
		if c.selected < len(c.visible)-1 {
			c.selected++
		}
	case "/":
		var cmd tea.Cmd
		c.search, cmd = c.search.Focus()
		return c, cmd
	case "enter":
		if c.selected >= 0 && c.selected < len(c.visible) {
			course := c.visible[c.selected]
			return c, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: newDetail(course, c.userID, c.st, c.tracker, c.evaluator, c.manager),
				}
			}
		}
	}

	return c, nil
}

// applyFilter narrows the visible list to courses whose title contains
// the filter text, case-insensitively.
func (c *CoursesScreen) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(c.search.Value()))
	if query == "" {
		c.visible = c.all
	} else {
		filtered := make([]catalog.Course, 0, len(c.all))
		for _, course := range c.all {
			if strings.Contains(strings.ToLower(course.Title), query) {
				filtered = append(filtered, course)
			}
		}
		c.visible = filtered
	}
	if c.selected >= len(c.visible) {
		c.selected = len(c.visible) - 1
	}
	if c.selected < 0 {
		c.selected = 0
	}
}
