package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/coursely/internal/attempt"
	"github.com/abhisek/coursely/internal/certificate"
	"github.com/abhisek/coursely/internal/progress"
	"github.com/abhisek/coursely/internal/router"
	"github.com/abhisek/coursely/internal/screen"
	"github.com/abhisek/coursely/internal/screens/certvault"
	"github.com/abhisek/coursely/internal/screens/courses"
	"github.com/abhisek/coursely/internal/store"
	"github.com/abhisek/coursely/internal/ui/components"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu         components.Menu
	menuLabels   []string
	enrolled     int
	certificates int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(userID string, st *store.Store, tracker *progress.Tracker, evaluator *certificate.Evaluator, manager *attempt.Manager) *HomeScreen {
	// Header stats are loaded synchronously; both are single indexed
	// queries against the local database.
	var enrolled, certs int
	ctx := context.Background()
	if list, err := st.EnrollmentRepo().ListForUser(ctx, userID); err == nil {
		enrolled = len(list)
	}
	if list, err := st.CertificateRepo().ListForUser(ctx, userID); err == nil {
		certs = len(list)
	}

	menuLabels := []string{"BROWSE COURSES", "CERTIFICATES", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: courses.New(userID, st, tracker, evaluator, manager),
				}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: certvault.New(userID, st.CertificateRepo()),
				}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:         components.NewMenu(items),
		menuLabels:   menuLabels,
		enrolled:     enrolled,
		certificates: certs,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw))
	sections = append(sections, renderStatsBar(h.enrolled, h.certificates, cw))
	sections = append(sections, renderMenuBox(h.menuLabels, h.menu.Selected, cw))

	content := strings.Join(sections, "\n\n")
	return components.PanelFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// Enrolled returns the enrolled course count shown in the header.
func (h *HomeScreen) Enrolled() int {
	return h.enrolled
}

// Certificates returns the earned certificate count shown in the header.
func (h *HomeScreen) Certificates() int {
	return h.certificates
}
