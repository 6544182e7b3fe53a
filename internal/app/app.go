package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/coursely/internal/attempt"
	"github.com/abhisek/coursely/internal/certificate"
	"github.com/abhisek/coursely/internal/progress"
	"github.com/abhisek/coursely/internal/router"
	"github.com/abhisek/coursely/internal/screen"
	"github.com/abhisek/coursely/internal/screens/home"
	"github.com/abhisek/coursely/internal/screens/welcome"
	"github.com/abhisek/coursely/internal/store"
	"github.com/abhisek/coursely/internal/ui/layout"
)

// Options carries the wired services the UI runs against.
type Options struct {
	Store     *store.Store
	UserID    string
	Tracker   *progress.Tracker
	Evaluator *certificate.Evaluator
	Manager   *attempt.Manager
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	splash *welcome.WelcomeScreen
	home   *home.HomeScreen
	width  int
	height int
}

// newAppModel creates a new AppModel showing the splash, which hands
// off to the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.UserID, opts.Store, opts.Tracker, opts.Evaluator, opts.Manager)
	splash := welcome.New(func() screen.Screen { return homeScreen })
	return AppModel{
		router: router.New(splash),
		splash: splash,
		home:   homeScreen,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.splash.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// A screen mid-flow (quiz confirmation, live filter) gets
			// Esc before the global back navigation does.
			if h, ok := m.router.Active().(screen.EscHandler); ok && h.HandlesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.home.Enrolled(), m.home.Certificates(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); hints != nil {
			footerHints = hints
		}
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
