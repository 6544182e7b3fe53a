package certvault

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/coursely/internal/catalog"
	"github.com/abhisek/coursely/internal/certificate"
	"github.com/abhisek/coursely/internal/router"
	"github.com/abhisek/coursely/internal/screen"
	"github.com/abhisek/coursely/internal/store"
	"github.com/abhisek/coursely/internal/ui/layout"
	"github.com/abhisek/coursely/internal/ui/theme"
)

type certsLoadedMsg struct {
	Certs []certificate.Certificate
	Err   error
}

// CertVaultScreen lists the learner's earned certificates.
type CertVaultScreen struct {
	userID string
	repo   *store.CertificateRepo

	certs    []certificate.Certificate
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*CertVaultScreen)(nil)
var _ screen.KeyHintProvider = (*CertVaultScreen)(nil)

// New creates a new CertVaultScreen.
func New(userID string, repo *store.CertificateRepo) *CertVaultScreen {
	return &CertVaultScreen{
		userID: userID,
		repo:   repo,
	}
}

func (s *CertVaultScreen) Init() tea.Cmd {
	return func() tea.Msg {
		certs, err := s.repo.ListForUser(context.Background(), s.userID)
		return certsLoadedMsg{Certs: certs, Err: err}
	}
}

func (s *CertVaultScreen) Title() string {
	return "Certificates"
}

func (s *CertVaultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CertVaultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case certsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.certs = msg.Certs
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.certs)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *CertVaultScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading certificates...")
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\nEarned: %d\n", len(s.certs))))
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	if len(s.certs) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("No certificates yet. Complete a course to earn one."))
		return b.String()
	}

	for i, cert := range s.certs {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderCert(cert, i == s.selected)))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *CertVaultScreen) renderCert(cert certificate.Certificate, selected bool) string {
	title := cert.CourseID
	if course, err := catalog.CourseByID(cert.CourseID); err == nil {
		title = course.Title
	}

	marker := "  "
	titleStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		marker = "▸ "
		titleStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	line := marker + lipgloss.NewStyle().Foreground(theme.Accent).Render("❖ ") +
		titleStyle.Render(fmt.Sprintf("%-30s", title))

	meta := fmt.Sprintf("%s · issued %s", cert.Number, cert.IssuedAt.Format("Jan 2, 2006"))
	if cert.QuizScore > 0 {
		meta = fmt.Sprintf("%s · score %d", meta, cert.QuizScore)
	}
	line += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + meta)

	return line
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
