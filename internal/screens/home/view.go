package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/coursely/internal/ui/components"
	"github.com/abhisek/coursely/internal/ui/theme"
)

const titleArt = `
  ██████╗ ██████╗ ██╗   ██╗██████╗ ███████╗███████╗██╗  ██╗   ██╗
 ██╔════╝██╔═══██╗██║   ██║██╔══██╗██╔════╝██╔════╝██║  ╚██╗ ██╔╝
 ██║     ██║   ██║██║   ██║██████╔╝███████╗█████╗  ██║   ╚████╔╝
 ██║     ██║   ██║██║   ██║██╔══██╗╚════██║██╔══╝  ██║    ╚██╔╝
 ╚██████╗╚██████╔╝╚██████╔╝██║  ██║███████║███████╗███████╗██║
  ╚═════╝ ╚═════╝  ╚═════╝ ╚═╝  ╚═╝╚══════╝╚══════╝╚══════╝╚═╝`

// renderTitle renders the application banner, compact when narrow.
func renderTitle(cw int) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	if cw < 68 {
		return style.Render("C O U R S E L Y") + "\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("learn at your own pace")
	}
	return style.Render(titleArt)
}

// renderStatsBar renders the enrolled/certificates summary card.
func renderStatsBar(enrolled, certificates int, cw int) string {
	stats := fmt.Sprintf("%s   %s",
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(fmt.Sprintf("▣ %d enrolled", enrolled)),
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("❖ %d certificates", certificates)),
	)
	return components.Card(stats, cw)
}

// renderMenuBox renders the home menu as stacked button rows.
func renderMenuBox(labels []string, selected int, cw int) string {
	rows := make([]string, 0, len(labels))
	bw := cw - 8
	if bw < 16 {
		bw = 16
	}
	for i, label := range labels {
		rows = append(rows, renderMenuButton(label, i == selected, bw))
	}
	return strings.Join(rows, "\n")
}

func renderMenuButton(label string, selected bool, width int) string {
	if selected {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1).
			Render("▸ " + label)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(label)
}
