package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/coursely/internal/ui/theme"
)

const bannerArt = `
  ██████╗ ██████╗ ██╗   ██╗██████╗ ███████╗███████╗██╗  ██╗   ██╗
 ██╔════╝██╔═══██╗██║   ██║██╔══██╗██╔════╝██╔════╝██║  ╚██╗ ██╔╝
 ██║     ██║   ██║██║   ██║██████╔╝███████╗█████╗  ██║   ╚████╔╝
 ██║     ██║   ██║██║   ██║██╔══██╗╚════██║██╔══╝  ██║    ╚██╔╝
 ╚██████╗╚██████╔╝╚██████╔╝██║  ██║███████║███████╗███████╗██║
  ╚═════╝ ╚═════╝  ╚═════╝ ╚═╝  ╚═╝╚══════╝╚══════╝╚══════╝╚═╝`

const bannerCompact = "C O U R S E L Y"

// RenderBanner returns the COURSELY banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 70 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 70 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
