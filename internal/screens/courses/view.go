package courses

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/coursely/internal/catalog"
	"github.com/abhisek/coursely/internal/ui/theme"
)

func (c *CoursesScreen) View(width, height int) string {
	if c.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  " + c.errMsg)
	}

	var b strings.Builder

	// Filter line.
	if c.search.Focused() || c.search.Value() != "" {
		b.WriteString("  " + c.search.View())
		b.WriteString("\n\n")
	}

	if len(c.visible) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n  No courses match the filter."))
		return b.String()
	}

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	// Group rows under category headers, preserving catalog order.
	var lastCategory catalog.Category
	for i, course := range c.visible {
		if course.Category != lastCategory {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Secondary).
				Bold(true).
				Render("  " + catalog.CategoryDisplayName(course.Category)))
			b.WriteString("\n")
			b.WriteString(dimStyle.Render("  " + strings.Repeat("─", min(width-8, 56))))
			b.WriteString("\n")
			lastCategory = course.Category
		}
		b.WriteString(c.renderCourseRow(course, i == c.selected, width))
		b.WriteString("\n")
	}

	return b.String()
}

func (c *CoursesScreen) renderCourseRow(course catalog.Course, selected bool, width int) string {
	prefix := "   "
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		prefix = " ▸ "
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	marker := " "
	if _, ok := c.enrollments[course.ID]; ok {
		marker = "▣"
	}

	meta := fmt.Sprintf("%d lessons", len(course.Lessons))
	if course.Quiz != nil {
		meta += " · final quiz"
	}
	if course.PriceCents > 0 {
		meta += fmt.Sprintf(" · $%d.%02d", course.PriceCents/100, course.PriceCents%100)
	} else {
		meta += " · free"
	}

	title := course.Title
	if len(title) > 36 {
		title = title[:33] + "..."
	}

	line := fmt.Sprintf("%s%s %-36s", prefix, marker, title)
	return style.Render(line) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+meta)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
