package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/coursely/internal/ui/theme"
)

// SearchInput wraps bubbles/textinput as an incremental filter box.
type SearchInput struct {
	Model   textinput.Model
	focused bool
}

// NewSearchInput creates a styled search input.
func NewSearchInput(placeholder string, maxLen int) SearchInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if maxLen > 0 {
		ti.CharLimit = maxLen
	}
	return SearchInput{Model: ti}
}

// Focus puts the input into typing mode.
func (s SearchInput) Focus() (SearchInput, tea.Cmd) {
	s.focused = true
	return s, s.Model.Focus()
}

// Blur leaves typing mode, keeping the current filter text.
func (s SearchInput) Blur() SearchInput {
	s.focused = false
	s.Model.Blur()
	return s
}

// Focused reports whether keystrokes are being captured.
func (s SearchInput) Focused() bool {
	return s.focused
}

// Value returns the current filter text.
func (s SearchInput) Value() string {
	return s.Model.Value()
}

// Reset clears the filter text.
func (s SearchInput) Reset() SearchInput {
	s.Model.SetValue("")
	return s
}

// Update forwards messages to the underlying input while focused.
func (s SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd) {
	if !s.focused {
		return s, nil
	}
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the search box with a leading slash prompt.
func (s SearchInput) View() string {
	prompt := lipgloss.NewStyle().Foreground(theme.TextDim).Render("/ ")
	return prompt + s.Model.View()
}
