package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/coursely/internal/ui/theme"
)

// PickOption is one selectable answer option.
type PickOption struct {
	ID   string
	Text string
}

// OptionPicker is a multiple-choice answer selector. Unlike a graded
// quiz view, it never reveals correctness: selections are recorded and
// shown, grading happens elsewhere after submission.
type OptionPicker struct {
	Options  []PickOption
	Selected int
	ChosenID string // previously recorded answer, highlighted as locked in
}

// NewOptionPicker creates a picker, pre-selecting the chosen option when
// the question was already answered.
func NewOptionPicker(options []PickOption, chosenID string) OptionPicker {
	selected := 0
	for i, opt := range options {
		if opt.ID == chosenID {
			selected = i
			break
		}
	}
	return OptionPicker{
		Options:  options,
		Selected: selected,
		ChosenID: chosenID,
	}
}

// Update handles keyboard navigation. Choosing is the caller's job so it
// can persist the answer; the picker only tracks the cursor.
func (p OptionPicker) Update(msg tea.Msg) (OptionPicker, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if p.Selected > 0 {
			p.Selected--
		}
	case "down", "j":
		if p.Selected < len(p.Options)-1 {
			p.Selected++
		}
	}

	return p, nil
}

// Current returns the option under the cursor.
func (p OptionPicker) Current() (PickOption, bool) {
	if p.Selected < 0 || p.Selected >= len(p.Options) {
		return PickOption{}, false
	}
	return p.Options[p.Selected], true
}

// View renders the options with the cursor and any recorded answer.
func (p OptionPicker) View() string {
	labels := []string{"A", "B", "C", "D", "E", "F"}

	var s string
	for i, opt := range p.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(labels) {
			label = labels[i]
		}

		prefix := "  "
		if i == p.Selected {
			prefix = "▸ "
		}

		marker := " "
		if opt.ID == p.ChosenID && p.ChosenID != "" {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt.Text)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if opt.ID == p.ChosenID && p.ChosenID != "" {
			style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		}
		if i == p.Selected {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		s += style.Render(line) + "\n"
	}

	return s
}
