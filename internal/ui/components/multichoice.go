package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prompted365/scamdetect/internal/ui/theme"
)

// ChoiceOption is one selectable answer with a stable identifier.
type ChoiceOption struct {
	ID   string
	Text string
}

// MultiChoice is a multiple-choice selector component. Answers are keyed by
// option ID rather than position so the caller can reorder options without
// changing which one is correct.
type MultiChoice struct {
	Question  string
	Options   []ChoiceOption
	CorrectID string
	Selected  int
	Submitted bool
	ChosenID  string
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, options []ChoiceOption, correctID string) MultiChoice {
	return MultiChoice{
		Question:  question,
		Options:   options,
		CorrectID: correctID,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Submission is driven by the caller
// via Submit so it can veto or decorate the answer first.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	}

	return m, nil
}

// SelectedID returns the ID of the currently highlighted option, or "" when
// there are no options.
func (m MultiChoice) SelectedID() string {
	if m.Selected < 0 || m.Selected >= len(m.Options) {
		return ""
	}
	return m.Options[m.Selected].ID
}

// Submit locks in the currently highlighted option.
func (m *MultiChoice) Submit() {
	if m.Submitted || len(m.Options) == 0 {
		return
	}
	m.Submitted = true
	m.ChosenID = m.SelectedID()
}

// View renders the question and options.
func (m MultiChoice) View(width int) string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(width)
	s := questionStyle.Render(m.Question) + "\n\n"

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, strings.ToUpper(opt.ID), opt.Text)

		if m.Submitted {
			switch {
			case opt.ID == m.CorrectID:
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Width(width).Render(line) + "\n"
			case opt.ID == m.ChosenID:
				s += lipgloss.NewStyle().Foreground(theme.Danger).Bold(true).Width(width).Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Width(width).Render(line) + "\n"
			}
		} else {
			if i == m.Selected {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Width(width).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Width(width).Render(line) + "\n"
			}
		}
	}

	return s
}

// IsCorrect returns true if the user chose the correct answer.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenID == m.CorrectID
}
