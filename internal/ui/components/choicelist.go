package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/junhao/radmaster/internal/ui/theme"
)

// ChoiceOption is one answer candidate: a reading plus its meaning.
type ChoiceOption struct {
	Pinyin  string
	Meaning string
}

// ChoiceList is the four-option answer selector for a quiz round.
// After submission it locks and colors the correct and chosen rows.
type ChoiceList struct {
	Options      []ChoiceOption
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewChoiceList creates an unanswered selector.
func NewChoiceList(options []ChoiceOption, correctIndex int) ChoiceList {
	return ChoiceList{
		Options:      options,
		CorrectIndex: correctIndex,
		Selected:     0,
		ChosenIndex:  -1,
	}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles navigation and answer submission. Digit keys pick and
// submit in one stroke.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.Submitted = true
		c.ChosenIndex = c.Selected
	case "1", "2", "3", "4":
		i := int(key[0] - '1')
		if i < len(c.Options) {
			c.Selected = i
			c.Submitted = true
			c.ChosenIndex = i
		}
	}

	return c, nil
}

// View renders the option rows.
func (c ChoiceList) View() string {
	var s string
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected && !c.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt.Pinyin)
		sub := fmt.Sprintf("       %s", opt.Meaning)

		var style lipgloss.Style
		switch {
		case c.Submitted && i == c.CorrectIndex:
			style = theme.Correct
		case c.Submitted && i == c.ChosenIndex:
			style = theme.Incorrect
		case c.Submitted:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == c.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}

		s += style.Render(line) + "\n"
		s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(sub) + "\n"
	}
	return s
}

// IsCorrect returns true if the user chose the correct answer.
func (c ChoiceList) IsCorrect() bool {
	return c.Submitted && c.ChosenIndex == c.CorrectIndex
}
