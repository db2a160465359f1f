package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aimarketcap/internal/ui/theme"
)

// Choice is one row of an OptionList.
type Choice struct {
	Value       string
	Label       string
	Description string
}

// OptionList is a single-select list of choices. Cursor movement and
// selection are separate: Update reports the chosen value when the user
// confirms, and the owner decides what choosing means.
type OptionList struct {
	Heading string
	Choices []Choice
	Cursor  int
	Chosen  string
	Focused bool
}

// NewOptionList creates a focused list with the cursor on the first choice.
func NewOptionList(heading string, choices []Choice) OptionList {
	return OptionList{
		Heading: heading,
		Choices: choices,
		Focused: true,
	}
}

// Update moves the cursor and returns the value confirmed by enter, space
// or a number key (1-9), or "" if nothing was confirmed.
func (o OptionList) Update(msg tea.Msg) (OptionList, string) {
	if !o.Focused || len(o.Choices) == 0 {
		return o, ""
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return o, ""
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Choices)-1 {
			o.Cursor++
		}
	case "enter", "space":
		o.Chosen = o.Choices[o.Cursor].Value
		return o, o.Chosen
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < len(o.Choices) {
				o.Cursor = idx
				o.Chosen = o.Choices[idx].Value
				return o, o.Chosen
			}
		}
	}
	return o, ""
}

// View renders the list. Chosen rows carry a check mark; the cursor row is
// highlighted only while focused.
func (o OptionList) View() string {
	var b strings.Builder
	if o.Heading != "" {
		style := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
		if !o.Focused {
			style = style.Foreground(theme.TextDim)
		}
		b.WriteString(style.Render(o.Heading))
		b.WriteString("\n\n")
	}

	for i, c := range o.Choices {
		prefix := "  "
		if o.Focused && i == o.Cursor {
			prefix = "▸ "
		}
		mark := " "
		if c.Value == o.Chosen {
			mark = "✓"
		}
		line := fmt.Sprintf("%s%d) %s %s", prefix, i+1, mark, c.Label)

		switch {
		case c.Value == o.Chosen:
			line = theme.Chosen.Render(line)
		case o.Focused && i == o.Cursor:
			line = theme.Selected.Render(line)
		default:
			line = theme.Unselected.Render(line)
		}
		if c.Description != "" {
			line += "  " + theme.Hint.Render(c.Description)
		}
		b.WriteString(line)
		if i < len(o.Choices)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
