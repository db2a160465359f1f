package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aimarketcap/internal/ui/theme"
)

// SearchBox wraps bubbles/textinput with the search prompt styling.
type SearchBox struct {
	Model    textinput.Model
	MaxWidth int
}

// NewSearchBox creates a focused search input.
func NewSearchBox(placeholder string, maxWidth int) SearchBox {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "⌕ "
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
		ti.SetWidth(maxWidth)
	}

	return SearchBox{
		Model:    ti,
		MaxWidth: maxWidth,
	}
}

// Init returns the initial command.
func (s SearchBox) Init() tea.Cmd {
	return s.Model.Focus()
}

// Update handles messages. It reports whether the value changed.
func (s SearchBox) Update(msg tea.Msg) (SearchBox, tea.Cmd, bool) {
	before := s.Model.Value()
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd, s.Model.Value() != before
}

// Focused reports whether the box is receiving keys.
func (s SearchBox) Focused() bool {
	return s.Model.Focused()
}

// Focus gives the box keyboard focus.
func (s *SearchBox) Focus() tea.Cmd {
	return s.Model.Focus()
}

// Blur releases keyboard focus.
func (s *SearchBox) Blur() {
	s.Model.Blur()
}

// View renders the search input.
func (s SearchBox) View() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if s.Model.Focused() {
		style = style.BorderForeground(theme.Primary)
	} else {
		style = style.BorderForeground(theme.Border)
	}
	return style.Render(s.Model.View())
}

// Value returns the current input value.
func (s SearchBox) Value() string {
	return s.Model.Value()
}

