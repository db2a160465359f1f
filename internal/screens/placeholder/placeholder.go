package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aimarketcap/internal/screen"
	"github.com/abhisek/aimarketcap/internal/ui/layout"
	"github.com/abhisek/aimarketcap/internal/ui/theme"
)

// PlaceholderScreen stands in for a tool launch that does not exist yet.
type PlaceholderScreen struct {
	tool string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a new PlaceholderScreen for the named tool.
func New(tool string) *PlaceholderScreen {
	return &PlaceholderScreen{tool: tool}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	heading := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render("╌╌ Try " + p.tool + " ╌╌")
	body := lipgloss.NewStyle().Foreground(theme.Text).
		Render("Launching tools from the terminal is coming soon.\nCheck back later!")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(heading + "\n\n" + body)
}

func (p *PlaceholderScreen) Title() string {
	return p.tool
}

func (p *PlaceholderScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}
