package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aimarketcap/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for stacked sections.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for the frame border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 1).
		Render(content)
}

// StatTile renders a headline number over a caption, as used in stats rows.
func StatTile(value, caption string, width int) string {
	v := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value)
	c := lipgloss.NewStyle().Foreground(theme.TextDim).Render(caption)
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(v + "\n" + c)
}

// StatRow lays out tiles side by side, splitting cw evenly.
func StatRow(cw int, tiles ...[2]string) string {
	if len(tiles) == 0 {
		return ""
	}
	w := cw/len(tiles) - 2
	if w < 8 {
		w = 8
	}
	rendered := make([]string, len(tiles))
	for i, t := range tiles {
		rendered[i] = StatTile(t[0], t[1], w)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
