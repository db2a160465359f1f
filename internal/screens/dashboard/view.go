package dashboard

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/aimarketcap/internal/catalog"
	"github.com/abhisek/aimarketcap/internal/recommend"
	"github.com/abhisek/aimarketcap/internal/ui/components"
	"github.com/abhisek/aimarketcap/internal/ui/theme"
)

// rowHeight is the number of lines one tool occupies in the list.
const rowHeight = 3

func (d *DashboardScreen) View(width, height int) string {
	cw := min(width-4, 100)

	sub := theme.Subtitle.Width(cw).Render("Curated for " + d.view.Subtitle())

	sum := d.view.Summary()
	stats := components.StatRow(cw,
		[2]string{fmt.Sprint(sum.MatchedCount), "Matched Tools"},
		[2]string{fmt.Sprint(sum.BookmarkedCount), "Bookmarked"},
		[2]string{fmt.Sprintf("%d%%", sum.AverageMatch), "Avg Match"},
		[2]string{fmt.Sprint(sum.CategoryCount), "Categories"},
	)

	filters := lipgloss.JoinHorizontal(lipgloss.Center, d.search.View(), "  ", d.viewCategories())

	top := lipgloss.JoinVertical(lipgloss.Left, sub, stats, filters, "")
	footer := theme.Hint.Render("Want to discover more AI tools? Press m to explore the full AIMarketCap map")

	listHeight := height - lipgloss.Height(top) - lipgloss.Height(footer) - 1
	list := d.viewList(cw, listHeight)

	content := lipgloss.JoinVertical(lipgloss.Left, top, list, "", footer)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

func (d *DashboardScreen) viewCategories() string {
	var parts []string
	active := d.view.Category()
	for _, c := range d.view.CategoryChoices() {
		label := c
		if c == recommend.AllCategories {
			label = "All"
		}
		if c == active {
			parts = append(parts, theme.ButtonActive.Render(label))
		} else {
			parts = append(parts, theme.Hint.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (d *DashboardScreen) viewList(cw, height int) string {
	visible := d.view.VisibleTools()
	if len(visible) == 0 {
		return theme.Hint.Render("No tools match your filters.")
	}

	rows := max(1, height/rowHeight)
	d.adjustScroll(rows)

	var lines []string
	for i := d.scrollOffset; i < len(visible) && i < d.scrollOffset+rows; i++ {
		lines = append(lines, renderTool(visible[i], i == d.cursor, cw))
	}
	if more := len(visible) - d.scrollOffset - rows; more > 0 {
		lines = append(lines, theme.Hint.Render(fmt.Sprintf("  … %d more", more)))
	}
	return strings.Join(lines, "\n")
}

func (d *DashboardScreen) adjustScroll(rows int) {
	if d.cursor < d.scrollOffset {
		d.scrollOffset = d.cursor
	}
	if d.cursor >= d.scrollOffset+rows {
		d.scrollOffset = d.cursor - rows + 1
	}
}

func renderTool(t recommend.ToolView, selected bool, cw int) string {
	prefix := "  "
	nameStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if selected {
		prefix = "▸ "
		nameStyle = theme.Selected
	}
	star := "☆"
	if t.Bookmarked {
		star = theme.Bookmarked.Render("★")
	}

	head := prefix + nameStyle.Render(t.Name) + "  " + theme.Hint.Render(t.Category) +
		"  " + theme.Badge.Render(fmt.Sprintf("%d%% match", t.MatchScore)) + "  " + star
	reason := "    " + lipgloss.NewStyle().Foreground(theme.Accent).Render(t.MatchReason)
	growth := theme.Gain.Render(catalog.FormatChange(t.Growth))
	if t.Growth < 0 {
		growth = theme.Loss.Render(catalog.FormatChange(t.Growth))
	}
	meta := fmt.Sprintf("    Users %s • Growth %s • %s • ★ %.1f", t.Users, growth, t.Pricing, t.Rating)
	if selected {
		meta += "   " + theme.ButtonActive.Render("Try "+t.Name)
	}

	return lipgloss.NewStyle().MaxWidth(cw).Render(head + "\n" + reason + "\n" + theme.Hint.Render(meta))
}
