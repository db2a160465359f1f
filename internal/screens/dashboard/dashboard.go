// Package dashboard shows the personalized tool recommendations.
package dashboard

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/aimarketcap/internal/catalog"
	"github.com/abhisek/aimarketcap/internal/profile"
	"github.com/abhisek/aimarketcap/internal/recommend"
	"github.com/abhisek/aimarketcap/internal/router"
	"github.com/abhisek/aimarketcap/internal/screen"
	"github.com/abhisek/aimarketcap/internal/screens/placeholder"
	"github.com/abhisek/aimarketcap/internal/ui/components"
	"github.com/abhisek/aimarketcap/internal/ui/layout"
)

// DashboardScreen binds a recommend.View to the keyboard.
type DashboardScreen struct {
	view    *recommend.View
	search  components.SearchBox
	explore func() screen.Screen

	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates a dashboard for p over the built-in catalog. explore builds
// the screen shown by "Explore Full Map".
func New(p profile.UserProfile, explore func() screen.Screen) *DashboardScreen {
	return NewWithTools(p, catalog.Tools(), explore)
}

// NewWithTools creates a dashboard over an explicit tool list.
func NewWithTools(p profile.UserProfile, tools []catalog.Tool, explore func() screen.Screen) *DashboardScreen {
	s := components.NewSearchBox("Search tools...", 40)
	s.Blur()
	return &DashboardScreen{
		view:    recommend.NewView(p, tools),
		search:  s,
		explore: explore,
	}
}

// State returns the underlying recommendation state.
func (d *DashboardScreen) State() *recommend.View { return d.view }

// Cursor returns the index of the highlighted visible tool.
func (d *DashboardScreen) Cursor() int { return d.cursor }

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Title() string {
	return "Your AI Toolkit"
}

func (d *DashboardScreen) Status() string {
	return fmt.Sprintf("★ %d bookmarked", d.view.Summary().BookmarkedCount)
}

// HandlesEsc lets esc leave the search box instead of the screen.
func (d *DashboardScreen) HandlesEsc() bool { return d.search.Focused() }

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if d.search.Focused() {
			var cmd tea.Cmd
			d.search, cmd, _ = d.search.Update(msg)
			return d, cmd
		}
		return d, nil
	}

	if d.search.Focused() {
		return d, d.updateSearch(kmsg)
	}

	switch kmsg.String() {
	case "/":
		return d, d.search.Focus()
	case "up", "k":
		if d.cursor > 0 {
			d.cursor--
		}
	case "down", "j":
		if d.cursor < len(d.view.VisibleTools())-1 {
			d.cursor++
		}
	case "tab":
		d.view.CycleCategory(1)
		d.clampCursor()
	case "shift+tab":
		d.view.CycleCategory(-1)
		d.clampCursor()
	case "space", "b":
		if t, ok := d.current(); ok {
			d.view.ToggleBookmark(t.Name)
		}
	case "enter", "t":
		if t, ok := d.current(); ok {
			s := placeholder.New(t.Name)
			return d, func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}
	case "m":
		if d.explore != nil {
			s := d.explore()
			return d, func() tea.Msg { return router.ReplaceScreenMsg{Screen: s} }
		}
	}
	return d, nil
}

func (d *DashboardScreen) updateSearch(k tea.KeyPressMsg) tea.Cmd {
	switch k.String() {
	case "esc", "enter", "tab":
		d.search.Blur()
		return nil
	}
	var cmd tea.Cmd
	var changed bool
	d.search, cmd, changed = d.search.Update(k)
	if changed {
		d.view.SetSearchText(d.search.Value())
		d.clampCursor()
	}
	return cmd
}

func (d *DashboardScreen) current() (recommend.ToolView, bool) {
	visible := d.view.VisibleTools()
	if d.cursor < 0 || d.cursor >= len(visible) {
		return recommend.ToolView{}, false
	}
	return visible[d.cursor], true
}

func (d *DashboardScreen) clampCursor() {
	n := len(d.view.VisibleTools())
	if d.cursor >= n {
		d.cursor = n - 1
	}
	if d.cursor < 0 {
		d.cursor = 0
	}
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	if d.search.Focused() {
		return []layout.KeyHint{
			{Key: "Type", Description: "Filter"},
			{Key: "Enter/Esc", Description: "Done"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "/", Description: "Search"},
		{Key: "Tab", Description: "Category"},
		{Key: "Space", Description: "Bookmark"},
		{Key: "Enter", Description: "Try"},
		{Key: "m", Description: "Full Map"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
