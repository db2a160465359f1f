// Package landing implements the six-step product tour shown before (or
// instead of) the personalized dashboard.
package landing

import (
	"fmt"
	"slices"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aimarketcap/internal/catalog"
	"github.com/abhisek/aimarketcap/internal/router"
	"github.com/abhisek/aimarketcap/internal/screen"
	"github.com/abhisek/aimarketcap/internal/ui/components"
	"github.com/abhisek/aimarketcap/internal/ui/layout"
	"github.com/abhisek/aimarketcap/internal/ui/theme"
	"github.com/abhisek/aimarketcap/internal/wizard"
)

// Tour steps.
const (
	StepHero = iota
	StepDirectory
	StepMarket
	StepWatchlist
	StepAnalytics
	StepGetStarted

	TotalSteps
)

var stepTitles = [TotalSteps]string{
	"AIMarketCap",
	"Comprehensive AI Tools Directory",
	"Interactive Market Overview",
	"Custom Watchlists & Tracking",
	"Real-time Analytics & Insights",
	"Ready to Explore?",
}

// LandingScreen is the product tour carousel.
type LandingScreen struct {
	wiz        *wizard.Controller
	onboarding func() screen.Screen

	market    []catalog.MarketTool
	cursor    int
	selected  string
	watchlist []string

	cta       components.Menu
	exploring bool
	autoOpen  bool
}

var _ screen.Screen = (*LandingScreen)(nil)

// New creates the tour. onboarding builds the questionnaire screen pushed by
// the "Get Personalized Recommendations" action.
func New(delay time.Duration, onboarding func() screen.Screen) *LandingScreen {
	l := &LandingScreen{
		wiz:        wizard.New(TotalSteps, delay),
		onboarding: onboarding,
		market:     catalog.Market(),
	}
	l.cta = components.NewMenu([]components.MenuItem{
		{Label: "Get Personalized Recommendations", Action: l.startOnboarding},
		{Label: "Explore Without Personalization", Action: l.explore},
	})
	return l
}

func (l *LandingScreen) startOnboarding() tea.Cmd {
	if l.onboarding == nil {
		return nil
	}
	s := l.onboarding()
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (l *LandingScreen) explore() tea.Cmd {
	l.exploring = true
	return nil
}

// Step returns the current tour step.
func (l *LandingScreen) Step() int { return l.wiz.Step() }

// Selected returns the market tool picked on the overview step, or "".
func (l *LandingScreen) Selected() string { return l.selected }

// Watchlist returns the tools added this session, in insertion order.
func (l *LandingScreen) Watchlist() []string { return slices.Clone(l.watchlist) }

// OpenOnboardingOnInit makes the tour push the questionnaire as soon as it
// is shown. Used on first run.
func (l *LandingScreen) OpenOnboardingOnInit() *LandingScreen {
	l.autoOpen = true
	return l
}

func (l *LandingScreen) Init() tea.Cmd {
	if l.autoOpen {
		l.autoOpen = false
		return l.startOnboarding()
	}
	return nil
}

func (l *LandingScreen) Title() string {
	return "Discover"
}

func (l *LandingScreen) Status() string {
	return fmt.Sprintf("Step %d/%d", l.wiz.Step()+1, l.wiz.Total())
}

func (l *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if l.wiz.Update(msg) {
		l.cursor = 0
		l.exploring = false
		return l, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return l, nil
	}

	switch kmsg.String() {
	case "right", "l", "n":
		return l, l.wiz.Advance()
	case "left", "h", "p":
		return l, l.wiz.Retreat()
	}

	if l.wiz.Transitioning() {
		return l, nil
	}

	switch l.wiz.Step() {
	case StepMarket:
		l.moveCursor(kmsg.String())
		if isConfirm(kmsg) {
			l.toggleSelected(l.market[l.cursor].Name)
		}
	case StepWatchlist:
		l.moveCursor(kmsg.String())
		if isConfirm(kmsg) {
			l.addToWatchlist(l.market[l.cursor].Name)
		}
	case StepGetStarted:
		var cmd tea.Cmd
		l.cta, cmd = l.cta.Update(msg)
		return l, cmd
	}
	return l, nil
}

func isConfirm(k tea.KeyPressMsg) bool {
	s := k.String()
	return s == "enter" || s == "space"
}

func (l *LandingScreen) moveCursor(key string) {
	switch key {
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
		}
	case "down", "j":
		if l.cursor < len(l.market)-1 {
			l.cursor++
		}
	}
}

// toggleSelected picks name, or clears the pick if name is already picked.
func (l *LandingScreen) toggleSelected(name string) {
	if l.selected == name {
		l.selected = ""
		return
	}
	l.selected = name
}

// addToWatchlist appends name unless it is already watched.
func (l *LandingScreen) addToWatchlist(name string) {
	if slices.Contains(l.watchlist, name) {
		return
	}
	l.watchlist = append(l.watchlist, name)
}

func (l *LandingScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "←→", Description: "Prev/Next"}}
	switch l.wiz.Step() {
	case StepMarket:
		hints = append(hints, layout.KeyHint{Key: "↑↓ Enter", Description: "Inspect"})
	case StepWatchlist:
		hints = append(hints, layout.KeyHint{Key: "↑↓ Enter", Description: "Watch"})
	case StepGetStarted:
		hints = append(hints, layout.KeyHint{Key: "↑↓ Enter", Description: "Choose"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (l *LandingScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	title := theme.Title.Width(cw).Render(stepTitles[l.wiz.Step()])

	var body string
	switch l.wiz.Step() {
	case StepHero:
		body = l.viewHero(cw)
	case StepDirectory:
		body = l.viewDirectory(cw)
	case StepMarket:
		body = l.viewMarket(cw)
	case StepWatchlist:
		body = l.viewWatchlist(cw)
	case StepAnalytics:
		body = l.viewAnalytics(cw)
	case StepGetStarted:
		body = l.viewGetStarted(cw)
	}
	if l.wiz.Transitioning() {
		body = lipgloss.NewStyle().Faint(true).Render(body)
	}

	bar := components.NewProgressBar("", l.wiz.Progress(), true, cw).View()
	dots := lipgloss.PlaceHorizontal(cw, lipgloss.Center, components.StepDots(l.wiz.Step(), l.wiz.Total()))
	nav := l.viewNav(cw)

	content := lipgloss.JoinVertical(lipgloss.Left, bar, "", title, "", body, "", dots, nav)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (l *LandingScreen) viewNav(cw int) string {
	prev := components.NewButton("Previous", "left", !l.wiz.IsFirst(), nil)
	next := components.NewButton("Next", "right", !l.wiz.IsLast(), nil)
	left := prev.View()
	right := next.View()
	gap := cw - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, left, strings.Repeat(" ", gap), right)
}

func (l *LandingScreen) viewHero(cw int) string {
	tagline := theme.Subtitle.Width(cw).Render(
		"The ultimate discovery and analytics platform for AI tools, startups, and emerging technologies")
	features := components.StatRow(cw,
		[2]string{"▲", "Real-time Rankings"},
		[2]string{"◆", "Interactive Analytics"},
		[2]string{"◎", "Global Traffic Data"},
	)
	return lipgloss.JoinVertical(lipgloss.Center, tagline, "", features)
}

func (l *LandingScreen) viewDirectory(cw int) string {
	intro := theme.Subtitle.Width(cw).Render(
		"Discover thousands of AI tools ranked by real traffic data and user engagement")

	var rows []string
	head := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Top AI Tools")
	rows = append(rows, head+"  "+theme.Hint.Render("Updated live"), "")
	for i, t := range l.market[:min(3, len(l.market))] {
		rows = append(rows, fmt.Sprintf("%d. %-18s %-20s %8s  %s",
			i+1, t.Name, t.Category, catalog.FormatMarketCap(t.MarketCap), changeStyle(t.Change)))
	}
	return lipgloss.JoinVertical(lipgloss.Center, intro, "", components.Card(strings.Join(rows, "\n"), cw))
}

func (l *LandingScreen) viewMarket(cw int) string {
	var rows []string
	for i, t := range l.market {
		rows = append(rows, l.listRow(i, t.Name, t.Name == l.selected, fmt.Sprintf("%8s", catalog.FormatMarketCap(t.MarketCap))))
	}
	list := components.Card(strings.Join(rows, "\n"), cw)

	detail := theme.Hint.Render("Select a tool to explore its market data")
	if t, ok := catalog.FindMarket(l.selected); ok {
		detail = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(t.Name) + "\n" +
			theme.Hint.Render(t.Category) + "\n" +
			changeStyle(t.Change) + " • " + t.Users
	}
	legend := theme.Hint.Render("Market cap shows influence • Change shows growth rate")
	return lipgloss.JoinVertical(lipgloss.Center, list, "", detail, "", legend)
}

func (l *LandingScreen) viewWatchlist(cw int) string {
	intro := theme.Subtitle.Width(cw).Render(
		"Monitor your favorite AI tools and get notified about trends and updates")

	half := cw/2 - 1
	var avail []string
	for i, t := range l.market {
		watched := slices.Contains(l.watchlist, t.Name)
		mark := "+"
		if watched {
			mark = "✓"
		}
		avail = append(avail, l.listRow(i, t.Name, watched, mark))
	}
	left := components.Card("Available Tools\n\n"+strings.Join(avail, "\n"), half)

	watched := theme.Hint.Render("Add tools to start tracking")
	if len(l.watchlist) > 0 {
		lines := make([]string, len(l.watchlist))
		for i, name := range l.watchlist {
			line := theme.Bookmarked.Render("★ " + name)
			if t, ok := catalog.FindMarket(name); ok {
				line += "  " + changeStyle(t.Change)
			}
			lines[i] = line
		}
		watched = strings.Join(lines, "\n")
	}
	right := components.Card("Your Watchlist\n\n"+watched, half)

	return lipgloss.JoinVertical(lipgloss.Center, intro, "", lipgloss.JoinHorizontal(lipgloss.Top, left, right))
}

func (l *LandingScreen) viewAnalytics(cw int) string {
	intro := theme.Subtitle.Width(cw).Render(
		"Get actionable insights from thousands of data sources updated in real-time")
	stats := components.StatRow(cw,
		[2]string{"10,000+", "AI tools tracked"},
		[2]string{"500M+", "Monthly users analyzed"},
		[2]string{"24/7", "Real-time monitoring"},
	)
	pulse := components.Card(
		"Live Market Pulse\n"+
			theme.Gain.Render("●")+" Market Status: Active   "+theme.Hint.Render("Last updated: Just now"), cw)
	return lipgloss.JoinVertical(lipgloss.Center, intro, "", stats, "", pulse)
}

func (l *LandingScreen) viewGetStarted(cw int) string {
	intro := theme.Subtitle.Width(cw).Render(
		"Join thousands of AI enthusiasts discovering the next big breakthrough in artificial intelligence")
	parts := []string{intro, "", l.cta.View(), ""}
	if l.exploring {
		parts = append(parts, theme.Hint.Render("Browse the tour with ← → and come back any time"))
	} else {
		parts = append(parts, theme.Badge.Render("✓ Free to use   ✓ No signup required"))
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (l *LandingScreen) listRow(i int, name string, marked bool, trailer string) string {
	prefix := "  "
	style := theme.Unselected
	if i == l.cursor {
		prefix = "▸ "
		style = theme.Selected
	}
	if marked {
		style = theme.Chosen
	}
	return style.Render(fmt.Sprintf("%s%-18s", prefix, name)) + " " + trailer
}

func changeStyle(change float64) string {
	s := catalog.FormatChange(change)
	if change < 0 {
		return theme.Loss.Render(s)
	}
	return theme.Gain.Render(s)
}
