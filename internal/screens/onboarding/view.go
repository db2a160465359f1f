package onboarding

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/aimarketcap/internal/profile"
	"github.com/abhisek/aimarketcap/internal/ui/components"
	"github.com/abhisek/aimarketcap/internal/ui/theme"
)

func (o *OnboardingScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	wiz := o.col.Wizard()

	bar := components.NewProgressBar("", wiz.Progress(), true, cw).View()

	var parts []string
	parts = append(parts, bar, "")
	if wiz.Step() == profile.StepIntent {
		parts = append(parts, theme.Title.Width(cw).Render("Welcome to AIMarketCap!"), "")
	}
	parts = append(parts, theme.Title.Width(cw).Render(o.heading.View()))
	if o.heading.Done() {
		parts = append(parts, theme.Subtitle.Width(cw).Render(o.sub.View()))
	} else {
		parts = append(parts, "")
	}
	parts = append(parts, "")

	var body string
	if wiz.Step() == profile.StepSummary {
		body = o.viewSummary(cw)
	} else {
		body = o.viewQuestions(cw)
	}
	if wiz.Transitioning() {
		body = lipgloss.NewStyle().Faint(true).Render(body)
	}
	parts = append(parts, body)

	if o.err != nil {
		parts = append(parts, "", theme.Loss.Render(o.err.Error()))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (o *OnboardingScreen) viewQuestions(cw int) string {
	if len(o.lists) == 1 {
		return components.Card(o.lists[0].View(), cw)
	}

	// Role and experience side by side, continue gated on both.
	half := cw/2 - 1
	cols := make([]string, len(o.lists))
	for i, l := range o.lists {
		cols[i] = components.Card(l.View(), half)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	cont := components.NewButton("Continue", "c", o.col.CanContinue(), nil)
	return lipgloss.JoinVertical(lipgloss.Center, row, "", cont.View())
}

func (o *OnboardingScreen) viewSummary(cw int) string {
	p := o.col.Profile()

	var answers []string
	for _, f := range profile.RequiredFields {
		answers = append(answers, fmt.Sprintf("%-11s %s",
			string(f)+":", lipgloss.NewStyle().Foreground(theme.Text).Render(profile.Label(f, p.Get(f)))))
	}
	you := components.Card(theme.Hint.Render(strings.Join(answers, "\n")), cw)

	var rows []string
	for _, t := range o.preview {
		name := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(t.Name)
		match := theme.Badge.Render(fmt.Sprintf("%d%% match", t.MatchScore))
		rows = append(rows,
			name+"  "+theme.Hint.Render(t.Category)+"  "+match,
			"  "+t.MatchReason+"  "+theme.Hint.Render(t.Pricing))
	}
	tools := components.Card(strings.Join(rows, "\n"), cw)

	cta := components.NewButton("Explore Your Personalized Dashboard", "enter", o.col.CanComplete(), nil)
	more := theme.Hint.Render("Want to explore more categories? You can always browse our full interactive map later!")

	return lipgloss.JoinVertical(lipgloss.Center, you, "", tools, "", cta.View(), "", more)
}
