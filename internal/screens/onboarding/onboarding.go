// Package onboarding is the questionnaire screen that builds a UserProfile.
package onboarding

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/aimarketcap/internal/catalog"
	"github.com/abhisek/aimarketcap/internal/profile"
	"github.com/abhisek/aimarketcap/internal/recommend"
	"github.com/abhisek/aimarketcap/internal/screen"
	"github.com/abhisek/aimarketcap/internal/ui/components"
	"github.com/abhisek/aimarketcap/internal/ui/layout"
)

// previewCount is how many catalog tools the summary step shows.
const previewCount = 4

var headings = [profile.TotalSteps][2]string{
	{"What brings you here today?", "Let's find the perfect AI tools for your needs in just 60 seconds"},
	{"What's your biggest challenge?", "Help us understand what you're trying to accomplish"},
	{"Tell us about yourself", "This helps us recommend the right tools for your skill level"},
	{"What's your budget range?", "We'll prioritize tools that fit your budget"},
	{"Perfect! Here's what we found for you", "Based on your preferences, these AI tools are tailored just for you"},
}

var fieldHeadings = map[profile.Field]string{
	profile.FieldRole:       "What's your role?",
	profile.FieldExperience: "AI Experience Level",
}

// Options configures the questionnaire screen.
type Options struct {
	// Delay is the pause between answering and the next step appearing.
	Delay time.Duration
	// TypeSpeed is the per-character typewriter delay for headings. Zero
	// renders headings immediately.
	TypeSpeed time.Duration
}

// OnboardingScreen walks the user through the profile questions.
type OnboardingScreen struct {
	col   *profile.Collector
	opts  Options
	lists []components.OptionList
	focus int

	heading components.Typewriter
	sub     components.Typewriter

	preview  []recommend.ToolView
	finished bool
	err      error
}

var _ screen.Screen = (*OnboardingScreen)(nil)

// New creates the questionnaire on its first step.
func New(opts Options) *OnboardingScreen {
	o := &OnboardingScreen{
		col:  profile.NewCollector(opts.Delay),
		opts: opts,
	}
	top := recommend.DeriveView(catalog.Tools(), recommend.NewBookmarks(), "", recommend.AllCategories)
	o.preview = top[:min(previewCount, len(top))]
	o.rebuild()
	return o
}

// Collector exposes the questionnaire state.
func (o *OnboardingScreen) Collector() *profile.Collector { return o.col }

func (o *OnboardingScreen) Init() tea.Cmd {
	return o.startHeadings()
}

func (o *OnboardingScreen) Title() string {
	return "Personalize"
}

func (o *OnboardingScreen) Status() string {
	step := o.col.Step()
	if step == profile.StepSummary {
		return "Done"
	}
	return fmt.Sprintf("Question %d of %d", step+1, profile.StepSummary)
}

// HandlesEsc keeps the app from popping the questionnaire without a
// recorded outcome.
func (o *OnboardingScreen) HandlesEsc() bool { return true }

// rebuild creates the option lists for the current step.
func (o *OnboardingScreen) rebuild() {
	fields := profile.FieldsFor(o.col.Step())
	p := o.col.Profile()

	o.lists = make([]components.OptionList, len(fields))
	for i, f := range fields {
		opts := profile.Options(f)
		choices := make([]components.Choice, len(opts))
		for j, opt := range opts {
			choices[j] = components.Choice{Value: opt.Value, Label: opt.Label, Description: opt.Description}
		}
		l := components.NewOptionList(fieldHeadings[f], choices)
		l.Chosen = p.Get(f)
		for j, c := range choices {
			if c.Value == l.Chosen {
				l.Cursor = j
			}
		}
		l.Focused = i == 0
		o.lists[i] = l
	}
	o.focus = 0
	o.err = nil

	h := headings[o.col.Step()]
	o.heading = components.NewTypewriter(h[0], o.opts.TypeSpeed)
	o.sub = components.NewTypewriter(h[1], o.opts.TypeSpeed)
}

func (o *OnboardingScreen) startHeadings() tea.Cmd {
	var cmd tea.Cmd
	o.heading, cmd = o.heading.Start()
	return cmd
}

func (o *OnboardingScreen) setFocus(i int) {
	if i < 0 || i >= len(o.lists) {
		return
	}
	o.lists[o.focus].Focused = false
	o.focus = i
	o.lists[i].Focused = true
}

func (o *OnboardingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if o.finished {
		return o, nil
	}

	if o.col.Update(msg) {
		o.rebuild()
		return o, o.startHeadings()
	}

	var cmd tea.Cmd
	wasTyping := !o.heading.Done()
	o.heading, cmd = o.heading.Update(msg)
	if cmd != nil {
		return o, cmd
	}
	if wasTyping && o.heading.Done() {
		o.sub, cmd = o.sub.Start()
		return o, cmd
	}
	if o.sub, cmd = o.sub.Update(msg); cmd != nil {
		return o, cmd
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return o, nil
	}
	o.heading = o.heading.Skip()
	o.sub = o.sub.Skip()
	return o, o.handleKey(kmsg)
}

func (o *OnboardingScreen) handleKey(k tea.KeyPressMsg) tea.Cmd {
	if o.col.Wizard().Transitioning() {
		return nil
	}

	switch k.String() {
	case "esc":
		if o.col.CanGoBack() {
			return o.col.Back()
		}
		return o.skip()
	case "s":
		return o.skip()
	case "b", "left":
		return o.col.Back()
	}

	if o.col.Step() == profile.StepSummary {
		if k.String() == "enter" {
			return o.complete()
		}
		return nil
	}

	if o.col.Step() == profile.StepAboutYou {
		switch k.String() {
		case "tab", "shift+tab":
			o.setFocus(1 - o.focus)
			return nil
		case "c":
			return o.col.Continue()
		}
	}

	var chosen string
	o.lists[o.focus], chosen = o.lists[o.focus].Update(k)
	if chosen == "" {
		return nil
	}

	field := profile.FieldsFor(o.col.Step())[o.focus]
	cmd, err := o.col.Select(field, chosen)
	if err != nil {
		o.err = err
		return nil
	}
	if field == profile.FieldRole && o.col.Profile().Experience == "" {
		o.setFocus(1)
	}
	return cmd
}

func (o *OnboardingScreen) skip() tea.Cmd {
	if !o.col.CanSkip() {
		return nil
	}
	o.finished = true
	return func() tea.Msg { return SkippedMsg{} }
}

func (o *OnboardingScreen) complete() tea.Cmd {
	if !o.col.CanComplete() {
		return nil
	}
	p := o.col.Complete()
	o.finished = true
	return func() tea.Msg { return CompletedMsg{Profile: p} }
}

func (o *OnboardingScreen) KeyHints() []layout.KeyHint {
	switch o.col.Step() {
	case profile.StepSummary:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Explore Your Dashboard"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case profile.StepAboutYou:
		return []layout.KeyHint{
			{Key: "↑↓ Enter", Description: "Choose"},
			{Key: "Tab", Description: "Switch"},
			{Key: "c", Description: "Continue"},
			{Key: "b", Description: "Back"},
			{Key: "s", Description: "Skip for now"},
		}
	}
	hints := []layout.KeyHint{{Key: "↑↓ Enter", Description: "Choose"}}
	if o.col.CanGoBack() {
		hints = append(hints, layout.KeyHint{Key: "b", Description: "Back"})
	}
	return append(hints, layout.KeyHint{Key: "s", Description: "Skip for now"})
}
