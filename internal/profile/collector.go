package profile

import (
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/aimarketcap/internal/wizard"
)

// Questionnaire steps.
const (
	StepIntent = iota
	StepChallenge
	StepAboutYou
	StepBudget
	StepSummary

	TotalSteps
)

var (
	// ErrUnknownOption is returned when a value is not in the field's option set.
	ErrUnknownOption = errors.New("unknown option")

	// ErrWrongStep is returned when a field is selected outside its step.
	ErrWrongStep = errors.New("field not collected on this step")
)

// stepOf maps each field to the step that collects it.
var stepOf = map[Field]int{
	FieldIntent:     StepIntent,
	FieldChallenge:  StepChallenge,
	FieldRole:       StepAboutYou,
	FieldExperience: StepAboutYou,
	FieldBudget:     StepBudget,
}

// autoAdvance marks fields whose selection moves straight to the next step.
var autoAdvance = map[Field]bool{
	FieldIntent:    true,
	FieldChallenge: true,
	FieldBudget:    true,
}

// FieldsFor returns the fields collected on step, in display order.
func FieldsFor(step int) []Field {
	switch step {
	case StepIntent:
		return []Field{FieldIntent}
	case StepChallenge:
		return []Field{FieldChallenge}
	case StepAboutYou:
		return []Field{FieldRole, FieldExperience}
	case StepBudget:
		return []Field{FieldBudget}
	}
	return nil
}

// Collector drives the five-step onboarding questionnaire and accumulates
// the answers into a UserProfile.
type Collector struct {
	wiz     *wizard.Controller
	profile UserProfile
}

// NewCollector creates a collector on the first step with an empty profile.
func NewCollector(delay time.Duration) *Collector {
	return &Collector{wiz: wizard.New(TotalSteps, delay)}
}

// Wizard exposes the underlying step controller.
func (c *Collector) Wizard() *wizard.Controller { return c.wiz }

// Step returns the current questionnaire step.
func (c *Collector) Step() int { return c.wiz.Step() }

// Profile returns a copy of the answers collected so far.
func (c *Collector) Profile() UserProfile {
	p := c.profile
	if p.Interests != nil {
		p.Interests = append([]string(nil), p.Interests...)
	}
	return p
}

// Select records field = value. Intent, challenge and budget answers advance
// to the next step; role and experience wait for Continue.
func (c *Collector) Select(f Field, value string) (tea.Cmd, error) {
	step, ok := stepOf[f]
	if !ok || !IsValid(f, value) {
		return nil, fmt.Errorf("select %s=%q: %w", f, value, ErrUnknownOption)
	}
	if step != c.wiz.Step() {
		return nil, fmt.Errorf("select %s on step %d: %w", f, c.wiz.Step(), ErrWrongStep)
	}

	c.profile.set(f, value)
	if autoAdvance[f] {
		return c.wiz.Advance(), nil
	}
	return nil, nil
}

// CanContinue reports whether both role and experience are set.
func (c *Collector) CanContinue() bool {
	return c.profile.Role != "" && c.profile.Experience != ""
}

// Continue advances past the role/experience step once both are answered.
func (c *Collector) Continue() tea.Cmd {
	if c.wiz.Step() != StepAboutYou || !c.CanContinue() {
		return nil
	}
	return c.wiz.Advance()
}

// CanGoBack reports whether Back is available on the current step.
func (c *Collector) CanGoBack() bool {
	s := c.wiz.Step()
	return s > StepIntent && s < StepSummary
}

// Back returns to the previous step. Available on steps 1 to 3 only.
func (c *Collector) Back() tea.Cmd {
	if !c.CanGoBack() {
		return nil
	}
	return c.wiz.Retreat()
}

// CanSkip reports whether the questionnaire may be abandoned from here.
func (c *Collector) CanSkip() bool {
	return c.wiz.Step() != StepSummary
}

// CanComplete reports whether Complete may be called.
func (c *Collector) CanComplete() bool {
	return c.wiz.Step() == StepSummary && !c.wiz.Transitioning() && c.profile.IsComplete()
}

// Complete returns the finished profile. It must only be called on the
// summary step with every required field set; anything else is a bug in
// the caller and panics.
func (c *Collector) Complete() UserProfile {
	if c.wiz.Step() != StepSummary {
		panic(fmt.Sprintf("profile: Complete called on step %d", c.wiz.Step()))
	}
	if missing := c.profile.Missing(); len(missing) > 0 {
		panic(fmt.Sprintf("profile: Complete called with missing fields %v", missing))
	}
	return c.Profile()
}

// Update applies the collector's pending step transition, if msg is one.
func (c *Collector) Update(msg tea.Msg) bool {
	return c.wiz.Update(msg)
}
