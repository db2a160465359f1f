package app

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/aimarketcap/internal/config"
	"github.com/abhisek/aimarketcap/internal/onboarding"
	"github.com/abhisek/aimarketcap/internal/profile"
	"github.com/abhisek/aimarketcap/internal/screens/dashboard"
)

// recordingHook captures questionnaire outcomes.
type recordingHook struct {
	completed []profile.UserProfile
	skipped   int
	err       error
	// stampID is assigned to completed profiles that have no ID.
	stampID string
}

func (h *recordingHook) Complete(_ context.Context, p profile.UserProfile) (profile.UserProfile, error) {
	h.completed = append(h.completed, p)
	if p.ID == "" {
		p.ID = h.stampID
	}
	return p, h.err
}

func (h *recordingHook) Skip(context.Context) error {
	h.skipped++
	return h.err
}

func testConfig() config.Config {
	cfg := config.DefaultConfig()
	off := false
	cfg.Splash = &off
	cfg.TransitionDelay = 0
	cfg.Presentation = config.PresentationPlain
	return cfg
}

func storedProfile() *profile.UserProfile {
	return &profile.UserProfile{
		ID:         "p-1",
		Intent:     profile.IntentBrowsing,
		Challenge:  profile.ChallengeLearning,
		Role:       profile.RoleStudent,
		Experience: profile.ExperienceBeginner,
		Budget:     profile.BudgetFree,
	}
}

// exec runs cmd and flattens batches into the messages they produce.
func exec(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, exec(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// run delivers msgs and every message their commands produce, like the
// program loop would.
func run(m AppModel, msgs ...tea.Msg) AppModel {
	queue := append([]tea.Msg(nil), msgs...)
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		model, cmd := m.Update(next)
		m = model.(AppModel)
		queue = append(queue, exec(cmd)...)
	}
	return m
}

func start(opts Options) AppModel {
	m := newAppModel(opts)
	return run(m, exec(m.Init())...)
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func press(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestFirstRunOpensQuestionnaireOverTour(t *testing.T) {
	m := start(Options{Config: testConfig()})
	require.Equal(t, 2, m.router.Depth())
	assert.Equal(t, "Personalize", m.router.Active().Title())
}

func TestCompletingShowsDashboardAndPersists(t *testing.T) {
	defer goleak.VerifyNone(t)
	hook := &recordingHook{}
	m := start(Options{Config: testConfig(), Hook: hook})

	m = run(m, key('2'), key('3'), key('4'), key('1'), key('c'), key('1'), press(tea.KeyEnter))

	assert.Equal(t, 1, m.router.Depth())
	assert.Equal(t, "Your AI Toolkit", m.router.Active().Title())
	require.Len(t, hook.completed, 1)
	assert.Equal(t, profile.RoleStudent, hook.completed[0].Role)
	assert.Equal(t, profile.IntentExploreTrending, hook.completed[0].Intent)
	assert.Zero(t, hook.skipped)
}

func TestDashboardAdoptsStoredProfileID(t *testing.T) {
	hook := &recordingHook{stampID: "saved-42"}
	m := start(Options{Config: testConfig(), Hook: hook})

	m = run(m, key('2'), key('3'), key('4'), key('1'), key('c'), key('1'), press(tea.KeyEnter))

	d, ok := m.router.Active().(*dashboard.DashboardScreen)
	require.True(t, ok, "dashboard should be active")
	assert.Equal(t, "saved-42", d.State().Profile().ID)
	require.Len(t, hook.completed, 1)
	assert.Empty(t, hook.completed[0].ID, "the hook receives the unstamped profile")
}

func TestSkippingReturnsToTourAndPersists(t *testing.T) {
	defer goleak.VerifyNone(t)
	hook := &recordingHook{}
	m := start(Options{Config: testConfig(), Hook: hook})

	m = run(m, key('1'), key('s'))

	assert.Equal(t, 1, m.router.Depth())
	assert.Equal(t, "Discover", m.router.Active().Title())
	assert.Equal(t, 1, hook.skipped)
	assert.Empty(t, hook.completed)
}

func TestEscOnFirstQuestionSkips(t *testing.T) {
	hook := &recordingHook{}
	m := start(Options{Config: testConfig(), Hook: hook})

	m = run(m, press(tea.KeyEscape))
	assert.Equal(t, "Discover", m.router.Active().Title())
	assert.Equal(t, 1, hook.skipped)
}

func TestReturningUserWithProfileSeesDashboard(t *testing.T) {
	m := start(Options{
		Config: testConfig(),
		State:  onboarding.State{Completed: true, Profile: storedProfile()},
	})
	assert.Equal(t, 1, m.router.Depth())
	assert.Equal(t, "Your AI Toolkit", m.router.Active().Title())
}

func TestSkippedUserSeesTour(t *testing.T) {
	m := start(Options{Config: testConfig(), State: onboarding.State{Completed: true}})
	assert.Equal(t, 1, m.router.Depth())
	assert.Equal(t, "Discover", m.router.Active().Title())
}

func TestTryAndEscBack(t *testing.T) {
	m := start(Options{
		Config: testConfig(),
		State:  onboarding.State{Completed: true, Profile: storedProfile()},
	})

	m = run(m, press(tea.KeyEnter))
	require.Equal(t, 2, m.router.Depth())
	assert.Equal(t, "ChatGPT", m.router.Active().Title())

	m = run(m, press(tea.KeyEscape))
	assert.Equal(t, 1, m.router.Depth())
	assert.Equal(t, "Your AI Toolkit", m.router.Active().Title())
}

func TestExploreFullMapThenPersonalizeAgain(t *testing.T) {
	hook := &recordingHook{}
	m := start(Options{
		Config: testConfig(),
		Hook:   hook,
		State:  onboarding.State{Completed: true, Profile: storedProfile()},
	})

	m = run(m, key('m'))
	require.Equal(t, "Discover", m.router.Active().Title())

	for range 5 {
		m = run(m, press(tea.KeyRight))
	}
	m = run(m, press(tea.KeyEnter))
	assert.Equal(t, "Personalize", m.router.Active().Title())
}

func TestSplashLeadsToFirstScreen(t *testing.T) {
	cfg := testConfig()
	cfg.Splash = nil
	m := newAppModel(Options{Config: cfg, State: onboarding.State{Completed: true}})
	assert.Equal(t, "", m.router.Active().Title())

	m = run(m, key('x'))
	assert.Equal(t, "Discover", m.router.Active().Title())
}

func TestPersistFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	hook := &recordingHook{err: errors.New("disk full")}
	m := start(Options{Config: testConfig(), Hook: hook, Logger: zap.New(core)})

	m = run(m, key('s'))
	assert.Equal(t, "Discover", m.router.Active().Title())
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "onboarding outcome not saved", logs.All()[0].Message)
}

func TestViewTooSmall(t *testing.T) {
	m := start(Options{Config: testConfig()})
	m = run(m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.render(), "Terminal too small")
}

func TestViewShowsHeaderStatus(t *testing.T) {
	m := start(Options{Config: testConfig()})
	m = run(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	v := m.render()
	assert.Contains(t, v, "AIMarketCap")
	assert.Contains(t, v, "Question 1 of 4")
}
