package landing

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/aimarketcap/internal/router"
	"github.com/abhisek/aimarketcap/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "onboarding" }
func (s *stubScreen) Title() string                           { return "Onboarding" }

func press(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// send delivers msg and runs any resulting command back through Update,
// the way the program loop would.
func send(t *testing.T, l *LandingScreen, msg tea.Msg) tea.Msg {
	t.Helper()
	_, cmd := l.Update(msg)
	if cmd == nil {
		return nil
	}
	out := cmd()
	if out != nil {
		l.Update(out)
	}
	return out
}

func goTo(t *testing.T, l *LandingScreen, step int) {
	t.Helper()
	for l.Step() < step {
		send(t, l, press(tea.KeyRight))
	}
	require.Equal(t, step, l.Step())
}

func TestNavigationBounds(t *testing.T) {
	l := New(0, nil)

	send(t, l, press(tea.KeyLeft))
	assert.Equal(t, StepHero, l.Step())

	for range TotalSteps + 2 {
		send(t, l, press(tea.KeyRight))
	}
	assert.Equal(t, StepGetStarted, l.Step())

	send(t, l, press(tea.KeyLeft))
	assert.Equal(t, StepAnalytics, l.Step())
}

func TestMarketSelectToggles(t *testing.T) {
	l := New(0, nil)
	goTo(t, l, StepMarket)

	send(t, l, press(tea.KeyDown))
	send(t, l, press(tea.KeyEnter))
	assert.Equal(t, "Midjourney", l.Selected())
	assert.Contains(t, l.View(120, 40), "Image Generation")

	send(t, l, press(tea.KeyEnter))
	assert.Empty(t, l.Selected())
}

func TestWatchlistIsAddOnly(t *testing.T) {
	l := New(0, nil)
	goTo(t, l, StepWatchlist)

	send(t, l, press(tea.KeyEnter))
	send(t, l, press(tea.KeyEnter))
	send(t, l, press(tea.KeyDown))
	send(t, l, press(tea.KeyDown))
	send(t, l, press(tea.KeyEnter))

	assert.Equal(t, []string{"ChatGPT", "Claude"}, l.Watchlist())
}

func TestCursorResetsOnStepChange(t *testing.T) {
	l := New(0, nil)
	goTo(t, l, StepMarket)
	send(t, l, press(tea.KeyDown))
	send(t, l, press(tea.KeyDown))

	send(t, l, press(tea.KeyRight))
	send(t, l, press(tea.KeyEnter))
	assert.Equal(t, []string{"ChatGPT"}, l.Watchlist())
}

func TestGetStartedPushesOnboarding(t *testing.T) {
	built := 0
	l := New(0, func() screen.Screen {
		built++
		return &stubScreen{}
	})
	goTo(t, l, StepGetStarted)

	_, cmd := l.Update(press(tea.KeyEnter))
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Onboarding", push.Screen.Title())
	assert.Equal(t, 1, built)
}

func TestExploreStaysOnTour(t *testing.T) {
	l := New(0, func() screen.Screen { return &stubScreen{} })
	goTo(t, l, StepGetStarted)

	send(t, l, press(tea.KeyDown))
	out := send(t, l, press(tea.KeyEnter))
	assert.Nil(t, out)
	assert.Equal(t, StepGetStarted, l.Step())
	assert.Contains(t, l.View(120, 40), "Browse the tour")
}

func TestKeysIgnoredWhileTransitioning(t *testing.T) {
	l := New(time.Hour, nil)
	_, cmd := l.Update(press(tea.KeyRight))
	require.NotNil(t, cmd)

	_, cmd = l.Update(press(tea.KeyRight))
	assert.Nil(t, cmd)
	assert.Equal(t, StepHero, l.Step())
}

func TestStatus(t *testing.T) {
	l := New(0, nil)
	assert.Equal(t, "Step 1/6", l.Status())
	send(t, l, key('n'))
	assert.Equal(t, "Step 2/6", l.Status())
}

func TestOpenOnboardingOnInit(t *testing.T) {
	l := New(0, func() screen.Screen { return &stubScreen{} })
	assert.Nil(t, l.Init())

	l = New(0, func() screen.Screen { return &stubScreen{} }).OpenOnboardingOnInit()
	cmd := l.Init()
	require.NotNil(t, cmd)
	assert.IsType(t, router.PushScreenMsg{}, cmd())
	assert.Nil(t, l.Init(), "only the first Init opens the questionnaire")
}
