package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/aimarketcap/internal/config"
	"github.com/abhisek/aimarketcap/internal/onboarding"
	"github.com/abhisek/aimarketcap/internal/profile"
	"github.com/abhisek/aimarketcap/internal/router"
	"github.com/abhisek/aimarketcap/internal/screen"
	"github.com/abhisek/aimarketcap/internal/screens/dashboard"
	"github.com/abhisek/aimarketcap/internal/screens/landing"
	onboardingscreen "github.com/abhisek/aimarketcap/internal/screens/onboarding"
	"github.com/abhisek/aimarketcap/internal/screens/welcome"
	"github.com/abhisek/aimarketcap/internal/ui/layout"
)

// hookTimeout bounds a single persistence call made from the UI.
const hookTimeout = 5 * time.Second

// Options holds the dependencies the TUI needs.
type Options struct {
	Config config.Config
	// State is the onboarding state loaded at startup.
	State onboarding.State
	// Hook persists the questionnaire outcome. May be nil.
	Hook   onboarding.Hook
	Logger *zap.Logger
}

// persistedMsg reports the result of a Hook call. profile is the stored
// profile for a completed outcome.
type persistedMsg struct {
	what    string
	profile *profile.UserProfile
	err     error
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	// dashboard is the dashboard opened by the last completed questionnaire.
	dashboard *dashboard.DashboardScreen
	opts   Options
	log    *zap.Logger
	width  int
	height int
}

// newAppModel picks the first screen from the startup state: the dashboard
// when a profile is stored, otherwise the landing tour, which opens the
// questionnaire on first run.
func newAppModel(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	m := AppModel{opts: opts, log: log}

	var first screen.Screen
	switch {
	case opts.State.Completed && opts.State.Profile != nil:
		first = m.newDashboard(*opts.State.Profile)
	case opts.State.Completed:
		first = m.newLanding()
	default:
		first = landing.New(opts.Config.TransitionDelay, m.newOnboarding).OpenOnboardingOnInit()
	}
	if opts.Config.ShowSplash() {
		next := first
		first = welcome.New(func() screen.Screen { return next })
	}
	m.router = router.New(first)
	return m
}

func (m AppModel) newLanding() screen.Screen {
	return landing.New(m.opts.Config.TransitionDelay, m.newOnboarding)
}

func (m AppModel) newOnboarding() screen.Screen {
	speed := m.opts.Config.TypeSpeed
	if m.opts.Config.Presentation == config.PresentationPlain {
		speed = 0
	}
	return onboardingscreen.New(onboardingscreen.Options{
		Delay:     m.opts.Config.TransitionDelay,
		TypeSpeed: speed,
	})
}

func (m AppModel) newDashboard(p profile.UserProfile) *dashboard.DashboardScreen {
	return dashboard.New(p, m.newLanding)
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscHandler); ok && h.HandlesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case onboardingscreen.CompletedMsg:
		m.router.Pop()
		m.dashboard = m.newDashboard(msg.Profile)
		cmd := m.router.Replace(m.dashboard)
		return m, tea.Batch(cmd, m.persistComplete(msg.Profile))

	case onboardingscreen.SkippedMsg:
		m.router.Pop()
		return m, m.persistSkip()

	case persistedMsg:
		if msg.profile != nil && m.dashboard != nil {
			m.dashboard.State().AdoptProfileID(msg.profile.ID)
		}
		if msg.err != nil {
			m.log.Warn("onboarding outcome not saved", zap.String("outcome", msg.what), zap.Error(msg.err))
		}
		return m, nil
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) persistComplete(p profile.UserProfile) tea.Cmd {
	hook := m.opts.Hook
	if hook == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), hookTimeout)
		defer cancel()
		saved, err := hook.Complete(ctx, p)
		return persistedMsg{what: "completed", profile: &saved, err: err}
	}
}

func (m AppModel) persistSkip() tea.Cmd {
	hook := m.opts.Hook
	if hook == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), hookTimeout)
		defer cancel()
		return persistedMsg{what: "skipped", err: hook.Skip(ctx)}
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Any key", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
