package home

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hollisv/caresim/internal/analytics"
	"github.com/hollisv/caresim/internal/engine"
	"github.com/hollisv/caresim/internal/router"
	"github.com/hollisv/caresim/internal/screen"
	"github.com/hollisv/caresim/internal/screens/library"
	"github.com/hollisv/caresim/internal/screens/report"
	"github.com/hollisv/caresim/internal/store"
	"github.com/hollisv/caresim/internal/ui/components"
	"github.com/hollisv/caresim/internal/ui/theme"
)

// Options carries the services the home screen and its children need.
type Options struct {
	Learner      *store.Learner
	LearnerRepo  store.LearnerRepo
	Engine       *engine.Service
	Analytics    *analytics.Service
	Organization string
}

// SignedInMsg announces a completed sign-in to the rest of the app.
type SignedInMsg struct {
	Learner *store.Learner
}

// signInResultMsg carries the outcome of the sign-in command.
type signInResultMsg struct {
	learner *store.Learner
	err     error
}

// Model is the home screen: a sign-in prompt until an identity exists, a
// navigation menu after.
type Model struct {
	opts  Options
	input components.TextInput
	menu  components.Menu
	err   error
}

// New creates the home screen.
func New(opts Options) *Model {
	m := &Model{
		opts:  opts,
		input: components.NewTextInput("your name", 40),
	}
	if opts.Learner != nil {
		m.menu = m.buildMenu()
	}
	return m
}

func (m *Model) buildMenu() components.Menu {
	opts := m.opts
	return components.NewMenu([]components.MenuItem{
		{
			Label:  "Start a scenario",
			Detail: "practice a situation from the library",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: library.New(opts.Engine, opts.Learner)}
				}
			},
		},
		{
			Label:  "My report",
			Detail: "decisions, classifications, outcomes",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: report.New(opts.Analytics, opts.Learner)}
				}
			},
		},
		{
			Label:  "Quit",
			Action: func() tea.Cmd { return tea.Quit },
		},
	})
}

func (m *Model) Init() tea.Cmd {
	if m.opts.Learner == nil {
		return m.input.Init()
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case signInResultMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.opts.Learner = msg.learner
		m.menu = m.buildMenu()
		learner := msg.learner
		return m, func() tea.Msg { return SignedInMsg{Learner: learner} }

	case SignedInMsg:
		return m, nil
	}

	if m.opts.Learner == nil {
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			name := m.input.Value()
			if name == "" {
				return m, nil
			}
			return m, m.signInCmd(name)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *Model) signInCmd(name string) tea.Cmd {
	repo := m.opts.LearnerRepo
	org := m.opts.Organization
	return func() tea.Msg {
		l, err := repo.Ensure(context.Background(), name, org, store.RoleLearner)
		return signInResultMsg{learner: l, err: err}
	}
}

func (m *Model) View(width, height int) string {
	if m.opts.Learner == nil {
		prompt := theme.Title.Render("Welcome to caresim") + "\n\n" +
			theme.Subtitle.Render("Who is training today?") + "\n\n" +
			m.input.View()
		if m.err != nil {
			prompt += "\n\n" + theme.Negative.Render(m.err.Error())
		}
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(prompt)
	}

	content := theme.Title.Render("caresim") + "\n" +
		theme.Subtitle.Render("scenario training for care workers") + "\n\n" +
		m.menu.View()

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (m *Model) Title() string {
	return "Home"
}
