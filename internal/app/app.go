package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hollisv/caresim/internal/analytics"
	"github.com/hollisv/caresim/internal/engine"
	"github.com/hollisv/caresim/internal/router"
	"github.com/hollisv/caresim/internal/screen"
	"github.com/hollisv/caresim/internal/screens/home"
	"github.com/hollisv/caresim/internal/store"
	"github.com/hollisv/caresim/internal/ui/layout"
)

// Options carries the services the screens depend on.
type Options struct {
	// Learner is the signed-in identity, nil until the home screen's
	// sign-in completes.
	Learner      *store.Learner
	LearnerRepo  store.LearnerRepo
	Engine       *engine.Service
	Analytics    *analytics.Service
	Organization string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router      *router.Router
	learnerName string
	width       int
	height      int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	m := AppModel{
		router: router.New(home.New(home.Options{
			Learner:      opts.Learner,
			LearnerRepo:  opts.LearnerRepo,
			Engine:       opts.Engine,
			Analytics:    opts.Analytics,
			Organization: opts.Organization,
		})),
	}
	if opts.Learner != nil {
		m.learnerName = opts.Learner.Name
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case home.SignedInMsg:
		m.learnerName = msg.Learner.Name
		// Fall through to the router so the home screen updates too.

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.learnerName, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
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
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
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
