package library

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hollisv/caresim/internal/engine"
	"github.com/hollisv/caresim/internal/router"
	"github.com/hollisv/caresim/internal/scenario"
	"github.com/hollisv/caresim/internal/screen"
	"github.com/hollisv/caresim/internal/screens/sim"
	"github.com/hollisv/caresim/internal/store"
	"github.com/hollisv/caresim/internal/ui/components"
	"github.com/hollisv/caresim/internal/ui/theme"
)

// startedMsg carries the outcome of starting an attempt.
type startedMsg struct {
	attempt *store.Attempt
	err     error
}

// Model is the scenario picker.
type Model struct {
	eng     *engine.Service
	learner *store.Learner
	menu    components.Menu
	err     error
}

// New creates the library screen listing every loaded scenario.
func New(eng *engine.Service, learner *store.Learner) *Model {
	m := &Model{eng: eng, learner: learner}

	var items []components.MenuItem
	for _, sc := range scenario.All() {
		sc := sc
		items = append(items, components.MenuItem{
			Label: sc.Title,
			Detail: fmt.Sprintf("%s · %s · ~%d min",
				sc.Category, scenario.DifficultyDisplayName(sc.Difficulty), sc.EstimatedMins),
			Action: func() tea.Cmd { return m.startCmd(sc.ID) },
		})
	}
	m.menu = components.NewMenu(items)
	return m
}

func (m *Model) startCmd(scenarioID int) tea.Cmd {
	eng := m.eng
	learnerID := m.learner.ID
	return func() tea.Msg {
		a, err := eng.StartAttempt(context.Background(), learnerID, scenarioID)
		return startedMsg{attempt: a, err: err}
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if smsg, ok := msg.(startedMsg); ok {
		if smsg.err != nil {
			m.err = smsg.err
			return m, nil
		}
		next := sim.New(m.eng, m.learner, smsg.attempt)
		return m, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *Model) View(width, height int) string {
	content := theme.Title.Render("Scenario Library") + "\n\n" + m.menu.View()
	if m.err != nil {
		content += "\n" + theme.Negative.Render(m.err.Error())
	}
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (m *Model) Title() string {
	return "Library"
}
