package summary

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hollisv/caresim/internal/engine"
	"github.com/hollisv/caresim/internal/router"
	"github.com/hollisv/caresim/internal/scenario"
	"github.com/hollisv/caresim/internal/screen"
	"github.com/hollisv/caresim/internal/store"
	"github.com/hollisv/caresim/internal/ui/components"
	"github.com/hollisv/caresim/internal/ui/layout"
	"github.com/hollisv/caresim/internal/ui/theme"
)

// historyMsg carries the attempt's decision log.
type historyMsg struct {
	decisions []*store.Decision
	err       error
}

// Model is the end-of-scenario summary: the closing narrative, final
// meters, and the path the learner took with each decision's rating.
type Model struct {
	eng       *engine.Service
	learner   *store.Learner
	attempt   *store.Attempt
	scenario  scenario.Scenario
	ending    scenario.Node
	decisions []*store.Decision
	err       error
}

// New creates a summary screen for a completed attempt.
func New(eng *engine.Service, learner *store.Learner, attempt *store.Attempt) *Model {
	m := &Model{eng: eng, learner: learner, attempt: attempt}
	m.scenario, _ = scenario.Get(attempt.ScenarioID)
	m.ending, _ = scenario.GetNode(attempt.ScenarioID, attempt.CurrentNodeKey)
	return m
}

func (m *Model) Init() tea.Cmd {
	eng := m.eng
	attemptID := m.attempt.ID
	learnerID := m.learner.ID
	return func() tea.Msg {
		rows, err := eng.DecisionHistory(context.Background(), attemptID, learnerID)
		return historyMsg{decisions: rows, err: err}
	}
}

func (m *Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyMsg:
		m.decisions = msg.decisions
		m.err = msg.err
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "enter" {
			return m, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return m, nil
}

func (m *Model) View(width, height int) string {
	contentWidth := width - 8
	if contentWidth > 90 {
		contentWidth = 90
	}
	if contentWidth < 20 {
		contentWidth = 20
	}

	header := theme.Positive.Render("Scenario complete")

	closing := theme.Card.Width(contentWidth).Render(
		theme.Body.Render(m.ending.Content),
	)

	meters := components.NewMeterBar("Client status", m.attempt.ClientStatus, contentWidth/2).View() +
		"\n" + components.NewMeterBar("Wellbeing    ", m.attempt.Wellbeing, contentWidth/2).View()

	content := header + "\n\n" + closing + "\n\n" + meters + "\n\n" + m.pathView()

	if m.err != nil {
		content += "\n" + theme.Negative.Render(m.err.Error())
	}

	content += "\n\n" + theme.Hint.Render("Enter to return")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// pathView lists every decision taken, with its rating, and totals.
func (m *Model) pathView() string {
	if len(m.decisions) == 0 {
		return ""
	}

	var s string
	var best, valid, subopt int
	for i, d := range m.decisions {
		label := fmt.Sprintf("choice %d", d.ChoiceID)
		mark := theme.Negative.Render("✖")
		if choice, err := scenario.GetChoice(d.ChoiceID); err == nil {
			label = choice.Label
			switch choice.Classification() {
			case scenario.BestPractice:
				mark = theme.Positive.Render("✔")
				best++
			case scenario.ValidAlternative:
				mark = lipgloss.NewStyle().Foreground(theme.Accent).Render("◆")
				valid++
			default:
				subopt++
			}
		} else {
			subopt++
		}
		s += fmt.Sprintf("  %d. %s %s\n", i+1, mark, theme.Body.Render(label))
	}

	totals := theme.Hint.Render(fmt.Sprintf(
		"%d best practice · %d valid alternative · %d suboptimal",
		best, valid, subopt,
	))

	return s + "\n" + totals
}

func (m *Model) Title() string {
	return m.scenario.Title + " — Summary"
}

func (m *Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to library"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
