package sim

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/hollisv/caresim/internal/engine"
	"github.com/hollisv/caresim/internal/router"
	"github.com/hollisv/caresim/internal/scenario"
	"github.com/hollisv/caresim/internal/screen"
	"github.com/hollisv/caresim/internal/screens/summary"
	"github.com/hollisv/caresim/internal/store"
	"github.com/hollisv/caresim/internal/ui/components"
	"github.com/hollisv/caresim/internal/ui/layout"
	"github.com/hollisv/caresim/internal/ui/theme"
)

// phase tracks where the screen sits in the choose/feedback loop.
type phase int

const (
	phaseChoosing phase = iota
	phaseFeedback
)

// decidedMsg carries the outcome of a submitted choice.
type decidedMsg struct {
	result *engine.DecisionResult
	err    error
}

// Model is the simulation screen: narrative, meters, choices, feedback.
type Model struct {
	eng      *engine.Service
	learner  *store.Learner
	attempt  *store.Attempt
	scenario scenario.Scenario
	node     scenario.Node
	menu     components.Menu
	phase    phase
	result   *engine.DecisionResult
	err      error
}

// New creates a simulation screen positioned at the attempt's current node.
func New(eng *engine.Service, learner *store.Learner, attempt *store.Attempt) *Model {
	m := &Model{eng: eng, learner: learner, attempt: attempt}
	m.scenario, _ = scenario.Get(attempt.ScenarioID)
	m.enterNode(attempt.CurrentNodeKey)
	return m
}

// enterNode positions the screen on a node and rebuilds the choice menu.
func (m *Model) enterNode(key string) {
	node, err := scenario.GetNode(m.attempt.ScenarioID, key)
	if err != nil {
		// Fail closed: leave no menu behind, or the previous node's
		// choices would still be submittable.
		m.err = err
		m.node = scenario.Node{}
		m.menu = components.NewMenu(nil)
		m.phase = phaseChoosing
		m.result = nil
		return
	}
	m.node = node

	var items []components.MenuItem
	for _, c := range node.Choices {
		c := c
		items = append(items, components.MenuItem{
			Label:  c.Label,
			Action: func() tea.Cmd { return m.decideCmd(c.ID) },
		})
	}
	m.menu = components.NewMenu(items)
	m.phase = phaseChoosing
	m.result = nil
}

func (m *Model) decideCmd(choiceID int) tea.Cmd {
	eng := m.eng
	attemptID := m.attempt.ID
	learnerID := m.learner.ID
	// One submission ID per keypress: a redelivered message cannot apply
	// the same choice twice.
	submissionID := uuid.NewString()
	return func() tea.Msg {
		res, err := eng.Decide(context.Background(), attemptID, learnerID, choiceID, submissionID)
		return decidedMsg{result: res, err: err}
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case decidedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.result = msg.result
		m.attempt.CurrentNodeKey = msg.result.NextNodeKey
		m.attempt.ClientStatus = msg.result.ClientStatus
		m.attempt.Wellbeing = msg.result.Wellbeing
		m.phase = phaseFeedback
		return m, nil

	case tea.KeyMsg:
		if m.phase == phaseFeedback && msg.String() == "enter" {
			if m.result != nil && m.result.Completed {
				next := summary.New(m.eng, m.learner, m.attempt)
				return m, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
			}
			m.enterNode(m.attempt.CurrentNodeKey)
			return m, nil
		}
	}

	if m.phase == phaseChoosing {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
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

	narrative := theme.Card.Width(contentWidth).Render(
		theme.Body.Render(m.node.Content),
	)

	meters := components.NewMeterBar("Client status", m.attempt.ClientStatus, contentWidth/2).View() +
		"\n" + components.NewMeterBar("Wellbeing    ", m.attempt.Wellbeing, contentWidth/2).View()

	var lower string
	switch m.phase {
	case phaseFeedback:
		lower = m.feedbackView(contentWidth)
	default:
		lower = ""
		if m.node.Question != "" {
			lower = theme.Hint.Render(m.node.Question) + "\n\n"
		}
		lower += m.menu.View()
	}

	if m.err != nil {
		lower += "\n" + theme.Negative.Render(m.err.Error())
	}

	content := narrative + "\n\n" + meters + "\n\n" + lower

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (m *Model) feedbackView(contentWidth int) string {
	if m.result == nil {
		return ""
	}

	var badge string
	switch m.result.Classification {
	case scenario.BestPractice:
		badge = theme.Positive.Render("● Best Practice")
	case scenario.ValidAlternative:
		badge = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("● Valid Alternative")
	default:
		badge = theme.Negative.Render("● Suboptimal")
	}

	body := badge
	if m.result.Feedback != "" {
		body += "\n\n" + theme.Body.Render(m.result.Feedback)
	}
	hint := "Enter to continue"
	if m.result.Completed {
		hint = "Enter to see your summary"
	}
	body += "\n\n" + theme.Hint.Render(hint)

	return theme.Card.Width(contentWidth).Render(body)
}

func (m *Model) Title() string {
	return m.scenario.Title
}

// KeyHints provides phase-appropriate footer hints.
func (m *Model) KeyHints() []layout.KeyHint {
	if m.phase == phaseFeedback {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Decide"},
		{Key: "Esc", Description: "Leave scenario"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
