package report

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hollisv/caresim/internal/analytics"
	"github.com/hollisv/caresim/internal/router"
	"github.com/hollisv/caresim/internal/screen"
	"github.com/hollisv/caresim/internal/store"
	"github.com/hollisv/caresim/internal/ui/layout"
	"github.com/hollisv/caresim/internal/ui/theme"
)

// reportMsg carries the learner's computed report.
type reportMsg struct {
	report *analytics.LearnerReport
	err    error
}

// Model shows the signed-in learner their own training record.
type Model struct {
	svc     *analytics.Service
	learner *store.Learner
	report  *analytics.LearnerReport
	err     error
}

// New creates a report screen for the given learner.
func New(svc *analytics.Service, learner *store.Learner) *Model {
	return &Model{svc: svc, learner: learner}
}

func (m *Model) Init() tea.Cmd {
	svc := m.svc
	learnerID := m.learner.ID
	return func() tea.Msg {
		r, err := svc.LearnerReport(context.Background(), learnerID)
		return reportMsg{report: r, err: err}
	}
}

func (m *Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportMsg:
		m.report = msg.report
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
	var content string
	switch {
	case m.err != nil:
		content = theme.Negative.Render(m.err.Error())
	case m.report == nil:
		content = theme.Hint.Render("Crunching the numbers…")
	default:
		content = m.reportView()
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (m *Model) reportView() string {
	r := m.report

	row := func(label, value string) string {
		return fmt.Sprintf("%s %s\n",
			theme.Hint.Render(fmt.Sprintf("%-24s", label)),
			theme.Body.Render(value))
	}

	body := row("Scenarios completed", fmt.Sprintf("%d", r.ScenariosCompleted))
	body += row("Decisions made", fmt.Sprintf("%d", r.TotalDecisions))
	body += row("Best practice", theme.Positive.Render(fmt.Sprintf("%d", r.BestPracticeCount)))
	body += row("Valid alternative", fmt.Sprintf("%d", r.ValidAlternativeCount))
	body += row("Suboptimal", theme.Negative.Render(fmt.Sprintf("%d", r.SuboptimalCount)))

	if r.ScenariosCompleted > 0 {
		body += "\n"
		body += row("Avg client status", fmt.Sprintf("%.1f", r.AvgClientStatus))
		body += row("Avg wellbeing", fmt.Sprintf("%.1f", r.AvgWellbeing))
	} else {
		body += "\n" + theme.Hint.Render("Complete a scenario to see your averages.") + "\n"
	}

	title := theme.Title.Render(r.Name + "'s report")

	return title + "\n\n" + theme.Card.Render(body)
}

func (m *Model) Title() string {
	return "My Report"
}

func (m *Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
