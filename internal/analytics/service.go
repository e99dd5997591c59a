// Package analytics computes the manager-facing rollups of attempts and
// decisions. Everything here is derived, cached nowhere, and recomputed on
// demand.
package analytics

import (
	"context"
	"fmt"

	"github.com/hollisv/caresim/internal/scenario"
	"github.com/hollisv/caresim/internal/store"
)

// Service provides read-side aggregation over the progress and decision
// repositories.
type Service struct {
	learners  store.LearnerRepo
	attempts  store.AttemptRepo
	decisions store.DecisionRepo
}

// NewService creates an analytics service over the given repositories.
func NewService(learners store.LearnerRepo, attempts store.AttemptRepo, decisions store.DecisionRepo) *Service {
	return &Service{learners: learners, attempts: attempts, decisions: decisions}
}

// LearnerReport summarizes one learner's training record. The three
// classification counts always sum to TotalDecisions; suboptimal is the
// remainder, so a decision whose choice is no longer resolvable still
// counts as suboptimal rather than disappearing.
type LearnerReport struct {
	LearnerID             int
	Name                  string
	ScenariosCompleted    int
	TotalDecisions        int
	BestPracticeCount     int
	ValidAlternativeCount int
	SuboptimalCount       int

	// Averages of final meter values across completed attempts only;
	// zero when the learner has completed nothing.
	AvgClientStatus float64
	AvgWellbeing    float64
}

// TeamPerformance is the per-learner breakdown for one organization.
type TeamPerformance struct {
	Organization string
	Learners     []LearnerReport
}

// OrganizationOverview is the headline rollup for one organization.
type OrganizationOverview struct {
	Organization      string
	LearnerCount      int
	ManagerCount      int
	CompletedAttempts int

	// The scenario with the most completed attempts; ties broken by the
	// lowest scenario ID. Zero value when nothing is completed yet.
	TopScenarioID    int
	TopScenarioTitle string
}

// LearnerReport builds the summary for a single learner.
func (s *Service) LearnerReport(ctx context.Context, learnerID int) (*LearnerReport, error) {
	l, err := s.learners.Get(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load learner: %w", err)
	}
	return s.reportFor(ctx, l)
}

func (s *Service) reportFor(ctx context.Context, l *store.Learner) (*LearnerReport, error) {
	report := &LearnerReport{LearnerID: l.ID, Name: l.Name}

	completed, err := s.attempts.ListCompleted(ctx, l.ID)
	if err != nil {
		return nil, fmt.Errorf("list completed attempts: %w", err)
	}
	report.ScenariosCompleted = len(completed)
	if len(completed) > 0 {
		var statusSum, wellbeingSum int
		for _, a := range completed {
			statusSum += a.ClientStatus
			wellbeingSum += a.Wellbeing
		}
		report.AvgClientStatus = float64(statusSum) / float64(len(completed))
		report.AvgWellbeing = float64(wellbeingSum) / float64(len(completed))
	}

	decisions, err := s.decisions.ListByLearner(ctx, l.ID)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	report.TotalDecisions = len(decisions)
	for _, d := range decisions {
		c, err := scenario.GetChoice(d.ChoiceID)
		if err != nil {
			continue // unresolvable choices land in the suboptimal remainder
		}
		switch c.Classification() {
		case scenario.BestPractice:
			report.BestPracticeCount++
		case scenario.ValidAlternative:
			report.ValidAlternativeCount++
		}
	}
	report.SuboptimalCount = report.TotalDecisions - report.BestPracticeCount - report.ValidAlternativeCount

	return report, nil
}

// TeamPerformance builds per-learner reports for everyone in the
// organization with the learner role.
func (s *Service) TeamPerformance(ctx context.Context, organization string) (*TeamPerformance, error) {
	members, err := s.learners.ListByOrganization(ctx, organization)
	if err != nil {
		return nil, fmt.Errorf("list organization members: %w", err)
	}

	perf := &TeamPerformance{Organization: organization}
	for _, m := range members {
		if m.Role != store.RoleLearner {
			continue
		}
		report, err := s.reportFor(ctx, m)
		if err != nil {
			return nil, err
		}
		perf.Learners = append(perf.Learners, *report)
	}
	return perf, nil
}

// OrganizationOverview builds the headline rollup for an organization.
func (s *Service) OrganizationOverview(ctx context.Context, organization string) (*OrganizationOverview, error) {
	members, err := s.learners.ListByOrganization(ctx, organization)
	if err != nil {
		return nil, fmt.Errorf("list organization members: %w", err)
	}

	overview := &OrganizationOverview{Organization: organization}
	completedByScenario := make(map[int]int)

	for _, m := range members {
		switch m.Role {
		case store.RoleManager:
			overview.ManagerCount++
			continue
		default:
			overview.LearnerCount++
		}

		completed, err := s.attempts.ListCompleted(ctx, m.ID)
		if err != nil {
			return nil, fmt.Errorf("list completed attempts: %w", err)
		}
		overview.CompletedAttempts += len(completed)
		for _, a := range completed {
			completedByScenario[a.ScenarioID]++
		}
	}

	// Highest completed count wins; ties break to the lowest scenario ID
	// so the answer is deterministic.
	for id, count := range completedByScenario {
		better := count > completedByScenario[overview.TopScenarioID]
		tie := count == completedByScenario[overview.TopScenarioID] && overview.TopScenarioID != 0 && id < overview.TopScenarioID
		if overview.TopScenarioID == 0 || better || tie {
			overview.TopScenarioID = id
		}
	}
	if overview.TopScenarioID != 0 {
		if sc, err := scenario.Get(overview.TopScenarioID); err == nil {
			overview.TopScenarioTitle = sc.Title
		}
	}

	return overview, nil
}
