package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/hollisv/caresim/internal/store"
)

// mockData implements the three repository interfaces over fixed slices.
type mockData struct {
	learners  []*store.Learner
	attempts  []*store.Attempt
	decisions []*store.Decision
}

func (m *mockData) Ensure(_ context.Context, name, organization, role string) (*store.Learner, error) {
	for _, l := range m.learners {
		if l.Name == name {
			return l, nil
		}
	}
	l := &store.Learner{ID: len(m.learners) + 1, Name: name, Organization: organization, Role: role}
	m.learners = append(m.learners, l)
	return l, nil
}

func (m *mockData) Get(_ context.Context, id int) (*store.Learner, error) {
	for _, l := range m.learners {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockData) GetByName(_ context.Context, name string) (*store.Learner, error) {
	for _, l := range m.learners {
		if l.Name == name {
			return l, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockData) ListByOrganization(_ context.Context, organization string) ([]*store.Learner, error) {
	var out []*store.Learner
	for _, l := range m.learners {
		if l.Organization == organization {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *mockData) Create(_ context.Context, learnerID, scenarioID int) (*store.Attempt, error) {
	return nil, nil
}

func (m *mockData) GetAttempt(_ context.Context, attemptID, learnerID int) (*store.Attempt, error) {
	return nil, store.ErrNotFound
}

func (m *mockData) ListCompleted(_ context.Context, learnerID int) ([]*store.Attempt, error) {
	var out []*store.Attempt
	for _, a := range m.attempts {
		if a.LearnerID == learnerID && a.Completed() {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockData) ApplyDecision(_ context.Context, in store.ApplyDecisionInput) (*store.Decision, error) {
	return nil, nil
}

func (m *mockData) ListByAttempt(_ context.Context, attemptID int) ([]*store.Decision, error) {
	var out []*store.Decision
	for _, d := range m.decisions {
		if d.AttemptID == attemptID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockData) ListByLearner(_ context.Context, learnerID int) ([]*store.Decision, error) {
	var out []*store.Decision
	for _, d := range m.decisions {
		if d.LearnerID == learnerID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockData) CountByLearner(_ context.Context, learnerID int, pred func(*store.Decision) bool) (int, error) {
	n := 0
	for _, d := range m.decisions {
		if d.LearnerID == learnerID && (pred == nil || pred(d)) {
			n++
		}
	}
	return n, nil
}

func done() *time.Time {
	t := time.Now()
	return &t
}

// Seed choice IDs used in fixtures: 101 is best practice, 102 is a valid
// alternative, 103 is suboptimal.
func fixtures() *mockData {
	return &mockData{
		learners: []*store.Learner{
			{ID: 1, Name: "asha", Organization: "northside", Role: store.RoleLearner},
			{ID: 2, Name: "bren", Organization: "northside", Role: store.RoleLearner},
			{ID: 3, Name: "mara", Organization: "northside", Role: store.RoleManager},
			{ID: 4, Name: "otis", Organization: "southside", Role: store.RoleLearner},
		},
		attempts: []*store.Attempt{
			{ID: 1, LearnerID: 1, ScenarioID: 1, ClientStatus: 70, Wellbeing: 65, CompletedAt: done()},
			{ID: 2, LearnerID: 1, ScenarioID: 2, ClientStatus: 30, Wellbeing: 35, CompletedAt: done()},
			{ID: 3, LearnerID: 1, ScenarioID: 1, ClientStatus: 55, Wellbeing: 55}, // in progress
			{ID: 4, LearnerID: 2, ScenarioID: 1, ClientStatus: 40, Wellbeing: 50, CompletedAt: done()},
			{ID: 5, LearnerID: 4, ScenarioID: 3, ClientStatus: 60, Wellbeing: 60, CompletedAt: done()},
		},
		decisions: []*store.Decision{
			{ID: 1, Sequence: 1, AttemptID: 1, LearnerID: 1, ScenarioID: 1, ChoiceID: 101},
			{ID: 2, Sequence: 2, AttemptID: 1, LearnerID: 1, ScenarioID: 1, ChoiceID: 102},
			{ID: 3, Sequence: 3, AttemptID: 2, LearnerID: 1, ScenarioID: 2, ChoiceID: 103},
			{ID: 4, Sequence: 4, AttemptID: 3, LearnerID: 1, ScenarioID: 1, ChoiceID: 77777}, // retired choice
			{ID: 5, Sequence: 5, AttemptID: 4, LearnerID: 2, ScenarioID: 1, ChoiceID: 101},
		},
	}
}

func newTestService() *Service {
	m := fixtures()
	return NewService(m, attemptRepoShim{m}, m)
}

// attemptRepoShim disambiguates the Get method: store.AttemptRepo and
// store.LearnerRepo both name a Get, so the mock can only satisfy one
// directly.
type attemptRepoShim struct{ m *mockData }

func (s attemptRepoShim) Create(ctx context.Context, learnerID, scenarioID int) (*store.Attempt, error) {
	return s.m.Create(ctx, learnerID, scenarioID)
}
func (s attemptRepoShim) Get(ctx context.Context, attemptID, learnerID int) (*store.Attempt, error) {
	return s.m.GetAttempt(ctx, attemptID, learnerID)
}
func (s attemptRepoShim) ListCompleted(ctx context.Context, learnerID int) ([]*store.Attempt, error) {
	return s.m.ListCompleted(ctx, learnerID)
}
func (s attemptRepoShim) ApplyDecision(ctx context.Context, in store.ApplyDecisionInput) (*store.Decision, error) {
	return s.m.ApplyDecision(ctx, in)
}

func TestLearnerReport(t *testing.T) {
	svc := newTestService()

	r, err := svc.LearnerReport(context.Background(), 1)
	if err != nil {
		t.Fatalf("LearnerReport: %v", err)
	}

	if r.Name != "asha" {
		t.Errorf("Name = %q, want %q", r.Name, "asha")
	}
	if r.ScenariosCompleted != 2 {
		t.Errorf("ScenariosCompleted = %d, want 2", r.ScenariosCompleted)
	}
	if r.TotalDecisions != 4 {
		t.Errorf("TotalDecisions = %d, want 4", r.TotalDecisions)
	}
	if r.BestPracticeCount != 1 {
		t.Errorf("BestPracticeCount = %d, want 1", r.BestPracticeCount)
	}
	if r.ValidAlternativeCount != 1 {
		t.Errorf("ValidAlternativeCount = %d, want 1", r.ValidAlternativeCount)
	}
	// The retired choice lands in the suboptimal remainder with choice 103.
	if r.SuboptimalCount != 2 {
		t.Errorf("SuboptimalCount = %d, want 2", r.SuboptimalCount)
	}
	if sum := r.BestPracticeCount + r.ValidAlternativeCount + r.SuboptimalCount; sum != r.TotalDecisions {
		t.Errorf("classification counts sum to %d, want %d", sum, r.TotalDecisions)
	}

	// Averages cover completed attempts only: (70+30)/2 and (65+35)/2.
	if r.AvgClientStatus != 50 {
		t.Errorf("AvgClientStatus = %v, want 50", r.AvgClientStatus)
	}
	if r.AvgWellbeing != 50 {
		t.Errorf("AvgWellbeing = %v, want 50", r.AvgWellbeing)
	}
}

func TestLearnerReportEmpty(t *testing.T) {
	m := &mockData{learners: []*store.Learner{
		{ID: 1, Name: "new", Organization: "northside", Role: store.RoleLearner},
	}}
	svc := NewService(m, attemptRepoShim{m}, m)

	r, err := svc.LearnerReport(context.Background(), 1)
	if err != nil {
		t.Fatalf("LearnerReport: %v", err)
	}
	if r.ScenariosCompleted != 0 || r.TotalDecisions != 0 {
		t.Errorf("empty learner has completed=%d decisions=%d, want zeros", r.ScenariosCompleted, r.TotalDecisions)
	}
	if r.AvgClientStatus != 0 || r.AvgWellbeing != 0 {
		t.Errorf("empty learner averages = (%v, %v), want zeros", r.AvgClientStatus, r.AvgWellbeing)
	}
}

func TestLearnerReportUnknownLearner(t *testing.T) {
	svc := newTestService()
	if _, err := svc.LearnerReport(context.Background(), 999); err == nil {
		t.Error("unknown learner accepted")
	}
}

func TestTeamPerformance(t *testing.T) {
	svc := newTestService()

	perf, err := svc.TeamPerformance(context.Background(), "northside")
	if err != nil {
		t.Fatalf("TeamPerformance: %v", err)
	}

	// Two learners; the manager is excluded, the southside learner invisible.
	if len(perf.Learners) != 2 {
		t.Fatalf("team has %d learners, want 2", len(perf.Learners))
	}
	for _, r := range perf.Learners {
		if r.Name == "mara" {
			t.Error("manager included in team performance")
		}
		if r.Name == "otis" {
			t.Error("other organization's learner leaked into team performance")
		}
	}

	// Per-learner rows carry the same numbers as the individual report.
	var asha *LearnerReport
	for i := range perf.Learners {
		if perf.Learners[i].Name == "asha" {
			asha = &perf.Learners[i]
		}
	}
	if asha == nil {
		t.Fatal("asha missing from team performance")
	}
	if asha.ScenariosCompleted != 2 || asha.TotalDecisions != 4 {
		t.Errorf("asha row = (%d completed, %d decisions), want (2, 4)",
			asha.ScenariosCompleted, asha.TotalDecisions)
	}
}

func TestOrganizationOverview(t *testing.T) {
	svc := newTestService()

	o, err := svc.OrganizationOverview(context.Background(), "northside")
	if err != nil {
		t.Fatalf("OrganizationOverview: %v", err)
	}

	if o.LearnerCount != 2 {
		t.Errorf("LearnerCount = %d, want 2", o.LearnerCount)
	}
	if o.ManagerCount != 1 {
		t.Errorf("ManagerCount = %d, want 1", o.ManagerCount)
	}
	if o.CompletedAttempts != 3 {
		t.Errorf("CompletedAttempts = %d, want 3", o.CompletedAttempts)
	}

	// Scenario 1 has two completions to scenario 2's one.
	if o.TopScenarioID != 1 {
		t.Errorf("TopScenarioID = %d, want 1", o.TopScenarioID)
	}
	if o.TopScenarioTitle == "" {
		t.Error("TopScenarioTitle is empty")
	}
}

func TestOrganizationOverviewTieBreak(t *testing.T) {
	m := fixtures()
	// Give scenario 2 a second completion so scenarios 1 and 2 tie.
	m.attempts = append(m.attempts, &store.Attempt{
		ID: 6, LearnerID: 2, ScenarioID: 2, ClientStatus: 50, Wellbeing: 50, CompletedAt: done(),
	})
	svc := NewService(m, attemptRepoShim{m}, m)

	o, err := svc.OrganizationOverview(context.Background(), "northside")
	if err != nil {
		t.Fatalf("OrganizationOverview: %v", err)
	}
	if o.TopScenarioID != 1 {
		t.Errorf("tie broke to scenario %d, want the lower ID 1", o.TopScenarioID)
	}
}

func TestOrganizationOverviewEmpty(t *testing.T) {
	svc := newTestService()

	o, err := svc.OrganizationOverview(context.Background(), "ghost-org")
	if err != nil {
		t.Fatalf("OrganizationOverview: %v", err)
	}
	if o.LearnerCount != 0 || o.CompletedAttempts != 0 || o.TopScenarioID != 0 {
		t.Errorf("empty org overview = %+v, want zero values", o)
	}
}
