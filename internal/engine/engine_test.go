package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/hollisv/caresim/internal/scenario"
	"github.com/hollisv/caresim/internal/store"
)

// mockRepo implements store.AttemptRepo and store.DecisionRepo in memory,
// with the same compare-and-swap and duplicate-submission semantics as the
// SQLite-backed repositories.
type mockRepo struct {
	attempts    map[int]*store.Attempt
	decisions   []*store.Decision
	submissions map[string]bool
	nextID      int
	nextSeq     int64

	applyErr error // forced ApplyDecision failure
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		attempts:    make(map[int]*store.Attempt),
		submissions: make(map[string]bool),
	}
}

func (m *mockRepo) Create(_ context.Context, learnerID, scenarioID int) (*store.Attempt, error) {
	m.nextID++
	a := &store.Attempt{
		ID:             m.nextID,
		LearnerID:      learnerID,
		ScenarioID:     scenarioID,
		CurrentNodeKey: scenario.StartKey,
		ClientStatus:   MeterBaseline,
		Wellbeing:      MeterBaseline,
		StartedAt:      time.Now(),
	}
	m.attempts[a.ID] = a
	cp := *a
	return &cp, nil
}

func (m *mockRepo) Get(_ context.Context, attemptID, learnerID int) (*store.Attempt, error) {
	a, ok := m.attempts[attemptID]
	if !ok || a.LearnerID != learnerID {
		return nil, store.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *mockRepo) ListCompleted(_ context.Context, learnerID int) ([]*store.Attempt, error) {
	var out []*store.Attempt
	for _, a := range m.attempts {
		if a.LearnerID == learnerID && a.Completed() {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *mockRepo) ApplyDecision(_ context.Context, in store.ApplyDecisionInput) (*store.Decision, error) {
	if m.applyErr != nil {
		return nil, m.applyErr
	}
	if m.submissions[in.SubmissionID] {
		return nil, store.ErrDuplicateSubmission
	}
	a, ok := m.attempts[in.AttemptID]
	if !ok || a.LearnerID != in.LearnerID || a.CurrentNodeKey != in.FromNodeKey || a.Completed() {
		return nil, store.ErrConflict
	}

	a.CurrentNodeKey = in.ToNodeKey
	a.ClientStatus = in.ClientStatus
	a.Wellbeing = in.Wellbeing
	if in.Ending {
		now := time.Now()
		a.CompletedAt = &now
	}

	m.nextSeq++
	m.submissions[in.SubmissionID] = true
	d := &store.Decision{
		ID:           int(m.nextSeq),
		Sequence:     m.nextSeq,
		SubmissionID: in.SubmissionID,
		AttemptID:    in.AttemptID,
		LearnerID:    in.LearnerID,
		ScenarioID:   in.ScenarioID,
		ChoiceID:     in.ChoiceID,
		Timestamp:    time.Now(),
	}
	m.decisions = append(m.decisions, d)
	cp := *d
	return &cp, nil
}

func (m *mockRepo) ListByAttempt(_ context.Context, attemptID int) ([]*store.Decision, error) {
	var out []*store.Decision
	for _, d := range m.decisions {
		if d.AttemptID == attemptID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *mockRepo) ListByLearner(_ context.Context, learnerID int) ([]*store.Decision, error) {
	var out []*store.Decision
	for _, d := range m.decisions {
		if d.LearnerID == learnerID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *mockRepo) CountByLearner(_ context.Context, learnerID int, pred func(*store.Decision) bool) (int, error) {
	n := 0
	for _, d := range m.decisions {
		if d.LearnerID == learnerID && (pred == nil || pred(d)) {
			n++
		}
	}
	return n, nil
}

func newTestService() (*Service, *mockRepo) {
	repo := newMockRepo()
	return NewService(repo, repo), repo
}

// registerClampScenario adds a scenario whose endings slam both meters
// against the bounds, for clamping tests. Safe to call more than once.
var clampRegistered bool

func registerClampScenario(t *testing.T) {
	t.Helper()
	if clampRegistered {
		return
	}
	err := scenario.Register(scenario.Scenario{
		ID:         9,
		Title:      "Bounds Check",
		Category:   "fixture",
		Difficulty: scenario.DifficultyIntro,
		Nodes: []scenario.Node{
			{
				Key:      scenario.StartKey,
				Content:  "A situation with only extreme outcomes.",
				Question: "Which way?",
				Choices: []scenario.Choice{
					{ID: 901, Label: "Down", NextNodeKey: "floor", Feedback: "down"},
					{ID: 902, Label: "Up", NextNodeKey: "ceiling", IsBestPractice: true, Feedback: "up"},
				},
			},
			{
				Key:                "floor",
				Content:            "Everything went wrong at once.",
				IsEnding:           true,
				ClientStatusImpact: -200,
				WellbeingImpact:    -200,
			},
			{
				Key:                "ceiling",
				Content:            "Everything went right at once.",
				IsEnding:           true,
				ClientStatusImpact: 200,
				WellbeingImpact:    200,
			},
		},
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	clampRegistered = true
}

// registerDeclineScenario adds a three-step downhill scenario: two losses
// that stay inside the bounds, then an ending whose delta overshoots the
// floor. Safe to call more than once.
var declineRegistered bool

func registerDeclineScenario(t *testing.T) {
	t.Helper()
	if declineRegistered {
		return
	}
	err := scenario.Register(scenario.Scenario{
		ID:         11,
		Title:      "Downhill",
		Category:   "fixture",
		Difficulty: scenario.DifficultyIntro,
		Nodes: []scenario.Node{
			{
				Key:      scenario.StartKey,
				Content:  "It starts badly.",
				Question: "Continue?",
				Choices: []scenario.Choice{
					{ID: 921, Label: "Press on", NextNodeKey: "worse", Feedback: "worse"},
				},
			},
			{
				Key:                "worse",
				Content:            "It gets worse.",
				ClientStatusImpact: -15,
				WellbeingImpact:    -10,
				Choices: []scenario.Choice{
					{ID: 922, Label: "Keep going", NextNodeKey: "much_worse", Feedback: "much worse"},
				},
			},
			{
				Key:                "much_worse",
				Content:            "Much worse now.",
				ClientStatusImpact: -20,
				WellbeingImpact:    -20,
				Choices: []scenario.Choice{
					{ID: 923, Label: "See it through", NextNodeKey: "rock_bottom", Feedback: "the end"},
				},
			},
			{
				Key:                "rock_bottom",
				Content:            "It could not have gone worse.",
				IsEnding:           true,
				ClientStatusImpact: -40,
				WellbeingImpact:    -40,
			},
		},
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	declineRegistered = true
}

func TestStartAttempt(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, err := svc.StartAttempt(ctx, 1, 1)
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}
	if a.CurrentNodeKey != scenario.StartKey {
		t.Errorf("CurrentNodeKey = %q, want %q", a.CurrentNodeKey, scenario.StartKey)
	}
	if a.ClientStatus != MeterBaseline || a.Wellbeing != MeterBaseline {
		t.Errorf("meters = (%d, %d), want (%d, %d)", a.ClientStatus, a.Wellbeing, MeterBaseline, MeterBaseline)
	}
	if a.Completed() {
		t.Error("fresh attempt reports completed")
	}
}

func TestStartAttemptUnknownScenario(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.StartAttempt(context.Background(), 1, 999)
	if !errors.Is(err, ErrScenarioNotFound) {
		t.Errorf("err = %v, want ErrScenarioNotFound", err)
	}
}

func TestStartAttemptAlwaysFresh(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a1, err := svc.StartAttempt(ctx, 1, 1)
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}
	a2, err := svc.StartAttempt(ctx, 1, 1)
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}
	if a1.ID == a2.ID {
		t.Errorf("restarting reused attempt %d, want a fresh row", a1.ID)
	}
}

// TestDecideBestPracticePath walks the validation path of the dementia-care
// scenario and checks the meter arithmetic at each step.
func TestDecideBestPracticePath(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, err := svc.StartAttempt(ctx, 1, 1)
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}

	res, err := svc.Decide(ctx, a.ID, 1, 101, "sub-1")
	if err != nil {
		t.Fatalf("Decide(101): %v", err)
	}
	if res.NextNodeKey != "validation_response" {
		t.Errorf("NextNodeKey = %q, want %q", res.NextNodeKey, "validation_response")
	}
	if res.ClientStatus != 55 || res.Wellbeing != 55 {
		t.Errorf("meters = (%d, %d), want (55, 55)", res.ClientStatus, res.Wellbeing)
	}
	if res.Classification != scenario.BestPractice {
		t.Errorf("Classification = %q, want %q", res.Classification, scenario.BestPractice)
	}
	if res.Completed {
		t.Error("mid-scenario decision reports completed")
	}

	res, err = svc.Decide(ctx, a.ID, 1, 104, "sub-2")
	if err != nil {
		t.Fatalf("Decide(104): %v", err)
	}
	if res.ClientStatus != 70 || res.Wellbeing != 65 {
		t.Errorf("meters = (%d, %d), want (70, 65)", res.ClientStatus, res.Wellbeing)
	}
	if !res.Completed {
		t.Error("ending decision did not report completed")
	}

	got, err := svc.GetAttempt(ctx, a.ID, 1)
	if err != nil {
		t.Fatalf("GetAttempt: %v", err)
	}
	if !got.Completed() {
		t.Error("attempt not marked completed after reaching an ending")
	}
}

func TestDecideClampsToFloor(t *testing.T) {
	registerClampScenario(t)
	svc, _ := newTestService()
	ctx := context.Background()

	a, err := svc.StartAttempt(ctx, 1, 9)
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}

	res, err := svc.Decide(ctx, a.ID, 1, 901, "clamp-floor")
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if res.ClientStatus != MeterMin || res.Wellbeing != MeterMin {
		t.Errorf("meters = (%d, %d), want (%d, %d)", res.ClientStatus, res.Wellbeing, MeterMin, MeterMin)
	}
}

func TestDecideClampsToCeiling(t *testing.T) {
	registerClampScenario(t)
	svc, _ := newTestService()
	ctx := context.Background()

	a, err := svc.StartAttempt(ctx, 1, 9)
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}

	res, err := svc.Decide(ctx, a.ID, 1, 902, "clamp-ceiling")
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if res.ClientStatus != MeterMax || res.Wellbeing != MeterMax {
		t.Errorf("meters = (%d, %d), want (%d, %d)", res.ClientStatus, res.Wellbeing, MeterMax, MeterMax)
	}
}

// TestDecideDeclineSequence walks a losing run end to end: the intermediate
// losses must land exactly, with clamping only at the step that actually
// crosses the floor.
func TestDecideDeclineSequence(t *testing.T) {
	registerDeclineScenario(t)
	svc, _ := newTestService()
	ctx := context.Background()

	a, err := svc.StartAttempt(ctx, 1, 11)
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}
	if a.ClientStatus != 50 || a.Wellbeing != 50 {
		t.Fatalf("baseline = (%d, %d), want (50, 50)", a.ClientStatus, a.Wellbeing)
	}

	steps := []struct {
		choiceID             int
		wantStatus, wantWell int
		wantCompleted        bool
	}{
		{921, 35, 40, false},
		{922, 15, 20, false},
		{923, 0, 0, true},
	}
	for i, st := range steps {
		res, err := svc.Decide(ctx, a.ID, 1, st.choiceID, fmt.Sprintf("decline-%d", i))
		if err != nil {
			t.Fatalf("Decide(%d): %v", st.choiceID, err)
		}
		if res.ClientStatus != st.wantStatus || res.Wellbeing != st.wantWell {
			t.Errorf("step %d meters = (%d, %d), want (%d, %d)",
				i+1, res.ClientStatus, res.Wellbeing, st.wantStatus, st.wantWell)
		}
		if res.Completed != st.wantCompleted {
			t.Errorf("step %d completed = %v, want %v", i+1, res.Completed, st.wantCompleted)
		}
	}
}

func TestDecideInvalidChoice(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, err := svc.StartAttempt(ctx, 1, 1)
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}

	if _, err := svc.Decide(ctx, a.ID, 1, 99999, ""); !errors.Is(err, ErrInvalidChoice) {
		t.Errorf("unknown choice: err = %v, want ErrInvalidChoice", err)
	}

	// A real choice, but from a different scenario.
	if _, err := svc.Decide(ctx, a.ID, 1, 201, ""); !errors.Is(err, ErrInvalidChoice) {
		t.Errorf("cross-scenario choice: err = %v, want ErrInvalidChoice", err)
	}

	// Rejected decisions leave no trace: no log rows, attempt untouched.
	rows, err := svc.DecisionHistory(ctx, a.ID, 1)
	if err != nil {
		t.Fatalf("DecisionHistory: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("decision log has %d rows after rejections, want 0", len(rows))
	}
	got, err := svc.GetAttempt(ctx, a.ID, 1)
	if err != nil {
		t.Fatalf("GetAttempt: %v", err)
	}
	if got.CurrentNodeKey != scenario.StartKey || got.ClientStatus != MeterBaseline || got.Wellbeing != MeterBaseline {
		t.Errorf("attempt changed after rejected decisions: node %q meters (%d, %d)",
			got.CurrentNodeKey, got.ClientStatus, got.Wellbeing)
	}
}

func TestDecideOwnership(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, err := svc.StartAttempt(ctx, 1, 1)
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}

	if _, err := svc.Decide(ctx, a.ID, 2, 101, ""); !errors.Is(err, ErrAttemptNotFound) {
		t.Errorf("err = %v, want ErrAttemptNotFound", err)
	}
	if _, err := svc.GetAttempt(ctx, a.ID, 2); !errors.Is(err, ErrAttemptNotFound) {
		t.Errorf("GetAttempt: err = %v, want ErrAttemptNotFound", err)
	}
	if _, err := svc.DecisionHistory(ctx, a.ID, 2); !errors.Is(err, ErrAttemptNotFound) {
		t.Errorf("DecisionHistory: err = %v, want ErrAttemptNotFound", err)
	}
}

func TestDecideCompletedAttempt(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, err := svc.StartAttempt(ctx, 1, 1)
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}
	if _, err := svc.Decide(ctx, a.ID, 1, 101, "s1"); err != nil {
		t.Fatalf("Decide(101): %v", err)
	}
	if _, err := svc.Decide(ctx, a.ID, 1, 104, "s2"); err != nil {
		t.Fatalf("Decide(104): %v", err)
	}

	if _, err := svc.Decide(ctx, a.ID, 1, 104, "s3"); !errors.Is(err, ErrAttemptCompleted) {
		t.Errorf("err = %v, want ErrAttemptCompleted", err)
	}
}

func TestDecideDuplicateSubmission(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	a, err := svc.StartAttempt(ctx, 1, 1)
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}
	if _, err := svc.Decide(ctx, a.ID, 1, 101, "same-token"); err != nil {
		t.Fatalf("first Decide: %v", err)
	}

	_, err = svc.Decide(ctx, a.ID, 1, 104, "same-token")
	if !errors.Is(err, ErrDuplicateSubmission) {
		t.Fatalf("err = %v, want ErrDuplicateSubmission", err)
	}

	// The rejected retry must leave no trace.
	if len(repo.decisions) != 1 {
		t.Errorf("decision log has %d rows, want 1", len(repo.decisions))
	}
	got, err := svc.GetAttempt(ctx, a.ID, 1)
	if err != nil {
		t.Fatalf("GetAttempt: %v", err)
	}
	if got.CurrentNodeKey != "validation_response" {
		t.Errorf("CurrentNodeKey = %q, want %q", got.CurrentNodeKey, "validation_response")
	}
}

func TestDecidePersistenceFailure(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	a, err := svc.StartAttempt(ctx, 1, 1)
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}

	repo.applyErr = store.ErrConflict
	if _, err := svc.Decide(ctx, a.ID, 1, 101, ""); !errors.Is(err, ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}

	repo.applyErr = errors.New("disk full")
	_, err = svc.Decide(ctx, a.ID, 1, 101, "")
	var pe *PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *PersistenceError", err)
	}
	if pe.Unwrap() == nil {
		t.Error("PersistenceError does not unwrap the cause")
	}
}

func TestDecisionHistoryOrder(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, err := svc.StartAttempt(ctx, 1, 1)
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}
	if _, err := svc.Decide(ctx, a.ID, 1, 101, "h1"); err != nil {
		t.Fatalf("Decide(101): %v", err)
	}
	if _, err := svc.Decide(ctx, a.ID, 1, 104, "h2"); err != nil {
		t.Fatalf("Decide(104): %v", err)
	}

	rows, err := svc.DecisionHistory(ctx, a.ID, 1)
	if err != nil {
		t.Fatalf("DecisionHistory: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("history has %d rows, want 2", len(rows))
	}
	if rows[0].ChoiceID != 101 || rows[1].ChoiceID != 104 {
		t.Errorf("history order = [%d, %d], want [101, 104]", rows[0].ChoiceID, rows[1].ChoiceID)
	}
	if rows[0].Sequence >= rows[1].Sequence {
		t.Errorf("sequences not increasing: %d then %d", rows[0].Sequence, rows[1].Sequence)
	}
}

func TestApplyImpact(t *testing.T) {
	cases := []struct {
		current, impact, want int
	}{
		{50, 5, 55},
		{50, -5, 45},
		{50, 0, 50},
		{5, -20, 0},
		{95, 20, 100},
		{0, -1, 0},
		{100, 1, 100},
		{0, 100, 100},
	}
	for _, c := range cases {
		if got := applyImpact(c.current, c.impact); got != c.want {
			t.Errorf("applyImpact(%d, %d) = %d, want %d", c.current, c.impact, got, c.want)
		}
	}
}
