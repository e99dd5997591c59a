package store

import (
	"context"
	"errors"
	"testing"

	"github.com/hollisv/caresim/internal/scenario"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestLearnerEnsure(t *testing.T) {
	s := openTestStore(t)
	repo := s.LearnerRepo()
	ctx := context.Background()

	l, err := repo.Ensure(ctx, "asha", "northside", RoleLearner)
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if l.ID == 0 {
		t.Error("ensured learner has zero ID")
	}
	if l.Role != RoleLearner {
		t.Errorf("role = %q, want %q", l.Role, RoleLearner)
	}

	// Ensuring the same name returns the existing row untouched.
	again, err := repo.Ensure(ctx, "asha", "elsewhere", RoleManager)
	if err != nil {
		t.Fatalf("ensure again: %v", err)
	}
	if again.ID != l.ID {
		t.Errorf("second ensure created a new row: %d != %d", again.ID, l.ID)
	}
	if again.Organization != "northside" {
		t.Errorf("organization = %q, want the original %q", again.Organization, "northside")
	}

	byName, err := repo.GetByName(ctx, "asha")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	if byName.ID != l.ID {
		t.Errorf("GetByName ID = %d, want %d", byName.ID, l.ID)
	}

	if _, err := repo.GetByName(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown name err = %v, want ErrNotFound", err)
	}
}

func TestAttemptCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	l, err := s.LearnerRepo().Ensure(ctx, "asha", "northside", RoleLearner)
	if err != nil {
		t.Fatalf("ensure learner: %v", err)
	}

	a, err := s.AttemptRepo().Create(ctx, l.ID, 1)
	if err != nil {
		t.Fatalf("create attempt: %v", err)
	}
	if a.CurrentNodeKey != scenario.StartKey {
		t.Errorf("current node = %q, want %q", a.CurrentNodeKey, scenario.StartKey)
	}
	if a.ClientStatus != 50 || a.Wellbeing != 50 {
		t.Errorf("meters = (%d, %d), want (50, 50)", a.ClientStatus, a.Wellbeing)
	}
	if a.Completed() {
		t.Error("fresh attempt reports completed")
	}

	got, err := s.AttemptRepo().Get(ctx, a.ID, l.ID)
	if err != nil {
		t.Fatalf("get attempt: %v", err)
	}
	if got.ID != a.ID {
		t.Errorf("got ID %d, want %d", got.ID, a.ID)
	}

	// The wrong learner sees nothing, not an ownership error.
	if _, err := s.AttemptRepo().Get(ctx, a.ID, l.ID+1); !errors.Is(err, ErrNotFound) {
		t.Errorf("foreign learner err = %v, want ErrNotFound", err)
	}
}

func TestApplyDecision(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	l, _ := s.LearnerRepo().Ensure(ctx, "asha", "northside", RoleLearner)
	a, err := s.AttemptRepo().Create(ctx, l.ID, 1)
	if err != nil {
		t.Fatalf("create attempt: %v", err)
	}

	d, err := s.AttemptRepo().ApplyDecision(ctx, ApplyDecisionInput{
		AttemptID:    a.ID,
		LearnerID:    l.ID,
		ScenarioID:   1,
		ChoiceID:     101,
		SubmissionID: "sub-1",
		FromNodeKey:  scenario.StartKey,
		ToNodeKey:    "validation_response",
		ClientStatus: 55,
		Wellbeing:    55,
	})
	if err != nil {
		t.Fatalf("apply decision: %v", err)
	}
	if d.Sequence == 0 {
		t.Error("decision has zero sequence")
	}

	got, err := s.AttemptRepo().Get(ctx, a.ID, l.ID)
	if err != nil {
		t.Fatalf("get attempt: %v", err)
	}
	if got.CurrentNodeKey != "validation_response" {
		t.Errorf("current node = %q, want %q", got.CurrentNodeKey, "validation_response")
	}
	if got.ClientStatus != 55 || got.Wellbeing != 55 {
		t.Errorf("meters = (%d, %d), want (55, 55)", got.ClientStatus, got.Wellbeing)
	}
}

func TestApplyDecisionConflict(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	l, _ := s.LearnerRepo().Ensure(ctx, "asha", "northside", RoleLearner)
	a, _ := s.AttemptRepo().Create(ctx, l.ID, 1)

	// Stale FromNodeKey: the caller's read no longer matches the row.
	_, err := s.AttemptRepo().ApplyDecision(ctx, ApplyDecisionInput{
		AttemptID:    a.ID,
		LearnerID:    l.ID,
		ScenarioID:   1,
		ChoiceID:     104,
		SubmissionID: "sub-stale",
		FromNodeKey:  "validation_response",
		ToNodeKey:    "calm_ending",
		ClientStatus: 70,
		Wellbeing:    65,
		Ending:       true,
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}

	// The rejected write must leave no decision row behind.
	rows, err := s.DecisionRepo().ListByAttempt(ctx, a.ID)
	if err != nil {
		t.Fatalf("list decisions: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("decision log has %d rows after rollback, want 0", len(rows))
	}
}

func TestApplyDecisionDuplicateSubmission(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	l, _ := s.LearnerRepo().Ensure(ctx, "asha", "northside", RoleLearner)
	a, _ := s.AttemptRepo().Create(ctx, l.ID, 1)

	in := ApplyDecisionInput{
		AttemptID:    a.ID,
		LearnerID:    l.ID,
		ScenarioID:   1,
		ChoiceID:     101,
		SubmissionID: "same-token",
		FromNodeKey:  scenario.StartKey,
		ToNodeKey:    "validation_response",
		ClientStatus: 55,
		Wellbeing:    55,
	}
	if _, err := s.AttemptRepo().ApplyDecision(ctx, in); err != nil {
		t.Fatalf("first apply: %v", err)
	}

	// A retry with the same token against the new position.
	in.FromNodeKey = "validation_response"
	in.ToNodeKey = "calm_ending"
	_, err := s.AttemptRepo().ApplyDecision(ctx, in)
	if !errors.Is(err, ErrDuplicateSubmission) {
		t.Fatalf("err = %v, want ErrDuplicateSubmission", err)
	}

	// The rollback must also undo the attempt update from this tx.
	got, err := s.AttemptRepo().Get(ctx, a.ID, l.ID)
	if err != nil {
		t.Fatalf("get attempt: %v", err)
	}
	if got.CurrentNodeKey != "validation_response" {
		t.Errorf("current node = %q, want %q", got.CurrentNodeKey, "validation_response")
	}
}

func TestApplyDecisionCompletion(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	l, _ := s.LearnerRepo().Ensure(ctx, "asha", "northside", RoleLearner)
	a, _ := s.AttemptRepo().Create(ctx, l.ID, 1)

	if _, err := s.AttemptRepo().ApplyDecision(ctx, ApplyDecisionInput{
		AttemptID: a.ID, LearnerID: l.ID, ScenarioID: 1, ChoiceID: 101,
		SubmissionID: "c-1", FromNodeKey: scenario.StartKey,
		ToNodeKey: "validation_response", ClientStatus: 55, Wellbeing: 55,
	}); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if _, err := s.AttemptRepo().ApplyDecision(ctx, ApplyDecisionInput{
		AttemptID: a.ID, LearnerID: l.ID, ScenarioID: 1, ChoiceID: 104,
		SubmissionID: "c-2", FromNodeKey: "validation_response",
		ToNodeKey: "calm_ending", ClientStatus: 70, Wellbeing: 65, Ending: true,
	}); err != nil {
		t.Fatalf("ending apply: %v", err)
	}

	got, err := s.AttemptRepo().Get(ctx, a.ID, l.ID)
	if err != nil {
		t.Fatalf("get attempt: %v", err)
	}
	if !got.Completed() {
		t.Fatal("attempt not completed after ending decision")
	}

	// Completed attempts reject further decisions.
	_, err = s.AttemptRepo().ApplyDecision(ctx, ApplyDecisionInput{
		AttemptID: a.ID, LearnerID: l.ID, ScenarioID: 1, ChoiceID: 104,
		SubmissionID: "c-3", FromNodeKey: "calm_ending",
		ToNodeKey: "calm_ending", ClientStatus: 70, Wellbeing: 65,
	})
	if !errors.Is(err, ErrConflict) {
		t.Errorf("decision on completed attempt: err = %v, want ErrConflict", err)
	}

	completed, err := s.AttemptRepo().ListCompleted(ctx, l.ID)
	if err != nil {
		t.Fatalf("list completed: %v", err)
	}
	if len(completed) != 1 || completed[0].ID != a.ID {
		t.Errorf("ListCompleted = %v, want exactly attempt %d", completed, a.ID)
	}
}

func TestDecisionListOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	l, _ := s.LearnerRepo().Ensure(ctx, "asha", "northside", RoleLearner)
	a, _ := s.AttemptRepo().Create(ctx, l.ID, 1)

	steps := []struct{ from, to, sub string; choice int }{
		{scenario.StartKey, "reality_check", "o-1", 103},
		{"reality_check", "validation_response", "o-2", 109},
		{"validation_response", "calm_ending", "o-3", 104},
	}
	for _, st := range steps {
		if _, err := s.AttemptRepo().ApplyDecision(ctx, ApplyDecisionInput{
			AttemptID: a.ID, LearnerID: l.ID, ScenarioID: 1, ChoiceID: st.choice,
			SubmissionID: st.sub, FromNodeKey: st.from, ToNodeKey: st.to,
			ClientStatus: 50, Wellbeing: 50, Ending: st.to == "calm_ending",
		}); err != nil {
			t.Fatalf("apply %s: %v", st.sub, err)
		}
	}

	rows, err := s.DecisionRepo().ListByAttempt(ctx, a.ID)
	if err != nil {
		t.Fatalf("list by attempt: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("log has %d rows, want 3", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i-1].Sequence >= rows[i].Sequence {
			t.Errorf("sequence not increasing: %d then %d", rows[i-1].Sequence, rows[i].Sequence)
		}
	}
	if rows[0].ChoiceID != 103 || rows[2].ChoiceID != 104 {
		t.Errorf("log order = [%d %d %d], want [103 109 104]", rows[0].ChoiceID, rows[1].ChoiceID, rows[2].ChoiceID)
	}

	n, err := s.DecisionRepo().CountByLearner(ctx, l.ID, func(d *Decision) bool {
		return d.ChoiceID == 104
	})
	if err != nil {
		t.Fatalf("count by learner: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	second, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if second != first+1 {
		t.Errorf("sequence = %d then %d, want consecutive", first, second)
	}
}

func TestListByOrganization(t *testing.T) {
	s := openTestStore(t)
	repo := s.LearnerRepo()
	ctx := context.Background()

	for _, spec := range []struct{ name, org, role string }{
		{"asha", "northside", RoleLearner},
		{"bren", "northside", RoleLearner},
		{"mara", "northside", RoleManager},
		{"otis", "southside", RoleLearner},
	} {
		if _, err := repo.Ensure(ctx, spec.name, spec.org, spec.role); err != nil {
			t.Fatalf("ensure %s: %v", spec.name, err)
		}
	}

	members, err := repo.ListByOrganization(ctx, "northside")
	if err != nil {
		t.Fatalf("list by organization: %v", err)
	}
	if len(members) != 3 {
		t.Fatalf("northside has %d members, want 3", len(members))
	}
	// Ordered by name.
	for i := 1; i < len(members); i++ {
		if members[i-1].Name > members[i].Name {
			t.Errorf("members not ordered by name: %q before %q", members[i-1].Name, members[i].Name)
		}
	}
}
