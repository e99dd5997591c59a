package store

import (
	"context"
	"fmt"

	"github.com/hollisv/caresim/ent"
	"github.com/hollisv/caresim/ent/decision"
)

// decisionRepo implements DecisionRepo using the ent client. Append happens
// only inside the decision transaction (see attemptRepo.ApplyDecision);
// this repo is read-only.
type decisionRepo struct {
	client *ent.Client
}

func (r *decisionRepo) ListByAttempt(ctx context.Context, attemptID int) ([]*Decision, error) {
	rows, err := r.client.Decision.Query().
		Where(decision.AttemptID(attemptID)).
		Order(ent.Asc(decision.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query decisions by attempt: %w", err)
	}
	return entDecisions(rows), nil
}

func (r *decisionRepo) ListByLearner(ctx context.Context, learnerID int) ([]*Decision, error) {
	rows, err := r.client.Decision.Query().
		Where(decision.LearnerID(learnerID)).
		Order(ent.Asc(decision.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query decisions by learner: %w", err)
	}
	return entDecisions(rows), nil
}

func (r *decisionRepo) CountByLearner(ctx context.Context, learnerID int, pred func(*Decision) bool) (int, error) {
	rows, err := r.ListByLearner(ctx, learnerID)
	if err != nil {
		return 0, err
	}
	if pred == nil {
		return len(rows), nil
	}
	count := 0
	for _, d := range rows {
		if pred(d) {
			count++
		}
	}
	return count, nil
}

func entDecisions(rows []*ent.Decision) []*Decision {
	result := make([]*Decision, len(rows))
	for i, d := range rows {
		result[i] = entDecision(d)
	}
	return result
}

func entDecision(d *ent.Decision) *Decision {
	return &Decision{
		ID:           d.ID,
		Sequence:     d.Sequence,
		SubmissionID: d.SubmissionID,
		AttemptID:    d.AttemptID,
		LearnerID:    d.LearnerID,
		ScenarioID:   d.ScenarioID,
		ChoiceID:     d.ChoiceID,
		Timestamp:    d.Timestamp,
	}
}
