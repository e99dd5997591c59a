package store

import (
	"context"
	"fmt"
	"time"

	"github.com/hollisv/caresim/ent"
	"github.com/hollisv/caresim/ent/attempt"
	"github.com/hollisv/caresim/internal/scenario"
)

// attemptRepo implements AttemptRepo using the ent client.
type attemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *attemptRepo) Create(ctx context.Context, learnerID, scenarioID int) (*Attempt, error) {
	a, err := r.client.Attempt.Create().
		SetLearnerID(learnerID).
		SetScenarioID(scenarioID).
		SetCurrentNodeKey(scenario.StartKey).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create attempt: %w", err)
	}
	return entAttempt(a), nil
}

func (r *attemptRepo) Get(ctx context.Context, attemptID, learnerID int) (*Attempt, error) {
	a, err := r.client.Attempt.Query().
		Where(
			attempt.ID(attemptID),
			attempt.LearnerID(learnerID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query attempt: %w", err)
	}
	return entAttempt(a), nil
}

func (r *attemptRepo) ListCompleted(ctx context.Context, learnerID int) ([]*Attempt, error) {
	rows, err := r.client.Attempt.Query().
		Where(
			attempt.LearnerID(learnerID),
			attempt.CompletedAtNotNil(),
		).
		Order(ent.Desc(attempt.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completed attempts: %w", err)
	}
	result := make([]*Attempt, len(rows))
	for i, a := range rows {
		result[i] = entAttempt(a)
	}
	return result, nil
}

func (r *attemptRepo) ApplyDecision(ctx context.Context, in ApplyDecisionInput) (*Decision, error) {
	// Draw the sequence number outside the transaction: the counter uses
	// its own connection and an abort just leaves a gap.
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("next sequence: %w", err)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin decision tx: %w", err)
	}

	// Conditional update carries the full consistency check: the row must
	// still sit on the node the caller read, belong to the caller, and not
	// be completed. Zero rows affected means a concurrent decision (or a
	// stale retry) got there first.
	upd := tx.Attempt.Update().
		Where(
			attempt.ID(in.AttemptID),
			attempt.LearnerID(in.LearnerID),
			attempt.CurrentNodeKey(in.FromNodeKey),
			attempt.CompletedAtIsNil(),
		).
		SetCurrentNodeKey(in.ToNodeKey).
		SetClientStatus(in.ClientStatus).
		SetWellbeing(in.Wellbeing)
	if in.Ending {
		upd.SetCompletedAt(time.Now().UTC())
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("update attempt: %w", err))
	}
	if n == 0 {
		return nil, rollback(tx, ErrConflict)
	}

	d, err := tx.Decision.Create().
		SetSequence(seqNum).
		SetSubmissionID(in.SubmissionID).
		SetAttemptID(in.AttemptID).
		SetLearnerID(in.LearnerID).
		SetScenarioID(in.ScenarioID).
		SetChoiceID(in.ChoiceID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, rollback(tx, ErrDuplicateSubmission)
		}
		return nil, rollback(tx, fmt.Errorf("append decision: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit decision tx: %w", err)
	}
	return entDecision(d), nil
}

// rollback rolls the transaction back, attaching any rollback failure to
// the original error.
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: rolling back: %v", err, rerr)
	}
	return err
}

func entAttempt(a *ent.Attempt) *Attempt {
	return &Attempt{
		ID:             a.ID,
		LearnerID:      a.LearnerID,
		ScenarioID:     a.ScenarioID,
		CurrentNodeKey: a.CurrentNodeKey,
		ClientStatus:   a.ClientStatus,
		Wellbeing:      a.Wellbeing,
		StartedAt:      a.StartedAt,
		CompletedAt:    a.CompletedAt,
	}
}
