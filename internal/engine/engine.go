// Package engine implements the branching-scenario decision engine: the
// state-transition function that walks a learner's attempt over the shared
// scenario graph, updates the two simulation meters, and appends to the
// decision log.
package engine

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hollisv/caresim/internal/scenario"
	"github.com/hollisv/caresim/internal/store"
)

// Service exposes the engine's operations. The scenario graph is read via
// the scenario package's loaded singleton; all mutable state lives behind
// the repositories.
type Service struct {
	attempts  store.AttemptRepo
	decisions store.DecisionRepo
}

// NewService creates a decision engine over the given repositories.
func NewService(attempts store.AttemptRepo, decisions store.DecisionRepo) *Service {
	return &Service{attempts: attempts, decisions: decisions}
}

// DecisionResult is what a single decision produces: where the attempt
// moved, the updated meters, and the feedback for the choice taken.
type DecisionResult struct {
	AttemptID      int
	ChoiceID       int
	NextNodeKey    string
	ClientStatus   int
	Wellbeing      int
	Completed      bool
	Feedback       string
	Classification scenario.Classification
}

// StartAttempt creates a fresh attempt at the scenario's entry node with
// both meters at the baseline. Starting the same scenario again always
// creates a new attempt; earlier ones are untouched.
func (s *Service) StartAttempt(ctx context.Context, learnerID, scenarioID int) (*store.Attempt, error) {
	if _, err := scenario.Get(scenarioID); err != nil {
		return nil, ErrScenarioNotFound
	}
	a, err := s.attempts.Create(ctx, learnerID, scenarioID)
	if err != nil {
		return nil, &PersistenceError{Op: "start attempt", Err: err}
	}
	return a, nil
}

// GetAttempt returns an attempt scoped to its owning learner. A valid
// attempt ID under the wrong learner is indistinguishable from an unknown
// one.
func (s *Service) GetAttempt(ctx context.Context, attemptID, learnerID int) (*store.Attempt, error) {
	a, err := s.attempts.Get(ctx, attemptID, learnerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAttemptNotFound
		}
		return nil, &PersistenceError{Op: "get attempt", Err: err}
	}
	return a, nil
}

// ListCompletedAttempts returns the learner's completed attempts, most
// recent first.
func (s *Service) ListCompletedAttempts(ctx context.Context, learnerID int) ([]*store.Attempt, error) {
	rows, err := s.attempts.ListCompleted(ctx, learnerID)
	if err != nil {
		return nil, &PersistenceError{Op: "list completed attempts", Err: err}
	}
	return rows, nil
}

// DecisionHistory returns an attempt's decisions in submission order,
// scoped to the owning learner.
func (s *Service) DecisionHistory(ctx context.Context, attemptID, learnerID int) ([]*store.Decision, error) {
	if _, err := s.GetAttempt(ctx, attemptID, learnerID); err != nil {
		return nil, err
	}
	rows, err := s.decisions.ListByAttempt(ctx, attemptID)
	if err != nil {
		return nil, &PersistenceError{Op: "list decisions", Err: err}
	}
	return rows, nil
}

// Decide applies one choice to an attempt: it validates the choice against
// the attempt's scenario, resolves the target node, applies the node's
// arrival impact to both meters with saturating clamping, appends the
// decision, and advances (or completes) the attempt. The log append and
// the attempt update commit in a single transaction.
//
// submissionID is the caller's idempotency token for this submission; a
// retry carrying the same token is rejected rather than applied twice. An
// empty token gets a generated one, trading away retry protection.
func (s *Service) Decide(ctx context.Context, attemptID, learnerID, choiceID int, submissionID string) (*DecisionResult, error) {
	attempt, err := s.GetAttempt(ctx, attemptID, learnerID)
	if err != nil {
		return nil, err
	}
	if attempt.Completed() {
		return nil, ErrAttemptCompleted
	}

	choice, err := scenario.GetChoice(choiceID)
	if err != nil || choice.ScenarioID != attempt.ScenarioID {
		return nil, ErrInvalidChoice
	}

	// The join against the attempt's scenario is the validity check: a
	// choice whose target key has no node here is authored-data damage,
	// surfaced now rather than at load time.
	target, err := scenario.GetNode(attempt.ScenarioID, choice.NextNodeKey)
	if err != nil {
		return nil, ErrInvalidChoice
	}

	newClientStatus := applyImpact(attempt.ClientStatus, target.ClientStatusImpact)
	newWellbeing := applyImpact(attempt.Wellbeing, target.WellbeingImpact)

	if submissionID == "" {
		submissionID = uuid.NewString()
	}

	_, err = s.attempts.ApplyDecision(ctx, store.ApplyDecisionInput{
		AttemptID:    attempt.ID,
		LearnerID:    learnerID,
		ScenarioID:   attempt.ScenarioID,
		ChoiceID:     choice.ID,
		SubmissionID: submissionID,
		FromNodeKey:  attempt.CurrentNodeKey,
		ToNodeKey:    choice.NextNodeKey,
		ClientStatus: newClientStatus,
		Wellbeing:    newWellbeing,
		Ending:       target.IsEnding,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrConflict):
			return nil, ErrConflict
		case errors.Is(err, store.ErrDuplicateSubmission):
			return nil, ErrDuplicateSubmission
		default:
			return nil, &PersistenceError{Op: "apply decision", Err: err}
		}
	}

	return &DecisionResult{
		AttemptID:      attempt.ID,
		ChoiceID:       choice.ID,
		NextNodeKey:    choice.NextNodeKey,
		ClientStatus:   newClientStatus,
		Wellbeing:      newWellbeing,
		Completed:      target.IsEnding,
		Feedback:       choice.Feedback,
		Classification: choice.Classification(),
	}, nil
}
