package store

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors returned by repositories. Callers map these to their own
// taxonomy; the store never distinguishes "missing" from "not yours" so
// ownership checks cannot leak other learners' data.
var (
	// ErrNotFound is returned when a row does not exist or is not owned by
	// the requesting learner.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when the decision transaction's
	// compare-and-swap finds the attempt already moved or completed.
	ErrConflict = errors.New("attempt state changed concurrently")

	// ErrDuplicateSubmission is returned when a decision carries a
	// submission ID that was already recorded.
	ErrDuplicateSubmission = errors.New("submission already recorded")
)

// Learner roles.
const (
	RoleLearner = "learner"
	RoleManager = "manager"
)

// Attempt is one learner's traversal instance of a scenario.
type Attempt struct {
	ID             int
	LearnerID      int
	ScenarioID     int
	CurrentNodeKey string
	ClientStatus   int
	Wellbeing      int
	StartedAt      time.Time
	CompletedAt    *time.Time
}

// Completed reports whether the attempt has reached an ending node.
func (a *Attempt) Completed() bool {
	return a.CompletedAt != nil
}

// Decision is an immutable log entry recording that a choice was taken
// within an attempt.
type Decision struct {
	ID           int
	Sequence     int64
	SubmissionID string
	AttemptID    int
	LearnerID    int
	ScenarioID   int
	ChoiceID     int
	Timestamp    time.Time
}

// Learner is a registered identity the engine acts on behalf of.
type Learner struct {
	ID           int
	Name         string
	Organization string
	Role         string
	CreatedAt    time.Time
}

// ApplyDecisionInput carries everything the decision transaction needs:
// the decision row to append and the attempt transition to apply, plus the
// expected current node key used as the compare-and-swap predicate.
type ApplyDecisionInput struct {
	AttemptID    int
	LearnerID    int
	ScenarioID   int
	ChoiceID     int
	SubmissionID string

	// FromNodeKey is the node key the caller read before computing the
	// transition. The update only applies if the row still matches.
	FromNodeKey  string
	ToNodeKey    string
	ClientStatus int
	Wellbeing    int
	Ending       bool
}

// AttemptRepo manages progress attempt rows. Rows are created at scenario
// start and mutated only through ApplyDecision; they are never deleted.
type AttemptRepo interface {
	// Create starts a new attempt at the scenario's entry node with both
	// meters at the baseline. Always a fresh row, even when an in-progress
	// attempt for the same learner/scenario exists.
	Create(ctx context.Context, learnerID, scenarioID int) (*Attempt, error)

	// Get returns an attempt scoped to its owning learner. An attempt
	// owned by a different learner yields ErrNotFound.
	Get(ctx context.Context, attemptID, learnerID int) (*Attempt, error)

	// ListCompleted returns a learner's completed attempts, most recent
	// first.
	ListCompleted(ctx context.Context, learnerID int) ([]*Attempt, error)

	// ApplyDecision atomically appends the decision and applies the
	// attempt transition in one transaction. Returns ErrConflict if the
	// attempt no longer matches FromNodeKey or is already completed, and
	// ErrDuplicateSubmission if the submission ID was seen before. No
	// partial state survives any failure.
	ApplyDecision(ctx context.Context, in ApplyDecisionInput) (*Decision, error)
}

// DecisionRepo provides read access to the append-only decision log.
// There is deliberately no update or delete: the log is the evidentiary
// record for compliance reporting.
type DecisionRepo interface {
	// ListByAttempt returns an attempt's decisions in submission order.
	ListByAttempt(ctx context.Context, attemptID int) ([]*Decision, error)

	// ListByLearner returns all of a learner's decisions in submission
	// order.
	ListByLearner(ctx context.Context, learnerID int) ([]*Decision, error)

	// CountByLearner counts a learner's decisions matching pred. A nil
	// pred counts everything.
	CountByLearner(ctx context.Context, learnerID int, pred func(*Decision) bool) (int, error)
}

// LearnerRepo manages the local learner registry.
type LearnerRepo interface {
	// Ensure returns the learner with the given name, creating it with
	// the organization and role if it does not exist.
	Ensure(ctx context.Context, name, organization, role string) (*Learner, error)

	// Get returns a learner by ID.
	Get(ctx context.Context, id int) (*Learner, error)

	// GetByName returns a learner by name.
	GetByName(ctx context.Context, name string) (*Learner, error)

	// ListByOrganization returns all learners and managers in an
	// organization.
	ListByOrganization(ctx context.Context, organization string) ([]*Learner, error)
}
