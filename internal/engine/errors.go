package engine

import (
	"errors"
	"fmt"
)

// The engine's error taxonomy. All are terminal for the request that raised
// them; only PersistenceError is safe for the caller to retry, since the
// decision transaction guarantees no partial mutation survives a failure.
var (
	// ErrScenarioNotFound indicates an unknown scenario ID.
	ErrScenarioNotFound = errors.New("scenario not found")

	// ErrAttemptNotFound covers both "does not exist" and "exists but is
	// owned by another learner", deliberately merged so callers cannot
	// probe for other learners' attempts.
	ErrAttemptNotFound = errors.New("attempt not found")

	// ErrInvalidChoice indicates an unknown choice ID, a choice from a
	// different scenario, or a choice whose target node does not exist in
	// the attempt's scenario.
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrAttemptCompleted indicates a decision against an attempt that
	// has already reached an ending node.
	ErrAttemptCompleted = errors.New("attempt already completed")

	// ErrConflict indicates a concurrent decision advanced the attempt
	// between this request's read and its write. Nothing was applied.
	ErrConflict = errors.New("attempt advanced concurrently")

	// ErrDuplicateSubmission indicates this submission ID was already
	// applied; the retry was rejected instead of double-counted.
	ErrDuplicateSubmission = errors.New("duplicate submission")
)

// PersistenceError wraps a storage failure. The transaction either fully
// committed or fully rolled back, so retrying is safe.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
