// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hollisv/caresim/ent/decision"
)

// Decision is the model entity for the Decision schema.
type Decision struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// Caller-generated UUID; the unique index rejects double submission
	SubmissionID string `json:"submission_id,omitempty"`
	// AttemptID holds the value of the "attempt_id" field.
	AttemptID int `json:"attempt_id,omitempty"`
	// Denormalized from the attempt for per-learner report queries
	LearnerID int `json:"learner_id,omitempty"`
	// ScenarioID holds the value of the "scenario_id" field.
	ScenarioID int `json:"scenario_id,omitempty"`
	// Choice in the scenario graph; classification is resolved there
	ChoiceID int `json:"choice_id,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp    time.Time `json:"timestamp,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Decision) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case decision.FieldID, decision.FieldSequence, decision.FieldAttemptID, decision.FieldLearnerID, decision.FieldScenarioID, decision.FieldChoiceID:
			values[i] = new(sql.NullInt64)
		case decision.FieldSubmissionID:
			values[i] = new(sql.NullString)
		case decision.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Decision fields.
func (_m *Decision) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case decision.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case decision.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case decision.FieldSubmissionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field submission_id", values[i])
			} else if value.Valid {
				_m.SubmissionID = value.String
			}
		case decision.FieldAttemptID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_id", values[i])
			} else if value.Valid {
				_m.AttemptID = int(value.Int64)
			}
		case decision.FieldLearnerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = int(value.Int64)
			}
		case decision.FieldScenarioID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field scenario_id", values[i])
			} else if value.Valid {
				_m.ScenarioID = int(value.Int64)
			}
		case decision.FieldChoiceID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field choice_id", values[i])
			} else if value.Valid {
				_m.ChoiceID = int(value.Int64)
			}
		case decision.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Decision.
// This includes values selected through modifiers, order, etc.
func (_m *Decision) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Decision.
// Note that you need to call Decision.Unwrap() before calling this method if this Decision
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Decision) Update() *DecisionUpdateOne {
	return NewDecisionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Decision entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Decision) Unwrap() *Decision {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Decision is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Decision) String() string {
	var builder strings.Builder
	builder.WriteString("Decision(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("submission_id=")
	builder.WriteString(_m.SubmissionID)
	builder.WriteString(", ")
	builder.WriteString("attempt_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptID))
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LearnerID))
	builder.WriteString(", ")
	builder.WriteString("scenario_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScenarioID))
	builder.WriteString(", ")
	builder.WriteString("choice_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChoiceID))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Decisions is a parsable slice of Decision.
type Decisions []*Decision
