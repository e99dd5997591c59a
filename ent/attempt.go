// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hollisv/caresim/ent/attempt"
)

// Attempt is the model entity for the Attempt schema.
type Attempt struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning learner; all reads are scoped to the owner
	LearnerID int `json:"learner_id,omitempty"`
	// Scenario being traversed
	ScenarioID int `json:"scenario_id,omitempty"`
	// Key of the node the attempt sits on
	CurrentNodeKey string `json:"current_node_key,omitempty"`
	// Client status meter, 0-100
	ClientStatus int `json:"client_status,omitempty"`
	// Caregiver wellbeing meter, 0-100
	Wellbeing int `json:"wellbeing,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// Set when the attempt reaches an ending node
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Attempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case attempt.FieldID, attempt.FieldLearnerID, attempt.FieldScenarioID, attempt.FieldClientStatus, attempt.FieldWellbeing:
			values[i] = new(sql.NullInt64)
		case attempt.FieldCurrentNodeKey:
			values[i] = new(sql.NullString)
		case attempt.FieldStartedAt, attempt.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Attempt fields.
func (_m *Attempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case attempt.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case attempt.FieldLearnerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = int(value.Int64)
			}
		case attempt.FieldScenarioID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field scenario_id", values[i])
			} else if value.Valid {
				_m.ScenarioID = int(value.Int64)
			}
		case attempt.FieldCurrentNodeKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_node_key", values[i])
			} else if value.Valid {
				_m.CurrentNodeKey = value.String
			}
		case attempt.FieldClientStatus:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field client_status", values[i])
			} else if value.Valid {
				_m.ClientStatus = int(value.Int64)
			}
		case attempt.FieldWellbeing:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field wellbeing", values[i])
			} else if value.Valid {
				_m.Wellbeing = int(value.Int64)
			}
		case attempt.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case attempt.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Attempt.
// This includes values selected through modifiers, order, etc.
func (_m *Attempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Attempt.
// Note that you need to call Attempt.Unwrap() before calling this method if this Attempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Attempt) Update() *AttemptUpdateOne {
	return NewAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Attempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Attempt) Unwrap() *Attempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Attempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Attempt) String() string {
	var builder strings.Builder
	builder.WriteString("Attempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LearnerID))
	builder.WriteString(", ")
	builder.WriteString("scenario_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScenarioID))
	builder.WriteString(", ")
	builder.WriteString("current_node_key=")
	builder.WriteString(_m.CurrentNodeKey)
	builder.WriteString(", ")
	builder.WriteString("client_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClientStatus))
	builder.WriteString(", ")
	builder.WriteString("wellbeing=")
	builder.WriteString(fmt.Sprintf("%v", _m.Wellbeing))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Attempts is a parsable slice of Attempt.
type Attempts []*Attempt
