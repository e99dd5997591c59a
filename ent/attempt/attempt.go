// Code generated by ent, DO NOT EDIT.

package attempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the attempt type in the database.
	Label = "attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldScenarioID holds the string denoting the scenario_id field in the database.
	FieldScenarioID = "scenario_id"
	// FieldCurrentNodeKey holds the string denoting the current_node_key field in the database.
	FieldCurrentNodeKey = "current_node_key"
	// FieldClientStatus holds the string denoting the client_status field in the database.
	FieldClientStatus = "client_status"
	// FieldWellbeing holds the string denoting the wellbeing field in the database.
	FieldWellbeing = "wellbeing"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the attempt in the database.
	Table = "attempts"
)

// Columns holds all SQL columns for attempt fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldScenarioID,
	FieldCurrentNodeKey,
	FieldClientStatus,
	FieldWellbeing,
	FieldStartedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CurrentNodeKeyValidator is a validator for the "current_node_key" field. It is called by the builders before save.
	CurrentNodeKeyValidator func(string) error
	// DefaultClientStatus holds the default value on creation for the "client_status" field.
	DefaultClientStatus int
	// ClientStatusValidator is a validator for the "client_status" field. It is called by the builders before save.
	ClientStatusValidator func(int) error
	// DefaultWellbeing holds the default value on creation for the "wellbeing" field.
	DefaultWellbeing int
	// WellbeingValidator is a validator for the "wellbeing" field. It is called by the builders before save.
	WellbeingValidator func(int) error
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// OrderOption defines the ordering options for the Attempt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByScenarioID orders the results by the scenario_id field.
func ByScenarioID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScenarioID, opts...).ToFunc()
}

// ByCurrentNodeKey orders the results by the current_node_key field.
func ByCurrentNodeKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentNodeKey, opts...).ToFunc()
}

// ByClientStatus orders the results by the client_status field.
func ByClientStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientStatus, opts...).ToFunc()
}

// ByWellbeing orders the results by the wellbeing field.
func ByWellbeing(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWellbeing, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
