// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeInt},
		{Name: "scenario_id", Type: field.TypeInt},
		{Name: "current_node_key", Type: field.TypeString},
		{Name: "client_status", Type: field.TypeInt, Default: 50},
		{Name: "wellbeing", Type: field.TypeInt, Default: 50},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_learner_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[1]},
			},
			{
				Name:    "attempt_learner_id_scenario_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[1], AttemptsColumns[2]},
			},
		},
	}
	// DecisionsColumns holds the columns for the "decisions" table.
	DecisionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "submission_id", Type: field.TypeString, Unique: true},
		{Name: "attempt_id", Type: field.TypeInt},
		{Name: "learner_id", Type: field.TypeInt},
		{Name: "scenario_id", Type: field.TypeInt},
		{Name: "choice_id", Type: field.TypeInt},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// DecisionsTable holds the schema information for the "decisions" table.
	DecisionsTable = &schema.Table{
		Name:       "decisions",
		Columns:    DecisionsColumns,
		PrimaryKey: []*schema.Column{DecisionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "decision_attempt_id",
				Unique:  false,
				Columns: []*schema.Column{DecisionsColumns[3]},
			},
			{
				Name:    "decision_learner_id",
				Unique:  false,
				Columns: []*schema.Column{DecisionsColumns[4]},
			},
			{
				Name:    "decision_sequence",
				Unique:  false,
				Columns: []*schema.Column{DecisionsColumns[1]},
			},
		},
	}
	// LearnersColumns holds the columns for the "learners" table.
	LearnersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "organization", Type: field.TypeString},
		{Name: "role", Type: field.TypeString, Default: "learner"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LearnersTable holds the schema information for the "learners" table.
	LearnersTable = &schema.Table{
		Name:       "learners",
		Columns:    LearnersColumns,
		PrimaryKey: []*schema.Column{LearnersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learner_organization",
				Unique:  false,
				Columns: []*schema.Column{LearnersColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptsTable,
		DecisionsTable,
		LearnersTable,
	}
)

func init() {
}
