package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Decision is the append-only record of a single choice taken within an
// attempt. Rows are immutable: no update or delete path exists anywhere in
// the codebase, since the log is the evidentiary record for training
// compliance reporting.
type Decision struct {
	ent.Schema
}

func (Decision) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Monotonically increasing global sequence number"),
		field.String("submission_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Caller-generated UUID; the unique index rejects double submission"),
		field.Int("attempt_id").
			Immutable(),
		field.Int("learner_id").
			Immutable().
			Comment("Denormalized from the attempt for per-learner report queries"),
		field.Int("scenario_id").
			Immutable(),
		field.Int("choice_id").
			Immutable().
			Comment("Choice in the scenario graph; classification is resolved there"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

func (Decision) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("learner_id"),
		index.Fields("sequence"),
	}
}
