package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt is one learner's traversal of a scenario graph. Rows are created
// when a learner starts a scenario and mutated only through the decision
// transaction; they are never deleted, forming the durable history that
// reports are built from.
type Attempt struct {
	ent.Schema
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.Int("learner_id").
			Immutable().
			Comment("Owning learner; all reads are scoped to the owner"),
		field.Int("scenario_id").
			Immutable().
			Comment("Scenario being traversed"),
		field.String("current_node_key").
			NotEmpty().
			Comment("Key of the node the attempt sits on"),
		field.Int("client_status").
			Default(50).
			Min(0).
			Max(100).
			Comment("Client status meter, 0-100"),
		field.Int("wellbeing").
			Default(50).
			Min(0).
			Max(100).
			Comment("Caregiver wellbeing meter, 0-100"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Set when the attempt reaches an ending node"),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("learner_id", "scenario_id"),
	}
}
