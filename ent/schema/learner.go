package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Learner is the local registry of identities the engine acts on behalf of.
// Identity issuance itself lives outside the engine; this table only carries
// what reporting needs: a display name, an organization, and a role.
type Learner struct {
	ent.Schema
}

func (Learner) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique(),
		field.String("organization").
			NotEmpty().
			Comment("Organization slug used to scope team reports"),
		field.String("role").
			Default("learner").
			Comment("learner or manager"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Learner) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization"),
	}
}
