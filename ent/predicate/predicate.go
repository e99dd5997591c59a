// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Attempt is the predicate function for attempt builders.
type Attempt func(*sql.Selector)

// Decision is the predicate function for decision builders.
type Decision func(*sql.Selector)

// Learner is the predicate function for learner builders.
type Learner func(*sql.Selector)
