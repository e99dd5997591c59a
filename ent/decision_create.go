// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hollisv/caresim/ent/decision"
)

// DecisionCreate is the builder for creating a Decision entity.
type DecisionCreate struct {
	config
	mutation *DecisionMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *DecisionCreate) SetSequence(v int64) *DecisionCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetSubmissionID sets the "submission_id" field.
func (_c *DecisionCreate) SetSubmissionID(v string) *DecisionCreate {
	_c.mutation.SetSubmissionID(v)
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *DecisionCreate) SetAttemptID(v int) *DecisionCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *DecisionCreate) SetLearnerID(v int) *DecisionCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetScenarioID sets the "scenario_id" field.
func (_c *DecisionCreate) SetScenarioID(v int) *DecisionCreate {
	_c.mutation.SetScenarioID(v)
	return _c
}

// SetChoiceID sets the "choice_id" field.
func (_c *DecisionCreate) SetChoiceID(v int) *DecisionCreate {
	_c.mutation.SetChoiceID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *DecisionCreate) SetTimestamp(v time.Time) *DecisionCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableTimestamp(v *time.Time) *DecisionCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// Mutation returns the DecisionMutation object of the builder.
func (_c *DecisionCreate) Mutation() *DecisionMutation {
	return _c.mutation
}

// Save creates the Decision in the database.
func (_c *DecisionCreate) Save(ctx context.Context) (*Decision, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DecisionCreate) SaveX(ctx context.Context) *Decision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DecisionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DecisionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DecisionCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := decision.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DecisionCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "Decision.sequence"`)}
	}
	if _, ok := _c.mutation.SubmissionID(); !ok {
		return &ValidationError{Name: "submission_id", err: errors.New(`ent: missing required field "Decision.submission_id"`)}
	}
	if v, ok := _c.mutation.SubmissionID(); ok {
		if err := decision.SubmissionIDValidator(v); err != nil {
			return &ValidationError{Name: "submission_id", err: fmt.Errorf(`ent: validator failed for field "Decision.submission_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "Decision.attempt_id"`)}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "Decision.learner_id"`)}
	}
	if _, ok := _c.mutation.ScenarioID(); !ok {
		return &ValidationError{Name: "scenario_id", err: errors.New(`ent: missing required field "Decision.scenario_id"`)}
	}
	if _, ok := _c.mutation.ChoiceID(); !ok {
		return &ValidationError{Name: "choice_id", err: errors.New(`ent: missing required field "Decision.choice_id"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "Decision.timestamp"`)}
	}
	return nil
}

func (_c *DecisionCreate) sqlSave(ctx context.Context) (*Decision, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DecisionCreate) createSpec() (*Decision, *sqlgraph.CreateSpec) {
	var (
		_node = &Decision{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(decision.Table, sqlgraph.NewFieldSpec(decision.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(decision.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.SubmissionID(); ok {
		_spec.SetField(decision.FieldSubmissionID, field.TypeString, value)
		_node.SubmissionID = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(decision.FieldAttemptID, field.TypeInt, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(decision.FieldLearnerID, field.TypeInt, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.ScenarioID(); ok {
		_spec.SetField(decision.FieldScenarioID, field.TypeInt, value)
		_node.ScenarioID = value
	}
	if value, ok := _c.mutation.ChoiceID(); ok {
		_spec.SetField(decision.FieldChoiceID, field.TypeInt, value)
		_node.ChoiceID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(decision.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	return _node, _spec
}

// DecisionCreateBulk is the builder for creating many Decision entities in bulk.
type DecisionCreateBulk struct {
	config
	err      error
	builders []*DecisionCreate
}

// Save creates the Decision entities in the database.
func (_c *DecisionCreateBulk) Save(ctx context.Context) ([]*Decision, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Decision, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DecisionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DecisionCreateBulk) SaveX(ctx context.Context) []*Decision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DecisionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DecisionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
