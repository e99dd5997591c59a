// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hollisv/caresim/ent/attempt"
)

// AttemptCreate is the builder for creating a Attempt entity.
type AttemptCreate struct {
	config
	mutation *AttemptMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *AttemptCreate) SetLearnerID(v int) *AttemptCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetScenarioID sets the "scenario_id" field.
func (_c *AttemptCreate) SetScenarioID(v int) *AttemptCreate {
	_c.mutation.SetScenarioID(v)
	return _c
}

// SetCurrentNodeKey sets the "current_node_key" field.
func (_c *AttemptCreate) SetCurrentNodeKey(v string) *AttemptCreate {
	_c.mutation.SetCurrentNodeKey(v)
	return _c
}

// SetClientStatus sets the "client_status" field.
func (_c *AttemptCreate) SetClientStatus(v int) *AttemptCreate {
	_c.mutation.SetClientStatus(v)
	return _c
}

// SetNillableClientStatus sets the "client_status" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableClientStatus(v *int) *AttemptCreate {
	if v != nil {
		_c.SetClientStatus(*v)
	}
	return _c
}

// SetWellbeing sets the "wellbeing" field.
func (_c *AttemptCreate) SetWellbeing(v int) *AttemptCreate {
	_c.mutation.SetWellbeing(v)
	return _c
}

// SetNillableWellbeing sets the "wellbeing" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableWellbeing(v *int) *AttemptCreate {
	if v != nil {
		_c.SetWellbeing(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AttemptCreate) SetStartedAt(v time.Time) *AttemptCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableStartedAt(v *time.Time) *AttemptCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AttemptCreate) SetCompletedAt(v time.Time) *AttemptCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableCompletedAt(v *time.Time) *AttemptCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the AttemptMutation object of the builder.
func (_c *AttemptCreate) Mutation() *AttemptMutation {
	return _c.mutation
}

// Save creates the Attempt in the database.
func (_c *AttemptCreate) Save(ctx context.Context) (*Attempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptCreate) SaveX(ctx context.Context) *Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptCreate) defaults() {
	if _, ok := _c.mutation.ClientStatus(); !ok {
		v := attempt.DefaultClientStatus
		_c.mutation.SetClientStatus(v)
	}
	if _, ok := _c.mutation.Wellbeing(); !ok {
		v := attempt.DefaultWellbeing
		_c.mutation.SetWellbeing(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := attempt.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "Attempt.learner_id"`)}
	}
	if _, ok := _c.mutation.ScenarioID(); !ok {
		return &ValidationError{Name: "scenario_id", err: errors.New(`ent: missing required field "Attempt.scenario_id"`)}
	}
	if _, ok := _c.mutation.CurrentNodeKey(); !ok {
		return &ValidationError{Name: "current_node_key", err: errors.New(`ent: missing required field "Attempt.current_node_key"`)}
	}
	if v, ok := _c.mutation.CurrentNodeKey(); ok {
		if err := attempt.CurrentNodeKeyValidator(v); err != nil {
			return &ValidationError{Name: "current_node_key", err: fmt.Errorf(`ent: validator failed for field "Attempt.current_node_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ClientStatus(); !ok {
		return &ValidationError{Name: "client_status", err: errors.New(`ent: missing required field "Attempt.client_status"`)}
	}
	if v, ok := _c.mutation.ClientStatus(); ok {
		if err := attempt.ClientStatusValidator(v); err != nil {
			return &ValidationError{Name: "client_status", err: fmt.Errorf(`ent: validator failed for field "Attempt.client_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Wellbeing(); !ok {
		return &ValidationError{Name: "wellbeing", err: errors.New(`ent: missing required field "Attempt.wellbeing"`)}
	}
	if v, ok := _c.mutation.Wellbeing(); ok {
		if err := attempt.WellbeingValidator(v); err != nil {
			return &ValidationError{Name: "wellbeing", err: fmt.Errorf(`ent: validator failed for field "Attempt.wellbeing": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Attempt.started_at"`)}
	}
	return nil
}

func (_c *AttemptCreate) sqlSave(ctx context.Context) (*Attempt, error) {
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

func (_c *AttemptCreate) createSpec() (*Attempt, *sqlgraph.CreateSpec) {
	var (
		_node = &Attempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attempt.Table, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(attempt.FieldLearnerID, field.TypeInt, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.ScenarioID(); ok {
		_spec.SetField(attempt.FieldScenarioID, field.TypeInt, value)
		_node.ScenarioID = value
	}
	if value, ok := _c.mutation.CurrentNodeKey(); ok {
		_spec.SetField(attempt.FieldCurrentNodeKey, field.TypeString, value)
		_node.CurrentNodeKey = value
	}
	if value, ok := _c.mutation.ClientStatus(); ok {
		_spec.SetField(attempt.FieldClientStatus, field.TypeInt, value)
		_node.ClientStatus = value
	}
	if value, ok := _c.mutation.Wellbeing(); ok {
		_spec.SetField(attempt.FieldWellbeing, field.TypeInt, value)
		_node.Wellbeing = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(attempt.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(attempt.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// AttemptCreateBulk is the builder for creating many Attempt entities in bulk.
type AttemptCreateBulk struct {
	config
	err      error
	builders []*AttemptCreate
}

// Save creates the Attempt entities in the database.
func (_c *AttemptCreateBulk) Save(ctx context.Context) ([]*Attempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Attempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptMutation)
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
func (_c *AttemptCreateBulk) SaveX(ctx context.Context) []*Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
