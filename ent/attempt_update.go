// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hollisv/caresim/ent/attempt"
	"github.com/hollisv/caresim/ent/predicate"
)

// AttemptUpdate is the builder for updating Attempt entities.
type AttemptUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptMutation
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdate) Where(ps ...predicate.Attempt) *AttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCurrentNodeKey sets the "current_node_key" field.
func (_u *AttemptUpdate) SetCurrentNodeKey(v string) *AttemptUpdate {
	_u.mutation.SetCurrentNodeKey(v)
	return _u
}

// SetNillableCurrentNodeKey sets the "current_node_key" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableCurrentNodeKey(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetCurrentNodeKey(*v)
	}
	return _u
}

// SetClientStatus sets the "client_status" field.
func (_u *AttemptUpdate) SetClientStatus(v int) *AttemptUpdate {
	_u.mutation.ResetClientStatus()
	_u.mutation.SetClientStatus(v)
	return _u
}

// SetNillableClientStatus sets the "client_status" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableClientStatus(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetClientStatus(*v)
	}
	return _u
}

// AddClientStatus adds value to the "client_status" field.
func (_u *AttemptUpdate) AddClientStatus(v int) *AttemptUpdate {
	_u.mutation.AddClientStatus(v)
	return _u
}

// SetWellbeing sets the "wellbeing" field.
func (_u *AttemptUpdate) SetWellbeing(v int) *AttemptUpdate {
	_u.mutation.ResetWellbeing()
	_u.mutation.SetWellbeing(v)
	return _u
}

// SetNillableWellbeing sets the "wellbeing" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableWellbeing(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetWellbeing(*v)
	}
	return _u
}

// AddWellbeing adds value to the "wellbeing" field.
func (_u *AttemptUpdate) AddWellbeing(v int) *AttemptUpdate {
	_u.mutation.AddWellbeing(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AttemptUpdate) SetCompletedAt(v time.Time) *AttemptUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableCompletedAt(v *time.Time) *AttemptUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AttemptUpdate) ClearCompletedAt() *AttemptUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdate) Mutation() *AttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptUpdate) check() error {
	if v, ok := _u.mutation.CurrentNodeKey(); ok {
		if err := attempt.CurrentNodeKeyValidator(v); err != nil {
			return &ValidationError{Name: "current_node_key", err: fmt.Errorf(`ent: validator failed for field "Attempt.current_node_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClientStatus(); ok {
		if err := attempt.ClientStatusValidator(v); err != nil {
			return &ValidationError{Name: "client_status", err: fmt.Errorf(`ent: validator failed for field "Attempt.client_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Wellbeing(); ok {
		if err := attempt.WellbeingValidator(v); err != nil {
			return &ValidationError{Name: "wellbeing", err: fmt.Errorf(`ent: validator failed for field "Attempt.wellbeing": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CurrentNodeKey(); ok {
		_spec.SetField(attempt.FieldCurrentNodeKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientStatus(); ok {
		_spec.SetField(attempt.FieldClientStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClientStatus(); ok {
		_spec.AddField(attempt.FieldClientStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Wellbeing(); ok {
		_spec.SetField(attempt.FieldWellbeing, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWellbeing(); ok {
		_spec.AddField(attempt.FieldWellbeing, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(attempt.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(attempt.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptUpdateOne is the builder for updating a single Attempt entity.
type AttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptMutation
}

// SetCurrentNodeKey sets the "current_node_key" field.
func (_u *AttemptUpdateOne) SetCurrentNodeKey(v string) *AttemptUpdateOne {
	_u.mutation.SetCurrentNodeKey(v)
	return _u
}

// SetNillableCurrentNodeKey sets the "current_node_key" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableCurrentNodeKey(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetCurrentNodeKey(*v)
	}
	return _u
}

// SetClientStatus sets the "client_status" field.
func (_u *AttemptUpdateOne) SetClientStatus(v int) *AttemptUpdateOne {
	_u.mutation.ResetClientStatus()
	_u.mutation.SetClientStatus(v)
	return _u
}

// SetNillableClientStatus sets the "client_status" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableClientStatus(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetClientStatus(*v)
	}
	return _u
}

// AddClientStatus adds value to the "client_status" field.
func (_u *AttemptUpdateOne) AddClientStatus(v int) *AttemptUpdateOne {
	_u.mutation.AddClientStatus(v)
	return _u
}

// SetWellbeing sets the "wellbeing" field.
func (_u *AttemptUpdateOne) SetWellbeing(v int) *AttemptUpdateOne {
	_u.mutation.ResetWellbeing()
	_u.mutation.SetWellbeing(v)
	return _u
}

// SetNillableWellbeing sets the "wellbeing" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableWellbeing(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetWellbeing(*v)
	}
	return _u
}

// AddWellbeing adds value to the "wellbeing" field.
func (_u *AttemptUpdateOne) AddWellbeing(v int) *AttemptUpdateOne {
	_u.mutation.AddWellbeing(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AttemptUpdateOne) SetCompletedAt(v time.Time) *AttemptUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableCompletedAt(v *time.Time) *AttemptUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AttemptUpdateOne) ClearCompletedAt() *AttemptUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdateOne) Mutation() *AttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdateOne) Where(ps ...predicate.Attempt) *AttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptUpdateOne) Select(field string, fields ...string) *AttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Attempt entity.
func (_u *AttemptUpdateOne) Save(ctx context.Context) (*Attempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdateOne) SaveX(ctx context.Context) *Attempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptUpdateOne) check() error {
	if v, ok := _u.mutation.CurrentNodeKey(); ok {
		if err := attempt.CurrentNodeKeyValidator(v); err != nil {
			return &ValidationError{Name: "current_node_key", err: fmt.Errorf(`ent: validator failed for field "Attempt.current_node_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClientStatus(); ok {
		if err := attempt.ClientStatusValidator(v); err != nil {
			return &ValidationError{Name: "client_status", err: fmt.Errorf(`ent: validator failed for field "Attempt.client_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Wellbeing(); ok {
		if err := attempt.WellbeingValidator(v); err != nil {
			return &ValidationError{Name: "wellbeing", err: fmt.Errorf(`ent: validator failed for field "Attempt.wellbeing": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptUpdateOne) sqlSave(ctx context.Context) (_node *Attempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Attempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attempt.FieldID)
		for _, f := range fields {
			if !attempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attempt.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CurrentNodeKey(); ok {
		_spec.SetField(attempt.FieldCurrentNodeKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientStatus(); ok {
		_spec.SetField(attempt.FieldClientStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClientStatus(); ok {
		_spec.AddField(attempt.FieldClientStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Wellbeing(); ok {
		_spec.SetField(attempt.FieldWellbeing, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWellbeing(); ok {
		_spec.AddField(attempt.FieldWellbeing, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(attempt.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(attempt.FieldCompletedAt, field.TypeTime)
	}
	_node = &Attempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
