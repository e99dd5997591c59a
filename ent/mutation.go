// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hollisv/caresim/ent/attempt"
	"github.com/hollisv/caresim/ent/decision"
	"github.com/hollisv/caresim/ent/learner"
	"github.com/hollisv/caresim/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAttempt  = "Attempt"
	TypeDecision = "Decision"
	TypeLearner  = "Learner"
)

// AttemptMutation represents an operation that mutates the Attempt nodes in the graph.
type AttemptMutation struct {
	config
	op               Op
	typ              string
	id               *int
	learner_id       *int
	addlearner_id    *int
	scenario_id      *int
	addscenario_id   *int
	current_node_key *string
	client_status    *int
	addclient_status *int
	wellbeing        *int
	addwellbeing     *int
	started_at       *time.Time
	completed_at     *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Attempt, error)
	predicates       []predicate.Attempt
}

var _ ent.Mutation = (*AttemptMutation)(nil)

// attemptOption allows management of the mutation configuration using functional options.
type attemptOption func(*AttemptMutation)

// newAttemptMutation creates new mutation for the Attempt entity.
func newAttemptMutation(c config, op Op, opts ...attemptOption) *AttemptMutation {
	m := &AttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttemptID sets the ID field of the mutation.
func withAttemptID(id int) attemptOption {
	return func(m *AttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *Attempt
		)
		m.oldValue = func(ctx context.Context) (*Attempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Attempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttempt sets the old Attempt of the mutation.
func withAttempt(node *Attempt) attemptOption {
	return func(m *AttemptMutation) {
		m.oldValue = func(context.Context) (*Attempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttemptMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttemptMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Attempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *AttemptMutation) SetLearnerID(i int) {
	m.learner_id = &i
	m.addlearner_id = nil
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *AttemptMutation) LearnerID() (r int, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldLearnerID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// AddLearnerID adds i to the "learner_id" field.
func (m *AttemptMutation) AddLearnerID(i int) {
	if m.addlearner_id != nil {
		*m.addlearner_id += i
	} else {
		m.addlearner_id = &i
	}
}

// AddedLearnerID returns the value that was added to the "learner_id" field in this mutation.
func (m *AttemptMutation) AddedLearnerID() (r int, exists bool) {
	v := m.addlearner_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *AttemptMutation) ResetLearnerID() {
	m.learner_id = nil
	m.addlearner_id = nil
}

// SetScenarioID sets the "scenario_id" field.
func (m *AttemptMutation) SetScenarioID(i int) {
	m.scenario_id = &i
	m.addscenario_id = nil
}

// ScenarioID returns the value of the "scenario_id" field in the mutation.
func (m *AttemptMutation) ScenarioID() (r int, exists bool) {
	v := m.scenario_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScenarioID returns the old "scenario_id" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldScenarioID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenarioID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenarioID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenarioID: %w", err)
	}
	return oldValue.ScenarioID, nil
}

// AddScenarioID adds i to the "scenario_id" field.
func (m *AttemptMutation) AddScenarioID(i int) {
	if m.addscenario_id != nil {
		*m.addscenario_id += i
	} else {
		m.addscenario_id = &i
	}
}

// AddedScenarioID returns the value that was added to the "scenario_id" field in this mutation.
func (m *AttemptMutation) AddedScenarioID() (r int, exists bool) {
	v := m.addscenario_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetScenarioID resets all changes to the "scenario_id" field.
func (m *AttemptMutation) ResetScenarioID() {
	m.scenario_id = nil
	m.addscenario_id = nil
}

// SetCurrentNodeKey sets the "current_node_key" field.
func (m *AttemptMutation) SetCurrentNodeKey(s string) {
	m.current_node_key = &s
}

// CurrentNodeKey returns the value of the "current_node_key" field in the mutation.
func (m *AttemptMutation) CurrentNodeKey() (r string, exists bool) {
	v := m.current_node_key
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentNodeKey returns the old "current_node_key" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldCurrentNodeKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentNodeKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentNodeKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentNodeKey: %w", err)
	}
	return oldValue.CurrentNodeKey, nil
}

// ResetCurrentNodeKey resets all changes to the "current_node_key" field.
func (m *AttemptMutation) ResetCurrentNodeKey() {
	m.current_node_key = nil
}

// SetClientStatus sets the "client_status" field.
func (m *AttemptMutation) SetClientStatus(i int) {
	m.client_status = &i
	m.addclient_status = nil
}

// ClientStatus returns the value of the "client_status" field in the mutation.
func (m *AttemptMutation) ClientStatus() (r int, exists bool) {
	v := m.client_status
	if v == nil {
		return
	}
	return *v, true
}

// OldClientStatus returns the old "client_status" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldClientStatus(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientStatus: %w", err)
	}
	return oldValue.ClientStatus, nil
}

// AddClientStatus adds i to the "client_status" field.
func (m *AttemptMutation) AddClientStatus(i int) {
	if m.addclient_status != nil {
		*m.addclient_status += i
	} else {
		m.addclient_status = &i
	}
}

// AddedClientStatus returns the value that was added to the "client_status" field in this mutation.
func (m *AttemptMutation) AddedClientStatus() (r int, exists bool) {
	v := m.addclient_status
	if v == nil {
		return
	}
	return *v, true
}

// ResetClientStatus resets all changes to the "client_status" field.
func (m *AttemptMutation) ResetClientStatus() {
	m.client_status = nil
	m.addclient_status = nil
}

// SetWellbeing sets the "wellbeing" field.
func (m *AttemptMutation) SetWellbeing(i int) {
	m.wellbeing = &i
	m.addwellbeing = nil
}

// Wellbeing returns the value of the "wellbeing" field in the mutation.
func (m *AttemptMutation) Wellbeing() (r int, exists bool) {
	v := m.wellbeing
	if v == nil {
		return
	}
	return *v, true
}

// OldWellbeing returns the old "wellbeing" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldWellbeing(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWellbeing is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWellbeing requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWellbeing: %w", err)
	}
	return oldValue.Wellbeing, nil
}

// AddWellbeing adds i to the "wellbeing" field.
func (m *AttemptMutation) AddWellbeing(i int) {
	if m.addwellbeing != nil {
		*m.addwellbeing += i
	} else {
		m.addwellbeing = &i
	}
}

// AddedWellbeing returns the value that was added to the "wellbeing" field in this mutation.
func (m *AttemptMutation) AddedWellbeing() (r int, exists bool) {
	v := m.addwellbeing
	if v == nil {
		return
	}
	return *v, true
}

// ResetWellbeing resets all changes to the "wellbeing" field.
func (m *AttemptMutation) ResetWellbeing() {
	m.wellbeing = nil
	m.addwellbeing = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AttemptMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AttemptMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AttemptMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *AttemptMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AttemptMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AttemptMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[attempt.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AttemptMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[attempt.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AttemptMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, attempt.FieldCompletedAt)
}

// Where appends a list predicates to the AttemptMutation builder.
func (m *AttemptMutation) Where(ps ...predicate.Attempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Attempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Attempt).
func (m *AttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttemptMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.learner_id != nil {
		fields = append(fields, attempt.FieldLearnerID)
	}
	if m.scenario_id != nil {
		fields = append(fields, attempt.FieldScenarioID)
	}
	if m.current_node_key != nil {
		fields = append(fields, attempt.FieldCurrentNodeKey)
	}
	if m.client_status != nil {
		fields = append(fields, attempt.FieldClientStatus)
	}
	if m.wellbeing != nil {
		fields = append(fields, attempt.FieldWellbeing)
	}
	if m.started_at != nil {
		fields = append(fields, attempt.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, attempt.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attempt.FieldLearnerID:
		return m.LearnerID()
	case attempt.FieldScenarioID:
		return m.ScenarioID()
	case attempt.FieldCurrentNodeKey:
		return m.CurrentNodeKey()
	case attempt.FieldClientStatus:
		return m.ClientStatus()
	case attempt.FieldWellbeing:
		return m.Wellbeing()
	case attempt.FieldStartedAt:
		return m.StartedAt()
	case attempt.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attempt.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case attempt.FieldScenarioID:
		return m.OldScenarioID(ctx)
	case attempt.FieldCurrentNodeKey:
		return m.OldCurrentNodeKey(ctx)
	case attempt.FieldClientStatus:
		return m.OldClientStatus(ctx)
	case attempt.FieldWellbeing:
		return m.OldWellbeing(ctx)
	case attempt.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case attempt.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Attempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attempt.FieldLearnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case attempt.FieldScenarioID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenarioID(v)
		return nil
	case attempt.FieldCurrentNodeKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentNodeKey(v)
		return nil
	case attempt.FieldClientStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientStatus(v)
		return nil
	case attempt.FieldWellbeing:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWellbeing(v)
		return nil
	case attempt.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case attempt.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Attempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttemptMutation) AddedFields() []string {
	var fields []string
	if m.addlearner_id != nil {
		fields = append(fields, attempt.FieldLearnerID)
	}
	if m.addscenario_id != nil {
		fields = append(fields, attempt.FieldScenarioID)
	}
	if m.addclient_status != nil {
		fields = append(fields, attempt.FieldClientStatus)
	}
	if m.addwellbeing != nil {
		fields = append(fields, attempt.FieldWellbeing)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attempt.FieldLearnerID:
		return m.AddedLearnerID()
	case attempt.FieldScenarioID:
		return m.AddedScenarioID()
	case attempt.FieldClientStatus:
		return m.AddedClientStatus()
	case attempt.FieldWellbeing:
		return m.AddedWellbeing()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attempt.FieldLearnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLearnerID(v)
		return nil
	case attempt.FieldScenarioID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScenarioID(v)
		return nil
	case attempt.FieldClientStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClientStatus(v)
		return nil
	case attempt.FieldWellbeing:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWellbeing(v)
		return nil
	}
	return fmt.Errorf("unknown Attempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttemptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(attempt.FieldCompletedAt) {
		fields = append(fields, attempt.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttemptMutation) ClearField(name string) error {
	switch name {
	case attempt.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Attempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttemptMutation) ResetField(name string) error {
	switch name {
	case attempt.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case attempt.FieldScenarioID:
		m.ResetScenarioID()
		return nil
	case attempt.FieldCurrentNodeKey:
		m.ResetCurrentNodeKey()
		return nil
	case attempt.FieldClientStatus:
		m.ResetClientStatus()
		return nil
	case attempt.FieldWellbeing:
		m.ResetWellbeing()
		return nil
	case attempt.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case attempt.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Attempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttemptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttemptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttemptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Attempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttemptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Attempt edge %s", name)
}

// DecisionMutation represents an operation that mutates the Decision nodes in the graph.
type DecisionMutation struct {
	config
	op             Op
	typ            string
	id             *int
	sequence       *int64
	addsequence    *int64
	submission_id  *string
	attempt_id     *int
	addattempt_id  *int
	learner_id     *int
	addlearner_id  *int
	scenario_id    *int
	addscenario_id *int
	choice_id      *int
	addchoice_id   *int
	timestamp      *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Decision, error)
	predicates     []predicate.Decision
}

var _ ent.Mutation = (*DecisionMutation)(nil)

// decisionOption allows management of the mutation configuration using functional options.
type decisionOption func(*DecisionMutation)

// newDecisionMutation creates new mutation for the Decision entity.
func newDecisionMutation(c config, op Op, opts ...decisionOption) *DecisionMutation {
	m := &DecisionMutation{
		config:        c,
		op:            op,
		typ:           TypeDecision,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDecisionID sets the ID field of the mutation.
func withDecisionID(id int) decisionOption {
	return func(m *DecisionMutation) {
		var (
			err   error
			once  sync.Once
			value *Decision
		)
		m.oldValue = func(ctx context.Context) (*Decision, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Decision.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDecision sets the old Decision of the mutation.
func withDecision(node *Decision) decisionOption {
	return func(m *DecisionMutation) {
		m.oldValue = func(context.Context) (*Decision, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DecisionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DecisionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DecisionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DecisionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Decision.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *DecisionMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *DecisionMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *DecisionMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *DecisionMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *DecisionMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetSubmissionID sets the "submission_id" field.
func (m *DecisionMutation) SetSubmissionID(s string) {
	m.submission_id = &s
}

// SubmissionID returns the value of the "submission_id" field in the mutation.
func (m *DecisionMutation) SubmissionID() (r string, exists bool) {
	v := m.submission_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmissionID returns the old "submission_id" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldSubmissionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmissionID: %w", err)
	}
	return oldValue.SubmissionID, nil
}

// ResetSubmissionID resets all changes to the "submission_id" field.
func (m *DecisionMutation) ResetSubmissionID() {
	m.submission_id = nil
}

// SetAttemptID sets the "attempt_id" field.
func (m *DecisionMutation) SetAttemptID(i int) {
	m.attempt_id = &i
	m.addattempt_id = nil
}

// AttemptID returns the value of the "attempt_id" field in the mutation.
func (m *DecisionMutation) AttemptID() (r int, exists bool) {
	v := m.attempt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptID returns the old "attempt_id" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldAttemptID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptID: %w", err)
	}
	return oldValue.AttemptID, nil
}

// AddAttemptID adds i to the "attempt_id" field.
func (m *DecisionMutation) AddAttemptID(i int) {
	if m.addattempt_id != nil {
		*m.addattempt_id += i
	} else {
		m.addattempt_id = &i
	}
}

// AddedAttemptID returns the value that was added to the "attempt_id" field in this mutation.
func (m *DecisionMutation) AddedAttemptID() (r int, exists bool) {
	v := m.addattempt_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptID resets all changes to the "attempt_id" field.
func (m *DecisionMutation) ResetAttemptID() {
	m.attempt_id = nil
	m.addattempt_id = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *DecisionMutation) SetLearnerID(i int) {
	m.learner_id = &i
	m.addlearner_id = nil
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *DecisionMutation) LearnerID() (r int, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldLearnerID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// AddLearnerID adds i to the "learner_id" field.
func (m *DecisionMutation) AddLearnerID(i int) {
	if m.addlearner_id != nil {
		*m.addlearner_id += i
	} else {
		m.addlearner_id = &i
	}
}

// AddedLearnerID returns the value that was added to the "learner_id" field in this mutation.
func (m *DecisionMutation) AddedLearnerID() (r int, exists bool) {
	v := m.addlearner_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *DecisionMutation) ResetLearnerID() {
	m.learner_id = nil
	m.addlearner_id = nil
}

// SetScenarioID sets the "scenario_id" field.
func (m *DecisionMutation) SetScenarioID(i int) {
	m.scenario_id = &i
	m.addscenario_id = nil
}

// ScenarioID returns the value of the "scenario_id" field in the mutation.
func (m *DecisionMutation) ScenarioID() (r int, exists bool) {
	v := m.scenario_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScenarioID returns the old "scenario_id" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldScenarioID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenarioID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenarioID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenarioID: %w", err)
	}
	return oldValue.ScenarioID, nil
}

// AddScenarioID adds i to the "scenario_id" field.
func (m *DecisionMutation) AddScenarioID(i int) {
	if m.addscenario_id != nil {
		*m.addscenario_id += i
	} else {
		m.addscenario_id = &i
	}
}

// AddedScenarioID returns the value that was added to the "scenario_id" field in this mutation.
func (m *DecisionMutation) AddedScenarioID() (r int, exists bool) {
	v := m.addscenario_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetScenarioID resets all changes to the "scenario_id" field.
func (m *DecisionMutation) ResetScenarioID() {
	m.scenario_id = nil
	m.addscenario_id = nil
}

// SetChoiceID sets the "choice_id" field.
func (m *DecisionMutation) SetChoiceID(i int) {
	m.choice_id = &i
	m.addchoice_id = nil
}

// ChoiceID returns the value of the "choice_id" field in the mutation.
func (m *DecisionMutation) ChoiceID() (r int, exists bool) {
	v := m.choice_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChoiceID returns the old "choice_id" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldChoiceID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChoiceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChoiceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChoiceID: %w", err)
	}
	return oldValue.ChoiceID, nil
}

// AddChoiceID adds i to the "choice_id" field.
func (m *DecisionMutation) AddChoiceID(i int) {
	if m.addchoice_id != nil {
		*m.addchoice_id += i
	} else {
		m.addchoice_id = &i
	}
}

// AddedChoiceID returns the value that was added to the "choice_id" field in this mutation.
func (m *DecisionMutation) AddedChoiceID() (r int, exists bool) {
	v := m.addchoice_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetChoiceID resets all changes to the "choice_id" field.
func (m *DecisionMutation) ResetChoiceID() {
	m.choice_id = nil
	m.addchoice_id = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *DecisionMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *DecisionMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *DecisionMutation) ResetTimestamp() {
	m.timestamp = nil
}

// Where appends a list predicates to the DecisionMutation builder.
func (m *DecisionMutation) Where(ps ...predicate.Decision) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DecisionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DecisionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Decision, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DecisionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DecisionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Decision).
func (m *DecisionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DecisionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.sequence != nil {
		fields = append(fields, decision.FieldSequence)
	}
	if m.submission_id != nil {
		fields = append(fields, decision.FieldSubmissionID)
	}
	if m.attempt_id != nil {
		fields = append(fields, decision.FieldAttemptID)
	}
	if m.learner_id != nil {
		fields = append(fields, decision.FieldLearnerID)
	}
	if m.scenario_id != nil {
		fields = append(fields, decision.FieldScenarioID)
	}
	if m.choice_id != nil {
		fields = append(fields, decision.FieldChoiceID)
	}
	if m.timestamp != nil {
		fields = append(fields, decision.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DecisionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case decision.FieldSequence:
		return m.Sequence()
	case decision.FieldSubmissionID:
		return m.SubmissionID()
	case decision.FieldAttemptID:
		return m.AttemptID()
	case decision.FieldLearnerID:
		return m.LearnerID()
	case decision.FieldScenarioID:
		return m.ScenarioID()
	case decision.FieldChoiceID:
		return m.ChoiceID()
	case decision.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DecisionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case decision.FieldSequence:
		return m.OldSequence(ctx)
	case decision.FieldSubmissionID:
		return m.OldSubmissionID(ctx)
	case decision.FieldAttemptID:
		return m.OldAttemptID(ctx)
	case decision.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case decision.FieldScenarioID:
		return m.OldScenarioID(ctx)
	case decision.FieldChoiceID:
		return m.OldChoiceID(ctx)
	case decision.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown Decision field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DecisionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case decision.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case decision.FieldSubmissionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmissionID(v)
		return nil
	case decision.FieldAttemptID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptID(v)
		return nil
	case decision.FieldLearnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case decision.FieldScenarioID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenarioID(v)
		return nil
	case decision.FieldChoiceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChoiceID(v)
		return nil
	case decision.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown Decision field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DecisionMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, decision.FieldSequence)
	}
	if m.addattempt_id != nil {
		fields = append(fields, decision.FieldAttemptID)
	}
	if m.addlearner_id != nil {
		fields = append(fields, decision.FieldLearnerID)
	}
	if m.addscenario_id != nil {
		fields = append(fields, decision.FieldScenarioID)
	}
	if m.addchoice_id != nil {
		fields = append(fields, decision.FieldChoiceID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DecisionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case decision.FieldSequence:
		return m.AddedSequence()
	case decision.FieldAttemptID:
		return m.AddedAttemptID()
	case decision.FieldLearnerID:
		return m.AddedLearnerID()
	case decision.FieldScenarioID:
		return m.AddedScenarioID()
	case decision.FieldChoiceID:
		return m.AddedChoiceID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DecisionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case decision.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case decision.FieldAttemptID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptID(v)
		return nil
	case decision.FieldLearnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLearnerID(v)
		return nil
	case decision.FieldScenarioID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScenarioID(v)
		return nil
	case decision.FieldChoiceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChoiceID(v)
		return nil
	}
	return fmt.Errorf("unknown Decision numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DecisionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DecisionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DecisionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Decision nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DecisionMutation) ResetField(name string) error {
	switch name {
	case decision.FieldSequence:
		m.ResetSequence()
		return nil
	case decision.FieldSubmissionID:
		m.ResetSubmissionID()
		return nil
	case decision.FieldAttemptID:
		m.ResetAttemptID()
		return nil
	case decision.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case decision.FieldScenarioID:
		m.ResetScenarioID()
		return nil
	case decision.FieldChoiceID:
		m.ResetChoiceID()
		return nil
	case decision.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown Decision field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DecisionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DecisionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DecisionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DecisionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DecisionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DecisionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DecisionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Decision unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DecisionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Decision edge %s", name)
}

// LearnerMutation represents an operation that mutates the Learner nodes in the graph.
type LearnerMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	organization  *string
	role          *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Learner, error)
	predicates    []predicate.Learner
}

var _ ent.Mutation = (*LearnerMutation)(nil)

// learnerOption allows management of the mutation configuration using functional options.
type learnerOption func(*LearnerMutation)

// newLearnerMutation creates new mutation for the Learner entity.
func newLearnerMutation(c config, op Op, opts ...learnerOption) *LearnerMutation {
	m := &LearnerMutation{
		config:        c,
		op:            op,
		typ:           TypeLearner,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearnerID sets the ID field of the mutation.
func withLearnerID(id int) learnerOption {
	return func(m *LearnerMutation) {
		var (
			err   error
			once  sync.Once
			value *Learner
		)
		m.oldValue = func(ctx context.Context) (*Learner, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Learner.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearner sets the old Learner of the mutation.
func withLearner(node *Learner) learnerOption {
	return func(m *LearnerMutation) {
		m.oldValue = func(context.Context) (*Learner, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearnerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearnerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearnerMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearnerMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Learner.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *LearnerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *LearnerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *LearnerMutation) ResetName() {
	m.name = nil
}

// SetOrganization sets the "organization" field.
func (m *LearnerMutation) SetOrganization(s string) {
	m.organization = &s
}

// Organization returns the value of the "organization" field in the mutation.
func (m *LearnerMutation) Organization() (r string, exists bool) {
	v := m.organization
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganization returns the old "organization" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldOrganization(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganization is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganization requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganization: %w", err)
	}
	return oldValue.Organization, nil
}

// ResetOrganization resets all changes to the "organization" field.
func (m *LearnerMutation) ResetOrganization() {
	m.organization = nil
}

// SetRole sets the "role" field.
func (m *LearnerMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *LearnerMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *LearnerMutation) ResetRole() {
	m.role = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LearnerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LearnerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LearnerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LearnerMutation builder.
func (m *LearnerMutation) Where(ps ...predicate.Learner) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearnerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearnerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Learner, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearnerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearnerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Learner).
func (m *LearnerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearnerMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, learner.FieldName)
	}
	if m.organization != nil {
		fields = append(fields, learner.FieldOrganization)
	}
	if m.role != nil {
		fields = append(fields, learner.FieldRole)
	}
	if m.created_at != nil {
		fields = append(fields, learner.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearnerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learner.FieldName:
		return m.Name()
	case learner.FieldOrganization:
		return m.Organization()
	case learner.FieldRole:
		return m.Role()
	case learner.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearnerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learner.FieldName:
		return m.OldName(ctx)
	case learner.FieldOrganization:
		return m.OldOrganization(ctx)
	case learner.FieldRole:
		return m.OldRole(ctx)
	case learner.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Learner field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learner.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case learner.FieldOrganization:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganization(v)
		return nil
	case learner.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case learner.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Learner field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearnerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearnerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Learner numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearnerMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearnerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearnerMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Learner nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearnerMutation) ResetField(name string) error {
	switch name {
	case learner.FieldName:
		m.ResetName()
		return nil
	case learner.FieldOrganization:
		m.ResetOrganization()
		return nil
	case learner.FieldRole:
		m.ResetRole()
		return nil
	case learner.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Learner field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearnerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearnerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearnerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearnerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearnerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearnerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearnerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Learner unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearnerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Learner edge %s", name)
}
