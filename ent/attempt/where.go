// Code generated by ent, DO NOT EDIT.

package attempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hollisv/caresim/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldLearnerID, v))
}

// ScenarioID applies equality check predicate on the "scenario_id" field. It's identical to ScenarioIDEQ.
func ScenarioID(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldScenarioID, v))
}

// CurrentNodeKey applies equality check predicate on the "current_node_key" field. It's identical to CurrentNodeKeyEQ.
func CurrentNodeKey(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCurrentNodeKey, v))
}

// ClientStatus applies equality check predicate on the "client_status" field. It's identical to ClientStatusEQ.
func ClientStatus(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldClientStatus, v))
}

// Wellbeing applies equality check predicate on the "wellbeing" field. It's identical to WellbeingEQ.
func Wellbeing(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldWellbeing, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCompletedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldLearnerID, v))
}

// ScenarioIDEQ applies the EQ predicate on the "scenario_id" field.
func ScenarioIDEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldScenarioID, v))
}

// ScenarioIDNEQ applies the NEQ predicate on the "scenario_id" field.
func ScenarioIDNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldScenarioID, v))
}

// ScenarioIDIn applies the In predicate on the "scenario_id" field.
func ScenarioIDIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldScenarioID, vs...))
}

// ScenarioIDNotIn applies the NotIn predicate on the "scenario_id" field.
func ScenarioIDNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldScenarioID, vs...))
}

// ScenarioIDGT applies the GT predicate on the "scenario_id" field.
func ScenarioIDGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldScenarioID, v))
}

// ScenarioIDGTE applies the GTE predicate on the "scenario_id" field.
func ScenarioIDGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldScenarioID, v))
}

// ScenarioIDLT applies the LT predicate on the "scenario_id" field.
func ScenarioIDLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldScenarioID, v))
}

// ScenarioIDLTE applies the LTE predicate on the "scenario_id" field.
func ScenarioIDLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldScenarioID, v))
}

// CurrentNodeKeyEQ applies the EQ predicate on the "current_node_key" field.
func CurrentNodeKeyEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCurrentNodeKey, v))
}

// CurrentNodeKeyNEQ applies the NEQ predicate on the "current_node_key" field.
func CurrentNodeKeyNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldCurrentNodeKey, v))
}

// CurrentNodeKeyIn applies the In predicate on the "current_node_key" field.
func CurrentNodeKeyIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldCurrentNodeKey, vs...))
}

// CurrentNodeKeyNotIn applies the NotIn predicate on the "current_node_key" field.
func CurrentNodeKeyNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldCurrentNodeKey, vs...))
}

// CurrentNodeKeyGT applies the GT predicate on the "current_node_key" field.
func CurrentNodeKeyGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldCurrentNodeKey, v))
}

// CurrentNodeKeyGTE applies the GTE predicate on the "current_node_key" field.
func CurrentNodeKeyGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldCurrentNodeKey, v))
}

// CurrentNodeKeyLT applies the LT predicate on the "current_node_key" field.
func CurrentNodeKeyLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldCurrentNodeKey, v))
}

// CurrentNodeKeyLTE applies the LTE predicate on the "current_node_key" field.
func CurrentNodeKeyLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldCurrentNodeKey, v))
}

// CurrentNodeKeyContains applies the Contains predicate on the "current_node_key" field.
func CurrentNodeKeyContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldCurrentNodeKey, v))
}

// CurrentNodeKeyHasPrefix applies the HasPrefix predicate on the "current_node_key" field.
func CurrentNodeKeyHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldCurrentNodeKey, v))
}

// CurrentNodeKeyHasSuffix applies the HasSuffix predicate on the "current_node_key" field.
func CurrentNodeKeyHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldCurrentNodeKey, v))
}

// CurrentNodeKeyEqualFold applies the EqualFold predicate on the "current_node_key" field.
func CurrentNodeKeyEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldCurrentNodeKey, v))
}

// CurrentNodeKeyContainsFold applies the ContainsFold predicate on the "current_node_key" field.
func CurrentNodeKeyContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldCurrentNodeKey, v))
}

// ClientStatusEQ applies the EQ predicate on the "client_status" field.
func ClientStatusEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldClientStatus, v))
}

// ClientStatusNEQ applies the NEQ predicate on the "client_status" field.
func ClientStatusNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldClientStatus, v))
}

// ClientStatusIn applies the In predicate on the "client_status" field.
func ClientStatusIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldClientStatus, vs...))
}

// ClientStatusNotIn applies the NotIn predicate on the "client_status" field.
func ClientStatusNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldClientStatus, vs...))
}

// ClientStatusGT applies the GT predicate on the "client_status" field.
func ClientStatusGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldClientStatus, v))
}

// ClientStatusGTE applies the GTE predicate on the "client_status" field.
func ClientStatusGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldClientStatus, v))
}

// ClientStatusLT applies the LT predicate on the "client_status" field.
func ClientStatusLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldClientStatus, v))
}

// ClientStatusLTE applies the LTE predicate on the "client_status" field.
func ClientStatusLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldClientStatus, v))
}

// WellbeingEQ applies the EQ predicate on the "wellbeing" field.
func WellbeingEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldWellbeing, v))
}

// WellbeingNEQ applies the NEQ predicate on the "wellbeing" field.
func WellbeingNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldWellbeing, v))
}

// WellbeingIn applies the In predicate on the "wellbeing" field.
func WellbeingIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldWellbeing, vs...))
}

// WellbeingNotIn applies the NotIn predicate on the "wellbeing" field.
func WellbeingNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldWellbeing, vs...))
}

// WellbeingGT applies the GT predicate on the "wellbeing" field.
func WellbeingGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldWellbeing, v))
}

// WellbeingGTE applies the GTE predicate on the "wellbeing" field.
func WellbeingGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldWellbeing, v))
}

// WellbeingLT applies the LT predicate on the "wellbeing" field.
func WellbeingLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldWellbeing, v))
}

// WellbeingLTE applies the LTE predicate on the "wellbeing" field.
func WellbeingLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldWellbeing, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.NotPredicates(p))
}
