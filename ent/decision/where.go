// Code generated by ent, DO NOT EDIT.

package decision

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hollisv/caresim/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldSequence, v))
}

// SubmissionID applies equality check predicate on the "submission_id" field. It's identical to SubmissionIDEQ.
func SubmissionID(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldSubmissionID, v))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v int) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldAttemptID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v int) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldLearnerID, v))
}

// ScenarioID applies equality check predicate on the "scenario_id" field. It's identical to ScenarioIDEQ.
func ScenarioID(v int) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldScenarioID, v))
}

// ChoiceID applies equality check predicate on the "choice_id" field. It's identical to ChoiceIDEQ.
func ChoiceID(v int) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldChoiceID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldTimestamp, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldSequence, v))
}

// SubmissionIDEQ applies the EQ predicate on the "submission_id" field.
func SubmissionIDEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldSubmissionID, v))
}

// SubmissionIDNEQ applies the NEQ predicate on the "submission_id" field.
func SubmissionIDNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldSubmissionID, v))
}

// SubmissionIDIn applies the In predicate on the "submission_id" field.
func SubmissionIDIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldSubmissionID, vs...))
}

// SubmissionIDNotIn applies the NotIn predicate on the "submission_id" field.
func SubmissionIDNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldSubmissionID, vs...))
}

// SubmissionIDGT applies the GT predicate on the "submission_id" field.
func SubmissionIDGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldSubmissionID, v))
}

// SubmissionIDGTE applies the GTE predicate on the "submission_id" field.
func SubmissionIDGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldSubmissionID, v))
}

// SubmissionIDLT applies the LT predicate on the "submission_id" field.
func SubmissionIDLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldSubmissionID, v))
}

// SubmissionIDLTE applies the LTE predicate on the "submission_id" field.
func SubmissionIDLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldSubmissionID, v))
}

// SubmissionIDContains applies the Contains predicate on the "submission_id" field.
func SubmissionIDContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldSubmissionID, v))
}

// SubmissionIDHasPrefix applies the HasPrefix predicate on the "submission_id" field.
func SubmissionIDHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldSubmissionID, v))
}

// SubmissionIDHasSuffix applies the HasSuffix predicate on the "submission_id" field.
func SubmissionIDHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldSubmissionID, v))
}

// SubmissionIDEqualFold applies the EqualFold predicate on the "submission_id" field.
func SubmissionIDEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldSubmissionID, v))
}

// SubmissionIDContainsFold applies the ContainsFold predicate on the "submission_id" field.
func SubmissionIDContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldSubmissionID, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v int) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v int) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...int) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...int) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v int) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v int) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v int) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v int) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldAttemptID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v int) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v int) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...int) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...int) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v int) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v int) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v int) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v int) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldLearnerID, v))
}

// ScenarioIDEQ applies the EQ predicate on the "scenario_id" field.
func ScenarioIDEQ(v int) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldScenarioID, v))
}

// ScenarioIDNEQ applies the NEQ predicate on the "scenario_id" field.
func ScenarioIDNEQ(v int) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldScenarioID, v))
}

// ScenarioIDIn applies the In predicate on the "scenario_id" field.
func ScenarioIDIn(vs ...int) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldScenarioID, vs...))
}

// ScenarioIDNotIn applies the NotIn predicate on the "scenario_id" field.
func ScenarioIDNotIn(vs ...int) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldScenarioID, vs...))
}

// ScenarioIDGT applies the GT predicate on the "scenario_id" field.
func ScenarioIDGT(v int) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldScenarioID, v))
}

// ScenarioIDGTE applies the GTE predicate on the "scenario_id" field.
func ScenarioIDGTE(v int) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldScenarioID, v))
}

// ScenarioIDLT applies the LT predicate on the "scenario_id" field.
func ScenarioIDLT(v int) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldScenarioID, v))
}

// ScenarioIDLTE applies the LTE predicate on the "scenario_id" field.
func ScenarioIDLTE(v int) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldScenarioID, v))
}

// ChoiceIDEQ applies the EQ predicate on the "choice_id" field.
func ChoiceIDEQ(v int) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldChoiceID, v))
}

// ChoiceIDNEQ applies the NEQ predicate on the "choice_id" field.
func ChoiceIDNEQ(v int) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldChoiceID, v))
}

// ChoiceIDIn applies the In predicate on the "choice_id" field.
func ChoiceIDIn(vs ...int) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldChoiceID, vs...))
}

// ChoiceIDNotIn applies the NotIn predicate on the "choice_id" field.
func ChoiceIDNotIn(vs ...int) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldChoiceID, vs...))
}

// ChoiceIDGT applies the GT predicate on the "choice_id" field.
func ChoiceIDGT(v int) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldChoiceID, v))
}

// ChoiceIDGTE applies the GTE predicate on the "choice_id" field.
func ChoiceIDGTE(v int) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldChoiceID, v))
}

// ChoiceIDLT applies the LT predicate on the "choice_id" field.
func ChoiceIDLT(v int) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldChoiceID, v))
}

// ChoiceIDLTE applies the LTE predicate on the "choice_id" field.
func ChoiceIDLTE(v int) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldChoiceID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldTimestamp, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Decision) predicate.Decision {
	return predicate.Decision(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Decision) predicate.Decision {
	return predicate.Decision(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Decision) predicate.Decision {
	return predicate.Decision(sql.NotPredicates(p))
}
