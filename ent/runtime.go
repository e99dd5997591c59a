// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/hollisv/caresim/ent/attempt"
	"github.com/hollisv/caresim/ent/decision"
	"github.com/hollisv/caresim/ent/learner"
	"github.com/hollisv/caresim/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescCurrentNodeKey is the schema descriptor for current_node_key field.
	attemptDescCurrentNodeKey := attemptFields[2].Descriptor()
	// attempt.CurrentNodeKeyValidator is a validator for the "current_node_key" field. It is called by the builders before save.
	attempt.CurrentNodeKeyValidator = attemptDescCurrentNodeKey.Validators[0].(func(string) error)
	// attemptDescClientStatus is the schema descriptor for client_status field.
	attemptDescClientStatus := attemptFields[3].Descriptor()
	// attempt.DefaultClientStatus holds the default value on creation for the client_status field.
	attempt.DefaultClientStatus = attemptDescClientStatus.Default.(int)
	// attempt.ClientStatusValidator is a validator for the "client_status" field. It is called by the builders before save.
	attempt.ClientStatusValidator = func() func(int) error {
		validators := attemptDescClientStatus.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(client_status int) error {
			for _, fn := range fns {
				if err := fn(client_status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// attemptDescWellbeing is the schema descriptor for wellbeing field.
	attemptDescWellbeing := attemptFields[4].Descriptor()
	// attempt.DefaultWellbeing holds the default value on creation for the wellbeing field.
	attempt.DefaultWellbeing = attemptDescWellbeing.Default.(int)
	// attempt.WellbeingValidator is a validator for the "wellbeing" field. It is called by the builders before save.
	attempt.WellbeingValidator = func() func(int) error {
		validators := attemptDescWellbeing.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(wellbeing int) error {
			for _, fn := range fns {
				if err := fn(wellbeing); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// attemptDescStartedAt is the schema descriptor for started_at field.
	attemptDescStartedAt := attemptFields[5].Descriptor()
	// attempt.DefaultStartedAt holds the default value on creation for the started_at field.
	attempt.DefaultStartedAt = attemptDescStartedAt.Default.(func() time.Time)
	decisionFields := schema.Decision{}.Fields()
	_ = decisionFields
	// decisionDescSubmissionID is the schema descriptor for submission_id field.
	decisionDescSubmissionID := decisionFields[1].Descriptor()
	// decision.SubmissionIDValidator is a validator for the "submission_id" field. It is called by the builders before save.
	decision.SubmissionIDValidator = decisionDescSubmissionID.Validators[0].(func(string) error)
	// decisionDescTimestamp is the schema descriptor for timestamp field.
	decisionDescTimestamp := decisionFields[6].Descriptor()
	// decision.DefaultTimestamp holds the default value on creation for the timestamp field.
	decision.DefaultTimestamp = decisionDescTimestamp.Default.(func() time.Time)
	learnerFields := schema.Learner{}.Fields()
	_ = learnerFields
	// learnerDescName is the schema descriptor for name field.
	learnerDescName := learnerFields[0].Descriptor()
	// learner.NameValidator is a validator for the "name" field. It is called by the builders before save.
	learner.NameValidator = learnerDescName.Validators[0].(func(string) error)
	// learnerDescOrganization is the schema descriptor for organization field.
	learnerDescOrganization := learnerFields[1].Descriptor()
	// learner.OrganizationValidator is a validator for the "organization" field. It is called by the builders before save.
	learner.OrganizationValidator = learnerDescOrganization.Validators[0].(func(string) error)
	// learnerDescRole is the schema descriptor for role field.
	learnerDescRole := learnerFields[2].Descriptor()
	// learner.DefaultRole holds the default value on creation for the role field.
	learner.DefaultRole = learnerDescRole.Default.(string)
	// learnerDescCreatedAt is the schema descriptor for created_at field.
	learnerDescCreatedAt := learnerFields[3].Descriptor()
	// learner.DefaultCreatedAt holds the default value on creation for the created_at field.
	learner.DefaultCreatedAt = learnerDescCreatedAt.Default.(func() time.Time)
}
