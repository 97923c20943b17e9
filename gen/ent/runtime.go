// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/bollettelab/bollette-tracker/db/ent/schema"
	"github.com/bollettelab/bollette-tracker/gen/ent/bill"
	"github.com/bollettelab/bollette-tracker/gen/ent/submission"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	billFields := schema.Bill{}.Fields()
	_ = billFields
	// billDescPhone is the schema descriptor for phone field.
	billDescPhone := billFields[2].Descriptor()
	// bill.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	bill.PhoneValidator = func() func(string) error {
		validators := billDescPhone.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(phone string) error {
			for _, fn := range fns {
				if err := fn(phone); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// billDescBillType is the schema descriptor for bill_type field.
	billDescBillType := billFields[3].Descriptor()
	// bill.BillTypeValidator is a validator for the "bill_type" field. It is called by the builders before save.
	bill.BillTypeValidator = func() func(string) error {
		validators := billDescBillType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(bill_type string) error {
			for _, fn := range fns {
				if err := fn(bill_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// billDescConfidence is the schema descriptor for confidence field.
	billDescConfidence := billFields[5].Descriptor()
	// bill.DefaultConfidence holds the default value on creation for the confidence field.
	bill.DefaultConfidence = billDescConfidence.Default.(float64)
	// billDescCreatedAt is the schema descriptor for created_at field.
	billDescCreatedAt := billFields[7].Descriptor()
	// bill.DefaultCreatedAt holds the default value on creation for the created_at field.
	bill.DefaultCreatedAt = billDescCreatedAt.Default.(func() time.Time)
	// billDescID is the schema descriptor for id field.
	billDescID := billFields[0].Descriptor()
	// bill.DefaultID holds the default value on creation for the id field.
	bill.DefaultID = billDescID.Default.(func() uuid.UUID)
	submissionFields := schema.Submission{}.Fields()
	_ = submissionFields
	// submissionDescPhone is the schema descriptor for phone field.
	submissionDescPhone := submissionFields[1].Descriptor()
	// submission.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	submission.PhoneValidator = func() func(string) error {
		validators := submissionDescPhone.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(phone string) error {
			for _, fn := range fns {
				if err := fn(phone); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// submissionDescDocumentCount is the schema descriptor for document_count field.
	submissionDescDocumentCount := submissionFields[2].Descriptor()
	// submission.DocumentCountValidator is a validator for the "document_count" field. It is called by the builders before save.
	submission.DocumentCountValidator = submissionDescDocumentCount.Validators[0].(func(int) error)
	// submissionDescWarningCount is the schema descriptor for warning_count field.
	submissionDescWarningCount := submissionFields[3].Descriptor()
	// submission.DefaultWarningCount holds the default value on creation for the warning_count field.
	submission.DefaultWarningCount = submissionDescWarningCount.Default.(int)
	// submission.WarningCountValidator is a validator for the "warning_count" field. It is called by the builders before save.
	submission.WarningCountValidator = submissionDescWarningCount.Validators[0].(func(int) error)
	// submissionDescNotified is the schema descriptor for notified field.
	submissionDescNotified := submissionFields[4].Descriptor()
	// submission.DefaultNotified holds the default value on creation for the notified field.
	submission.DefaultNotified = submissionDescNotified.Default.(bool)
	// submissionDescCreatedAt is the schema descriptor for created_at field.
	submissionDescCreatedAt := submissionFields[5].Descriptor()
	// submission.DefaultCreatedAt holds the default value on creation for the created_at field.
	submission.DefaultCreatedAt = submissionDescCreatedAt.Default.(func() time.Time)
	// submissionDescID is the schema descriptor for id field.
	submissionDescID := submissionFields[0].Descriptor()
	// submission.DefaultID holds the default value on creation for the id field.
	submission.DefaultID = submissionDescID.Default.(func() uuid.UUID)
}
