// Code generated by ent, DO NOT EDIT.

package bill

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/bollettelab/bollette-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldID, id))
}

// SubmissionID applies equality check predicate on the "submission_id" field. It's identical to SubmissionIDEQ.
func SubmissionID(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldSubmissionID, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldPhone, v))
}

// BillType applies equality check predicate on the "bill_type" field. It's identical to BillTypeEQ.
func BillType(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldBillType, v))
}

// CostPerUnit applies equality check predicate on the "cost_per_unit" field. It's identical to CostPerUnitEQ.
func CostPerUnit(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldCostPerUnit, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldConfidence, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldFileName, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldCreatedAt, v))
}

// SubmissionIDEQ applies the EQ predicate on the "submission_id" field.
func SubmissionIDEQ(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldSubmissionID, v))
}

// SubmissionIDNEQ applies the NEQ predicate on the "submission_id" field.
func SubmissionIDNEQ(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldSubmissionID, v))
}

// SubmissionIDIn applies the In predicate on the "submission_id" field.
func SubmissionIDIn(vs ...uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldSubmissionID, vs...))
}

// SubmissionIDNotIn applies the NotIn predicate on the "submission_id" field.
func SubmissionIDNotIn(vs ...uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldSubmissionID, vs...))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContainsFold(FieldPhone, v))
}

// BillTypeEQ applies the EQ predicate on the "bill_type" field.
func BillTypeEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldBillType, v))
}

// BillTypeNEQ applies the NEQ predicate on the "bill_type" field.
func BillTypeNEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldBillType, v))
}

// BillTypeIn applies the In predicate on the "bill_type" field.
func BillTypeIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldBillType, vs...))
}

// BillTypeNotIn applies the NotIn predicate on the "bill_type" field.
func BillTypeNotIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldBillType, vs...))
}

// BillTypeGT applies the GT predicate on the "bill_type" field.
func BillTypeGT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldBillType, v))
}

// BillTypeGTE applies the GTE predicate on the "bill_type" field.
func BillTypeGTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldBillType, v))
}

// BillTypeLT applies the LT predicate on the "bill_type" field.
func BillTypeLT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldBillType, v))
}

// BillTypeLTE applies the LTE predicate on the "bill_type" field.
func BillTypeLTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldBillType, v))
}

// BillTypeContains applies the Contains predicate on the "bill_type" field.
func BillTypeContains(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContains(FieldBillType, v))
}

// BillTypeHasPrefix applies the HasPrefix predicate on the "bill_type" field.
func BillTypeHasPrefix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasPrefix(FieldBillType, v))
}

// BillTypeHasSuffix applies the HasSuffix predicate on the "bill_type" field.
func BillTypeHasSuffix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasSuffix(FieldBillType, v))
}

// BillTypeEqualFold applies the EqualFold predicate on the "bill_type" field.
func BillTypeEqualFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEqualFold(FieldBillType, v))
}

// BillTypeContainsFold applies the ContainsFold predicate on the "bill_type" field.
func BillTypeContainsFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContainsFold(FieldBillType, v))
}

// CostPerUnitEQ applies the EQ predicate on the "cost_per_unit" field.
func CostPerUnitEQ(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldCostPerUnit, v))
}

// CostPerUnitNEQ applies the NEQ predicate on the "cost_per_unit" field.
func CostPerUnitNEQ(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldCostPerUnit, v))
}

// CostPerUnitIn applies the In predicate on the "cost_per_unit" field.
func CostPerUnitIn(vs ...float64) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldCostPerUnit, vs...))
}

// CostPerUnitNotIn applies the NotIn predicate on the "cost_per_unit" field.
func CostPerUnitNotIn(vs ...float64) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldCostPerUnit, vs...))
}

// CostPerUnitGT applies the GT predicate on the "cost_per_unit" field.
func CostPerUnitGT(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldCostPerUnit, v))
}

// CostPerUnitGTE applies the GTE predicate on the "cost_per_unit" field.
func CostPerUnitGTE(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldCostPerUnit, v))
}

// CostPerUnitLT applies the LT predicate on the "cost_per_unit" field.
func CostPerUnitLT(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldCostPerUnit, v))
}

// CostPerUnitLTE applies the LTE predicate on the "cost_per_unit" field.
func CostPerUnitLTE(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldCostPerUnit, v))
}

// CostPerUnitIsNil applies the IsNil predicate on the "cost_per_unit" field.
func CostPerUnitIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldCostPerUnit))
}

// CostPerUnitNotNil applies the NotNil predicate on the "cost_per_unit" field.
func CostPerUnitNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldCostPerUnit))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldConfidence, v))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameIsNil applies the IsNil predicate on the "file_name" field.
func FileNameIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldFileName))
}

// FileNameNotNil applies the NotNil predicate on the "file_name" field.
func FileNameNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldFileName))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContainsFold(FieldFileName, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSubmission applies the HasEdge predicate on the "submission" edge.
func HasSubmission() predicate.Bill {
	return predicate.Bill(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SubmissionTable, SubmissionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubmissionWith applies the HasEdge predicate on the "submission" edge with a given conditions (other predicates).
func HasSubmissionWith(preds ...predicate.Submission) predicate.Bill {
	return predicate.Bill(func(s *sql.Selector) {
		step := newSubmissionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Bill) predicate.Bill {
	return predicate.Bill(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Bill) predicate.Bill {
	return predicate.Bill(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Bill) predicate.Bill {
	return predicate.Bill(sql.NotPredicates(p))
}
