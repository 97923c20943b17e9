// Code generated by ent, DO NOT EDIT.

package submission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/bollettelab/bollette-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldID, id))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldPhone, v))
}

// DocumentCount applies equality check predicate on the "document_count" field. It's identical to DocumentCountEQ.
func DocumentCount(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldDocumentCount, v))
}

// WarningCount applies equality check predicate on the "warning_count" field. It's identical to WarningCountEQ.
func WarningCount(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldWarningCount, v))
}

// Notified applies equality check predicate on the "notified" field. It's identical to NotifiedEQ.
func Notified(v bool) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldNotified, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldPhone, v))
}

// DocumentCountEQ applies the EQ predicate on the "document_count" field.
func DocumentCountEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldDocumentCount, v))
}

// DocumentCountNEQ applies the NEQ predicate on the "document_count" field.
func DocumentCountNEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldDocumentCount, v))
}

// DocumentCountIn applies the In predicate on the "document_count" field.
func DocumentCountIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldDocumentCount, vs...))
}

// DocumentCountNotIn applies the NotIn predicate on the "document_count" field.
func DocumentCountNotIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldDocumentCount, vs...))
}

// DocumentCountGT applies the GT predicate on the "document_count" field.
func DocumentCountGT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldDocumentCount, v))
}

// DocumentCountGTE applies the GTE predicate on the "document_count" field.
func DocumentCountGTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldDocumentCount, v))
}

// DocumentCountLT applies the LT predicate on the "document_count" field.
func DocumentCountLT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldDocumentCount, v))
}

// DocumentCountLTE applies the LTE predicate on the "document_count" field.
func DocumentCountLTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldDocumentCount, v))
}

// WarningCountEQ applies the EQ predicate on the "warning_count" field.
func WarningCountEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldWarningCount, v))
}

// WarningCountNEQ applies the NEQ predicate on the "warning_count" field.
func WarningCountNEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldWarningCount, v))
}

// WarningCountIn applies the In predicate on the "warning_count" field.
func WarningCountIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldWarningCount, vs...))
}

// WarningCountNotIn applies the NotIn predicate on the "warning_count" field.
func WarningCountNotIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldWarningCount, vs...))
}

// WarningCountGT applies the GT predicate on the "warning_count" field.
func WarningCountGT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldWarningCount, v))
}

// WarningCountGTE applies the GTE predicate on the "warning_count" field.
func WarningCountGTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldWarningCount, v))
}

// WarningCountLT applies the LT predicate on the "warning_count" field.
func WarningCountLT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldWarningCount, v))
}

// WarningCountLTE applies the LTE predicate on the "warning_count" field.
func WarningCountLTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldWarningCount, v))
}

// NotifiedEQ applies the EQ predicate on the "notified" field.
func NotifiedEQ(v bool) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldNotified, v))
}

// NotifiedNEQ applies the NEQ predicate on the "notified" field.
func NotifiedNEQ(v bool) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldNotified, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldCreatedAt, v))
}

// HasBills applies the HasEdge predicate on the "bills" edge.
func HasBills() predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BillsTable, BillsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBillsWith applies the HasEdge predicate on the "bills" edge with a given conditions (other predicates).
func HasBillsWith(preds ...predicate.Bill) predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := newBillsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.NotPredicates(p))
}
