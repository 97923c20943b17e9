// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bollettelab/bollette-tracker/gen/ent/bill"
	"github.com/bollettelab/bollette-tracker/gen/ent/predicate"
	"github.com/bollettelab/bollette-tracker/gen/ent/submission"
	"github.com/google/uuid"
)

// SubmissionUpdate is the builder for updating Submission entities.
type SubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionMutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdate) Where(ps ...predicate.Submission) *SubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPhone sets the "phone" field.
func (_u *SubmissionUpdate) SetPhone(v string) *SubmissionUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillablePhone(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetDocumentCount sets the "document_count" field.
func (_u *SubmissionUpdate) SetDocumentCount(v int) *SubmissionUpdate {
	_u.mutation.ResetDocumentCount()
	_u.mutation.SetDocumentCount(v)
	return _u
}

// SetNillableDocumentCount sets the "document_count" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableDocumentCount(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetDocumentCount(*v)
	}
	return _u
}

// AddDocumentCount adds value to the "document_count" field.
func (_u *SubmissionUpdate) AddDocumentCount(v int) *SubmissionUpdate {
	_u.mutation.AddDocumentCount(v)
	return _u
}

// SetWarningCount sets the "warning_count" field.
func (_u *SubmissionUpdate) SetWarningCount(v int) *SubmissionUpdate {
	_u.mutation.ResetWarningCount()
	_u.mutation.SetWarningCount(v)
	return _u
}

// SetNillableWarningCount sets the "warning_count" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableWarningCount(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetWarningCount(*v)
	}
	return _u
}

// AddWarningCount adds value to the "warning_count" field.
func (_u *SubmissionUpdate) AddWarningCount(v int) *SubmissionUpdate {
	_u.mutation.AddWarningCount(v)
	return _u
}

// SetNotified sets the "notified" field.
func (_u *SubmissionUpdate) SetNotified(v bool) *SubmissionUpdate {
	_u.mutation.SetNotified(v)
	return _u
}

// SetNillableNotified sets the "notified" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableNotified(v *bool) *SubmissionUpdate {
	if v != nil {
		_u.SetNotified(*v)
	}
	return _u
}

// AddBillIDs adds the "bills" edge to the Bill entity by IDs.
func (_u *SubmissionUpdate) AddBillIDs(ids ...uuid.UUID) *SubmissionUpdate {
	_u.mutation.AddBillIDs(ids...)
	return _u
}

// AddBills adds the "bills" edges to the Bill entity.
func (_u *SubmissionUpdate) AddBills(v ...*Bill) *SubmissionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBillIDs(ids...)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdate) Mutation() *SubmissionMutation {
	return _u.mutation
}

// ClearBills clears all "bills" edges to the Bill entity.
func (_u *SubmissionUpdate) ClearBills() *SubmissionUpdate {
	_u.mutation.ClearBills()
	return _u
}

// RemoveBillIDs removes the "bills" edge to Bill entities by IDs.
func (_u *SubmissionUpdate) RemoveBillIDs(ids ...uuid.UUID) *SubmissionUpdate {
	_u.mutation.RemoveBillIDs(ids...)
	return _u
}

// RemoveBills removes "bills" edges to Bill entities.
func (_u *SubmissionUpdate) RemoveBills(v ...*Bill) *SubmissionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBillIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdate) check() error {
	if v, ok := _u.mutation.Phone(); ok {
		if err := submission.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Submission.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentCount(); ok {
		if err := submission.DocumentCountValidator(v); err != nil {
			return &ValidationError{Name: "document_count", err: fmt.Errorf(`ent: validator failed for field "Submission.document_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WarningCount(); ok {
		if err := submission.WarningCountValidator(v); err != nil {
			return &ValidationError{Name: "warning_count", err: fmt.Errorf(`ent: validator failed for field "Submission.warning_count": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(submission.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentCount(); ok {
		_spec.SetField(submission.FieldDocumentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDocumentCount(); ok {
		_spec.AddField(submission.FieldDocumentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WarningCount(); ok {
		_spec.SetField(submission.FieldWarningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWarningCount(); ok {
		_spec.AddField(submission.FieldWarningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Notified(); ok {
		_spec.SetField(submission.FieldNotified, field.TypeBool, value)
	}
	if _u.mutation.BillsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submission.BillsTable,
			Columns: []string{submission.BillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBillsIDs(); len(nodes) > 0 && !_u.mutation.BillsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submission.BillsTable,
			Columns: []string{submission.BillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BillsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submission.BillsTable,
			Columns: []string{submission.BillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionUpdateOne is the builder for updating a single Submission entity.
type SubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionMutation
}

// SetPhone sets the "phone" field.
func (_u *SubmissionUpdateOne) SetPhone(v string) *SubmissionUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillablePhone(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetDocumentCount sets the "document_count" field.
func (_u *SubmissionUpdateOne) SetDocumentCount(v int) *SubmissionUpdateOne {
	_u.mutation.ResetDocumentCount()
	_u.mutation.SetDocumentCount(v)
	return _u
}

// SetNillableDocumentCount sets the "document_count" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableDocumentCount(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetDocumentCount(*v)
	}
	return _u
}

// AddDocumentCount adds value to the "document_count" field.
func (_u *SubmissionUpdateOne) AddDocumentCount(v int) *SubmissionUpdateOne {
	_u.mutation.AddDocumentCount(v)
	return _u
}

// SetWarningCount sets the "warning_count" field.
func (_u *SubmissionUpdateOne) SetWarningCount(v int) *SubmissionUpdateOne {
	_u.mutation.ResetWarningCount()
	_u.mutation.SetWarningCount(v)
	return _u
}

// SetNillableWarningCount sets the "warning_count" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableWarningCount(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetWarningCount(*v)
	}
	return _u
}

// AddWarningCount adds value to the "warning_count" field.
func (_u *SubmissionUpdateOne) AddWarningCount(v int) *SubmissionUpdateOne {
	_u.mutation.AddWarningCount(v)
	return _u
}

// SetNotified sets the "notified" field.
func (_u *SubmissionUpdateOne) SetNotified(v bool) *SubmissionUpdateOne {
	_u.mutation.SetNotified(v)
	return _u
}

// SetNillableNotified sets the "notified" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableNotified(v *bool) *SubmissionUpdateOne {
	if v != nil {
		_u.SetNotified(*v)
	}
	return _u
}

// AddBillIDs adds the "bills" edge to the Bill entity by IDs.
func (_u *SubmissionUpdateOne) AddBillIDs(ids ...uuid.UUID) *SubmissionUpdateOne {
	_u.mutation.AddBillIDs(ids...)
	return _u
}

// AddBills adds the "bills" edges to the Bill entity.
func (_u *SubmissionUpdateOne) AddBills(v ...*Bill) *SubmissionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBillIDs(ids...)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdateOne) Mutation() *SubmissionMutation {
	return _u.mutation
}

// ClearBills clears all "bills" edges to the Bill entity.
func (_u *SubmissionUpdateOne) ClearBills() *SubmissionUpdateOne {
	_u.mutation.ClearBills()
	return _u
}

// RemoveBillIDs removes the "bills" edge to Bill entities by IDs.
func (_u *SubmissionUpdateOne) RemoveBillIDs(ids ...uuid.UUID) *SubmissionUpdateOne {
	_u.mutation.RemoveBillIDs(ids...)
	return _u
}

// RemoveBills removes "bills" edges to Bill entities.
func (_u *SubmissionUpdateOne) RemoveBills(v ...*Bill) *SubmissionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBillIDs(ids...)
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdateOne) Where(ps ...predicate.Submission) *SubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionUpdateOne) Select(field string, fields ...string) *SubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Submission entity.
func (_u *SubmissionUpdateOne) Save(ctx context.Context) (*Submission, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdateOne) SaveX(ctx context.Context) *Submission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdateOne) check() error {
	if v, ok := _u.mutation.Phone(); ok {
		if err := submission.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Submission.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentCount(); ok {
		if err := submission.DocumentCountValidator(v); err != nil {
			return &ValidationError{Name: "document_count", err: fmt.Errorf(`ent: validator failed for field "Submission.document_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WarningCount(); ok {
		if err := submission.WarningCountValidator(v); err != nil {
			return &ValidationError{Name: "warning_count", err: fmt.Errorf(`ent: validator failed for field "Submission.warning_count": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionUpdateOne) sqlSave(ctx context.Context) (_node *Submission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Submission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submission.FieldID)
		for _, f := range fields {
			if !submission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submission.FieldID {
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
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(submission.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentCount(); ok {
		_spec.SetField(submission.FieldDocumentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDocumentCount(); ok {
		_spec.AddField(submission.FieldDocumentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WarningCount(); ok {
		_spec.SetField(submission.FieldWarningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWarningCount(); ok {
		_spec.AddField(submission.FieldWarningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Notified(); ok {
		_spec.SetField(submission.FieldNotified, field.TypeBool, value)
	}
	if _u.mutation.BillsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submission.BillsTable,
			Columns: []string{submission.BillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBillsIDs(); len(nodes) > 0 && !_u.mutation.BillsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submission.BillsTable,
			Columns: []string{submission.BillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BillsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submission.BillsTable,
			Columns: []string{submission.BillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Submission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
