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

// BillUpdate is the builder for updating Bill entities.
type BillUpdate struct {
	config
	hooks    []Hook
	mutation *BillMutation
}

// Where appends a list predicates to the BillUpdate builder.
func (_u *BillUpdate) Where(ps ...predicate.Bill) *BillUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubmissionID sets the "submission_id" field.
func (_u *BillUpdate) SetSubmissionID(v uuid.UUID) *BillUpdate {
	_u.mutation.SetSubmissionID(v)
	return _u
}

// SetNillableSubmissionID sets the "submission_id" field if the given value is not nil.
func (_u *BillUpdate) SetNillableSubmissionID(v *uuid.UUID) *BillUpdate {
	if v != nil {
		_u.SetSubmissionID(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *BillUpdate) SetPhone(v string) *BillUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *BillUpdate) SetNillablePhone(v *string) *BillUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetBillType sets the "bill_type" field.
func (_u *BillUpdate) SetBillType(v string) *BillUpdate {
	_u.mutation.SetBillType(v)
	return _u
}

// SetNillableBillType sets the "bill_type" field if the given value is not nil.
func (_u *BillUpdate) SetNillableBillType(v *string) *BillUpdate {
	if v != nil {
		_u.SetBillType(*v)
	}
	return _u
}

// SetCostPerUnit sets the "cost_per_unit" field.
func (_u *BillUpdate) SetCostPerUnit(v float64) *BillUpdate {
	_u.mutation.ResetCostPerUnit()
	_u.mutation.SetCostPerUnit(v)
	return _u
}

// SetNillableCostPerUnit sets the "cost_per_unit" field if the given value is not nil.
func (_u *BillUpdate) SetNillableCostPerUnit(v *float64) *BillUpdate {
	if v != nil {
		_u.SetCostPerUnit(*v)
	}
	return _u
}

// AddCostPerUnit adds value to the "cost_per_unit" field.
func (_u *BillUpdate) AddCostPerUnit(v float64) *BillUpdate {
	_u.mutation.AddCostPerUnit(v)
	return _u
}

// ClearCostPerUnit clears the value of the "cost_per_unit" field.
func (_u *BillUpdate) ClearCostPerUnit() *BillUpdate {
	_u.mutation.ClearCostPerUnit()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *BillUpdate) SetConfidence(v float64) *BillUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *BillUpdate) SetNillableConfidence(v *float64) *BillUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *BillUpdate) AddConfidence(v float64) *BillUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *BillUpdate) SetFileName(v string) *BillUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *BillUpdate) SetNillableFileName(v *string) *BillUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// ClearFileName clears the value of the "file_name" field.
func (_u *BillUpdate) ClearFileName() *BillUpdate {
	_u.mutation.ClearFileName()
	return _u
}

// SetSubmission sets the "submission" edge to the Submission entity.
func (_u *BillUpdate) SetSubmission(v *Submission) *BillUpdate {
	return _u.SetSubmissionID(v.ID)
}

// Mutation returns the BillMutation object of the builder.
func (_u *BillUpdate) Mutation() *BillMutation {
	return _u.mutation
}

// ClearSubmission clears the "submission" edge to the Submission entity.
func (_u *BillUpdate) ClearSubmission() *BillUpdate {
	_u.mutation.ClearSubmission()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BillUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BillUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillUpdate) check() error {
	if v, ok := _u.mutation.Phone(); ok {
		if err := bill.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Bill.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BillType(); ok {
		if err := bill.BillTypeValidator(v); err != nil {
			return &ValidationError{Name: "bill_type", err: fmt.Errorf(`ent: validator failed for field "Bill.bill_type": %w`, err)}
		}
	}
	if _u.mutation.SubmissionCleared() && len(_u.mutation.SubmissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Bill.submission"`)
	}
	return nil
}

func (_u *BillUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bill.Table, bill.Columns, sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(bill.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.BillType(); ok {
		_spec.SetField(bill.FieldBillType, field.TypeString, value)
	}
	if value, ok := _u.mutation.CostPerUnit(); ok {
		_spec.SetField(bill.FieldCostPerUnit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostPerUnit(); ok {
		_spec.AddField(bill.FieldCostPerUnit, field.TypeFloat64, value)
	}
	if _u.mutation.CostPerUnitCleared() {
		_spec.ClearField(bill.FieldCostPerUnit, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(bill.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(bill.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(bill.FieldFileName, field.TypeString, value)
	}
	if _u.mutation.FileNameCleared() {
		_spec.ClearField(bill.FieldFileName, field.TypeString)
	}
	if _u.mutation.SubmissionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bill.SubmissionTable,
			Columns: []string{bill.SubmissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bill.SubmissionTable,
			Columns: []string{bill.SubmissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BillUpdateOne is the builder for updating a single Bill entity.
type BillUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BillMutation
}

// SetSubmissionID sets the "submission_id" field.
func (_u *BillUpdateOne) SetSubmissionID(v uuid.UUID) *BillUpdateOne {
	_u.mutation.SetSubmissionID(v)
	return _u
}

// SetNillableSubmissionID sets the "submission_id" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableSubmissionID(v *uuid.UUID) *BillUpdateOne {
	if v != nil {
		_u.SetSubmissionID(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *BillUpdateOne) SetPhone(v string) *BillUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillablePhone(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetBillType sets the "bill_type" field.
func (_u *BillUpdateOne) SetBillType(v string) *BillUpdateOne {
	_u.mutation.SetBillType(v)
	return _u
}

// SetNillableBillType sets the "bill_type" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableBillType(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetBillType(*v)
	}
	return _u
}

// SetCostPerUnit sets the "cost_per_unit" field.
func (_u *BillUpdateOne) SetCostPerUnit(v float64) *BillUpdateOne {
	_u.mutation.ResetCostPerUnit()
	_u.mutation.SetCostPerUnit(v)
	return _u
}

// SetNillableCostPerUnit sets the "cost_per_unit" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableCostPerUnit(v *float64) *BillUpdateOne {
	if v != nil {
		_u.SetCostPerUnit(*v)
	}
	return _u
}

// AddCostPerUnit adds value to the "cost_per_unit" field.
func (_u *BillUpdateOne) AddCostPerUnit(v float64) *BillUpdateOne {
	_u.mutation.AddCostPerUnit(v)
	return _u
}

// ClearCostPerUnit clears the value of the "cost_per_unit" field.
func (_u *BillUpdateOne) ClearCostPerUnit() *BillUpdateOne {
	_u.mutation.ClearCostPerUnit()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *BillUpdateOne) SetConfidence(v float64) *BillUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableConfidence(v *float64) *BillUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *BillUpdateOne) AddConfidence(v float64) *BillUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *BillUpdateOne) SetFileName(v string) *BillUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableFileName(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// ClearFileName clears the value of the "file_name" field.
func (_u *BillUpdateOne) ClearFileName() *BillUpdateOne {
	_u.mutation.ClearFileName()
	return _u
}

// SetSubmission sets the "submission" edge to the Submission entity.
func (_u *BillUpdateOne) SetSubmission(v *Submission) *BillUpdateOne {
	return _u.SetSubmissionID(v.ID)
}

// Mutation returns the BillMutation object of the builder.
func (_u *BillUpdateOne) Mutation() *BillMutation {
	return _u.mutation
}

// ClearSubmission clears the "submission" edge to the Submission entity.
func (_u *BillUpdateOne) ClearSubmission() *BillUpdateOne {
	_u.mutation.ClearSubmission()
	return _u
}

// Where appends a list predicates to the BillUpdate builder.
func (_u *BillUpdateOne) Where(ps ...predicate.Bill) *BillUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BillUpdateOne) Select(field string, fields ...string) *BillUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Bill entity.
func (_u *BillUpdateOne) Save(ctx context.Context) (*Bill, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillUpdateOne) SaveX(ctx context.Context) *Bill {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BillUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillUpdateOne) check() error {
	if v, ok := _u.mutation.Phone(); ok {
		if err := bill.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Bill.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BillType(); ok {
		if err := bill.BillTypeValidator(v); err != nil {
			return &ValidationError{Name: "bill_type", err: fmt.Errorf(`ent: validator failed for field "Bill.bill_type": %w`, err)}
		}
	}
	if _u.mutation.SubmissionCleared() && len(_u.mutation.SubmissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Bill.submission"`)
	}
	return nil
}

func (_u *BillUpdateOne) sqlSave(ctx context.Context) (_node *Bill, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bill.Table, bill.Columns, sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Bill.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bill.FieldID)
		for _, f := range fields {
			if !bill.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bill.FieldID {
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
		_spec.SetField(bill.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.BillType(); ok {
		_spec.SetField(bill.FieldBillType, field.TypeString, value)
	}
	if value, ok := _u.mutation.CostPerUnit(); ok {
		_spec.SetField(bill.FieldCostPerUnit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostPerUnit(); ok {
		_spec.AddField(bill.FieldCostPerUnit, field.TypeFloat64, value)
	}
	if _u.mutation.CostPerUnitCleared() {
		_spec.ClearField(bill.FieldCostPerUnit, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(bill.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(bill.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(bill.FieldFileName, field.TypeString, value)
	}
	if _u.mutation.FileNameCleared() {
		_spec.ClearField(bill.FieldFileName, field.TypeString)
	}
	if _u.mutation.SubmissionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bill.SubmissionTable,
			Columns: []string{bill.SubmissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bill.SubmissionTable,
			Columns: []string{bill.SubmissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Bill{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
