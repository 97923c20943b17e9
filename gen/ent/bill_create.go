// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bollettelab/bollette-tracker/gen/ent/bill"
	"github.com/bollettelab/bollette-tracker/gen/ent/submission"
	"github.com/google/uuid"
)

// BillCreate is the builder for creating a Bill entity.
type BillCreate struct {
	config
	mutation *BillMutation
	hooks    []Hook
}

// SetSubmissionID sets the "submission_id" field.
func (_c *BillCreate) SetSubmissionID(v uuid.UUID) *BillCreate {
	_c.mutation.SetSubmissionID(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *BillCreate) SetPhone(v string) *BillCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetBillType sets the "bill_type" field.
func (_c *BillCreate) SetBillType(v string) *BillCreate {
	_c.mutation.SetBillType(v)
	return _c
}

// SetCostPerUnit sets the "cost_per_unit" field.
func (_c *BillCreate) SetCostPerUnit(v float64) *BillCreate {
	_c.mutation.SetCostPerUnit(v)
	return _c
}

// SetNillableCostPerUnit sets the "cost_per_unit" field if the given value is not nil.
func (_c *BillCreate) SetNillableCostPerUnit(v *float64) *BillCreate {
	if v != nil {
		_c.SetCostPerUnit(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *BillCreate) SetConfidence(v float64) *BillCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *BillCreate) SetNillableConfidence(v *float64) *BillCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *BillCreate) SetFileName(v string) *BillCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_c *BillCreate) SetNillableFileName(v *string) *BillCreate {
	if v != nil {
		_c.SetFileName(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BillCreate) SetCreatedAt(v time.Time) *BillCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BillCreate) SetNillableCreatedAt(v *time.Time) *BillCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BillCreate) SetID(v uuid.UUID) *BillCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BillCreate) SetNillableID(v *uuid.UUID) *BillCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSubmission sets the "submission" edge to the Submission entity.
func (_c *BillCreate) SetSubmission(v *Submission) *BillCreate {
	return _c.SetSubmissionID(v.ID)
}

// Mutation returns the BillMutation object of the builder.
func (_c *BillCreate) Mutation() *BillMutation {
	return _c.mutation
}

// Save creates the Bill in the database.
func (_c *BillCreate) Save(ctx context.Context) (*Bill, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BillCreate) SaveX(ctx context.Context) *Bill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BillCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := bill.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := bill.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := bill.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BillCreate) check() error {
	if _, ok := _c.mutation.SubmissionID(); !ok {
		return &ValidationError{Name: "submission_id", err: errors.New(`ent: missing required field "Bill.submission_id"`)}
	}
	if _, ok := _c.mutation.Phone(); !ok {
		return &ValidationError{Name: "phone", err: errors.New(`ent: missing required field "Bill.phone"`)}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := bill.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Bill.phone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BillType(); !ok {
		return &ValidationError{Name: "bill_type", err: errors.New(`ent: missing required field "Bill.bill_type"`)}
	}
	if v, ok := _c.mutation.BillType(); ok {
		if err := bill.BillTypeValidator(v); err != nil {
			return &ValidationError{Name: "bill_type", err: fmt.Errorf(`ent: validator failed for field "Bill.bill_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Bill.confidence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Bill.created_at"`)}
	}
	if len(_c.mutation.SubmissionIDs()) == 0 {
		return &ValidationError{Name: "submission", err: errors.New(`ent: missing required edge "Bill.submission"`)}
	}
	return nil
}

func (_c *BillCreate) sqlSave(ctx context.Context) (*Bill, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BillCreate) createSpec() (*Bill, *sqlgraph.CreateSpec) {
	var (
		_node = &Bill{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bill.Table, sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(bill.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.BillType(); ok {
		_spec.SetField(bill.FieldBillType, field.TypeString, value)
		_node.BillType = value
	}
	if value, ok := _c.mutation.CostPerUnit(); ok {
		_spec.SetField(bill.FieldCostPerUnit, field.TypeFloat64, value)
		_node.CostPerUnit = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(bill.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(bill.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(bill.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SubmissionIDs(); len(nodes) > 0 {
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
		_node.SubmissionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BillCreateBulk is the builder for creating many Bill entities in bulk.
type BillCreateBulk struct {
	config
	err      error
	builders []*BillCreate
}

// Save creates the Bill entities in the database.
func (_c *BillCreateBulk) Save(ctx context.Context) ([]*Bill, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Bill, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BillMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BillCreateBulk) SaveX(ctx context.Context) []*Bill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
