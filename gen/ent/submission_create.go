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

// SubmissionCreate is the builder for creating a Submission entity.
type SubmissionCreate struct {
	config
	mutation *SubmissionMutation
	hooks    []Hook
}

// SetPhone sets the "phone" field.
func (_c *SubmissionCreate) SetPhone(v string) *SubmissionCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetDocumentCount sets the "document_count" field.
func (_c *SubmissionCreate) SetDocumentCount(v int) *SubmissionCreate {
	_c.mutation.SetDocumentCount(v)
	return _c
}

// SetWarningCount sets the "warning_count" field.
func (_c *SubmissionCreate) SetWarningCount(v int) *SubmissionCreate {
	_c.mutation.SetWarningCount(v)
	return _c
}

// SetNillableWarningCount sets the "warning_count" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableWarningCount(v *int) *SubmissionCreate {
	if v != nil {
		_c.SetWarningCount(*v)
	}
	return _c
}

// SetNotified sets the "notified" field.
func (_c *SubmissionCreate) SetNotified(v bool) *SubmissionCreate {
	_c.mutation.SetNotified(v)
	return _c
}

// SetNillableNotified sets the "notified" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableNotified(v *bool) *SubmissionCreate {
	if v != nil {
		_c.SetNotified(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubmissionCreate) SetCreatedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableCreatedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SubmissionCreate) SetID(v uuid.UUID) *SubmissionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableID(v *uuid.UUID) *SubmissionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddBillIDs adds the "bills" edge to the Bill entity by IDs.
func (_c *SubmissionCreate) AddBillIDs(ids ...uuid.UUID) *SubmissionCreate {
	_c.mutation.AddBillIDs(ids...)
	return _c
}

// AddBills adds the "bills" edges to the Bill entity.
func (_c *SubmissionCreate) AddBills(v ...*Bill) *SubmissionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBillIDs(ids...)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_c *SubmissionCreate) Mutation() *SubmissionMutation {
	return _c.mutation
}

// Save creates the Submission in the database.
func (_c *SubmissionCreate) Save(ctx context.Context) (*Submission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubmissionCreate) SaveX(ctx context.Context) *Submission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubmissionCreate) defaults() {
	if _, ok := _c.mutation.WarningCount(); !ok {
		v := submission.DefaultWarningCount
		_c.mutation.SetWarningCount(v)
	}
	if _, ok := _c.mutation.Notified(); !ok {
		v := submission.DefaultNotified
		_c.mutation.SetNotified(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := submission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := submission.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubmissionCreate) check() error {
	if _, ok := _c.mutation.Phone(); !ok {
		return &ValidationError{Name: "phone", err: errors.New(`ent: missing required field "Submission.phone"`)}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := submission.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Submission.phone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentCount(); !ok {
		return &ValidationError{Name: "document_count", err: errors.New(`ent: missing required field "Submission.document_count"`)}
	}
	if v, ok := _c.mutation.DocumentCount(); ok {
		if err := submission.DocumentCountValidator(v); err != nil {
			return &ValidationError{Name: "document_count", err: fmt.Errorf(`ent: validator failed for field "Submission.document_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WarningCount(); !ok {
		return &ValidationError{Name: "warning_count", err: errors.New(`ent: missing required field "Submission.warning_count"`)}
	}
	if v, ok := _c.mutation.WarningCount(); ok {
		if err := submission.WarningCountValidator(v); err != nil {
			return &ValidationError{Name: "warning_count", err: fmt.Errorf(`ent: validator failed for field "Submission.warning_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Notified(); !ok {
		return &ValidationError{Name: "notified", err: errors.New(`ent: missing required field "Submission.notified"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Submission.created_at"`)}
	}
	return nil
}

func (_c *SubmissionCreate) sqlSave(ctx context.Context) (*Submission, error) {
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

func (_c *SubmissionCreate) createSpec() (*Submission, *sqlgraph.CreateSpec) {
	var (
		_node = &Submission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(submission.Table, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(submission.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.DocumentCount(); ok {
		_spec.SetField(submission.FieldDocumentCount, field.TypeInt, value)
		_node.DocumentCount = value
	}
	if value, ok := _c.mutation.WarningCount(); ok {
		_spec.SetField(submission.FieldWarningCount, field.TypeInt, value)
		_node.WarningCount = value
	}
	if value, ok := _c.mutation.Notified(); ok {
		_spec.SetField(submission.FieldNotified, field.TypeBool, value)
		_node.Notified = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(submission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.BillsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SubmissionCreateBulk is the builder for creating many Submission entities in bulk.
type SubmissionCreateBulk struct {
	config
	err      error
	builders []*SubmissionCreate
}

// Save creates the Submission entities in the database.
func (_c *SubmissionCreateBulk) Save(ctx context.Context) ([]*Submission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Submission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubmissionMutation)
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
func (_c *SubmissionCreateBulk) SaveX(ctx context.Context) []*Submission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
