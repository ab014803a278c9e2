// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/pointsentry"
)

// PointsEntryCreate is the builder for creating a PointsEntry entity.
type PointsEntryCreate struct {
	config
	mutation *PointsEntryMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PointsEntryCreate) SetSequence(v int64) *PointsEntryCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PointsEntryCreate) SetCreatedAt(v time.Time) *PointsEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PointsEntryCreate) SetNillableCreatedAt(v *time.Time) *PointsEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *PointsEntryCreate) SetLearnerID(v string) *PointsEntryCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *PointsEntryCreate) SetAction(v string) *PointsEntryCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetPoints sets the "points" field.
func (_c *PointsEntryCreate) SetPoints(v int) *PointsEntryCreate {
	_c.mutation.SetPoints(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *PointsEntryCreate) SetMetadata(v map[string]interface{}) *PointsEntryCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// Mutation returns the PointsEntryMutation object of the builder.
func (_c *PointsEntryCreate) Mutation() *PointsEntryMutation {
	return _c.mutation
}

// Save creates the PointsEntry in the database.
func (_c *PointsEntryCreate) Save(ctx context.Context) (*PointsEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PointsEntryCreate) SaveX(ctx context.Context) *PointsEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PointsEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PointsEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PointsEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pointsentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PointsEntryCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PointsEntry.sequence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PointsEntry.created_at"`)}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "PointsEntry.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := pointsentry.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "PointsEntry.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "PointsEntry.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := pointsentry.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "PointsEntry.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Points(); !ok {
		return &ValidationError{Name: "points", err: errors.New(`ent: missing required field "PointsEntry.points"`)}
	}
	if v, ok := _c.mutation.Points(); ok {
		if err := pointsentry.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "PointsEntry.points": %w`, err)}
		}
	}
	return nil
}

func (_c *PointsEntryCreate) sqlSave(ctx context.Context) (*PointsEntry, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PointsEntryCreate) createSpec() (*PointsEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &PointsEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pointsentry.Table, sqlgraph.NewFieldSpec(pointsentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(pointsentry.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pointsentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(pointsentry.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(pointsentry.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Points(); ok {
		_spec.SetField(pointsentry.FieldPoints, field.TypeInt, value)
		_node.Points = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(pointsentry.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	return _node, _spec
}

// PointsEntryCreateBulk is the builder for creating many PointsEntry entities in bulk.
type PointsEntryCreateBulk struct {
	config
	err      error
	builders []*PointsEntryCreate
}

// Save creates the PointsEntry entities in the database.
func (_c *PointsEntryCreateBulk) Save(ctx context.Context) ([]*PointsEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PointsEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PointsEntryMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *PointsEntryCreateBulk) SaveX(ctx context.Context) []*PointsEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PointsEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PointsEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
