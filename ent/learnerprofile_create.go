// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/learnerprofile"
)

// LearnerProfileCreate is the builder for creating a LearnerProfile entity.
type LearnerProfileCreate struct {
	config
	mutation *LearnerProfileMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *LearnerProfileCreate) SetName(v string) *LearnerProfileCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPoints sets the "points" field.
func (_c *LearnerProfileCreate) SetPoints(v int) *LearnerProfileCreate {
	_c.mutation.SetPoints(v)
	return _c
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillablePoints(v *int) *LearnerProfileCreate {
	if v != nil {
		_c.SetPoints(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *LearnerProfileCreate) SetLevel(v int) *LearnerProfileCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillableLevel(v *int) *LearnerProfileCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetStreak sets the "streak" field.
func (_c *LearnerProfileCreate) SetStreak(v int) *LearnerProfileCreate {
	_c.mutation.SetStreak(v)
	return _c
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillableStreak(v *int) *LearnerProfileCreate {
	if v != nil {
		_c.SetStreak(*v)
	}
	return _c
}

// SetLastActiveAt sets the "last_active_at" field.
func (_c *LearnerProfileCreate) SetLastActiveAt(v time.Time) *LearnerProfileCreate {
	_c.mutation.SetLastActiveAt(v)
	return _c
}

// SetNillableLastActiveAt sets the "last_active_at" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillableLastActiveAt(v *time.Time) *LearnerProfileCreate {
	if v != nil {
		_c.SetLastActiveAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LearnerProfileCreate) SetCreatedAt(v time.Time) *LearnerProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillableCreatedAt(v *time.Time) *LearnerProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LearnerProfileCreate) SetID(v string) *LearnerProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LearnerProfileMutation object of the builder.
func (_c *LearnerProfileCreate) Mutation() *LearnerProfileMutation {
	return _c.mutation
}

// Save creates the LearnerProfile in the database.
func (_c *LearnerProfileCreate) Save(ctx context.Context) (*LearnerProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearnerProfileCreate) SaveX(ctx context.Context) *LearnerProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearnerProfileCreate) defaults() {
	if _, ok := _c.mutation.Points(); !ok {
		v := learnerprofile.DefaultPoints
		_c.mutation.SetPoints(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := learnerprofile.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.Streak(); !ok {
		v := learnerprofile.DefaultStreak
		_c.mutation.SetStreak(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := learnerprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearnerProfileCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "LearnerProfile.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := learnerprofile.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "LearnerProfile.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Points(); !ok {
		return &ValidationError{Name: "points", err: errors.New(`ent: missing required field "LearnerProfile.points"`)}
	}
	if v, ok := _c.mutation.Points(); ok {
		if err := learnerprofile.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "LearnerProfile.points": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "LearnerProfile.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := learnerprofile.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "LearnerProfile.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "LearnerProfile.streak"`)}
	}
	if v, ok := _c.mutation.Streak(); ok {
		if err := learnerprofile.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "LearnerProfile.streak": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LearnerProfile.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := learnerprofile.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "LearnerProfile.id": %w`, err)}
		}
	}
	return nil
}

func (_c *LearnerProfileCreate) sqlSave(ctx context.Context) (*LearnerProfile, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected LearnerProfile.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearnerProfileCreate) createSpec() (*LearnerProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &LearnerProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learnerprofile.Table, sqlgraph.NewFieldSpec(learnerprofile.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(learnerprofile.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Points(); ok {
		_spec.SetField(learnerprofile.FieldPoints, field.TypeInt, value)
		_node.Points = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(learnerprofile.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Streak(); ok {
		_spec.SetField(learnerprofile.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	if value, ok := _c.mutation.LastActiveAt(); ok {
		_spec.SetField(learnerprofile.FieldLastActiveAt, field.TypeTime, value)
		_node.LastActiveAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(learnerprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// LearnerProfileCreateBulk is the builder for creating many LearnerProfile entities in bulk.
type LearnerProfileCreateBulk struct {
	config
	err      error
	builders []*LearnerProfileCreate
}

// Save creates the LearnerProfile entities in the database.
func (_c *LearnerProfileCreateBulk) Save(ctx context.Context) ([]*LearnerProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearnerProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearnerProfileMutation)
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
func (_c *LearnerProfileCreateBulk) SaveX(ctx context.Context) []*LearnerProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
