// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/unlockedachievement"
)

// UnlockedAchievementCreate is the builder for creating a UnlockedAchievement entity.
type UnlockedAchievementCreate struct {
	config
	mutation *UnlockedAchievementMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *UnlockedAchievementCreate) SetLearnerID(v string) *UnlockedAchievementCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetAchievementKey sets the "achievement_key" field.
func (_c *UnlockedAchievementCreate) SetAchievementKey(v string) *UnlockedAchievementCreate {
	_c.mutation.SetAchievementKey(v)
	return _c
}

// SetUnlockedAt sets the "unlocked_at" field.
func (_c *UnlockedAchievementCreate) SetUnlockedAt(v time.Time) *UnlockedAchievementCreate {
	_c.mutation.SetUnlockedAt(v)
	return _c
}

// SetNillableUnlockedAt sets the "unlocked_at" field if the given value is not nil.
func (_c *UnlockedAchievementCreate) SetNillableUnlockedAt(v *time.Time) *UnlockedAchievementCreate {
	if v != nil {
		_c.SetUnlockedAt(*v)
	}
	return _c
}

// Mutation returns the UnlockedAchievementMutation object of the builder.
func (_c *UnlockedAchievementCreate) Mutation() *UnlockedAchievementMutation {
	return _c.mutation
}

// Save creates the UnlockedAchievement in the database.
func (_c *UnlockedAchievementCreate) Save(ctx context.Context) (*UnlockedAchievement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UnlockedAchievementCreate) SaveX(ctx context.Context) *UnlockedAchievement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnlockedAchievementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnlockedAchievementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UnlockedAchievementCreate) defaults() {
	if _, ok := _c.mutation.UnlockedAt(); !ok {
		v := unlockedachievement.DefaultUnlockedAt()
		_c.mutation.SetUnlockedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UnlockedAchievementCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "UnlockedAchievement.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := unlockedachievement.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "UnlockedAchievement.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AchievementKey(); !ok {
		return &ValidationError{Name: "achievement_key", err: errors.New(`ent: missing required field "UnlockedAchievement.achievement_key"`)}
	}
	if v, ok := _c.mutation.AchievementKey(); ok {
		if err := unlockedachievement.AchievementKeyValidator(v); err != nil {
			return &ValidationError{Name: "achievement_key", err: fmt.Errorf(`ent: validator failed for field "UnlockedAchievement.achievement_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnlockedAt(); !ok {
		return &ValidationError{Name: "unlocked_at", err: errors.New(`ent: missing required field "UnlockedAchievement.unlocked_at"`)}
	}
	return nil
}

func (_c *UnlockedAchievementCreate) sqlSave(ctx context.Context) (*UnlockedAchievement, error) {
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

func (_c *UnlockedAchievementCreate) createSpec() (*UnlockedAchievement, *sqlgraph.CreateSpec) {
	var (
		_node = &UnlockedAchievement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(unlockedachievement.Table, sqlgraph.NewFieldSpec(unlockedachievement.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(unlockedachievement.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.AchievementKey(); ok {
		_spec.SetField(unlockedachievement.FieldAchievementKey, field.TypeString, value)
		_node.AchievementKey = value
	}
	if value, ok := _c.mutation.UnlockedAt(); ok {
		_spec.SetField(unlockedachievement.FieldUnlockedAt, field.TypeTime, value)
		_node.UnlockedAt = value
	}
	return _node, _spec
}

// UnlockedAchievementCreateBulk is the builder for creating many UnlockedAchievement entities in bulk.
type UnlockedAchievementCreateBulk struct {
	config
	err      error
	builders []*UnlockedAchievementCreate
}

// Save creates the UnlockedAchievement entities in the database.
func (_c *UnlockedAchievementCreateBulk) Save(ctx context.Context) ([]*UnlockedAchievement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UnlockedAchievement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UnlockedAchievementMutation)
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
func (_c *UnlockedAchievementCreateBulk) SaveX(ctx context.Context) []*UnlockedAchievement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnlockedAchievementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnlockedAchievementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
