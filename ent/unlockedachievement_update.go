// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/predicate"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/unlockedachievement"
)

// UnlockedAchievementUpdate is the builder for updating UnlockedAchievement entities.
type UnlockedAchievementUpdate struct {
	config
	hooks    []Hook
	mutation *UnlockedAchievementMutation
}

// Where appends a list predicates to the UnlockedAchievementUpdate builder.
func (_u *UnlockedAchievementUpdate) Where(ps ...predicate.UnlockedAchievement) *UnlockedAchievementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the UnlockedAchievementMutation object of the builder.
func (_u *UnlockedAchievementUpdate) Mutation() *UnlockedAchievementMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UnlockedAchievementUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnlockedAchievementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UnlockedAchievementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnlockedAchievementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UnlockedAchievementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(unlockedachievement.Table, unlockedachievement.Columns, sqlgraph.NewFieldSpec(unlockedachievement.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unlockedachievement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UnlockedAchievementUpdateOne is the builder for updating a single UnlockedAchievement entity.
type UnlockedAchievementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UnlockedAchievementMutation
}

// Mutation returns the UnlockedAchievementMutation object of the builder.
func (_u *UnlockedAchievementUpdateOne) Mutation() *UnlockedAchievementMutation {
	return _u.mutation
}

// Where appends a list predicates to the UnlockedAchievementUpdate builder.
func (_u *UnlockedAchievementUpdateOne) Where(ps ...predicate.UnlockedAchievement) *UnlockedAchievementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UnlockedAchievementUpdateOne) Select(field string, fields ...string) *UnlockedAchievementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UnlockedAchievement entity.
func (_u *UnlockedAchievementUpdateOne) Save(ctx context.Context) (*UnlockedAchievement, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnlockedAchievementUpdateOne) SaveX(ctx context.Context) *UnlockedAchievement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UnlockedAchievementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnlockedAchievementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UnlockedAchievementUpdateOne) sqlSave(ctx context.Context) (_node *UnlockedAchievement, err error) {
	_spec := sqlgraph.NewUpdateSpec(unlockedachievement.Table, unlockedachievement.Columns, sqlgraph.NewFieldSpec(unlockedachievement.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UnlockedAchievement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, unlockedachievement.FieldID)
		for _, f := range fields {
			if !unlockedachievement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != unlockedachievement.FieldID {
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
	_node = &UnlockedAchievement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unlockedachievement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
