// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/predicate"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/unlockedachievement"
)

// UnlockedAchievementDelete is the builder for deleting a UnlockedAchievement entity.
type UnlockedAchievementDelete struct {
	config
	hooks    []Hook
	mutation *UnlockedAchievementMutation
}

// Where appends a list predicates to the UnlockedAchievementDelete builder.
func (_d *UnlockedAchievementDelete) Where(ps ...predicate.UnlockedAchievement) *UnlockedAchievementDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *UnlockedAchievementDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UnlockedAchievementDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *UnlockedAchievementDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(unlockedachievement.Table, sqlgraph.NewFieldSpec(unlockedachievement.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// UnlockedAchievementDeleteOne is the builder for deleting a single UnlockedAchievement entity.
type UnlockedAchievementDeleteOne struct {
	_d *UnlockedAchievementDelete
}

// Where appends a list predicates to the UnlockedAchievementDelete builder.
func (_d *UnlockedAchievementDeleteOne) Where(ps ...predicate.UnlockedAchievement) *UnlockedAchievementDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *UnlockedAchievementDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{unlockedachievement.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UnlockedAchievementDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
