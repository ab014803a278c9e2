// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/flashcard"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/predicate"
)

// FlashcardDelete is the builder for deleting a Flashcard entity.
type FlashcardDelete struct {
	config
	hooks    []Hook
	mutation *FlashcardMutation
}

// Where appends a list predicates to the FlashcardDelete builder.
func (_d *FlashcardDelete) Where(ps ...predicate.Flashcard) *FlashcardDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FlashcardDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FlashcardDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FlashcardDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(flashcard.Table, sqlgraph.NewFieldSpec(flashcard.FieldID, field.TypeString))
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

// FlashcardDeleteOne is the builder for deleting a single Flashcard entity.
type FlashcardDeleteOne struct {
	_d *FlashcardDelete
}

// Where appends a list predicates to the FlashcardDelete builder.
func (_d *FlashcardDeleteOne) Where(ps ...predicate.Flashcard) *FlashcardDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FlashcardDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{flashcard.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FlashcardDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
