// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/flashcard"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/predicate"
)

// FlashcardUpdate is the builder for updating Flashcard entities.
type FlashcardUpdate struct {
	config
	hooks    []Hook
	mutation *FlashcardMutation
}

// Where appends a list predicates to the FlashcardUpdate builder.
func (_u *FlashcardUpdate) Where(ps ...predicate.Flashcard) *FlashcardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFront sets the "front" field.
func (_u *FlashcardUpdate) SetFront(v string) *FlashcardUpdate {
	_u.mutation.SetFront(v)
	return _u
}

// SetNillableFront sets the "front" field if the given value is not nil.
func (_u *FlashcardUpdate) SetNillableFront(v *string) *FlashcardUpdate {
	if v != nil {
		_u.SetFront(*v)
	}
	return _u
}

// SetBack sets the "back" field.
func (_u *FlashcardUpdate) SetBack(v string) *FlashcardUpdate {
	_u.mutation.SetBack(v)
	return _u
}

// SetNillableBack sets the "back" field if the given value is not nil.
func (_u *FlashcardUpdate) SetNillableBack(v *string) *FlashcardUpdate {
	if v != nil {
		_u.SetBack(*v)
	}
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *FlashcardUpdate) SetRepetitions(v int) *FlashcardUpdate {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *FlashcardUpdate) SetNillableRepetitions(v *int) *FlashcardUpdate {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *FlashcardUpdate) AddRepetitions(v int) *FlashcardUpdate {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetEasinessFactor sets the "easiness_factor" field.
func (_u *FlashcardUpdate) SetEasinessFactor(v float64) *FlashcardUpdate {
	_u.mutation.ResetEasinessFactor()
	_u.mutation.SetEasinessFactor(v)
	return _u
}

// SetNillableEasinessFactor sets the "easiness_factor" field if the given value is not nil.
func (_u *FlashcardUpdate) SetNillableEasinessFactor(v *float64) *FlashcardUpdate {
	if v != nil {
		_u.SetEasinessFactor(*v)
	}
	return _u
}

// AddEasinessFactor adds value to the "easiness_factor" field.
func (_u *FlashcardUpdate) AddEasinessFactor(v float64) *FlashcardUpdate {
	_u.mutation.AddEasinessFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *FlashcardUpdate) SetIntervalDays(v int) *FlashcardUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *FlashcardUpdate) SetNillableIntervalDays(v *int) *FlashcardUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *FlashcardUpdate) AddIntervalDays(v int) *FlashcardUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *FlashcardUpdate) SetNextReviewAt(v time.Time) *FlashcardUpdate {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *FlashcardUpdate) SetNillableNextReviewAt(v *time.Time) *FlashcardUpdate {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *FlashcardUpdate) SetLastReviewedAt(v time.Time) *FlashcardUpdate {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *FlashcardUpdate) SetNillableLastReviewedAt(v *time.Time) *FlashcardUpdate {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *FlashcardUpdate) ClearLastReviewedAt() *FlashcardUpdate {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// Mutation returns the FlashcardMutation object of the builder.
func (_u *FlashcardUpdate) Mutation() *FlashcardMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FlashcardUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlashcardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FlashcardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlashcardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlashcardUpdate) check() error {
	if v, ok := _u.mutation.Front(); ok {
		if err := flashcard.FrontValidator(v); err != nil {
			return &ValidationError{Name: "front", err: fmt.Errorf(`ent: validator failed for field "Flashcard.front": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Back(); ok {
		if err := flashcard.BackValidator(v); err != nil {
			return &ValidationError{Name: "back", err: fmt.Errorf(`ent: validator failed for field "Flashcard.back": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Repetitions(); ok {
		if err := flashcard.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "Flashcard.repetitions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := flashcard.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "Flashcard.interval_days": %w`, err)}
		}
	}
	return nil
}

func (_u *FlashcardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flashcard.Table, flashcard.Columns, sqlgraph.NewFieldSpec(flashcard.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Front(); ok {
		_spec.SetField(flashcard.FieldFront, field.TypeString, value)
	}
	if value, ok := _u.mutation.Back(); ok {
		_spec.SetField(flashcard.FieldBack, field.TypeString, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(flashcard.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(flashcard.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EasinessFactor(); ok {
		_spec.SetField(flashcard.FieldEasinessFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEasinessFactor(); ok {
		_spec.AddField(flashcard.FieldEasinessFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(flashcard.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(flashcard.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(flashcard.FieldNextReviewAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(flashcard.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(flashcard.FieldLastReviewedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flashcard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FlashcardUpdateOne is the builder for updating a single Flashcard entity.
type FlashcardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FlashcardMutation
}

// SetFront sets the "front" field.
func (_u *FlashcardUpdateOne) SetFront(v string) *FlashcardUpdateOne {
	_u.mutation.SetFront(v)
	return _u
}

// SetNillableFront sets the "front" field if the given value is not nil.
func (_u *FlashcardUpdateOne) SetNillableFront(v *string) *FlashcardUpdateOne {
	if v != nil {
		_u.SetFront(*v)
	}
	return _u
}

// SetBack sets the "back" field.
func (_u *FlashcardUpdateOne) SetBack(v string) *FlashcardUpdateOne {
	_u.mutation.SetBack(v)
	return _u
}

// SetNillableBack sets the "back" field if the given value is not nil.
func (_u *FlashcardUpdateOne) SetNillableBack(v *string) *FlashcardUpdateOne {
	if v != nil {
		_u.SetBack(*v)
	}
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *FlashcardUpdateOne) SetRepetitions(v int) *FlashcardUpdateOne {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *FlashcardUpdateOne) SetNillableRepetitions(v *int) *FlashcardUpdateOne {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *FlashcardUpdateOne) AddRepetitions(v int) *FlashcardUpdateOne {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetEasinessFactor sets the "easiness_factor" field.
func (_u *FlashcardUpdateOne) SetEasinessFactor(v float64) *FlashcardUpdateOne {
	_u.mutation.ResetEasinessFactor()
	_u.mutation.SetEasinessFactor(v)
	return _u
}

// SetNillableEasinessFactor sets the "easiness_factor" field if the given value is not nil.
func (_u *FlashcardUpdateOne) SetNillableEasinessFactor(v *float64) *FlashcardUpdateOne {
	if v != nil {
		_u.SetEasinessFactor(*v)
	}
	return _u
}

// AddEasinessFactor adds value to the "easiness_factor" field.
func (_u *FlashcardUpdateOne) AddEasinessFactor(v float64) *FlashcardUpdateOne {
	_u.mutation.AddEasinessFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *FlashcardUpdateOne) SetIntervalDays(v int) *FlashcardUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *FlashcardUpdateOne) SetNillableIntervalDays(v *int) *FlashcardUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *FlashcardUpdateOne) AddIntervalDays(v int) *FlashcardUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *FlashcardUpdateOne) SetNextReviewAt(v time.Time) *FlashcardUpdateOne {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *FlashcardUpdateOne) SetNillableNextReviewAt(v *time.Time) *FlashcardUpdateOne {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *FlashcardUpdateOne) SetLastReviewedAt(v time.Time) *FlashcardUpdateOne {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *FlashcardUpdateOne) SetNillableLastReviewedAt(v *time.Time) *FlashcardUpdateOne {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *FlashcardUpdateOne) ClearLastReviewedAt() *FlashcardUpdateOne {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// Mutation returns the FlashcardMutation object of the builder.
func (_u *FlashcardUpdateOne) Mutation() *FlashcardMutation {
	return _u.mutation
}

// Where appends a list predicates to the FlashcardUpdate builder.
func (_u *FlashcardUpdateOne) Where(ps ...predicate.Flashcard) *FlashcardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FlashcardUpdateOne) Select(field string, fields ...string) *FlashcardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Flashcard entity.
func (_u *FlashcardUpdateOne) Save(ctx context.Context) (*Flashcard, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlashcardUpdateOne) SaveX(ctx context.Context) *Flashcard {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FlashcardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlashcardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlashcardUpdateOne) check() error {
	if v, ok := _u.mutation.Front(); ok {
		if err := flashcard.FrontValidator(v); err != nil {
			return &ValidationError{Name: "front", err: fmt.Errorf(`ent: validator failed for field "Flashcard.front": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Back(); ok {
		if err := flashcard.BackValidator(v); err != nil {
			return &ValidationError{Name: "back", err: fmt.Errorf(`ent: validator failed for field "Flashcard.back": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Repetitions(); ok {
		if err := flashcard.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "Flashcard.repetitions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := flashcard.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "Flashcard.interval_days": %w`, err)}
		}
	}
	return nil
}

func (_u *FlashcardUpdateOne) sqlSave(ctx context.Context) (_node *Flashcard, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flashcard.Table, flashcard.Columns, sqlgraph.NewFieldSpec(flashcard.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Flashcard.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, flashcard.FieldID)
		for _, f := range fields {
			if !flashcard.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != flashcard.FieldID {
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
	if value, ok := _u.mutation.Front(); ok {
		_spec.SetField(flashcard.FieldFront, field.TypeString, value)
	}
	if value, ok := _u.mutation.Back(); ok {
		_spec.SetField(flashcard.FieldBack, field.TypeString, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(flashcard.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(flashcard.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EasinessFactor(); ok {
		_spec.SetField(flashcard.FieldEasinessFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEasinessFactor(); ok {
		_spec.AddField(flashcard.FieldEasinessFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(flashcard.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(flashcard.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(flashcard.FieldNextReviewAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(flashcard.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(flashcard.FieldLastReviewedAt, field.TypeTime)
	}
	_node = &Flashcard{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flashcard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
