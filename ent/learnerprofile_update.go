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
	"github.com/N1KH1LT0X1N/StudyFlux/ent/learnerprofile"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/predicate"
)

// LearnerProfileUpdate is the builder for updating LearnerProfile entities.
type LearnerProfileUpdate struct {
	config
	hooks    []Hook
	mutation *LearnerProfileMutation
}

// Where appends a list predicates to the LearnerProfileUpdate builder.
func (_u *LearnerProfileUpdate) Where(ps ...predicate.LearnerProfile) *LearnerProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *LearnerProfileUpdate) SetName(v string) *LearnerProfileUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LearnerProfileUpdate) SetNillableName(v *string) *LearnerProfileUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *LearnerProfileUpdate) SetPoints(v int) *LearnerProfileUpdate {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *LearnerProfileUpdate) SetNillablePoints(v *int) *LearnerProfileUpdate {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *LearnerProfileUpdate) AddPoints(v int) *LearnerProfileUpdate {
	_u.mutation.AddPoints(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *LearnerProfileUpdate) SetLevel(v int) *LearnerProfileUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *LearnerProfileUpdate) SetNillableLevel(v *int) *LearnerProfileUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *LearnerProfileUpdate) AddLevel(v int) *LearnerProfileUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *LearnerProfileUpdate) SetStreak(v int) *LearnerProfileUpdate {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *LearnerProfileUpdate) SetNillableStreak(v *int) *LearnerProfileUpdate {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *LearnerProfileUpdate) AddStreak(v int) *LearnerProfileUpdate {
	_u.mutation.AddStreak(v)
	return _u
}

// SetLastActiveAt sets the "last_active_at" field.
func (_u *LearnerProfileUpdate) SetLastActiveAt(v time.Time) *LearnerProfileUpdate {
	_u.mutation.SetLastActiveAt(v)
	return _u
}

// SetNillableLastActiveAt sets the "last_active_at" field if the given value is not nil.
func (_u *LearnerProfileUpdate) SetNillableLastActiveAt(v *time.Time) *LearnerProfileUpdate {
	if v != nil {
		_u.SetLastActiveAt(*v)
	}
	return _u
}

// ClearLastActiveAt clears the value of the "last_active_at" field.
func (_u *LearnerProfileUpdate) ClearLastActiveAt() *LearnerProfileUpdate {
	_u.mutation.ClearLastActiveAt()
	return _u
}

// Mutation returns the LearnerProfileMutation object of the builder.
func (_u *LearnerProfileUpdate) Mutation() *LearnerProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearnerProfileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearnerProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnerProfileUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := learnerprofile.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "LearnerProfile.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Points(); ok {
		if err := learnerprofile.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "LearnerProfile.points": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := learnerprofile.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "LearnerProfile.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Streak(); ok {
		if err := learnerprofile.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "LearnerProfile.streak": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnerProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learnerprofile.Table, learnerprofile.Columns, sqlgraph.NewFieldSpec(learnerprofile.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(learnerprofile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(learnerprofile.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(learnerprofile.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(learnerprofile.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(learnerprofile.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(learnerprofile.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(learnerprofile.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastActiveAt(); ok {
		_spec.SetField(learnerprofile.FieldLastActiveAt, field.TypeTime, value)
	}
	if _u.mutation.LastActiveAtCleared() {
		_spec.ClearField(learnerprofile.FieldLastActiveAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnerprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearnerProfileUpdateOne is the builder for updating a single LearnerProfile entity.
type LearnerProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearnerProfileMutation
}

// SetName sets the "name" field.
func (_u *LearnerProfileUpdateOne) SetName(v string) *LearnerProfileUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LearnerProfileUpdateOne) SetNillableName(v *string) *LearnerProfileUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *LearnerProfileUpdateOne) SetPoints(v int) *LearnerProfileUpdateOne {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *LearnerProfileUpdateOne) SetNillablePoints(v *int) *LearnerProfileUpdateOne {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *LearnerProfileUpdateOne) AddPoints(v int) *LearnerProfileUpdateOne {
	_u.mutation.AddPoints(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *LearnerProfileUpdateOne) SetLevel(v int) *LearnerProfileUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *LearnerProfileUpdateOne) SetNillableLevel(v *int) *LearnerProfileUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *LearnerProfileUpdateOne) AddLevel(v int) *LearnerProfileUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *LearnerProfileUpdateOne) SetStreak(v int) *LearnerProfileUpdateOne {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *LearnerProfileUpdateOne) SetNillableStreak(v *int) *LearnerProfileUpdateOne {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *LearnerProfileUpdateOne) AddStreak(v int) *LearnerProfileUpdateOne {
	_u.mutation.AddStreak(v)
	return _u
}

// SetLastActiveAt sets the "last_active_at" field.
func (_u *LearnerProfileUpdateOne) SetLastActiveAt(v time.Time) *LearnerProfileUpdateOne {
	_u.mutation.SetLastActiveAt(v)
	return _u
}

// SetNillableLastActiveAt sets the "last_active_at" field if the given value is not nil.
func (_u *LearnerProfileUpdateOne) SetNillableLastActiveAt(v *time.Time) *LearnerProfileUpdateOne {
	if v != nil {
		_u.SetLastActiveAt(*v)
	}
	return _u
}

// ClearLastActiveAt clears the value of the "last_active_at" field.
func (_u *LearnerProfileUpdateOne) ClearLastActiveAt() *LearnerProfileUpdateOne {
	_u.mutation.ClearLastActiveAt()
	return _u
}

// Mutation returns the LearnerProfileMutation object of the builder.
func (_u *LearnerProfileUpdateOne) Mutation() *LearnerProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearnerProfileUpdate builder.
func (_u *LearnerProfileUpdateOne) Where(ps ...predicate.LearnerProfile) *LearnerProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearnerProfileUpdateOne) Select(field string, fields ...string) *LearnerProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearnerProfile entity.
func (_u *LearnerProfileUpdateOne) Save(ctx context.Context) (*LearnerProfile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerProfileUpdateOne) SaveX(ctx context.Context) *LearnerProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearnerProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnerProfileUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := learnerprofile.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "LearnerProfile.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Points(); ok {
		if err := learnerprofile.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "LearnerProfile.points": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := learnerprofile.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "LearnerProfile.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Streak(); ok {
		if err := learnerprofile.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "LearnerProfile.streak": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnerProfileUpdateOne) sqlSave(ctx context.Context) (_node *LearnerProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learnerprofile.Table, learnerprofile.Columns, sqlgraph.NewFieldSpec(learnerprofile.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearnerProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learnerprofile.FieldID)
		for _, f := range fields {
			if !learnerprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learnerprofile.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(learnerprofile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(learnerprofile.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(learnerprofile.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(learnerprofile.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(learnerprofile.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(learnerprofile.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(learnerprofile.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastActiveAt(); ok {
		_spec.SetField(learnerprofile.FieldLastActiveAt, field.TypeTime, value)
	}
	if _u.mutation.LastActiveAtCleared() {
		_spec.ClearField(learnerprofile.FieldLastActiveAt, field.TypeTime)
	}
	_node = &LearnerProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnerprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
