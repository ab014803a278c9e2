// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/flashcard"
)

// FlashcardCreate is the builder for creating a Flashcard entity.
type FlashcardCreate struct {
	config
	mutation *FlashcardMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *FlashcardCreate) SetLearnerID(v string) *FlashcardCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetFront sets the "front" field.
func (_c *FlashcardCreate) SetFront(v string) *FlashcardCreate {
	_c.mutation.SetFront(v)
	return _c
}

// SetBack sets the "back" field.
func (_c *FlashcardCreate) SetBack(v string) *FlashcardCreate {
	_c.mutation.SetBack(v)
	return _c
}

// SetRepetitions sets the "repetitions" field.
func (_c *FlashcardCreate) SetRepetitions(v int) *FlashcardCreate {
	_c.mutation.SetRepetitions(v)
	return _c
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_c *FlashcardCreate) SetNillableRepetitions(v *int) *FlashcardCreate {
	if v != nil {
		_c.SetRepetitions(*v)
	}
	return _c
}

// SetEasinessFactor sets the "easiness_factor" field.
func (_c *FlashcardCreate) SetEasinessFactor(v float64) *FlashcardCreate {
	_c.mutation.SetEasinessFactor(v)
	return _c
}

// SetNillableEasinessFactor sets the "easiness_factor" field if the given value is not nil.
func (_c *FlashcardCreate) SetNillableEasinessFactor(v *float64) *FlashcardCreate {
	if v != nil {
		_c.SetEasinessFactor(*v)
	}
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *FlashcardCreate) SetIntervalDays(v int) *FlashcardCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *FlashcardCreate) SetNillableIntervalDays(v *int) *FlashcardCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetNextReviewAt sets the "next_review_at" field.
func (_c *FlashcardCreate) SetNextReviewAt(v time.Time) *FlashcardCreate {
	_c.mutation.SetNextReviewAt(v)
	return _c
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_c *FlashcardCreate) SetNillableNextReviewAt(v *time.Time) *FlashcardCreate {
	if v != nil {
		_c.SetNextReviewAt(*v)
	}
	return _c
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_c *FlashcardCreate) SetLastReviewedAt(v time.Time) *FlashcardCreate {
	_c.mutation.SetLastReviewedAt(v)
	return _c
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_c *FlashcardCreate) SetNillableLastReviewedAt(v *time.Time) *FlashcardCreate {
	if v != nil {
		_c.SetLastReviewedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FlashcardCreate) SetCreatedAt(v time.Time) *FlashcardCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FlashcardCreate) SetNillableCreatedAt(v *time.Time) *FlashcardCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FlashcardCreate) SetID(v string) *FlashcardCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the FlashcardMutation object of the builder.
func (_c *FlashcardCreate) Mutation() *FlashcardMutation {
	return _c.mutation
}

// Save creates the Flashcard in the database.
func (_c *FlashcardCreate) Save(ctx context.Context) (*Flashcard, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FlashcardCreate) SaveX(ctx context.Context) *Flashcard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlashcardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlashcardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FlashcardCreate) defaults() {
	if _, ok := _c.mutation.Repetitions(); !ok {
		v := flashcard.DefaultRepetitions
		_c.mutation.SetRepetitions(v)
	}
	if _, ok := _c.mutation.EasinessFactor(); !ok {
		v := flashcard.DefaultEasinessFactor
		_c.mutation.SetEasinessFactor(v)
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := flashcard.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.NextReviewAt(); !ok {
		v := flashcard.DefaultNextReviewAt()
		_c.mutation.SetNextReviewAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := flashcard.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FlashcardCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "Flashcard.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := flashcard.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Flashcard.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Front(); !ok {
		return &ValidationError{Name: "front", err: errors.New(`ent: missing required field "Flashcard.front"`)}
	}
	if v, ok := _c.mutation.Front(); ok {
		if err := flashcard.FrontValidator(v); err != nil {
			return &ValidationError{Name: "front", err: fmt.Errorf(`ent: validator failed for field "Flashcard.front": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Back(); !ok {
		return &ValidationError{Name: "back", err: errors.New(`ent: missing required field "Flashcard.back"`)}
	}
	if v, ok := _c.mutation.Back(); ok {
		if err := flashcard.BackValidator(v); err != nil {
			return &ValidationError{Name: "back", err: fmt.Errorf(`ent: validator failed for field "Flashcard.back": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		return &ValidationError{Name: "repetitions", err: errors.New(`ent: missing required field "Flashcard.repetitions"`)}
	}
	if v, ok := _c.mutation.Repetitions(); ok {
		if err := flashcard.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "Flashcard.repetitions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EasinessFactor(); !ok {
		return &ValidationError{Name: "easiness_factor", err: errors.New(`ent: missing required field "Flashcard.easiness_factor"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "Flashcard.interval_days"`)}
	}
	if v, ok := _c.mutation.IntervalDays(); ok {
		if err := flashcard.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "Flashcard.interval_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NextReviewAt(); !ok {
		return &ValidationError{Name: "next_review_at", err: errors.New(`ent: missing required field "Flashcard.next_review_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Flashcard.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := flashcard.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Flashcard.id": %w`, err)}
		}
	}
	return nil
}

func (_c *FlashcardCreate) sqlSave(ctx context.Context) (*Flashcard, error) {
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
			return nil, fmt.Errorf("unexpected Flashcard.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FlashcardCreate) createSpec() (*Flashcard, *sqlgraph.CreateSpec) {
	var (
		_node = &Flashcard{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(flashcard.Table, sqlgraph.NewFieldSpec(flashcard.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(flashcard.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Front(); ok {
		_spec.SetField(flashcard.FieldFront, field.TypeString, value)
		_node.Front = value
	}
	if value, ok := _c.mutation.Back(); ok {
		_spec.SetField(flashcard.FieldBack, field.TypeString, value)
		_node.Back = value
	}
	if value, ok := _c.mutation.Repetitions(); ok {
		_spec.SetField(flashcard.FieldRepetitions, field.TypeInt, value)
		_node.Repetitions = value
	}
	if value, ok := _c.mutation.EasinessFactor(); ok {
		_spec.SetField(flashcard.FieldEasinessFactor, field.TypeFloat64, value)
		_node.EasinessFactor = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(flashcard.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.NextReviewAt(); ok {
		_spec.SetField(flashcard.FieldNextReviewAt, field.TypeTime, value)
		_node.NextReviewAt = value
	}
	if value, ok := _c.mutation.LastReviewedAt(); ok {
		_spec.SetField(flashcard.FieldLastReviewedAt, field.TypeTime, value)
		_node.LastReviewedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(flashcard.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// FlashcardCreateBulk is the builder for creating many Flashcard entities in bulk.
type FlashcardCreateBulk struct {
	config
	err      error
	builders []*FlashcardCreate
}

// Save creates the Flashcard entities in the database.
func (_c *FlashcardCreateBulk) Save(ctx context.Context) ([]*Flashcard, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Flashcard, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FlashcardMutation)
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
func (_c *FlashcardCreateBulk) SaveX(ctx context.Context) []*Flashcard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlashcardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlashcardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
