// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/flashcard"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/learnerprofile"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/pointsentry"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/predicate"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/unlockedachievement"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeFlashcard           = "Flashcard"
	TypeLearnerProfile      = "LearnerProfile"
	TypePointsEntry         = "PointsEntry"
	TypeUnlockedAchievement = "UnlockedAchievement"
)

// FlashcardMutation represents an operation that mutates the Flashcard nodes in the graph.
type FlashcardMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	learner_id         *string
	front              *string
	back               *string
	repetitions        *int
	addrepetitions     *int
	easiness_factor    *float64
	addeasiness_factor *float64
	interval_days      *int
	addinterval_days   *int
	next_review_at     *time.Time
	last_reviewed_at   *time.Time
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Flashcard, error)
	predicates         []predicate.Flashcard
}

var _ ent.Mutation = (*FlashcardMutation)(nil)

// flashcardOption allows management of the mutation configuration using functional options.
type flashcardOption func(*FlashcardMutation)

// newFlashcardMutation creates new mutation for the Flashcard entity.
func newFlashcardMutation(c config, op Op, opts ...flashcardOption) *FlashcardMutation {
	m := &FlashcardMutation{
		config:        c,
		op:            op,
		typ:           TypeFlashcard,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFlashcardID sets the ID field of the mutation.
func withFlashcardID(id string) flashcardOption {
	return func(m *FlashcardMutation) {
		var (
			err   error
			once  sync.Once
			value *Flashcard
		)
		m.oldValue = func(ctx context.Context) (*Flashcard, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Flashcard.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFlashcard sets the old Flashcard of the mutation.
func withFlashcard(node *Flashcard) flashcardOption {
	return func(m *FlashcardMutation) {
		m.oldValue = func(context.Context) (*Flashcard, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FlashcardMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FlashcardMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Flashcard entities.
func (m *FlashcardMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FlashcardMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FlashcardMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Flashcard.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *FlashcardMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *FlashcardMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the Flashcard entity.
// If the Flashcard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlashcardMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *FlashcardMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetFront sets the "front" field.
func (m *FlashcardMutation) SetFront(s string) {
	m.front = &s
}

// Front returns the value of the "front" field in the mutation.
func (m *FlashcardMutation) Front() (r string, exists bool) {
	v := m.front
	if v == nil {
		return
	}
	return *v, true
}

// OldFront returns the old "front" field's value of the Flashcard entity.
// If the Flashcard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlashcardMutation) OldFront(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFront is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFront requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFront: %w", err)
	}
	return oldValue.Front, nil
}

// ResetFront resets all changes to the "front" field.
func (m *FlashcardMutation) ResetFront() {
	m.front = nil
}

// SetBack sets the "back" field.
func (m *FlashcardMutation) SetBack(s string) {
	m.back = &s
}

// Back returns the value of the "back" field in the mutation.
func (m *FlashcardMutation) Back() (r string, exists bool) {
	v := m.back
	if v == nil {
		return
	}
	return *v, true
}

// OldBack returns the old "back" field's value of the Flashcard entity.
// If the Flashcard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlashcardMutation) OldBack(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBack: %w", err)
	}
	return oldValue.Back, nil
}

// ResetBack resets all changes to the "back" field.
func (m *FlashcardMutation) ResetBack() {
	m.back = nil
}

// SetRepetitions sets the "repetitions" field.
func (m *FlashcardMutation) SetRepetitions(i int) {
	m.repetitions = &i
	m.addrepetitions = nil
}

// Repetitions returns the value of the "repetitions" field in the mutation.
func (m *FlashcardMutation) Repetitions() (r int, exists bool) {
	v := m.repetitions
	if v == nil {
		return
	}
	return *v, true
}

// OldRepetitions returns the old "repetitions" field's value of the Flashcard entity.
// If the Flashcard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlashcardMutation) OldRepetitions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepetitions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepetitions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepetitions: %w", err)
	}
	return oldValue.Repetitions, nil
}

// AddRepetitions adds i to the "repetitions" field.
func (m *FlashcardMutation) AddRepetitions(i int) {
	if m.addrepetitions != nil {
		*m.addrepetitions += i
	} else {
		m.addrepetitions = &i
	}
}

// AddedRepetitions returns the value that was added to the "repetitions" field in this mutation.
func (m *FlashcardMutation) AddedRepetitions() (r int, exists bool) {
	v := m.addrepetitions
	if v == nil {
		return
	}
	return *v, true
}

// ResetRepetitions resets all changes to the "repetitions" field.
func (m *FlashcardMutation) ResetRepetitions() {
	m.repetitions = nil
	m.addrepetitions = nil
}

// SetEasinessFactor sets the "easiness_factor" field.
func (m *FlashcardMutation) SetEasinessFactor(f float64) {
	m.easiness_factor = &f
	m.addeasiness_factor = nil
}

// EasinessFactor returns the value of the "easiness_factor" field in the mutation.
func (m *FlashcardMutation) EasinessFactor() (r float64, exists bool) {
	v := m.easiness_factor
	if v == nil {
		return
	}
	return *v, true
}

// OldEasinessFactor returns the old "easiness_factor" field's value of the Flashcard entity.
// If the Flashcard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlashcardMutation) OldEasinessFactor(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEasinessFactor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEasinessFactor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEasinessFactor: %w", err)
	}
	return oldValue.EasinessFactor, nil
}

// AddEasinessFactor adds f to the "easiness_factor" field.
func (m *FlashcardMutation) AddEasinessFactor(f float64) {
	if m.addeasiness_factor != nil {
		*m.addeasiness_factor += f
	} else {
		m.addeasiness_factor = &f
	}
}

// AddedEasinessFactor returns the value that was added to the "easiness_factor" field in this mutation.
func (m *FlashcardMutation) AddedEasinessFactor() (r float64, exists bool) {
	v := m.addeasiness_factor
	if v == nil {
		return
	}
	return *v, true
}

// ResetEasinessFactor resets all changes to the "easiness_factor" field.
func (m *FlashcardMutation) ResetEasinessFactor() {
	m.easiness_factor = nil
	m.addeasiness_factor = nil
}

// SetIntervalDays sets the "interval_days" field.
func (m *FlashcardMutation) SetIntervalDays(i int) {
	m.interval_days = &i
	m.addinterval_days = nil
}

// IntervalDays returns the value of the "interval_days" field in the mutation.
func (m *FlashcardMutation) IntervalDays() (r int, exists bool) {
	v := m.interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalDays returns the old "interval_days" field's value of the Flashcard entity.
// If the Flashcard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlashcardMutation) OldIntervalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalDays: %w", err)
	}
	return oldValue.IntervalDays, nil
}

// AddIntervalDays adds i to the "interval_days" field.
func (m *FlashcardMutation) AddIntervalDays(i int) {
	if m.addinterval_days != nil {
		*m.addinterval_days += i
	} else {
		m.addinterval_days = &i
	}
}

// AddedIntervalDays returns the value that was added to the "interval_days" field in this mutation.
func (m *FlashcardMutation) AddedIntervalDays() (r int, exists bool) {
	v := m.addinterval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalDays resets all changes to the "interval_days" field.
func (m *FlashcardMutation) ResetIntervalDays() {
	m.interval_days = nil
	m.addinterval_days = nil
}

// SetNextReviewAt sets the "next_review_at" field.
func (m *FlashcardMutation) SetNextReviewAt(t time.Time) {
	m.next_review_at = &t
}

// NextReviewAt returns the value of the "next_review_at" field in the mutation.
func (m *FlashcardMutation) NextReviewAt() (r time.Time, exists bool) {
	v := m.next_review_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReviewAt returns the old "next_review_at" field's value of the Flashcard entity.
// If the Flashcard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlashcardMutation) OldNextReviewAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReviewAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReviewAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReviewAt: %w", err)
	}
	return oldValue.NextReviewAt, nil
}

// ResetNextReviewAt resets all changes to the "next_review_at" field.
func (m *FlashcardMutation) ResetNextReviewAt() {
	m.next_review_at = nil
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (m *FlashcardMutation) SetLastReviewedAt(t time.Time) {
	m.last_reviewed_at = &t
}

// LastReviewedAt returns the value of the "last_reviewed_at" field in the mutation.
func (m *FlashcardMutation) LastReviewedAt() (r time.Time, exists bool) {
	v := m.last_reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReviewedAt returns the old "last_reviewed_at" field's value of the Flashcard entity.
// If the Flashcard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlashcardMutation) OldLastReviewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReviewedAt: %w", err)
	}
	return oldValue.LastReviewedAt, nil
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (m *FlashcardMutation) ClearLastReviewedAt() {
	m.last_reviewed_at = nil
	m.clearedFields[flashcard.FieldLastReviewedAt] = struct{}{}
}

// LastReviewedAtCleared returns if the "last_reviewed_at" field was cleared in this mutation.
func (m *FlashcardMutation) LastReviewedAtCleared() bool {
	_, ok := m.clearedFields[flashcard.FieldLastReviewedAt]
	return ok
}

// ResetLastReviewedAt resets all changes to the "last_reviewed_at" field.
func (m *FlashcardMutation) ResetLastReviewedAt() {
	m.last_reviewed_at = nil
	delete(m.clearedFields, flashcard.FieldLastReviewedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *FlashcardMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FlashcardMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Flashcard entity.
// If the Flashcard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlashcardMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FlashcardMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the FlashcardMutation builder.
func (m *FlashcardMutation) Where(ps ...predicate.Flashcard) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FlashcardMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FlashcardMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Flashcard, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FlashcardMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FlashcardMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Flashcard).
func (m *FlashcardMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FlashcardMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.learner_id != nil {
		fields = append(fields, flashcard.FieldLearnerID)
	}
	if m.front != nil {
		fields = append(fields, flashcard.FieldFront)
	}
	if m.back != nil {
		fields = append(fields, flashcard.FieldBack)
	}
	if m.repetitions != nil {
		fields = append(fields, flashcard.FieldRepetitions)
	}
	if m.easiness_factor != nil {
		fields = append(fields, flashcard.FieldEasinessFactor)
	}
	if m.interval_days != nil {
		fields = append(fields, flashcard.FieldIntervalDays)
	}
	if m.next_review_at != nil {
		fields = append(fields, flashcard.FieldNextReviewAt)
	}
	if m.last_reviewed_at != nil {
		fields = append(fields, flashcard.FieldLastReviewedAt)
	}
	if m.created_at != nil {
		fields = append(fields, flashcard.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FlashcardMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case flashcard.FieldLearnerID:
		return m.LearnerID()
	case flashcard.FieldFront:
		return m.Front()
	case flashcard.FieldBack:
		return m.Back()
	case flashcard.FieldRepetitions:
		return m.Repetitions()
	case flashcard.FieldEasinessFactor:
		return m.EasinessFactor()
	case flashcard.FieldIntervalDays:
		return m.IntervalDays()
	case flashcard.FieldNextReviewAt:
		return m.NextReviewAt()
	case flashcard.FieldLastReviewedAt:
		return m.LastReviewedAt()
	case flashcard.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FlashcardMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case flashcard.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case flashcard.FieldFront:
		return m.OldFront(ctx)
	case flashcard.FieldBack:
		return m.OldBack(ctx)
	case flashcard.FieldRepetitions:
		return m.OldRepetitions(ctx)
	case flashcard.FieldEasinessFactor:
		return m.OldEasinessFactor(ctx)
	case flashcard.FieldIntervalDays:
		return m.OldIntervalDays(ctx)
	case flashcard.FieldNextReviewAt:
		return m.OldNextReviewAt(ctx)
	case flashcard.FieldLastReviewedAt:
		return m.OldLastReviewedAt(ctx)
	case flashcard.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Flashcard field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FlashcardMutation) SetField(name string, value ent.Value) error {
	switch name {
	case flashcard.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case flashcard.FieldFront:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFront(v)
		return nil
	case flashcard.FieldBack:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBack(v)
		return nil
	case flashcard.FieldRepetitions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepetitions(v)
		return nil
	case flashcard.FieldEasinessFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEasinessFactor(v)
		return nil
	case flashcard.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalDays(v)
		return nil
	case flashcard.FieldNextReviewAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReviewAt(v)
		return nil
	case flashcard.FieldLastReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReviewedAt(v)
		return nil
	case flashcard.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Flashcard field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FlashcardMutation) AddedFields() []string {
	var fields []string
	if m.addrepetitions != nil {
		fields = append(fields, flashcard.FieldRepetitions)
	}
	if m.addeasiness_factor != nil {
		fields = append(fields, flashcard.FieldEasinessFactor)
	}
	if m.addinterval_days != nil {
		fields = append(fields, flashcard.FieldIntervalDays)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FlashcardMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case flashcard.FieldRepetitions:
		return m.AddedRepetitions()
	case flashcard.FieldEasinessFactor:
		return m.AddedEasinessFactor()
	case flashcard.FieldIntervalDays:
		return m.AddedIntervalDays()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FlashcardMutation) AddField(name string, value ent.Value) error {
	switch name {
	case flashcard.FieldRepetitions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRepetitions(v)
		return nil
	case flashcard.FieldEasinessFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEasinessFactor(v)
		return nil
	case flashcard.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalDays(v)
		return nil
	}
	return fmt.Errorf("unknown Flashcard numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FlashcardMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(flashcard.FieldLastReviewedAt) {
		fields = append(fields, flashcard.FieldLastReviewedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FlashcardMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FlashcardMutation) ClearField(name string) error {
	switch name {
	case flashcard.FieldLastReviewedAt:
		m.ClearLastReviewedAt()
		return nil
	}
	return fmt.Errorf("unknown Flashcard nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FlashcardMutation) ResetField(name string) error {
	switch name {
	case flashcard.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case flashcard.FieldFront:
		m.ResetFront()
		return nil
	case flashcard.FieldBack:
		m.ResetBack()
		return nil
	case flashcard.FieldRepetitions:
		m.ResetRepetitions()
		return nil
	case flashcard.FieldEasinessFactor:
		m.ResetEasinessFactor()
		return nil
	case flashcard.FieldIntervalDays:
		m.ResetIntervalDays()
		return nil
	case flashcard.FieldNextReviewAt:
		m.ResetNextReviewAt()
		return nil
	case flashcard.FieldLastReviewedAt:
		m.ResetLastReviewedAt()
		return nil
	case flashcard.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Flashcard field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FlashcardMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FlashcardMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FlashcardMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FlashcardMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FlashcardMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FlashcardMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FlashcardMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Flashcard unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FlashcardMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Flashcard edge %s", name)
}

// LearnerProfileMutation represents an operation that mutates the LearnerProfile nodes in the graph.
type LearnerProfileMutation struct {
	config
	op             Op
	typ            string
	id             *string
	name           *string
	points         *int
	addpoints      *int
	level          *int
	addlevel       *int
	streak         *int
	addstreak      *int
	last_active_at *time.Time
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*LearnerProfile, error)
	predicates     []predicate.LearnerProfile
}

var _ ent.Mutation = (*LearnerProfileMutation)(nil)

// learnerprofileOption allows management of the mutation configuration using functional options.
type learnerprofileOption func(*LearnerProfileMutation)

// newLearnerProfileMutation creates new mutation for the LearnerProfile entity.
func newLearnerProfileMutation(c config, op Op, opts ...learnerprofileOption) *LearnerProfileMutation {
	m := &LearnerProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeLearnerProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearnerProfileID sets the ID field of the mutation.
func withLearnerProfileID(id string) learnerprofileOption {
	return func(m *LearnerProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *LearnerProfile
		)
		m.oldValue = func(ctx context.Context) (*LearnerProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearnerProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearnerProfile sets the old LearnerProfile of the mutation.
func withLearnerProfile(node *LearnerProfile) learnerprofileOption {
	return func(m *LearnerProfileMutation) {
		m.oldValue = func(context.Context) (*LearnerProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearnerProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearnerProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LearnerProfile entities.
func (m *LearnerProfileMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearnerProfileMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearnerProfileMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearnerProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *LearnerProfileMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *LearnerProfileMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the LearnerProfile entity.
// If the LearnerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProfileMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *LearnerProfileMutation) ResetName() {
	m.name = nil
}

// SetPoints sets the "points" field.
func (m *LearnerProfileMutation) SetPoints(i int) {
	m.points = &i
	m.addpoints = nil
}

// Points returns the value of the "points" field in the mutation.
func (m *LearnerProfileMutation) Points() (r int, exists bool) {
	v := m.points
	if v == nil {
		return
	}
	return *v, true
}

// OldPoints returns the old "points" field's value of the LearnerProfile entity.
// If the LearnerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProfileMutation) OldPoints(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPoints: %w", err)
	}
	return oldValue.Points, nil
}

// AddPoints adds i to the "points" field.
func (m *LearnerProfileMutation) AddPoints(i int) {
	if m.addpoints != nil {
		*m.addpoints += i
	} else {
		m.addpoints = &i
	}
}

// AddedPoints returns the value that was added to the "points" field in this mutation.
func (m *LearnerProfileMutation) AddedPoints() (r int, exists bool) {
	v := m.addpoints
	if v == nil {
		return
	}
	return *v, true
}

// ResetPoints resets all changes to the "points" field.
func (m *LearnerProfileMutation) ResetPoints() {
	m.points = nil
	m.addpoints = nil
}

// SetLevel sets the "level" field.
func (m *LearnerProfileMutation) SetLevel(i int) {
	m.level = &i
	m.addlevel = nil
}

// Level returns the value of the "level" field in the mutation.
func (m *LearnerProfileMutation) Level() (r int, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the LearnerProfile entity.
// If the LearnerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProfileMutation) OldLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// AddLevel adds i to the "level" field.
func (m *LearnerProfileMutation) AddLevel(i int) {
	if m.addlevel != nil {
		*m.addlevel += i
	} else {
		m.addlevel = &i
	}
}

// AddedLevel returns the value that was added to the "level" field in this mutation.
func (m *LearnerProfileMutation) AddedLevel() (r int, exists bool) {
	v := m.addlevel
	if v == nil {
		return
	}
	return *v, true
}

// ResetLevel resets all changes to the "level" field.
func (m *LearnerProfileMutation) ResetLevel() {
	m.level = nil
	m.addlevel = nil
}

// SetStreak sets the "streak" field.
func (m *LearnerProfileMutation) SetStreak(i int) {
	m.streak = &i
	m.addstreak = nil
}

// Streak returns the value of the "streak" field in the mutation.
func (m *LearnerProfileMutation) Streak() (r int, exists bool) {
	v := m.streak
	if v == nil {
		return
	}
	return *v, true
}

// OldStreak returns the old "streak" field's value of the LearnerProfile entity.
// If the LearnerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProfileMutation) OldStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreak: %w", err)
	}
	return oldValue.Streak, nil
}

// AddStreak adds i to the "streak" field.
func (m *LearnerProfileMutation) AddStreak(i int) {
	if m.addstreak != nil {
		*m.addstreak += i
	} else {
		m.addstreak = &i
	}
}

// AddedStreak returns the value that was added to the "streak" field in this mutation.
func (m *LearnerProfileMutation) AddedStreak() (r int, exists bool) {
	v := m.addstreak
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreak resets all changes to the "streak" field.
func (m *LearnerProfileMutation) ResetStreak() {
	m.streak = nil
	m.addstreak = nil
}

// SetLastActiveAt sets the "last_active_at" field.
func (m *LearnerProfileMutation) SetLastActiveAt(t time.Time) {
	m.last_active_at = &t
}

// LastActiveAt returns the value of the "last_active_at" field in the mutation.
func (m *LearnerProfileMutation) LastActiveAt() (r time.Time, exists bool) {
	v := m.last_active_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActiveAt returns the old "last_active_at" field's value of the LearnerProfile entity.
// If the LearnerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProfileMutation) OldLastActiveAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActiveAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActiveAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActiveAt: %w", err)
	}
	return oldValue.LastActiveAt, nil
}

// ClearLastActiveAt clears the value of the "last_active_at" field.
func (m *LearnerProfileMutation) ClearLastActiveAt() {
	m.last_active_at = nil
	m.clearedFields[learnerprofile.FieldLastActiveAt] = struct{}{}
}

// LastActiveAtCleared returns if the "last_active_at" field was cleared in this mutation.
func (m *LearnerProfileMutation) LastActiveAtCleared() bool {
	_, ok := m.clearedFields[learnerprofile.FieldLastActiveAt]
	return ok
}

// ResetLastActiveAt resets all changes to the "last_active_at" field.
func (m *LearnerProfileMutation) ResetLastActiveAt() {
	m.last_active_at = nil
	delete(m.clearedFields, learnerprofile.FieldLastActiveAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *LearnerProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LearnerProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LearnerProfile entity.
// If the LearnerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LearnerProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LearnerProfileMutation builder.
func (m *LearnerProfileMutation) Where(ps ...predicate.LearnerProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearnerProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearnerProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearnerProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearnerProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearnerProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearnerProfile).
func (m *LearnerProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearnerProfileMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, learnerprofile.FieldName)
	}
	if m.points != nil {
		fields = append(fields, learnerprofile.FieldPoints)
	}
	if m.level != nil {
		fields = append(fields, learnerprofile.FieldLevel)
	}
	if m.streak != nil {
		fields = append(fields, learnerprofile.FieldStreak)
	}
	if m.last_active_at != nil {
		fields = append(fields, learnerprofile.FieldLastActiveAt)
	}
	if m.created_at != nil {
		fields = append(fields, learnerprofile.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearnerProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learnerprofile.FieldName:
		return m.Name()
	case learnerprofile.FieldPoints:
		return m.Points()
	case learnerprofile.FieldLevel:
		return m.Level()
	case learnerprofile.FieldStreak:
		return m.Streak()
	case learnerprofile.FieldLastActiveAt:
		return m.LastActiveAt()
	case learnerprofile.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearnerProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learnerprofile.FieldName:
		return m.OldName(ctx)
	case learnerprofile.FieldPoints:
		return m.OldPoints(ctx)
	case learnerprofile.FieldLevel:
		return m.OldLevel(ctx)
	case learnerprofile.FieldStreak:
		return m.OldStreak(ctx)
	case learnerprofile.FieldLastActiveAt:
		return m.OldLastActiveAt(ctx)
	case learnerprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LearnerProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learnerprofile.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case learnerprofile.FieldPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPoints(v)
		return nil
	case learnerprofile.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case learnerprofile.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreak(v)
		return nil
	case learnerprofile.FieldLastActiveAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActiveAt(v)
		return nil
	case learnerprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LearnerProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearnerProfileMutation) AddedFields() []string {
	var fields []string
	if m.addpoints != nil {
		fields = append(fields, learnerprofile.FieldPoints)
	}
	if m.addlevel != nil {
		fields = append(fields, learnerprofile.FieldLevel)
	}
	if m.addstreak != nil {
		fields = append(fields, learnerprofile.FieldStreak)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearnerProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learnerprofile.FieldPoints:
		return m.AddedPoints()
	case learnerprofile.FieldLevel:
		return m.AddedLevel()
	case learnerprofile.FieldStreak:
		return m.AddedStreak()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learnerprofile.FieldPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPoints(v)
		return nil
	case learnerprofile.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLevel(v)
		return nil
	case learnerprofile.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreak(v)
		return nil
	}
	return fmt.Errorf("unknown LearnerProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearnerProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(learnerprofile.FieldLastActiveAt) {
		fields = append(fields, learnerprofile.FieldLastActiveAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearnerProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearnerProfileMutation) ClearField(name string) error {
	switch name {
	case learnerprofile.FieldLastActiveAt:
		m.ClearLastActiveAt()
		return nil
	}
	return fmt.Errorf("unknown LearnerProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearnerProfileMutation) ResetField(name string) error {
	switch name {
	case learnerprofile.FieldName:
		m.ResetName()
		return nil
	case learnerprofile.FieldPoints:
		m.ResetPoints()
		return nil
	case learnerprofile.FieldLevel:
		m.ResetLevel()
		return nil
	case learnerprofile.FieldStreak:
		m.ResetStreak()
		return nil
	case learnerprofile.FieldLastActiveAt:
		m.ResetLastActiveAt()
		return nil
	case learnerprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LearnerProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearnerProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearnerProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearnerProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearnerProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearnerProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearnerProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearnerProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LearnerProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearnerProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LearnerProfile edge %s", name)
}

// PointsEntryMutation represents an operation that mutates the PointsEntry nodes in the graph.
type PointsEntryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	created_at    *time.Time
	learner_id    *string
	action        *string
	points        *int
	addpoints     *int
	metadata      *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*PointsEntry, error)
	predicates    []predicate.PointsEntry
}

var _ ent.Mutation = (*PointsEntryMutation)(nil)

// pointsentryOption allows management of the mutation configuration using functional options.
type pointsentryOption func(*PointsEntryMutation)

// newPointsEntryMutation creates new mutation for the PointsEntry entity.
func newPointsEntryMutation(c config, op Op, opts ...pointsentryOption) *PointsEntryMutation {
	m := &PointsEntryMutation{
		config:        c,
		op:            op,
		typ:           TypePointsEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPointsEntryID sets the ID field of the mutation.
func withPointsEntryID(id int) pointsentryOption {
	return func(m *PointsEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *PointsEntry
		)
		m.oldValue = func(ctx context.Context) (*PointsEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PointsEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPointsEntry sets the old PointsEntry of the mutation.
func withPointsEntry(node *PointsEntry) pointsentryOption {
	return func(m *PointsEntryMutation) {
		m.oldValue = func(context.Context) (*PointsEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PointsEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PointsEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PointsEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PointsEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PointsEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *PointsEntryMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *PointsEntryMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the PointsEntry entity.
// If the PointsEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PointsEntryMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *PointsEntryMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *PointsEntryMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *PointsEntryMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PointsEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PointsEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PointsEntry entity.
// If the PointsEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PointsEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PointsEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *PointsEntryMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *PointsEntryMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the PointsEntry entity.
// If the PointsEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PointsEntryMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *PointsEntryMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetAction sets the "action" field.
func (m *PointsEntryMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *PointsEntryMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the PointsEntry entity.
// If the PointsEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PointsEntryMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *PointsEntryMutation) ResetAction() {
	m.action = nil
}

// SetPoints sets the "points" field.
func (m *PointsEntryMutation) SetPoints(i int) {
	m.points = &i
	m.addpoints = nil
}

// Points returns the value of the "points" field in the mutation.
func (m *PointsEntryMutation) Points() (r int, exists bool) {
	v := m.points
	if v == nil {
		return
	}
	return *v, true
}

// OldPoints returns the old "points" field's value of the PointsEntry entity.
// If the PointsEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PointsEntryMutation) OldPoints(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPoints: %w", err)
	}
	return oldValue.Points, nil
}

// AddPoints adds i to the "points" field.
func (m *PointsEntryMutation) AddPoints(i int) {
	if m.addpoints != nil {
		*m.addpoints += i
	} else {
		m.addpoints = &i
	}
}

// AddedPoints returns the value that was added to the "points" field in this mutation.
func (m *PointsEntryMutation) AddedPoints() (r int, exists bool) {
	v := m.addpoints
	if v == nil {
		return
	}
	return *v, true
}

// ResetPoints resets all changes to the "points" field.
func (m *PointsEntryMutation) ResetPoints() {
	m.points = nil
	m.addpoints = nil
}

// SetMetadata sets the "metadata" field.
func (m *PointsEntryMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *PointsEntryMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the PointsEntry entity.
// If the PointsEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PointsEntryMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *PointsEntryMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[pointsentry.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *PointsEntryMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[pointsentry.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *PointsEntryMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, pointsentry.FieldMetadata)
}

// Where appends a list predicates to the PointsEntryMutation builder.
func (m *PointsEntryMutation) Where(ps ...predicate.PointsEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PointsEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PointsEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PointsEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PointsEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PointsEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PointsEntry).
func (m *PointsEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PointsEntryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.sequence != nil {
		fields = append(fields, pointsentry.FieldSequence)
	}
	if m.created_at != nil {
		fields = append(fields, pointsentry.FieldCreatedAt)
	}
	if m.learner_id != nil {
		fields = append(fields, pointsentry.FieldLearnerID)
	}
	if m.action != nil {
		fields = append(fields, pointsentry.FieldAction)
	}
	if m.points != nil {
		fields = append(fields, pointsentry.FieldPoints)
	}
	if m.metadata != nil {
		fields = append(fields, pointsentry.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PointsEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pointsentry.FieldSequence:
		return m.Sequence()
	case pointsentry.FieldCreatedAt:
		return m.CreatedAt()
	case pointsentry.FieldLearnerID:
		return m.LearnerID()
	case pointsentry.FieldAction:
		return m.Action()
	case pointsentry.FieldPoints:
		return m.Points()
	case pointsentry.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PointsEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pointsentry.FieldSequence:
		return m.OldSequence(ctx)
	case pointsentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pointsentry.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case pointsentry.FieldAction:
		return m.OldAction(ctx)
	case pointsentry.FieldPoints:
		return m.OldPoints(ctx)
	case pointsentry.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown PointsEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PointsEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pointsentry.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case pointsentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pointsentry.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case pointsentry.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case pointsentry.FieldPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPoints(v)
		return nil
	case pointsentry.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown PointsEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PointsEntryMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, pointsentry.FieldSequence)
	}
	if m.addpoints != nil {
		fields = append(fields, pointsentry.FieldPoints)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PointsEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pointsentry.FieldSequence:
		return m.AddedSequence()
	case pointsentry.FieldPoints:
		return m.AddedPoints()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PointsEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pointsentry.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case pointsentry.FieldPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPoints(v)
		return nil
	}
	return fmt.Errorf("unknown PointsEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PointsEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pointsentry.FieldMetadata) {
		fields = append(fields, pointsentry.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PointsEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PointsEntryMutation) ClearField(name string) error {
	switch name {
	case pointsentry.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown PointsEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PointsEntryMutation) ResetField(name string) error {
	switch name {
	case pointsentry.FieldSequence:
		m.ResetSequence()
		return nil
	case pointsentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pointsentry.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case pointsentry.FieldAction:
		m.ResetAction()
		return nil
	case pointsentry.FieldPoints:
		m.ResetPoints()
		return nil
	case pointsentry.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown PointsEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PointsEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PointsEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PointsEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PointsEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PointsEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PointsEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PointsEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PointsEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PointsEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PointsEntry edge %s", name)
}

// UnlockedAchievementMutation represents an operation that mutates the UnlockedAchievement nodes in the graph.
type UnlockedAchievementMutation struct {
	config
	op              Op
	typ             string
	id              *int
	learner_id      *string
	achievement_key *string
	unlocked_at     *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*UnlockedAchievement, error)
	predicates      []predicate.UnlockedAchievement
}

var _ ent.Mutation = (*UnlockedAchievementMutation)(nil)

// unlockedachievementOption allows management of the mutation configuration using functional options.
type unlockedachievementOption func(*UnlockedAchievementMutation)

// newUnlockedAchievementMutation creates new mutation for the UnlockedAchievement entity.
func newUnlockedAchievementMutation(c config, op Op, opts ...unlockedachievementOption) *UnlockedAchievementMutation {
	m := &UnlockedAchievementMutation{
		config:        c,
		op:            op,
		typ:           TypeUnlockedAchievement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUnlockedAchievementID sets the ID field of the mutation.
func withUnlockedAchievementID(id int) unlockedachievementOption {
	return func(m *UnlockedAchievementMutation) {
		var (
			err   error
			once  sync.Once
			value *UnlockedAchievement
		)
		m.oldValue = func(ctx context.Context) (*UnlockedAchievement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UnlockedAchievement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUnlockedAchievement sets the old UnlockedAchievement of the mutation.
func withUnlockedAchievement(node *UnlockedAchievement) unlockedachievementOption {
	return func(m *UnlockedAchievementMutation) {
		m.oldValue = func(context.Context) (*UnlockedAchievement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UnlockedAchievementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UnlockedAchievementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UnlockedAchievementMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UnlockedAchievementMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UnlockedAchievement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *UnlockedAchievementMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *UnlockedAchievementMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the UnlockedAchievement entity.
// If the UnlockedAchievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnlockedAchievementMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *UnlockedAchievementMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetAchievementKey sets the "achievement_key" field.
func (m *UnlockedAchievementMutation) SetAchievementKey(s string) {
	m.achievement_key = &s
}

// AchievementKey returns the value of the "achievement_key" field in the mutation.
func (m *UnlockedAchievementMutation) AchievementKey() (r string, exists bool) {
	v := m.achievement_key
	if v == nil {
		return
	}
	return *v, true
}

// OldAchievementKey returns the old "achievement_key" field's value of the UnlockedAchievement entity.
// If the UnlockedAchievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnlockedAchievementMutation) OldAchievementKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAchievementKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAchievementKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAchievementKey: %w", err)
	}
	return oldValue.AchievementKey, nil
}

// ResetAchievementKey resets all changes to the "achievement_key" field.
func (m *UnlockedAchievementMutation) ResetAchievementKey() {
	m.achievement_key = nil
}

// SetUnlockedAt sets the "unlocked_at" field.
func (m *UnlockedAchievementMutation) SetUnlockedAt(t time.Time) {
	m.unlocked_at = &t
}

// UnlockedAt returns the value of the "unlocked_at" field in the mutation.
func (m *UnlockedAchievementMutation) UnlockedAt() (r time.Time, exists bool) {
	v := m.unlocked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUnlockedAt returns the old "unlocked_at" field's value of the UnlockedAchievement entity.
// If the UnlockedAchievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnlockedAchievementMutation) OldUnlockedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnlockedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnlockedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnlockedAt: %w", err)
	}
	return oldValue.UnlockedAt, nil
}

// ResetUnlockedAt resets all changes to the "unlocked_at" field.
func (m *UnlockedAchievementMutation) ResetUnlockedAt() {
	m.unlocked_at = nil
}

// Where appends a list predicates to the UnlockedAchievementMutation builder.
func (m *UnlockedAchievementMutation) Where(ps ...predicate.UnlockedAchievement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UnlockedAchievementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UnlockedAchievementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UnlockedAchievement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UnlockedAchievementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UnlockedAchievementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UnlockedAchievement).
func (m *UnlockedAchievementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UnlockedAchievementMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.learner_id != nil {
		fields = append(fields, unlockedachievement.FieldLearnerID)
	}
	if m.achievement_key != nil {
		fields = append(fields, unlockedachievement.FieldAchievementKey)
	}
	if m.unlocked_at != nil {
		fields = append(fields, unlockedachievement.FieldUnlockedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UnlockedAchievementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case unlockedachievement.FieldLearnerID:
		return m.LearnerID()
	case unlockedachievement.FieldAchievementKey:
		return m.AchievementKey()
	case unlockedachievement.FieldUnlockedAt:
		return m.UnlockedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UnlockedAchievementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case unlockedachievement.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case unlockedachievement.FieldAchievementKey:
		return m.OldAchievementKey(ctx)
	case unlockedachievement.FieldUnlockedAt:
		return m.OldUnlockedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UnlockedAchievement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnlockedAchievementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case unlockedachievement.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case unlockedachievement.FieldAchievementKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAchievementKey(v)
		return nil
	case unlockedachievement.FieldUnlockedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnlockedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UnlockedAchievement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UnlockedAchievementMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UnlockedAchievementMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnlockedAchievementMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UnlockedAchievement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UnlockedAchievementMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UnlockedAchievementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UnlockedAchievementMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UnlockedAchievement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UnlockedAchievementMutation) ResetField(name string) error {
	switch name {
	case unlockedachievement.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case unlockedachievement.FieldAchievementKey:
		m.ResetAchievementKey()
		return nil
	case unlockedachievement.FieldUnlockedAt:
		m.ResetUnlockedAt()
		return nil
	}
	return fmt.Errorf("unknown UnlockedAchievement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UnlockedAchievementMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UnlockedAchievementMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UnlockedAchievementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UnlockedAchievementMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UnlockedAchievementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UnlockedAchievementMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UnlockedAchievementMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UnlockedAchievement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UnlockedAchievementMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UnlockedAchievement edge %s", name)
}
