// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hkawai/kioku/ent/cardstate"
	"github.com/hkawai/kioku/ent/predicate"
)

// CardStateUpdate is the builder for updating CardState entities.
type CardStateUpdate struct {
	config
	hooks    []Hook
	mutation *CardStateMutation
}

// Where appends a list predicates to the CardStateUpdate builder.
func (_u *CardStateUpdate) Where(ps ...predicate.CardState) *CardStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKey sets the "key" field.
func (_u *CardStateUpdate) SetKey(v string) *CardStateUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *CardStateUpdate) SetNillableKey(v *string) *CardStateUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetDatasetID sets the "dataset_id" field.
func (_u *CardStateUpdate) SetDatasetID(v string) *CardStateUpdate {
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *CardStateUpdate) SetNillableDatasetID(v *string) *CardStateUpdate {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *CardStateUpdate) SetCardID(v string) *CardStateUpdate {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *CardStateUpdate) SetNillableCardID(v *string) *CardStateUpdate {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// SetStability sets the "stability" field.
func (_u *CardStateUpdate) SetStability(v float64) *CardStateUpdate {
	_u.mutation.ResetStability()
	_u.mutation.SetStability(v)
	return _u
}

// SetNillableStability sets the "stability" field if the given value is not nil.
func (_u *CardStateUpdate) SetNillableStability(v *float64) *CardStateUpdate {
	if v != nil {
		_u.SetStability(*v)
	}
	return _u
}

// AddStability adds value to the "stability" field.
func (_u *CardStateUpdate) AddStability(v float64) *CardStateUpdate {
	_u.mutation.AddStability(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *CardStateUpdate) SetDifficulty(v float64) *CardStateUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *CardStateUpdate) SetNillableDifficulty(v *float64) *CardStateUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *CardStateUpdate) AddDifficulty(v float64) *CardStateUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetLastReviewAt sets the "last_review_at" field.
func (_u *CardStateUpdate) SetLastReviewAt(v int64) *CardStateUpdate {
	_u.mutation.ResetLastReviewAt()
	_u.mutation.SetLastReviewAt(v)
	return _u
}

// SetNillableLastReviewAt sets the "last_review_at" field if the given value is not nil.
func (_u *CardStateUpdate) SetNillableLastReviewAt(v *int64) *CardStateUpdate {
	if v != nil {
		_u.SetLastReviewAt(*v)
	}
	return _u
}

// AddLastReviewAt adds value to the "last_review_at" field.
func (_u *CardStateUpdate) AddLastReviewAt(v int64) *CardStateUpdate {
	_u.mutation.AddLastReviewAt(v)
	return _u
}

// ClearLastReviewAt clears the value of the "last_review_at" field.
func (_u *CardStateUpdate) ClearLastReviewAt() *CardStateUpdate {
	_u.mutation.ClearLastReviewAt()
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *CardStateUpdate) SetDueAt(v int64) *CardStateUpdate {
	_u.mutation.ResetDueAt()
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *CardStateUpdate) SetNillableDueAt(v *int64) *CardStateUpdate {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// AddDueAt adds value to the "due_at" field.
func (_u *CardStateUpdate) AddDueAt(v int64) *CardStateUpdate {
	_u.mutation.AddDueAt(v)
	return _u
}

// SetReps sets the "reps" field.
func (_u *CardStateUpdate) SetReps(v int) *CardStateUpdate {
	_u.mutation.ResetReps()
	_u.mutation.SetReps(v)
	return _u
}

// SetNillableReps sets the "reps" field if the given value is not nil.
func (_u *CardStateUpdate) SetNillableReps(v *int) *CardStateUpdate {
	if v != nil {
		_u.SetReps(*v)
	}
	return _u
}

// AddReps adds value to the "reps" field.
func (_u *CardStateUpdate) AddReps(v int) *CardStateUpdate {
	_u.mutation.AddReps(v)
	return _u
}

// SetLapses sets the "lapses" field.
func (_u *CardStateUpdate) SetLapses(v int) *CardStateUpdate {
	_u.mutation.ResetLapses()
	_u.mutation.SetLapses(v)
	return _u
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (_u *CardStateUpdate) SetNillableLapses(v *int) *CardStateUpdate {
	if v != nil {
		_u.SetLapses(*v)
	}
	return _u
}

// AddLapses adds value to the "lapses" field.
func (_u *CardStateUpdate) AddLapses(v int) *CardStateUpdate {
	_u.mutation.AddLapses(v)
	return _u
}

// Mutation returns the CardStateMutation object of the builder.
func (_u *CardStateUpdate) Mutation() *CardStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CardStateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CardStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardStateUpdate) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := cardstate.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "CardState.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DatasetID(); ok {
		if err := cardstate.DatasetIDValidator(v); err != nil {
			return &ValidationError{Name: "dataset_id", err: fmt.Errorf(`ent: validator failed for field "CardState.dataset_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CardID(); ok {
		if err := cardstate.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "CardState.card_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reps(); ok {
		if err := cardstate.RepsValidator(v); err != nil {
			return &ValidationError{Name: "reps", err: fmt.Errorf(`ent: validator failed for field "CardState.reps": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Lapses(); ok {
		if err := cardstate.LapsesValidator(v); err != nil {
			return &ValidationError{Name: "lapses", err: fmt.Errorf(`ent: validator failed for field "CardState.lapses": %w`, err)}
		}
	}
	return nil
}

func (_u *CardStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cardstate.Table, cardstate.Columns, sqlgraph.NewFieldSpec(cardstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(cardstate.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.DatasetID(); ok {
		_spec.SetField(cardstate.FieldDatasetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(cardstate.FieldCardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stability(); ok {
		_spec.SetField(cardstate.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStability(); ok {
		_spec.AddField(cardstate.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(cardstate.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(cardstate.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastReviewAt(); ok {
		_spec.SetField(cardstate.FieldLastReviewAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastReviewAt(); ok {
		_spec.AddField(cardstate.FieldLastReviewAt, field.TypeInt64, value)
	}
	if _u.mutation.LastReviewAtCleared() {
		_spec.ClearField(cardstate.FieldLastReviewAt, field.TypeInt64)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(cardstate.FieldDueAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDueAt(); ok {
		_spec.AddField(cardstate.FieldDueAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Reps(); ok {
		_spec.SetField(cardstate.FieldReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReps(); ok {
		_spec.AddField(cardstate.FieldReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Lapses(); ok {
		_spec.SetField(cardstate.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLapses(); ok {
		_spec.AddField(cardstate.FieldLapses, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cardstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CardStateUpdateOne is the builder for updating a single CardState entity.
type CardStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CardStateMutation
}

// SetKey sets the "key" field.
func (_u *CardStateUpdateOne) SetKey(v string) *CardStateUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *CardStateUpdateOne) SetNillableKey(v *string) *CardStateUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetDatasetID sets the "dataset_id" field.
func (_u *CardStateUpdateOne) SetDatasetID(v string) *CardStateUpdateOne {
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *CardStateUpdateOne) SetNillableDatasetID(v *string) *CardStateUpdateOne {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *CardStateUpdateOne) SetCardID(v string) *CardStateUpdateOne {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *CardStateUpdateOne) SetNillableCardID(v *string) *CardStateUpdateOne {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// SetStability sets the "stability" field.
func (_u *CardStateUpdateOne) SetStability(v float64) *CardStateUpdateOne {
	_u.mutation.ResetStability()
	_u.mutation.SetStability(v)
	return _u
}

// SetNillableStability sets the "stability" field if the given value is not nil.
func (_u *CardStateUpdateOne) SetNillableStability(v *float64) *CardStateUpdateOne {
	if v != nil {
		_u.SetStability(*v)
	}
	return _u
}

// AddStability adds value to the "stability" field.
func (_u *CardStateUpdateOne) AddStability(v float64) *CardStateUpdateOne {
	_u.mutation.AddStability(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *CardStateUpdateOne) SetDifficulty(v float64) *CardStateUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *CardStateUpdateOne) SetNillableDifficulty(v *float64) *CardStateUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *CardStateUpdateOne) AddDifficulty(v float64) *CardStateUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetLastReviewAt sets the "last_review_at" field.
func (_u *CardStateUpdateOne) SetLastReviewAt(v int64) *CardStateUpdateOne {
	_u.mutation.ResetLastReviewAt()
	_u.mutation.SetLastReviewAt(v)
	return _u
}

// SetNillableLastReviewAt sets the "last_review_at" field if the given value is not nil.
func (_u *CardStateUpdateOne) SetNillableLastReviewAt(v *int64) *CardStateUpdateOne {
	if v != nil {
		_u.SetLastReviewAt(*v)
	}
	return _u
}

// AddLastReviewAt adds value to the "last_review_at" field.
func (_u *CardStateUpdateOne) AddLastReviewAt(v int64) *CardStateUpdateOne {
	_u.mutation.AddLastReviewAt(v)
	return _u
}

// ClearLastReviewAt clears the value of the "last_review_at" field.
func (_u *CardStateUpdateOne) ClearLastReviewAt() *CardStateUpdateOne {
	_u.mutation.ClearLastReviewAt()
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *CardStateUpdateOne) SetDueAt(v int64) *CardStateUpdateOne {
	_u.mutation.ResetDueAt()
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *CardStateUpdateOne) SetNillableDueAt(v *int64) *CardStateUpdateOne {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// AddDueAt adds value to the "due_at" field.
func (_u *CardStateUpdateOne) AddDueAt(v int64) *CardStateUpdateOne {
	_u.mutation.AddDueAt(v)
	return _u
}

// SetReps sets the "reps" field.
func (_u *CardStateUpdateOne) SetReps(v int) *CardStateUpdateOne {
	_u.mutation.ResetReps()
	_u.mutation.SetReps(v)
	return _u
}

// SetNillableReps sets the "reps" field if the given value is not nil.
func (_u *CardStateUpdateOne) SetNillableReps(v *int) *CardStateUpdateOne {
	if v != nil {
		_u.SetReps(*v)
	}
	return _u
}

// AddReps adds value to the "reps" field.
func (_u *CardStateUpdateOne) AddReps(v int) *CardStateUpdateOne {
	_u.mutation.AddReps(v)
	return _u
}

// SetLapses sets the "lapses" field.
func (_u *CardStateUpdateOne) SetLapses(v int) *CardStateUpdateOne {
	_u.mutation.ResetLapses()
	_u.mutation.SetLapses(v)
	return _u
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (_u *CardStateUpdateOne) SetNillableLapses(v *int) *CardStateUpdateOne {
	if v != nil {
		_u.SetLapses(*v)
	}
	return _u
}

// AddLapses adds value to the "lapses" field.
func (_u *CardStateUpdateOne) AddLapses(v int) *CardStateUpdateOne {
	_u.mutation.AddLapses(v)
	return _u
}

// Mutation returns the CardStateMutation object of the builder.
func (_u *CardStateUpdateOne) Mutation() *CardStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the CardStateUpdate builder.
func (_u *CardStateUpdateOne) Where(ps ...predicate.CardState) *CardStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CardStateUpdateOne) Select(field string, fields ...string) *CardStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CardState entity.
func (_u *CardStateUpdateOne) Save(ctx context.Context) (*CardState, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardStateUpdateOne) SaveX(ctx context.Context) *CardState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CardStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardStateUpdateOne) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := cardstate.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "CardState.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DatasetID(); ok {
		if err := cardstate.DatasetIDValidator(v); err != nil {
			return &ValidationError{Name: "dataset_id", err: fmt.Errorf(`ent: validator failed for field "CardState.dataset_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CardID(); ok {
		if err := cardstate.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "CardState.card_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reps(); ok {
		if err := cardstate.RepsValidator(v); err != nil {
			return &ValidationError{Name: "reps", err: fmt.Errorf(`ent: validator failed for field "CardState.reps": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Lapses(); ok {
		if err := cardstate.LapsesValidator(v); err != nil {
			return &ValidationError{Name: "lapses", err: fmt.Errorf(`ent: validator failed for field "CardState.lapses": %w`, err)}
		}
	}
	return nil
}

func (_u *CardStateUpdateOne) sqlSave(ctx context.Context) (_node *CardState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cardstate.Table, cardstate.Columns, sqlgraph.NewFieldSpec(cardstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CardState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cardstate.FieldID)
		for _, f := range fields {
			if !cardstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cardstate.FieldID {
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
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(cardstate.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.DatasetID(); ok {
		_spec.SetField(cardstate.FieldDatasetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(cardstate.FieldCardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stability(); ok {
		_spec.SetField(cardstate.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStability(); ok {
		_spec.AddField(cardstate.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(cardstate.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(cardstate.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastReviewAt(); ok {
		_spec.SetField(cardstate.FieldLastReviewAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastReviewAt(); ok {
		_spec.AddField(cardstate.FieldLastReviewAt, field.TypeInt64, value)
	}
	if _u.mutation.LastReviewAtCleared() {
		_spec.ClearField(cardstate.FieldLastReviewAt, field.TypeInt64)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(cardstate.FieldDueAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDueAt(); ok {
		_spec.AddField(cardstate.FieldDueAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Reps(); ok {
		_spec.SetField(cardstate.FieldReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReps(); ok {
		_spec.AddField(cardstate.FieldReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Lapses(); ok {
		_spec.SetField(cardstate.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLapses(); ok {
		_spec.AddField(cardstate.FieldLapses, field.TypeInt, value)
	}
	_node = &CardState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cardstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
