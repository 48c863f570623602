// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hkawai/kioku/ent/cardstate"
)

// CardStateCreate is the builder for creating a CardState entity.
type CardStateCreate struct {
	config
	mutation *CardStateMutation
	hooks    []Hook
}

// SetKey sets the "key" field.
func (_c *CardStateCreate) SetKey(v string) *CardStateCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetDatasetID sets the "dataset_id" field.
func (_c *CardStateCreate) SetDatasetID(v string) *CardStateCreate {
	_c.mutation.SetDatasetID(v)
	return _c
}

// SetCardID sets the "card_id" field.
func (_c *CardStateCreate) SetCardID(v string) *CardStateCreate {
	_c.mutation.SetCardID(v)
	return _c
}

// SetStability sets the "stability" field.
func (_c *CardStateCreate) SetStability(v float64) *CardStateCreate {
	_c.mutation.SetStability(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *CardStateCreate) SetDifficulty(v float64) *CardStateCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetLastReviewAt sets the "last_review_at" field.
func (_c *CardStateCreate) SetLastReviewAt(v int64) *CardStateCreate {
	_c.mutation.SetLastReviewAt(v)
	return _c
}

// SetNillableLastReviewAt sets the "last_review_at" field if the given value is not nil.
func (_c *CardStateCreate) SetNillableLastReviewAt(v *int64) *CardStateCreate {
	if v != nil {
		_c.SetLastReviewAt(*v)
	}
	return _c
}

// SetDueAt sets the "due_at" field.
func (_c *CardStateCreate) SetDueAt(v int64) *CardStateCreate {
	_c.mutation.SetDueAt(v)
	return _c
}

// SetReps sets the "reps" field.
func (_c *CardStateCreate) SetReps(v int) *CardStateCreate {
	_c.mutation.SetReps(v)
	return _c
}

// SetNillableReps sets the "reps" field if the given value is not nil.
func (_c *CardStateCreate) SetNillableReps(v *int) *CardStateCreate {
	if v != nil {
		_c.SetReps(*v)
	}
	return _c
}

// SetLapses sets the "lapses" field.
func (_c *CardStateCreate) SetLapses(v int) *CardStateCreate {
	_c.mutation.SetLapses(v)
	return _c
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (_c *CardStateCreate) SetNillableLapses(v *int) *CardStateCreate {
	if v != nil {
		_c.SetLapses(*v)
	}
	return _c
}

// Mutation returns the CardStateMutation object of the builder.
func (_c *CardStateCreate) Mutation() *CardStateMutation {
	return _c.mutation
}

// Save creates the CardState in the database.
func (_c *CardStateCreate) Save(ctx context.Context) (*CardState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CardStateCreate) SaveX(ctx context.Context) *CardState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CardStateCreate) defaults() {
	if _, ok := _c.mutation.Reps(); !ok {
		v := cardstate.DefaultReps
		_c.mutation.SetReps(v)
	}
	if _, ok := _c.mutation.Lapses(); !ok {
		v := cardstate.DefaultLapses
		_c.mutation.SetLapses(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CardStateCreate) check() error {
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "CardState.key"`)}
	}
	if v, ok := _c.mutation.Key(); ok {
		if err := cardstate.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "CardState.key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DatasetID(); !ok {
		return &ValidationError{Name: "dataset_id", err: errors.New(`ent: missing required field "CardState.dataset_id"`)}
	}
	if v, ok := _c.mutation.DatasetID(); ok {
		if err := cardstate.DatasetIDValidator(v); err != nil {
			return &ValidationError{Name: "dataset_id", err: fmt.Errorf(`ent: validator failed for field "CardState.dataset_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CardID(); !ok {
		return &ValidationError{Name: "card_id", err: errors.New(`ent: missing required field "CardState.card_id"`)}
	}
	if v, ok := _c.mutation.CardID(); ok {
		if err := cardstate.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "CardState.card_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stability(); !ok {
		return &ValidationError{Name: "stability", err: errors.New(`ent: missing required field "CardState.stability"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "CardState.difficulty"`)}
	}
	if _, ok := _c.mutation.DueAt(); !ok {
		return &ValidationError{Name: "due_at", err: errors.New(`ent: missing required field "CardState.due_at"`)}
	}
	if _, ok := _c.mutation.Reps(); !ok {
		return &ValidationError{Name: "reps", err: errors.New(`ent: missing required field "CardState.reps"`)}
	}
	if v, ok := _c.mutation.Reps(); ok {
		if err := cardstate.RepsValidator(v); err != nil {
			return &ValidationError{Name: "reps", err: fmt.Errorf(`ent: validator failed for field "CardState.reps": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Lapses(); !ok {
		return &ValidationError{Name: "lapses", err: errors.New(`ent: missing required field "CardState.lapses"`)}
	}
	if v, ok := _c.mutation.Lapses(); ok {
		if err := cardstate.LapsesValidator(v); err != nil {
			return &ValidationError{Name: "lapses", err: fmt.Errorf(`ent: validator failed for field "CardState.lapses": %w`, err)}
		}
	}
	return nil
}

func (_c *CardStateCreate) sqlSave(ctx context.Context) (*CardState, error) {
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

func (_c *CardStateCreate) createSpec() (*CardState, *sqlgraph.CreateSpec) {
	var (
		_node = &CardState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cardstate.Table, sqlgraph.NewFieldSpec(cardstate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(cardstate.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.DatasetID(); ok {
		_spec.SetField(cardstate.FieldDatasetID, field.TypeString, value)
		_node.DatasetID = value
	}
	if value, ok := _c.mutation.CardID(); ok {
		_spec.SetField(cardstate.FieldCardID, field.TypeString, value)
		_node.CardID = value
	}
	if value, ok := _c.mutation.Stability(); ok {
		_spec.SetField(cardstate.FieldStability, field.TypeFloat64, value)
		_node.Stability = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(cardstate.FieldDifficulty, field.TypeFloat64, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.LastReviewAt(); ok {
		_spec.SetField(cardstate.FieldLastReviewAt, field.TypeInt64, value)
		_node.LastReviewAt = &value
	}
	if value, ok := _c.mutation.DueAt(); ok {
		_spec.SetField(cardstate.FieldDueAt, field.TypeInt64, value)
		_node.DueAt = value
	}
	if value, ok := _c.mutation.Reps(); ok {
		_spec.SetField(cardstate.FieldReps, field.TypeInt, value)
		_node.Reps = value
	}
	if value, ok := _c.mutation.Lapses(); ok {
		_spec.SetField(cardstate.FieldLapses, field.TypeInt, value)
		_node.Lapses = value
	}
	return _node, _spec
}

// CardStateCreateBulk is the builder for creating many CardState entities in bulk.
type CardStateCreateBulk struct {
	config
	err      error
	builders []*CardStateCreate
}

// Save creates the CardState entities in the database.
func (_c *CardStateCreateBulk) Save(ctx context.Context) ([]*CardState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CardState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CardStateMutation)
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
func (_c *CardStateCreateBulk) SaveX(ctx context.Context) []*CardState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
