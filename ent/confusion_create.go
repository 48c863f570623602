// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hkawai/kioku/ent/confusion"
)

// ConfusionCreate is the builder for creating a Confusion entity.
type ConfusionCreate struct {
	config
	mutation *ConfusionMutation
	hooks    []Hook
}

// SetKey sets the "key" field.
func (_c *ConfusionCreate) SetKey(v string) *ConfusionCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetDatasetID sets the "dataset_id" field.
func (_c *ConfusionCreate) SetDatasetID(v string) *ConfusionCreate {
	_c.mutation.SetDatasetID(v)
	return _c
}

// SetPairKey sets the "pair_key" field.
func (_c *ConfusionCreate) SetPairKey(v string) *ConfusionCreate {
	_c.mutation.SetPairKey(v)
	return _c
}

// SetCardA sets the "card_a" field.
func (_c *ConfusionCreate) SetCardA(v string) *ConfusionCreate {
	_c.mutation.SetCardA(v)
	return _c
}

// SetCardB sets the "card_b" field.
func (_c *ConfusionCreate) SetCardB(v string) *ConfusionCreate {
	_c.mutation.SetCardB(v)
	return _c
}

// SetCount sets the "count" field.
func (_c *ConfusionCreate) SetCount(v int) *ConfusionCreate {
	_c.mutation.SetCount(v)
	return _c
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_c *ConfusionCreate) SetNillableCount(v *int) *ConfusionCreate {
	if v != nil {
		_c.SetCount(*v)
	}
	return _c
}

// Mutation returns the ConfusionMutation object of the builder.
func (_c *ConfusionCreate) Mutation() *ConfusionMutation {
	return _c.mutation
}

// Save creates the Confusion in the database.
func (_c *ConfusionCreate) Save(ctx context.Context) (*Confusion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConfusionCreate) SaveX(ctx context.Context) *Confusion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConfusionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConfusionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConfusionCreate) defaults() {
	if _, ok := _c.mutation.Count(); !ok {
		v := confusion.DefaultCount
		_c.mutation.SetCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConfusionCreate) check() error {
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "Confusion.key"`)}
	}
	if v, ok := _c.mutation.Key(); ok {
		if err := confusion.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "Confusion.key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DatasetID(); !ok {
		return &ValidationError{Name: "dataset_id", err: errors.New(`ent: missing required field "Confusion.dataset_id"`)}
	}
	if v, ok := _c.mutation.DatasetID(); ok {
		if err := confusion.DatasetIDValidator(v); err != nil {
			return &ValidationError{Name: "dataset_id", err: fmt.Errorf(`ent: validator failed for field "Confusion.dataset_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PairKey(); !ok {
		return &ValidationError{Name: "pair_key", err: errors.New(`ent: missing required field "Confusion.pair_key"`)}
	}
	if v, ok := _c.mutation.PairKey(); ok {
		if err := confusion.PairKeyValidator(v); err != nil {
			return &ValidationError{Name: "pair_key", err: fmt.Errorf(`ent: validator failed for field "Confusion.pair_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CardA(); !ok {
		return &ValidationError{Name: "card_a", err: errors.New(`ent: missing required field "Confusion.card_a"`)}
	}
	if v, ok := _c.mutation.CardA(); ok {
		if err := confusion.CardAValidator(v); err != nil {
			return &ValidationError{Name: "card_a", err: fmt.Errorf(`ent: validator failed for field "Confusion.card_a": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CardB(); !ok {
		return &ValidationError{Name: "card_b", err: errors.New(`ent: missing required field "Confusion.card_b"`)}
	}
	if v, ok := _c.mutation.CardB(); ok {
		if err := confusion.CardBValidator(v); err != nil {
			return &ValidationError{Name: "card_b", err: fmt.Errorf(`ent: validator failed for field "Confusion.card_b": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Count(); !ok {
		return &ValidationError{Name: "count", err: errors.New(`ent: missing required field "Confusion.count"`)}
	}
	if v, ok := _c.mutation.Count(); ok {
		if err := confusion.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "Confusion.count": %w`, err)}
		}
	}
	return nil
}

func (_c *ConfusionCreate) sqlSave(ctx context.Context) (*Confusion, error) {
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

func (_c *ConfusionCreate) createSpec() (*Confusion, *sqlgraph.CreateSpec) {
	var (
		_node = &Confusion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(confusion.Table, sqlgraph.NewFieldSpec(confusion.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(confusion.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.DatasetID(); ok {
		_spec.SetField(confusion.FieldDatasetID, field.TypeString, value)
		_node.DatasetID = value
	}
	if value, ok := _c.mutation.PairKey(); ok {
		_spec.SetField(confusion.FieldPairKey, field.TypeString, value)
		_node.PairKey = value
	}
	if value, ok := _c.mutation.CardA(); ok {
		_spec.SetField(confusion.FieldCardA, field.TypeString, value)
		_node.CardA = value
	}
	if value, ok := _c.mutation.CardB(); ok {
		_spec.SetField(confusion.FieldCardB, field.TypeString, value)
		_node.CardB = value
	}
	if value, ok := _c.mutation.Count(); ok {
		_spec.SetField(confusion.FieldCount, field.TypeInt, value)
		_node.Count = value
	}
	return _node, _spec
}

// ConfusionCreateBulk is the builder for creating many Confusion entities in bulk.
type ConfusionCreateBulk struct {
	config
	err      error
	builders []*ConfusionCreate
}

// Save creates the Confusion entities in the database.
func (_c *ConfusionCreateBulk) Save(ctx context.Context) ([]*Confusion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Confusion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConfusionMutation)
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
func (_c *ConfusionCreateBulk) SaveX(ctx context.Context) []*Confusion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConfusionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConfusionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
