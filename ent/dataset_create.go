// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hkawai/kioku/ent/dataset"
)

// DatasetCreate is the builder for creating a Dataset entity.
type DatasetCreate struct {
	config
	mutation *DatasetMutation
	hooks    []Hook
}

// SetDatasetID sets the "dataset_id" field.
func (_c *DatasetCreate) SetDatasetID(v string) *DatasetCreate {
	_c.mutation.SetDatasetID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *DatasetCreate) SetTitle(v string) *DatasetCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *DatasetCreate) SetDescription(v string) *DatasetCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableDescription(v *string) *DatasetCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *DatasetCreate) SetTags(v []string) *DatasetCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetCardCount sets the "card_count" field.
func (_c *DatasetCreate) SetCardCount(v int) *DatasetCreate {
	_c.mutation.SetCardCount(v)
	return _c
}

// SetNillableCardCount sets the "card_count" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableCardCount(v *int) *DatasetCreate {
	if v != nil {
		_c.SetCardCount(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DatasetCreate) SetUpdatedAt(v int64) *DatasetCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// Mutation returns the DatasetMutation object of the builder.
func (_c *DatasetCreate) Mutation() *DatasetMutation {
	return _c.mutation
}

// Save creates the Dataset in the database.
func (_c *DatasetCreate) Save(ctx context.Context) (*Dataset, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DatasetCreate) SaveX(ctx context.Context) *Dataset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DatasetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DatasetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DatasetCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := dataset.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.CardCount(); !ok {
		v := dataset.DefaultCardCount
		_c.mutation.SetCardCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DatasetCreate) check() error {
	if _, ok := _c.mutation.DatasetID(); !ok {
		return &ValidationError{Name: "dataset_id", err: errors.New(`ent: missing required field "Dataset.dataset_id"`)}
	}
	if v, ok := _c.mutation.DatasetID(); ok {
		if err := dataset.DatasetIDValidator(v); err != nil {
			return &ValidationError{Name: "dataset_id", err: fmt.Errorf(`ent: validator failed for field "Dataset.dataset_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Dataset.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := dataset.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Dataset.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CardCount(); !ok {
		return &ValidationError{Name: "card_count", err: errors.New(`ent: missing required field "Dataset.card_count"`)}
	}
	if v, ok := _c.mutation.CardCount(); ok {
		if err := dataset.CardCountValidator(v); err != nil {
			return &ValidationError{Name: "card_count", err: fmt.Errorf(`ent: validator failed for field "Dataset.card_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Dataset.updated_at"`)}
	}
	return nil
}

func (_c *DatasetCreate) sqlSave(ctx context.Context) (*Dataset, error) {
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

func (_c *DatasetCreate) createSpec() (*Dataset, *sqlgraph.CreateSpec) {
	var (
		_node = &Dataset{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dataset.Table, sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.DatasetID(); ok {
		_spec.SetField(dataset.FieldDatasetID, field.TypeString, value)
		_node.DatasetID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(dataset.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(dataset.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(dataset.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.CardCount(); ok {
		_spec.SetField(dataset.FieldCardCount, field.TypeInt, value)
		_node.CardCount = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(dataset.FieldUpdatedAt, field.TypeInt64, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// DatasetCreateBulk is the builder for creating many Dataset entities in bulk.
type DatasetCreateBulk struct {
	config
	err      error
	builders []*DatasetCreate
}

// Save creates the Dataset entities in the database.
func (_c *DatasetCreateBulk) Save(ctx context.Context) ([]*Dataset, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Dataset, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DatasetMutation)
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
func (_c *DatasetCreateBulk) SaveX(ctx context.Context) []*Dataset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DatasetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DatasetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
