// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hkawai/kioku/ent/confusion"
	"github.com/hkawai/kioku/ent/predicate"
)

// ConfusionUpdate is the builder for updating Confusion entities.
type ConfusionUpdate struct {
	config
	hooks    []Hook
	mutation *ConfusionMutation
}

// Where appends a list predicates to the ConfusionUpdate builder.
func (_u *ConfusionUpdate) Where(ps ...predicate.Confusion) *ConfusionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKey sets the "key" field.
func (_u *ConfusionUpdate) SetKey(v string) *ConfusionUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *ConfusionUpdate) SetNillableKey(v *string) *ConfusionUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetDatasetID sets the "dataset_id" field.
func (_u *ConfusionUpdate) SetDatasetID(v string) *ConfusionUpdate {
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *ConfusionUpdate) SetNillableDatasetID(v *string) *ConfusionUpdate {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// SetPairKey sets the "pair_key" field.
func (_u *ConfusionUpdate) SetPairKey(v string) *ConfusionUpdate {
	_u.mutation.SetPairKey(v)
	return _u
}

// SetNillablePairKey sets the "pair_key" field if the given value is not nil.
func (_u *ConfusionUpdate) SetNillablePairKey(v *string) *ConfusionUpdate {
	if v != nil {
		_u.SetPairKey(*v)
	}
	return _u
}

// SetCardA sets the "card_a" field.
func (_u *ConfusionUpdate) SetCardA(v string) *ConfusionUpdate {
	_u.mutation.SetCardA(v)
	return _u
}

// SetNillableCardA sets the "card_a" field if the given value is not nil.
func (_u *ConfusionUpdate) SetNillableCardA(v *string) *ConfusionUpdate {
	if v != nil {
		_u.SetCardA(*v)
	}
	return _u
}

// SetCardB sets the "card_b" field.
func (_u *ConfusionUpdate) SetCardB(v string) *ConfusionUpdate {
	_u.mutation.SetCardB(v)
	return _u
}

// SetNillableCardB sets the "card_b" field if the given value is not nil.
func (_u *ConfusionUpdate) SetNillableCardB(v *string) *ConfusionUpdate {
	if v != nil {
		_u.SetCardB(*v)
	}
	return _u
}

// SetCount sets the "count" field.
func (_u *ConfusionUpdate) SetCount(v int) *ConfusionUpdate {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *ConfusionUpdate) SetNillableCount(v *int) *ConfusionUpdate {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *ConfusionUpdate) AddCount(v int) *ConfusionUpdate {
	_u.mutation.AddCount(v)
	return _u
}

// Mutation returns the ConfusionMutation object of the builder.
func (_u *ConfusionUpdate) Mutation() *ConfusionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConfusionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConfusionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConfusionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConfusionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConfusionUpdate) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := confusion.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "Confusion.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DatasetID(); ok {
		if err := confusion.DatasetIDValidator(v); err != nil {
			return &ValidationError{Name: "dataset_id", err: fmt.Errorf(`ent: validator failed for field "Confusion.dataset_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PairKey(); ok {
		if err := confusion.PairKeyValidator(v); err != nil {
			return &ValidationError{Name: "pair_key", err: fmt.Errorf(`ent: validator failed for field "Confusion.pair_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CardA(); ok {
		if err := confusion.CardAValidator(v); err != nil {
			return &ValidationError{Name: "card_a", err: fmt.Errorf(`ent: validator failed for field "Confusion.card_a": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CardB(); ok {
		if err := confusion.CardBValidator(v); err != nil {
			return &ValidationError{Name: "card_b", err: fmt.Errorf(`ent: validator failed for field "Confusion.card_b": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Count(); ok {
		if err := confusion.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "Confusion.count": %w`, err)}
		}
	}
	return nil
}

func (_u *ConfusionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(confusion.Table, confusion.Columns, sqlgraph.NewFieldSpec(confusion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(confusion.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.DatasetID(); ok {
		_spec.SetField(confusion.FieldDatasetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PairKey(); ok {
		_spec.SetField(confusion.FieldPairKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.CardA(); ok {
		_spec.SetField(confusion.FieldCardA, field.TypeString, value)
	}
	if value, ok := _u.mutation.CardB(); ok {
		_spec.SetField(confusion.FieldCardB, field.TypeString, value)
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(confusion.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(confusion.FieldCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{confusion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConfusionUpdateOne is the builder for updating a single Confusion entity.
type ConfusionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConfusionMutation
}

// SetKey sets the "key" field.
func (_u *ConfusionUpdateOne) SetKey(v string) *ConfusionUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *ConfusionUpdateOne) SetNillableKey(v *string) *ConfusionUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetDatasetID sets the "dataset_id" field.
func (_u *ConfusionUpdateOne) SetDatasetID(v string) *ConfusionUpdateOne {
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *ConfusionUpdateOne) SetNillableDatasetID(v *string) *ConfusionUpdateOne {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// SetPairKey sets the "pair_key" field.
func (_u *ConfusionUpdateOne) SetPairKey(v string) *ConfusionUpdateOne {
	_u.mutation.SetPairKey(v)
	return _u
}

// SetNillablePairKey sets the "pair_key" field if the given value is not nil.
func (_u *ConfusionUpdateOne) SetNillablePairKey(v *string) *ConfusionUpdateOne {
	if v != nil {
		_u.SetPairKey(*v)
	}
	return _u
}

// SetCardA sets the "card_a" field.
func (_u *ConfusionUpdateOne) SetCardA(v string) *ConfusionUpdateOne {
	_u.mutation.SetCardA(v)
	return _u
}

// SetNillableCardA sets the "card_a" field if the given value is not nil.
func (_u *ConfusionUpdateOne) SetNillableCardA(v *string) *ConfusionUpdateOne {
	if v != nil {
		_u.SetCardA(*v)
	}
	return _u
}

// SetCardB sets the "card_b" field.
func (_u *ConfusionUpdateOne) SetCardB(v string) *ConfusionUpdateOne {
	_u.mutation.SetCardB(v)
	return _u
}

// SetNillableCardB sets the "card_b" field if the given value is not nil.
func (_u *ConfusionUpdateOne) SetNillableCardB(v *string) *ConfusionUpdateOne {
	if v != nil {
		_u.SetCardB(*v)
	}
	return _u
}

// SetCount sets the "count" field.
func (_u *ConfusionUpdateOne) SetCount(v int) *ConfusionUpdateOne {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *ConfusionUpdateOne) SetNillableCount(v *int) *ConfusionUpdateOne {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *ConfusionUpdateOne) AddCount(v int) *ConfusionUpdateOne {
	_u.mutation.AddCount(v)
	return _u
}

// Mutation returns the ConfusionMutation object of the builder.
func (_u *ConfusionUpdateOne) Mutation() *ConfusionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConfusionUpdate builder.
func (_u *ConfusionUpdateOne) Where(ps ...predicate.Confusion) *ConfusionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConfusionUpdateOne) Select(field string, fields ...string) *ConfusionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Confusion entity.
func (_u *ConfusionUpdateOne) Save(ctx context.Context) (*Confusion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConfusionUpdateOne) SaveX(ctx context.Context) *Confusion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConfusionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConfusionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConfusionUpdateOne) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := confusion.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "Confusion.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DatasetID(); ok {
		if err := confusion.DatasetIDValidator(v); err != nil {
			return &ValidationError{Name: "dataset_id", err: fmt.Errorf(`ent: validator failed for field "Confusion.dataset_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PairKey(); ok {
		if err := confusion.PairKeyValidator(v); err != nil {
			return &ValidationError{Name: "pair_key", err: fmt.Errorf(`ent: validator failed for field "Confusion.pair_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CardA(); ok {
		if err := confusion.CardAValidator(v); err != nil {
			return &ValidationError{Name: "card_a", err: fmt.Errorf(`ent: validator failed for field "Confusion.card_a": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CardB(); ok {
		if err := confusion.CardBValidator(v); err != nil {
			return &ValidationError{Name: "card_b", err: fmt.Errorf(`ent: validator failed for field "Confusion.card_b": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Count(); ok {
		if err := confusion.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "Confusion.count": %w`, err)}
		}
	}
	return nil
}

func (_u *ConfusionUpdateOne) sqlSave(ctx context.Context) (_node *Confusion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(confusion.Table, confusion.Columns, sqlgraph.NewFieldSpec(confusion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Confusion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, confusion.FieldID)
		for _, f := range fields {
			if !confusion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != confusion.FieldID {
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
		_spec.SetField(confusion.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.DatasetID(); ok {
		_spec.SetField(confusion.FieldDatasetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PairKey(); ok {
		_spec.SetField(confusion.FieldPairKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.CardA(); ok {
		_spec.SetField(confusion.FieldCardA, field.TypeString, value)
	}
	if value, ok := _u.mutation.CardB(); ok {
		_spec.SetField(confusion.FieldCardB, field.TypeString, value)
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(confusion.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(confusion.FieldCount, field.TypeInt, value)
	}
	_node = &Confusion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{confusion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
