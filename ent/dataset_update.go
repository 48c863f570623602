// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/hkawai/kioku/ent/dataset"
	"github.com/hkawai/kioku/ent/predicate"
)

// DatasetUpdate is the builder for updating Dataset entities.
type DatasetUpdate struct {
	config
	hooks    []Hook
	mutation *DatasetMutation
}

// Where appends a list predicates to the DatasetUpdate builder.
func (_u *DatasetUpdate) Where(ps ...predicate.Dataset) *DatasetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDatasetID sets the "dataset_id" field.
func (_u *DatasetUpdate) SetDatasetID(v string) *DatasetUpdate {
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableDatasetID(v *string) *DatasetUpdate {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DatasetUpdate) SetTitle(v string) *DatasetUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableTitle(v *string) *DatasetUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *DatasetUpdate) SetDescription(v string) *DatasetUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableDescription(v *string) *DatasetUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *DatasetUpdate) ClearDescription() *DatasetUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetTags sets the "tags" field.
func (_u *DatasetUpdate) SetTags(v []string) *DatasetUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *DatasetUpdate) AppendTags(v []string) *DatasetUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *DatasetUpdate) ClearTags() *DatasetUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetCardCount sets the "card_count" field.
func (_u *DatasetUpdate) SetCardCount(v int) *DatasetUpdate {
	_u.mutation.ResetCardCount()
	_u.mutation.SetCardCount(v)
	return _u
}

// SetNillableCardCount sets the "card_count" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableCardCount(v *int) *DatasetUpdate {
	if v != nil {
		_u.SetCardCount(*v)
	}
	return _u
}

// AddCardCount adds value to the "card_count" field.
func (_u *DatasetUpdate) AddCardCount(v int) *DatasetUpdate {
	_u.mutation.AddCardCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DatasetUpdate) SetUpdatedAt(v int64) *DatasetUpdate {
	_u.mutation.ResetUpdatedAt()
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableUpdatedAt(v *int64) *DatasetUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddUpdatedAt adds value to the "updated_at" field.
func (_u *DatasetUpdate) AddUpdatedAt(v int64) *DatasetUpdate {
	_u.mutation.AddUpdatedAt(v)
	return _u
}

// Mutation returns the DatasetMutation object of the builder.
func (_u *DatasetUpdate) Mutation() *DatasetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DatasetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DatasetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DatasetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DatasetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DatasetUpdate) check() error {
	if v, ok := _u.mutation.DatasetID(); ok {
		if err := dataset.DatasetIDValidator(v); err != nil {
			return &ValidationError{Name: "dataset_id", err: fmt.Errorf(`ent: validator failed for field "Dataset.dataset_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := dataset.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Dataset.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CardCount(); ok {
		if err := dataset.CardCountValidator(v); err != nil {
			return &ValidationError{Name: "card_count", err: fmt.Errorf(`ent: validator failed for field "Dataset.card_count": %w`, err)}
		}
	}
	return nil
}

func (_u *DatasetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dataset.Table, dataset.Columns, sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DatasetID(); ok {
		_spec.SetField(dataset.FieldDatasetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(dataset.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(dataset.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(dataset.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(dataset.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dataset.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(dataset.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.CardCount(); ok {
		_spec.SetField(dataset.FieldCardCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCardCount(); ok {
		_spec.AddField(dataset.FieldCardCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dataset.FieldUpdatedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUpdatedAt(); ok {
		_spec.AddField(dataset.FieldUpdatedAt, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dataset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DatasetUpdateOne is the builder for updating a single Dataset entity.
type DatasetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DatasetMutation
}

// SetDatasetID sets the "dataset_id" field.
func (_u *DatasetUpdateOne) SetDatasetID(v string) *DatasetUpdateOne {
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableDatasetID(v *string) *DatasetUpdateOne {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DatasetUpdateOne) SetTitle(v string) *DatasetUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableTitle(v *string) *DatasetUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *DatasetUpdateOne) SetDescription(v string) *DatasetUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableDescription(v *string) *DatasetUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *DatasetUpdateOne) ClearDescription() *DatasetUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetTags sets the "tags" field.
func (_u *DatasetUpdateOne) SetTags(v []string) *DatasetUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *DatasetUpdateOne) AppendTags(v []string) *DatasetUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *DatasetUpdateOne) ClearTags() *DatasetUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetCardCount sets the "card_count" field.
func (_u *DatasetUpdateOne) SetCardCount(v int) *DatasetUpdateOne {
	_u.mutation.ResetCardCount()
	_u.mutation.SetCardCount(v)
	return _u
}

// SetNillableCardCount sets the "card_count" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableCardCount(v *int) *DatasetUpdateOne {
	if v != nil {
		_u.SetCardCount(*v)
	}
	return _u
}

// AddCardCount adds value to the "card_count" field.
func (_u *DatasetUpdateOne) AddCardCount(v int) *DatasetUpdateOne {
	_u.mutation.AddCardCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DatasetUpdateOne) SetUpdatedAt(v int64) *DatasetUpdateOne {
	_u.mutation.ResetUpdatedAt()
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableUpdatedAt(v *int64) *DatasetUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddUpdatedAt adds value to the "updated_at" field.
func (_u *DatasetUpdateOne) AddUpdatedAt(v int64) *DatasetUpdateOne {
	_u.mutation.AddUpdatedAt(v)
	return _u
}

// Mutation returns the DatasetMutation object of the builder.
func (_u *DatasetUpdateOne) Mutation() *DatasetMutation {
	return _u.mutation
}

// Where appends a list predicates to the DatasetUpdate builder.
func (_u *DatasetUpdateOne) Where(ps ...predicate.Dataset) *DatasetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DatasetUpdateOne) Select(field string, fields ...string) *DatasetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Dataset entity.
func (_u *DatasetUpdateOne) Save(ctx context.Context) (*Dataset, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DatasetUpdateOne) SaveX(ctx context.Context) *Dataset {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DatasetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DatasetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DatasetUpdateOne) check() error {
	if v, ok := _u.mutation.DatasetID(); ok {
		if err := dataset.DatasetIDValidator(v); err != nil {
			return &ValidationError{Name: "dataset_id", err: fmt.Errorf(`ent: validator failed for field "Dataset.dataset_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := dataset.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Dataset.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CardCount(); ok {
		if err := dataset.CardCountValidator(v); err != nil {
			return &ValidationError{Name: "card_count", err: fmt.Errorf(`ent: validator failed for field "Dataset.card_count": %w`, err)}
		}
	}
	return nil
}

func (_u *DatasetUpdateOne) sqlSave(ctx context.Context) (_node *Dataset, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dataset.Table, dataset.Columns, sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Dataset.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dataset.FieldID)
		for _, f := range fields {
			if !dataset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dataset.FieldID {
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
	if value, ok := _u.mutation.DatasetID(); ok {
		_spec.SetField(dataset.FieldDatasetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(dataset.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(dataset.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(dataset.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(dataset.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dataset.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(dataset.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.CardCount(); ok {
		_spec.SetField(dataset.FieldCardCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCardCount(); ok {
		_spec.AddField(dataset.FieldCardCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dataset.FieldUpdatedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUpdatedAt(); ok {
		_spec.AddField(dataset.FieldUpdatedAt, field.TypeInt64, value)
	}
	_node = &Dataset{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dataset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
