// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hkawai/kioku/ent/predicate"
	"github.com/hkawai/kioku/ent/setting"
)

// SettingUpdate is the builder for updating Setting entities.
type SettingUpdate struct {
	config
	hooks    []Hook
	mutation *SettingMutation
}

// Where appends a list predicates to the SettingUpdate builder.
func (_u *SettingUpdate) Where(ps ...predicate.Setting) *SettingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKey sets the "key" field.
func (_u *SettingUpdate) SetKey(v string) *SettingUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *SettingUpdate) SetNillableKey(v *string) *SettingUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetTargetRetention sets the "target_retention" field.
func (_u *SettingUpdate) SetTargetRetention(v float64) *SettingUpdate {
	_u.mutation.ResetTargetRetention()
	_u.mutation.SetTargetRetention(v)
	return _u
}

// SetNillableTargetRetention sets the "target_retention" field if the given value is not nil.
func (_u *SettingUpdate) SetNillableTargetRetention(v *float64) *SettingUpdate {
	if v != nil {
		_u.SetTargetRetention(*v)
	}
	return _u
}

// AddTargetRetention adds value to the "target_retention" field.
func (_u *SettingUpdate) AddTargetRetention(v float64) *SettingUpdate {
	_u.mutation.AddTargetRetention(v)
	return _u
}

// SetExamDate sets the "exam_date" field.
func (_u *SettingUpdate) SetExamDate(v string) *SettingUpdate {
	_u.mutation.SetExamDate(v)
	return _u
}

// SetNillableExamDate sets the "exam_date" field if the given value is not nil.
func (_u *SettingUpdate) SetNillableExamDate(v *string) *SettingUpdate {
	if v != nil {
		_u.SetExamDate(*v)
	}
	return _u
}

// ClearExamDate clears the value of the "exam_date" field.
func (_u *SettingUpdate) ClearExamDate() *SettingUpdate {
	_u.mutation.ClearExamDate()
	return _u
}

// Mutation returns the SettingMutation object of the builder.
func (_u *SettingUpdate) Mutation() *SettingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SettingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SettingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SettingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SettingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SettingUpdate) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := setting.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "Setting.key": %w`, err)}
		}
	}
	return nil
}

func (_u *SettingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(setting.Table, setting.Columns, sqlgraph.NewFieldSpec(setting.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(setting.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetRetention(); ok {
		_spec.SetField(setting.FieldTargetRetention, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTargetRetention(); ok {
		_spec.AddField(setting.FieldTargetRetention, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExamDate(); ok {
		_spec.SetField(setting.FieldExamDate, field.TypeString, value)
	}
	if _u.mutation.ExamDateCleared() {
		_spec.ClearField(setting.FieldExamDate, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{setting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SettingUpdateOne is the builder for updating a single Setting entity.
type SettingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SettingMutation
}

// SetKey sets the "key" field.
func (_u *SettingUpdateOne) SetKey(v string) *SettingUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *SettingUpdateOne) SetNillableKey(v *string) *SettingUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetTargetRetention sets the "target_retention" field.
func (_u *SettingUpdateOne) SetTargetRetention(v float64) *SettingUpdateOne {
	_u.mutation.ResetTargetRetention()
	_u.mutation.SetTargetRetention(v)
	return _u
}

// SetNillableTargetRetention sets the "target_retention" field if the given value is not nil.
func (_u *SettingUpdateOne) SetNillableTargetRetention(v *float64) *SettingUpdateOne {
	if v != nil {
		_u.SetTargetRetention(*v)
	}
	return _u
}

// AddTargetRetention adds value to the "target_retention" field.
func (_u *SettingUpdateOne) AddTargetRetention(v float64) *SettingUpdateOne {
	_u.mutation.AddTargetRetention(v)
	return _u
}

// SetExamDate sets the "exam_date" field.
func (_u *SettingUpdateOne) SetExamDate(v string) *SettingUpdateOne {
	_u.mutation.SetExamDate(v)
	return _u
}

// SetNillableExamDate sets the "exam_date" field if the given value is not nil.
func (_u *SettingUpdateOne) SetNillableExamDate(v *string) *SettingUpdateOne {
	if v != nil {
		_u.SetExamDate(*v)
	}
	return _u
}

// ClearExamDate clears the value of the "exam_date" field.
func (_u *SettingUpdateOne) ClearExamDate() *SettingUpdateOne {
	_u.mutation.ClearExamDate()
	return _u
}

// Mutation returns the SettingMutation object of the builder.
func (_u *SettingUpdateOne) Mutation() *SettingMutation {
	return _u.mutation
}

// Where appends a list predicates to the SettingUpdate builder.
func (_u *SettingUpdateOne) Where(ps ...predicate.Setting) *SettingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SettingUpdateOne) Select(field string, fields ...string) *SettingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Setting entity.
func (_u *SettingUpdateOne) Save(ctx context.Context) (*Setting, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SettingUpdateOne) SaveX(ctx context.Context) *Setting {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SettingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SettingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SettingUpdateOne) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := setting.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "Setting.key": %w`, err)}
		}
	}
	return nil
}

func (_u *SettingUpdateOne) sqlSave(ctx context.Context) (_node *Setting, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(setting.Table, setting.Columns, sqlgraph.NewFieldSpec(setting.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Setting.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, setting.FieldID)
		for _, f := range fields {
			if !setting.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != setting.FieldID {
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
		_spec.SetField(setting.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetRetention(); ok {
		_spec.SetField(setting.FieldTargetRetention, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTargetRetention(); ok {
		_spec.AddField(setting.FieldTargetRetention, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExamDate(); ok {
		_spec.SetField(setting.FieldExamDate, field.TypeString, value)
	}
	if _u.mutation.ExamDateCleared() {
		_spec.ClearField(setting.FieldExamDate, field.TypeString)
	}
	_node = &Setting{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{setting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
