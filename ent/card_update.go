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
	"github.com/hkawai/kioku/ent/card"
	"github.com/hkawai/kioku/ent/predicate"
)

// CardUpdate is the builder for updating Card entities.
type CardUpdate struct {
	config
	hooks    []Hook
	mutation *CardMutation
}

// Where appends a list predicates to the CardUpdate builder.
func (_u *CardUpdate) Where(ps ...predicate.Card) *CardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKey sets the "key" field.
func (_u *CardUpdate) SetKey(v string) *CardUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *CardUpdate) SetNillableKey(v *string) *CardUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetDatasetID sets the "dataset_id" field.
func (_u *CardUpdate) SetDatasetID(v string) *CardUpdate {
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *CardUpdate) SetNillableDatasetID(v *string) *CardUpdate {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *CardUpdate) SetCardID(v string) *CardUpdate {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *CardUpdate) SetNillableCardID(v *string) *CardUpdate {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *CardUpdate) SetQuestion(v string) *CardUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *CardUpdate) SetNillableQuestion(v *string) *CardUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *CardUpdate) SetAnswers(v []string) *CardUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *CardUpdate) AppendAnswers(v []string) *CardUpdate {
	_u.mutation.AppendAnswers(v)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *CardUpdate) SetTopic(v string) *CardUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *CardUpdate) SetNillableTopic(v *string) *CardUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// ClearTopic clears the value of the "topic" field.
func (_u *CardUpdate) ClearTopic() *CardUpdate {
	_u.mutation.ClearTopic()
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *CardUpdate) SetExplanation(v string) *CardUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *CardUpdate) SetNillableExplanation(v *string) *CardUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *CardUpdate) ClearExplanation() *CardUpdate {
	_u.mutation.ClearExplanation()
	return _u
}

// SetTags sets the "tags" field.
func (_u *CardUpdate) SetTags(v []string) *CardUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *CardUpdate) AppendTags(v []string) *CardUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *CardUpdate) ClearTags() *CardUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CardUpdate) SetCreatedAt(v string) *CardUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CardUpdate) SetNillableCreatedAt(v *string) *CardUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CardUpdate) SetUpdatedAt(v string) *CardUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *CardUpdate) SetNillableUpdatedAt(v *string) *CardUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the CardMutation object of the builder.
func (_u *CardUpdate) Mutation() *CardMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CardUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardUpdate) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := card.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "Card.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DatasetID(); ok {
		if err := card.DatasetIDValidator(v); err != nil {
			return &ValidationError{Name: "dataset_id", err: fmt.Errorf(`ent: validator failed for field "Card.dataset_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CardID(); ok {
		if err := card.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "Card.card_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := card.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Card.question": %w`, err)}
		}
	}
	return nil
}

func (_u *CardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(card.Table, card.Columns, sqlgraph.NewFieldSpec(card.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(card.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.DatasetID(); ok {
		_spec.SetField(card.FieldDatasetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(card.FieldCardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(card.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(card.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, card.FieldAnswers, value)
		})
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(card.FieldTopic, field.TypeString, value)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(card.FieldTopic, field.TypeString)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(card.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(card.FieldExplanation, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(card.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, card.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(card.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(card.FieldCreatedAt, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(card.FieldUpdatedAt, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{card.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CardUpdateOne is the builder for updating a single Card entity.
type CardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CardMutation
}

// SetKey sets the "key" field.
func (_u *CardUpdateOne) SetKey(v string) *CardUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableKey(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetDatasetID sets the "dataset_id" field.
func (_u *CardUpdateOne) SetDatasetID(v string) *CardUpdateOne {
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableDatasetID(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *CardUpdateOne) SetCardID(v string) *CardUpdateOne {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableCardID(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *CardUpdateOne) SetQuestion(v string) *CardUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableQuestion(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *CardUpdateOne) SetAnswers(v []string) *CardUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *CardUpdateOne) AppendAnswers(v []string) *CardUpdateOne {
	_u.mutation.AppendAnswers(v)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *CardUpdateOne) SetTopic(v string) *CardUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableTopic(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// ClearTopic clears the value of the "topic" field.
func (_u *CardUpdateOne) ClearTopic() *CardUpdateOne {
	_u.mutation.ClearTopic()
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *CardUpdateOne) SetExplanation(v string) *CardUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableExplanation(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *CardUpdateOne) ClearExplanation() *CardUpdateOne {
	_u.mutation.ClearExplanation()
	return _u
}

// SetTags sets the "tags" field.
func (_u *CardUpdateOne) SetTags(v []string) *CardUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *CardUpdateOne) AppendTags(v []string) *CardUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *CardUpdateOne) ClearTags() *CardUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CardUpdateOne) SetCreatedAt(v string) *CardUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableCreatedAt(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CardUpdateOne) SetUpdatedAt(v string) *CardUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableUpdatedAt(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the CardMutation object of the builder.
func (_u *CardUpdateOne) Mutation() *CardMutation {
	return _u.mutation
}

// Where appends a list predicates to the CardUpdate builder.
func (_u *CardUpdateOne) Where(ps ...predicate.Card) *CardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CardUpdateOne) Select(field string, fields ...string) *CardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Card entity.
func (_u *CardUpdateOne) Save(ctx context.Context) (*Card, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardUpdateOne) SaveX(ctx context.Context) *Card {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardUpdateOne) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := card.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "Card.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DatasetID(); ok {
		if err := card.DatasetIDValidator(v); err != nil {
			return &ValidationError{Name: "dataset_id", err: fmt.Errorf(`ent: validator failed for field "Card.dataset_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CardID(); ok {
		if err := card.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "Card.card_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := card.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Card.question": %w`, err)}
		}
	}
	return nil
}

func (_u *CardUpdateOne) sqlSave(ctx context.Context) (_node *Card, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(card.Table, card.Columns, sqlgraph.NewFieldSpec(card.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Card.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, card.FieldID)
		for _, f := range fields {
			if !card.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != card.FieldID {
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
		_spec.SetField(card.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.DatasetID(); ok {
		_spec.SetField(card.FieldDatasetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(card.FieldCardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(card.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(card.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, card.FieldAnswers, value)
		})
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(card.FieldTopic, field.TypeString, value)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(card.FieldTopic, field.TypeString)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(card.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(card.FieldExplanation, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(card.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, card.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(card.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(card.FieldCreatedAt, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(card.FieldUpdatedAt, field.TypeString, value)
	}
	_node = &Card{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{card.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
