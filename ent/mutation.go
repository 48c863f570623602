// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hkawai/kioku/ent/card"
	"github.com/hkawai/kioku/ent/cardstate"
	"github.com/hkawai/kioku/ent/confusion"
	"github.com/hkawai/kioku/ent/dataset"
	"github.com/hkawai/kioku/ent/predicate"
	"github.com/hkawai/kioku/ent/review"
	"github.com/hkawai/kioku/ent/setting"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCard      = "Card"
	TypeCardState = "CardState"
	TypeConfusion = "Confusion"
	TypeDataset   = "Dataset"
	TypeReview    = "Review"
	TypeSetting   = "Setting"
)

// CardMutation represents an operation that mutates the Card nodes in the graph.
type CardMutation struct {
	config
	op            Op
	typ           string
	id            *int
	key           *string
	dataset_id    *string
	card_id       *string
	question      *string
	answers       *[]string
	appendanswers []string
	topic         *string
	explanation   *string
	tags          *[]string
	appendtags    []string
	created_at    *string
	updated_at    *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Card, error)
	predicates    []predicate.Card
}

var _ ent.Mutation = (*CardMutation)(nil)

// cardOption allows management of the mutation configuration using functional options.
type cardOption func(*CardMutation)

// newCardMutation creates new mutation for the Card entity.
func newCardMutation(c config, op Op, opts ...cardOption) *CardMutation {
	m := &CardMutation{
		config:        c,
		op:            op,
		typ:           TypeCard,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCardID sets the ID field of the mutation.
func withCardID(id int) cardOption {
	return func(m *CardMutation) {
		var (
			err   error
			once  sync.Once
			value *Card
		)
		m.oldValue = func(ctx context.Context) (*Card, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Card.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCard sets the old Card of the mutation.
func withCard(node *Card) cardOption {
	return func(m *CardMutation) {
		m.oldValue = func(context.Context) (*Card, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CardMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CardMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CardMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CardMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Card.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *CardMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *CardMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *CardMutation) ResetKey() {
	m.key = nil
}

// SetDatasetID sets the "dataset_id" field.
func (m *CardMutation) SetDatasetID(s string) {
	m.dataset_id = &s
}

// DatasetID returns the value of the "dataset_id" field in the mutation.
func (m *CardMutation) DatasetID() (r string, exists bool) {
	v := m.dataset_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDatasetID returns the old "dataset_id" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldDatasetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatasetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatasetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatasetID: %w", err)
	}
	return oldValue.DatasetID, nil
}

// ResetDatasetID resets all changes to the "dataset_id" field.
func (m *CardMutation) ResetDatasetID() {
	m.dataset_id = nil
}

// SetCardID sets the "card_id" field.
func (m *CardMutation) SetCardID(s string) {
	m.card_id = &s
}

// CardID returns the value of the "card_id" field in the mutation.
func (m *CardMutation) CardID() (r string, exists bool) {
	v := m.card_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCardID returns the old "card_id" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldCardID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCardID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCardID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCardID: %w", err)
	}
	return oldValue.CardID, nil
}

// ResetCardID resets all changes to the "card_id" field.
func (m *CardMutation) ResetCardID() {
	m.card_id = nil
}

// SetQuestion sets the "question" field.
func (m *CardMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *CardMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ResetQuestion resets all changes to the "question" field.
func (m *CardMutation) ResetQuestion() {
	m.question = nil
}

// SetAnswers sets the "answers" field.
func (m *CardMutation) SetAnswers(s []string) {
	m.answers = &s
	m.appendanswers = nil
}

// Answers returns the value of the "answers" field in the mutation.
func (m *CardMutation) Answers() (r []string, exists bool) {
	v := m.answers
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswers returns the old "answers" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldAnswers(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswers: %w", err)
	}
	return oldValue.Answers, nil
}

// AppendAnswers adds s to the "answers" field.
func (m *CardMutation) AppendAnswers(s []string) {
	m.appendanswers = append(m.appendanswers, s...)
}

// AppendedAnswers returns the list of values that were appended to the "answers" field in this mutation.
func (m *CardMutation) AppendedAnswers() ([]string, bool) {
	if len(m.appendanswers) == 0 {
		return nil, false
	}
	return m.appendanswers, true
}

// ResetAnswers resets all changes to the "answers" field.
func (m *CardMutation) ResetAnswers() {
	m.answers = nil
	m.appendanswers = nil
}

// SetTopic sets the "topic" field.
func (m *CardMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *CardMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ClearTopic clears the value of the "topic" field.
func (m *CardMutation) ClearTopic() {
	m.topic = nil
	m.clearedFields[card.FieldTopic] = struct{}{}
}

// TopicCleared returns if the "topic" field was cleared in this mutation.
func (m *CardMutation) TopicCleared() bool {
	_, ok := m.clearedFields[card.FieldTopic]
	return ok
}

// ResetTopic resets all changes to the "topic" field.
func (m *CardMutation) ResetTopic() {
	m.topic = nil
	delete(m.clearedFields, card.FieldTopic)
}

// SetExplanation sets the "explanation" field.
func (m *CardMutation) SetExplanation(s string) {
	m.explanation = &s
}

// Explanation returns the value of the "explanation" field in the mutation.
func (m *CardMutation) Explanation() (r string, exists bool) {
	v := m.explanation
	if v == nil {
		return
	}
	return *v, true
}

// OldExplanation returns the old "explanation" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldExplanation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplanation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplanation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplanation: %w", err)
	}
	return oldValue.Explanation, nil
}

// ClearExplanation clears the value of the "explanation" field.
func (m *CardMutation) ClearExplanation() {
	m.explanation = nil
	m.clearedFields[card.FieldExplanation] = struct{}{}
}

// ExplanationCleared returns if the "explanation" field was cleared in this mutation.
func (m *CardMutation) ExplanationCleared() bool {
	_, ok := m.clearedFields[card.FieldExplanation]
	return ok
}

// ResetExplanation resets all changes to the "explanation" field.
func (m *CardMutation) ResetExplanation() {
	m.explanation = nil
	delete(m.clearedFields, card.FieldExplanation)
}

// SetTags sets the "tags" field.
func (m *CardMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *CardMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *CardMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *CardMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *CardMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[card.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *CardMutation) TagsCleared() bool {
	_, ok := m.clearedFields[card.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *CardMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, card.FieldTags)
}

// SetCreatedAt sets the "created_at" field.
func (m *CardMutation) SetCreatedAt(s string) {
	m.created_at = &s
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CardMutation) CreatedAt() (r string, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldCreatedAt(ctx context.Context) (v string, err error) {
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
func (m *CardMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CardMutation) SetUpdatedAt(s string) {
	m.updated_at = &s
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CardMutation) UpdatedAt() (r string, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldUpdatedAt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CardMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CardMutation builder.
func (m *CardMutation) Where(ps ...predicate.Card) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CardMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CardMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Card, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CardMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CardMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Card).
func (m *CardMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CardMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.key != nil {
		fields = append(fields, card.FieldKey)
	}
	if m.dataset_id != nil {
		fields = append(fields, card.FieldDatasetID)
	}
	if m.card_id != nil {
		fields = append(fields, card.FieldCardID)
	}
	if m.question != nil {
		fields = append(fields, card.FieldQuestion)
	}
	if m.answers != nil {
		fields = append(fields, card.FieldAnswers)
	}
	if m.topic != nil {
		fields = append(fields, card.FieldTopic)
	}
	if m.explanation != nil {
		fields = append(fields, card.FieldExplanation)
	}
	if m.tags != nil {
		fields = append(fields, card.FieldTags)
	}
	if m.created_at != nil {
		fields = append(fields, card.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, card.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CardMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case card.FieldKey:
		return m.Key()
	case card.FieldDatasetID:
		return m.DatasetID()
	case card.FieldCardID:
		return m.CardID()
	case card.FieldQuestion:
		return m.Question()
	case card.FieldAnswers:
		return m.Answers()
	case card.FieldTopic:
		return m.Topic()
	case card.FieldExplanation:
		return m.Explanation()
	case card.FieldTags:
		return m.Tags()
	case card.FieldCreatedAt:
		return m.CreatedAt()
	case card.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CardMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case card.FieldKey:
		return m.OldKey(ctx)
	case card.FieldDatasetID:
		return m.OldDatasetID(ctx)
	case card.FieldCardID:
		return m.OldCardID(ctx)
	case card.FieldQuestion:
		return m.OldQuestion(ctx)
	case card.FieldAnswers:
		return m.OldAnswers(ctx)
	case card.FieldTopic:
		return m.OldTopic(ctx)
	case card.FieldExplanation:
		return m.OldExplanation(ctx)
	case card.FieldTags:
		return m.OldTags(ctx)
	case card.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case card.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Card field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CardMutation) SetField(name string, value ent.Value) error {
	switch name {
	case card.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case card.FieldDatasetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatasetID(v)
		return nil
	case card.FieldCardID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCardID(v)
		return nil
	case card.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case card.FieldAnswers:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswers(v)
		return nil
	case card.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case card.FieldExplanation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplanation(v)
		return nil
	case card.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case card.FieldCreatedAt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case card.FieldUpdatedAt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Card field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CardMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CardMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CardMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Card numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CardMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(card.FieldTopic) {
		fields = append(fields, card.FieldTopic)
	}
	if m.FieldCleared(card.FieldExplanation) {
		fields = append(fields, card.FieldExplanation)
	}
	if m.FieldCleared(card.FieldTags) {
		fields = append(fields, card.FieldTags)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CardMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CardMutation) ClearField(name string) error {
	switch name {
	case card.FieldTopic:
		m.ClearTopic()
		return nil
	case card.FieldExplanation:
		m.ClearExplanation()
		return nil
	case card.FieldTags:
		m.ClearTags()
		return nil
	}
	return fmt.Errorf("unknown Card nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CardMutation) ResetField(name string) error {
	switch name {
	case card.FieldKey:
		m.ResetKey()
		return nil
	case card.FieldDatasetID:
		m.ResetDatasetID()
		return nil
	case card.FieldCardID:
		m.ResetCardID()
		return nil
	case card.FieldQuestion:
		m.ResetQuestion()
		return nil
	case card.FieldAnswers:
		m.ResetAnswers()
		return nil
	case card.FieldTopic:
		m.ResetTopic()
		return nil
	case card.FieldExplanation:
		m.ResetExplanation()
		return nil
	case card.FieldTags:
		m.ResetTags()
		return nil
	case card.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case card.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Card field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CardMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CardMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CardMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CardMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CardMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CardMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CardMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Card unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CardMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Card edge %s", name)
}

// CardStateMutation represents an operation that mutates the CardState nodes in the graph.
type CardStateMutation struct {
	config
	op                Op
	typ               string
	id                *int
	key               *string
	dataset_id        *string
	card_id           *string
	stability         *float64
	addstability      *float64
	difficulty        *float64
	adddifficulty     *float64
	last_review_at    *int64
	addlast_review_at *int64
	due_at            *int64
	adddue_at         *int64
	reps              *int
	addreps           *int
	lapses            *int
	addlapses         *int
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*CardState, error)
	predicates        []predicate.CardState
}

var _ ent.Mutation = (*CardStateMutation)(nil)

// cardstateOption allows management of the mutation configuration using functional options.
type cardstateOption func(*CardStateMutation)

// newCardStateMutation creates new mutation for the CardState entity.
func newCardStateMutation(c config, op Op, opts ...cardstateOption) *CardStateMutation {
	m := &CardStateMutation{
		config:        c,
		op:            op,
		typ:           TypeCardState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCardStateID sets the ID field of the mutation.
func withCardStateID(id int) cardstateOption {
	return func(m *CardStateMutation) {
		var (
			err   error
			once  sync.Once
			value *CardState
		)
		m.oldValue = func(ctx context.Context) (*CardState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CardState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCardState sets the old CardState of the mutation.
func withCardState(node *CardState) cardstateOption {
	return func(m *CardStateMutation) {
		m.oldValue = func(context.Context) (*CardState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CardStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CardStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CardStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CardStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CardState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *CardStateMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *CardStateMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the CardState entity.
// If the CardState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardStateMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *CardStateMutation) ResetKey() {
	m.key = nil
}

// SetDatasetID sets the "dataset_id" field.
func (m *CardStateMutation) SetDatasetID(s string) {
	m.dataset_id = &s
}

// DatasetID returns the value of the "dataset_id" field in the mutation.
func (m *CardStateMutation) DatasetID() (r string, exists bool) {
	v := m.dataset_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDatasetID returns the old "dataset_id" field's value of the CardState entity.
// If the CardState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardStateMutation) OldDatasetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatasetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatasetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatasetID: %w", err)
	}
	return oldValue.DatasetID, nil
}

// ResetDatasetID resets all changes to the "dataset_id" field.
func (m *CardStateMutation) ResetDatasetID() {
	m.dataset_id = nil
}

// SetCardID sets the "card_id" field.
func (m *CardStateMutation) SetCardID(s string) {
	m.card_id = &s
}

// CardID returns the value of the "card_id" field in the mutation.
func (m *CardStateMutation) CardID() (r string, exists bool) {
	v := m.card_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCardID returns the old "card_id" field's value of the CardState entity.
// If the CardState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardStateMutation) OldCardID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCardID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCardID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCardID: %w", err)
	}
	return oldValue.CardID, nil
}

// ResetCardID resets all changes to the "card_id" field.
func (m *CardStateMutation) ResetCardID() {
	m.card_id = nil
}

// SetStability sets the "stability" field.
func (m *CardStateMutation) SetStability(f float64) {
	m.stability = &f
	m.addstability = nil
}

// Stability returns the value of the "stability" field in the mutation.
func (m *CardStateMutation) Stability() (r float64, exists bool) {
	v := m.stability
	if v == nil {
		return
	}
	return *v, true
}

// OldStability returns the old "stability" field's value of the CardState entity.
// If the CardState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardStateMutation) OldStability(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStability: %w", err)
	}
	return oldValue.Stability, nil
}

// AddStability adds f to the "stability" field.
func (m *CardStateMutation) AddStability(f float64) {
	if m.addstability != nil {
		*m.addstability += f
	} else {
		m.addstability = &f
	}
}

// AddedStability returns the value that was added to the "stability" field in this mutation.
func (m *CardStateMutation) AddedStability() (r float64, exists bool) {
	v := m.addstability
	if v == nil {
		return
	}
	return *v, true
}

// ResetStability resets all changes to the "stability" field.
func (m *CardStateMutation) ResetStability() {
	m.stability = nil
	m.addstability = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *CardStateMutation) SetDifficulty(f float64) {
	m.difficulty = &f
	m.adddifficulty = nil
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *CardStateMutation) Difficulty() (r float64, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the CardState entity.
// If the CardState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardStateMutation) OldDifficulty(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// AddDifficulty adds f to the "difficulty" field.
func (m *CardStateMutation) AddDifficulty(f float64) {
	if m.adddifficulty != nil {
		*m.adddifficulty += f
	} else {
		m.adddifficulty = &f
	}
}

// AddedDifficulty returns the value that was added to the "difficulty" field in this mutation.
func (m *CardStateMutation) AddedDifficulty() (r float64, exists bool) {
	v := m.adddifficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *CardStateMutation) ResetDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
}

// SetLastReviewAt sets the "last_review_at" field.
func (m *CardStateMutation) SetLastReviewAt(i int64) {
	m.last_review_at = &i
	m.addlast_review_at = nil
}

// LastReviewAt returns the value of the "last_review_at" field in the mutation.
func (m *CardStateMutation) LastReviewAt() (r int64, exists bool) {
	v := m.last_review_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReviewAt returns the old "last_review_at" field's value of the CardState entity.
// If the CardState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardStateMutation) OldLastReviewAt(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReviewAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReviewAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReviewAt: %w", err)
	}
	return oldValue.LastReviewAt, nil
}

// AddLastReviewAt adds i to the "last_review_at" field.
func (m *CardStateMutation) AddLastReviewAt(i int64) {
	if m.addlast_review_at != nil {
		*m.addlast_review_at += i
	} else {
		m.addlast_review_at = &i
	}
}

// AddedLastReviewAt returns the value that was added to the "last_review_at" field in this mutation.
func (m *CardStateMutation) AddedLastReviewAt() (r int64, exists bool) {
	v := m.addlast_review_at
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastReviewAt clears the value of the "last_review_at" field.
func (m *CardStateMutation) ClearLastReviewAt() {
	m.last_review_at = nil
	m.addlast_review_at = nil
	m.clearedFields[cardstate.FieldLastReviewAt] = struct{}{}
}

// LastReviewAtCleared returns if the "last_review_at" field was cleared in this mutation.
func (m *CardStateMutation) LastReviewAtCleared() bool {
	_, ok := m.clearedFields[cardstate.FieldLastReviewAt]
	return ok
}

// ResetLastReviewAt resets all changes to the "last_review_at" field.
func (m *CardStateMutation) ResetLastReviewAt() {
	m.last_review_at = nil
	m.addlast_review_at = nil
	delete(m.clearedFields, cardstate.FieldLastReviewAt)
}

// SetDueAt sets the "due_at" field.
func (m *CardStateMutation) SetDueAt(i int64) {
	m.due_at = &i
	m.adddue_at = nil
}

// DueAt returns the value of the "due_at" field in the mutation.
func (m *CardStateMutation) DueAt() (r int64, exists bool) {
	v := m.due_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDueAt returns the old "due_at" field's value of the CardState entity.
// If the CardState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardStateMutation) OldDueAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueAt: %w", err)
	}
	return oldValue.DueAt, nil
}

// AddDueAt adds i to the "due_at" field.
func (m *CardStateMutation) AddDueAt(i int64) {
	if m.adddue_at != nil {
		*m.adddue_at += i
	} else {
		m.adddue_at = &i
	}
}

// AddedDueAt returns the value that was added to the "due_at" field in this mutation.
func (m *CardStateMutation) AddedDueAt() (r int64, exists bool) {
	v := m.adddue_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetDueAt resets all changes to the "due_at" field.
func (m *CardStateMutation) ResetDueAt() {
	m.due_at = nil
	m.adddue_at = nil
}

// SetReps sets the "reps" field.
func (m *CardStateMutation) SetReps(i int) {
	m.reps = &i
	m.addreps = nil
}

// Reps returns the value of the "reps" field in the mutation.
func (m *CardStateMutation) Reps() (r int, exists bool) {
	v := m.reps
	if v == nil {
		return
	}
	return *v, true
}

// OldReps returns the old "reps" field's value of the CardState entity.
// If the CardState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardStateMutation) OldReps(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReps: %w", err)
	}
	return oldValue.Reps, nil
}

// AddReps adds i to the "reps" field.
func (m *CardStateMutation) AddReps(i int) {
	if m.addreps != nil {
		*m.addreps += i
	} else {
		m.addreps = &i
	}
}

// AddedReps returns the value that was added to the "reps" field in this mutation.
func (m *CardStateMutation) AddedReps() (r int, exists bool) {
	v := m.addreps
	if v == nil {
		return
	}
	return *v, true
}

// ResetReps resets all changes to the "reps" field.
func (m *CardStateMutation) ResetReps() {
	m.reps = nil
	m.addreps = nil
}

// SetLapses sets the "lapses" field.
func (m *CardStateMutation) SetLapses(i int) {
	m.lapses = &i
	m.addlapses = nil
}

// Lapses returns the value of the "lapses" field in the mutation.
func (m *CardStateMutation) Lapses() (r int, exists bool) {
	v := m.lapses
	if v == nil {
		return
	}
	return *v, true
}

// OldLapses returns the old "lapses" field's value of the CardState entity.
// If the CardState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardStateMutation) OldLapses(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLapses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLapses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLapses: %w", err)
	}
	return oldValue.Lapses, nil
}

// AddLapses adds i to the "lapses" field.
func (m *CardStateMutation) AddLapses(i int) {
	if m.addlapses != nil {
		*m.addlapses += i
	} else {
		m.addlapses = &i
	}
}

// AddedLapses returns the value that was added to the "lapses" field in this mutation.
func (m *CardStateMutation) AddedLapses() (r int, exists bool) {
	v := m.addlapses
	if v == nil {
		return
	}
	return *v, true
}

// ResetLapses resets all changes to the "lapses" field.
func (m *CardStateMutation) ResetLapses() {
	m.lapses = nil
	m.addlapses = nil
}

// Where appends a list predicates to the CardStateMutation builder.
func (m *CardStateMutation) Where(ps ...predicate.CardState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CardStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CardStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CardState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CardStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CardStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CardState).
func (m *CardStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CardStateMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.key != nil {
		fields = append(fields, cardstate.FieldKey)
	}
	if m.dataset_id != nil {
		fields = append(fields, cardstate.FieldDatasetID)
	}
	if m.card_id != nil {
		fields = append(fields, cardstate.FieldCardID)
	}
	if m.stability != nil {
		fields = append(fields, cardstate.FieldStability)
	}
	if m.difficulty != nil {
		fields = append(fields, cardstate.FieldDifficulty)
	}
	if m.last_review_at != nil {
		fields = append(fields, cardstate.FieldLastReviewAt)
	}
	if m.due_at != nil {
		fields = append(fields, cardstate.FieldDueAt)
	}
	if m.reps != nil {
		fields = append(fields, cardstate.FieldReps)
	}
	if m.lapses != nil {
		fields = append(fields, cardstate.FieldLapses)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CardStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cardstate.FieldKey:
		return m.Key()
	case cardstate.FieldDatasetID:
		return m.DatasetID()
	case cardstate.FieldCardID:
		return m.CardID()
	case cardstate.FieldStability:
		return m.Stability()
	case cardstate.FieldDifficulty:
		return m.Difficulty()
	case cardstate.FieldLastReviewAt:
		return m.LastReviewAt()
	case cardstate.FieldDueAt:
		return m.DueAt()
	case cardstate.FieldReps:
		return m.Reps()
	case cardstate.FieldLapses:
		return m.Lapses()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CardStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cardstate.FieldKey:
		return m.OldKey(ctx)
	case cardstate.FieldDatasetID:
		return m.OldDatasetID(ctx)
	case cardstate.FieldCardID:
		return m.OldCardID(ctx)
	case cardstate.FieldStability:
		return m.OldStability(ctx)
	case cardstate.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case cardstate.FieldLastReviewAt:
		return m.OldLastReviewAt(ctx)
	case cardstate.FieldDueAt:
		return m.OldDueAt(ctx)
	case cardstate.FieldReps:
		return m.OldReps(ctx)
	case cardstate.FieldLapses:
		return m.OldLapses(ctx)
	}
	return nil, fmt.Errorf("unknown CardState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CardStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cardstate.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case cardstate.FieldDatasetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatasetID(v)
		return nil
	case cardstate.FieldCardID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCardID(v)
		return nil
	case cardstate.FieldStability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStability(v)
		return nil
	case cardstate.FieldDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case cardstate.FieldLastReviewAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReviewAt(v)
		return nil
	case cardstate.FieldDueAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueAt(v)
		return nil
	case cardstate.FieldReps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReps(v)
		return nil
	case cardstate.FieldLapses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLapses(v)
		return nil
	}
	return fmt.Errorf("unknown CardState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CardStateMutation) AddedFields() []string {
	var fields []string
	if m.addstability != nil {
		fields = append(fields, cardstate.FieldStability)
	}
	if m.adddifficulty != nil {
		fields = append(fields, cardstate.FieldDifficulty)
	}
	if m.addlast_review_at != nil {
		fields = append(fields, cardstate.FieldLastReviewAt)
	}
	if m.adddue_at != nil {
		fields = append(fields, cardstate.FieldDueAt)
	}
	if m.addreps != nil {
		fields = append(fields, cardstate.FieldReps)
	}
	if m.addlapses != nil {
		fields = append(fields, cardstate.FieldLapses)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CardStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cardstate.FieldStability:
		return m.AddedStability()
	case cardstate.FieldDifficulty:
		return m.AddedDifficulty()
	case cardstate.FieldLastReviewAt:
		return m.AddedLastReviewAt()
	case cardstate.FieldDueAt:
		return m.AddedDueAt()
	case cardstate.FieldReps:
		return m.AddedReps()
	case cardstate.FieldLapses:
		return m.AddedLapses()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CardStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cardstate.FieldStability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStability(v)
		return nil
	case cardstate.FieldDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficulty(v)
		return nil
	case cardstate.FieldLastReviewAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastReviewAt(v)
		return nil
	case cardstate.FieldDueAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDueAt(v)
		return nil
	case cardstate.FieldReps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReps(v)
		return nil
	case cardstate.FieldLapses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLapses(v)
		return nil
	}
	return fmt.Errorf("unknown CardState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CardStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(cardstate.FieldLastReviewAt) {
		fields = append(fields, cardstate.FieldLastReviewAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CardStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CardStateMutation) ClearField(name string) error {
	switch name {
	case cardstate.FieldLastReviewAt:
		m.ClearLastReviewAt()
		return nil
	}
	return fmt.Errorf("unknown CardState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CardStateMutation) ResetField(name string) error {
	switch name {
	case cardstate.FieldKey:
		m.ResetKey()
		return nil
	case cardstate.FieldDatasetID:
		m.ResetDatasetID()
		return nil
	case cardstate.FieldCardID:
		m.ResetCardID()
		return nil
	case cardstate.FieldStability:
		m.ResetStability()
		return nil
	case cardstate.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case cardstate.FieldLastReviewAt:
		m.ResetLastReviewAt()
		return nil
	case cardstate.FieldDueAt:
		m.ResetDueAt()
		return nil
	case cardstate.FieldReps:
		m.ResetReps()
		return nil
	case cardstate.FieldLapses:
		m.ResetLapses()
		return nil
	}
	return fmt.Errorf("unknown CardState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CardStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CardStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CardStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CardStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CardStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CardStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CardStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CardState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CardStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CardState edge %s", name)
}

// ConfusionMutation represents an operation that mutates the Confusion nodes in the graph.
type ConfusionMutation struct {
	config
	op            Op
	typ           string
	id            *int
	key           *string
	dataset_id    *string
	pair_key      *string
	card_a        *string
	card_b        *string
	count         *int
	addcount      *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Confusion, error)
	predicates    []predicate.Confusion
}

var _ ent.Mutation = (*ConfusionMutation)(nil)

// confusionOption allows management of the mutation configuration using functional options.
type confusionOption func(*ConfusionMutation)

// newConfusionMutation creates new mutation for the Confusion entity.
func newConfusionMutation(c config, op Op, opts ...confusionOption) *ConfusionMutation {
	m := &ConfusionMutation{
		config:        c,
		op:            op,
		typ:           TypeConfusion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConfusionID sets the ID field of the mutation.
func withConfusionID(id int) confusionOption {
	return func(m *ConfusionMutation) {
		var (
			err   error
			once  sync.Once
			value *Confusion
		)
		m.oldValue = func(ctx context.Context) (*Confusion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Confusion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConfusion sets the old Confusion of the mutation.
func withConfusion(node *Confusion) confusionOption {
	return func(m *ConfusionMutation) {
		m.oldValue = func(context.Context) (*Confusion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConfusionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConfusionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConfusionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConfusionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Confusion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *ConfusionMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *ConfusionMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the Confusion entity.
// If the Confusion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfusionMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *ConfusionMutation) ResetKey() {
	m.key = nil
}

// SetDatasetID sets the "dataset_id" field.
func (m *ConfusionMutation) SetDatasetID(s string) {
	m.dataset_id = &s
}

// DatasetID returns the value of the "dataset_id" field in the mutation.
func (m *ConfusionMutation) DatasetID() (r string, exists bool) {
	v := m.dataset_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDatasetID returns the old "dataset_id" field's value of the Confusion entity.
// If the Confusion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfusionMutation) OldDatasetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatasetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatasetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatasetID: %w", err)
	}
	return oldValue.DatasetID, nil
}

// ResetDatasetID resets all changes to the "dataset_id" field.
func (m *ConfusionMutation) ResetDatasetID() {
	m.dataset_id = nil
}

// SetPairKey sets the "pair_key" field.
func (m *ConfusionMutation) SetPairKey(s string) {
	m.pair_key = &s
}

// PairKey returns the value of the "pair_key" field in the mutation.
func (m *ConfusionMutation) PairKey() (r string, exists bool) {
	v := m.pair_key
	if v == nil {
		return
	}
	return *v, true
}

// OldPairKey returns the old "pair_key" field's value of the Confusion entity.
// If the Confusion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfusionMutation) OldPairKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPairKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPairKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPairKey: %w", err)
	}
	return oldValue.PairKey, nil
}

// ResetPairKey resets all changes to the "pair_key" field.
func (m *ConfusionMutation) ResetPairKey() {
	m.pair_key = nil
}

// SetCardA sets the "card_a" field.
func (m *ConfusionMutation) SetCardA(s string) {
	m.card_a = &s
}

// CardA returns the value of the "card_a" field in the mutation.
func (m *ConfusionMutation) CardA() (r string, exists bool) {
	v := m.card_a
	if v == nil {
		return
	}
	return *v, true
}

// OldCardA returns the old "card_a" field's value of the Confusion entity.
// If the Confusion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfusionMutation) OldCardA(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCardA is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCardA requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCardA: %w", err)
	}
	return oldValue.CardA, nil
}

// ResetCardA resets all changes to the "card_a" field.
func (m *ConfusionMutation) ResetCardA() {
	m.card_a = nil
}

// SetCardB sets the "card_b" field.
func (m *ConfusionMutation) SetCardB(s string) {
	m.card_b = &s
}

// CardB returns the value of the "card_b" field in the mutation.
func (m *ConfusionMutation) CardB() (r string, exists bool) {
	v := m.card_b
	if v == nil {
		return
	}
	return *v, true
}

// OldCardB returns the old "card_b" field's value of the Confusion entity.
// If the Confusion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfusionMutation) OldCardB(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCardB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCardB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCardB: %w", err)
	}
	return oldValue.CardB, nil
}

// ResetCardB resets all changes to the "card_b" field.
func (m *ConfusionMutation) ResetCardB() {
	m.card_b = nil
}

// SetCount sets the "count" field.
func (m *ConfusionMutation) SetCount(i int) {
	m.count = &i
	m.addcount = nil
}

// Count returns the value of the "count" field in the mutation.
func (m *ConfusionMutation) Count() (r int, exists bool) {
	v := m.count
	if v == nil {
		return
	}
	return *v, true
}

// OldCount returns the old "count" field's value of the Confusion entity.
// If the Confusion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfusionMutation) OldCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCount: %w", err)
	}
	return oldValue.Count, nil
}

// AddCount adds i to the "count" field.
func (m *ConfusionMutation) AddCount(i int) {
	if m.addcount != nil {
		*m.addcount += i
	} else {
		m.addcount = &i
	}
}

// AddedCount returns the value that was added to the "count" field in this mutation.
func (m *ConfusionMutation) AddedCount() (r int, exists bool) {
	v := m.addcount
	if v == nil {
		return
	}
	return *v, true
}

// ResetCount resets all changes to the "count" field.
func (m *ConfusionMutation) ResetCount() {
	m.count = nil
	m.addcount = nil
}

// Where appends a list predicates to the ConfusionMutation builder.
func (m *ConfusionMutation) Where(ps ...predicate.Confusion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConfusionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConfusionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Confusion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConfusionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConfusionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Confusion).
func (m *ConfusionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConfusionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.key != nil {
		fields = append(fields, confusion.FieldKey)
	}
	if m.dataset_id != nil {
		fields = append(fields, confusion.FieldDatasetID)
	}
	if m.pair_key != nil {
		fields = append(fields, confusion.FieldPairKey)
	}
	if m.card_a != nil {
		fields = append(fields, confusion.FieldCardA)
	}
	if m.card_b != nil {
		fields = append(fields, confusion.FieldCardB)
	}
	if m.count != nil {
		fields = append(fields, confusion.FieldCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConfusionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case confusion.FieldKey:
		return m.Key()
	case confusion.FieldDatasetID:
		return m.DatasetID()
	case confusion.FieldPairKey:
		return m.PairKey()
	case confusion.FieldCardA:
		return m.CardA()
	case confusion.FieldCardB:
		return m.CardB()
	case confusion.FieldCount:
		return m.Count()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConfusionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case confusion.FieldKey:
		return m.OldKey(ctx)
	case confusion.FieldDatasetID:
		return m.OldDatasetID(ctx)
	case confusion.FieldPairKey:
		return m.OldPairKey(ctx)
	case confusion.FieldCardA:
		return m.OldCardA(ctx)
	case confusion.FieldCardB:
		return m.OldCardB(ctx)
	case confusion.FieldCount:
		return m.OldCount(ctx)
	}
	return nil, fmt.Errorf("unknown Confusion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConfusionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case confusion.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case confusion.FieldDatasetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatasetID(v)
		return nil
	case confusion.FieldPairKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPairKey(v)
		return nil
	case confusion.FieldCardA:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCardA(v)
		return nil
	case confusion.FieldCardB:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCardB(v)
		return nil
	case confusion.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCount(v)
		return nil
	}
	return fmt.Errorf("unknown Confusion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConfusionMutation) AddedFields() []string {
	var fields []string
	if m.addcount != nil {
		fields = append(fields, confusion.FieldCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConfusionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case confusion.FieldCount:
		return m.AddedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConfusionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case confusion.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCount(v)
		return nil
	}
	return fmt.Errorf("unknown Confusion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConfusionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConfusionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConfusionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Confusion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConfusionMutation) ResetField(name string) error {
	switch name {
	case confusion.FieldKey:
		m.ResetKey()
		return nil
	case confusion.FieldDatasetID:
		m.ResetDatasetID()
		return nil
	case confusion.FieldPairKey:
		m.ResetPairKey()
		return nil
	case confusion.FieldCardA:
		m.ResetCardA()
		return nil
	case confusion.FieldCardB:
		m.ResetCardB()
		return nil
	case confusion.FieldCount:
		m.ResetCount()
		return nil
	}
	return fmt.Errorf("unknown Confusion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConfusionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConfusionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConfusionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConfusionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConfusionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConfusionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConfusionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Confusion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConfusionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Confusion edge %s", name)
}

// DatasetMutation represents an operation that mutates the Dataset nodes in the graph.
type DatasetMutation struct {
	config
	op            Op
	typ           string
	id            *int
	dataset_id    *string
	title         *string
	description   *string
	tags          *[]string
	appendtags    []string
	card_count    *int
	addcard_count *int
	updated_at    *int64
	addupdated_at *int64
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Dataset, error)
	predicates    []predicate.Dataset
}

var _ ent.Mutation = (*DatasetMutation)(nil)

// datasetOption allows management of the mutation configuration using functional options.
type datasetOption func(*DatasetMutation)

// newDatasetMutation creates new mutation for the Dataset entity.
func newDatasetMutation(c config, op Op, opts ...datasetOption) *DatasetMutation {
	m := &DatasetMutation{
		config:        c,
		op:            op,
		typ:           TypeDataset,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDatasetID sets the ID field of the mutation.
func withDatasetID(id int) datasetOption {
	return func(m *DatasetMutation) {
		var (
			err   error
			once  sync.Once
			value *Dataset
		)
		m.oldValue = func(ctx context.Context) (*Dataset, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Dataset.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDataset sets the old Dataset of the mutation.
func withDataset(node *Dataset) datasetOption {
	return func(m *DatasetMutation) {
		m.oldValue = func(context.Context) (*Dataset, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DatasetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DatasetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DatasetMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DatasetMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Dataset.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDatasetID sets the "dataset_id" field.
func (m *DatasetMutation) SetDatasetID(s string) {
	m.dataset_id = &s
}

// DatasetID returns the value of the "dataset_id" field in the mutation.
func (m *DatasetMutation) DatasetID() (r string, exists bool) {
	v := m.dataset_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDatasetID returns the old "dataset_id" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldDatasetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatasetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatasetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatasetID: %w", err)
	}
	return oldValue.DatasetID, nil
}

// ResetDatasetID resets all changes to the "dataset_id" field.
func (m *DatasetMutation) ResetDatasetID() {
	m.dataset_id = nil
}

// SetTitle sets the "title" field.
func (m *DatasetMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *DatasetMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *DatasetMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *DatasetMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *DatasetMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *DatasetMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[dataset.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *DatasetMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[dataset.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *DatasetMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, dataset.FieldDescription)
}

// SetTags sets the "tags" field.
func (m *DatasetMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *DatasetMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *DatasetMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *DatasetMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *DatasetMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[dataset.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *DatasetMutation) TagsCleared() bool {
	_, ok := m.clearedFields[dataset.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *DatasetMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, dataset.FieldTags)
}

// SetCardCount sets the "card_count" field.
func (m *DatasetMutation) SetCardCount(i int) {
	m.card_count = &i
	m.addcard_count = nil
}

// CardCount returns the value of the "card_count" field in the mutation.
func (m *DatasetMutation) CardCount() (r int, exists bool) {
	v := m.card_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCardCount returns the old "card_count" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldCardCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCardCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCardCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCardCount: %w", err)
	}
	return oldValue.CardCount, nil
}

// AddCardCount adds i to the "card_count" field.
func (m *DatasetMutation) AddCardCount(i int) {
	if m.addcard_count != nil {
		*m.addcard_count += i
	} else {
		m.addcard_count = &i
	}
}

// AddedCardCount returns the value that was added to the "card_count" field in this mutation.
func (m *DatasetMutation) AddedCardCount() (r int, exists bool) {
	v := m.addcard_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCardCount resets all changes to the "card_count" field.
func (m *DatasetMutation) ResetCardCount() {
	m.card_count = nil
	m.addcard_count = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DatasetMutation) SetUpdatedAt(i int64) {
	m.updated_at = &i
	m.addupdated_at = nil
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DatasetMutation) UpdatedAt() (r int64, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldUpdatedAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// AddUpdatedAt adds i to the "updated_at" field.
func (m *DatasetMutation) AddUpdatedAt(i int64) {
	if m.addupdated_at != nil {
		*m.addupdated_at += i
	} else {
		m.addupdated_at = &i
	}
}

// AddedUpdatedAt returns the value that was added to the "updated_at" field in this mutation.
func (m *DatasetMutation) AddedUpdatedAt() (r int64, exists bool) {
	v := m.addupdated_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DatasetMutation) ResetUpdatedAt() {
	m.updated_at = nil
	m.addupdated_at = nil
}

// Where appends a list predicates to the DatasetMutation builder.
func (m *DatasetMutation) Where(ps ...predicate.Dataset) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DatasetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DatasetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Dataset, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DatasetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DatasetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Dataset).
func (m *DatasetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DatasetMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.dataset_id != nil {
		fields = append(fields, dataset.FieldDatasetID)
	}
	if m.title != nil {
		fields = append(fields, dataset.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, dataset.FieldDescription)
	}
	if m.tags != nil {
		fields = append(fields, dataset.FieldTags)
	}
	if m.card_count != nil {
		fields = append(fields, dataset.FieldCardCount)
	}
	if m.updated_at != nil {
		fields = append(fields, dataset.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DatasetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dataset.FieldDatasetID:
		return m.DatasetID()
	case dataset.FieldTitle:
		return m.Title()
	case dataset.FieldDescription:
		return m.Description()
	case dataset.FieldTags:
		return m.Tags()
	case dataset.FieldCardCount:
		return m.CardCount()
	case dataset.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DatasetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dataset.FieldDatasetID:
		return m.OldDatasetID(ctx)
	case dataset.FieldTitle:
		return m.OldTitle(ctx)
	case dataset.FieldDescription:
		return m.OldDescription(ctx)
	case dataset.FieldTags:
		return m.OldTags(ctx)
	case dataset.FieldCardCount:
		return m.OldCardCount(ctx)
	case dataset.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Dataset field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DatasetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dataset.FieldDatasetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatasetID(v)
		return nil
	case dataset.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case dataset.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case dataset.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case dataset.FieldCardCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCardCount(v)
		return nil
	case dataset.FieldUpdatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Dataset field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DatasetMutation) AddedFields() []string {
	var fields []string
	if m.addcard_count != nil {
		fields = append(fields, dataset.FieldCardCount)
	}
	if m.addupdated_at != nil {
		fields = append(fields, dataset.FieldUpdatedAt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DatasetMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dataset.FieldCardCount:
		return m.AddedCardCount()
	case dataset.FieldUpdatedAt:
		return m.AddedUpdatedAt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DatasetMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dataset.FieldCardCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCardCount(v)
		return nil
	case dataset.FieldUpdatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Dataset numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DatasetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dataset.FieldDescription) {
		fields = append(fields, dataset.FieldDescription)
	}
	if m.FieldCleared(dataset.FieldTags) {
		fields = append(fields, dataset.FieldTags)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DatasetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DatasetMutation) ClearField(name string) error {
	switch name {
	case dataset.FieldDescription:
		m.ClearDescription()
		return nil
	case dataset.FieldTags:
		m.ClearTags()
		return nil
	}
	return fmt.Errorf("unknown Dataset nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DatasetMutation) ResetField(name string) error {
	switch name {
	case dataset.FieldDatasetID:
		m.ResetDatasetID()
		return nil
	case dataset.FieldTitle:
		m.ResetTitle()
		return nil
	case dataset.FieldDescription:
		m.ResetDescription()
		return nil
	case dataset.FieldTags:
		m.ResetTags()
		return nil
	case dataset.FieldCardCount:
		m.ResetCardCount()
		return nil
	case dataset.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Dataset field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DatasetMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DatasetMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DatasetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DatasetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DatasetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DatasetMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DatasetMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Dataset unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DatasetMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Dataset edge %s", name)
}

// ReviewMutation represents an operation that mutates the Review nodes in the graph.
type ReviewMutation struct {
	config
	op             Op
	typ            string
	id             *int
	dataset_id     *string
	card_id        *string
	grade          *int
	addgrade       *int
	response_ms    *int64
	addresponse_ms *int64
	reviewed_at    *int64
	addreviewed_at *int64
	session_id     *string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Review, error)
	predicates     []predicate.Review
}

var _ ent.Mutation = (*ReviewMutation)(nil)

// reviewOption allows management of the mutation configuration using functional options.
type reviewOption func(*ReviewMutation)

// newReviewMutation creates new mutation for the Review entity.
func newReviewMutation(c config, op Op, opts ...reviewOption) *ReviewMutation {
	m := &ReviewMutation{
		config:        c,
		op:            op,
		typ:           TypeReview,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewID sets the ID field of the mutation.
func withReviewID(id int) reviewOption {
	return func(m *ReviewMutation) {
		var (
			err   error
			once  sync.Once
			value *Review
		)
		m.oldValue = func(ctx context.Context) (*Review, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Review.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReview sets the old Review of the mutation.
func withReview(node *Review) reviewOption {
	return func(m *ReviewMutation) {
		m.oldValue = func(context.Context) (*Review, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Review.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDatasetID sets the "dataset_id" field.
func (m *ReviewMutation) SetDatasetID(s string) {
	m.dataset_id = &s
}

// DatasetID returns the value of the "dataset_id" field in the mutation.
func (m *ReviewMutation) DatasetID() (r string, exists bool) {
	v := m.dataset_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDatasetID returns the old "dataset_id" field's value of the Review entity.
// If the Review object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewMutation) OldDatasetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatasetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatasetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatasetID: %w", err)
	}
	return oldValue.DatasetID, nil
}

// ResetDatasetID resets all changes to the "dataset_id" field.
func (m *ReviewMutation) ResetDatasetID() {
	m.dataset_id = nil
}

// SetCardID sets the "card_id" field.
func (m *ReviewMutation) SetCardID(s string) {
	m.card_id = &s
}

// CardID returns the value of the "card_id" field in the mutation.
func (m *ReviewMutation) CardID() (r string, exists bool) {
	v := m.card_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCardID returns the old "card_id" field's value of the Review entity.
// If the Review object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewMutation) OldCardID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCardID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCardID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCardID: %w", err)
	}
	return oldValue.CardID, nil
}

// ResetCardID resets all changes to the "card_id" field.
func (m *ReviewMutation) ResetCardID() {
	m.card_id = nil
}

// SetGrade sets the "grade" field.
func (m *ReviewMutation) SetGrade(i int) {
	m.grade = &i
	m.addgrade = nil
}

// Grade returns the value of the "grade" field in the mutation.
func (m *ReviewMutation) Grade() (r int, exists bool) {
	v := m.grade
	if v == nil {
		return
	}
	return *v, true
}

// OldGrade returns the old "grade" field's value of the Review entity.
// If the Review object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewMutation) OldGrade(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrade: %w", err)
	}
	return oldValue.Grade, nil
}

// AddGrade adds i to the "grade" field.
func (m *ReviewMutation) AddGrade(i int) {
	if m.addgrade != nil {
		*m.addgrade += i
	} else {
		m.addgrade = &i
	}
}

// AddedGrade returns the value that was added to the "grade" field in this mutation.
func (m *ReviewMutation) AddedGrade() (r int, exists bool) {
	v := m.addgrade
	if v == nil {
		return
	}
	return *v, true
}

// ResetGrade resets all changes to the "grade" field.
func (m *ReviewMutation) ResetGrade() {
	m.grade = nil
	m.addgrade = nil
}

// SetResponseMs sets the "response_ms" field.
func (m *ReviewMutation) SetResponseMs(i int64) {
	m.response_ms = &i
	m.addresponse_ms = nil
}

// ResponseMs returns the value of the "response_ms" field in the mutation.
func (m *ReviewMutation) ResponseMs() (r int64, exists bool) {
	v := m.response_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseMs returns the old "response_ms" field's value of the Review entity.
// If the Review object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewMutation) OldResponseMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseMs: %w", err)
	}
	return oldValue.ResponseMs, nil
}

// AddResponseMs adds i to the "response_ms" field.
func (m *ReviewMutation) AddResponseMs(i int64) {
	if m.addresponse_ms != nil {
		*m.addresponse_ms += i
	} else {
		m.addresponse_ms = &i
	}
}

// AddedResponseMs returns the value that was added to the "response_ms" field in this mutation.
func (m *ReviewMutation) AddedResponseMs() (r int64, exists bool) {
	v := m.addresponse_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetResponseMs resets all changes to the "response_ms" field.
func (m *ReviewMutation) ResetResponseMs() {
	m.response_ms = nil
	m.addresponse_ms = nil
}

// SetReviewedAt sets the "reviewed_at" field.
func (m *ReviewMutation) SetReviewedAt(i int64) {
	m.reviewed_at = &i
	m.addreviewed_at = nil
}

// ReviewedAt returns the value of the "reviewed_at" field in the mutation.
func (m *ReviewMutation) ReviewedAt() (r int64, exists bool) {
	v := m.reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedAt returns the old "reviewed_at" field's value of the Review entity.
// If the Review object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewMutation) OldReviewedAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedAt: %w", err)
	}
	return oldValue.ReviewedAt, nil
}

// AddReviewedAt adds i to the "reviewed_at" field.
func (m *ReviewMutation) AddReviewedAt(i int64) {
	if m.addreviewed_at != nil {
		*m.addreviewed_at += i
	} else {
		m.addreviewed_at = &i
	}
}

// AddedReviewedAt returns the value that was added to the "reviewed_at" field in this mutation.
func (m *ReviewMutation) AddedReviewedAt() (r int64, exists bool) {
	v := m.addreviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetReviewedAt resets all changes to the "reviewed_at" field.
func (m *ReviewMutation) ResetReviewedAt() {
	m.reviewed_at = nil
	m.addreviewed_at = nil
}

// SetSessionID sets the "session_id" field.
func (m *ReviewMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ReviewMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Review entity.
// If the Review object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *ReviewMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[review.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *ReviewMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[review.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ReviewMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, review.FieldSessionID)
}

// Where appends a list predicates to the ReviewMutation builder.
func (m *ReviewMutation) Where(ps ...predicate.Review) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Review, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Review).
func (m *ReviewMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.dataset_id != nil {
		fields = append(fields, review.FieldDatasetID)
	}
	if m.card_id != nil {
		fields = append(fields, review.FieldCardID)
	}
	if m.grade != nil {
		fields = append(fields, review.FieldGrade)
	}
	if m.response_ms != nil {
		fields = append(fields, review.FieldResponseMs)
	}
	if m.reviewed_at != nil {
		fields = append(fields, review.FieldReviewedAt)
	}
	if m.session_id != nil {
		fields = append(fields, review.FieldSessionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case review.FieldDatasetID:
		return m.DatasetID()
	case review.FieldCardID:
		return m.CardID()
	case review.FieldGrade:
		return m.Grade()
	case review.FieldResponseMs:
		return m.ResponseMs()
	case review.FieldReviewedAt:
		return m.ReviewedAt()
	case review.FieldSessionID:
		return m.SessionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case review.FieldDatasetID:
		return m.OldDatasetID(ctx)
	case review.FieldCardID:
		return m.OldCardID(ctx)
	case review.FieldGrade:
		return m.OldGrade(ctx)
	case review.FieldResponseMs:
		return m.OldResponseMs(ctx)
	case review.FieldReviewedAt:
		return m.OldReviewedAt(ctx)
	case review.FieldSessionID:
		return m.OldSessionID(ctx)
	}
	return nil, fmt.Errorf("unknown Review field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewMutation) SetField(name string, value ent.Value) error {
	switch name {
	case review.FieldDatasetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatasetID(v)
		return nil
	case review.FieldCardID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCardID(v)
		return nil
	case review.FieldGrade:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrade(v)
		return nil
	case review.FieldResponseMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseMs(v)
		return nil
	case review.FieldReviewedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedAt(v)
		return nil
	case review.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	}
	return fmt.Errorf("unknown Review field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewMutation) AddedFields() []string {
	var fields []string
	if m.addgrade != nil {
		fields = append(fields, review.FieldGrade)
	}
	if m.addresponse_ms != nil {
		fields = append(fields, review.FieldResponseMs)
	}
	if m.addreviewed_at != nil {
		fields = append(fields, review.FieldReviewedAt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case review.FieldGrade:
		return m.AddedGrade()
	case review.FieldResponseMs:
		return m.AddedResponseMs()
	case review.FieldReviewedAt:
		return m.AddedReviewedAt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewMutation) AddField(name string, value ent.Value) error {
	switch name {
	case review.FieldGrade:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGrade(v)
		return nil
	case review.FieldResponseMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseMs(v)
		return nil
	case review.FieldReviewedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReviewedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Review numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(review.FieldSessionID) {
		fields = append(fields, review.FieldSessionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewMutation) ClearField(name string) error {
	switch name {
	case review.FieldSessionID:
		m.ClearSessionID()
		return nil
	}
	return fmt.Errorf("unknown Review nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewMutation) ResetField(name string) error {
	switch name {
	case review.FieldDatasetID:
		m.ResetDatasetID()
		return nil
	case review.FieldCardID:
		m.ResetCardID()
		return nil
	case review.FieldGrade:
		m.ResetGrade()
		return nil
	case review.FieldResponseMs:
		m.ResetResponseMs()
		return nil
	case review.FieldReviewedAt:
		m.ResetReviewedAt()
		return nil
	case review.FieldSessionID:
		m.ResetSessionID()
		return nil
	}
	return fmt.Errorf("unknown Review field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Review unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Review edge %s", name)
}

// SettingMutation represents an operation that mutates the Setting nodes in the graph.
type SettingMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	key                 *string
	target_retention    *float64
	addtarget_retention *float64
	exam_date           *string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Setting, error)
	predicates          []predicate.Setting
}

var _ ent.Mutation = (*SettingMutation)(nil)

// settingOption allows management of the mutation configuration using functional options.
type settingOption func(*SettingMutation)

// newSettingMutation creates new mutation for the Setting entity.
func newSettingMutation(c config, op Op, opts ...settingOption) *SettingMutation {
	m := &SettingMutation{
		config:        c,
		op:            op,
		typ:           TypeSetting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSettingID sets the ID field of the mutation.
func withSettingID(id int) settingOption {
	return func(m *SettingMutation) {
		var (
			err   error
			once  sync.Once
			value *Setting
		)
		m.oldValue = func(ctx context.Context) (*Setting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Setting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSetting sets the old Setting of the mutation.
func withSetting(node *Setting) settingOption {
	return func(m *SettingMutation) {
		m.oldValue = func(context.Context) (*Setting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SettingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SettingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SettingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SettingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Setting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *SettingMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *SettingMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *SettingMutation) ResetKey() {
	m.key = nil
}

// SetTargetRetention sets the "target_retention" field.
func (m *SettingMutation) SetTargetRetention(f float64) {
	m.target_retention = &f
	m.addtarget_retention = nil
}

// TargetRetention returns the value of the "target_retention" field in the mutation.
func (m *SettingMutation) TargetRetention() (r float64, exists bool) {
	v := m.target_retention
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetRetention returns the old "target_retention" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldTargetRetention(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetRetention is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetRetention requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetRetention: %w", err)
	}
	return oldValue.TargetRetention, nil
}

// AddTargetRetention adds f to the "target_retention" field.
func (m *SettingMutation) AddTargetRetention(f float64) {
	if m.addtarget_retention != nil {
		*m.addtarget_retention += f
	} else {
		m.addtarget_retention = &f
	}
}

// AddedTargetRetention returns the value that was added to the "target_retention" field in this mutation.
func (m *SettingMutation) AddedTargetRetention() (r float64, exists bool) {
	v := m.addtarget_retention
	if v == nil {
		return
	}
	return *v, true
}

// ResetTargetRetention resets all changes to the "target_retention" field.
func (m *SettingMutation) ResetTargetRetention() {
	m.target_retention = nil
	m.addtarget_retention = nil
}

// SetExamDate sets the "exam_date" field.
func (m *SettingMutation) SetExamDate(s string) {
	m.exam_date = &s
}

// ExamDate returns the value of the "exam_date" field in the mutation.
func (m *SettingMutation) ExamDate() (r string, exists bool) {
	v := m.exam_date
	if v == nil {
		return
	}
	return *v, true
}

// OldExamDate returns the old "exam_date" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldExamDate(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamDate: %w", err)
	}
	return oldValue.ExamDate, nil
}

// ClearExamDate clears the value of the "exam_date" field.
func (m *SettingMutation) ClearExamDate() {
	m.exam_date = nil
	m.clearedFields[setting.FieldExamDate] = struct{}{}
}

// ExamDateCleared returns if the "exam_date" field was cleared in this mutation.
func (m *SettingMutation) ExamDateCleared() bool {
	_, ok := m.clearedFields[setting.FieldExamDate]
	return ok
}

// ResetExamDate resets all changes to the "exam_date" field.
func (m *SettingMutation) ResetExamDate() {
	m.exam_date = nil
	delete(m.clearedFields, setting.FieldExamDate)
}

// Where appends a list predicates to the SettingMutation builder.
func (m *SettingMutation) Where(ps ...predicate.Setting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SettingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SettingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Setting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SettingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SettingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Setting).
func (m *SettingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SettingMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.key != nil {
		fields = append(fields, setting.FieldKey)
	}
	if m.target_retention != nil {
		fields = append(fields, setting.FieldTargetRetention)
	}
	if m.exam_date != nil {
		fields = append(fields, setting.FieldExamDate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SettingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case setting.FieldKey:
		return m.Key()
	case setting.FieldTargetRetention:
		return m.TargetRetention()
	case setting.FieldExamDate:
		return m.ExamDate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SettingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case setting.FieldKey:
		return m.OldKey(ctx)
	case setting.FieldTargetRetention:
		return m.OldTargetRetention(ctx)
	case setting.FieldExamDate:
		return m.OldExamDate(ctx)
	}
	return nil, fmt.Errorf("unknown Setting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SettingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case setting.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case setting.FieldTargetRetention:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetRetention(v)
		return nil
	case setting.FieldExamDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamDate(v)
		return nil
	}
	return fmt.Errorf("unknown Setting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SettingMutation) AddedFields() []string {
	var fields []string
	if m.addtarget_retention != nil {
		fields = append(fields, setting.FieldTargetRetention)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SettingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case setting.FieldTargetRetention:
		return m.AddedTargetRetention()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SettingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case setting.FieldTargetRetention:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTargetRetention(v)
		return nil
	}
	return fmt.Errorf("unknown Setting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SettingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(setting.FieldExamDate) {
		fields = append(fields, setting.FieldExamDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SettingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SettingMutation) ClearField(name string) error {
	switch name {
	case setting.FieldExamDate:
		m.ClearExamDate()
		return nil
	}
	return fmt.Errorf("unknown Setting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SettingMutation) ResetField(name string) error {
	switch name {
	case setting.FieldKey:
		m.ResetKey()
		return nil
	case setting.FieldTargetRetention:
		m.ResetTargetRetention()
		return nil
	case setting.FieldExamDate:
		m.ResetExamDate()
		return nil
	}
	return fmt.Errorf("unknown Setting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SettingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SettingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SettingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SettingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SettingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SettingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SettingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Setting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SettingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Setting edge %s", name)
}
