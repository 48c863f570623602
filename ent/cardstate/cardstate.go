// Code generated by ent, DO NOT EDIT.

package cardstate

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the cardstate type in the database.
	Label = "card_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldKey holds the string denoting the key field in the database.
	FieldKey = "key"
	// FieldDatasetID holds the string denoting the dataset_id field in the database.
	FieldDatasetID = "dataset_id"
	// FieldCardID holds the string denoting the card_id field in the database.
	FieldCardID = "card_id"
	// FieldStability holds the string denoting the stability field in the database.
	FieldStability = "stability"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldLastReviewAt holds the string denoting the last_review_at field in the database.
	FieldLastReviewAt = "last_review_at"
	// FieldDueAt holds the string denoting the due_at field in the database.
	FieldDueAt = "due_at"
	// FieldReps holds the string denoting the reps field in the database.
	FieldReps = "reps"
	// FieldLapses holds the string denoting the lapses field in the database.
	FieldLapses = "lapses"
	// Table holds the table name of the cardstate in the database.
	Table = "card_states"
)

// Columns holds all SQL columns for cardstate fields.
var Columns = []string{
	FieldID,
	FieldKey,
	FieldDatasetID,
	FieldCardID,
	FieldStability,
	FieldDifficulty,
	FieldLastReviewAt,
	FieldDueAt,
	FieldReps,
	FieldLapses,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// KeyValidator is a validator for the "key" field. It is called by the builders before save.
	KeyValidator func(string) error
	// DatasetIDValidator is a validator for the "dataset_id" field. It is called by the builders before save.
	DatasetIDValidator func(string) error
	// CardIDValidator is a validator for the "card_id" field. It is called by the builders before save.
	CardIDValidator func(string) error
	// DefaultReps holds the default value on creation for the "reps" field.
	DefaultReps int
	// RepsValidator is a validator for the "reps" field. It is called by the builders before save.
	RepsValidator func(int) error
	// DefaultLapses holds the default value on creation for the "lapses" field.
	DefaultLapses int
	// LapsesValidator is a validator for the "lapses" field. It is called by the builders before save.
	LapsesValidator func(int) error
)

// OrderOption defines the ordering options for the CardState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKey orders the results by the key field.
func ByKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKey, opts...).ToFunc()
}

// ByDatasetID orders the results by the dataset_id field.
func ByDatasetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDatasetID, opts...).ToFunc()
}

// ByCardID orders the results by the card_id field.
func ByCardID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCardID, opts...).ToFunc()
}

// ByStability orders the results by the stability field.
func ByStability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStability, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByLastReviewAt orders the results by the last_review_at field.
func ByLastReviewAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReviewAt, opts...).ToFunc()
}

// ByDueAt orders the results by the due_at field.
func ByDueAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDueAt, opts...).ToFunc()
}

// ByReps orders the results by the reps field.
func ByReps(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReps, opts...).ToFunc()
}

// ByLapses orders the results by the lapses field.
func ByLapses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLapses, opts...).ToFunc()
}
