// Code generated by ent, DO NOT EDIT.

package confusion

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the confusion type in the database.
	Label = "confusion"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldKey holds the string denoting the key field in the database.
	FieldKey = "key"
	// FieldDatasetID holds the string denoting the dataset_id field in the database.
	FieldDatasetID = "dataset_id"
	// FieldPairKey holds the string denoting the pair_key field in the database.
	FieldPairKey = "pair_key"
	// FieldCardA holds the string denoting the card_a field in the database.
	FieldCardA = "card_a"
	// FieldCardB holds the string denoting the card_b field in the database.
	FieldCardB = "card_b"
	// FieldCount holds the string denoting the count field in the database.
	FieldCount = "count"
	// Table holds the table name of the confusion in the database.
	Table = "confusions"
)

// Columns holds all SQL columns for confusion fields.
var Columns = []string{
	FieldID,
	FieldKey,
	FieldDatasetID,
	FieldPairKey,
	FieldCardA,
	FieldCardB,
	FieldCount,
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
	// PairKeyValidator is a validator for the "pair_key" field. It is called by the builders before save.
	PairKeyValidator func(string) error
	// CardAValidator is a validator for the "card_a" field. It is called by the builders before save.
	CardAValidator func(string) error
	// CardBValidator is a validator for the "card_b" field. It is called by the builders before save.
	CardBValidator func(string) error
	// DefaultCount holds the default value on creation for the "count" field.
	DefaultCount int
	// CountValidator is a validator for the "count" field. It is called by the builders before save.
	CountValidator func(int) error
)

// OrderOption defines the ordering options for the Confusion queries.
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

// ByPairKey orders the results by the pair_key field.
func ByPairKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPairKey, opts...).ToFunc()
}

// ByCardA orders the results by the card_a field.
func ByCardA(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCardA, opts...).ToFunc()
}

// ByCardB orders the results by the card_b field.
func ByCardB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCardB, opts...).ToFunc()
}

// ByCount orders the results by the count field.
func ByCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCount, opts...).ToFunc()
}
