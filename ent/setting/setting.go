// Code generated by ent, DO NOT EDIT.

package setting

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the setting type in the database.
	Label = "setting"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldKey holds the string denoting the key field in the database.
	FieldKey = "key"
	// FieldTargetRetention holds the string denoting the target_retention field in the database.
	FieldTargetRetention = "target_retention"
	// FieldExamDate holds the string denoting the exam_date field in the database.
	FieldExamDate = "exam_date"
	// Table holds the table name of the setting in the database.
	Table = "settings"
)

// Columns holds all SQL columns for setting fields.
var Columns = []string{
	FieldID,
	FieldKey,
	FieldTargetRetention,
	FieldExamDate,
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
)

// OrderOption defines the ordering options for the Setting queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKey orders the results by the key field.
func ByKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKey, opts...).ToFunc()
}

// ByTargetRetention orders the results by the target_retention field.
func ByTargetRetention(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetRetention, opts...).ToFunc()
}

// ByExamDate orders the results by the exam_date field.
func ByExamDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamDate, opts...).ToFunc()
}
