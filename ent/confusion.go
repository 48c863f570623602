// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hkawai/kioku/ent/confusion"
)

// Confusion is the model entity for the Confusion schema.
type Confusion struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Composite datasetID::pairKey
	Key string `json:"key,omitempty"`
	// DatasetID holds the value of the "dataset_id" field.
	DatasetID string `json:"dataset_id,omitempty"`
	// Sorted cardA::cardB
	PairKey string `json:"pair_key,omitempty"`
	// CardA holds the value of the "card_a" field.
	CardA string `json:"card_a,omitempty"`
	// CardB holds the value of the "card_b" field.
	CardB string `json:"card_b,omitempty"`
	// Incremented, never decremented
	Count        int `json:"count,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Confusion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case confusion.FieldID, confusion.FieldCount:
			values[i] = new(sql.NullInt64)
		case confusion.FieldKey, confusion.FieldDatasetID, confusion.FieldPairKey, confusion.FieldCardA, confusion.FieldCardB:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Confusion fields.
func (_m *Confusion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case confusion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case confusion.FieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key", values[i])
			} else if value.Valid {
				_m.Key = value.String
			}
		case confusion.FieldDatasetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dataset_id", values[i])
			} else if value.Valid {
				_m.DatasetID = value.String
			}
		case confusion.FieldPairKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pair_key", values[i])
			} else if value.Valid {
				_m.PairKey = value.String
			}
		case confusion.FieldCardA:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field card_a", values[i])
			} else if value.Valid {
				_m.CardA = value.String
			}
		case confusion.FieldCardB:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field card_b", values[i])
			} else if value.Valid {
				_m.CardB = value.String
			}
		case confusion.FieldCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field count", values[i])
			} else if value.Valid {
				_m.Count = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Confusion.
// This includes values selected through modifiers, order, etc.
func (_m *Confusion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Confusion.
// Note that you need to call Confusion.Unwrap() before calling this method if this Confusion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Confusion) Update() *ConfusionUpdateOne {
	return NewConfusionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Confusion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Confusion) Unwrap() *Confusion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Confusion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Confusion) String() string {
	var builder strings.Builder
	builder.WriteString("Confusion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("key=")
	builder.WriteString(_m.Key)
	builder.WriteString(", ")
	builder.WriteString("dataset_id=")
	builder.WriteString(_m.DatasetID)
	builder.WriteString(", ")
	builder.WriteString("pair_key=")
	builder.WriteString(_m.PairKey)
	builder.WriteString(", ")
	builder.WriteString("card_a=")
	builder.WriteString(_m.CardA)
	builder.WriteString(", ")
	builder.WriteString("card_b=")
	builder.WriteString(_m.CardB)
	builder.WriteString(", ")
	builder.WriteString("count=")
	builder.WriteString(fmt.Sprintf("%v", _m.Count))
	builder.WriteByte(')')
	return builder.String()
}

// Confusions is a parsable slice of Confusion.
type Confusions []*Confusion
