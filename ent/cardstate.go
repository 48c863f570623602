// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hkawai/kioku/ent/cardstate"
)

// CardState is the model entity for the CardState schema.
type CardState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Composite datasetID::cardID
	Key string `json:"key,omitempty"`
	// DatasetID holds the value of the "dataset_id" field.
	DatasetID string `json:"dataset_id,omitempty"`
	// CardID holds the value of the "card_id" field.
	CardID string `json:"card_id,omitempty"`
	// Days-scale decay constant, always > 0
	Stability float64 `json:"stability,omitempty"`
	// 1-10
	Difficulty float64 `json:"difficulty,omitempty"`
	// Epoch milliseconds of the last review
	LastReviewAt *int64 `json:"last_review_at,omitempty"`
	// Epoch milliseconds
	DueAt int64 `json:"due_at,omitempty"`
	// Reps holds the value of the "reps" field.
	Reps int `json:"reps,omitempty"`
	// Count of grade=1 reviews
	Lapses       int `json:"lapses,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CardState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cardstate.FieldStability, cardstate.FieldDifficulty:
			values[i] = new(sql.NullFloat64)
		case cardstate.FieldID, cardstate.FieldLastReviewAt, cardstate.FieldDueAt, cardstate.FieldReps, cardstate.FieldLapses:
			values[i] = new(sql.NullInt64)
		case cardstate.FieldKey, cardstate.FieldDatasetID, cardstate.FieldCardID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CardState fields.
func (_m *CardState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cardstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case cardstate.FieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key", values[i])
			} else if value.Valid {
				_m.Key = value.String
			}
		case cardstate.FieldDatasetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dataset_id", values[i])
			} else if value.Valid {
				_m.DatasetID = value.String
			}
		case cardstate.FieldCardID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field card_id", values[i])
			} else if value.Valid {
				_m.CardID = value.String
			}
		case cardstate.FieldStability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field stability", values[i])
			} else if value.Valid {
				_m.Stability = value.Float64
			}
		case cardstate.FieldDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.Float64
			}
		case cardstate.FieldLastReviewAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_review_at", values[i])
			} else if value.Valid {
				_m.LastReviewAt = new(int64)
				*_m.LastReviewAt = value.Int64
			}
		case cardstate.FieldDueAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field due_at", values[i])
			} else if value.Valid {
				_m.DueAt = value.Int64
			}
		case cardstate.FieldReps:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reps", values[i])
			} else if value.Valid {
				_m.Reps = int(value.Int64)
			}
		case cardstate.FieldLapses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lapses", values[i])
			} else if value.Valid {
				_m.Lapses = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CardState.
// This includes values selected through modifiers, order, etc.
func (_m *CardState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CardState.
// Note that you need to call CardState.Unwrap() before calling this method if this CardState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CardState) Update() *CardStateUpdateOne {
	return NewCardStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CardState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CardState) Unwrap() *CardState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CardState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CardState) String() string {
	var builder strings.Builder
	builder.WriteString("CardState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("key=")
	builder.WriteString(_m.Key)
	builder.WriteString(", ")
	builder.WriteString("dataset_id=")
	builder.WriteString(_m.DatasetID)
	builder.WriteString(", ")
	builder.WriteString("card_id=")
	builder.WriteString(_m.CardID)
	builder.WriteString(", ")
	builder.WriteString("stability=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stability))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	if v := _m.LastReviewAt; v != nil {
		builder.WriteString("last_review_at=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("due_at=")
	builder.WriteString(fmt.Sprintf("%v", _m.DueAt))
	builder.WriteString(", ")
	builder.WriteString("reps=")
	builder.WriteString(fmt.Sprintf("%v", _m.Reps))
	builder.WriteString(", ")
	builder.WriteString("lapses=")
	builder.WriteString(fmt.Sprintf("%v", _m.Lapses))
	builder.WriteByte(')')
	return builder.String()
}

// CardStates is a parsable slice of CardState.
type CardStates []*CardState
