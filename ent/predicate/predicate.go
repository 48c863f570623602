// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Card is the predicate function for card builders.
type Card func(*sql.Selector)

// CardState is the predicate function for cardstate builders.
type CardState func(*sql.Selector)

// Confusion is the predicate function for confusion builders.
type Confusion func(*sql.Selector)

// Dataset is the predicate function for dataset builders.
type Dataset func(*sql.Selector)

// Review is the predicate function for review builders.
type Review func(*sql.Selector)

// Setting is the predicate function for setting builders.
type Setting func(*sql.Selector)
