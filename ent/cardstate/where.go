// Code generated by ent, DO NOT EDIT.

package cardstate

import (
	"entgo.io/ent/dialect/sql"
	"github.com/hkawai/kioku/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CardState {
	return predicate.CardState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CardState {
	return predicate.CardState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CardState {
	return predicate.CardState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CardState {
	return predicate.CardState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CardState {
	return predicate.CardState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CardState {
	return predicate.CardState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CardState {
	return predicate.CardState(sql.FieldLTE(FieldID, id))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldKey, v))
}

// DatasetID applies equality check predicate on the "dataset_id" field. It's identical to DatasetIDEQ.
func DatasetID(v string) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldDatasetID, v))
}

// CardID applies equality check predicate on the "card_id" field. It's identical to CardIDEQ.
func CardID(v string) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldCardID, v))
}

// Stability applies equality check predicate on the "stability" field. It's identical to StabilityEQ.
func Stability(v float64) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldStability, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v float64) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldDifficulty, v))
}

// LastReviewAt applies equality check predicate on the "last_review_at" field. It's identical to LastReviewAtEQ.
func LastReviewAt(v int64) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldLastReviewAt, v))
}

// DueAt applies equality check predicate on the "due_at" field. It's identical to DueAtEQ.
func DueAt(v int64) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldDueAt, v))
}

// Reps applies equality check predicate on the "reps" field. It's identical to RepsEQ.
func Reps(v int) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldReps, v))
}

// Lapses applies equality check predicate on the "lapses" field. It's identical to LapsesEQ.
func Lapses(v int) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldLapses, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.CardState {
	return predicate.CardState(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.CardState {
	return predicate.CardState(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.CardState {
	return predicate.CardState(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.CardState {
	return predicate.CardState(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.CardState {
	return predicate.CardState(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.CardState {
	return predicate.CardState(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.CardState {
	return predicate.CardState(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.CardState {
	return predicate.CardState(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.CardState {
	return predicate.CardState(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.CardState {
	return predicate.CardState(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.CardState {
	return predicate.CardState(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.CardState {
	return predicate.CardState(sql.FieldContainsFold(FieldKey, v))
}

// DatasetIDEQ applies the EQ predicate on the "dataset_id" field.
func DatasetIDEQ(v string) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldDatasetID, v))
}

// DatasetIDNEQ applies the NEQ predicate on the "dataset_id" field.
func DatasetIDNEQ(v string) predicate.CardState {
	return predicate.CardState(sql.FieldNEQ(FieldDatasetID, v))
}

// DatasetIDIn applies the In predicate on the "dataset_id" field.
func DatasetIDIn(vs ...string) predicate.CardState {
	return predicate.CardState(sql.FieldIn(FieldDatasetID, vs...))
}

// DatasetIDNotIn applies the NotIn predicate on the "dataset_id" field.
func DatasetIDNotIn(vs ...string) predicate.CardState {
	return predicate.CardState(sql.FieldNotIn(FieldDatasetID, vs...))
}

// DatasetIDGT applies the GT predicate on the "dataset_id" field.
func DatasetIDGT(v string) predicate.CardState {
	return predicate.CardState(sql.FieldGT(FieldDatasetID, v))
}

// DatasetIDGTE applies the GTE predicate on the "dataset_id" field.
func DatasetIDGTE(v string) predicate.CardState {
	return predicate.CardState(sql.FieldGTE(FieldDatasetID, v))
}

// DatasetIDLT applies the LT predicate on the "dataset_id" field.
func DatasetIDLT(v string) predicate.CardState {
	return predicate.CardState(sql.FieldLT(FieldDatasetID, v))
}

// DatasetIDLTE applies the LTE predicate on the "dataset_id" field.
func DatasetIDLTE(v string) predicate.CardState {
	return predicate.CardState(sql.FieldLTE(FieldDatasetID, v))
}

// DatasetIDContains applies the Contains predicate on the "dataset_id" field.
func DatasetIDContains(v string) predicate.CardState {
	return predicate.CardState(sql.FieldContains(FieldDatasetID, v))
}

// DatasetIDHasPrefix applies the HasPrefix predicate on the "dataset_id" field.
func DatasetIDHasPrefix(v string) predicate.CardState {
	return predicate.CardState(sql.FieldHasPrefix(FieldDatasetID, v))
}

// DatasetIDHasSuffix applies the HasSuffix predicate on the "dataset_id" field.
func DatasetIDHasSuffix(v string) predicate.CardState {
	return predicate.CardState(sql.FieldHasSuffix(FieldDatasetID, v))
}

// DatasetIDEqualFold applies the EqualFold predicate on the "dataset_id" field.
func DatasetIDEqualFold(v string) predicate.CardState {
	return predicate.CardState(sql.FieldEqualFold(FieldDatasetID, v))
}

// DatasetIDContainsFold applies the ContainsFold predicate on the "dataset_id" field.
func DatasetIDContainsFold(v string) predicate.CardState {
	return predicate.CardState(sql.FieldContainsFold(FieldDatasetID, v))
}

// CardIDEQ applies the EQ predicate on the "card_id" field.
func CardIDEQ(v string) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldCardID, v))
}

// CardIDNEQ applies the NEQ predicate on the "card_id" field.
func CardIDNEQ(v string) predicate.CardState {
	return predicate.CardState(sql.FieldNEQ(FieldCardID, v))
}

// CardIDIn applies the In predicate on the "card_id" field.
func CardIDIn(vs ...string) predicate.CardState {
	return predicate.CardState(sql.FieldIn(FieldCardID, vs...))
}

// CardIDNotIn applies the NotIn predicate on the "card_id" field.
func CardIDNotIn(vs ...string) predicate.CardState {
	return predicate.CardState(sql.FieldNotIn(FieldCardID, vs...))
}

// CardIDGT applies the GT predicate on the "card_id" field.
func CardIDGT(v string) predicate.CardState {
	return predicate.CardState(sql.FieldGT(FieldCardID, v))
}

// CardIDGTE applies the GTE predicate on the "card_id" field.
func CardIDGTE(v string) predicate.CardState {
	return predicate.CardState(sql.FieldGTE(FieldCardID, v))
}

// CardIDLT applies the LT predicate on the "card_id" field.
func CardIDLT(v string) predicate.CardState {
	return predicate.CardState(sql.FieldLT(FieldCardID, v))
}

// CardIDLTE applies the LTE predicate on the "card_id" field.
func CardIDLTE(v string) predicate.CardState {
	return predicate.CardState(sql.FieldLTE(FieldCardID, v))
}

// CardIDContains applies the Contains predicate on the "card_id" field.
func CardIDContains(v string) predicate.CardState {
	return predicate.CardState(sql.FieldContains(FieldCardID, v))
}

// CardIDHasPrefix applies the HasPrefix predicate on the "card_id" field.
func CardIDHasPrefix(v string) predicate.CardState {
	return predicate.CardState(sql.FieldHasPrefix(FieldCardID, v))
}

// CardIDHasSuffix applies the HasSuffix predicate on the "card_id" field.
func CardIDHasSuffix(v string) predicate.CardState {
	return predicate.CardState(sql.FieldHasSuffix(FieldCardID, v))
}

// CardIDEqualFold applies the EqualFold predicate on the "card_id" field.
func CardIDEqualFold(v string) predicate.CardState {
	return predicate.CardState(sql.FieldEqualFold(FieldCardID, v))
}

// CardIDContainsFold applies the ContainsFold predicate on the "card_id" field.
func CardIDContainsFold(v string) predicate.CardState {
	return predicate.CardState(sql.FieldContainsFold(FieldCardID, v))
}

// StabilityEQ applies the EQ predicate on the "stability" field.
func StabilityEQ(v float64) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldStability, v))
}

// StabilityNEQ applies the NEQ predicate on the "stability" field.
func StabilityNEQ(v float64) predicate.CardState {
	return predicate.CardState(sql.FieldNEQ(FieldStability, v))
}

// StabilityIn applies the In predicate on the "stability" field.
func StabilityIn(vs ...float64) predicate.CardState {
	return predicate.CardState(sql.FieldIn(FieldStability, vs...))
}

// StabilityNotIn applies the NotIn predicate on the "stability" field.
func StabilityNotIn(vs ...float64) predicate.CardState {
	return predicate.CardState(sql.FieldNotIn(FieldStability, vs...))
}

// StabilityGT applies the GT predicate on the "stability" field.
func StabilityGT(v float64) predicate.CardState {
	return predicate.CardState(sql.FieldGT(FieldStability, v))
}

// StabilityGTE applies the GTE predicate on the "stability" field.
func StabilityGTE(v float64) predicate.CardState {
	return predicate.CardState(sql.FieldGTE(FieldStability, v))
}

// StabilityLT applies the LT predicate on the "stability" field.
func StabilityLT(v float64) predicate.CardState {
	return predicate.CardState(sql.FieldLT(FieldStability, v))
}

// StabilityLTE applies the LTE predicate on the "stability" field.
func StabilityLTE(v float64) predicate.CardState {
	return predicate.CardState(sql.FieldLTE(FieldStability, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v float64) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v float64) predicate.CardState {
	return predicate.CardState(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...float64) predicate.CardState {
	return predicate.CardState(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...float64) predicate.CardState {
	return predicate.CardState(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v float64) predicate.CardState {
	return predicate.CardState(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v float64) predicate.CardState {
	return predicate.CardState(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v float64) predicate.CardState {
	return predicate.CardState(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v float64) predicate.CardState {
	return predicate.CardState(sql.FieldLTE(FieldDifficulty, v))
}

// LastReviewAtEQ applies the EQ predicate on the "last_review_at" field.
func LastReviewAtEQ(v int64) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldLastReviewAt, v))
}

// LastReviewAtNEQ applies the NEQ predicate on the "last_review_at" field.
func LastReviewAtNEQ(v int64) predicate.CardState {
	return predicate.CardState(sql.FieldNEQ(FieldLastReviewAt, v))
}

// LastReviewAtIn applies the In predicate on the "last_review_at" field.
func LastReviewAtIn(vs ...int64) predicate.CardState {
	return predicate.CardState(sql.FieldIn(FieldLastReviewAt, vs...))
}

// LastReviewAtNotIn applies the NotIn predicate on the "last_review_at" field.
func LastReviewAtNotIn(vs ...int64) predicate.CardState {
	return predicate.CardState(sql.FieldNotIn(FieldLastReviewAt, vs...))
}

// LastReviewAtGT applies the GT predicate on the "last_review_at" field.
func LastReviewAtGT(v int64) predicate.CardState {
	return predicate.CardState(sql.FieldGT(FieldLastReviewAt, v))
}

// LastReviewAtGTE applies the GTE predicate on the "last_review_at" field.
func LastReviewAtGTE(v int64) predicate.CardState {
	return predicate.CardState(sql.FieldGTE(FieldLastReviewAt, v))
}

// LastReviewAtLT applies the LT predicate on the "last_review_at" field.
func LastReviewAtLT(v int64) predicate.CardState {
	return predicate.CardState(sql.FieldLT(FieldLastReviewAt, v))
}

// LastReviewAtLTE applies the LTE predicate on the "last_review_at" field.
func LastReviewAtLTE(v int64) predicate.CardState {
	return predicate.CardState(sql.FieldLTE(FieldLastReviewAt, v))
}

// LastReviewAtIsNil applies the IsNil predicate on the "last_review_at" field.
func LastReviewAtIsNil() predicate.CardState {
	return predicate.CardState(sql.FieldIsNull(FieldLastReviewAt))
}

// LastReviewAtNotNil applies the NotNil predicate on the "last_review_at" field.
func LastReviewAtNotNil() predicate.CardState {
	return predicate.CardState(sql.FieldNotNull(FieldLastReviewAt))
}

// DueAtEQ applies the EQ predicate on the "due_at" field.
func DueAtEQ(v int64) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldDueAt, v))
}

// DueAtNEQ applies the NEQ predicate on the "due_at" field.
func DueAtNEQ(v int64) predicate.CardState {
	return predicate.CardState(sql.FieldNEQ(FieldDueAt, v))
}

// DueAtIn applies the In predicate on the "due_at" field.
func DueAtIn(vs ...int64) predicate.CardState {
	return predicate.CardState(sql.FieldIn(FieldDueAt, vs...))
}

// DueAtNotIn applies the NotIn predicate on the "due_at" field.
func DueAtNotIn(vs ...int64) predicate.CardState {
	return predicate.CardState(sql.FieldNotIn(FieldDueAt, vs...))
}

// DueAtGT applies the GT predicate on the "due_at" field.
func DueAtGT(v int64) predicate.CardState {
	return predicate.CardState(sql.FieldGT(FieldDueAt, v))
}

// DueAtGTE applies the GTE predicate on the "due_at" field.
func DueAtGTE(v int64) predicate.CardState {
	return predicate.CardState(sql.FieldGTE(FieldDueAt, v))
}

// DueAtLT applies the LT predicate on the "due_at" field.
func DueAtLT(v int64) predicate.CardState {
	return predicate.CardState(sql.FieldLT(FieldDueAt, v))
}

// DueAtLTE applies the LTE predicate on the "due_at" field.
func DueAtLTE(v int64) predicate.CardState {
	return predicate.CardState(sql.FieldLTE(FieldDueAt, v))
}

// RepsEQ applies the EQ predicate on the "reps" field.
func RepsEQ(v int) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldReps, v))
}

// RepsNEQ applies the NEQ predicate on the "reps" field.
func RepsNEQ(v int) predicate.CardState {
	return predicate.CardState(sql.FieldNEQ(FieldReps, v))
}

// RepsIn applies the In predicate on the "reps" field.
func RepsIn(vs ...int) predicate.CardState {
	return predicate.CardState(sql.FieldIn(FieldReps, vs...))
}

// RepsNotIn applies the NotIn predicate on the "reps" field.
func RepsNotIn(vs ...int) predicate.CardState {
	return predicate.CardState(sql.FieldNotIn(FieldReps, vs...))
}

// RepsGT applies the GT predicate on the "reps" field.
func RepsGT(v int) predicate.CardState {
	return predicate.CardState(sql.FieldGT(FieldReps, v))
}

// RepsGTE applies the GTE predicate on the "reps" field.
func RepsGTE(v int) predicate.CardState {
	return predicate.CardState(sql.FieldGTE(FieldReps, v))
}

// RepsLT applies the LT predicate on the "reps" field.
func RepsLT(v int) predicate.CardState {
	return predicate.CardState(sql.FieldLT(FieldReps, v))
}

// RepsLTE applies the LTE predicate on the "reps" field.
func RepsLTE(v int) predicate.CardState {
	return predicate.CardState(sql.FieldLTE(FieldReps, v))
}

// LapsesEQ applies the EQ predicate on the "lapses" field.
func LapsesEQ(v int) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldLapses, v))
}

// LapsesNEQ applies the NEQ predicate on the "lapses" field.
func LapsesNEQ(v int) predicate.CardState {
	return predicate.CardState(sql.FieldNEQ(FieldLapses, v))
}

// LapsesIn applies the In predicate on the "lapses" field.
func LapsesIn(vs ...int) predicate.CardState {
	return predicate.CardState(sql.FieldIn(FieldLapses, vs...))
}

// LapsesNotIn applies the NotIn predicate on the "lapses" field.
func LapsesNotIn(vs ...int) predicate.CardState {
	return predicate.CardState(sql.FieldNotIn(FieldLapses, vs...))
}

// LapsesGT applies the GT predicate on the "lapses" field.
func LapsesGT(v int) predicate.CardState {
	return predicate.CardState(sql.FieldGT(FieldLapses, v))
}

// LapsesGTE applies the GTE predicate on the "lapses" field.
func LapsesGTE(v int) predicate.CardState {
	return predicate.CardState(sql.FieldGTE(FieldLapses, v))
}

// LapsesLT applies the LT predicate on the "lapses" field.
func LapsesLT(v int) predicate.CardState {
	return predicate.CardState(sql.FieldLT(FieldLapses, v))
}

// LapsesLTE applies the LTE predicate on the "lapses" field.
func LapsesLTE(v int) predicate.CardState {
	return predicate.CardState(sql.FieldLTE(FieldLapses, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CardState) predicate.CardState {
	return predicate.CardState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CardState) predicate.CardState {
	return predicate.CardState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CardState) predicate.CardState {
	return predicate.CardState(sql.NotPredicates(p))
}
