// Code generated by ent, DO NOT EDIT.

package confusion

import (
	"entgo.io/ent/dialect/sql"
	"github.com/hkawai/kioku/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Confusion {
	return predicate.Confusion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Confusion {
	return predicate.Confusion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Confusion {
	return predicate.Confusion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Confusion {
	return predicate.Confusion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Confusion {
	return predicate.Confusion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Confusion {
	return predicate.Confusion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Confusion {
	return predicate.Confusion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Confusion {
	return predicate.Confusion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Confusion {
	return predicate.Confusion(sql.FieldLTE(FieldID, id))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldEQ(FieldKey, v))
}

// DatasetID applies equality check predicate on the "dataset_id" field. It's identical to DatasetIDEQ.
func DatasetID(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldEQ(FieldDatasetID, v))
}

// PairKey applies equality check predicate on the "pair_key" field. It's identical to PairKeyEQ.
func PairKey(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldEQ(FieldPairKey, v))
}

// CardA applies equality check predicate on the "card_a" field. It's identical to CardAEQ.
func CardA(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldEQ(FieldCardA, v))
}

// CardB applies equality check predicate on the "card_b" field. It's identical to CardBEQ.
func CardB(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldEQ(FieldCardB, v))
}

// Count applies equality check predicate on the "count" field. It's identical to CountEQ.
func Count(v int) predicate.Confusion {
	return predicate.Confusion(sql.FieldEQ(FieldCount, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.Confusion {
	return predicate.Confusion(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.Confusion {
	return predicate.Confusion(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldContainsFold(FieldKey, v))
}

// DatasetIDEQ applies the EQ predicate on the "dataset_id" field.
func DatasetIDEQ(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldEQ(FieldDatasetID, v))
}

// DatasetIDNEQ applies the NEQ predicate on the "dataset_id" field.
func DatasetIDNEQ(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldNEQ(FieldDatasetID, v))
}

// DatasetIDIn applies the In predicate on the "dataset_id" field.
func DatasetIDIn(vs ...string) predicate.Confusion {
	return predicate.Confusion(sql.FieldIn(FieldDatasetID, vs...))
}

// DatasetIDNotIn applies the NotIn predicate on the "dataset_id" field.
func DatasetIDNotIn(vs ...string) predicate.Confusion {
	return predicate.Confusion(sql.FieldNotIn(FieldDatasetID, vs...))
}

// DatasetIDGT applies the GT predicate on the "dataset_id" field.
func DatasetIDGT(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldGT(FieldDatasetID, v))
}

// DatasetIDGTE applies the GTE predicate on the "dataset_id" field.
func DatasetIDGTE(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldGTE(FieldDatasetID, v))
}

// DatasetIDLT applies the LT predicate on the "dataset_id" field.
func DatasetIDLT(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldLT(FieldDatasetID, v))
}

// DatasetIDLTE applies the LTE predicate on the "dataset_id" field.
func DatasetIDLTE(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldLTE(FieldDatasetID, v))
}

// DatasetIDContains applies the Contains predicate on the "dataset_id" field.
func DatasetIDContains(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldContains(FieldDatasetID, v))
}

// DatasetIDHasPrefix applies the HasPrefix predicate on the "dataset_id" field.
func DatasetIDHasPrefix(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldHasPrefix(FieldDatasetID, v))
}

// DatasetIDHasSuffix applies the HasSuffix predicate on the "dataset_id" field.
func DatasetIDHasSuffix(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldHasSuffix(FieldDatasetID, v))
}

// DatasetIDEqualFold applies the EqualFold predicate on the "dataset_id" field.
func DatasetIDEqualFold(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldEqualFold(FieldDatasetID, v))
}

// DatasetIDContainsFold applies the ContainsFold predicate on the "dataset_id" field.
func DatasetIDContainsFold(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldContainsFold(FieldDatasetID, v))
}

// PairKeyEQ applies the EQ predicate on the "pair_key" field.
func PairKeyEQ(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldEQ(FieldPairKey, v))
}

// PairKeyNEQ applies the NEQ predicate on the "pair_key" field.
func PairKeyNEQ(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldNEQ(FieldPairKey, v))
}

// PairKeyIn applies the In predicate on the "pair_key" field.
func PairKeyIn(vs ...string) predicate.Confusion {
	return predicate.Confusion(sql.FieldIn(FieldPairKey, vs...))
}

// PairKeyNotIn applies the NotIn predicate on the "pair_key" field.
func PairKeyNotIn(vs ...string) predicate.Confusion {
	return predicate.Confusion(sql.FieldNotIn(FieldPairKey, vs...))
}

// PairKeyGT applies the GT predicate on the "pair_key" field.
func PairKeyGT(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldGT(FieldPairKey, v))
}

// PairKeyGTE applies the GTE predicate on the "pair_key" field.
func PairKeyGTE(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldGTE(FieldPairKey, v))
}

// PairKeyLT applies the LT predicate on the "pair_key" field.
func PairKeyLT(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldLT(FieldPairKey, v))
}

// PairKeyLTE applies the LTE predicate on the "pair_key" field.
func PairKeyLTE(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldLTE(FieldPairKey, v))
}

// PairKeyContains applies the Contains predicate on the "pair_key" field.
func PairKeyContains(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldContains(FieldPairKey, v))
}

// PairKeyHasPrefix applies the HasPrefix predicate on the "pair_key" field.
func PairKeyHasPrefix(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldHasPrefix(FieldPairKey, v))
}

// PairKeyHasSuffix applies the HasSuffix predicate on the "pair_key" field.
func PairKeyHasSuffix(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldHasSuffix(FieldPairKey, v))
}

// PairKeyEqualFold applies the EqualFold predicate on the "pair_key" field.
func PairKeyEqualFold(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldEqualFold(FieldPairKey, v))
}

// PairKeyContainsFold applies the ContainsFold predicate on the "pair_key" field.
func PairKeyContainsFold(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldContainsFold(FieldPairKey, v))
}

// CardAEQ applies the EQ predicate on the "card_a" field.
func CardAEQ(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldEQ(FieldCardA, v))
}

// CardANEQ applies the NEQ predicate on the "card_a" field.
func CardANEQ(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldNEQ(FieldCardA, v))
}

// CardAIn applies the In predicate on the "card_a" field.
func CardAIn(vs ...string) predicate.Confusion {
	return predicate.Confusion(sql.FieldIn(FieldCardA, vs...))
}

// CardANotIn applies the NotIn predicate on the "card_a" field.
func CardANotIn(vs ...string) predicate.Confusion {
	return predicate.Confusion(sql.FieldNotIn(FieldCardA, vs...))
}

// CardAGT applies the GT predicate on the "card_a" field.
func CardAGT(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldGT(FieldCardA, v))
}

// CardAGTE applies the GTE predicate on the "card_a" field.
func CardAGTE(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldGTE(FieldCardA, v))
}

// CardALT applies the LT predicate on the "card_a" field.
func CardALT(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldLT(FieldCardA, v))
}

// CardALTE applies the LTE predicate on the "card_a" field.
func CardALTE(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldLTE(FieldCardA, v))
}

// CardAContains applies the Contains predicate on the "card_a" field.
func CardAContains(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldContains(FieldCardA, v))
}

// CardAHasPrefix applies the HasPrefix predicate on the "card_a" field.
func CardAHasPrefix(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldHasPrefix(FieldCardA, v))
}

// CardAHasSuffix applies the HasSuffix predicate on the "card_a" field.
func CardAHasSuffix(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldHasSuffix(FieldCardA, v))
}

// CardAEqualFold applies the EqualFold predicate on the "card_a" field.
func CardAEqualFold(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldEqualFold(FieldCardA, v))
}

// CardAContainsFold applies the ContainsFold predicate on the "card_a" field.
func CardAContainsFold(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldContainsFold(FieldCardA, v))
}

// CardBEQ applies the EQ predicate on the "card_b" field.
func CardBEQ(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldEQ(FieldCardB, v))
}

// CardBNEQ applies the NEQ predicate on the "card_b" field.
func CardBNEQ(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldNEQ(FieldCardB, v))
}

// CardBIn applies the In predicate on the "card_b" field.
func CardBIn(vs ...string) predicate.Confusion {
	return predicate.Confusion(sql.FieldIn(FieldCardB, vs...))
}

// CardBNotIn applies the NotIn predicate on the "card_b" field.
func CardBNotIn(vs ...string) predicate.Confusion {
	return predicate.Confusion(sql.FieldNotIn(FieldCardB, vs...))
}

// CardBGT applies the GT predicate on the "card_b" field.
func CardBGT(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldGT(FieldCardB, v))
}

// CardBGTE applies the GTE predicate on the "card_b" field.
func CardBGTE(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldGTE(FieldCardB, v))
}

// CardBLT applies the LT predicate on the "card_b" field.
func CardBLT(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldLT(FieldCardB, v))
}

// CardBLTE applies the LTE predicate on the "card_b" field.
func CardBLTE(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldLTE(FieldCardB, v))
}

// CardBContains applies the Contains predicate on the "card_b" field.
func CardBContains(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldContains(FieldCardB, v))
}

// CardBHasPrefix applies the HasPrefix predicate on the "card_b" field.
func CardBHasPrefix(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldHasPrefix(FieldCardB, v))
}

// CardBHasSuffix applies the HasSuffix predicate on the "card_b" field.
func CardBHasSuffix(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldHasSuffix(FieldCardB, v))
}

// CardBEqualFold applies the EqualFold predicate on the "card_b" field.
func CardBEqualFold(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldEqualFold(FieldCardB, v))
}

// CardBContainsFold applies the ContainsFold predicate on the "card_b" field.
func CardBContainsFold(v string) predicate.Confusion {
	return predicate.Confusion(sql.FieldContainsFold(FieldCardB, v))
}

// CountEQ applies the EQ predicate on the "count" field.
func CountEQ(v int) predicate.Confusion {
	return predicate.Confusion(sql.FieldEQ(FieldCount, v))
}

// CountNEQ applies the NEQ predicate on the "count" field.
func CountNEQ(v int) predicate.Confusion {
	return predicate.Confusion(sql.FieldNEQ(FieldCount, v))
}

// CountIn applies the In predicate on the "count" field.
func CountIn(vs ...int) predicate.Confusion {
	return predicate.Confusion(sql.FieldIn(FieldCount, vs...))
}

// CountNotIn applies the NotIn predicate on the "count" field.
func CountNotIn(vs ...int) predicate.Confusion {
	return predicate.Confusion(sql.FieldNotIn(FieldCount, vs...))
}

// CountGT applies the GT predicate on the "count" field.
func CountGT(v int) predicate.Confusion {
	return predicate.Confusion(sql.FieldGT(FieldCount, v))
}

// CountGTE applies the GTE predicate on the "count" field.
func CountGTE(v int) predicate.Confusion {
	return predicate.Confusion(sql.FieldGTE(FieldCount, v))
}

// CountLT applies the LT predicate on the "count" field.
func CountLT(v int) predicate.Confusion {
	return predicate.Confusion(sql.FieldLT(FieldCount, v))
}

// CountLTE applies the LTE predicate on the "count" field.
func CountLTE(v int) predicate.Confusion {
	return predicate.Confusion(sql.FieldLTE(FieldCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Confusion) predicate.Confusion {
	return predicate.Confusion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Confusion) predicate.Confusion {
	return predicate.Confusion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Confusion) predicate.Confusion {
	return predicate.Confusion(sql.NotPredicates(p))
}
