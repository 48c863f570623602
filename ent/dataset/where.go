// Code generated by ent, DO NOT EDIT.

package dataset

import (
	"entgo.io/ent/dialect/sql"
	"github.com/hkawai/kioku/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldID, id))
}

// DatasetID applies equality check predicate on the "dataset_id" field. It's identical to DatasetIDEQ.
func DatasetID(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldDatasetID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldDescription, v))
}

// CardCount applies equality check predicate on the "card_count" field. It's identical to CardCountEQ.
func CardCount(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldCardCount, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldUpdatedAt, v))
}

// DatasetIDEQ applies the EQ predicate on the "dataset_id" field.
func DatasetIDEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldDatasetID, v))
}

// DatasetIDNEQ applies the NEQ predicate on the "dataset_id" field.
func DatasetIDNEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldDatasetID, v))
}

// DatasetIDIn applies the In predicate on the "dataset_id" field.
func DatasetIDIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldDatasetID, vs...))
}

// DatasetIDNotIn applies the NotIn predicate on the "dataset_id" field.
func DatasetIDNotIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldDatasetID, vs...))
}

// DatasetIDGT applies the GT predicate on the "dataset_id" field.
func DatasetIDGT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldDatasetID, v))
}

// DatasetIDGTE applies the GTE predicate on the "dataset_id" field.
func DatasetIDGTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldDatasetID, v))
}

// DatasetIDLT applies the LT predicate on the "dataset_id" field.
func DatasetIDLT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldDatasetID, v))
}

// DatasetIDLTE applies the LTE predicate on the "dataset_id" field.
func DatasetIDLTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldDatasetID, v))
}

// DatasetIDContains applies the Contains predicate on the "dataset_id" field.
func DatasetIDContains(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContains(FieldDatasetID, v))
}

// DatasetIDHasPrefix applies the HasPrefix predicate on the "dataset_id" field.
func DatasetIDHasPrefix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasPrefix(FieldDatasetID, v))
}

// DatasetIDHasSuffix applies the HasSuffix predicate on the "dataset_id" field.
func DatasetIDHasSuffix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasSuffix(FieldDatasetID, v))
}

// DatasetIDEqualFold applies the EqualFold predicate on the "dataset_id" field.
func DatasetIDEqualFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEqualFold(FieldDatasetID, v))
}

// DatasetIDContainsFold applies the ContainsFold predicate on the "dataset_id" field.
func DatasetIDContainsFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContainsFold(FieldDatasetID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Dataset {
	return predicate.Dataset(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Dataset {
	return predicate.Dataset(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContainsFold(FieldDescription, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.Dataset {
	return predicate.Dataset(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.Dataset {
	return predicate.Dataset(sql.FieldNotNull(FieldTags))
}

// CardCountEQ applies the EQ predicate on the "card_count" field.
func CardCountEQ(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldCardCount, v))
}

// CardCountNEQ applies the NEQ predicate on the "card_count" field.
func CardCountNEQ(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldCardCount, v))
}

// CardCountIn applies the In predicate on the "card_count" field.
func CardCountIn(vs ...int) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldCardCount, vs...))
}

// CardCountNotIn applies the NotIn predicate on the "card_count" field.
func CardCountNotIn(vs ...int) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldCardCount, vs...))
}

// CardCountGT applies the GT predicate on the "card_count" field.
func CardCountGT(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldCardCount, v))
}

// CardCountGTE applies the GTE predicate on the "card_count" field.
func CardCountGTE(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldCardCount, v))
}

// CardCountLT applies the LT predicate on the "card_count" field.
func CardCountLT(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldCardCount, v))
}

// CardCountLTE applies the LTE predicate on the "card_count" field.
func CardCountLTE(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldCardCount, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Dataset) predicate.Dataset {
	return predicate.Dataset(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Dataset) predicate.Dataset {
	return predicate.Dataset(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Dataset) predicate.Dataset {
	return predicate.Dataset(sql.NotPredicates(p))
}
