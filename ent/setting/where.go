// Code generated by ent, DO NOT EDIT.

package setting

import (
	"entgo.io/ent/dialect/sql"
	"github.com/hkawai/kioku/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Setting {
	return predicate.Setting(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Setting {
	return predicate.Setting(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Setting {
	return predicate.Setting(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Setting {
	return predicate.Setting(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Setting {
	return predicate.Setting(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Setting {
	return predicate.Setting(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Setting {
	return predicate.Setting(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Setting {
	return predicate.Setting(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Setting {
	return predicate.Setting(sql.FieldLTE(FieldID, id))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.Setting {
	return predicate.Setting(sql.FieldEQ(FieldKey, v))
}

// TargetRetention applies equality check predicate on the "target_retention" field. It's identical to TargetRetentionEQ.
func TargetRetention(v float64) predicate.Setting {
	return predicate.Setting(sql.FieldEQ(FieldTargetRetention, v))
}

// ExamDate applies equality check predicate on the "exam_date" field. It's identical to ExamDateEQ.
func ExamDate(v string) predicate.Setting {
	return predicate.Setting(sql.FieldEQ(FieldExamDate, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.Setting {
	return predicate.Setting(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.Setting {
	return predicate.Setting(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.Setting {
	return predicate.Setting(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.Setting {
	return predicate.Setting(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.Setting {
	return predicate.Setting(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.Setting {
	return predicate.Setting(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.Setting {
	return predicate.Setting(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.Setting {
	return predicate.Setting(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.Setting {
	return predicate.Setting(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.Setting {
	return predicate.Setting(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.Setting {
	return predicate.Setting(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.Setting {
	return predicate.Setting(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.Setting {
	return predicate.Setting(sql.FieldContainsFold(FieldKey, v))
}

// TargetRetentionEQ applies the EQ predicate on the "target_retention" field.
func TargetRetentionEQ(v float64) predicate.Setting {
	return predicate.Setting(sql.FieldEQ(FieldTargetRetention, v))
}

// TargetRetentionNEQ applies the NEQ predicate on the "target_retention" field.
func TargetRetentionNEQ(v float64) predicate.Setting {
	return predicate.Setting(sql.FieldNEQ(FieldTargetRetention, v))
}

// TargetRetentionIn applies the In predicate on the "target_retention" field.
func TargetRetentionIn(vs ...float64) predicate.Setting {
	return predicate.Setting(sql.FieldIn(FieldTargetRetention, vs...))
}

// TargetRetentionNotIn applies the NotIn predicate on the "target_retention" field.
func TargetRetentionNotIn(vs ...float64) predicate.Setting {
	return predicate.Setting(sql.FieldNotIn(FieldTargetRetention, vs...))
}

// TargetRetentionGT applies the GT predicate on the "target_retention" field.
func TargetRetentionGT(v float64) predicate.Setting {
	return predicate.Setting(sql.FieldGT(FieldTargetRetention, v))
}

// TargetRetentionGTE applies the GTE predicate on the "target_retention" field.
func TargetRetentionGTE(v float64) predicate.Setting {
	return predicate.Setting(sql.FieldGTE(FieldTargetRetention, v))
}

// TargetRetentionLT applies the LT predicate on the "target_retention" field.
func TargetRetentionLT(v float64) predicate.Setting {
	return predicate.Setting(sql.FieldLT(FieldTargetRetention, v))
}

// TargetRetentionLTE applies the LTE predicate on the "target_retention" field.
func TargetRetentionLTE(v float64) predicate.Setting {
	return predicate.Setting(sql.FieldLTE(FieldTargetRetention, v))
}

// ExamDateEQ applies the EQ predicate on the "exam_date" field.
func ExamDateEQ(v string) predicate.Setting {
	return predicate.Setting(sql.FieldEQ(FieldExamDate, v))
}

// ExamDateNEQ applies the NEQ predicate on the "exam_date" field.
func ExamDateNEQ(v string) predicate.Setting {
	return predicate.Setting(sql.FieldNEQ(FieldExamDate, v))
}

// ExamDateIn applies the In predicate on the "exam_date" field.
func ExamDateIn(vs ...string) predicate.Setting {
	return predicate.Setting(sql.FieldIn(FieldExamDate, vs...))
}

// ExamDateNotIn applies the NotIn predicate on the "exam_date" field.
func ExamDateNotIn(vs ...string) predicate.Setting {
	return predicate.Setting(sql.FieldNotIn(FieldExamDate, vs...))
}

// ExamDateGT applies the GT predicate on the "exam_date" field.
func ExamDateGT(v string) predicate.Setting {
	return predicate.Setting(sql.FieldGT(FieldExamDate, v))
}

// ExamDateGTE applies the GTE predicate on the "exam_date" field.
func ExamDateGTE(v string) predicate.Setting {
	return predicate.Setting(sql.FieldGTE(FieldExamDate, v))
}

// ExamDateLT applies the LT predicate on the "exam_date" field.
func ExamDateLT(v string) predicate.Setting {
	return predicate.Setting(sql.FieldLT(FieldExamDate, v))
}

// ExamDateLTE applies the LTE predicate on the "exam_date" field.
func ExamDateLTE(v string) predicate.Setting {
	return predicate.Setting(sql.FieldLTE(FieldExamDate, v))
}

// ExamDateContains applies the Contains predicate on the "exam_date" field.
func ExamDateContains(v string) predicate.Setting {
	return predicate.Setting(sql.FieldContains(FieldExamDate, v))
}

// ExamDateHasPrefix applies the HasPrefix predicate on the "exam_date" field.
func ExamDateHasPrefix(v string) predicate.Setting {
	return predicate.Setting(sql.FieldHasPrefix(FieldExamDate, v))
}

// ExamDateHasSuffix applies the HasSuffix predicate on the "exam_date" field.
func ExamDateHasSuffix(v string) predicate.Setting {
	return predicate.Setting(sql.FieldHasSuffix(FieldExamDate, v))
}

// ExamDateIsNil applies the IsNil predicate on the "exam_date" field.
func ExamDateIsNil() predicate.Setting {
	return predicate.Setting(sql.FieldIsNull(FieldExamDate))
}

// ExamDateNotNil applies the NotNil predicate on the "exam_date" field.
func ExamDateNotNil() predicate.Setting {
	return predicate.Setting(sql.FieldNotNull(FieldExamDate))
}

// ExamDateEqualFold applies the EqualFold predicate on the "exam_date" field.
func ExamDateEqualFold(v string) predicate.Setting {
	return predicate.Setting(sql.FieldEqualFold(FieldExamDate, v))
}

// ExamDateContainsFold applies the ContainsFold predicate on the "exam_date" field.
func ExamDateContainsFold(v string) predicate.Setting {
	return predicate.Setting(sql.FieldContainsFold(FieldExamDate, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Setting) predicate.Setting {
	return predicate.Setting(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Setting) predicate.Setting {
	return predicate.Setting(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Setting) predicate.Setting {
	return predicate.Setting(sql.NotPredicates(p))
}
