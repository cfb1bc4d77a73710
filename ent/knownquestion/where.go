// Code generated by ent, DO NOT EDIT.

package knownquestion

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepcoach/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldLTE(FieldID, id))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldEQ(FieldSubject, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldEQ(FieldTopic, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldEQ(FieldText, v))
}

// NormalizedText applies equality check predicate on the "normalized_text" field. It's identical to NormalizedTextEQ.
func NormalizedText(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldEQ(FieldNormalizedText, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldContainsFold(FieldSubject, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldContainsFold(FieldTopic, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldContainsFold(FieldText, v))
}

// NormalizedTextEQ applies the EQ predicate on the "normalized_text" field.
func NormalizedTextEQ(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldEQ(FieldNormalizedText, v))
}

// NormalizedTextNEQ applies the NEQ predicate on the "normalized_text" field.
func NormalizedTextNEQ(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldNEQ(FieldNormalizedText, v))
}

// NormalizedTextIn applies the In predicate on the "normalized_text" field.
func NormalizedTextIn(vs ...string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldIn(FieldNormalizedText, vs...))
}

// NormalizedTextNotIn applies the NotIn predicate on the "normalized_text" field.
func NormalizedTextNotIn(vs ...string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldNotIn(FieldNormalizedText, vs...))
}

// NormalizedTextGT applies the GT predicate on the "normalized_text" field.
func NormalizedTextGT(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldGT(FieldNormalizedText, v))
}

// NormalizedTextGTE applies the GTE predicate on the "normalized_text" field.
func NormalizedTextGTE(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldGTE(FieldNormalizedText, v))
}

// NormalizedTextLT applies the LT predicate on the "normalized_text" field.
func NormalizedTextLT(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldLT(FieldNormalizedText, v))
}

// NormalizedTextLTE applies the LTE predicate on the "normalized_text" field.
func NormalizedTextLTE(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldLTE(FieldNormalizedText, v))
}

// NormalizedTextContains applies the Contains predicate on the "normalized_text" field.
func NormalizedTextContains(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldContains(FieldNormalizedText, v))
}

// NormalizedTextHasPrefix applies the HasPrefix predicate on the "normalized_text" field.
func NormalizedTextHasPrefix(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldHasPrefix(FieldNormalizedText, v))
}

// NormalizedTextHasSuffix applies the HasSuffix predicate on the "normalized_text" field.
func NormalizedTextHasSuffix(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldHasSuffix(FieldNormalizedText, v))
}

// NormalizedTextEqualFold applies the EqualFold predicate on the "normalized_text" field.
func NormalizedTextEqualFold(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldEqualFold(FieldNormalizedText, v))
}

// NormalizedTextContainsFold applies the ContainsFold predicate on the "normalized_text" field.
func NormalizedTextContainsFold(v string) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.FieldContainsFold(FieldNormalizedText, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.KnownQuestion) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.KnownQuestion) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.KnownQuestion) predicate.KnownQuestion {
	return predicate.KnownQuestion(sql.NotPredicates(p))
}
