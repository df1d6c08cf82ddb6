// Code generated by ent, DO NOT EDIT.

package question

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/examdeck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionID, v))
}

// Qtype applies equality check predicate on the "qtype" field. It's identical to QtypeEQ.
func Qtype(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQtype, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPrompt, v))
}

// CorrectValue applies equality check predicate on the "correct_value" field. It's identical to CorrectValueEQ.
func CorrectValue(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCorrectValue, v))
}

// Marks applies equality check predicate on the "marks" field. It's identical to MarksEQ.
func Marks(v float64) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldMarks, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubject, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTopic, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldQuestionID, v))
}

// QtypeEQ applies the EQ predicate on the "qtype" field.
func QtypeEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQtype, v))
}

// QtypeNEQ applies the NEQ predicate on the "qtype" field.
func QtypeNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQtype, v))
}

// QtypeIn applies the In predicate on the "qtype" field.
func QtypeIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldQtype, vs...))
}

// QtypeNotIn applies the NotIn predicate on the "qtype" field.
func QtypeNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldQtype, vs...))
}

// QtypeGT applies the GT predicate on the "qtype" field.
func QtypeGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldQtype, v))
}

// QtypeGTE applies the GTE predicate on the "qtype" field.
func QtypeGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldQtype, v))
}

// QtypeLT applies the LT predicate on the "qtype" field.
func QtypeLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldQtype, v))
}

// QtypeLTE applies the LTE predicate on the "qtype" field.
func QtypeLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldQtype, v))
}

// QtypeContains applies the Contains predicate on the "qtype" field.
func QtypeContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldQtype, v))
}

// QtypeHasPrefix applies the HasPrefix predicate on the "qtype" field.
func QtypeHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldQtype, v))
}

// QtypeHasSuffix applies the HasSuffix predicate on the "qtype" field.
func QtypeHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldQtype, v))
}

// QtypeEqualFold applies the EqualFold predicate on the "qtype" field.
func QtypeEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldQtype, v))
}

// QtypeContainsFold applies the ContainsFold predicate on the "qtype" field.
func QtypeContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldQtype, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldPrompt, v))
}

// OptionsIsNil applies the IsNil predicate on the "options" field.
func OptionsIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldOptions))
}

// OptionsNotNil applies the NotNil predicate on the "options" field.
func OptionsNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldOptions))
}

// CorrectValueEQ applies the EQ predicate on the "correct_value" field.
func CorrectValueEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCorrectValue, v))
}

// CorrectValueNEQ applies the NEQ predicate on the "correct_value" field.
func CorrectValueNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCorrectValue, v))
}

// CorrectValueIn applies the In predicate on the "correct_value" field.
func CorrectValueIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCorrectValue, vs...))
}

// CorrectValueNotIn applies the NotIn predicate on the "correct_value" field.
func CorrectValueNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCorrectValue, vs...))
}

// CorrectValueGT applies the GT predicate on the "correct_value" field.
func CorrectValueGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCorrectValue, v))
}

// CorrectValueGTE applies the GTE predicate on the "correct_value" field.
func CorrectValueGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCorrectValue, v))
}

// CorrectValueLT applies the LT predicate on the "correct_value" field.
func CorrectValueLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCorrectValue, v))
}

// CorrectValueLTE applies the LTE predicate on the "correct_value" field.
func CorrectValueLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCorrectValue, v))
}

// CorrectValueContains applies the Contains predicate on the "correct_value" field.
func CorrectValueContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldCorrectValue, v))
}

// CorrectValueHasPrefix applies the HasPrefix predicate on the "correct_value" field.
func CorrectValueHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldCorrectValue, v))
}

// CorrectValueHasSuffix applies the HasSuffix predicate on the "correct_value" field.
func CorrectValueHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldCorrectValue, v))
}

// CorrectValueEqualFold applies the EqualFold predicate on the "correct_value" field.
func CorrectValueEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldCorrectValue, v))
}

// CorrectValueContainsFold applies the ContainsFold predicate on the "correct_value" field.
func CorrectValueContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldCorrectValue, v))
}

// CorrectOptionsIsNil applies the IsNil predicate on the "correct_options" field.
func CorrectOptionsIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldCorrectOptions))
}

// CorrectOptionsNotNil applies the NotNil predicate on the "correct_options" field.
func CorrectOptionsNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldCorrectOptions))
}

// MarksEQ applies the EQ predicate on the "marks" field.
func MarksEQ(v float64) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldMarks, v))
}

// MarksNEQ applies the NEQ predicate on the "marks" field.
func MarksNEQ(v float64) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldMarks, v))
}

// MarksIn applies the In predicate on the "marks" field.
func MarksIn(vs ...float64) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldMarks, vs...))
}

// MarksNotIn applies the NotIn predicate on the "marks" field.
func MarksNotIn(vs ...float64) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldMarks, vs...))
}

// MarksGT applies the GT predicate on the "marks" field.
func MarksGT(v float64) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldMarks, v))
}

// MarksGTE applies the GTE predicate on the "marks" field.
func MarksGTE(v float64) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldMarks, v))
}

// MarksLT applies the LT predicate on the "marks" field.
func MarksLT(v float64) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldMarks, v))
}

// MarksLTE applies the LTE predicate on the "marks" field.
func MarksLTE(v float64) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldMarks, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldSubject, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldTopic, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
