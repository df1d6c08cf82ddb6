// Code generated by ent, DO NOT EDIT.

package question

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the question type in the database.
	Label = "question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldQtype holds the string denoting the qtype field in the database.
	FieldQtype = "qtype"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldOptions holds the string denoting the options field in the database.
	FieldOptions = "options"
	// FieldCorrectValue holds the string denoting the correct_value field in the database.
	FieldCorrectValue = "correct_value"
	// FieldCorrectOptions holds the string denoting the correct_options field in the database.
	FieldCorrectOptions = "correct_options"
	// FieldMarks holds the string denoting the marks field in the database.
	FieldMarks = "marks"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// Table holds the table name of the question in the database.
	Table = "questions"
)

// Columns holds all SQL columns for question fields.
var Columns = []string{
	FieldID,
	FieldQuestionID,
	FieldQtype,
	FieldPrompt,
	FieldOptions,
	FieldCorrectValue,
	FieldCorrectOptions,
	FieldMarks,
	FieldSubject,
	FieldTopic,
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
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(string) error
	// QtypeValidator is a validator for the "qtype" field. It is called by the builders before save.
	QtypeValidator func(string) error
	// PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	PromptValidator func(string) error
	// DefaultCorrectValue holds the default value on creation for the "correct_value" field.
	DefaultCorrectValue string
	// DefaultMarks holds the default value on creation for the "marks" field.
	DefaultMarks float64
	// DefaultSubject holds the default value on creation for the "subject" field.
	DefaultSubject string
	// DefaultTopic holds the default value on creation for the "topic" field.
	DefaultTopic string
)

// OrderOption defines the ordering options for the Question queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByQtype orders the results by the qtype field.
func ByQtype(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQtype, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByCorrectValue orders the results by the correct_value field.
func ByCorrectValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectValue, opts...).ToFunc()
}

// ByMarks orders the results by the marks field.
func ByMarks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarks, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}
