// Code generated by ent, DO NOT EDIT.

package knownquestion

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the knownquestion type in the database.
	Label = "known_question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldNormalizedText holds the string denoting the normalized_text field in the database.
	FieldNormalizedText = "normalized_text"
	// Table holds the table name of the knownquestion in the database.
	Table = "known_questions"
)

// Columns holds all SQL columns for knownquestion fields.
var Columns = []string{
	FieldID,
	FieldSubject,
	FieldTopic,
	FieldText,
	FieldNormalizedText,
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
	// SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	SubjectValidator func(string) error
	// DefaultTopic holds the default value on creation for the "topic" field.
	DefaultTopic string
	// TextValidator is a validator for the "text" field. It is called by the builders before save.
	TextValidator func(string) error
	// NormalizedTextValidator is a validator for the "normalized_text" field. It is called by the builders before save.
	NormalizedTextValidator func(string) error
)

// OrderOption defines the ordering options for the KnownQuestion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByNormalizedText orders the results by the normalized_text field.
func ByNormalizedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedText, opts...).ToFunc()
}
