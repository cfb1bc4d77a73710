// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepcoach/ent/knownquestion"
)

// KnownQuestion is the model entity for the KnownQuestion schema.
type KnownQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Original question text
	Text string `json:"text,omitempty"`
	// Lowercased, whitespace-collapsed text used for matching
	NormalizedText string `json:"normalized_text,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*KnownQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case knownquestion.FieldID:
			values[i] = new(sql.NullInt64)
		case knownquestion.FieldSubject, knownquestion.FieldTopic, knownquestion.FieldText, knownquestion.FieldNormalizedText:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the KnownQuestion fields.
func (_m *KnownQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case knownquestion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case knownquestion.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case knownquestion.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case knownquestion.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case knownquestion.FieldNormalizedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_text", values[i])
			} else if value.Valid {
				_m.NormalizedText = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the KnownQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *KnownQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this KnownQuestion.
// Note that you need to call KnownQuestion.Unwrap() before calling this method if this KnownQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *KnownQuestion) Update() *KnownQuestionUpdateOne {
	return NewKnownQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the KnownQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *KnownQuestion) Unwrap() *KnownQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: KnownQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *KnownQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("KnownQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("normalized_text=")
	builder.WriteString(_m.NormalizedText)
	builder.WriteByte(')')
	return builder.String()
}

// KnownQuestions is a parsable slice of KnownQuestion.
type KnownQuestions []*KnownQuestion
